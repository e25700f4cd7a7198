package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

type StoreAreaRepository interface {
	FindAll() ([]model.StoreArea, error)
	AreaByCode() (map[string]float64, error)
	NameByCode() (map[string]string, error)
	UpsertBatch(areas []model.StoreArea) error
}

type storeAreaRepository struct {
	db *gorm.DB
}

func NewStoreAreaRepository(db *gorm.DB) StoreAreaRepository {
	return &storeAreaRepository{db: db}
}

func (r *storeAreaRepository) FindAll() ([]model.StoreArea, error) {
	var areas []model.StoreArea
	if err := r.db.Order("store_code").Find(&areas).Error; err != nil {
		return nil, err
	}
	return areas, nil
}

// AreaByCode returns the store_code → 면적(평) lookup used by the area
// efficiency derivation.
func (r *storeAreaRepository) AreaByCode() (map[string]float64, error) {
	areas, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(areas))
	for _, a := range areas {
		out[a.StoreCode] = a.AreaPyeong
	}
	return out, nil
}

// NameByCode returns the store_code → 공식 매장명 lookup used by the store
// change detection.
func (r *storeAreaRepository) NameByCode() (map[string]string, error) {
	areas, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(areas))
	for _, a := range areas {
		if a.StoreName != "" {
			out[a.StoreCode] = a.StoreName
		}
	}
	return out, nil
}

// UpsertBatch replaces reference rows by store code, used by cmd/seed.
func (r *storeAreaRepository) UpsertBatch(areas []model.StoreArea) error {
	if len(areas) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "store_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"store_name", "area_pyeong", "updated_at"}),
	}).Create(&areas).Error
}
