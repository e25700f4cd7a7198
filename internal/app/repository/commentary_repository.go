package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

type CommentaryRepository interface {
	FindByPeriod(period string) (*model.PeriodCommentary, error)
	Upsert(commentary *model.PeriodCommentary) error
}

type commentaryRepository struct {
	db *gorm.DB
}

func NewCommentaryRepository(db *gorm.DB) CommentaryRepository {
	return &commentaryRepository{db: db}
}

func (r *commentaryRepository) FindByPeriod(period string) (*model.PeriodCommentary, error) {
	var commentary model.PeriodCommentary
	if err := r.db.Where("period = ?", period).First(&commentary).Error; err != nil {
		return nil, err
	}
	return &commentary, nil
}

// Upsert writes the commentary with last-write-wins semantics on the
// period key.
func (r *commentaryRepository) Upsert(commentary *model.PeriodCommentary) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "period"}},
		DoUpdates: clause.AssignmentColumns([]string{"sections", "updated_by", "updated_at"}),
	}).Create(commentary).Error
}
