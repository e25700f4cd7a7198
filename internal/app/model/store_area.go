package model

import (
	"time"
)

// StoreArea 매장 면적 참조 테이블 (기간 페이로드 외부의 정적 기준정보)
//
// cmd/seed 가 기준정보 xlsx 에서 적재한다. 테이블에 없는 매장은 면적 0으로
// 취급되어 평효율 집계에서 제외된다.
type StoreArea struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	StoreCode  string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"store_code"` // 매장 코드
	StoreName  string    `gorm:"type:varchar(100)" json:"store_name"`                     // 공식 매장명
	AreaPyeong float64   `gorm:"not null;default:0" json:"area_pyeong"`                   // 면적 (평)
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (StoreArea) TableName() string {
	return "store_areas"
}
