package model

import (
	"time"

	"gorm.io/gorm"
)

// UserRole 대시보드 사용자 권한
type UserRole string

const (
	RoleAnalyst UserRole = "analyst" // 코멘터리 작성 가능
	RoleAdmin   UserRole = "admin"   // 새로고침/내보내기 포함 전체
)

// User 대시보드 운영 사용자
type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Name         string         `gorm:"type:varchar(50);not null" json:"name"`
	Role         UserRole       `gorm:"type:varchar(20);not null;default:'analyst'" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}
