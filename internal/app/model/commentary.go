package model

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// DefaultCommentary 코멘터리 기본 문구. 저장된 내용이 없거나 파싱에
// 실패하면 이 값으로 렌더링한다.
const DefaultCommentary = "전월 실적 요약을 입력하세요."

// PeriodCommentary 기간별 분석 코멘터리
//
// Sections 는 섹션명 → 본문 텍스트의 평면 JSON 객체로 저장한다.
// 스키마 버전 없음, 만료 없음, 마지막 쓰기 우선.
type PeriodCommentary struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Period    string         `gorm:"type:varchar(4);uniqueIndex;not null" json:"period"` // YYMM
	Sections  string         `gorm:"type:text" json:"-"`                                 // 직렬화된 섹션 맵
	UpdatedBy string         `gorm:"type:varchar(100)" json:"updated_by"`                // 마지막 수정자 이메일
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (PeriodCommentary) TableName() string {
	return "period_commentaries"
}

// SectionMap decodes the stored sections. Corrupt JSON degrades to the
// default commentary instead of failing.
func (c *PeriodCommentary) SectionMap() map[string]string {
	sections := map[string]string{}
	if c == nil || c.Sections == "" {
		return map[string]string{"summary": DefaultCommentary}
	}
	if err := json.Unmarshal([]byte(c.Sections), &sections); err != nil {
		return map[string]string{"summary": DefaultCommentary}
	}
	return sections
}

// SetSections encodes and stores the section map.
func (c *PeriodCommentary) SetSections(sections map[string]string) error {
	data, err := json.Marshal(sections)
	if err != nil {
		return err
	}
	c.Sections = string(data)
	return nil
}
