package service

import (
	"errors"

	"gorm.io/gorm"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
)

var ErrEmptyCommentary = errors.New("코멘터리 내용이 비어 있습니다")

// CommentaryView 기간별 코멘터리 응답
type CommentaryView struct {
	Period    string            `json:"period"`
	Sections  map[string]string `json:"sections"`
	UpdatedBy string            `json:"updated_by,omitempty"`
	Stored    bool              `json:"stored"` // false 면 기본 문구
}

// CommentaryService 기간별 분석 코멘터리 서비스
type CommentaryService interface {
	GetCommentary(period model.Period) (*CommentaryView, error)
	UpdateCommentary(period model.Period, sections map[string]string, updatedBy string) (*CommentaryView, error)
}

type commentaryService struct {
	repo repository.CommentaryRepository
}

func NewCommentaryService(repo repository.CommentaryRepository) CommentaryService {
	return &commentaryService{repo: repo}
}

// GetCommentary returns the stored commentary, or the default text when
// nothing is stored yet. 깨진 저장본도 기본 문구로 조용히 대체한다.
func (s *commentaryService) GetCommentary(period model.Period) (*CommentaryView, error) {
	commentary, err := s.repo.FindByPeriod(period.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &CommentaryView{
				Period:   period.String(),
				Sections: (&model.PeriodCommentary{}).SectionMap(),
			}, nil
		}
		logger.Error("Failed to load commentary", err, map[string]interface{}{
			"period": period.String(),
		})
		return nil, err
	}

	return &CommentaryView{
		Period:    period.String(),
		Sections:  commentary.SectionMap(),
		UpdatedBy: commentary.UpdatedBy,
		Stored:    true,
	}, nil
}

// UpdateCommentary stores the sections with last-write-wins semantics.
func (s *commentaryService) UpdateCommentary(period model.Period, sections map[string]string, updatedBy string) (*CommentaryView, error) {
	if len(sections) == 0 {
		return nil, ErrEmptyCommentary
	}

	commentary := &model.PeriodCommentary{
		Period:    period.String(),
		UpdatedBy: updatedBy,
	}
	if err := commentary.SetSections(sections); err != nil {
		return nil, err
	}

	if err := s.repo.Upsert(commentary); err != nil {
		logger.Error("Failed to save commentary", err, map[string]interface{}{
			"period": period.String(),
		})
		return nil, err
	}

	logger.Info("Commentary saved", map[string]interface{}{
		"period":     period.String(),
		"updated_by": updatedBy,
		"sections":   len(sections),
	})
	return &CommentaryView{
		Period:    period.String(),
		Sections:  sections,
		UpdatedBy: updatedBy,
		Stored:    true,
	}, nil
}
