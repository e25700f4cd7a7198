package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwseo/maechuldash-backend/internal/app/service"
	apperrors "github.com/jwseo/maechuldash-backend/internal/errors"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
)

// CommentaryController 기간별 분석 코멘터리 컨트롤러
type CommentaryController struct {
	commentaryService service.CommentaryService
}

func NewCommentaryController(commentaryService service.CommentaryService) *CommentaryController {
	return &CommentaryController{
		commentaryService: commentaryService,
	}
}

// UpdateCommentaryRequest 코멘터리 저장 요청
type UpdateCommentaryRequest struct {
	Sections map[string]string `json:"sections" binding:"required"`
}

// GetCommentary 기간 코멘터리 조회
// GET /api/v1/commentary/:period
func (ctrl *CommentaryController) GetCommentary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	view, err := ctrl.commentaryService.GetCommentary(period)
	if err != nil {
		log.Error("Failed to load commentary", err, map[string]interface{}{
			"period": period.String(),
		})
		apperrors.InternalError(c, "코멘터리를 불러오지 못했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// UpdateCommentary 기간 코멘터리 저장 (마지막 쓰기 우선)
// PUT /api/v1/commentary/:period
func (ctrl *CommentaryController) UpdateCommentary(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	var req UpdateCommentaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력 정보가 올바르지 않습니다")
		return
	}

	email, _ := middleware.GetUserEmail(c)
	view, err := ctrl.commentaryService.UpdateCommentary(period, req.Sections, email)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCommentary) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "코멘터리 내용이 비어 있습니다")
			return
		}
		log.Error("Failed to save commentary", err, map[string]interface{}{
			"period": period.String(),
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.CommentarySaveFailed, "코멘터리 저장에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}
