package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/service"
	apperrors "github.com/jwseo/maechuldash-backend/internal/errors"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
	ws "github.com/jwseo/maechuldash-backend/internal/websocket"
)

// DashboardController 월간 실적 대시보드 컨트롤러
type DashboardController struct {
	dashboardService service.DashboardService
	hub              *ws.Hub
}

func NewDashboardController(dashboardService service.DashboardService, hub *ws.Hub) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
		hub:              hub,
	}
}

// parsePeriodParam validates the :period path parameter (YYMM).
func parsePeriodParam(c *gin.Context) (model.Period, bool) {
	period, err := model.ParsePeriod(c.Param("period"))
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidPeriod, "기간 형식이 올바르지 않습니다 (YYMM)")
		return "", false
	}
	return period, true
}

// GetDashboard 기간별 대시보드 뷰 조회
// GET /api/v1/dashboard/:period
func (ctrl *DashboardController) GetDashboard(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	view, err := ctrl.dashboardService.GetDashboard(c.Request.Context(), period)
	if err != nil {
		log.Error("Failed to assemble dashboard view", err, map[string]interface{}{
			"period": period.String(),
		})
		apperrors.InternalError(c, "대시보드 데이터를 불러오지 못했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}

// GetPL 기간별 손익 조회
// GET /api/v1/dashboard/:period/pl
func (ctrl *DashboardController) GetPL(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	pl, outcome, err := ctrl.dashboardService.GetPL(c.Request.Context(), period)
	if err != nil {
		log.Error("Failed to load P&L payload", err, map[string]interface{}{
			"period": period.String(),
		})
		apperrors.InternalError(c, "손익 데이터를 불러오지 못했습니다")
		return
	}
	if pl == nil {
		apperrors.NotFound(c, apperrors.DashboardUnavailable, "해당 기간의 손익 데이터가 없습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"source":  outcome,
		"data":    pl,
	})
}

// Refresh 기간 대시보드 강제 갱신 (관리자)
// POST /api/v1/dashboard/:period/refresh
func (ctrl *DashboardController) Refresh(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	view, err := ctrl.dashboardService.Refresh(c.Request.Context(), period)
	if err != nil {
		log.Error("Dashboard refresh failed", err, map[string]interface{}{
			"period": period.String(),
		})
		apperrors.InternalError(c, "대시보드 갱신에 실패했습니다")
		return
	}

	if ctrl.hub != nil {
		ctrl.hub.BroadcastRefresh(period)
	}

	userID, _ := middleware.GetUserID(c)
	log.Info("Dashboard refreshed by user", map[string]interface{}{
		"period":  period.String(),
		"user_id": userID,
	})

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    view,
	})
}
