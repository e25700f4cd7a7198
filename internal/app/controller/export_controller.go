package controller

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwseo/maechuldash-backend/internal/app/service"
	apperrors "github.com/jwseo/maechuldash-backend/internal/errors"
	"github.com/jwseo/maechuldash-backend/internal/middleware"
)

// ExportController 월간 보고서 엑셀 다운로드
type ExportController struct {
	dashboardService service.DashboardService
	exportService    service.ExportService
}

func NewExportController(dashboardService service.DashboardService, exportService service.ExportService) *ExportController {
	return &ExportController{
		dashboardService: dashboardService,
		exportService:    exportService,
	}
}

// ExportReport 기간 대시보드를 엑셀 파일로 내려준다
// GET /api/v1/dashboard/:period/export
func (ctrl *ExportController) ExportReport(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	period, ok := parsePeriodParam(c)
	if !ok {
		return
	}

	view, err := ctrl.dashboardService.GetDashboard(c.Request.Context(), period)
	if err != nil {
		apperrors.InternalError(c, "대시보드 데이터를 불러오지 못했습니다")
		return
	}
	if view.Dashboard == nil {
		apperrors.NotFound(c, apperrors.DashboardUnavailable, "해당 기간의 데이터가 없어 보고서를 만들 수 없습니다")
		return
	}

	f, err := ctrl.exportService.BuildReport(view)
	if err != nil {
		log.Error("Failed to build report workbook", err, map[string]interface{}{
			"period": period.String(),
		})
		apperrors.RespondWithError(c, http.StatusInternalServerError, apperrors.DashboardExportFailed, "보고서 생성에 실패했습니다")
		return
	}

	filename := fmt.Sprintf("monthly-report-%s.xlsx", period)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if _, err := f.WriteTo(c.Writer); err != nil {
		log.Error("Failed to stream report workbook", err, map[string]interface{}{
			"period": period.String(),
		})
	}
}
