package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/service"
	"github.com/jwseo/maechuldash-backend/internal/websocket"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
)

// RefreshScheduler 당월 대시보드 자동 갱신 스케줄러
type RefreshScheduler struct {
	cron             *cron.Cron
	dashboardService service.DashboardService
	hub              *websocket.Hub
	spec             string
	// period overrides the derived current period when set (YYMM).
	period string
}

func NewRefreshScheduler(dashboardService service.DashboardService, hub *websocket.Hub, spec, period string) *RefreshScheduler {
	return &RefreshScheduler{
		cron:             cron.New(),
		dashboardService: dashboardService,
		hub:              hub,
		spec:             spec,
		period:           period,
	}
}

// Start registers the refresh job and starts the cron loop.
func (s *RefreshScheduler) Start() error {
	_, err := s.cron.AddFunc(s.spec, s.refresh)
	if err != nil {
		logger.Error("Failed to add cron job for dashboard refresh", err)
		return err
	}

	s.cron.Start()
	logger.Info("Dashboard refresh scheduler started", map[string]interface{}{
		"spec": s.spec,
	})
	return nil
}

// Stop 스케줄러 중지
func (s *RefreshScheduler) Stop() {
	logger.Info("Stopping dashboard refresh scheduler...", nil)
	s.cron.Stop()
	logger.Info("Dashboard refresh scheduler stopped", nil)
}

func (s *RefreshScheduler) refresh() {
	period := s.currentPeriod()
	logger.Info("Starting scheduled dashboard refresh", map[string]interface{}{
		"period": period.String(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.dashboardService.Refresh(ctx, period); err != nil {
		logger.Error("Scheduled dashboard refresh failed", err, map[string]interface{}{
			"period": period.String(),
		})
		return
	}

	if s.hub != nil {
		s.hub.BroadcastRefresh(period)
	}
	logger.Info("Scheduled dashboard refresh completed", map[string]interface{}{
		"period": period.String(),
	})
}

func (s *RefreshScheduler) currentPeriod() model.Period {
	if s.period != "" {
		if period, err := model.ParsePeriod(s.period); err == nil {
			return period
		}
		logger.Warn("Invalid configured period, deriving from clock", map[string]interface{}{
			"period": s.period,
		})
	}
	return model.CurrentPeriod(time.Now())
}
