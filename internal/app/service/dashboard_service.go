package service

import (
	"context"
	"sync"

	"github.com/jwseo/maechuldash-backend/internal/aggregate"
	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/internal/app/repository"
	"github.com/jwseo/maechuldash-backend/internal/dataset"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
)

// DashboardService 기간별 대시보드 조회/갱신 서비스
type DashboardService interface {
	GetDashboard(ctx context.Context, period model.Period) (*model.DashboardView, error)
	GetPL(ctx context.Context, period model.Period) (*model.PLPayload, dataset.Outcome, error)
	Refresh(ctx context.Context, period model.Period) (*model.DashboardView, error)
}

type dashboardService struct {
	loader    *dataset.Loader
	cache     *dataset.CachingSource // nil 이면 캐시 없음
	areaRepo  repository.StoreAreaRepository

	mu   sync.Mutex
	memo map[model.Period]*model.DashboardView
	// gen guards against a stale in-flight load finishing after a newer
	// load (or a forced refresh) started for the same period: only the
	// latest generation may populate the memo.
	gen map[model.Period]uint64
}

func NewDashboardService(loader *dataset.Loader, cache *dataset.CachingSource, areaRepo repository.StoreAreaRepository) DashboardService {
	return &dashboardService{
		loader:   loader,
		cache:    cache,
		areaRepo: areaRepo,
		memo:     make(map[model.Period]*model.DashboardView),
		gen:      make(map[model.Period]uint64),
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, period model.Period) (*model.DashboardView, error) {
	s.mu.Lock()
	if view, ok := s.memo[period]; ok {
		s.mu.Unlock()
		return view, nil
	}
	s.gen[period]++
	myGen := s.gen[period]
	s.mu.Unlock()

	view := s.load(ctx, period)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen[period] == myGen {
		s.memo[period] = view
	} else {
		logger.Debug("Discarding superseded dashboard load", map[string]interface{}{
			"period": period.String(),
		})
	}
	return view, nil
}

func (s *dashboardService) GetPL(ctx context.Context, period model.Period) (*model.PLPayload, dataset.Outcome, error) {
	pl, outcome := s.loader.LoadPL(ctx, period)
	return aggregate.NormalizePLPayload(pl), outcome, nil
}

// Refresh evicts cached payloads and the memoized view, then reloads.
func (s *dashboardService) Refresh(ctx context.Context, period model.Period) (*model.DashboardView, error) {
	if s.cache != nil {
		s.cache.Evict(ctx, s.loader.DocumentNames(period))
	}

	s.mu.Lock()
	delete(s.memo, period)
	s.gen[period]++ // 진행 중이던 이전 로드는 무효화
	s.mu.Unlock()

	logger.Info("Dashboard refresh requested", map[string]interface{}{
		"period": period.String(),
	})
	return s.GetDashboard(ctx, period)
}

// load fetches both payloads and runs the derivation core. 페이로드가 없어도
// 오류 없이 빈 뷰를 돌려준다 (프런트는 로딩/빈 상태 렌더링).
func (s *dashboardService) load(ctx context.Context, period model.Period) *model.DashboardView {
	dash, dashOutcome := s.loader.LoadDashboard(ctx, period)
	pl, plOutcome := s.loader.LoadPL(ctx, period)

	view := &model.DashboardView{
		Period:       period,
		ActiveStores: []model.ActiveStore{},
	}
	view.Source.Dashboard = string(dashOutcome)
	view.Source.PL = string(plOutcome)
	view.Dashboard = dash
	view.PL = aggregate.NormalizePLPayload(pl)

	if dash == nil {
		logger.Warn("Dashboard payload unavailable, returning empty view", map[string]interface{}{
			"period": period.String(),
		})
		return view
	}

	records := dash.StoreSummary

	directProfit := pl.DirectProfitByStore()
	active := aggregate.ClassifyActiveStores(records, directProfit)
	view.ActiveStores = active
	view.Buckets = aggregate.BucketByProfitability(active, pl.CostsByStore())

	names := s.storeNames()
	view.StoreChanges = aggregate.DetectStoreChanges(records, names)
	view.ChannelEfficiency = aggregate.ComputeChannelEfficiency(records)

	areas := s.storeAreas()
	view.AreaEfficiency = aggregate.ComputeAreaEfficiency(
		records, areas, pl.OfflineNetSales(), prevOfflineNetSales(records), period,
	)

	logger.Info("Dashboard view assembled", map[string]interface{}{
		"period":        period.String(),
		"active_stores": len(active),
		"dashboard":     dashOutcome,
		"pl":            plOutcome,
	})
	return view
}

func (s *dashboardService) storeAreas() map[string]float64 {
	if s.areaRepo == nil {
		return nil
	}
	areas, err := s.areaRepo.AreaByCode()
	if err != nil {
		logger.Error("Failed to load store area reference", err)
		return nil
	}
	return areas
}

func (s *dashboardService) storeNames() map[string]string {
	if s.areaRepo == nil {
		return nil
	}
	names, err := s.areaRepo.NameByCode()
	if err != nil {
		logger.Error("Failed to load store name reference", err)
		return nil
	}
	return names
}

// prevOfflineNetSales sums the year-ago offline net sales, the numerator
// for the previous-period 평효율. 전년 손익 문서를 따로 받지 않으므로 매장
// 레코드의 전년 스냅샷 합으로 계산한다.
func prevOfflineNetSales(records map[string]model.StoreRecord) float64 {
	var sum float64
	for _, r := range records {
		if r.Channel == model.ChannelOnline {
			continue
		}
		sum += r.PreviousNetSales()
	}
	return sum
}
