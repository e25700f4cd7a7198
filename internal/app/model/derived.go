package model

import (
	"encoding/json"
	"math"
)

// Yoy 전년비 (%). 전년 실적이 0이고 당년 실적이 있으면 "신규" 센티널로
// 표현한다. 0%로 내보내면 역신장으로 오독되기 때문에 숫자 0 과 구분한다.
type Yoy struct {
	Value float64
	New   bool
}

// NewYoy computes current/previous*100 with the zero-base sentinel.
func NewYoy(current, previous float64) Yoy {
	if previous == 0 {
		if current != 0 {
			return Yoy{New: true}
		}
		return Yoy{}
	}
	return Yoy{Value: current / previous * 100}
}

// Ord returns a sortable value: the sentinel orders above every ratio.
func (y Yoy) Ord() float64 {
	if y.New {
		return math.Inf(1)
	}
	return y.Value
}

// AtLeast reports whether the yoy is at or above the threshold. The "new"
// sentinel counts as above any threshold.
func (y Yoy) AtLeast(threshold float64) bool {
	return y.New || y.Value >= threshold
}

func (y Yoy) MarshalJSON() ([]byte, error) {
	if y.New {
		return json.Marshal("new")
	}
	return json.Marshal(y.Value)
}

func (y *Yoy) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		y.New = s == "new"
		y.Value = 0
		return nil
	}
	y.New = false
	return json.Unmarshal(data, &y.Value)
}

// ActiveStore 분류된 영업 중 매장 (온라인 제외, 당월 순매출 > 0)
type ActiveStore struct {
	StoreCode    string  `json:"store_code"`
	StoreName    string  `json:"store_name"`
	Channel      Channel `json:"channel"`
	NetSales     float64 `json:"net_sales"`      // 당월 순매출
	PrevNetSales float64 `json:"prev_net_sales"` // 전년 동월 순매출
	Yoy          Yoy     `json:"yoy"`            // 전년비
	DirectProfit float64 `json:"direct_profit"`  // 직접이익 (백만원)
}

// CategoryBucket 수익성/신장 구분 버킷
type CategoryBucket struct {
	Count             int           `json:"count"`
	Stores            []ActiveStore `json:"stores"`
	TotalDirectProfit float64       `json:"total_direct_profit"` // 직접이익 합
	AvgYoy            float64       `json:"avg_yoy"`             // 구성 매장 전년비 단순 평균
	RentRate          float64       `json:"rent_rate"`           // 임차료율 (%)
	LaborRate         float64       `json:"labor_rate"`          // 인건비율 (%)
	DepreciationRate  float64       `json:"depreciation_rate"`   // 감가상각비율 (%)
	AvgRentLaborRatio float64       `json:"avg_rent_labor_ratio"` // 임차료율 + 인건비율
}

// BucketSet 네 버킷의 엄밀한 분할. 빈 버킷은 nil ("계산 안 함"과 구분).
type BucketSet struct {
	LargeProfit       *CategoryBucket `json:"large_profit"`        // 직접이익 >= 100
	SmallMediumProfit *CategoryBucket `json:"small_medium_profit"` // 0 < 직접이익 < 100
	LossImproving     *CategoryBucket `json:"loss_improving"`      // 적자 & 신장
	LossDeteriorating *CategoryBucket `json:"loss_deteriorating"`  // 적자 & 역신장
}

// StoreChanges 신규/철수/리뉴얼 매장명 목록
type StoreChanges struct {
	NewStores       []string `json:"new_stores"`       // 당월 매출 있고 전년 없음
	ClosedStores    []string `json:"closed_stores"`    // 전년 매출 있고 당월 없음, 플래그 없음
	RenovatedStores []string `json:"renovated_stores"` // 전년 매출 있고 당월 없음, 폐점 플래그
}

// ChannelPeriodStat 채널별 한 기간 통계
type ChannelPeriodStat struct {
	NetSales      float64 `json:"net_sales"`
	StoreCount    int     `json:"store_count"`
	SalesPerStore float64 `json:"sales_per_store"` // net_sales / store_count, 0 if no stores
}

// ChannelAggregate 채널 점효율 집계
type ChannelAggregate struct {
	Current  ChannelPeriodStat `json:"current"`
	Previous ChannelPeriodStat `json:"previous"`
	Yoy      float64           `json:"yoy"` // 점당 매출 전년비 (%)
}

// ChannelEfficiency 오프라인 채널별 점효율 (Retail/Outlet 한정)
type ChannelEfficiency struct {
	Retail *ChannelAggregate `json:"retail"`
	Outlet *ChannelAggregate `json:"outlet"`
}

// AreaEfficiency 평효율 (오프라인 순매출 / 합산 면적)
type AreaEfficiency struct {
	TotalArea         float64 `json:"total_area"`           // 합산 면적 (평)
	SalesPerArea      float64 `json:"sales_per_area"`       // 평당 매출
	DailySalesPerArea float64 `json:"daily_sales_per_area"` // 일평균 평당 매출
	PrevTotalArea         float64 `json:"prev_total_area"`
	PrevSalesPerArea      float64 `json:"prev_sales_per_area"`
	PrevDailySalesPerArea float64 `json:"prev_daily_sales_per_area"`
	Yoy float64 `json:"yoy"` // 일평균 평당 매출 전년비 (%)
}

// DashboardView API 가 내보내는 기간별 대시보드 전체 뷰
type DashboardView struct {
	Period Period `json:"period"`
	// Source reports how each payload was resolved: fetched / fell_back /
	// unavailable. 프런트는 unavailable 에서 로딩/빈 상태를 그린다.
	Source struct {
		Dashboard string `json:"dashboard"`
		PL        string `json:"pl"`
	} `json:"source"`

	Dashboard *DashboardPayload `json:"dashboard,omitempty"`
	PL        *PLPayload        `json:"pl,omitempty"`

	ActiveStores      []ActiveStore      `json:"active_stores"`
	Buckets           *BucketSet         `json:"buckets,omitempty"`
	StoreChanges      *StoreChanges      `json:"store_changes,omitempty"`
	ChannelEfficiency *ChannelEfficiency `json:"channel_efficiency,omitempty"`
	AreaEfficiency    *AreaEfficiency    `json:"area_efficiency,omitempty"`
}
