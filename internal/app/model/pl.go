package model

// PLSnapshot 손익 스냅샷 (당월/전월/누계 × 오프라인/온라인/합계)
//
// 절대액 필드는 단위 천원. 모든 *Rate 필드와 Discount 는 업스트림이 생략할
// 수 있으며, 생략 시 동일한 공식으로 로컬 재계산한다 (aggregate.NormalizePL).
// 포인터 필드의 nil 은 "미제공"을 뜻한다.
type PLSnapshot struct {
	TagSales float64 `json:"tag_sales"` // 택매출
	NetSales float64 `json:"net_sales"` // 순매출

	Discount     *float64 `json:"discount,omitempty"`      // 할인액 (= tag_sales - net_sales)
	DiscountRate *float64 `json:"discount_rate,omitempty"` // 할인율 (= discount / tag_sales * 100)

	Cogs            float64  `json:"cogs"`                       // 매출원가
	GrossProfit     float64  `json:"gross_profit"`               // 매출총이익
	GrossProfitRate *float64 `json:"gross_profit_rate,omitempty"` // 매출총이익률 (%)

	DirectCost       float64  `json:"direct_cost"`                  // 직접비
	DirectProfit     float64  `json:"direct_profit"`                // 직접이익
	DirectProfitRate *float64 `json:"direct_profit_rate,omitempty"` // 직접이익률 (%)

	SGA                 float64  `json:"sg_a"`                            // 판매관리비
	OperatingProfit     float64  `json:"operating_profit"`                // 영업이익
	OperatingProfitRate *float64 `json:"operating_profit_rate,omitempty"` // 영업이익률 (%)
}

// PLBreakdown 오프라인/온라인/합계 구분 손익
type PLBreakdown struct {
	Offline *PLSnapshot `json:"offline,omitempty"`
	Online  *PLSnapshot `json:"online,omitempty"`
	Total   *PLSnapshot `json:"total,omitempty"`
}

// StoreDirectProfit 매장별 직접이익 상세
type StoreDirectProfit struct {
	StoreCode    string  `json:"store_code"`
	DirectProfit float64 `json:"direct_profit"` // 직접이익 (백만원)
	Rent         float64 `json:"rent"`          // 임차료
	Labor        float64 `json:"labor"`         // 인건비
	Depreciation float64 `json:"depreciation"`  // 감가상각비
	NetSales     float64 `json:"net_sales"`     // 순매출
}

// ChannelDirectProfit 채널/매장별 직접이익 상세 묶음
type ChannelDirectProfit struct {
	Stores   []StoreDirectProfit `json:"stores,omitempty"`
	Channels map[string]float64  `json:"channels,omitempty"` // 채널별 직접이익 합
}

// PLPayload 업스트림 손익 문서
type PLPayload struct {
	CurrentMonth        *PLBreakdown         `json:"current_month,omitempty"`
	PrevMonth           *PLBreakdown         `json:"prev_month,omitempty"`
	Cumulative          *PLBreakdown         `json:"cumulative,omitempty"`
	ChannelDirectProfit *ChannelDirectProfit `json:"channel_direct_profit,omitempty"`
	// Discovery 별도 관리 브랜드 서브 원장 (있을 때만)
	Discovery *PLBreakdown `json:"discovery,omitempty"`
}

// OfflineNetSales returns current-month offline net sales, 0 when absent.
func (p *PLPayload) OfflineNetSales() float64 {
	if p == nil || p.CurrentMonth == nil || p.CurrentMonth.Offline == nil {
		return 0
	}
	return p.CurrentMonth.Offline.NetSales
}

// DirectProfitByStore builds the store_code → direct profit lookup used by
// the store classification. Missing detail ⇒ empty map.
func (p *PLPayload) DirectProfitByStore() map[string]float64 {
	out := make(map[string]float64)
	if p == nil || p.ChannelDirectProfit == nil {
		return out
	}
	for _, s := range p.ChannelDirectProfit.Stores {
		out[s.StoreCode] = s.DirectProfit
	}
	return out
}

// CostsByStore builds the store_code → cost detail lookup for bucket rates.
func (p *PLPayload) CostsByStore() map[string]StoreDirectProfit {
	out := make(map[string]StoreDirectProfit)
	if p == nil || p.ChannelDirectProfit == nil {
		return out
	}
	for _, s := range p.ChannelDirectProfit.Stores {
		out[s.StoreCode] = s
	}
	return out
}
