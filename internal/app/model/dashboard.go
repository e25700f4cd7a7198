package model

// Channel 판매 채널
type Channel string

const (
	ChannelRetail Channel = "Retail" // 백화점/대리점 등 오프라인 정상 매장
	ChannelOutlet Channel = "Outlet" // 아울렛
	ChannelOnline Channel = "Online" // 온라인몰
)

// SalesSnapshot 한 시점의 매출 스냅샷 (단위: 천원)
type SalesSnapshot struct {
	NetSales   float64 `json:"net_sales"`   // 순매출
	GrossSales float64 `json:"gross_sales"` // 총매출 (택가)
}

// StoreRecord 기간 내 단일 매장(또는 온라인 채널) 레코드
//
// Current / Previous / PrevPrevious 는 각각 당월, 전년 동월, 전전년 동월
// 스냅샷이며 독립적으로 없을 수 있다. 없음은 매출 0으로 취급하고 오류로
// 다루지 않는다.
type StoreRecord struct {
	StoreCode    string         `json:"store_code"` // 매장 코드 (기간 내 유일)
	StoreName    string         `json:"store_name"` // 표시용 매장명
	Channel      Channel        `json:"channel"`    // 채널 구분
	Closed       bool           `json:"closed"`     // 폐점/휴점 플래그 (잔여 매출 가능)
	Current      *SalesSnapshot `json:"current,omitempty"`
	Previous     *SalesSnapshot `json:"previous,omitempty"`
	PrevPrevious *SalesSnapshot `json:"previous_previous,omitempty"`
}

// CurrentNetSales returns the current-month net sales, 0 when absent.
func (r StoreRecord) CurrentNetSales() float64 {
	if r.Current == nil {
		return 0
	}
	return r.Current.NetSales
}

// PreviousNetSales returns the year-ago net sales, 0 when absent.
func (r StoreRecord) PreviousNetSales() float64 {
	if r.Previous == nil {
		return 0
	}
	return r.Previous.NetSales
}

// SalesSummary 상단 요약 카드 데이터 (업스트림 사전 계산)
type SalesSummary struct {
	TagSales     float64 `json:"tag_sales"`     // 택매출
	NetSales     float64 `json:"net_sales"`     // 순매출
	Discount     float64 `json:"discount"`      // 할인액
	DiscountRate float64 `json:"discount_rate"` // 할인율 (%)
	Yoy          float64 `json:"yoy"`           // 전년비 (%)
}

// ChannelSalesRow 국가/채널별 매출 행
type ChannelSalesRow struct {
	Name     string  `json:"name"`      // 채널 또는 국가명
	NetSales float64 `json:"net_sales"` // 순매출
	Yoy      float64 `json:"yoy"`       // 전년비 (%)
}

// OfflineStoreEfficiency 업스트림 사전 계산 평효율 (참고용 원본)
type OfflineStoreEfficiency struct {
	TotalArea     float64 `json:"total_area"`      // 합산 면적 (평)
	SalesPerArea  float64 `json:"sales_per_area"`  // 평당 매출
	DailyPerArea  float64 `json:"daily_per_area"`  // 일평균 평당 매출
	Yoy           float64 `json:"yoy"`             // 전년비 (%)
	StoreCount    int     `json:"store_count"`     // 매장 수
	PrevStoreCount int    `json:"prev_store_count"` // 전년 매장 수
}

// SeasonSalesRow 시즌별 판매 행
type SeasonSalesRow struct {
	Season   string  `json:"season"`    // 시즌 코드 (예: "25F")
	NetSales float64 `json:"net_sales"` // 순매출
	Yoy      float64 `json:"yoy"`       // 전년비 (%)
}

// InventoryRow 재고 행 (카테고리별)
type InventoryRow struct {
	Category string  `json:"category"` // 복종/카테고리
	Amount   float64 `json:"amount"`   // 재고 금액
	Yoy      float64 `json:"yoy"`      // 전년비 (%)
}

// MonthlyChannelRow 월별 채널 매출 추이 행
type MonthlyChannelRow struct {
	Month  string  `json:"month"` // "YYMM"
	Retail float64 `json:"retail"`
	Outlet float64 `json:"outlet"`
	Online float64 `json:"online"`
	Total  float64 `json:"total"`
}

// MonthlyItemRow 월별 아이템 매출 추이 행
type MonthlyItemRow struct {
	Month string             `json:"month"` // "YYMM"
	Items map[string]float64 `json:"items"` // 아이템별 금액
}

// MonthlyInventoryRow 월별 재고 추이 행
type MonthlyInventoryRow struct {
	Month  string  `json:"month"`  // "YYMM"
	Amount float64 `json:"amount"` // 재고 금액
}

// DashboardPayload 업스트림 파이프라인이 발행하는 대시보드 문서
//
// 모든 필드는 없을 수 있으며, 없으면 0/빈 값으로 렌더링한다.
type DashboardPayload struct {
	SalesSummary           *SalesSummary           `json:"sales_summary,omitempty"`
	CountryChannelSummary  []ChannelSalesRow       `json:"country_channel_summary,omitempty"`
	OfflineStoreEfficiency *OfflineStoreEfficiency `json:"offline_store_efficiency,omitempty"`
	StoreSummary           map[string]StoreRecord  `json:"store_summary,omitempty"`
	SeasonSales            []SeasonSalesRow        `json:"season_sales,omitempty"`
	AccStockSummary        []InventoryRow          `json:"acc_stock_summary,omitempty"`
	EndingInventory        []InventoryRow          `json:"ending_inventory,omitempty"`
	AccSalesData           []MonthlyChannelRow     `json:"acc_sales_data,omitempty"`
	MonthlyChannelData     []MonthlyChannelRow     `json:"monthly_channel_data,omitempty"`
	MonthlyItemData        []MonthlyItemRow        `json:"monthly_item_data,omitempty"`
	MonthlyInventoryData   []MonthlyInventoryRow   `json:"monthly_inventory_data,omitempty"`

	// 차트용 전년 동기 시계열 (업스트림 사전 계산)
	AccSalesDataYoy         []MonthlyChannelRow   `json:"acc_sales_data_yoy,omitempty"`
	MonthlyChannelDataYoy   []MonthlyChannelRow   `json:"monthly_channel_data_yoy,omitempty"`
	MonthlyItemDataYoy      []MonthlyItemRow      `json:"monthly_item_data_yoy,omitempty"`
	MonthlyInventoryDataYoy []MonthlyInventoryRow `json:"monthly_inventory_data_yoy,omitempty"`
}
