package aggregate

import (
	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

// residualSalesFloor is the per-area monthly sales (단위 환산 후, 평당
// 백만원) below which a closed-flagged store is treated as clearance-only
// and excluded from the current-period area base. Including such a store
// would deflate the efficiency ratio for everyone else.
const residualSalesFloor = 1

// ComputeAreaEfficiency derives 평효율 (sales per pyeong) for the offline
// business.
//
// The current-period area base sums the reference area of non-Online stores
// with positive current net sales, excluding closed-flagged stores whose
// residual sales fall under residualSalesFloor. The previous-period base
// gates only on previous net sales; the closed-store exclusion does not
// apply to the prior year.
//
// plOfflineNetSales / prevOfflineNetSales 는 각각 당월, 전년 동월 오프라인
// 순매출 합계(분자)다. 면적 합이 0이면 모든 비율은 0.
func ComputeAreaEfficiency(
	records map[string]model.StoreRecord,
	areas map[string]float64,
	plOfflineNetSales float64,
	prevOfflineNetSales float64,
	period model.Period,
) *model.AreaEfficiency {
	eff := &model.AreaEfficiency{}
	for _, r := range records {
		if r.Channel == model.ChannelOnline {
			continue
		}
		area := areas[r.StoreCode]
		if area <= 0 {
			continue
		}
		if cur := r.CurrentNetSales(); cur > 0 {
			if !(r.Closed && (cur/1000)/area < residualSalesFloor) {
				eff.TotalArea += area
			}
		}
		if r.PreviousNetSales() > 0 {
			eff.PrevTotalArea += area
		}
	}

	days := float64(period.DaysInMonth())
	if eff.TotalArea > 0 {
		eff.SalesPerArea = plOfflineNetSales / eff.TotalArea
		eff.DailySalesPerArea = eff.SalesPerArea * 1000 / days
	}
	if eff.PrevTotalArea > 0 {
		eff.PrevSalesPerArea = prevOfflineNetSales / eff.PrevTotalArea
		eff.PrevDailySalesPerArea = eff.PrevSalesPerArea * 1000 / days
	}
	eff.Yoy = Ratio(eff.DailySalesPerArea, eff.PrevDailySalesPerArea)
	return eff
}
