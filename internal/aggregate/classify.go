package aggregate

import (
	"sort"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

// sortedCodes returns the record keys in store-code order. The payload
// delivers store_summary as a JSON object, so code order is the canonical
// input order for every aggregation here.
func sortedCodes(records map[string]model.StoreRecord) []string {
	codes := make([]string, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// ClassifyActiveStores filters the period's records down to active stores
// (non-Online, not closed, current net sales > 0), attaches each store's
// yoy and direct profit, and returns them sorted descending by yoy.
// Ties keep store-code order (stable sort).
//
// directProfit 는 손익 페이로드의 매장별 직접이익 조회 테이블이다. 없는
// 매장은 0으로 둔다.
func ClassifyActiveStores(records map[string]model.StoreRecord, directProfit map[string]float64) []model.ActiveStore {
	active := make([]model.ActiveStore, 0, len(records))
	for _, code := range sortedCodes(records) {
		r := records[code]
		if r.Channel == model.ChannelOnline || r.Closed || r.CurrentNetSales() <= 0 {
			continue
		}
		active = append(active, model.ActiveStore{
			StoreCode:    r.StoreCode,
			StoreName:    r.StoreName,
			Channel:      r.Channel,
			NetSales:     r.CurrentNetSales(),
			PrevNetSales: r.PreviousNetSales(),
			Yoy:          model.NewYoy(r.CurrentNetSales(), r.PreviousNetSales()),
			DirectProfit: directProfit[r.StoreCode],
		})
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Yoy.Ord() > active[j].Yoy.Ord()
	})
	return active
}
