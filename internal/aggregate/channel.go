package aggregate

import (
	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

// ComputeChannelEfficiency aggregates per-store sales into per-channel
// store-efficiency figures for the offline channels (Retail, Outlet).
// Online is excluded by definition of 점효율.
//
// A store counts toward a period independently of the other: net sales must
// be positive in that period. 점당 매출은 net_sales/store_count, 매장이
// 없으면 0. yoy 는 점당 매출 기준 전년비, 전년이 0이면 0.
func ComputeChannelEfficiency(records map[string]model.StoreRecord) *model.ChannelEfficiency {
	return &model.ChannelEfficiency{
		Retail: channelAggregate(records, model.ChannelRetail),
		Outlet: channelAggregate(records, model.ChannelOutlet),
	}
}

func channelAggregate(records map[string]model.StoreRecord, channel model.Channel) *model.ChannelAggregate {
	agg := &model.ChannelAggregate{}
	for _, r := range records {
		if r.Channel != channel {
			continue
		}
		if cur := r.CurrentNetSales(); cur > 0 {
			agg.Current.NetSales += cur
			agg.Current.StoreCount++
		}
		if prev := r.PreviousNetSales(); prev > 0 {
			agg.Previous.NetSales += prev
			agg.Previous.StoreCount++
		}
	}

	if agg.Current.StoreCount > 0 {
		agg.Current.SalesPerStore = agg.Current.NetSales / float64(agg.Current.StoreCount)
	}
	if agg.Previous.StoreCount > 0 {
		agg.Previous.SalesPerStore = agg.Previous.NetSales / float64(agg.Previous.StoreCount)
	}
	agg.Yoy = Ratio(agg.Current.SalesPerStore, agg.Previous.SalesPerStore)
	return agg
}
