package aggregate

import (
	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

// Bucket thresholds (직접이익, 백만원 단위).
const (
	largeProfitThreshold = 100
)

// BucketByProfitability partitions active stores into the four
// profitability/growth buckets in a single pass:
//
//	대형흑자:   직접이익 >= 100
//	중소흑자:   0 <= 직접이익 < 100
//	적자(신장): 직접이익 < 0, yoy >= 100
//	적자(역신장): 직접이익 < 0, yoy < 100
//
// The buckets are a strict partition of the input; a bucket with no members
// comes back nil so callers can tell "empty" from "not computed".
//
// costs 는 버킷별 비용률 계산용 매장별 손익 상세다.
func BucketByProfitability(active []model.ActiveStore, costs map[string]model.StoreDirectProfit) *model.BucketSet {
	var large, small, improving, deteriorating []model.ActiveStore
	for _, s := range active {
		switch {
		case s.DirectProfit >= largeProfitThreshold:
			large = append(large, s)
		case s.DirectProfit >= 0:
			small = append(small, s)
		case s.Yoy.AtLeast(100):
			improving = append(improving, s)
		default:
			deteriorating = append(deteriorating, s)
		}
	}

	return &model.BucketSet{
		LargeProfit:       buildBucket(large, costs),
		SmallMediumProfit: buildBucket(small, costs),
		LossImproving:     buildBucket(improving, costs),
		LossDeteriorating: buildBucket(deteriorating, costs),
	}
}

func buildBucket(stores []model.ActiveStore, costs map[string]model.StoreDirectProfit) *model.CategoryBucket {
	if len(stores) == 0 {
		return nil
	}

	bucket := &model.CategoryBucket{
		Count:  len(stores),
		Stores: stores,
	}

	var yoySum float64
	var yoyCount int
	var rent, labor, depreciation, netSales float64
	for _, s := range stores {
		bucket.TotalDirectProfit += s.DirectProfit
		// 신규 매장(전년 0)은 평균 전년비에서 제외한다.
		if !s.Yoy.New {
			yoySum += s.Yoy.Value
			yoyCount++
		}
		if c, ok := costs[s.StoreCode]; ok {
			rent += c.Rent
			labor += c.Labor
			depreciation += c.Depreciation
			if c.NetSales > 0 {
				netSales += c.NetSales
			} else {
				netSales += s.NetSales
			}
		} else {
			netSales += s.NetSales
		}
	}

	if yoyCount > 0 {
		bucket.AvgYoy = yoySum / float64(yoyCount)
	}
	bucket.RentRate = Ratio(rent, netSales)
	bucket.LaborRate = Ratio(labor, netSales)
	bucket.DepreciationRate = Ratio(depreciation, netSales)
	bucket.AvgRentLaborRatio = bucket.RentRate + bucket.LaborRate
	return bucket
}
