package aggregate

import (
	"testing"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeStore(code string, directProfit, yoy float64) model.ActiveStore {
	return model.ActiveStore{
		StoreCode:    code,
		Channel:      model.ChannelRetail,
		NetSales:     1000,
		DirectProfit: directProfit,
		Yoy:          model.Yoy{Value: yoy},
	}
}

func TestBucketByProfitability_Thresholds(t *testing.T) {
	active := []model.ActiveStore{
		activeStore("L1", 150, 110),
		activeStore("L2", 100, 90), // 경계값: >= 100 은 대형흑자
		activeStore("S1", 50, 105),
		activeStore("I1", -30, 120),
		activeStore("D1", -80, 80),
	}

	buckets := BucketByProfitability(active, nil)

	require.NotNil(t, buckets.LargeProfit)
	assert.Equal(t, 2, buckets.LargeProfit.Count)
	require.NotNil(t, buckets.SmallMediumProfit)
	assert.Equal(t, 1, buckets.SmallMediumProfit.Count)
	require.NotNil(t, buckets.LossImproving)
	assert.Equal(t, "I1", buckets.LossImproving.Stores[0].StoreCode)
	require.NotNil(t, buckets.LossDeteriorating)
	assert.Equal(t, "D1", buckets.LossDeteriorating.Stores[0].StoreCode)
}

func TestBucketByProfitability_StrictPartition(t *testing.T) {
	active := []model.ActiveStore{
		activeStore("A", 250, 130),
		activeStore("B", 99.9, 100),
		activeStore("C", 0, 95), // 직접이익 0도 누락 없이 분할에 포함
		activeStore("D", -1, 100),
		activeStore("E", -500, 99.9),
		{StoreCode: "F", Channel: model.ChannelOutlet, NetSales: 10, Yoy: model.Yoy{New: true}, DirectProfit: -5},
	}

	buckets := BucketByProfitability(active, nil)

	seen := map[string]int{}
	for _, b := range []*model.CategoryBucket{
		buckets.LargeProfit, buckets.SmallMediumProfit,
		buckets.LossImproving, buckets.LossDeteriorating,
	} {
		if b == nil {
			continue
		}
		for _, s := range b.Stores {
			seen[s.StoreCode]++
		}
	}

	require.Len(t, seen, len(active))
	for code, n := range seen {
		assert.Equal(t, 1, n, "store %s must belong to exactly one bucket", code)
	}
	// 신규 매장의 적자는 신장 버킷으로 분류 (전년 0 은 신장 취급)
	assert.Contains(t, codesOf(buckets.LossImproving), "F")
}

func TestBucketByProfitability_EmptyBucketIsNil(t *testing.T) {
	active := []model.ActiveStore{activeStore("A", 300, 120)}

	buckets := BucketByProfitability(active, nil)

	assert.NotNil(t, buckets.LargeProfit)
	assert.Nil(t, buckets.SmallMediumProfit)
	assert.Nil(t, buckets.LossImproving)
	assert.Nil(t, buckets.LossDeteriorating)
}

func TestBucketByProfitability_Statistics(t *testing.T) {
	active := []model.ActiveStore{
		activeStore("A", 120, 200),
		activeStore("B", 180, 100),
	}
	costs := map[string]model.StoreDirectProfit{
		"A": {StoreCode: "A", Rent: 100, Labor: 150, Depreciation: 50, NetSales: 1000},
		"B": {StoreCode: "B", Rent: 200, Labor: 250, Depreciation: 50, NetSales: 1000},
	}

	buckets := BucketByProfitability(active, costs)

	b := buckets.LargeProfit
	require.NotNil(t, b)
	assert.Equal(t, 300.0, b.TotalDirectProfit)
	assert.Equal(t, 150.0, b.AvgYoy)
	assert.InDelta(t, 15.0, b.RentRate, 0.001)         // 300/2000*100
	assert.InDelta(t, 20.0, b.LaborRate, 0.001)        // 400/2000*100
	assert.InDelta(t, 5.0, b.DepreciationRate, 0.001)  // 100/2000*100
	assert.InDelta(t, 35.0, b.AvgRentLaborRatio, 0.001)
}

func TestBucketByProfitability_NewStoreExcludedFromAvgYoy(t *testing.T) {
	active := []model.ActiveStore{
		activeStore("A", 120, 200),
		{StoreCode: "N", Channel: model.ChannelRetail, NetSales: 500, DirectProfit: 110, Yoy: model.Yoy{New: true}},
	}

	buckets := BucketByProfitability(active, nil)

	require.NotNil(t, buckets.LargeProfit)
	assert.Equal(t, 200.0, buckets.LargeProfit.AvgYoy)
}

func codesOf(b *model.CategoryBucket) []string {
	if b == nil {
		return nil
	}
	codes := make([]string, 0, len(b.Stores))
	for _, s := range b.Stores {
		codes = append(codes, s.StoreCode)
	}
	return codes
}
