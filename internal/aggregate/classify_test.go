package aggregate

import (
	"testing"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(net float64) *model.SalesSnapshot {
	return &model.SalesSnapshot{NetSales: net, GrossSales: net * 1.4}
}

func TestClassifyActiveStores_FiltersInactive(t *testing.T) {
	records := map[string]model.StoreRecord{
		"R001": {StoreCode: "R001", Channel: model.ChannelRetail, Current: snapshot(1000), Previous: snapshot(500)},
		"R002": {StoreCode: "R002", Channel: model.ChannelRetail, Closed: true, Current: snapshot(800), Previous: snapshot(800)},
		"O001": {StoreCode: "O001", Channel: model.ChannelOnline, Current: snapshot(5000), Previous: snapshot(4000)},
		"R003": {StoreCode: "R003", Channel: model.ChannelRetail, Previous: snapshot(700)},
		"R004": {StoreCode: "R004", Channel: model.ChannelRetail, Current: snapshot(0), Previous: snapshot(300)},
	}

	active := ClassifyActiveStores(records, nil)

	require.Len(t, active, 1)
	assert.Equal(t, "R001", active[0].StoreCode)
	for _, s := range active {
		assert.NotEqual(t, model.ChannelOnline, s.Channel)
		assert.Greater(t, s.NetSales, 0.0)
	}
}

func TestClassifyActiveStores_YoyAndDirectProfit(t *testing.T) {
	records := map[string]model.StoreRecord{
		"A": {StoreCode: "A", Channel: model.ChannelRetail, Current: snapshot(1000), Previous: snapshot(500)},
	}
	profit := map[string]float64{"A": 120}

	active := ClassifyActiveStores(records, profit)

	require.Len(t, active, 1)
	assert.Equal(t, 200.0, active[0].Yoy.Value)
	assert.False(t, active[0].Yoy.New)
	assert.Equal(t, 120.0, active[0].DirectProfit)
}

func TestClassifyActiveStores_SortedByYoyDescending(t *testing.T) {
	records := map[string]model.StoreRecord{
		"A": {StoreCode: "A", Channel: model.ChannelRetail, Current: snapshot(100), Previous: snapshot(100)}, // 100%
		"B": {StoreCode: "B", Channel: model.ChannelOutlet, Current: snapshot(300), Previous: snapshot(100)}, // 300%
		"C": {StoreCode: "C", Channel: model.ChannelRetail, Current: snapshot(50), Previous: snapshot(100)},  // 50%
	}

	active := ClassifyActiveStores(records, nil)

	require.Len(t, active, 3)
	assert.Equal(t, "B", active[0].StoreCode)
	assert.Equal(t, "A", active[1].StoreCode)
	assert.Equal(t, "C", active[2].StoreCode)
}

func TestClassifyActiveStores_TiesKeepCodeOrder(t *testing.T) {
	records := map[string]model.StoreRecord{
		"Z9": {StoreCode: "Z9", Channel: model.ChannelRetail, Current: snapshot(200), Previous: snapshot(100)},
		"A1": {StoreCode: "A1", Channel: model.ChannelRetail, Current: snapshot(400), Previous: snapshot(200)},
		"M5": {StoreCode: "M5", Channel: model.ChannelRetail, Current: snapshot(600), Previous: snapshot(300)},
	}

	active := ClassifyActiveStores(records, nil)

	// all 200% - stable sort keeps store-code order
	require.Len(t, active, 3)
	assert.Equal(t, "A1", active[0].StoreCode)
	assert.Equal(t, "M5", active[1].StoreCode)
	assert.Equal(t, "Z9", active[2].StoreCode)
}

func TestClassifyActiveStores_NewStoreSentinelSortsFirst(t *testing.T) {
	records := map[string]model.StoreRecord{
		"OLD": {StoreCode: "OLD", Channel: model.ChannelRetail, Current: snapshot(900), Previous: snapshot(100)}, // 900%
		"NEW": {StoreCode: "NEW", Channel: model.ChannelRetail, Current: snapshot(10)},                           // 신규
	}

	active := ClassifyActiveStores(records, nil)

	require.Len(t, active, 2)
	assert.Equal(t, "NEW", active[0].StoreCode)
	assert.True(t, active[0].Yoy.New)
	assert.NotEqual(t, 0.0, active[0].Yoy.Ord())
}
