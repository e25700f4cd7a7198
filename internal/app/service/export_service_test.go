package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

func TestExportService_BuildReport(t *testing.T) {
	view := &model.DashboardView{
		Period: model.Period("2511"),
		Dashboard: &model.DashboardPayload{
			SalesSummary: &model.SalesSummary{TagSales: 140000, NetSales: 100000, Discount: 40000, DiscountRate: 28.6},
		},
		ActiveStores: []model.ActiveStore{
			{StoreCode: "R001", StoreName: "강남점", Yoy: model.NewYoy(200, 100), DirectProfit: 150},
			{StoreCode: "R010", StoreName: "신촌점", Yoy: model.Yoy{New: true}, DirectProfit: 30},
		},
		Buckets: &model.BucketSet{
			LargeProfit: &model.CategoryBucket{Count: 1, TotalDirectProfit: 150, AvgYoy: 200},
		},
		StoreChanges: &model.StoreChanges{
			NewStores:    []string{"신촌점"},
			ClosedStores: []string{"목동아울렛"},
		},
		AreaEfficiency: &model.AreaEfficiency{TotalArea: 200, SalesPerArea: 500},
	}

	f, err := NewExportService().BuildReport(view)
	require.NoError(t, err)

	sheets := f.GetSheetList()
	assert.ElementsMatch(t, []string{"요약", "매장효율", "매장분류", "매장변동"}, sheets)

	title, err := f.GetCellValue("요약", "A1")
	require.NoError(t, err)
	assert.Equal(t, "2025년 11월 월간 실적", title)

	// 신규 센티널은 숫자가 아닌 "신규"로 렌더링
	found := false
	rows, err := f.GetRows("매장분류")
	require.NoError(t, err)
	for _, row := range rows {
		for i, cell := range row {
			if cell == "신촌점" && i+1 < len(row) {
				assert.Equal(t, "신규", row[i+1])
				found = true
			}
		}
	}
	assert.True(t, found)

	closed, err := f.GetCellValue("매장변동", "B2")
	require.NoError(t, err)
	assert.Equal(t, "목동아울렛", closed)
}
