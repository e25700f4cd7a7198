package service

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
)

// ExportService 월간 대시보드 엑셀 내보내기
type ExportService interface {
	BuildReport(view *model.DashboardView) (*excelize.File, error)
}

type exportService struct{}

func NewExportService() ExportService {
	return &exportService{}
}

// BuildReport renders the derived dashboard view into a monthly report
// workbook: 요약 / 매장효율 / 매장분류 / 매장변동.
func (s *exportService) BuildReport(view *model.DashboardView) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.writeSummarySheet(f, view); err != nil {
		return nil, err
	}
	if err := s.writeEfficiencySheet(f, view); err != nil {
		return nil, err
	}
	if err := s.writeBucketSheet(f, view); err != nil {
		return nil, err
	}
	if err := s.writeChangesSheet(f, view); err != nil {
		return nil, err
	}

	logger.Info("Monthly report workbook built", map[string]interface{}{
		"period": view.Period.String(),
	})
	return f, nil
}

func (s *exportService) writeSummarySheet(f *excelize.File, view *model.DashboardView) error {
	const sheet = "요약"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", fmt.Sprintf("%d년 %d월 월간 실적", 2000+view.Period.Year(), view.Period.Month()))

	f.SetCellValue(sheet, "A3", "구분")
	f.SetCellValue(sheet, "B3", "금액(천원)")
	f.SetCellValue(sheet, "C3", "비율(%)")

	row := 4
	if view.Dashboard != nil && view.Dashboard.SalesSummary != nil {
		sum := view.Dashboard.SalesSummary
		writeRow(f, sheet, &row, "택매출", sum.TagSales, 0)
		writeRow(f, sheet, &row, "순매출", sum.NetSales, 0)
		writeRow(f, sheet, &row, "할인", sum.Discount, sum.DiscountRate)
	}

	if view.PL != nil && view.PL.CurrentMonth != nil && view.PL.CurrentMonth.Total != nil {
		pl := view.PL.CurrentMonth.Total
		writeRow(f, sheet, &row, "매출총이익", pl.GrossProfit, deref(pl.GrossProfitRate))
		writeRow(f, sheet, &row, "직접이익", pl.DirectProfit, deref(pl.DirectProfitRate))
		writeRow(f, sheet, &row, "판매관리비", pl.SGA, 0)
		writeRow(f, sheet, &row, "영업이익", pl.OperatingProfit, deref(pl.OperatingProfitRate))
	}
	return nil
}

func (s *exportService) writeEfficiencySheet(f *excelize.File, view *model.DashboardView) error {
	const sheet = "매장효율"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	f.SetCellValue(sheet, "A1", "채널 점효율")
	headers := []string{"채널", "당월 순매출", "매장수", "점당 매출", "전년비(%)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		f.SetCellValue(sheet, cell, h)
	}

	row := 3
	if eff := view.ChannelEfficiency; eff != nil {
		for _, entry := range []struct {
			name string
			agg  *model.ChannelAggregate
		}{{"Retail", eff.Retail}, {"Outlet", eff.Outlet}} {
			if entry.agg == nil {
				continue
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.agg.Current.NetSales)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.agg.Current.StoreCount)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.agg.Current.SalesPerStore)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), entry.agg.Yoy)
			row++
		}
	}

	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "평효율")
	row++
	if area := view.AreaEfficiency; area != nil {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "합산 면적(평)")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), area.TotalArea)
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "평당 매출")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), area.SalesPerArea)
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "일평균 평당 매출")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), area.DailySalesPerArea)
		row++
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "전년비(%)")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), area.Yoy)
	}
	return nil
}

func (s *exportService) writeBucketSheet(f *excelize.File, view *model.DashboardView) error {
	const sheet = "매장분류"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	headers := []string{"구분", "매장수", "직접이익 합", "평균 전년비(%)", "임차+인건비율(%)"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	if b := view.Buckets; b != nil {
		for _, entry := range []struct {
			name   string
			bucket *model.CategoryBucket
		}{
			{"대형흑자", b.LargeProfit},
			{"중소흑자", b.SmallMediumProfit},
			{"적자(신장)", b.LossImproving},
			{"적자(역신장)", b.LossDeteriorating},
		} {
			if entry.bucket == nil {
				continue
			}
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), entry.name)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), entry.bucket.Count)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), entry.bucket.TotalDirectProfit)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), entry.bucket.AvgYoy)
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), entry.bucket.AvgRentLaborRatio)
			row++
		}
	}

	row += 2
	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "매장별 전년비 순위")
	row++
	for _, store := range view.ActiveStores {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), store.StoreName)
		if store.Yoy.New {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "신규")
		} else {
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), store.Yoy.Value)
		}
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), store.DirectProfit)
		row++
	}
	return nil
}

func (s *exportService) writeChangesSheet(f *excelize.File, view *model.DashboardView) error {
	const sheet = "매장변동"
	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}

	if view.StoreChanges == nil {
		return nil
	}
	cols := []struct {
		header string
		names  []string
	}{
		{"신규", view.StoreChanges.NewStores},
		{"철수", view.StoreChanges.ClosedStores},
		{"리뉴얼", view.StoreChanges.RenovatedStores},
	}
	for i, col := range cols {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, col.header)
		for j, name := range col.names {
			cell, _ := excelize.CoordinatesToCellName(i+1, j+2)
			f.SetCellValue(sheet, cell, name)
		}
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row *int, label string, amount, rate float64) {
	f.SetCellValue(sheet, fmt.Sprintf("A%d", *row), label)
	f.SetCellValue(sheet, fmt.Sprintf("B%d", *row), amount)
	if rate != 0 {
		f.SetCellValue(sheet, fmt.Sprintf("C%d", *row), rate)
	}
	*row++
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
