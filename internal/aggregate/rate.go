// Package aggregate holds the pure derivation core of the dashboard: store
// classification, profitability bucketing, channel and per-area efficiency,
// and the uniform rate-fallback rule. Every function here is side-effect
// free, never panics, and degrades missing data to zero instead of erroring.
package aggregate

import (
	"github.com/jwseo/maechuldash-backend/internal/app/model"
)

// ResolveRate is the single fallback rule behind every *_rate derivation.
// An explicit upstream value always wins; otherwise the rate is recomputed
// as numerator/denominator*100, or 0 when the denominator is not positive.
//
// 당월과 누계가 서로 다른 공식으로 갈라지지 않도록 모든 비율 계산은 반드시
// 이 함수를 거친다.
func ResolveRate(explicit *float64, numerator, denominator float64) float64 {
	if explicit != nil {
		return *explicit
	}
	if denominator > 0 {
		return numerator / denominator * 100
	}
	return 0
}

// Ratio computes current/previous*100 with a plain-zero fallback, for
// aggregate-level ratios where the "new" sentinel does not apply.
func Ratio(current, previous float64) float64 {
	if previous > 0 {
		return current / previous * 100
	}
	return 0
}

// NormalizePL returns a copy of the snapshot with discount and every rate
// field filled in. nil in, nil out.
func NormalizePL(s *model.PLSnapshot) *model.PLSnapshot {
	if s == nil {
		return nil
	}
	out := *s

	discount := s.TagSales - s.NetSales
	if s.Discount != nil {
		discount = *s.Discount
	} else {
		out.Discount = &discount
	}

	discountRate := ResolveRate(s.DiscountRate, discount, s.TagSales)
	grossRate := ResolveRate(s.GrossProfitRate, s.GrossProfit, s.NetSales)
	directRate := ResolveRate(s.DirectProfitRate, s.DirectProfit, s.NetSales)
	operatingRate := ResolveRate(s.OperatingProfitRate, s.OperatingProfit, s.NetSales)

	out.DiscountRate = &discountRate
	out.GrossProfitRate = &grossRate
	out.DirectProfitRate = &directRate
	out.OperatingProfitRate = &operatingRate
	return &out
}

// NormalizeBreakdown normalizes every present snapshot in a breakdown.
func NormalizeBreakdown(b *model.PLBreakdown) *model.PLBreakdown {
	if b == nil {
		return nil
	}
	return &model.PLBreakdown{
		Offline: NormalizePL(b.Offline),
		Online:  NormalizePL(b.Online),
		Total:   NormalizePL(b.Total),
	}
}

// NormalizePLPayload normalizes all breakdowns of the P&L document.
func NormalizePLPayload(p *model.PLPayload) *model.PLPayload {
	if p == nil {
		return nil
	}
	out := *p
	out.CurrentMonth = NormalizeBreakdown(p.CurrentMonth)
	out.PrevMonth = NormalizeBreakdown(p.PrevMonth)
	out.Cumulative = NormalizeBreakdown(p.Cumulative)
	out.Discovery = NormalizeBreakdown(p.Discovery)
	return &out
}
