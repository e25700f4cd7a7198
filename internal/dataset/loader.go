// Package dataset fetches the period payload documents published by the
// upstream pipeline. Each document is tried once for the requested period
// and falls back once to the generic (period-less) file; a failure after
// fallback resolves to a nil payload, never an error surfaced to clients.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jwseo/maechuldash-backend/internal/app/model"
	"github.com/jwseo/maechuldash-backend/pkg/logger"
)

// Outcome reports how a payload was resolved.
type Outcome string

const (
	OutcomeFetched     Outcome = "fetched"     // 기간별 파일 성공
	OutcomeFellBack    Outcome = "fell_back"   // 기본 파일로 폴백
	OutcomeUnavailable Outcome = "unavailable" // 둘 다 실패, 데이터 없음
)

// Source fetches one payload document by file name.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Loader resolves the dashboard and P&L documents for a period.
type Loader struct {
	source Source
	prefix string
}

func NewLoader(source Source, prefix string) *Loader {
	return &Loader{source: source, prefix: prefix}
}

// LoadDashboard fetches and decodes the dashboard document for the period.
func (l *Loader) LoadDashboard(ctx context.Context, period model.Period) (*model.DashboardPayload, Outcome) {
	var payload model.DashboardPayload
	outcome := l.loadDocument(ctx, "dashboard", period, &payload)
	if outcome == OutcomeUnavailable {
		return nil, outcome
	}
	return &payload, outcome
}

// LoadPL fetches and decodes the P&L document for the period.
func (l *Loader) LoadPL(ctx context.Context, period model.Period) (*model.PLPayload, Outcome) {
	var payload model.PLPayload
	outcome := l.loadDocument(ctx, "pl", period, &payload)
	if outcome == OutcomeUnavailable {
		return nil, outcome
	}
	return &payload, outcome
}

// DocumentNames returns the period-specific file names, used by the
// scheduler to evict caches before a forced refresh.
func (l *Loader) DocumentNames(period model.Period) []string {
	return []string{
		fmt.Sprintf("%s-dashboard-data-%s.json", l.prefix, period),
		fmt.Sprintf("%s-pl-data-%s.json", l.prefix, period),
	}
}

func (l *Loader) loadDocument(ctx context.Context, kind string, period model.Period, out interface{}) Outcome {
	primary := fmt.Sprintf("%s-%s-data-%s.json", l.prefix, kind, period)
	if err := l.fetchInto(ctx, primary, out); err == nil {
		return OutcomeFetched
	} else {
		logger.Warn("Primary payload fetch failed, trying fallback", map[string]interface{}{
			"name":  primary,
			"error": err.Error(),
		})
	}

	fallback := fmt.Sprintf("%s-%s-data.json", l.prefix, kind)
	if err := l.fetchInto(ctx, fallback, out); err == nil {
		return OutcomeFellBack
	} else {
		logger.Warn("Fallback payload fetch failed, dataset unavailable", map[string]interface{}{
			"name":  fallback,
			"error": err.Error(),
		})
	}
	return OutcomeUnavailable
}

func (l *Loader) fetchInto(ctx context.Context, name string, out interface{}) error {
	data, err := l.source.Fetch(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("invalid payload JSON in %s: %w", name, err)
	}
	return nil
}

// HTTPSource fetches payload documents from a static file host.
type HTTPSource struct {
	client  *http.Client
	baseURL string
}

func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := fmt.Sprintf("%s/%s", s.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, url)
	}
	return io.ReadAll(resp.Body)
}
