package jma

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
)

// countingFetcher tracks how many fetches run at the same time.
type countingFetcher struct {
	mu         sync.Mutex
	inFlight   int32
	maxSeen    int32
	failCodes  map[string]bool
	perArea    map[string][]domain.WarningRecord
	fetchDelay time.Duration
}

func (f *countingFetcher) FetchWarnings(_ context.Context, areaCode string, _ domain.Language) ([]domain.WarningRecord, error) {
	current := atomic.AddInt32(&f.inFlight, 1)
	defer atomic.AddInt32(&f.inFlight, -1)

	f.mu.Lock()
	if current > f.maxSeen {
		f.maxSeen = current
	}
	f.mu.Unlock()

	if f.fetchDelay > 0 {
		time.Sleep(f.fetchDelay)
	}

	if f.failCodes[areaCode] {
		return nil, fmt.Errorf("upstream returned 503 for %s", areaCode)
	}
	return f.perArea[areaCode], nil
}

func record(areaCode, code string, severity domain.Severity) domain.WarningRecord {
	return domain.WarningRecord{
		ID:       areaCode + "_" + code,
		AreaCode: areaCode,
		Type:     domain.AlertTypeFor(severity),
		Severity: severity,
	}
}

func newTestAggregator(fetcher WarningFetcher, concurrency int) *Aggregator {
	return NewAggregator(fetcher, concurrency, observability.NewMetricsForTesting(), zap.NewNop())
}

func TestAggregateAllCoversEveryPrefecture(t *testing.T) {
	fetcher := &countingFetcher{
		perArea: map[string][]domain.WarningRecord{
			"130000": {record("130000", "03", domain.SeverityHigh)},
			"016000": {record("016000", "06", domain.SeverityHigh), record("016000", "14", domain.SeverityMedium)},
		},
	}
	agg := newTestAggregator(fetcher, 10)

	result := agg.AggregateAll(context.Background(), domain.LangJapanese)
	if len(result.Errors) != 0 {
		t.Fatalf("Errors = %v, want none", result.Errors)
	}
	if len(result.Records) != 3 {
		t.Fatalf("Records = %d, want 3", len(result.Records))
	}
}

func TestAggregateAllNeverExceedsConcurrencyCap(t *testing.T) {
	fetcher := &countingFetcher{fetchDelay: 5 * time.Millisecond}
	agg := newTestAggregator(fetcher, 10)

	agg.AggregateAll(context.Background(), domain.LangJapanese)

	if fetcher.maxSeen > 10 {
		t.Errorf("max concurrent fetches = %d, cap is 10", fetcher.maxSeen)
	}
	if fetcher.maxSeen < 2 {
		t.Errorf("max concurrent fetches = %d, expected actual parallelism", fetcher.maxSeen)
	}
}

func TestAggregateAllPartialFailure(t *testing.T) {
	failCodes := map[string]bool{
		"020000": true,
		"040000": true,
		"130000": true,
		"270000": true,
		"470000": true,
	}
	perArea := make(map[string][]domain.WarningRecord)
	for _, area := range Areas {
		if !failCodes[area.Code] {
			perArea[area.Code] = []domain.WarningRecord{record(area.Code, "10", domain.SeverityMedium)}
		}
	}
	fetcher := &countingFetcher{failCodes: failCodes, perArea: perArea}
	agg := newTestAggregator(fetcher, 10)

	result := agg.AggregateAll(context.Background(), domain.LangJapanese)

	if len(result.Records) != 42 {
		t.Errorf("Records = %d, want 42", len(result.Records))
	}
	if len(result.Errors) != 5 {
		t.Fatalf("Errors = %d, want 5", len(result.Errors))
	}
	for code := range failCodes {
		if reason, ok := result.Errors[code]; !ok || reason == "" {
			t.Errorf("missing error reason for %s", code)
		}
	}
}

func TestAggregateAllTotalFailureStillSucceeds(t *testing.T) {
	failCodes := make(map[string]bool, len(Areas))
	for _, area := range Areas {
		failCodes[area.Code] = true
	}
	agg := newTestAggregator(&countingFetcher{failCodes: failCodes}, 10)

	result := agg.AggregateAll(context.Background(), domain.LangJapanese)
	if result == nil {
		t.Fatal("aggregation must always return a result")
	}
	if len(result.Records) != 0 || len(result.Errors) != len(Areas) {
		t.Errorf("got %d records, %d errors", len(result.Records), len(result.Errors))
	}
}

func TestAggregateAllSortsBySeverity(t *testing.T) {
	fetcher := &countingFetcher{
		perArea: map[string][]domain.WarningRecord{
			"130000": {record("130000", "14", domain.SeverityMedium)},
			"270000": {record("270000", "33", domain.SeverityExtreme)},
			"016000": {record("016000", "20", domain.SeverityLow)},
		},
	}
	agg := newTestAggregator(fetcher, 10)

	result := agg.AggregateAll(context.Background(), domain.LangJapanese)
	if len(result.Records) != 3 {
		t.Fatalf("Records = %d", len(result.Records))
	}
	if result.Records[0].Severity != domain.SeverityExtreme {
		t.Errorf("first record severity = %s, want extreme", result.Records[0].Severity)
	}
	if result.Records[2].Severity != domain.SeverityLow {
		t.Errorf("last record severity = %s, want low", result.Records[2].Severity)
	}
}

func TestSpecialWarnings(t *testing.T) {
	result := &domain.AggregationResult{
		Records: []domain.WarningRecord{
			record("130000", "33", domain.SeverityExtreme),
			record("130000", "03", domain.SeverityHigh),
			record("270000", "38", domain.SeverityExtreme),
		},
	}
	got := SpecialWarnings(result)
	if len(got) != 2 {
		t.Fatalf("SpecialWarnings = %d records, want 2", len(got))
	}
	for _, r := range got {
		if r.Severity != domain.SeverityExtreme {
			t.Errorf("non-extreme record leaked: %+v", r)
		}
	}
}

func TestAreaCatalog(t *testing.T) {
	if len(Areas) != 47 {
		t.Fatalf("Areas = %d, want 47", len(Areas))
	}
	seen := make(map[string]bool)
	for _, a := range Areas {
		if seen[a.Code] {
			t.Errorf("duplicate area code %s", a.Code)
		}
		seen[a.Code] = true
	}
	if a, ok := AreaByCode("130000"); !ok || a.Name != "東京都" {
		t.Errorf("AreaByCode(130000) = %+v, %v", a, ok)
	}
	if _, ok := AreaByCode("999999"); ok {
		t.Error("unknown code should miss")
	}
}
