package jma

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/anzen-app/bosai-go/internal/domain"
	"github.com/anzen-app/bosai-go/internal/observability"
)

// WarningFetcher fetches the active warnings for one forecast area.
type WarningFetcher interface {
	FetchWarnings(ctx context.Context, areaCode string, lang domain.Language) ([]domain.WarningRecord, error)
}

// Aggregator merges the 47 per-prefecture warning feeds into one nationwide
// view. Fetches run concurrently but never more than the configured cap at
// once; a failed prefecture lands in the errors map and the rest ship.
type Aggregator struct {
	fetcher     WarningFetcher
	concurrency int
	metrics     *observability.Metrics
	logger      *zap.Logger
}

func NewAggregator(fetcher WarningFetcher, concurrency int, metrics *observability.Metrics, logger *zap.Logger) *Aggregator {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Aggregator{
		fetcher:     fetcher,
		concurrency: concurrency,
		metrics:     metrics,
		logger:      logger,
	}
}

// AggregateAll fetches every prefecture once. One attempt per area, no
// retries; the call itself always succeeds and partial failure is expressed
// through the Errors map.
func (a *Aggregator) AggregateAll(ctx context.Context, lang domain.Language) *domain.AggregationResult {
	start := time.Now()
	result := &domain.AggregationResult{
		Records: []domain.WarningRecord{},
		Errors:  make(map[string]string),
	}

	var mu sync.Mutex
	p := pool.New().WithMaxGoroutines(a.concurrency)

	for _, area := range Areas {
		area := area
		p.Go(func() {
			records, err := a.fetcher.FetchWarnings(ctx, area.Code, lang)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				a.metrics.AreaFetches.WithLabelValues("error").Inc()
				a.logger.Warn("Prefecture warning fetch failed",
					zap.String("area_code", area.Code),
					zap.String("prefecture", area.Name),
					zap.Error(err),
				)
				result.Errors[area.Code] = err.Error()
				return
			}
			a.metrics.AreaFetches.WithLabelValues("success").Inc()
			result.Records = append(result.Records, records...)
		})
	}
	p.Wait()

	// Concurrent appends arrive in completion order; sort for a stable view,
	// most severe first.
	sort.SliceStable(result.Records, func(i, j int) bool {
		ri, rj := result.Records[i], result.Records[j]
		if ri.Severity.Rank() != rj.Severity.Rank() {
			return ri.Severity.Rank() > rj.Severity.Rank()
		}
		if ri.AreaCode != rj.AreaCode {
			return ri.AreaCode < rj.AreaCode
		}
		return ri.ID < rj.ID
	})

	a.metrics.AggregationDuration.Observe(time.Since(start).Seconds())
	a.logger.Info("Nationwide aggregation complete",
		zap.Int("records", len(result.Records)),
		zap.Int("failed_areas", len(result.Errors)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return result
}

// SpecialWarnings filters an aggregation down to emergency-level records.
func SpecialWarnings(result *domain.AggregationResult) []domain.WarningRecord {
	var out []domain.WarningRecord
	for _, r := range result.Records {
		if r.Severity == domain.SeverityExtreme {
			out = append(out, r)
		}
	}
	return out
}
