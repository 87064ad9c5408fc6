package toxic

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// A BatchOpt changes how AnalyzeAll runs.
type BatchOpt func(opts *BatchOpts)

// BatchOpts controls batch analysis.
type BatchOpts struct {
	Workers int           // Maximum concurrent analyses; <= 0 means unlimited
	Timeout time.Duration // Overall deadline; 0 means none
}

// WithWorkers caps the number of texts analyzed concurrently.
func WithWorkers(n int) BatchOpt {
	return func(opts *BatchOpts) {
		opts.Workers = n
	}
}

// WithTimeout sets a deadline for the whole batch.
func WithTimeout(timeout time.Duration) BatchOpt {
	return func(opts *BatchOpts) {
		opts.Timeout = timeout
	}
}

// AnalyzeAll explains every text concurrently. Reports are returned in input
// order. If ctx is cancelled or the timeout expires before all texts are
// analyzed, no reports are returned.
func (a *Analyzer) AnalyzeAll(ctx context.Context, texts []string, opts ...BatchOpt) ([]Report, error) {
	base := BatchOpts{Workers: runtime.GOMAXPROCS(0)}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	if base.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, base.Timeout)
		defer cancel()
	}

	reports := make([]Report, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	if base.Workers > 0 {
		g.SetLimit(base.Workers)
	}

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			reports[i] = a.Explain(text)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch analysis aborted: %w", err)
	}
	return reports, nil
}

// Summary aggregates a set of reports.
type Summary struct {
	Count   int
	Flagged int // Reports above NoIssue
	Total   int
	Max     int
	Mean    float64
	Median  float64
	StdDev  float64 // Sample standard deviation; 0 for fewer than two reports

	Tiers      map[Tier]int
	Categories map[Category]int // Hits per category
}

// Summarize computes score statistics over reports.
func Summarize(reports []Report) Summary {
	s := Summary{
		Count:      len(reports),
		Tiers:      make(map[Tier]int),
		Categories: make(map[Category]int),
	}
	if len(reports) == 0 {
		return s
	}

	scores := make([]float64, len(reports))
	for i, r := range reports {
		scores[i] = float64(r.Score)
		s.Tiers[r.Tier]++
		if r.Flagged() {
			s.Flagged++
		}
		for _, h := range r.Hits {
			s.Categories[h.Category]++
		}
	}

	s.Total = int(floats.Sum(scores))
	s.Max = int(floats.Max(scores))
	s.Mean = stat.Mean(scores, nil)
	if len(scores) > 1 {
		s.StdDev = stat.StdDev(scores, nil)
	}

	sort.Float64s(scores)
	s.Median = stat.Quantile(0.5, stat.Empirical, scores, nil)

	return s
}
