package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pigment/internal/logger"
	"pigment/internal/theme"
	pigmenterrors "pigment/pkg/errors"
)

// Per-variant build statuses.
const (
	StatusGenerated = "generated"
	StatusFailed    = "failed"
)

// VariantResult records the outcome of building one variant.
type VariantResult struct {
	VariantID string
	Status    string
	Message   string
	Duration  time.Duration
	Theme     *theme.ResolvedTheme
	Err       error
}

// Summary aggregates a full run. Results keep the request order
// regardless of which build finished first.
type Summary struct {
	Generated int
	Failed    int
	Duration  time.Duration
	Results   []VariantResult
}

// Runner fans variant builds out across a bounded worker pool.
type Runner struct {
	pipeline *Pipeline
	pool     chan struct{}
	log      *logger.Logger
}

// NewRunner creates a runner with the given concurrency. Values below
// one fall back to serial execution.
func NewRunner(pipeline *Pipeline, workers int, log *logger.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Runner{
		pipeline: pipeline,
		pool:     make(chan struct{}, workers),
		log:      log,
	}
}

// Run builds every requested variant. A failing variant never stops its
// siblings; when at least one fails the summary is returned together
// with an aggregate error wrapping every per-variant failure.
func (r *Runner) Run(ctx context.Context, defs []theme.Definition) (*Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	results := make([]VariantResult, len(defs))

	var wg sync.WaitGroup
	for idx, def := range defs {
		wg.Add(1)
		go func(idx int, def theme.Definition) {
			defer wg.Done()
			results[idx] = r.buildOne(ctx, def)
		}(idx, def)
	}
	wg.Wait()

	summary := &Summary{
		Duration: time.Since(start),
		Results:  results,
	}

	var errs []error
	for _, res := range results {
		if res.Status == StatusFailed {
			summary.Failed++
			errs = append(errs, fmt.Errorf("%s: %w", res.VariantID, res.Err))
			continue
		}
		summary.Generated++
	}

	if summary.Failed > 0 {
		return summary, pigmenterrors.NewGenerationError(summary.Failed, len(defs), errs)
	}
	return summary, nil
}

func (r *Runner) buildOne(ctx context.Context, def theme.Definition) VariantResult {
	start := time.Now()

	select {
	case r.pool <- struct{}{}:
		defer func() { <-r.pool }()
	case <-ctx.Done():
		return VariantResult{
			VariantID: def.ID,
			Status:    StatusFailed,
			Message:   "build cancelled",
			Duration:  time.Since(start),
			Err:       ctx.Err(),
		}
	}

	if err := ctx.Err(); err != nil {
		return VariantResult{
			VariantID: def.ID,
			Status:    StatusFailed,
			Message:   "build cancelled",
			Duration:  time.Since(start),
			Err:       err,
		}
	}

	log := r.log.WithVariant(def.ID)
	log.Debug("building variant")

	resolved, err := r.pipeline.Build(def)
	if err != nil {
		log.Error(err, "variant build failed")
		return VariantResult{
			VariantID: def.ID,
			Status:    StatusFailed,
			Message:   err.Error(),
			Duration:  time.Since(start),
			Err:       err,
		}
	}

	return VariantResult{
		VariantID: def.ID,
		Status:    StatusGenerated,
		Message:   fmt.Sprintf("%d colors, %d token rules", len(resolved.Colors), len(resolved.ScopeRules)),
		Duration:  time.Since(start),
		Theme:     resolved,
	}
}
