// Package batch evaluates many beams in parallel. Each beam is fully
// independent and reads only the shared immutable table service, so
// the pool needs no locking; results map back to input order by index.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/civilforge/is456beam/internal/beam"
	"github.com/civilforge/is456beam/internal/compliance"
	"github.com/civilforge/is456beam/internal/is456"
)

// Result pairs one input beam with its outcome. Exactly one of Report
// and Err is set: Err carries validation failures and cancellations,
// engineering failure lives inside the Report.
type Result struct {
	Index  int
	Name   string
	Report *compliance.Report
	Err    error
}

// Runner owns the aggregator and the worker limit.
type Runner struct {
	agg     *compliance.Aggregator
	workers int
}

// NewRunner builds a runner; workers <= 0 selects NumCPU.
func NewRunner(tables *is456.Tables, workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		agg:     compliance.NewAggregator(tables),
		workers: workers,
	}
}

// Run evaluates every beam and always returns len(beams) results in
// input order. Cancelling the context stops dispatching the remaining
// queue but never interrupts an in-flight evaluation; undispatched
// beams carry the context error.
func (r *Runner) Run(ctx context.Context, beams []beam.Beam) []Result {
	results := make([]Result, len(beams))

	var g errgroup.Group
	g.SetLimit(r.workers)
	for i := range beams {
		if err := ctx.Err(); err != nil {
			results[i] = Result{Index: i, Name: beams[i].Name, Err: err}
			continue
		}
		i := i
		g.Go(func() error {
			rep, err := r.agg.Evaluate(beams[i])
			results[i] = Result{Index: i, Name: beams[i].Name, Report: rep, Err: err}
			return nil
		})
	}
	g.Wait()
	return results
}
