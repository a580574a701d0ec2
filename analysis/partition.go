package analysis

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/decibelcooper/pionsel/event"
)

// RunPartitioned consumes streams on up to workers goroutines, one
// accumulator per stream, and merges the partial results. The result equals
// that of Run over the same streams up to floating point summation order.
func (a *Analysis) RunPartitioned(ctx context.Context, streams []event.Stream, workers int) (*Result, error) {
	if workers < 1 {
		return nil, fmt.Errorf("analysis: invalid worker count %d", workers)
	}
	if err := validate(streams); err != nil {
		return nil, err
	}

	partials := make([]*partial, len(streams))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, s := range streams {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			acc, err := a.newAccumulator()
			if err != nil {
				return err
			}
			if err := acc.consume(s); err != nil {
				return err
			}
			p, err := acc.finish()
			if err != nil {
				return err
			}
			partials[i] = p
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	a.log.Debug("merging partitions", zap.Int("partitions", len(partials)), zap.Int("workers", workers))
	var total *partial
	for _, p := range partials {
		if total == nil {
			total = p
			continue
		}
		if err := total.merge(p); err != nil {
			return nil, err
		}
	}
	if total == nil {
		acc, err := a.newAccumulator()
		if err != nil {
			return nil, err
		}
		if total, err = acc.finish(); err != nil {
			return nil, err
		}
	}
	return a.derive(total)
}
