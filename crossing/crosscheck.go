package crossing

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/icecross/grid"
)

const methodCrossCheck = "CrossCheck"

// Result pairs the outputs of both counters for one grid.
type Result struct {
	Exhaustive uint64
	DynProg    uint64
}

// CrossCheck runs Exhaustive and DynProg concurrently on g and returns the
// agreed count. Both goroutines only read g.
//
// ctx is checked before the counters start; neither counter is interruptible
// once running, so a deadline only stops work that has not begun.
//
// Errors: ErrEmptyGrid, ErrTooManySteps, ErrCountOverflow from the counters,
// ctx.Err(), or ErrMismatch wrapped with both counts.
func CrossCheck(ctx context.Context, g *grid.Grid) (uint64, error) {
	res, err := Both(ctx, g)
	if err != nil {
		return 0, err
	}
	if res.Exhaustive != res.DynProg {
		return 0, fmt.Errorf("%s: exhaustive=%d dynprog=%d: %w", methodCrossCheck, res.Exhaustive, res.DynProg, ErrMismatch)
	}
	return res.DynProg, nil
}

// Both runs the two counters concurrently and returns both results without
// comparing them.
func Both(ctx context.Context, g *grid.Grid) (Result, error) {
	var res Result
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := Exhaustive(g)
		res.Exhaustive = n
		return err
	})
	eg.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := DynProg(g)
		res.DynProg = n
		return err
	})
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}
