package shared

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Join2 runs two independent reads concurrently and waits for their joint
// completion. Each read is expected to apply its own fallback boundary and
// therefore cannot fail the join; one resource's outage never blocks or
// corrupts the other's result.
func Join2[A, B any](ctx context.Context, fa func(context.Context) A, fb func(context.Context) B) (A, B) {
	var a A
	var b B

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a = fa(ctx)
		return nil
	})
	g.Go(func() error {
		b = fb(ctx)
		return nil
	})
	_ = g.Wait()

	return a, b
}
