package app

import (
	"context"
	"sync"

	"github.com/pmhub/secctx/internal/security"
)

// Detach returns a context for work that outlives the request. It keeps the
// values of ctx (logger, span) but is never canceled with it, and carries a
// snapshot of the security context taken now.
func Detach(ctx context.Context) context.Context {
	return security.Fork(context.WithoutCancel(ctx))
}

// PartialResult holds a result or an error for partial success patterns.
type PartialResult[T any] struct {
	Value T
	Err   error
}

// ParallelPartial executes functions concurrently and collects every result,
// even on partial failure. Each function receives its own snapshot of the
// caller's security context, so writes in one do not leak into another.
func ParallelPartial[T any](
	ctx context.Context,
	fns ...func(context.Context) (T, error),
) []PartialResult[T] {
	results := make([]PartialResult[T], len(fns))

	var wg sync.WaitGroup

	for i, fn := range fns {
		taskCtx := security.Fork(ctx)

		wg.Go(func() {
			value, err := fn(taskCtx)
			results[i] = PartialResult[T]{Value: value, Err: err}
		})
	}

	wg.Wait()

	return results
}
