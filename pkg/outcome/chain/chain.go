package chain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/ib-77/outcome/pkg/outcome"
)

// Chain wraps an outcome.Result with context and tracing metadata to enable
// fluent chaining. Steps short-circuit once the result is failed: no callback
// runs after the first failure.
type Chain[T, E any] struct {
	ctx       context.Context
	id        uuid.UUID
	startedAt time.Time
	result    outcome.Result[T, E]
}

// Start creates a new chain from an outcome.Result.
func Start[T, E any](ctx context.Context, result outcome.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{
		ctx:       ctx,
		id:        uuid.New(),
		startedAt: time.Now().UTC(),
		result:    result,
	}
}

// FromValue creates a new chain from a successful value.
func FromValue[T, E any](ctx context.Context, value T) Chain[T, E] {
	return Start(ctx, outcome.Success[T, E](value))
}

// Result returns the underlying outcome.Result.
func (c Chain[T, E]) Result() outcome.Result[T, E] {
	return c.result
}

// ID returns the chain's trace id, fixed at Start.
func (c Chain[T, E]) ID() uuid.UUID {
	return c.id
}

// StartedAt returns the chain's creation time (UTC).
func (c Chain[T, E]) StartedAt() time.Time {
	return c.startedAt
}

func (c Chain[T, E]) with(result outcome.Result[T, E]) Chain[T, E] {
	c.result = result
	return c
}

// Then chains a function that returns outcome.Result[T, E]. Use the
// package-level Then to change the value type.
func (c Chain[T, E]) Then(onSuccess func(context.Context, T) outcome.Result[T, E]) Chain[T, E] {
	return c.with(outcome.AndThen(c.result, func(v T) outcome.Result[T, E] {
		return onSuccess(c.ctx, v)
	}))
}

// Map transforms the successful value. Use the package-level Map to change
// the value type.
func (c Chain[T, E]) Map(onSuccess func(context.Context, T) T) Chain[T, E] {
	return c.with(outcome.Map(c.result, func(v T) T {
		return onSuccess(c.ctx, v)
	}))
}

// Ensure performs side effects without changing the result. Either handler
// may be nil.
func (c Chain[T, E]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, E)) Chain[T, E] {
	outcome.Match(c.result,
		func(v T) struct{} {
			if onSuccess != nil {
				onSuccess(c.ctx, v)
			}
			return struct{}{}
		},
		func(e E) struct{} {
			if onFailure != nil {
				onFailure(c.ctx, e)
			}
			return struct{}{}
		})
	return c
}

// Then chains a function that returns outcome.Result[U, E], switching the
// chain's value type.
func Then[T, U, E any](c Chain[T, E], onSuccess func(context.Context, T) outcome.Result[U, E]) Chain[U, E] {
	return Chain[U, E]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		result: outcome.AndThen(c.result, func(v T) outcome.Result[U, E] {
			return onSuccess(c.ctx, v)
		}),
	}
}

// ThenTry chains a function that returns (U, error), for chains on the error
// lane.
func ThenTry[T, U any](c Chain[T, error], tryOnSuccess func(context.Context, T) (U, error)) Chain[U, error] {
	return Then(c, func(ctx context.Context, v T) outcome.Result[U, error] {
		return outcome.Try(tryOnSuccess(ctx, v))
	})
}

// Map chains a pure transformation function, switching the chain's value
// type.
func Map[T, U, E any](c Chain[T, E], onSuccess func(context.Context, T) U) Chain[U, E] {
	return Chain[U, E]{
		ctx:       c.ctx,
		id:        c.id,
		startedAt: c.startedAt,
		result: outcome.Map(c.result, func(v T) U {
			return onSuccess(c.ctx, v)
		}),
	}
}

// Finally collapses the chain into a final value via the state handlers.
func Finally[T, E, R any](c Chain[T, E], onSuccess func(context.Context, T) R, onFailure func(context.Context, E) R) R {
	return outcome.Match(c.result,
		func(v T) R { return onSuccess(c.ctx, v) },
		func(e E) R { return onFailure(c.ctx, e) })
}
