package pipe

import (
	"context"
	"sync"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Stage transforms one result into the next one. Stages built from the
// outcome combinators pass failures through without running the wrapped
// function.
type Stage[In, Out, E any] func(ctx context.Context, in outcome.Result[In, E]) outcome.Result[Out, E]

// Source emits the given values as successful results, in order, until the
// context is done.
func Source[T, E any](ctx context.Context, values ...T) <-chan outcome.Result[T, E] {
	out := make(chan outcome.Result[T, E])

	go func() {
		defer close(out)

		for _, v := range values {
			select {
			case out <- outcome.Success[T, E](v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Collect drains in into a slice, stopping early if the context is done.
func Collect[T, E any](ctx context.Context, in <-chan outcome.Result[T, E]) []outcome.Result[T, E] {
	res := make([]outcome.Result[T, E], 0)

	for {
		select {
		case r, ok := <-in:
			if !ok {
				return res
			}
			res = append(res, r)
		case <-ctx.Done():
			return res
		}
	}
}

// Run executes a same-type stage over inputCh with the given number of
// workers. The returned channel closes once all workers have stopped.
func Run[T, E any](ctx context.Context, inputCh <-chan outcome.Result[T, E],
	stage Stage[T, T, E], workers int) <-chan outcome.Result[T, E] {
	return Turnout(ctx, inputCh, stage, workers)
}

// Turnout executes a type-switching stage over inputCh with the given number
// of workers. Output order is not guaranteed when workers > 1.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Result[In, E],
	stage Stage[In, Out, E], workers int) <-chan outcome.Result[Out, E] {

	out := make(chan outcome.Result[Out, E])
	wg := &sync.WaitGroup{}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go work(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func work[In, Out, E any](ctx context.Context, inputCh <-chan outcome.Result[In, E],
	out chan<- outcome.Result[Out, E], stage Stage[In, Out, E], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case out <- stage(ctx, in):
			case <-ctx.Done():
				return
			}
		}
	}
}

// MapStage builds a stage from a pure transformation of the value.
func MapStage[In, Out, E any](fn func(ctx context.Context, v In) Out) Stage[In, Out, E] {
	return func(ctx context.Context, in outcome.Result[In, E]) outcome.Result[Out, E] {
		return outcome.Map(in, func(v In) Out { return fn(ctx, v) })
	}
}

// AndThenStage builds a stage from a result-returning function.
func AndThenStage[In, Out, E any](fn func(ctx context.Context, v In) outcome.Result[Out, E]) Stage[In, Out, E] {
	return func(ctx context.Context, in outcome.Result[In, E]) outcome.Result[Out, E] {
		return outcome.AndThen(in, func(v In) outcome.Result[Out, E] { return fn(ctx, v) })
	}
}

// TryStage builds an error-lane stage from a conventional (Out, error)
// function.
func TryStage[In, Out any](fn func(ctx context.Context, v In) (Out, error)) Stage[In, Out, error] {
	return func(ctx context.Context, in outcome.Result[In, error]) outcome.Result[Out, error] {
		return outcome.AndThen(in, func(v In) outcome.Result[Out, error] {
			return outcome.Try(fn(ctx, v))
		})
	}
}

// Finally collapses each result on in to a plain Out via the state handlers.
func Finally[In, Out, E any](ctx context.Context, in <-chan outcome.Result[In, E],
	onSuccess func(ctx context.Context, v In) Out,
	onFailure func(ctx context.Context, e E) Out) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case r, ok := <-in:
				if !ok {
					return
				}

				final := outcome.Match(r,
					func(v In) Out { return onSuccess(ctx, v) },
					func(e E) Out { return onFailure(ctx, e) })

				select {
				case out <- final:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
