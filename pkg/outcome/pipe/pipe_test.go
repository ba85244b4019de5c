package pipe

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"testing"

	"github.com/ib-77/outcome/pkg/outcome"
)

func TestSourceAndCollect(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	got := Collect(ctx, Source[int, error](ctx, 1, 2, 3))

	if len(got) != 3 {
		t.Fatalf("expected 3 results, got: %d", len(got))
	}
	for i, r := range got {
		if !r.HasValue() || r.MustValue() != i+1 {
			t.Fatalf("expected success %d at position %d", i+1, i)
		}
	}
}

func TestRunSingleWorkerKeepsOrder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Run(ctx, Source[int, error](ctx, 1, 2, 3),
		MapStage[int, int, error](func(_ context.Context, v int) int { return v * 10 }), 1)

	got := Collect(ctx, out)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got: %d", len(got))
	}
	for i, r := range got {
		if r.MustValue() != (i+1)*10 {
			t.Fatalf("expected %d at position %d, got: %d", (i+1)*10, i, r.MustValue())
		}
	}
}

func TestTurnoutFanOut(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	values := []int{1, 2, 3, 4, 5, 6, 7, 8}

	out := Turnout(ctx, Source[int, error](ctx, values...),
		MapStage[int, string, error](func(_ context.Context, v int) string { return strconv.Itoa(v) }), 4)

	got := Collect(ctx, out)
	if len(got) != len(values) {
		t.Fatalf("expected %d results, got: %d", len(values), len(got))
	}

	strs := make([]string, 0, len(got))
	for _, r := range got {
		strs = append(strs, r.MustValue())
	}
	sort.Strings(strs)
	want := []string{"1", "2", "3", "4", "5", "6", "7", "8"}
	for i, s := range strs {
		if s != want[i] {
			t.Fatalf("expected %q at position %d, got: %q", want[i], i, s)
		}
	}
}

func TestFailuresPassThroughStages(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	calls := 0

	in := make(chan outcome.Result[int, error], 2)
	in <- outcome.Failure[int](errors.New("bad input"))
	in <- outcome.Success[int, error](2)
	close(in)

	out := Run(ctx, in,
		AndThenStage[int, int, error](func(_ context.Context, v int) outcome.Result[int, error] {
			calls++
			return outcome.Success[int, error](v + 1)
		}), 1)

	got := Collect(ctx, out)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got: %d", len(got))
	}
	if calls != 1 {
		t.Fatalf("stage fn must run only for successes, ran %d times", calls)
	}

	failures := 0
	for _, r := range got {
		if r.IsFailure() {
			failures++
			if r.Err().Error() != "bad input" {
				t.Fatalf("expected the original failure, got: %v", r.Err())
			}
		}
	}
	if failures != 1 {
		t.Fatalf("expected exactly one failure, got: %d", failures)
	}
}

func TestTryStage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	out := Turnout(ctx, Source[string, error](ctx, "3", "x"),
		TryStage(func(_ context.Context, s string) (int, error) {
			return strconv.Atoi(s)
		}), 1)

	got := Collect(ctx, out)
	if len(got) != 2 {
		t.Fatalf("expected 2 results, got: %d", len(got))
	}
	if !got[0].HasValue() || got[0].MustValue() != 3 {
		t.Fatalf("expected success with 3 first")
	}
	if !got[1].IsFailure() {
		t.Fatalf("expected parse failure second")
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	in := make(chan outcome.Result[int, error], 2)
	in <- outcome.Success[int, error](4)
	in <- outcome.Failure[int](errors.New("oops"))
	close(in)

	out := Finally(ctx, in,
		func(_ context.Context, v int) string { return strconv.Itoa(v) },
		func(_ context.Context, err error) string { return "invalid" })

	var got []string
	for s := range out {
		got = append(got, s)
	}

	if len(got) != 2 || got[0] != "4" || got[1] != "invalid" {
		t.Fatalf("expected [4 invalid], got: %v", got)
	}
}

func TestCancellationStopsWorkers(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := make(chan outcome.Result[int, error])
	out := Run(ctx, in,
		MapStage[int, int, error](func(_ context.Context, v int) int { return v }), 2)

	if _, ok := <-out; ok {
		t.Fatalf("expected output channel to close without results after cancellation")
	}
}
