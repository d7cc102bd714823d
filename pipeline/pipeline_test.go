package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFromSlice_Empty(t *testing.T) {
	p := FromSlice([]int{})
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestFromSlice_Repullable(t *testing.T) {
	p := FromSlice([]int{1, 2})
	for i := 0; i < 2; i++ {
		got, err := Collect(context.Background(), p)
		if err != nil {
			t.Fatal(err)
		}
		if !intSliceEqual(got, []int{1, 2}) {
			t.Errorf("pull %d: got %v", i, got)
		}
	}
}

func TestFrom_Iterator(t *testing.T) {
	iter := &sliceIter[string]{items: []string{"a", "b"}}
	p := From[string](iter)
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"a", "b"}) {
		t.Errorf("got %v, want [a b]", got)
	}
}

func TestFrom_LatchesResumingIterator(t *testing.T) {
	src := &resumingIter{}
	iter := From[int](src).Iter(context.Background())
	ctx := context.Background()

	if _, ok, _ := iter.Next(ctx); !ok {
		t.Fatal("expected first value")
	}
	if _, ok, err := iter.Next(ctx); ok || err != nil {
		t.Fatalf("expected end of stream, got ok=%v err=%v", ok, err)
	}
	for i := 0; i < 3; i++ {
		if v, ok, err := iter.Next(ctx); ok || err != nil {
			t.Errorf("call %d after end: val=%d ok=%v err=%v", i, v, ok, err)
		}
	}
	if src.calls != 2 {
		t.Errorf("source must not be pulled after end of stream, pulled %d times", src.calls)
	}
}

func TestFromFunc_FreshIteratorPerPull(t *testing.T) {
	created := 0
	p := FromFunc(func(_ context.Context) Iterator[int] {
		created++
		return &sliceIter[int]{items: []int{created}}
	})
	first, _ := Collect(context.Background(), p)
	second, _ := Collect(context.Background(), p)
	if !intSliceEqual(first, []int{1}) || !intSliceEqual(second, []int{2}) {
		t.Errorf("expected [1] then [2], got %v then %v", first, second)
	}
}

func TestMap(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	doubled := Map(p, func(_ context.Context, n int) (int, error) {
		return n * 2, nil
	})
	got, err := Collect(context.Background(), doubled)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{2, 4, 6}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap_Error(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	fail := Map(p, func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, errors.New("bad value")
		}
		return n, nil
	})
	got, err := Collect(context.Background(), fail)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("expected [1] before error, got %v", got)
	}
}

func TestMap_StopsAfterError(t *testing.T) {
	calls := 0
	p := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		calls++
		return 0, fmt.Errorf("fail %d", n)
	})
	ctx := context.Background()
	iter := p.Iter(ctx)
	defer iter.Close()

	if _, _, err := iter.Next(ctx); err == nil {
		t.Fatal("expected error on first pull")
	}
	for i := 0; i < 3; i++ {
		if _, ok, err := iter.Next(ctx); ok || err != nil {
			t.Errorf("after error: ok=%v err=%v", ok, err)
		}
	}
	if calls != 1 {
		t.Errorf("fn must not run after the stream ended, ran %d times", calls)
	}
}

func TestMap_TypeConversion(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	strs := Map(p, func(_ context.Context, n int) (string, error) {
		return fmt.Sprintf("#%d", n), nil
	})
	got, err := Collect(context.Background(), strs)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"#1", "#2", "#3"}
	if !strSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMap_Lengths(t *testing.T) {
	p := Map(FromSlice([]string{"ab", "", "xyz"}), func(_ context.Context, s string) (int, error) {
		return len(s), nil
	})
	ctx := context.Background()
	iter := p.Iter(ctx)
	defer iter.Close()

	for _, want := range []int{2, 0, 3} {
		got, ok, err := iter.Next(ctx)
		if err != nil || !ok || got != want {
			t.Fatalf("expected %d, got val=%d ok=%v err=%v", want, got, ok, err)
		}
	}
	for i := 0; i < 2; i++ {
		if _, ok, err := iter.Next(ctx); ok || err != nil {
			t.Errorf("expected end of stream, got ok=%v err=%v", ok, err)
		}
	}
}

func TestMap_ComposedStagesPreserveCount(t *testing.T) {
	fns := []func(int) int{
		func(n int) int { return n + 1 },
		func(n int) int { return n * 3 },
		func(n int) int { return n - 7 },
		func(n int) int { return n * n },
	}
	src := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	for k := 0; k <= len(fns); k++ {
		t.Run(fmt.Sprintf("k=%d", k), func(t *testing.T) {
			p := FromSlice(src)
			for _, fn := range fns[:k] {
				fn := fn
				p = Map(p, func(_ context.Context, n int) (int, error) { return fn(n), nil })
			}
			got, err := Collect(context.Background(), p)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(src) {
				t.Fatalf("expected %d records, got %d", len(src), len(got))
			}
			for i, v := range src {
				want := v
				for _, fn := range fns[:k] {
					want = fn(want)
				}
				if got[i] != want {
					t.Errorf("record %d: expected %d, got %d", i, want, got[i])
				}
			}
		})
	}
}

func TestMap_OneUpstreamPullPerNext(t *testing.T) {
	src := &countingIter{items: []int{1, 2, 3}}
	identity := func(_ context.Context, n int) (int, error) { return n, nil }
	p := Map(Map(Map(From[int](src), identity), identity), identity)

	ctx := context.Background()
	iter := p.Iter(ctx)
	defer iter.Close()
	for i := 1; i <= 3; i++ {
		if _, ok, err := iter.Next(ctx); !ok || err != nil {
			t.Fatalf("pull %d failed: ok=%v err=%v", i, ok, err)
		}
		if src.pulls != i {
			t.Errorf("after %d pulls at the top, source pulled %d times", i, src.pulls)
		}
	}
}

func TestTap(t *testing.T) {
	var tapped []int
	p := FromSlice([]int{1, 2, 3})
	observed := Tap(p, func(_ context.Context, n int) error {
		tapped = append(tapped, n)
		return nil
	})
	got, err := Collect(context.Background(), observed)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("values should pass through unchanged, got %v", got)
	}
	if !intSliceEqual(tapped, []int{1, 2, 3}) {
		t.Errorf("tap should see all values, got %v", tapped)
	}
}

func TestTap_Error(t *testing.T) {
	p := FromSlice([]int{1, 2, 3})
	failing := Tap(p, func(_ context.Context, n int) error {
		if n == 2 {
			return errors.New("tap failed")
		}
		return nil
	})
	_, err := Collect(context.Background(), failing)
	if err == nil || !strings.Contains(err.Error(), "tap failed") {
		t.Errorf("expected tap error, got %v", err)
	}
}

func TestConcat(t *testing.T) {
	p := Concat(FromSlice([]int{1, 2}), FromSlice([]int{}), FromSlice([]int{3}))
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
}

func TestConcat_ClosesEachSourceWhenExhausted(t *testing.T) {
	a := &countingIter{items: []int{1}}
	b := &countingIter{items: []int{2}}
	p := Concat(From[int](a), From[int](b))
	got, err := Collect(context.Background(), p)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v", got)
	}
	if a.closed != 1 || b.closed != 1 {
		t.Errorf("expected each source closed once, got a=%d b=%d", a.closed, b.closed)
	}
}

func TestConcat_Error(t *testing.T) {
	bad := Map(FromSlice([]int{1}), func(_ context.Context, _ int) (int, error) {
		return 0, errors.New("broken source")
	})
	p := Concat(FromSlice([]int{0}), bad, FromSlice([]int{9}))
	got, err := Collect(context.Background(), p)
	if err == nil {
		t.Fatal("expected error")
	}
	if !intSliceEqual(got, []int{0}) {
		t.Errorf("expected [0] before error, got %v", got)
	}
}

func TestDrain_Run(t *testing.T) {
	var collected []int
	p := FromSlice([]int{1, 2, 3})
	r := Drain(p, func(_ context.Context, n int) error {
		collected = append(collected, n)
		return nil
	})
	if err := r.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(collected, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", collected)
	}
}

func TestDrain_ClosesChain(t *testing.T) {
	src := &countingIter{items: []int{1, 2, 3}}
	p := Map(From[int](src), func(_ context.Context, n int) (int, error) { return n, nil })
	stop := errors.New("stop early")
	err := Drain(p, func(_ context.Context, n int) error {
		if n == 2 {
			return stop
		}
		return nil
	}).Run(context.Background())
	if !errors.Is(err, stop) {
		t.Fatalf("expected sink error, got %v", err)
	}
	if src.closed != 1 {
		t.Errorf("expected source closed once after early stop, got %d", src.closed)
	}
}

func TestForEach(t *testing.T) {
	var sum int
	p := FromSlice([]int{1, 2, 3})
	err := ForEach(context.Background(), p, func(_ context.Context, n int) error {
		sum += n
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestIter(t *testing.T) {
	p := FromSlice([]int{1, 2})
	ctx := context.Background()
	iter := p.Iter(ctx)
	defer iter.Close()

	v1, ok, err := iter.Next(ctx)
	if err != nil || !ok || v1 != 1 {
		t.Errorf("first Next: val=%d ok=%v err=%v", v1, ok, err)
	}
	v2, ok, err := iter.Next(ctx)
	if err != nil || !ok || v2 != 2 {
		t.Errorf("second Next: val=%d ok=%v err=%v", v2, ok, err)
	}
	_, ok, err = iter.Next(ctx)
	if err != nil || ok {
		t.Errorf("third Next should be exhausted: ok=%v err=%v", ok, err)
	}
}

func TestChained_Pipeline(t *testing.T) {
	var tapped []string
	p := FromSlice([]int{1, 2, 3})
	doubled := Map(p, func(_ context.Context, n int) (int, error) { return n * 2, nil })
	labelled := Map(doubled, func(_ context.Context, n int) (string, error) { return fmt.Sprintf("v%d", n), nil })
	observed := Tap(labelled, func(_ context.Context, s string) error {
		tapped = append(tapped, s)
		return nil
	})

	got, err := Collect(context.Background(), observed)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"v2", "v4", "v6"}
	if !strSliceEqual(got, want) || !strSliceEqual(tapped, want) {
		t.Errorf("got %v (tapped %v), want %v", got, tapped, want)
	}
}

// --- helpers ---

// resumingIter yields 1, then end of stream, then would yield again if asked.
type resumingIter struct{ calls int }

func (it *resumingIter) Next(_ context.Context) (int, bool, error) {
	it.calls++
	if it.calls == 2 {
		return 0, false, nil
	}
	return it.calls, true, nil
}

func (it *resumingIter) Close() error { return nil }

type countingIter struct {
	items  []int
	pulls  int
	closed int
}

func (it *countingIter) Next(_ context.Context) (int, bool, error) {
	it.pulls++
	if len(it.items) == 0 {
		return 0, false, nil
	}
	v := it.items[0]
	it.items = it.items[1:]
	return v, true, nil
}

func (it *countingIter) Close() error {
	it.closed++
	return nil
}

func intSliceEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func strSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
