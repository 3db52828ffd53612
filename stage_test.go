package transduce

import "testing"

func TestMap(t *testing.T) {
	got := Collect(Map(double), []int{1, 2, 3})
	if !intSliceEqual(got, []int{2, 4, 6}) {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestMapIndexed(t *testing.T) {
	got := Collect(MapIndexed(func(i, n int) int { return i * n }), []int{5, 5, 5})
	if !intSliceEqual(got, []int{0, 5, 10}) {
		t.Errorf("got %v, want [0 5 10]", got)
	}
}

func TestFilter(t *testing.T) {
	got := Collect(Filter(even), []int{1, 2, 3, 4, 5, 6})
	want := []int{2, 4, 6}
	if !intSliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	for _, n := range got {
		if !even(n) {
			t.Errorf("output %d does not satisfy the predicate", n)
		}
	}
}

func TestRemove(t *testing.T) {
	got := Collect(Remove(even), []int{1, 2, 3, 4, 5})
	if !intSliceEqual(got, []int{1, 3, 5}) {
		t.Errorf("got %v, want [1 3 5]", got)
	}
}

func TestMapCat(t *testing.T) {
	got := Collect(MapCat(dup), []int{1, 2, 3})
	if !intSliceEqual(got, []int{1, 1, 2, 2, 3, 3}) {
		t.Errorf("got %v, want [1 1 2 2 3 3]", got)
	}
}

func TestMapCat_Empty(t *testing.T) {
	got := Collect(MapCat(func(int) []int { return nil }), []int{1, 2, 3})
	if len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestKeep(t *testing.T) {
	halve := func(n int) (int, bool) { return n / 2, even(n) }
	got := Collect(Keep(halve), []int{1, 2, 3, 4})
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestKeepIndexed(t *testing.T) {
	everyOther := func(i, n int) (int, bool) { return n, i%2 == 0 }
	got := Collect(KeepIndexed(everyOther), []int{10, 11, 12, 13, 14})
	if !intSliceEqual(got, []int{10, 12, 14}) {
		t.Errorf("got %v, want [10 12 14]", got)
	}
}

func TestReplace(t *testing.T) {
	got := Collect(Replace(map[int]int{2: 20}), []int{1, 2, 3, 2})
	if !intSliceEqual(got, []int{1, 20, 3, 20}) {
		t.Errorf("got %v, want [1 20 3 20]", got)
	}
}

func TestDedupe(t *testing.T) {
	got := Collect(Dedupe[int](), []int{1, 1, 2, 2, 2, 1, 3, 3})
	if !intSliceEqual(got, []int{1, 2, 1, 3}) {
		t.Errorf("got %v, want [1 2 1 3]", got)
	}
}

func TestTap(t *testing.T) {
	var seen []int
	got := Collect(Tap(func(n int) { seen = append(seen, n) }), []int{1, 2, 3})
	if !intSliceEqual(got, []int{1, 2, 3}) || !intSliceEqual(seen, []int{1, 2, 3}) {
		t.Errorf("got %v (saw %v), want elements unchanged and all seen", got, seen)
	}
}

func TestPartition(t *testing.T) {
	got := Collect(Partition[int](3), []int{0, 1, 2, 3, 4})
	want := [][]int{{0, 1, 2}}
	if !batchesEqual(got, want) {
		t.Errorf("got %v, want %v (trailing partial discarded)", got, want)
	}
}

func TestPartitionAll(t *testing.T) {
	got := Collect(PartitionAll[int](3), []int{0, 1, 2, 3, 4})
	want := [][]int{{0, 1, 2}, {3, 4}}
	if !batchesEqual(got, want) {
		t.Errorf("got %v, want %v (trailing partial flushed)", got, want)
	}
}

func TestPartition_Exact(t *testing.T) {
	src := []int{1, 2, 3, 4, 5, 6, 7}
	got := Collect(Partition[int](2), src)
	want := [][]int{{1, 2}, {3, 4}, {5, 6}}
	if !batchesEqual(got, want) {
		t.Errorf("Partition: got %v, want %v", got, want)
	}
	gotAll := Collect(PartitionAll[int](2), src)
	wantAll := [][]int{{1, 2}, {3, 4}, {5, 6}, {7}}
	if !batchesEqual(gotAll, wantAll) {
		t.Errorf("PartitionAll: got %v, want %v", gotAll, wantAll)
	}
}

func TestPartitionBy(t *testing.T) {
	got := Collect(PartitionBy(even), []int{1, 3, 2, 4, 5})
	want := [][]int{{1, 3}, {2, 4}, {5}}
	if !batchesEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpose(t *testing.T) {
	got := Collect(Interpose(0), []int{1, 2, 3})
	if !intSliceEqual(got, []int{1, 0, 2, 0, 3}) {
		t.Errorf("got %v, want [1 0 2 0 3]", got)
	}
}

func TestTake(t *testing.T) {
	for _, tc := range []struct {
		n    int
		want []int
	}{
		{0, nil},
		{3, []int{1, 2, 3}},
		{10, []int{1, 2, 3, 4, 5}},
	} {
		got := Collect(Take[int](tc.n), []int{1, 2, 3, 4, 5})
		if !intSliceEqual(got, tc.want) {
			t.Errorf("Take(%d): got %v, want %v", tc.n, got, tc.want)
		}
	}
}

// Composing anything downstream of Take(n) never consumes more than n source
// elements.
func TestTake_SourceConsumption(t *testing.T) {
	consumed := 0
	chain := Compose(Take[int](3), Tap(func(int) { consumed++ }))
	got := Collect(chain, []int{1, 2, 3, 4, 5, 6, 7})
	if !intSliceEqual(got, []int{1, 2, 3}) {
		t.Errorf("got %v, want [1 2 3]", got)
	}
	if consumed != 3 {
		t.Errorf("consumed %d source elements, want 3", consumed)
	}
}

func TestTake_ZeroPullsAtMostOne(t *testing.T) {
	consumed := 0
	chain := Compose(Take[int](0), Tap(func(int) { consumed++ }))
	got := Collect(chain, []int{1, 2, 3})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
	if consumed > 1 {
		t.Errorf("consumed %d source elements, want at most 1", consumed)
	}
}

func TestTakeWhile(t *testing.T) {
	got := Collect(TakeWhile(func(n int) bool { return n < 3 }), []int{1, 2, 3, 1, 2})
	if !intSliceEqual(got, []int{1, 2}) {
		t.Errorf("got %v, want [1 2]", got)
	}
}

func TestDrop(t *testing.T) {
	got := Collect(Drop[int](2), []int{1, 2, 3, 4, 5})
	if !intSliceEqual(got, []int{3, 4, 5}) {
		t.Errorf("got %v, want [3 4 5]", got)
	}
}

// The first n elements never reach a stage downstream of Drop(n).
func TestDrop_ShieldsDownstream(t *testing.T) {
	var reached []int
	chain := Compose(Tap(func(n int) { reached = append(reached, n) }), Drop[int](3))
	Collect(chain, []int{1, 2, 3, 4, 5})
	if !intSliceEqual(reached, []int{4, 5}) {
		t.Errorf("downstream saw %v, want [4 5]", reached)
	}
}

func TestDropWhile(t *testing.T) {
	got := Collect(DropWhile(func(n int) bool { return n < 3 }), []int{1, 2, 3, 1, 2})
	if !intSliceEqual(got, []int{3, 1, 2}) {
		t.Errorf("got %v, want [3 1 2]", got)
	}
}

// Pinned n = 0 behavior: a zero-size partition never fills, so Partition(0)
// emits nothing ever and PartitionAll(0) flushes the whole input as one batch
// at complete. No empty batches are forwarded.
func TestPartition_ZeroSize(t *testing.T) {
	src := []int{1, 2, 3}
	if got := Collect(Partition[int](0), src); len(got) != 0 {
		t.Errorf("Partition(0): got %v, want no batches", got)
	}
	got := Collect(PartitionAll[int](0), src)
	want := [][]int{{1, 2, 3}}
	if !batchesEqual(got, want) {
		t.Errorf("PartitionAll(0): got %v, want %v", got, want)
	}
	if got := Collect(PartitionAll[int](0), nil); len(got) != 0 {
		t.Errorf("PartitionAll(0) over empty input: got %v, want no batches", got)
	}
}

func TestNegativeCountPanics(t *testing.T) {
	for name, construct := range map[string]func(){
		"Take":         func() { Take[int](-1) },
		"Drop":         func() { Drop[int](-1) },
		"Partition":    func() { Partition[int](-1) },
		"PartitionAll": func() { PartitionAll[int](-1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s(-1) did not panic", name)
				}
			}()
			construct()
		}()
	}
}
