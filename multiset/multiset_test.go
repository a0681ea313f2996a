package multiset

import (
	"math/rand"
	"slices"
	"sort"
	"testing"
)

func TestInsertKeepsElementsSorted(t *testing.T) {
	s := New[int]()
	for _, v := range []int{52, 73, 63, 27, 44, 94, 31, 82, 70, 37, 82, 37} {
		s.Insert(v)
	}
	want := []int{27, 31, 37, 37, 44, 52, 63, 70, 73, 82, 82, 94}
	if got := s.Values(); !slices.Equal(got, want) {
		t.Errorf("unexpected order %v", got)
	}
	if s.Len() != len(want) {
		t.Errorf("expected len %d, have %d", len(want), s.Len())
	}
}

func TestInsertUnique(t *testing.T) {
	s := New[int]()
	if !s.InsertUnique(5) {
		t.Errorf("expected first insert to succeed")
	}
	if s.InsertUnique(5) {
		t.Errorf("expected duplicate insert to be rejected")
	}
	if !s.InsertUnique(3) || !s.InsertUnique(7) {
		t.Errorf("expected inserts of fresh values to succeed")
	}
	if got := s.Values(); !slices.Equal(got, []int{3, 5, 7}) {
		t.Errorf("unexpected content %v", got)
	}
}

func TestContainsAndCount(t *testing.T) {
	s := From([]int{1, 3, 3, 5, 7, 9, 9, 9})
	if !s.Contains(3) || !s.Contains(9) || !s.Contains(1) {
		t.Errorf("expected present values to be found")
	}
	if s.Contains(4) || s.Contains(0) || s.Contains(10) {
		t.Errorf("expected absent values not to be found")
	}
	for value, want := range map[int]int{1: 1, 3: 2, 5: 1, 9: 3, 4: 0, 100: 0} {
		if got := s.Count(value); got != want {
			t.Errorf("Count(%d) = %d, want %d", value, got, want)
		}
	}
}

func TestRemove(t *testing.T) {
	s := From([]int{52, 73, 63, 27, 44, 94, 31, 82, 70, 37})
	if got := s.Values(); !slices.Equal(got, []int{27, 31, 37, 44, 52, 63, 70, 73, 82, 94}) {
		t.Fatalf("unexpected initial order %v", got)
	}
	for _, v := range []int{44, 52, 63, 82} {
		if !s.Remove(v) {
			t.Errorf("expected Remove(%d) to succeed", v)
		}
	}
	if s.Remove(100) || s.Remove(44) {
		t.Errorf("expected removal of absent values to fail")
	}
	if got := s.Values(); !slices.Equal(got, []int{27, 31, 37, 70, 73, 94}) {
		t.Errorf("unexpected content %v", got)
	}
}

func TestRemoveOneDuplicateOnly(t *testing.T) {
	s := From([]int{4, 4, 4})
	if !s.Remove(4) {
		t.Fatalf("expected removal to succeed")
	}
	if got := s.Count(4); got != 2 {
		t.Errorf("expected two occurrences to remain, have %d", got)
	}
}

func TestNthAndNthBack(t *testing.T) {
	s := From([]int{1, 3, 5, 7, 9})
	for n, want := range []int{1, 3, 5, 7, 9} {
		if v, ok := s.Nth(n); !ok || v != want {
			t.Errorf("Nth(%d) = %d/%v, want %d", n, v, ok, want)
		}
	}
	for n, want := range []int{9, 7, 5, 3, 1} {
		if v, ok := s.NthBack(n); !ok || v != want {
			t.Errorf("NthBack(%d) = %d/%v, want %d", n, v, ok, want)
		}
	}
	if _, ok := s.Nth(5); ok {
		t.Errorf("expected Nth beyond length to report absence")
	}
	if _, ok := s.NthBack(5); ok {
		t.Errorf("expected NthBack beyond length to report absence")
	}
}

func TestMinMaxPop(t *testing.T) {
	s := From([]int{5, 2, 8, 2})
	if v, ok := s.Min(); !ok || v != 2 {
		t.Errorf("Min = %d/%v, want 2", v, ok)
	}
	if v, ok := s.Max(); !ok || v != 8 {
		t.Errorf("Max = %d/%v, want 8", v, ok)
	}
	if v, ok := s.PopMin(); !ok || v != 2 {
		t.Errorf("PopMin = %d/%v, want 2", v, ok)
	}
	if v, ok := s.PopMax(); !ok || v != 8 {
		t.Errorf("PopMax = %d/%v, want 8", v, ok)
	}
	if got := s.Values(); !slices.Equal(got, []int{2, 5}) {
		t.Errorf("unexpected rest %v", got)
	}
	s.Clear()
	if _, ok := s.PopMin(); ok {
		t.Errorf("expected PopMin on empty multiset to report absence")
	}
}

func TestAppendIsSortedMerge(t *testing.T) {
	a := From([]int{1, 3, 5})
	b := From([]int{2, 4, 6})
	a.Append(b)
	if got := a.Values(); !slices.Equal(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("expected sorted merge, have %v", got)
	}
	if !b.IsEmpty() {
		t.Errorf("expected appended multiset to be empty")
	}

	a = From([]int{2, 4, 6})
	b = From([]int{3, 4, 5})
	a.Append(b)
	if got := a.Values(); !slices.Equal(got, []int{2, 3, 4, 4, 5, 6}) {
		t.Errorf("expected duplicates to survive the merge, have %v", got)
	}

	a = New[int]()
	b = From([]int{7, 8})
	a.Append(b)
	if got := a.Values(); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("append into empty multiset yielded %v", got)
	}
	a.Append(New[int]())
	if got := a.Values(); !slices.Equal(got, []int{7, 8}) {
		t.Errorf("append of empty multiset changed content: %v", got)
	}
}

func TestSplitOff(t *testing.T) {
	a := From([]int{1, 2, 3, 4, 5, 6})
	b := a.SplitOff(4)
	if got := a.Values(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("unexpected left part %v", got)
	}
	if got := b.Values(); !slices.Equal(got, []int{4, 5, 6}) {
		t.Errorf("unexpected right part %v", got)
	}

	a = From([]int{2, 4, 6, 8, 10})
	b = a.SplitOff(5)
	if got := a.Values(); !slices.Equal(got, []int{2, 4}) {
		t.Errorf("unexpected left part %v", got)
	}
	if got := b.Values(); !slices.Equal(got, []int{6, 8, 10}) {
		t.Errorf("unexpected right part %v", got)
	}

	a = New[int]()
	b = a.SplitOff(10)
	if !a.IsEmpty() || !b.IsEmpty() {
		t.Errorf("splitting an empty multiset must yield two empty multisets")
	}
}

func TestRange(t *testing.T) {
	collect := func(s *Multiset[int], lo, hi int) []int {
		var out []int
		for v := range s.Range(lo, hi) {
			out = append(out, v)
		}
		return out
	}
	s := From([]int{1, 2, 3, 4, 5})
	if got := collect(s, 2, 5); !slices.Equal(got, []int{2, 3, 4}) {
		t.Errorf("Range(2,5) = %v", got)
	}
	s = From([]int{1, 3, 5})
	if got := collect(s, 2, 3); len(got) != 0 {
		t.Errorf("Range(2,3) = %v, want empty", got)
	}
	s = From([]int{2, 4, 6, 8})
	if got := collect(s, 3, 7); !slices.Equal(got, []int{4, 6}) {
		t.Errorf("Range(3,7) = %v", got)
	}
	s = From([]int{10, 20, 30})
	if got := collect(s, 40, 50); len(got) != 0 {
		t.Errorf("Range(40,50) = %v, want empty", got)
	}
	s = From([]int{5, 10, 15})
	if got := collect(s, 10, 11); !slices.Equal(got, []int{10}) {
		t.Errorf("Range(10,11) = %v", got)
	}
}

func TestCustomComparator(t *testing.T) {
	// descending order
	s := NewFunc(func(a, b int) int { return b - a })
	for _, v := range []int{3, 1, 4, 1, 5} {
		s.Insert(v)
	}
	if got := s.Values(); !slices.Equal(got, []int{5, 4, 3, 1, 1}) {
		t.Errorf("unexpected descending order %v", got)
	}
	if !s.Contains(4) || s.Contains(2) {
		t.Errorf("membership under custom comparator broken")
	}
}

func TestRandomizedAgainstSortedModel(t *testing.T) {
	r := rand.New(rand.NewSource(271828))
	s := New[int]()
	var model []int
	for step := 0; step < 2000; step++ {
		x := r.Intn(100) - 50
		switch r.Intn(4) {
		case 0:
			s.Insert(x)
			i := sort.SearchInts(model, x)
			model = append(model[:i], append([]int{x}, model[i:]...)...)
		case 1:
			i := sort.SearchInts(model, x)
			present := i < len(model) && model[i] == x
			if got := s.Contains(x); got != present {
				t.Fatalf("step %d: Contains(%d) = %v, model %v", step, x, got, present)
			}
		case 2:
			i := sort.SearchInts(model, x)
			present := i < len(model) && model[i] == x
			if got := s.Remove(x); got != present {
				t.Fatalf("step %d: Remove(%d) = %v, model %v", step, x, got, present)
			}
			if present {
				model = append(model[:i], model[i+1:]...)
			}
		case 3:
			if len(model) > 0 {
				n := r.Intn(len(model))
				if v, ok := s.Nth(n); !ok || v != model[n] {
					t.Fatalf("step %d: Nth(%d) = %d/%v, model %d", step, n, v, ok, model[n])
				}
			}
		}
		if s.Len() != len(model) {
			t.Fatalf("step %d: length mismatch tree=%d model=%d", step, s.Len(), len(model))
		}
		if got := s.Values(); !slices.Equal(got, model) {
			t.Fatalf("step %d: content mismatch %v vs %v", step, got, model)
		}
	}
}
