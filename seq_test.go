package blockview

import (
	"cmp"
	"errors"
	"slices"
	"testing"
)

func TestAfter(t *testing.T) {
	in := []int{1, 2, 3, 4}

	tests := []struct {
		n    int
		want []int
	}{
		{0, []int{1, 2, 3, 4}},
		{2, []int{3, 4}},
		{4, nil},
		{10, nil},
	}
	for _, tt := range tests {
		got := slices.Collect(After(slices.Values(in), tt.n))
		if !slices.Equal(got, tt.want) {
			t.Errorf("After(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}

	t.Run("stops early", func(t *testing.T) {
		var seen []int
		for v := range After(slices.Values(in), 1) {
			seen = append(seen, v)
			if v == 3 {
				break
			}
		}
		if !slices.Equal(seen, []int{2, 3}) {
			t.Errorf("expected [2 3], got %v", seen)
		}
	})
}

func TestPartitionRuns(t *testing.T) {
	eq := func(a, b int) bool { return a == b }

	tests := []struct {
		name string
		in   []int
		want []int
	}{
		{"empty", nil, []int{}},
		{"single", []int{7}, []int{1}},
		{"all equal", []int{4, 4, 4, 4, 4}, []int{5}},
		{"mixed", []int{1, 1, 2, 2, 2, 3}, []int{2, 3, 1}},
		{"alternating", []int{1, 2, 1, 2}, []int{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PartitionRuns(slices.Values(tt.in), eq)
			if !slices.Equal(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			sum := 0
			for _, n := range got {
				sum += n
			}
			if sum != len(tt.in) {
				t.Errorf("run lengths sum to %d, input has %d", sum, len(tt.in))
			}
		})
	}
}

func TestPartition(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6}

	t.Run("exact", func(t *testing.T) {
		got, err := Partition(slices.Values(in), []int{2, 3, 1})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := [][]int{{1, 2}, {3, 4, 5}, {6}}
		if !slices.EqualFunc(got, want, slices.Equal) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("leftover ignored", func(t *testing.T) {
		got, err := Partition(slices.Values(in), []int{1, 0, 2})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := [][]int{{1}, {}, {2, 3}}
		if !slices.EqualFunc(got, want, slices.Equal) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("insufficient", func(t *testing.T) {
		got, err := Partition(slices.Values(in), []int{4, 4})
		if !errors.Is(err, ErrInsufficientElements) {
			t.Fatalf("expected ErrInsufficientElements, got %v", err)
		}
		if got != nil {
			t.Errorf("expected no partial result, got %v", got)
		}
	})

	t.Run("negative", func(t *testing.T) {
		_, err := Partition(slices.Values(in), []int{1, -1})
		if !errors.Is(err, ErrNegativeSize) {
			t.Errorf("expected ErrNegativeSize, got %v", err)
		}
	})
}

func TestInsertSorted(t *testing.T) {
	t.Run("stays sorted", func(t *testing.T) {
		var list []int
		values := []int{5, 3, 8, 1, 3, 9, 0}
		for _, v := range values {
			list = InsertSorted(list, v, cmp.Compare[int])
		}
		if len(list) != len(values) {
			t.Fatalf("expected %d elements, got %d", len(values), len(list))
		}
		if !slices.IsSorted(list) {
			t.Errorf("expected sorted list, got %v", list)
		}
	})

	t.Run("maximal appends", func(t *testing.T) {
		list := InsertSorted([]int{1, 2, 3}, 10, cmp.Compare[int])
		if !slices.Equal(list, []int{1, 2, 3, 10}) {
			t.Errorf("expected [1 2 3 10], got %v", list)
		}
	})

	t.Run("minimal prepends", func(t *testing.T) {
		list := InsertSorted([]int{1, 2, 3}, -1, cmp.Compare[int])
		if !slices.Equal(list, []int{-1, 1, 2, 3}) {
			t.Errorf("expected [-1 1 2 3], got %v", list)
		}
	})

	t.Run("equal keys keep order", func(t *testing.T) {
		type item struct {
			key  int
			name string
		}
		byKey := func(a, b item) int { return cmp.Compare(a.key, b.key) }
		var list []item
		for _, it := range []item{{2, "a"}, {1, "b"}, {2, "c"}, {1, "d"}} {
			list = InsertSorted(list, it, byKey)
		}
		var names []string
		for _, it := range list {
			names = append(names, it.name)
		}
		if !slices.Equal(names, []string{"b", "d", "a", "c"}) {
			t.Errorf("expected [b d a c], got %v", names)
		}
	})
}
