package blockview

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	// ErrInsufficientElements is returned by Partition when the sizes ask
	// for more elements than the sequence holds.
	ErrInsufficientElements = errors.New("insufficient elements")
	// ErrNegativeSize is returned by Partition for a negative group size.
	ErrNegativeSize = errors.New("negative group size")
)

// After yields the elements of seq that follow the first n.
// If n exceeds the length of seq nothing is yielded.
func After[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		skip := n
		for v := range seq {
			if skip > 0 {
				skip--
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// PartitionRuns returns the lengths of the maximal runs of seq whose
// elements are equal to the first element of their run under eq.
// The lengths sum to the length of seq.
func PartitionRuns[T any](seq iter.Seq[T], eq func(a, b T) bool) []int {
	runs := []int{}
	var first T
	n := 0
	for v := range seq {
		if n > 0 && eq(first, v) {
			n++
			continue
		}
		if n > 0 {
			runs = append(runs, n)
		}
		first, n = v, 1
	}
	if n > 0 {
		runs = append(runs, n)
	}
	return runs
}

// Partition consumes seq in order into groups of the given sizes.
// Elements left over after the last group are ignored.
func Partition[T any](seq iter.Seq[T], sizes []int) ([][]T, error) {
	next, stop := iter.Pull(seq)
	defer stop()

	groups := make([][]T, 0, len(sizes))
	for gi, size := range sizes {
		if size < 0 {
			return nil, fmt.Errorf("group %d: %w", gi, ErrNegativeSize)
		}
		group := make([]T, 0, size)
		for range size {
			v, ok := next()
			if !ok {
				return nil, fmt.Errorf("group %d wants %d, got %d: %w", gi, size, len(group), ErrInsufficientElements)
			}
			group = append(group, v)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// InsertSorted inserts v into the ordered list before the first element e
// for which cmp(v, e) < 0, or appends it when there is none. Equal
// elements keep their insertion order.
func InsertSorted[T any](list []T, v T, cmp func(a, b T) int) []T {
	for i, e := range list {
		if cmp(v, e) < 0 {
			return slices.Insert(list, i, v)
		}
	}
	return append(list, v)
}
