// Package quicksort sorts sequences in place through their positional interface only, so any
// sequence.Indexed can be sorted, not just arraylist.List.
//
// The partitioning is Lomuto's: the pivot is the last element of the range. The sort is not stable
// and degrades to quadratic time on ranges which are already ordered.
package quicksort

import (
	"cmp"

	"github.com/ddirect/sequence"
	"github.com/pkg/errors"
)

// Ordered sorts the inclusive range [start, end] of s in ascending order of the built-in ordering of T.
func Ordered[T cmp.Ordered](s sequence.Indexed[T], start, end int) error {
	return Func(s, cmp.Compare[T], start, end)
}

// Natural sorts the inclusive range [start, end] of s in the order defined by the Compare method of T.
func Natural[T sequence.Comparer[T]](s sequence.Indexed[T], start, end int) error {
	return Func(s, func(a, b T) int {
		return a.Compare(b)
	}, start, end)
}

// Func sorts the inclusive range [start, end] of s in the order defined by compare, which returns a
// negative number, zero or a positive number when a is less than, equal to or greater than b.
// A range with start >= end is left as is. Errors returned by s abort the sort; an index outside
// s is detected before any element is written.
func Func[T any](s sequence.Indexed[T], compare func(a, b T) int, start, end int) error {
	q := sorter[T]{s, compare}
	if err := q.sort(start, end); err != nil {
		return errors.WithMessagef(err, "quicksort [%d, %d]", start, end)
	}
	return nil
}

type sorter[T any] struct {
	s       sequence.Indexed[T]
	compare func(a, b T) int
}

func (q *sorter[T]) sort(start, end int) error {
	if start >= end {
		return nil
	}
	p, err := q.partition(start, end)
	if err != nil {
		return err
	}
	if err := q.sort(start, p-1); err != nil {
		return err
	}
	return q.sort(p+1, end)
}

// partition moves the elements of [start, end) which are less than the pivot at end before the others,
// then moves the pivot between the two groups and returns its index.
func (q *sorter[T]) partition(start, end int) (int, error) {
	pivot, err := q.s.Get(end)
	if err != nil {
		return 0, err
	}
	swap := start
	for i := start; i < end; i++ {
		v, err := q.s.Get(i)
		if err != nil {
			return 0, err
		}
		if q.compare(v, pivot) < 0 {
			if err := q.swap(i, swap); err != nil {
				return 0, err
			}
			swap++
		}
	}
	if err := q.swap(end, swap); err != nil {
		return 0, err
	}
	return swap, nil
}

func (q *sorter[T]) swap(i, j int) error {
	if i == j {
		return nil
	}
	a, err := q.s.Get(i)
	if err != nil {
		return err
	}
	b, err := q.s.Set(j, a)
	if err != nil {
		return err
	}
	_, err = q.s.Set(i, b)
	return err
}
