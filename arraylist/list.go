package arraylist

import (
	"iter"

	"github.com/pkg/errors"
)

const DefaultCapacity = 10

// List is a growable array addressed by position. The zero value is an empty list with no capacity.
// It is not safe to call any method concurrently from different goroutines.
type List[T any] struct {
	// s is the backing store: len(s) is the capacity, s[size:] holds zero values
	s    []T
	size int
}

// New creates an empty list with DefaultCapacity.
func New[T any]() *List[T] {
	return &List[T]{
		s: make([]T, DefaultCapacity),
	}
}

// NewWithCapacity creates an empty list able to hold capacity elements before growing.
func NewWithCapacity[T any](capacity int) (*List[T], error) {
	if capacity < 0 {
		return nil, errors.WithMessagef(ErrInvalidArgument, "arraylist: negative capacity %d", capacity)
	}
	return &List[T]{
		s: make([]T, capacity),
	}, nil
}

func (l *List[T]) Len() int {
	return l.size
}

func (l *List[T]) Cap() int {
	return len(l.s)
}

func (l *List[T]) Append(v T) {
	if l.size == len(l.s) {
		l.grow()
	}
	l.s[l.size] = v
	l.size++
}

// Insert places v at index i, shifting the elements at [i, Len()) one position to the right.
// i may be equal to Len(), in which case Insert behaves like Append.
func (l *List[T]) Insert(i int, v T) error {
	if i < 0 || i > l.size {
		return l.indexError("insert", i)
	}
	if l.size == len(l.s) {
		l.grow()
	}
	copy(l.s[i+1:l.size+1], l.s[i:l.size])
	l.s[i] = v
	l.size++
	return nil
}

func (l *List[T]) Get(i int) (v T, err error) {
	if !l.inRange(i) {
		err = l.indexError("get", i)
		return
	}
	return l.s[i], nil
}

// Set replaces the element at index i and returns the one it held before.
func (l *List[T]) Set(i int, v T) (old T, err error) {
	if !l.inRange(i) {
		err = l.indexError("set", i)
		return
	}
	old = l.s[i]
	l.s[i] = v
	return
}

// Remove deletes the element at index i, shifting the following elements one position to the left.
func (l *List[T]) Remove(i int) (v T, err error) {
	if !l.inRange(i) {
		err = l.indexError("remove", i)
		return
	}
	v = l.s[i]
	n := l.size - 1
	copy(l.s[i:n], l.s[i+1:l.size])
	var zero T
	l.s[n] = zero
	l.size = n
	return
}

// Clear removes all the elements, keeping the capacity.
func (l *List[T]) Clear() {
	clear(l.s[:l.size])
	l.size = 0
}

func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.size {
			if !yield(l.s[i]) {
				return
			}
		}
	}
}

// grow replaces the backing store with one of capacity 2*cap+1 holding the same elements.
func (l *List[T]) grow() {
	s := make([]T, 2*len(l.s)+1)
	copy(s, l.s[:l.size])
	l.s = s
}

func (l *List[T]) inRange(i int) bool {
	return i >= 0 && i < l.size
}

func (l *List[T]) indexError(op string, i int) error {
	return &IndexError{
		Op:       op,
		Index:    i,
		Size:     l.size,
		Capacity: len(l.s),
	}
}
