package arraylist

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// IndexError is returned by positional operations called with an index outside their valid range.
// It matches ErrIndexOutOfRange with errors.Is.
type IndexError struct {
	Op       string
	Index    int
	Size     int
	Capacity int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("arraylist: %s: index %d out of range (size %d, capacity %d)", e.Op, e.Index, e.Size, e.Capacity)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
