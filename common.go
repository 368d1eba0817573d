package sequence

// Indexed is the capability needed to sort a sequence in place: bounds and positional access.
// Get and Set must fail, rather than panic, for indexes outside [0, Len()).
type Indexed[T any] interface {
	Len() int
	Get(int) (T, error)
	Set(int, T) (T, error)
}

// Comparer is implemented by types with a natural ordering. Compare returns a negative number,
// zero or a positive number when the receiver is less than, equal to or greater than the argument.
type Comparer[T any] interface {
	Compare(T) int
}
