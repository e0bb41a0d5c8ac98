package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// Index resolves a possibly negative index into a sequence of the given
// length, counting negative indexes from the end. ok is false when the
// index falls outside the sequence.
func Index(n, length int) (i int, ok bool) {
	if n < 0 {
		n += length
	}

	return n, IsInRange(0, n, length-1)
}
