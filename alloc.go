package linkedmap

// Allocator is the table's memory provider. Grow is consulted before the
// table allocates a new bucket array or entry block; returning an error
// aborts the triggering operation with the table left exactly as before.
// Release reports memory given back when an old bucket array is discarded
// or the table is destroyed.
//
// The default allocator grows on the Go heap without bounds. Custom
// implementations enable arena or pool style accounting.
type Allocator interface {
	Grow(numBytes int) error
	Release(numBytes int)
}

type heapAllocator struct{}

func (heapAllocator) Grow(int) error { return nil }

func (heapAllocator) Release(int) {}

// LimitAllocator refuses growth beyond a fixed byte budget
type LimitAllocator struct {
	limit int
	used  int
}

// NewLimitAllocator ...
func NewLimitAllocator(limit int) *LimitAllocator {
	return &LimitAllocator{limit: limit}
}

// Grow returns ErrMemoryLimit when the budget would be exceeded
func (a *LimitAllocator) Grow(numBytes int) error {
	if a.used+numBytes > a.limit {
		return ErrMemoryLimit
	}
	a.used += numBytes
	return nil
}

// Release ...
func (a *LimitAllocator) Release(numBytes int) {
	a.used -= numBytes
}

// Used returns the number of bytes currently accounted for
func (a *LimitAllocator) Used() int {
	return a.used
}
