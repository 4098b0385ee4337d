package arena64

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Bump64 shares Arena64's 64-cell block shape but tracks no occupancy:
// a claim is one atomic cursor increment, and cells are never reclaimed.
// It exists as a measurement baseline for the cost the bitmap
// claim/release protocol adds over unchecked bump allocation, not as a
// production allocator. Unlike Arena64 it places no restriction on T.
type Bump64[T any] struct {
	cursor int64
	_      cpu.CacheLinePad
	cells  [BlockSlots]T
}

// NewBump64 creates an empty Bump64.
func NewBump64[T any]() *Bump64[T] {
	return &Bump64[T]{}
}

// Alloc stores v in the next cell and returns its address, or nil and
// false once all 64 cells have been handed out. Cell addresses are
// stable for the life of the Bump64.
func (b *Bump64[T]) Alloc(v T) (*T, bool) {
	n := atomic.AddInt64(&b.cursor, 1)
	if n > BlockSlots {
		return nil, false
	}
	b.cells[n-1] = v
	return &b.cells[n-1], true
}

// Len returns the number of cells handed out so far.
func (b *Bump64[T]) Len() int {
	n := atomic.LoadInt64(&b.cursor)
	if n > BlockSlots {
		n = BlockSlots
	}
	return int(n)
}
