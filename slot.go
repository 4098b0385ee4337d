package arena64

import "unsafe"

// Slot grants exclusive access to one occupied cell of an Arena64. At
// most one live Slot exists per cell, enforced by the block's occupancy
// bitmap, so no lock guards dereference. A Slot ends its life through
// Release, Take, or IntoRaw; using it after any of those is a contract
// violation equivalent to a use-after-free.
type Slot[T any] struct {
	blk *block[T]
	idx int
}

// Get returns a pointer to the cell's value. The pointer stays valid
// until the slot is released or taken; the arena never moves cells.
func (s Slot[T]) Get() *T {
	return &s.blk.cells[s.idx]
}

// Set overwrites the cell's value.
func (s Slot[T]) Set(v T) {
	s.blk.cells[s.idx] = v
}

// Index returns the cell's index within its block, in [0, 64).
func (s Slot[T]) Index() int {
	return s.idx
}

// Take moves the value out and returns the cell to its block for reuse.
// The slot must not be used afterwards.
func (s Slot[T]) Take() T {
	return s.blk.release(s.idx)
}

// Release discards the value and returns the cell to its block for
// reuse. Releasing the same cell twice panics.
func (s Slot[T]) Release() {
	s.blk.release(s.idx)
}

// IntoRaw consumes the slot without releasing its cell, returning a
// single pointer-width value: the block's base address with the cell
// index packed into the six low bits. The cell stays occupied until the
// value is reconstructed with FromRaw and released. The arena must stay
// reachable for as long as the raw value is held.
func (s Slot[T]) IntoRaw() unsafe.Pointer {
	return packTag(unsafe.Pointer(s.blk), uintptr(s.idx))
}

// FromRaw reconstructs the owning Slot from a value produced by IntoRaw,
// without re-running the claim protocol. Each raw value must be
// reconstructed at most once: two slots over copies of one raw value
// break the exclusivity invariant, and no validation is possible here.
func FromRaw[T any](p unsafe.Pointer) Slot[T] {
	base, idx := unpackTag(p)
	return Slot[T]{blk: (*block[T])(base), idx: int(idx)}
}
