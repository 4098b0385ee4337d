package arena64

import (
	"reflect"
	"sync/atomic"
	"unsafe"
)

const (
	// BlockSlots is the fixed number of cells per block.
	BlockSlots = 64

	// blockAlign is the base-address alignment of every block. Six zero
	// low bits in the base address hold the cell index of a tagged
	// pointer, so it must cover indexes 0-63.
	blockAlign = 64

	idxMask = uintptr(BlockSlots - 1)
)

// block is one slab: a single cache line of header state followed by the
// cell array. Blocks are carved blockAlign-aligned out of plain byte
// slices (see newBlock), which the collector does not scan; the arena
// retains the backing slices and element types are restricted to
// pointer-free layouts. A block's address never changes for the life of
// the arena.
type block[T any] struct {
	occupancy bitmask
	next      unsafe.Pointer // *block[T], atomic
	_         [blockAlign - 16]byte
	cells     [BlockSlots]T
}

// newBlock carves an aligned, zeroed block out of a fresh byte slice and
// returns it along with the slice that keeps it alive. Failure to obtain
// memory is fatal at the runtime level, never retried.
func newBlock[T any]() (*block[T], []byte) {
	buf := make([]byte, unsafe.Sizeof(block[T]{})+blockAlign-1)
	var off uintptr
	if rem := uintptr(unsafe.Pointer(&buf[0])) & (blockAlign - 1); rem != 0 {
		off = blockAlign - rem
	}
	return (*block[T])(unsafe.Pointer(&buf[off])), buf
}

// tryClaim claims the lowest free cell and writes v into it. The bit is
// set before the write; nothing else can touch the cell in between
// because claiming grants exclusive ownership of the index.
func (b *block[T]) tryClaim(v T) (int, bool) {
	idx, ok := b.occupancy.tryClaimFirstFree()
	if !ok {
		return 0, false
	}
	b.cells[idx] = v
	return idx, true
}

// release moves the cell's value out and clears its occupancy bit, in
// that order: the cell must be fully vacated before the bit clear makes
// it claimable again.
func (b *block[T]) release(idx int) T {
	v := b.cells[idx]
	var zero T
	b.cells[idx] = zero
	b.occupancy.release(idx)
	return v
}

func (b *block[T]) loadNext() *block[T] {
	return (*block[T])(atomic.LoadPointer(&b.next))
}

// casNext links nb as this block's successor if it has none yet.
func (b *block[T]) casNext(nb *block[T]) bool {
	return atomic.CompareAndSwapPointer(&b.next, nil, unsafe.Pointer(nb))
}

// hasPointers reports whether values of t embed Go pointers. Cell memory
// is invisible to the garbage collector, so pointer-bearing element
// types cannot be stored safely.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
