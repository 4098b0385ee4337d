package arena64

import (
	"fmt"
	"reflect"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Arena64 is an expandable slab arena handing out exclusive slots over
// 64-cell blocks. Growth is monotonic and pointer-stable: blocks are
// appended, never moved or freed, until Release drops them all at once.
// All methods are safe for concurrent use.
type Arena64[T any] struct {
	head *block[T]
	_    cpu.CacheLinePad
	bufs atomic.Pointer[bufref]
}

// bufref is a node on the arena's backing-memory list. The list exists
// only to keep block memory reachable and to drop it at Release; the
// claim path never reads it.
type bufref struct {
	buf  []byte
	next *bufref
}

// New creates an arena with an initial capacity of 64 cells. It panics
// if T contains Go pointers: cell memory is not scanned by the garbage
// collector, so pointer-bearing element types cannot be stored.
func New[T any]() *Arena64[T] {
	if t := reflect.TypeFor[T](); hasPointers(t) {
		panic(fmt.Sprintf("arena64: element type %s contains pointers", t))
	}
	a := &Arena64[T]{}
	blk, buf := newBlock[T]()
	a.retain(buf)
	a.head = blk
	return a
}

// Insert commits v into an unoccupied cell and returns its Slot, growing
// the arena in increments of 64 when every existing block is full.
func (a *Arena64[T]) Insert(v T) Slot[T] {
	blk := a.head
	if blk == nil {
		panic("arena64: use after Release()")
	}
	for {
		if idx, ok := blk.tryClaim(v); ok {
			return Slot[T]{blk: blk, idx: idx}
		}
		next := blk.loadNext()
		if next == nil {
			next = a.grow(blk)
		}
		blk = next
	}
}

// grow builds a fresh block and links it after tail. Losing the link
// race does not discard the fresh block: the loser walks forward and
// links it at the first vacant next pointer, so at most one surplus
// block per contended growth event enters the chain as future capacity.
func (a *Arena64[T]) grow(tail *block[T]) *block[T] {
	nb, buf := newBlock[T]()
	a.retain(buf)
	cur := tail
	for !cur.casNext(nb) {
		cur = cur.loadNext()
	}
	// Resume claiming right after the block that was observed full.
	return tail.loadNext()
}

// retain pushes buf onto the lock-free backing-memory list.
func (a *Arena64[T]) retain(buf []byte) {
	n := &bufref{buf: buf}
	for {
		head := a.bufs.Load()
		n.next = head
		if a.bufs.CompareAndSwap(head, n) {
			return
		}
	}
}

// Release drops every block at once and makes the arena unusable. All
// slots and raw tagged pointers must be dead before the call; any
// subsequent Insert panics.
func (a *Arena64[T]) Release() {
	a.head = nil
	a.bufs.Store(nil)
}
