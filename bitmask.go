package arena64

import (
	"math/bits"
	"sync/atomic"
)

// bitmask is the 64-bit occupancy word of one block. Bit i set means
// cell i holds a live value. All access is atomic; claims of distinct
// bits never contend beyond the hardware CAS, and claims of the same bit
// are serialized by it.
type bitmask struct {
	w uint64
}

// tryClaimFirstFree atomically sets the lowest clear bit and returns its
// index. Returns false when the word was observed fully occupied. The
// lowest free index always wins, keeping occupancy dense at the low end
// of each block.
func (m *bitmask) tryClaimFirstFree() (int, bool) {
	occ := atomic.LoadUint64(&m.w)
	for {
		// Isolate the lowest clear bit.
		free := ^occ & (occ + 1)
		if free == 0 {
			return 0, false
		}
		if atomic.CompareAndSwapUint64(&m.w, occ, occ|free) {
			return bits.TrailingZeros64(free), true
		}
		occ = atomic.LoadUint64(&m.w)
	}
}

// release clears bit idx. The bit must have been set by a prior
// successful claim; clearing a vacant bit is a caller bug and panics.
func (m *bitmask) release(idx int) {
	old := atomic.AndUint64(&m.w, ^(uint64(1) << idx))
	if old&(1<<idx) == 0 {
		panic("arena64: release of a vacant slot")
	}
}

// isFull reports whether all 64 bits were set at the time of the read.
func (m *bitmask) isFull() bool {
	return atomic.LoadUint64(&m.w) == ^uint64(0)
}

// count returns the number of set bits at the time of the read.
func (m *bitmask) count() int {
	return bits.OnesCount64(atomic.LoadUint64(&m.w))
}
