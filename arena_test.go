package arena64

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertFillsBlockThenGrows(t *testing.T) {
	a := New[uint64]()
	defer a.Release()

	slots := make([]Slot[uint64], 0, 65)
	for i := 0; i < 65; i++ {
		slots = append(slots, a.Insert(uint64(i)))
	}

	// The first 64 values land in one block at indexes 0..63.
	first := slots[0].blk
	for i := 0; i < 64; i++ {
		assert.Same(t, first, slots[i].blk, "value %d left the first block", i)
		assert.Equal(t, i, slots[i].Index())
	}

	// The 65th triggers a second block and claims its index 0.
	require.NotSame(t, first, slots[64].blk)
	assert.Equal(t, 0, slots[64].Index())
	assert.Equal(t, 2, a.NumBlocks())

	// Releasing index 0 of the first block and inserting again reuses
	// that exact cell instead of growing.
	slots[0].Release()
	s := a.Insert(99)
	assert.Same(t, first, s.blk)
	assert.Equal(t, 0, s.Index())
	assert.Equal(t, 2, a.NumBlocks())
	assert.Equal(t, uint64(99), *s.Get())
}

func TestInsertReusesLowestReleasedIndex(t *testing.T) {
	a := New[int]()
	defer a.Release()

	slots := make([]Slot[int], 64)
	for i := range slots {
		slots[i] = a.Insert(i)
	}

	slots[30].Release()
	slots[12].Release()

	s := a.Insert(-1)
	assert.Equal(t, 12, s.Index())
	s = a.Insert(-2)
	assert.Equal(t, 30, s.Index())
	assert.Equal(t, 1, a.NumBlocks())
}

func TestGrowthKeepsEarlyCellsStable(t *testing.T) {
	a := New[uint32]()
	defer a.Release()

	early := a.Insert(12345)
	p := early.Get()

	// Force many growth events.
	for i := 0; i < 64*16; i++ {
		a.Insert(uint32(i))
	}

	require.Equal(t, 17, a.NumBlocks())
	assert.Same(t, p, early.Get(), "cell moved during growth")
	assert.Equal(t, uint32(12345), *p)
}

func TestBlocksAreTagAligned(t *testing.T) {
	a := New[byte]()
	defer a.Release()

	for i := 0; i < 64*4; i++ {
		a.Insert(byte(i))
	}

	n := 0
	for blk := a.head; blk != nil; blk = blk.loadNext() {
		assert.Zero(t, uintptr(unsafe.Pointer(blk))&(blockAlign-1),
			"block %d base address has nonzero tag bits", n)
		n++
	}
	assert.Equal(t, 4, n)
}

func TestTakeMovesValueOut(t *testing.T) {
	a := New[uint64]()
	defer a.Release()

	s := a.Insert(7)
	assert.Equal(t, uint64(7), s.Take())
	assert.Equal(t, 0, a.Len())

	// The vacated cell is claimable again.
	s = a.Insert(8)
	assert.Equal(t, 0, s.Index())
}

func TestInsertAfterReleasePanics(t *testing.T) {
	a := New[int]()
	a.Release()

	assert.PanicsWithValue(t, "arena64: use after Release()", func() { a.Insert(1) })
}

func TestPointerElementTypesRejected(t *testing.T) {
	assert.Panics(t, func() { New[*int]() })
	assert.Panics(t, func() { New[string]() })
	assert.Panics(t, func() { New[[]byte]() })
	assert.Panics(t, func() { New[struct{ s *string }]() })

	assert.NotPanics(t, func() {
		New[struct {
			a uint64
			b [16]byte
			c complex128
		}]()
	})
}

func TestLargeElements(t *testing.T) {
	type big struct {
		payload [1024]byte
		n       uint64
	}

	a := New[big]()
	defer a.Release()

	slots := make([]Slot[big], 0, 96)
	for i := 0; i < 96; i++ {
		v := big{n: uint64(i)}
		v.payload[0] = byte(i)
		slots = append(slots, a.Insert(v))
	}

	for i, s := range slots {
		got := s.Get()
		assert.Equal(t, uint64(i), got.n)
		assert.Equal(t, byte(i), got.payload[0])
	}
}

func TestZeroSizeElements(t *testing.T) {
	a := New[[0]uint64]()
	defer a.Release()

	s1 := a.Insert([0]uint64{})
	s2 := a.Insert([0]uint64{})
	assert.Equal(t, 0, s1.Index())
	assert.Equal(t, 1, s2.Index())
	assert.Equal(t, 2, a.Len())

	s1.Release()
	s2.Release()
	assert.Equal(t, 0, a.Len())
}
