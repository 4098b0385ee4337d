package arena64

// Occupancy introspection. All of it is advisory: none of these reads
// are synchronized against concurrent inserts and releases, so treat the
// results as diagnostics, not control flow.

// Len returns the number of occupied cells across all blocks.
func (a *Arena64[T]) Len() int {
	n := 0
	for blk := a.head; blk != nil; blk = blk.loadNext() {
		n += blk.occupancy.count()
	}
	return n
}

// NumBlocks returns the number of blocks the arena has created.
func (a *Arena64[T]) NumBlocks() int {
	n := 0
	for blk := a.head; blk != nil; blk = blk.loadNext() {
		n++
	}
	return n
}

// Cap returns the total cell capacity across all blocks.
func (a *Arena64[T]) Cap() int {
	return a.NumBlocks() * BlockSlots
}

// Utilization returns the ratio of occupied cells to total capacity
// (0.0 to 1.0). Returns 0.0 for a released arena.
func (a *Arena64[T]) Utilization() float64 {
	c := a.Cap()
	if c == 0 {
		return 0
	}
	return float64(a.Len()) / float64(c)
}

// Metrics returns a snapshot of arena statistics. The fields are read
// one after another, so under concurrent mutation they may not describe
// a single consistent instant.
func (a *Arena64[T]) Metrics() ArenaMetrics {
	live := a.Len()
	capacity := a.Cap()
	util := 0.0
	if capacity > 0 {
		util = float64(live) / float64(capacity)
	}
	return ArenaMetrics{
		Live:        live,
		Cap:         capacity,
		NumBlocks:   capacity / BlockSlots,
		Utilization: util,
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	Live        int     // Cells currently occupied
	Cap         int     // Total cell capacity
	NumBlocks   int     // Number of blocks
	Utilization float64 // Ratio of occupied to total cells (0.0-1.0)
}
