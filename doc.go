// Package arena64 implements a concurrent slab arena that hands out
// exclusive slots over blocks of 64 fixed-size cells.
//
// # Overview
//
// Allocating many same-sized objects one heap box at a time is slow and
// scatters them across memory. arena64 amortizes that cost: values are
// committed into 64-cell blocks, each guarded by a single 64-bit atomic
// occupancy bitmap, and each insertion returns a Slot granting exclusive
// access to one cell. Releasing a Slot returns its cell to the block for
// reuse. This is particularly useful for:
//
//   - Intrusive data structures holding many small, same-typed nodes
//   - Tagged unions and FFI handles that need a single-word representation
//   - Reducing garbage collection pressure in allocation-heavy paths
//   - Pointer-heavy structures where a handle must be one machine word
//
// # Basic Usage
//
//	a := arena64.New[uint64]()
//	defer a.Release() // Clean up when done
//
//	slot := a.Insert(42)
//	v := *slot.Get()   // Dereference
//	slot.Set(v + 1)    // Exclusive write access
//	slot.Release()     // Return the cell for reuse
//
// # Tagged Pointers
//
// Every block is 64-byte aligned, so a block's base address has six zero
// low bits. IntoRaw packs the cell index into those bits, collapsing the
// slot to a single unsafe.Pointer usable wherever a thin pointer is
// needed. FromRaw reconstructs the owning slot:
//
//	raw := slot.IntoRaw()               // slot is consumed, cell stays live
//	slot = arena64.FromRaw[uint64](raw) // ownership reconstructed
//	slot.Release()
//
// Each raw value must be turned back into a Slot at most once; the
// conversion boundary performs no validation.
//
// # Strict Provenance
//
// Raw values are derived with integer address arithmetic by default. The
// strictprovenance build tag selects an alternate backend that derives
// bit-identical values through pointer arithmetic instead, threading
// pointer-origin metadata end-to-end for provenance-auditing tooling:
//
//	go build -tags strictprovenance
//	go test -tags strictprovenance ./...
//
// Observable behavior is identical in both modes.
//
// # Thread Safety
//
// All arena operations are safe for concurrent use and lock-free: claims
// and releases are single-word compare-and-swap operations, and growth
// links new blocks with an atomic pointer swap. No mutex is taken on any
// path. Access to an individual cell is restricted to whichever goroutine
// holds its Slot, enforced structurally rather than by a lock.
//
// # Memory Layout
//
// Blocks hold exactly 64 cells and never move or shrink: growth appends
// new blocks and existing cell addresses stay valid until Release. Cell
// memory is carved from buffers the collector does not scan, so element
// types must not contain Go pointers; New panics otherwise.
//
// # Performance Characteristics
//
//   - Insert: one CAS per claim, plus a linear scan over blocks when
//     earlier blocks are full (block count grows 64x slower than elements)
//   - Release: one cell write plus one atomic AND
//   - Growth: one buffer allocation, published with a single CAS
//
// Bump64 provides a non-reclaiming baseline for measuring the overhead
// the bitmap protocol adds over unchecked bump allocation.
//
// # Important Notes
//
//   - Slots and raw tagged pointers are only valid while the arena exists
//   - Releasing a slot twice, or reconstructing two slots from one raw
//     value, violates the ownership contract and is not recoverable
//   - Occupancy introspection (Len, Metrics) is advisory under concurrency
package arena64
