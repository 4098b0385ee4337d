//go:build !strictprovenance

package arena64

import "unsafe"

// Default tagging backend: raw values are derived with integer address
// arithmetic. The strictprovenance build tag swaps in tag_strict.go,
// which derives bit-identical values through pointer arithmetic instead.
//
// Both helpers opt out of checkptr instrumentation: a tagged value with
// index bits set looks like a misaligned *block to the checker even
// though it never leaves the block's allocation. The runtime's own
// tagged pointers carry the same annotation.

//go:nocheckptr
func packTag(base unsafe.Pointer, idx uintptr) unsafe.Pointer {
	return unsafe.Pointer(uintptr(base) | idx)
}

//go:nocheckptr
func unpackTag(p unsafe.Pointer) (unsafe.Pointer, uintptr) {
	return unsafe.Pointer(uintptr(p) &^ idxMask), uintptr(p) & idxMask
}
