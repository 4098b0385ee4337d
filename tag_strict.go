//go:build strictprovenance

package arena64

import "unsafe"

// Strict-provenance tagging backend: raw values are derived by pointer
// arithmetic on the block pointer itself, so pointer-origin metadata is
// threaded end-to-end for auditing tooling. Block bases are 64-byte
// aligned, so adding the index is bit-identical to ORing it in.

func packTag(base unsafe.Pointer, idx uintptr) unsafe.Pointer {
	return unsafe.Add(base, idx)
}

func unpackTag(p unsafe.Pointer) (unsafe.Pointer, uintptr) {
	idx := uintptr(p) & idxMask
	return unsafe.Add(p, -int(idx)), idx
}
