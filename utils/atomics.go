package utils

import (
	"sync/atomic"
	"unsafe"
)

//go:nosplit
func Noescape(p unsafe.Pointer) unsafe.Pointer {
	x := uintptr(p)
	return unsafe.Pointer(x ^ 0)
}

// Atomic add on a float64 cell. Returns the value before the add.
//
//go:nosplit
func AtomicAddFloat64(targetVal *float64, delta float64) (oldF float64) {
	for {
		oldU := float64Bits(*targetVal)
		oldF = float64FromBits(oldU)
		newU := float64Bits(oldF + delta)
		if atomic.CompareAndSwapUint64((*uint64)(Noescape(unsafe.Pointer(targetVal))), oldU, newU) {
			return oldF
		}
	}
}

// Atomic min on a float64 cell. Returns the value that was in the cell
// immediately before this update; new < returned means this call improved it.
//
//go:nosplit
func AtomicMinFloat64[T ~float64](targetVal *T, new T) (oldF T) {
	for {
		oldU := *(*uint64)(Noescape(unsafe.Pointer(targetVal)))
		oldF = floatFromBits[T](oldU)
		if new >= oldF {
			return oldF
		} else if atomic.CompareAndSwapUint64((*uint64)(Noescape(unsafe.Pointer(targetVal))), oldU, floatBits(new)) {
			return oldF
		}
	}
}

// Atomic max on an int32 cell. Returns the value before the update;
// new > returned means this call raised it.
//
//go:nosplit
func AtomicMaxInt32(targetVal *int32, new int32) (old int32) {
	for {
		old = atomic.LoadInt32(targetVal)
		if new <= old || atomic.CompareAndSwapInt32(targetVal, old, new) {
			return old
		}
	}
}

//go:nosplit
func AtomicLoadFloat64[T ~float64](targetVal *T) T {
	return floatFromBits[T](atomic.LoadUint64((*uint64)(Noescape(unsafe.Pointer(targetVal)))))
}

//go:nosplit
func floatFromBits[T ~float64](b uint64) T {
	return *(*T)((unsafe.Pointer(&b)))
}

//go:nosplit
func floatBits[T ~float64](f T) uint64 {
	return *(*uint64)((unsafe.Pointer(&f)))
}

//go:nosplit
func float64Bits(f float64) uint64 {
	return *(*uint64)((unsafe.Pointer(&f)))
}

//go:nosplit
func float64FromBits(b uint64) float64 {
	return *(*float64)((unsafe.Pointer(&b)))
}
