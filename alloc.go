package arena

import (
	"math/bits"
	"unsafe"
)

const ptrAlign = unsafe.Alignof(uintptr(0))

// bufferAddr returns the address of the first byte of buf, or 0 for nil.
func bufferAddr(buf []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
}

// Alloc returns a pointer to a zeroed T placed inside the arena's buffer,
// aligned for T. T must not contain Go pointers: the garbage collector does
// not scan the buffer through the returned value.
func Alloc[T any](a *Arena) (*T, error) {
	b, err := allocFor[T](a, 1)
	if err != nil {
		return nil, err
	}
	clear(b)
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocUninitialized is like Alloc but leaves whatever bytes the buffer held.
func AllocUninitialized[T any](a *Arena) (*T, error) {
	b, err := allocFor[T](a, 1)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocSlice allocates n elements of T inside the arena. The elements are
// not initialized. Returns nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	b, err := allocFor[T](a, n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// AllocSliceZeroed is like AllocSlice with zeroed elements.
func AllocSliceZeroed[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	b, err := allocFor[T](a, n)
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

func allocFor[T any](a *Arena, n int) ([]byte, error) {
	if a.buf == nil {
		return nil, ErrNoBackingBuffer
	}
	var zero T
	hi, size := bits.Mul(uint(unsafe.Sizeof(zero)), uint(n))
	if hi != 0 {
		return nil, a.fail(opAllocAligned, ^uintptr(0), unsafe.Alignof(zero), ErrOutOfMemory)
	}
	// Typed values always start at the reservation, legacy mode or not.
	r, err := a.allocAligned(uintptr(size), unsafe.Alignof(zero), false)
	if err != nil {
		return nil, err
	}
	return a.Bytes(r), nil
}
