package arena

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfMemory is returned when a request does not fit between the
	// cursor and the end of the region, or could never fit in the region.
	ErrOutOfMemory = errors.New("arena: out of memory")
	// ErrInvalidAlignment is returned when an alignment is not a power of two.
	ErrInvalidAlignment = errors.New("arena: alignment must be a power of two")
	// ErrInvalidRegion is returned when start+capacity overflows.
	ErrInvalidRegion = errors.New("arena: invalid region")
	// ErrNoBackingBuffer is returned by typed helpers on an arena created
	// with NewRegion.
	ErrNoBackingBuffer = errors.New("arena: no backing buffer")
)

const (
	opAlloc             = "alloc"
	opAllocAligned      = "alloc aligned"
	opAllocWithFreeList = "alloc with free list"
)

// AllocError describes a failed allocation. The arena is unchanged.
//
// The cause can be matched with errors.Is against ErrOutOfMemory or
// ErrInvalidAlignment.
type AllocError struct {
	Op     string
	Size   uintptr
	Align  uintptr // 0 for unaligned requests
	Cursor uintptr // offset of the cursor when the request failed
	Err    error
}

func (e *AllocError) Error() string {
	if e.Align == 0 {
		return fmt.Sprintf("%s of %d bytes at offset %d: %v", e.Op, e.Size, e.Cursor, e.Err)
	}
	return fmt.Sprintf("%s of %d bytes (align %d) at offset %d: %v", e.Op, e.Size, e.Align, e.Cursor, e.Err)
}

func (e *AllocError) Unwrap() error { return e.Err }

// RegionError is returned when a region descriptor cannot be represented.
type RegionError struct {
	Start    uintptr
	Capacity uintptr
}

func (e *RegionError) Error() string {
	return fmt.Sprintf("arena: region start %#x with capacity %d overflows the address space", e.Start, e.Capacity)
}

func (e *RegionError) Unwrap() error { return ErrInvalidRegion }
