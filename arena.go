// Package arena implements a linear (bump pointer) allocator over a single
// caller-supplied region. Typical usage: hand it a buffer once, carve many
// short-lived objects out of it, then Reset() to reclaim everything at once.
package arena

import (
	"context"
	"log/slog"
	"math/bits"
)

// Region describes one allocation. Addr is the absolute address, Offset is
// relative to the arena start.
type Region struct {
	Addr   uintptr
	Offset uintptr
	Size   uintptr
}

// Arena is a bump allocator over a fixed region. Not goroutine-safe.
// Use SafeArena for concurrent access.
type Arena struct {
	buf    []byte // caller-owned, nil for descriptor-only arenas
	start  uintptr
	end    uintptr
	cursor uintptr

	legacyFastPath bool
	logger         *slog.Logger
}

// New creates an Arena over buf. The arena never frees or resizes buf; the
// caller keeps ownership and must keep it alive while the arena is in use.
func New(buf []byte, opts ...Option) *Arena {
	o := applyOptions(opts)
	a := &Arena{
		buf:            buf,
		start:          bufferAddr(buf),
		legacyFastPath: o.legacyFastPath,
		logger:         o.logger,
	}
	// A Go slice never wraps the address space.
	a.end = a.start + uintptr(len(buf))
	a.cursor = a.start
	a.logger.Debug("arena created", "start", a.start, "capacity", len(buf))
	return a
}

// NewRegion creates an Arena that only computes addresses inside
// [start, start+capacity). It returns a *RegionError if the end of the
// region does not fit in a uintptr.
func NewRegion(start, capacity uintptr, opts ...Option) (*Arena, error) {
	end, ok := checkedAdd(start, capacity)
	if !ok {
		return nil, &RegionError{Start: start, Capacity: capacity}
	}
	o := applyOptions(opts)
	a := &Arena{
		start:          start,
		end:            end,
		cursor:         start,
		legacyFastPath: o.legacyFastPath,
		logger:         o.logger,
	}
	a.logger.Debug("arena created", "start", start, "capacity", capacity)
	return a, nil
}

// Alloc reserves size bytes at the cursor with byte alignment.
// On failure the cursor is left untouched.
func (a *Arena) Alloc(size uintptr) (Region, error) {
	return a.bump(opAlloc, size)
}

// AllocWithFreeList is an alias of Alloc. There is no free list: freed
// ranges are never tracked or reused, the only reclamation is Reset.
func (a *Arena) AllocWithFreeList(size uintptr) (Region, error) {
	return a.bump(opAllocWithFreeList, size)
}

func (a *Arena) bump(op string, size uintptr) (Region, error) {
	next, ok := checkedAdd(a.cursor, size)
	if !ok || next > a.end {
		return Region{}, a.fail(op, size, 0, ErrOutOfMemory)
	}
	r := a.region(a.cursor, size)
	a.cursor = next
	return r, nil
}

// AllocAligned reserves size bytes starting at the next multiple of align.
// align must be a power of two. Requests whose size or alignment exceed the
// whole capacity are rejected without looking at the cursor.
func (a *Arena) AllocAligned(size, align uintptr) (Region, error) {
	return a.allocAligned(size, align, a.legacyFastPath)
}

func (a *Arena) allocAligned(size, align uintptr, legacyFastPath bool) (Region, error) {
	if !isPowerOfTwo(align) {
		return Region{}, a.fail(opAllocAligned, size, align, ErrInvalidAlignment)
	}
	capacity := a.Capacity()
	if align > capacity || size > capacity {
		return Region{}, a.fail(opAllocAligned, size, align, ErrOutOfMemory)
	}

	aligned, ok := alignUp(a.cursor, align)
	if !ok {
		return Region{}, a.fail(opAllocAligned, size, align, ErrOutOfMemory)
	}
	padding := aligned - a.cursor

	if padding == 0 {
		next, ok := checkedAdd(a.cursor, size)
		if !ok || next > a.end {
			return Region{}, a.fail(opAllocAligned, size, align, ErrOutOfMemory)
		}
		addr := a.cursor
		if legacyFastPath {
			addr = next
		}
		a.cursor = next
		return a.region(addr, size), nil
	}

	need, ok := checkedAdd(size, padding)
	if !ok {
		return Region{}, a.fail(opAllocAligned, size, align, ErrOutOfMemory)
	}
	next, ok := checkedAdd(a.cursor, need)
	if !ok || next > a.end {
		return Region{}, a.fail(opAllocAligned, size, align, ErrOutOfMemory)
	}
	a.cursor = next
	return a.region(aligned, size), nil
}

// AllocBytes returns n bytes of the backing buffer, aligned to the pointer
// size. Returns nil if n <= 0, if the arena is full or has no buffer.
func (a *Arena) AllocBytes(n int) []byte {
	if n <= 0 || a.buf == nil {
		return nil
	}
	r, err := a.allocAligned(uintptr(n), ptrAlign, false)
	if err != nil {
		return nil
	}
	return a.Bytes(r)
}

// Reset moves the cursor back to the start. Every region handed out before
// becomes invalid; the arena cannot detect later use of them.
func (a *Arena) Reset() {
	a.logger.Debug("arena reset", "released", a.cursor-a.start)
	a.cursor = a.start
}

// Bytes returns the part of the backing buffer covered by r, or nil if the
// arena has no buffer or r lies outside it.
func (a *Arena) Bytes(r Region) []byte {
	if a.buf == nil || r.Addr < a.start {
		return nil
	}
	off := r.Addr - a.start
	end, ok := checkedAdd(off, r.Size)
	if !ok || end > uintptr(len(a.buf)) {
		return nil
	}
	return a.buf[off:end:end]
}

// Start returns the address of the first byte of the region.
func (a *Arena) Start() uintptr { return a.start }

// End returns the address one past the last byte of the region.
func (a *Arena) End() uintptr { return a.end }

// Cursor returns the address of the next free byte.
func (a *Arena) Cursor() uintptr { return a.cursor }

func (a *Arena) region(addr, size uintptr) Region {
	return Region{Addr: addr, Offset: addr - a.start, Size: size}
}

func (a *Arena) fail(op string, size, align uintptr, err error) error {
	e := &AllocError{Op: op, Size: size, Align: align, Cursor: a.cursor - a.start, Err: err}
	if a.logger.Enabled(context.Background(), slog.LevelDebug) {
		a.logger.Debug("allocation failed",
			"op", op,
			"size", size,
			"align", align,
			"cursor", e.Cursor,
			"available", a.Available(),
			"error", err,
		)
	}
	return e
}

// checkedAdd returns x+y and false if the sum wraps.
func checkedAdd(x, y uintptr) (uintptr, bool) {
	sum, carry := bits.Add(uint(x), uint(y), 0)
	return uintptr(sum), carry == 0
}

// alignUp rounds x up to a multiple of align, which must be a power of two.
func alignUp(x, align uintptr) (uintptr, bool) {
	bumped, ok := checkedAdd(x, align-1)
	if !ok {
		return 0, false
	}
	return bumped &^ (align - 1), true
}

func isPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}
