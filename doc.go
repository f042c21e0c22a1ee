// Package arena implements a linear (bump pointer) allocator for Go.
//
// # Overview
//
// An Arena manages one contiguous region that it does not own. It keeps
// three positions: the start of the region, its end, and a cursor marking
// the next free byte. Every allocation advances the cursor; Reset moves it
// back to the start and thereby reclaims everything at once. There is no
// per-object free, no growth and no record of outstanding allocations.
//
// This is useful for:
//
//   - Request- or frame-scoped scratch memory with batch cleanup
//   - Carving typed values out of a buffer supplied by other code
//   - Computing a layout of offsets inside a region described only by
//     (start, capacity)
//
// # Basic Usage
//
//	buf := make([]byte, 4096)
//	a := arena.New(buf)
//
//	r, err := a.Alloc(256)              // unaligned
//	r, err = a.AllocAligned(128, 16)    // r.Addr%16 == 0
//	b := a.Bytes(r)                     // view into buf
//
//	p, err := arena.Alloc[header](a)     // typed, zeroed
//
//	a.Reset()                           // every region above is now stale
//
// Failed requests return an *AllocError wrapping ErrOutOfMemory or
// ErrInvalidAlignment and leave the cursor where it was:
//
//	if _, err := a.Alloc(n); errors.Is(err, arena.ErrOutOfMemory) {
//		a.Reset()
//	}
//
// # Descriptor-only Arenas
//
// NewRegion builds an arena from a raw (start, capacity) pair. It only
// computes addresses and offsets; Bytes and the typed helpers need a buffer.
// A start+capacity that overflows the address space yields ErrInvalidRegion.
//
// # Off-heap Regions
//
// NewMapped backs an arena with an anonymous memory mapping outside the Go
// heap. It is the only constructor whose arena owns its memory; call Close
// when done.
//
// # Thread Safety
//
// Arena is not thread-safe. For concurrent access wrap it in a SafeArena:
//
//	s := arena.NewSafe(arena.New(buf))
//	r, err := s.Alloc(64)
//
// # Aligned Fast Path
//
// When the cursor already sits on the requested alignment, AllocAligned
// returns the cursor before the advance. WithLegacyAlignedFastPath switches
// to returning the cursor after the advance, which some callers depend on.
// Such an address is one past the reservation and usually unaligned.
//
// # Metrics
//
// Metrics are derived from the three positions only:
//
//	m := a.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
package arena
