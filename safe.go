package arena

import "sync"

// SafeArena is a mutex-protected wrapper around Arena for concurrent access.
// Every call takes the lock, so regions returned to different goroutines
// never overlap. Reset still invalidates regions other goroutines hold.
type SafeArena struct {
	mu sync.Mutex
	a  *Arena
}

// NewSafe wraps a. The caller must not use a directly afterwards.
func NewSafe(a *Arena) *SafeArena {
	return &SafeArena{a: a}
}

// Alloc thread-safely reserves size bytes at the cursor.
func (s *SafeArena) Alloc(size uintptr) (Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Alloc(size)
}

// AllocAligned thread-safely reserves size bytes aligned to align.
func (s *SafeArena) AllocAligned(size, align uintptr) (Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocAligned(size, align)
}

// AllocWithFreeList is an alias of Alloc.
func (s *SafeArena) AllocWithFreeList(size uintptr) (Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocWithFreeList(size)
}

// AllocBytes thread-safely allocates n bytes and returns a slice pointing to them.
// Returns nil if n <= 0 or the arena is full.
func (s *SafeArena) AllocBytes(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.AllocBytes(n)
}

// Bytes returns the slice of the backing buffer covered by r.
func (s *SafeArena) Bytes(r Region) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Bytes(r)
}

// Reset thread-safely moves the cursor back to the start.
func (s *SafeArena) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.a.Reset()
}

// Generic allocation functions for SafeArena

// SafeAlloc thread-safely returns a pointer to a zeroed T inside the arena.
func SafeAlloc[T any](s *SafeArena) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Alloc[T](s.a)
}

// SafeAllocSlice thread-safely allocates n uninitialized elements of T.
func SafeAllocSlice[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.a, n)
}

// SafeAllocSliceZeroed thread-safely allocates n zeroed elements of T.
func SafeAllocSliceZeroed[T any](s *SafeArena, n int) ([]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSliceZeroed[T](s.a, n)
}
