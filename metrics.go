package arena

import "fmt"

// Capacity returns the size of the managed region in bytes.
func (a *Arena) Capacity() uintptr {
	return a.end - a.start
}

// SizeInUse returns the bytes between the start and the cursor, alignment
// padding included.
func (a *Arena) SizeInUse() uintptr {
	return a.cursor - a.start
}

// Available returns the bytes between the cursor and the end.
func (a *Arena) Available() uintptr {
	return a.end - a.cursor
}

// Utilization returns the ratio of bytes in use to capacity (0.0 to 1.0).
// Returns 0.0 for an empty region.
func (a *Arena) Utilization() float64 {
	capacity := a.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(a.SizeInUse()) / float64(capacity)
}

// Metrics returns a snapshot of arena usage.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		Capacity:    a.Capacity(),
		SizeInUse:   a.SizeInUse(),
		Available:   a.Available(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics is derived from the arena's positions only; the arena keeps
// no record of individual allocations.
type ArenaMetrics struct {
	Capacity    uintptr // Size of the region
	SizeInUse   uintptr // Bytes below the cursor
	Available   uintptr // Bytes above the cursor
	Utilization float64 // SizeInUse / Capacity
}

func (a *Arena) String() string {
	return fmt.Sprintf("Arena{start: %#x, capacity: %d, used: %d, available: %d, usage: %.1f%%}",
		a.start, a.Capacity(), a.SizeInUse(), a.Available(), a.Utilization()*100)
}

// Thread-safe metrics for SafeArena

// Capacity thread-safely returns the size of the managed region.
func (s *SafeArena) Capacity() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Capacity()
}

// SizeInUse thread-safely returns the bytes below the cursor.
func (s *SafeArena) SizeInUse() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.SizeInUse()
}

// Available thread-safely returns the bytes above the cursor.
func (s *SafeArena) Available() uintptr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Available()
}

// Metrics thread-safely returns a snapshot of arena usage.
func (s *SafeArena) Metrics() ArenaMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Metrics()
}
