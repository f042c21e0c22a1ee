package arena

import (
	"fmt"

	"github.com/pavanmanishd/bump/internal/mmap"
)

// MappedArena is an Arena over anonymous memory outside the Go heap. Unlike
// Arena it owns its region and must be closed.
type MappedArena struct {
	*Arena
	mapping *mmap.Mapping
}

// NewMapped maps capacity bytes and returns an arena over them. The region
// starts page-aligned and zeroed. Capacity must not be negative.
func NewMapped(capacity int, opts ...Option) (*MappedArena, error) {
	m, err := mmap.MapAnon(capacity)
	if err != nil {
		return nil, fmt.Errorf("arena: map %d bytes: %w", capacity, err)
	}
	// Pages are touched in cursor order.
	if err := m.Advise(mmap.AccessSequential); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("arena: advise mapping: %w", err)
	}
	return &MappedArena{Arena: New(m.Bytes(), opts...), mapping: m}, nil
}

// Close unmaps the region. Every region handed out becomes invalid and the
// arena must not be used afterwards. Close is idempotent.
func (m *MappedArena) Close() error {
	m.buf = nil
	return m.mapping.Close()
}
