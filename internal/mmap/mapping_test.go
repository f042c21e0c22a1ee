package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon(t *testing.T) {
	m, err := MapAnon(8192)
	require.NoError(t, err)
	defer m.Close()

	buf := m.Bytes()
	require.Len(t, buf, 8192)
	assert.Equal(t, 8192, m.Size())

	// Anonymous memory starts zeroed and is writable.
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
	buf[0], buf[8191] = 1, 2
	assert.Equal(t, byte(1), m.Bytes()[0])
	assert.Equal(t, byte(2), m.Bytes()[8191])
}

func TestMapAnon_Sizes(t *testing.T) {
	_, err := MapAnon(-1)
	assert.ErrorIs(t, err, ErrInvalidSize)

	m, err := MapAnon(0)
	require.NoError(t, err)
	assert.Empty(t, m.Bytes())
	assert.NoError(t, m.Advise(AccessSequential))
	assert.NoError(t, m.Close())
}

func TestMapping_Close(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	require.NoError(t, m.Advise(AccessWillNeed))
	require.NoError(t, m.Close())
	assert.NoError(t, m.Close(), "Close must be idempotent")
	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)
}
