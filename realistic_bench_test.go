package arena

import (
	"runtime"
	"testing"
)

// BenchmarkRealisticUsage compares request-scoped arena use with the heap
func BenchmarkRealisticUsage(b *testing.B) {

	// Many small allocations with a reset per request
	b.Run("ManySmallAllocs/Arena", func(b *testing.B) {
		a := New(make([]byte, 64*1024))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 100; j++ {
				a.AllocBytes(64)
			}
			a.Reset()
		}
	})

	b.Run("ManySmallAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			objects := make([][]byte, 100)
			for j := 0; j < 100; j++ {
				objects[j] = make([]byte, 64)
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	type record struct {
		ID   int64
		Data [56]byte
	}

	b.Run("StructAllocs/Arena", func(b *testing.B) {
		a := New(make([]byte, 64*1024))
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 50; j++ {
				s, err := Alloc[record](a)
				if err != nil {
					b.Fatal(err)
				}
				s.ID = int64(j)
			}
			a.Reset()
		}
	})

	b.Run("StructAllocs/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			records := make([]*record, 50)
			for j := 0; j < 50; j++ {
				records[j] = &record{ID: int64(j)}
			}
			if i%10 == 0 {
				runtime.GC()
			}
		}
	})

	// Off-heap scratch buffers, reset per batch
	b.Run("BufferReuse/Mapped", func(b *testing.B) {
		m, err := NewMapped(1024 * 1024)
		if err != nil {
			b.Fatal(err)
		}
		defer m.Close()
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			for j := 0; j < 10; j++ {
				buf1 := m.AllocBytes(1024)
				buf2 := m.AllocBytes(2048)
				buf3 := m.AllocBytes(512)

				buf1[0] = byte(j)
				buf2[0] = byte(j)
				buf3[0] = byte(j)
			}
			m.Reset()
		}
	})

	b.Run("BufferReuse/Builtin", func(b *testing.B) {
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			buffers := make([][]byte, 30)
			for j := 0; j < 10; j++ {
				buffers[j*3] = make([]byte, 1024)
				buffers[j*3+1] = make([]byte, 2048)
				buffers[j*3+2] = make([]byte, 512)

				buffers[j*3][0] = byte(j)
				buffers[j*3+1][0] = byte(j)
				buffers[j*3+2][0] = byte(j)
			}
			if i%5 == 0 {
				runtime.GC()
			}
		}
	})

	// Address arithmetic only
	b.Run("Layout/Region", func(b *testing.B) {
		a, err := NewRegion(0x10000, 1<<20)
		if err != nil {
			b.Fatal(err)
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			if _, err := a.AllocAligned(40, 16); err != nil {
				a.Reset()
			}
		}
	})
}
