package pool

import "testing"

func BenchmarkAllocFree(b *testing.B) {
	p, err := New(Config{BlockSize: 64, PoolSize: 64 * 1024})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, ok := p.Alloc()
		if !ok {
			b.Fatal("pool exhausted")
		}
		if err := p.Free(block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkAllocFreeChecked(b *testing.B) {
	p, err := New(Config{BlockSize: 64, PoolSize: 64 * 1024, Checked: true})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		block, ok := p.Alloc()
		if !ok {
			b.Fatal("pool exhausted")
		}
		if err := p.Free(block); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSyncPoolAllocFree(b *testing.B) {
	s, err := NewSync(Config{BlockSize: 64, PoolSize: 64 * 1024})
	if err != nil {
		b.Fatal(err)
	}
	defer s.Close()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			block, ok := s.Alloc()
			if !ok {
				continue
			}
			_ = s.Free(block)
		}
	})
}

func BenchmarkDrainRefill(b *testing.B) {
	const blocks = 512
	p, err := New(Config{BlockSize: 32, PoolSize: 32 * blocks})
	if err != nil {
		b.Fatal(err)
	}
	defer p.Close()

	handles := make([][]byte, 0, blocks)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		handles = handles[:0]
		for {
			block, ok := p.Alloc()
			if !ok {
				break
			}
			handles = append(handles, block)
		}
		for _, h := range handles {
			if err := p.Free(h); err != nil {
				b.Fatal(err)
			}
		}
	}
}
