package pool

import "sync"

// SyncPool wraps a Pool with a mutex so it can be shared across
// goroutines. The core pool stays lock-free for callers that already
// serialize access; SyncPool is the opt-in thread-safe surface.
type SyncPool struct {
	mu sync.Mutex
	p  *Pool
}

// NewSync creates a pool and wraps it for concurrent use.
func NewSync(cfg Config) (*SyncPool, error) {
	p, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &SyncPool{p: p}, nil
}

// Wrap takes ownership of an existing pool. The caller must not use p
// directly afterwards.
func Wrap(p *Pool) *SyncPool {
	return &SyncPool{p: p}
}

// Alloc is the synchronized equivalent of Pool.Alloc.
func (s *SyncPool) Alloc() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Alloc()
}

// Free is the synchronized equivalent of Pool.Free.
func (s *SyncPool) Free(block []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Free(block)
}

// Close is the synchronized equivalent of Pool.Close.
func (s *SyncPool) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Close()
}

// Stats is the synchronized equivalent of Pool.Stats.
func (s *SyncPool) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Stats()
}

// FreeBlocks is the synchronized equivalent of Pool.FreeBlocks.
func (s *SyncPool) FreeBlocks() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.FreeBlocks()
}
