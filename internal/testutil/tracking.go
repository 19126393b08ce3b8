// Package testutil provides test instrumentation shared by the poolkit
// test suites. It is not part of the public API.
package testutil

import "errors"

// ErrAcquireFailed is returned by a TrackingAllocator whose failure point
// has been reached.
var ErrAcquireFailed = errors.New("testutil: acquire failed by request")

// RegionAllocator mirrors the pool package's allocator boundary so the
// tracker can wrap any implementation without importing pool.
type RegionAllocator interface {
	Acquire(size int) ([]byte, error)
	Release(b []byte) error
}

// heap is the default delegate: plain Go slices, no OS involvement.
type heap struct{}

func (heap) Acquire(size int) ([]byte, error) { return make([]byte, size), nil }
func (heap) Release(_ []byte) error           { return nil }

// TrackingAllocator counts every byte that flows through the allocator
// boundary. Tests use it to prove that a pool's lifetime is balanced:
// total bytes acquired == total bytes released once the pool is closed.
type TrackingAllocator struct {
	// FailAt makes the n-th Acquire call (1-based) fail when non-zero,
	// for exercising partial-failure paths.
	FailAt int

	// ShortBy trims this many bytes from every acquired region, for
	// exercising the wrong-size defensive path.
	ShortBy int

	Delegate RegionAllocator

	AcquireCalls  int
	ReleaseCalls  int
	BytesAcquired int64
	BytesReleased int64
	Outstanding   int
}

func (a *TrackingAllocator) delegate() RegionAllocator {
	if a.Delegate != nil {
		return a.Delegate
	}
	return heap{}
}

// Acquire delegates and records the acquired byte count.
func (a *TrackingAllocator) Acquire(size int) ([]byte, error) {
	a.AcquireCalls++
	if a.FailAt != 0 && a.AcquireCalls >= a.FailAt {
		return nil, ErrAcquireFailed
	}
	b, err := a.delegate().Acquire(size)
	if err != nil {
		return nil, err
	}
	if a.ShortBy > 0 && a.ShortBy < len(b) {
		b = b[:len(b)-a.ShortBy]
	}
	a.BytesAcquired += int64(len(b))
	a.Outstanding++
	return b, nil
}

// Release delegates and records the released byte count.
func (a *TrackingAllocator) Release(b []byte) error {
	a.ReleaseCalls++
	a.BytesReleased += int64(len(b))
	a.Outstanding--
	return a.delegate().Release(b)
}

// Balanced reports whether every acquired byte has been released.
func (a *TrackingAllocator) Balanced() bool {
	return a.Outstanding == 0 && a.BytesAcquired == a.BytesReleased
}
