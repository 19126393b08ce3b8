package pool

import (
	"fmt"
	"os"
)

// Runtime debug flag for allocation logging - controlled by the
// POOLKIT_LOG_ALLOC environment variable.
var logAlloc = os.Getenv("POOLKIT_LOG_ALLOC") != ""

// Event identifies a pool operation reported to a TraceFunc.
type Event uint8

const (
	EventCreate Event = iota + 1
	EventAlloc
	EventFree
	EventClose
)

func (e Event) String() string {
	switch e {
	case EventCreate:
		return "create"
	case EventAlloc:
		return "alloc"
	case EventFree:
		return "free"
	case EventClose:
		return "close"
	}
	return "unknown"
}

// TraceFunc receives one call per pool operation. off is the region
// offset of the block involved, or 0 for create and close events. Trace
// hooks run synchronously on the calling goroutine and must not call back
// into the pool.
type TraceFunc func(ev Event, off int64)

func (p *Pool) traceEvent(ev Event, off int64) {
	if p.trace != nil {
		p.trace(ev, off)
	}
	if logAlloc {
		switch ev {
		case EventCreate:
			fmt.Fprintf(os.Stderr, "[POOL] create: blocks=%d blockSize=%d poolSize=%d\n",
				p.numBlocks, p.blockSize, p.poolSize)
		case EventClose:
			fmt.Fprintf(os.Stderr, "[POOL] close: allocs=%d frees=%d\n",
				p.stats.AllocCalls, p.stats.FreeCalls)
		default:
			fmt.Fprintf(os.Stderr, "[POOL] %s: off=%d free=%d\n", ev, off, p.freeBlocks)
		}
	}
}
