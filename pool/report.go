package pool

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// WriteReport writes a human-readable summary of the pool to w, with
// counts grouped for readability. Intended for diagnostics and CLI
// output, not for machine consumption; use Stats for that.
func WriteReport(w io.Writer, p *Pool) error {
	st := p.Stats()
	pr := message.NewPrinter(language.English)

	_, err := pr.Fprintf(w,
		"Pool %d x %d bytes (%d bytes total, %d padding)\n"+
			"  free:   %d blocks\n"+
			"  in use: %d blocks\n"+
			"  allocs: %d (%d returned empty)\n"+
			"  frees:  %d\n",
		st.Blocks, st.BlockSize, st.PoolSize, st.Padding,
		st.FreeBlocks,
		st.InUse,
		st.AllocCalls, st.AllocEmpty,
		st.FreeCalls,
	)
	return err
}
