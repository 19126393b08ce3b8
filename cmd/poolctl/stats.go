package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/poolkit/pool"
)

var (
	statsBlockSize int
	statsPoolSize  int
	statsChurn     int
)

func init() {
	cmd := newStatsCmd()
	cmd.Flags().IntVar(&statsBlockSize, "block-size", 64, "Block size in bytes")
	cmd.Flags().IntVar(&statsPoolSize, "pool-size", 64<<10, "Pool size in bytes")
	cmd.Flags().IntVar(&statsChurn, "churn", 0, "Alloc/free cycles to run before reporting")
	rootCmd.AddCommand(cmd)
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the statistics of a pool with the given geometry",
		Long: `The stats command creates a pool with the requested geometry,
optionally runs a number of alloc/free cycles against it, and prints the
resulting statistics.

Example:
  poolctl stats --block-size 128 --pool-size 1048576
  poolctl stats --churn 100000 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats()
		},
	}
}

func runStats() error {
	p, err := pool.New(pool.Config{
		BlockSize: statsBlockSize,
		PoolSize:  statsPoolSize,
	})
	if err != nil {
		return err
	}
	defer p.Close()

	for i := 0; i < statsChurn; i++ {
		block, ok := p.Alloc()
		if !ok {
			break
		}
		if err := p.Free(block); err != nil {
			return err
		}
	}

	if jsonOut {
		return printJSON(p.Stats())
	}
	return pool.WriteReport(os.Stdout, p)
}
