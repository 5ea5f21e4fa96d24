package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/cshenton/block-allocator/suballoc"
)

var (
	benchSize       uint64
	benchIterations int
)

func init() {
	cmd := newBenchCmd()
	cmd.Flags().Uint64Var(&benchSize, "size", 1<<30, "size of the managed range, in bytes")
	cmd.Flags().IntVar(&benchIterations, "iterations", 100000, "number of alloc+free pairs to time")
	rootCmd.AddCommand(cmd)
}

func newBenchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bench",
		Short: "Time a tight alloc/free loop",
		Long: `The bench command repeatedly allocates and immediately frees a fixed-size
block, reporting throughput. Because the block pool's LIFO recycling passes
the same two block records back and forth every iteration, this is close to
a best-case timing of the allocator's pointer bookkeeping.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench()
		},
	}
}

func runBench() error {
	a, err := suballoc.New(uint32(benchSize), nil)
	if err != nil {
		return err
	}
	defer a.Close()

	const size = 4096
	start := time.Now()
	for i := 0; i < benchIterations; i++ {
		alloc, err := a.Alloc(size)
		if err != nil {
			return err
		}
		if err := a.Free(alloc); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	if jsonOut {
		return printJSON(struct {
			Iterations int           `json:"iterations"`
			Elapsed    time.Duration `json:"elapsedNanos"`
			PerOp      time.Duration `json:"perOpNanos"`
		}{benchIterations, elapsed, elapsed / time.Duration(benchIterations)})
	}
	printInfo("%d alloc+free pairs in %s (%s/op)\n", benchIterations, elapsed, elapsed/time.Duration(benchIterations))
	return nil
}
