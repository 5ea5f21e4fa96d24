package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/cshenton/block-allocator/suballoc"
)

var (
	simSize      uint64
	simSlots     int
	simRounds    int
	simMaxBytes  int
	simSeed      int64
	simMaxBlocks uint64
)

func init() {
	cmd := newSimulateCmd()
	cmd.Flags().Uint64Var(&simSize, "size", 256*65536, "size of the managed range, in bytes")
	cmd.Flags().IntVar(&simSlots, "slots", 500, "number of concurrently live allocations to churn")
	cmd.Flags().IntVar(&simRounds, "rounds", 1000, "number of alloc/free rounds to run")
	cmd.Flags().IntVar(&simMaxBytes, "max-alloc", 65536, "maximum size of a single random allocation")
	cmd.Flags().Int64Var(&simSeed, "seed", 1, "random seed")
	cmd.Flags().Uint64Var(&simMaxBlocks, "max-blocks", 0, "block pool capacity (0 uses the allocator default)")
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "simulate",
		Short: "Run a randomized alloc/free workload and report final statistics",
		Long: `The simulate command drives an allocator with a randomized workload: each
round either frees one of --slots live allocation slots or fills it with a
new random-sized allocation, mirroring the allocator's own stress test.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate()
		},
	}
}

func runSimulate() error {
	var cfg *suballoc.Config
	if simMaxBlocks > 0 {
		cfg = &suballoc.Config{MaxBlocks: uint32(simMaxBlocks)}
	}
	a, err := suballoc.New(uint32(simSize), cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	rng := rand.New(rand.NewSource(simSeed))
	live := make([]*suballoc.Allocation, simSlots)
	var failures int

	for round := 0; round < simRounds; round++ {
		idx := rng.Intn(simSlots)
		if live[idx] != nil {
			if err := a.Free(*live[idx]); err != nil {
				return err
			}
			live[idx] = nil
			continue
		}
		size := uint32(rng.Intn(simMaxBytes) + 1)
		alloc, err := a.Alloc(size)
		if err != nil {
			failures++
			printVerbose("round %d: alloc(%d) failed: %v\n", round, size, err)
			continue
		}
		live[idx] = &alloc
	}

	stats := a.Stats()
	if jsonOut {
		return printJSON(struct {
			suballoc.Stats
			Failures int `json:"failures"`
		}{stats, failures})
	}
	printInfo("rounds=%d failures=%d\n", simRounds, failures)
	printInfo("allocCalls=%d freeCalls=%d splits=%d coalescedForward=%d coalescedBackward=%d\n",
		stats.AllocCalls, stats.FreeCalls, stats.SplitCount, stats.CoalesceForward, stats.CoalesceBackward)
	return nil
}
