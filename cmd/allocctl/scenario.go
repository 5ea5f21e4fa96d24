package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cshenton/block-allocator/suballoc"
)

func init() {
	rootCmd.AddCommand(newScenarioCmd())
}

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenario <name>",
		Short: "Run one of the allocator's named example workloads",
		Long: `The scenario command runs a small fixed workload against a fresh
allocator and prints the resulting block chain.

Available scenarios:
  three-equal    three 256-byte allocations, then frees the middle, first and last
  split-reuse    alloc/alloc/free/alloc, demonstrating hole reuse
  exhaustion     a tiny pool fragmented to capacity`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenario(args[0])
		},
	}
	return cmd
}

func runScenario(name string) error {
	switch name {
	case "three-equal":
		return scenarioThreeEqual()
	case "split-reuse":
		return scenarioSplitReuse()
	case "exhaustion":
		return scenarioExhaustion()
	default:
		return fmt.Errorf("unknown scenario %q", name)
	}
}

func scenarioThreeEqual() error {
	a, err := suballoc.New(4096, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	x, err := a.Alloc(256)
	if err != nil {
		return err
	}
	y, err := a.Alloc(256)
	if err != nil {
		return err
	}
	z, err := a.Alloc(256)
	if err != nil {
		return err
	}

	printVerbose("allocated x=%+v y=%+v z=%+v\n", x, y, z)
	if err := a.Free(y); err != nil {
		return err
	}
	if err := a.Free(x); err != nil {
		return err
	}
	if err := a.Free(z); err != nil {
		return err
	}
	return dumpChain(a)
}

func scenarioSplitReuse() error {
	a, err := suballoc.New(1<<20, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	first, err := a.Alloc(1024)
	if err != nil {
		return err
	}
	if _, err := a.Alloc(2048); err != nil {
		return err
	}
	if err := a.Free(first); err != nil {
		return err
	}
	reused, err := a.Alloc(768)
	if err != nil {
		return err
	}
	printVerbose("reused hole at offset=%d\n", reused.Offset)
	return dumpChain(a)
}

func scenarioExhaustion() error {
	a, err := suballoc.New(8192, &suballoc.Config{MaxBlocks: 8})
	if err != nil {
		return err
	}
	defer a.Close()

	var allocs []suballoc.Allocation
	for i := 0; i < 7; i++ {
		alloc, err := a.Alloc(256)
		if err != nil {
			return err
		}
		allocs = append(allocs, alloc)
	}

	if _, err := a.Alloc(256); err != nil {
		printInfo("alloc failed as expected: %v\n", err)
	} else {
		return fmt.Errorf("expected pool exhaustion, allocation unexpectedly succeeded")
	}

	if err := a.Free(allocs[0]); err != nil {
		return err
	}
	if _, err := a.Alloc(256); err != nil {
		return fmt.Errorf("alloc after free should have succeeded: %w", err)
	}
	return dumpChain(a)
}
