package main

import (
	"github.com/spf13/cobra"

	"github.com/cshenton/block-allocator/suballoc"
)

var dumpSize uint64

func init() {
	cmd := newDumpCmd()
	cmd.Flags().Uint64Var(&dumpSize, "size", 1<<20, "size of the managed range, in bytes")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print a fresh allocator's block chain",
		Long: `The dump command creates a fresh allocator over --size bytes and prints
its block chain in address order. A fresh allocator has a single free block
covering the whole range; the scenario command prints the same listing
after running one of its workloads.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := suballoc.New(uint32(dumpSize), nil)
			if err != nil {
				return err
			}
			defer a.Close()
			return dumpChain(a)
		},
	}
}

type blockView struct {
	Offset uint32 `json:"offset"`
	Size   uint32 `json:"size"`
	Used   bool   `json:"used"`
}

func dumpChain(a *suballoc.Allocator) error {
	var blocks []blockView
	b := a.Head()
	blocks = append(blocks, blockView{b.Offset, b.Size, b.IsUsed()})
	for {
		next, ok := a.Next(b)
		if !ok {
			break
		}
		blocks = append(blocks, blockView{next.Offset, next.Size, next.IsUsed()})
		b = next
	}

	if jsonOut {
		return printJSON(blocks)
	}
	for _, blk := range blocks {
		state := "free"
		if blk.Used {
			state = "used"
		}
		printInfo("offset=%-12d size=%-12d %s\n", blk.Offset, blk.Size, state)
	}
	return nil
}
