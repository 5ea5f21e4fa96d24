// Command allocviz is a terminal visualizer for suballoc.Allocator: it
// drives a live allocator with random alloc/free activity and renders its
// current block chain as a bar showing used and free ranges.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cshenton/block-allocator/cmd/allocviz/logger"
)

func main() {
	var (
		size  = flag.Uint64("size", 1<<20, "size of the managed range, in bytes")
		seed  = flag.Int64("seed", 1, "seed for the random workload driver")
		debug = flag.Bool("debug", false, "enable debug logging to stderr")
	)
	flag.Parse()

	logger.Init(logger.Options{Enabled: *debug, Level: slog.LevelDebug})

	m, err := NewModel(uint32(*size), *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "allocviz: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "allocviz: %v\n", err)
		os.Exit(1)
	}

	if fm, ok := finalModel.(Model); ok {
		if err := fm.Close(); err != nil {
			logger.Warn("error closing resources", "error", err)
		}
	}
}
