package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the allocator's current block chain as a row of
// proportionally sized bars, used blocks in one color and free blocks in
// another.
func (m Model) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n", m.err))
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("allocviz"))
	b.WriteString("\n")

	width := m.width
	if width <= 0 {
		width = 80
	}
	b.WriteString(m.renderBar(width))
	b.WriteString("\n\n")

	stats := m.a.Stats()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"allocs=%d frees=%d splits=%d coalesced=%d live=%d  %s",
		stats.AllocCalls, stats.FreeCalls, stats.SplitCount,
		stats.CoalesceForward+stats.CoalesceBackward, len(m.live), m.lastMsg,
	)))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("a alloc  f free  r reset  q quit"))
	return b.String()
}

func (m Model) renderBar(width int) string {
	total := m.ar.Len()
	if total == 0 {
		return ""
	}

	var b strings.Builder
	block := m.a.Head()
	for {
		cells := int(uint64(block.Size) * uint64(width) / uint64(total))
		if cells == 0 && block.Size > 0 {
			cells = 1
		}

		style := freeBlockStyle
		if block.IsUsed() {
			style = usedBlockStyle
		}
		label := fmt.Sprintf("%d", block.Size)
		b.WriteString(style.Render(lipgloss.PlaceHorizontal(cells, lipgloss.Center, label)))

		next, ok := m.a.Next(block)
		if !ok {
			break
		}
		block = next
	}
	return b.String()
}
