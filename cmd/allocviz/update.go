package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Init satisfies tea.Model; allocviz needs no startup command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "a":
			m.allocRandom()
			return m, nil
		case "f":
			m.freeRandom()
			return m, nil
		case "r":
			m.reset()
			return m, nil
		}
	}
	return m, nil
}
