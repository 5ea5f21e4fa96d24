package main

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#7D56F4")
	usedColor    = lipgloss.Color("#04B575")
	freeColor    = lipgloss.Color("#383838")
	errorColor   = lipgloss.Color("#FF4B4B")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	usedBlockStyle = lipgloss.NewStyle().
			Background(usedColor).
			Foreground(lipgloss.Color("#0A0A0A"))

	freeBlockStyle = lipgloss.NewStyle().
			Background(freeColor).
			Foreground(lipgloss.Color("#AAAAAA"))

	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
