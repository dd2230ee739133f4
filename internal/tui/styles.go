package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme groups the styles of the strlab TUI
type Theme struct {
	Accent lipgloss.Color

	heading  lipgloss.Style
	section  lipgloss.Style
	panel    lipgloss.Style
	task     lipgloss.Style
	selected lipgloss.Style
	prompt   lipgloss.Style
	result   lipgloss.Style
	failure  lipgloss.Style
	status   lipgloss.Style
}

// DefaultTheme returns the violet-on-dark theme
func DefaultTheme() Theme {
	accent := lipgloss.Color("#7C3AED")
	muted := lipgloss.Color("#6B7280")

	return Theme{
		Accent:   accent,
		heading:  lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		section:  lipgloss.NewStyle().Foreground(muted).Italic(true),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(muted).Padding(1, 2),
		task:     lipgloss.NewStyle().PaddingLeft(2),
		selected: lipgloss.NewStyle().PaddingLeft(2).Bold(true).Foreground(accent),
		prompt:   lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(accent).Padding(0, 1),
		result:   lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")),
		failure:  lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		status:   lipgloss.NewStyle().Background(lipgloss.Color("#374151")).Foreground(lipgloss.Color("#F9FAFB")).Padding(0, 1),
	}
}

// Heading renders the application name above every view
func (t Theme) Heading(title string) string {
	return t.heading.Render(title)
}

// Section renders a heading inside a panel, such as the task title
func (t Theme) Section(title string) string {
	return t.section.Render(title)
}

// Panel frames a view. The focused panel takes the accent border.
func (t Theme) Panel(content string, focused bool) string {
	if focused {
		return t.panel.BorderForeground(t.Accent).Render(content)
	}
	return t.panel.Render(content)
}

// TaskLine renders one menu entry as "K. Title" with a cursor mark
func (t Theme) TaskLine(key, title string, selected bool) string {
	line := fmt.Sprintf("%s. %s", key, title)
	if selected {
		return t.selected.Render("> " + line)
	}
	return t.task.Render("  " + line)
}

// Prompt frames the text input of a task
func (t Theme) Prompt(input string) string {
	return t.prompt.Render(input)
}

// Result renders one line of task output
func (t Theme) Result(line string) string {
	return t.result.Render(line)
}

// Failure renders a task error
func (t Theme) Failure(msg string) string {
	return t.failure.Render("Error: " + msg)
}

// Status renders the key help bar, stretched to width when known
func (t Theme) Status(help string, width int) string {
	if width > 0 {
		return t.status.Width(width).Render(help)
	}
	return t.status.Render(help)
}
