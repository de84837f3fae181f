package cmd

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"refbook/internal/catalog"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
	categoryStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// formatEntry renders the full card for a single entry (lookup output).
func formatEntry(e *catalog.Entry) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(e.Title))
	b.WriteString("  ")
	b.WriteString(faintStyle.Render("(" + e.ID + ")"))
	b.WriteString("\n")
	b.WriteString(faintStyle.Render(e.Category))
	b.WriteString("\n")
	if e.Summary != "" {
		b.WriteString(e.Summary)
		b.WriteString("\n")
	}
	b.WriteString(faintStyle.Render(e.ReferencePath))
	return b.String()
}

// formatEntryLine renders the one-line form used by list and search output.
func formatEntryLine(e *catalog.Entry) string {
	line := "  " + faintStyle.Render(e.ID) + "  " + titleStyle.Render(e.Title)
	if e.Summary != "" {
		line += " — " + e.Summary
	}
	return line
}
