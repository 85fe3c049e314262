package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	h := m.help
	h.ShowAll = true
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Warning))
	h.Styles.FullDesc = styles.Text
	h.Styles.FullSeparator = styles.FaintText

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Bold(true).Render("List"))
	b.WriteString("\n")
	b.WriteString(h.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Bold(true).Render("Form"))
	b.WriteString("\n")
	b.WriteString(h.FullHelpView(m.formKeys.FullHelp()))

	return m.renderModal(b.String(), min(max(m.width-4, 40), 100), m.theme.Accent)
}
