package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderModal centers content in a bordered box over the whole screen.
func (m Model) renderModal(content string, width int, border string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(width).
		Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

// renderConfirm renders the delete confirmation for the product loaded in the
// form.
func (m Model) renderConfirm() string {
	styles := m.theme.Styles()
	d := m.form.draft()

	var b strings.Builder
	b.WriteString(styles.DangerText.Render("Delete product?"))
	b.WriteString("\n\n")
	b.WriteString(styles.Text.Bold(true).Render(d.Name))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render(fmt.Sprintf("%s · %s", d.Category, formatPrice(d.Price))))
	b.WriteString("\n\n")
	b.WriteString(styles.AccentText.Render("y"))
	b.WriteString(styles.MutedText.Render(" delete   "))
	b.WriteString(styles.AccentText.Render("n/esc"))
	b.WriteString(styles.MutedText.Render(" keep"))

	return m.renderModal(b.String(), 40, m.theme.Danger)
}
