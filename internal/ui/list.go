package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/catalog/internal/catalog"
)

const (
	searchBoxHeight = 3
	formBoxHeight   = 10
	sideBySideWidth = 90
)

// renderContent lays out search, list, form and pager below the bars.
func (m Model) renderContent() string {
	contentHeight := max(m.height-2, searchBoxHeight+formBoxHeight+4)
	search := m.renderTitledBox("Search", m.searchLine(), m.width, searchBoxHeight, m.focus == focusSearch)

	paneHeight := contentHeight - searchBoxHeight - 1
	var panes string
	if m.width >= sideBySideWidth {
		listWidth := m.width * 3 / 5
		list := m.renderTitledBox(m.listTitle(), m.listContent(listWidth-2), listWidth, paneHeight, m.focus == focusList)
		form := m.renderTitledBox(m.formTitle(), m.formContent(), m.width-listWidth, paneHeight, m.focus == focusForm)
		panes = lipgloss.JoinHorizontal(lipgloss.Top, list, form)
	} else {
		listHeight := max(paneHeight-formBoxHeight, 4)
		list := m.renderTitledBox(m.listTitle(), m.listContent(m.width-2), m.width, listHeight, m.focus == focusList)
		form := m.renderTitledBox(m.formTitle(), m.formContent(), m.width, formBoxHeight, m.focus == focusForm)
		panes = lipgloss.JoinVertical(lipgloss.Left, list, form)
	}

	pager := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.renderPageStrip())
	return lipgloss.JoinVertical(lipgloss.Left, search, panes, pager)
}

func (m Model) searchLine() string {
	if m.focus != focusSearch && m.search.Value() == "" {
		return m.theme.Styles().FaintText.Render("press / to filter by name or category")
	}
	return m.search.View()
}

func (m Model) listTitle() string {
	title := "Products"
	if m.pager.TotalPages > 0 {
		title += " " + m.pager.View()
	}
	return title + " · " + sortHint(m.sortKey, m.sortDir)
}

// listContent renders the products of the current page as cards.
func (m Model) listContent(width int) string {
	styles := m.theme.Styles()
	page := m.currentPage()
	if len(page.Items) == 0 {
		if q := m.search.Value(); q != "" {
			return styles.FaintText.Render(fmt.Sprintf("No products match %q.", q))
		}
		return styles.FaintText.Render("No products yet. Press n to add one.")
	}

	var b strings.Builder
	for i, p := range page.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderCard(p, i == m.cursor, width))
	}
	return b.String()
}

func (m Model) renderCard(p catalog.Product, selected bool, width int) string {
	styles := m.theme.Styles()
	marker := "  "
	if selected {
		marker = "▸ "
	}
	lines := []string{
		marker + styles.Text.Bold(true).Render(truncate(p.Name, width-4)),
		"  " + styles.MutedText.Render(truncate(p.Category, width-4)),
		"  " + styles.AccentText.Render(formatPrice(strconv.FormatInt(p.Price, 10))) +
			"  " + styles.FaintText.Render("e edit · d delete"),
	}
	card := strings.Join(lines, "\n")
	if selected {
		return styles.Selected.Width(width).Render(card)
	}
	return card
}

func (m Model) formTitle() string {
	if m.form.editing {
		return "Edit product"
	}
	return "New product"
}

func (m Model) formContent() string {
	styles := m.theme.Styles()
	var b strings.Builder

	if m.form.editing {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("id %d", m.form.editID)))
	} else {
		b.WriteString(styles.MutedText.Render("n to start, tab to focus"))
	}
	b.WriteString("\n\n")

	label := lipgloss.NewStyle().Width(10)
	for i := range m.form.inputs {
		style := styles.MutedText
		if m.focus == focusForm && m.form.focused == i {
			style = styles.AccentText
		}
		b.WriteString(label.Inherit(style).Render(fieldLabels[i]))
		b.WriteString(m.form.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.form.err != nil {
		b.WriteString(styles.DangerText.Render(m.form.err.Error()))
	}
	return b.String()
}

func formatPrice(price string) string {
	return "$" + price
}

// renderTitledBox renders content in a box with the title embedded in the
// top border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	borderColor, bgColor := m.theme.Border, m.theme.SurfaceAlt
	if focused {
		borderColor, bgColor = m.theme.BorderFocus, m.theme.FocusBg
	}
	bg := NewBgStyle(bgColor)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColor))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 1)
	title = truncate(title, max(innerWidth-4, 1))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	top := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)
	bottom := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentLines := strings.Split(content, "\n")
	rows := make([]string, 0, max(height-2, 0))
	for i := 0; i < height-2; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		rows = append(rows, bg.Render("│", borderStyle)+bg.FillLine(line, innerWidth)+bg.Render("│", borderStyle))
	}

	return top + "\n" + strings.Join(rows, "\n") + "\n" + bottom
}
