package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/catalog/internal/catalog"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("catalog", styles.Logo)}

	parts = append(parts,
		bg.Render("Products:", styles.MutedText)+bg.Space()+
			bg.Render(strconv.Itoa(len(m.products)), styles.Text))

	if q := m.search.Value(); q != "" {
		parts = append(parts,
			bg.Render("Matches:", styles.MutedText)+bg.Space()+
				bg.Render(strconv.Itoa(len(m.visible)), styles.InfoText)+bg.Space()+
				bg.Render("/"+truncate(q, 18), styles.AccentText))
	}

	parts = append(parts,
		bg.Render("Sort:", styles.MutedText)+bg.Space()+
			bg.Render(m.sortKey.Label()+" "+m.sortDir.Arrow(), styles.Text))

	if m.pager.TotalPages > 0 {
		parts = append(parts,
			bg.Render("Page:", styles.MutedText)+bg.Space()+
				bg.Render(m.pager.View(), styles.Text))
	}

	if m.notice != nil {
		parts = append(parts, bg.Render(truncate(m.notice.Error(), 60), styles.DangerText))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, sep))
}

// renderCommandBar renders the key hints for the focused area.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	var bindings []key.Binding
	switch m.focus {
	case focusForm:
		bindings = m.formKeys.ShortHelp()
	case focusSearch:
		bindings = []key.Binding{
			key.NewBinding(key.WithHelp("enter/esc", "Done")),
			m.formKeys.Quit,
		}
	default:
		bindings = m.keys.ShortHelp()
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		h := b.Help()
		segments = append(segments,
			bg.Render(h.Key, styles.AccentText)+colon+bg.Render(h.Desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, bg.Spaces(2)))
}

// renderPageStrip renders prev, page numbers and next.
func (m Model) renderPageStrip() string {
	styles := m.theme.Styles()
	page := m.currentPage()
	if page.TotalPages == 0 {
		return styles.FaintText.Render("No pages")
	}

	prev := styles.FaintText.Render("‹ prev")
	if page.HasPrev() {
		prev = styles.AccentText.Render("‹ prev")
	}
	next := styles.FaintText.Render("next ›")
	if page.HasNext() {
		next = styles.AccentText.Render("next ›")
	}

	numbers := make([]string, 0, page.TotalPages)
	for n := 1; n <= page.TotalPages; n++ {
		label := strconv.Itoa(n)
		if n == page.Number {
			numbers = append(numbers, m.theme.Styles().Selected.Bold(true).Render(" "+label+" "))
			continue
		}
		numbers = append(numbers, styles.MutedText.Render(" "+label+" "))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, prev, "  ", strings.Join(numbers, ""), "  ", next)
}

func sortHint(k catalog.SortKey, dir catalog.Direction) string {
	return "sorted by " + strings.ToLower(k.Label()) + " " + dir.Arrow()
}

// truncate truncates a string to max runes with ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// truncateMiddle keeps the start and the (longer) end of s.
func truncateMiddle(s string, max int) string {
	runes := []rune(s)
	if max <= 0 {
		return ""
	}
	if len(runes) <= max {
		return s
	}
	if max <= 5 {
		return string(runes[:max])
	}
	endLen := (max - 3) * 2 / 3
	startLen := max - 3 - endLen
	return string(runes[:startLen]) + "..." + string(runes[len(runes)-endLen:])
}
