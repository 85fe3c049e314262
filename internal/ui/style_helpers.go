package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BgStyle renders segments that share one background color. Lipgloss resets
// between styled segments, which otherwise leaves unpainted gaps at the spaces.
type BgStyle struct {
	bg    lipgloss.Color
	space string
}

// NewBgStyle creates a helper for the given color.
func NewBgStyle(bgColor string) BgStyle {
	bg := lipgloss.Color(bgColor)
	return BgStyle{
		bg:    bg,
		space: lipgloss.NewStyle().Background(bg).Render(" "),
	}
}

// Render styles text word by word so that spaces keep the background.
func (b BgStyle) Render(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(b.bg)
	if !strings.Contains(text, " ") {
		return styled.Render(text)
	}
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, b.space)
}

// Space returns a single painted space.
func (b BgStyle) Space() string {
	return b.space
}

// Spaces returns n painted spaces.
func (b BgStyle) Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(b.space, n)
}

// Sep returns a painted separator.
func (b BgStyle) Sep(sep string) string {
	return lipgloss.NewStyle().Background(b.bg).Render(sep)
}

// Join joins parts with a painted separator.
func (b BgStyle) Join(parts []string, sep string) string {
	return strings.Join(parts, b.Sep(sep))
}

// FillLine pads or cuts content to exactly width cells on the background.
func (b BgStyle) FillLine(content string, width int) string {
	return lipgloss.NewStyle().Background(b.bg).Width(width).MaxWidth(width).Render(content)
}
