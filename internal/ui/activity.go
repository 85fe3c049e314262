package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/catalog/internal/logtail"
)

const activityLines = 200

// activityState holds the log overlay.
type activityState struct {
	viewport viewport.Model
	entries  []logtail.Entry
	err      error
	loaded   bool
}

type activityMsg struct {
	entries []logtail.Entry
	err     error
}

// loadActivityCmd reads the log tail off the update loop.
func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if path == "" {
			return activityMsg{}
		}
		entries, err := logtail.Read(path, activityLines)
		return activityMsg{entries: entries, err: err}
	}
}

func (m *Model) handleActivity(msg activityMsg) {
	m.activity.entries = msg.entries
	m.activity.err = msg.err
	m.activity.loaded = true
	m.resizeActivity()
	m.activity.viewport.SetContent(m.activityContent())
	m.activity.viewport.GotoBottom()
}

func (m *Model) resizeActivity() {
	w := max(m.width-6, 10)
	h := max(m.height-6, 3)
	if m.activity.viewport.Width == 0 {
		m.activity.viewport = viewport.New(w, h)
		return
	}
	m.activity.viewport.Width = w
	m.activity.viewport.Height = h
}

func (m Model) handleActivityKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "a", "q":
		m.showActivity = false
		return m, nil
	case "R":
		return m, loadActivityCmd(m.logPath)
	}
	var cmd tea.Cmd
	m.activity.viewport, cmd = m.activity.viewport.Update(msg)
	return m, cmd
}

func (m Model) activityContent() string {
	styles := m.theme.Styles()
	if m.activity.err != nil {
		return styles.DangerText.Render(m.activity.err.Error())
	}
	if len(m.activity.entries) == 0 {
		return styles.FaintText.Render("No activity yet.")
	}

	lines := make([]string, 0, len(m.activity.entries))
	for _, e := range m.activity.entries {
		lines = append(lines, m.formatEntry(e, styles))
	}
	return strings.Join(lines, "\n")
}

func (m Model) formatEntry(e logtail.Entry, styles Styles) string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(styles.FaintText.Render(e.Time.Local().Format("15:04:05")))
		b.WriteString(" ")
	}
	if e.Level != "" {
		b.WriteString(levelStyle(e.Level, styles).Render(fmt.Sprintf("%-5s", strings.ToUpper(e.Level))))
		b.WriteString(" ")
	}
	b.WriteString(styles.Text.Render(e.Message))
	for _, k := range e.FieldKeys() {
		b.WriteString(" ")
		b.WriteString(styles.MutedText.Render(k + "=" + e.Fields[k]))
	}
	return b.String()
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch strings.ToLower(level) {
	case "debug":
		return styles.InfoText
	case "warn":
		return styles.WarningText
	case "error", "dpanic", "panic", "fatal":
		return styles.DangerText
	default:
		return styles.SuccessText
	}
}

func (m Model) renderActivity() string {
	title := "Activity"
	if m.logPath != "" {
		title += "  " + truncateMiddle(m.logPath, max(m.width-20, 10))
	}
	body := m.activity.viewport.View()
	if !m.activity.loaded {
		body = m.theme.Styles().FaintText.Render("Loading...")
	}
	return m.renderTitledBox(title, body, m.width, m.height, true)
}
