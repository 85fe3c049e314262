package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/catalog/internal/catalog"
	"github.com/five82/catalog/internal/prefs"
	"github.com/five82/catalog/internal/state"
)

// focusArea is the part of the screen that receives keys.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusForm
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Sorter    *catalog.Sorter
	Prefs     *prefs.File
	ThemeName string
	LogPath   string
	Logger    *zap.Logger
}

// Model is the root application state for Bubble Tea. It owns all transient
// catalog view state; the product collection itself lives in the store.
type Model struct {
	ctx     context.Context
	store   *state.Store
	sorter  *catalog.Sorter
	prefs   *prefs.File
	log     *zap.Logger
	logPath string

	keys     keyMap
	formKeys formKeyMap
	help     help.Model

	theme  Theme
	width  int
	height int
	ready  bool
	focus  focusArea

	search textinput.Model
	form   formState

	products []catalog.Product // store snapshot
	visible  []catalog.Product // filtered and sorted
	sortKey  catalog.SortKey
	sortDir  catalog.Direction
	page     int
	pager    paginator.Model
	cursor   int
	digits   string // page number typed so far

	showConfirm  bool
	showHelp     bool
	showActivity bool
	activity     activityState

	notice error // last store failure, cleared on the next successful action
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sorter := opts.Sorter
	if sorter == nil {
		sorter = catalog.NewSorter("")
	}
	themeName := opts.ThemeName
	if themeName == "" {
		themeName = prefs.Defaults().Theme
	}

	search := textinput.New()
	search.Placeholder = "name or category"
	search.CharLimit = 0
	search.Prompt = ""

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = catalog.PageSize

	m := Model{
		ctx:      ctx,
		store:    opts.Store,
		sorter:   sorter,
		prefs:    opts.Prefs,
		log:      log,
		logPath:  opts.LogPath,
		keys:     DefaultKeyMap(),
		formKeys: defaultFormKeyMap(),
		help:     help.New(),
		theme:    GetTheme(themeName),
		search:   search,
		form:     newFormState(),
		sortKey:  catalog.SortByName,
		sortDir:  catalog.Ascending,
		page:     1,
		pager:    pager,
	}
	m.reload()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeActivity()
		m.ready = true
		return m, nil

	case activityMsg:
		m.handleActivity(msg)
		return m, nil
	}

	if m.focus == focusSearch {
		return m.updateSearch(msg)
	}
	if m.focus == focusForm {
		cmd := m.form.update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	switch {
	case m.showHelp:
		return m.renderHelp()
	case m.showActivity:
		return m.renderActivity()
	case m.showConfirm:
		return m.renderConfirm()
	}
	return m.renderMain()
}

// handleKey routes keyboard input by overlay first, then by focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}
	if m.showActivity {
		return m.handleActivityKey(msg)
	}
	if m.showConfirm {
		return m.handleConfirmKey(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusForm:
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	digits := m.digits
	m.digits = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = true
		return m, loadActivityCmd(m.logPath)

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.ClearQuery):
		if m.search.Value() != "" {
			m.search.Reset()
			m.refresh()
		}

	case key.Matches(msg, m.keys.FocusForm):
		m.focus = focusForm
		return m, m.form.focus(m.form.focused)

	case key.Matches(msg, m.keys.New):
		m.form.clear()
		m.focus = focusForm
		return m, m.form.focus(fieldName)

	case key.Matches(msg, m.keys.Edit):
		if p, ok := m.selected(); ok {
			return m, m.beginEdit(p)
		}

	case key.Matches(msg, m.keys.Delete):
		if p, ok := m.selected(); ok {
			m.beginDelete(p)
		}

	case key.Matches(msg, m.keys.CycleSort):
		m.sortKey = m.sortKey.Next()
		m.refresh()

	case key.Matches(msg, m.keys.ToggleDir):
		m.sortDir = m.sortDir.Toggle()
		m.refresh()

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.currentPage().Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.PrevPage):
		m.gotoPage(m.page - 1)

	case key.Matches(msg, m.keys.NextPage):
		m.gotoPage(m.page + 1)

	case key.Matches(msg, m.keys.GotoPage):
		if len(msg.Runes) == 1 {
			m.typePageDigit(digits, msg.Runes[0])
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc", "enter", "tab":
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}
	return m.updateSearch(msg)
}

func (m Model) updateSearch(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.formKeys.Cancel):
		m.cancelForm()
		return m, nil
	case key.Matches(msg, m.formKeys.Submit):
		m.submitForm()
		return m, nil
	case key.Matches(msg, m.formKeys.Next):
		return m, m.form.focus(m.form.focused + 1)
	case key.Matches(msg, m.formKeys.Prev):
		return m, m.form.focus(m.form.focused - 1)
	}
	return m, m.form.update(msg)
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.formKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.formKeys.Confirm):
		m.confirmDelete()
	case key.Matches(msg, m.formKeys.Dismiss):
		m.dismissConfirm()
	}
	return m, nil
}

func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefs == nil {
		return
	}
	if err := m.prefs.Save(prefs.Prefs{Theme: m.theme.Name}); err != nil {
		m.log.Warn("save prefs failed", zap.Error(err))
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// Run starts the Bubble Tea program and blocks until it exits or the options
// context is cancelled.
func Run(opts Options) error {
	if opts.Store == nil {
		return fmt.Errorf("ui requires a product store")
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
