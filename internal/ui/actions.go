package ui

import (
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/catalog/internal/catalog"
	"github.com/five82/catalog/internal/state"
)

// reload takes a fresh snapshot from the store and recomputes the view.
func (m *Model) reload() {
	if m.store != nil {
		m.products = m.store.Products()
	}
	m.refresh()
}

// refresh runs filter, sort and paginate over the current snapshot. The page
// is clamped so a shrinking list never leaves the pager out of range.
func (m *Model) refresh() {
	filtered := catalog.Filter(m.products, m.search.Value())
	m.visible = m.sorter.Sort(filtered, m.sortKey, m.sortDir)

	total := catalog.TotalPages(len(m.visible), catalog.PageSize)
	m.page = catalog.ClampPage(m.page, total)
	m.pager.TotalPages = total
	m.pager.Page = m.page - 1
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.currentPage().Items)
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) currentPage() catalog.Page {
	return catalog.Paginate(m.visible, m.page, catalog.PageSize)
}

// gotoPage moves within [1, TotalPages]; anything else is ignored.
func (m *Model) gotoPage(n int) {
	if n < 1 || n > m.pager.TotalPages || n == m.page {
		return
	}
	m.page = n
	m.pager.Page = n - 1
	m.cursor = 0
}

// typePageDigit extends the page number typed so far with d. When the longer
// number is not a page, d starts a new number on its own.
func (m *Model) typePageDigit(typed string, d rune) {
	for _, candidate := range []string{typed + string(d), string(d)} {
		n, err := strconv.Atoi(candidate)
		if err != nil || n < 1 || n > m.pager.TotalPages {
			continue
		}
		m.digits = candidate
		m.gotoPage(n)
		return
	}
}

func (m Model) selected() (catalog.Product, bool) {
	items := m.currentPage().Items
	if m.cursor < 0 || m.cursor >= len(items) {
		return catalog.Product{}, false
	}
	return items[m.cursor], true
}

// beginEdit loads p into the form and focuses it.
func (m *Model) beginEdit(p catalog.Product) tea.Cmd {
	m.form.load(p)
	m.focus = focusForm
	return m.form.focus(fieldName)
}

// beginDelete loads p into the form and asks for confirmation. The form keeps
// p when the dialog is dismissed.
func (m *Model) beginDelete(p catalog.Product) {
	m.form.load(p)
	m.showConfirm = true
}

// submitForm validates the draft and adds or edits. Validation failures stay
// on the form; store failures are reported in the header.
func (m *Model) submitForm() {
	err := m.saveDraft()
	if catalog.IsValidationError(err) {
		m.form.err = err
		return
	}
	m.setNotice(err)

	m.form.clear()
	m.form.blur()
	m.showConfirm = false
	m.focus = focusList
	m.reload()
}

func (m *Model) saveDraft() error {
	patch, err := catalog.Validate(m.form.draft())
	if err != nil {
		return err
	}
	if m.form.editing {
		_, err = m.store.Edit(m.ctx, m.form.editID, patch)
		return err
	}
	_, _, err = m.store.Add(m.ctx, patch)
	return err
}

// cancelForm discards the draft without touching the store.
func (m *Model) cancelForm() {
	m.form.clear()
	m.form.blur()
	m.focus = focusList
}

// confirmDelete removes the product currently loaded in the form.
func (m *Model) confirmDelete() {
	m.showConfirm = false
	if !m.form.editing {
		return
	}
	_, err := m.store.Remove(m.ctx, m.form.editID)
	m.setNotice(err)

	m.form.clear()
	m.form.blur()
	m.focus = focusList
	m.reload()
}

// dismissConfirm only hides the dialog.
func (m *Model) dismissConfirm() {
	m.showConfirm = false
}

func (m *Model) setNotice(err error) {
	m.notice = err
	if err == nil {
		return
	}
	if errors.Is(err, state.ErrNotFound) {
		m.log.Warn("product vanished before update", zap.Error(err))
		return
	}
	m.log.Error("catalog update failed", zap.Error(err))
}
