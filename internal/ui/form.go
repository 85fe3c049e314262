package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/catalog/internal/catalog"
)

const (
	fieldName = iota
	fieldCategory
	fieldPrice
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Category", "Price"}

// formState is the create/edit form. editing with editID set means Edit mode;
// otherwise submit creates a new product.
type formState struct {
	inputs  [fieldCount]textinput.Model
	focused int
	editing bool
	editID  int64
	err     error
}

func newFormState() formState {
	var f formState
	placeholders := [fieldCount]string{"Office Chair", "Furniture", "120"}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 0
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	return f
}

func (f formState) draft() catalog.Draft {
	return catalog.Draft{
		Name:     f.inputs[fieldName].Value(),
		Category: f.inputs[fieldCategory].Value(),
		Price:    f.inputs[fieldPrice].Value(),
	}
}

// load enters Edit mode for p with its fields pre-filled.
func (f *formState) load(p catalog.Product) {
	d := catalog.DraftFrom(p)
	f.inputs[fieldName].SetValue(d.Name)
	f.inputs[fieldCategory].SetValue(d.Category)
	f.inputs[fieldPrice].SetValue(d.Price)
	f.editing = true
	f.editID = p.ID
	f.err = nil
}

// clear returns the form to Create mode with empty fields.
func (f *formState) clear() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.editing = false
	f.editID = 0
	f.err = nil
}

func (f *formState) focus(i int) tea.Cmd {
	f.focused = (i + fieldCount) % fieldCount
	for j := range f.inputs {
		if j != f.focused {
			f.inputs[j].Blur()
		}
	}
	return f.inputs[f.focused].Focus()
}

func (f *formState) blur() {
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *formState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}
