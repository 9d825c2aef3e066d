package views

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RenameTagMsg is sent when a tag edit is submitted
type RenameTagMsg struct {
	Index int
	Value string
}

// RenameModel edits the text of one picked tag
type RenameModel struct {
	ViewState
	form  *InputForm
	index int
	orig  string
}

// NewRenameModel creates a new tag editor
func NewRenameModel() *RenameModel {
	return &RenameModel{
		form: NewInputForm("Tag", "tag text", 200),
	}
}

// SetTarget loads the tag to edit
func (m *RenameModel) SetTarget(index int, tag string) {
	m.index = index
	m.orig = tag
	m.form.SetValue(tag)
	m.form.Focus()
	m.ClearMessage()
}

// Init initializes the editor
func (m *RenameModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the editor
func (m *RenameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBrowserMsg{} }

		case key.Matches(keyMsg, m.form.Keys.Submit):
			value := m.form.Value()
			if value == "" {
				// a blank edit keeps the old text
				return m, func() tea.Msg { return SwitchToBrowserMsg{} }
			}
			index := m.index
			return m, func() tea.Msg { return RenameTagMsg{Index: index, Value: value} }
		}
	}

	return m, m.form.Update(msg)
}

// View renders the editor
func (m *RenameModel) View() string {
	return NewViewBuilder().
		Title("Edit Tag").
		Muted(m.orig).
		BlankLine().
		Line(m.form.Render()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Raw(m.form.RenderHelp("save")).
		String()
}
