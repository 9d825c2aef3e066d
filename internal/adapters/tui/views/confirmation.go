package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmClearMsg is sent when clearing every tag was confirmed
type ConfirmClearMsg struct{}

// ConfirmClearModel asks before removing every picked tag
type ConfirmClearModel struct {
	ViewState
	Keys  ConfirmKeyMap
	count int
}

// NewConfirmClearModel creates a new confirmation model with default keys
func NewConfirmClearModel() *ConfirmClearModel {
	return &ConfirmClearModel{Keys: DefaultConfirmKeys}
}

// SetCount records how many tags would be removed
func (m *ConfirmClearModel) SetCount(n int) {
	m.count = n
}

// Init initializes the view
func (m *ConfirmClearModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmClearModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.Keys.Cancel):
		return m, func() tea.Msg { return SwitchToBrowserMsg{} }
	case key.Matches(keyMsg, m.Keys.Confirm):
		return m, func() tea.Msg { return ConfirmClearMsg{} }
	}
	return m, nil
}

// View renders the confirmation prompt
func (m *ConfirmClearModel) View() string {
	return NewViewBuilder().
		Title("Clear Tags").
		Line(RenderConfirmPrompt(fmt.Sprintf("Remove all %d tags?", m.count))).
		String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
