package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/adapters/tui/styles"
	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
)

// SettingsKeyMap defines key bindings for the settings view
type SettingsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Increase key.Binding
	Decrease key.Binding
	Save     key.Binding
	Cancel   key.Binding
}

var SettingsKeys = SettingsKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "toggle"),
	),
	Increase: key.NewBinding(
		key.WithKeys("+", "=", "l", "right"),
		key.WithHelp("+/-", "threshold"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("-", "h", "left"),
	),
	Save: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

type settingsRow int

const (
	rowAutoGenerate settingsRow = iota
	rowThreshold
	rowDanbooruLinks
	rowDebugMode
	settingsRowCount
)

// SettingsModel edits a copy of the widget settings and saves it on enter
type SettingsModel struct {
	ViewState
	widget *application.Widget
	draft  domain.Settings
	cursor settingsRow
}

// NewSettingsModel creates a new settings view model
func NewSettingsModel(widget *application.Widget) *SettingsModel {
	return &SettingsModel{widget: widget}
}

// Reset starts editing from the current settings
func (m *SettingsModel) Reset() {
	m.draft = m.widget.Settings()
	m.cursor = rowAutoGenerate
	m.ClearMessage()
}

// Draft returns the settings being edited
func (m *SettingsModel) Draft() domain.Settings {
	return m.draft
}

// Init initializes the settings view
func (m *SettingsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view
func (m *SettingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, SettingsKeys.Cancel):
		return m, func() tea.Msg { return SwitchToBrowserMsg{} }

	case key.Matches(keyMsg, SettingsKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, SettingsKeys.Down):
		if m.cursor < settingsRowCount-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, SettingsKeys.Toggle):
		m.toggle()

	case key.Matches(keyMsg, SettingsKeys.Increase):
		if m.cursor == rowThreshold {
			m.draft.AutoGenerateThreshold++
		}

	case key.Matches(keyMsg, SettingsKeys.Decrease):
		if m.cursor == rowThreshold && m.draft.AutoGenerateThreshold > 1 {
			m.draft.AutoGenerateThreshold--
		}

	case key.Matches(keyMsg, SettingsKeys.Save):
		if err := m.widget.UpdateSettings(m.draft); err != nil {
			m.SetMessage(err.Error(), true)
			return m, nil
		}
		return m, tea.Batch(
			func() tea.Msg { return StatusMsg{Text: "Settings saved"} },
			func() tea.Msg { return SwitchToBrowserMsg{} },
		)
	}

	return m, nil
}

func (m *SettingsModel) toggle() {
	switch m.cursor {
	case rowAutoGenerate:
		m.draft.AutoGenerate = !m.draft.AutoGenerate
	case rowDanbooruLinks:
		m.draft.DanbooruLinks = !m.draft.DanbooruLinks
	case rowDebugMode:
		m.draft.DebugMode = !m.draft.DebugMode
	}
}

// View renders the settings view
func (m *SettingsModel) View() string {
	v := NewViewBuilder().Title("Settings")

	v.Line(m.renderRow(rowAutoGenerate, "Auto-generate", checkbox(m.draft.AutoGenerate)))
	v.Line(m.renderRow(rowThreshold, "Auto-generate after", fmt.Sprintf("%d tags", m.draft.AutoGenerateThreshold)))
	v.Line(m.renderRow(rowDanbooruLinks, "Danbooru links", checkbox(m.draft.DanbooruLinks)))
	v.Line(m.renderRow(rowDebugMode, "Debug logging", checkbox(m.draft.DebugMode)))
	v.BlankLine()

	return v.Message(m.Message, m.MessageErr).
		Help(SettingsKeys.Toggle, SettingsKeys.Increase, SettingsKeys.Save, SettingsKeys.Cancel).
		String()
}

func (m *SettingsModel) renderRow(row settingsRow, label, value string) string {
	text := padRight(label, 22) + value
	if row == m.cursor {
		return styles.NodeSelected.Render(text)
	}
	return text
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}
