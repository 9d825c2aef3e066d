package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, HelpKeys.Close) {
		return m, func() tea.Msg {
			return SwitchToBrowserMsg{}
		}
	}
	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Prompt Builder Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Everywhere"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab / shift+tab", "Next / previous pane"))
	b.WriteString(helpLine("y", "Copy tags to the clipboard"))
	b.WriteString(helpLine("c", "Clear all tags"))
	b.WriteString(helpLine("g", "Run generation"))
	b.WriteString(helpLine("f", "Search every category"))
	b.WriteString(helpLine("r", "Reload category data"))
	b.WriteString(helpLine("s", "Settings"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k", "Move up/down"))
	b.WriteString(helpLine("enter / l", "Open (expands, descends to first subgroup)"))
	b.WriteString(helpLine("space", "Expand / collapse"))
	b.WriteString(helpLine("h", "Collapse / go to parent"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Tags"))
	b.WriteString("\n")
	b.WriteString(helpLine("enter", "Add tag to prompt"))
	b.WriteString(helpLine("/", "Filter tags"))
	b.WriteString(helpLine("o", "Open danbooru wiki page"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Prompt"))
	b.WriteString("\n")
	b.WriteString(helpLine("h / l", "Move cursor"))
	b.WriteString(helpLine("H / L", "Move tag left / right"))
	b.WriteString(helpLine("e", "Edit tag"))
	b.WriteString(helpLine("d", "Delete tag"))
	b.WriteString("\n")

	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
