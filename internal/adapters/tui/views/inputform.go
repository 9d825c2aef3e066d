package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

// DefaultInputFormKeys returns the default input form key bindings
var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// InputForm is a labelled single-line text field
type InputForm struct {
	Label string
	Input textinput.Model
	Keys  InputFormKeyMap
}

// NewInputForm creates a focused form. charLimit <= 0 keeps the textinput default.
func NewInputForm(label, placeholder string, charLimit int) *InputForm {
	input := textinput.New()
	input.Placeholder = placeholder
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	input.Focus()
	return &InputForm{
		Label: label,
		Input: input,
		Keys:  DefaultInputFormKeys,
	}
}

// Update passes the message to the text field
func (f *InputForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.Input, cmd = f.Input.Update(msg)
	return cmd
}

// Value returns the trimmed text
func (f *InputForm) Value() string {
	return strings.TrimSpace(f.Input.Value())
}

// SetValue replaces the text and moves the cursor to its end
func (f *InputForm) SetValue(value string) {
	f.Input.SetValue(value)
	f.Input.CursorEnd()
}

// Focus gives the field keyboard focus
func (f *InputForm) Focus() tea.Cmd {
	return f.Input.Focus()
}

// Render renders the label and the field
func (f *InputForm) Render() string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(f.Label))
	b.WriteString("\n")
	if f.Input.Focused() {
		b.WriteString(styles.InputFocused.Render(f.Input.View()))
	} else {
		b.WriteString(styles.InputField.Render(f.Input.View()))
	}

	return b.String()
}

// RenderHelp renders the help text for the form
func (f *InputForm) RenderHelp(submitText string) string {
	return styles.HelpKey.Render("enter") + " " + styles.HelpDesc.Render(submitText) + "  " +
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel")
}
