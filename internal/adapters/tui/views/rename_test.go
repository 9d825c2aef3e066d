package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRenameModel(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		typed  string
		wantOK bool
		want   string
	}{
		{name: "append text", tag: "red", typed: "dish", wantOK: true, want: "reddish"},
		{name: "trims", tag: " crimson ", wantOK: true, want: "crimson"},
		{name: "blank cancels", tag: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRenameModel()
			m.SetTarget(2, tt.tag)
			if tt.typed != "" {
				m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.typed)})
			}

			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
			if cmd == nil {
				t.Fatal("expected a command on enter")
			}
			msg := cmd()

			if !tt.wantOK {
				if _, ok := msg.(SwitchToBrowserMsg); !ok {
					t.Errorf("msg = %#v, want SwitchToBrowserMsg", msg)
				}
				return
			}
			got, ok := msg.(RenameTagMsg)
			if !ok {
				t.Fatalf("msg = %#v, want RenameTagMsg", msg)
			}
			if got.Index != 2 || got.Value != tt.want {
				t.Errorf("msg = %+v, want {2 %q}", got, tt.want)
			}
		})
	}
}

func TestRenameModel_Escape(t *testing.T) {
	m := NewRenameModel()
	m.SetTarget(0, "red")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(SwitchToBrowserMsg); !ok {
		t.Error("esc should return to the browser")
	}
}
