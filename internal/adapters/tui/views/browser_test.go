package views

import (
	"context"
	"slices"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

const testPayload = `{
	"Jobs": {
		"Fantasy": {"_data": ["knight"], "Magic": ["wizard", "witch"]},
		"Modern": ["doctor", "nurse"]
	},
	"Colors": ["red", "blue", "dark red"]
}`

type staticSource struct{}

func (staticSource) Fetch(ctx context.Context) (*ports.FetchResponse, error) {
	return &ports.FetchResponse{Success: true, Data: []byte(testPayload)}, nil
}

type recordingOpener struct {
	urls []string
}

func (o *recordingOpener) OpenURL(url string) error {
	o.urls = append(o.urls, url)
	return nil
}

type harness struct {
	widget  *application.Widget
	browser *BrowserModel
	copied  []string
	opener  *recordingOpener
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{opener: &recordingOpener{}}
	h.widget = application.NewWidget(staticSource{})
	if err := h.widget.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	h.browser = NewBrowserModel(h.widget, func(s string) error {
		h.copied = append(h.copied, s)
		return nil
	}, h.opener)
	h.browser.Refresh()
	return h
}

func (h *harness) press(keys ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = h.browser.Update(k)
	}
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func rowKeys(rows []TreeRow) []string {
	keys := make([]string, len(rows))
	for i, r := range rows {
		keys[i] = r.Path.Key()
	}
	return keys
}

func TestBrowser_OpenCategoryDescends(t *testing.T) {
	h := newHarness(t)

	if got := rowKeys(h.browser.Rows()); !slices.Equal(got, []string{"Jobs", "Colors"}) {
		t.Fatalf("rows = %v", got)
	}

	h.press(enter)

	if got := h.widget.Selection(); !got.Equal(domain.Path{"Jobs", "Fantasy"}) {
		t.Errorf("Selection() = %v, want Jobs>Fantasy", got)
	}
	want := []string{"Jobs", "Jobs>Fantasy", "Jobs>Modern", "Colors"}
	if got := rowKeys(h.browser.Rows()); !slices.Equal(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestBrowser_ToggleAndCollapse(t *testing.T) {
	h := newHarness(t)

	h.press(enter)             // expand Jobs
	h.press(runes("j"), space) // expand Fantasy
	want := []string{"Jobs", "Jobs>Fantasy", "Jobs>Fantasy>Magic", "Jobs>Modern", "Colors"}
	if got := rowKeys(h.browser.Rows()); !slices.Equal(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}

	// h on an expanded node collapses it, on a collapsed one climbs to the parent
	h.press(runes("h"))
	if h.widget.IsExpanded(domain.Path{"Jobs", "Fantasy"}) {
		t.Error("Fantasy should be collapsed")
	}
	h.press(runes("h"), runes("h"))
	if h.widget.IsExpanded(domain.Path{"Jobs"}) {
		t.Error("Jobs should be collapsed")
	}
	if got := rowKeys(h.browser.Rows()); !slices.Equal(got, []string{"Jobs", "Colors"}) {
		t.Errorf("rows = %v", got)
	}
}

func TestBrowser_PickAndCopy(t *testing.T) {
	h := newHarness(t)

	h.press(enter, tab, enter)

	if got := h.widget.Tags(); !slices.Equal(got, []string{"knight"}) {
		t.Fatalf("Tags() = %v", got)
	}

	h.press(runes("y"))
	if !slices.Equal(h.copied, []string{"knight"}) {
		t.Errorf("copied = %v", h.copied)
	}
}

func TestBrowser_Filter(t *testing.T) {
	h := newHarness(t)

	h.press(runes("j"), enter) // Colors
	h.press(tab, runes("/"), runes("r"), runes("e"), enter)

	if got := h.widget.Filter(); got != "re" {
		t.Fatalf("Filter() = %q", got)
	}
	var values []string
	for _, item := range h.widget.VisibleItems() {
		values = append(values, item.Value)
	}
	if !slices.Equal(values, []string{"red", "dark red"}) {
		t.Errorf("visible = %v", values)
	}

	// enter in the items pane picks again once the filter is closed
	h.press(enter)
	if got := h.widget.Tags(); !slices.Equal(got, []string{"red"}) {
		t.Errorf("Tags() = %v", got)
	}
}

func TestBrowser_TagEditing(t *testing.T) {
	h := newHarness(t)
	for _, tag := range []string{"a", "b", "c"} {
		if err := h.widget.Pick(context.Background(), tag); err != nil {
			t.Fatal(err)
		}
	}
	h.browser.Refresh()
	h.press(tab, tab)
	if h.browser.Focus() != PaneTags {
		t.Fatalf("focus = %v", h.browser.Focus())
	}

	h.press(runes("L"))
	if got := h.widget.Tags(); !slices.Equal(got, []string{"b", "a", "c"}) {
		t.Errorf("after L Tags() = %v", got)
	}
	if h.browser.TagCursor() != 1 {
		t.Errorf("cursor should follow the moved tag, got %d", h.browser.TagCursor())
	}

	h.press(runes("l"), runes("H"))
	if got := h.widget.Tags(); !slices.Equal(got, []string{"b", "c", "a"}) {
		t.Errorf("after H Tags() = %v", got)
	}

	h.press(runes("d"))
	if got := h.widget.Tags(); !slices.Equal(got, []string{"b", "a"}) {
		t.Errorf("after d Tags() = %v", got)
	}

	cmd := h.press(runes("e"))
	if cmd == nil {
		t.Fatal("expected rename command")
	}
	msg, ok := cmd().(SwitchToRenameMsg)
	if !ok || msg.Index != 1 || msg.Tag != "a" {
		t.Errorf("rename msg = %#v", msg)
	}

	cmd = h.press(runes("c"))
	if _, ok := cmd().(SwitchToConfirmClearMsg); !ok {
		t.Error("c should ask for confirmation")
	}
}

func TestBrowser_DanbooruLink(t *testing.T) {
	h := newHarness(t)
	if err := h.widget.Pick(context.Background(), "tree (large)"); err != nil {
		t.Fatal(err)
	}
	h.browser.Refresh()
	h.press(tab, tab)

	h.press(runes("o"))
	if len(h.opener.urls) != 0 || !h.browser.MessageErr {
		t.Fatal("links are off by default")
	}

	settings := h.widget.Settings()
	settings.DanbooruLinks = true
	if err := h.widget.UpdateSettings(settings); err != nil {
		t.Fatal(err)
	}
	h.press(runes("o"))
	want := "https://danbooru.donmai.us/wiki_pages/tree%20%28large%29"
	if !slices.Equal(h.opener.urls, []string{want}) {
		t.Errorf("opened %v, want %s", h.opener.urls, want)
	}
}
