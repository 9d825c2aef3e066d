package tui

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"promptbuilder/internal/adapters/tui/views"
	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBrowser ViewState = iota
	ViewSearch
	ViewHelp
	ViewSettings
	ViewRename
	ViewConfirmClear
)

// SessionStore restores the state saved by a previous run
type SessionStore interface {
	LoadSession() (domain.Snapshot, bool, error)
}

// Option configures the App
type Option func(*App)

// WithClipboard sets the function used to copy tags
func WithClipboard(copy func(string) error) Option {
	return func(a *App) {
		a.copy = copy
	}
}

// WithLinkOpener sets how danbooru links are opened
func WithLinkOpener(opener ports.LinkOpener) Option {
	return func(a *App) {
		a.opener = opener
	}
}

// WithSession restores the saved session after the first load
func WithSession(store SessionStore) Option {
	return func(a *App) {
		a.session = store
	}
}

// App is the main TUI application model
type App struct {
	widget  *application.Widget
	copy    func(string) error
	opener  ports.LinkOpener
	session SessionStore
	loaded  bool

	state    ViewState
	browser  *views.BrowserModel
	search   *views.SearchModel
	help     *views.HelpModel
	settings *views.SettingsModel
	rename   *views.RenameModel
	confirm  *views.ConfirmClearModel

	width  int
	height int
}

// NewApp creates a new TUI application around widget
func NewApp(widget *application.Widget, opts ...Option) *App {
	a := &App{
		widget: widget,
		state:  ViewBrowser,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.browser = views.NewBrowserModel(widget, a.copy, a.opener)
	a.search = views.NewSearchModel(widget, a.copy)
	a.help = views.NewHelpModel()
	a.settings = views.NewSettingsModel(widget)
	a.rename = views.NewRenameModel()
	a.confirm = views.NewConfirmClearModel()
	return a
}

// Init starts the category data load
func (a *App) Init() tea.Cmd {
	return a.load(a.widget.Load)
}

func (a *App) load(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return views.LoadedMsg{Err: fn(context.Background())}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.browser.SetSize(msg.Width, msg.Height)
		a.search.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		a.settings.SetSize(msg.Width, msg.Height)
		a.rename.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		return a, nil

	case views.LoadedMsg:
		if msg.Err == nil && !a.loaded {
			a.loaded = true
			a.restoreSession()
		}
		a.browser.Refresh()
		return a, nil

	case views.ReloadMsg:
		a.browser.SetMessage("Reloading...", false)
		return a, a.load(a.widget.Reload)

	case views.RemoteSnapshotMsg:
		if err := a.widget.ApplySnapshot(msg.Snapshot); err != nil {
			a.browser.SetMessage(err.Error(), true)
		}
		a.browser.Refresh()
		return a, nil

	case views.GenerateMsg:
		if err := a.widget.TriggerGeneration(context.Background()); err != nil {
			a.browser.SetMessage(err.Error(), true)
		} else if len(a.widget.Tags()) > 0 {
			a.browser.SetMessage("Generating...", false)
		}
		return a, nil

	case views.GeneratedMsg:
		if msg.Err != nil {
			a.browser.SetMessage(fmt.Sprintf("Generation failed: %v", msg.Err), true)
		} else {
			a.browser.SetMessage("Generation finished", false)
		}
		return a, nil

	// View switching messages
	case views.SwitchToBrowserMsg:
		a.state = ViewBrowser
		a.browser.Refresh()
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToSearchMsg:
		a.state = ViewSearch
		a.search.Reset()
		return a, a.search.Init()

	case views.SwitchToSettingsMsg:
		a.state = ViewSettings
		a.settings.Reset()
		return a, nil

	case views.SwitchToRenameMsg:
		a.state = ViewRename
		a.rename.SetTarget(msg.Index, msg.Tag)
		return a, nil

	case views.SwitchToConfirmClearMsg:
		a.state = ViewConfirmClear
		a.confirm.SetCount(len(a.widget.Tags()))
		return a, nil

	// Results from sub views
	case views.SearchSelectMsg:
		a.state = ViewBrowser
		if err := a.widget.Pick(context.Background(), msg.Result.Value); err != nil {
			a.browser.SetMessage(err.Error(), true)
		} else {
			a.browser.SetMessage("Added "+msg.Result.Value, false)
		}
		a.browser.Refresh()
		return a, nil

	case views.RenameTagMsg:
		a.state = ViewBrowser
		if _, err := a.widget.RenameAt(context.Background(), msg.Index, msg.Value); err != nil {
			a.browser.SetMessage(err.Error(), true)
		}
		a.browser.Refresh()
		return a, nil

	case views.ConfirmClearMsg:
		a.state = ViewBrowser
		if err := a.widget.Clear(context.Background()); err != nil {
			a.browser.SetMessage(err.Error(), true)
		} else {
			a.browser.SetMessage("Cleared all tags", false)
		}
		a.browser.Refresh()
		return a, nil

	case views.StatusMsg:
		_, cmd := a.browser.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBrowser:
		_, cmd = a.browser.Update(msg)
	case ViewSearch:
		_, cmd = a.search.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	case ViewSettings:
		_, cmd = a.settings.Update(msg)
	case ViewRename:
		_, cmd = a.rename.Update(msg)
	case ViewConfirmClear:
		_, cmd = a.confirm.Update(msg)
	}

	return a, cmd
}

func (a *App) restoreSession() {
	if a.session == nil {
		return
	}
	snapshot, ok, err := a.session.LoadSession()
	if err != nil {
		log.Printf("promptbuilder: restoring session: %v", err)
		return
	}
	if !ok {
		return
	}
	if err := a.widget.ApplySnapshot(snapshot); err != nil {
		log.Printf("promptbuilder: restoring session: %v", err)
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewSearch:
		return a.search.View()
	case ViewHelp:
		return a.help.View()
	case ViewSettings:
		return a.settings.View()
	case ViewRename:
		return a.rename.View()
	case ViewConfirmClear:
		return a.confirm.View()
	default:
		return a.browser.View()
	}
}
