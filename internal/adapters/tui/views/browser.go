package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promptbuilder/internal/adapters/tui/styles"
	"promptbuilder/internal/application"
	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Toggle    key.Binding
	NextPane  key.Binding
	PrevPane  key.Binding
	Filter    key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Open      key.Binding
	Copy      key.Binding
	Clear     key.Binding
	Generate  key.Binding
	Search    key.Binding
	Reload    key.Binding
	Settings  key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("j/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h", "collapse"),
	),
	Right: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l", "open"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open/add"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	NextPane: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "pane"),
	),
	PrevPane: key.NewBinding(
		key.WithKeys("shift+tab"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter"),
	),
	MoveLeft: key.NewBinding(
		key.WithKeys("H"),
		key.WithHelp("H/L", "move tag"),
	),
	MoveRight: key.NewBinding(
		key.WithKeys("L"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x", "delete"),
		key.WithHelp("d", "delete"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "wiki"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "clear"),
	),
	Generate: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "generate"),
	),
	Search: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "search"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Settings: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "settings"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Pane identifies one of the three browser columns
type Pane int

const (
	PaneGroups Pane = iota
	PaneItems
	PaneTags
	paneCount
)

// TreeRow is one visible line of the category tree
type TreeRow struct {
	Path        domain.Path
	HasChildren bool
}

// BrowserModel shows the category tree, the tags of the active path and the
// picked tags side by side
type BrowserModel struct {
	ViewState
	widget *application.Widget
	copy   func(string) error
	opener ports.LinkOpener

	focus     Pane
	rows      []TreeRow
	rowPager  *Paginator
	items     []domain.Item
	itemPager *Paginator
	tagCursor int

	filter    textinput.Model
	filtering bool
}

// NewBrowserModel creates a new browser model. copy writes to the system
// clipboard and opener follows danbooru links; either may be nil.
func NewBrowserModel(widget *application.Widget, copy func(string) error, opener ports.LinkOpener) *BrowserModel {
	filter := textinput.New()
	filter.Placeholder = "filter..."
	filter.Prompt = "/ "

	return &BrowserModel{
		widget:    widget,
		copy:      copy,
		opener:    opener,
		rowPager:  NewPaginator(20),
		itemPager: NewPaginator(20),
		filter:    filter,
	}
}

// Init initializes the browser
func (m *BrowserModel) Init() tea.Cmd {
	return nil
}

// Focus returns the focused pane
func (m *BrowserModel) Focus() Pane {
	return m.focus
}

// Rows returns the visible tree rows
func (m *BrowserModel) Rows() []TreeRow {
	return m.rows
}

// TagCursor returns the index of the highlighted picked tag
func (m *BrowserModel) TagCursor() int {
	return m.tagCursor
}

// Refresh re-reads the widget after a state change made elsewhere
func (m *BrowserModel) Refresh() {
	m.rows = m.rows[:0]
	if taxonomy := m.widget.Taxonomy(); taxonomy != nil {
		for _, g := range taxonomy.Groups() {
			m.appendRows(taxonomy, g.Path())
		}
	}
	m.rowPager.SetTotal(len(m.rows))

	m.items = m.widget.VisibleItems()
	m.itemPager.SetTotal(len(m.items))
	if m.filter.Value() != m.widget.Filter() {
		m.filter.SetValue(m.widget.Filter())
	}

	if n := len(m.widget.Tags()); m.tagCursor >= n {
		m.tagCursor = max(n-1, 0)
	}
}

func (m *BrowserModel) appendRows(taxonomy *domain.Taxonomy, path domain.Path) {
	m.rows = append(m.rows, TreeRow{
		Path:        path,
		HasChildren: taxonomy.NodeHasChildren(path),
	})
	if !m.widget.IsExpanded(path) {
		return
	}
	for _, child := range taxonomy.Children(path) {
		m.appendRows(taxonomy, child.Path)
	}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StatusMsg:
		m.SetMessage(msg.Text, msg.IsErr)
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m, m.updateFilter(msg)
		}
		m.ClearMessage()
		if !m.widget.State().Loaded() {
			return m, m.updateUnloaded(msg)
		}
		if cmd, handled := m.updateGlobal(msg); handled {
			return m, cmd
		}
		switch m.focus {
		case PaneGroups:
			m.updateGroups(msg)
		case PaneItems:
			return m, m.updateItems(msg)
		case PaneTags:
			return m, m.updateTags(msg)
		}
	}
	return m, nil
}

func (m *BrowserModel) updateUnloaded(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit
	case key.Matches(msg, BrowserKeys.Reload):
		return func() tea.Msg { return ReloadMsg{} }
	}
	return nil
}

func (m *BrowserModel) updateGlobal(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, BrowserKeys.Quit):
		return tea.Quit, true

	case key.Matches(msg, BrowserKeys.NextPane):
		m.focus = (m.focus + 1) % paneCount
		return nil, true

	case key.Matches(msg, BrowserKeys.PrevPane):
		m.focus = (m.focus + paneCount - 1) % paneCount
		return nil, true

	case key.Matches(msg, BrowserKeys.Copy):
		m.copyTags()
		return nil, true

	case key.Matches(msg, BrowserKeys.Clear):
		if len(m.widget.Tags()) == 0 {
			return nil, true
		}
		return func() tea.Msg { return SwitchToConfirmClearMsg{} }, true

	case key.Matches(msg, BrowserKeys.Generate):
		return func() tea.Msg { return GenerateMsg{} }, true

	case key.Matches(msg, BrowserKeys.Search):
		return func() tea.Msg { return SwitchToSearchMsg{} }, true

	case key.Matches(msg, BrowserKeys.Reload):
		return func() tea.Msg { return ReloadMsg{} }, true

	case key.Matches(msg, BrowserKeys.Settings):
		return func() tea.Msg { return SwitchToSettingsMsg{} }, true

	case key.Matches(msg, BrowserKeys.Help):
		return func() tea.Msg { return SwitchToHelpMsg{} }, true
	}
	return nil, false
}

func (m *BrowserModel) updateGroups(msg tea.KeyMsg) {
	row, ok := m.selectedRow()

	switch {
	case key.Matches(msg, BrowserKeys.Up):
		m.rowPager.CursorUp()

	case key.Matches(msg, BrowserKeys.Down):
		m.rowPager.CursorDown()

	case key.Matches(msg, BrowserKeys.PageUp):
		m.rowPager.PageUp()

	case key.Matches(msg, BrowserKeys.PageDown):
		m.rowPager.PageDown()

	case key.Matches(msg, BrowserKeys.Enter), key.Matches(msg, BrowserKeys.Right):
		if !ok {
			return
		}
		if err := m.widget.Activate(row.Path); err != nil {
			m.SetMessage(err.Error(), true)
			return
		}
		m.Refresh()
		m.cursorTo(row.Path)

	case key.Matches(msg, BrowserKeys.Toggle):
		if ok && (row.HasChildren || row.Path.IsRoot()) {
			m.widget.Toggle(row.Path)
			m.Refresh()
			m.cursorTo(row.Path)
		}

	case key.Matches(msg, BrowserKeys.Left):
		if !ok {
			return
		}
		if m.widget.IsExpanded(row.Path) {
			m.widget.Collapse(row.Path)
			m.Refresh()
			m.cursorTo(row.Path)
		} else if !row.Path.IsRoot() {
			m.cursorTo(row.Path.Parent())
		}
	}
}

func (m *BrowserModel) updateItems(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, BrowserKeys.Up):
		m.itemPager.CursorUp()

	case key.Matches(msg, BrowserKeys.Down):
		m.itemPager.CursorDown()

	case key.Matches(msg, BrowserKeys.PageUp):
		m.itemPager.PageUp()

	case key.Matches(msg, BrowserKeys.PageDown):
		m.itemPager.PageDown()

	case key.Matches(msg, BrowserKeys.Filter):
		if m.widget.Selection() == nil {
			return nil
		}
		m.filtering = true
		return m.filter.Focus()

	case key.Matches(msg, BrowserKeys.Enter):
		if item, ok := m.selectedItem(); ok {
			m.mutate(func(ctx context.Context) error { return m.widget.Pick(ctx, item.Value) })
		}

	case key.Matches(msg, BrowserKeys.Open):
		if item, ok := m.selectedItem(); ok {
			m.openLink(item.Value)
		}
	}
	return nil
}

func (m *BrowserModel) updateFilter(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.widget.SetFilter("")
		m.Refresh()
		return nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.widget.SetFilter(m.filter.Value())
	m.items = m.widget.VisibleItems()
	m.itemPager.SetTotal(len(m.items))
	m.itemPager.SetCursor(0)
	return cmd
}

func (m *BrowserModel) updateTags(msg tea.KeyMsg) tea.Cmd {
	tags := m.widget.Tags()
	if len(tags) == 0 {
		return nil
	}

	switch {
	case key.Matches(msg, BrowserKeys.Left), key.Matches(msg, BrowserKeys.Up):
		if m.tagCursor > 0 {
			m.tagCursor--
		}

	case key.Matches(msg, BrowserKeys.Right), key.Matches(msg, BrowserKeys.Down):
		if m.tagCursor < len(tags)-1 {
			m.tagCursor++
		}

	case key.Matches(msg, BrowserKeys.MoveLeft):
		if m.tagCursor > 0 {
			src := m.tagCursor
			m.mutate(func(ctx context.Context) error {
				_, err := m.widget.MoveByDrag(ctx, src, src-1, domain.DropLeft)
				return err
			})
			m.tagCursor--
		}

	case key.Matches(msg, BrowserKeys.MoveRight):
		if m.tagCursor < len(tags)-1 {
			src := m.tagCursor
			m.mutate(func(ctx context.Context) error {
				_, err := m.widget.MoveByDrag(ctx, src, src+1, domain.DropRight)
				return err
			})
			m.tagCursor++
		}

	case key.Matches(msg, BrowserKeys.Delete):
		idx := m.tagCursor
		m.mutate(func(ctx context.Context) error {
			_, _, err := m.widget.DeleteAt(ctx, idx)
			return err
		})

	case key.Matches(msg, BrowserKeys.Edit), key.Matches(msg, BrowserKeys.Enter):
		idx, tag := m.tagCursor, tags[m.tagCursor]
		return func() tea.Msg { return SwitchToRenameMsg{Index: idx, Tag: tag} }

	case key.Matches(msg, BrowserKeys.Open):
		m.openLink(tags[m.tagCursor])
	}
	return nil
}

func (m *BrowserModel) mutate(fn func(ctx context.Context) error) {
	if err := fn(context.Background()); err != nil {
		m.SetMessage(err.Error(), true)
	}
	m.Refresh()
}

func (m *BrowserModel) copyTags() {
	if m.copy == nil {
		return
	}
	plain := m.widget.Plain()
	if plain == "" {
		m.SetMessage("Nothing to copy", true)
		return
	}
	if err := m.copy(plain); err != nil {
		m.SetMessage(fmt.Sprintf("Copy failed: %v", err), true)
		return
	}
	m.SetMessage(fmt.Sprintf("Copied %d tags", len(m.widget.Tags())), false)
}

func (m *BrowserModel) openLink(tag string) {
	url, ok := m.widget.DanbooruURL(tag)
	if !ok {
		m.SetMessage("Danbooru links are off (s to enable)", true)
		return
	}
	if m.opener == nil {
		m.SetMessage(url, false)
		return
	}
	if err := m.opener.OpenURL(url); err != nil {
		m.SetMessage(err.Error(), true)
	}
}

func (m *BrowserModel) selectedRow() (TreeRow, bool) {
	c := m.rowPager.Cursor()
	if c >= 0 && c < len(m.rows) {
		return m.rows[c], true
	}
	return TreeRow{}, false
}

func (m *BrowserModel) selectedItem() (domain.Item, bool) {
	c := m.itemPager.Cursor()
	if c >= 0 && c < len(m.items) {
		return m.items[c], true
	}
	return domain.Item{}, false
}

func (m *BrowserModel) cursorTo(path domain.Path) {
	for i, row := range m.rows {
		if row.Path.Equal(path) {
			m.rowPager.SetCursor(i)
			return
		}
	}
}

// View renders the browser
func (m *BrowserModel) View() string {
	switch m.widget.State() {
	case application.StateUninitialized, application.StateLoading:
		return styles.App.Render(styles.Title.Render("Prompt Builder") + "\n" + styles.MutedText.Render("Loading..."))
	case application.StateError:
		msg := application.DefaultLoadMessage
		if err := m.widget.Err(); err != nil {
			msg = err.Error()
		}
		return NewViewBuilder().
			Title("Prompt Builder").
			Message(msg, true).
			Help(BrowserKeys.Reload, BrowserKeys.Quit).
			String()
	}

	paneHeight := max(m.Height-12, 5)
	m.rowPager.SetPageSize(paneHeight)
	m.itemPager.SetPageSize(paneHeight)

	paneWidth := 0
	if m.Width > 0 {
		paneWidth = max((m.Width-4)/3, 20)
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Prompt Builder"))
	b.WriteString("\n")
	if sel := m.widget.Selection(); sel != nil {
		b.WriteString(styles.Subtitle.Render(sel.String()))
	} else {
		b.WriteString(styles.Subtitle.Render("Pick a category"))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		RenderPane("Categories", m.renderTree(paneWidth-6), paneWidth, m.focus == PaneGroups),
		RenderPane("Tags", m.renderItems(paneWidth-6), paneWidth, m.focus == PaneItems),
		RenderPane(fmt.Sprintf("Prompt (%d)", len(m.widget.Tags())), m.renderTags(paneWidth-6), paneWidth, m.focus == PaneTags),
	))
	b.WriteString("\n")

	if serialized := m.widget.Serialized(); serialized != "" {
		b.WriteString(styles.StatusBar.Render(Truncate(serialized, max(m.Width-8, 20))))
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString(RenderMessage(m.Message, m.MessageErr))
		b.WriteString("\n")
	}
	b.WriteString(m.renderHelpLine())

	return styles.App.Render(b.String())
}

func (m *BrowserModel) renderTree(width int) string {
	if len(m.rows) == 0 {
		return styles.MutedText.Render("No categories")
	}

	var lines []string
	start, end := m.rowPager.VisibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.rows[i], i == m.rowPager.Cursor(), width))
	}
	return strings.Join(lines, "\n")
}

func (m *BrowserModel) renderRow(row TreeRow, selected bool, width int) string {
	depth := row.Path.Depth() - 1
	indent := strings.Repeat("  ", depth)

	var prefix string
	switch {
	case !row.HasChildren && !row.Path.IsRoot():
		prefix = styles.TreeLeaf
	case m.widget.IsExpanded(row.Path):
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	text := Truncate(row.Path[len(row.Path)-1], width-len(indent)-2)

	var style lipgloss.Style
	switch {
	case selected && m.focus == PaneGroups:
		style = styles.NodeSelected
	case m.widget.IsActive(row.Path):
		style = styles.NodeActive
	case row.Path.IsRoot():
		style = styles.NodeGroup
	default:
		style = styles.NodeSubgroup
	}

	return indent + styles.TreeBranch.Render(prefix) + style.Render(text)
}

func (m *BrowserModel) renderItems(width int) string {
	var lines []string
	if m.filtering || m.filter.Value() != "" {
		lines = append(lines, m.filter.View())
	}

	if m.widget.Selection() == nil {
		lines = append(lines, styles.MutedText.Render("Select a category"))
		return strings.Join(lines, "\n")
	}
	if len(m.items) == 0 {
		lines = append(lines, styles.MutedText.Render("No tags"))
		return strings.Join(lines, "\n")
	}

	start, end := m.itemPager.VisibleRange()
	for i := start; i < end; i++ {
		item := m.items[i]
		text := Truncate(item.Value, width)
		switch {
		case i == m.itemPager.Cursor() && m.focus == PaneItems:
			text = styles.NodeSelected.Render(text)
		case m.widget.IsPicked(item.Value):
			text = styles.ItemPicked.Render(text)
		}
		lines = append(lines, text)
	}
	if end < len(m.items) {
		lines = append(lines, styles.MutedText.Render(fmt.Sprintf("… %d more", len(m.items)-end)))
	}
	return strings.Join(lines, "\n")
}

func (m *BrowserModel) renderTags(width int) string {
	tags := m.widget.Tags()
	if len(tags) == 0 {
		return styles.MutedText.Render("No tags picked")
	}

	var lines []string
	for i, tag := range tags {
		style := styles.Tag
		if i == m.tagCursor && m.focus == PaneTags {
			style = styles.TagSelected
		}
		line := style.Render(Truncate(tag, width-2))
		if url, ok := m.widget.DanbooruURL(tag); ok && i == m.tagCursor && m.focus == PaneTags {
			line += "\n" + styles.LinkText.Render(Truncate(url, width))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *BrowserModel) renderHelpLine() string {
	switch m.focus {
	case PaneItems:
		return RenderHelpLine(BrowserKeys.Up, BrowserKeys.Enter, BrowserKeys.Filter, BrowserKeys.Open,
			BrowserKeys.NextPane, BrowserKeys.Copy, BrowserKeys.Generate, BrowserKeys.Help, BrowserKeys.Quit)
	case PaneTags:
		return RenderHelpLine(BrowserKeys.MoveLeft, BrowserKeys.Edit, BrowserKeys.Delete, BrowserKeys.Clear,
			BrowserKeys.NextPane, BrowserKeys.Copy, BrowserKeys.Generate, BrowserKeys.Help, BrowserKeys.Quit)
	default:
		return RenderHelpLine(BrowserKeys.Up, BrowserKeys.Enter, BrowserKeys.Toggle, BrowserKeys.Left,
			BrowserKeys.NextPane, BrowserKeys.Search, BrowserKeys.Settings, BrowserKeys.Help, BrowserKeys.Quit)
	}
}
