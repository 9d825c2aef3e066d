package application

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"promptbuilder/internal/debug"
	"promptbuilder/internal/domain"
	"promptbuilder/internal/ports"
)

const visibleCacheSize = 256

// Option configures a Widget
type Option func(*Widget)

// WithPromptField sets the field that receives the serialized tags
func WithPromptField(field ports.PromptField) Option {
	return func(w *Widget) { w.field = field }
}

// WithSettingsStore sets where settings are read from and saved to
func WithSettingsStore(store ports.SettingsStore) Option {
	return func(w *Widget) { w.store = store }
}

// WithSnapshotChannel sets the channel snapshots are published on
func WithSnapshotChannel(channel ports.SnapshotChannel) Option {
	return func(w *Widget) { w.channel = channel }
}

// WithGenerationTrigger sets the action fired by generation
func WithGenerationTrigger(trigger ports.GenerationTrigger) Option {
	return func(w *Widget) { w.trigger = trigger }
}

// Widget is one prompt builder instance: the loaded taxonomy, the navigation
// state and the selected tags. All methods are safe for concurrent use.
type Widget struct {
	source  ports.TaxonomySource
	field   ports.PromptField
	store   ports.SettingsStore
	channel ports.SnapshotChannel
	trigger ports.GenerationTrigger

	mu        sync.Mutex
	state     State
	loadErr   *LoadError
	loadSeq   uint64
	taxonomy  *domain.Taxonomy
	nav       *domain.Navigation
	selection *domain.SelectionList
	settings  domain.Settings
	visible   *lru.Cache[string, []domain.Item]

	// held while field writes and snapshots leave, so they go out in
	// mutation order
	push sync.Mutex
}

// NewWidget creates a widget in the Uninitialized state and reads its settings
// from the store, if one is configured.
func NewWidget(source ports.TaxonomySource, opts ...Option) *Widget {
	visible, _ := lru.New[string, []domain.Item](visibleCacheSize)

	w := &Widget{
		source:    source,
		nav:       domain.NewNavigation(),
		selection: domain.NewSelectionList(),
		visible:   visible,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.settings = w.loadSettings()
	if w.settings.DebugMode {
		debug.SetEnabled(true)
	}
	return w
}

func (w *Widget) loadSettings() domain.Settings {
	if w.store == nil {
		return domain.DefaultSettings()
	}

	raw, ok, err := w.store.Get(domain.SettingsKey)
	if err != nil {
		log.Printf("promptbuilder: reading settings: %v", err)
		return domain.DefaultSettings()
	}
	if !ok {
		return domain.DefaultSettings()
	}

	settings, err := domain.ParseSettings(raw)
	if err != nil {
		log.Printf("promptbuilder: %v, using defaults", err)
	}
	return settings
}

// Load fetches and indexes the taxonomy. The widget is Loading until the fetch
// returns, then Ready (PathActive if a path is already selected) or Error.
// A load overtaken by a newer one is discarded.
func (w *Widget) Load(ctx context.Context) error {
	w.mu.Lock()
	w.loadSeq++
	seq := w.loadSeq
	w.state = StateLoading
	w.loadErr = nil
	w.mu.Unlock()

	start := time.Now()
	taxonomy, loadErr := w.fetch(ctx)
	debug.LogTiming("taxonomy load", time.Since(start))

	w.mu.Lock()
	defer w.mu.Unlock()

	if seq != w.loadSeq {
		return nil
	}
	if loadErr != nil {
		w.state = StateError
		w.loadErr = loadErr
		w.taxonomy = nil
		w.visible.Purge()
		return loadErr
	}

	w.taxonomy = taxonomy
	w.visible.Purge()
	w.state = w.loadedStateLocked()
	return nil
}

// Reload discards the loaded taxonomy and fetches it again. Navigation and
// selected tags are kept.
func (w *Widget) Reload(ctx context.Context) error {
	return w.Load(ctx)
}

func (w *Widget) fetch(ctx context.Context) (*domain.Taxonomy, *LoadError) {
	resp, err := w.source.Fetch(ctx)
	if err != nil {
		debug.Log("fetch failed: %v", err)
		return nil, &LoadError{Message: DefaultLoadMessage, Err: fmt.Errorf("%w: %w", ErrFetchFailed, err)}
	}
	if resp == nil || !resp.Success {
		message := DefaultLoadMessage
		if resp != nil && resp.Error != "" {
			message = resp.Error
		}
		return nil, &LoadError{Message: message, Err: ErrDataRejected}
	}

	payload, err := domain.DecodePayload(resp.Data)
	if err != nil {
		return nil, &LoadError{Message: DefaultLoadMessage, Err: fmt.Errorf("%w: %w", ErrDataRejected, err)}
	}

	taxonomy, errs := domain.BuildTaxonomy(payload)
	for _, err := range errs {
		log.Printf("promptbuilder: skipping %v", err)
	}
	debug.Log("loaded %d categories", taxonomy.Len())
	return taxonomy, nil
}

func (w *Widget) loadedStateLocked() State {
	if w.nav.HasSelection() {
		return StatePathActive
	}
	return StateReady
}

// State returns the lifecycle state
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Err returns the error of the last failed load, or nil
func (w *Widget) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.loadErr == nil {
		return nil
	}
	return w.loadErr
}

// Taxonomy returns the loaded taxonomy, or nil before a successful load.
// The taxonomy is immutable and may be read without holding the widget.
func (w *Widget) Taxonomy() *domain.Taxonomy {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.taxonomy
}

func (w *Widget) requireLoadedLocked(path domain.Path) error {
	if !w.state.Loaded() || w.taxonomy == nil {
		return ErrNotReady
	}
	if !w.taxonomy.Contains(path) {
		return &PathError{Path: path.Key()}
	}
	return nil
}

// Activate handles a click on a group or subgroup. Categories and subgroups
// with children are expanded (collapsing expanded siblings). When the node
// only holds subgroups its first child is selected instead of the node itself.
func (w *Widget) Activate(path domain.Path) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLoadedLocked(path); err != nil {
		return err
	}

	if path.IsRoot() || w.taxonomy.NodeHasChildren(path) {
		w.nav.Expand(path)
	}

	target := path
	if w.taxonomy.NodeHasChildren(path) && !w.taxonomy.NodeHasDirectItems(path) {
		if first, ok := w.taxonomy.FirstChildPath(path); ok {
			target = first
		}
	}

	w.nav.Select(target)
	w.state = StatePathActive
	debug.Log("selected %s", target)
	return nil
}

// Select makes path the active selection without touching the expanded set
func (w *Widget) Select(path domain.Path) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.requireLoadedLocked(path); err != nil {
		return err
	}
	w.nav.Select(path)
	w.state = StatePathActive
	return nil
}

// ClearSelection drops the active path
func (w *Widget) ClearSelection() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nav.ClearSelection()
	if w.state.Loaded() {
		w.state = StateReady
	}
}

// Expand expands path, collapsing its expanded siblings
func (w *Widget) Expand(path domain.Path) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nav.Expand(path)
}

// Collapse collapses path and its descendants
func (w *Widget) Collapse(path domain.Path) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nav.Collapse(path)
}

// Toggle flips the expansion of path
func (w *Widget) Toggle(path domain.Path) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nav.Toggle(path)
}

// SetFilter sets the search text applied to the active path's items
func (w *Widget) SetFilter(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nav.SetFilter(text)
}

// Filter returns the search text
func (w *Widget) Filter() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.Filter()
}

// Selection returns the active path, or nil
func (w *Widget) Selection() domain.Path {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.Selection()
}

// IsExpanded reports whether path is expanded
func (w *Widget) IsExpanded(path domain.Path) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.IsExpanded(path)
}

// IsActive reports whether path is the active selection
func (w *Widget) IsActive(path domain.Path) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.IsActive(path)
}

// ExpandedKeys returns the expanded set in insertion order
func (w *Widget) ExpandedKeys() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.nav.ExpandedKeys()
}

// VisibleItems returns the active path's items narrowed by the filter. It is
// empty when no path is selected.
func (w *Widget) VisibleItems() []domain.Item {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.taxonomy == nil || !w.nav.HasSelection() {
		return nil
	}

	path := w.nav.Selection()
	filter := w.nav.Filter()
	key := path.Key() + "\x00" + strings.ToLower(filter)

	items, ok := w.visible.Get(key)
	if !ok {
		items = domain.FilterItems(w.taxonomy.ItemsForPath(path), filter)
		w.visible.Add(key, items)
	}

	out := make([]domain.Item, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// mutate applies fn under the lock. When fn reports a change the new value is
// written to the prompt field and a snapshot is published; generate fires the
// trigger afterwards. The result reports whether fn changed anything.
func (w *Widget) mutate(ctx context.Context, fn func() (changed, generate bool)) (bool, error) {
	w.mu.Lock()
	changed, generate := fn()
	if !changed {
		w.mu.Unlock()
		return false, nil
	}
	value := w.selection.Serialize()
	snapshot := w.snapshotLocked()

	w.push.Lock()
	w.mu.Unlock()
	defer w.push.Unlock()

	if err := w.writeField(value); err != nil {
		return true, err
	}
	w.publish(ctx, snapshot)

	if generate {
		return true, w.fire(ctx)
	}
	return true, nil
}

// Pick appends tag to the selected tags. With auto-generation enabled,
// reaching the threshold fires the generation trigger.
func (w *Widget) Pick(ctx context.Context, tag string) error {
	_, err := w.mutate(ctx, func() (bool, bool) {
		w.selection.Append(tag)
		return true, w.settings.ShouldAutoGenerate(w.selection.Len())
	})
	return err
}

// DeleteAt removes the tag at index and returns it. Out-of-range indexes are
// ignored and report false.
func (w *Widget) DeleteAt(ctx context.Context, index int) (string, bool, error) {
	var tag string
	deleted, err := w.mutate(ctx, func() (bool, bool) {
		tag, _ = w.selection.At(index)
		return w.selection.DeleteAt(index), false
	})
	if !deleted {
		tag = ""
	}
	return tag, deleted, err
}

// RenameAt replaces the tag at index. Blank values and out-of-range indexes
// are ignored and report false.
func (w *Widget) RenameAt(ctx context.Context, index int, value string) (bool, error) {
	return w.mutate(ctx, func() (bool, bool) {
		return w.selection.RenameAt(index, value), false
	})
}

// MoveByDrag moves the tag at source next to target. It reports false when
// source equals target or either index is out of range.
func (w *Widget) MoveByDrag(ctx context.Context, source, target int, side domain.DropSide) (bool, error) {
	return w.mutate(ctx, func() (bool, bool) {
		return w.selection.MoveByDrag(source, target, side), false
	})
}

// Clear removes every selected tag
func (w *Widget) Clear(ctx context.Context) error {
	_, err := w.mutate(ctx, func() (bool, bool) {
		w.selection.Clear()
		debug.Log("cleared all tags")
		return true, false
	})
	return err
}

// TriggerGeneration fires the generation trigger. It does nothing while no
// tags are selected.
func (w *Widget) TriggerGeneration(ctx context.Context) error {
	w.mu.Lock()
	empty := w.selection.Len() == 0
	w.mu.Unlock()

	if empty {
		return nil
	}
	return w.fire(ctx)
}

func (w *Widget) fire(ctx context.Context) error {
	if w.trigger == nil {
		debug.Log("no generation trigger configured")
		return nil
	}
	debug.Log("triggering generation")
	if err := w.trigger.Trigger(ctx); err != nil {
		return fmt.Errorf("trigger generation: %w", err)
	}
	return nil
}

func (w *Widget) writeField(value string) error {
	if w.field == nil {
		return nil
	}
	if err := w.field.SetValue(value); err != nil {
		return fmt.Errorf("update prompt field: %w", err)
	}
	debug.Log("updated prompt field to: %s", value)
	return nil
}

func (w *Widget) publish(ctx context.Context, snapshot domain.Snapshot) {
	if w.channel == nil {
		return
	}
	if err := w.channel.Publish(ctx, snapshot); err != nil {
		debug.Log("publish snapshot: %v", err)
	}
}

// Tags returns the selected tags in order
func (w *Widget) Tags() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Tags()
}

// IsPicked reports whether tag is among the selected tags
func (w *Widget) IsPicked(tag string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Contains(tag)
}

// Serialized returns the escaped prompt field value
func (w *Widget) Serialized() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Serialize()
}

// Plain returns the unescaped tag list used for clipboard copies
func (w *Widget) Plain() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.selection.Plain()
}

// Snapshot captures the mirrored state
func (w *Widget) Snapshot() domain.Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *Widget) snapshotLocked() domain.Snapshot {
	s := domain.Snapshot{
		SelectedTags:   w.selection.Tags(),
		ExpandedGroups: w.nav.ExpandedKeys(),
	}
	if w.nav.HasSelection() {
		s.CurrentSelection = &domain.PathSelection{Path: w.nav.Selection()}
	}
	return s
}

// ApplySnapshot replaces the tags, expanded set and selection in one step and
// rewrites the prompt field. The snapshot is not published again.
func (w *Widget) ApplySnapshot(s domain.Snapshot) error {
	w.mu.Lock()
	w.selection.Replace(s.SelectedTags)
	w.nav.Replace(s.ExpandedGroups, s.Selection())
	if w.state.Loaded() {
		w.state = w.loadedStateLocked()
	}
	value := w.selection.Serialize()

	w.push.Lock()
	w.mu.Unlock()
	defer w.push.Unlock()

	return w.writeField(value)
}

// Settings returns the current settings
func (w *Widget) Settings() domain.Settings {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.settings
}

// UpdateSettings replaces the settings and saves them to the store
func (w *Widget) UpdateSettings(settings domain.Settings) error {
	settings = settings.Normalize()

	w.mu.Lock()
	w.settings = settings
	w.mu.Unlock()

	if settings.DebugMode {
		debug.SetEnabled(true)
	}
	if w.store == nil {
		return nil
	}

	raw, err := settings.Encode()
	if err != nil {
		return err
	}
	if err := w.store.Set(domain.SettingsKey, raw); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	debug.Log("settings saved")
	return nil
}

// DanbooruURL returns the wiki link for tag and whether links are enabled
func (w *Widget) DanbooruURL(tag string) (string, bool) {
	w.mu.Lock()
	enabled := w.settings.DanbooruLinks
	w.mu.Unlock()

	if !enabled {
		return "", false
	}
	return domain.DanbooruURL(tag), true
}
