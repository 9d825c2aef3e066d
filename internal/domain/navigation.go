package domain

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Navigation tracks which nodes are expanded and which path is active.
// At most one branch per parent level is expanded at a time.
type Navigation struct {
	expanded  *orderedmap.OrderedMap[string, struct{}]
	selection Path
	filter    string
}

// NewNavigation creates an empty navigation state
func NewNavigation() *Navigation {
	return &Navigation{expanded: orderedmap.New[string, struct{}]()}
}

// Expand marks path as expanded. Expanded siblings of path (same parent, same
// depth) are collapsed first, together with their descendants.
func (n *Navigation) Expand(path Path) {
	key := path.Key()
	if key == "" {
		return
	}
	if _, ok := n.expanded.Get(key); ok {
		return
	}

	for _, sibling := range n.siblingsOf(path) {
		n.collapseKey(sibling)
	}
	n.expanded.Set(key, struct{}{})
}

func (n *Navigation) siblingsOf(path Path) []string {
	key := path.Key()
	parent := path.Parent().Key()
	depth := path.Depth()

	var siblings []string
	for pair := n.expanded.Oldest(); pair != nil; pair = pair.Next() {
		candidate := pair.Key
		if candidate == key {
			continue
		}
		if parent == "" {
			if !strings.Contains(candidate, PathSeparator) {
				siblings = append(siblings, candidate)
			}
			continue
		}
		if strings.HasPrefix(candidate, parent+PathSeparator) && keyDepth(candidate) == depth {
			siblings = append(siblings, candidate)
		}
	}
	return siblings
}

// Collapse removes path and every expanded descendant of it
func (n *Navigation) Collapse(path Path) {
	n.collapseKey(path.Key())
}

func (n *Navigation) collapseKey(key string) {
	if key == "" {
		return
	}
	n.expanded.Delete(key)

	prefix := key + PathSeparator
	var descendants []string
	for pair := n.expanded.Oldest(); pair != nil; pair = pair.Next() {
		if strings.HasPrefix(pair.Key, prefix) {
			descendants = append(descendants, pair.Key)
		}
	}
	for _, d := range descendants {
		n.expanded.Delete(d)
	}
}

// Toggle collapses an expanded path or expands a collapsed one
func (n *Navigation) Toggle(path Path) {
	if n.IsExpanded(path) {
		n.Collapse(path)
		return
	}
	n.Expand(path)
}

// Select makes path the active selection and clears the search filter.
// An empty path clears the selection.
func (n *Navigation) Select(path Path) {
	n.selection = selectionOf(path)
	n.filter = ""
}

// ClearSelection drops the active path and the filter
func (n *Navigation) ClearSelection() {
	n.selection = nil
	n.filter = ""
}

// SetFilter stores the search text for the active path
func (n *Navigation) SetFilter(text string) {
	n.filter = text
}

// Filter returns the current search text
func (n *Navigation) Filter() string {
	return n.filter
}

// Selection returns the active path, or nil when nothing is selected
func (n *Navigation) Selection() Path {
	return n.selection.Clone()
}

// HasSelection reports whether a path is active
func (n *Navigation) HasSelection() bool {
	return len(n.selection) > 0
}

// IsExpanded reports whether path is in the expanded set
func (n *Navigation) IsExpanded(path Path) bool {
	_, ok := n.expanded.Get(path.Key())
	return ok
}

// IsActive reports whether path equals the active selection
func (n *Navigation) IsActive(path Path) bool {
	return n.selection != nil && n.selection.Equal(path)
}

// ExpandedKeys returns the expanded set in insertion order
func (n *Navigation) ExpandedKeys() []string {
	keys := make([]string, 0, n.expanded.Len())
	for pair := n.expanded.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Replace swaps in a complete expanded set and selection. Keys are taken as
// given; sibling exclusivity is not re-applied.
func (n *Navigation) Replace(expanded []string, selection Path) {
	n.expanded = orderedmap.New[string, struct{}]()
	for _, key := range expanded {
		if key != "" {
			n.expanded.Set(key, struct{}{})
		}
	}
	n.selection = selectionOf(selection)
	n.filter = ""
}

func selectionOf(path Path) Path {
	if len(path) == 0 {
		return nil
	}
	return path.Clone()
}

// Reset drops every expanded key, the selection and the filter
func (n *Navigation) Reset() {
	n.Replace(nil, nil)
}
