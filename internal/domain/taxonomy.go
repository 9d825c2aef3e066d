package domain

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ErrMalformedCategory marks a top-level category that could not be loaded
var ErrMalformedCategory = errors.New("malformed category")

// MalformedCategoryError describes a skipped top-level category
type MalformedCategoryError struct {
	Name string
	Kind string
}

func (e *MalformedCategoryError) Error() string {
	return fmt.Sprintf("category %q is a %s, expected a list or mapping", e.Name, e.Kind)
}

func (e *MalformedCategoryError) Is(target error) bool {
	return target == ErrMalformedCategory
}

// Item is a selectable tag together with the path of the node that owns it.
// Items under DataKey carry the enclosing group's path.
type Item struct {
	Value string
	Path  Path
}

// Clone returns a copy that does not share the path
func (i Item) Clone() Item {
	return Item{Value: i.Value, Path: i.Path.Clone()}
}

// Node is a structure node below a top-level category
type Node struct {
	Path     Path
	Children *orderedmap.OrderedMap[string, *Node] // nil unless the payload value was a mapping
}

// HasChildren reports whether the node came from a mapping
func (n *Node) HasChildren() bool {
	return n.Children != nil
}

// Name returns the last path segment
func (n *Node) Name() string {
	if len(n.Path) == 0 {
		return ""
	}
	return n.Path[len(n.Path)-1]
}

// ChildNodes returns the children in payload order
func (n *Node) ChildNodes() []*Node {
	return orderedValues(n.Children)
}

// Group is the index for one top-level category
type Group struct {
	Name      string
	Items     []Item
	Structure *orderedmap.OrderedMap[string, *Node] // nil when the category is a flat list
}

// Path returns the single-element path of the group
func (g *Group) Path() Path {
	return Path{g.Name}
}

// Taxonomy is the immutable tree built from a category payload
type Taxonomy struct {
	groups *orderedmap.OrderedMap[string, *Group]
}

// BuildTaxonomy indexes a decoded payload. Malformed top-level categories are
// skipped and reported; everything else loads.
func BuildTaxonomy(payload *Payload) (*Taxonomy, []error) {
	t := &Taxonomy{groups: orderedmap.New[string, *Group]()}
	if payload == nil {
		return t, nil
	}

	var errs []error
	payload.Each(func(name string, value CategoryValue) {
		root := Path{name}
		group := &Group{Name: name, Items: []Item{}}

		switch v := value.(type) {
		case LeafList:
			for _, leaf := range v {
				group.Items = append(group.Items, Item{Value: leaf, Path: root})
			}
		case *Branch:
			group.Structure = buildStructure(v, root)
			extractItems(v, &group.Items, root)
		case Malformed:
			errs = append(errs, &MalformedCategoryError{Name: name, Kind: v.Kind})
			return
		default:
			errs = append(errs, &MalformedCategoryError{Name: name, Kind: fmt.Sprintf("%T", value)})
			return
		}

		t.groups.Set(name, group)
	})

	return t, errs
}

func buildStructure(branch *Branch, parent Path) *orderedmap.OrderedMap[string, *Node] {
	structure := orderedmap.New[string, *Node]()

	branch.Each(func(name string, value CategoryValue) {
		if name == DataKey {
			return
		}
		path := parent.Child(name)

		switch v := value.(type) {
		case LeafList:
			structure.Set(name, &Node{Path: path})
		case *Branch:
			structure.Set(name, &Node{Path: path, Children: buildStructure(v, path)})
		}
	})

	return structure
}

func extractItems(branch *Branch, items *[]Item, current Path) {
	branch.Each(func(name string, value CategoryValue) {
		switch v := value.(type) {
		case LeafList:
			path := current
			if name != DataKey {
				path = current.Child(name)
			}
			for _, leaf := range v {
				*items = append(*items, Item{Value: leaf, Path: path})
			}
		case *Branch:
			// a mapping under DataKey contributes nothing
			if name != DataKey {
				extractItems(v, items, current.Child(name))
			}
		}
	})
}

// Len returns the number of loaded categories
func (t *Taxonomy) Len() int {
	return t.groups.Len()
}

// Groups returns the categories in payload order. The groups are shared with
// the taxonomy and must be treated as read-only; use Items or ItemsForPath for
// copies.
func (t *Taxonomy) Groups() []*Group {
	return orderedValues(t.groups)
}

// GroupNames returns the category names in payload order
func (t *Taxonomy) GroupNames() []string {
	names := make([]string, 0, t.groups.Len())
	for pair := t.groups.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}

// Group returns a category by name
func (t *Taxonomy) Group(name string) (*Group, bool) {
	return t.groups.Get(name)
}

// Structure returns the substructure of a category, or nil when it is a flat
// list or unknown
func (t *Taxonomy) Structure(group string) *orderedmap.OrderedMap[string, *Node] {
	g, ok := t.groups.Get(group)
	if !ok {
		return nil
	}
	return g.Structure
}

// ItemsForPath returns the items whose path equals path exactly, in payload order
func (t *Taxonomy) ItemsForPath(path Path) []Item {
	if len(path) == 0 {
		return []Item{}
	}
	g, ok := t.groups.Get(path[0])
	if !ok {
		return []Item{}
	}

	items := []Item{}
	for _, item := range g.Items {
		if item.Path.Equal(path) {
			items = append(items, item.Clone())
		}
	}
	return items
}

// Items returns a copy of every item of every category in payload order
func (t *Taxonomy) Items() []Item {
	var items []Item
	for pair := t.groups.Oldest(); pair != nil; pair = pair.Next() {
		for _, item := range pair.Value.Items {
			items = append(items, item.Clone())
		}
	}
	return items
}

// Node returns the structure node at path. Top-level categories have no node.
func (t *Taxonomy) Node(path Path) (*Node, bool) {
	if len(path) < 2 {
		return nil, false
	}
	g, ok := t.groups.Get(path[0])
	if !ok {
		return nil, false
	}

	var node *Node
	children := g.Structure
	for _, name := range path[1:] {
		if children == nil {
			return nil, false
		}
		node, ok = children.Get(name)
		if !ok {
			return nil, false
		}
		children = node.Children
	}
	return node, true
}

// Children returns the child nodes of a category or subgroup in payload order
func (t *Taxonomy) Children(path Path) []*Node {
	return orderedValues(t.childMap(path))
}

func (t *Taxonomy) childMap(path Path) *orderedmap.OrderedMap[string, *Node] {
	switch len(path) {
	case 0:
		return nil
	case 1:
		return t.Structure(path[0])
	default:
		node, ok := t.Node(path)
		if !ok {
			return nil
		}
		return node.Children
	}
}

// NodeHasChildren reports whether the node at path has substructure. A
// category counts only when its structure is non-empty; a subgroup counts when
// its payload value was a mapping.
func (t *Taxonomy) NodeHasChildren(path Path) bool {
	switch len(path) {
	case 0:
		return false
	case 1:
		structure := t.Structure(path[0])
		return structure != nil && structure.Len() > 0
	default:
		node, ok := t.Node(path)
		return ok && node.HasChildren()
	}
}

// NodeHasDirectItems reports whether some item's path equals path exactly
func (t *Taxonomy) NodeHasDirectItems(path Path) bool {
	if len(path) == 0 {
		return false
	}
	g, ok := t.groups.Get(path[0])
	if !ok {
		return false
	}
	for _, item := range g.Items {
		if item.Path.Equal(path) {
			return true
		}
	}
	return false
}

// FirstChildPath returns the path of the first structure key under path
func (t *Taxonomy) FirstChildPath(path Path) (Path, bool) {
	children := t.childMap(path)
	if children == nil {
		return nil, false
	}
	first := children.Oldest()
	if first == nil {
		return nil, false
	}
	return path.Child(first.Key), true
}

// Contains reports whether path names a category or a structure node
func (t *Taxonomy) Contains(path Path) bool {
	if len(path) == 1 {
		_, ok := t.groups.Get(path[0])
		return ok
	}
	_, ok := t.Node(path)
	return ok
}

func orderedValues[V any](m *orderedmap.OrderedMap[string, V]) []V {
	if m == nil {
		return nil
	}
	values := make([]V, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		values = append(values, pair.Value)
	}
	return values
}
