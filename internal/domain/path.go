package domain

import (
	"slices"
	"strings"
)

// PathSeparator joins path segments into a flat key (e.g. "Jobs>Fantasy")
const PathSeparator = ">"

// Path identifies a group or subgroup by the names leading to it.
// Paths are the only node identity in the taxonomy.
type Path []string

// ParsePath splits a key produced by Path.Key back into a path.
// An empty key yields a nil path.
func ParsePath(key string) Path {
	if key == "" {
		return nil
	}
	return Path(strings.Split(key, PathSeparator))
}

// Key returns the flat membership key for the path
func (p Path) Key() string {
	return strings.Join(p, PathSeparator)
}

// Equal reports whether both paths have the same length and elements
func (p Path) Equal(other Path) bool {
	return slices.Equal(p, other)
}

// Depth returns the number of segments
func (p Path) Depth() int {
	return len(p)
}

// IsRoot reports whether the path names a top-level category
func (p Path) IsRoot() bool {
	return len(p) == 1
}

// Group returns the top-level category name, or "" for an empty path
func (p Path) Group() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}

// Parent returns the path without its last segment
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return slices.Clone(p[:len(p)-1])
}

// Child returns a new path extended by name. The receiver is never aliased.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}

// Clone returns an independent copy
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return slices.Clone(p)
}

// HasPrefix reports whether p starts with every segment of prefix
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return slices.Equal(p[:len(prefix)], prefix)
}

// String renders the path as a breadcrumb
func (p Path) String() string {
	return strings.Join(p, " > ")
}

// keyDepth counts the segments of a flat key without allocating
func keyDepth(key string) int {
	if key == "" {
		return 0
	}
	return strings.Count(key, PathSeparator) + 1
}
