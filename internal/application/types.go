package application

import "promptbuilder/internal/domain"

// Re-export domain types for use by adapters
type (
	Path     = domain.Path
	Item     = domain.Item
	Node     = domain.Node
	Group    = domain.Group
	Taxonomy = domain.Taxonomy
	Settings = domain.Settings
	Snapshot = domain.Snapshot
	DropSide = domain.DropSide
)

const (
	DropLeft  = domain.DropLeft
	DropRight = domain.DropRight
)

// ParsePath splits a ">"-joined key into a path
func ParsePath(key string) Path {
	return domain.ParsePath(key)
}

// State is the lifecycle state of a widget
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateReady
	StatePathActive
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateReady:
		return "Ready"
	case StatePathActive:
		return "PathActive"
	case StateError:
		return "Error"
	default:
		return "Uninitialized"
	}
}

// Loaded reports whether a taxonomy is available
func (s State) Loaded() bool {
	return s == StateReady || s == StatePathActive
}
