package domain

import (
	"errors"
	"fmt"
	"slices"

	"github.com/goccy/go-json"
)

// SnapshotMessageType tags state-sync messages between windows
const SnapshotMessageType = "PB_SYNC_STATE"

// ErrUnknownMessage is returned for messages without the snapshot type tag
var ErrUnknownMessage = errors.New("unknown message type")

// PathSelection wraps the active path on the wire
type PathSelection struct {
	Path Path `json:"path"`
}

// Snapshot is the complete mirrored state of one widget
type Snapshot struct {
	SelectedTags     []string       `json:"selectedTags"`
	ExpandedGroups   []string       `json:"expandedGroups"`
	CurrentSelection *PathSelection `json:"currentSelection"`
}

// Selection returns the active path carried by the snapshot, or nil when
// there is none or it is empty
func (s Snapshot) Selection() Path {
	if s.CurrentSelection == nil || len(s.CurrentSelection.Path) == 0 {
		return nil
	}
	return s.CurrentSelection.Path.Clone()
}

// Clone returns a deep copy
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		SelectedTags:   slices.Clone(s.SelectedTags),
		ExpandedGroups: slices.Clone(s.ExpandedGroups),
	}
	if s.CurrentSelection != nil {
		out.CurrentSelection = &PathSelection{Path: s.CurrentSelection.Path.Clone()}
	}
	return out
}

// SnapshotMessage is the envelope sent over the mirroring channel
type SnapshotMessage struct {
	Type    string   `json:"type"`
	Payload Snapshot `json:"payload"`
}

// EncodeSnapshot wraps a snapshot in its typed envelope
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	if s.SelectedTags == nil {
		s.SelectedTags = []string{}
	}
	if s.ExpandedGroups == nil {
		s.ExpandedGroups = []string{}
	}
	data, err := json.Marshal(SnapshotMessage{Type: SnapshotMessageType, Payload: s})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses an envelope. Messages with another type tag return
// ErrUnknownMessage.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	var msg SnapshotMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if msg.Type != SnapshotMessageType {
		return Snapshot{}, fmt.Errorf("%w: %q", ErrUnknownMessage, msg.Type)
	}
	return msg.Payload, nil
}
