package domain

import (
	"slices"
	"strings"
)

// DropSide says which side of the target tag a dragged tag lands on
type DropSide int

const (
	DropLeft DropSide = iota
	DropRight
)

func (s DropSide) String() string {
	if s == DropRight {
		return "right"
	}
	return "left"
}

// ParseDropSide accepts "left"/"l"/"before" and "right"/"r"/"after"
func ParseDropSide(s string) (DropSide, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "before":
		return DropLeft, true
	case "right", "r", "after":
		return DropRight, true
	default:
		return DropLeft, false
	}
}

// TagSeparator joins serialized tags
const TagSeparator = ", "

// SelectionList is the ordered list of chosen tags. Duplicates are allowed and
// every invalid edit is a silent no-op.
type SelectionList struct {
	tags []string
}

// NewSelectionList creates a list holding a copy of tags
func NewSelectionList(tags ...string) *SelectionList {
	return &SelectionList{tags: slices.Clone(tags)}
}

// Append adds tag at the end
func (l *SelectionList) Append(tag string) {
	l.tags = append(l.tags, tag)
}

// DeleteAt removes the tag at index
func (l *SelectionList) DeleteAt(index int) bool {
	if !l.inRange(index) {
		return false
	}
	l.tags = slices.Delete(l.tags, index, index+1)
	return true
}

// RenameAt replaces the tag at index with the trimmed value. Blank values are
// ignored.
func (l *SelectionList) RenameAt(index int, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" || !l.inRange(index) {
		return false
	}
	l.tags[index] = value
	return true
}

// MoveByDrag removes the tag at source and reinserts it next to target. The
// target index refers to the list before removal.
func (l *SelectionList) MoveByDrag(source, target int, side DropSide) bool {
	if source == target || !l.inRange(source) || !l.inRange(target) {
		return false
	}

	dragged := l.tags[source]
	l.tags = slices.Delete(l.tags, source, source+1)

	insertAt := target
	if source < target {
		insertAt--
	}
	if side == DropRight {
		insertAt++
	}

	l.tags = slices.Insert(l.tags, insertAt, dragged)
	return true
}

// Clear removes every tag
func (l *SelectionList) Clear() {
	l.tags = nil
}

// Replace swaps in a copy of tags
func (l *SelectionList) Replace(tags []string) {
	l.tags = slices.Clone(tags)
}

// Tags returns a copy of the tags in order
func (l *SelectionList) Tags() []string {
	return slices.Clone(l.tags)
}

// At returns the tag at index
func (l *SelectionList) At(index int) (string, bool) {
	if !l.inRange(index) {
		return "", false
	}
	return l.tags[index], true
}

// Len returns the number of tags
func (l *SelectionList) Len() int {
	return len(l.tags)
}

// Contains reports whether tag has been chosen at least once
func (l *SelectionList) Contains(tag string) bool {
	return slices.Contains(l.tags, tag)
}

// Serialize escapes parentheses and joins the tags for the prompt field
func (l *SelectionList) Serialize() string {
	escaped := make([]string, len(l.tags))
	for i, tag := range l.tags {
		escaped[i] = EscapeTag(tag)
	}
	return strings.Join(escaped, TagSeparator)
}

// Plain joins the tags without escaping, as copied to the clipboard
func (l *SelectionList) Plain() string {
	return strings.Join(l.tags, TagSeparator)
}

func (l *SelectionList) inRange(index int) bool {
	return index >= 0 && index < len(l.tags)
}

var tagEscaper = strings.NewReplacer(`(`, `\(`, `)`, `\)`)

// EscapeTag escapes parentheses, which the prompt syntax reads as weighting
func EscapeTag(tag string) string {
	return tagEscaper.Replace(tag)
}
