package domain

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DataKey is the reserved mapping key whose list belongs to the enclosing group
// rather than to a named subgroup
const DataKey = "_data"

// ErrInvalidPayload is returned when the category payload is not a JSON object
var ErrInvalidPayload = errors.New("invalid category payload")

// CategoryValue is either a LeafList or a Branch. Top-level values that are
// neither decode to Malformed so the taxonomy builder can report them.
type CategoryValue interface {
	isCategoryValue()
}

// LeafList is a sequence of tag strings
type LeafList []string

func (LeafList) isCategoryValue() {}

// Branch is a mapping of subgroup names to nested values, in payload order
type Branch struct {
	entries *orderedmap.OrderedMap[string, CategoryValue]
}

func (*Branch) isCategoryValue() {}

// NewBranch creates an empty branch
func NewBranch() *Branch {
	return &Branch{entries: orderedmap.New[string, CategoryValue]()}
}

// Set adds or replaces an entry. Replacing keeps the original position.
func (b *Branch) Set(name string, value CategoryValue) {
	b.entries.Set(name, value)
}

// Get returns the entry with the given name
func (b *Branch) Get(name string) (CategoryValue, bool) {
	return b.entries.Get(name)
}

// Len returns the number of entries, including DataKey
func (b *Branch) Len() int {
	return b.entries.Len()
}

// Each visits entries in payload order
func (b *Branch) Each(fn func(name string, value CategoryValue)) {
	for pair := b.entries.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Malformed records a top-level category whose value was neither a list nor a mapping
type Malformed struct {
	Kind string // JSON type that was found, e.g. "string"
}

func (Malformed) isCategoryValue() {}

// Payload is the decoded top-level category mapping
type Payload struct {
	Branch
}

// NewPayload creates an empty payload
func NewPayload() *Payload {
	return &Payload{Branch: *NewBranch()}
}

// DecodePayload decodes a raw JSON category mapping, keeping the order of keys.
// Nested values that are neither lists nor mappings are dropped; top-level ones
// are kept as Malformed.
func DecodePayload(data []byte) (*Payload, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: expected a JSON object", ErrInvalidPayload)
	}

	payload := NewPayload()
	if isEmptyContainer(data) {
		return payload, nil
	}

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name := string(key)
		switch dataType {
		case jsonparser.Array:
			leaves, err := decodeLeaves(value)
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			payload.Set(name, leaves)
		case jsonparser.Object:
			branch, err := decodeBranch(value)
			if err != nil {
				return fmt.Errorf("category %q: %w", name, err)
			}
			payload.Set(name, branch)
		default:
			payload.Set(name, Malformed{Kind: valueTypeName(dataType)})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	return payload, nil
}

func decodeBranch(data []byte) (*Branch, error) {
	branch := NewBranch()
	if isEmptyContainer(data) {
		return branch, nil
	}

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		name := string(key)
		switch dataType {
		case jsonparser.Array:
			leaves, err := decodeLeaves(value)
			if err != nil {
				return fmt.Errorf("%q: %w", name, err)
			}
			branch.Set(name, leaves)
		case jsonparser.Object:
			child, err := decodeBranch(value)
			if err != nil {
				return fmt.Errorf("%q: %w", name, err)
			}
			branch.Set(name, child)
		}
		return nil
	})
	return branch, err
}

// decodeLeaves keeps strings, numbers and booleans as their text; null and
// nested containers are skipped.
func decodeLeaves(data []byte) (LeafList, error) {
	leaves := LeafList{}
	if isEmptyContainer(data) {
		return leaves, nil
	}

	var decodeErr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if decodeErr != nil {
			return
		}
		switch dataType {
		case jsonparser.String:
			s, err := jsonparser.ParseString(value)
			if err != nil {
				decodeErr = err
				return
			}
			leaves = append(leaves, s)
		case jsonparser.Number, jsonparser.Boolean:
			leaves = append(leaves, string(value))
		}
	})
	if err != nil {
		return nil, err
	}
	return leaves, decodeErr
}

func isEmptyContainer(data []byte) bool {
	data = bytes.TrimSpace(data)
	if len(data) < 2 {
		return false
	}
	return len(bytes.TrimSpace(data[1:len(data)-1])) == 0
}

func valueTypeName(t jsonparser.ValueType) string {
	switch t {
	case jsonparser.String:
		return "string"
	case jsonparser.Number:
		return "number"
	case jsonparser.Boolean:
		return "boolean"
	case jsonparser.Null:
		return "null"
	case jsonparser.Array:
		return "array"
	case jsonparser.Object:
		return "object"
	default:
		return "unknown"
	}
}
