package domain

import (
	"slices"
	"strings"
	"testing"

	"pgregory.net/rapid"
)

func TestFilterItems(t *testing.T) {
	items := []Item{
		{Value: "Knight", Path: Path{"Jobs"}},
		{Value: "knife", Path: Path{"Jobs"}},
		{Value: "wizard", Path: Path{"Jobs"}},
	}

	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{"empty returns all", "", []string{"Knight", "knife", "wizard"}},
		{"case insensitive", "KNI", []string{"Knight", "knife"}},
		{"substring", "zar", []string{"wizard"}},
		{"no match", "xyz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := itemValues(FilterItems(items, tt.text))
			if !equalStrings(got, tt.expected) {
				t.Errorf("FilterItems(%q) = %v, expected %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestFilterItems_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		values := rapid.SliceOf(rapid.StringMatching(`[a-dA-D]{0,5}`)).Draw(t, "values")
		text := rapid.StringMatching(`[a-dA-D]{0,2}`).Draw(t, "text")

		items := make([]Item, len(values))
		for i, v := range values {
			items[i] = Item{Value: v, Path: Path{"G"}}
		}

		once := FilterItems(items, text)
		twice := FilterItems(once, text)
		if !slices.Equal(itemValues(once), itemValues(twice)) {
			t.Fatalf("filter is not idempotent: %v vs %v", itemValues(once), itemValues(twice))
		}

		// result is an order-preserving subsequence of matching items
		j := 0
		for _, item := range items {
			matches := strings.Contains(strings.ToLower(item.Value), strings.ToLower(text))
			if matches {
				if j >= len(once) || once[j].Value != item.Value {
					t.Fatalf("missing or reordered match %q", item.Value)
				}
				j++
			}
		}
		if j != len(once) {
			t.Fatalf("filter returned extra items")
		}
	})
}
