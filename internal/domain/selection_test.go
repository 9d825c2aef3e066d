package domain

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

func TestSelectionList_MoveByDrag(t *testing.T) {
	tests := []struct {
		name     string
		source   int
		target   int
		side     DropSide
		expected []string
		moved    bool
	}{
		{"forward right", 0, 2, DropRight, []string{"b", "c", "a", "d"}, true},
		{"forward left", 0, 2, DropLeft, []string{"b", "a", "c", "d"}, true},
		{"backward left", 3, 0, DropLeft, []string{"d", "a", "b", "c"}, true},
		{"backward right", 3, 0, DropRight, []string{"a", "d", "b", "c"}, true},
		{"to end", 1, 3, DropRight, []string{"a", "c", "d", "b"}, true},
		{"same index", 2, 2, DropLeft, []string{"a", "b", "c", "d"}, false},
		{"source out of range", 7, 0, DropLeft, []string{"a", "b", "c", "d"}, false},
		{"target out of range", 0, 4, DropRight, []string{"a", "b", "c", "d"}, false},
		{"negative source", -1, 0, DropLeft, []string{"a", "b", "c", "d"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewSelectionList("a", "b", "c", "d")
			if got := list.MoveByDrag(tt.source, tt.target, tt.side); got != tt.moved {
				t.Errorf("MoveByDrag() = %v, expected %v", got, tt.moved)
			}
			if got := list.Tags(); !equalStrings(got, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestSelectionList_DeleteAt(t *testing.T) {
	list := NewSelectionList("a", "b", "c")

	if !list.DeleteAt(1) {
		t.Fatal("expected delete to succeed")
	}
	if got := list.Tags(); !equalStrings(got, []string{"a", "c"}) {
		t.Errorf("expected [a c], got %v", got)
	}
	if list.DeleteAt(5) || list.DeleteAt(-1) {
		t.Error("out-of-range delete should be a no-op")
	}
	if list.Len() != 2 {
		t.Errorf("expected 2 tags, got %d", list.Len())
	}
}

func TestSelectionList_RenameAt(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		value    string
		expected string
		renamed  bool
	}{
		{"trims", 0, "  knight  ", "knight", true},
		{"blank ignored", 0, "   ", "a", false},
		{"out of range", 3, "x", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewSelectionList("a", "b")
			if got := list.RenameAt(tt.index, tt.value); got != tt.renamed {
				t.Errorf("RenameAt() = %v, expected %v", got, tt.renamed)
			}
			if got, _ := list.At(0); got != tt.expected {
				t.Errorf("expected first tag %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSelectionList_DuplicatesAllowed(t *testing.T) {
	list := NewSelectionList()
	list.Append("red")
	list.Append("red")

	if list.Len() != 2 {
		t.Errorf("expected duplicates kept, got %v", list.Tags())
	}
}

func TestSelectionList_Serialize(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected string
	}{
		{"empty", nil, ""},
		{"single", []string{"red"}, "red"},
		{"joined", []string{"red", "blue"}, "red, blue"},
		{"parentheses", []string{"tree (large)", "x"}, `tree \(large\), x`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewSelectionList(tt.tags...)
			if got := list.Serialize(); got != tt.expected {
				t.Errorf("Serialize() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestSelectionList_PlainKeepsParentheses(t *testing.T) {
	list := NewSelectionList("tree (large)", "x")
	if got := list.Plain(); got != "tree (large), x" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestSelectionList_TagsIsCopy(t *testing.T) {
	list := NewSelectionList("a")
	tags := list.Tags()
	tags[0] = "z"

	if got, _ := list.At(0); got != "a" {
		t.Errorf("Tags() leaked internal storage")
	}
}

func TestParseDropSide(t *testing.T) {
	tests := []struct {
		in   string
		side DropSide
		ok   bool
	}{
		{"left", DropLeft, true},
		{"Right", DropRight, true},
		{" after ", DropRight, true},
		{"up", DropLeft, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			side, ok := ParseDropSide(tt.in)
			if side != tt.side || ok != tt.ok {
				t.Errorf("ParseDropSide(%q) = %v, %v", tt.in, side, ok)
			}
		})
	}
}

func TestMoveByDrag_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tags := rapid.SliceOfN(rapid.StringMatching(`[a-z]{1,4}`), 1, 12).Draw(t, "tags")
		n := len(tags)
		source := rapid.IntRange(-1, n).Draw(t, "source")
		target := rapid.IntRange(-1, n).Draw(t, "target")
		side := DropSide(rapid.IntRange(0, 1).Draw(t, "side"))

		list := NewSelectionList(tags...)
		moved := list.MoveByDrag(source, target, side)
		got := list.Tags()

		valid := source != target && source >= 0 && source < n && target >= 0 && target < n
		if moved != valid {
			t.Fatalf("moved = %v for source=%d target=%d n=%d", moved, source, target, n)
		}
		if !valid {
			if !slices.Equal(got, tags) {
				t.Fatalf("invalid move changed the list: %v -> %v", tags, got)
			}
			return
		}

		if len(got) != n {
			t.Fatalf("length changed: %d -> %d", n, len(got))
		}
		sortedBefore := slices.Sorted(slices.Values(tags))
		sortedAfter := slices.Sorted(slices.Values(got))
		if !slices.Equal(sortedBefore, sortedAfter) {
			t.Fatalf("multiset changed: %v -> %v", tags, got)
		}

		want := target
		if source < target {
			want--
		}
		if side == DropRight {
			want++
		}
		if got[want] != tags[source] {
			t.Fatalf("dragged tag %q not at %d: %v", tags[source], want, got)
		}

		rest := slices.Delete(slices.Clone(tags), source, source+1)
		others := slices.Delete(slices.Clone(got), want, want+1)
		if !slices.Equal(rest, others) {
			t.Fatalf("relative order of other tags changed: %v -> %v", rest, others)
		}
	})
}
