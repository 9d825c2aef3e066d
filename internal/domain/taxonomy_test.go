package domain

import (
	"errors"
	"testing"
)

func mustTaxonomy(t *testing.T, raw string) *Taxonomy {
	t.Helper()
	payload, err := DecodePayload([]byte(raw))
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	tax, errs := BuildTaxonomy(payload)
	if len(errs) != 0 {
		t.Fatalf("unexpected build errors: %v", errs)
	}
	return tax
}

func itemValues(items []Item) []string {
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = item.Value
	}
	return values
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

const jobsPayload = `{
	"Jobs": {
		"Fantasy": {"_data": ["knight"], "Magic": ["wizard", "witch"]},
		"Modern": ["doctor", "nurse"]
	},
	"Colors": ["red", "blue"]
}`

func TestBuildTaxonomy_FlatCategory(t *testing.T) {
	tax := mustTaxonomy(t, `{"Colors": ["red", "blue"]}`)

	items := tax.ItemsForPath(Path{"Colors"})
	if got := itemValues(items); !equalStrings(got, []string{"red", "blue"}) {
		t.Fatalf("expected [red blue], got %v", got)
	}
	for _, item := range items {
		if !item.Path.Equal(Path{"Colors"}) {
			t.Errorf("expected path [Colors], got %v", item.Path)
		}
	}
	if tax.Structure("Colors") != nil {
		t.Error("flat category should have no structure")
	}
}

func TestBuildTaxonomy_NestedCategory(t *testing.T) {
	tax := mustTaxonomy(t, `{"Jobs": {"Fantasy": {"_data": ["knight"]}, "Modern": ["doctor","nurse"]}}`)

	structure := tax.Structure("Jobs")
	if structure == nil {
		t.Fatal("expected structure for Jobs")
	}
	var keys []string
	for pair := structure.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	if !equalStrings(keys, []string{"Fantasy", "Modern"}) {
		t.Errorf("expected structure keys [Fantasy Modern], got %v", keys)
	}

	fantasy := tax.ItemsForPath(Path{"Jobs", "Fantasy"})
	if len(fantasy) != 1 || fantasy[0].Value != "knight" || !fantasy[0].Path.Equal(Path{"Jobs", "Fantasy"}) {
		t.Errorf("unexpected Fantasy items: %+v", fantasy)
	}

	modern := tax.ItemsForPath(Path{"Jobs", "Modern"})
	if got := itemValues(modern); !equalStrings(got, []string{"doctor", "nurse"}) {
		t.Errorf("expected [doctor nurse], got %v", got)
	}
}

func TestBuildTaxonomy_DataKeyIsNotStructure(t *testing.T) {
	tax := mustTaxonomy(t, `{"Jobs": {"_data": ["worker"], "Modern": ["doctor"]}}`)

	if _, ok := tax.Structure("Jobs").Get(DataKey); ok {
		t.Error("structure must not contain _data")
	}
	root := tax.ItemsForPath(Path{"Jobs"})
	if got := itemValues(root); !equalStrings(got, []string{"worker"}) {
		t.Errorf("expected root _data items [worker], got %v", got)
	}
}

func TestBuildTaxonomy_DataMappingIgnored(t *testing.T) {
	tax := mustTaxonomy(t, `{"Jobs": {"_data": {"x": ["y"]}, "Modern": ["doctor"]}}`)

	group, _ := tax.Group("Jobs")
	for _, item := range group.Items {
		for _, segment := range item.Path {
			if segment == DataKey {
				t.Fatalf("item %q carries a _data path segment", item.Value)
			}
		}
	}
	if len(group.Items) != 1 {
		t.Errorf("expected 1 item, got %d", len(group.Items))
	}
}

func TestItemsForPath_LengthOneIsExact(t *testing.T) {
	tax := mustTaxonomy(t, jobsPayload)

	if items := tax.ItemsForPath(Path{"Jobs"}); len(items) != 0 {
		t.Errorf("Jobs has no root leaves, got %v", itemValues(items))
	}
	magic := tax.ItemsForPath(Path{"Jobs", "Fantasy", "Magic"})
	if got := itemValues(magic); !equalStrings(got, []string{"wizard", "witch"}) {
		t.Errorf("expected [wizard witch], got %v", got)
	}
}

func TestItemsForPath_UnknownGroup(t *testing.T) {
	tax := mustTaxonomy(t, jobsPayload)

	tests := []struct {
		name string
		path Path
	}{
		{"unknown group", Path{"Nope"}},
		{"unknown subgroup", Path{"Jobs", "Nope"}},
		{"empty path", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := tax.ItemsForPath(tt.path)
			if items == nil || len(items) != 0 {
				t.Errorf("expected empty non-nil slice, got %v", items)
			}
		})
	}
}

func TestGroups_PreservePayloadOrder(t *testing.T) {
	tax := mustTaxonomy(t, `{"Zeta": ["z"], "Alpha": ["a"], "Mid": {"b": ["1"], "a": ["2"]}}`)

	if got := tax.GroupNames(); !equalStrings(got, []string{"Zeta", "Alpha", "Mid"}) {
		t.Errorf("expected payload order, got %v", got)
	}

	var children []string
	for _, n := range tax.Children(Path{"Mid"}) {
		children = append(children, n.Name())
	}
	if !equalStrings(children, []string{"b", "a"}) {
		t.Errorf("expected children [b a], got %v", children)
	}
}

func TestNodeQueries(t *testing.T) {
	tax := mustTaxonomy(t, jobsPayload)

	tests := []struct {
		name        string
		path        Path
		hasChildren bool
		hasItems    bool
		firstChild  Path
	}{
		{"structured root", Path{"Jobs"}, true, false, Path{"Jobs", "Fantasy"}},
		{"flat root", Path{"Colors"}, false, true, nil},
		{"mapping with data", Path{"Jobs", "Fantasy"}, true, true, Path{"Jobs", "Fantasy", "Magic"}},
		{"leaf subgroup", Path{"Jobs", "Modern"}, false, true, nil},
		{"deep leaf", Path{"Jobs", "Fantasy", "Magic"}, false, true, nil},
		{"unknown", Path{"Jobs", "Ghost"}, false, false, nil},
		{"empty", nil, false, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tax.NodeHasChildren(tt.path); got != tt.hasChildren {
				t.Errorf("NodeHasChildren(%v) = %v, expected %v", tt.path, got, tt.hasChildren)
			}
			if got := tax.NodeHasDirectItems(tt.path); got != tt.hasItems {
				t.Errorf("NodeHasDirectItems(%v) = %v, expected %v", tt.path, got, tt.hasItems)
			}
			first, ok := tax.FirstChildPath(tt.path)
			if tt.firstChild == nil {
				if ok {
					t.Errorf("FirstChildPath(%v) = %v, expected none", tt.path, first)
				}
			} else if !ok || !first.Equal(tt.firstChild) {
				t.Errorf("FirstChildPath(%v) = %v, expected %v", tt.path, first, tt.firstChild)
			}
		})
	}
}

func TestNodeHasChildren_EmptyMapping(t *testing.T) {
	tax := mustTaxonomy(t, `{"Root": {}, "Other": {"Empty": {}}}`)

	if tax.NodeHasChildren(Path{"Root"}) {
		t.Error("empty top-level mapping should not report children")
	}
	if !tax.NodeHasChildren(Path{"Other", "Empty"}) {
		t.Error("nested mapping reports children even when empty")
	}
	if _, ok := tax.FirstChildPath(Path{"Other", "Empty"}); ok {
		t.Error("empty mapping has no first child")
	}
}

func TestBuildTaxonomy_MalformedCategorySkipped(t *testing.T) {
	payload, err := DecodePayload([]byte(`{"Good": ["a"], "Bad": "oops", "Worse": 12, "Also": {"x": ["y"]}}`))
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}

	tax, errs := BuildTaxonomy(payload)
	if len(errs) != 2 {
		t.Fatalf("expected 2 malformed categories, got %v", errs)
	}
	for _, err := range errs {
		if !errors.Is(err, ErrMalformedCategory) {
			t.Errorf("expected ErrMalformedCategory, got %v", err)
		}
	}
	if got := tax.GroupNames(); !equalStrings(got, []string{"Good", "Also"}) {
		t.Errorf("expected [Good Also] to load, got %v", got)
	}
}

func TestItemInvariant_PathsExistInStructure(t *testing.T) {
	tax := mustTaxonomy(t, jobsPayload)

	for _, group := range tax.Groups() {
		for _, item := range group.Items {
			if !tax.Contains(item.Path) {
				t.Errorf("item %q has path %v missing from structure", item.Value, item.Path)
			}
		}
	}
}

func TestItemsForPath_ReturnsCopies(t *testing.T) {
	tax := mustTaxonomy(t, jobsPayload)

	items := tax.ItemsForPath(Path{"Jobs", "Fantasy", "Magic"})
	items[0].Path[2] = "Broken"

	again := tax.ItemsForPath(Path{"Jobs", "Fantasy", "Magic"})
	if got := itemValues(again); !equalStrings(got, []string{"wizard", "witch"}) {
		t.Errorf("changing a returned path altered the taxonomy, got %v", got)
	}

	colors := tax.ItemsForPath(Path{"Colors"})
	colors[0].Path[0] = "Broken"
	if colors[1].Path.Key() != "Colors" {
		t.Errorf("returned items share a path: %v", colors[1].Path)
	}
}

func TestItems_PayloadOrder(t *testing.T) {
	tax := mustTaxonomy(t, jobsPayload)

	items := tax.Items()
	want := []string{"knight", "wizard", "witch", "doctor", "nurse", "red", "blue"}
	if got := itemValues(items); !equalStrings(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if items[0].Path.Key() != "Jobs>Fantasy" {
		t.Errorf("_data item path = %v", items[0].Path)
	}

	items[0].Path[0] = "Broken"
	if got := tax.Items()[0].Path.Key(); got != "Jobs>Fantasy" {
		t.Errorf("changing a returned path altered the taxonomy, got %s", got)
	}
}
