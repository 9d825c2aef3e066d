package domain

import "testing"

func TestExpandPlaceholder(t *testing.T) {
	tests := []struct {
		name     string
		prompt   string
		tags     string
		expected string
	}{
		{"replaces", "masterpiece, <pbprompt>, detailed", "red, blue", "masterpiece, red, blue, detailed"},
		{"replaces every occurrence", "<pbprompt> | <pbprompt>", "x", "x | x"},
		{"blank tags", "a <pbprompt>", "  ", "a <pbprompt>"},
		{"no placeholder", "plain prompt", "x", "plain prompt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPlaceholder(tt.prompt, tt.tags); got != tt.expected {
				t.Errorf("ExpandPlaceholder() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestDanbooruURL(t *testing.T) {
	tests := []struct {
		tag      string
		expected string
	}{
		{"knight", "https://danbooru.donmai.us/wiki_pages/knight"},
		{"long hair", "https://danbooru.donmai.us/wiki_pages/long%20hair"},
		{"a/b", "https://danbooru.donmai.us/wiki_pages/a%2Fb"},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			if got := DanbooruURL(tt.tag); got != tt.expected {
				t.Errorf("DanbooruURL(%q) = %q, expected %q", tt.tag, got, tt.expected)
			}
		})
	}
}
