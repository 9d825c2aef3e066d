package commands

import (
	"context"
	"testing"
)

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name     string
		template string
		tags     []string
		expected string
		wantErr  bool
	}{
		{
			name:     "substitutes escaped tags",
			template: "masterpiece, <pbprompt>",
			tags:     []string{"knight", "tree (large)"},
			expected: `masterpiece, knight, tree \(large\)`,
		},
		{
			name:     "no tags leaves placeholder",
			template: "masterpiece, <pbprompt>",
			expected: "masterpiece, <pbprompt>",
		},
		{
			name:     "missing placeholder",
			template: "masterpiece",
			tags:     []string{"x"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewRenderCommand(tt.template, tt.tags).Execute(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("Execute() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}
