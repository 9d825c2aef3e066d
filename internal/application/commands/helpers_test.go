package commands

import (
	"context"
	"testing"

	"promptbuilder/internal/application"
	"promptbuilder/internal/ports"
)

const testPayload = `{
	"Jobs": {
		"Fantasy": {"_data": ["knight"], "Magic": ["wizard", "witch"]},
		"Modern": ["doctor", "nurse"]
	},
	"Colors": ["red", "blue", "dark red"]
}`

type staticSource struct {
	raw string
}

func (s staticSource) Fetch(ctx context.Context) (*ports.FetchResponse, error) {
	return &ports.FetchResponse{Success: true, Data: []byte(s.raw)}, nil
}

func newTestWidget(t *testing.T, tags ...string) *application.Widget {
	t.Helper()
	w := application.NewWidget(staticSource{raw: testPayload})
	if err := w.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for _, tag := range tags {
		if err := w.Pick(context.Background(), tag); err != nil {
			t.Fatalf("Pick failed: %v", err)
		}
	}
	return w
}
