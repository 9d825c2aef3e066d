package domain

import (
	"errors"
	"testing"
)

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Settings
		corrupt  bool
	}{
		{"empty", "", DefaultSettings(), false},
		{"partial", `{"autoGenerate": true}`, Settings{AutoGenerate: true, AutoGenerateThreshold: 3}, false},
		{"full", `{"autoGenerate":true,"autoGenerateThreshold":5,"danbooruLinks":true,"debugMode":true}`, Settings{true, 5, true, true}, false},
		{"numeric string threshold", `{"autoGenerateThreshold":"4"}`, Settings{AutoGenerateThreshold: 4}, false},
		{"fractional threshold", `{"autoGenerateThreshold":2.9}`, Settings{AutoGenerateThreshold: 2}, false},
		{"zero threshold", `{"autoGenerateThreshold":0}`, DefaultSettings(), false},
		{"garbage threshold", `{"autoGenerateThreshold":"many"}`, DefaultSettings(), false},
		{"wrong type flag", `{"autoGenerate":"yes","danbooruLinks":true}`, Settings{AutoGenerateThreshold: 3, DanbooruLinks: true}, false},
		{"unknown fields", `{"theme":"dark"}`, DefaultSettings(), false},
		{"not json", `{{{`, DefaultSettings(), true},
		{"array", `[1,2]`, DefaultSettings(), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettings(tt.raw)
			if tt.corrupt != errors.Is(err, ErrSettingsCorrupt) {
				t.Errorf("ParseSettings() error = %v, corrupt %v", err, tt.corrupt)
			}
			if got != tt.expected {
				t.Errorf("ParseSettings() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestSettings_EncodeRoundTrip(t *testing.T) {
	in := Settings{AutoGenerate: true, AutoGenerateThreshold: 7, DebugMode: true}

	raw, err := in.Encode()
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	out, err := ParseSettings(raw)
	if err != nil {
		t.Fatalf("ParseSettings failed: %v", err)
	}
	if out != in {
		t.Errorf("expected %+v, got %+v", in, out)
	}
}

func TestSettings_ShouldAutoGenerate(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		count    int
		expected bool
	}{
		{"disabled", Settings{AutoGenerateThreshold: 1}, 5, false},
		{"below threshold", Settings{AutoGenerate: true, AutoGenerateThreshold: 3}, 2, false},
		{"at threshold", Settings{AutoGenerate: true, AutoGenerateThreshold: 3}, 3, true},
		{"above threshold", Settings{AutoGenerate: true, AutoGenerateThreshold: 3}, 4, true},
		{"empty list", Settings{AutoGenerate: true, AutoGenerateThreshold: 1}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.settings.ShouldAutoGenerate(tt.count); got != tt.expected {
				t.Errorf("ShouldAutoGenerate(%d) = %v", tt.count, got)
			}
		})
	}
}

func TestSettings_Normalize(t *testing.T) {
	if got := (Settings{AutoGenerateThreshold: -2}).Normalize(); got.AutoGenerateThreshold != 3 {
		t.Errorf("expected default threshold, got %d", got.AutoGenerateThreshold)
	}
	if got := (Settings{AutoGenerateThreshold: 9}).Normalize(); got.AutoGenerateThreshold != 9 {
		t.Errorf("expected threshold kept, got %d", got.AutoGenerateThreshold)
	}
}
