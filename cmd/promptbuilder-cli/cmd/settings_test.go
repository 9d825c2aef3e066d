package cmd

import (
	"testing"

	"promptbuilder/internal/domain"
)

func TestApplySetting(t *testing.T) {
	tests := []struct {
		name    string
		setting string
		value   string
		check   func(domain.Settings) bool
		wantErr bool
	}{
		{"threshold", "auto-generate-threshold", "5", func(s domain.Settings) bool { return s.AutoGenerateThreshold == 5 }, false},
		{"zero threshold", "auto-generate-threshold", "0", nil, true},
		{"auto generate", "auto-generate", "true", func(s domain.Settings) bool { return s.AutoGenerate }, false},
		{"links", "danbooru-links", "1", func(s domain.Settings) bool { return s.DanbooruLinks }, false},
		{"debug", "debug", "yes", nil, true},
		{"unknown", "colour", "red", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := applySetting(domain.DefaultSettings(), tt.setting, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applySetting() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil && !tt.check(got) {
				t.Errorf("applySetting() = %+v", got)
			}
		})
	}
}
