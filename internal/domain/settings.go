package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// SettingsKey is the store key the settings record lives under
const SettingsKey = "promptBuilderSettings"

// DefaultAutoGenerateThreshold is the tag count that fires auto-generation
const DefaultAutoGenerateThreshold = 3

// ErrSettingsCorrupt means the stored settings could not be parsed
var ErrSettingsCorrupt = errors.New("settings corrupt")

// Settings is the user configuration of the prompt builder
type Settings struct {
	AutoGenerate          bool `json:"autoGenerate"`
	AutoGenerateThreshold int  `json:"autoGenerateThreshold"`
	DanbooruLinks         bool `json:"danbooruLinks"`
	DebugMode             bool `json:"debugMode"`
}

// DefaultSettings returns {false, 3, false, false}
func DefaultSettings() Settings {
	return Settings{AutoGenerateThreshold: DefaultAutoGenerateThreshold}
}

// ParseSettings merges a stored record onto the defaults. Fields that are
// missing or of the wrong type keep their default; unknown fields are ignored.
// When raw is not a JSON object the defaults come back with ErrSettingsCorrupt.
func ParseSettings(raw string) (Settings, error) {
	settings := DefaultSettings()
	if strings.TrimSpace(raw) == "" {
		return settings, nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return DefaultSettings(), fmt.Errorf("%w: %w", ErrSettingsCorrupt, err)
	}

	mergeBool(fields, "autoGenerate", &settings.AutoGenerate)
	mergeBool(fields, "danbooruLinks", &settings.DanbooruLinks)
	mergeBool(fields, "debugMode", &settings.DebugMode)
	if v, ok := fields["autoGenerateThreshold"]; ok {
		if n, ok := parseThreshold(v); ok {
			settings.AutoGenerateThreshold = n
		}
	}

	return settings, nil
}

func mergeBool(fields map[string]json.RawMessage, name string, dst *bool) {
	v, ok := fields[name]
	if !ok {
		return
	}
	var b bool
	if err := json.Unmarshal(v, &b); err == nil {
		*dst = b
	}
}

// parseThreshold accepts a JSON number or a numeric string, truncated toward
// zero. Values below one are rejected.
func parseThreshold(raw json.RawMessage) (int, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 1 || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Normalize replaces an out-of-range threshold with the default
func (s Settings) Normalize() Settings {
	if s.AutoGenerateThreshold < 1 {
		s.AutoGenerateThreshold = DefaultAutoGenerateThreshold
	}
	return s
}

// Encode serializes the settings for the store
func (s Settings) Encode() (string, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("encode settings: %w", err)
	}
	return string(data), nil
}

// ShouldAutoGenerate reports whether a list of count tags fires generation
func (s Settings) ShouldAutoGenerate(count int) bool {
	return s.AutoGenerate && count > 0 && count >= s.AutoGenerateThreshold
}
