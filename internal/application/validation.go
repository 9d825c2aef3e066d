package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "sourceIndex" -> "source index")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"path":        "path",
		"tag":         "tag",
		"value":       "value",
		"index":       "index",
		"sourceIndex": "source index",
		"targetIndex": "target index",
		"side":        "side",
		"template":    "template",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateIndex checks that index addresses one of length selected tags.
// Returns a ValidationError if it does not.
func ValidateIndex(fieldName string, index, length int) error {
	if index < 0 || index >= length {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s %d out of range (have %d tags)", displayName, index, length),
		}
	}
	return nil
}
