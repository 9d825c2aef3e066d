package ports

// PromptField is the hidden generation parameter that carries the serialized tags
type PromptField interface {
	// SetValue stores the value and notifies listeners of the change
	SetValue(value string) error
}
