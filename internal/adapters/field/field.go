package field

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"promptbuilder/internal/ports"
)

// Listener is notified after every value change
type Listener func(value string)

// FileField implements ports.PromptField by mirroring the value into a file
// that a host process reads as its generation parameter.
type FileField struct {
	mu        sync.Mutex
	path      string
	value     string
	listeners []Listener
}

// Ensure FileField implements PromptField
var _ ports.PromptField = (*FileField)(nil)

// NewFileField creates a field backed by path. An empty path keeps the
// value in memory only.
func NewFileField(path string) *FileField {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return &FileField{path: path}
}

// OnChange registers a listener
func (f *FileField) OnChange(l Listener) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listeners = append(f.listeners, l)
}

// SetValue writes the value and notifies listeners. The file is replaced
// atomically so a reader never sees a partial prompt.
func (f *FileField) SetValue(value string) error {
	f.mu.Lock()
	if f.path != "" {
		if err := writeAtomic(f.path, value); err != nil {
			f.mu.Unlock()
			return err
		}
	}
	f.value = value
	listeners := append([]Listener(nil), f.listeners...)
	f.mu.Unlock()

	for _, l := range listeners {
		l(value)
	}
	return nil
}

// Value returns the last written value
func (f *FileField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

// Path returns the backing file, or "" for an in-memory field
func (f *FileField) Path() string {
	return f.path
}

func writeAtomic(path, value string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create field directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".prompt-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write prompt field: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write prompt field: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace prompt field: %w", err)
	}
	return nil
}
