package ports

// SettingsStore is a persistent key/value store for small records
type SettingsStore interface {
	// Get returns the raw value under key and whether it exists
	Get(key string) (string, bool, error)

	// Set replaces the value under key
	Set(key, value string) error
}
