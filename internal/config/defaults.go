package config

// DefaultSettings returns the base layer every load starts from.
func DefaultSettings() Settings {
	return Settings{}
}
