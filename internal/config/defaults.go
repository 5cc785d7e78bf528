package config

// GetDefaultConfig returns the built-in default configuration.
func GetDefaultConfig() Config {
	return Config{
		GlobalSettings: GlobalSettings{
			ColorMode: "dark",
		},
		View: ViewConfig{
			Preset: "default",
		},
	}
}
