package config

// Config is the top-level configuration structure for brokerctl.
type Config struct {
	GlobalSettings GlobalSettings `yaml:"globalSettings"`
	View           ViewConfig     `yaml:"view"`
}

// GlobalSettings holds application-wide settings.
type GlobalSettings struct {
	// DataFile is the listings YAML file to load. Empty means the built-in
	// demo inventory.
	DataFile string `yaml:"dataFile,omitempty"`

	// ColorMode selects the terminal palette: "dark" or "light".
	ColorMode string `yaml:"colorMode,omitempty"`

	// PrefsPath is the location of the device-local preference store.
	// Empty means ~/.config/brokerctl/prefs.sqlite.
	PrefsPath string `yaml:"prefsPath,omitempty"`
}

// ViewConfig holds table view settings.
type ViewConfig struct {
	// RestorePersisted opts into reading persisted column preferences back
	// on load instead of the historical discard-then-apply-default behavior.
	RestorePersisted bool `yaml:"restorePersisted,omitempty"`

	// Preset names the default column preset ("default" or "owners").
	Preset string `yaml:"preset,omitempty"`
}
