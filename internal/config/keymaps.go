package config

// KeyMappings defines the key bindings of the interactive menu picker
type KeyMappings struct {
	// Navigation
	PrevEntry string `yaml:"prev_entry"`
	NextEntry string `yaml:"next_entry"`

	// Controls
	PrevOption string `yaml:"prev_option"`
	NextOption string `yaml:"next_option"`
	Select     string `yaml:"select"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevEntry:  "k",
		NextEntry:  "j",
		PrevOption: "h",
		NextOption: "l",
		Select:     "enter",
		ShowHelp:   "?",
		Quit:       "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevEntry == "" {
		k.PrevEntry = defaults.PrevEntry
	}
	if k.NextEntry == "" {
		k.NextEntry = defaults.NextEntry
	}
	if k.PrevOption == "" {
		k.PrevOption = defaults.PrevOption
	}
	if k.NextOption == "" {
		k.NextOption = defaults.NextOption
	}
	if k.Select == "" {
		k.Select = defaults.Select
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
