package model

// Settings is the flat record of user preferences. TagColors maps a tag
// name to a color override applied on top of the built-in tag palette.
type Settings struct {
	SoundEnabled    bool              `json:"soundEnabled"`
	ConfettiEnabled bool              `json:"confettiEnabled"`
	QuotesEnabled   bool              `json:"quotesEnabled"`
	SmartTargeting  bool              `json:"smartTargeting"`
	TagColors       map[string]string `json:"tagColors,omitempty"`
}

// DefaultSettings returns the out-of-the-box preference set.
func DefaultSettings() Settings {
	return Settings{
		SoundEnabled:    true,
		ConfettiEnabled: true,
		QuotesEnabled:   true,
		SmartTargeting:  true,
	}
}
