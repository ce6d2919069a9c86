package settings

// Settings holds the persisted editor preferences. They are shared across
// editor surfaces: a preference saved from one client is observed by the
// next client that loads.
type Settings struct {
	// Theme is the UI theme preference: "light", "dark", or "system".
	Theme string `json:"theme"`

	// DefaultMode is the editing mode editors open in.
	DefaultMode string `json:"defaultMode"`

	// DebounceMs overrides the realtime validation debounce window in
	// milliseconds. Zero means use the server default.
	DebounceMs int `json:"debounceMs"`
}

// Default returns the settings used before anything has been persisted.
func Default() Settings {
	return Settings{
		Theme:       "system",
		DefaultMode: "basic",
		DebounceMs:  0,
	}
}

// Keys under which individual settings are stored.
const (
	KeyTheme       = "theme"
	KeyDefaultMode = "default_mode"
	KeyDebounceMs  = "debounce_ms"
)
