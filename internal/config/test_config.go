package config

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	cfg := defaultConfig()
	cfg.UI.AnimationFrames = 0 // transitions complete immediately
	cfg.Log.Level = "off"
	return cfg
}
