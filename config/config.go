package config

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	DrawCollision bool // Outline every collidable and the probe
	LogLevel      string
}

// Global configuration instances
var C *Config
var Debug DebugConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Debug = DebugConfig{
		DrawCollision: true,
		LogLevel:      "debug",
	}
}
