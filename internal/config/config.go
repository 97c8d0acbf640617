// Package config handles meshtool configuration loading and management.
package config

// Config holds all tool settings.
type Config struct {
	Picking    PickingConfig    `yaml:"picking"`
	SoftSelect SoftSelectConfig `yaml:"soft_select"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// PickingConfig holds raycast picking settings.
type PickingConfig struct {
	// Tolerance is the max distance from a hit point to snap to a
	// vertex or edge, in mesh units.
	Tolerance float32 `yaml:"tolerance"`
}

// SoftSelectConfig holds soft-selection defaults.
type SoftSelectConfig struct {
	Radius float32 `yaml:"radius"`
	Mode   string  `yaml:"mode"` // "volume" or "surface"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Picking: PickingConfig{
			Tolerance: 0.25,
		},
		SoftSelect: SoftSelectConfig{
			Radius: 1.0,
			Mode:   "volume",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
