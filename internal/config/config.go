// Package config handles meshstats configuration loading and management.
package config

// Config holds all meshstats settings.
type Config struct {
	Engine        EngineConfig        `yaml:"engine"`
	Viewer        ViewerConfig        `yaml:"viewer"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// EngineConfig holds mesh computation settings.
type EngineConfig struct {
	Workers int `yaml:"workers"` // Statistics workers, 0 = one per CPU
}

// ViewerConfig holds interactive viewer settings.
type ViewerConfig struct {
	MeshDir  string `yaml:"mesh_dir"`  // Directory relative paths are resolved against
	SavePath string `yaml:"save_path"` // Default target for "save" without a path
	Dialogs  bool   `yaml:"dialogs"`   // Use native file dialogs when no path is given
}

// NotificationsConfig holds notification log settings.
type NotificationsConfig struct {
	Capacity   int    `yaml:"capacity"`    // 0 = unbounded
	TimeFormat string `yaml:"time_format"` // Go time layout
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{
			Workers: 0,
		},
		Viewer: ViewerConfig{
			MeshDir:  ".",
			SavePath: "",
			Dialogs:  true,
		},
		Notifications: NotificationsConfig{
			Capacity:   256,
			TimeFormat: "15:04:05",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
