// Package config handles viewer and tool configuration loading.
package config

// Config holds all settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Assets  AssetsConfig  `yaml:"assets"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
	Profile ProfileConfig `yaml:"profile"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Samples    int    `yaml:"samples"` // MSAA, 0 disables
}

// AssetsConfig holds model lookup settings.
type AssetsConfig struct {
	Roots     []string `yaml:"roots"`      // searched last to first
	CacheSize int      `yaml:"cache_size"` // parsed meshes kept in memory
}

// ViewerConfig holds scene content and camera settings.
type ViewerConfig struct {
	Model       string  `yaml:"model"`
	Texture     string  `yaml:"texture"`
	Part        string  `yaml:"part"` // name or index; empty draws every part
	HUDModel    string  `yaml:"hud_model"`
	HUDTexture  string  `yaml:"hud_texture"`
	HUDDistance float32 `yaml:"hud_distance"`
	MoveSpeed   float32 `yaml:"move_speed"`  // units per second
	LookSpeed   float32 `yaml:"look_speed"`  // radians per second
	MouseLook   float32 `yaml:"mouse_look"`  // radians per pixel
	FOVDegrees  float32 `yaml:"fov_degrees"` // vertical

	ModelPosition [3]float32 `yaml:"model_position"`

	Ground        bool    `yaml:"ground"` // textured plane under the model
	GroundTexture string  `yaml:"ground_texture"`
	GroundSize    float32 `yaml:"ground_size"` // half extent, 0 fits the model

	SunLongitude float32 `yaml:"sun_longitude"` // degrees around +Y
	SunLatitude  float32 `yaml:"sun_latitude"`  // degrees above horizon

	ScreenshotDir string `yaml:"screenshot_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// ProfileConfig selects a runtime profile to record.
type ProfileConfig struct {
	Mode string `yaml:"mode"` // "", "cpu" or "mem"
	Dir  string `yaml:"dir"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:   "wavemesh",
			Width:   1280,
			Height:  720,
			VSync:   true,
			Samples: 4,
		},
		Assets: AssetsConfig{
			Roots:     []string{"."},
			CacheSize: 32,
		},
		Viewer: ViewerConfig{
			HUDDistance: 1.0,
			MoveSpeed:   4.0,
			LookSpeed:   1.5,
			MouseLook:   0.003,
			FOVDegrees:  60,

			ModelPosition: [3]float32{0, 0, -1},

			SunLongitude: 35,
			SunLatitude:  55,

			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  20,
			MaxBackups: 3,
			MaxAgeDays: 14,
			Compress:   true,
		},
		Profile: ProfileConfig{
			Dir: ".",
		},
	}
}
