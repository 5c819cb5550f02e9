package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagModel      = flag.String("model", "", "OBJ model to display")
	flagTexture    = flag.String("texture", "", "Diffuse texture for the model")
	flagPart       = flag.String("part", "", "Draw only this part (name or index)")
	flagGround     = flag.Bool("ground", false, "Draw a ground plane under the model")
	flagProfile    = flag.String("profile", "", "Record a profile: cpu or mem")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagModel != "" {
		cfg.Viewer.Model = *flagModel
	}
	if *flagTexture != "" {
		cfg.Viewer.Texture = *flagTexture
	}
	if *flagPart != "" {
		cfg.Viewer.Part = *flagPart
	}
	if *flagGround {
		cfg.Viewer.Ground = true
	}
	if *flagProfile != "" {
		cfg.Profile.Mode = *flagProfile
	}
}
