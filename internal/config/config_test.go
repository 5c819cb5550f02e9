package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Window.VSync {
		t.Error("expected vsync to be true by default")
	}

	if len(cfg.Assets.Roots) != 1 || cfg.Assets.Roots[0] != "." {
		t.Errorf("expected assets roots [.], got %v", cfg.Assets.Roots)
	}
	if cfg.Assets.CacheSize != 32 {
		t.Errorf("expected cache size 32, got %d", cfg.Assets.CacheSize)
	}

	if cfg.Viewer.HUDDistance != 1.0 {
		t.Errorf("expected hud distance 1.0, got %f", cfg.Viewer.HUDDistance)
	}
	if cfg.Viewer.FOVDegrees != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Viewer.FOVDegrees)
	}
	if cfg.Viewer.ModelPosition != [3]float32{0, 0, -1} {
		t.Errorf("expected model at (0,0,-1), got %v", cfg.Viewer.ModelPosition)
	}
	if cfg.Viewer.Ground || cfg.Viewer.Part != "" {
		t.Errorf("expected no ground and all parts by default, got %+v", cfg.Viewer)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false

assets:
  roots: ["models", "extra"]
  cache_size: 4

viewer:
  model: "boat.obj"
  texture: "wood.png"
  hud_model: "reticle.obj"
  hud_distance: 0.5
  move_speed: 10
  part: "1"
  model_position: [1, 2, 3]
  ground: true

logging:
  level: "debug"
  log_file: "viewer.log"

profile:
  mode: cpu
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if !cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.Title != "wavemesh" {
		t.Errorf("expected default title to survive merge, got %s", cfg.Window.Title)
	}

	if len(cfg.Assets.Roots) != 2 || cfg.Assets.Roots[1] != "extra" {
		t.Errorf("expected roots [models extra], got %v", cfg.Assets.Roots)
	}
	if cfg.Assets.CacheSize != 4 {
		t.Errorf("expected cache size 4, got %d", cfg.Assets.CacheSize)
	}

	if cfg.Viewer.Model != "boat.obj" || cfg.Viewer.Texture != "wood.png" {
		t.Errorf("unexpected viewer content %+v", cfg.Viewer)
	}
	if cfg.Viewer.HUDDistance != 0.5 {
		t.Errorf("expected hud distance 0.5, got %f", cfg.Viewer.HUDDistance)
	}
	if cfg.Viewer.Part != "1" || !cfg.Viewer.Ground {
		t.Errorf("expected part 1 with ground, got %q %v", cfg.Viewer.Part, cfg.Viewer.Ground)
	}
	if cfg.Viewer.ModelPosition != [3]float32{1, 2, 3} {
		t.Errorf("expected model position [1 2 3], got %v", cfg.Viewer.ModelPosition)
	}
	if cfg.Viewer.LookSpeed != 1.5 {
		t.Errorf("expected default look speed to survive merge, got %f", cfg.Viewer.LookSpeed)
	}

	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("unexpected logging %+v", cfg.Logging)
	}
	if cfg.Profile.Mode != "cpu" {
		t.Errorf("expected profile mode cpu, got %s", cfg.Profile.Mode)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero width", func(c *Config) { c.Window.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Window.Height = -1 }, true},
		{"zero cache", func(c *Config) { c.Assets.CacheSize = 0 }, true},
		{"no msaa", func(c *Config) { c.Window.Samples = 0 }, false},
		{"negative ground", func(c *Config) { c.Viewer.GroundSize = -1 }, true},
		{"negative msaa", func(c *Config) { c.Window.Samples = -2 }, true},
		{"mem profile", func(c *Config) { c.Profile.Mode = "mem" }, false},
		{"bad profile", func(c *Config) { c.Profile.Mode = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config in current directory")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Viewer.Model = "ship.obj"
	cfg.Assets.CacheSize = 7
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}
	if loaded.Viewer.Model != "ship.obj" || loaded.Assets.CacheSize != 7 {
		t.Errorf("saved values not restored: %+v", loaded)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(cfg *Config) {
				if cfg.Window.Width != 2560 || cfg.Window.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Window.Width, cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "model and texture flags",
			setup: func() {
				*flagModel = "boat.obj"
				*flagTexture = "wood.png"
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Model != "boat.obj" || cfg.Viewer.Texture != "wood.png" {
					t.Errorf("unexpected viewer %+v", cfg.Viewer)
				}
			},
			teardown: func() {
				*flagModel = ""
				*flagTexture = ""
			},
		},
		{
			name: "part and ground flags",
			setup: func() {
				*flagPart = "mast"
				*flagGround = true
			},
			verify: func(cfg *Config) {
				if cfg.Viewer.Part != "mast" || !cfg.Viewer.Ground {
					t.Errorf("unexpected viewer %+v", cfg.Viewer)
				}
			},
			teardown: func() {
				*flagPart = ""
				*flagGround = false
			},
		},
		{
			name:  "profile flag",
			setup: func() { *flagProfile = "mem" },
			verify: func(cfg *Config) {
				if cfg.Profile.Mode != "mem" {
					t.Errorf("expected profile mode mem, got %s", cfg.Profile.Mode)
				}
			},
			teardown: func() { *flagProfile = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadFromFileStrict(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty file", "", false},
		{"comment only", "# nothing here\n", false},
		{"unknown section", "render:\n  wireframe: true\n", true},
		{"misspelled key", "window:\n  widht: 800\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}

			cfg := Default()
			err := loadFromFile(cfg, path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("loadFromFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg.Window.Width != 1280 {
				t.Errorf("expected defaults to survive, got width %d", cfg.Window.Width)
			}
		})
	}
}
