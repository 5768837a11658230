package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.View.Width != 960 || cfg.View.Height != 640 {
		t.Fatalf("unexpected default size %vx%v", cfg.View.Width, cfg.View.Height)
	}
	if !cfg.Context.VSync || cfg.Context.DepthBits != 24 {
		t.Fatalf("unexpected default context %+v", cfg.Context)
	}
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig(`
[view]
name = "Space Game"
width = 1280
height = 720
backend = "gles"
design_width = 480
design_height = 320
policy = "show_all"
icons = ["icon.svg", "icon.png"]

[context]
multisampling_count = 4
vsync = false

[controller]
discover = false
mapping_file = "gamecontrollerdb.txt"

[controller.buttons]
back = "button_pause"

[input]
evdev_devices = ["/dev/input/event1"]

[log]
level = "debug"
`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.View.Name != "Space Game" || cfg.View.Width != 1280 || cfg.View.Height != 720 {
		t.Fatalf("view not decoded: %+v", cfg.View)
	}
	if cfg.View.Zoom != 1 {
		t.Fatalf("missing zoom should keep the default, got %v", cfg.View.Zoom)
	}
	if constants.ParseRenderBackend(cfg.View.Backend) != constants.RenderBackendGLES {
		t.Fatalf("expected gles backend, got %q", cfg.View.Backend)
	}
	if cfg.View.ResolutionPolicy() != constants.ResolutionPolicyShowAll {
		t.Fatalf("expected show_all, got %v", cfg.View.ResolutionPolicy())
	}
	if len(cfg.View.Icons) != 2 {
		t.Fatalf("expected 2 icons, got %v", cfg.View.Icons)
	}
	if cfg.Context.MultisamplingCount != 4 || cfg.Context.VSync {
		t.Fatalf("context not decoded: %+v", cfg.Context)
	}
	if cfg.Context.RedBits != 8 {
		t.Fatalf("missing context fields should keep defaults, got %+v", cfg.Context)
	}
	if cfg.Controller.Discover || cfg.Controller.Buttons["back"] != "button_pause" {
		t.Fatalf("controller not decoded: %+v", cfg.Controller)
	}
	if len(cfg.Input.EvdevDevices) != 1 {
		t.Fatalf("input not decoded: %+v", cfg.Input)
	}
	if cfg.Log.Level != "debug" || cfg.Log.InternalLevel != "error" {
		t.Fatalf("log not decoded: %+v", cfg.Log)
	}
}

func TestParseConfigRejectsInvalidValues(t *testing.T) {
	tests := []string{
		"[view]\nzoom = 0",
		"[view]\nwidth = -1",
		"[view]\nmonitor = -2",
		"[controller.buttons]\nturbo = \"button_a\"",
		"[view\nbroken",
	}
	for _, data := range tests {
		if _, err := ParseConfig(data); err == nil {
			t.Fatalf("expected error for %q", data)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glview.toml")
	if err := os.WriteFile(path, []byte("[view]\nwidth = 800\nheight = 600\nunknown_key = 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.View.Width != 800 || cfg.View.Height != 600 {
		t.Fatalf("unexpected size %vx%v", cfg.View.Width, cfg.View.Height)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestResolutionPolicyUnknown(t *testing.T) {
	if got := (ViewConfig{Policy: "stretch"}).ResolutionPolicy(); got != constants.ResolutionPolicyUnknown {
		t.Fatalf("expected unknown policy, got %v", got)
	}
}

func TestApplyDevOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", constants.Development)
	t.Setenv(constants.WindowWidthEnvVar, "640")
	t.Setenv(constants.WindowHeightEnvVar, "not-a-number")

	cfg := DefaultConfig()
	cfg.View.Fullscreen = true
	cfg.ApplyDevOverrides()

	if cfg.View.Fullscreen {
		t.Fatalf("dev mode must force windowed")
	}
	if cfg.View.Width != 640 {
		t.Fatalf("expected width 640, got %v", cfg.View.Width)
	}
	if cfg.View.Height != float32(constants.DefaultDevHeight) {
		t.Fatalf("expected fallback height, got %v", cfg.View.Height)
	}
}

func TestApplyDevOverridesOutsideDevMode(t *testing.T) {
	t.Setenv("ENVIRONMENT", "")
	cfg := DefaultConfig()
	cfg.ApplyDevOverrides()
	if cfg.View.Width != constants.DefaultFrameWidth {
		t.Fatalf("size must not change outside dev mode, got %v", cfg.View.Width)
	}
}
