package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BrandonKowalski/glview/pkg/glview/constants"
	"github.com/BurntSushi/toml"
)

// Config is the on-disk configuration of the platform layer.
//
//	[view]
//	name = "My Game"
//	width = 1280
//	height = 720
//	resizable = true
//	backend = "gl"
//
//	[controller.buttons]
//	back = "button_pause"
type Config struct {
	View       ViewConfig       `toml:"view"`
	Context    GLContextAttrs   `toml:"context"`
	Controller ControllerConfig `toml:"controller"`
	Input      InputConfig      `toml:"input"`
	Log        LogConfig        `toml:"log"`
}

type ViewConfig struct {
	Name          string   `toml:"name"`
	Width         float32  `toml:"width"`
	Height        float32  `toml:"height"`
	Zoom          float32  `toml:"zoom"`
	Resizable     bool     `toml:"resizable"`
	Fullscreen    bool     `toml:"fullscreen"`
	Monitor       int      `toml:"monitor"`
	Backend       string   `toml:"backend"`
	Retina        bool     `toml:"retina"`
	DesignWidth   float32  `toml:"design_width"`
	DesignHeight  float32  `toml:"design_height"`
	Policy        string   `toml:"policy"`
	Icons         []string `toml:"icons"`
	HideCursor    bool     `toml:"hide_cursor"`
	TouchEmulated bool     `toml:"touch_emulated"`
}

type ControllerConfig struct {
	Discover    bool              `toml:"discover"`
	MappingFile string            `toml:"mapping_file"`
	Buttons     map[string]string `toml:"buttons"`
}

type InputConfig struct {
	EvdevDevices []string `toml:"evdev_devices"`
}

type LogConfig struct {
	Path          string `toml:"path"`
	Level         string `toml:"level"`
	InternalLevel string `toml:"internal_level"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		View: ViewConfig{
			Name:          constants.DefaultViewName,
			Width:         constants.DefaultFrameWidth,
			Height:        constants.DefaultFrameHeight,
			Zoom:          1,
			Resizable:     true,
			Backend:       constants.RenderBackendGL.String(),
			TouchEmulated: true,
		},
		Context: DefaultGLContextAttrs(),
		Controller: ControllerConfig{
			Discover: true,
		},
		Log: LogConfig{
			Level:         "info",
			InternalLevel: "error",
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		GetInternalLogger().Warn("Unknown configuration key", "path", path, "key", key.String())
	}
	return cfg, cfg.Validate()
}

// ParseConfig decodes TOML text on top of DefaultConfig.
func ParseConfig(data string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges that TOML decoding cannot express.
func (c Config) Validate() error {
	if c.View.Zoom <= 0 {
		return fmt.Errorf("view.zoom must be larger than 0, got %v", c.View.Zoom)
	}
	if c.View.Width <= 0 || c.View.Height <= 0 {
		return fmt.Errorf("view size must be positive, got %vx%v", c.View.Width, c.View.Height)
	}
	if c.View.Monitor < 0 {
		return fmt.Errorf("view.monitor must not be negative, got %d", c.View.Monitor)
	}
	if _, err := NewControllerMapping(c.Controller.Buttons); err != nil {
		return fmt.Errorf("controller.buttons: %w", err)
	}
	return nil
}

// ResolutionPolicy returns the configured design resolution policy.
func (v ViewConfig) ResolutionPolicy() constants.ResolutionPolicy {
	for p := constants.ResolutionPolicyExactFit; p <= constants.ResolutionPolicyFixedWidth; p++ {
		if p.String() == v.Policy {
			return p
		}
	}
	return constants.ResolutionPolicyUnknown
}

// ApplyDevOverrides replaces the window size with WINDOW_WIDTH and
// WINDOW_HEIGHT when running in development mode. Invalid values fall back
// to the development defaults.
func (c *Config) ApplyDevOverrides() {
	if !constants.IsDevMode() {
		return
	}
	c.View.Fullscreen = false
	c.View.Width = float32(devDimension(constants.WindowWidthEnvVar, constants.DefaultDevWidth))
	c.View.Height = float32(devDimension(constants.WindowHeightEnvVar, constants.DefaultDevHeight))
}

func devDimension(envVar string, fallback int32) int32 {
	v := os.Getenv(envVar)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		GetInternalLogger().Warn("Invalid window dimension; using default", "variable", envVar, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}
