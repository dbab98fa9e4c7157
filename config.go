package canvas

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window and loop opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string `toml:"title"`
	// Width and Height are the initial window and buffer size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`
	// Resizable lets the user resize the window; the buffer follows.
	Resizable bool `toml:"resizable"`
	// TPS is the update rate. Zero keeps the Ebitengine default (60).
	TPS int `toml:"tps"`
	// ShowFPS overlays the current FPS and TPS.
	ShowFPS bool `toml:"show_fps"`
	// Format is the backing buffer pixel format.
	Format Format `toml:"format"`
	// Policy decides what happens to out-of-range pixel writes.
	Policy BoundsPolicy `toml:"policy"`
	// QuitKey closes the window when pressed.
	QuitKey ebiten.Key `toml:"quit_key"`
	// DisableQuitKey leaves closing the window as the only way to quit.
	DisableQuitKey bool `toml:"disable_quit_key"`
	// Debug logs per-frame timing.
	Debug bool `toml:"debug"`
}

// DefaultRunConfig returns a 512x512 packed-RGB window that quits on Escape.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:   "canvas",
		Width:   512,
		Height:  512,
		TPS:     ebiten.DefaultTPS,
		Format:  PackedRGB,
		Policy:  DropOutOfRange,
		QuitKey: ebiten.KeyEscape,
	}
}

// LoadConfig decodes a TOML file over DefaultRunConfig. Keys missing from the
// file keep their defaults.
//
//	title = "Raytracer"
//	width = 800
//	height = 600
//	resizable = true
//	format = "planar-rgba"
//	policy = "report"
//	quit_key = "Q"
//	disable_quit_key = false
func LoadConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RunConfig{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return RunConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoopConfig returns the loop settings carried by the run config.
func (c RunConfig) LoopConfig() LoopConfig {
	quitKey := c.QuitKey
	return LoopConfig{
		Format:         c.Format,
		Policy:         c.Policy,
		QuitKey:        &quitKey,
		DisableQuitKey: c.DisableQuitKey,
		Debug:          c.Debug,
	}
}

func (c RunConfig) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	if c.TPS < 0 && c.TPS != ebiten.SyncWithFPS {
		return fmt.Errorf("invalid tps %d", c.TPS)
	}
	return nil
}
