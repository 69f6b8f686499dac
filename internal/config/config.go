package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/andyrewlee/marquee/internal/engine"
)

// KeyMapConfig holds user overrides for keybindings.
type KeyMapConfig struct {
	Bindings map[string][]string `json:"bindings,omitempty"`
}

// BindingFor returns the configured keys for an action, if present.
func (k KeyMapConfig) BindingFor(action string) ([]string, bool) {
	if len(k.Bindings) == 0 {
		return nil, false
	}
	if keys, ok := k.Bindings[action]; ok {
		return keys, true
	}
	if keys, ok := k.Bindings[strings.ToLower(action)]; ok {
		return keys, true
	}
	return nil, false
}

// CarouselConfig tunes the scroll interaction. Environment variables override
// values read from the config file.
type CarouselConfig struct {
	SlidesPerView  int     `json:"slides_per_view" env:"MARQUEE_SLIDES_PER_VIEW"`
	Loop           bool    `json:"loop" env:"MARQUEE_LOOP"`
	Gap            float64 `json:"gap" env:"MARQUEE_GAP"`
	MinVelocity    float64 `json:"min_velocity" env:"MARQUEE_MIN_VELOCITY"`
	DragDecel      float64 `json:"drag_decel" env:"MARQUEE_DRAG_DECEL"`
	WheelDecel     float64 `json:"wheel_decel" env:"MARQUEE_WHEEL_DECEL"`
	Autoplay       bool    `json:"autoplay" env:"MARQUEE_AUTOPLAY"`
	AutoplayMillis int     `json:"autoplay_millis" env:"MARQUEE_AUTOPLAY_MILLIS"`
	WheelStep      float64 `json:"wheel_step" env:"MARQUEE_WHEEL_STEP"`
}

// Config holds the application configuration
type Config struct {
	Paths    *Paths
	Carousel CarouselConfig
	KeyMap   KeyMapConfig
	UI       UISettings
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	return &Config{
		Paths: paths,
		Carousel: CarouselConfig{
			SlidesPerView:  1,
			Loop:           true,
			Gap:            2,
			MinVelocity:    engine.DefaultMinVelocity,
			DragDecel:      engine.DefaultDragDecel,
			WheelDecel:     engine.DefaultWheelDecel,
			Autoplay:       false,
			AutoplayMillis: 4000,
			WheelStep:      6,
		},
		KeyMap: KeyMapConfig{},
		UI:     defaultUISettings(),
	}, nil
}

// Load builds the configuration from defaults, ~/.marquee/config.json
// overrides, and MARQUEE_* environment variables, in that order.
func Load() (*Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return nil, err
	}

	if err := cfg.loadFile(cfg.Paths.ConfigPath); err != nil {
		return nil, err
	}

	if err := env.Parse(&cfg.Carousel); err != nil {
		return nil, err
	}

	cfg.Carousel.normalize()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var user struct {
		Carousel *CarouselConfig `json:"carousel,omitempty"`
		KeyMap   KeyMapConfig    `json:"keymap,omitempty"`
	}
	if err := json.Unmarshal(data, &user); err != nil {
		return err
	}

	if user.Carousel != nil {
		c.Carousel = *user.Carousel
	}
	if len(user.KeyMap.Bindings) > 0 {
		c.KeyMap = user.KeyMap
	}

	c.UI = loadUISettings(path)
	return nil
}

// normalize clamps out-of-range values back to usable defaults so a broken
// config file can't wedge the interaction loop.
func (c *CarouselConfig) normalize() {
	if c.SlidesPerView < 1 {
		c.SlidesPerView = 1
	}
	if c.Gap < 0 {
		c.Gap = 0
	}
	if c.MinVelocity <= 0 {
		c.MinVelocity = engine.DefaultMinVelocity
	}
	if c.DragDecel <= 0 || c.DragDecel >= 1 {
		c.DragDecel = engine.DefaultDragDecel
	}
	if c.WheelDecel <= 0 || c.WheelDecel >= 1 {
		c.WheelDecel = engine.DefaultWheelDecel
	}
	if c.AutoplayMillis < 500 {
		c.AutoplayMillis = 4000
	}
	if c.WheelStep <= 0 {
		c.WheelStep = 6
	}
}
