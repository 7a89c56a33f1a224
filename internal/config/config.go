// Package config handles viewer configuration loading and management.
package config

import (
	"fmt"
	"time"

	"github.com/Faultbox/portfolio-room/internal/preset"
)

// Config holds all viewer settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Audio   AudioConfig   `yaml:"audio"`
	Camera  CameraConfig  `yaml:"camera"`
	Links   LinksConfig   `yaml:"links"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"`
}

// AudioConfig holds audio settings. Muted is the only value the viewer
// writes back on its own.
type AudioConfig struct {
	Muted  bool    `yaml:"muted"`
	Volume float64 `yaml:"volume"`
}

// CameraConfig holds camera rig settings.
type CameraConfig struct {
	FlyDuration       time.Duration `yaml:"fly_duration"`
	DragThresholdPx   float64       `yaml:"drag_threshold_px"`
	StartPreset       string        `yaml:"start_preset"`
	RestartOnReselect bool          `yaml:"restart_on_reselect"`
}

// LinksConfig holds the profile URLs opened by the wall posters.
type LinksConfig struct {
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
		},
		Audio: AudioConfig{
			Muted:  false,
			Volume: 0.8,
		},
		Camera: CameraConfig{
			FlyDuration:       1200 * time.Millisecond,
			DragThresholdPx:   5,
			StartPreset:       string(preset.Overview),
			RestartOnReselect: true,
		},
		Links: LinksConfig{
			GitHub:   "https://github.com/",
			LinkedIn: "https://www.linkedin.com/",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// StartPreset returns the configured start preset.
func (c *Config) StartPreset() (preset.Name, error) {
	name, err := preset.Parse(c.Camera.StartPreset)
	if err != nil {
		return "", fmt.Errorf("camera.start_preset: %w", err)
	}
	return name, nil
}
