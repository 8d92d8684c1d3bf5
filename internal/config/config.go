// Package config loads game configuration from YAML files with an
// embedded default fallback.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Animation AnimationConfig `yaml:"animation"`
	Theme     ThemeConfig     `yaml:"theme"`
	Database  DatabaseConfig  `yaml:"database"`
}

// AnimationConfig controls the drop animation.
type AnimationConfig struct {
	// FrameDelayMS is the minimum delay between animation frames in
	// milliseconds. The cadence is "at least" this delay, never less.
	FrameDelayMS int `yaml:"frame_delay_ms"`
}

// ThemeConfig holds token colors as ANSI 256-color codes.
type ThemeConfig struct {
	Red    string `yaml:"red"`
	Yellow string `yaml:"yellow"`
}

// DatabaseConfig locates the round history database.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// FrameDelay returns the animation frame delay as a duration. Zero or
// negative values fall back to the default.
func (c Config) FrameDelay() time.Duration {
	if c.Animation.FrameDelayMS <= 0 {
		return time.Duration(Default().Animation.FrameDelayMS) * time.Millisecond
	}
	return time.Duration(c.Animation.FrameDelayMS) * time.Millisecond
}

// Default returns the hardcoded default configuration, used when the
// embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Animation: AnimationConfig{
			FrameDelayMS: 60,
		},
		Theme: ThemeConfig{
			Red:    "9",
			Yellow: "11",
		},
		Database: DatabaseConfig{
			Path: "~/.dropfour/rounds.db",
		},
	}
}
