// Package config handles configuration loading from a TOML file, mirroring
// the ambient configuration surface the editor engine is embedded in.
// Environment variables are not read.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure a host application loads
// before constructing an EditorEngine.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	UI     UIConfig     `toml:"ui"`
}

// EditorConfig maps directly onto editor.EditorEngineConfigOptions; it is
// kept separate from that type so this package never imports the editor
// package, only produces plain values the caller assigns into one.
type EditorConfig struct {
	Multiline       *bool `toml:"multiline"`
	SyntaxHighlight *bool `toml:"syntax_highlight"`
}

// MultilineOrDefault returns the configured value or true if unset, matching
// EditorEngineConfigOptions's documented default.
func (e EditorConfig) MultilineOrDefault() bool {
	if e.Multiline == nil {
		return true
	}
	return *e.Multiline
}

// SyntaxHighlightOrDefault returns the configured value or true if unset.
func (e EditorConfig) SyntaxHighlightOrDefault() bool {
	if e.SyntaxHighlight == nil {
		return true
	}
	return *e.SyntaxHighlight
}

// UIConfig holds presentation settings layered on top of the editor core.
type UIConfig struct {
	// SyntaxTheme names the chroma style used for highlighted lines.
	// Defaults to "monokai" if unset.
	SyntaxTheme string `toml:"syntax_theme"`
	// BackgroundColor is a hex RGB value such as "#282828". No package in
	// this module reads it; the editor's render path does not use it.
	BackgroundColor string `toml:"background_color"`
}

// SyntaxThemeOrDefault returns the configured chroma style name, or
// "monokai" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return "monokai"
	}
	return u.SyntaxTheme
}

// BackgroundColorOrDefault returns the configured background color, or a
// dark neutral default if unset.
func (u UIConfig) BackgroundColorOrDefault() string {
	if u.BackgroundColor == "" {
		return "#1d2021"
	}
	return u.BackgroundColor
}

// Load reads configuration from a TOML file. A missing path is not an
// error: the caller gets an all-defaults Config, matching the editor
// engine's own "construct with defaults if nothing is configured" posture.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config file not accessible: %w", err)
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
