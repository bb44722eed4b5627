package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"wave-playground/midi"
	"wave-playground/synth"
)

// Limits applied by Normalize
const (
	MinHarmonics = 1
	MaxHarmonics = 64
	MinFPS       = 1
	MaxFPS       = 240
)

// MIDIConfig maps a knob controller onto the harmonics
type MIDIConfig struct {
	Enabled    bool   `json:"enabled"`
	PortFilter string `json:"portFilter,omitempty"` // substring of the input port name
	Channel    int    `json:"channel"`              // 1-16, 0 for any
	BaseCC     int    `json:"baseCC"`
	BaseNote   int    `json:"baseNote"`
}

// Mapping converts the config into a controller mapping for count
// harmonics. Channel 0 listens on every channel.
func (m MIDIConfig) Mapping(count int) midi.Mapping {
	return midi.Mapping{
		Channel:  m.Channel - 1,
		BaseCC:   uint8(clampInt(m.BaseCC, 0, 127)),
		BaseNote: uint8(clampInt(m.BaseNote, 0, 127)),
		Count:    count,
	}
}

// Config is the main configuration structure
type Config struct {
	Harmonics int        `json:"harmonics"`
	FPS       int        `json:"fps"`
	Palette   string     `json:"palette,omitempty"` // builtin name or .gpl path
	LineWidth float64    `json:"lineWidth"`
	Debug     bool       `json:"debug,omitempty"`
	MIDI      MIDIConfig `json:"midi"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Harmonics: synth.DefaultHarmonics,
		FPS:       60,
		Palette:   "scope",
		LineWidth: 1,
		MIDI: MIDIConfig{
			Enabled:  true,
			BaseCC:   20,
			BaseNote: 36,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wave-playground"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file. Fields missing from the file keep their
// defaults.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Normalize()
	return cfg, nil
}

// Save writes the config to disk
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Normalize pulls out-of-range values back to something usable
func (c *Config) Normalize() {
	c.Harmonics = clampInt(c.Harmonics, MinHarmonics, MaxHarmonics)
	c.FPS = clampInt(c.FPS, MinFPS, MaxFPS)
	if !(c.LineWidth > 0) {
		c.LineWidth = 1
	}
	if c.Palette == "" {
		c.Palette = "scope"
	}
	c.MIDI.Channel = clampInt(c.MIDI.Channel, 0, 16)
	c.MIDI.BaseCC = clampInt(c.MIDI.BaseCC, 0, 127)
	c.MIDI.BaseNote = clampInt(c.MIDI.BaseNote, 0, 127)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
