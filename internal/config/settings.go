package config

import (
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// SettingsPath is relative to the process working directory.
const SettingsPath = "config/settings.yaml"

// Settings holds the player-adjustable options that survive restarts.
type Settings struct {
	MusicVolume      float32 `yaml:"music_volume"`
	SFXVolume        float32 `yaml:"sfx_volume"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"` // degrees per pixel
	MusicEnabled     bool    `yaml:"music_enabled"`
	SFXEnabled       bool    `yaml:"sfx_enabled"`
}

var (
	settingsMu     sync.RWMutex
	globalSettings = DefaultSettings()
)

func DefaultSettings() Settings {
	return Settings{
		MusicVolume:      0.3,
		SFXVolume:        0.4,
		MouseSensitivity: 0.12,
		MusicEnabled:     true,
		SFXEnabled:       true,
	}
}

// LoadSettings reads the settings file into the global settings. A missing or
// unreadable file leaves the defaults in place and is not an error.
func LoadSettings() {
	data, err := os.ReadFile(SettingsPath)
	if err != nil {
		return
	}
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return
	}
	settingsMu.Lock()
	globalSettings = clampSettings(s)
	settingsMu.Unlock()
}

// SaveSettings writes the current global settings to disk, creating the
// config directory if needed.
func SaveSettings() error {
	settingsMu.RLock()
	s := globalSettings
	settingsMu.RUnlock()

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(SettingsPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(SettingsPath, data, 0644)
}

func GetSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return globalSettings
}

func SetMusicVolume(v float32) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	globalSettings.MusicVolume = clamp01(v)
}

func SetSFXVolume(v float32) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	globalSettings.SFXVolume = clamp01(v)
}

func SetMouseSensitivity(v float32) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if v < 0.01 {
		v = 0.01
	}
	if v > 1.0 {
		v = 1.0
	}
	globalSettings.MouseSensitivity = v
}

func SetMusicEnabled(on bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	globalSettings.MusicEnabled = on
}

func SetSFXEnabled(on bool) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	globalSettings.SFXEnabled = on
}

func clampSettings(s Settings) Settings {
	s.MusicVolume = clamp01(s.MusicVolume)
	s.SFXVolume = clamp01(s.SFXVolume)
	if s.MouseSensitivity < 0.01 {
		s.MouseSensitivity = 0.01
	}
	if s.MouseSensitivity > 1.0 {
		s.MouseSensitivity = 1.0
	}
	return s
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
