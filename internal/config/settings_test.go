package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdirTemp moves the working directory into a fresh temp dir so the settings
// file paths used by Load/Save never touch the real config.
func chdirTemp(t *testing.T) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Chdir(old)
		settingsMu.Lock()
		globalSettings = DefaultSettings()
		settingsMu.Unlock()
	})
}

func TestSaveLoadRoundTrip(t *testing.T) {
	chdirTemp(t)

	SetMusicVolume(0.75)
	SetSFXVolume(0.25)
	SetMouseSensitivity(0.2)
	SetMusicEnabled(false)
	if err := SaveSettings(); err != nil {
		t.Fatalf("save: %v", err)
	}

	SetMusicVolume(0.1)
	SetSFXVolume(0.9)
	SetMouseSensitivity(0.5)
	SetMusicEnabled(true)

	LoadSettings()
	s := GetSettings()
	if s.MusicVolume != 0.75 || s.SFXVolume != 0.25 || s.MouseSensitivity != 0.2 {
		t.Errorf("round trip lost values: %+v", s)
	}
	if s.MusicEnabled {
		t.Errorf("music enabled flag not restored")
	}
	if !s.SFXEnabled {
		t.Errorf("sfx enabled flag flipped")
	}
}

func TestLoadMissingFileKeepsCurrent(t *testing.T) {
	chdirTemp(t)

	SetMusicVolume(0.6)
	LoadSettings()
	if got := GetSettings().MusicVolume; got != 0.6 {
		t.Errorf("missing file overwrote settings: %v", got)
	}
}

func TestLoadClampsOutOfRangeValues(t *testing.T) {
	chdirTemp(t)

	raw := "music_volume: 3.0\nsfx_volume: -1.0\nmouse_sensitivity: 9.0\nmusic_enabled: true\nsfx_enabled: true\n"
	if err := os.MkdirAll(filepath.Dir(SettingsPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(SettingsPath, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	LoadSettings()
	s := GetSettings()
	if s.MusicVolume != 1.0 {
		t.Errorf("music volume not clamped: %v", s.MusicVolume)
	}
	if s.SFXVolume != 0 {
		t.Errorf("sfx volume not clamped: %v", s.SFXVolume)
	}
	if s.MouseSensitivity != 1.0 {
		t.Errorf("sensitivity not clamped: %v", s.MouseSensitivity)
	}
}

func TestLoadGarbageKeepsCurrent(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(filepath.Dir(SettingsPath), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(SettingsPath, []byte("{not yaml"), 0644); err != nil {
		t.Fatal(err)
	}

	SetSFXVolume(0.8)
	LoadSettings()
	if got := GetSettings().SFXVolume; got != 0.8 {
		t.Errorf("garbage file overwrote settings: %v", got)
	}
}

func TestSettersClamp(t *testing.T) {
	chdirTemp(t)

	SetMusicVolume(2)
	if got := GetSettings().MusicVolume; got != 1 {
		t.Errorf("SetMusicVolume did not clamp high: %v", got)
	}
	SetSFXVolume(-0.5)
	if got := GetSettings().SFXVolume; got != 0 {
		t.Errorf("SetSFXVolume did not clamp low: %v", got)
	}
	SetMouseSensitivity(0)
	if got := GetSettings().MouseSensitivity; got != 0.01 {
		t.Errorf("SetMouseSensitivity did not clamp low: %v", got)
	}
}
