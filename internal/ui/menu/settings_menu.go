package menu

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/graphics"
	"boxpush/internal/ui/widget"
)

// SettingsMenu edits the persisted options. Every change is applied to the
// global settings immediately; the caller saves them to disk when the menu
// closes and tells the audio manager to pick up new volumes.
type SettingsMenu struct {
	musicSlider *widget.Slider
	sfxSlider   *widget.Slider
	sensSlider  *widget.Slider
	musicToggle *widget.Toggle
	sfxToggle   *widget.Toggle
	backBtn     *widget.Button

	back    bool
	changed bool
}

func NewSettingsMenu() *SettingsMenu {
	sm := &SettingsMenu{}
	s := config.GetSettings()

	sm.musicSlider = widget.NewSlider(0, 0, 0, 0, s.MusicVolume, "settings.music", func(v float32) {
		config.SetMusicVolume(v)
		sm.changed = true
	})
	sm.sfxSlider = widget.NewSlider(0, 0, 0, 0, s.SFXVolume, "settings.sfx", func(v float32) {
		config.SetSFXVolume(v)
		sm.changed = true
	})
	// The slider spans a sane sensitivity range, not [0,1] directly.
	sm.sensSlider = widget.NewSlider(0, 0, 0, 0, s.MouseSensitivity/0.5, "settings.sensitivity", func(v float32) {
		config.SetMouseSensitivity(v * 0.5)
		sm.changed = true
	})
	sm.musicToggle = widget.NewToggle("Music", 0, 0, 0, 0, s.MusicEnabled, func(on bool) {
		config.SetMusicEnabled(on)
		sm.changed = true
	})
	sm.sfxToggle = widget.NewToggle("Sound Effects", 0, 0, 0, 0, s.SFXEnabled, func(on bool) {
		config.SetSFXEnabled(on)
		sm.changed = true
	})
	sm.backBtn = widget.NewButton("Back", 0, 0, 0, 0, func() {
		sm.back = true
	})
	return sm
}

// ConsumeChanged reports whether any option changed since the last call.
func (m *SettingsMenu) ConsumeChanged() bool {
	c := m.changed
	m.changed = false
	return c
}

func (m *SettingsMenu) Update(window *glfw.Window, justPressedLeft bool) Action {
	m.back = false

	m.musicToggle.HandleInput(window, justPressedLeft)
	m.sfxToggle.HandleInput(window, justPressedLeft)
	m.backBtn.HandleInput(window, justPressedLeft)

	if m.back {
		return ActionBack
	}
	return ActionNone
}

func (m *SettingsMenu) Render(u *graphics.UI, window *glfw.Window) {
	width, height := window.GetSize()
	fWinW, fWinH := float32(width), float32(height)
	centerX := fWinW / 2

	u.DrawFilledRect(0, 0, fWinW, fWinH, mgl32.Vec3{0.08, 0.09, 0.12}, 1.0)

	title := "Settings"
	tw, _ := u.MeasureText(title, 0.9)
	u.DrawText(title, centerX-tw/2, 110, 0.9, mgl32.Vec3{1, 1, 1})

	rowW := float32(380)
	rowH := float32(28)
	rowX := centerX - rowW/2
	labelColor := mgl32.Vec3{0.85, 0.85, 0.85}
	s := config.GetSettings()

	y := float32(190)
	u.DrawText(fmt.Sprintf("Music Volume: %d%%", int(s.MusicVolume*100)), rowX, y-10, 0.4, labelColor)
	m.musicSlider.SetPosition(rowX, y)
	m.musicSlider.SetSize(rowW, rowH)
	m.musicSlider.Render(u, window)

	y += 80
	u.DrawText(fmt.Sprintf("Effects Volume: %d%%", int(s.SFXVolume*100)), rowX, y-10, 0.4, labelColor)
	m.sfxSlider.SetPosition(rowX, y)
	m.sfxSlider.SetSize(rowW, rowH)
	m.sfxSlider.Render(u, window)

	y += 80
	u.DrawText(fmt.Sprintf("Mouse Sensitivity: %.2f", s.MouseSensitivity), rowX, y-10, 0.4, labelColor)
	m.sensSlider.SetPosition(rowX, y)
	m.sensSlider.SetSize(rowW, rowH)
	m.sensSlider.Render(u, window)

	y += 80
	toggleW := float32(110)
	u.DrawText("Music", rowX, y+24, 0.4, labelColor)
	m.musicToggle.SetPosition(rowX+rowW-toggleW, y)
	m.musicToggle.SetSize(toggleW, 36)
	m.musicToggle.Render(u, window)

	y += 60
	u.DrawText("Sound Effects", rowX, y+24, 0.4, labelColor)
	m.sfxToggle.SetPosition(rowX+rowW-toggleW, y)
	m.sfxToggle.SetSize(toggleW, 36)
	m.sfxToggle.Render(u, window)

	y += 80
	m.backBtn.SetPosition(centerX-90, y)
	m.backBtn.SetSize(180, 52)
	m.backBtn.Render(u, window)
}
