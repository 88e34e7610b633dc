package game

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"boxpush/internal/audio"
	"boxpush/internal/config"
	"boxpush/internal/graphics"
	"boxpush/internal/input"
	"boxpush/internal/logger"
	"boxpush/internal/profiling"
	"boxpush/internal/ui/menu"
)

type AppState int

const (
	StateMainMenu AppState = iota
	StateSettings
	StatePlaying
)

// App drives the screen state machine: main menu, settings and the running
// session. It owns the window-lifetime resources (renderer, overlay, menus);
// the session owns only the level and the player.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager

	state AppState

	renderer *graphics.Renderer
	ui       *graphics.UI

	mainMenu     *menu.MainMenu
	settingsMenu *menu.SettingsMenu

	session *Session

	audio *audio.Manager
	log   *logger.Logger

	fpsLimiter *FPSLimiter
	lastTime   float64
}

// NewApp builds the GL-side resources and wires the window callbacks. The GL
// context must be current on the calling thread.
func NewApp(window *glfw.Window, im *input.InputManager, am *audio.Manager, log *logger.Logger) (*App, error) {
	r, err := graphics.NewRenderer()
	if err != nil {
		return nil, err
	}
	u, err := graphics.NewUI()
	if err != nil {
		return nil, err
	}

	a := &App{
		window:       window,
		inputManager: im,
		state:        StateMainMenu,
		renderer:     r,
		ui:           u,
		mainMenu:     menu.NewMainMenu(),
		settingsMenu: menu.NewSettingsMenu(),
		audio:        am,
		log:          log,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     glfw.GetTime(),
	}

	im.SetKeyCallback(window)
	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		im.HandleMouseButtonEvent(button, action)
	})
	window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		if a.state == StatePlaying && a.session != nil {
			a.session.Player.HandleMouseMovement(w, xpos, ypos)
		}
	})

	return a, nil
}

func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()

	now := glfw.GetTime()
	dt := now - a.lastTime
	a.lastTime = now

	glfw.PollEvents()
	a.handleGlobalKeys()

	switch a.state {
	case StateMainMenu:
		a.updateMainMenu()
		a.renderer.Clear()
		a.mainMenu.Render(a.ui, a.window)
	case StateSettings:
		a.updateSettings()
		a.renderer.Clear()
		a.settingsMenu.Render(a.ui, a.window)
	case StatePlaying:
		if a.session != nil {
			if a.session.Update(now, dt, a.inputManager) == menu.ActionBack {
				a.endSession()
			} else {
				a.session.Render(a.renderer, a.ui, now)
			}
		}
	}

	a.window.SwapBuffers()

	if d := time.Since(startTick); d > 16*time.Millisecond && a.log != nil {
		a.log.Warnf("slow frame: %v, top tasks: %s", d, profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait(a.state != StatePlaying)
}

// handleGlobalKeys services the toggles that work on every screen.
func (a *App) handleGlobalKeys() {
	im := a.inputManager

	if im.JustPressed(input.ActionToggleMusic) {
		on := !config.GetSettings().MusicEnabled
		config.SetMusicEnabled(on)
		if on && a.state == StatePlaying && a.session != nil {
			a.audio.StartMusic(a.session.Level.Index())
		} else {
			a.audio.ApplyVolumes()
		}
	}
	if im.JustPressed(input.ActionToggleSFX) {
		config.SetSFXEnabled(!config.GetSettings().SFXEnabled)
	}
}

func (a *App) updateMainMenu() {
	action := a.mainMenu.Update(a.window, a.inputManager.JustPressed(input.ActionMouseLeft))
	if action != menu.ActionNone {
		a.audio.Play(audio.SoundMenu)
	}

	switch action {
	case menu.ActionStartLevel:
		a.startSession(a.mainMenu.SelectedLevel())
	case menu.ActionOpenSettings:
		a.state = StateSettings
	case menu.ActionQuitGame:
		a.window.SetShouldClose(true)
	}
}

func (a *App) updateSettings() {
	action := a.settingsMenu.Update(a.window, a.inputManager.JustPressed(input.ActionMouseLeft))

	if a.settingsMenu.ConsumeChanged() {
		a.audio.ApplyVolumes()
	}

	if action == menu.ActionBack || a.inputManager.JustPressed(input.ActionPause) {
		a.audio.Play(audio.SoundMenu)
		if err := config.SaveSettings(); err != nil && a.log != nil {
			a.log.Errorf("save settings: %v", err)
		}
		a.state = StateMainMenu
	}
}

func (a *App) startSession(index int) {
	s, err := NewSession(index, a.audio, a.log)
	if err != nil {
		// Malformed level data keeps the player on the menu.
		if a.log != nil {
			a.log.Errorf("%v", err)
		}
		return
	}

	a.session = s
	a.state = StatePlaying
	a.window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

func (a *App) endSession() {
	a.session = nil
	a.state = StateMainMenu
	a.audio.StopMusic()

	a.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	w, h := a.window.GetSize()
	a.window.SetCursorPos(float64(w)/2, float64(h)/2)
}

// Dispose releases the GL resources owned by the App.
func (a *App) Dispose() {
	a.renderer.Dispose()
	a.ui.Dispose()
}
