package menu

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/graphics"
	"boxpush/internal/level"
	"boxpush/internal/ui/widget"
)

// MainMenu is the level select screen.
type MainMenu struct {
	levelButtons []*widget.Button
	settingsBtn  *widget.Button
	quitBtn      *widget.Button

	selectedLevel int
	startLevel    bool
	openSettings  bool
	quit          bool
}

func NewMainMenu() *MainMenu {
	mm := &MainMenu{selectedLevel: -1}

	for i := 0; i < level.Count(); i++ {
		d, _ := level.Get(i)
		index := i
		btn := widget.NewButton(fmt.Sprintf("%d. %s", i+1, d.Name), 0, 0, 0, 0, func() {
			mm.selectedLevel = index
			mm.startLevel = true
		})
		btn.Subtitle = fmt.Sprintf("%s - %d boxes", d.Difficulty, len(d.Boxes))
		btn.TextColor = mgl32.Vec3{0.4, 0.9, 0.5}
		mm.levelButtons = append(mm.levelButtons, btn)
	}

	mm.settingsBtn = widget.NewButton("Settings", 0, 0, 0, 0, func() {
		mm.openSettings = true
	})
	mm.quitBtn = widget.NewButton("Quit", 0, 0, 0, 0, func() {
		mm.quit = true
	})
	mm.quitBtn.TextColor = mgl32.Vec3{1, 0.5, 0.5}

	return mm
}

// SelectedLevel returns the index chosen by the last ActionStartLevel.
func (m *MainMenu) SelectedLevel() int { return m.selectedLevel }

func (m *MainMenu) Update(window *glfw.Window, justPressedLeft bool) Action {
	m.startLevel = false
	m.openSettings = false
	m.quit = false

	for _, btn := range m.levelButtons {
		btn.HandleInput(window, justPressedLeft)
	}
	m.settingsBtn.HandleInput(window, justPressedLeft)
	m.quitBtn.HandleInput(window, justPressedLeft)

	switch {
	case m.startLevel:
		return ActionStartLevel
	case m.openSettings:
		return ActionOpenSettings
	case m.quit:
		return ActionQuitGame
	}
	return ActionNone
}

func (m *MainMenu) Render(u *graphics.UI, window *glfw.Window) {
	width, height := window.GetSize()
	fWinW, fWinH := float32(width), float32(height)
	centerX := fWinW / 2

	u.DrawFilledRect(0, 0, fWinW, fWinH, mgl32.Vec3{0.08, 0.09, 0.12}, 1.0)

	title := "BOXPUSH 3D"
	titleScale := float32(1.2)
	tw, _ := u.MeasureText(title, titleScale)
	u.DrawText(title, centerX-tw/2, 90, titleScale, mgl32.Vec3{0.95, 0.8, 0.2})

	subTitle := "Push every box onto a gold target"
	subScale := float32(0.45)
	sw, _ := u.MeasureText(subTitle, subScale)
	u.DrawText(subTitle, centerX-sw/2, 130, subScale, mgl32.Vec3{0.8, 0.8, 0.8})

	btnW := float32(420)
	btnH := float32(64)
	btnX := centerX - btnW/2
	y := float32(170)

	for _, btn := range m.levelButtons {
		btn.SetPosition(btnX, y)
		btn.SetSize(btnW, btnH)
		btn.Render(u, window)
		y += btnH + 12
	}

	smallW := (btnW - 12) / 2
	m.settingsBtn.SetPosition(btnX, y)
	m.settingsBtn.SetSize(smallW, 52)
	m.settingsBtn.Render(u, window)

	m.quitBtn.SetPosition(btnX+smallW+12, y)
	m.quitBtn.SetSize(smallW, 52)
	m.quitBtn.Render(u, window)
}
