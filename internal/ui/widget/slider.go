package widget

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"boxpush/internal/graphics"
)

type Slider struct {
	BaseComponent
	Value    float32 // 0.0 to 1.0
	ID       string
	Label    string
	OnChange func(val float32)
}

func NewSlider(x, y, w, h float32, initialVal float32, id string, onChange func(val float32)) *Slider {
	return &Slider{
		BaseComponent: BaseComponent{X: x, Y: y, W: w, H: h},
		Value:         initialVal,
		ID:            id,
		OnChange:      onChange,
	}
}

func (s *Slider) Render(u *graphics.UI, window *glfw.Window) {
	// DrawSlider updates the value based on input and returns it
	newValue := u.DrawSlider(s.X, s.Y, s.W, s.H, s.Value, window, s.ID)

	if newValue != s.Value {
		s.Value = newValue
		if s.OnChange != nil {
			s.OnChange(s.Value)
		}
	}
}

func (s *Slider) HandleInput(window *glfw.Window, justPressedLeft bool) bool {
	// Logic is handled in DrawSlider
	return false
}
