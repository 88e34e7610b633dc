package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
)

// UI draws screen-space rectangles, sliders and text over the 3D scene.
type UI struct {
	shader *Shader
	font   *FontRenderer
	vao    uint32
	vbo    uint32

	isDraggingSlider bool
	activeSliderID   string
}

// NewUI compiles the overlay shader and bakes the font atlas.
func NewUI() (*UI, error) {
	shader, err := NewShader(uiVertexSource, uiFragmentSource)
	if err != nil {
		return nil, err
	}

	atlas, err := BuildFontAtlas(48)
	if err != nil {
		return nil, err
	}
	font, err := NewFontRenderer(atlas)
	if err != nil {
		return nil, err
	}

	u := &UI{shader: shader, font: font}

	gl.GenVertexArrays(1, &u.vao)
	gl.GenBuffers(1, &u.vbo)
	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*2*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 2*4, 0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	return u, nil
}

// DrawFilledRect draws a screen-space rectangle (pixels, top-left origin) with RGBA color.
func (u *UI) DrawFilledRect(x, y, w, h float32, color mgl32.Vec3, alpha float32) {
	// Convert to NDC [-1,1]
	x0 := (x/float32(config.WindowWidth))*2 - 1
	y0 := 1 - (y/float32(config.WindowHeight))*2
	x1 := ((x+w)/float32(config.WindowWidth))*2 - 1
	y1 := 1 - ((y+h)/float32(config.WindowHeight))*2
	verts := []float32{
		x0, y0,
		x1, y0,
		x1, y1,
		x0, y0,
		x1, y1,
		x0, y1,
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	u.shader.Use()
	u.shader.SetVector4("uColor", color.X(), color.Y(), color.Z(), alpha)

	gl.BindVertexArray(u.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, u.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, gl.Ptr(verts))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)

	gl.Disable(gl.BLEND)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
}

// DrawText renders text at (x,y) in pixels, top-left origin, y at the baseline.
func (u *UI) DrawText(text string, x, y, scale float32, color mgl32.Vec3) {
	u.font.Render(text, x, y, scale, color)
}

// MeasureText returns the pixel width and height of text at the given scale.
func (u *UI) MeasureText(text string, scale float32) (float32, float32) {
	return u.font.Measure(text, scale)
}

// DrawSlider draws a horizontal slider with the given value in [0,1] and
// returns the new value. Drag capture keys on sliderID so only one slider is
// active at a time.
func (u *UI) DrawSlider(x, y, w, h float32, value float32, window *glfw.Window, sliderID string) float32 {
	trackColor := mgl32.Vec3{0.3, 0.3, 0.3}
	u.DrawFilledRect(x, y, w, h, trackColor, 0.8)

	thumbWidth := float32(20)

	if window != nil {
		cx, cy := window.GetCursorPos()
		mouseX, mouseY := float32(cx), float32(cy)
		leftDown := window.GetMouseButton(glfw.MouseButtonLeft) == glfw.Press

		inside := mouseY >= y && mouseY <= y+h && mouseX >= x && mouseX <= x+w

		if u.isDraggingSlider && u.activeSliderID == sliderID {
			if leftDown {
				value = clampRatio((mouseX - x) / w)
			} else {
				u.isDraggingSlider = false
				u.activeSliderID = ""
			}
		} else if !u.isDraggingSlider && leftDown && inside {
			u.isDraggingSlider = true
			u.activeSliderID = sliderID
			value = clampRatio((mouseX - x) / w)
		}
	}

	thumbX := x + (w-thumbWidth)*value
	thumbColor := mgl32.Vec3{0.6, 0.6, 0.6}
	u.DrawFilledRect(thumbX, y, thumbWidth, h, thumbColor, 0.9)

	return value
}

func clampRatio(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Dispose cleans up OpenGL resources
func (u *UI) Dispose() {
	if u.vao != 0 {
		gl.DeleteVertexArrays(1, &u.vao)
	}
	if u.vbo != 0 {
		gl.DeleteBuffers(1, &u.vbo)
	}
}
