package player

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/physics"
)

// Player holds the first-person camera and its position on the floor. The
// player never leaves the ground plane; Position.Y stays at the spawn height
// and the eye sits EyeHeight above it.
type Player struct {
	Position mgl32.Vec3

	CamYaw   float64 // degrees, 0 looks toward -Z
	CamPitch float64 // degrees, clamped to avoid gimbal flip

	LastMouseX float64
	LastMouseY float64
	FirstMouse bool

	// Footstep timing, driven by the session loop.
	lastStepTime float64
}

func New(spawn mgl32.Vec3) *Player {
	return &Player{
		Position:   spawn,
		CamYaw:     0,
		CamPitch:   0,
		FirstMouse: true,
	}
}

// HandleMouseMovement turns raw cursor motion into camera rotation. The first
// event after a cursor grab only seeds the reference point, otherwise the view
// would jump by the full cursor position.
func (p *Player) HandleMouseMovement(w *glfw.Window, xpos, ypos float64) {
	if p.FirstMouse {
		p.LastMouseX = xpos
		p.LastMouseY = ypos
		p.FirstMouse = false
		return
	}

	xoffset := xpos - p.LastMouseX
	yoffset := p.LastMouseY - ypos
	p.LastMouseX = xpos
	p.LastMouseY = ypos

	sensitivity := float64(config.GetSettings().MouseSensitivity)
	xoffset *= sensitivity
	yoffset *= sensitivity

	p.CamYaw += xoffset
	p.CamPitch += yoffset

	// Constrain pitch
	if p.CamPitch > 89.0 {
		p.CamPitch = 89.0
	}
	if p.CamPitch < -89.0 {
		p.CamPitch = -89.0
	}
}

// SetPosition moves the player without touching the camera. Used for spawn,
// reset and the emergency teleport.
func (p *Player) SetPosition(pos mgl32.Vec3) {
	p.Position = pos
}

// ResetCamera restores the default view direction and drops the mouse
// reference point so the next cursor event reseeds it.
func (p *Player) ResetCamera() {
	p.CamYaw = 0
	p.CamPitch = 0
	p.FirstMouse = true
}

// Facing returns the cardinal grid direction the camera yaw points at. This
// is the direction a push would move a box.
func (p *Player) Facing() (dx, dz int) {
	return physics.CardinalFromYaw(float32(p.CamYaw))
}

// GetFrontVector returns the normalized view direction including pitch.
func (p *Player) GetFrontVector() mgl32.Vec3 {
	y := float64(mgl32.DegToRad(float32(p.CamYaw)))
	pt := float64(mgl32.DegToRad(float32(p.CamPitch)))
	fx := float32(math.Sin(y) * math.Cos(pt))
	fy := float32(math.Sin(pt))
	fz := float32(-math.Cos(y) * math.Cos(pt))
	return mgl32.Vec3{fx, fy, fz}.Normalize()
}

// GetEyePosition returns the camera position, EyeHeight above the feet.
func (p *Player) GetEyePosition() mgl32.Vec3 {
	return p.Position.Add(mgl32.Vec3{0, config.PlayerEyeHeight, 0})
}

// GetViewMatrix builds the look-at matrix for the current camera state.
func (p *Player) GetViewMatrix() mgl32.Mat4 {
	eyePos := p.GetEyePosition()
	target := eyePos.Add(p.GetFrontVector())
	return mgl32.LookAtV(eyePos, target, mgl32.Vec3{0, 1, 0})
}
