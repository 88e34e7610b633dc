package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/input"
)

// MoveIntent computes the displacement the player wants this frame from the
// held movement actions and the camera yaw. The result is a desire only; the
// session runs it through the collision resolver before committing it.
// Delta time is clamped so a stalled frame cannot produce a huge jump.
func (p *Player) MoveIntent(im *input.InputManager, dt float64) mgl32.Vec3 {
	if dt > config.MaxFrameTime {
		dt = config.MaxFrameTime
	}

	forward := float32(0)
	strafe := float32(0)
	if im.IsActive(input.ActionMoveForward) {
		forward += 1
	}
	if im.IsActive(input.ActionMoveBackward) {
		forward -= 1
	}
	if im.IsActive(input.ActionMoveLeft) {
		strafe -= 1
	}
	if im.IsActive(input.ActionMoveRight) {
		strafe += 1
	}
	if forward == 0 && strafe == 0 {
		return mgl32.Vec3{}
	}

	yawRad := float64(mgl32.DegToRad(float32(p.CamYaw)))
	frontX := float32(math.Sin(yawRad))
	frontZ := float32(-math.Cos(yawRad))
	rightX := float32(math.Cos(yawRad))
	rightZ := float32(math.Sin(yawRad))

	dir := mgl32.Vec3{
		forward*frontX + strafe*rightX,
		0,
		forward*frontZ + strafe*rightZ,
	}
	// Diagonal input must not be faster than straight input.
	dir = dir.Normalize()

	speed := float32(config.MoveSpeed)
	if im.IsActive(input.ActionRun) {
		speed *= config.RunMultiplier
	}
	return dir.Mul(speed * float32(dt))
}

// ConsumeFootstep reports whether a footstep sound is due. moved is the
// distance actually covered this frame after collision resolution; standing
// against a wall does not produce steps.
func (p *Player) ConsumeFootstep(moved float32, now float64) bool {
	if moved < 1e-4 {
		return false
	}
	if now-p.lastStepTime < config.StepInterval {
		return false
	}
	p.lastStepTime = now
	return true
}
