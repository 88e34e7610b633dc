package physics

import "github.com/chewxy/math32"

// CardinalFromYaw snaps a camera yaw (degrees) to the nearest of the four
// grid directions and returns it as a unit cell offset. Yaw 0 faces -Z
// (north); 90 faces +X (east). Push direction always comes from the camera
// yaw, never from movement history, so the pushed cell matches what the
// player is looking at.
func CardinalFromYaw(yawDegrees float32) (dx, dz int) {
	yaw := yawDegrees * math32.Pi / 180
	forwardX := math32.Sin(yaw)
	forwardZ := -math32.Cos(yaw)

	if math32.Abs(forwardX) > math32.Abs(forwardZ) {
		if forwardX > 0 {
			return 1, 0
		}
		return -1, 0
	}
	if forwardZ > 0 {
		return 0, 1
	}
	return 0, -1
}
