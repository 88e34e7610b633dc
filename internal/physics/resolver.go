package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
)

// contactSkin keeps a resolved position strictly out of contact so the next
// frame's intersection test does not flicker on the shared face.
const contactSkin = 0.001

const (
	axisX = 0
	axisZ = 2
)

// Resolve clips a desired displacement against the obstacle set and the world
// boundary. The X and Z components are resolved independently: a blocked axis
// first retries at the sliding friction factor, then falls back to the exact
// distance to contact, then to zero. Y is never displaced; the mover stays at
// a fixed height. The accepted magnitude on an axis never exceeds the request.
func Resolve(pos, half, desired mgl32.Vec3, obstacles []AABB, boundary float32) mgl32.Vec3 {
	return mgl32.Vec3{
		resolveAxis(pos, half, desired.X(), axisX, obstacles, boundary),
		0,
		resolveAxis(pos, half, desired.Z(), axisZ, obstacles, boundary),
	}
}

// ResolveStepped resolves a displacement in sub-steps so that no single step
// moves further than config.MaxStepDisplacement on either axis. Long frames
// are handled here instead of letting a large dt tunnel through a wall.
func ResolveStepped(pos, half, desired mgl32.Vec3, obstacles []AABB, boundary float32) mgl32.Vec3 {
	longest := math32.Max(math32.Abs(desired.X()), math32.Abs(desired.Z()))
	steps := 1
	if longest > config.MaxStepDisplacement {
		steps = int(math32.Ceil(longest / config.MaxStepDisplacement))
	}

	step := desired.Mul(1 / float32(steps))
	cur := pos
	for i := 0; i < steps; i++ {
		cur = cur.Add(Resolve(cur, half, step, obstacles, boundary))
	}
	return cur.Sub(pos)
}

func resolveAxis(pos, half mgl32.Vec3, d float32, axis int, obstacles []AABB, boundary float32) float32 {
	if d == 0 {
		return 0
	}
	if axisFree(pos, half, d, axis, obstacles, boundary) {
		return d
	}
	reduced := d * config.SlidingFriction
	if axisFree(pos, half, reduced, axis, obstacles, boundary) {
		return reduced
	}
	clipped := clipToContact(pos, half, d, axis, obstacles, boundary)
	if math32.Abs(clipped) <= contactSkin {
		return 0
	}
	return clipped
}

func axisFree(pos, half mgl32.Vec3, d float32, axis int, obstacles []AABB, boundary float32) bool {
	cand := pos
	cand[axis] += d
	if math32.Abs(cand.X()) > boundary || math32.Abs(cand.Z()) > boundary {
		return false
	}
	return !IntersectsAny(FromCenter(cand, half), obstacles)
}

// clipToContact computes the furthest displacement along one axis before the
// mover touches an obstacle face or the world boundary.
func clipToContact(pos, half mgl32.Vec3, d float32, axis int, obstacles []AABB, boundary float32) float32 {
	moving := FromCenter(pos, half)
	allowed := d

	if d > 0 {
		if pos[axis]+allowed > boundary {
			allowed = boundary - pos[axis]
		}
	} else {
		if pos[axis]+allowed < -boundary {
			allowed = -boundary - pos[axis]
		}
	}

	for _, o := range obstacles {
		if !overlapsOtherAxes(moving, o, axis) {
			continue
		}
		if d > 0 {
			if o.Min[axis] < moving.Max[axis] {
				continue // not ahead of the mover
			}
			if gap := o.Min[axis] - moving.Max[axis] - contactSkin; gap < allowed {
				allowed = gap
			}
		} else {
			if o.Max[axis] > moving.Min[axis] {
				continue
			}
			if gap := o.Max[axis] - moving.Min[axis] + contactSkin; gap > allowed {
				allowed = gap
			}
		}
	}

	// Never reverse the requested direction.
	if (d > 0 && allowed < 0) || (d < 0 && allowed > 0) {
		return 0
	}
	return allowed
}

// overlapsOtherAxes reports whether the mover and obstacle overlap on the two
// axes the mover is not being displaced along.
func overlapsOtherAxes(moving, o AABB, axis int) bool {
	for i := 0; i < 3; i++ {
		if i == axis {
			continue
		}
		if moving.Min[i] >= o.Max[i] || moving.Max[i] <= o.Min[i] {
			return false
		}
	}
	return true
}
