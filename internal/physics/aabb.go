package physics

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
)

// AABB is an axis-aligned box stored as min/max corners.
type AABB struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// FromCenter builds an AABB around center with the given half-extents.
func FromCenter(center, half mgl32.Vec3) AABB {
	return AABB{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

// PlayerAABB is the player's collision volume at the given feet position.
// The player collides as a square column of radius config.PlayerRadius.
func PlayerAABB(pos mgl32.Vec3) AABB {
	return FromCenter(pos, mgl32.Vec3{config.PlayerRadius, config.PlayerEyeHeight, config.PlayerRadius})
}

// BoxAABB is the collision volume of a pushable box centered at pos.
func BoxAABB(pos mgl32.Vec3) AABB {
	return FromCenter(pos, mgl32.Vec3{config.BoxHalfExtent, config.BoxHalfExtent, config.BoxHalfExtent})
}

// WallAABB is the collision volume of a wall cell centered at pos.
func WallAABB(pos mgl32.Vec3) AABB {
	return FromCenter(pos, mgl32.Vec3{config.WallHalfExtent, config.WallHalfExtent, config.WallHalfExtent})
}

// Intersects reports whether a and b overlap on all three axes. Touching
// faces do not count as an overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.Min.X() < b.Max.X() && a.Max.X() > b.Min.X() &&
		a.Min.Y() < b.Max.Y() && a.Max.Y() > b.Min.Y() &&
		a.Min.Z() < b.Max.Z() && a.Max.Z() > b.Min.Z()
}

// IntersectsAny reports whether a overlaps any of the obstacles,
// short-circuiting on the first hit.
func IntersectsAny(a AABB, obstacles []AABB) bool {
	for _, o := range obstacles {
		if a.Intersects(o) {
			return true
		}
	}
	return false
}

// GridRound snaps a coordinate to the nearest grid cell center.
func GridRound(v float32) int {
	return int(math32.Round(v / config.GridSize))
}

// Chebyshev returns the max of the absolute XZ coordinate differences.
// Interaction range is grid-like, not circular.
func Chebyshev(a, b mgl32.Vec3) float32 {
	dx := math32.Abs(a.X() - b.X())
	dz := math32.Abs(a.Z() - b.Z())
	if dx > dz {
		return dx
	}
	return dz
}
