package level

import (
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/physics"
)

// BoxStatus is the render/feedback classification of a pushable box. It is
// always recomputed from current positions; nothing caches it between frames.
// A cached status went stale in an earlier build of this game and made box
// colors flicker, so the classifier stays pure.
type BoxStatus int

const (
	// BoxNormal: too far from the player to interact with.
	BoxNormal BoxStatus = iota
	// BoxPushable: in reach and its destination cell is free.
	BoxPushable
	// BoxBlocked: in reach but the destination cell is occupied.
	BoxBlocked
	// BoxOnTarget: resting on a target, regardless of the player.
	BoxOnTarget
)

func (s BoxStatus) String() string {
	switch s {
	case BoxNormal:
		return "normal"
	case BoxPushable:
		return "pushable"
	case BoxBlocked:
		return "blocked"
	case BoxOnTarget:
		return "on_target"
	default:
		return "unknown"
	}
}

// ClassifyBox classifies the box at index against the player's position and
// cardinal push direction. OnTarget wins over everything else. Positions are
// compared componentwise against a tolerance, never for float equality.
func (l *Level) ClassifyBox(index int, playerPos mgl32.Vec3, dx, dz int) BoxStatus {
	box := l.boxes[index]
	if l.onTarget(box) {
		return BoxOnTarget
	}
	if physics.Chebyshev(playerPos, box) > config.InteractDistance {
		return BoxNormal
	}
	if l.destinationFree(index, dx, dz) {
		return BoxPushable
	}
	return BoxBlocked
}

// onTarget reports whether a box sits within the snap tolerance of any
// target cell.
func (l *Level) onTarget(box mgl32.Vec3) bool {
	for _, t := range l.targets {
		if physics.Chebyshev(box, t) <= config.SnapTolerance {
			return true
		}
	}
	return false
}

// destinationFree reports whether the cell one grid unit along (dx,dz) from
// the box at index is inside the boundary and free of walls and other boxes.
func (l *Level) destinationFree(index int, dx, dz int) bool {
	box := l.boxes[index]
	dest := mgl32.Vec3{
		box.X() + float32(dx)*config.GridSize,
		box.Y(),
		box.Z() + float32(dz)*config.GridSize,
	}
	if dest.X() > config.WorldBoundaryLimit || dest.X() < -config.WorldBoundaryLimit ||
		dest.Z() > config.WorldBoundaryLimit || dest.Z() < -config.WorldBoundaryLimit {
		return false
	}
	return !physics.IntersectsAny(physics.BoxAABB(dest), l.boxObstacles(index))
}
