package physics_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/physics"
)

var playerHalf = mgl32.Vec3{config.PlayerRadius, config.PlayerEyeHeight, config.PlayerRadius}

func wallRow(z float32, fromX, toX int) []physics.AABB {
	var out []physics.AABB
	for x := fromX; x <= toX; x++ {
		out = append(out, physics.WallAABB(mgl32.Vec3{float32(x), 0, z}))
	}
	return out
}

func TestResolveFullAcceptance(t *testing.T) {
	got := physics.Resolve(mgl32.Vec3{0, 0, 0}, playerHalf, mgl32.Vec3{0.3, 0, -0.2}, nil, config.WorldBoundaryLimit)
	if got.X() != 0.3 || got.Z() != -0.2 {
		t.Errorf("open floor should accept the full displacement, got %v", got)
	}
	if got.Y() != 0 {
		t.Errorf("Y must never be displaced, got %f", got.Y())
	}
}

func TestResolveSlidesAlongWall(t *testing.T) {
	// Wall row across +Z; a diagonal move toward it keeps full X progress
	// while Z is clipped at the wall face.
	obstacles := wallRow(1, -3, 3)

	got := physics.Resolve(mgl32.Vec3{0, 0, 0}, playerHalf, mgl32.Vec3{0.5, 0, 0.5}, obstacles, config.WorldBoundaryLimit)

	if got.X() != 0.5 {
		t.Errorf("unobstructed X axis should keep full displacement, got %f", got.X())
	}
	if got.Z() >= 0.5 {
		t.Errorf("Z toward the wall must be reduced, got %f", got.Z())
	}
	after := physics.FromCenter(mgl32.Vec3{got.X(), 0, got.Z()}, playerHalf)
	if physics.IntersectsAny(after, obstacles) {
		t.Errorf("resolved position intersects the wall")
	}
}

func TestResolveCornerBothAxesBlocked(t *testing.T) {
	// Pressed into a corner: already at contact distance on both axes, so the
	// net displacement for the step is zero.
	contact := float32(config.WallHalfExtent - config.PlayerRadius - 0.001)
	pos := mgl32.Vec3{contact, 0, contact}
	obstacles := []physics.AABB{
		physics.WallAABB(mgl32.Vec3{1, 0, 0}),
		physics.WallAABB(mgl32.Vec3{0, 0, 1}),
	}

	got := physics.Resolve(pos, playerHalf, mgl32.Vec3{0.5, 0, 0.5}, obstacles, config.WorldBoundaryLimit)
	if got.X() != 0 || got.Z() != 0 {
		t.Errorf("expected zero displacement in corner, got %v", got)
	}
}

func TestResolveNeverIncreasesSpeed(t *testing.T) {
	obstacles := append(wallRow(2, -4, 4), wallRow(-2, -4, 4)...)
	desires := []mgl32.Vec3{
		{1, 0, 1}, {-1, 0, 1}, {0.2, 0, -3}, {-2.5, 0, -0.1}, {0, 0, 0.7},
	}
	for _, d := range desires {
		got := physics.Resolve(mgl32.Vec3{0, 0, 0}, playerHalf, d, obstacles, config.WorldBoundaryLimit)
		if math32.Abs(got.X()) > math32.Abs(d.X())+1e-5 {
			t.Errorf("desired %v: accepted X %f exceeds request", d, got.X())
		}
		if math32.Abs(got.Z()) > math32.Abs(d.Z())+1e-5 {
			t.Errorf("desired %v: accepted Z %f exceeds request", d, got.Z())
		}
		if d.X() != 0 && got.X()/d.X() < 0 {
			t.Errorf("desired %v: accepted X %f reverses direction", d, got.X())
		}
		if d.Z() != 0 && got.Z()/d.Z() < 0 {
			t.Errorf("desired %v: accepted Z %f reverses direction", d, got.Z())
		}
	}
}

func TestResolveBoundaryContainment(t *testing.T) {
	boundary := float32(5)
	cases := []struct {
		pos     mgl32.Vec3
		desired mgl32.Vec3
	}{
		{mgl32.Vec3{4.8, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{mgl32.Vec3{-4.8, 0, 0}, mgl32.Vec3{-1, 0, 0}},
		{mgl32.Vec3{0, 0, 4.9}, mgl32.Vec3{0.5, 0, 2}},
	}
	for _, c := range cases {
		got := physics.Resolve(c.pos, playerHalf, c.desired, nil, boundary)
		end := c.pos.Add(got)
		if math32.Abs(end.X()) > boundary+1e-4 || math32.Abs(end.Z()) > boundary+1e-4 {
			t.Errorf("pos %v desired %v: end %v escapes boundary", c.pos, c.desired, end)
		}
	}
}

func TestResolveWallApproachIsClippedNotZeroed(t *testing.T) {
	// Moving +X by 1.0 into a wall spanning x in [4.5, 5.5]: the accepted X
	// must reach contact with the wall face, strictly between 0 and the
	// request, and the resulting volume must not intersect the wall.
	wall := physics.WallAABB(mgl32.Vec3{5, 0, 0})
	pos := mgl32.Vec3{4.0, 0, 0}

	got := physics.Resolve(pos, playerHalf, mgl32.Vec3{1, 0, 0}, []physics.AABB{wall}, config.WorldBoundaryLimit)

	if got.X() <= 0 || got.X() >= 1 {
		t.Fatalf("expected clipped X in (0, 1), got %f", got.X())
	}
	after := physics.FromCenter(pos.Add(got), playerHalf)
	if after.Intersects(wall) {
		t.Errorf("clipped position intersects the wall")
	}
	// Contact face is at 4.5; the mover's near face must land just short of it.
	if after.Max.X() > 4.5 || after.Max.X() < 4.49 {
		t.Errorf("expected contact at the wall face, mover max X = %f", after.Max.X())
	}
}

func TestResolveSteppedPreventsTunneling(t *testing.T) {
	// A displacement long enough to jump clear over a one-cell wall in a
	// single test would tunnel; sub-stepping must stop at the wall.
	wall := physics.WallAABB(mgl32.Vec3{2, 0, 0})
	pos := mgl32.Vec3{0, 0, 0}
	desired := mgl32.Vec3{4, 0, 0}

	got := physics.ResolveStepped(pos, playerHalf, desired, []physics.AABB{wall}, config.WorldBoundaryLimit)
	end := pos.Add(got)

	if end.X() >= 1.5 {
		t.Fatalf("mover tunneled through the wall, ended at x=%f", end.X())
	}
	if physics.IntersectsAny(physics.FromCenter(end, playerHalf), []physics.AABB{wall}) {
		t.Errorf("stepped position intersects the wall")
	}
}

func TestCardinalFromYaw(t *testing.T) {
	cases := []struct {
		yaw    float32
		dx, dz int
	}{
		{0, 0, -1},   // north
		{90, 1, 0},   // east
		{180, 0, 1},  // south
		{270, -1, 0}, // west
		{-90, -1, 0},
		{360, 0, -1},
		{100, 1, 0}, // snaps to nearest axis
		{30, 0, -1},
	}
	for _, c := range cases {
		dx, dz := physics.CardinalFromYaw(c.yaw)
		if dx != c.dx || dz != c.dz {
			t.Errorf("yaw %f: got (%d,%d), want (%d,%d)", c.yaw, dx, dz, c.dx, c.dz)
		}
	}
}

func BenchmarkResolve(b *testing.B) {
	obstacles := append(wallRow(5, -5, 5), wallRow(-5, -5, 5)...)
	for x := -5; x <= 5; x++ {
		obstacles = append(obstacles,
			physics.WallAABB(mgl32.Vec3{-5, 0, float32(x)}),
			physics.WallAABB(mgl32.Vec3{5, 0, float32(x)}))
	}
	pos := mgl32.Vec3{0, 0, 0}
	desired := mgl32.Vec3{0.04, 0, -0.03}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = physics.Resolve(pos, playerHalf, desired, obstacles, config.WorldBoundaryLimit)
	}
}
