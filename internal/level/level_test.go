package level

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/physics"
)

func TestValidateRejectsNoBoxes(t *testing.T) {
	d := Data{
		Name:    "empty",
		Targets: []mgl32.Vec3{{1, 0, 0}},
	}
	if err := validate(0, d); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for a level without boxes, got %v", err)
	}
}

func TestValidateRejectsCountMismatch(t *testing.T) {
	d := Data{
		Name:    "mismatch",
		Boxes:   []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}},
		Targets: []mgl32.Vec3{{3, 0, 0}},
	}
	if err := validate(0, d); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for box/target count mismatch, got %v", err)
	}
}

func TestValidateRejectsBoxInsideWall(t *testing.T) {
	d := Data{
		Name:    "overlap",
		Walls:   []mgl32.Vec3{{1, 0, 0}},
		Boxes:   []mgl32.Vec3{{1, 0, 0}},
		Targets: []mgl32.Vec3{{3, 0, 0}},
	}
	if err := validate(0, d); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for box inside wall, got %v", err)
	}
}

func TestValidateRejectsTargetInsideWall(t *testing.T) {
	d := Data{
		Name:    "overlap",
		Walls:   []mgl32.Vec3{{3, 0, 0}},
		Boxes:   []mgl32.Vec3{{1, 0, 0}},
		Targets: []mgl32.Vec3{{3, 0, 0}},
	}
	if err := validate(0, d); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for target inside wall, got %v", err)
	}
}

func TestValidateRejectsNonFiniteCoordinate(t *testing.T) {
	d := Data{
		Name:    "nan",
		Boxes:   []mgl32.Vec3{{math32.NaN(), 0, 0}},
		Targets: []mgl32.Vec3{{3, 0, 0}},
	}
	if err := validate(0, d); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for NaN coordinate, got %v", err)
	}
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	d := Data{
		Name:    "far",
		Boxes:   []mgl32.Vec3{{500, 0, 0}},
		Targets: []mgl32.Vec3{{3, 0, 0}},
	}
	if err := validate(0, d); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for coordinate outside world boundary, got %v", err)
	}
}

func TestBuiltinLevelsAreValid(t *testing.T) {
	for i := 0; i < Count(); i++ {
		l, err := Load(i, nil)
		if err != nil {
			t.Fatalf("built-in level %d failed to load: %v", i, err)
		}
		if l.State() != StateActive {
			t.Errorf("level %d: expected StateActive after load, got %v", i, l.State())
		}
		if physics.IntersectsAny(physics.PlayerAABB(l.Spawn()), l.wallAABBs) {
			t.Errorf("level %d: spawn intersects a wall", i)
		}
	}
}

func TestLoadRejectsBadIndex(t *testing.T) {
	if _, err := Load(-1, nil); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel for index -1, got %v", err)
	}
	if _, err := Load(Count(), nil); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel for index %d, got %v", Count(), err)
	}
}

func TestSafeSpawnAdjustsCollidingSpawn(t *testing.T) {
	l := &Level{
		wallAABBs: []physics.AABB{physics.WallAABB(mgl32.Vec3{0, 0, 0})},
	}
	got, err := l.safeSpawn(mgl32.Vec3{0, 0, 0})
	if err != nil {
		t.Fatalf("expected an adjusted spawn, got error: %v", err)
	}
	if got == (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("colliding spawn was not adjusted")
	}
	if physics.IntersectsAny(physics.PlayerAABB(got), l.wallAABBs) {
		t.Errorf("adjusted spawn %v still intersects a wall", got)
	}
}

func TestSafeSpawnFailsWhenSurrounded(t *testing.T) {
	// Walls on the spawn cell and on every candidate offset cell leave no
	// safe adjustment.
	l := &Level{
		wallAABBs: []physics.AABB{
			physics.WallAABB(mgl32.Vec3{0, 0, 0}),
			physics.WallAABB(mgl32.Vec3{0, 0, 2}),
			physics.WallAABB(mgl32.Vec3{0, 0, -2}),
			physics.WallAABB(mgl32.Vec3{2, 0, 0}),
			physics.WallAABB(mgl32.Vec3{-2, 0, 0}),
		},
	}
	if _, err := l.safeSpawn(mgl32.Vec3{0, 0, 0}); !errors.Is(err, ErrInvalidLevel) {
		t.Fatalf("expected ErrInvalidLevel for fully blocked spawn, got %v", err)
	}
}

func TestPushSequenceCompletesLevel(t *testing.T) {
	// First Steps: one box at the origin, target two cells east.
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Standing one cell west of the box, facing east.
	player := mgl32.Vec3{-1, 0, 0}
	if got := l.AttemptPush(player, 1, 0, 1.0); got != PushMoved {
		t.Fatalf("first push: got %v, want PushMoved", got)
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{1, 0, 0}) {
		t.Fatalf("first push: box at %v, want (1,0,0)", b)
	}
	if l.MoveCount() != 1 {
		t.Fatalf("first push: move count %d, want 1", l.MoveCount())
	}
	if l.Completed() {
		t.Fatal("level completed after a single push")
	}

	player = mgl32.Vec3{0, 0, 0}
	if got := l.AttemptPush(player, 1, 0, 2.0); got != PushLanded {
		t.Fatalf("second push: got %v, want PushLanded", got)
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{2, 0, 0}) {
		t.Fatalf("second push: box at %v, want (2,0,0)", b)
	}
	if l.MoveCount() != 2 {
		t.Fatalf("second push: move count %d, want 2", l.MoveCount())
	}
	if !l.Completed() || l.State() != StateCompleted {
		t.Fatal("level not completed with the box on its target")
	}
	if len(l.Particles()) != 1 {
		t.Errorf("expected one landing particle, got %d", len(l.Particles()))
	}
}

func TestPushIgnoredAfterCompletion(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 0)
	l.AttemptPush(mgl32.Vec3{0, 0, 0}, 1, 0, 0)
	if !l.Completed() {
		t.Fatal("setup failed, level not completed")
	}

	if got := l.AttemptPush(mgl32.Vec3{1, 0, 0}, 1, 0, 0); got != PushNoBox {
		t.Errorf("push after completion: got %v, want PushNoBox", got)
	}
	if l.MoveCount() != 2 {
		t.Errorf("move count changed after completion: %d", l.MoveCount())
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{2, 0, 0}) {
		t.Errorf("box moved after completion: %v", b)
	}
}

func TestPushBlockedIsIdempotent(t *testing.T) {
	// Double Trouble: push the west box into the center, then against the
	// other box. The blocked attempt must change nothing, no matter how many
	// times it repeats.
	l, err := Load(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := l.AttemptPush(mgl32.Vec3{-2, 0, 0}, 1, 0, 0); got != PushMoved {
		t.Fatalf("setup push: got %v, want PushMoved", got)
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{0, 0, 0}) {
		t.Fatalf("setup push: box at %v", b)
	}

	for i := 0; i < 3; i++ {
		if got := l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 0); got != PushBlocked {
			t.Fatalf("attempt %d: got %v, want PushBlocked", i, got)
		}
		if b := l.BoxPosition(0); b != (mgl32.Vec3{0, 0, 0}) {
			t.Errorf("attempt %d: blocked box moved to %v", i, b)
		}
		if l.MoveCount() != 1 {
			t.Errorf("attempt %d: move count %d, want 1", i, l.MoveCount())
		}
	}
}

func TestPushNoBoxWhenFacingAway(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Adjacent to the box but facing west, away from it.
	if got := l.AttemptPush(mgl32.Vec3{-1, 0, 0}, -1, 0, 0); got != PushNoBox {
		t.Errorf("got %v, want PushNoBox", got)
	}
	if got := l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 0, 0, 0); got != PushNoBox {
		t.Errorf("zero direction: got %v, want PushNoBox", got)
	}
	if l.MoveCount() != 0 {
		t.Errorf("move count %d after no-op pushes", l.MoveCount())
	}
}

func TestResetRestoresInitialState(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 0)
	l.AttemptPush(mgl32.Vec3{0, 0, 0}, 1, 0, 0)

	spawn := l.Reset()
	if spawn != l.Spawn() {
		t.Errorf("reset returned %v, want spawn %v", spawn, l.Spawn())
	}
	if l.State() != StateActive {
		t.Errorf("state after reset: %v, want StateActive", l.State())
	}
	if l.MoveCount() != 0 {
		t.Errorf("move count after reset: %d", l.MoveCount())
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{0, 0, 0}) {
		t.Errorf("box after reset: %v, want (0,0,0)", b)
	}
	if len(l.Particles()) != 0 {
		t.Errorf("particles survived reset")
	}
}

func TestTeleportLeavesLevelStateAlone(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 0)

	if got := l.EmergencyTeleportSpawn(); got != l.Spawn() {
		t.Errorf("teleport target %v, want spawn %v", got, l.Spawn())
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("teleport moved a box: %v", b)
	}
	if l.MoveCount() != 1 {
		t.Errorf("teleport changed the move count: %d", l.MoveCount())
	}
}

func TestUpdateParticlesExpires(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 10.0)
	l.AttemptPush(mgl32.Vec3{0, 0, 0}, 1, 0, 10.5)
	if len(l.Particles()) != 1 {
		t.Fatalf("expected one particle after landing, got %d", len(l.Particles()))
	}

	l.UpdateParticles(11.0)
	if len(l.Particles()) != 1 {
		t.Errorf("particle expired before its lifetime")
	}
	l.UpdateParticles(13.0)
	if len(l.Particles()) != 0 {
		t.Errorf("particle survived past its lifetime")
	}
}

func TestApplyPlayerDisplacementFreeMove(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}

	desired := mgl32.Vec3{0.1, 0, 0.1}
	got := l.ApplyPlayerDisplacement(l.Spawn(), desired)
	if got != desired {
		t.Errorf("free displacement altered: got %v want %v", got, desired)
	}
}

func TestApplyPlayerDisplacementClipsAgainstBox(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}

	// Box occupies z in [-0.5, 0.5]; the player column reaches z = -0.65 here.
	pos := mgl32.Vec3{0, 0, -1}
	got := l.ApplyPlayerDisplacement(pos, mgl32.Vec3{0, 0, 0.5})
	if got.Z() <= 0 || got.Z() >= 0.5 {
		t.Fatalf("expected a clipped forward displacement, got %v", got)
	}

	after := physics.PlayerAABB(pos.Add(got))
	if physics.IntersectsAny(after, l.PlayerObstacles()) {
		t.Errorf("clipped displacement still intersects an obstacle")
	}
}

func TestApplyPlayerDisplacementIgnoredWhenCompleted(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 0)
	l.AttemptPush(mgl32.Vec3{0, 0, 0}, 1, 0, 0)
	if !l.Completed() {
		t.Fatal("level should be completed")
	}

	if got := l.ApplyPlayerDisplacement(l.Spawn(), mgl32.Vec3{0.2, 0, 0}); got != (mgl32.Vec3{}) {
		t.Errorf("completed level accepted movement: %v", got)
	}
}
