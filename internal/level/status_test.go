package level

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestClassifyOnTargetWinsOverEverything(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	l.AttemptPush(mgl32.Vec3{-1, 0, 0}, 1, 0, 0)
	l.AttemptPush(mgl32.Vec3{0, 0, 0}, 1, 0, 0)

	// Player adjacent, direction irrelevant: a box on its target always
	// classifies as OnTarget.
	if got := l.ClassifyBox(0, mgl32.Vec3{1, 0, 0}, 1, 0); got != BoxOnTarget {
		t.Errorf("adjacent player: got %v, want BoxOnTarget", got)
	}
	if got := l.ClassifyBox(0, mgl32.Vec3{15, 0, 15}, 0, 1); got != BoxOnTarget {
		t.Errorf("distant player: got %v, want BoxOnTarget", got)
	}
}

func TestClassifyDistanceGate(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Destination is free either way; only the player's reach decides.
	if got := l.ClassifyBox(0, mgl32.Vec3{4, 0, 4}, 1, 0); got != BoxNormal {
		t.Errorf("out of reach: got %v, want BoxNormal", got)
	}
	if got := l.ClassifyBox(0, mgl32.Vec3{-1, 0, 0}, 1, 0); got != BoxPushable {
		t.Errorf("in reach with free destination: got %v, want BoxPushable", got)
	}
}

func TestClassifyBlockedByOtherBox(t *testing.T) {
	l, err := Load(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Move the east box into the center so it occupies the west box's
	// eastward destination.
	if got := l.AttemptPush(mgl32.Vec3{2, 0, 0}, -1, 0, 0); got != PushMoved {
		t.Fatalf("setup push: got %v", got)
	}

	if got := l.ClassifyBox(0, mgl32.Vec3{-2, 0, 0}, 1, 0); got != BoxBlocked {
		t.Errorf("destination occupied by box: got %v, want BoxBlocked", got)
	}
	// The same box pushed the other way is free.
	if got := l.ClassifyBox(0, mgl32.Vec3{-2, 0, 0}, -1, 0); got != BoxPushable {
		t.Errorf("free westward destination: got %v, want BoxPushable", got)
	}
}

func TestClassifyBlockedByWall(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	// Shove the box against the east wall of the ring.
	for x := -1; x <= 2; x++ {
		l.state = StateActive
		l.AttemptPush(mgl32.Vec3{float32(x), 0, 0}, 1, 0, 0)
	}
	if b := l.BoxPosition(0); b != (mgl32.Vec3{4, 0, 0}) {
		t.Fatalf("setup: box at %v, want (4,0,0)", b)
	}

	if got := l.ClassifyBox(0, mgl32.Vec3{3, 0, 0}, 1, 0); got != BoxBlocked {
		t.Errorf("destination inside wall: got %v, want BoxBlocked", got)
	}
}

func TestClassifyIsPure(t *testing.T) {
	l, err := Load(0, nil)
	if err != nil {
		t.Fatal(err)
	}
	player := mgl32.Vec3{-1, 0, 0}
	before := l.BoxPosition(0)

	first := l.ClassifyBox(0, player, 1, 0)
	for i := 0; i < 5; i++ {
		if got := l.ClassifyBox(0, player, 1, 0); got != first {
			t.Fatalf("repeated classification changed: %v then %v", first, got)
		}
	}
	if l.BoxPosition(0) != before {
		t.Errorf("classification moved a box")
	}
	if l.MoveCount() != 0 {
		t.Errorf("classification changed the move count")
	}
}

func TestSnapshotSharesNothing(t *testing.T) {
	l, err := Load(1, nil)
	if err != nil {
		t.Fatal(err)
	}
	snap := l.TakeSnapshot(mgl32.Vec3{-2, 0, 0}, 1, 0)
	if snap.TotalBoxes != 2 || snap.MoveCount != 0 || snap.Completed {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}

	// Mutating the level after the fact must not show up in the snapshot.
	l.AttemptPush(mgl32.Vec3{-2, 0, 0}, 1, 0, 0)
	if snap.Boxes[0].Position != (mgl32.Vec3{-1, 0, 0}) {
		t.Errorf("snapshot box position changed after a push: %v", snap.Boxes[0].Position)
	}
	if snap.MoveCount != 0 {
		t.Errorf("snapshot move count changed after a push")
	}
}

func TestBoxStatusString(t *testing.T) {
	cases := []struct {
		status BoxStatus
		want   string
	}{
		{BoxNormal, "normal"},
		{BoxPushable, "pushable"},
		{BoxBlocked, "blocked"},
		{BoxOnTarget, "on_target"},
		{BoxStatus(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.status.String(); got != c.want {
			t.Errorf("%d.String() = %q, want %q", c.status, got, c.want)
		}
	}
}
