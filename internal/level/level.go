package level

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/config"
	"boxpush/internal/logger"
	"boxpush/internal/physics"
)

// ErrInvalidLevel marks malformed level data. A level that fails validation
// never becomes playable; callers fall back to the menu.
var ErrInvalidLevel = errors.New("invalid level data")

// State is the lifecycle of a loaded level.
type State int

const (
	StateLoading State = iota
	StateValidated
	StateActive
	StateCompleted
)

// PushResult is the outcome of a push attempt, surfaced so the caller can
// pick feedback (sound, particles). None of these are errors.
type PushResult int

const (
	// PushNoBox: no box in the faced cell within reach.
	PushNoBox PushResult = iota
	// PushMoved: the box advanced one grid unit.
	PushMoved
	// PushLanded: the box advanced and now rests on a target.
	PushLanded
	// PushBlocked: the destination cell is occupied; nothing changed.
	PushBlocked
)

// Particle is a feedback burst spawned when a box lands on a target.
type Particle struct {
	Position mgl32.Vec3
	Start    float64
}

// Level owns the mutable state of one loaded level: box positions, the move
// counter, and the completion state. Walls and targets are immutable after
// load.
type Level struct {
	state      State
	index      int
	name       string
	difficulty string

	walls     []mgl32.Vec3
	wallAABBs []physics.AABB
	boxes     []mgl32.Vec3
	targets   []mgl32.Vec3
	spawn     mgl32.Vec3

	moveCount int
	particles []Particle

	log *logger.Logger
}

// Load builds and validates the level at index. Malformed data fails the
// load; a spawn point inside a wall is auto-corrected with a warning.
func Load(index int, log *logger.Logger) (*Level, error) {
	d, ok := Get(index)
	if !ok {
		return nil, fmt.Errorf("%w: no level at index %d", ErrInvalidLevel, index)
	}

	l := &Level{
		state:      StateLoading,
		index:      index,
		name:       d.Name,
		difficulty: d.Difficulty,
		log:        log,
	}

	if err := validate(index, d); err != nil {
		return nil, err
	}
	l.state = StateValidated

	l.walls = d.Walls
	l.wallAABBs = make([]physics.AABB, len(d.Walls))
	for i, w := range d.Walls {
		l.wallAABBs[i] = physics.WallAABB(w)
	}
	l.boxes = d.Boxes
	l.targets = d.Targets

	spawn, err := l.safeSpawn(d.Spawn)
	if err != nil {
		return nil, err
	}
	l.spawn = spawn

	l.state = StateActive
	return l, nil
}

// validate checks the static level definition before any of it becomes live
// state. Every violation here is fatal for the level.
func validate(index int, d Data) error {
	if len(d.Boxes) == 0 {
		return fmt.Errorf("%w: level %d has no boxes", ErrInvalidLevel, index)
	}
	if len(d.Boxes) != len(d.Targets) {
		return fmt.Errorf("%w: level %d has %d boxes but %d targets",
			ErrInvalidLevel, index, len(d.Boxes), len(d.Targets))
	}

	check := func(kind string, i int, p mgl32.Vec3) error {
		for axis := 0; axis < 3; axis++ {
			if math32.IsNaN(p[axis]) || math32.IsInf(p[axis], 0) {
				return fmt.Errorf("%w: level %d %s %d has non-finite coordinate", ErrInvalidLevel, index, kind, i)
			}
		}
		if math32.Abs(p.X()) >= config.WorldBoundaryLimit || math32.Abs(p.Z()) >= config.WorldBoundaryLimit {
			return fmt.Errorf("%w: level %d %s %d outside world boundary", ErrInvalidLevel, index, kind, i)
		}
		return nil
	}

	for i, w := range d.Walls {
		if err := check("wall", i, w); err != nil {
			return err
		}
	}
	for i, b := range d.Boxes {
		if err := check("box", i, b); err != nil {
			return err
		}
		if wallContaining(d.Walls, b) >= 0 {
			return fmt.Errorf("%w: level %d box %d inside wall", ErrInvalidLevel, index, i)
		}
	}
	for i, tgt := range d.Targets {
		if err := check("target", i, tgt); err != nil {
			return err
		}
		if wallContaining(d.Walls, tgt) >= 0 {
			return fmt.Errorf("%w: level %d target %d inside wall", ErrInvalidLevel, index, i)
		}
	}
	if err := check("spawn", 0, d.Spawn); err != nil {
		return err
	}
	return nil
}

// wallContaining returns the index of a wall whose AABB contains point p, or
// -1. Points on a wall face are outside.
func wallContaining(walls []mgl32.Vec3, p mgl32.Vec3) int {
	for i, w := range walls {
		a := physics.WallAABB(w)
		if p.X() > a.Min.X() && p.X() < a.Max.X() &&
			p.Y() > a.Min.Y() && p.Y() < a.Max.Y() &&
			p.Z() > a.Min.Z() && p.Z() < a.Max.Z() {
			return i
		}
	}
	return -1
}

// safeSpawn validates the spawn point against the walls. A spawn inside a
// wall shipped once and soft-locked the game, so a colliding spawn is nudged
// along each axis in turn; if no nudge clears it the data is rejected.
func (l *Level) safeSpawn(spawn mgl32.Vec3) (mgl32.Vec3, error) {
	if !physics.IntersectsAny(physics.PlayerAABB(spawn), l.wallAABBs) {
		return spawn, nil
	}

	offsets := []mgl32.Vec3{
		{0, 0, config.SpawnAdjustOffset},
		{0, 0, -config.SpawnAdjustOffset},
		{config.SpawnAdjustOffset, 0, 0},
		{-config.SpawnAdjustOffset, 0, 0},
	}
	for _, off := range offsets {
		cand := spawn.Add(off)
		if math32.Abs(cand.X()) >= config.WorldBoundaryLimit || math32.Abs(cand.Z()) >= config.WorldBoundaryLimit {
			continue
		}
		if !physics.IntersectsAny(physics.PlayerAABB(cand), l.wallAABBs) {
			if l.log != nil {
				l.log.Warnf("level %d spawn %v intersects a wall, adjusted to %v", l.index, spawn, cand)
			}
			return cand, nil
		}
	}
	return mgl32.Vec3{}, fmt.Errorf("%w: level %d spawn inside wall and no safe adjustment found", ErrInvalidLevel, l.index)
}

func (l *Level) State() State       { return l.state }
func (l *Level) Index() int         { return l.index }
func (l *Level) Name() string       { return l.name }
func (l *Level) Difficulty() string { return l.difficulty }
func (l *Level) MoveCount() int     { return l.moveCount }
func (l *Level) Completed() bool    { return l.state == StateCompleted }
func (l *Level) Spawn() mgl32.Vec3  { return l.spawn }
func (l *Level) BoxCount() int      { return len(l.boxes) }
func (l *Level) IsLast() bool       { return l.index >= Count()-1 }

// Walls returns the wall cell centers. The slice is read-only.
func (l *Level) Walls() []mgl32.Vec3 { return l.walls }

// Targets returns the target cell centers. The slice is read-only.
func (l *Level) Targets() []mgl32.Vec3 { return l.targets }

// BoxPosition returns the current position of the box at index.
func (l *Level) BoxPosition(index int) mgl32.Vec3 { return l.boxes[index] }

// PlayerObstacles returns the collision set the player moves against: all
// walls plus all boxes.
func (l *Level) PlayerObstacles() []physics.AABB {
	out := make([]physics.AABB, 0, len(l.wallAABBs)+len(l.boxes))
	out = append(out, l.wallAABBs...)
	for _, b := range l.boxes {
		out = append(out, physics.BoxAABB(b))
	}
	return out
}

// ApplyPlayerDisplacement clips a desired player displacement against the
// walls, the boxes and the world boundary and returns the accepted part.
// Movement is ignored once the level is completed.
func (l *Level) ApplyPlayerDisplacement(playerPos, desired mgl32.Vec3) mgl32.Vec3 {
	if l.state != StateActive {
		return mgl32.Vec3{}
	}
	half := mgl32.Vec3{config.PlayerRadius, config.PlayerEyeHeight, config.PlayerRadius}
	return physics.ResolveStepped(playerPos, half, desired, l.PlayerObstacles(), config.WorldBoundaryLimit)
}

// boxObstacles returns the collision set a moving box is tested against:
// all walls plus every box except itself.
func (l *Level) boxObstacles(exclude int) []physics.AABB {
	out := make([]physics.AABB, 0, len(l.wallAABBs)+len(l.boxes))
	out = append(out, l.wallAABBs...)
	for i, b := range l.boxes {
		if i == exclude {
			continue
		}
		out = append(out, physics.BoxAABB(b))
	}
	return out
}

// AttemptPush tries to push the box in the cell the player faces, one grid
// unit along (dx,dz). On success the move counter increments and the win
// condition is re-checked. Gameplay input is ignored once the level is
// completed.
func (l *Level) AttemptPush(playerPos mgl32.Vec3, dx, dz int, now float64) PushResult {
	if l.state != StateActive {
		return PushNoBox
	}
	if dx == 0 && dz == 0 {
		return PushNoBox
	}

	frontX := physics.GridRound(playerPos.X()) + dx
	frontZ := physics.GridRound(playerPos.Z()) + dz

	index := -1
	for i, b := range l.boxes {
		if physics.GridRound(b.X()) == frontX && physics.GridRound(b.Z()) == frontZ {
			index = i
			break
		}
	}
	if index < 0 {
		return PushNoBox
	}
	if physics.Chebyshev(playerPos, l.boxes[index]) > config.InteractDistance {
		return PushNoBox
	}
	if !l.destinationFree(index, dx, dz) {
		return PushBlocked
	}

	box := l.boxes[index]
	l.boxes[index] = mgl32.Vec3{
		box.X() + float32(dx)*config.GridSize,
		box.Y(),
		box.Z() + float32(dz)*config.GridSize,
	}
	l.moveCount++

	result := PushMoved
	if l.onTarget(l.boxes[index]) {
		result = PushLanded
		l.particles = append(l.particles, Particle{Position: l.boxes[index], Start: now})
	}

	if l.BoxesOnTarget() == len(l.boxes) {
		l.state = StateCompleted
	}
	return result
}

// BoxesOnTarget counts boxes currently resting on a target.
func (l *Level) BoxesOnTarget() int {
	n := 0
	for _, b := range l.boxes {
		if l.onTarget(b) {
			n++
		}
	}
	return n
}

// Reset restores boxes from the level tables, clears the counter and
// completion state, and reports the spawn the caller should move the player
// to.
func (l *Level) Reset() mgl32.Vec3 {
	d, _ := Get(l.index)
	l.boxes = d.Boxes
	l.moveCount = 0
	l.particles = nil
	l.state = StateActive
	return l.spawn
}

// EmergencyTeleportSpawn returns the validated spawn point. It never fails
// and does not touch box state; the caller moves the player.
func (l *Level) EmergencyTeleportSpawn() mgl32.Vec3 {
	return l.spawn
}

// UpdateParticles drops particles older than the configured lifetime.
func (l *Level) UpdateParticles(now float64) {
	alive := l.particles[:0]
	for _, p := range l.particles {
		if now-p.Start < config.ParticleLifetime {
			alive = append(alive, p)
		}
	}
	l.particles = alive
}

// Particles returns the live feedback particles. The slice is read-only.
func (l *Level) Particles() []Particle { return l.particles }

// BoxView is one box in a render snapshot.
type BoxView struct {
	Position mgl32.Vec3
	Status   BoxStatus
}

// Snapshot is an immutable copy of the level's mutable state, taken at a
// frame boundary for the render/HUD side.
type Snapshot struct {
	Name          string
	Difficulty    string
	MoveCount     int
	Completed     bool
	Boxes         []BoxView
	BoxesOnTarget int
	TotalBoxes    int
	Particles     []Particle
}

// TakeSnapshot classifies every box against the player and copies the
// mutable fields out. The result shares nothing with the level.
func (l *Level) TakeSnapshot(playerPos mgl32.Vec3, dx, dz int) Snapshot {
	boxes := make([]BoxView, len(l.boxes))
	onTarget := 0
	for i := range l.boxes {
		st := l.ClassifyBox(i, playerPos, dx, dz)
		if st == BoxOnTarget {
			onTarget++
		}
		boxes[i] = BoxView{Position: l.boxes[i], Status: st}
	}
	return Snapshot{
		Name:          l.name,
		Difficulty:    l.difficulty,
		MoveCount:     l.moveCount,
		Completed:     l.state == StateCompleted,
		Boxes:         boxes,
		BoxesOnTarget: onTarget,
		TotalBoxes:    len(l.boxes),
		Particles:     append([]Particle(nil), l.particles...),
	}
}
