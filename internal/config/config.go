package config

// Window and camera.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	WindowTitle  = "BoxPush 3D"

	FOV       = 70.0 // degrees
	NearPlane = 0.1
	FarPlane  = 200.0
)

// Gameplay tuning. Distances are in world units; one grid cell is GridSize wide.
const (
	PlayerEyeHeight = 0.8
	PlayerRadius    = 0.35 // half-extent on the XZ plane
	BoxHalfExtent   = 0.5
	WallHalfExtent  = 0.5

	MoveSpeed     = 3.0 // units per second
	RunMultiplier = 1.65

	GridSize         = 1.0
	InteractDistance = 2.5 // Chebyshev reach for pushing
	SnapTolerance    = 0.5 // half a grid cell: a box this close to a target counts as on it
	SlidingFriction  = 0.7

	PushCooldown = 0.18 // seconds between accepted push attempts

	// Any position whose |x| or |z| exceeds this is outside the playfield.
	WorldBoundaryLimit = 20.0

	// Offset tried when a level's spawn point intersects a wall.
	SpawnAdjustOffset = 2.0
)

// Frame stepping.
const (
	TargetFPS = 120

	// Delta time is clamped to this before physics runs so a stalled frame
	// cannot push the player through a wall.
	MaxFrameTime = 0.033

	// Displacements longer than this per axis are sub-stepped through the
	// collision resolver.
	MaxStepDisplacement = 0.25
)

// Feedback effects.
const (
	ParticleLifetime = 2.0 // seconds
	StepInterval     = 0.35
)
