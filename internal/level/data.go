package level

import "github.com/go-gl/mathgl/mgl32"

// Data is the static definition of one level: wall cell centers, box spawn
// cells, target cells, and the player spawn point. Tables are read-only; Get
// hands out copies so live level state never writes back into them.
type Data struct {
	Name       string
	Difficulty string
	Walls      []mgl32.Vec3
	Boxes      []mgl32.Vec3
	Targets    []mgl32.Vec3
	Spawn      mgl32.Vec3
}

// ring returns the perimeter cells of a square of the given radius.
func ring(radius int) []mgl32.Vec3 {
	var cells []mgl32.Vec3
	r := float32(radius)
	for i := -radius; i <= radius; i++ {
		f := float32(i)
		cells = append(cells,
			mgl32.Vec3{f, 0, -r},
			mgl32.Vec3{f, 0, r})
	}
	for i := -radius + 1; i <= radius-1; i++ {
		f := float32(i)
		cells = append(cells,
			mgl32.Vec3{-r, 0, f},
			mgl32.Vec3{r, 0, f})
	}
	return cells
}

// row returns a straight run of wall cells along X at the given Z.
func row(z float32, fromX, toX int) []mgl32.Vec3 {
	var cells []mgl32.Vec3
	for x := fromX; x <= toX; x++ {
		cells = append(cells, mgl32.Vec3{float32(x), 0, z})
	}
	return cells
}

var levels = []Data{
	{
		Name:       "First Steps",
		Difficulty: "Easy",
		Walls:      ring(5),
		Boxes:      []mgl32.Vec3{{0, 0, 0}},
		Targets:    []mgl32.Vec3{{2, 0, 0}},
		Spawn:      mgl32.Vec3{0, 0, -2},
	},
	{
		Name:       "Double Trouble",
		Difficulty: "Easy",
		Walls:      ring(5),
		Boxes:      []mgl32.Vec3{{-1, 0, 0}, {1, 0, 0}},
		Targets:    []mgl32.Vec3{{-3, 0, 0}, {3, 0, 0}},
		Spawn:      mgl32.Vec3{0, 0, -3},
	},
	{
		Name:       "The Corridor",
		Difficulty: "Normal",
		Walls: append(append(ring(6),
			row(-2, -4, 4)...),
			row(2, -4, 4)...),
		Boxes:   []mgl32.Vec3{{-2, 0, 0}, {2, 0, 0}, {0, 0, 4}},
		Targets: []mgl32.Vec3{{-4, 0, 0}, {4, 0, 0}, {3, 0, 4}},
		Spawn:   mgl32.Vec3{0, 0, 0},
	},
	{
		Name:       "Four Corners",
		Difficulty: "Hard",
		Walls:      ring(6),
		Boxes:      []mgl32.Vec3{{-2, 0, -2}, {2, 0, -2}, {-2, 0, 2}, {2, 0, 2}},
		Targets:    []mgl32.Vec3{{-4, 0, -4}, {4, 0, -4}, {-4, 0, 4}, {4, 0, 4}},
		Spawn:      mgl32.Vec3{0, 0, 0},
	},
	{
		Name:       "The Gauntlet",
		Difficulty: "Hard",
		Walls: append(ring(7),
			mgl32.Vec3{2, 0, -2},
			mgl32.Vec3{-2, 0, -2},
			mgl32.Vec3{-2, 0, 2}),
		Boxes:   []mgl32.Vec3{{0, 0, -3}, {-3, 0, 0}, {3, 0, 0}, {0, 0, 3}, {0, 0, 0}},
		Targets: []mgl32.Vec3{{0, 0, -5}, {-5, 0, 0}, {5, 0, 0}, {0, 0, 5}, {2, 0, 2}},
		Spawn:   mgl32.Vec3{0, 0, 6},
	},
}

// Count returns the number of built-in levels.
func Count() int {
	return len(levels)
}

// Get returns a copy of the level definition at index.
func Get(index int) (Data, bool) {
	if index < 0 || index >= len(levels) {
		return Data{}, false
	}
	src := levels[index]
	d := Data{
		Name:       src.Name,
		Difficulty: src.Difficulty,
		Walls:      append([]mgl32.Vec3(nil), src.Walls...),
		Boxes:      append([]mgl32.Vec3(nil), src.Boxes...),
		Targets:    append([]mgl32.Vec3(nil), src.Targets...),
		Spawn:      src.Spawn,
	}
	return d, true
}
