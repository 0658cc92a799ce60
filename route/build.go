package route

import "github.com/lixenwraith/vi-defense/core"

// Build returns the route for a difficulty
// Easy winds through four corners, Medium drops from the top then runs right,
// Hard (and any unrecognized value) crosses the grid in a straight line
func Build(d core.Difficulty) *Path {
	var b builder
	switch d {
	case core.DifficultyEasy:
		b.horizontal(8, 1, 24)
		b.vertical(24, 9, 14)
		b.horizontal(14, 25, 54)
		b.vertical(54, 15, 20)
		b.horizontal(20, 55, 78)
	case core.DifficultyMedium:
		b.vertical(40, 1, 14)
		b.horizontal(15, 40, 78)
	default:
		b.horizontal(12, 1, 78)
	}
	return New(b.cells)
}

// builder appends inclusive straight segments
type builder struct {
	cells []core.Coord
}

func (b *builder) horizontal(y, fromX, toX int) {
	for x := fromX; x <= toX; x++ {
		b.cells = append(b.cells, core.C(x, y))
	}
}

func (b *builder) vertical(x, fromY, toY int) {
	for y := fromY; y <= toY; y++ {
		b.cells = append(b.cells, core.C(x, y))
	}
}
