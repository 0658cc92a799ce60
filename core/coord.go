package core

import "fmt"

// Coord is a cell on the character grid
// X grows to the right, Y grows downward (screen coordinates)
type Coord struct {
	X int
	Y int
}

// C is a shorthand constructor for Coord
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// Step returns the neighbouring cell one step in direction d
func (c Coord) Step(d Dir) Coord {
	dx, dy := d.Delta()
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Equal reports whether both coordinates address the same cell
func (c Coord) Equal(other Coord) bool {
	return c.X == other.X && c.Y == other.Y
}

// Adjacent reports whether other is one orthogonal step away
func (c Coord) Adjacent(other Coord) bool {
	dx := c.X - other.X
	dy := c.Y - other.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx+dy == 1
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
