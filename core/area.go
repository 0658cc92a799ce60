package core

// Bounds is the full grid including its one-cell border frame
// The playable (bounded) interior excludes the frame
type Bounds struct {
	Width, Height int
}

// InInterior reports whether c lies strictly inside the border frame
func (b Bounds) InInterior(c Coord) bool {
	return c.X >= 1 && c.X <= b.Width-2 && c.Y >= 1 && c.Y <= b.Height-2
}

// InGrid reports whether c lies anywhere on the grid, frame included
func (b Bounds) InGrid(c Coord) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

// StepInside returns the neighbour of c in direction d
// ok is false when the neighbour would leave the interior
func (b Bounds) StepInside(c Coord, d Dir) (next Coord, ok bool) {
	next = c.Step(d)
	if !b.InInterior(next) {
		return c, false
	}
	return next, true
}
