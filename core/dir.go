package core

// Dir is the facing of a tower or the heading of a projectile
// Values cycle clockwise starting at Up
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft

	dirCount = 4
)

// Next returns the facing after one clockwise rotation (Left wraps to Up)
func (d Dir) Next() Dir {
	return (d + 1) % dirCount
}

// Delta returns the (dx, dy) offset of one step in this direction
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Glyph returns the arrow used to draw a tower with this facing
func (d Dir) Glyph() rune {
	switch d {
	case DirUp:
		return '^'
	case DirRight:
		return '>'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '?'
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirRight:
		return "Right"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	default:
		return "Unknown"
	}
}
