// Package route holds the fixed walking route enemies follow from spawn to base
package route

import (
	"fmt"

	"github.com/lixenwraith/vi-defense/core"
)

// Path is an ordered, immutable sequence of orthogonally adjacent cells
// Index 0 is the spawn cell, the last index is the cell next to the base
type Path struct {
	cells []core.Coord
	index map[core.Coord]struct{}
}

// New wraps cells into a Path; the slice is copied
func New(cells []core.Coord) *Path {
	p := &Path{
		cells: make([]core.Coord, len(cells)),
		index: make(map[core.Coord]struct{}, len(cells)),
	}
	copy(p.cells, cells)
	for _, c := range p.cells {
		p.index[c] = struct{}{}
	}
	return p
}

// Len returns the number of cells
func (p *Path) Len() int {
	return len(p.cells)
}

// At returns the cell at index i
// Callers keep i in [0, Len()); an out-of-range index is a programming error
func (p *Path) At(i int) core.Coord {
	if i < 0 || i >= len(p.cells) {
		panic(fmt.Sprintf("route: index %d out of range [0,%d)", i, len(p.cells)))
	}
	return p.cells[i]
}

// LastIndex returns the index of the final cell
func (p *Path) LastIndex() int {
	return len(p.cells) - 1
}

// HasNext reports whether i+1 is still a valid index
func (p *Path) HasNext(i int) bool {
	return i+1 < len(p.cells)
}

// Contains reports whether c is one of the path cells
func (p *Path) Contains(c core.Coord) bool {
	_, ok := p.index[c]
	return ok
}

// Cells returns a copy of the ordered cells
func (p *Path) Cells() []core.Coord {
	out := make([]core.Coord, len(p.cells))
	copy(out, p.cells)
	return out
}

// Validate checks the structural invariants against the grid bounds
func (p *Path) Validate(b core.Bounds) error {
	if len(p.cells) < 2 {
		return fmt.Errorf("path has %d cells, need at least 2", len(p.cells))
	}
	if len(p.index) != len(p.cells) {
		return fmt.Errorf("path revisits a cell")
	}
	for i, c := range p.cells {
		if !b.InInterior(c) {
			return fmt.Errorf("cell %d at %v is outside the interior", i, c)
		}
		if i > 0 && !p.cells[i-1].Adjacent(c) {
			return fmt.Errorf("cells %d %v and %d %v are not adjacent", i-1, p.cells[i-1], i, c)
		}
	}
	return nil
}
