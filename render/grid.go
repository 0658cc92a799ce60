package render

import (
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
)

// Grid is a fixed-size character buffer of the playfield
type Grid struct {
	width  int
	height int
	lines  [][]Cell
}

// NewGrid creates a blank grid
func NewGrid(width, height int) *Grid {
	lines := make([][]Cell, height)
	for y := range lines {
		lines[y] = make([]Cell, width)
		for x := range lines[y] {
			lines[y][x] = emptyCell
		}
	}
	return &Grid{width: width, height: height, lines: lines}
}

// Width returns the grid width
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height
func (g *Grid) Height() int {
	return g.height
}

// Get returns the cell at c and whether c is inside the grid
func (g *Grid) Get(c core.Coord) (Cell, bool) {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return Cell{}, false
	}
	return g.lines[c.Y][c.X], true
}

// Set writes a cell, ignoring coordinates outside the grid
func (g *Grid) Set(c core.Coord, cell Cell) bool {
	if c.X < 0 || c.X >= g.width || c.Y < 0 || c.Y >= g.height {
		return false
	}
	g.lines[c.Y][c.X] = cell
	return true
}

// Line returns row y as a string
func (g *Grid) Line(y int) string {
	if y < 0 || y >= g.height {
		return ""
	}
	runes := make([]rune, g.width)
	for x, cell := range g.lines[y] {
		runes[x] = cell.Rune
	}
	return string(runes)
}

// BuildGrid lays out a snapshot: border, path, enemies, towers, projectiles
// Later layers overwrite earlier ones
func BuildGrid(snap engine.Snapshot) *Grid {
	b := snap.Bounds
	g := NewGrid(b.Width, b.Height)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if y == 0 || y == b.Height-1 || x == 0 || x == b.Width-1 {
				g.lines[y][x] = Cell{Rune: constants.BorderChar, Kind: KindBorder}
			}
		}
	}

	for _, c := range snap.Path {
		g.Set(c, Cell{Rune: constants.PathChar, Kind: KindPath})
	}
	for _, c := range snap.Enemies {
		g.Set(c, Cell{Rune: constants.EnemyChar, Kind: KindEnemy})
	}
	for _, t := range snap.Towers {
		g.Set(t.Pos, Cell{Rune: t.Facing.Glyph(), Kind: KindTower})
	}
	for _, c := range snap.Projectiles {
		g.Set(c, Cell{Rune: constants.ProjectileChar, Kind: KindProjectile})
	}
	return g
}
