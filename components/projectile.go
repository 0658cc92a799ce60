package components

import "github.com/lixenwraith/vi-defense/core"

// Projectile travels one cell per tick along a fixed heading
// It is the only entity kind purged from its arena (by the cull pass)
type Projectile struct {
	Pos    core.Coord
	Facing core.Dir
	Alive  bool
}

// NewProjectile spawns a live projectile at pos
func NewProjectile(pos core.Coord, facing core.Dir) Projectile {
	return Projectile{Pos: pos, Facing: facing, Alive: true}
}
