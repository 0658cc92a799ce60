package components

import (
	"time"

	"github.com/lixenwraith/vi-defense/core"
)

// Tower fires along its facing whenever its cooldown has elapsed
// Towers are never destroyed within a session
type Tower struct {
	Pos      core.Coord
	Facing   core.Dir
	LastShot time.Time // Placement time until the first shot
}

// NewTower places a tower at pos; the cooldown starts counting at now
func NewTower(pos core.Coord, facing core.Dir, now time.Time) Tower {
	return Tower{Pos: pos, Facing: facing, LastShot: now}
}

// Rotate turns the tower one step clockwise
func (t *Tower) Rotate() {
	t.Facing = t.Facing.Next()
}

// Ready reports whether cooldown has elapsed since the last shot
func (t *Tower) Ready(now time.Time, cooldown time.Duration) bool {
	return now.Sub(t.LastShot) >= cooldown
}
