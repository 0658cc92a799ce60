package systems

import (
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/engine"
)

// CullSystem compacts the projectile arena
// It runs last in the tick so every earlier phase sees the dead entries
// Enemies are never culled: dead ones stay for the wave completion check
type CullSystem struct {
	world *engine.World
}

// NewCullSystem creates a new cull system
func NewCullSystem(world *engine.World) engine.System {
	return &CullSystem{world: world}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

// Update drops dead projectiles in place, preserving order
func (s *CullSystem) Update() {
	live := s.world.Projectiles[:0]
	for _, p := range s.world.Projectiles {
		if p.Alive {
			live = append(live, p)
		}
	}
	clear(s.world.Projectiles[len(live):])
	s.world.Projectiles = live
}
