package systems

import (
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/engine"
)

// ProjectileMoveSystem moves every living projectile one cell along its facing
// A projectile that would leave the interior dies where it is
type ProjectileMoveSystem struct {
	world *engine.World
}

// NewProjectileMoveSystem creates a new projectile movement system
func NewProjectileMoveSystem(world *engine.World) engine.System {
	return &ProjectileMoveSystem{world: world}
}

// Priority returns the system's priority
func (s *ProjectileMoveSystem) Priority() int {
	return constants.PriorityProjectileMove
}

// Update advances projectiles
func (s *ProjectileMoveSystem) Update() {
	for i := range s.world.Projectiles {
		p := &s.world.Projectiles[i]
		if !p.Alive {
			continue
		}

		next, ok := s.world.Bounds.StepInside(p.Pos, p.Facing)
		if !ok {
			p.Alive = false
			continue
		}
		p.Pos = next
	}
}
