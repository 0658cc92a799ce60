package systems

import (
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
)

// CollisionSystem resolves projectile hits against enemies on the same cell
// Each projectile hits at most one enemy, the first living match in arena order
type CollisionSystem struct {
	world *engine.World
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *engine.World) engine.System {
	return &CollisionSystem{world: world}
}

// Priority returns the system's priority
func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

// Update consumes projectiles on hit and awards the bounty on kills
func (s *CollisionSystem) Update() {
	for pi := range s.world.Projectiles {
		p := &s.world.Projectiles[pi]
		if !p.Alive {
			continue
		}

		for ei := range s.world.Enemies {
			e := &s.world.Enemies[ei]
			if !e.Alive {
				continue
			}
			cell := s.world.EnemyCell(ei)
			if cell != p.Pos {
				continue
			}

			p.Alive = false
			if e.Hit() {
				s.world.State.Gold += s.world.Tuning.KillBounty
				s.world.PushEvent(events.EventEnemyKilled, &events.EnemyPayload{
					Slot: ei,
					At:   cell,
				})
			}
			break
		}
	}
}
