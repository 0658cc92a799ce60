package systems

import (
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
)

// EnemyMoveSystem advances every living enemy one route cell
// An enemy already on the last cell leaks: it dies and costs one life, no bounty
type EnemyMoveSystem struct {
	world *engine.World
}

// NewEnemyMoveSystem creates a new enemy movement system
func NewEnemyMoveSystem(world *engine.World) engine.System {
	return &EnemyMoveSystem{world: world}
}

// Priority returns the system's priority
func (s *EnemyMoveSystem) Priority() int {
	return constants.PriorityEnemyMove
}

// Update moves or leaks each living enemy
func (s *EnemyMoveSystem) Update() {
	path := s.world.Path
	for i := range s.world.Enemies {
		e := &s.world.Enemies[i]
		if !e.Alive {
			continue
		}

		if path.HasNext(e.PathIndex) {
			e.PathIndex++
			continue
		}

		e.Alive = false
		s.world.State.Lives--
		s.world.PushEvent(events.EventEnemyLeaked, &events.EnemyPayload{
			Slot: i,
			At:   path.At(e.PathIndex),
		})
	}
}
