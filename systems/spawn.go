package systems

import (
	"github.com/lixenwraith/vi-defense/components"
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
)

// SpawnSystem releases one enemy at the route start per spawn interval
type SpawnSystem struct {
	world *engine.World
}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem(world *engine.World) engine.System {
	return &SpawnSystem{world: world}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update spawns at most one enemy when the interval since the last spawn has elapsed
func (s *SpawnSystem) Update() {
	state := s.world.State
	if state.AllSpawned() {
		return
	}

	now := s.world.Clock.Now()
	if now.Sub(state.LastSpawn) < s.world.Tuning.SpawnInterval {
		return
	}

	s.world.Enemies = append(s.world.Enemies, components.NewEnemy(s.world.Tuning.EnemyHP))
	state.Spawned++
	state.LastSpawn = now

	slot := len(s.world.Enemies) - 1
	s.world.PushEvent(events.EventEnemySpawned, &events.EnemyPayload{
		Slot: slot,
		At:   s.world.EnemyCell(slot),
	})
}
