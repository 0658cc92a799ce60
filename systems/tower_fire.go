package systems

import (
	"github.com/lixenwraith/vi-defense/components"
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
)

// TowerFireSystem spawns a projectile in front of every tower whose cooldown has elapsed
// A tower facing the border does not fire and keeps its cooldown expired, so it retries each tick
type TowerFireSystem struct {
	world *engine.World
}

// NewTowerFireSystem creates a new tower fire system
func NewTowerFireSystem(world *engine.World) engine.System {
	return &TowerFireSystem{world: world}
}

// Priority returns the system's priority
func (s *TowerFireSystem) Priority() int {
	return constants.PriorityTowerFire
}

// Update fires ready towers
func (s *TowerFireSystem) Update() {
	now := s.world.Clock.Now()
	cooldown := s.world.Tuning.TowerCooldown

	for i := range s.world.Towers {
		t := &s.world.Towers[i]
		if !t.Ready(now, cooldown) {
			continue
		}

		spawnAt, ok := s.world.Bounds.StepInside(t.Pos, t.Facing)
		if !ok {
			continue
		}

		s.world.Projectiles = append(s.world.Projectiles, components.NewProjectile(spawnAt, t.Facing))
		t.LastShot = now

		s.world.PushEvent(events.EventTowerFired, &events.TowerPayload{
			Slot:   i,
			At:     t.Pos,
			Facing: t.Facing,
		})
	}
}
