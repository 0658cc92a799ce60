package systems

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/route"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestWorld builds a world with every system registered and a fresh session at d
func newTestWorld(t *testing.T, d core.Difficulty) (*engine.World, *engine.MockTimeProvider, *events.EventQueue) {
	t.Helper()
	clock := engine.NewMockTimeProvider(testEpoch)
	queue := events.NewEventQueue()
	tuning := parameter.DefaultTuning()

	world := engine.NewWorld(tuning, clock, queue)
	Register(world)
	world.Reset(route.Build(d), engine.NewGameState(d, tuning, clock.Now()))
	return world, clock, queue
}

// countEvents returns how many drained events have type et
func countEvents(evs []events.GameEvent, et events.EventType) int {
	n := 0
	for _, ev := range evs {
		if ev.Type == et {
			n++
		}
	}
	return n
}
