package engine

import (
	"sort"

	"github.com/lixenwraith/vi-defense/components"
	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/events"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/route"
)

// World owns the entity arenas and runs the simulation systems
// Enemies and towers are never removed from their arenas; dead enemies stay as inert
// entries until the wave is reset. Projectiles are compacted by the cull system
type World struct {
	Bounds core.Bounds
	Path   *route.Path
	Tuning *parameter.Tuning
	State  *GameState
	Clock  TimeProvider

	Enemies     []components.Enemy
	Towers      []components.Tower
	Projectiles []components.Projectile

	queue   *events.EventQueue
	systems []System
}

// NewWorld creates an empty world on the standard grid
// Path and State are nil until Reset is called for a chosen difficulty
func NewWorld(t *parameter.Tuning, clock TimeProvider, queue *events.EventQueue) *World {
	return &World{
		Bounds: core.Bounds{Width: constants.GridWidth, Height: constants.GridHeight},
		Tuning: t,
		Clock:  clock,
		queue:  queue,
	}
}

// AddSystem registers a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
}

// Systems returns the registered systems in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// Update runs one simulation tick: every system once, in priority order
func (w *World) Update() {
	if w.State == nil || w.Path == nil {
		return
	}
	w.State.Ticks++
	for _, system := range w.systems {
		system.Update()
	}
}

// Reset starts a new session on path with fresh counters
// Towers from a previous session are discarded
func (w *World) Reset(path *route.Path, state *GameState) {
	w.Path = path
	w.State = state
	w.Towers = w.Towers[:0]
	w.ResetWave()
}

// ResetWave clears per-wave entities and spawn bookkeeping; towers are kept
func (w *World) ResetWave() {
	w.Enemies = w.Enemies[:0]
	w.Projectiles = w.Projectiles[:0]
	if w.State == nil {
		return
	}
	w.State.Spawned = 0
	w.State.LastSpawn = w.Clock.Now()
	w.State.WaveStarted = false
	w.State.WaveComplete = false
}

// TowerAt returns the arena slot of the tower at c
func (w *World) TowerAt(c core.Coord) (int, bool) {
	for i := range w.Towers {
		if w.Towers[i].Pos == c {
			return i, true
		}
	}
	return -1, false
}

// EnemyCell returns the grid cell of the enemy in slot i
func (w *World) EnemyCell(i int) core.Coord {
	return w.Path.At(w.Enemies[i].PathIndex)
}

// LivingEnemies counts enemies with Alive set
func (w *World) LivingEnemies() int {
	n := 0
	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			n++
		}
	}
	return n
}

// WaveCleared is the completion predicate: every enemy spawned and none alive
func (w *World) WaveCleared() bool {
	if w.State == nil {
		return false
	}
	return w.State.Spawned == w.State.TotalEnemies && w.LivingEnemies() == 0
}

// PushEvent emits a notification stamped with the current tick
func (w *World) PushEvent(eventType events.EventType, payload any) {
	if w.queue == nil {
		return
	}
	var tick uint64
	if w.State != nil {
		tick = w.State.Ticks
	}
	w.queue.Push(events.GameEvent{
		Type:      eventType,
		Payload:   payload,
		Tick:      tick,
		Timestamp: w.Clock.Now(),
	})
}
