package engine

import (
	"time"

	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/parameter"
)

// GameState holds the session counters
// Owned by the session loop; mutated only by systems during a tick and by command handlers
type GameState struct {
	Difficulty core.Difficulty

	// Economy and health
	Gold  int
	Lives int

	// Wave progress
	WaveNumber     int // 1-based, shown in the HUD
	WavesCompleted int
	TotalEnemies   int // Enemies to spawn this wave
	Spawned        int // Enemies spawned so far this wave
	LastSpawn      time.Time
	WaveStarted    bool
	WaveComplete   bool

	// Ticks counts simulation ticks since the session began
	Ticks uint64
}

// NewGameState initializes counters for a fresh session at difficulty d
func NewGameState(d core.Difficulty, t *parameter.Tuning, now time.Time) *GameState {
	profile := t.Profile(d)
	return &GameState{
		Difficulty:   d,
		Gold:         profile.Gold,
		Lives:        t.StartingLives,
		WaveNumber:   1,
		TotalEnemies: profile.Enemies,
		LastSpawn:    now,
	}
}

// CanAfford reports whether cost can be debited without going negative
func (s *GameState) CanAfford(cost int) bool {
	return s.Gold >= cost
}

// Spend debits cost if affordable and reports whether it did
func (s *GameState) Spend(cost int) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.Gold -= cost
	return true
}

// AllSpawned reports whether the wave has no spawns left
func (s *GameState) AllSpawned() bool {
	return s.Spawned >= s.TotalEnemies
}
