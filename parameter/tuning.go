package parameter

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/core"
)

// ErrInvalidTuning is wrapped by every Validate failure
var ErrInvalidTuning = errors.New("invalid tuning")

// Profile is the opening wave size and gold of one difficulty
type Profile struct {
	Enemies int `toml:"enemies"`
	Gold    int `toml:"gold"`
}

// Tuning holds every gameplay number the simulation reads at runtime
// Defaults reproduce the reference behavior; a TOML file may override any field
type Tuning struct {
	TickInterval  time.Duration `toml:"tick_interval"`
	SpawnInterval time.Duration `toml:"spawn_interval"`
	TowerCooldown time.Duration `toml:"tower_cooldown"`

	TowerCost     int      `toml:"tower_cost"`
	TowerFacing   core.Dir `toml:"-"`
	KillBounty    int      `toml:"kill_bounty"`
	WaveBonus     int      `toml:"wave_bonus"`
	StartingLives int      `toml:"starting_lives"`
	EnemyHP       int      `toml:"enemy_hp"`
	TargetWaves   int      `toml:"target_waves"`
	WaveIncrement int      `toml:"wave_increment"`

	Easy   Profile `toml:"easy"`
	Medium Profile `toml:"medium"`
	Hard   Profile `toml:"hard"`
}

// DefaultTuning returns the reference numbers
func DefaultTuning() *Tuning {
	return &Tuning{
		TickInterval:  constants.GameUpdateInterval,
		SpawnInterval: constants.SpawnInterval,
		TowerCooldown: constants.TowerCooldown,

		TowerCost:     constants.TowerCost,
		TowerFacing:   core.DirLeft,
		KillBounty:    constants.KillBounty,
		WaveBonus:     constants.WaveBonus,
		StartingLives: constants.StartingLives,
		EnemyHP:       constants.EnemyHitPoints,
		TargetWaves:   constants.TargetWaves,
		WaveIncrement: constants.WaveEnemyIncrement,

		Easy:   Profile{Enemies: constants.EasyEnemies, Gold: constants.EasyGold},
		Medium: Profile{Enemies: constants.MediumEnemies, Gold: constants.MediumGold},
		Hard:   Profile{Enemies: constants.HardEnemies, Gold: constants.HardGold},
	}
}

// Profile returns the opening wave profile for d
// Any value outside the menu range falls back to Hard, matching the path fallback
func (t *Tuning) Profile(d core.Difficulty) Profile {
	switch d {
	case core.DifficultyEasy:
		return t.Easy
	case core.DifficultyMedium:
		return t.Medium
	default:
		return t.Hard
	}
}

// Validate rejects values the simulation cannot run with
func (t *Tuning) Validate() error {
	durations := []struct {
		name string
		v    time.Duration
	}{
		{"tick_interval", t.TickInterval},
		{"spawn_interval", t.SpawnInterval},
		{"tower_cooldown", t.TowerCooldown},
	}
	for _, d := range durations {
		if d.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidTuning, d.name, d.v)
		}
	}

	positives := []struct {
		name string
		v    int
	}{
		{"tower_cost", t.TowerCost},
		{"starting_lives", t.StartingLives},
		{"enemy_hp", t.EnemyHP},
		{"target_waves", t.TargetWaves},
		{"easy.enemies", t.Easy.Enemies},
		{"medium.enemies", t.Medium.Enemies},
		{"hard.enemies", t.Hard.Enemies},
	}
	for _, p := range positives {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidTuning, p.name, p.v)
		}
	}

	nonNegatives := []struct {
		name string
		v    int
	}{
		{"kill_bounty", t.KillBounty},
		{"wave_bonus", t.WaveBonus},
		{"wave_increment", t.WaveIncrement},
		{"easy.gold", t.Easy.Gold},
		{"medium.gold", t.Medium.Gold},
		{"hard.gold", t.Hard.Gold},
	}
	for _, n := range nonNegatives {
		if n.v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrInvalidTuning, n.name, n.v)
		}
	}

	return nil
}
