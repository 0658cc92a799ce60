package constants

import "time"

// Wave pacing
const (
	// SpawnInterval is the minimum gap between two enemy spawns
	SpawnInterval = 1500 * time.Millisecond

	// WaveEnemyIncrement is added to the wave size on every continue
	WaveEnemyIncrement = 5

	// TargetWaves is the number of completed waves that wins the session
	TargetWaves = 3
)

// Economy
const (
	TowerCost  = 10
	KillBounty = 2
	WaveBonus  = 25
)

// Entities
const (
	// StartingLives is the base health; the session is lost at zero
	StartingLives = 10

	// EnemyHitPoints is the health of a freshly spawned enemy
	EnemyHitPoints = 1

	// TowerCooldown is the minimum time between two shots of one tower
	TowerCooldown = 2000 * time.Millisecond
)

// Difficulty table: enemies in the first wave and starting gold
const (
	EasyEnemies   = 5
	EasyGold      = 100
	MediumEnemies = 10
	MediumGold    = 30
	HardEnemies   = 15
	HardGold      = 50
)
