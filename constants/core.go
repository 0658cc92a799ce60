package constants

import "time"

// Game Loop Timing
const (
	// GameUpdateInterval is the fixed simulation tick (one advance per interval)
	GameUpdateInterval = 200 * time.Millisecond
)

// Event Queue Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255
)

// System Execution Priorities (lower runs first)
// The order is the sub-phase order of one simulation tick
const (
	PrioritySpawn          = 10
	PriorityEnemyMove      = 20
	PriorityTowerFire      = 30
	PriorityProjectileMove = 40
	PriorityCollision      = 50
	PriorityCleanup        = 100 // Must run last
)
