package events

import (
	"time"
)

// EventType represents the type of game event
type EventType int

const (
	// EventNone is reserved: the state machine uses type 0 for tick transitions
	EventNone EventType = iota

	// --- Commands (input source -> session) ---

	// EventQuit ends the session from any state
	// Trigger: q, Esc, Ctrl+C, Enter on a terminal screen | Payload: nil
	EventQuit

	// EventSelectDifficulty chooses the route and opening profile
	// Trigger: 1/2/3 on the menu | Payload: *DifficultyPayload
	EventSelectDifficulty

	// EventStartWave begins spawning for the current wave
	// Trigger: Enter while idle | Payload: nil
	EventStartWave

	// EventPlaceOrRotate places a tower on an empty cell or rotates the tower already there
	// Trigger: mouse click, Space at the keyboard cursor | Payload: *PlacePayload
	EventPlaceOrRotate

	// EventContinue advances to the next wave after a completed one
	// Trigger: Enter on the wave complete screen | Payload: nil
	EventContinue

	// --- Notifications (simulation/session -> handlers) ---

	// EventEnemySpawned signals a new enemy at the route start
	// Trigger: SpawnSystem | Payload: *EnemyPayload
	EventEnemySpawned

	// EventEnemyLeaked signals an enemy walked off the route end and cost a life
	// Trigger: EnemyMoveSystem | Payload: *EnemyPayload
	EventEnemyLeaked

	// EventEnemyKilled signals a lethal projectile hit and the bounty award
	// Trigger: CollisionSystem | Payload: *EnemyPayload
	EventEnemyKilled

	// EventTowerFired signals a projectile left a tower
	// Trigger: TowerFireSystem | Payload: *TowerPayload
	EventTowerFired

	// EventTowerPlaced signals a successful placement and gold debit
	// Trigger: Session placement handler | Payload: *TowerPayload
	EventTowerPlaced

	// EventTowerRotated signals a facing change
	// Trigger: Session placement handler | Payload: *TowerPayload
	EventTowerRotated

	// EventPlacementRejected signals a placement that changed nothing
	// Trigger: Session placement handler | Payload: *RejectPayload
	EventPlacementRejected

	// EventWaveCleared signals the completion predicate held and the bonus was paid
	// Trigger: Session FSM | Payload: *WavePayload
	EventWaveCleared

	// EventSessionEnded signals a terminal state was entered
	// Trigger: Session FSM | Payload: *SessionEndPayload
	EventSessionEnded
)

// GameEvent represents a single game event with metadata
type GameEvent struct {
	Type      EventType
	Payload   any
	Tick      uint64 // Simulation tick the event was emitted on
	Timestamp time.Time
}

// IsCommand reports whether the event is an input command rather than a notification
func (t EventType) IsCommand() bool {
	return t >= EventQuit && t <= EventContinue
}

func (t EventType) String() string {
	if name := GetEventName(t); name != "" {
		return name
	}
	return "Unknown"
}
