package events

import "github.com/lixenwraith/vi-defense/core"

// DifficultyPayload carries the menu selection (1, 2 or 3)
type DifficultyPayload struct {
	Level int
}

// PlacePayload carries the target cell of a place/rotate command
type PlacePayload struct {
	At core.Coord
}

// EnemyPayload identifies an enemy by arena slot and where it stood
type EnemyPayload struct {
	Slot int
	At   core.Coord
}

// TowerPayload identifies a tower by arena slot
type TowerPayload struct {
	Slot   int
	At     core.Coord
	Facing core.Dir
}

// RejectReason explains why a placement was a no-op
type RejectReason string

const (
	RejectInsufficientGold RejectReason = "insufficient_gold"
	RejectOnPath           RejectReason = "on_path"
	RejectOutOfBounds      RejectReason = "out_of_bounds"
)

// RejectPayload carries a rejected placement target and reason
type RejectPayload struct {
	At     core.Coord
	Reason RejectReason
}

// WavePayload summarizes a completed wave
type WavePayload struct {
	Wave  int
	Bonus int
	Gold  int
}

// SessionEndPayload reports how the session ended
type SessionEndPayload struct {
	Won            bool
	WavesCompleted int
	Lives          int
}
