package input

import (
	"github.com/lixenwraith/vi-defense/events"
	"github.com/lixenwraith/vi-defense/session"
)

// Command maps an intent to a session command for the given phase
// Enter means start, continue or acknowledge depending on where the session is
func Command(in Intent, phase session.Phase) (events.GameEvent, bool) {
	switch in.Type {
	case IntentQuit:
		return events.GameEvent{Type: events.EventQuit}, true

	case IntentSelectDifficulty:
		if phase != session.PhaseSelecting {
			return events.GameEvent{}, false
		}
		return events.GameEvent{
			Type:    events.EventSelectDifficulty,
			Payload: &events.DifficultyPayload{Level: in.Level},
		}, true

	case IntentConfirm:
		switch {
		case phase == session.PhaseWaveIdle:
			return events.GameEvent{Type: events.EventStartWave}, true
		case phase == session.PhaseWaveComplete:
			return events.GameEvent{Type: events.EventContinue}, true
		case phase.Terminal():
			return events.GameEvent{Type: events.EventQuit}, true
		}

	case IntentPlace:
		if !phase.AcceptsPlacement() {
			return events.GameEvent{}, false
		}
		return events.GameEvent{
			Type:    events.EventPlaceOrRotate,
			Payload: &events.PlacePayload{At: in.At},
		}, true
	}
	return events.GameEvent{}, false
}
