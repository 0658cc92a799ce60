package events

import (
	"strings"
)

var (
	nameToType = map[string]EventType{}
	typeToName = map[EventType]string{}
)

func init() {
	RegisterType("Quit", EventQuit)
	RegisterType("SelectDifficulty", EventSelectDifficulty)
	RegisterType("StartWave", EventStartWave)
	RegisterType("PlaceOrRotate", EventPlaceOrRotate)
	RegisterType("Continue", EventContinue)
	RegisterType("EnemySpawned", EventEnemySpawned)
	RegisterType("EnemyLeaked", EventEnemyLeaked)
	RegisterType("EnemyKilled", EventEnemyKilled)
	RegisterType("TowerFired", EventTowerFired)
	RegisterType("TowerPlaced", EventTowerPlaced)
	RegisterType("TowerRotated", EventTowerRotated)
	RegisterType("PlacementRejected", EventPlacementRejected)
	RegisterType("WaveCleared", EventWaveCleared)
	RegisterType("SessionEnded", EventSessionEnded)
}

// RegisterType maps a string name to an EventType
func RegisterType(name string, et EventType) {
	nameToType[name] = et
	typeToName[et] = name
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	// Special case for FSM "Tick"
	if strings.EqualFold(name, "Tick") {
		return EventNone, true
	}
	et, ok := nameToType[name]
	return et, ok
}

// GetEventName returns the string name for an EventType
func GetEventName(et EventType) string {
	if et == EventNone {
		return "Tick"
	}
	return typeToName[et]
}
