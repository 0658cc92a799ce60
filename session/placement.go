package session

import (
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-defense/components"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/events"
)

// placeOrRotate rotates the tower at c, or places a new one there
// Rejections leave all state unchanged and emit EventPlacementRejected
func (s *Session) placeOrRotate(c core.Coord) {
	w := s.world

	if !w.Bounds.InInterior(c) {
		s.reject(c, events.RejectOutOfBounds)
		return
	}

	if i, ok := w.TowerAt(c); ok {
		t := &w.Towers[i]
		t.Rotate()
		w.PushEvent(events.EventTowerRotated, &events.TowerPayload{Slot: i, At: c, Facing: t.Facing})
		return
	}

	if w.Path.Contains(c) {
		s.reject(c, events.RejectOnPath)
		return
	}

	if !w.State.Spend(w.Tuning.TowerCost) {
		s.reject(c, events.RejectInsufficientGold)
		return
	}

	facing := w.Tuning.TowerFacing
	w.Towers = append(w.Towers, components.NewTower(c, facing, s.clock.Now()))
	w.PushEvent(events.EventTowerPlaced, &events.TowerPayload{Slot: len(w.Towers) - 1, At: c, Facing: facing})

	log.WithFields(log.Fields{
		"at":   c.String(),
		"gold": w.State.Gold,
	}).Debug("tower placed")
}

func (s *Session) reject(c core.Coord, reason events.RejectReason) {
	s.world.PushEvent(events.EventPlacementRejected, &events.RejectPayload{At: c, Reason: reason})
	log.WithFields(log.Fields{
		"at":     c.String(),
		"reason": string(reason),
	}).Debug("placement rejected")
}
