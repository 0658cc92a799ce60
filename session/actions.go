package session

import (
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
	"github.com/lixenwraith/vi-defense/route"
)

// registerGuards binds the guard names used by the state graph
func (s *Session) registerGuards() {
	m := s.machine

	m.RegisterGuard("ValidDifficulty", func(s *Session) bool {
		p, ok := payload[*events.DifficultyPayload](s)
		if !ok {
			return false
		}
		_, err := core.ParseDifficulty(p.Level)
		if err != nil {
			log.WithField("level", p.Level).Debug("difficulty rejected")
		}
		return err == nil
	})

	m.RegisterGuard("LivesDepleted", func(s *Session) bool {
		return s.world.State.Lives <= 0
	})

	m.RegisterGuard("WaveCleared", func(s *Session) bool {
		return s.world.WaveCleared()
	})

	// Clearing this wave reaches the target count
	m.RegisterGuard("FinalWaveCleared", func(s *Session) bool {
		return s.world.WaveCleared() && s.world.State.WavesCompleted+1 >= s.world.Tuning.TargetWaves
	})
}

// registerActions binds the action names used by the state graph
func (s *Session) registerActions() {
	m := s.machine

	m.RegisterAction("InitSession", func(s *Session, _ map[string]any) {
		p, _ := payload[*events.DifficultyPayload](s)
		d := core.Difficulty(p.Level)
		path := route.Build(d)
		s.world.Reset(path, engine.NewGameState(d, s.world.Tuning, s.clock.Now()))
		s.lastWave = events.WavePayload{}
		s.ended = false

		state := s.world.State
		log.WithFields(log.Fields{
			"difficulty": d.String(),
			"enemies":    state.TotalEnemies,
			"gold":       state.Gold,
			"path_len":   path.Len(),
		}).Info("session started")
	})

	m.RegisterAction("ResetWave", func(s *Session, _ map[string]any) {
		s.world.ResetWave()
	})

	m.RegisterAction("BeginWave", func(s *Session, _ map[string]any) {
		s.world.State.WaveStarted = true
		log.WithFields(log.Fields{
			"wave":    s.world.State.WaveNumber,
			"enemies": s.world.State.TotalEnemies,
		}).Info("wave started")
	})

	m.RegisterAction("AdvanceTick", func(s *Session, _ map[string]any) {
		s.world.Update()
	})

	m.RegisterAction("AwardWaveBonus", func(s *Session, _ map[string]any) {
		state := s.world.State
		bonus := s.world.Tuning.WaveBonus
		state.Gold += bonus
		state.WavesCompleted++
		state.WaveComplete = true

		s.lastWave = events.WavePayload{
			Wave:  state.WaveNumber,
			Bonus: bonus,
			Gold:  state.Gold,
		}
		wave := s.lastWave
		s.world.PushEvent(events.EventWaveCleared, &wave)

		log.WithFields(log.Fields{
			"wave":  state.WaveNumber,
			"gold":  state.Gold,
			"lives": state.Lives,
		}).Info("wave complete")
	})

	m.RegisterAction("AdvanceWave", func(s *Session, _ map[string]any) {
		state := s.world.State
		state.WaveNumber++
		state.TotalEnemies += s.world.Tuning.WaveIncrement
	})

	m.RegisterAction("PauseClock", func(s *Session, _ map[string]any) {
		s.clock.Pause()
	})

	m.RegisterAction("ResumeClock", func(s *Session, _ map[string]any) {
		s.clock.Resume()
	})

	m.RegisterAction("PlaceOrRotate", func(s *Session, _ map[string]any) {
		p, ok := payload[*events.PlacePayload](s)
		if !ok {
			return
		}
		s.placeOrRotate(p.At)
	})

	m.RegisterAction("EndSession", func(s *Session, args map[string]any) {
		if s.ended {
			return
		}
		s.ended = true

		won, _ := args["won"].(bool)
		end := &events.SessionEndPayload{Won: won}
		if state := s.world.State; state != nil {
			end.WavesCompleted = state.WavesCompleted
			end.Lives = state.Lives
		}
		s.world.PushEvent(events.EventSessionEnded, end)

		log.WithFields(log.Fields{
			"won":   end.Won,
			"waves": end.WavesCompleted,
			"lives": end.Lives,
		}).Info("session ended")
	})
}

// payload extracts the in-flight command payload as type P
func payload[P any](s *Session) (P, bool) {
	var zero P
	if s.current == nil {
		return zero, false
	}
	p, ok := s.current.Payload.(P)
	return p, ok
}
