package session

import (
	_ "embed"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/engine/fsm"
	"github.com/lixenwraith/vi-defense/events"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/systems"
)

//go:embed session.toml
var defaultGraph []byte

// Session owns one game from difficulty menu to exit
// Not safe for concurrent use except Push, which only touches the lock-free queue
type Session struct {
	world   *engine.World
	clock   *engine.PausableClock
	queue   *events.EventQueue
	router  *events.Router[*engine.World]
	machine *fsm.Machine[*Session]

	phases map[fsm.StateID]Phase

	// current is the command being handled, read by guards and actions
	current *events.GameEvent

	lastWave events.WavePayload
	ended    bool
}

// New builds a session on the embedded state graph and enters the difficulty menu
func New(tuning *parameter.Tuning, base engine.TimeProvider) (*Session, error) {
	return NewWithGraph(tuning, base, defaultGraph)
}

// NewWithGraph builds a session on a caller-supplied state graph
func NewWithGraph(tuning *parameter.Tuning, base engine.TimeProvider, graph []byte) (*Session, error) {
	if err := tuning.Validate(); err != nil {
		return nil, err
	}

	clock := engine.NewPausableClock(base)
	queue := events.NewEventQueue()
	world := engine.NewWorld(tuning, clock, queue)
	systems.Register(world)

	s := &Session{
		world:   world,
		clock:   clock,
		queue:   queue,
		router:  events.NewRouter[*engine.World](),
		machine: fsm.NewMachine[*Session](),
		phases:  make(map[fsm.StateID]Phase),
	}

	s.registerGuards()
	s.registerActions()

	if err := s.machine.LoadConfig(graph); err != nil {
		return nil, fmt.Errorf("session graph: %w", err)
	}
	for name, phase := range phaseStates {
		id, ok := s.machine.GetStateID(name)
		if !ok {
			return nil, fmt.Errorf("session graph: missing state '%s'", name)
		}
		s.phases[id] = phase
	}

	s.machine.OnTransition = func(from, to fsm.StateID) {
		log.WithFields(log.Fields{
			"from": s.machine.NameOf(from),
			"to":   s.machine.NameOf(to),
		}).Info("session transition")
	}

	if err := s.machine.Init(s); err != nil {
		return nil, fmt.Errorf("session init: %w", err)
	}
	return s, nil
}

// Register subscribes a notification handler
func (s *Session) Register(h events.Handler[*engine.World]) {
	s.router.Register(h)
}

// Push enqueues a command or notification, stamped with game time
func (s *Session) Push(ev events.GameEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = s.clock.Now()
	}
	if s.world.State != nil {
		ev.Tick = s.world.State.Ticks
	}
	s.queue.Push(ev)
}

// Process drains the queue: commands drive the state machine, notifications go to handlers
// Notifications emitted while handling a command are drained in the same call
func (s *Session) Process() {
	for {
		batch := s.queue.Consume()
		if len(batch) == 0 {
			return
		}
		for i := range batch {
			ev := batch[i]
			if ev.Type.IsCommand() {
				s.command(ev)
				continue
			}
			s.router.Dispatch(s.world, ev)
		}
	}
}

func (s *Session) command(ev events.GameEvent) {
	s.current = &ev
	handled := s.machine.HandleEvent(s, ev.Type)
	s.current = nil

	if !handled {
		log.WithFields(log.Fields{
			"event": ev.Type.String(),
			"state": s.machine.StateName(),
		}).Debug("command ignored")
	}
}

// Tick advances the state machine by one simulation quantum
// Only WaveActive runs the simulation; other states ignore ticks
func (s *Session) Tick() {
	s.machine.Update(s, s.world.Tuning.TickInterval)
}

// Phase returns the current session phase
func (s *Session) Phase() Phase {
	return s.phases[s.machine.State()]
}

// Done reports whether the player has quit
func (s *Session) Done() bool {
	return s.Phase() == PhaseQuit
}

// World exposes the simulation state
func (s *Session) World() *engine.World {
	return s.world
}

// Clock returns the pausable game clock
func (s *Session) Clock() *engine.PausableClock {
	return s.clock
}

// View is what the presentation layer draws for one frame
type View struct {
	engine.Snapshot
	Phase Phase

	// LastWave is the most recent completed wave, valid from WaveComplete on
	LastWave events.WavePayload
}

// View copies the current state for rendering
func (s *Session) View() View {
	return View{
		Snapshot: s.world.Snapshot(),
		Phase:    s.Phase(),
		LastWave: s.lastWave,
	}
}
