package fsm

import (
	"time"

	"github.com/lixenwraith/vi-defense/events"
)

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is a generic single-region Hierarchical Finite State Machine
// T is the context type passed to actions and guards (e.g., *session.Session)
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]

	// Configuration
	InitialStateID StateID // Stored during load for reset/init

	// Runtime State
	activeStateID StateID       // The current leaf node
	timeInState   time.Duration // Time elapsed in current state
	activePath    []StateID     // Stack of active states (Root -> Child -> Leaf)

	// Observer called after every state change, nil = none
	OnTransition func(from, to StateID)

	// Dependency Injection
	guardReg  map[string]GuardFunc[T]
	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter  []Action[T]
	OnUpdate []Action[T]
	OnExit   []Action[T]

	// Transitions sorted by evaluation priority
	Transitions []Transition[T]
}

// Transition defines a link between states
// TargetID StateNone makes an internal transition: effects run, no exit/enter
type Transition[T any] struct {
	TargetID StateID
	Event    events.EventType // 0 = Tick (auto-transition)
	Guard    GuardFunc[T]     // nil = Always true
	Effects  []Action[T]      // Run between exit and enter
}

// Action represents a side-effect
type Action[T any] struct {
	Name string
	Func ActionFunc[T]
	Args map[string]any // Optional static arguments from config
}

// GuardFunc returns true if the transition should occur
type GuardFunc[T any] func(ctx T) bool

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args map[string]any)
