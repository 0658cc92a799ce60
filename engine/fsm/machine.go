package fsm

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-defense/events"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes:     make(map[StateID]*Node[T]),
		guardReg:  make(map[string]GuardFunc[T]),
		actionReg: make(map[string]ActionFunc[T]),
	}
}

// RegisterGuard adds a predicate function to the registry
func (m *Machine[T]) RegisterGuard(name string, fn GuardFunc[T]) {
	m.guardReg[name] = fn
}

// RegisterAction adds a side-effect function to the registry
func (m *Machine[T]) RegisterAction(name string, fn ActionFunc[T]) {
	m.actionReg[name] = fn
}

// Init enters the initial state, running OnEnter from Root down
func (m *Machine[T]) Init(ctx T) error {
	node, ok := m.nodes[m.InitialStateID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = m.InitialStateID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], node.Path...)

	for _, id := range m.activePath {
		runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Update advances the FSM by dt: OnUpdate of the leaf, then the first passing Tick transition
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if m.activeStateID == StateNone {
		return
	}

	m.timeInState += dt

	runActions(ctx, m.nodes[m.activeStateID].OnUpdate)

	m.fire(ctx, 0)
}

// HandleEvent routes an external event from the leaf up to Root
// Returns true if a transition matched
func (m *Machine[T]) HandleEvent(ctx T, eventType events.EventType) bool {
	if m.activeStateID == StateNone || eventType == 0 {
		return false
	}
	return m.fire(ctx, eventType)
}

// fire takes the first transition matching eventType, bubbling Leaf -> Parent -> Root
func (m *Machine[T]) fire(ctx T, eventType events.EventType) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for i := range node.Transitions {
			trans := &node.Transitions[i]
			if trans.Event != eventType {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.transition(ctx, trans)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs exit, effects, enter for an external transition
// Internal and self transitions only run effects
func (m *Machine[T]) transition(ctx T, trans *Transition[T]) {
	targetID := trans.TargetID
	if targetID == StateNone || targetID == m.activeStateID {
		runActions(ctx, trans.Effects)
		return
	}

	targetNode, ok := m.nodes[targetID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := len(currentPath)
	if len(targetPath) < minLen {
		minLen = len(targetPath)
	}
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	runActions(ctx, trans.Effects)

	fromID := m.activeStateID
	m.activeStateID = targetID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}

	if m.OnTransition != nil {
		m.OnTransition(fromID, targetID)
	}
}

// Reset exits the whole active path and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	for i := len(m.activePath) - 1; i >= 0; i-- {
		runActions(ctx, m.nodes[m.activePath[i]].OnExit)
	}
	m.activeStateID = StateNone
	return m.Init(ctx)
}

// State returns the active leaf state
func (m *Machine[T]) State() StateID {
	return m.activeStateID
}

// StateName returns the active leaf state name, empty before Init
func (m *Machine[T]) StateName() string {
	return m.NameOf(m.activeStateID)
}

// NameOf resolves a state ID to its configured name
func (m *Machine[T]) NameOf(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// InState reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) InState(id StateID) bool {
	for _, active := range m.activePath {
		if active == id {
			return true
		}
	}
	return false
}

// TimeInState returns time spent in the current leaf state
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}

func runActions[T any](ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}
