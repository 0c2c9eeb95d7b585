package fsmx

import (
	"log/slog"
	"maps"

	"github.com/comalice/fsmx/internal/core"
)

// Machine is a finite-state machine with a linear undo/redo history.
//
// A Machine is not safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
type Machine struct {
	initial  StateID
	states   *Table
	history  *core.HistoryManager[StateID]
	logger   *slog.Logger
	validate bool
}

// New creates a Machine positioned on cfg.Initial with a one-entry history.
//
// The state table is copied; later changes to cfg.States do not affect the
// machine. Unless WithValidation is given, the config is not checked and New
// never fails.
func New(cfg Config, opts ...Option) (*Machine, error) {
	m := &Machine{
		initial: cfg.Initial,
		states:  cfg.States.Clone(),
		logger:  slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.validate {
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	m.history = core.NewHistoryManager(m.initial)
	return m, nil
}

// MustNew is like New but panics on error.
func MustNew(cfg Config, opts ...Option) *Machine {
	m, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return m
}

// State returns the active state.
func (m *Machine) State() StateID {
	return m.history.Current()
}

// Initial returns the state the machine starts from and resets to.
func (m *Machine) Initial() StateID {
	return m.initial
}

// ChangeState moves directly to state, ignoring the transition rules.
// Any redo entries are discarded. Returns a *StateNotFoundError, and changes
// nothing, if state is not in the table.
func (m *Machine) ChangeState(state StateID) error {
	if !m.states.Contains(state) {
		return &StateNotFoundError{State: state}
	}
	m.enter(state, "change")
	return nil
}

// Trigger follows the transition for event out of the current state.
// Any redo entries are discarded. Returns an *EventNotFoundError, and changes
// nothing, if the current state has no such transition.
func (m *Machine) Trigger(event EventID) error {
	from := m.State()
	s, _ := m.states.Lookup(from)
	dst, ok := s.Target(event)
	if !ok {
		return &EventNotFoundError{State: from, Event: event}
	}
	m.enter(dst, "trigger", slog.String("event", string(event)))
	return nil
}

func (m *Machine) enter(to StateID, via string, attrs ...any) {
	from := m.State()
	m.history.Push(to)
	m.logMove(from, to, via, attrs...)
}

func (m *Machine) logMove(from, to StateID, via string, attrs ...any) {
	m.logger.Debug("state changed",
		append([]any{
			slog.String("from", string(from)),
			slog.String("to", string(to)),
			slog.String("via", via),
			slog.Int("cursor", m.history.Cursor()),
		}, attrs...)...)
}

// Reset returns to the initial state and forgets all history.
func (m *Machine) Reset() {
	m.history.Reset(m.initial)
	m.logger.Debug("machine reset", slog.String("state", string(m.initial)))
}

// States returns every state name in declaration order.
func (m *Machine) States() []StateID {
	return m.states.Names()
}

// StatesFor returns, in declaration order, the states that have a transition
// for event. An empty event selects every state, like States.
func (m *Machine) StatesFor(event EventID) []StateID {
	if event == "" {
		return m.States()
	}
	out := []StateID{}
	m.states.Range(func(id StateID, s State) bool {
		if s.Handles(event) {
			out = append(out, id)
		}
		return true
	})
	return out
}

// Transitions returns a copy of the active state's transition mapping.
func (m *Machine) Transitions() map[EventID]StateID {
	s, _ := m.states.Lookup(m.State())
	out := maps.Clone(s.Transitions)
	if out == nil {
		out = map[EventID]StateID{}
	}
	return out
}

// Undo steps back to the previous entry in history.
// Returns false, and changes nothing, when there is nothing to undo.
func (m *Machine) Undo() bool {
	from := m.State()
	to, ok := m.history.Back()
	if ok {
		m.logMove(from, to, "undo")
	}
	return ok
}

// Redo steps forward to the next entry in history.
// Returns false, and changes nothing, when there is nothing to redo.
func (m *Machine) Redo() bool {
	from := m.State()
	to, ok := m.history.Forward()
	if ok {
		m.logMove(from, to, "redo")
	}
	return ok
}

// CanUndo reports whether Undo would move.
func (m *Machine) CanUndo() bool {
	return m.history.CanBack()
}

// CanRedo reports whether Redo would move.
func (m *Machine) CanRedo() bool {
	return m.history.CanForward()
}

// ClearHistory drops all undo and redo entries. The active state is kept.
func (m *Machine) ClearHistory() {
	m.history.Collapse()
	m.logger.Debug("history cleared", slog.String("state", string(m.State())))
}

// History returns a copy of the visited states, oldest first.
func (m *Machine) History() []StateID {
	return m.history.Entries()
}

// Cursor returns the index in History of the active state.
func (m *Machine) Cursor() int {
	return m.history.Cursor()
}
