package fsmx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// StateID names a state in the state table.
type StateID string

// EventID names an event that may trigger a transition.
type EventID string

// State is a state definition: the events it reacts to and where each one leads.
type State struct {
	Transitions map[EventID]StateID `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
}

// Target returns the destination of event, if the state handles it.
func (s State) Target(event EventID) (StateID, bool) {
	dst, ok := s.Transitions[event]
	return dst, ok
}

// Handles reports whether the state has a transition for event.
func (s State) Handles(event EventID) bool {
	_, ok := s.Transitions[event]
	return ok
}

// Table is the state table: an ordered mapping from state name to definition.
// Iteration follows declaration order. A nil *Table reads as empty; Add needs
// a non-nil receiver.
type Table struct {
	states *orderedmap.OrderedMap[StateID, State]
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{states: orderedmap.New[StateID, State]()}
}

// Add declares a state with the given transitions. Re-declaring a state
// replaces its transitions but keeps its original position.
func (t *Table) Add(id StateID, transitions map[EventID]StateID) *Table {
	if t.states == nil {
		t.states = orderedmap.New[StateID, State]()
	}
	t.states.Set(id, State{Transitions: transitions})
	return t
}

// Lookup returns the definition of id.
func (t *Table) Lookup(id StateID) (State, bool) {
	if t == nil || t.states == nil {
		return State{}, false
	}
	return t.states.Get(id)
}

// Contains reports whether id is declared in the table.
func (t *Table) Contains(id StateID) bool {
	_, ok := t.Lookup(id)
	return ok
}

// Len returns the number of declared states.
func (t *Table) Len() int {
	if t == nil || t.states == nil {
		return 0
	}
	return t.states.Len()
}

// Range calls fn for every state in declaration order until fn returns false.
func (t *Table) Range(fn func(id StateID, s State) bool) {
	if t == nil || t.states == nil {
		return
	}
	for pair := t.states.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Names returns all state names in declaration order.
func (t *Table) Names() []StateID {
	names := make([]StateID, 0, t.Len())
	t.Range(func(id StateID, _ State) bool {
		names = append(names, id)
		return true
	})
	return names
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	out := NewTable()
	t.Range(func(id StateID, s State) bool {
		out.Add(id, maps.Clone(s.Transitions))
		return true
	})
	return out
}

// UnmarshalYAML decodes a mapping of state definitions, keeping key order.
func (t *Table) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.AliasNode && value.Alias != nil {
		value = value.Alias
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: states must be a mapping", value.Line)
	}

	states := orderedmap.New[StateID, State](len(value.Content) / 2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		keyNode, valNode := value.Content[i], value.Content[i+1]

		var id StateID
		if err := keyNode.Decode(&id); err != nil {
			return fmt.Errorf("line %d: state name: %w", keyNode.Line, err)
		}
		if _, dup := states.Get(id); dup {
			return fmt.Errorf("line %d: state %q declared twice", keyNode.Line, id)
		}

		if err := checkStateFields(valNode); err != nil {
			return fmt.Errorf("state %q: %w", id, err)
		}
		var s State
		if err := valNode.Decode(&s); err != nil {
			return fmt.Errorf("state %q: %w", id, err)
		}
		states.Set(id, s)
	}

	t.states = states
	return nil
}

// checkStateFields rejects keys of a state mapping other than transitions.
func checkStateFields(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if key := node.Content[i]; key.Value != "transitions" {
			return fmt.Errorf("line %d: unknown field %q", key.Line, key.Value)
		}
	}
	return nil
}

// UnmarshalJSON decodes a JSON object of state definitions, keeping key order.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return errors.New("states must be an object")
	}

	states := orderedmap.New[StateID, State]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id := StateID(tok.(string))
		if _, dup := states.Get(id); dup {
			return fmt.Errorf("state %q declared twice", id)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("state %q: %w", id, err)
		}
		sdec := json.NewDecoder(bytes.NewReader(raw))
		sdec.DisallowUnknownFields()
		var s State
		if err := sdec.Decode(&s); err != nil {
			return fmt.Errorf("state %q: %w", id, err)
		}
		states.Set(id, s)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	t.states = states
	return nil
}

// Config is what a Machine is built from.
type Config struct {
	Initial StateID `json:"initial" yaml:"initial"`
	States  *Table  `json:"states" yaml:"states"`
}

// Validate checks that Initial names a declared state and that every
// transition leads to a declared state. All problems are reported together,
// wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	var errs []error

	if c.States.Len() == 0 {
		errs = append(errs, errors.New("states table is empty"))
	}
	if c.Initial == "" {
		errs = append(errs, errors.New("initial state is required"))
	} else if !c.States.Contains(c.Initial) {
		errs = append(errs, fmt.Errorf("initial state %q not found in states", c.Initial))
	}

	c.States.Range(func(id StateID, s State) bool {
		if id == "" {
			errs = append(errs, errors.New("state with empty name"))
		}
		for _, event := range slices.Sorted(maps.Keys(s.Transitions)) {
			dst := s.Transitions[event]
			switch {
			case event == "":
				errs = append(errs, fmt.Errorf("state %q: transition with empty event name", id))
			case !c.States.Contains(dst):
				errs = append(errs, fmt.Errorf("state %q: event %q targets unknown state %q", id, event, dst))
			}
		}
		return true
	})

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
