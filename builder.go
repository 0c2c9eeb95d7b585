package fsmx

// Builder provides a fluent API for declaring a state table in code.
// States are declared in call order, which is the order States reports.
type Builder struct {
	initial StateID
	table   *Table
}

// StateBuilder configures the transitions of a single state.
type StateBuilder struct {
	b  *Builder
	id StateID
}

// NewBuilder creates a builder whose machine starts in initial.
func NewBuilder(initial StateID) *Builder {
	return &Builder{
		initial: initial,
		table:   NewTable(),
	}
}

// State declares id, or returns the existing declaration.
func (b *Builder) State(id StateID) *StateBuilder {
	if !b.table.Contains(id) {
		b.table.Add(id, map[EventID]StateID{})
	}
	return &StateBuilder{b: b, id: id}
}

// On adds a transition from this state to target when event fires.
// Declaring the same event twice keeps the last target.
func (sb *StateBuilder) On(event EventID, target StateID) *StateBuilder {
	s, _ := sb.b.table.Lookup(sb.id)
	s.Transitions[event] = target
	return sb
}

// State declares another state; sugar for chaining off a StateBuilder.
func (sb *StateBuilder) State(id StateID) *StateBuilder {
	return sb.b.State(id)
}

// Build ends a chain; see Builder.Build.
func (sb *StateBuilder) Build() (Config, error) {
	return sb.b.Build()
}

// Machine ends a chain; see Builder.Machine.
func (sb *StateBuilder) Machine(opts ...Option) (*Machine, error) {
	return sb.b.Machine(opts...)
}

// Config returns the declared configuration without validating it.
func (b *Builder) Config() Config {
	return Config{Initial: b.initial, States: b.table.Clone()}
}

// Build validates the declared configuration and returns it.
// Unknown targets and a missing initial state are reported as ErrInvalidConfig.
func (b *Builder) Build() (Config, error) {
	cfg := b.Config()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Machine builds a validated Machine from the declared configuration.
func (b *Builder) Machine(opts ...Option) (*Machine, error) {
	cfg, err := b.Build()
	if err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}
