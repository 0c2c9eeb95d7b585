package fsmx

import (
	"errors"
	"fmt"
)

var (
	// ErrStateNotFound is the sentinel behind StateNotFoundError.
	ErrStateNotFound = errors.New("state not found")
	// ErrEventNotFound is the sentinel behind EventNotFoundError.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidConfig wraps every problem reported by Config.Validate.
	ErrInvalidConfig = errors.New("invalid machine config")
)

// StateNotFoundError is returned by ChangeState when the target state is not
// part of the state table.
type StateNotFoundError struct {
	State StateID
}

func (e *StateNotFoundError) Error() string {
	return fmt.Sprintf("state %q doesn't exist", e.State)
}

func (e *StateNotFoundError) Unwrap() error {
	return ErrStateNotFound
}

// EventNotFoundError is returned by Trigger when the current state has no
// transition for the event.
type EventNotFoundError struct {
	State StateID
	Event EventID
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("event %q doesn't exist in state %q", e.Event, e.State)
}

func (e *EventNotFoundError) Unwrap() error {
	return ErrEventNotFound
}
