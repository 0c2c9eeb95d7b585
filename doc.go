// Package fsmx is a small finite-state machine with linear undo/redo history.
//
// A Machine is built from a Config: the initial state and a state table that
// maps each state name to the events it reacts to. The machine moves either
// by following an event out of the active state (Trigger) or by jumping to
// any declared state (ChangeState). Every move is recorded; Undo and Redo walk
// that record, and a new move made after an Undo discards the redo branch.
//
//	m, err := fsmx.New(fsmx.Config{
//		Initial: "off",
//		States: fsmx.NewTable().
//			Add("off", map[fsmx.EventID]fsmx.StateID{"flip": "on"}).
//			Add("on", map[fsmx.EventID]fsmx.StateID{"flip": "off"}),
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	_ = m.Trigger("flip") // on
//	m.Undo()              // off
//
// State tables can also be declared with NewBuilder, or read from YAML and
// JSON with the definition package. Declaration order is preserved and is the
// order reported by States and StatesFor.
//
// A Machine does no locking. Embedders that share one between goroutines must
// serialize access.
package fsmx
