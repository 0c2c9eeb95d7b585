// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/comalice/fsmx"
)

// GenRingConfig creates a flat machine with n states cycling via "tick" events.
func GenRingConfig(n int) fsmx.Config {
	if n < 1 {
		n = 1
	}
	tbl := fsmx.NewTable()
	for i := 0; i < n; i++ {
		tbl.Add(stateName(i), map[fsmx.EventID]fsmx.StateID{"tick": stateName((i + 1) % n)})
	}
	return fsmx.Config{Initial: stateName(0), States: tbl}
}

// GenWideConfig creates one hub state with numEvents outgoing events, each
// leading to a spoke that returns to the hub on "back".
func GenWideConfig(numEvents int) fsmx.Config {
	if numEvents < 1 {
		numEvents = 1
	}
	hub := make(map[fsmx.EventID]fsmx.StateID, numEvents)
	tbl := fsmx.NewTable().Add("hub", hub)
	for i := 0; i < numEvents; i++ {
		spoke := fsmx.StateID(fmt.Sprintf("spoke%d", i))
		hub[fsmx.EventID(fmt.Sprintf("go%d", i))] = spoke
		tbl.Add(spoke, map[fsmx.EventID]fsmx.StateID{"back": "hub"})
	}
	return fsmx.Config{Initial: "hub", States: tbl}
}

type yamlState struct {
	Transitions map[string]string `yaml:"transitions"`
}

type yamlDefinition struct {
	Initial string               `yaml:"initial"`
	States  map[string]yamlState `yaml:"states"`
}

// GenDefinitionYAML renders the ring machine of n states as a YAML definition.
func GenDefinitionYAML(n int) []byte {
	def := yamlDefinition{Initial: string(stateName(0)), States: make(map[string]yamlState, n)}
	GenRingConfig(n).States.Range(func(id fsmx.StateID, s fsmx.State) bool {
		tr := make(map[string]string, len(s.Transitions))
		for e, dst := range s.Transitions {
			tr[string(e)] = string(dst)
		}
		def.States[string(id)] = yamlState{Transitions: tr}
		return true
	})
	data, err := yaml.Marshal(def)
	if err != nil {
		panic(err)
	}
	return data
}

func stateName(i int) fsmx.StateID {
	return fsmx.StateID(fmt.Sprintf("s%d", i))
}
