// Package definition reads fsmx machine definitions from YAML, JSON or
// already-decoded maps.
//
// The format mirrors fsmx.Config:
//
//	initial: off
//	states:
//	  off:
//	    transitions:
//	      flip: on
//	  on:
//	    transitions:
//	      flip: off
//
// YAML and JSON keep the declaration order of states. Maps carry no order,
// so Decode declares states sorted by name.
package definition

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/comalice/fsmx"
)

// Format selects the encoding of a definition.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// ErrUnknownFormat is returned for file extensions and formats that have no decoder.
var ErrUnknownFormat = errors.New("unknown definition format")

// FormatFromPath picks a Format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Parse decodes data in the given format. The result is not validated.
func Parse(data []byte, format Format) (fsmx.Config, error) {
	var cfg fsmx.Config
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return fsmx.Config{}, fmt.Errorf("yaml unmarshal: %w", err)
		}
	case JSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return fsmx.Config{}, fmt.Errorf("json unmarshal: %w", err)
		}
	default:
		return fsmx.Config{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return cfg, nil
}

// Load parses data and validates the result.
func Load(data []byte, format Format) (fsmx.Config, error) {
	cfg, err := Parse(data, format)
	if err != nil {
		return fsmx.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return fsmx.Config{}, err
	}
	return cfg, nil
}

// LoadFile reads, parses and validates the definition at path.
// The format is chosen from the file extension.
func LoadFile(path string) (fsmx.Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return fsmx.Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fsmx.Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	cfg, err := Load(data, format)
	if err != nil {
		return fsmx.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

type rawDefinition struct {
	Initial fsmx.StateID                `mapstructure:"initial"`
	States  map[fsmx.StateID]fsmx.State `mapstructure:"states"`
}

// Decode builds a Config from a generic map, as produced by other config
// systems. States are declared in name order. The result is not validated.
func Decode(input map[string]any) (fsmx.Config, error) {
	var raw rawDefinition
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &raw,
		ErrorUnused: true,
	})
	if err != nil {
		return fsmx.Config{}, fmt.Errorf("mapstructure decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fsmx.Config{}, fmt.Errorf("mapstructure decode: %w", err)
	}

	names := make([]fsmx.StateID, 0, len(raw.States))
	for id := range raw.States {
		names = append(names, id)
	}
	slices.Sort(names)

	tbl := fsmx.NewTable()
	for _, id := range names {
		tbl.Add(id, raw.States[id].Transitions)
	}
	return fsmx.Config{Initial: raw.Initial, States: tbl}, nil
}
