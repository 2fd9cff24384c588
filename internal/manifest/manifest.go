// Package manifest reads the generation manifest: the build-time selection
// surface deciding which versions and capabilities ship in the compiled
// package.
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest selects what the generator compiles in. Everything is opt-in: an
// empty manifest produces a store with no tables and no versions.
type Manifest struct {
	Tables   bool     `yaml:"tables"`
	Versions []string `yaml:"versions"`
}

// Load reads a manifest file. Unknown keys are rejected so a typo cannot
// silently disable a capability.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}
