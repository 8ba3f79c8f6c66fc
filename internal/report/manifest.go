// Package report records what a generation run produced as a YAML manifest.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/seitarof/gen-wrapper/internal/resolver"
)

// Field is the outcome for one raw field.
type Field struct {
	Name        string   `yaml:"name"`
	Result      string   `yaml:"result"`
	Accessor    string   `yaml:"accessor,omitempty"`
	Index       *int     `yaml:"index,omitempty"`
	Type        string   `yaml:"type,omitempty"`
	Candidates  []string `yaml:"candidates,omitempty"`
	ClashesWith string   `yaml:"clashes_with,omitempty"`
}

// Wrapper is one generated wrapper.
type Wrapper struct {
	Packet  string  `yaml:"packet"`
	Wrapper string  `yaml:"wrapper"`
	Import  string  `yaml:"import"`
	File    string  `yaml:"file"`
	Fields  []Field `yaml:"fields"`
}

// Skipped is a catalog entry that produced no wrapper.
type Skipped struct {
	Packet string `yaml:"packet"`
	Reason string `yaml:"reason"`
}

// Manifest is the document written after a run.
type Manifest struct {
	Version  string    `yaml:"version"`
	Wrappers []Wrapper `yaml:"wrappers"`
	Skipped  []Skipped `yaml:"skipped,omitempty"`
}

// New returns an empty manifest for the given generator version.
func New(version string) *Manifest {
	return &Manifest{Version: version}
}

// Add records a generated wrapper. file is the path the wrapper was written to.
func (m *Manifest) Add(plan *resolver.WrapperPlan, file string) {
	w := Wrapper{
		Packet:  plan.Packet.Name,
		Wrapper: plan.Name,
		Import:  plan.Destination.ImportPath,
		File:    filepath.ToSlash(file),
		Fields:  make([]Field, 0, len(plan.Accessors)),
	}
	for _, a := range plan.Accessors {
		f := Field{Name: a.Field.Name, Result: a.Strategy.String()}
		switch a.Strategy {
		case resolver.StrategyAccessor:
			index := a.Index
			f.Accessor = a.Method
			f.Index = &index
			f.Type = a.Type.String()
		case resolver.StrategyAmbiguous:
			f.Candidates = append([]string(nil), a.Candidates...)
		case resolver.StrategyClash:
			f.ClashesWith = a.ClashesWith
		}
		w.Fields = append(w.Fields, f)
	}
	m.Wrappers = append(m.Wrappers, w)
}

// Skip records a catalog entry that was not generated.
func (m *Manifest) Skip(packet, reason string) {
	m.Skipped = append(m.Skipped, Skipped{Packet: packet, Reason: reason})
}

// Marshal encodes the manifest with wrappers sorted by packet name.
func (m *Manifest) Marshal() ([]byte, error) {
	sorted := *m
	sorted.Wrappers = append([]Wrapper(nil), m.Wrappers...)
	sort.Slice(sorted.Wrappers, func(i, j int) bool {
		return sorted.Wrappers[i].Packet < sorted.Wrappers[j].Packet
	})
	return yaml.Marshal(&sorted)
}

// WriteFile writes the manifest to filename, creating parent directories.
func (m *Manifest) WriteFile(filename string) error {
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads a manifest written by WriteFile.
func Load(filename string) (*Manifest, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", filename, err)
	}
	return &m, nil
}
