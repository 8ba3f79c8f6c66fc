package harness

import (
	"errors"
	"fmt"
)

// ErrUnknownRegistry is returned for registry or tag family names that are not loaded.
var ErrUnknownRegistry = errors.New("unknown registry")

// tagFamilies maps tag namespaces to the registry that backs them.
var tagFamilies = map[string]string{
	"blocks":       "minecraft:block",
	"items":        "minecraft:item",
	"fluids":       "minecraft:fluid",
	"entity_types": "minecraft:entity_type",
}

// Registry is a frozen id <-> key table with tags.
type Registry struct {
	name    string
	entries []string
	ids     map[string]int32
	tags    map[string][]string
}

func newRegistry(name string, entries []string, tags map[string][]string) (*Registry, error) {
	r := &Registry{
		name:    name,
		entries: append([]string(nil), entries...),
		ids:     make(map[string]int32, len(entries)),
		tags:    make(map[string][]string, len(tags)),
	}
	for i, e := range entries {
		if _, dup := r.ids[e]; dup {
			return nil, fmt.Errorf("registry %s: duplicate entry %q", name, e)
		}
		r.ids[e] = int32(i)
	}
	for tag, members := range tags {
		for _, m := range members {
			if _, ok := r.ids[m]; !ok {
				return nil, fmt.Errorf("registry %s: tag %s references unknown entry %q", name, tag, m)
			}
		}
		r.tags[tag] = append([]string(nil), members...)
	}
	return r, nil
}

func (r *Registry) Name() string { return r.name }

func (r *Registry) Len() int { return len(r.entries) }

// Key returns the entry registered under id.
func (r *Registry) Key(id int32) (string, bool) {
	if id < 0 || int(id) >= len(r.entries) {
		return "", false
	}
	return r.entries[id], true
}

// ID returns the numeric id of key.
func (r *Registry) ID(key string) (int32, bool) {
	id, ok := r.ids[key]
	return id, ok
}

// Tag returns the members of a tag, or false when the tag is absent.
func (r *Registry) Tag(key string) ([]string, bool) {
	members, ok := r.tags[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), members...), true
}

// RegistrySet is the frozen set of registries of the mocked server.
type RegistrySet struct {
	registries map[string]*Registry
}

// Registry looks up a registry by name.
func (s *RegistrySet) Registry(name string) (*Registry, error) {
	r, ok := s.registries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRegistry, name)
	}
	return r, nil
}

// Key resolves id in the named registry.
func (s *RegistrySet) Key(registry string, id int32) (string, bool) {
	r, ok := s.registries[registry]
	if !ok {
		return "", false
	}
	return r.Key(id)
}

// ID resolves key in the named registry.
func (s *RegistrySet) ID(registry string, key string) (int32, bool) {
	r, ok := s.registries[registry]
	if !ok {
		return 0, false
	}
	return r.ID(key)
}

// Tag resolves a tag within a tag family ("blocks", "items", "fluids",
// "entity_types"). A missing tag yields nil without error; an unknown family
// is an error.
func (s *RegistrySet) Tag(family, key string) ([]string, error) {
	name, ok := tagFamilies[family]
	if !ok {
		return nil, fmt.Errorf("%w: tag family %q", ErrUnknownRegistry, family)
	}
	r, err := s.Registry(name)
	if err != nil {
		return nil, err
	}
	members, _ := r.Tag(key)
	return members, nil
}
