// Package harness boots a mocked game-server environment (server facts,
// frozen registries, one world) so protocol code can run outside a live
// server. Construction happens once per Bootstrap; every caller receives the
// same *Environment.
package harness

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"
)

// ErrBootstrap wraps every environment construction failure.
var ErrBootstrap = errors.New("environment bootstrap failed")

//go:embed data/bootstrap.yaml
var defaultData []byte

// Server is the mocked server.
type Server struct {
	Name          string
	Version       string
	BukkitVersion string
	PrimaryThread bool
	Worlds        []*World
}

// World is a mocked world and its per-world configuration.
type World struct {
	Name   string
	Seed   int64
	Config WorldConfig
}

// WorldConfig holds the per-world settings a server would load from its config.
type WorldConfig struct {
	ViewDistance       int
	SimulationDistance int
}

// Environment is the initialized mocked runtime.
type Environment struct {
	Server     *Server
	Registries *RegistrySet
}

// World returns the world with the given name.
func (e *Environment) World(name string) (*World, bool) {
	for _, w := range e.Server.Worlds {
		if w.Name == name {
			return w, true
		}
	}
	return nil, false
}

// Initializer hands out the initialized environment.
type Initializer interface {
	Ensure() (*Environment, error)
}

// Bootstrap builds the environment on first use. A failed build is not retried.
type Bootstrap struct {
	build  func() (*Environment, error)
	logger hclog.Logger

	ready  atomic.Bool
	mu     sync.Mutex
	env    *Environment
	err    error
	builds atomic.Int32
}

// Option configures a Bootstrap.
type Option func(*Bootstrap)

// WithBuilder replaces the default construction.
func WithBuilder(fn func() (*Environment, error)) Option {
	return func(b *Bootstrap) { b.build = fn }
}

// WithData builds the environment from the given bootstrap YAML.
func WithData(data []byte) Option {
	return func(b *Bootstrap) {
		b.build = func() (*Environment, error) { return Build(data) }
	}
}

// WithLogger sets the logger.
func WithLogger(l hclog.Logger) Option {
	return func(b *Bootstrap) { b.logger = l }
}

// New returns a Bootstrap that has not run yet.
func New(opts ...Option) *Bootstrap {
	b := &Bootstrap{logger: hclog.NewNullLogger()}
	b.build = func() (*Environment, error) { return Build(defaultData) }
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Ensure runs the construction exactly once and returns its result.
func (b *Bootstrap) Ensure() (*Environment, error) {
	if b.ready.Load() {
		return b.env, b.err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.ready.Load() {
		return b.env, b.err
	}

	defer b.ready.Store(true)
	b.builds.Add(1)
	b.logger.Debug("building mocked environment")
	env, err := b.safeBuild()
	if err != nil {
		b.err = fmt.Errorf("%w: %w", ErrBootstrap, err)
		b.logger.Error("environment bootstrap failed", "error", err)
		return nil, b.err
	}
	b.env = env
	b.logger.Info("environment ready", "server", env.Server.Name, "version", env.Server.Version)
	return b.env, nil
}

func (b *Bootstrap) safeBuild() (env *Environment, err error) {
	defer func() {
		if r := recover(); r != nil {
			env, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	env, err = b.build()
	if err != nil {
		return nil, err
	}
	switch {
	case env == nil:
		return nil, errors.New("builder returned no environment")
	case env.Server == nil:
		return nil, errors.New("environment has no server")
	case env.Registries == nil:
		return nil, errors.New("environment has no registries")
	}
	return env, nil
}

// Builds reports how many times construction ran.
func (b *Bootstrap) Builds() int { return int(b.builds.Load()) }

type bootstrapData struct {
	Release        string `yaml:"release"`
	Implementation string `yaml:"implementation"`
	Bukkit         string `yaml:"bukkit"`
	Worlds         []struct {
		Name               string `yaml:"name"`
		Seed               int64  `yaml:"seed"`
		ViewDistance       int    `yaml:"view_distance"`
		SimulationDistance int    `yaml:"simulation_distance"`
	} `yaml:"worlds"`
	Registries []struct {
		Name    string              `yaml:"name"`
		Entries []string            `yaml:"entries"`
		Tags    map[string][]string `yaml:"tags"`
	} `yaml:"registries"`
}

// Build constructs an environment from bootstrap YAML.
func Build(data []byte) (*Environment, error) {
	var d bootstrapData
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse bootstrap data: %w", err)
	}
	if d.Release == "" {
		return nil, errors.New("bootstrap data has no release")
	}

	set := &RegistrySet{registries: make(map[string]*Registry, len(d.Registries))}
	for _, r := range d.Registries {
		reg, err := newRegistry(r.Name, r.Entries, r.Tags)
		if err != nil {
			return nil, err
		}
		set.registries[r.Name] = reg
	}

	server := &Server{
		Name:          "Mock Server",
		Version:       d.Implementation + " (MC: " + d.Release + ")",
		BukkitVersion: d.Bukkit,
		PrimaryThread: true,
	}
	for _, w := range d.Worlds {
		server.Worlds = append(server.Worlds, &World{
			Name: w.Name,
			Seed: w.Seed,
			Config: WorldConfig{
				ViewDistance:       w.ViewDistance,
				SimulationDistance: w.SimulationDistance,
			},
		})
	}

	return &Environment{Server: server, Registries: set}, nil
}
