package cli

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"sort"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/seitarof/gen-wrapper/internal/generator"
	"github.com/seitarof/gen-wrapper/internal/harness"
	"github.com/seitarof/gen-wrapper/internal/matcher"
	"github.com/seitarof/gen-wrapper/internal/metrics"
	"github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/internal/report"
	"github.com/seitarof/gen-wrapper/internal/resolver"
	"github.com/seitarof/gen-wrapper/pkg/container"
	"github.com/seitarof/gen-wrapper/pkg/protocol"
)

// Skip reasons.
const (
	reasonUnsupported = "unsupported"
	reasonDeprecated  = "deprecated"
	reasonFiltered    = "filtered"
)

// ErrDestinationTaken reports a wrapper whose output file was already written
// for another packet in the same run.
var ErrDestinationTaken = errors.New("destination already written")

// Catalog enumerates the packet types to generate wrappers for.
type Catalog interface {
	Values() []protocol.PacketType
}

// ContainerFactory builds the container the matcher probes for one packet type.
type ContainerFactory func(pt protocol.PacketType, regs container.Registries) (any, error)

// Runner orchestrates parser/matcher/resolver/generator layers over a catalog.
type Runner interface {
	Run(cfg *Config) (*Summary, error)
	ListAccessors(cfg *Config, w io.Writer) error
}

// Summary reports the outcome of a batch.
type Summary struct {
	Files     []string
	Generated int
	Skipped   int
	// Failures holds one error per catalog entry that could not be generated,
	// plus manifest and metrics write errors.
	Failures *multierror.Error
}

// Err returns the aggregated failures, or nil.
func (s *Summary) Err() error {
	return s.Failures.ErrorOrNil()
}

type runnerImpl struct {
	initializer harness.Initializer
	catalog     Catalog
	parser      parser.Parser
	fieldMatch  matcher.FieldMatcher
	typeMatch   matcher.TypeMatcher
	resolver    resolver.Resolver
	generator   generator.Generator
	containers  ContainerFactory
	logger      hclog.Logger
	version     string
}

// RunnerOption configures optional runner collaborators.
type RunnerOption func(*runnerImpl)

// WithLogger sets the runner logger.
func WithLogger(l hclog.Logger) RunnerOption {
	return func(r *runnerImpl) { r.logger = l }
}

// WithContainerFactory replaces container.New.
func WithContainerFactory(f ContainerFactory) RunnerOption {
	return func(r *runnerImpl) { r.containers = f }
}

// WithTypeMatcher sets the matcher used by ListAccessors.
func WithTypeMatcher(tm matcher.TypeMatcher) RunnerOption {
	return func(r *runnerImpl) { r.typeMatch = tm }
}

// WithVersion sets the version recorded in the manifest.
func WithVersion(v string) RunnerOption {
	return func(r *runnerImpl) { r.version = v }
}

// NewRunner creates a default runner implementation.
func NewRunner(
	initializer harness.Initializer,
	cat Catalog,
	p parser.Parser,
	fm matcher.FieldMatcher,
	r resolver.Resolver,
	g generator.Generator,
	opts ...RunnerOption,
) Runner {
	ri := &runnerImpl{
		initializer: initializer,
		catalog:     cat,
		parser:      p,
		fieldMatch:  fm,
		typeMatch:   matcher.NewTypeMatcher(),
		resolver:    r,
		generator:   g,
		containers:  newContainer,
		logger:      hclog.NewNullLogger(),
		version:     "dev",
	}
	for _, opt := range opts {
		opt(ri)
	}
	return ri
}

func newContainer(pt protocol.PacketType, regs container.Registries) (any, error) {
	return container.New(pt, regs)
}

// Run generates one wrapper per eligible catalog entry. Only an environment
// failure aborts the batch; every other failure is logged, recorded in the
// summary and skipped.
func (r *runnerImpl) Run(cfg *Config) (*Summary, error) {
	env, err := r.initializer.Ensure()
	if err != nil {
		return nil, fmt.Errorf("initialize environment: %w", err)
	}

	summary := &Summary{}
	rec := metrics.New()
	manifest := report.New(r.version)
	layout := cfg.Layout()
	owners := make(map[string]string)

	for _, pt := range r.catalog.Values() {
		if reason, skip := skipReason(pt, cfg.Only); skip {
			r.logger.Debug("skipping packet", "packet", pt.Name, "reason", reason)
			summary.Skipped++
			rec.Skipped(reason)
			manifest.Skip(pt.Name, reason)
			continue
		}

		start := time.Now()
		plan, file, err := r.generateOne(pt, env, layout, owners, cfg.DryRun)
		if err != nil {
			r.logger.Error("failed to generate wrapper", "packet", pt.Name, "error", err)
			summary.Failures = multierror.Append(summary.Failures, fmt.Errorf("%s: %w", pt.Name, err))
			rec.Failed()
			continue
		}

		for _, a := range plan.Accessors {
			rec.Field(a.Strategy.String())
		}
		owners[plan.Destination.Path()] = pt.Name
		rec.Generated(time.Since(start))
		manifest.Add(plan, file)
		summary.Generated++
		summary.Files = append(summary.Files, file)
		r.logger.Debug("generated wrapper", "packet", pt.Name, "file", file,
			"accessors", plan.Count(resolver.StrategyAccessor),
			"ambiguous", plan.Count(resolver.StrategyAmbiguous),
			"unmatched", plan.Count(resolver.StrategyUnmatched),
			"clashes", plan.Count(resolver.StrategyClash))
	}

	if cfg.Manifest != "" {
		if err := manifest.WriteFile(cfg.Manifest); err != nil {
			r.logger.Error("failed to write manifest", "file", cfg.Manifest, "error", err)
			summary.Failures = multierror.Append(summary.Failures, err)
		}
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteTextfile(cfg.MetricsFile); err != nil {
			r.logger.Error("failed to write metrics", "file", cfg.MetricsFile, "error", err)
			summary.Failures = multierror.Append(summary.Failures, fmt.Errorf("write metrics: %w", err))
		}
	}
	return summary, nil
}

func skipReason(pt protocol.PacketType, only []string) (string, bool) {
	switch {
	case !pt.IsSupported():
		return reasonUnsupported, true
	case pt.IsDeprecated():
		return reasonDeprecated, true
	case len(only) > 0 && !slices.Contains(only, pt.Name):
		return reasonFiltered, true
	}
	return "", false
}

func (r *runnerImpl) generateOne(
	pt protocol.PacketType,
	env *harness.Environment,
	layout resolver.Layout,
	owners map[string]string,
	dryRun bool,
) (plan *resolver.WrapperPlan, file string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			plan, file, err = nil, "", fmt.Errorf("panic: %v", rec)
		}
	}()

	c, err := r.containers(pt, env.Registries)
	if err != nil {
		return nil, "", fmt.Errorf("container: %w", err)
	}
	info, err := r.parser.Parse(pt.Class)
	if err != nil {
		return nil, "", fmt.Errorf("parse: %w", err)
	}
	accessors, err := r.resolver.Resolve(r.fieldMatch.Match(info, c))
	if err != nil {
		return nil, "", fmt.Errorf("resolve: %w", err)
	}
	plan, err = layout.Plan(pt, info, accessors)
	if err != nil {
		return nil, "", err
	}
	if owner, ok := owners[plan.Destination.Path()]; ok {
		return nil, "", fmt.Errorf("%w: %s by %s", ErrDestinationTaken, plan.Destination.Path(), owner)
	}

	if dryRun {
		if _, err := r.generator.Render(plan); err != nil {
			return nil, "", err
		}
		return plan, plan.Destination.Path(), nil
	}
	file, err = r.generator.Generate(plan)
	if err != nil {
		return nil, "", err
	}
	return plan, file, nil
}

// ListAccessors prints, per supported packet, which accessor serves each
// field type when accessors are chosen by type alone.
func (r *runnerImpl) ListAccessors(cfg *Config, w io.Writer) error {
	env, err := r.initializer.Ensure()
	if err != nil {
		return fmt.Errorf("initialize environment: %w", err)
	}

	for _, pt := range r.catalog.Values() {
		if _, skip := skipReason(pt, cfg.Only); skip {
			continue
		}
		c, err := r.containers(pt, env.Registries)
		if err != nil {
			r.logger.Warn("cannot build container", "packet", pt.Name, "error", err)
			continue
		}

		bindings := r.typeMatch.BuildAvailableWrappers(c)
		types := make([]reflect.Type, 0, len(bindings))
		for t := range bindings {
			types = append(types, t)
		}
		sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })

		if _, err := fmt.Fprintln(w, pt.String()); err != nil {
			return err
		}
		for _, t := range types {
			b := bindings[t]
			if b.Size == 0 {
				continue
			}
			if _, err := fmt.Fprintf(w, "\t%-28s %-16s %d\n", t.String(), b.Method, b.Size); err != nil {
				return err
			}
		}
	}
	return nil
}
