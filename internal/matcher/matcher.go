package matcher

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/davecgh/go-spew/spew"
	"github.com/hashicorp/go-hclog"

	"github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/pkg/structure"
)

// DefaultDenylist names the container accessors that expose every field (or
// every struct field) and therefore cannot identify a single one.
var DefaultDenylist = []string{"Modifier", "Structures"}

// Kind classifies the outcome of matching one field.
type Kind int

const (
	KindUnmatched Kind = iota
	KindUnique
	KindAmbiguous
)

func (k Kind) String() string {
	switch k {
	case KindUnique:
		return "unique"
	case KindAmbiguous:
		return "ambiguous"
	default:
		return "unmatched"
	}
}

// Candidate is one accessor confirmed to expose a field.
type Candidate struct {
	Field     parser.FieldInfo
	Method    string
	Index     int
	Type      reflect.Type
	Converted bool
}

// Result is the outcome of matching one field.
type Result struct {
	Field      parser.FieldInfo
	Kind       Kind
	Candidates []Candidate
}

// Unique returns the single candidate of a unique result.
func (r Result) Unique() (Candidate, bool) {
	if r.Kind != KindUnique {
		return Candidate{}, false
	}
	return r.Candidates[0], true
}

// FieldMatcher maps raw fields to container accessors.
type FieldMatcher interface {
	Match(info *parser.StructInfo, container any) []Result
}

type fieldMatcherImpl struct {
	deny   map[string]bool
	logger hclog.Logger
}

// Option configures a FieldMatcher.
type Option func(*fieldMatcherImpl)

// WithDenylist replaces the accessor names excluded from matching.
func WithDenylist(names ...string) Option {
	return func(m *fieldMatcherImpl) {
		m.deny = toSet(names)
	}
}

// WithLogger sets the logger used for per-field diagnostics.
func WithLogger(l hclog.Logger) Option {
	return func(m *fieldMatcherImpl) { m.logger = l }
}

// NewFieldMatcher returns the default field matcher.
func NewFieldMatcher(opts ...Option) FieldMatcher {
	m := &fieldMatcherImpl{
		deny:   toSet(DefaultDenylist),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match probes every accessor for every field. The probe reads the next
// unused index of an accessor on the live container, so fields must be
// matched once per container and in declaration order.
func (m *fieldMatcherImpl) Match(info *parser.StructInfo, container any) []Result {
	accessors := Accessors(container, m.deny)
	session := newSession(container)

	results := make([]Result, 0, len(info.Fields))
	for _, field := range info.Fields {
		var candidates []Candidate
		for _, method := range accessors {
			cand, ok := m.probe(session, method, field)
			if ok {
				candidates = append(candidates, cand)
			}
		}
		res := classify(field, candidates)
		switch res.Kind {
		case KindAmbiguous:
			m.logger.Warn("failed to disambiguate between modifiers", "packet", info.Name, "field", field.Name, "candidates", methods(candidates))
		case KindUnmatched:
			m.logger.Warn("no modifiers available to service field", "packet", info.Name, "field", field.Name, "type", field.TypeStr)
		}
		results = append(results, res)
	}

	if m.logger.IsTrace() {
		m.logger.Trace("match results", "packet", info.Name, "dump", spew.Sdump(results))
	}
	return results
}

func (m *fieldMatcherImpl) probe(s *session, method string, field parser.FieldInfo) (Candidate, bool) {
	acc, err := s.accessor(method)
	if err != nil {
		m.logger.Debug("accessor invocation failed", "method", method, "field", field.Name, "error", err)
		return Candidate{}, false
	}
	if acc.FieldType() == nil {
		return Candidate{}, false
	}
	if !exposes(acc, field) {
		return Candidate{}, false
	}

	index := s.counters[method]
	if err := safeRead(acc, index); err != nil {
		m.logger.Debug("accessor probe failed", "method", method, "field", field.Name, "index", index, "error", err)
		return Candidate{}, false
	}
	s.counters[method] = index + 1

	return Candidate{
		Field:     field,
		Method:    method,
		Index:     index,
		Type:      visibleType(acc, field),
		Converted: acc.NeedConversion(),
	}, true
}

func classify(field parser.FieldInfo, candidates []Candidate) Result {
	switch len(candidates) {
	case 0:
		return Result{Field: field, Kind: KindUnmatched}
	case 1:
		return Result{Field: field, Kind: KindUnique, Candidates: candidates}
	default:
		return Result{Field: field, Kind: KindAmbiguous, Candidates: candidates}
	}
}

func exposes(acc structure.Accessor, field parser.FieldInfo) bool {
	return slices.ContainsFunc(acc.Fields(), func(f structure.FieldAccessor) bool {
		return f.Same(field.Owner, field.Name)
	})
}

// visibleType is the type wrappers expose: the converted type when a
// converter is active, else the raw field type. Interface buckets hand out
// the interface, so that is what a wrapper can return.
func visibleType(acc structure.Accessor, field parser.FieldInfo) reflect.Type {
	if acc.NeedConversion() && acc.SpecificType() != nil {
		return acc.SpecificType()
	}
	if elem := acc.ElementType(); elem != nil && elem != field.Type {
		return elem
	}
	return field.Type
}

func safeRead(acc structure.Accessor, index int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	_, err = acc.ReadAny(index)
	return err
}

func methods(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Method
	}
	return out
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		set[n] = true
	}
	return set
}
