package matcher

import (
	"reflect"

	"github.com/hashicorp/go-hclog"
)

// TypeBinding is the accessor chosen for one bucket type.
type TypeBinding struct {
	Method      string
	FieldType   reflect.Type
	ElementType reflect.Type
	Converted   bool
	Size        int
}

// TypeMatcher maps bucket types to accessors, ignoring which fields an
// accessor serves.
type TypeMatcher interface {
	BuildAvailableWrappers(container any) map[reflect.Type]TypeBinding
}

type typeMatcherImpl struct {
	deny   map[string]bool
	logger hclog.Logger
}

// NewTypeMatcher returns a TypeMatcher. It honours WithDenylist and WithLogger.
func NewTypeMatcher(opts ...Option) TypeMatcher {
	fm := &fieldMatcherImpl{
		deny:   toSet(DefaultDenylist),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(fm)
	}
	return &typeMatcherImpl{deny: fm.deny, logger: fm.logger}
}

// BuildAvailableWrappers keys every accessor by its FieldType. The first
// accessor in name order wins; later ones with the same type are logged
// and dropped.
func (m *typeMatcherImpl) BuildAvailableWrappers(container any) map[reflect.Type]TypeBinding {
	s := newSession(container)
	out := make(map[reflect.Type]TypeBinding)
	for _, method := range Accessors(container, m.deny) {
		acc, err := s.accessor(method)
		if err != nil {
			m.logger.Debug("accessor invocation failed", "method", method, "error", err)
			continue
		}
		ft := acc.FieldType()
		if ft == nil {
			continue
		}
		if prev, ok := out[ft]; ok {
			m.logger.Warn("trying to redefine wrapper for "+ft.String(), "kept", prev.Method, "dropped", method)
			continue
		}
		out[ft] = TypeBinding{
			Method:      method,
			FieldType:   ft,
			ElementType: acc.ElementType(),
			Converted:   acc.NeedConversion(),
			Size:        acc.Size(),
		}
	}
	return out
}
