package matcher

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/seitarof/gen-wrapper/pkg/structure"
)

var accessorType = reflect.TypeFor[structure.Accessor]()

// Accessors lists the exported zero-argument methods of container that
// return a structure.Accessor, sorted by name, minus those in deny.
func Accessors(container any, deny map[string]bool) []string {
	if container == nil {
		return nil
	}
	t := reflect.TypeOf(container)
	names := make([]string, 0, t.NumMethod())
	for i := range t.NumMethod() {
		m := t.Method(i)
		if deny[m.Name] || !isAccessorMethod(m.Type) {
			continue
		}
		names = append(names, m.Name)
	}
	slices.Sort(names)
	return names
}

// isAccessorMethod checks a method type that includes the receiver.
func isAccessorMethod(mt reflect.Type) bool {
	return mt.NumIn() == 1 && mt.NumOut() == 1 && mt.Out(0).Implements(accessorType)
}

type invocation struct {
	acc structure.Accessor
	err error
}

// session holds the per-container state of one Match call: each accessor is
// invoked at most once and its probe counter only moves forward.
type session struct {
	container reflect.Value
	cache     map[string]invocation
	counters  map[string]int
}

func newSession(container any) *session {
	return &session{
		container: reflect.ValueOf(container),
		cache:     make(map[string]invocation),
		counters:  make(map[string]int),
	}
}

func (s *session) accessor(method string) (structure.Accessor, error) {
	if inv, ok := s.cache[method]; ok {
		return inv.acc, inv.err
	}
	acc, err := invoke(s.container, method)
	s.cache[method] = invocation{acc: acc, err: err}
	return acc, err
}

func invoke(container reflect.Value, method string) (acc structure.Accessor, err error) {
	defer func() {
		if r := recover(); r != nil {
			acc, err = nil, fmt.Errorf("%s panicked: %v", method, r)
		}
	}()
	m := container.MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("no method %s", method)
	}
	out := m.Call(nil)[0]
	if out.Kind() == reflect.Pointer && out.IsNil() {
		return nil, errors.New(method + " returned nil")
	}
	acc, ok := out.Interface().(structure.Accessor)
	if !ok || acc == nil {
		return nil, errors.New(method + " returned no accessor")
	}
	return acc, nil
}
