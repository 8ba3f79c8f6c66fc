// Package structure provides indexed, type-bucketed read/write access to the
// fields of a packet struct, including its unexported fields.
//
// A Modifier selects the fields of one struct whose type belongs to a bucket
// (an exact type, an interface, or an arbitrary predicate) and addresses them
// by their position within that bucket. An optional Converter maps between
// the raw field type and a friendlier wrapper type.
package structure

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	// ErrNoField is returned when a bucket has no field at the requested index.
	ErrNoField = errors.New("no such field")
	// ErrConversion is returned when a value cannot be converted to or from the raw field type.
	ErrConversion = errors.New("conversion failed")
)

// FieldAccessor identifies one struct field exposed by a bucket.
type FieldAccessor struct {
	Owner reflect.Type
	Name  string
	Index int
	Type  reflect.Type
}

// Same reports whether the accessor points at the field name declared on owner.
func (f FieldAccessor) Same(owner reflect.Type, name string) bool {
	return f.Owner == owner && f.Name == name
}

// Accessor is the type-erased view of a Modifier.
type Accessor interface {
	// FieldType is the bucket type. It is nil when the bucket is defined by a predicate.
	FieldType() reflect.Type
	// Fields lists the exposed fields in declaration order.
	Fields() []FieldAccessor
	NeedConversion() bool
	// SpecificType is the converted type, or FieldType when no converter is configured.
	SpecificType() reflect.Type
	// ElementType is the Go type handed out by Read and accepted by Write.
	ElementType() reflect.Type
	ReadAny(index int) (any, error)
	WriteAny(index int, value any) error
	Size() int
}

// Modifier reads and writes the fields of one struct value that belong to a bucket.
type Modifier[T any] struct {
	target    reflect.Value
	fieldType reflect.Type
	fields    []FieldAccessor
	converter Converter[T]
}

// WithType returns a Modifier over the fields of target whose type is fieldType,
// or implements it when fieldType is an interface. target must be an addressable struct.
func WithType[T any](target reflect.Value, fieldType reflect.Type, converter Converter[T]) *Modifier[T] {
	m := WithMatcher(target, func(t reflect.Type) bool { return matchesType(t, fieldType) }, converter)
	m.fieldType = fieldType
	return m
}

// WithMatcher returns a Modifier over the fields of target accepted by match.
// The resulting bucket has no FieldType.
func WithMatcher[T any](target reflect.Value, match func(reflect.Type) bool, converter Converter[T]) *Modifier[T] {
	m := &Modifier[T]{target: target, converter: converter}
	if target.Kind() != reflect.Struct {
		return m
	}
	owner := target.Type()
	for i := range owner.NumField() {
		f := owner.Field(i)
		if f.Anonymous || f.Name == "_" {
			continue
		}
		if !match(f.Type) {
			continue
		}
		m.fields = append(m.fields, FieldAccessor{Owner: owner, Name: f.Name, Index: i, Type: f.Type})
	}
	return m
}

func matchesType(t, fieldType reflect.Type) bool {
	if fieldType == nil {
		return false
	}
	if t == fieldType {
		return true
	}
	return fieldType.Kind() == reflect.Interface && t.Implements(fieldType)
}

func (m *Modifier[T]) FieldType() reflect.Type { return m.fieldType }

func (m *Modifier[T]) Fields() []FieldAccessor {
	out := make([]FieldAccessor, len(m.fields))
	copy(out, m.fields)
	return out
}

func (m *Modifier[T]) Size() int { return len(m.fields) }

func (m *Modifier[T]) NeedConversion() bool { return m.converter != nil }

func (m *Modifier[T]) SpecificType() reflect.Type {
	if m.converter != nil {
		return m.converter.SpecificType()
	}
	return m.fieldType
}

func (m *Modifier[T]) ElementType() reflect.Type { return reflect.TypeFor[T]() }

// Read returns the value of the field at index, converted when a converter is set.
func (m *Modifier[T]) Read(index int) (T, error) {
	var zero T
	fv, err := m.field(index)
	if err != nil {
		return zero, err
	}
	if m.converter != nil {
		out, err := m.converter.Specific(fv.Interface())
		if err != nil {
			return zero, fmt.Errorf("%w: read %s: %w", ErrConversion, m.fields[index].Name, err)
		}
		return out, nil
	}
	out, ok := fv.Interface().(T)
	if !ok {
		return zero, fmt.Errorf("%w: field %s is %s, not %s", ErrConversion, m.fields[index].Name, fv.Type(), reflect.TypeFor[T]())
	}
	return out, nil
}

// Write stores value into the field at index.
func (m *Modifier[T]) Write(index int, value T) error {
	fv, err := m.field(index)
	if err != nil {
		return err
	}
	var raw any = value
	if m.converter != nil {
		raw, err = m.converter.Generic(value)
		if err != nil {
			return fmt.Errorf("%w: write %s: %w", ErrConversion, m.fields[index].Name, err)
		}
	}
	return assign(fv, raw)
}

// Modify replaces the field at index with fn applied to its current value.
func (m *Modifier[T]) Modify(index int, fn func(T) T) error {
	v, err := m.Read(index)
	if err != nil {
		return err
	}
	return m.Write(index, fn(v))
}

// Values reads every field of the bucket in order.
func (m *Modifier[T]) Values() ([]T, error) {
	out := make([]T, 0, len(m.fields))
	for i := range m.fields {
		v, err := m.Read(i)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func (m *Modifier[T]) ReadAny(index int) (any, error) {
	return m.Read(index)
}

func (m *Modifier[T]) WriteAny(index int, value any) error {
	if value == nil {
		var zero T
		return m.Write(index, zero)
	}
	v, ok := value.(T)
	if !ok {
		return fmt.Errorf("%w: cannot use %T as %s", ErrConversion, value, reflect.TypeFor[T]())
	}
	return m.Write(index, v)
}

func (m *Modifier[T]) field(index int) (reflect.Value, error) {
	if index < 0 || index >= len(m.fields) {
		return reflect.Value{}, fmt.Errorf("%w: index %d of %s in %s (size %d)", ErrNoField, index, typeName(m.fieldType), typeName(m.target.Type()), len(m.fields))
	}
	if !m.target.CanAddr() {
		return reflect.Value{}, fmt.Errorf("%w: %s is not addressable", ErrNoField, m.target.Type())
	}
	f := m.target.Field(m.fields[index].Index)
	// Unexported fields are reachable only through their address.
	return reflect.NewAt(f.Type(), unsafe.Pointer(f.UnsafeAddr())).Elem(), nil
}

func assign(dst reflect.Value, raw any) error {
	if raw == nil {
		dst.Set(reflect.Zero(dst.Type()))
		return nil
	}
	rv := reflect.ValueOf(raw)
	switch {
	case rv.Type().AssignableTo(dst.Type()):
		dst.Set(rv)
	case rv.Kind() == dst.Kind() && rv.Type().ConvertibleTo(dst.Type()):
		dst.Set(rv.Convert(dst.Type()))
	default:
		return fmt.Errorf("%w: cannot assign %s to %s", ErrConversion, rv.Type(), dst.Type())
	}
	return nil
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<untyped>"
	}
	return t.String()
}
