package structure

import "reflect"

// Converter translates between a raw field value and the wrapper type T.
type Converter[T any] interface {
	// Generic converts a wrapper value to the raw field representation.
	Generic(specific T) (any, error)
	// Specific converts a raw field value to the wrapper type.
	Specific(generic any) (T, error)
	SpecificType() reflect.Type
}

type funcConverter[T any] struct {
	toGeneric  func(T) (any, error)
	toSpecific func(any) (T, error)
}

// NewConverter builds a Converter from a pair of functions.
func NewConverter[T any](toGeneric func(T) (any, error), toSpecific func(any) (T, error)) Converter[T] {
	return &funcConverter[T]{toGeneric: toGeneric, toSpecific: toSpecific}
}

func (c *funcConverter[T]) Generic(specific T) (any, error) { return c.toGeneric(specific) }

func (c *funcConverter[T]) Specific(generic any) (T, error) { return c.toSpecific(generic) }

func (c *funcConverter[T]) SpecificType() reflect.Type { return reflect.TypeFor[T]() }
