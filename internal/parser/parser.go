package parser

import (
	"fmt"
	"reflect"
	"strings"
)

// SkipTag marks a field that wrappers must not expose: `wrap:"-"`.
const SkipTag = "wrap"

// Parser extracts raw field metadata from packet structs.
type Parser interface {
	Parse(t reflect.Type) (*StructInfo, error)
}

type parserImpl struct{}

// New returns default parser.
func New() Parser {
	return &parserImpl{}
}

func (p *parserImpl) Parse(t reflect.Type) (*StructInfo, error) {
	if t == nil {
		return nil, fmt.Errorf("nil packet type")
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct type", t)
	}

	return &StructInfo{
		Name:    t.Name(),
		PkgPath: t.PkgPath(),
		PkgName: PackageName(t),
		Type:    t,
		Fields:  eligibleFields(t),
	}, nil
}

// eligibleFields keeps unexported, named, non-embedded fields declared
// directly on t, in declaration order.
func eligibleFields(t reflect.Type) []FieldInfo {
	fields := make([]FieldInfo, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if f.IsExported() || f.Anonymous || f.Name == "_" {
			continue
		}
		if f.Tag.Get(SkipTag) == "-" {
			continue
		}
		fields = append(fields, FieldInfo{
			Name:    f.Name,
			Index:   i,
			Type:    f.Type,
			Owner:   t,
			TypeStr: f.Type.String(),
		})
	}
	return fields
}

// PackageName returns the declared package name of a named type, or "" for
// unnamed and predeclared types.
func PackageName(t reflect.Type) string {
	if t.PkgPath() == "" || t.Name() == "" {
		return ""
	}
	name, _, found := strings.Cut(t.String(), ".")
	if !found {
		return ""
	}
	return name
}
