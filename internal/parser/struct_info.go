package parser

import "reflect"

// StructInfo holds the eligible raw fields of one packet struct.
type StructInfo struct {
	Name    string
	PkgPath string
	PkgName string
	Type    reflect.Type
	Fields  []FieldInfo
}

// FieldInfo describes one raw field declared on a packet struct.
type FieldInfo struct {
	Name    string
	Index   int
	Type    reflect.Type
	Owner   reflect.Type
	TypeStr string
}

// IsBool reports whether the field is a plain bool.
func (f FieldInfo) IsBool() bool {
	return f.Type == reflect.TypeFor[bool]()
}
