package generator

import (
	"fmt"
	"path"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/seitarof/gen-wrapper/internal/parser"
)

type importSpec struct {
	Alias string
	Path  string
}

// importSet assigns a unique alias to every imported package path and
// renders reflect types qualified with those aliases.
type importSet struct {
	self    string
	aliases map[string]string
	used    map[string]bool
}

func newImportSet(self string) *importSet {
	return &importSet{
		self:    self,
		aliases: make(map[string]string),
		used:    make(map[string]bool),
	}
}

// add imports pkgPath under name, or a numbered variant if name is taken.
func (s *importSet) add(pkgPath, name string) string {
	if pkgPath == s.self {
		return ""
	}
	if alias, ok := s.aliases[pkgPath]; ok {
		return alias
	}
	base := sanitizeIdent(name)
	if base == "" {
		base = sanitizeIdent(path.Base(pkgPath))
	}
	alias := base
	for i := 2; s.used[alias]; i++ {
		alias = base + strconv.Itoa(i)
	}
	s.aliases[pkgPath] = alias
	s.used[alias] = true
	return alias
}

func (s *importSet) qualify(pkgPath, name, ident string) string {
	alias := s.add(pkgPath, name)
	if alias == "" {
		return ident
	}
	return alias + "." + ident
}

func (s *importSet) list() []importSpec {
	out := make([]importSpec, 0, len(s.aliases))
	for p, a := range s.aliases {
		out = append(out, importSpec{Alias: a, Path: p})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

var byteType = reflect.TypeFor[byte]()

// typeString renders t as Go source, importing the packages it needs.
func (s *importSet) typeString(t reflect.Type) string {
	if t == byteType {
		return "byte"
	}
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return t.Name()
		}
		return s.qualify(t.PkgPath(), parser.PackageName(t), t.Name())
	}

	switch t.Kind() {
	case reflect.Pointer:
		return "*" + s.typeString(t.Elem())
	case reflect.Slice:
		return "[]" + s.typeString(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), s.typeString(t.Elem()))
	case reflect.Map:
		return "map[" + s.typeString(t.Key()) + "]" + s.typeString(t.Elem())
	case reflect.Interface:
		if t.NumMethod() == 0 {
			return "any"
		}
	}
	return t.String()
}

func sanitizeIdent(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsLetter(r) || r == '_':
			b.WriteRune(r)
		case unicode.IsDigit(r):
			if i == 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
