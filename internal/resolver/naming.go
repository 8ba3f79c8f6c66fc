package resolver

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/seitarof/gen-wrapper/internal/parser"
)

const (
	getPrefix  = "get"
	setPrefix  = "set"
	boolPrefix = "is"
)

// AccessorNames returns the getter and setter names for a field.
//
//	count   (int32) -> getCount, setCount
//	ready   (bool)  -> isReady,  setReady
//	isReady (bool)  -> isReady,  setIsReady
func AccessorNames(f parser.FieldInfo) (getter, setter string) {
	prefix := getPrefix
	if f.IsBool() {
		prefix = boolPrefix
		if strings.HasPrefix(f.Name, boolPrefix) {
			prefix = ""
		}
	}
	return methodName(prefix, f.Name), methodName(setPrefix, f.Name)
}

func methodName(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + upperFirst(field)
}

// Export upper-cases the first rune so the name is visible from another package.
func Export(name string) string {
	return upperFirst(name)
}

// WrapperName derives the wrapper type name from a packet class name.
func WrapperName(packet string) string {
	return strings.TrimSuffix(packet, "Packet") + "Wrapper"
}

// SnakeCase converts a Go identifier to snake_case, keeping acronyms together:
// "ClientboundLoginWrapper" -> "clientbound_login_wrapper", "UUIDWrapper" -> "uuid_wrapper".
func SnakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
