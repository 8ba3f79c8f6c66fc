package resolver

import (
	"reflect"

	"github.com/seitarof/gen-wrapper/internal/parser"
	"github.com/seitarof/gen-wrapper/pkg/protocol"
)

// Strategy identifies what the emitter writes for one field.
type Strategy int

const (
	// StrategyAccessor emits a getter/setter pair.
	StrategyAccessor Strategy = iota
	// StrategyAmbiguous emits a marker: several accessors expose the field.
	StrategyAmbiguous
	// StrategyUnmatched emits a marker: no accessor exposes the field.
	StrategyUnmatched
	// StrategyClash emits a marker: an earlier field already owns the method names.
	StrategyClash
)

func (s Strategy) String() string {
	switch s {
	case StrategyAccessor:
		return "accessor"
	case StrategyAmbiguous:
		return "ambiguous"
	case StrategyClash:
		return "clash"
	default:
		return "unmatched"
	}
}

// AccessorPlan describes the generated code for one raw field.
type AccessorPlan struct {
	Field    parser.FieldInfo
	Strategy Strategy
	Getter   string
	Setter   string
	Method   string
	Index    int
	Type     reflect.Type
	// Candidates lists the accessor names considered, for diagnostics.
	Candidates []string
	// ClashesWith names the field that owns this field's method names.
	ClashesWith string
}

// WrapperPlan is everything needed to emit one wrapper file.
type WrapperPlan struct {
	Packet      protocol.PacketType
	Destination Destination
	Name        string
	RawType     reflect.Type
	Accessors   []AccessorPlan
}

// Count returns how many plans use the strategy.
func (p *WrapperPlan) Count(s Strategy) int {
	n := 0
	for _, a := range p.Accessors {
		if a.Strategy == s {
			n++
		}
	}
	return n
}
