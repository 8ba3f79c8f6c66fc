package resolver

import (
	"github.com/seitarof/gen-wrapper/internal/matcher"
)

// DefaultRules returns built-in rules in priority order.
func DefaultRules() []Rule {
	return []Rule{
		&AmbiguousRule{},
		&UnmatchedRule{},
		&AccessorRule{},
	}
}

// AmbiguousRule: several accessors expose the field -> marker, no tie-breaking.
type AmbiguousRule struct{}

func (r *AmbiguousRule) Name() string { return "ambiguous" }

func (r *AmbiguousRule) Try(res matcher.Result) (AccessorPlan, bool) {
	if res.Kind != matcher.KindAmbiguous {
		return AccessorPlan{}, false
	}
	return AccessorPlan{
		Field:      res.Field,
		Strategy:   StrategyAmbiguous,
		Candidates: candidateMethods(res),
	}, true
}

// UnmatchedRule: no accessor exposes the field -> marker.
type UnmatchedRule struct{}

func (r *UnmatchedRule) Name() string { return "unmatched" }

func (r *UnmatchedRule) Try(res matcher.Result) (AccessorPlan, bool) {
	if res.Kind != matcher.KindUnmatched {
		return AccessorPlan{}, false
	}
	return AccessorPlan{Field: res.Field, Strategy: StrategyUnmatched}, true
}

// AccessorRule: exactly one accessor -> getter/setter delegating to it.
type AccessorRule struct{}

func (r *AccessorRule) Name() string { return "accessor" }

func (r *AccessorRule) Try(res matcher.Result) (AccessorPlan, bool) {
	cand, ok := res.Unique()
	if !ok || cand.Type == nil {
		return AccessorPlan{}, false
	}
	getter, setter := AccessorNames(res.Field)
	return AccessorPlan{
		Field:      res.Field,
		Strategy:   StrategyAccessor,
		Getter:     getter,
		Setter:     setter,
		Method:     cand.Method,
		Index:      cand.Index,
		Type:       cand.Type,
		Candidates: candidateMethods(res),
	}, true
}

func candidateMethods(res matcher.Result) []string {
	out := make([]string, len(res.Candidates))
	for i, c := range res.Candidates {
		out[i] = c.Method
	}
	return out
}
