package resolver

import (
	"github.com/seitarof/gen-wrapper/internal/matcher"
)

// Resolver turns match results into accessor plans.
type Resolver interface {
	Resolve(results []matcher.Result) ([]AccessorPlan, error)
}

// Rule tries to produce the plan for one match result.
type Rule interface {
	Name() string
	Try(res matcher.Result) (AccessorPlan, bool)
}

type resolverImpl struct {
	rules []Rule
}

// New builds resolver with rule chain.
func New(rules ...Rule) Resolver {
	return &resolverImpl{rules: rules}
}

// Resolve applies the rule chain to every result. When a field's generated
// methods would reuse a name owned by an earlier field, the later field is
// downgraded to StrategyClash and the rest of the wrapper is kept.
func (r *resolverImpl) Resolve(results []matcher.Result) ([]AccessorPlan, error) {
	plans := make([]AccessorPlan, 0, len(results))
	owners := make(map[string]string)
	for _, res := range results {
		plan := r.resolveOne(res)
		if plan.Strategy == StrategyAccessor {
			names := []string{Export(plan.Getter), Export(plan.Setter)}
			if prev, ok := firstOwner(owners, names); ok {
				plan = AccessorPlan{
					Field:       res.Field,
					Strategy:    StrategyClash,
					Candidates:  plan.Candidates,
					ClashesWith: prev,
				}
			} else {
				for _, name := range names {
					owners[name] = res.Field.Name
				}
			}
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func firstOwner(owners map[string]string, names []string) (string, bool) {
	for _, name := range names {
		if prev, ok := owners[name]; ok {
			return prev, true
		}
	}
	return "", false
}

func (r *resolverImpl) resolveOne(res matcher.Result) AccessorPlan {
	for _, rule := range r.rules {
		if plan, ok := rule.Try(res); ok {
			return plan
		}
	}
	return AccessorPlan{Field: res.Field, Strategy: StrategyUnmatched}
}
