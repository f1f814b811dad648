package saturnlog

import "fmt"

// UnboundVariable is returned by Apply when a pattern references a
// variable not present in the substitution.
type UnboundVariable struct {
	Var string
}

func (e *UnboundVariable) Error() string {
	return fmt.Sprintf("unbound variable %q", e.Var)
}

// Match implements spec.md §4.1's first-order one-way matching:
// const/const requires equal name and arity, matching children
// pointwise and threading the substitution; int/string/triv require
// identical shape and value; var(X) either recurses against an existing
// binding or extends the substitution. There is no occurs check —
// patterns only ever match against ground data, never against other
// patterns.
func Match(subst Substitution, pattern Pattern, data Data) (Substitution, bool) {
	switch pattern.Kind {
	case KindVar:
		if bound, ok := subst.Lookup(pattern.Name); ok {
			return Match(subst, bound, data)
		}
		return subst.Extend(pattern.Name, data), true

	case KindConst:
		if data.Kind != KindConst || pattern.Name != data.Name || len(pattern.Args) != len(data.Args) {
			return subst, false
		}
		cur := subst
		for i := range pattern.Args {
			next, ok := Match(cur, pattern.Args[i], data.Args[i])
			if !ok {
				return subst, false
			}
			cur = next
		}
		return cur, true

	case KindInt:
		if data.Kind != KindInt || pattern.Int != data.Int {
			return subst, false
		}
		return subst, true

	case KindString:
		if data.Kind != KindString || pattern.Str != data.Str {
			return subst, false
		}
		return subst, true

	case KindTriv:
		if data.Kind != KindTriv {
			return subst, false
		}
		return subst, true

	default:
		return subst, false
	}
}

// MatchList threads a substitution through matching corresponding
// elements of two equal-length pattern/data lists, e.g. a Proposition's
// args and values lists. It fails immediately (returning the original
// subst) if the lists differ in length or any element fails to match.
func MatchList(subst Substitution, patterns []Pattern, data []Data) (Substitution, bool) {
	if len(patterns) != len(data) {
		return subst, false
	}
	cur := subst
	for i := range patterns {
		next, ok := Match(cur, patterns[i], data[i])
		if !ok {
			return subst, false
		}
		cur = next
	}
	return cur, true
}

// Apply is spec.md §4.1's structural substitution application: var(X)
// resolves against subst or fails with UnboundVariable; everything else
// recurses structurally.
func Apply(subst Substitution, pattern Pattern) (Data, error) {
	switch pattern.Kind {
	case KindVar:
		val, ok := subst.Lookup(pattern.Name)
		if !ok {
			return Term{}, &UnboundVariable{Var: pattern.Name}
		}
		return val, nil
	case KindConst:
		args := make([]Term, len(pattern.Args))
		for i, a := range pattern.Args {
			v, err := Apply(subst, a)
			if err != nil {
				return Term{}, err
			}
			args[i] = v
		}
		return Term{Kind: KindConst, Name: pattern.Name, Args: args}, nil
	default:
		return pattern, nil
	}
}

// ApplyList applies subst to every pattern in ps, failing on the first
// UnboundVariable.
func ApplyList(subst Substitution, ps []Pattern) ([]Data, error) {
	out := make([]Data, len(ps))
	for i, p := range ps {
		v, err := Apply(subst, p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
