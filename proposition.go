package saturnlog

// Proposition is a relation name together with an ordered argument
// pattern list and an ordered value pattern list: "name(args…) =
// values…" under the functional reading from spec.md §3.
type Proposition struct {
	Name   string
	Args   []Pattern
	Values []Pattern
}

// Fact is a Proposition whose Args and Values are ground Data — a
// concrete row in the functional fact store.
type Fact struct {
	Name   string
	Args   []Data
	Values []Data
}

// ApplyProposition is spec.md §4.2's apply_proposition: substitute
// through both the argument and value pattern lists of p to produce a
// concrete Fact.
func ApplyProposition(subst Substitution, p Proposition) (Fact, error) {
	args, err := ApplyList(subst, p.Args)
	if err != nil {
		return Fact{}, err
	}
	values, err := ApplyList(subst, p.Values)
	if err != nil {
		return Fact{}, err
	}
	return Fact{Name: p.Name, Args: args, Values: values}, nil
}

// MatchProposition matches a stored fact's args and values against a
// Proposition pattern, threading the substitution through both lists in
// order (used by the stepper's fact-driven and prefix-driven joins).
func MatchProposition(subst Substitution, p Proposition, args, values []Data) (Substitution, bool) {
	next, ok := MatchList(subst, p.Args, args)
	if !ok {
		return subst, false
	}
	return MatchList(next, p.Values, values)
}

// factKey is the canonical encoding of a Data argument list used to key
// the functional fact store. It is the deterministic printed form of the
// list, which doubles as a human-legible debugging aid (it is exactly
// what the database dump prints as a Proposition's argument list).
type factKey string

func canonArgs(args []Data) factKey {
	return factKey(TermListString(args))
}
