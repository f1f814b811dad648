package saturnlog

// Inequality is a premise that evaluates `a != b` under the current
// substitution rather than matching against the fact store.
type Inequality struct {
	A, B Pattern
}

// Premise is the closed set of things a non-terminal prefix position can
// wait on: either a Proposition pattern to match against the fact store,
// or an Inequality to evaluate against the current substitution.
type Premise struct {
	Proposition *Proposition
	Inequality  *Inequality
}

func PropositionPremise(p Proposition) Premise  { return Premise{Proposition: &p} }
func InequalityPremise(i Inequality) Premise    { return Premise{Inequality: &i} }
func (p Premise) IsProposition() bool           { return p.Proposition != nil }
func (p Premise) IsInequality() bool            { return p.Inequality != nil }

// InternalPartialRule is one non-final position r_i in a compiled rule's
// prefix chain (spec.md §3, "Rules — prefix chain").
type InternalPartialRule struct {
	// Premise is what must hold to advance past this position.
	Premise Premise
	// Shared is the set of variable names that must already be bound on
	// entry (bound by an earlier premise on every path reaching here).
	// It is a compiler-maintained invariant, not consulted by the
	// stepper directly, but kept on the struct because the compiler
	// needs it to validate Inequality premises (spec.md §4.3, invariant
	// 2) and it is useful for trace/debug output.
	Shared map[string]struct{}
	// Next lists the successor position names. More than one entry
	// models a single prefix fanning out to multiple rule heads (the
	// "mutually-exclusive choice in a rule head" case). Must be
	// non-empty — a compiler invariant.
	Next []string
}

// InternalConclusion is the terminal position r_n of a compiled rule.
type InternalConclusion struct {
	// Contradiction, if true, makes this terminal a constraint: reaching
	// it kills the database. NewFact fields are ignored when true.
	Contradiction bool

	// NewFact fields (meaningful when Contradiction is false):
	HeadName       string
	ArgPatterns    []Pattern
	ValuePatterns  [][]Pattern // list of alternatives; each alternative is a value-pattern list
	Exhaustive     bool
}

// Program is the data the stepper and driver consume, produced by the
// (out-of-core) compiler from declared rules plus any seed facts.
type Program struct {
	Rules       map[string]InternalPartialRule
	Conclusions map[string]InternalConclusion
	Seed        *Database
}

// NewProgram returns an empty Program with a fresh, empty seed database.
func NewProgram() *Program {
	return &Program{
		Rules:       map[string]InternalPartialRule{},
		Conclusions: map[string]InternalConclusion{},
		Seed:        NewDatabase(),
	}
}
