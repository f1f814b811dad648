package saturnlog

import "fmt"

// FunctionalInconsistency is raised (as a log event, not a returned
// error — see Step) when a conclusion's InsertFact call reports
// Inconsistent: that alternative is dropped, and a deterministic step
// (a single alternative) prunes the database as a result.
type FunctionalInconsistency struct {
	Name           string
	Args           []Data
	ExistingValues []Data
	NewValues      []Data
}

func (e *FunctionalInconsistency) Error() string {
	return fmt.Sprintf("functional inconsistency on %s %s: existing values %s, new values %s",
		e.Name, TermListString(e.Args), TermListString(e.ExistingValues), TermListString(e.NewValues))
}

// ExhaustiveChoiceExhausted is raised when every alternative of an
// exhaustive NewFact terminal fails (and the redundant-possibility flag
// was not set), pruning the database.
type ExhaustiveChoiceExhausted struct {
	HeadName string
}

func (e *ExhaustiveChoiceExhausted) Error() string {
	return fmt.Sprintf("exhaustive choice exhausted for %q", e.HeadName)
}

// CompilerInvariantViolation indicates the Program handed to Step
// violates one of the three invariants spec.md §4.3 places on the
// compiler's output (e.g. a head or inequality referencing a variable
// the prefix chain never bound). Per spec.md §7 this is fatal: it
// indicates an upstream (compiler) bug, not a user-facing condition, so
// it panics rather than returning an error.
type CompilerInvariantViolation struct {
	Detail string
}

func (e *CompilerInvariantViolation) Error() string {
	return fmt.Sprintf("compiler invariant violation: %s", e.Detail)
}

func panicInvariant(format string, args ...interface{}) {
	panic(&CompilerInvariantViolation{Detail: fmt.Sprintf(format, args...)})
}
