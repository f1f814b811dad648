package saturnlog

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind tags the closed set of term shapes. Patterns and ground Data share
// this one representation; groundness is a witnessable property (see
// AssertGround), not a distinct type.
type Kind int

const (
	KindConst Kind = iota
	KindInt
	KindString
	KindTriv
	KindVar
)

func (k Kind) String() string {
	switch k {
	case KindConst:
		return "const"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	case KindTriv:
		return "triv"
	case KindVar:
		return "var"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Term is the single representation backing both Pattern and Data.
type Term struct {
	Kind Kind
	// Name holds the constructor name (KindConst) or the variable name
	// (KindVar). Unused otherwise.
	Name string
	// Args holds the children of a KindConst term, in order.
	Args []Term
	// Int holds the value of a KindInt term.
	Int int64
	// Str holds the value of a KindString term.
	Str string
}

// Pattern is a Term that may contain KindVar nodes.
type Pattern = Term

// Data is a Term with no KindVar nodes anywhere in its structure. Nothing
// in the type system enforces this; AssertGround is the witness.
type Data = Term

func Const(name string, args ...Term) Term {
	return Term{Kind: KindConst, Name: name, Args: args}
}

func Int(v int64) Term {
	return Term{Kind: KindInt, Int: v}
}

func Str(v string) Term {
	return Term{Kind: KindString, Str: v}
}

func Triv() Term {
	return Term{Kind: KindTriv}
}

func Var(name string) Term {
	return Term{Kind: KindVar, Name: name}
}

// NonGround is returned by AssertGround when a var node is found.
type NonGround struct {
	Var string
}

func (e *NonGround) Error() string {
	return fmt.Sprintf("term is not ground: unbound variable %q", e.Var)
}

// AssertGround witnesses that t contains no KindVar node, returning it
// unchanged as Data. It is the only place groundness is checked; callers
// that already know a Term came from apply() need not call it again.
func AssertGround(t Term) (Data, error) {
	if t.Kind == KindVar {
		return Term{}, &NonGround{Var: t.Name}
	}
	for _, a := range t.Args {
		if _, err := AssertGround(a); err != nil {
			return Term{}, err
		}
	}
	return t, nil
}

// AssertGroundList is AssertGround over a whole slice, failing on the
// first non-ground element.
func AssertGroundList(ts []Term) ([]Data, error) {
	out := make([]Data, len(ts))
	for i, t := range ts {
		d, err := AssertGround(t)
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// Equal is structural equality over ground Data (and, incidentally, over
// patterns, treating two distinctly-named variables as unequal).
func Equal(a, b Term) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindConst:
		if a.Name != b.Name || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !Equal(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case KindInt:
		return a.Int == b.Int
	case KindString:
		return a.Str == b.Str
	case KindTriv:
		return true
	case KindVar:
		return a.Name == b.Name
	default:
		return false
	}
}

func EqualList(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// FreeVars collects the set of variable names appearing anywhere in t.
func FreeVars(t Term) map[string]struct{} {
	out := map[string]struct{}{}
	collectFreeVars(t, out)
	return out
}

func collectFreeVars(t Term, out map[string]struct{}) {
	switch t.Kind {
	case KindVar:
		out[t.Name] = struct{}{}
	case KindConst:
		for _, a := range t.Args {
			collectFreeVars(a, out)
		}
	}
}

// FreeVarsList is FreeVars for a whole slice of patterns, e.g. a
// Proposition's combined args+values list.
func FreeVarsList(ts []Term) map[string]struct{} {
	out := map[string]struct{}{}
	for _, t := range ts {
		collectFreeVars(t, out)
	}
	return out
}

// String renders t per the surface grammar in spec.md §6: "..." string
// literals, () for triv, uppercase-leading identifiers for variables,
// canonical digit sequences for ints, and "name arg1 arg2 ..." for
// constructors (space-separated, not comma-separated).
func (t Term) String() string {
	var b strings.Builder
	writeTerm(&b, t)
	return b.String()
}

func writeTerm(b *strings.Builder, t Term) {
	switch t.Kind {
	case KindVar:
		b.WriteString(t.Name)
	case KindInt:
		b.WriteString(strconv.FormatInt(t.Int, 10))
	case KindString:
		b.WriteByte('"')
		b.WriteString(t.Str)
		b.WriteByte('"')
	case KindTriv:
		b.WriteString("()")
	case KindConst:
		if len(t.Args) == 0 {
			b.WriteString(t.Name)
			return
		}
		b.WriteByte('(')
		b.WriteString(t.Name)
		for _, a := range t.Args {
			b.WriteByte(' ')
			writeTerm(b, a)
		}
		b.WriteByte(')')
	}
}

// TermListString renders a space-separated list of terms, used for Proposition
// argument/value lists.
func TermListString(ts []Term) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}
