package saturnlog

import (
	"sort"
	"strings"

	"github.com/spaolacci/murmur3"
)

// substInline is the number of bindings a Substitution stores inline
// before spilling to a heap slice. A rule's premises bind few variables
// at a time (spec.md §3: "expected size is small (≤ number of variables
// in one rule)"), so a fixed-size-array-then-overflow layout carries over
// directly from the fixed-array trick a mutable, panic-on-rebind
// environment would use; it is only the mutability that changes, since
// Substitution must behave as an immutable value here.
const substInline = 8

type binding struct {
	name string
	val  Data
}

// Substitution is a finite, immutable mapping from variable name to
// ground Data. Extend never mutates its receiver; it returns a new value.
type Substitution struct {
	inline [substInline]binding
	count  int
	extra  []binding
}

// EmptySubstitution is the substitution that binds nothing.
func EmptySubstitution() Substitution {
	return Substitution{}
}

// Lookup returns the Data bound to name, if any.
func (s Substitution) Lookup(name string) (Data, bool) {
	for i := 0; i < s.count && i < substInline; i++ {
		if s.inline[i].name == name {
			return s.inline[i].val, true
		}
	}
	for _, b := range s.extra {
		if b.name == name {
			return b.val, true
		}
	}
	return Term{}, false
}

func (s Substitution) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Extend returns a new Substitution with name bound to val. It does not
// check for a pre-existing binding; callers (such as Match) are expected
// to only ever extend with variables they have already confirmed are
// unbound, matching the first-order matching algorithm in spec.md §4.1.
func (s Substitution) Extend(name string, val Data) Substitution {
	out := s
	if out.count < substInline {
		out.inline[out.count] = binding{name, val}
	} else {
		// Copy-on-write: the receiver's extra slice must not be mutated
		// in place, since other Substitutions may share its backing array.
		newExtra := make([]binding, len(s.extra), len(s.extra)+1)
		copy(newExtra, s.extra)
		newExtra = append(newExtra, binding{name, val})
		out.extra = newExtra
	}
	out.count++
	return out
}

// ForEach calls cb for every binding, in no particular order.
func (s Substitution) ForEach(cb func(name string, val Data)) {
	for i := 0; i < s.count && i < substInline; i++ {
		cb(s.inline[i].name, s.inline[i].val)
	}
	for _, b := range s.extra {
		cb(b.name, b.val)
	}
}

// Len returns the number of bindings.
func (s Substitution) Len() int { return s.count }

// sortedBindings returns the bindings sorted by variable name, used
// anywhere two substitutions need to be compared or printed
// deterministically.
func (s Substitution) sortedBindings() []binding {
	out := make([]binding, 0, s.count)
	s.ForEach(func(name string, val Data) {
		out = append(out, binding{name, val})
	})
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// EqualSubstitution implements the prefix store's "no two substitutions
// are equal" invariant from spec.md §3: same keyset, pointwise equal
// Data.
func EqualSubstitution(a, b Substitution) bool {
	if a.count != b.count {
		return false
	}
	as, bs := a.sortedBindings(), b.sortedBindings()
	for i := range as {
		if as[i].name != bs[i].name || !Equal(as[i].val, bs[i].val) {
			return false
		}
	}
	return true
}

// substHash is a murmur3 structural hash used as a fast pre-filter before
// the prefix store falls back to EqualSubstitution's pointwise compare
// (a bucket-then-compare index over stored substitutions).
func substHash(s Substitution) uint64 {
	h := murmur3.New64()
	for _, b := range s.sortedBindings() {
		h.Write([]byte(b.name))
		h.Write([]byte{0})
		h.Write([]byte(b.val.String()))
		h.Write([]byte{0})
	}
	return h.Sum64()
}

// String renders a Substitution for diagnostics, e.g. "a/X, b/Y" with
// variables sorted by name (matches the prefix-printing grammar used by
// the database dump in spec.md §6, minus the enclosing "name{ ... }").
func (s Substitution) String() string {
	bs := s.sortedBindings()
	parts := make([]string, len(bs))
	for i, b := range bs {
		parts[i] = b.val.String() + "/" + b.name
	}
	return strings.Join(parts, ", ")
}
