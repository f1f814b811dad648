package saturnlog

import (
	"sort"
	"strings"
)

// String renders p per spec.md §6: "name arg1 arg2 … argn" when values
// are absent, "name arg1 … argn = v1 v2 … vm" otherwise.
func (p Proposition) String() string {
	return propositionString(p.Name, p.Args, p.Values)
}

// String renders f the same way, over ground Data.
func (f Fact) String() string {
	return propositionString(f.Name, f.Args, f.Values)
}

func propositionString(name string, args, values []Term) string {
	var b strings.Builder
	b.WriteString(name)
	for _, a := range args {
		b.WriteByte(' ')
		writeTerm(&b, a)
	}
	if len(values) > 0 {
		b.WriteString(" =")
		for _, v := range values {
			b.WriteByte(' ')
			writeTerm(&b, v)
		}
	}
	return b.String()
}

// String renders item as it appears in a Queue dump section.
func (item QueueItem) String() string {
	if item.IsFact() {
		return Fact{Name: item.Fact.Name, Args: item.Fact.Args, Values: item.Fact.Values}.String()
	}
	return item.Prefix.Name + "{ " + item.Prefix.Subst.String() + " }"
}

// Dump renders db per spec.md §6: two labelled sections, "Queue" (FIFO
// order) and "Database" (all facts printed as propositions, then all
// stored prefixes as "name{ t1/X1, t2/X2, … }" with variables sorted by
// name). Exact whitespace is not a compatibility surface; section
// headers and queue item ordering are.
func (db *Database) Dump() string {
	var b strings.Builder

	b.WriteString("Queue\n")
	for _, item := range db.queue {
		b.WriteString("  ")
		b.WriteString(item.String())
		b.WriteByte('\n')
	}

	b.WriteString("Database\n")
	names := db.RelationNames()
	sort.Strings(names)
	for _, name := range names {
		for _, f := range db.FactsFor(name) {
			b.WriteString("  ")
			b.WriteString(f.String())
			b.WriteByte('\n')
		}
	}

	prefixNames := db.PrefixNames()
	sort.Strings(prefixNames)
	for _, name := range prefixNames {
		for _, s := range db.PrefixesFor(name) {
			b.WriteString("  ")
			b.WriteString(name)
			b.WriteString("{ ")
			b.WriteString(s.String())
			b.WriteString(" }\n")
		}
	}

	return b.String()
}

// AllFacts returns every fact stored in db across all relations, with
// relations visited in sorted-name order and facts within a relation in
// stable insertion order — a convenient form for asserting on a
// saturated model's contents in tests.
func (db *Database) AllFacts() []Fact {
	names := db.RelationNames()
	sort.Strings(names)
	var out []Fact
	for _, name := range names {
		out = append(out, db.FactsFor(name)...)
	}
	return out
}
