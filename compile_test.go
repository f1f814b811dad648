package saturnlog

import (
	"strings"
	"testing"
)

func TestParseProgramSeedFacts(t *testing.T) {
	prog, err := ParseProgram(strings.NewReader(`
		edge a b .
		age alice = 30 .
	`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	edges := prog.Seed.FactsFor("edge")
	if len(edges) != 1 || edges[0].String() != "edge a b" {
		t.Fatalf("got %v, want one fact \"edge a b\"", edges)
	}
	ages := prog.Seed.FactsFor("age")
	if len(ages) != 1 || ages[0].String() != "age alice = 30" {
		t.Fatalf("got %v, want one fact \"age alice = 30\"", ages)
	}
}

func TestParseProgramRuleShape(t *testing.T) {
	prog, err := ParseProgram(strings.NewReader(`
		path X Y :- edge X Y .
	`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Rules) != 1 {
		t.Fatalf("got %d rule positions, want 1", len(prog.Rules))
	}
	if len(prog.Conclusions) != 1 {
		t.Fatalf("got %d conclusions, want 1", len(prog.Conclusions))
	}
	if prog.Seed.QueueLen() != 1 {
		t.Fatalf("seed queue len = %d, want 1 (the rule's initial prefix)", prog.Seed.QueueLen())
	}
}

func TestParseProgramUndefinedVariableInHead(t *testing.T) {
	_, err := ParseProgram(strings.NewReader(`
		path X Z :- edge X Y .
	`))
	if _, ok := err.(*UndefinedVariableInHead); !ok {
		t.Fatalf("got %v (%T), want *UndefinedVariableInHead", err, err)
	}
}

func TestParseProgramUndefinedVariableInInequality(t *testing.T) {
	_, err := ParseProgram(strings.NewReader(`
		! :- edge X Y, X != Z .
	`))
	if _, ok := err.(*UndefinedVariableInInequality); !ok {
		t.Fatalf("got %v (%T), want *UndefinedVariableInInequality", err, err)
	}
}

func TestParseProgramUngroundSeedFact(t *testing.T) {
	_, err := ParseProgram(strings.NewReader(`edge X b .`))
	if _, ok := err.(*UngroundEqualityLHS); !ok {
		t.Fatalf("got %v (%T), want *UngroundEqualityLHS", err, err)
	}
}

func TestParseProgramConstraint(t *testing.T) {
	prog, err := ParseProgram(strings.NewReader(`
		! :- edge a a .
	`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var found bool
	for _, c := range prog.Conclusions {
		if c.Contradiction {
			found = true
		}
	}
	if !found {
		t.Error("expected a Contradiction conclusion")
	}
}

func TestParseProgramComments(t *testing.T) {
	prog, err := ParseProgram(strings.NewReader(`
		% a loop-free line graph
		edge a b . % trailing comment
		edge b c .
	`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(prog.Seed.FactsFor("edge")) != 2 {
		t.Fatalf("got %d edge facts, want 2", len(prog.Seed.FactsFor("edge")))
	}
}
