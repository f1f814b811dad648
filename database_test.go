package saturnlog

import "testing"

func TestInsertFactOutcomes(t *testing.T) {
	db := NewDatabase()

	if got := db.InsertFact("age", []Data{Const("alice")}, []Data{Int(30)}); got != Inserted {
		t.Fatalf("first insert: got %s, want Inserted", got)
	}
	if got := db.InsertFact("age", []Data{Const("alice")}, []Data{Int(30)}); got != Redundant {
		t.Fatalf("repeat insert: got %s, want Redundant", got)
	}
	if got := db.InsertFact("age", []Data{Const("alice")}, []Data{Int(31)}); got != Inconsistent {
		t.Fatalf("clashing insert: got %s, want Inconsistent", got)
	}
}

func TestInsertFactEnqueuesOnlyOnInserted(t *testing.T) {
	db := NewDatabase()
	db.InsertFact("p", []Data{Const("a")}, nil)
	db.InsertFact("p", []Data{Const("a")}, nil) // redundant
	db.InsertFact("p", []Data{Const("b")}, []Data{Int(1)})

	if db.QueueLen() != 2 {
		t.Fatalf("QueueLen() = %d, want 2", db.QueueLen())
	}
}

func TestMarkUninterestingSuppressesQueueing(t *testing.T) {
	db := NewDatabase()
	db.MarkUninteresting("p", []Data{Const("a")}, []Data{Int(1)})

	if got := db.InsertFact("p", []Data{Const("a")}, []Data{Int(1)}); got != Redundant {
		t.Fatalf("got %s, want Redundant", got)
	}
	if got := db.InsertFact("p", []Data{Const("a")}, []Data{Int(2)}); got != Inconsistent {
		t.Fatalf("got %s, want Inconsistent", got)
	}
	if db.QueueLen() != 0 {
		t.Fatalf("QueueLen() = %d, want 0", db.QueueLen())
	}
}

func TestExtendPrefixDeduplicates(t *testing.T) {
	db := NewDatabase()
	s := EmptySubstitution().Extend("X", Const("a"))

	if !db.ExtendPrefix("r1_0", s) {
		t.Error("first ExtendPrefix should report true")
	}
	if db.ExtendPrefix("r1_0", s) {
		t.Error("duplicate ExtendPrefix should report false")
	}
	if len(db.PrefixesFor("r1_0")) != 1 {
		t.Errorf("PrefixesFor() len = %d, want 1", len(db.PrefixesFor("r1_0")))
	}
	if db.QueueLen() != 1 {
		t.Errorf("QueueLen() = %d, want 1", db.QueueLen())
	}
}

func TestPopQueueIsFIFO(t *testing.T) {
	db := NewDatabase()
	db.InsertFact("p", []Data{Const("a")}, nil)
	db.InsertFact("p", []Data{Const("b")}, nil)

	first, ok := db.PopQueue()
	if !ok || !Equal(first.Fact.Args[0], Const("a")) {
		t.Fatalf("expected first popped item to carry arg a, got %+v", first)
	}
	second, ok := db.PopQueue()
	if !ok || !Equal(second.Fact.Args[0], Const("b")) {
		t.Fatalf("expected second popped item to carry arg b, got %+v", second)
	}
	if _, ok := db.PopQueue(); ok {
		t.Error("expected queue to be empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	db := NewDatabase()
	db.InsertFact("p", []Data{Const("a")}, nil)

	clone := db.Clone()
	if clone.ID == db.ID {
		t.Error("expected Clone to stamp a fresh ID")
	}

	clone.InsertFact("p", []Data{Const("b")}, nil)
	if len(db.FactsFor("p")) != 1 {
		t.Errorf("original mutated by clone: got %d facts, want 1", len(db.FactsFor("p")))
	}
	if len(clone.FactsFor("p")) != 2 {
		t.Errorf("clone missing its own insert: got %d facts, want 2", len(clone.FactsFor("p")))
	}

	// Draining the clone's queue must not affect the original's.
	clone.PopQueue()
	clone.PopQueue()
	if db.QueueLen() != 1 {
		t.Errorf("original queue mutated by clone: got %d, want 1", db.QueueLen())
	}
}
