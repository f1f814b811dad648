package saturnlog

// Step implements spec.md §4.4: pop exactly one item from db's queue and
// return the resulting successor databases. The caller (the Driver) must
// never call Step on a database whose queue is empty — that is the
// signal the database is saturated, not a step to take.
//
// Return cardinality encodes the outcome:
//   - nil/empty: this database is closed as inconsistent.
//   - one element: a deterministic advance (which may — and, to avoid a
//     needless Clone, typically does — alias db itself, now mutated).
//   - two or more elements: a branching choice.
func Step(prog *Program, db *Database) []*Database {
	item, ok := db.PopQueue()
	if !ok {
		panicInvariant("Step called on a database with an empty queue")
	}

	if item.IsPrefix() {
		return stepPrefixItem(prog, db, *item.Prefix)
	}
	return stepFactItem(prog, db, *item.Fact)
}

// stepPrefixItem handles spec.md §4.4 cases 2 and 3: the popped item is a
// newly-reached prefix, which is either a terminal (conclusion) or has a
// further premise to evaluate.
func stepPrefixItem(prog *Program, db *Database, item PrefixItem) []*Database {
	if concl, ok := prog.Conclusions[item.Name]; ok {
		return stepConclusion(db, concl, item.Subst)
	}
	if rule, ok := prog.Rules[item.Name]; ok {
		stepPartialRule(db, rule, item.Subst)
		return []*Database{db}
	}
	panicInvariant("prefix name %q is neither a rule position nor a conclusion", item.Name)
	return nil
}

// stepConclusion is spec.md §4.4 case 2.
func stepConclusion(db *Database, concl InternalConclusion, subst Substitution) []*Database {
	if concl.Contradiction {
		logger.WithFields(map[string]interface{}{
			"db": db.ID.String(),
		}).Debug("contradiction terminal reached, pruning database")
		return nil
	}

	args, err := ApplyList(subst, concl.ArgPatterns)
	if err != nil {
		panicInvariant("NewFact %q: %v", concl.HeadName, err)
	}

	successors := make([]*Database, 0, len(concl.ValuePatterns)+1)
	redundantPossibility := false

	// Every alternative is probed against its own clone of the
	// pre-conclusion database: spec.md §5 requires successor databases
	// to share no mutable state, and db itself is reserved, unmutated,
	// for the trailing no-progress branch below.
	for _, alt := range concl.ValuePatterns {
		values, err := ApplyList(subst, alt)
		if err != nil {
			panicInvariant("NewFact %q alternative: %v", concl.HeadName, err)
		}

		target := db.Clone()
		switch target.InsertFact(concl.HeadName, args, values) {
		case Inserted:
			successors = append(successors, target)
		case Redundant:
			redundantPossibility = true
		case Inconsistent:
			// drop this alternative only
			var existing []Data
			if r, ok := db.facts[concl.HeadName]; ok {
				if sf, ok := r.get(canonArgs(args)); ok {
					existing = sf.values
				}
			}
			logger.WithError(&FunctionalInconsistency{
				Name: concl.HeadName, Args: args, ExistingValues: existing, NewValues: values,
			}).WithFields(map[string]interface{}{
				"db": db.ID.String(),
			}).Debug("functional inconsistency, dropping alternative")
		}
	}

	if !concl.Exhaustive || redundantPossibility {
		// The no-progress alternative: saturate as if this rule instance
		// simply declined to add anything. Per spec.md §4.4's ordering
		// note, it goes last.
		successors = append(successors, db)
	}

	if len(successors) == 0 {
		logger.WithError(&ExhaustiveChoiceExhausted{HeadName: concl.HeadName}).WithFields(map[string]interface{}{
			"db":   db.ID.String(),
			"head": concl.HeadName,
		}).Debug("exhaustive choice exhausted, pruning database")
	}

	return successors
}

// stepPartialRule is spec.md §4.4 case 3: advance one non-terminal prefix
// position by either matching its Proposition premise against the fact
// store, or evaluating its Inequality premise, and extending every
// successor position for each resulting substitution. This mutates db in
// place (extending prefixes / growing the queue) and never branches —
// the branching decision belongs entirely to conclusions.
func stepPartialRule(db *Database, rule InternalPartialRule, subst Substitution) {
	switch {
	case rule.Premise.IsProposition():
		p := *rule.Premise.Proposition
		for _, fact := range db.FactsFor(p.Name) {
			if next, ok := MatchProposition(subst, p, fact.Args, fact.Values); ok {
				for _, q := range rule.Next {
					db.ExtendPrefix(q, next)
				}
			}
		}

	case rule.Premise.IsInequality():
		ineq := *rule.Premise.Inequality
		a, err := Apply(subst, ineq.A)
		if err != nil {
			panicInvariant("inequality premise: %v", err)
		}
		b, err := Apply(subst, ineq.B)
		if err != nil {
			panicInvariant("inequality premise: %v", err)
		}
		if !Equal(a, b) {
			for _, q := range rule.Next {
				db.ExtendPrefix(q, subst)
			}
		}

	default:
		panicInvariant("prefix position has neither a Proposition nor an Inequality premise")
	}
}

// stepFactItem is spec.md §4.4 case 4: a newly inserted fact searches for
// awaiting prefixes whose next premise it might satisfy. This is the
// fact-driven direction that makes delta propagation symmetric with the
// prefix-driven direction in stepPartialRule (spec.md §9, "Prefix-chain
// lowering").
func stepFactItem(prog *Program, db *Database, item FactItem) []*Database {
	for name, rule := range prog.Rules {
		if !rule.Premise.IsProposition() {
			continue
		}
		p := *rule.Premise.Proposition
		if p.Name != item.Name {
			continue
		}
		for _, subst := range db.PrefixesFor(name) {
			if next, ok := MatchProposition(subst, p, item.Args, item.Values); ok {
				for _, q := range rule.Next {
					db.ExtendPrefix(q, next)
				}
			}
		}
	}
	return []*Database{db}
}
