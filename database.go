package saturnlog

import (
	uuid "github.com/satori/go.uuid"
)

// InsertOutcome is the result of InsertFact, per spec.md §4.2.
type InsertOutcome int

const (
	Inserted InsertOutcome = iota
	Redundant
	Inconsistent
)

func (o InsertOutcome) String() string {
	switch o {
	case Inserted:
		return "Inserted"
	case Redundant:
		return "Redundant"
	case Inconsistent:
		return "Inconsistent"
	default:
		return "InsertOutcome(?)"
	}
}

type storedFact struct {
	args   []Data
	values []Data
}

// relationStore holds the rows for one relation name. order tracks
// insertion order alongside the map so that FactsFor iterates in a
// stable order within a run (spec.md §4.4, "Numeric/tie-break notes":
// fact iteration order is implementation-defined but must be stable
// within a single run).
type relationStore struct {
	byKey map[factKey]storedFact
	order []factKey
}

func newRelationStore() *relationStore {
	return &relationStore{byKey: map[factKey]storedFact{}}
}

func (r *relationStore) get(key factKey) (storedFact, bool) {
	v, ok := r.byKey[key]
	return v, ok
}

func (r *relationStore) put(key factKey, f storedFact) {
	if _, exists := r.byKey[key]; !exists {
		r.order = append(r.order, key)
	}
	r.byKey[key] = f
}

func (r *relationStore) clone() *relationStore {
	out := &relationStore{
		byKey: make(map[factKey]storedFact, len(r.byKey)),
		order: append([]factKey(nil), r.order...),
	}
	for k, v := range r.byKey {
		out.byKey[k] = storedFact{args: v.args, values: v.values}
	}
	return out
}

// prefixBucket is the set of substitutions stored for one prefix name.
// Substitutions are indexed by a murmur3 structural hash as a fast
// pre-filter; the pointwise EqualSubstitution compare (the actual
// invariant from spec.md §3) is always the final arbiter, so hash
// collisions cannot cause an incorrect duplicate or miss.
type prefixBucket struct {
	byHash map[uint64][]Substitution
}

func newPrefixBucket() *prefixBucket {
	return &prefixBucket{byHash: map[uint64][]Substitution{}}
}

func (b *prefixBucket) has(s Substitution) bool {
	for _, existing := range b.byHash[substHash(s)] {
		if EqualSubstitution(existing, s) {
			return true
		}
	}
	return false
}

func (b *prefixBucket) add(s Substitution) {
	h := substHash(s)
	b.byHash[h] = append(b.byHash[h], s)
}

func (b *prefixBucket) all() []Substitution {
	out := make([]Substitution, 0)
	for _, bucket := range b.byHash {
		out = append(out, bucket...)
	}
	return out
}

func (b *prefixBucket) clone() *prefixBucket {
	out := &prefixBucket{byHash: make(map[uint64][]Substitution, len(b.byHash))}
	for h, bucket := range b.byHash {
		out.byHash[h] = append([]Substitution(nil), bucket...)
	}
	return out
}

// Database is the bottom-up solver's working state: the functional fact
// store, the auxiliary uninteresting set, the prefix store, and the work
// queue (spec.md §3). Values are not safe for concurrent mutation by
// design (spec.md §5: "single-threaded cooperative"); Clone is the only
// sanctioned way to derive a second independently-mutable Database, used
// by the stepper when a step branches.
type Database struct {
	// ID is a generation stamp, bumped fresh on every Clone. It has no
	// bearing on solver semantics — it exists purely so that logs and
	// traces can name one branch database unambiguously (spec.md §9's
	// "arenas with generation stamps" design note).
	ID uuid.UUID

	facts         map[string]*relationStore
	uninteresting map[string]*relationStore
	prefixes      map[string]*prefixBucket
	queue         []QueueItem
}

// NewDatabase returns an empty, freshly-stamped Database.
func NewDatabase() *Database {
	return &Database{
		ID:            uuid.NewV4(),
		facts:         map[string]*relationStore{},
		uninteresting: map[string]*relationStore{},
		prefixes:      map[string]*prefixBucket{},
	}
}

// Clone deep-copies db into an independently-mutable Database stamped
// with a fresh generation ID. spec.md §5 explicitly permits a full deep
// clone on branching as "acceptable and simpler" than structural
// sharing, so that is the strategy used here.
func (db *Database) Clone() *Database {
	out := &Database{
		ID:            uuid.NewV4(),
		facts:         make(map[string]*relationStore, len(db.facts)),
		uninteresting: make(map[string]*relationStore, len(db.uninteresting)),
		prefixes:      make(map[string]*prefixBucket, len(db.prefixes)),
		queue:         append([]QueueItem(nil), db.queue...),
	}
	for name, r := range db.facts {
		out.facts[name] = r.clone()
	}
	for name, r := range db.uninteresting {
		out.uninteresting[name] = r.clone()
	}
	for name, b := range db.prefixes {
		out.prefixes[name] = b.clone()
	}
	return out
}

// InsertFact implements spec.md §4.2's insert_fact. The functional
// invariant (one values tuple per (name, args) key) is enforced here and
// nowhere else.
func (db *Database) InsertFact(name string, args, values []Data) InsertOutcome {
	key := canonArgs(args)

	if u, ok := db.uninteresting[name]; ok {
		if existing, ok := u.get(key); ok {
			if EqualList(existing.values, values) {
				return Redundant
			}
			return Inconsistent
		}
	}

	r, ok := db.facts[name]
	if !ok {
		r = newRelationStore()
		db.facts[name] = r
	}
	if existing, ok := r.get(key); ok {
		if EqualList(existing.values, values) {
			return Redundant
		}
		return Inconsistent
	}

	r.put(key, storedFact{args: args, values: values})
	db.queue = append(db.queue, factQueueItem(name, args, values))
	return Inserted
}

// MarkUninteresting records (name, args, values) as proved-redundant
// without enqueueing a FactItem (spec.md §3: "uninteresting suppresses
// queue-ing"). A subsequent InsertFact for the same (name, args) key
// with the same values reports Redundant; with different values it
// reports Inconsistent, same as a regular functional clash.
func (db *Database) MarkUninteresting(name string, args, values []Data) {
	r, ok := db.uninteresting[name]
	if !ok {
		r = newRelationStore()
		db.uninteresting[name] = r
	}
	r.put(canonArgs(args), storedFact{args: args, values: values})
}

// ExtendPrefix implements spec.md §4.2's extend_prefix: if an equivalent
// substitution is already stored under prefixes[name], this is a no-op
// (returns false); otherwise it stores subst and enqueues a PrefixItem
// (returns true).
func (db *Database) ExtendPrefix(name string, subst Substitution) bool {
	b, ok := db.prefixes[name]
	if !ok {
		b = newPrefixBucket()
		db.prefixes[name] = b
	}
	if b.has(subst) {
		return false
	}
	b.add(subst)
	db.queue = append(db.queue, prefixQueueItem(name, subst))
	return true
}

// PopQueue implements spec.md §4.2's pop_queue: FIFO order, ok=false on
// an empty queue.
func (db *Database) PopQueue() (QueueItem, bool) {
	if len(db.queue) == 0 {
		return QueueItem{}, false
	}
	item := db.queue[0]
	db.queue = db.queue[1:]
	return item, true
}

// QueueLen reports the number of pending work items.
func (db *Database) QueueLen() int { return len(db.queue) }

// FactsFor iterates the stored (args, values) rows for relation name in
// stable insertion order.
func (db *Database) FactsFor(name string) []Fact {
	r, ok := db.facts[name]
	if !ok {
		return nil
	}
	out := make([]Fact, 0, len(r.order))
	for _, key := range r.order {
		sf := r.byKey[key]
		out = append(out, Fact{Name: name, Args: sf.args, Values: sf.values})
	}
	return out
}

// PrefixesFor returns the substitutions stored for prefix name, in no
// particular order.
func (db *Database) PrefixesFor(name string) []Substitution {
	b, ok := db.prefixes[name]
	if !ok {
		return nil
	}
	return b.all()
}

// RelationNames lists every relation with at least one stored fact, used
// by the database dump.
func (db *Database) RelationNames() []string {
	out := make([]string, 0, len(db.facts))
	for name := range db.facts {
		out = append(out, name)
	}
	return out
}

// PrefixNames lists every prefix with at least one stored substitution,
// used by the database dump.
func (db *Database) PrefixNames() []string {
	out := make([]string, 0, len(db.prefixes))
	for name := range db.prefixes {
		out = append(out, name)
	}
	return out
}
