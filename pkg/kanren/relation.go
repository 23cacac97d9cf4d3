package kanren

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/spaolacci/murmur3"
)

// Relation is a named, fixed-arity, indexed store of ground facts (spec
// §4.6's "extensional relation" — the R in R(x1, ..., xk)). Relations are
// safe for concurrent reads and writes; the mutex exists to make that
// true, not to provide any ordering guarantee across goroutines, since
// the engine itself never evaluates goals concurrently.
type Relation struct {
	name  string
	arity int

	mu      sync.RWMutex
	facts   []fact
	indexes []map[uint64][]int // one index per column, built lazily
	seen    map[string]bool    // dedup key -> present
}

type fact struct {
	id    uuid.UUID
	terms []Term
}

// NewRelation creates an empty relation of the given name and arity.
// Arity must be positive.
func NewRelation(name string, arity int) *Relation {
	if arity <= 0 {
		panic(fmt.Sprintf("kanren: relation %q must have positive arity", name))
	}
	return &Relation{
		name:    name,
		arity:   arity,
		indexes: make([]map[uint64][]int, arity),
		seen:    make(map[string]bool),
	}
}

// Name returns the relation's name, for diagnostics and tracing.
func (r *Relation) Name() string { return r.name }

// Arity returns the relation's fixed arity.
func (r *Relation) Arity() int { return r.arity }

func hashTerm(t Term) uint64 {
	h := murmur3.New64()
	fmt.Fprint(h, Reify(t))
	return h.Sum64()
}

func factKey(terms []Term) string {
	key := ""
	for _, t := range terms {
		key += Reify(t) + "\x00"
	}
	return key
}

// AddFact inserts a ground row into the relation, assigning it a fresh
// identifier. Inserting an identical row twice is a no-op: relations
// store a set of facts, not a multiset (spec §4.6). AddFact returns an
// error rather than panicking if given a non-ground term or the wrong
// number of terms, since this is a library-surface call with room for
// one (spec §7) — a fact database is built by the host program, not
// derived at query time, so there is no sensible lazy behavior here.
func (r *Relation) AddFact(terms ...Term) error {
	if len(terms) != r.arity {
		return &ArityMismatchError{Relation: r.name, Want: r.arity, Got: len(terms)}
	}
	for _, t := range terms {
		if !ground(t) {
			return &NonGroundError{Op: "Relation.AddFact", Term: t}
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := factKey(terms)
	if r.seen[key] {
		return nil
	}
	r.seen[key] = true

	id := len(r.facts)
	r.facts = append(r.facts, fact{id: uuid.New(), terms: terms})
	for col, t := range terms {
		if r.indexes[col] == nil {
			r.indexes[col] = make(map[uint64][]int)
		}
		h := hashTerm(t)
		r.indexes[col][h] = append(r.indexes[col][h], id)
	}
	return nil
}

// Facts returns a snapshot of every row currently in the relation, in
// insertion order.
func (r *Relation) Facts() [][]Term {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([][]Term, len(r.facts))
	for i, f := range r.facts {
		out[i] = append([]Term(nil), f.terms...)
	}
	return out
}

// candidateRows picks the smallest candidate set it can find by probing
// the index of any argument already ground under s, falling back to a
// full scan when every argument is still unbound.
func (r *Relation) candidateRows(args []Term, s *Subst) []int {
	best := -1
	var bestIDs []int
	for col, arg := range args {
		w := s.WalkStar(arg)
		if !ground(w) {
			continue
		}
		idx := r.indexes[col]
		if idx == nil {
			continue
		}
		ids := idx[hashTerm(w)]
		if best == -1 || len(ids) < len(bestIDs) {
			best, bestIDs = col, ids
		}
	}
	if best == -1 {
		all := make([]int, len(r.facts))
		for i := range all {
			all[i] = i
		}
		return all
	}
	return bestIDs
}

// Goal returns the goal form of the relation applied to args — the Go
// rendering of the calling convention R(x1, ..., xk) from spec §4.6. It
// succeeds once for every fact row that unifies with args, in the
// relation's insertion order, tie-broken by that order whenever the
// index narrows the candidate set without fully ordering it.
func (r *Relation) Goal(args ...Term) Goal {
	return func(st *State) Stream {
		if len(args) != r.arity {
			panic(&ArityMismatchError{Relation: r.name, Want: r.arity, Got: len(args)})
		}
		r.mu.RLock()
		rows := r.candidateRows(args, st.Subst)
		facts := make([]fact, len(rows))
		for i, id := range rows {
			facts[i] = r.facts[id]
		}
		r.mu.RUnlock()

		var build func(i int) Stream
		build = func(i int) Stream {
			if i >= len(facts) {
				return EmptyStream
			}
			row := facts[i]
			return Mplus(
				Suspend(func() Stream {
					g := make([]Goal, len(args))
					for j := range args {
						g[j] = Eq(args[j], row.terms[j])
					}
					return Lall(g...)(st)
				}),
				Suspend(func() Stream { return build(i + 1) }),
			)
		}
		return build(0)
	}
}
