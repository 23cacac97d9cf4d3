package kanren

import "reflect"

// constraint is revalidated every time the substitution it closed over is
// extended with new bindings. It returns the constraint to keep for
// future revalidation (nil once it can never be violated or satisfied
// again) and whether it still holds.
type constraint interface {
	revalidate(s *Subst) (constraint, bool)
}

// constraintStore holds every still-pending constraint in a State. It is
// copy-on-extend like Subst, so States that share a prefix of computation
// share a constraint store slice header safely (constraints themselves
// are immutable values).
type constraintStore struct {
	items []constraint
}

func emptyConstraintStore() *constraintStore {
	return &constraintStore{}
}

// add returns a new store with c appended.
func (cs *constraintStore) add(c constraint) *constraintStore {
	next := make([]constraint, len(cs.items), len(cs.items)+1)
	copy(next, cs.items)
	next = append(next, c)
	return &constraintStore{items: next}
}

// revalidateAll re-checks every constraint against s, used after every
// Subst.Extend (spec §4.5: "constraints are revalidated whenever the
// substitution they depend on grows"). It returns the surviving store and
// false if any constraint is now violated.
func (cs *constraintStore) revalidateAll(s *Subst) (*constraintStore, bool) {
	kept := make([]constraint, 0, len(cs.items))
	for _, c := range cs.items {
		nc, ok := c.revalidate(s)
		if !ok {
			return cs, false
		}
		if nc != nil {
			kept = append(kept, nc)
		}
	}
	return &constraintStore{items: kept}, true
}

// neqConstraint is a disequality obligation between the original terms u
// and v, not any flattened per-variable decomposition of them. Re-running
// full unification of (u, v) against the current substitution on every
// revalidation — rather than splitting into independent sub-constraints
// up front — is what keeps this sound when u or v is itself a compound:
// the constraint can only be declared permanently violated once
// unification of the whole pair succeeds with no remaining freedom to
// avoid it.
type neqConstraint struct {
	u, v Term
}

func (c *neqConstraint) revalidate(s *Subst) (constraint, bool) {
	_, bound, ok := unify(c.u, c.v, s)
	if !ok {
		// u and v can never be made equal: the disequality holds
		// unconditionally from here on, nothing left to check.
		return nil, true
	}
	if len(bound) == 0 {
		// u and v are already equal under s with no further extension
		// required: the disequality is violated.
		return nil, false
	}
	return c, true
}

// Neq is the disequality goal: it succeeds unless u and v are already
// forced equal, and thereafter blocks any future binding that would make
// them equal.
func Neq(u, v Term) Goal {
	return func(st *State) Stream {
		c := &neqConstraint{u: u, v: v}
		nc, ok := c.revalidate(st.Subst)
		if !ok {
			return EmptyStream
		}
		if nc == nil {
			return unit(st)
		}
		return unit(st.withConstraint(nc))
	}
}

// typeConstraint pins a term's walked value to (or away from) membership
// in a fixed set of Go types. It stays pending for as long as the term is
// unbound, and resolves permanently the first time the term becomes
// ground.
type typeConstraint struct {
	term    Term
	types   []reflect.Type
	exclude bool
}

func (c *typeConstraint) matches(t Term) bool {
	tt := reflect.TypeOf(t)
	for _, want := range c.types {
		if tt == want {
			return true
		}
	}
	return false
}

func (c *typeConstraint) revalidate(s *Subst) (constraint, bool) {
	w := s.WalkStar(c.term)
	if !ground(w) {
		return c, true
	}
	m := c.matches(w)
	if c.exclude {
		return nil, !m
	}
	return nil, m
}

// Typeo holds once x's walked value has one of the given Go types; until
// x is bound it remains pending rather than failing or succeeding.
func Typeo(x Term, types ...reflect.Type) Goal {
	return func(st *State) Stream {
		c := &typeConstraint{term: x, types: types, exclude: false}
		nc, ok := c.revalidate(st.Subst)
		if !ok {
			return EmptyStream
		}
		if nc == nil {
			return unit(st)
		}
		return unit(st.withConstraint(nc))
	}
}

// NotTypeo holds as long as x's walked value never takes one of the
// given Go types.
func NotTypeo(x Term, types ...reflect.Type) Goal {
	return func(st *State) Stream {
		c := &typeConstraint{term: x, types: types, exclude: true}
		nc, ok := c.revalidate(st.Subst)
		if !ok {
			return EmptyStream
		}
		if nc == nil {
			return unit(st)
		}
		return unit(st.withConstraint(nc))
	}
}
