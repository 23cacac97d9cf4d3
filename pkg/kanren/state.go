package kanren

// State pairs a substitution with the constraints still pending against
// it (spec §3: "a State is a substitution plus a constraint store").
// States are immutable; every operation that would mutate one instead
// returns a new State value.
type State struct {
	Subst       *Subst
	Constraints *constraintStore
}

// EmptyState returns a State with no bindings and no pending constraints.
func EmptyState() *State {
	return &State{Subst: EmptySubst(), Constraints: emptyConstraintStore()}
}

func (st *State) withConstraint(c constraint) *State {
	return &State{Subst: st.Subst, Constraints: st.Constraints.add(c)}
}

func (st *State) withSubst(s *Subst) *State {
	return &State{Subst: s, Constraints: st.Constraints}
}

// unifyState runs unify(u, v, st.Subst), then revalidates every pending
// constraint against the resulting substitution (spec §4.5), returning
// the new State and whether the whole operation succeeded.
func unifyState(u, v Term, st *State) (*State, bool) {
	ns, _, ok := unify(u, v, st.Subst)
	if !ok {
		return st, false
	}
	nc, ok := st.Constraints.revalidateAll(ns)
	if !ok {
		return st, false
	}
	return &State{Subst: ns, Constraints: nc}, true
}
