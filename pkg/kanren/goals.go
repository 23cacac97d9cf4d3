package kanren

// Goal is a pure function from a State to the Stream of States that
// satisfy it. Every relational combinator in this package builds or
// composes Goal values; nothing in the engine ever inspects a Goal's
// internals, only calls it.
type Goal func(st *State) Stream

// Eq is the core unification goal: it succeeds with the single State
// extending st if u and v can be made equal, revalidating every pending
// constraint against the extension.
func Eq(u, v Term) Goal {
	return func(st *State) Stream {
		ns, ok := unifyState(u, v, st)
		if !ok {
			return EmptyStream
		}
		return unit(ns)
	}
}

// Succeed always succeeds, contributing no bindings.
func Succeed() Goal {
	return func(st *State) Stream { return unit(st) }
}

// Fail never succeeds.
func Fail() Goal {
	return func(st *State) Stream { return EmptyStream }
}

// Conj is the binary sequential conjunction of two goals: g2 is tried
// against every State g1 produces.
func Conj(g1, g2 Goal) Goal {
	return func(st *State) Stream {
		return Bind(g1(st), g2)
	}
}

// Lall is n-ary conjunction, left-associated: Lall(g1, g2, g3) behaves as
// Conj(Conj(g1, g2), g3). Lall() with no arguments is Succeed.
func Lall(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Succeed()
	}
	g := goals[0]
	for _, next := range goals[1:] {
		g = Conj(g, next)
	}
	return g
}

// Disj is the binary fair disjunction of two goals. Both arms are
// suspended before being merged with Mplus, which is what lets an
// infinite left arm coexist with a productive right arm (spec §4.4).
func Disj(g1, g2 Goal) Goal {
	return func(st *State) Stream {
		return Mplus(
			Suspend(func() Stream { return g1(st) }),
			Suspend(func() Stream { return g2(st) }),
		)
	}
}

// Lany is n-ary disjunction, right-associated and fair across all of its
// arguments, not just adjacent pairs: Lany(g1, g2, g3) behaves as
// Disj(g1, Disj(g2, g3)). Lany() with no arguments is Fail.
func Lany(goals ...Goal) Goal {
	if len(goals) == 0 {
		return Fail()
	}
	g := goals[len(goals)-1]
	for i := len(goals) - 2; i >= 0; i-- {
		g = Disj(goals[i], g)
	}
	return g
}

// Conde takes a set of clauses, each a conjunction of goals, and succeeds
// with the fair union of every clause that succeeds — the usual
// miniKanren "cond with an implicit else of fail" form.
func Conde(clauses ...[]Goal) Goal {
	arms := make([]Goal, len(clauses))
	for i, clause := range clauses {
		arms[i] = Lall(clause...)
	}
	return Lany(arms...)
}

// Fresh introduces one new logic variable, scoped to the Goal returned by
// build, and runs that goal. FreshN generalizes this to k variables at
// once.
func Fresh(build func(*Var) Goal) Goal {
	return func(st *State) Stream {
		v := NewVar("")
		return build(v)(st)
	}
}

// FreshN introduces k fresh logic variables at once, scoped to the Goal
// returned by build.
func FreshN(k int, build func([]*Var) Goal) Goal {
	return func(st *State) Stream {
		vs := Vars(k)
		return build(vs)(st)
	}
}

// Ground succeeds iff v's walked value contains no unbound variable
// anywhere in its structure; unlike Typeo it never pends — an unbound or
// partially-bound v fails immediately rather than waiting for a future
// binding (spec §4.3/G: "ground(v): succeeds iff walk*(v, S) contains no
// variable").
func Ground(v Term) Goal {
	return func(st *State) Stream {
		if !ground(st.Subst.WalkStar(v)) {
			return EmptyStream
		}
		return unit(st)
	}
}

// Onceo commits to the first answer of g, if any, discarding the rest of
// its stream.
func Onceo(g Goal) Goal {
	return func(st *State) Stream {
		results := Take(g(st), 1)
		if len(results) == 0 {
			return EmptyStream
		}
		return unit(results[0])
	}
}
