package kanren

// Applyo relates a compound term to its decomposition into a head
// (rator) and an ordered list of children (rands), in the style of a
// Lisp's apply: Applyo(rator, rands, term) holds when term's Head is
// rator and term's Children, collected into a proper list, is rands.
//
// When term is already a Compound, rator and rands are read off it
// directly. When term is an unbound variable, Applyo reconstructs it —
// but only for the built-in Seq shape, since building "a value of some
// arbitrary host Compound type" out of nothing has no general recipe
// (spec §4.8); a caller relating a custom Compound type in the
// expanding direction must supply its own relation, the way Reduceo's
// relation argument does.
func Applyo(rator, rands, term Term) Goal {
	return func(st *State) Stream {
		w := st.Subst.Walk(term)

		if c, ok := asCompound(w); ok {
			childList := List(c.Children()...)
			return Lall(Eq(rator, c.Head()), Eq(rands, childList))(st)
		}

		if _, isv := isVar(w); isv {
			ratorW := st.Subst.Walk(rator)
			if _, stillVar := isVar(ratorW); stillVar {
				return EmptyStream
			}
			if _, ok := listLen(st.Subst, rands); !ok {
				return EmptyStream
			}
			items := flattenList(st.Subst, rands)
			rebuilt := Seq(append([]Term{ratorW}, items...))
			return Eq(term, rebuilt)(st)
		}

		return EmptyStream
	}
}

// flattenList walks a proper list term into a Go slice; the caller must
// already know (via listLen) that it terminates in Nil.
func flattenList(s *Subst, t Term) []Term {
	var out []Term
	for {
		w := s.Walk(t)
		p, ok := w.(*Pair)
		if !ok {
			return out
		}
		out = append(out, p.Car)
		t = p.Cdr
	}
}

// BinaryRelation is the shape Reduceo expects for the rewrite rule it
// repeatedly applies: a goal constructor of exactly two term arguments.
type BinaryRelation func(in, out Term) Goal

// Reduceo relates inTerm and outTerm as the fixed point of repeatedly
// applying relation to inTerm (spec §4.8; grounded on the reference
// reduceo, which folds "one rewrite step" and "the identity step" into a
// single disjunction so that both the fully-reduced term and every
// partially-reduced intermediate are valid answers).
//
// When inTerm is already ground, the rewrite step runs first and the
// disjunction between stopping and rewriting again comes after it. Disj
// interleaves fairly, so for a relation with one result per step the
// answers come in order of the number of steps taken: the one-step result
// first and the fixed point, if there is one, last. When inTerm is an
// unbound variable — relation is
// being used "backward" to expand rather than reduce — the disjunction
// is tried before the next rewrite step, so that Reduceo can enumerate
// an infinite family of expansions without starving the caller of any
// answers at all.
func Reduceo(relation BinaryRelation, inTerm, outTerm Term) Goal {
	return func(st *State) Stream {
		isExpanding := func() bool {
			_, v := isVar(st.Subst.Walk(inTerm))
			return v
		}()

		stepped := NewVar("")
		singleApply := relation(inTerm, stepped)
		singleResult := Eq(stepped, outTerm)
		another := Reduceo(relation, stepped, outTerm)

		var g Goal
		if isExpanding {
			g = Lall(Disj(singleResult, another), singleApply)
		} else {
			g = Lall(singleApply, Disj(another, singleResult))
		}
		return g(st)
	}
}

// WalkoOption configures Walko.
type WalkoOption func(*walkoConfig)

type walkoConfig struct {
	headGoal func(a, b Term) Goal
}

// WithHeadGoal makes Walko treat its graphs as term trees: headGoal is
// applied to the two operators (rators) found by Applyo at each level,
// and must succeed for Walko to recurse into that level's children at
// all. Without this option Walko treats both graphs as cons lists and
// pairs up their elements directly, with no separate check on operators.
func WithHeadGoal(headGoal func(a, b Term) Goal) WalkoOption {
	return func(c *walkoConfig) { c.headGoal = headGoal }
}

// Walko relates two term graphs by applying a binary goal at
// corresponding positions (spec §4.8). At each level it offers
// goal(graphIn, graphOut) directly and, fairly interleaved with that,
// pairs up the children of both sides (decomposed with Applyo in
// term-tree mode, taken as cons-list elements otherwise). Each child pair
// is either walked recursively or kept equal, and at least one pair must
// be walked (see walkoPairwise), so the answers are every such
// combination, not only the one that rewrites every position.
//
// Enumerating both graphIn and graphOut from scratch — neither side
// ground anywhere — works in plain list mode (no WithHeadGoal) through
// the built-in Pair cons correspondence. In term-tree mode (WithHeadGoal
// set) reconstructing one side requires the other to already be ground
// somewhere, so Walko tries decomposing whichever side is ground first
// and rebuilds the other from it; with neither side ground it simply
// fails rather than guessing (spec §4.8).
func Walko(goal func(a, b Term) Goal, graphIn, graphOut Term, opts ...WalkoOption) Goal {
	cfg := &walkoConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return func(st *State) Stream {
		direct := goal(graphIn, graphOut)

		ratorIn, randsIn := NewVar(""), NewVar("")
		ratorOut, randsOut := NewVar(""), NewVar("")

		var structural Goal
		if cfg.headGoal != nil {
			// Whichever side is already ground has to be the one Applyo
			// decomposes first: the rebuilding branch needs its rands
			// already walked into a proper list (by walkoPairwise) before
			// it has anything to rebuild from, so the reconstruction
			// Applyo call always comes last. Since a caller may ground
			// either side, both orders are offered and interleaved fairly;
			// when neither side is ground both fail, matching Walko's
			// documented refusal to manufacture a term tree from nothing.
			structural = Disj(
				Lall(
					Applyo(ratorIn, randsIn, graphIn),
					cfg.headGoal(ratorIn, ratorOut),
					walkoPairwise(goal, randsIn, randsOut, opts...),
					Applyo(ratorOut, randsOut, graphOut),
				),
				Lall(
					Applyo(ratorOut, randsOut, graphOut),
					cfg.headGoal(ratorIn, ratorOut),
					walkoPairwise(goal, randsIn, randsOut, opts...),
					Applyo(ratorIn, randsIn, graphIn),
				),
			)
		} else {
			structural = walkoPairwise(goal, graphIn, graphOut, opts...)
		}

		return Disj(direct, structural)(st)
	}
}

// walkoPairwise recurses Walko across two list-shaped sequences of child
// terms, mirroring the reference map_anyo rather than a plain all-must-
// match mapo: at each position a child either is walked (via a recursive
// Walko, which may itself change it) or passes through unchanged via Eq,
// and the whole call succeeds once it reaches both lists' end — provided
// at least one position actually took the "walked" branch somewhere along
// the way. Without that bookkeeping every node in a graph could elect to
// stay unchanged and Walko(Reduceo(R), t, q) would hand back t itself as
// a spurious fixed point, which the reference's any_succeed flag exists
// to rule out (original_source/kanren/graph.py's map_anyo).
//
// The outermost call is exempt from that requirement — two structurally
// empty sequences (a 0-ary Applyo decomposition) unify trivially, mirroring
// map_anyo's own "first and null_res" shortcut — so only recursion that has
// already consumed at least one cons cell is held to it.
func walkoPairwise(goal func(a, b Term) Goal, a, b Term, opts ...WalkoOption) Goal {
	return Disj(
		Lall(Eq(a, Nil), Eq(b, Nil)),
		walkoPairwiseStep(goal, a, b, false, opts...),
	)
}

// walkoPairwiseStep consumes one cons cell of a and b. anySucceeded
// records whether some earlier position already took the "walked" branch;
// the Nil/Nil base case is only offered once anySucceeded is true.
func walkoPairwiseStep(goal func(a, b Term) Goal, a, b Term, anySucceeded bool, opts ...WalkoOption) Goal {
	return func(st *State) Stream {
		baseCase := Goal(Fail())
		if anySucceeded {
			baseCase = Lall(Eq(a, Nil), Eq(b, Nil))
		}
		consCase := Fresh(func(aHead *Var) Goal {
			return Fresh(func(aTail *Var) Goal {
				return Fresh(func(bHead *Var) Goal {
					return Fresh(func(bTail *Var) Goal {
						return Lall(
							Conso(aHead, aTail, a),
							Conso(bHead, bTail, b),
							Disj(
								Lall(
									Walko(goal, aHead, bHead, opts...),
									walkoPairwiseStep(goal, aTail, bTail, true, opts...),
								),
								Lall(
									Eq(aHead, bHead),
									walkoPairwiseStep(goal, aTail, bTail, anySucceeded, opts...),
								),
							),
						)
					})
				})
			})
		})
		return Disj(baseCase, consCase)(st)
	}
}
