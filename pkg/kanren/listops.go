package kanren

// Pair is a cons cell, the engine's built-in list shape. A proper list is
// a chain of Pairs terminated by Nil; Car/Cdr may themselves hold any
// Term, including unbound variables or improper (non-Nil-terminated)
// tails.
type Pair struct {
	Car Term
	Cdr Term
}

// nilTerm is the unique empty-list atom, analogous to Scheme's '(). It is
// a named type rather than untyped nil so that atomsEqual and type
// switches can recognize it unambiguously.
type nilTerm struct{}

// Nil is the empty list.
var Nil Term = nilTerm{}

func (nilTerm) String() string { return "()" }

// Cons builds the Pair (car . cdr).
func Cons(car, cdr Term) *Pair {
	return &Pair{Car: car, Cdr: cdr}
}

// List builds a proper list from its arguments, e.g. List(1, 2, 3) is
// equivalent to Cons(1, Cons(2, Cons(3, Nil))).
func List(items ...Term) Term {
	var out Term = Nil
	for i := len(items) - 1; i >= 0; i-- {
		out = Cons(items[i], out)
	}
	return out
}

// Conso is the relational constructor for Pair: Conso(h, t, p) holds
// exactly when p unifies with (h . t).
func Conso(h, t, p Term) Goal {
	return Eq(p, Cons(h, t))
}

// Heado holds when p is a pair whose car is h.
func Heado(p, h Term) Goal {
	return func(st *State) Stream {
		return Fresh(func(t *Var) Goal {
			return Conso(h, t, p)
		})(st)
	}
}

// Tailo holds when p is a pair whose cdr is t.
func Tailo(p, t Term) Goal {
	return func(st *State) Stream {
		return Fresh(func(h *Var) Goal {
			return Conso(h, t, p)
		})(st)
	}
}

// Nullo holds when t walks to Nil.
func Nullo(t Term) Goal {
	return Eq(t, Nil)
}

// Appendo is the textbook relational list-append: Appendo(l, s, out) holds
// when out is l followed by s. It works in any direction that leaves
// enough of the structure ground to terminate — generating both l and s
// from a ground out, as well as the forward direction.
func Appendo(l, s, out Term) Goal {
	return Disj(
		Lall(Nullo(l), Eq(s, out)),
		Fresh(func(h *Var) Goal {
			return Fresh(func(t1 *Var) Goal {
				return Fresh(func(t2 *Var) Goal {
					return Lall(
						Conso(h, t1, l),
						Conso(h, t2, out),
						Appendo(t1, s, t2),
					)
				})
			})
		}),
	)
}

// Rembero removes the first occurrence of x from l, relationally, giving
// out. If x does not occur in l, out unifies with l unchanged.
func Rembero(x, l, out Term) Goal {
	return Disj(
		Lall(Nullo(l), Eq(out, Nil)),
		Fresh(func(h *Var) Goal {
			return Fresh(func(t *Var) Goal {
				return Lall(
					Conso(h, t, l),
					Disj(
						Lall(Eq(h, x), Eq(out, t)),
						Fresh(func(t2 *Var) Goal {
							return Lall(
								Neq(h, x),
								Rembero(x, t, t2),
								Conso(h, t2, out),
							)
						}),
					),
				)
			})
		}),
	)
}

// Membero holds once for every position at which x occurs in l. l must be
// ground at the outer list-spine level (each successive cdr must resolve
// to either a Pair or Nil under the current substitution) — an engine
// that allowed an unbound tail to answer Membero would have to enumerate
// infinitely many list shapes, which spec §4.3 declines to do.
func Membero(x, l Term) Goal {
	return func(st *State) Stream {
		w := st.Subst.Walk(l)
		switch t := w.(type) {
		case nilTerm:
			return EmptyStream
		case *Pair:
			return Disj(
				Eq(x, t.Car),
				Membero(x, t.Cdr),
			)(st)
		default:
			if _, ok := isVar(w); ok {
				panic(&NonGroundError{Op: "Membero", Term: w})
			}
			return EmptyStream
		}
	}
}

// listLen reports the length of a proper list term, or ok=false if w is
// not fully spelled out as a chain of Pairs ending in Nil.
func listLen(s *Subst, t Term) (int, bool) {
	n := 0
	for {
		w := s.Walk(t)
		switch v := w.(type) {
		case nilTerm:
			return n, true
		case *Pair:
			n++
			t = v.Cdr
		default:
			return 0, false
		}
	}
}
