package kanren

// Subst is a persistent, monotonically-extended mapping from logic
// variables to terms (spec §3). Extending a Subst never mutates it —
// Extend returns a new value — so a *Subst can be shared freely across
// the branches of a Stream.
type Subst struct {
	bindings map[*Var]Term
}

// EmptySubst returns a Subst with no bindings.
func EmptySubst() *Subst {
	return &Subst{bindings: map[*Var]Term{}}
}

// Extend returns a new Subst with v bound to t, leaving the receiver
// untouched. The map is copied rather than shared with structural-sharing
// tricks; spec §5 permits but does not require structural sharing.
func (s *Subst) Extend(v *Var, t Term) *Subst {
	next := make(map[*Var]Term, len(s.bindings)+1)
	for k, val := range s.bindings {
		next[k] = val
	}
	next[v] = t
	return &Subst{bindings: next}
}

// Walk follows variable bindings: if t is a variable bound in s, returns
// its image, itself walked, so the full chain is followed; otherwise
// returns t unchanged.
func (s *Subst) Walk(t Term) Term {
	v, ok := isVar(t)
	if !ok {
		return t
	}
	bound, has := s.bindings[v]
	if !has {
		return t
	}
	return s.Walk(bound)
}

// WalkStar recursively walks t and rebuilds any compound so that no bound
// variable remains anywhere at or below the surface (spec §3).
func (s *Subst) WalkStar(t Term) Term {
	w := s.Walk(t)
	if p, ok := w.(*Pair); ok {
		return &Pair{Car: s.WalkStar(p.Car), Cdr: s.WalkStar(p.Cdr)}
	}
	if c, ok := asCompound(w); ok {
		head := s.WalkStar(c.Head())
		children := c.Children()
		walked := make([]Term, len(children))
		for i, ch := range children {
			walked[i] = s.WalkStar(ch)
		}
		return c.Reconstruct(head, walked)
	}
	return w
}

// Len reports the number of bindings, for tests and diagnostics.
func (s *Subst) Len() int { return len(s.bindings) }
