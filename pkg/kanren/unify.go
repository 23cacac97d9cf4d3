package kanren

import "reflect"

// UnifyFunc is a user-supplied unification procedure for a pair of
// concrete term types (spec §6's "Extension interface").
type UnifyFunc func(u, v Term, s *Subst) (*Subst, bool)

type typePair struct {
	a, b reflect.Type
}

var unifyRegistry = map[typePair]UnifyFunc{}

// RegisterUnify registers fn as the unification procedure for terms of
// types ta and tb (in either order — registration is symmetric). Later
// registrations for the same pair win, per spec §6 ("last registration
// wins").
func RegisterUnify(ta, tb reflect.Type, fn UnifyFunc) {
	unifyRegistry[typePair{ta, tb}] = fn
	unifyRegistry[typePair{tb, ta}] = fn
}

func lookupUnify(u, v Term) (UnifyFunc, bool) {
	fn, ok := unifyRegistry[typePair{reflect.TypeOf(u), reflect.TypeOf(v)}]
	return fn, ok
}

// unify attempts to make u and v equal under s, following walk first. It
// returns the extended substitution, the list of variables newly bound by
// this call (needed by constraint revalidation, spec §4.5), and whether
// unification succeeded.
func unify(u, v Term, s *Subst) (*Subst, []*Var, bool) {
	u = s.Walk(u)
	v = s.Walk(v)

	if uv, ok := isVar(u); ok {
		if vv, ok2 := isVar(v); ok2 && uv == vv {
			return s, nil, true
		}
	}

	if atomsEqual(u, v) {
		return s, nil, true
	}

	if fn, ok := lookupUnify(u, v); ok {
		ns, ok := fn(u, v, s)
		if !ok {
			return s, nil, false
		}
		return ns, newBindings(s, ns), true
	}

	if uv, ok := isVar(u); ok {
		return s.Extend(uv, v), []*Var{uv}, true
	}
	if vv, ok := isVar(v); ok {
		return s.Extend(vv, u), []*Var{vv}, true
	}

	if up, ok := u.(*Pair); ok {
		if vp, ok2 := v.(*Pair); ok2 {
			s1, b1, ok := unify(up.Car, vp.Car, s)
			if !ok {
				return s, nil, false
			}
			s2, b2, ok := unify(up.Cdr, vp.Cdr, s1)
			if !ok {
				return s, nil, false
			}
			return s2, append(b1, b2...), true
		}
		return s, nil, false
	}

	if uc, ok := asCompound(u); ok {
		if vc, ok2 := asCompound(v); ok2 {
			uch, vch := uc.Children(), vc.Children()
			if len(uch) != len(vch) {
				return s, nil, false
			}
			cur := s
			var bound []*Var
			hs, hb, ok := unify(uc.Head(), vc.Head(), cur)
			if !ok {
				return s, nil, false
			}
			cur = hs
			bound = append(bound, hb...)
			for i := range uch {
				ns, nb, ok := unify(uch[i], vch[i], cur)
				if !ok {
					return s, nil, false
				}
				cur = ns
				bound = append(bound, nb...)
			}
			return cur, bound, true
		}
		return s, nil, false
	}

	return s, nil, false
}

// newBindings computes the variables present in next but not in prev,
// used to report the newly-bound set after delegating to a registered
// UnifyFunc that returns an opaque extended Subst.
func newBindings(prev, next *Subst) []*Var {
	if len(next.bindings) <= len(prev.bindings) {
		return nil
	}
	var out []*Var
	for v := range next.bindings {
		if _, had := prev.bindings[v]; !had {
			out = append(out, v)
		}
	}
	return out
}

// Unify is the public, constraint-unaware unification entry point: it
// performs the algorithm of spec §4.2 without touching a constraint store.
// Most callers want the Eq goal instead, which also revalidates
// constraints on extension.
func Unify(u, v Term, s *Subst) (*Subst, bool) {
	ns, _, ok := unify(u, v, s)
	return ns, ok
}
