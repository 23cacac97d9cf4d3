package kanren

import (
	"fmt"
	"reflect"
	"sync/atomic"
)

// Term is the universe of values the engine unifies over: logic variables,
// atoms (any opaque host value), and compounds (ordered sequences of child
// terms behind a distinguished head). There is no marker interface for
// "atom" — anything that is not a *Var and does not satisfy Compound is
// treated as an atom, compared by host equality.
type Term interface{}

var varCounter int64

// Var is an identity-based logic variable. Two variables are the same
// variable iff they are the same pointer; the id exists only for printing,
// exactly as spec'd ("ids are only for identity and printing").
type Var struct {
	id   int64
	name string
}

// NewVar creates a fresh logic variable with an optional debug name.
func NewVar(name string) *Var {
	return &Var{id: atomic.AddInt64(&varCounter, 1), name: name}
}

// Vars creates k fresh, pairwise-distinct logic variables.
func Vars(k int) []*Var {
	out := make([]*Var, k)
	for i := range out {
		out[i] = NewVar("")
	}
	return out
}

func (v *Var) String() string {
	if v.name != "" {
		return "_" + v.name
	}
	return fmt.Sprintf("_%d", v.id)
}

// Compound is the single extension point for structural term types (spec
// §4.1). Any value satisfying it unifies against other compounds pairwise,
// regardless of its concrete Go type.
type Compound interface {
	// Head returns the compound's distinguished operator term.
	Head() Term
	// Children returns the compound's ordered child terms.
	Children() []Term
	// Reconstruct builds a new compound of the same concrete type from a
	// (possibly different) head and children.
	Reconstruct(head Term, children []Term) Term
}

// Seq is the default compound implementation promised by spec §4.1: any
// ordered sequence of two or more terms, head = first element. Sequences
// of length 0 or 1 are not compounds by this default rule (a singleton
// carries no operator/operand split); user types that explicitly implement
// Compound are never subject to this length restriction.
type Seq []Term

func (s Seq) Head() Term {
	if len(s) == 0 {
		return nil
	}
	return s[0]
}

func (s Seq) Children() []Term {
	if len(s) < 2 {
		return nil
	}
	children := make([]Term, len(s)-1)
	copy(children, s[1:])
	return children
}

func (s Seq) Reconstruct(head Term, children []Term) Term {
	out := make(Seq, 0, 1+len(children))
	out = append(out, head)
	out = append(out, children...)
	return out
}

// Expr builds a Seq with a string-atom head, a convenience constructor for
// writing s-expression-shaped test terms such as Expr("add", 3, 3).
func Expr(op string, args ...Term) Term {
	out := make(Seq, 0, 1+len(args))
	out = append(out, op)
	out = append(out, args...)
	return out
}

// asCompound reports whether t is usable as a Compound by this engine's
// default rule, returning the projection when it is.
func asCompound(t Term) (Compound, bool) {
	c, ok := t.(Compound)
	if !ok {
		return nil, false
	}
	if s, isSeq := t.(Seq); isSeq && len(s) < 2 {
		return nil, false
	}
	return c, true
}

func isVar(t Term) (*Var, bool) {
	v, ok := t.(*Var)
	return v, ok
}

// atomsEqual compares two non-variable, non-compound terms by host
// equality. reflect.DeepEqual is used rather than the == operator so that
// uncomparable atom values (e.g. a caller-supplied slice-backed atom) do
// not panic the engine; it subsumes == for every comparable type anyway.
func atomsEqual(a, b Term) bool {
	return reflect.DeepEqual(a, b)
}

// ground reports whether t contains no unbound variable once fully walked.
// It does not itself walk t — callers pass the already-WalkStar'd form.
func ground(t Term) bool {
	switch v := t.(type) {
	case *Var:
		_ = v
		return false
	case *Pair:
		return ground(v.Car) && ground(v.Cdr)
	default:
		if c, ok := asCompound(t); ok {
			if !ground(c.Head()) {
				return false
			}
			for _, child := range c.Children() {
				if !ground(child) {
					return false
				}
			}
		}
		return true
	}
}
