package kanren

import "fmt"

// NonGroundError is panicked by Membero when its list argument walks to
// an unbound variable, so that it cannot decide how to proceed (spec §7),
// and returned by (*Relation).AddFact for a non-ground fact. In a goal it
// is a panic rather than an error return because Goal's signature
// has no room for one: a goal that cannot answer the question it was
// asked is a programming error in the caller, not a normal relational
// failure (which is simply EmptyStream).
type NonGroundError struct {
	Op   string
	Term Term
}

func (e *NonGroundError) Error() string {
	return fmt.Sprintf("kanren: %s requires a ground term, got %v", e.Op, e.Term)
}

// ArityMismatchError is panicked by (*Relation).Goal when called with a
// number of arguments that does not match the arity fixed by NewRelation.
type ArityMismatchError struct {
	Relation string
	Want     int
	Got      int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("kanren: relation %q expects %d argument(s), got %d", e.Relation, e.Want, e.Got)
}

// MissingProtocolError describes a term that is neither a *Var nor a
// Compound (nor one of the engine's own Pair/Seq shapes), so it cannot be
// decomposed into a head and children. No function in this package
// constructs it: Applyo and the other structural goals treat such a term
// as a non-compound and fail.
type MissingProtocolError struct {
	Op   string
	Term Term
}

func (e *MissingProtocolError) Error() string {
	return fmt.Sprintf("kanren: %s cannot decompose %v — it does not implement Compound", e.Op, e.Term)
}
