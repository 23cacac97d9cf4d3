package kanren

// Stream is the engine's lazy sequence of States, in the classic μKanren
// shape (spec §4.4): either empty, a single State with nothing more to
// give, a State paired with more Stream to come, or a suspended
// computation that has not yet been forced. Stream is an interface with
// exactly these four implementations, sealed to this package; callers
// never type-switch on it directly — they go through Mplus, Bind, and
// Take.
type Stream interface {
	sealedStream()
}

// emptyStream is the stream with no states at all.
type emptyStream struct{}

func (emptyStream) sealedStream() {}

// EmptyStream is the unique empty Stream value, returned by Fail and by
// any goal with no remaining answers.
var EmptyStream Stream = emptyStream{}

// unitStream holds exactly one State and nothing else.
type unitStream struct {
	state *State
}

func unit(st *State) Stream { return unitStream{state: st} }

func (unitStream) sealedStream() {}

// choiceStream holds one State now and a thunk for the rest.
type choiceStream struct {
	state *State
	rest  func() Stream
}

func choice(st *State, rest func() Stream) Stream {
	return choiceStream{state: st, rest: rest}
}

func (choiceStream) sealedStream() {}

// suspendStream wraps an as-yet-unevaluated Stream computation. Disj
// wraps each alternative in one, Bind wraps the composition of its
// continuation over the tail of its input in one, and (*Relation).Goal
// wraps each fact row and the rest of its rows in one.
type suspendStream struct {
	thunk func() Stream
}

// Suspend wraps thunk as a not-yet-forced Stream.
func Suspend(thunk func() Stream) Stream {
	return suspendStream{thunk: thunk}
}

func (suspendStream) sealedStream() {}

// pull advances s until it is no longer an un-invoked suspension,
// calling each thunk exactly once. This is the only place a suspension
// is ever actually invoked; Mplus and Bind below only ever *defer*, by
// returning a fresh suspension of their own, which is what keeps a
// single call into either of them from recursing arbitrarily deep
// through a long or unbounded chain of suspended tails.
func pull(s Stream) Stream {
	for {
		susp, ok := s.(suspendStream)
		if !ok {
			return s
		}
		s = susp.thunk()
	}
}

// Mplus interleaves two streams fairly. It inspects s1's immediate
// constructor without pulling it: if s1 is itself a not-yet-invoked
// suspension, Mplus does not invoke it here — it returns a new
// suspension that, when eventually pulled, swaps s1 and s2 before
// continuing. That swap is the whole of the fairness guarantee: the
// right-hand stream gets the next turn instead of the left stream being
// pulled repeatedly while the right one starves.
func Mplus(s1, s2 Stream) Stream {
	switch t := s1.(type) {
	case emptyStream:
		return s2
	case unitStream:
		return choice(t.state, func() Stream { return s2 })
	case choiceStream:
		return choice(t.state, func() Stream { return Mplus(s2, t.rest()) })
	case suspendStream:
		return Suspend(func() Stream { return Mplus(s2, t.thunk()) })
	default:
		return EmptyStream
	}
}

// Bind applies g to every State in s, flattening the resulting streams
// together with Mplus. Like Mplus, it never pulls s itself — a
// suspended s defers to a fresh suspension rather than being invoked
// inline — so a single Bind call cannot recurse through more than one
// real State's worth of work before returning.
func Bind(s Stream, g Goal) Stream {
	switch t := s.(type) {
	case emptyStream:
		return EmptyStream
	case unitStream:
		return g(t.state)
	case choiceStream:
		return Mplus(g(t.state), Suspend(func() Stream { return Bind(t.rest(), g) }))
	case suspendStream:
		return Suspend(func() Stream { return Bind(t.thunk(), g) })
	default:
		return EmptyStream
	}
}

// Take pulls up to n States off s, forcing only as much of the stream as
// necessary. n < 0 means unbounded — the caller is responsible for s
// eventually terminating.
func Take(s Stream, n int) []*State {
	var out []*State
	for n < 0 || len(out) < n {
		s = pull(s)
		switch t := s.(type) {
		case emptyStream:
			return out
		case unitStream:
			out = append(out, t.state)
			return out
		case choiceStream:
			out = append(out, t.state)
			s = t.rest()
		default:
			return out
		}
	}
	return out
}
