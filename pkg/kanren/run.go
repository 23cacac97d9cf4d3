package kanren

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// RunOption configures RunWith.
type RunOption func(*runConfig)

type runConfig struct {
	logger *slog.Logger
	runID  string
}

// WithLogger attaches a structured logger that RunWith uses to trace its
// search: one "run started" event up front and one "run solution" event
// per answer, each carrying the run's ID. Without this option a run is
// silent, matching the teacher's default of logging only when a caller
// opts in.
func WithLogger(logger *slog.Logger) RunOption {
	return func(c *runConfig) { c.logger = logger }
}

// WithRunID overrides the random run identifier a traced run generates,
// letting a caller correlate a run's log lines with its own request ID.
func WithRunID(id string) RunOption {
	return func(c *runConfig) { c.runID = id }
}

// Run asks goals (conjoined) for up to n answers for the query term q,
// returning each as its fully-walked value (spec §3/§4.9/§6). n = 0 means
// exhaust: Run keeps pulling until the underlying Stream runs dry, which
// is the caller's responsibility to ensure terminates. A negative n is
// also treated as exhaust, for callers who find that more readable than
// a bare 0.
//
// Duplicate answers — those whose Reify form is identical — are
// suppressed, keeping only the first occurrence (this module's
// resolution of the spec's open question on result identity).
func Run(n int, q Term, goals ...Goal) ([]Term, error) {
	return RunWith(nil, n, q, goals...)
}

// RunWith is Run with tracing options (WithLogger, WithRunID) attached.
//
// Any NonGroundError, ArityMismatchError, or MissingProtocolError raised
// by a goal while the search forces its stream is recovered here and
// returned as err rather than propagated as a panic, since RunWith is
// this package's outermost library-surface call (spec §7).
func RunWith(opts []RunOption, n int, q Term, goals ...Goal) (results []Term, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				results = nil
				return
			}
			panic(r)
		}
	}()

	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger != nil {
		if cfg.runID == "" {
			cfg.runID = uuid.NewString()
		}
		cfg.logger.Info("kanren run started", "run_id", cfg.runID, "n", n)
	}

	s := Lall(goals...)(EmptyState())

	seen := map[string]bool{}
	var out []Term
	for n <= 0 || len(out) < n {
		st, rest, ok := stepStream(s)
		if !ok {
			break
		}
		s = rest

		value := st.Subst.WalkStar(q)
		key := Reify(value)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, value)
		if cfg.logger != nil {
			cfg.logger.Info("kanren run solution", "run_id", cfg.runID, "index", len(out)-1, "value", key)
		}
	}
	return out, nil
}

// stepStream pulls s just enough to produce its first State, if any,
// along with the Stream representing everything after it.
func stepStream(s Stream) (*State, Stream, bool) {
	switch t := pull(s).(type) {
	case emptyStream:
		return nil, EmptyStream, false
	case unitStream:
		return t.state, EmptyStream, true
	case choiceStream:
		return t.state, t.rest(), true
	default:
		return nil, EmptyStream, false
	}
}

// Reify renders a fully-walked term into its canonical printed form.
// Every remaining unbound variable prints as "~name" if it was given a
// debug name at NewVar, else as a stable, encounter-order "~_k" placeholder
// — the first unnamed variable found becomes "~_0", the second "~_1", and
// so on (spec §4.3/§6). Two terms with the same shape up to consistent
// renaming of their unnamed variables produce identical output (named
// variables print by their own names), which is exactly the notion
// of "same answer" Run uses for dedup.
func Reify(t Term) string {
	names := map[*Var]string{}
	next := 0
	var render func(Term) string
	render = func(t Term) string {
		switch v := t.(type) {
		case *Var:
			if v.name != "" {
				return "~" + v.name
			}
			name, ok := names[v]
			if !ok {
				name = fmt.Sprintf("~_%d", next)
				names[v] = name
				next++
			}
			return name
		case *Pair:
			items := []string{render(v.Car)}
			tail := v.Cdr
			for {
				p, ok := tail.(*Pair)
				if !ok {
					break
				}
				items = append(items, render(p.Car))
				tail = p.Cdr
			}
			if _, isNil := tail.(nilTerm); isNil {
				return "(" + strings.Join(items, " ") + ")"
			}
			return "(" + strings.Join(items, " ") + " . " + render(tail) + ")"
		case nilTerm:
			return "()"
		default:
			if c, ok := asCompound(t); ok {
				s := fmt.Sprintf("(%v", render(c.Head()))
				for _, child := range c.Children() {
					s += " " + render(child)
				}
				return s + ")"
			}
			return fmt.Sprintf("%v", t)
		}
	}
	return render(t)
}
