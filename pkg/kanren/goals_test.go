package kanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEqSucceedsAndFails(t *testing.T) {
	x := NewVar("x")

	results, err := Run(-1, x, Eq(x, 1))
	require.NoError(t, err)
	assert.Equal(t, []Term{1}, results)

	results, err = Run(-1, x, Eq(x, 1), Eq(x, 2))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestConjRunsGoalsInSequence(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	g := Conj(Eq(x, 1), Eq(y, 2))

	st, ok := unifyRun(g)
	require.True(t, ok)
	assert.Equal(t, 1, st.Subst.Walk(x))
	assert.Equal(t, 2, st.Subst.Walk(y))
}

func TestDisjIsCommutative(t *testing.T) {
	x := NewVar("x")

	r1, err := Run(-1, x, Disj(Eq(x, 1), Eq(x, 2)))
	require.NoError(t, err)
	r2, err := Run(-1, x, Disj(Eq(x, 2), Eq(x, 1)))
	require.NoError(t, err)

	assert.ElementsMatch(t, r1, r2)
}

func TestLallIsAssociative(t *testing.T) {
	x, y, z := NewVar("x"), NewVar("y"), NewVar("z")
	left := Conj(Conj(Eq(x, 1), Eq(y, 2)), Eq(z, 3))
	right := Conj(Eq(x, 1), Conj(Eq(y, 2), Eq(z, 3)))

	a, errA := Run(-1, List(x, y, z), left)
	b, errB := Run(-1, List(x, y, z), right)
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, a, b)
}

func TestLanyGathersEveryArm(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lany(Eq(x, 1), Eq(x, 2), Eq(x, 3)))
	require.NoError(t, err)
	assert.ElementsMatch(t, []Term{1, 2, 3}, results)
}

func TestCondeTriesEveryClause(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	g := Conde(
		[]Goal{Eq(x, 1), Eq(y, "one")},
		[]Goal{Eq(x, 2), Eq(y, "two")},
	)
	results, err := Run(-1, List(x, y), g)
	require.NoError(t, err)
	assert.ElementsMatch(t, []Term{List(1, "one"), List(2, "two")}, results)
}

func TestFreshIntroducesScopedVariable(t *testing.T) {
	q := NewVar("q")
	g := Fresh(func(v *Var) Goal {
		return Lall(Eq(v, 5), Eq(q, v))
	})
	results, err := Run(-1, q, g)
	require.NoError(t, err)
	assert.Equal(t, []Term{5}, results)
}

func TestOnceoCommitsToFirstAnswer(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Onceo(Lany(Eq(x, 1), Eq(x, 2))))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestFairDisjunctionDoesNotStarveFiniteBranch(t *testing.T) {
	x := NewVar("x")

	var countUp func(n int) Goal
	countUp = func(n int) Goal {
		return func(st *State) Stream {
			return Disj(Eq(x, n), countUp(n+1))(st)
		}
	}

	results, err := Run(3, x, Disj(countUp(0), Eq(x, "finite")))
	require.NoError(t, err)
	assert.Contains(t, results, Term("finite"))
}

func TestGroundSucceedsOnlyForFullyBoundTerms(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")

	results, err := Run(-1, x, Eq(x, List(1, 2, 3)), Ground(x))
	require.NoError(t, err)
	assert.Equal(t, []Term{List(1, 2, 3)}, results)

	results, err = Run(-1, y, Ground(y))
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = Run(-1, x, Eq(x, Cons(1, y)), Ground(x))
	require.NoError(t, err)
	assert.Empty(t, results)
}

// unifyRun is a test helper that drives a Goal once against EmptyState.
func unifyRun(g Goal) (*State, bool) {
	states := Take(g(EmptyState()), 1)
	if len(states) == 0 {
		return nil, false
	}
	return states[0], true
}
