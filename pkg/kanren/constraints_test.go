package kanren

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNeqBlocksLaterEqualityOfVariable(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lall(Neq(x, 1), Eq(x, 1)))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNeqAllowsDistinctBinding(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lall(Neq(x, 1), Eq(x, 2)))
	require.NoError(t, err)
	assert.Equal(t, []Term{2}, results)
}

func TestNeqFailsImmediatelyWhenAlreadyEqual(t *testing.T) {
	results, err := Run(-1, NewVar("q"), Neq(1, 1))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNeqOnCompoundsViolatedOnlyWhenFullyEqual(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")

	blocked, err := Run(-1, List(x, y), Lall(
		Neq(Expr("p", x, y), Expr("p", 1, 2)),
		Eq(x, 1),
		Eq(y, 2),
	))
	require.NoError(t, err)
	assert.Empty(t, blocked)

	allowed, err := Run(-1, List(x, y), Lall(
		Neq(Expr("p", x, y), Expr("p", 1, 2)),
		Eq(x, 1),
		Eq(y, 3),
	))
	require.NoError(t, err)
	assert.Equal(t, []Term{List(1, 3)}, allowed)
}

func TestTypeoPendsUntilGround(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lall(Typeo(x, reflect.TypeOf(0)), Eq(x, 5)))
	require.NoError(t, err)
	assert.Equal(t, []Term{5}, results)
}

func TestTypeoRejectsWrongType(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lall(Typeo(x, reflect.TypeOf(0)), Eq(x, "five")))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNotTypeoRejectsExcludedType(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lall(NotTypeo(x, reflect.TypeOf(0)), Eq(x, 5)))
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNotTypeoAllowsOtherTypes(t *testing.T) {
	x := NewVar("x")
	results, err := Run(-1, x, Lall(NotTypeo(x, reflect.TypeOf(0)), Eq(x, "five")))
	require.NoError(t, err)
	assert.Equal(t, []Term{"five"}, results)
}

func TestTypeoPendsOnCompoundWithUnboundChild(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	pairType := reflect.TypeOf(&Pair{})

	// x already walks to a *Pair shell, but y (its cdr) is still
	// unbound, so the whole term is not yet ground. NotTypeo must pend
	// rather than deciding off the outer shape alone — a shallow Walk
	// would see the *Pair immediately and fail this before y is ever
	// touched.
	results, err := Run(-1, x, Lall(
		Eq(x, Cons(1, y)),
		NotTypeo(x, pairType),
	))
	require.NoError(t, err)
	assert.Len(t, results, 1)
}
