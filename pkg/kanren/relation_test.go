package kanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newParentRelation(t *testing.T) *Relation {
	t.Helper()
	parent := NewRelation("parent", 2)
	require.NoError(t, parent.AddFact("alice", "bob"))
	require.NoError(t, parent.AddFact("bob", "carol"))
	require.NoError(t, parent.AddFact("alice", "dan"))
	return parent
}

func TestRelationGoalQueriesByFirstColumn(t *testing.T) {
	parent := newParentRelation(t)
	child := NewVar("child")

	results, err := Run(-1, child, parent.Goal("alice", child))
	require.NoError(t, err)
	assert.ElementsMatch(t, []Term{"bob", "dan"}, results)
}

func TestRelationGoalFullScanWhenUnindexed(t *testing.T) {
	parent := newParentRelation(t)
	a, b := NewVar("a"), NewVar("b")

	results, err := Run(-1, List(a, b), parent.Goal(a, b))
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestRelationAddFactDeduplicates(t *testing.T) {
	r := NewRelation("edge", 2)
	require.NoError(t, r.AddFact(1, 2))
	require.NoError(t, r.AddFact(1, 2))
	assert.Len(t, r.Facts(), 1)
}

func TestRelationAddFactRejectsArityMismatch(t *testing.T) {
	r := NewRelation("edge", 2)
	err := r.AddFact(1, 2, 3)
	require.Error(t, err)
	assert.IsType(t, &ArityMismatchError{}, err)
}

func TestRelationAddFactRejectsNonGround(t *testing.T) {
	r := NewRelation("edge", 2)
	err := r.AddFact(NewVar("x"), 2)
	require.Error(t, err)
	assert.IsType(t, &NonGroundError{}, err)
}

func TestRelationGoalPreservesInsertionOrder(t *testing.T) {
	parent := newParentRelation(t)
	a, b := NewVar("a"), NewVar("b")

	results, err := Run(-1, List(a, b), parent.Goal(a, b))
	require.NoError(t, err)
	assert.Equal(t, []Term{
		List("alice", "bob"),
		List("bob", "carol"),
		List("alice", "dan"),
	}, results)
}
