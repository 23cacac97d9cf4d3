package kanren

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarsAreDistinctAndPrintable(t *testing.T) {
	x, y := NewVar("x"), NewVar("y")
	assert.NotEqual(t, x, y)
	assert.Contains(t, x.String(), "x")
}

func TestVarsHelperCreatesDistinctVars(t *testing.T) {
	vs := Vars(3)
	a := assert.New(t)
	a.Len(vs, 3)
	a.NotEqual(vs[0], vs[1])
	a.NotEqual(vs[1], vs[2])
}

func TestSeqIsCompoundWhenLengthAtLeastTwo(t *testing.T) {
	s := Expr("add", 1, 2)
	c, ok := asCompound(s)
	assert.True(t, ok)
	assert.Equal(t, "add", c.Head())
	assert.Equal(t, []Term{1, 2}, c.Children())
}

func TestSeqOfLengthOneIsNotCompoundByDefault(t *testing.T) {
	_, ok := asCompound(Seq{"lonely"})
	assert.False(t, ok)
}

func TestSeqReconstruct(t *testing.T) {
	c, _ := asCompound(Expr("add", 1, 2))
	rebuilt := c.Reconstruct("sub", []Term{3, 4})
	assert.Equal(t, Seq{"sub", 3, 4}, rebuilt)
}

func TestGroundDetectsUnboundVariables(t *testing.T) {
	x := NewVar("x")
	assert.False(t, ground(x))
	assert.True(t, ground(Expr("add", 1, 2)))
	assert.False(t, ground(Expr("add", x, 2)))
}

func TestGroundOnPairs(t *testing.T) {
	x := NewVar("x")
	assert.True(t, ground(Cons(1, Cons(2, Nil))))
	assert.False(t, ground(Cons(1, Cons(x, Nil))))
}
