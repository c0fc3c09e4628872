package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPair(t *testing.T) {
	one, two := NewInt(1), NewInt(2)

	p := Cons(one, two)
	assert.True(t, p.IsPair())
	assert.False(t, p.IsAtom())
	assert.Equal(t, one, p.Head())
	assert.Equal(t, two, p.Tail())

	assert.Nil(t, one.Head())
	assert.Nil(t, one.Tail())

	var absent *Value
	assert.False(t, absent.IsPair())
	assert.False(t, absent.IsAtom())
	assert.Nil(t, absent.Head())
}

func TestList(t *testing.T) {
	assert.Nil(t, List())

	l := List(NewInt(1), NewInt(2), NewInt(3))
	assert.Equal(t, int64(1), l.Head().Int())
	assert.Equal(t, int64(2), l.Tail().Head().Int())
	assert.Equal(t, int64(3), l.Tail().Tail().Int())

	one := List(NewInt(1))
	assert.True(t, one.IsPair())
	assert.Equal(t, int64(1), one.Head().Int())
	assert.Nil(t, one.Tail())

	two := List(NewInt(1), List(NewInt(2)))
	assert.True(t, Equal(Cons(NewInt(1), Cons(NewInt(2), nil)), two))
}

func TestEqual(t *testing.T) {
	proc := NewProcedure(&testProcedure{"car"})

	testCases := []struct {
		A, B  *Value
		Equal bool
	}{
		{nil, nil, true},
		{NewInt(1), NewInt(1), true},
		{NewInt(1), NewInt(2), false},
		{NewInt(1), NewFloat(1), false},
		{NewString("a"), NewSymbol("a"), false},
		{NewSymbol("a"), NewSymbol("A"), true},
		{Cons(NewInt(1), Cons(NewInt(2), NewInt(3))), Cons(NewInt(1), Cons(NewInt(2), NewInt(3))), true},
		{Cons(NewInt(1), NewInt(2)), Cons(NewInt(1), nil), false},
		{Cons(nil, NewInt(2)), Cons(nil, NewInt(2)), true},
		{proc, proc, true},
		{proc, NewProcedure(&testProcedure{"car"}), false},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Equal, Equal(testCases[i].A, testCases[i].B), "case %d", i)
	}
}
