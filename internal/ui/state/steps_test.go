package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type field int

const (
	fieldNone field = iota
	fieldA
	fieldB
	fieldC
	fieldD
	fieldE
	fieldConfirm
	fieldX
	fieldY
)

func sixSteps() StepSequence[field] {
	return Steps(fieldA, fieldB, fieldC, fieldD, fieldE, fieldConfirm)
}

func TestStepNextFullCycle(t *testing.T) {
	seq := sixSteps()
	cur := seq.First()
	for i := 0; i < seq.Len(); i++ {
		cur = seq.Next(cur)
	}
	assert.Equal(t, fieldA, cur)
}

func TestStepPreviousWrapsToLast(t *testing.T) {
	seq := sixSteps()
	assert.Equal(t, fieldConfirm, seq.Previous(fieldA))
	assert.Equal(t, fieldD, seq.Previous(fieldE))
}

func TestStepUnknownBlockResetsToFirst(t *testing.T) {
	seq := sixSteps()
	assert.Equal(t, fieldA, seq.Next(fieldX))
	assert.Equal(t, fieldA, seq.Previous(fieldX))
}

func twoColumns() StepSequence[field] {
	return StepSequence[field]{
		{fieldA, fieldX},
		{fieldB, fieldY},
		{fieldConfirm, fieldConfirm},
	}
}

func TestStepNextKeepsColumn(t *testing.T) {
	seq := twoColumns()
	assert.Equal(t, fieldY, seq.Next(fieldX))
	assert.Equal(t, fieldB, seq.Next(fieldA))
	assert.Equal(t, fieldA, seq.Next(fieldConfirm))
}

func TestBlockSelectionMovement(t *testing.T) {
	sel := NewBlockSelection(twoColumns())
	assert.Equal(t, fieldA, sel.Current())

	sel.Right()
	assert.Equal(t, fieldX, sel.Current())
	sel.Right()
	assert.Equal(t, fieldA, sel.Current(), "columns wrap")

	sel.Left()
	sel.Down()
	assert.Equal(t, fieldY, sel.Current())
	sel.Down()
	sel.Down()
	assert.Equal(t, fieldX, sel.Current(), "rows wrap")

	sel.Up()
	assert.Equal(t, fieldConfirm, sel.Current())
	row, col := sel.Position()
	assert.Equal(t, 2, row)
	assert.Equal(t, 1, col)
}

func TestBlockSelectionSelect(t *testing.T) {
	sel := NewBlockSelection(twoColumns())
	assert.True(t, sel.Select(fieldY))
	assert.Equal(t, fieldY, sel.Current())
	assert.False(t, sel.Select(fieldD))
	assert.Equal(t, fieldY, sel.Current())

	sel.SetPosition(10, 10)
	assert.Equal(t, fieldConfirm, sel.Current())
}
