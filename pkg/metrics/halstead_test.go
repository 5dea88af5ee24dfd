package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHalsteadBag_DistinctAndTotal(t *testing.T) {
	t.Parallel()

	bag := NewHalsteadBag()
	bag.Encounter("x")
	bag.Encounter("y")
	bag.Encounter("x")

	assert.Equal(t, 2, bag.Distinct)
	assert.Equal(t, 3, bag.Total)
	assert.Equal(t, []string{"x", "y"}, bag.Identifiers())
	assert.LessOrEqual(t, bag.Distinct, bag.Total)
}

func TestHalsteadBag_ReservedNameGuard(t *testing.T) {
	t.Parallel()

	bag := NewHalsteadBag()
	bag.Encounter("constructor")
	bag.Encounter("constructor")

	assert.Equal(t, []string{"_constructor"}, bag.Identifiers())
	assert.Equal(t, 1, bag.Distinct)
	assert.Equal(t, 2, bag.Total)
}
