package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPantryAddNormalizes(t *testing.T) {
	p := NewPantry(DuplicateReject)

	require.NoError(t, p.Add("  Tomato "))
	require.NoError(t, p.Add("ONION"))

	assert.Equal(t, []string{"tomato", "onion"}, p.Items())
	assert.Equal(t, 2, p.Len())
}

func TestPantryAddRejectsEmpty(t *testing.T) {
	p := NewPantry(DuplicateReject)

	assert.ErrorIs(t, p.Add("   "), ErrEmptyIngredient)
	assert.Equal(t, 0, p.Len())
}

func TestPantryDuplicatePolicies(t *testing.T) {
	reject := NewPantry(DuplicateReject)
	require.NoError(t, reject.Add("tomato"))
	assert.ErrorIs(t, reject.Add(" TOMATO "), ErrDuplicateIngredient)
	assert.Equal(t, 1, reject.Len())

	ignore := NewPantry(DuplicateIgnore)
	require.NoError(t, ignore.Add("tomato"))
	require.NoError(t, ignore.Add(" TOMATO "))
	assert.Equal(t, []string{"tomato"}, ignore.Items())
}

func TestPantryAddAllStopsAtFirstError(t *testing.T) {
	p := NewPantry(DuplicateReject)

	err := p.AddAll([]string{"tomato", "onion", "tomato", "beef"})
	assert.ErrorIs(t, err, ErrDuplicateIngredient)
	assert.Equal(t, []string{"tomato", "onion"}, p.Items())
}

func TestPantryVariants(t *testing.T) {
	p := NewPantry(DuplicateReject)
	require.NoError(t, p.AddAll([]string{"tomatoes", "onion"}))

	variants := p.Variants()
	assert.Contains(t, variants, "tomato")
	assert.Contains(t, variants, "tomatoes")
	assert.Contains(t, variants, "onion")
	assert.Contains(t, variants, "onions")
	assert.Len(t, variants, 4)
}
