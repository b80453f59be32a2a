package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIngredientList(t *testing.T) {
	got := parseIngredientList("Tomato, Onion, fresh basil\nOlive Oil.")
	assert.Equal(t, []string{"tomato", "onion", "fresh basil", "olive oil"}, got)
}

func TestParseIngredientListDropsEmptyPieces(t *testing.T) {
	got := parseIngredientList(", ,\n.  Carrot , ")
	assert.Equal(t, []string{"carrot"}, got)
}

func TestParseIngredientListEmptyOutput(t *testing.T) {
	assert.Empty(t, parseIngredientList("   \n  "))
	assert.Empty(t, parseIngredientList(""))
}
