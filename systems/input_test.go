package systems

import (
	"testing"

	cfg "github.com/automoto/warfront/config"
	"github.com/stretchr/testify/assert"
)

func TestMenuInputUsesEdges(t *testing.T) {
	e, _ := newTestECS(t, nil)
	input := getOrCreateInput(e)
	input.Previous[cfg.ActionMenuUp] = true
	input.Current[cfg.ActionMenuUp] = true
	input.Current[cfg.ActionMenuDown] = true
	input.CursorX, input.CursorY = 12, 34
	input.PrimaryReleased = true
	input.Chars = []rune("ab")

	in := MenuInput(input)

	assert.False(t, in.Up, "held keys do not repeat")
	assert.True(t, in.Down)
	assert.Equal(t, 12, in.CursorX)
	assert.Equal(t, 34, in.CursorY)
	assert.True(t, in.Primary)
	assert.Equal(t, []rune("ab"), in.Chars)
}

func TestConsumeInput(t *testing.T) {
	e, _ := newTestECS(t, nil)
	input := getOrCreateInput(e)
	input.Current[cfg.ActionMenuBack] = true
	input.PrimaryReleased = true
	input.SecondaryReleased = true
	input.BackspacePressed = true
	input.Chars = []rune("x")
	assert.True(t, CancelPressed(input))

	ConsumeInput(input)

	assert.False(t, CancelPressed(input))
	in := MenuInput(input)
	assert.False(t, in.Primary)
	assert.False(t, in.Secondary)
	assert.False(t, in.Backspace)
	assert.Empty(t, in.Chars)
}
