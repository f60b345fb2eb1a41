package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openScreen(t *testing.T, s *Screen) *ImmediateBackend {
	t.Helper()
	b := NewImmediateBackend()
	b.Update(s, Input{CursorX: -1, CursorY: -1})
	b.finishOpen()
	return b
}

func center(b *ImmediateBackend, id ItemID) (int, int) {
	for _, sl := range b.slots {
		if sl.item.ID == id && sl.item.Kind != KindText {
			return int(sl.x + sl.w/2), int(sl.y + sl.h/2)
		}
	}
	return -1, -1
}

func TestImmediateClickHitsItem(t *testing.T) {
	s := NewScreen("TEST")
	s.AddText("header")
	s.AddButton(idFirst, "First", nil)
	s.AddButton(idSecond, "Second", nil)
	b := openScreen(t, s)

	x, y := center(b, idSecond)
	got := b.Update(s, Input{CursorX: x, CursorY: y, Primary: true})

	require.NotEmpty(t, got)
	assert.Equal(t, Trigger{ID: idSecond}, got[0])
}

func TestImmediateRightClickOnlyOnOptions(t *testing.T) {
	s := NewScreen("TEST")
	s.AddButton(idFirst, "Button", nil)
	s.AddOption(idSecond, "Option", func() string { return "x" }, nil)
	b := openScreen(t, s)

	x, y := center(b, idFirst)
	assert.Empty(t, b.Update(s, Input{CursorX: x, CursorY: y, Secondary: true}))

	x, y = center(b, idSecond)
	got := b.Update(s, Input{CursorX: x, CursorY: y, Secondary: true})
	require.NotEmpty(t, got)
	assert.True(t, got[0].Secondary)
}

func TestImmediateNoTriggersWhileOpening(t *testing.T) {
	s := NewScreen("TEST")
	s.AddButton(idFirst, "First", nil)
	b := NewImmediateBackend()
	b.Update(s, Input{})

	x, y := center(b, idFirst)
	assert.Empty(t, b.Update(s, Input{CursorX: x, CursorY: y, Primary: true}))
}

func TestImmediateKeyboardWrapsAndSkipsDisabled(t *testing.T) {
	s := NewScreen("TEST")
	s.AddButton(idFirst, "First", nil)
	s.AddButton(idLocked, "Locked", nil).Disable("")
	s.AddButton(idSecond, "Second", nil)
	b := openScreen(t, s)

	got := b.Update(s, Input{CursorX: -1, CursorY: -1, Down: true, Select: true})
	require.Len(t, got, 1)
	assert.Equal(t, idSecond, got[0].ID)

	got = b.Update(s, Input{CursorX: -1, CursorY: -1, Down: true, Select: true})
	require.Len(t, got, 1)
	assert.Equal(t, idFirst, got[0].ID)

	got = b.Update(s, Input{CursorX: -1, CursorY: -1, Up: true, Select: true})
	require.Len(t, got, 1)
	assert.Equal(t, idSecond, got[0].ID)
}

func TestImmediateOptionArrows(t *testing.T) {
	s := NewScreen("TEST")
	s.AddOption(idFirst, "Texture size", func() string { return "512" }, nil)
	b := openScreen(t, s)

	got := b.Update(s, Input{CursorX: -1, CursorY: -1, Left: true})
	require.Len(t, got, 1)
	assert.True(t, got[0].Secondary)

	got = b.Update(s, Input{CursorX: -1, CursorY: -1, Right: true})
	require.Len(t, got, 1)
	assert.False(t, got[0].Secondary)
}

func TestImmediateSliderSteps(t *testing.T) {
	pos := 100
	s := NewScreen("TEST")
	s.AddSlider(idFirst, "Music", 100, func() int { return pos }, nil)
	b := openScreen(t, s)

	got := b.Update(s, Input{CursorX: -1, CursorY: -1, Right: true})
	require.Len(t, got, 1)
	assert.Equal(t, 100, got[0].Value)

	got = b.Update(s, Input{CursorX: -1, CursorY: -1, Left: true})
	require.Len(t, got, 1)
	assert.Equal(t, 99, got[0].Value)
}

func TestImmediateTextInput(t *testing.T) {
	value := "loc"
	s := NewScreen("TEST")
	s.AddTextInput(idFirst, "Address", "localhost", func() string { return value }, nil)
	b := openScreen(t, s)

	got := b.Update(s, Input{CursorX: -1, CursorY: -1, Chars: []rune("al")})
	require.Len(t, got, 1)
	assert.Equal(t, "local", got[0].Text)

	got = b.Update(s, Input{CursorX: -1, CursorY: -1, Backspace: true})
	require.Len(t, got, 1)
	assert.Equal(t, "lo", got[0].Text)
}

func TestImmediateSwatchesShareRow(t *testing.T) {
	s := NewScreen("TEST")
	s.AddSwatch(1, 1, nil, nil, nil)
	s.AddSwatch(2, 1, nil, nil, nil)
	s.AddSwatch(3, 2, nil, nil, nil)
	b := openScreen(t, s)

	require.Len(t, b.slots, 3)
	assert.Equal(t, b.slots[0].y, b.slots[1].y)
	assert.Less(t, b.slots[0].x, b.slots[1].x)
	assert.Greater(t, b.slots[2].y, b.slots[1].y)
}

func TestImmediateRebuildsOnNewScreen(t *testing.T) {
	a := NewScreen("A")
	a.AddButton(idFirst, "A", nil)
	b := openScreen(t, a)

	next := NewScreen("B")
	next.AddButton(idFirst, "B1", nil)
	next.AddButton(idSecond, "B2", nil)
	b.Update(next, Input{})

	assert.Same(t, next, b.screen)
	assert.Len(t, b.slots, 2)
	assert.Less(t, b.progress, float32(1))
}
