package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idFirst ItemID = iota + 1
	idSecond
	idLocked
)

func TestDispatchUsesFirstTriggerOnly(t *testing.T) {
	s := NewScreen("TEST")
	var got []ItemID
	s.AddButton(idFirst, "First", func(tr Trigger) { got = append(got, tr.ID) })
	s.AddButton(idSecond, "Second", func(tr Trigger) { got = append(got, tr.ID) })

	ran := s.Dispatch([]Trigger{{ID: idSecond}, {ID: idFirst}})

	assert.True(t, ran)
	assert.Equal(t, []ItemID{idSecond}, got)
}

func TestDispatchIgnoresDisabledItems(t *testing.T) {
	s := NewScreen("TEST")
	called := false
	s.AddButton(idLocked, "Locked", func(Trigger) { called = true }).Disable("not available")

	assert.False(t, s.Dispatch([]Trigger{{ID: idLocked}}))
	assert.False(t, called)

	it, ok := s.Item(idLocked)
	require.True(t, ok)
	assert.Equal(t, "not available", it.Tip)
}

func TestDispatchUnknownAndEmpty(t *testing.T) {
	s := NewScreen("TEST")
	assert.False(t, s.Dispatch(nil))
	assert.False(t, s.Dispatch([]Trigger{{ID: 42}}))
}

func TestDispatchPassesSecondary(t *testing.T) {
	s := NewScreen("TEST")
	var back bool
	s.AddOption(idFirst, "Difficulty", func() string { return "Normal" }, func(tr Trigger) { back = tr.Secondary })

	s.Dispatch([]Trigger{{ID: idFirst, Secondary: true}})
	assert.True(t, back)
}

func TestCaption(t *testing.T) {
	value := "Off"
	s := NewScreen("TEST")
	opt := s.AddOption(idFirst, "Shadows", func() string { return value }, nil)
	assert.Equal(t, "Shadows: Off", opt.Caption())
	value = "On"
	assert.Equal(t, "Shadows: On", opt.Caption())

	status := s.AddStatus(func() string { return "Searching" })
	assert.Equal(t, "Searching", status.Caption())
	assert.False(t, status.Interactive())
}

func TestCancelAndTick(t *testing.T) {
	s := NewScreen("TEST")
	assert.False(t, s.Cancel())

	cancelled, ticks := false, 0
	s.OnCancel(func() { cancelled = true })
	s.OnTick(func() { ticks++ })

	assert.True(t, s.Cancel())
	s.Tick()
	s.Tick()
	assert.True(t, cancelled)
	assert.Equal(t, 2, ticks)
}

func TestNewBackendUnknown(t *testing.T) {
	_, err := NewBackend("canvas")
	assert.Error(t, err)
}

func TestSliderValue(t *testing.T) {
	assert.Equal(t, 0, sliderValue(-5, 100, 10))
	assert.Equal(t, 5, sliderValue(50, 100, 10))
	assert.Equal(t, 10, sliderValue(150, 100, 10))
	assert.Equal(t, 0, sliderValue(50, 0, 10))
}
