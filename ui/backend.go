package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Input is what the player did this frame, gathered once by the input
// system and handed to whichever backend is active.
type Input struct {
	Up, Down, Left, Right, Select bool

	CursorX, CursorY int
	// Mouse buttons released this frame.
	Primary, Secondary bool

	Chars     []rune
	Backspace bool
}

// Backend draws screens and reports item activations.
type Backend interface {
	// Update lays out s if it changed since the last frame, processes in
	// and returns the triggers raised this frame.
	Update(s *Screen, in Input) []Trigger
	Draw(dst *ebiten.Image)
}

const (
	BackendWidgets   = "widgets"
	BackendImmediate = "immediate"
)

// NewBackend returns the backend registered under name.
func NewBackend(name string) (Backend, error) {
	switch name {
	case BackendWidgets:
		return NewRetainedBackend(), nil
	case BackendImmediate:
		return NewImmediateBackend(), nil
	default:
		return nil, fmt.Errorf("unknown ui backend %q", name)
	}
}

// sliderValue maps a horizontal offset inside a slider track to a stop.
func sliderValue(offset, width float64, stops int) int {
	if width <= 0 || stops <= 0 {
		return 0
	}
	v := int(offset/width*float64(stops) + 0.5)
	if v < 0 {
		return 0
	}
	if v > stops {
		return stops
	}
	return v
}

// stepSlider moves a slider one stop, clamped to its range.
func stepSlider(it *Item, forward bool) int {
	pos := 0
	if it.Position != nil {
		pos = it.Position()
	}
	if forward {
		pos++
	} else {
		pos--
	}
	if pos < 0 {
		pos = 0
	}
	if pos > it.Stops {
		pos = it.Stops
	}
	return pos
}
