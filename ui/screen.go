// Package ui describes title screens independently of how they are drawn.
// A Screen lists its items and maps each interactive item to a handler; a
// Backend turns the screen into pixels and reports what the player did to
// it as Triggers.
package ui

import "image/color"

// ItemID identifies an item within one screen.
type ItemID int

// ItemKind selects how an item is drawn and what input it accepts.
type ItemKind int

const (
	KindText ItemKind = iota
	KindButton
	KindOption
	KindSlider
	KindLink
	KindSwatch
	KindTextInput
)

// Item is one row (or, for swatches, one cell) of a screen.
type Item struct {
	ID       ItemID
	Kind     ItemKind
	Label    string
	Tip      string
	Disabled bool

	// Value is the live value text of an option, or the live text of a
	// status line.
	Value func() string

	// Slider range is 0..Stops.
	Stops    int
	Position func() int

	// Swatches sharing a non-zero Group are laid out on one row.
	Colour   color.Color
	Group    int
	Selected func() bool

	Placeholder string
	Text        func() string
}

// Caption is the text the item shows right now.
func (it *Item) Caption() string {
	switch it.Kind {
	case KindOption:
		if it.Value != nil {
			return it.Label + ": " + it.Value()
		}
	case KindText:
		if it.Value != nil {
			return it.Value()
		}
	case KindTextInput:
		if it.Text != nil {
			return it.Text()
		}
	}
	return it.Label
}

// Interactive reports whether the item can produce triggers.
func (it *Item) Interactive() bool {
	return it.Kind != KindText && !it.Disabled
}

// Disable greys the item out and explains why through its tooltip.
func (it *Item) Disable(tip string) *Item {
	it.Disabled = true
	if tip != "" {
		it.Tip = tip
	}
	return it
}

// WithTip sets the tooltip.
func (it *Item) WithTip(tip string) *Item {
	it.Tip = tip
	return it
}

// Trigger is one activation of an item. Secondary is set for right clicks
// and "previous" keys, which step option values backwards.
type Trigger struct {
	ID        ItemID
	Secondary bool
	Value     int
	Text      string
}

type Handler func(t Trigger)

// Screen is the single root of everything shown for one title mode.
type Screen struct {
	Title string
	Note  string
	// Scrolling screens move their text items upwards continuously.
	Scrolling bool

	Items []*Item

	handlers map[ItemID]Handler
	onCancel func()
	onTick   func()
}

func NewScreen(title string) *Screen {
	return &Screen{
		Title:    title,
		handlers: make(map[ItemID]Handler),
	}
}

func (s *Screen) add(it *Item, h Handler) *Item {
	s.Items = append(s.Items, it)
	if h != nil {
		s.handlers[it.ID] = h
	}
	return it
}

func (s *Screen) AddText(label string) *Item {
	return s.add(&Item{Kind: KindText, Label: label}, nil)
}

// AddStatus adds a text line whose content is re-read every frame.
func (s *Screen) AddStatus(value func() string) *Item {
	return s.add(&Item{Kind: KindText, Value: value}, nil)
}

func (s *Screen) AddButton(id ItemID, label string, h Handler) *Item {
	return s.add(&Item{ID: id, Kind: KindButton, Label: label}, h)
}

func (s *Screen) AddOption(id ItemID, label string, value func() string, h Handler) *Item {
	return s.add(&Item{ID: id, Kind: KindOption, Label: label, Value: value}, h)
}

func (s *Screen) AddSlider(id ItemID, label string, stops int, pos func() int, h Handler) *Item {
	return s.add(&Item{ID: id, Kind: KindSlider, Label: label, Stops: stops, Position: pos}, h)
}

func (s *Screen) AddLink(id ItemID, label string, h Handler) *Item {
	return s.add(&Item{ID: id, Kind: KindLink, Label: label}, h)
}

func (s *Screen) AddSwatch(id ItemID, group int, c color.Color, selected func() bool, h Handler) *Item {
	return s.add(&Item{ID: id, Kind: KindSwatch, Group: group, Colour: c, Selected: selected}, h)
}

func (s *Screen) AddTextInput(id ItemID, label, placeholder string, text func() string, h Handler) *Item {
	return s.add(&Item{ID: id, Kind: KindTextInput, Label: label, Placeholder: placeholder, Text: text}, h)
}

// Item returns the first item with the given id.
func (s *Screen) Item(id ItemID) (*Item, bool) {
	for _, it := range s.Items {
		if it.ID == id && it.Kind != KindText {
			return it, true
		}
	}
	return nil, false
}

// OnCancel sets what the cancel key does on this screen.
func (s *Screen) OnCancel(fn func()) {
	s.onCancel = fn
}

// OnTick sets a function run once per frame while the screen is shown.
func (s *Screen) OnTick(fn func()) {
	s.onTick = fn
}

// Cancel performs the screen's return action. It reports false when the
// screen has none.
func (s *Screen) Cancel() bool {
	if s.onCancel == nil {
		return false
	}
	s.onCancel()
	return true
}

func (s *Screen) Tick() {
	if s.onTick != nil {
		s.onTick()
	}
}

// Dispatch runs the handler for the first trigger only; anything else
// reported in the same frame is dropped. Triggers for disabled or unknown
// items do nothing. It reports whether a handler ran.
func (s *Screen) Dispatch(triggers []Trigger) bool {
	if len(triggers) == 0 {
		return false
	}
	t := triggers[0]
	it, ok := s.Item(t.ID)
	if !ok || !it.Interactive() {
		return false
	}
	h, ok := s.handlers[t.ID]
	if !ok {
		return false
	}
	h(t)
	return true
}
