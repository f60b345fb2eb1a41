package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMenuUp
	ActionMenuDown
	ActionMenuLeft
	ActionMenuRight
	ActionMenuSelect
	ActionMenuBack
	// In-game camera actions, listed on the key mapping screen.
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollDown
	ActionZoomIn
	ActionZoomOut
	ActionToggleRadar
	ActionQuickSave
	ActionQuickLoad
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMenuUp:      "Menu Up",
	ActionMenuDown:    "Menu Down",
	ActionMenuLeft:    "Previous Option",
	ActionMenuRight:   "Next Option",
	ActionMenuSelect:  "Select",
	ActionMenuBack:    "Back",
	ActionScrollLeft:  "Scroll Left",
	ActionScrollRight: "Scroll Right",
	ActionScrollUp:    "Scroll Up",
	ActionScrollDown:  "Scroll Down",
	ActionZoomIn:      "Zoom In",
	ActionZoomOut:     "Zoom Out",
	ActionToggleRadar: "Toggle Radar",
	ActionQuickSave:   "Quick Save",
	ActionQuickLoad:   "Quick Load",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMenuUp: {
				Keys: []ebiten.Key{ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMenuDown: {
				Keys: []ebiten.Key{ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMenuLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMenuRight: {
				Keys: []ebiten.Key{ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionMenuSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionMenuBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionScrollLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionScrollRight: {Keys: []ebiten.Key{ebiten.KeyD}},
			ActionScrollUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionScrollDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionZoomIn:      {Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}},
			ActionZoomOut:     {Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}},
			ActionToggleRadar: {Keys: []ebiten.Key{ebiten.KeyR}},
			ActionQuickSave:   {Keys: []ebiten.Key{ebiten.KeyF5}},
			ActionQuickLoad:   {Keys: []ebiten.Key{ebiten.KeyF9}},
		},
	}
}
