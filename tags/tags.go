package tags

import "github.com/yohamta/donburi"

var (
	// Title marks the entity holding the title screen state.
	Title = donburi.NewTag().SetName("Title")
	// Services marks the entity holding the front end collaborators.
	Services = donburi.NewTag().SetName("Services")
)

// Resolv tags for menu hit testing
const (
	ResolvMenuItem = "menuitem"
	ResolvCursor   = "cursor"
)
