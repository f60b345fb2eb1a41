package components

import (
	"context"

	"github.com/automoto/warfront/assets"
	"github.com/automoto/warfront/shared/lobby"
	"github.com/automoto/warfront/shared/options"
	"github.com/yohamta/donburi"
)

// ServicesData holds the subsystems the title screens call into but do not
// own (singleton component). Every field has a working default; tests swap
// in fakes.
type ServicesData struct {
	Files *assets.VFS

	// Network
	NetInit         func()
	DiscoverUPnP    func()
	ResetLobbyError func()
	JoinGame        func(address string) error
	FetchGames      func(ctx context.Context) ([]lobby.Game, error)

	// Video
	QueueVideo func(video, captions string)

	// Display
	DisplayModes    func() []options.ScreenMode
	MaxAntialiasing func() int
	SetSwapInterval func(enabled bool) bool // returns the interval actually in effect
	RefreshCursor   func()

	// Levels
	LoadLevelFile func(path string) error

	OpenURL func(url string) error
}

var Services = donburi.NewComponentType[ServicesData]()
