package systems

import (
	"context"
	"errors"
	"fmt"

	"github.com/automoto/warfront/assets"
	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/leveldata"
	"github.com/automoto/warfront/shared/lobby"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/shared/options"
	"github.com/automoto/warfront/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/skratchdot/open-golang/open"
	"github.com/yohamta/donburi/ecs"
)

// Window sizes offered on every monitor large enough to hold them.
var windowSizes = [][2]int{
	{640, 480}, {800, 600}, {1024, 768}, {1280, 720}, {1280, 800},
	{1280, 1024}, {1366, 768}, {1600, 900}, {1680, 1050}, {1920, 1080},
	{1920, 1200}, {2560, 1440}, {3840, 2160},
}

const maxAntialiasing = 8

// DefaultServices returns collaborators backed by Ebitengine, the OS and the
// lobby server. Networking beyond the lobby list is not part of the front
// end; those calls only log.
func DefaultServices(files *assets.VFS) components.ServicesData {
	client := lobby.NewClient(cfg.Frontend.LobbyURL, cfg.Frontend.LobbyTimeout)
	return components.ServicesData{
		Files: files,

		NetInit:         func() { log.Debug("[frontend] network initialised") },
		DiscoverUPnP:    func() { log.Debug("[frontend] UPnP discovery started") },
		ResetLobbyError: func() {},
		JoinGame: func(address string) error {
			log.Info("[frontend] joining %s", address)
			return nil
		},
		FetchGames: client.FetchGames,

		QueueVideo: func(video, captions string) {
			log.Info("[frontend] queued video %s (captions %s)", video, captions)
		},

		DisplayModes:    displayModes,
		MaxAntialiasing: func() int { return maxAntialiasing },
		SetSwapInterval: func(enabled bool) bool {
			ebiten.SetVsyncEnabled(enabled)
			return ebiten.IsVsyncEnabled()
		},
		RefreshCursor: refreshCursor,

		LoadLevelFile: func(path string) error {
			if files == nil {
				return errors.New("no data directories")
			}
			info, _, err := leveldata.LoadMapInfo(files, path)
			if err != nil {
				return err
			}
			log.Debug("[campaign] loaded %s (%dx%d)", info.Title, info.Width, info.Height)
			return nil
		},

		OpenURL: open.Run,
	}
}

// displayModes lists the window sizes that fit each connected monitor.
func displayModes() []options.ScreenMode {
	var modes []options.ScreenMode
	for i, m := range ebiten.AppendMonitors(nil) {
		w, h := m.Size()
		for _, size := range windowSizes {
			if size[0] <= w && size[1] <= h {
				modes = append(modes, options.ScreenMode{Screen: i, Width: size[0], Height: size[1]})
			}
		}
	}
	return modes
}

func refreshCursor() {
	if cfg.Settings.ColouredCursor {
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
	if cfg.Settings.TrapCursor && cfg.Settings.Fullscreen {
		ebiten.SetCursorMode(ebiten.CursorModeConfined)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// SetServices replaces the singleton collaborators.
func SetServices(e *ecs.ECS, s components.ServicesData) {
	entry, ok := components.Services.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Services, tags.Services))
	}
	components.Services.SetValue(entry, s)
}

// GetOrCreateServices returns the singleton collaborators, installing the
// defaults over an empty search path if none were set.
func GetOrCreateServices(e *ecs.ECS) *components.ServicesData {
	if entry, ok := components.Services.First(e.World); ok {
		return components.Services.Get(entry)
	}
	SetServices(e, DefaultServices(assets.NewVFS("")))
	entry, _ := components.Services.First(e.World)
	return components.Services.Get(entry)
}

// fetchGames runs the lobby query with the configured timeout.
func fetchGames(svc *components.ServicesData) ([]lobby.Game, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Frontend.LobbyTimeout)
	defer cancel()
	games, err := svc.FetchGames(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch game list: %w", err)
	}
	return games, nil
}
