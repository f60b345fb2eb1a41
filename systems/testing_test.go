package systems

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"testing/fstest"

	"github.com/automoto/warfront/assets"
	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/lobby"
	"github.com/automoto/warfront/shared/options"
	"github.com/automoto/warfront/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// fakeServices records every call the menus make into the game.
type fakeServices struct {
	netInits     int
	upnp         int
	lobbyResets  int
	joined       []string
	videos       [][2]string
	cursor       int
	loadedLevels []string
	levelErr     error
	opened       []string
	modes        []options.ScreenMode
	vsyncResult  *bool
	games        []lobby.Game
	gamesErr     error
}

func (f *fakeServices) data(files *assets.VFS) components.ServicesData {
	return components.ServicesData{
		Files:           files,
		NetInit:         func() { f.netInits++ },
		DiscoverUPnP:    func() { f.upnp++ },
		ResetLobbyError: func() { f.lobbyResets++ },
		JoinGame: func(address string) error {
			f.joined = append(f.joined, address)
			return nil
		},
		FetchGames: func(context.Context) ([]lobby.Game, error) {
			return f.games, f.gamesErr
		},
		QueueVideo: func(video, captions string) {
			f.videos = append(f.videos, [2]string{video, captions})
		},
		DisplayModes:    func() []options.ScreenMode { return f.modes },
		MaxAntialiasing: func() int { return 8 },
		SetSwapInterval: func(enabled bool) bool {
			if f.vsyncResult != nil {
				return *f.vsyncResult
			}
			return enabled
		},
		RefreshCursor: func() { f.cursor++ },
		LoadLevelFile: func(path string) error {
			f.loadedLevels = append(f.loadedLevels, path)
			return f.levelErr
		},
		OpenURL: func(url string) error {
			f.opened = append(f.opened, url)
			return errors.New("no browser")
		},
	}
}

// newTestECS builds a world with fake services over the given files. The
// global settings are restored when the test ends.
func newTestECS(t *testing.T, files fstest.MapFS) (*ecs.ECS, *fakeServices) {
	t.Helper()

	saved := cfg.Settings
	t.Cleanup(func() { cfg.Settings = saved })
	cfg.Settings = cfg.DefaultSettings()

	if files == nil {
		files = fstest.MapFS{}
	}
	e := ecs.NewECS(donburi.NewWorld())
	fake := &fakeServices{}
	SetServices(e, fake.data(assets.NewVFS(t.TempDir(), files)))
	return e, fake
}

// click dispatches a primary activation of id on the current screen.
func click(t *testing.T, e *ecs.ECS, id ui.ItemID) {
	t.Helper()
	dispatch(t, e, ui.Trigger{ID: id})
}

// rightClick dispatches a secondary activation of id.
func rightClick(t *testing.T, e *ecs.ECS, id ui.ItemID) {
	t.Helper()
	dispatch(t, e, ui.Trigger{ID: id, Secondary: true})
}

func dispatch(t *testing.T, e *ecs.ECS, tr ui.Trigger) {
	t.Helper()
	s := GetOrCreateTitle(e).Screen
	require.NotNil(t, s, "no screen in mode %s", GetOrCreateTitle(e).Mode)
	require.True(t, s.Dispatch([]ui.Trigger{tr}), "item %d did not run on %q", tr.ID, s.Title)
}

// find returns the item labelled label on the current screen.
func find(t *testing.T, e *ecs.ECS, label string) *ui.Item {
	t.Helper()
	for _, it := range GetOrCreateTitle(e).Screen.Items {
		if it.Label == label {
			return it
		}
	}
	require.Fail(t, fmt.Sprintf("no item %q", label))
	return nil
}

func labels(s *ui.Screen) []string {
	var out []string
	for _, it := range s.Items {
		out = append(out, it.Caption())
	}
	return out
}

const plainTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="32" height="32" tilewidth="16" tileheight="16" infinite="0" nextlayerid="1" nextobjectid="1">
</map>
`

// stubBackend hands out canned triggers once.
type stubBackend struct {
	triggers []ui.Trigger
	seen     []*ui.Screen
}

func (b *stubBackend) Update(s *ui.Screen, in ui.Input) []ui.Trigger {
	b.seen = append(b.seen, s)
	tr := b.triggers
	b.triggers = nil
	return tr
}

func (b *stubBackend) Draw(*ebiten.Image) {}
