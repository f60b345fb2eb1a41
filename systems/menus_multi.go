package systems

import (
	"fmt"
	"net"
	"strconv"
	"sync"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/lobby"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

func buildMulti(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("MULTI PLAYER")

	s.AddButton(itemHost, "Host Game", func(ui.Trigger) {
		t.HostSetup = true
		t.MultiPlayer = true
		svc.NetInit()
		svc.DiscoverUPnP()
		t.LastMode = components.ModeMulti
		ChangeTitleMode(e, components.ModeMultiOption)
	})
	s.AddButton(itemJoin, "Join Game", func(ui.Trigger) {
		svc.NetInit()
		t.HostSetup = false
		svc.ResetLobbyError()
		ChangeTitleMode(e, components.ModeProtocol)
	})
	addReturn(e, s, components.ModeTitle)
	s.AddText(fmt.Sprintf("TCP port %d must be opened in your firewall or router to host games!", cfg.Frontend.DefaultPort))

	t.Screen = s
}

// buildProtocol asks where to look for games. An empty address means the
// lobby server.
func buildProtocol(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("CONNECTION")

	host, port := splitJoinAddress(t.JoinAddress)
	s.AddTextInput(itemAddress, "IP Address", "lobby", func() string { return host },
		func(tr ui.Trigger) { host = tr.Text })
	s.AddTextInput(itemPort, "Port", strconv.Itoa(cfg.Frontend.DefaultPort), func() string { return port },
		func(tr ui.Trigger) { port = tr.Text })
	s.AddButton(itemConnect, "Connect", func(ui.Trigger) {
		t.JoinAddress = joinAddress(host, port)
		ChangeTitleMode(e, components.ModeGameFind)
	})
	addReturn(e, s, components.ModeMulti)

	t.Screen = s
}

func splitJoinAddress(addr string) (host, port string) {
	if addr == "" {
		return "", ""
	}
	h, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr, ""
	}
	return h, p
}

// joinAddress combines the typed host and port. The default port fills in
// for an empty or invalid one.
func joinAddress(host, port string) string {
	if host == "" {
		return ""
	}
	if n, err := strconv.Atoi(port); err != nil || n <= 0 || n > 65535 {
		port = strconv.Itoa(cfg.Frontend.DefaultPort)
	}
	return net.JoinHostPort(host, port)
}

type gameResult struct {
	games []lobby.Game
	err   error
}

// gameList is the lobby listing shared between the fetch goroutine and the
// update loop.
type gameList struct {
	mu      sync.Mutex
	pending *gameResult
}

func (g *gameList) set(games []lobby.Game, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.pending = &gameResult{games: games, err: err}
}

// take returns a finished result once.
func (g *gameList) take() (gameResult, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.pending == nil {
		return gameResult{}, false
	}
	r := *g.pending
	g.pending = nil
	return r, true
}

func buildGameFind(e *ecs.ECS, t *components.TitleData) {
	list := &gameList{}
	refreshGames(e, t, list)
	t.Screen = gameFindScreen(e, t, list, nil, nil, true)
}

// refreshGames queries the lobby without blocking the frame. A direct join
// address skips the lobby.
func refreshGames(e *ecs.ECS, t *components.TitleData, list *gameList) {
	svc := GetOrCreateServices(e)
	if t.JoinAddress != "" {
		list.set([]lobby.Game{{Name: t.JoinAddress, Address: t.JoinAddress}}, nil)
		return
	}
	go func() {
		games, err := fetchGames(svc)
		list.set(games, err)
	}()
}

func gameFindScreen(e *ecs.ECS, t *components.TitleData, list *gameList, games []lobby.Game, err error, searching bool) *ui.Screen {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("GAMES")

	switch {
	case searching:
		s.AddText("Searching")
	case err != nil:
		s.AddText("Can't connect to lobby server!")
	case len(games) == 0:
		s.AddText("No games are available")
	}
	for i, g := range games {
		b := s.AddButton(itemListBase+ui.ItemID(i), g.String(), func(ui.Trigger) {
			if err := svc.JoinGame(g.Address); err != nil {
				log.Error("[frontend] could not join %s: %v", g.Address, err)
				return
			}
			t.MultiPlayer = true
			ChangeTitleMode(e, components.ModeStartGame)
		})
		if g.Full() {
			b.Disable("Game is full")
		}
	}
	s.AddButton(itemRefresh, "Refresh", func(ui.Trigger) {
		refreshGames(e, t, list)
		t.Screen = gameFindScreen(e, t, list, nil, nil, true)
	})
	addReturn(e, s, components.ModeProtocol)

	s.OnTick(func() {
		r, ok := list.take()
		if !ok {
			return
		}
		if r.err != nil {
			log.Warn("[frontend] %v", r.err)
		}
		t.Screen = gameFindScreen(e, t, list, r.games, r.err, false)
	})
	return s
}
