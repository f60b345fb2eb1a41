package systems

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/campaign"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

const videosMissing = "Campaign videos are missing! Get them from http://wz2100.net"

func buildSingle(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("SINGLE PLAYER")

	s.AddButton(itemNewCampaign, "New Campaign", goTo(e, components.ModeCampaigns))
	s.AddButton(itemSkirmish, "Start Skirmish Game", func(ui.Trigger) {
		spInit(t)
		t.HostSetup = true
		t.LastMode = components.ModeSingle
		ChangeTitleMode(e, components.ModeMultiOption)
	})
	s.AddButton(itemChallenges, "Challenges", func(ui.Trigger) {
		spInit(t)
		t.Screen = challengeList(e, t)
	})
	s.AddButton(itemLoadCampaign, "Load Campaign Game", func(ui.Trigger) {
		spInit(t)
		t.Screen = saveList(e, t, "Load Campaign Saved Game")
	})
	s.AddButton(itemLoadSkirmish, "Load Skirmish Game", func(ui.Trigger) {
		spInit(t)
		t.MultiPlayer = true
		t.Screen = saveList(e, t, "Load Skirmish Saved Game")
	})
	addReturn(e, s, components.ModeTitle)
	if !hasIntro(svc) {
		s.AddLink(itemVideosMissing, videosMissing, func(ui.Trigger) {
			openLink(svc, cfg.Frontend.HomeURL)
		})
	}

	t.Screen = s
}

// saveList is the load game overlay shown on top of the single player menu.
// Picking a save records its name and leaves the front end.
func saveList(e *ecs.ECS, t *components.TitleData, title string) *ui.Screen {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen(title)

	var names []string
	if svc.Files != nil {
		entries, err := svc.Files.ReadDir(cfg.Frontend.SaveDir)
		if err != nil {
			log.Debug("[frontend] no saved games: %v", err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		}
	}

	if len(names) == 0 {
		s.AddText("No saved games")
	}
	for i, name := range names {
		s.AddButton(itemListBase+ui.ItemID(i), name, func(ui.Trigger) {
			t.SaveGameName = name
			ChangeTitleMode(e, components.ModeLoadSaveGame)
		})
	}
	closeOverlay(e, t, s)
	return s
}

// challengeList is the challenge overlay shown on top of the single player
// menu. A challenge is a preset skirmish game.
func challengeList(e *ecs.ECS, t *components.TitleData) *ui.Screen {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("CHALLENGES")

	var challenges []campaign.Challenge
	if svc.Files != nil {
		var err error
		challenges, err = campaign.LoadChallenges(svc.Files, cfg.Frontend.ChallengeDir, func(name string, err error) {
			log.Warn("[frontend] skipping challenge %s: %v", name, err)
		})
		if err != nil {
			log.Warn("[frontend] could not read challenges: %v", err)
		}
	}

	if len(challenges) == 0 {
		s.AddText("No challenges found")
	}
	for i, c := range challenges {
		s.AddButton(itemListBase+ui.ItemID(i), c.Name, func(ui.Trigger) {
			t.ChallengeActive = true
			t.LevelName = c.Level
			if t.LevelName == "" {
				t.LevelName = c.Map
			}
			t.HostSetup = true
			t.LastMode = components.ModeSingle
			ChangeTitleMode(e, components.ModeMultiOption)
		}).WithTip(c.Description)
	}
	closeOverlay(e, t, s)
	return s
}

// closeOverlay gives an overlay a Return button that brings the single
// player menu back without a mode change.
func closeOverlay(e *ecs.ECS, t *components.TitleData, s *ui.Screen) {
	back := func() { buildSingle(e, t) }
	s.AddButton(itemReturn, "Return", func(ui.Trigger) { back() })
	s.OnCancel(back)
}

func buildCampaigns(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("CAMPAIGNS")

	var list []campaign.Campaign
	if svc.Files != nil {
		var err error
		list, err = campaign.LoadCampaigns(svc.Files, cfg.Frontend.CampaignDir, func(name string, err error) {
			log.Warn("[campaign] skipping %s: %v", name, err)
		})
		if err != nil {
			log.Warn("[campaign] could not read campaign list: %v", err)
		}
	}
	for i, c := range list {
		s.AddButton(itemListBase+ui.ItemID(i), c.Name, func(ui.Trigger) {
			spInit(t)
			newGame(e, t, c)
		})
	}
	addReturn(e, s, components.ModeSingle)
	if !hasIntro(svc) {
		s.AddLink(itemVideosMissing, videosMissing, func(ui.Trigger) {
			openLink(svc, cfg.Frontend.HomeURL)
		})
	}

	t.Screen = s
}

// newGame starts campaign c. A package that fails to mount is logged and
// the game starts anyway; a level file that fails to load keeps the player
// on the menu.
func newGame(e *ecs.ECS, t *components.TitleData, c campaign.Campaign) {
	svc := GetOrCreateServices(e)
	t.LevelName = c.Level

	if c.Video != "" {
		svc.QueueVideo(c.Video, c.Captions)
	}
	if c.Package != "" && svc.Files != nil {
		archive := filepath.Join(svc.Files.WriteDir(), cfg.Frontend.CampaignDir, c.Package)
		if err := svc.Files.Mount(archive); err != nil {
			log.Error("[campaign] failed to load campaign mod %q: %v", archive, err)
		}
	}
	if c.Loading != "" {
		log.Debug("[campaign] adding campaign mod level %q", c.Loading)
		if err := svc.LoadLevelFile(c.Loading); err != nil {
			log.Error("[campaign] failed to load %s: %v", c.Loading, err)
			return
		}
	}

	log.Debug("[campaign] loading campaign mod -- %s", t.LevelName)
	ChangeTitleMode(e, components.ModeStartGame)
}
