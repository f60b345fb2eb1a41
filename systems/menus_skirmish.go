package systems

import (
	"fmt"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/leveldata"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/shared/options"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

func buildMultiOption(e *ecs.ECS, t *components.TitleData) {
	returning := t.PreviousMode == components.ModeMultiLimit
	if !returning || t.SkirmishMaps == nil {
		t.SkirmishMaps = loadSkirmishMaps(e)
	}

	title := "SKIRMISH"
	if t.MultiPlayer {
		title = "HOST GAME"
	}
	s := ui.NewScreen(title)
	if t.ChallengeActive {
		s.Note = "Challenge: " + t.LevelName
	}

	current := selectedMap(t)
	mapItem := s.AddOption(itemMap, "Map", func() string {
		if m := selectedMap(t); m != nil {
			return m.Title
		}
		return "None"
	}, func(tr ui.Trigger) {
		if len(t.SkirmishMaps) == 0 {
			return
		}
		i := options.StepCycle(mapIndex(t), 0, len(t.SkirmishMaps)-1, !tr.Secondary)
		t.LevelName = t.SkirmishMaps[i].Name
		cfg.Settings.SkirmishMap = t.LevelName
		cfg.Settings.SkirmishPlayers = clampPlayers(cfg.Settings.SkirmishPlayers, t.SkirmishMaps[i].Players)
	})
	if len(t.SkirmishMaps) == 0 {
		mapItem.Disable("No maps found")
	}
	if current != nil {
		t.LevelName = current.Name
	}

	s.AddOption(itemPlayers, "Players", func() string {
		return fmt.Sprint(cfg.Settings.SkirmishPlayers)
	}, func(tr ui.Trigger) {
		maxPlayers := cfg.Frontend.MaxPlayers
		if m := selectedMap(t); m != nil && m.Players >= cfg.Frontend.MinPlayers {
			maxPlayers = m.Players
		}
		cfg.Settings.SkirmishPlayers = options.StepCycle(
			clampPlayers(cfg.Settings.SkirmishPlayers, maxPlayers), cfg.Frontend.MinPlayers, maxPlayers, !tr.Secondary)
	})
	s.AddOption(itemAIDifficulty, "AI Difficulty", func() string {
		return cfg.Settings.AIDifficulty.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.AIDifficulty = options.StepCycle(cfg.Settings.AIDifficulty, cfg.AIEasy, cfg.AIInsane, !tr.Secondary)
	})
	s.AddStatus(func() string {
		if t.LimiterLoaded {
			return "Structure limits set"
		}
		return ""
	})
	s.AddButton(itemLimits, "Limits", goTo(e, components.ModeMultiLimit))
	start := s.AddButton(itemStart, "Start Game", func(ui.Trigger) {
		SaveSettings()
		ChangeTitleMode(e, components.ModeStartGame)
	})
	if current == nil {
		start.Disable("Choose a map first")
	}

	back := func() {
		t.HostSetup = false
		t.ChallengeActive = false
		ChangeTitleMode(e, t.LastMode)
	}
	s.AddButton(itemReturn, "Return", func(ui.Trigger) { back() })
	s.OnCancel(back)

	t.Screen = s
}

func loadSkirmishMaps(e *ecs.ECS) []leveldata.MapInfo {
	svc := GetOrCreateServices(e)
	if svc.Files == nil {
		return []leveldata.MapInfo{}
	}
	maps, err := leveldata.LoadAllMaps(svc.Files, cfg.Frontend.MapDir, func(path string, err error) {
		log.Warn("[frontend] skipping map %s: %v", path, err)
	})
	if err != nil {
		log.Warn("[frontend] could not list maps: %v", err)
	}
	if maps == nil {
		maps = []leveldata.MapInfo{}
	}
	return maps
}

// mapIndex finds the map for the current level, falling back to the last
// one played and then the first.
func mapIndex(t *components.TitleData) int {
	for _, name := range []string{t.LevelName, cfg.Settings.SkirmishMap} {
		for i, m := range t.SkirmishMaps {
			if m.Name == name {
				return i
			}
		}
	}
	return 0
}

func selectedMap(t *components.TitleData) *leveldata.MapInfo {
	if len(t.SkirmishMaps) == 0 {
		return nil
	}
	return &t.SkirmishMaps[mapIndex(t)]
}

func clampPlayers(n, maxPlayers int) int {
	if maxPlayers < cfg.Frontend.MinPlayers {
		maxPlayers = cfg.Frontend.MaxPlayers
	}
	if n < cfg.Frontend.MinPlayers {
		return cfg.Frontend.MinPlayers
	}
	if n > maxPlayers {
		return maxPlayers
	}
	return n
}

func buildMultiLimit(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("LIMITS")

	s.AddOption(itemPower, "Power", func() string {
		return cfg.Settings.Power.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.Power = options.StepCycle(cfg.Settings.Power, cfg.PowerLow, cfg.PowerHigh, !tr.Secondary)
	})
	s.AddOption(itemBases, "Bases", func() string {
		return cfg.Settings.Bases.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.Bases = options.StepCycle(cfg.Settings.Bases, cfg.BaseNone, cfg.BaseAdvanced, !tr.Secondary)
	})
	s.AddOption(itemAlliances, "Alliances", func() string {
		return cfg.Settings.Alliances.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.Alliances = options.StepCycle(cfg.Settings.Alliances, cfg.AllianceNone, cfg.AllianceFixedTeams, !tr.Secondary)
	})
	s.AddButton(itemAccept, "Accept", func(ui.Trigger) {
		t.LimiterLoaded = true
		ChangeTitleMode(e, components.ModeMultiOption)
	})
	addReturn(e, s, components.ModeMultiOption)

	t.Screen = s
}
