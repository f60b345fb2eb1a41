package systems

import (
	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

func buildTitle(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("MAIN MENU")

	s.AddButton(itemSinglePlayer, "Single Player", goTo(e, components.ModeSingle))
	s.AddButton(itemMultiPlayer, "Multi Player", goTo(e, components.ModeMulti))
	s.AddButton(itemTutorial, "Tutorial", goTo(e, components.ModeTutorial))
	s.AddButton(itemOptions, "Options", goTo(e, components.ModeOptions))
	intro := s.AddButton(itemPlayIntro, "View Intro", goTo(e, components.ModeShowIntro))
	if !hasIntro(svc) {
		intro.Disable("Videos are missing, download them from http://wz2100.net")
	}
	s.AddButton(itemQuit, "Quit Game", goTo(e, components.ModeCredits))

	s.AddLink(itemSiteLink, "Official site: http://wz2100.net/", func(ui.Trigger) {
		openLink(svc, cfg.Frontend.HomeURL)
	}).WithTip("Come visit the forums and all Warzone 2100 news! Click this link.")
	s.AddLink(itemDonateLink, "Donate: http://donations.wz2100.net/", func(ui.Trigger) {
		openLink(svc, cfg.Frontend.DonateURL)
	}).WithTip("Help support the project with our server costs, Click this link.")
	s.AddLink(itemUpgradeLink, "Check for a newer version", func(ui.Trigger) {
		openLink(svc, UpgradeURL(cfg.Frontend.Version))
	})

	t.Screen = s
}

func buildTutorial(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("TUTORIALS")

	s.AddButton(itemTutorial, "Tutorial", func(ui.Trigger) {
		t.LevelName = cfg.Frontend.TutorialLevel
		ChangeTitleMode(e, components.ModeStartGame)
	})
	s.AddButton(itemFastPlay, "Fast Play", func(ui.Trigger) {
		svc.NetInit()
		t.LevelName = cfg.Frontend.FastPlayLevel
		ChangeTitleMode(e, components.ModeStartGame)
	})
	addReturn(e, s, components.ModeTitle)

	t.Screen = s
}
