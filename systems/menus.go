package systems

import (
	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

// Item ids are only compared within one screen, so screens share one set.
const (
	itemReturn ui.ItemID = iota + 1

	// Title
	itemSinglePlayer
	itemMultiPlayer
	itemTutorial
	itemOptions
	itemPlayIntro
	itemQuit
	itemSiteLink
	itemDonateLink
	itemUpgradeLink

	// Tutorial
	itemFastPlay

	// Single player
	itemNewCampaign
	itemSkirmish
	itemChallenges
	itemLoadCampaign
	itemLoadSkirmish
	itemVideosMissing

	// Multi player
	itemHost
	itemJoin
	itemFirewall
	itemAddress
	itemPort
	itemConnect
	itemRefresh

	// Skirmish setup
	itemMap
	itemPlayers
	itemAIDifficulty
	itemLimits
	itemStart
	itemPower
	itemBases
	itemAlliances
	itemAccept

	// Options hub
	itemGameOptions
	itemGraphicsOptions
	itemVideoOptions
	itemAudioOptions
	itemMouseOptions
	itemKeyMap

	// Game options
	itemLanguage
	itemDifficulty
	itemScrollSpeed

	// Graphics options
	itemFMVMode
	itemScanlines
	itemSubtitles
	itemShadows
	itemRadar

	// Video options
	itemWindowMode
	itemResolution
	itemTextureSize
	itemVsync
	itemAntialiasing

	// Audio options
	itemVoiceVolume
	itemFXVolume
	itemMusicVolume

	// Mouse options
	itemInvertMouse
	itemTrapCursor
	itemMouseButtons
	itemRotateScreen
	itemCursorMode
)

// Ids of generated rows (campaigns, saves, games, swatches) start here.
const (
	itemListBase     ui.ItemID = 1000
	itemSPColourBase ui.ItemID = 2000
	itemMPColourBase ui.ItemID = 3000
)

const swatchRows = 7 // multiplayer swatches per row

// addReturn adds the Return button and makes cancel do the same.
func addReturn(e *ecs.ECS, s *ui.Screen, mode components.TitleMode) {
	back := func() { ChangeTitleMode(e, mode) }
	s.AddButton(itemReturn, "Return", func(ui.Trigger) { back() })
	s.OnCancel(back)
}

// goTo is a handler that only changes mode.
func goTo(e *ecs.ECS, mode components.TitleMode) ui.Handler {
	return func(ui.Trigger) { ChangeTitleMode(e, mode) }
}

func onOff(v bool) string {
	if v {
		return "On"
	}
	return "Off"
}

// hasIntro reports whether the intro sequence is installed.
func hasIntro(svc *components.ServicesData) bool {
	return svc.Files != nil && svc.Files.Exists(cfg.Frontend.IntroVideo)
}

// spInit prepares a single player game: no networking, and the player
// colour taken from the settings.
func spInit(t *components.TitleData) {
	t.MultiPlayer = false
	t.ChallengeActive = false
	colour := cfg.Settings.SPColour
	if colour >= 1 && colour <= 3 {
		colour = 0
	}
	t.PlayerColour = colour
}
