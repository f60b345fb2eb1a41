package components

import (
	"fmt"

	"github.com/automoto/warfront/shared/leveldata"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi"
)

// TitleMode identifies which title screen is active.
type TitleMode int

const (
	ModeTitle TitleMode = iota
	ModeSingle
	ModeMulti
	ModeOptions
	ModeGameOptions
	ModeTutorial
	ModeCredits
	ModeProtocol
	ModeMultiOption
	ModeGameFind
	ModeMultiLimit
	ModeStartGame
	ModeQuit
	ModeLoadSaveGame
	ModeKeyMap
	ModeGraphicsOptions
	ModeAudioOptions
	ModeVideoOptions
	ModeMouseOptions
	ModeCampaigns
	ModeShowIntro
	ModeCount // Must be last
)

var titleModeNames = [...]string{
	ModeTitle:           "Title",
	ModeSingle:          "Single",
	ModeMulti:           "Multi",
	ModeOptions:         "Options",
	ModeGameOptions:     "GameOptions",
	ModeTutorial:        "Tutorial",
	ModeCredits:         "Credits",
	ModeProtocol:        "Protocol",
	ModeMultiOption:     "MultiOption",
	ModeGameFind:        "GameFind",
	ModeMultiLimit:      "MultiLimit",
	ModeStartGame:       "StartGame",
	ModeQuit:            "Quit",
	ModeLoadSaveGame:    "LoadSaveGame",
	ModeKeyMap:          "KeyMap",
	ModeGraphicsOptions: "GraphicsOptions",
	ModeAudioOptions:    "AudioOptions",
	ModeVideoOptions:    "VideoOptions",
	ModeMouseOptions:    "MouseOptions",
	ModeCampaigns:       "Campaigns",
	ModeShowIntro:       "ShowIntro",
}

func (m TitleMode) String() string {
	if m >= 0 && m < ModeCount {
		return titleModeNames[m]
	}
	return fmt.Sprintf("TitleMode(%d)", int(m))
}

// TitleData is the title screen state machine context (singleton component).
type TitleData struct {
	Mode         TitleMode
	PreviousMode TitleMode // mode left by the last transition
	LastMode     TitleMode // where shared sub-flows return to

	// Screen is the single root of the current screen, nil in pseudo-states.
	Screen *ui.Screen

	LevelName       string // level the next game starts
	SaveGameName    string // save file chosen for ModeLoadSaveGame
	LimiterLoaded   bool   // structure limits accepted for the next game
	ChallengeActive bool
	HostSetup       bool // skirmish/host setup is in progress
	MultiPlayer     bool
	JoinAddress     string
	PlayerColour    int // colour of the local player in single player games

	// SkirmishMaps is kept while the setup and limit screens alternate.
	SkirmishMaps []leveldata.MapInfo
}

var Title = donburi.NewComponentType[TitleData]()
