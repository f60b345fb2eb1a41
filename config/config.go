package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerBackground ecs.LayerID = iota
	Default
)

// Config holds general client configuration
type Config struct {
	Width  int
	Height int
}

// Language is one entry of the language cycler.
type Language struct {
	Code string
	Name string
}

// FrontendConfig contains the fixed data the title screens are built from
type FrontendConfig struct {
	Version string

	HomeURL    string
	DonateURL  string
	UpgradeURL string // version string is appended
	LobbyURL   string // queried with GET {LobbyURL}/servers

	LobbyTimeout time.Duration
	DefaultPort  int

	IntroVideo    string
	IntroCaptions string
	TutorialLevel string
	FastPlayLevel string

	CampaignDir  string
	ChallengeDir string
	MapDir       string
	SaveDir      string // relative to the write directory
	CreditsFile  string

	MinTextureSize int
	MaxTextureSize int

	SPColours       []int
	MaxPlayersInGUI int
	MinPlayers      int
	MaxPlayers      int

	ScrollSpeedStops int // slider stops, value is stop * 100
	VolumeStops      int // slider stops, value is stop / 100

	Languages []Language
}

// MenuConfig contains title screen look and layout values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	PanelColor        color.RGBA
	PanelBorderColor  color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	LinkColor         color.RGBA
	NoteColor         color.RGBA
	SliderColor       color.RGBA

	PanelWidth     float64
	PanelTop       float64
	TitleY         float64
	MenuStartY     float64
	MenuItemHeight float64
	MenuItemGap    float64
	SwatchSize     float64
	SliderWidth    float64

	OpenDuration    float32 // seconds for the panel open animation
	CreditsSpeed    float64 // pixels per frame
	TooltipDelay    int     // frames
	KeyRepeatDelay  int     // frames before a held key repeats
	KeyRepeatPeriod int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipIntro bool
}

// Global configuration instances
var C *Config
var Frontend FrontendConfig
var Menu MenuConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightYellow = color.RGBA{R: 255, G: 255, B: 100, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// PlayerColours is the team colour palette, indexed by colour number.
var PlayerColours = []color.RGBA{
	{R: 0, G: 176, B: 0, A: 255},     // green
	{R: 255, G: 160, B: 0, A: 255},   // orange
	{R: 160, G: 160, B: 160, A: 255}, // grey
	{R: 40, G: 40, B: 40, A: 255},    // black
	{R: 200, G: 0, B: 0, A: 255},     // red
	{R: 32, G: 48, B: 255, A: 255},   // blue
	{R: 255, G: 0, B: 192, A: 255},   // pink
	{R: 0, G: 192, B: 192, A: 255},   // cyan
	{R: 255, G: 255, B: 0, A: 255},   // yellow
	{R: 112, G: 0, B: 112, A: 255},   // purple
	{R: 224, G: 224, B: 224, A: 255}, // white
	{R: 32, G: 32, B: 255, A: 255},   // bright blue
	{R: 0, G: 255, B: 128, A: 255},   // neon green
	{R: 64, G: 0, B: 0, A: 255},      // infrared
	{R: 16, G: 0, B: 64, A: 255},     // ultraviolet
	{R: 64, G: 96, B: 0, A: 255},     // brown
}

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Frontend = FrontendConfig{
		Version: "master",

		HomeURL:    "http://wz2100.net/",
		DonateURL:  "http://donations.wz2100.net/",
		UpgradeURL: "http://gamecheck.wz2100.net/",
		LobbyURL:   "http://lobby.wz2100.net:9990",

		LobbyTimeout: 5 * time.Second,
		DefaultPort:  2100,

		IntroVideo:    "sequences/devastation.ogg",
		IntroCaptions: "sequences/devastation.txa",
		TutorialLevel: "TUTORIAL3",
		FastPlayLevel: "FASTPLAY",

		CampaignDir:  "campaigns",
		ChallengeDir: "challenges",
		MapDir:       "maps",
		SaveDir:      "savegames",
		CreditsFile:  "credits.txt",

		MinTextureSize: 128,
		MaxTextureSize: 2048,

		SPColours:       []int{0, 4, 5, 6, 7},
		MaxPlayersInGUI: 16,
		MinPlayers:      2,
		MaxPlayers:      10,

		ScrollSpeedStops: 16,
		VolumeStops:      100,

		Languages: []Language{
			{Code: "", Name: "System locale"},
			{Code: "en", Name: "English"},
			{Code: "de", Name: "Deutsch"},
			{Code: "fr", Name: "Français"},
			{Code: "es", Name: "Español"},
			{Code: "it", Name: "Italiano"},
			{Code: "nl", Name: "Nederlands"},
			{Code: "pl", Name: "Polski"},
			{Code: "ru", Name: "Русский"},
		},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		PanelColor:        color.RGBA{R: 10, G: 10, B: 30, A: 220},
		PanelBorderColor:  DarkBlue,
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDisabled: Grey,
		LinkColor:         BrightYellow,
		NoteColor:         LightBlue,
		SliderColor:       LightBlue,

		PanelWidth:     420,
		PanelTop:       40,
		TitleY:         70,
		MenuStartY:     110,
		MenuItemHeight: 24,
		MenuItemGap:    6,
		SwatchSize:     18,
		SliderWidth:    160,

		OpenDuration:    0.25,
		CreditsSpeed:    0.5,
		TooltipDelay:    30,
		KeyRepeatDelay:  20,
		KeyRepeatPeriod: 6,
	}

	Debug = DebugConfig{
		SkipIntro: false,
	}
}
