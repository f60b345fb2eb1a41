package systems

import (
	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/tags"
	"github.com/automoto/warfront/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ScreenBuilder constructs the screen for one title mode. It stores the new
// root in TitleData.Screen.
type ScreenBuilder func(e *ecs.ECS, t *components.TitleData)

var (
	screenBuilders = map[components.TitleMode]ScreenBuilder{}
	// Modes that end the front end or hand control elsewhere. They never
	// get a screen.
	pseudoModes = map[components.TitleMode]func(t *components.TitleData){}

	fatalf = log.Fatal
)

func init() {
	for mode, b := range map[components.TitleMode]ScreenBuilder{
		components.ModeTitle:           buildTitle,
		components.ModeSingle:          buildSingle,
		components.ModeMulti:           buildMulti,
		components.ModeOptions:         buildOptions,
		components.ModeGameOptions:     buildGameOptions,
		components.ModeTutorial:        buildTutorial,
		components.ModeCredits:         buildCredits,
		components.ModeProtocol:        buildProtocol,
		components.ModeMultiOption:     buildMultiOption,
		components.ModeGameFind:        buildGameFind,
		components.ModeMultiLimit:      buildMultiLimit,
		components.ModeKeyMap:          buildKeyMap,
		components.ModeGraphicsOptions: buildGraphicsOptions,
		components.ModeAudioOptions:    buildAudioOptions,
		components.ModeVideoOptions:    buildVideoOptions,
		components.ModeMouseOptions:    buildMouseOptions,
		components.ModeCampaigns:       buildCampaigns,
	} {
		screenBuilders[mode] = b
	}

	clearLimiter := func(t *components.TitleData) { t.LimiterLoaded = false }
	pseudoModes[components.ModeStartGame] = clearLimiter
	pseudoModes[components.ModeQuit] = clearLimiter
	pseudoModes[components.ModeLoadSaveGame] = clearLimiter
	pseudoModes[components.ModeShowIntro] = func(*components.TitleData) {}
}

// RegisterScreen replaces the builder used for mode. Screens owned by other
// parts of the game (multiplayer setup, lobby, key mapping, credits) hook in
// here.
func RegisterScreen(mode components.TitleMode, b ScreenBuilder) {
	screenBuilders[mode] = b
}

// ChangeTitleMode tears down the current screen and builds the one for mode.
func ChangeTitleMode(e *ecs.ECS, mode components.TitleMode) {
	t := GetOrCreateTitle(e)

	t.Screen = nil
	t.PreviousMode = t.Mode
	t.Mode = mode
	log.Debug("[frontend] title mode %s -> %s", t.PreviousMode, mode)

	if fn, ok := pseudoModes[mode]; ok {
		fn(t)
		return
	}
	b, ok := screenBuilders[mode]
	if !ok {
		fatalf("[frontend] unknown title mode %s", mode)
		return
	}
	b(e, t)
}

// GetOrCreateTitle returns the singleton title state, creating it in Title
// mode with its screen built.
func GetOrCreateTitle(e *ecs.ECS) *components.TitleData {
	if entry, ok := components.Title.First(e.World); ok {
		return components.Title.Get(entry)
	}
	entry := e.World.Entry(e.World.Create(components.Title, tags.Title))
	components.Title.SetValue(entry, components.TitleData{
		Mode:         components.ModeTitle,
		PreviousMode: components.ModeTitle,
		LastMode:     components.ModeTitle,
	})
	t := components.Title.Get(entry)
	buildTitle(e, t)
	return t
}

// NewUpdateTitle runs the active screen through backend once per frame.
func NewUpdateTitle(backend ui.Backend) ecs.System {
	return func(e *ecs.ECS) {
		t := GetOrCreateTitle(e)
		s := t.Screen
		if s == nil {
			return
		}

		s.Tick()
		if t.Screen != s {
			return
		}

		input := getOrCreateInput(e)
		triggers := backend.Update(s, MenuInput(input))
		if len(triggers) > 0 {
			// Typing into a field is not a selection.
			it, _ := s.Item(triggers[0].ID)
			typing := it != nil && it.Kind == ui.KindTextInput
			if s.Dispatch(triggers) && !typing {
				PlaySFX(e, cfg.SoundMenuSelect)
			}
			return
		}

		// Scrolling screens close on any click as well.
		if CancelPressed(input) || (s.Scrolling && input.PrimaryReleased) {
			ConsumeInput(input)
			if s.Cancel() {
				PlaySFX(e, cfg.SoundMenuBack)
			}
		}
	}
}

// NewDrawTitle draws the active screen.
func NewDrawTitle(backend ui.Backend) func(*ecs.ECS, *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		if GetOrCreateTitle(e).Screen == nil {
			return
		}
		backend.Draw(screen)
	}
}

// DrawBackdrop fills the screen behind the menu panel.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	w := float32(screen.Bounds().Dx())
	h := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, w, h, cfg.Menu.BackgroundColor, false)

	// Faint horizon lines
	for y := h * 0.6; y < h; y += 24 {
		vector.StrokeLine(screen, 0, y, w, y, 1, cfg.Menu.PanelBorderColor, false)
	}
}
