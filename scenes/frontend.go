package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/systems"
	"github.com/automoto/warfront/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Launcher starts the game the title screens set up. The front end shows
// its title menu again once Launch returns.
type Launcher interface {
	Launch(t components.TitleData)
}

// LauncherFunc adapts a function to Launcher.
type LauncherFunc func(t components.TitleData)

func (f LauncherFunc) Launch(t components.TitleData) { f(t) }

// FrontendScene runs the title screen state machine.
type FrontendScene struct {
	ecs      *ecs.ECS
	backend  ui.Backend
	services components.ServicesData
	launcher Launcher
	once     sync.Once
}

// NewFrontendScene creates the title scene drawing through backend.
func NewFrontendScene(backend ui.Backend, services components.ServicesData, launcher Launcher) *FrontendScene {
	return &FrontendScene{
		backend:  backend,
		services: services,
		launcher: launcher,
	}
}

// Update advances one frame. It returns ebiten.Termination once the player
// has left through the credits.
func (fs *FrontendScene) Update() error {
	fs.once.Do(fs.configure)
	fs.ecs.Update()

	t := systems.GetOrCreateTitle(fs.ecs)
	switch t.Mode {
	case components.ModeQuit:
		log.Info("[frontend] quit")
		return ebiten.Termination
	case components.ModeStartGame, components.ModeLoadSaveGame:
		systems.FadeOutMusic()
		if fs.launcher != nil {
			fs.launcher.Launch(*t)
		}
		systems.ChangeTitleMode(fs.ecs, components.ModeTitle)
	case components.ModeShowIntro:
		svc := systems.GetOrCreateServices(fs.ecs)
		svc.QueueVideo(cfg.Frontend.IntroVideo, cfg.Frontend.IntroCaptions)
		systems.ChangeTitleMode(fs.ecs, components.ModeTitle)
	}
	return nil
}

func (fs *FrontendScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if fs.ecs == nil {
		return
	}
	fs.ecs.Draw(screen)
}

func (fs *FrontendScene) configure() {
	fs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.SetServices(fs.ecs, fs.services)

	// Audio system (runs first so queued sounds from last frame play)
	fs.ecs.AddSystem(systems.UpdateAudio)
	fs.ecs.AddSystem(systems.UpdateInput)
	fs.ecs.AddSystem(systems.NewUpdateTitle(fs.backend))

	fs.ecs.AddRenderer(cfg.LayerBackground, systems.DrawBackdrop)
	fs.ecs.AddRenderer(cfg.Default, systems.NewDrawTitle(fs.backend))

	svc := systems.GetOrCreateServices(fs.ecs)
	if !cfg.Debug.SkipIntro && svc.Files != nil && svc.Files.Exists(cfg.Frontend.IntroVideo) {
		svc.QueueVideo(cfg.Frontend.IntroVideo, cfg.Frontend.IntroCaptions)
	}
	systems.GetOrCreateTitle(fs.ecs)
	systems.PlayMusic(cfg.Sound.MenuMusic)
}
