package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/automoto/warfront/assets"
	"github.com/automoto/warfront/components"
	"github.com/automoto/warfront/config"
	"github.com/automoto/warfront/fonts"
	"github.com/automoto/warfront/scenes"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/systems"
	"github.com/automoto/warfront/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

// defaultWriteDir is the per-user directory saves and campaign packages
// are read from.
func defaultWriteDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "warfront")
}

func main() {
	backendName := flag.String("ui", ui.BackendWidgets, "Menu renderer: widgets or immediate")
	dataDir := flag.String("data", "data", "Game data directory")
	writeDir := flag.String("writedir", defaultWriteDir(), "Directory for saves and campaign packages")
	logLevel := flag.String("log-level", "info", "Log level")
	skipIntro := flag.Bool("skip-intro", false, "Do not play the intro video on start")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}
	log.SetLevel(parsedLogLevel)
	log.Info("Log level set to %s", parsedLogLevel)
	config.Debug.SkipIntro = *skipIntro

	backend, err := ui.NewBackend(*backendName)
	if err != nil {
		log.Fatal("%v", err)
	}

	fonts.LoadDefaults()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Warn("Could not initialize persistence: %v", err)
	}
	settings, err := systems.LoadSettings()
	if err != nil {
		log.Warn("Could not load settings: %v", err)
	}
	systems.ApplySettings(settings)

	files := assets.NewDirVFS(*writeDir, *dataDir)
	defer files.Close()

	systems.InitAudio(files)
	systems.PreloadAllSFX()

	services := systems.DefaultServices(files)
	services.RefreshCursor()

	launcher := scenes.LauncherFunc(func(t components.TitleData) {
		log.Info("Starting %s (save %q, multiplayer %v)", t.LevelName, t.SaveGameName, t.MultiPlayer)
	})

	ebiten.SetWindowTitle("Warfront")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	game := &Game{scene: scenes.NewFrontendScene(backend, services, launcher)}
	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal("%v", err)
	}
	systems.SaveSettings()
}
