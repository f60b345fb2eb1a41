package systems

import (
	"fmt"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/shared/options"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

func buildOptions(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("OPTIONS")

	s.AddButton(itemGameOptions, "Game Options", goTo(e, components.ModeGameOptions))
	s.AddButton(itemGraphicsOptions, "Graphics Options", goTo(e, components.ModeGraphicsOptions))
	s.AddButton(itemVideoOptions, "Video Options", goTo(e, components.ModeVideoOptions))
	s.AddButton(itemAudioOptions, "Audio Options", goTo(e, components.ModeAudioOptions))
	s.AddButton(itemMouseOptions, "Mouse Options", goTo(e, components.ModeMouseOptions))
	s.AddButton(itemKeyMap, "Key Mappings", goTo(e, components.ModeKeyMap))
	addReturn(e, s, components.ModeTitle)

	t.Screen = s
}

// addOptionsReturn is addReturn for the option pages, which write the
// settings out when left.
func addOptionsReturn(e *ecs.ECS, s *ui.Screen) {
	back := func() {
		SaveSettings()
		ChangeTitleMode(e, components.ModeOptions)
	}
	s.AddButton(itemReturn, "Return", func(ui.Trigger) { back() })
	s.OnCancel(back)
}

func languageName(code string) string {
	for _, l := range cfg.Frontend.Languages {
		if l.Code == code {
			return l.Name
		}
	}
	return code
}

func languageIndex(code string) int {
	for i, l := range cfg.Frontend.Languages {
		if l.Code == code {
			return i
		}
	}
	return 0
}

func buildGameOptions(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("GAME OPTIONS")

	s.AddOption(itemLanguage, "Language", func() string {
		return languageName(cfg.Settings.Language)
	}, func(tr ui.Trigger) {
		langs := cfg.Frontend.Languages
		i := options.StepCycle(languageIndex(cfg.Settings.Language), 0, len(langs)-1, !tr.Secondary)
		cfg.Settings.Language = langs[i].Code
		// Rebuild so every label is read again in the new language.
		buildGameOptions(e, t)
	})
	s.AddOption(itemDifficulty, "Campaign Difficulty", func() string {
		return cfg.Settings.Difficulty.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.Difficulty = options.StepCycle(cfg.Settings.Difficulty, cfg.DifficultyEasy, cfg.DifficultyHard, !tr.Secondary)
	})
	s.AddSlider(itemScrollSpeed, "Scroll Speed", cfg.Frontend.ScrollSpeedStops, func() int {
		return cfg.Settings.ScrollSpeed / 100
	}, func(tr ui.Trigger) {
		cfg.Settings.SetScrollSpeed(tr.Value * 100)
	})

	s.AddText("Unit Colour: Campaign")
	for _, c := range cfg.Frontend.SPColours {
		s.AddSwatch(itemSPColourBase+ui.ItemID(c), 1, cfg.PlayerColours[c], func() bool {
			sp := cfg.Settings.SPColour
			if sp >= 1 && sp <= 3 {
				sp = 0
			}
			return sp == c
		}, func(ui.Trigger) {
			cfg.Settings.SetSPColour(c)
		})
	}

	s.AddText("Unit Colour: Skirmish/Multiplayer")
	for c := -1; c < cfg.Frontend.MaxPlayersInGUI; c++ {
		colour := cfg.Grey
		if c >= 0 {
			colour = cfg.PlayerColours[c]
		}
		row := 2 + (c+1)/swatchRows
		s.AddSwatch(itemMPColourBase+ui.ItemID(c+1), row, colour, func() bool {
			return cfg.Settings.MPColour == c
		}, func(ui.Trigger) {
			cfg.Settings.SetMPColour(c)
		}).WithTip(mpColourTip(c))
	}
	addOptionsReturn(e, s)

	t.Screen = s
}

func mpColourTip(c int) string {
	if c < 0 {
		return "Random"
	}
	return fmt.Sprintf("Colour %d", c)
}

func buildGraphicsOptions(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("GRAPHICS OPTIONS")

	s.AddOption(itemFMVMode, "Video Playback", func() string {
		return cfg.Settings.FMVMode.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.FMVMode = options.StepCycle(cfg.Settings.FMVMode, cfg.FMVFullscreen, cfg.FMVMax-1, !tr.Secondary)
	})
	s.AddOption(itemScanlines, "Scanlines", func() string {
		return cfg.Settings.Scanlines.String()
	}, func(tr ui.Trigger) {
		cfg.Settings.Scanlines = options.StepCycle(cfg.Settings.Scanlines, cfg.ScanlinesOff, cfg.ScanlinesBlack, !tr.Secondary)
	})
	s.AddOption(itemSubtitles, "Subtitles", func() string {
		return onOff(cfg.Settings.Subtitles)
	}, func(ui.Trigger) {
		cfg.Settings.Subtitles = !cfg.Settings.Subtitles
	})
	s.AddOption(itemShadows, "Shadows", func() string {
		return onOff(cfg.Settings.Shadows)
	}, func(ui.Trigger) {
		cfg.Settings.Shadows = !cfg.Settings.Shadows
	})
	s.AddOption(itemRadar, "Radar", func() string {
		if cfg.Settings.RotRadar {
			return "Rotating"
		}
		return "Fixed"
	}, func(ui.Trigger) {
		cfg.Settings.RotRadar = !cfg.Settings.RotRadar
	})
	addOptionsReturn(e, s)

	t.Screen = s
}

func buildVideoOptions(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("VIDEO OPTIONS")
	s.Note = "* Takes effect on game restart"

	s.AddOption(itemWindowMode, "Graphics Mode*", func() string {
		if cfg.Settings.Fullscreen {
			return "Fullscreen"
		}
		return "Windowed"
	}, func(ui.Trigger) {
		cfg.Settings.Fullscreen = !cfg.Settings.Fullscreen
	})
	s.AddOption(itemResolution, "Resolution*", func() string {
		return fmt.Sprintf("[%d] %d × %d", cfg.Settings.Screen, cfg.Settings.Width, cfg.Settings.Height)
	}, func(tr ui.Trigger) {
		cycleResolution(svc, !tr.Secondary)
	})
	s.AddOption(itemTextureSize, "Texture size", func() string {
		return fmt.Sprint(cfg.Settings.TextureSize)
	}, func(tr ui.Trigger) {
		cfg.Settings.TextureSize = options.Pow2Cycle(cfg.Settings.TextureSize,
			cfg.Frontend.MinTextureSize, cfg.Frontend.MaxTextureSize, !tr.Secondary)
	})
	s.AddOption(itemVsync, "Vertical sync", func() string {
		return onOff(cfg.Settings.Vsync)
	}, func(ui.Trigger) {
		cfg.Settings.Vsync = svc.SetSwapInterval(!cfg.Settings.Vsync)
	})
	s.AddOption(itemAntialiasing, "Antialiasing*", func() string {
		if cfg.Settings.Antialiasing == 0 {
			return "Off"
		}
		return fmt.Sprintf("%d×", cfg.Settings.Antialiasing)
	}, func(tr ui.Trigger) {
		cfg.Settings.Antialiasing = options.Pow2Cycle(cfg.Settings.Antialiasing, 0, svc.MaxAntialiasing(), !tr.Secondary)
	})
	addOptionsReturn(e, s)

	t.Screen = s
}

// cycleResolution moves the configured resolution to the next (or
// previous) available display mode. It takes effect on restart.
func cycleResolution(svc *components.ServicesData, forward bool) {
	current := options.ScreenMode{
		Screen: cfg.Settings.Screen,
		Width:  cfg.Settings.Width,
		Height: cfg.Settings.Height,
	}
	next, ok := options.StepResolution(svc.DisplayModes(), current, forward)
	if !ok {
		log.Error("[frontend] no resolutions available to change")
		return
	}
	cfg.Settings.SetResolution(next.Screen, next.Width, next.Height)
}

func buildAudioOptions(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("AUDIO OPTIONS")
	stops := cfg.Frontend.VolumeStops

	s.AddSlider(itemVoiceVolume, "Voice Volume", stops, func() int {
		return volumeStop(cfg.Settings.UIVolume)
	}, func(tr ui.Trigger) {
		cfg.Settings.SetUIVolume(stopVolume(tr.Value))
	})
	s.AddSlider(itemFXVolume, "FX Volume", stops, func() int {
		return volumeStop(cfg.Settings.FXVolume)
	}, func(tr ui.Trigger) {
		cfg.Settings.SetFXVolume(stopVolume(tr.Value))
	})
	s.AddSlider(itemMusicVolume, "Music Volume", stops, func() int {
		return volumeStop(cfg.Settings.MusicVolume)
	}, func(tr ui.Trigger) {
		cfg.Settings.SetMusicVolume(stopVolume(tr.Value))
		SyncMusicVolume()
	})
	addOptionsReturn(e, s)

	t.Screen = s
}

// volumeStop converts a 0..1 volume to a slider stop, rounding to nearest.
func volumeStop(v float64) int {
	return int(v*float64(cfg.Frontend.VolumeStops) + 0.5)
}

func stopVolume(stop int) float64 {
	return float64(stop) / float64(cfg.Frontend.VolumeStops)
}

func buildMouseOptions(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("MOUSE OPTIONS")

	s.AddOption(itemInvertMouse, "Reverse Rotation", func() string {
		return onOff(cfg.Settings.InvertMouse)
	}, func(ui.Trigger) {
		cfg.Settings.InvertMouse = !cfg.Settings.InvertMouse
	})
	s.AddOption(itemTrapCursor, "Trap Cursor", func() string {
		return onOff(cfg.Settings.TrapCursor)
	}, func(ui.Trigger) {
		cfg.Settings.TrapCursor = !cfg.Settings.TrapCursor
		svc.RefreshCursor()
	})
	s.AddOption(itemMouseButtons, "Switch Mouse Buttons", func() string {
		return onOff(cfg.Settings.RightClickOrders)
	}, func(ui.Trigger) {
		cfg.Settings.RightClickOrders = !cfg.Settings.RightClickOrders
	})
	s.AddOption(itemRotateScreen, "Rotate Screen", func() string {
		if cfg.Settings.MiddleClickRotate {
			return "Middle Mouse"
		}
		return "Right Mouse"
	}, func(ui.Trigger) {
		cfg.Settings.MiddleClickRotate = !cfg.Settings.MiddleClickRotate
	})
	s.AddOption(itemCursorMode, "Colored Cursors", func() string {
		return onOff(cfg.Settings.ColouredCursor)
	}, func(ui.Trigger) {
		cfg.Settings.ColouredCursor = !cfg.Settings.ColouredCursor
		svc.RefreshCursor()
	})
	addOptionsReturn(e, s)

	t.Screen = s
}
