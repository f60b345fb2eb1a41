package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const settingsKey = "settings"

// settingsStore is the subset of gdata.Manager used for settings.
type settingsStore interface {
	LoadItem(key string) ([]byte, error)
	SaveItem(key string, data []byte) error
}

var gdataManager settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "warfront",
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings reads saved settings over the defaults and normalises them.
// It returns the defaults when nothing has been saved yet.
func LoadSettings() (cfg.SettingsConfig, error) {
	settings := cfg.DefaultSettings()
	if gdataManager == nil {
		return settings, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if len(data) == 0 {
		return settings, nil
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return cfg.DefaultSettings(), fmt.Errorf("parse settings: %w", err)
	}
	settings.Normalize()
	return settings, nil
}

// SaveSettings writes the current settings to disk. Failures are logged;
// the menus carry on with the values in memory.
func SaveSettings() {
	if gdataManager == nil {
		return
	}

	data, err := json.Marshal(cfg.Settings)
	if err != nil {
		log.Warn("[frontend] could not serialize settings: %v", err)
		return
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Warn("[frontend] could not save settings: %v", err)
	}
}

// ApplySettings makes s current and pushes the window related values to
// Ebitengine. Used once during start up, before the first scene.
func ApplySettings(s cfg.SettingsConfig) {
	s.Normalize()
	cfg.Settings = s

	ebiten.SetFullscreen(s.Fullscreen)
	ebiten.SetVsyncEnabled(s.Vsync)
	if !s.Fullscreen && s.Width > 0 && s.Height > 0 {
		ebiten.SetWindowSize(s.Width, s.Height)
	}
}
