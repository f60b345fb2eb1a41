package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetSPColourRemapsReservedColours(t *testing.T) {
	s := DefaultSettings()
	for _, c := range []int{1, 2, 3} {
		s.SetSPColour(c)
		assert.Equal(t, 0, s.SPColour, "colour %d", c)
	}
	s.SetSPColour(5)
	assert.Equal(t, 5, s.SPColour)
}

func TestSetMPColourRange(t *testing.T) {
	s := DefaultSettings()
	s.SetMPColour(-1)
	assert.Equal(t, -1, s.MPColour)
	s.SetMPColour(Frontend.MaxPlayersInGUI - 1)
	assert.Equal(t, Frontend.MaxPlayersInGUI-1, s.MPColour)
	s.SetMPColour(Frontend.MaxPlayersInGUI)
	assert.Equal(t, -1, s.MPColour)
}

func TestSetScrollSpeedZero(t *testing.T) {
	s := DefaultSettings()
	s.SetScrollSpeed(0)
	assert.Equal(t, 100, s.ScrollSpeed)
	s.SetScrollSpeed(700)
	assert.Equal(t, 700, s.ScrollSpeed)
}

func TestVolumeClamped(t *testing.T) {
	s := DefaultSettings()
	s.SetMusicVolume(1.5)
	assert.Equal(t, 1.0, s.MusicVolume)
	s.SetFXVolume(-0.2)
	assert.Equal(t, 0.0, s.FXVolume)
	s.SetUIVolume(0.37)
	assert.InDelta(t, 0.37, s.UIVolume, 1e-9)
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "2×", FMV2x.String())
	assert.Equal(t, "Unsupported", FMVMax.String())
	assert.Equal(t, "50%", Scanlines50.String())
	assert.Equal(t, "Hard", DifficultyHard.String())
}

func TestNormalizeResetsUnknownEnums(t *testing.T) {
	s := DefaultSettings()
	s.FMVMode = FMVMax
	s.Scanlines = -1
	s.Difficulty = 9
	s.AIDifficulty = 7
	s.Power = 3
	s.Bases = -2
	s.Alliances = 12
	s.ScrollSpeed = 0
	s.MusicVolume = 4

	s.Normalize()

	def := DefaultSettings()
	assert.Equal(t, def.FMVMode, s.FMVMode)
	assert.Equal(t, def.Scanlines, s.Scanlines)
	assert.Equal(t, def.Difficulty, s.Difficulty)
	assert.Equal(t, def.AIDifficulty, s.AIDifficulty)
	assert.Equal(t, def.Power, s.Power)
	assert.Equal(t, def.Bases, s.Bases)
	assert.Equal(t, def.Alliances, s.Alliances)
	assert.Equal(t, 100, s.ScrollSpeed)
	assert.Equal(t, 1.0, s.MusicVolume)
}

func TestNormalizeKeepsValidValues(t *testing.T) {
	s := DefaultSettings()
	s.Difficulty = DifficultyInsane
	s.AIDifficulty = AIHard
	s.Alliances = AllianceFixedTeams
	want := s

	s.Normalize()

	assert.Equal(t, want, s)
}

func TestEnumNamesOutOfRange(t *testing.T) {
	assert.Equal(t, "Unsupported", AIDifficulty(7).String())
	assert.Equal(t, "Unsupported", PowerLevel(-1).String())
	assert.Equal(t, "Unsupported", BaseLevel(3).String())
	assert.Equal(t, "Unsupported", AllianceMode(5).String())
	assert.Equal(t, "Locked Teams", AllianceFixedTeams.String())
}
