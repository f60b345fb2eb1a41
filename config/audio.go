package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundMenuBack
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate        int
	MusicFadeDuration int // frames for music fade out (60 = 1 second at 60fps)
}

// SoundConfig maps sound IDs to file paths
type SoundConfig struct {
	MenuMusic         string
	SFXPaths          map[SoundID]string
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:        44100,
		MusicFadeDuration: 60,
	}

	Sound = SoundConfig{
		MenuMusic: "audio/music/menu.ogg",
		SFXPaths: map[SoundID]string{
			SoundMenuNavigate: "audio/sfx/menu_navigate.wav",
			SoundMenuSelect:   "audio/sfx/menu_select.wav",
			SoundMenuBack:     "audio/sfx/menu_back.wav",
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundMenuBack: 0.8,
		},
	}
}
