package systems

import (
	"io/fs"
	"sync"

	"github.com/automoto/warfront/assets"
	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	globalMusicPlayer  *audio.Player
	globalMusicKey     string
	globalFadeTimer    int
	globalFadeDuration int
	globalFadeStart    float64
	audioInitOnce      sync.Once
)

// InitAudio creates the audio context and a loader reading from files.
// Until it runs, queued sounds are dropped silently.
func InitAudio(files fs.FS) {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext, files)
	})
}

// PreloadAllSFX decodes all sound effects at startup to avoid lag on first play.
func PreloadAllSFX() {
	if globalAudioLoader == nil {
		return
	}
	for _, path := range cfg.Sound.SFXPaths {
		if err := globalAudioLoader.PreloadSFX(path); err != nil {
			log.Debug("[audio] %v", err)
		}
	}
}

// UpdateAudio processes pending SFX and manages music fades
func UpdateAudio(e *ecs.ECS) {
	if globalFadeTimer > 0 {
		globalFadeTimer--
		if globalFadeDuration > 0 && globalMusicPlayer != nil {
			progress := float64(globalFadeTimer) / float64(globalFadeDuration)
			globalMusicPlayer.SetVolume(globalFadeStart * progress)
		}
		if globalFadeTimer == 0 && globalMusicPlayer != nil {
			_ = globalMusicPlayer.Close()
			globalMusicPlayer = nil
			globalMusicKey = ""
		}
	}

	audioData := GetOrCreateAudio(e)
	for _, soundID := range audioData.PendingSFX {
		playSFX(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// sfxVolume is the effective volume of a menu sound.
func sfxVolume(soundID cfg.SoundID) float64 {
	volume := cfg.Settings.UIVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}
	return volume
}

func playSFX(soundID cfg.SoundID) {
	if globalAudioLoader == nil {
		return
	}
	volume := sfxVolume(soundID)
	if volume <= 0 {
		return
	}

	path, ok := cfg.Sound.SFXPaths[soundID]
	if !ok {
		return
	}

	player, err := globalAudioLoader.LoadSFX(path)
	if err != nil {
		log.Debug("[audio] %v", err)
		return
	}

	player.SetVolume(volume)
	player.Play()
}

// PlayMusic starts playing a looping track unless it is already playing.
func PlayMusic(musicPath string) {
	if globalAudioLoader == nil || globalMusicKey == musicPath {
		return
	}

	player, err := globalAudioLoader.LoadMusic(musicPath)
	if err != nil {
		log.Warn("[audio] menu music: %v", err)
		return
	}

	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
	}

	player.SetVolume(cfg.Settings.MusicVolume)
	player.Play()

	globalMusicPlayer = player
	globalMusicKey = musicPath
	globalFadeTimer = 0
}

// FadeOutMusic starts a music fade out transition
func FadeOutMusic() {
	if globalMusicPlayer == nil {
		return
	}
	globalFadeTimer = cfg.Audio.MusicFadeDuration
	globalFadeDuration = cfg.Audio.MusicFadeDuration
	globalFadeStart = globalMusicPlayer.Volume()
}

// StopMusic immediately stops the current music
func StopMusic() {
	if globalMusicPlayer != nil {
		_ = globalMusicPlayer.Close()
		globalMusicPlayer = nil
		globalMusicKey = ""
	}
	globalFadeTimer = 0
}

// SyncMusicVolume applies the configured music volume to the playing track.
func SyncMusicVolume() {
	if globalMusicPlayer != nil && globalFadeTimer == 0 {
		globalMusicPlayer.SetVolume(cfg.Settings.MusicVolume)
	}
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
