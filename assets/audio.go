package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader handles loading and caching of audio assets
type AudioLoader struct {
	files    fs.FS
	sfxCache map[string][]byte // decoded PCM per path
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader reading from files
func NewAudioLoader(ctx *audio.Context, files fs.FS) *AudioLoader {
	return &AudioLoader{
		files:    files,
		sfxCache: make(map[string][]byte),
		context:  ctx,
	}
}

func (l *AudioLoader) decode(p string) ([]byte, error) {
	data, err := fs.ReadFile(l.files, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", p, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", p, err)
	}
	return decoded, nil
}

// PreloadSFX decodes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(p string) error {
	if _, ok := l.sfxCache[p]; ok {
		return nil
	}
	decoded, err := l.decode(p)
	if err != nil {
		return err
	}
	l.sfxCache[p] = decoded
	return nil
}

// LoadSFX returns a new player for a cached sound effect each time.
func (l *AudioLoader) LoadSFX(p string) (*audio.Player, error) {
	if err := l.PreloadSFX(p); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[p]))
}

// LoadMusic returns a looping player for an ogg track. Music is not cached.
func (l *AudioLoader) LoadMusic(p string) (*audio.Player, error) {
	data, err := fs.ReadFile(l.files, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", p, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", p, err)
	}

	loop := audio.NewInfiniteLoop(stream, stream.Length())
	return l.context.NewPlayer(loop)
}
