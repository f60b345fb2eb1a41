package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoundPathsShareAudioRoot(t *testing.T) {
	assert.True(t, strings.HasPrefix(Sound.MenuMusic, "audio/music/"), Sound.MenuMusic)
	for id, p := range Sound.SFXPaths {
		assert.True(t, strings.HasPrefix(p, "audio/sfx/"), "sound %d: %s", id, p)
	}
}
