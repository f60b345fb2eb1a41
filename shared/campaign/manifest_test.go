package campaign

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCampaigns(t *testing.T) {
	fsys := fstest.MapFS{
		"campaigns/cam1.json": {Data: []byte(`{"name":"Alpha","level":"CAM_1A","video":"sequences/cam1/c001.ogg","captions":"sequences/cam1/c001.txa"}`)},
		"campaigns/cam4.json": {Data: []byte(`{"name":"Fourth","level":"CAM_4A","package":"cam4.wz","loading":"wrf/cam4.lev"}`)},
		"campaigns/notes.txt": {Data: []byte("ignored")},
		"campaigns/sub/x.json": {Data: []byte(`{"name":"nested"}`)},
	}

	got, err := LoadCampaigns(fsys, "campaigns", nil)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, Campaign{
		Name:     "Alpha",
		Level:    "CAM_1A",
		Video:    "sequences/cam1/c001.ogg",
		Captions: "sequences/cam1/c001.txa",
	}, got[0])
	assert.Equal(t, "cam4.wz", got[1].Package)
	assert.Equal(t, "wrf/cam4.lev", got[1].Loading)
	assert.Empty(t, got[1].Video)
}

func TestLoadCampaignsBadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		"campaigns/a_broken.json": {Data: []byte(`{"name":`)},
		"campaigns/cam1.json":     {Data: []byte(`{"name":"Alpha","level":"CAM_1A"}`)},
		"campaigns/cam2.json":     {Data: []byte(`{"name":"Beta","level":"CAM_2A"}`)},
	}

	var skipped []string
	got, err := LoadCampaigns(fsys, "campaigns", func(path string, err error) {
		assert.ErrorContains(t, err, "parse campaign "+path)
		skipped = append(skipped, path)
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"campaigns/a_broken.json"}, skipped)
	require.Len(t, got, 2)
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, "Beta", got[1].Name)
}

func TestLoadChallengesSkipsBadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"challenges/bad.json":    {Data: []byte(`[]`)},
		"challenges/towers.json": {Data: []byte(`{"name":"Towers","map":"Sk-Towers"}`)},
	}

	got, err := LoadChallenges(fsys, "challenges", nil)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Towers", got[0].Name)
}

func TestLoadCampaignsMissingDir(t *testing.T) {
	_, err := LoadCampaigns(fstest.MapFS{}, "campaigns", nil)
	assert.Error(t, err)
}

func TestLoadChallengesDefaultsName(t *testing.T) {
	fsys := fstest.MapFS{
		"challenges/tankrush.json": {Data: []byte(`{"level":"CHALLENGE_1","map":"Rush"}`)},
	}
	got, err := LoadChallenges(fsys, "challenges", nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "tankrush", got[0].Name)
	assert.Equal(t, "Rush", got[0].Map)
}
