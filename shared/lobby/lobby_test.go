package lobby

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchGames(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/servers", r.URL.Path)
		_, _ = w.Write([]byte(`[{"id":"a1","name":"Rush","address":"10.0.0.2:2100","map":"Rush","players":2,"maxPlayers":4}]`))
	}))
	defer srv.Close()

	games, err := NewClient(srv.URL+"/", time.Second).FetchGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "10.0.0.2:2100", games[0].Address)
	assert.Equal(t, "Rush (Rush) 2/4", games[0].String())
	assert.False(t, games[0].Full())
}

func TestFetchGamesBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).FetchGames(context.Background())
	assert.ErrorContains(t, err, "503")
}

func TestFetchGamesBadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second).FetchGames(context.Background())
	assert.Error(t, err)
}

func TestGameFull(t *testing.T) {
	assert.True(t, Game{Players: 4, MaxPlayers: 4}.Full())
	assert.False(t, Game{Players: 4}.Full())
}
