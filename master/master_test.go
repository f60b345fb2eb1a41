package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/automoto/warfront/shared/lobby"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryListSkipsPrivateGames(t *testing.T) {
	reg := NewRegistry(time.Minute)
	reg.Register(lobby.Game{Name: "Zeta", Address: "1.1.1.1:2100"})
	reg.Register(lobby.Game{Name: "Alpha", Address: "2.2.2.2:2100"})
	reg.Register(lobby.Game{Name: "Hidden", Address: "3.3.3.3:2100", Private: true})

	games := reg.List()

	require.Len(t, games, 2)
	assert.Equal(t, "Alpha", games[0].Name)
	assert.Equal(t, "Zeta", games[1].Name)
	assert.NotEmpty(t, games[0].ID)
}

func TestRegistryExpire(t *testing.T) {
	now := time.Unix(1000, 0)
	reg := NewRegistry(90 * time.Second)
	reg.now = func() time.Time { return now }

	stale := reg.Register(lobby.Game{Name: "Stale", Address: "a:1"})
	fresh := reg.Register(lobby.Game{Name: "Fresh", Address: "b:1"})

	now = now.Add(60 * time.Second)
	require.True(t, reg.Heartbeat(fresh, 3))
	now = now.Add(40 * time.Second)
	reg.Expire()

	assert.False(t, reg.Heartbeat(stale, 1))
	games := reg.List()
	require.Len(t, games, 1)
	assert.Equal(t, "Fresh", games[0].Name)
	assert.Equal(t, 3, games[0].Players)
}

func TestLobbyClientAgainstServer(t *testing.T) {
	reg := NewRegistry(time.Minute)
	srv := httptest.NewServer(NewMux(reg))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/servers/register", "application/json",
		strings.NewReader(`{"name":"Rush","address":"10.0.0.2:2100","map":"Sk-Rush","players":1,"maxPlayers":4}`))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	games, err := lobby.NewClient(srv.URL, time.Second).FetchGames(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Rush (Sk-Rush) 1/4", games[0].String())
}

func TestRegisterGameValidation(t *testing.T) {
	reg := NewRegistry(time.Minute)
	h := RegisterGame(reg)

	tests := []struct {
		name string
		body string
	}{
		{"bad json", `{`},
		{"no address", `{"name":"x"}`},
		{"no name", `{"address":"1.2.3.4:2100"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodPost, "/servers/register", strings.NewReader(tt.body)))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
	assert.Empty(t, reg.List())
}

func TestHeartbeatUnknownGame(t *testing.T) {
	rec := httptest.NewRecorder()
	Heartbeat(NewRegistry(time.Minute))(rec,
		httptest.NewRequest(http.MethodPost, "/servers/heartbeat", strings.NewReader(`{"id":"nope","players":2}`)))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
