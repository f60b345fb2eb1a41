// Package lobby queries the lobby server for games that are waiting for
// players.
package lobby

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Game describes a hosted game visible to joining players.
type Game struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address"`
	Map        string `json:"map"`
	Players    int    `json:"players"`
	MaxPlayers int    `json:"maxPlayers"`
	Version    string `json:"version"`
	Private    bool   `json:"private"`
}

func (g Game) String() string {
	return fmt.Sprintf("%s (%s) %d/%d", g.Name, g.Map, g.Players, g.MaxPlayers)
}

// Full reports whether no slot is left.
func (g Game) Full() bool {
	return g.MaxPlayers > 0 && g.Players >= g.MaxPlayers
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchGames returns the games listed by the lobby server.
func (c *Client) FetchGames(ctx context.Context) ([]Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/servers", nil)
	if err != nil {
		return nil, fmt.Errorf("build lobby request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lobby query failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("lobby server returned status %d", resp.StatusCode)
	}

	var games []Game
	if err := json.NewDecoder(resp.Body).Decode(&games); err != nil {
		return nil, fmt.Errorf("decode game list: %w", err)
	}
	return games, nil
}
