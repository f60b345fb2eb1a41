package main

import (
	"sort"
	"sync"
	"time"

	"github.com/automoto/warfront/shared/lobby"
	"github.com/automoto/warfront/shared/log"
	"github.com/google/uuid"
)

type gameRecord struct {
	lobby.Game
	LastSeen time.Time
}

// Registry holds the games currently hosted. Games that stop sending
// heartbeats are dropped after the TTL.
type Registry struct {
	mu     sync.RWMutex
	games  map[string]*gameRecord
	ttl    time.Duration
	now    func() time.Time
	stopCh chan struct{}
}

func NewRegistry(ttl time.Duration) *Registry {
	return &Registry{
		games:  make(map[string]*gameRecord),
		ttl:    ttl,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
}

// Run expires stale games every interval until Stop is called.
func (r *Registry) Run(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stopCh:
			return
		case <-ticker.C:
			r.Expire()
		}
	}
}

func (r *Registry) Stop() {
	close(r.stopCh)
}

// Register adds g under a fresh id and returns the id.
func (r *Registry) Register(g lobby.Game) string {
	g.ID = uuid.NewString()

	r.mu.Lock()
	r.games[g.ID] = &gameRecord{Game: g, LastSeen: r.now()}
	r.mu.Unlock()

	return g.ID
}

// Heartbeat refreshes a game and its player count. It reports false for an
// unknown or already expired id.
func (r *Registry) Heartbeat(id string, players int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.games[id]
	if !ok {
		return false
	}
	rec.LastSeen = r.now()
	rec.Players = players
	return true
}

// List returns the public games ordered by name.
func (r *Registry) List() []lobby.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]lobby.Game, 0, len(r.games))
	for _, rec := range r.games {
		if rec.Private {
			continue
		}
		result = append(result, rec.Game)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Name != result[j].Name {
			return result[i].Name < result[j].Name
		}
		return result[i].ID < result[j].ID
	})
	return result
}

// Expire drops every game not seen within the TTL.
func (r *Registry) Expire() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, rec := range r.games {
		if age := now.Sub(rec.LastSeen); age >= r.ttl {
			log.Info("[lobby] expired game %q (id=%s, last seen %s ago)", rec.Name, id, age.Round(time.Second))
			delete(r.games, id)
		}
	}
}
