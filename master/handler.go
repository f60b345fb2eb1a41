package main

import (
	"encoding/json"
	"net/http"

	"github.com/automoto/warfront/shared/lobby"
	"github.com/automoto/warfront/shared/log"
)

type registerResponse struct {
	ID string `json:"id"`
}

type heartbeatRequest struct {
	ID      string `json:"id"`
	Players int    `json:"players"`
}

const maxRequestBody = 1 << 16 // 64 KB

func writeJSONHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// ListGames serves the game list the join screen shows.
func ListGames(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONHeaders(w)
		if err := json.NewEncoder(w).Encode(reg.List()); err != nil {
			log.Warn("[lobby] list encode error: %v", err)
		}
	}
}

// RegisterGame adds a hosted game. Name and address are required.
func RegisterGame(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONHeaders(w)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var g lobby.Game
		if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}
		if g.Name == "" || g.Address == "" {
			http.Error(w, `{"error":"name and address required"}`, http.StatusBadRequest)
			return
		}

		id := reg.Register(g)
		log.Info("[lobby] registered game %q on %s at %s (id=%s)", g.Name, g.Map, g.Address, id)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(registerResponse{ID: id})
	}
}

func Heartbeat(reg *Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONHeaders(w)

		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)
		var req heartbeatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, `{"error":"invalid json"}`, http.StatusBadRequest)
			return
		}

		if !reg.Heartbeat(req.ID, req.Players) {
			http.Error(w, `{"error":"unknown game"}`, http.StatusNotFound)
			return
		}

		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}
}

// NewMux routes the lobby endpoints.
func NewMux(reg *Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /servers", ListGames(reg))
	mux.HandleFunc("POST /servers/register", RegisterGame(reg))
	mux.HandleFunc("POST /servers/heartbeat", Heartbeat(reg))
	mux.HandleFunc("GET /health", Health())
	return mux
}
