// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/cors"

	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/internal/logger"
	"github.com/katalvlaran/lvtext/textgen"
)

// ---- JSON types ---------------------------------------------------------

type generateRequest struct {
	Model int `json:"model"`
	N     int `json:"n"`
}

type generateResponse struct {
	ID       string `json:"id"`
	Model    int    `json:"model"`
	Units    int    `json:"units"`
	Restarts int    `json:"restarts"`
	Text     string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- server -------------------------------------------------------------

// server serializes every engine call; the engine itself is not safe for
// concurrent use.
type server struct {
	mu     sync.Mutex
	engine *textgen.Engine
	log    *logger.Logger
}

func newHandler(s *server, origins []string) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode error: %v", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, textgen.ErrInvalidArgument):
		status = http.StatusBadRequest
	case errors.Is(err, textgen.ErrPrecondition), errors.Is(err, textgen.ErrConfiguration):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		s.log.Error("request failed: %v", err)
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	ready := s.engine.Identified()
	s.mu.Unlock()
	s.writeJSON(w, http.StatusOK, map[string]bool{"ready": ready})
}

func (s *server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "body must be JSON with 'model' and 'n' fields"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev := s.engine.Kind()
	if err := s.engine.ChangeModel(generator.Kind(body.Model)); err != nil {
		s.writeError(w, err)
		return
	}
	seq, err := s.engine.Generate(body.N)
	if err != nil {
		// A rejected request leaves the active model as it was.
		if rerr := s.engine.ChangeModel(prev); rerr != nil {
			s.log.Error("restore model %d: %v", int(prev), rerr)
		}
		s.writeError(w, err)
		return
	}

	id := uuid.NewString()
	s.log.Debug("generation %s: model=%d n=%d restarts=%d", id, body.Model, body.N, seq.Restarts)
	s.writeJSON(w, http.StatusOK, generateResponse{
		ID:       id,
		Model:    int(seq.Kind),
		Units:    len(seq.Units),
		Restarts: seq.Restarts,
		Text:     seq.Text,
	})
}

func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	model, err := strconv.Atoi(r.URL.Query().Get("model"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing or non-numeric 'model' query parameter"})
		return
	}

	s.mu.Lock()
	rep, err := s.engine.ReportData(generator.Kind(model))
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, rep)
}

func (s *server) handleStats(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	st, err := s.engine.Stats()
	s.mu.Unlock()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, st)
}
