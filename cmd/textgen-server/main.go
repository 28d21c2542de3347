// SPDX-License-Identifier: MIT

// Command textgen-server exposes a fitted text generator as a JSON API.
//
// Endpoints:
//
//	GET  /health
//	POST /api/generate         body: {"model":2,"n":200}
//	GET  /api/report?model=<1|2|3>
//	GET  /api/stats
package main

import (
	"net/http"
	"time"

	"github.com/katalvlaran/lvtext/generator"
	"github.com/katalvlaran/lvtext/internal/config"
	"github.com/katalvlaran/lvtext/internal/logger"
	"github.com/katalvlaran/lvtext/internal/runner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.NewLogger("error")
		log.Fatal("Failed to load configuration:", err)
	}
	if err := cfg.ValidateServer(); err != nil {
		log := logger.NewLogger("error")
		log.Fatal("Invalid configuration:", err)
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	log.Info("Starting text generation service")
	log.Info("Environment: %s", cfg.App.Env)
	log.Info("Log level: %s", cfg.App.LogLevel)

	engine, err := runner.NewEngine(cfg.Model, generator.Kinds, log)
	if err != nil {
		log.Error("Failed to fit models: %v", err)
		log.Fatal("Cannot start without fitted models")
	}

	handler := newHandler(&server{engine: engine, log: log}, cfg.App.CORSOrigins)
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.App.ServerPort,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
	}

	log.Info("Starting server on port %s", cfg.App.ServerPort)
	log.Info("Endpoints:")
	log.Info("  GET  /health")
	log.Info("  POST /api/generate")
	log.Info("  GET  /api/report?model=N")
	log.Info("  GET  /api/stats")
	log.Fatal(srv.ListenAndServe())
}
