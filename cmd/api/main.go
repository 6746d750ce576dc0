package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"novel-annotator/internal/cache"
	"novel-annotator/internal/config"
	"novel-annotator/internal/editor"
	"novel-annotator/internal/http"
	"novel-annotator/internal/realign"
	"novel-annotator/internal/render"
	"novel-annotator/internal/service"
	"novel-annotator/internal/storage"
)

//go:generate swagger generate spec -o swagger.json

// General API information
//
// This API segments novels into chapters and keeps user annotations aligned
// with the text as chapters are edited, merged, split and deleted.
//
// swagger:meta
//
// ---
// swagger: '2.0'
// info:
//   title: Novel Annotator API
//   description: |
//     Chapter segmentation and annotation realignment for novel annotation.
//     Every structural edit returns the updated novel and a report of how
//     annotations moved.
//   version: 1.0.0
// schemes:
//   - http
//   - https
// consumes:
//   - application/json
// produces:
//   - application/json

func main() {
	// Load configuration first (needed for log level)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure structured logging with configurable level and format
	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}
	var handler slog.Handler
	if cfg.LogFormat == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	slog.Debug("Logging configured", "level", cfg.LogLevel.String(), "format", cfg.LogFormat)

	// Initialize database
	db, err := storage.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	if err := storage.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	slog.Info("Database initialized", "path", cfg.DBPath)

	// Create repository instances
	novelRepo := storage.NewNovelRepo(db)
	annotationRepo := storage.NewAnnotationRepo(db)
	anchorRepo := storage.NewPlotAnchorRepo(db)

	snapshots, err := cache.New(cfg.CacheSize, cache.WithEvictHook(func(id string, e cache.Entry) {
		// Unsaved snapshots stay pinned until a save succeeds
		slog.Debug("Novel evicted from cache", "novel_id", id, "unsaved", e.Dirty)
	}))
	if err != nil {
		log.Fatalf("Failed to create snapshot cache: %v", err)
	}

	ed := editor.New(editor.WithRealigner(realign.New(realign.WithWindow(cfg.RealignWindow))))

	novelService := service.NewNovelService(service.NovelServiceConfig{
		Novels:        novelRepo,
		Annotations:   annotationRepo,
		Anchors:       anchorRepo,
		Cache:         snapshots,
		Editor:        ed,
		Renderer:      render.New(),
		DefaultUserID: cfg.DefaultUserID,
	})
	slog.Info("Novel service initialized", "cache_size", cfg.CacheSize, "realign_window", cfg.RealignWindow)

	// Create router with dependencies
	deps := &http.Deps{
		NovelService: novelService,
		DB:           db,
		Cache:        snapshots,
	}
	router := http.NewRouter(deps)

	// Start API server
	addr := ":" + cfg.APIPort
	server := &nethttp.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("Starting API server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
			log.Fatalf("API server failed to start: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("Shutting down API server")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}

	// Save anything a failed write left only in memory
	if err := novelService.Flush(ctx); err != nil {
		slog.Error("Unsaved novels remain after flush", "error", err)
	} else {
		slog.Info("All novels saved")
	}
}
