package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"uni-deadline-tracker/config"
	_ "uni-deadline-tracker/docs" // Swagger docs
	"uni-deadline-tracker/internal/docrouter"
	"uni-deadline-tracker/internal/export"
	deliveryHTTP "uni-deadline-tracker/internal/extract/delivery/http"
	extractUC "uni-deadline-tracker/internal/extract/usecase"
	"uni-deadline-tracker/internal/httpserver"
	"uni-deadline-tracker/internal/model"
	"uni-deadline-tracker/internal/outline"
	"uni-deadline-tracker/pkg/gcalendar"
	"uni-deadline-tracker/pkg/log"
)

// @title       Uni Deadline Tracker API
// @description Extracts and reconciles university assessment deadlines from outline documents and PDFs.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Uni Deadline Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction engine
	kw := model.DefaultKeywords().WithOverrides(
		cfg.Extraction.NonTeachingKeywords,
		cfg.Extraction.NoiseKeywords,
		cfg.Extraction.TBAPhrases,
		cfg.Extraction.CalendarHeaders,
		cfg.Extraction.AssessmentKeywords,
	)
	router := docrouter.New(kw, logger)
	uc := extractUC.New(logger, router, kw)

	// 4. Outline API client (optional)
	var outlines deliveryHTTP.OutlineFetcher
	if cfg.Outline.BaseURL != "" {
		cache := outline.NewCache(cfg.Outline.CacheSize, cfg.Outline.CacheTTL)
		outlines = outline.New(outline.Config{
			BaseURL:        cfg.Outline.BaseURL,
			AccessToken:    cfg.Outline.AccessToken,
			CacheSize:      cfg.Outline.CacheSize,
			CacheTTL:       cfg.Outline.CacheTTL,
			RequestsPerMin: cfg.Outline.RateLimitPerMin,
		}, cache, logger)
		logger.Infof(ctx, "Outline client initialized for %s", cfg.Outline.BaseURL)
	} else {
		logger.Warn(ctx, "OUTLINE_BASE_URL not set, unit fetch route disabled")
	}

	// 5. Google Calendar exporter (optional)
	var exporter export.UseCase
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			exporter = export.New(logger, calClient, export.Config{
				CalendarID: cfg.GoogleCalendar.CalendarID,
				Timezone:   cfg.GoogleCalendar.Timezone,
			})
			logger.Info(ctx, "Google Calendar exporter initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		APIKey:         cfg.API.Key,
		ExtractUseCase: uc,
		Exporter:       exporter,
		Outlines:       outlines,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
