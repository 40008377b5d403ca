package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"companion-core/config"
	"companion-core/internal/assistant/repository/memory"
	assistantUsecase "companion-core/internal/assistant/usecase"
	"companion-core/internal/extractor"
	"companion-core/internal/httpserver"
	"companion-core/internal/middleware"
	"companion-core/internal/responder"
	"companion-core/pkg/datemath"
	"companion-core/pkg/gcalendar"
	"companion-core/pkg/log"
)

// @title       Companion Core API
// @description Multi-provider conversational assistant with personality-shaped replies and task extraction.
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

	logger.Info(ctx, "Starting Companion Core...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reply orchestrator: local endpoints first, then hosted, then hub,
	// with the rule responder as the terminal fallback.
	orchestrator := responder.New(responder.Config{
		Local: responder.LocalConfig{
			Endpoints:      cfg.Local.Endpoints,
			PrimaryModel:   cfg.Local.PrimaryModel,
			SecondaryModel: cfg.Local.SecondaryModel,
		},
		OpenAIAPIKey:  cfg.OpenAI.APIKey,
		OpenAIModel:   cfg.OpenAI.Model,
		OpenAIBaseURL: cfg.OpenAI.BaseURL,
		HubToken:      cfg.Hub.Token,
		HubModels:     cfg.Hub.Models,
	}, logger)

	// 4. Task extraction
	timezone := cfg.GoogleCalendar.Timezone
	dateMathParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		timezone = "UTC"
		dateMathParser, _ = datemath.NewParser(timezone)
	}
	taskExtractor := extractor.New(orchestrator, dateMathParser, logger)

	// 5. Storage
	store, err := memory.New(logger, cfg.Store.ProfileCapacity, cfg.Store.TaskCapacity)
	if err != nil {
		logger.Error(ctx, "Failed to initialize store: ", err)
		return
	}

	// 6. Google Calendar client (optional)
	var calendar assistantUsecase.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			logger.Info(ctx, "Google Calendar initialized")
			calendar = calendarClient
		}
	}

	// 7. Assistant UseCase
	assistantUC := assistantUsecase.New(logger, orchestrator, taskExtractor, store, store, calendar, timezone)

	// 8. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		AssistantUC: assistantUC,
		Middleware:  mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
