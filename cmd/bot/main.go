package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/config"
	"github.com/diegoclair/slack-reminder-bot/internal/database"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/service"
	"github.com/diegoclair/slack-reminder-bot/internal/events"
	"github.com/diegoclair/slack-reminder-bot/internal/handlers"
	"github.com/diegoclair/slack-reminder-bot/internal/notifier"
	"github.com/diegoclair/slack-reminder-bot/internal/persona"
	"github.com/diegoclair/slack-reminder-bot/internal/startup"
	"github.com/diegoclair/slack-reminder-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

const version = "1.0.0"

// terminal reminders are kept around this long for /remind list history and debugging
const terminalRetention = 30 * 24 * time.Hour

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	slackClient := slack.New(cfg.SlackBotToken)
	dm := database.NewInstance(db)

	var renderer contract.PersonaRenderer = persona.NewTemplateRenderer()
	if cfg.DeepSeekAPIKey != "" {
		llm, err := persona.NewLLMRenderer(cfg.DeepSeekAPIKey)
		if err != nil {
			log.Printf("LLM renderer unavailable, using templates: %v", err)
		} else {
			log.Println("Using DeepSeek persona renderer")
			renderer = llm
		}
	}

	services := service.New(
		dm,
		renderer,
		notifier.New(slackClient),
		events.NewLogSink(),
		service.Policy{
			MaxAttempts:     cfg.MaxAttempts,
			RetryBackoff:    cfg.RetryBackoff,
			DeliveryTimeout: cfg.DeliveryTimeout,
			PastDueGrace:    cfg.PastDueGrace,
			ShutdownGrace:   cfg.ShutdownGrace,
		},
	)

	if err := services.Scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer services.Scheduler.Stop()

	// safety-net reconciliation against the store plus nightly cleanup
	cronRunner := cron.New()
	if _, err := cronRunner.AddFunc(cfg.SweepInterval, services.Scheduler.Sweep); err != nil {
		log.Fatalf("Invalid sweep interval %q: %v", cfg.SweepInterval, err)
	}
	if _, err := cronRunner.AddFunc("@daily", func() {
		services.Scheduler.PurgeTerminal(terminalRetention)
	}); err != nil {
		log.Fatalf("Failed to register purge job: %v", err)
	}
	cronRunner.Start()
	defer cronRunner.Stop()

	startup.New(slackClient, cfg.StartupChannelID, version).Announce()

	handler := handlers.New(services.Reminder, cfg.SlackSigningSecret)

	mux := http.NewServeMux()
	mux.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: mux,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// drain in-flight deliveries before exit; pending reminders stay in the
	// store and are recovered at next start
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownGrace)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
