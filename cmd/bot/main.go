package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/parazzit213/chil-life-bot/internal/config"
	"github.com/parazzit213/chil-life-bot/internal/dispatch"
	"github.com/parazzit213/chil-life-bot/internal/generation"
	"github.com/parazzit213/chil-life-bot/internal/handler"
	"github.com/parazzit213/chil-life-bot/internal/menu"
	"github.com/parazzit213/chil-life-bot/internal/middleware"
	"github.com/parazzit213/chil-life-bot/internal/notify"
	"github.com/parazzit213/chil-life-bot/internal/repository/postgres"
	"github.com/parazzit213/chil-life-bot/internal/service"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting ChilLife Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// The menu graph is static; a dangling button target is a
	// programming error caught here, before the bot goes online
	registry, err := menu.NewDefaultRegistry()
	if err != nil {
		logger.Fatal("Invalid menu registry", zap.Error(err))
	}

	// Initialize repositories and services
	userRepo := postgres.NewUserRecordRepo(db)
	userService := service.NewUserService(userRepo)
	sessions := service.NewSessionStore()

	generator := generation.NewOpenAIGenerator(cfg.OpenAIKey, cfg.OpenAIModel)
	contentService := service.NewContentService(generator, cfg.GenerationTimeout, logger)

	dispatcher := dispatch.NewDispatcher(registry, userService, contentService, logger)

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	bot.Use(middleware.SerializePerUser())

	// Initialize handler
	h := handler.NewHandler(bot, dispatcher, sessions, logger)
	h.RegisterHandlers()

	if err := bot.SetCommands([]tele.Command{
		{Text: "start", Description: "Начать работу с ботом"},
		{Text: "menu", Description: "Открыть главное меню"},
	}); err != nil {
		logger.Warn("Failed to set bot commands", zap.Error(err))
	}

	logger.Info("Handlers registered")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the daily challenge broadcast when a channel is configured
	if cfg.ChannelID != 0 {
		broadcaster := notify.NewBroadcaster(bot, cfg.ChannelID, logger)
		go runDailyChallenge(ctx, broadcaster, contentService, logger)
	}

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()
	cancel()

	logger.Info("Bot stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}

// runDailyChallenge posts a generated challenge to the channel once at
// startup and then every 24 hours
func runDailyChallenge(ctx context.Context, broadcaster *notify.Broadcaster, content *service.ContentService, logger *zap.Logger) {
	post := func() {
		text := content.Generate(ctx, generation.PromptDailyChallenge)
		if err := broadcaster.Post("🔥 Задание дня: " + text); err != nil {
			logger.Error("Failed to broadcast daily challenge", zap.Error(err))
		}
	}

	post()

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Daily challenge job stopped")
			return
		case <-ticker.C:
			post()
		}
	}
}
