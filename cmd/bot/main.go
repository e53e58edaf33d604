package main

import (
	"go.uber.org/zap"

	"github.com/calmaria/maria-bot/internal/assistant"
	"github.com/calmaria/maria-bot/internal/bot"
	"github.com/calmaria/maria-bot/internal/richcontent"
	"github.com/calmaria/maria-bot/internal/storage"
	"github.com/calmaria/maria-bot/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig, logger)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize the reply generator
	asst := assistant.NewOpenAIAssistant(
		cfg.OpenAI.APIKey,
		cfg.OpenAI.Model,
		cfg.OpenAI.MaxTokens,
		cfg.OpenAI.Temperature,
		logger,
	)

	// Initialize the enrichment pipeline
	processor := richcontent.NewProcessor(richcontent.FinalizerConfig{
		SessionTimeout: cfg.Session.Timeout(),
		QRImageURL:     cfg.Session.QRImageURL,
	}, logger)

	// Initialize bot
	b, err := bot.New(cfg.Telegram.Token, store, asst, processor, cfg.Voice.AdaptiveVoice, logger)
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	// Start the bot
	if err := b.Start(); err != nil {
		logger.Fatal("Bot error", zap.Error(err))
	}
}
