package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/analysis"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/apifootball"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/config"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/health"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/logging"
	"github.com/intellisenseai-pixel/meu-bot-telegram/internal/pkg/storage"
)

const (
	startBanner = "Agente ⚽️ Messi (V12.0 - O Detetive) operacional."
	ackMessage  = "Solicitação V12.0 recebida. Consultando tradutor e ativando DETETIVE IMPLACÁVEL..."
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger := logging.SetupLogger(&cfg.Logging, "telegram-bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Received shutdown signal, stopping bot...")
		cancel()
	}()

	health.Run(ctx, health.AddrFor(cfg.Health.Port), "telegram-bot", cfg.Health.HeaderTimeout())

	// Team cache is optional; a broken Redis only costs extra provider calls.
	var cache storage.TeamCache
	if cfg.Redis.Enabled {
		redisClient, err := storage.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.TeamCacheTTL())
		if err != nil {
			logger.Warn("Redis unavailable, continuing without team cache", "error", err)
		} else {
			cache = redisClient
			defer redisClient.Close()
		}
	}

	client := apifootball.NewClient(cfg.APIFootball.BaseURL, cfg.APIFootball.APIKey, cfg.APIFootball.RequestTimeout())
	pipeline := analysis.NewPipeline(client, cache, cfg.APIFootball.Season, cfg.APIFootball.BookmakerID, logger)

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}
	bot.Debug = false
	logger.Info("Authorized on account", "username", bot.Self.UserName)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.UpdateTimeout

	updates := bot.GetUpdatesChan(u)

	go func() {
		for {
			select {
			case <-ctx.Done():
				bot.StopReceivingUpdates()
				return
			case update := <-updates:
				if update.Message == nil {
					continue
				}
				if !userAllowed(cfg.Telegram.AllowedUserIDs, update.Message.From) {
					msg := tgbotapi.NewMessage(update.Message.Chat.ID, "Access denied. You are not authorized to use this bot.")
					bot.Send(msg)
					continue
				}

				// Each request runs its own pipeline invocation; no state is
				// shared between them.
				go handleMessage(ctx, bot, pipeline, logger, update.Message)
			}
		}
	}()

	<-ctx.Done()
	logger.Info("Telegram bot stopped")
}

func userAllowed(allowed []int64, from *tgbotapi.User) bool {
	if len(allowed) == 0 {
		return true
	}
	if from == nil {
		return false
	}
	for _, id := range allowed {
		if from.ID == id {
			return true
		}
	}
	return false
}

func handleMessage(ctx context.Context, bot *tgbotapi.BotAPI, pipeline *analysis.Pipeline, logger *slog.Logger, message *tgbotapi.Message) {
	text := strings.TrimSpace(strings.ReplaceAll(message.Text, "@"+bot.Self.UserName, ""))
	if text == "" {
		return
	}

	if message.IsCommand() {
		switch message.Command() {
		case "start", "help":
			if _, err := bot.Send(tgbotapi.NewMessage(message.Chat.ID, startBanner)); err != nil {
				logger.Error("Failed to send start banner", "error", err)
			}
		}
		return
	}

	if !strings.Contains(strings.ToLower(text), analysis.PromptMarker) {
		return
	}

	ack := tgbotapi.NewMessage(message.Chat.ID, ackMessage)
	ack.ReplyToMessageID = message.MessageID
	if _, err := bot.Send(ack); err != nil {
		logger.Error("Failed to send acknowledgement", "error", err)
	}

	game, err := pipeline.Analyze(ctx, text)
	if err != nil {
		logger.Warn("Analysis failed", "error", err)
	}

	reply := analysis.FormatResult(game, err)
	if _, err := bot.Send(tgbotapi.NewMessage(message.Chat.ID, reply)); err != nil {
		logger.Error("Failed to send analysis card", "error", err)
	}
}
