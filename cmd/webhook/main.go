package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/cenkalti/backoff/v4"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Alias1177/NumerIA/internal/cache"
	"github.com/Alias1177/NumerIA/internal/config"
	"github.com/Alias1177/NumerIA/internal/datamind"
	"github.com/Alias1177/NumerIA/internal/keepalive"
	"github.com/Alias1177/NumerIA/internal/pipeline"
	"github.com/Alias1177/NumerIA/models"
)

func main() {
	lvl, _ := zerolog.ParseLevel("info")
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}
	if parsed, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		logger = logger.Level(parsed)
	}

	if cfg.TelegramToken == "" {
		logger.Fatal().Msg("TELEGRAM_BOT_TOKEN not set in environment")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize Telegram bot")
	}
	logger.Info().Str("username", bot.Self.UserName).Msg("Authorized on Telegram")

	svc := pipeline.New(
		datamind.NewClient(cfg.DataMindURL, time.Duration(cfg.RequestTimeout)*time.Second),
		newResultCache(cfg, logger),
		logger.With().Str("component", "pipeline").Logger(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.PublicURL != "" {
		if err := registerWebhook(bot, cfg, logger); err != nil {
			logger.Fatal().Err(err).Msg("Failed to register webhook")
		}
		if cfg.KeepaliveMinutes > 0 {
			pinger := keepalive.New(cfg.PublicURL, time.Duration(cfg.KeepaliveMinutes)*time.Minute)
			go pinger.Run(ctx)
		}
	}

	http.HandleFunc("/webhook", webhookHandler(bot, svc, cfg, logger))
	http.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintln(w, "NumerIA bot activo 🔥")
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info().Str("addr", addr).Msg("Webhook server listening")
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal().Err(err).Msg("HTTP server stopped")
	}
}

func newResultCache(cfg *config.Config, logger zerolog.Logger) models.ResultCache {
	if cfg.RedisAddr == "" {
		return cache.NewMemory()
	}

	rc := cache.NewRedis(cfg.RedisAddr, time.Duration(cfg.CacheTTLHours)*time.Hour)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx); err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("Redis unreachable, using in-memory cache")
		return cache.NewMemory()
	}
	return rc
}

// registerWebhook tells Telegram where to deliver updates. Registration may
// retry: unlike the predict call, a duplicate attempt here is harmless.
func registerWebhook(bot *tgbotapi.BotAPI, cfg *config.Config, logger zerolog.Logger) error {
	wh, err := tgbotapi.NewWebhook(cfg.PublicURL + "/webhook")
	if err != nil {
		return fmt.Errorf("building webhook config: %w", err)
	}

	operation := func() error {
		_, err := bot.Request(wh)
		return err
	}

	backoffStrategy := backoff.NewExponentialBackOff()
	backoffStrategy.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoffStrategy); err != nil {
		return fmt.Errorf("after retries: %w", err)
	}

	logger.Info().Str("url", cfg.PublicURL+"/webhook").Msg("Webhook registered")
	return nil
}

func webhookHandler(bot *tgbotapi.BotAPI, svc *pipeline.Service, cfg *config.Config, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		// Telegram echoes the secret back on every delivery when one was
		// set at registration time.
		if cfg.WebhookSecret != "" && r.Header.Get("X-Telegram-Bot-Api-Secret-Token") != cfg.WebhookSecret {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		var update tgbotapi.Update
		if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
			logger.Warn().Err(err).Msg("Malformed update payload")
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		// Only the message text and the chat/user ids matter here.
		if update.Message == nil || update.Message.Text == "" {
			w.WriteHeader(http.StatusOK)
			return
		}

		reqLogger := logger.With().
			Str("request_id", uuid.NewString()).
			Int64("user_id", update.Message.From.ID).
			Logger()

		ctx, cancel := context.WithTimeout(r.Context(), time.Duration(cfg.RequestTimeout+5)*time.Second)
		defer cancel()

		reply := svc.Generate(ctx, update.Message.From.ID, update.Message.Text, time.Now().UTC())

		msg := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
		msg.ParseMode = tgbotapi.ModeMarkdown
		if _, err := bot.Send(msg); err != nil {
			reqLogger.Error().Err(err).Msg("Failed to send reply")
			plain := tgbotapi.NewMessage(update.Message.Chat.ID, reply)
			if _, err := bot.Send(plain); err != nil {
				reqLogger.Error().Err(err).Msg("Failed to send plain-text reply")
			}
		}

		w.WriteHeader(http.StatusOK)
	}
}
