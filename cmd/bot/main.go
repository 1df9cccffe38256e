package main

import (
	"context"
	"os"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Alias1177/NumerIA/internal/cache"
	"github.com/Alias1177/NumerIA/internal/config"
	"github.com/Alias1177/NumerIA/internal/datamind"
	"github.com/Alias1177/NumerIA/internal/pipeline"
	"github.com/Alias1177/NumerIA/models"
)

const welcomeText = "🔮 *NumerIA activo*\n" +
	"Envíame un partido (por ejemplo: `Real Madrid vs Barcelona`) y te devuelvo " +
	"la lectura completa: estadística DataMind + análisis numérico.\n\n" +
	"Comandos:\n/ultima — tu última lectura"

func main() {
	// Setup logger
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

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := bot.GetUpdatesChan(updateConfig)

	for update := range updates {
		if update.Message == nil || update.Message.Text == "" {
			continue
		}
		handleMessage(bot, svc, cfg, update.Message, logger)
	}
}

// newResultCache picks Redis when configured, in-memory otherwise. Either
// way the cache is best-effort only.
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

	logger.Info().Str("addr", cfg.RedisAddr).Msg("Last-result cache on Redis")
	return rc
}

// handleMessage processes one incoming text message
func handleMessage(bot *tgbotapi.BotAPI, svc *pipeline.Service, cfg *config.Config, message *tgbotapi.Message, logger zerolog.Logger) {
	userID := message.From.ID
	chatID := message.Chat.ID

	reqLogger := logger.With().
		Str("request_id", uuid.NewString()).
		Int64("user_id", userID).
		Logger()

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout+5)*time.Second)
	defer cancel()

	var reply string
	switch message.Text {
	case "/start":
		reply = welcomeText
	case "/ultima":
		last, ok := svc.LastReading(ctx, userID)
		if !ok {
			reply = "Todavía no tienes lecturas guardadas. Envíame un partido primero."
		} else {
			reply = last
		}
	default:
		reqLogger.Info().Msg("Generating reading")
		reply = svc.Generate(ctx, userID, message.Text, time.Now().UTC())
	}

	msg := tgbotapi.NewMessage(chatID, reply)
	msg.ParseMode = tgbotapi.ModeMarkdown
	if _, err := bot.Send(msg); err != nil {
		reqLogger.Error().Err(err).Msg("Failed to send reply")
		// Markdown from user-supplied team names can break parsing, resend plain
		plain := tgbotapi.NewMessage(chatID, reply)
		if _, err := bot.Send(plain); err != nil {
			reqLogger.Error().Err(err).Msg("Failed to send plain-text reply")
		}
		return
	}

	reqLogger.Debug().Int("bytes", len(reply)).Msg("Reply sent")
}
