// One-shot CLI: prints the reading for a single event without Telegram.
// Useful for checking templates and numerology against a live DataMind.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alias1177/NumerIA/internal/config"
	"github.com/Alias1177/NumerIA/internal/datamind"
	"github.com/Alias1177/NumerIA/internal/pipeline"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "uso: reading \"Equipo1 vs Equipo2\"")
		os.Exit(1)
	}
	text := strings.Join(os.Args[1:], " ")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	svc := pipeline.New(
		datamind.NewClient(cfg.DataMindURL, time.Duration(cfg.RequestTimeout)*time.Second),
		nil,
		logger.With().Str("component", "pipeline").Logger(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.RequestTimeout+5)*time.Second)
	defer cancel()

	fmt.Println(svc.Generate(ctx, 0, text, time.Now().UTC()))
}
