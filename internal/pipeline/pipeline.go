// Package pipeline runs one inbound message through the whole NumerIA flow:
// predict, extract, numerology, gematria, correlation, formatting. Each
// request is an independent unit of work over its own input snapshot.
package pipeline

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/Alias1177/NumerIA/internal/correlate"
	"github.com/Alias1177/NumerIA/internal/extract"
	"github.com/Alias1177/NumerIA/internal/format"
	"github.com/Alias1177/NumerIA/internal/gematria"
	"github.com/Alias1177/NumerIA/internal/numerology"
	"github.com/Alias1177/NumerIA/models"
)

// Service wires the injected collaborators. The predictor is the only
// fallible one; everything downstream is pure.
type Service struct {
	predictor models.Predictor
	cache     models.ResultCache
	formatter *format.Formatter
	logger    zerolog.Logger
}

// New builds a Service. cache may be nil when last-result storage is off.
func New(predictor models.Predictor, cache models.ResultCache, logger zerolog.Logger) *Service {
	return &Service{
		predictor: predictor,
		cache:     cache,
		formatter: format.New(),
		logger:    logger,
	}
}

// Generate produces the reply for one message. A gateway failure is
// normalized into a fallback prediction here, so the user always gets a
// reading; the reply is byte-identical for identical (text, now, prediction).
func (s *Service) Generate(ctx context.Context, userID int64, text string, now time.Time) string {
	pred, err := s.predictor.Predict(ctx, text)
	if err != nil {
		s.logger.Warn().Err(err).Msg("DataMind unavailable, falling back")
		pred = models.Fallback(text, "DataMind no disponible: "+err.Error())
	}

	sc := extract.Entities(text, pred)
	date := numerology.ForDate(now)
	gem := gematria.Summarize(sc)
	corr := correlate.Find(date, gem, pred)

	reply := s.formatter.Format(text, sc, date, gem, corr, pred)

	if s.cache != nil {
		if err := s.cache.Store(ctx, userID, reply); err != nil {
			s.logger.Debug().Err(err).Int64("user_id", userID).Msg("Last-result store failed")
		}
	}

	return reply
}

// LastReading returns the cached previous reply for the user, if any.
func (s *Service) LastReading(ctx context.Context, userID int64) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	text, ok, err := s.cache.Last(ctx, userID)
	if err != nil {
		s.logger.Debug().Err(err).Int64("user_id", userID).Msg("Last-result read failed")
		return "", false
	}
	return text, ok
}
