// Package keepalive pings the service's own public URL on a ticker so
// free-tier hosts do not put the webhook to sleep between matches.
package keepalive

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	platformhttp "github.com/Alias1177/NumerIA/internal/platform/http"
)

// Pinger issues periodic GETs against URL until the context is cancelled.
type Pinger struct {
	URL      string
	Interval time.Duration

	client *platformhttp.Client
	logger zerolog.Logger
}

// New creates a Pinger. A zero interval defaults to 10 minutes.
func New(url string, interval time.Duration) *Pinger {
	if interval == 0 {
		interval = 10 * time.Minute
	}
	return &Pinger{
		URL:      url,
		Interval: interval,
		client: platformhttp.NewClient(platformhttp.ClientOptions{
			Timeout:         20 * time.Second,
			MaxRetryTimeout: 20 * time.Second,
		}),
		logger: log.With().Str("component", "keepalive").Logger(),
	}
}

// Run blocks until ctx is done. Failed pings are logged and the ticker keeps
// going; losing a ping only risks a host nap, never a reading.
func (p *Pinger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.Interval)
	defer ticker.Stop()

	p.logger.Info().Str("url", p.URL).Dur("interval", p.Interval).Msg("Keep-alive pinger running")

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *Pinger) ping(ctx context.Context) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.URL, nil)
	if err != nil {
		p.logger.Error().Err(err).Msg("Building keep-alive request")
		return
	}

	resp, err := p.client.DoRequest(ctx, req)
	if err != nil {
		p.logger.Warn().Err(err).Msg("Keep-alive ping failed")
		return
	}
	resp.Body.Close()

	p.logger.Debug().Int("status", resp.StatusCode).Msg("Keep-alive ping ok")
}
