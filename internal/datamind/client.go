// Package datamind talks to the DataMind prediction backend. One bounded
// attempt per request: a failed call reports an error and the pipeline falls
// back, it is never retried.
package datamind

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/Alias1177/NumerIA/models"
)

// ErrNotConfigured is returned when no gateway URL was configured.
var ErrNotConfigured = errors.New("DATAMIND_URL no configurada")

// Client calls the /predict endpoint with a bounded timeout and a local
// rate limit.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	url        string
	logger     zerolog.Logger
}

// NewClient creates a gateway client. A zero timeout defaults to 15s.
func NewClient(url string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second), 5), // 5 requests per second
		url:     url,
		logger:  log.With().Str("component", "datamind_client").Logger(),
	}
}

// predictRequest carries the user text under every field name the gateway
// has answered to across deployments.
type predictRequest struct {
	Input string `json:"input"`
	Query string `json:"query"`
	Text  string `json:"text"`
}

// predictResponse is the tolerant wire shape: unknown fields are ignored,
// known ones may be missing.
type predictResponse struct {
	Prediction string         `json:"prediction"`
	Confidence *float64       `json:"confidence"`
	Market     string         `json:"market"`
	Extra      map[string]any `json:"extra"`
}

// Predict posts the user text and normalizes whatever comes back into a
// PredictionResult. Any transport or decode problem is returned as an error
// for the caller to convert into a fallback result.
func (c *Client) Predict(ctx context.Context, text string) (models.PredictionResult, error) {
	if c.url == "" {
		return models.PredictionResult{}, ErrNotConfigured
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return models.PredictionResult{}, fmt.Errorf("rate limiter error: %w", err)
	}

	body, err := json.Marshal(predictRequest{Input: text, Query: text, Text: text})
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("url", c.url).Msg("Calling DataMind")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error().Int("status", resp.StatusCode).Msg("DataMind status != 2xx")
		return models.PredictionResult{}, fmt.Errorf("estado HTTP DataMind: %d", resp.StatusCode)
	}

	var wire predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		c.logger.Error().Err(err).Msg("Error parsing DataMind JSON")
		return models.PredictionResult{}, fmt.Errorf("respuesta DataMind inválida: %w", err)
	}

	return normalize(text, wire), nil
}

// normalize fills the required logical fields: missing prediction falls back
// to a text echo, nil confidence to 0.5, nil extra to an empty map.
func normalize(text string, wire predictResponse) models.PredictionResult {
	result := models.PredictionResult{
		Prediction: wire.Prediction,
		Confidence: 0.5,
		Market:     wire.Market,
		Extra:      wire.Extra,
	}
	if result.Prediction == "" {
		result.Prediction = "Base para: " + text
	}
	if wire.Confidence != nil {
		result.Confidence = *wire.Confidence
	}
	if result.Extra == nil {
		result.Extra = map[string]any{}
	}
	return result
}
