package datamind

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		// Every field-name variant must carry the text.
		assert.Equal(t, "Liverpool vs City", body["input"])
		assert.Equal(t, "Liverpool vs City", body["query"])
		assert.Equal(t, "Liverpool vs City", body["text"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"prediction": "Over 2.5",
			"confidence": 0.82,
			"market": "goals",
			"extra": {"sport": "football"},
			"debug_field_we_never_heard_of": true
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), "Liverpool vs City")
	require.NoError(t, err)

	assert.Equal(t, "Over 2.5", result.Prediction)
	assert.InDelta(t, 0.82, result.Confidence, 1e-9)
	assert.Equal(t, "goals", result.Market)
	assert.Equal(t, "football", result.Sport())
}

func TestPredictNormalizesMissingFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), "hola")
	require.NoError(t, err)

	assert.Equal(t, "Base para: hola", result.Prediction)
	assert.InDelta(t, 0.5, result.Confidence, 1e-9)
	assert.NotNil(t, result.Extra)
}

func TestPredictErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not a json object`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewClient(srv.URL, 5*time.Second)
			_, err := client.Predict(context.Background(), "hola")
			assert.Error(t, err)
		})
	}
}

func TestPredictTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, 50*time.Millisecond)
	_, err := client.Predict(context.Background(), "hola")
	assert.Error(t, err)
}

func TestPredictNotConfigured(t *testing.T) {
	client := NewClient("", 5*time.Second)
	_, err := client.Predict(context.Background(), "hola")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
