package models

import "context"

// Predictor is the injected capability for the DataMind gateway, the only
// fallible collaborator in the pipeline. A failed Predict is normalized into
// a Fallback result by the caller, never surfaced to the user.
type Predictor interface {
	Predict(ctx context.Context, text string) (PredictionResult, error)
}

// ResultCache keeps the last reply per user, best-effort. Implementations may
// lose entries at any time; concurrent writers under one key race harmlessly.
type ResultCache interface {
	Store(ctx context.Context, userID int64, text string) error
	Last(ctx context.Context, userID int64) (string, bool, error)
}
