package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RunKind distinguishes the two analysis types a run can hold.
type RunKind string

const (
	RunValuation RunKind = "valuation"
	RunRisk      RunKind = "risk"
)

// SavedRun is a persisted analysis: the inputs that produced it and the
// full report, stored together so a load reproduces the page as it was.
type SavedRun struct {
	ID        string          `json:"id"`
	Kind      RunKind         `json:"kind"`
	Inputs    json.RawMessage `json:"inputs"`
	Report    json.RawMessage `json:"report"`
	CreatedAt time.Time       `json:"created_at"`
}

// RunRepo handles the storage of analysis runs.
//
// Schema assumption (managed outside this code):
//
//	CREATE TABLE IF NOT EXISTS analysis_runs (
//	  id TEXT PRIMARY KEY,
//	  kind TEXT NOT NULL,
//	  payload JSONB NOT NULL,
//	  created_at TIMESTAMPTZ NOT NULL
//	);
type RunRepo struct{}

// NewRunRepo creates a new repository instance.
func NewRunRepo() *RunRepo {
	return &RunRepo{}
}

// Save persists a run under a fresh id and returns that id. Inputs and
// report go into a single JSONB blob and are only ever read back whole.
func (r *RunRepo) Save(ctx context.Context, kind RunKind, inputs, report interface{}) (string, error) {
	pool := GetPool()
	if pool == nil {
		return "", fmt.Errorf("database pool not initialized")
	}

	payload := struct {
		Inputs interface{} `json:"inputs"`
		Report interface{} `json:"report"`
	}{Inputs: inputs, Report: report}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal run payload: %w", err)
	}

	id := uuid.New().String()
	query := `
		INSERT INTO analysis_runs (id, kind, payload, created_at)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := pool.Exec(ctx, query, id, string(kind), jsonData, time.Now()); err != nil {
		return "", fmt.Errorf("failed to save run: %w", err)
	}

	return id, nil
}

// Load retrieves a saved run by id.
func (r *RunRepo) Load(ctx context.Context, id string) (*SavedRun, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT kind, payload, created_at FROM analysis_runs WHERE id = $1`

	var kind string
	var jsonData []byte
	var createdAt time.Time
	err := pool.QueryRow(ctx, query, id).Scan(&kind, &jsonData, &createdAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, fmt.Errorf("no run found for id %s", id)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}

	var payload struct {
		Inputs json.RawMessage `json:"inputs"`
		Report json.RawMessage `json:"report"`
	}
	if err := json.Unmarshal(jsonData, &payload); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run payload: %w", err)
	}

	return &SavedRun{
		ID:        id,
		Kind:      RunKind(kind),
		Inputs:    payload.Inputs,
		Report:    payload.Report,
		CreatedAt: createdAt,
	}, nil
}
