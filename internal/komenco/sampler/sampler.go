package sampler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jaskrrish/Go-Komenco/internal/komenco/quantum"
)

// Sampler defines the interface for circuit execution backends
type Sampler interface {
	// Name returns the name of the backend
	Name() string

	// Run executes the circuit and returns outcome counts. It blocks for one
	// network round trip; callers decide whether to run several concurrently.
	Run(ctx context.Context, circuit *quantum.Circuit, repetitions, topK int) (map[string]int, error)

	// RunResult is Run with probabilities and run metadata
	RunResult(ctx context.Context, circuit *quantum.Circuit, repetitions, topK int) (*Result, error)
}

// Result is the outcome of one circuit run
type Result struct {
	JobID         uuid.UUID          `json:"job_id"`
	Backend       string             `json:"backend"`
	Shots         int                `json:"shots"`
	TopK          int                `json:"top_k"`
	Counts        map[string]int     `json:"counts"`
	Probabilities map[string]float64 `json:"probabilities"`
	Fingerprint   string             `json:"fingerprint"`
	TimeTaken     time.Duration      `json:"time_taken"`
}

var _ Sampler = (*Client)(nil)
