package komenco

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the current state of a circuit job
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Defaults applied to run requests, matching the client libraries' run(circuit, 1000, 20)
const (
	DefaultRepetitions = 1000
	DefaultTopK        = 20
	MaxRepetitions     = 1_000_000

	DefaultParallelism = 4
	MaxBatchSize       = 64
)

// OperationRequest is one gate application in a submitted circuit. Measurements
// use the "measure" gate.
type OperationRequest struct {
	Gate   string    `json:"gate"`
	Params []float64 `json:"params,omitempty"`
	Qubits []int     `json:"qubits"`
}

// RunRequest represents a request to build and run a circuit
type RunRequest struct {
	NumQubits   int                `json:"num_qubits"`
	Operations  []OperationRequest `json:"operations"`
	MeasureAll  bool               `json:"measure_all,omitempty"`
	Repetitions int                `json:"repetitions,omitempty"`
	TopK        int                `json:"topK,omitempty"`
}

// Job represents one circuit submission and its outcome
type Job struct {
	JobID         uuid.UUID          `json:"job_id"`
	Status        JobStatus          `json:"status"`
	Backend       string             `json:"backend"`
	NumQubits     int                `json:"num_qubits"`
	Gates         int                `json:"gates"`
	Repetitions   int                `json:"repetitions"`
	TopK          int                `json:"topK"`
	Fingerprint   string             `json:"fingerprint"`
	Counts        map[string]int     `json:"counts,omitempty"`
	Probabilities map[string]float64 `json:"probabilities,omitempty"`
	Message       string             `json:"message,omitempty"`
	ElapsedMs     int64              `json:"elapsed_ms"`
	CreatedAt     time.Time          `json:"created_at"`
	CompletedAt   *time.Time         `json:"completed_at,omitempty"`
}

// JobResponse represents the response when submitting or querying a job
type JobResponse struct {
	Job   *Job   `json:"job,omitempty"`
	Error string `json:"error,omitempty"`
}

// JobListResponse lists stored jobs, newest first
type JobListResponse struct {
	Jobs []*Job `json:"jobs"`
}

// BatchRequest submits several circuits that run concurrently
type BatchRequest struct {
	Circuits    []*RunRequest `json:"circuits"`
	Parallelism int           `json:"parallelism,omitempty"`
}

// BatchResponse holds one job per submitted circuit, in request order
type BatchResponse struct {
	Jobs []*Job `json:"jobs"`
}

// QASMResponse carries an OpenQASM export of a submitted circuit
type QASMResponse struct {
	Fingerprint string `json:"fingerprint"`
	QASM        string `json:"qasm"`
}

// Validate validates a run request and fills in defaults
func (r *RunRequest) Validate() error {
	if r.NumQubits <= 0 {
		return ErrInvalidNumQubits
	}

	if len(r.Operations) == 0 && !r.MeasureAll {
		return ErrEmptyCircuit
	}

	if r.Repetitions == 0 {
		r.Repetitions = DefaultRepetitions
	}

	if r.Repetitions < 0 || r.Repetitions > MaxRepetitions {
		return ErrInvalidRepetitions
	}

	if r.TopK == 0 {
		r.TopK = DefaultTopK
	}

	if r.TopK < 0 {
		return ErrInvalidTopK
	}

	return nil
}

// Validate checks the batch shape; each circuit is validated on submit
func (b *BatchRequest) Validate() error {
	if len(b.Circuits) == 0 || len(b.Circuits) > MaxBatchSize {
		return ErrInvalidBatchSize
	}

	if b.Parallelism == 0 {
		b.Parallelism = DefaultParallelism
	}

	if b.Parallelism < 0 {
		return ErrInvalidParallelism
	}

	for _, c := range b.Circuits {
		if c == nil {
			return ErrEmptyCircuit
		}
	}

	return nil
}

// Custom errors
type KomencoError struct {
	Message string
}

func (e *KomencoError) Error() string {
	return e.Message
}

var (
	ErrInvalidNumQubits   = &KomencoError{"num_qubits must be positive"}
	ErrEmptyCircuit       = &KomencoError{"circuit has no operations"}
	ErrInvalidRepetitions = &KomencoError{"repetitions must be between 1 and 1000000"}
	ErrInvalidTopK        = &KomencoError{"topK cannot be negative"}
	ErrInvalidBatchSize   = &KomencoError{"batch must hold between 1 and 64 circuits"}
	ErrInvalidParallelism = &KomencoError{"parallelism cannot be negative"}
	ErrJobNotFound        = &KomencoError{"job not found"}
)
