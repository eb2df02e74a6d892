package komenco

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	models "github.com/jaskrrish/Go-Komenco/internal/models/komenco"
	"github.com/jaskrrish/Go-Komenco/internal/komenco/quantum"
	"github.com/jaskrrish/Go-Komenco/internal/komenco/sampler"
)

// JobManager builds circuits from requests, runs them on a sampler and keeps
// the outcomes in memory
type JobManager struct {
	jobs    map[uuid.UUID]*models.Job
	mutex   sync.RWMutex
	sampler sampler.Sampler
	logger  *zap.Logger
}

// NewJobManager creates a new job manager
func NewJobManager(s sampler.Sampler, logger *zap.Logger) *JobManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobManager{
		jobs:    make(map[uuid.UUID]*models.Job),
		sampler: s,
		logger:  logger,
	}
}

// BuildCircuit turns a request into a validated circuit using the generic
// builder, so every gate in the vocabulary is reachable
func BuildCircuit(req *models.RunRequest) (*quantum.Circuit, error) {
	circuit, err := quantum.NewCircuit(req.NumQubits)
	if err != nil {
		return nil, err
	}

	for i, op := range req.Operations {
		if op.Gate == quantum.MeasureGate {
			err = circuit.Measure(op.Qubits...)
		} else {
			err = circuit.Add(op.Gate, op.Params, op.Qubits...)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "operation %d", i)
		}
	}

	if req.MeasureAll {
		circuit.MeasureAll()
	}

	return circuit, nil
}

// Submit validates the request, runs the circuit and stores the job. Circuit
// errors are returned without storing anything; sampler failures are stored
// as failed jobs and returned alongside them.
func (jm *JobManager) Submit(ctx context.Context, req *models.RunRequest) (*models.Job, error) {
	p, err := prepare(req)
	if err != nil {
		return nil, err
	}

	job := jm.record(p)
	return jm.execute(ctx, job, p)
}

// SubmitBatch runs several circuits with at most parallelism in flight. Every
// circuit is checked before any is recorded, so one bad circuit rejects the
// whole batch. Jobs waiting for a slot stay pending. Sampler failures are
// recorded on the individual jobs.
func (jm *JobManager) SubmitBatch(ctx context.Context, batch *models.BatchRequest) ([]*models.Job, error) {
	if err := batch.Validate(); err != nil {
		return nil, err
	}

	prepared := make([]*preparedRun, len(batch.Circuits))
	for i, req := range batch.Circuits {
		p, err := prepare(req)
		if err != nil {
			return nil, errors.Wrapf(err, "circuit %d", i)
		}
		prepared[i] = p
	}

	pending := make([]*models.Job, len(prepared))
	for i, p := range prepared {
		pending[i] = jm.record(p)
	}

	jobs := make([]*models.Job, len(prepared))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batch.Parallelism)
	for i, p := range prepared {
		g.Go(func() error {
			// failures are kept on the job, the rest of the batch still runs
			jobs[i], _ = jm.execute(gctx, pending[i], p)
			return nil
		})
	}
	_ = g.Wait()

	jm.logger.Info("batch completed", zap.Int("circuits", len(jobs)))
	return jobs, nil
}

type preparedRun struct {
	req     *models.RunRequest
	circuit *quantum.Circuit
	gates   int
}

func prepare(req *models.RunRequest) (*preparedRun, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	circuit, err := BuildCircuit(req)
	if err != nil {
		return nil, err
	}

	// catch circuits without measurements before a job is recorded
	wire, err := sampler.Serialize(circuit, req.TopK)
	if err != nil {
		return nil, err
	}

	return &preparedRun{req: req, circuit: circuit, gates: len(wire.Operations)}, nil
}

// record stores a pending job for p
func (jm *JobManager) record(p *preparedRun) *models.Job {
	job := &models.Job{
		JobID:       uuid.New(),
		Status:      models.JobPending,
		Backend:     jm.sampler.Name(),
		NumQubits:   p.circuit.NumQubits(),
		Gates:       p.gates,
		Repetitions: p.req.Repetitions,
		TopK:        p.req.TopK,
		Fingerprint: p.circuit.Fingerprint(),
		CreatedAt:   time.Now(),
	}

	jm.mutex.Lock()
	jm.jobs[job.JobID] = job
	jm.mutex.Unlock()

	return job
}

// execute runs a recorded job on the sampler and stores its outcome
func (jm *JobManager) execute(ctx context.Context, job *models.Job, p *preparedRun) (*models.Job, error) {
	jm.mutex.Lock()
	job.Status = models.JobRunning
	jm.mutex.Unlock()

	started := time.Now()
	result, runErr := jm.sampler.RunResult(ctx, p.circuit, p.req.Repetitions, p.req.TopK)

	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	completed := time.Now()
	job.CompletedAt = &completed
	job.ElapsedMs = completed.Sub(started).Milliseconds()

	if runErr != nil {
		job.Status = models.JobFailed
		job.Message = runErr.Error()
		jm.logger.Warn("job failed", zap.Stringer("job_id", job.JobID), zap.Error(runErr))
		return copyJob(job), runErr
	}

	job.Status = models.JobCompleted
	job.Counts = result.Counts
	job.Probabilities = result.Probabilities
	job.ElapsedMs = result.TimeTaken.Milliseconds()

	jm.logger.Info("job completed",
		zap.Stringer("job_id", job.JobID),
		zap.String("fingerprint", job.Fingerprint),
		zap.Int("outcomes", len(job.Counts)),
	)

	return copyJob(job), nil
}

// GetJob retrieves a job by ID
func (jm *JobManager) GetJob(jobID uuid.UUID) (*models.Job, error) {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	job, exists := jm.jobs[jobID]
	if !exists {
		return nil, models.ErrJobNotFound
	}

	return copyJob(job), nil
}

// ListJobs returns every stored job, newest first
func (jm *JobManager) ListJobs() []*models.Job {
	jm.mutex.RLock()
	defer jm.mutex.RUnlock()

	jobs := make([]*models.Job, 0, len(jm.jobs))
	for _, job := range jm.jobs {
		jobs = append(jobs, copyJob(job))
	}

	sort.Slice(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})

	return jobs
}

// DeleteJob removes a stored job
func (jm *JobManager) DeleteJob(jobID uuid.UUID) error {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	if _, exists := jm.jobs[jobID]; !exists {
		return models.ErrJobNotFound
	}

	delete(jm.jobs, jobID)
	return nil
}

// CleanupCompletedJobs removes finished jobs older than maxAge
func (jm *JobManager) CleanupCompletedJobs(maxAge time.Duration) int {
	jm.mutex.Lock()
	defer jm.mutex.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, job := range jm.jobs {
		if job.CompletedAt != nil && job.CompletedAt.Before(cutoff) {
			delete(jm.jobs, id)
			removed++
		}
	}

	return removed
}

func copyJob(job *models.Job) *models.Job {
	cpy := *job
	if job.Counts != nil {
		cpy.Counts = make(map[string]int, len(job.Counts))
		for k, v := range job.Counts {
			cpy.Counts[k] = v
		}
	}
	if job.Probabilities != nil {
		cpy.Probabilities = make(map[string]float64, len(job.Probabilities))
		for k, v := range job.Probabilities {
			cpy.Probabilities[k] = v
		}
	}
	if job.CompletedAt != nil {
		completed := *job.CompletedAt
		cpy.CompletedAt = &completed
	}
	return &cpy
}
