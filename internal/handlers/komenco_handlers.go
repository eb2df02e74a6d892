package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/jaskrrish/Go-Komenco/internal/komenco"
	models "github.com/jaskrrish/Go-Komenco/internal/models/komenco"
	"github.com/jaskrrish/Go-Komenco/internal/komenco/quantum"
	"github.com/jaskrrish/Go-Komenco/internal/komenco/sampler"
)

// KomencoHandler manages circuit-related HTTP requests
type KomencoHandler struct {
	jobs        *komenco.JobManager
	backend     string
	repetitions int
	topK        int
	qasm        *lru.Cache[string, string]
	logger      *zap.Logger
}

const qasmCacheSize = 256

// HandlerOptions holds the run defaults applied to requests that omit them
type HandlerOptions struct {
	Repetitions int
	TopK        int
	Logger      *zap.Logger
}

// NewKomencoHandler creates a new handler running circuits on s
func NewKomencoHandler(s sampler.Sampler, opts HandlerOptions) *KomencoHandler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	// size is a positive constant, New cannot fail
	qasm, _ := lru.New[string, string](qasmCacheSize)

	return &KomencoHandler{
		jobs:        komenco.NewJobManager(s, logger),
		backend:     s.Name(),
		repetitions: opts.Repetitions,
		topK:        opts.TopK,
		qasm:        qasm,
		logger:      logger,
	}
}

// Jobs exposes the underlying job manager
func (h *KomencoHandler) Jobs() *komenco.JobManager {
	return h.jobs
}

// RunCircuitHandler handles POST /api/v1/circuits/run
func (h *KomencoHandler) RunCircuitHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Repetitions == 0 {
		req.Repetitions = h.repetitions
	}
	if req.TopK == 0 {
		req.TopK = h.topK
	}

	job, err := h.jobs.Submit(r.Context(), &req)
	if err != nil {
		status := statusFor(err)
		if job != nil {
			respondWithJSON(w, status, models.JobResponse{Job: job, Error: err.Error()})
			return
		}
		respondWithError(w, status, err.Error())
		return
	}

	respondWithJSON(w, http.StatusCreated, models.JobResponse{Job: job})
}

// RunBatchHandler handles POST /api/v1/circuits/batch
func (h *KomencoHandler) RunBatchHandler(w http.ResponseWriter, r *http.Request) {
	var req models.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	for _, c := range req.Circuits {
		if c == nil {
			continue
		}
		if c.Repetitions == 0 {
			c.Repetitions = h.repetitions
		}
		if c.TopK == 0 {
			c.TopK = h.topK
		}
	}

	jobs, err := h.jobs.SubmitBatch(r.Context(), &req)
	if err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, models.BatchResponse{Jobs: jobs})
}

// QASMHandler handles POST /api/v1/circuits/qasm
// Builds the circuit and returns its OpenQASM text without running it
func (h *KomencoHandler) QASMHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}

	circuit, err := komenco.BuildCircuit(&req)
	if err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}

	fingerprint := circuit.Fingerprint()
	text, ok := h.qasm.Get(fingerprint)
	if !ok {
		text = quantum.ToQASM(circuit)
		h.qasm.Add(fingerprint, text)
	}

	respondWithJSON(w, http.StatusOK, models.QASMResponse{
		Fingerprint: fingerprint,
		QASM:        text,
	})
}

// GatesHandler handles GET /api/v1/gates
func (h *KomencoHandler) GatesHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"gates": quantum.Gates(),
	})
}

// ListJobsHandler handles GET /api/v1/jobs
func (h *KomencoHandler) ListJobsHandler(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, models.JobListResponse{Jobs: h.jobs.ListJobs()})
}

// GetJobHandler handles GET /api/v1/jobs/{id}
func (h *KomencoHandler) GetJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	job, err := h.jobs.GetJob(jobID)
	if err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, models.JobResponse{Job: job})
}

// DeleteJobHandler handles DELETE /api/v1/jobs/{id}
func (h *KomencoHandler) DeleteJobHandler(w http.ResponseWriter, r *http.Request) {
	jobID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid job ID")
		return
	}

	if err := h.jobs.DeleteJob(jobID); err != nil {
		respondWithError(w, statusFor(err), err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Job deleted",
		"job_id":  jobID.String(),
	})
}

// HealthCheckHandler handles GET /api/v1/komenco/health
func (h *KomencoHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":  "healthy",
		"service": "Komenco circuit gateway",
		"backend": h.backend,
		"version": "1.0.0",
	}

	respondWithJSON(w, http.StatusOK, health)
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	var remote *sampler.RemoteError
	var transport *sampler.TransportError
	var modelErr *models.KomencoError

	switch {
	case errors.Is(err, models.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, quantum.ErrInvalidOperation),
		errors.Is(err, quantum.ErrEmptyMeasurementSet),
		errors.As(err, &modelErr):
		return http.StatusBadRequest
	case errors.As(err, &remote):
		return http.StatusBadGateway
	case errors.As(err, &transport) && transport.StatusCode != 0:
		// the sampler answered, but not with anything usable
		return http.StatusBadGateway
	case errors.Is(err, sampler.ErrTransport):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
