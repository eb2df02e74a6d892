package sampler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/jaskrrish/Go-Komenco/internal/komenco/quantum"
)

// Komenco API defaults
const (
	DefaultPort     = 80
	DefaultTimeout  = 60 * time.Second
	KomencoEndpoint = "/api/komenco"
)

// Config holds Komenco service connection settings
type Config struct {
	// Host of the Komenco service
	Host string

	// Port of the Komenco service, DefaultPort when zero
	Port int

	// BaseURL replaces http://{Host}:{Port} when set
	BaseURL string

	// HTTP client with timeout
	HTTPClient *http.Client

	Logger *zap.Logger
}

// Client submits circuits to a Komenco sampler. Each Run performs exactly one
// blocking POST; there are no retries and no shared per-call state, so
// concurrent Runs on independent circuits are safe.
type Client struct {
	config   *Config
	endpoint string
	logger   *zap.Logger
}

// NewClient creates a new Komenco API client
func NewClient(config *Config) (*Client, error) {
	if config.BaseURL == "" {
		if config.Host == "" {
			return nil, errors.New("komenco host is required")
		}
		if config.Port == 0 {
			config.Port = DefaultPort
		}
		config.BaseURL = fmt.Sprintf("http://%s:%d", config.Host, config.Port)
	}

	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{
			Timeout: DefaultTimeout,
		}
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		config:   config,
		endpoint: config.BaseURL + KomencoEndpoint,
		logger:   logger.With(zap.String("endpoint", config.BaseURL+KomencoEndpoint)),
	}, nil
}

// Name returns the name of the sampler backend
func (c *Client) Name() string {
	return "Komenco-" + c.config.BaseURL
}

// Endpoint returns the URL circuits are POSTed to
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Run executes the circuit and returns outcome counts over repetitions shots.
// topK is passed to the service as is.
func (c *Client) Run(ctx context.Context, circuit *quantum.Circuit, repetitions, topK int) (map[string]int, error) {
	result, err := c.RunResult(ctx, circuit, repetitions, topK)
	if err != nil {
		return nil, err
	}
	return result.Counts, nil
}

// RunResult executes the circuit and returns counts together with the raw
// probabilities and run metadata
func (c *Client) RunResult(ctx context.Context, circuit *quantum.Circuit, repetitions, topK int) (*Result, error) {
	start := time.Now()

	req, err := Serialize(circuit, topK)
	if err != nil {
		RunTotal.WithLabelValues(statusInvalid).Inc()
		return nil, err
	}

	c.logger.Info("executing quantum circuit",
		zap.Int("num_qubits", req.NumQubits),
		zap.Int("gates", len(req.Operations)),
		zap.Int("measurements", len(req.Measurements)),
		zap.Int("top_k", topK),
	)
	CircuitGates.Observe(float64(len(req.Operations)))

	resp, err := c.postRequest(ctx, req)

	elapsed := time.Since(start)
	RunDuration.Observe(elapsed.Seconds())

	if err != nil {
		status := statusTransport
		var remote *RemoteError
		if errors.As(err, &remote) {
			status = statusRemote
		} else if errors.Is(err, quantum.ErrInvalidOperation) {
			status = statusInvalid
		}
		RunTotal.WithLabelValues(status).Inc()

		c.logger.Warn("circuit execution failed",
			zap.Duration("elapsed", elapsed),
			zap.Error(err),
		)
		return nil, err
	}

	counts := Counts(resp.Measurements, repetitions)
	RunTotal.WithLabelValues(statusSuccess).Inc()
	OutcomesReturned.Observe(float64(len(counts)))

	c.logger.Info("circuit executed",
		zap.Duration("elapsed", elapsed),
		zap.Int("outcomes", len(counts)),
	)

	return &Result{
		JobID:         uuid.New(),
		Backend:       c.Name(),
		Shots:         repetitions,
		TopK:          topK,
		Counts:        counts,
		Probabilities: resp.Measurements,
		Fingerprint:   circuit.Fingerprint(),
		TimeTaken:     elapsed,
	}, nil
}

// postRequest performs the single HTTP exchange and classifies its outcome
func (c *Client) postRequest(ctx context.Context, req *Request) (*Response, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		// only non-finite angles make the request unencodable
		return nil, errors.Wrapf(quantum.ErrInvalidOperation, "encode circuit: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Op: "post", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", StatusCode: resp.StatusCode, Err: err}
	}

	result, err := DecodeResponse(body)
	if err != nil {
		return nil, &TransportError{
			Op:         "decode response",
			StatusCode: resp.StatusCode,
			Err:        errors.Wrapf(err, "body %q", truncate(body, 256)),
		}
	}

	// the error key wins over the status code
	if result.HasError() {
		return nil, &RemoteError{Message: result.ErrorMessage(), StatusCode: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Op:         "post",
			StatusCode: resp.StatusCode,
			Err:        errors.Errorf("unexpected status, body %q", truncate(body, 256)),
		}
	}

	if result.Measurements == nil {
		return nil, &TransportError{
			Op:         "decode response",
			StatusCode: resp.StatusCode,
			Err:        errors.New("response carries no measurements"),
		}
	}

	return result, nil
}

func truncate(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit]) + "..."
}
