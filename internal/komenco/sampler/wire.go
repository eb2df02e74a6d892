package sampler

import (
	"bytes"
	"encoding/json"
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/jaskrrish/Go-Komenco/internal/komenco/quantum"
)

// WireOperation is a non-measurement gate as sent to the service
type WireOperation struct {
	Gate   string    `json:"gate"`
	Params []float64 `json:"params"`
	Qubits []int     `json:"qubits"`
}

// Request is the body POSTed to /api/komenco
type Request struct {
	NumQubits    int             `json:"num_qubits"`
	Operations   []WireOperation `json:"operations"`
	Measurements []int           `json:"measurements"`
	TopK         int             `json:"topK"`
}

// Response is the body returned by the service. Error is kept raw so its
// presence can be detected whatever its JSON type.
type Response struct {
	Measurements map[string]float64 `json:"measurements"`
	Error        json.RawMessage    `json:"error,omitempty"`
}

// DecodeResponse parses a reply body. The "error" key is read before
// "measurements" is decoded, so an error reply is recognised whatever shape
// its measurements take.
func DecodeResponse(body []byte) (*Response, error) {
	var raw struct {
		Measurements json.RawMessage `json:"measurements"`
		Error        json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	resp := &Response{Error: raw.Error}
	if resp.HasError() || isAbsent(raw.Measurements) {
		return resp, nil
	}

	if err := json.Unmarshal(raw.Measurements, &resp.Measurements); err != nil {
		return nil, errors.Wrap(err, "decode measurements")
	}
	return resp, nil
}

func isAbsent(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(raw, []byte("null"))
}

// HasError reports whether the response carries an "error" key
func (r *Response) HasError() bool {
	return !isAbsent(r.Error)
}

// ErrorMessage returns the "error" value, unquoted when it is a JSON string
func (r *Response) ErrorMessage() string {
	var msg string
	if err := json.Unmarshal(r.Error, &msg); err == nil {
		return msg
	}
	return string(r.Error)
}

// Serialize splits the circuit into gate operations, in circuit order, and the
// merged list of measured qubits. It fails with quantum.ErrEmptyMeasurementSet
// when nothing is measured. Serialize only reads the circuit.
func Serialize(circuit *quantum.Circuit, topK int) (*Request, error) {
	req := &Request{
		NumQubits:    circuit.NumQubits(),
		Operations:   make([]WireOperation, 0),
		Measurements: make([]int, 0),
		TopK:         topK,
	}

	for _, op := range circuit.Operations() {
		if op.IsMeasurement() {
			req.Measurements = append(req.Measurements, op.Qubits...)
			continue
		}

		req.Operations = append(req.Operations, WireOperation{
			Gate:   op.Gate,
			Params: op.Params,
			Qubits: op.Qubits,
		})
	}

	if len(req.Measurements) == 0 {
		return nil, quantum.ErrEmptyMeasurementSet
	}

	return req, nil
}

// Counts converts outcome probabilities into counts over repetitions shots,
// rounding to the nearest integer with ties away from zero
func Counts(probabilities map[string]float64, repetitions int) map[string]int {
	counts := make(map[string]int, len(probabilities))
	for outcome, p := range probabilities {
		counts[outcome] = int(math.Round(p * float64(repetitions)))
	}
	return counts
}

// SortedOutcomes returns the outcome bitstrings in lexicographic order
func SortedOutcomes(counts map[string]int) []string {
	outcomes := make([]string, 0, len(counts))
	for outcome := range counts {
		outcomes = append(outcomes, outcome)
	}
	sort.Strings(outcomes)
	return outcomes
}
