package sampler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jaskrrish/Go-Komenco/internal/komenco/quantum"
)

func TestSerializePartitionsOperations(t *testing.T) {
	c, err := quantum.NewCircuit(4)
	require.NoError(t, err)
	require.NoError(t, c.H(0))
	require.NoError(t, c.Measure(3))
	require.NoError(t, c.RZZ(0.5, 0, 1))
	require.NoError(t, c.Measure(1, 3))
	require.NoError(t, c.MCX(0, 1, 2))
	c.MeasureAll()

	req, err := Serialize(c, 5)
	require.NoError(t, err)

	assert.Equal(t, 4, req.NumQubits)
	assert.Equal(t, 5, req.TopK)
	assert.Equal(t, []int{3, 1, 3, 0, 1, 2, 3}, req.Measurements)
	assert.Equal(t, []WireOperation{
		{Gate: "h", Params: []float64{}, Qubits: []int{0}},
		{Gate: "rzz", Params: []float64{0.5}, Qubits: []int{0, 1}},
		{Gate: "mcx", Params: []float64{}, Qubits: []int{0, 1, 2}},
	}, req.Operations)
}

func TestSerializeEmptyMeasurementSet(t *testing.T) {
	c, err := quantum.NewCircuit(2)
	require.NoError(t, err)

	_, err = Serialize(c, 20)
	require.ErrorIs(t, err, quantum.ErrEmptyMeasurementSet)

	require.NoError(t, c.CX(0, 1))
	_, err = Serialize(c, 20)
	require.ErrorIs(t, err, quantum.ErrEmptyMeasurementSet)
}

func TestSerializeMeasurementOnlyCircuit(t *testing.T) {
	c, err := quantum.NewCircuit(1)
	require.NoError(t, err)
	c.MeasureAll()

	req, err := Serialize(c, 1)
	require.NoError(t, err)

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{"num_qubits":1,"operations":[],"measurements":[0],"topK":1}`, string(data))
}

func TestCounts(t *testing.T) {
	tests := []struct {
		name          string
		probabilities map[string]float64
		repetitions   int
		expected      map[string]int
	}{
		{"Even split", map[string]float64{"000": 0.5, "111": 0.5}, 1000, map[string]int{"000": 500, "111": 500}},
		{"Rounds down", map[string]float64{"0": 0.3333}, 1000, map[string]int{"0": 333}},
		{"Rounds up", map[string]float64{"0": 0.6667}, 1000, map[string]int{"0": 667}},
		{"Half rounds away from zero", map[string]float64{"01": 0.125, "10": 0.375}, 4, map[string]int{"01": 1, "10": 2}},
		{"Zero repetitions", map[string]float64{"1": 1}, 0, map[string]int{"1": 0}},
		{"No outcomes", map[string]float64{}, 100, map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Counts(tt.probabilities, tt.repetitions))
		})
	}
}

func TestSortedOutcomes(t *testing.T) {
	counts := map[string]int{"111": 3, "000": 5, "010": 1, "001": 0}
	assert.Equal(t, []string{"000", "001", "010", "111"}, SortedOutcomes(counts))
	assert.Empty(t, SortedOutcomes(nil))
}

func TestResponseError(t *testing.T) {
	var resp Response
	require.NoError(t, json.Unmarshal([]byte(`{"measurements": {"0": 1}}`), &resp))
	assert.False(t, resp.HasError())

	require.NoError(t, json.Unmarshal([]byte(`{"error": null, "measurements": {"0": 1}}`), &resp))
	assert.False(t, resp.HasError())

	resp = Response{}
	require.NoError(t, json.Unmarshal([]byte(`{"error": ""}`), &resp))
	assert.True(t, resp.HasError())
	assert.Equal(t, "", resp.ErrorMessage())
}

func TestDecodeResponse(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		hasError     bool
		message      string
		measurements map[string]float64
		wantErr      bool
	}{
		{"Measurements only", `{"measurements": {"01": 0.25, "10": 0.75}}`, false, "", map[string]float64{"01": 0.25, "10": 0.75}, false},
		{"Error with array measurements", `{"error": "bad circuit", "measurements": []}`, true, "bad circuit", nil, false},
		{"Error with string measurements", `{"error": "bad circuit", "measurements": "x"}`, true, "bad circuit", nil, false},
		{"Null error", `{"error": null, "measurements": {"0": 1}}`, false, "", map[string]float64{"0": 1}, false},
		{"No measurements", `{}`, false, "", nil, false},
		{"Bad measurements without error", `{"measurements": [1, 2]}`, false, "", nil, true},
		{"Not an object", `[1, 2]`, false, "", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := DecodeResponse([]byte(tt.body))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hasError, resp.HasError())
			if tt.hasError {
				assert.Equal(t, tt.message, resp.ErrorMessage())
			}
			assert.Equal(t, tt.measurements, resp.Measurements)
		})
	}
}
