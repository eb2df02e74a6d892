package quantum

import (
	"errors"
	"fmt"
	"testing"
)

// TestNewCircuit tests qubit count validation
func TestNewCircuit(t *testing.T) {
	tests := []struct {
		name        string
		numQubits   int
		shouldError bool
	}{
		{"One qubit", 1, false},
		{"Three qubits", 3, false},
		{"Large register", 4096, false},
		{"Zero qubits", 0, true},
		{"Negative qubits", -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCircuit(tt.numQubits)

			if tt.shouldError {
				if !errors.Is(err, ErrInvalidOperation) {
					t.Errorf("expected ErrInvalidOperation, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.NumQubits() != tt.numQubits {
				t.Errorf("expected %d qubits, got %d", tt.numQubits, c.NumQubits())
			}
			if c.Len() != 0 {
				t.Errorf("new circuit should be empty, has %d operations", c.Len())
			}
		})
	}
}

// TestAddFixedArity checks every fixed arity gate against short, exact and long qubit lists
func TestAddFixedArity(t *testing.T) {
	for _, spec := range Gates() {
		if spec.Variable {
			continue
		}

		t.Run(spec.Name, func(t *testing.T) {
			for n := 0; n <= spec.Arity+1; n++ {
				c := MustNewCircuit(8)
				qubits := make([]int, n)
				params := make([]float64, spec.Params)
				for i := range qubits {
					qubits[i] = i
				}
				for i := range params {
					params[i] = float64(i) + 0.5
				}

				err := c.Add(spec.Name, params, qubits...)

				if n != spec.Arity {
					if !errors.Is(err, ErrInvalidOperation) {
						t.Errorf("%d qubits: expected ErrInvalidOperation, got %v", n, err)
					}
					if c.Len() != 0 {
						t.Errorf("%d qubits: failed add must not append", n)
					}
					continue
				}

				if err != nil {
					t.Fatalf("%d qubits: unexpected error: %v", n, err)
				}

				ops := c.Operations()
				if len(ops) != 1 {
					t.Fatalf("expected exactly 1 operation, got %d", len(ops))
				}
				if ops[0].Gate != spec.Name {
					t.Errorf("expected gate %s, got %s", spec.Name, ops[0].Gate)
				}
				if fmt.Sprint(ops[0].Qubits) != fmt.Sprint(qubits) {
					t.Errorf("expected qubits %v, got %v", qubits, ops[0].Qubits)
				}
				if fmt.Sprint(ops[0].Params) != fmt.Sprint(params) {
					t.Errorf("expected params %v, got %v", params, ops[0].Params)
				}
			}
		})
	}
}

// TestAddVariableArity tests the multi-control and QFT families
func TestAddVariableArity(t *testing.T) {
	tests := []struct {
		name        string
		gate        string
		qubits      []int
		shouldError bool
	}{
		{"mcx with one control", "mcx", []int{0, 1}, false},
		{"mcx with four controls", "mcx", []int{0, 1, 2, 3, 4}, false},
		{"mcx target only", "mcx", []int{0}, true},
		{"mcz empty", "mcz", []int{}, true},
		{"qft single qubit", "qft", []int{2}, false},
		{"iqft whole register", "iqft", []int{0, 1, 2, 3, 4, 5}, false},
		{"qft empty", "qft", nil, true},
		{"mcu3 two qubits", "mcu3", []int{1, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNewCircuit(6)
			err := c.Add(tt.gate, nil, tt.qubits...)

			if tt.shouldError {
				if !errors.Is(err, ErrInvalidOperation) {
					t.Errorf("expected ErrInvalidOperation, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Len() != 1 {
				t.Errorf("expected 1 operation, got %d", c.Len())
			}
		})
	}
}

// TestQubitOutOfRange tests bounds checking is all-or-nothing
func TestQubitOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		add  func(c *Circuit) error
	}{
		{"Negative single", func(c *Circuit) error { return c.X(-1) }},
		{"Equal to qubit count", func(c *Circuit) error { return c.H(3) }},
		{"Second qubit of cx", func(c *Circuit) error { return c.CX(0, 7) }},
		{"Third qubit of ccx", func(c *Circuit) error { return c.CCX(0, 1, 3) }},
		{"Rotation", func(c *Circuit) error { return c.RZ(1.0, 5) }},
		{"Multi control", func(c *Circuit) error { return c.MCX(0, 1, 2, 3) }},
		{"Measure", func(c *Circuit) error { return c.Measure(0, 3) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MustNewCircuit(3)
			if err := c.H(0); err != nil {
				t.Fatalf("setup failed: %v", err)
			}

			err := tt.add(c)
			if !errors.Is(err, ErrInvalidOperation) {
				t.Errorf("expected ErrInvalidOperation, got %v", err)
			}
			if c.Len() != 1 {
				t.Errorf("failed add must not append, circuit has %d operations", c.Len())
			}
		})
	}
}

// TestUnknownGate tests names outside the vocabulary are rejected
func TestUnknownGate(t *testing.T) {
	c := MustNewCircuit(2)

	for _, gate := range []string{"", "H", "cnot", "toffoli", "barrier"} {
		if err := c.Add(gate, nil, 0); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("gate %q: expected ErrInvalidOperation, got %v", gate, err)
		}
	}
}

// TestNamedMethods tests the convenience wrappers record their arguments in order
func TestNamedMethods(t *testing.T) {
	c := MustNewCircuit(5)

	steps := []error{
		c.U(0.1, 0.2, 0.3, 4),
		c.CRX(1.5, 2, 1),
		c.CU(1, 2, 3, 4, 0, 1),
		c.CCP(0.25, 3, 2, 1),
		c.C3X(0, 1, 2, 3),
		c.MCU2(0.5, 0.75, 4, 3, 2),
		c.InverseQFT(0, 1, 2),
		c.PhasedXP(0.1, 0.2, 0),
		c.SqrtX(1),
	}
	for i, err := range steps {
		if err != nil {
			t.Fatalf("step %d failed: %v", i, err)
		}
	}

	expected := []Operation{
		{Gate: "u", Qubits: []int{4}, Params: []float64{0.1, 0.2, 0.3}},
		{Gate: "crx", Qubits: []int{2, 1}, Params: []float64{1.5}},
		{Gate: "cu1", Qubits: []int{0, 1}, Params: []float64{1, 2, 3, 4}},
		{Gate: "ccp", Qubits: []int{3, 2, 1}, Params: []float64{0.25}},
		{Gate: "c3x", Qubits: []int{0, 1, 2, 3}, Params: []float64{}},
		{Gate: "mcu2", Qubits: []int{4, 3, 2}, Params: []float64{0.5, 0.75}},
		{Gate: "iqft", Qubits: []int{0, 1, 2}, Params: []float64{}},
		{Gate: "phased_xp", Qubits: []int{0}, Params: []float64{0.1, 0.2}},
		{Gate: "sqrt_x", Qubits: []int{1}, Params: []float64{}},
	}

	ops := c.Operations()
	if len(ops) != len(expected) {
		t.Fatalf("expected %d operations, got %d", len(expected), len(ops))
	}
	for i := range expected {
		if fmt.Sprintf("%v", ops[i]) != fmt.Sprintf("%v", expected[i]) {
			t.Errorf("operation %d: expected %v, got %v", i, expected[i], ops[i])
		}
	}
}

// TestC3XArity tests c3x requires exactly three controls and a target
func TestC3XArity(t *testing.T) {
	c := MustNewCircuit(6)

	if err := c.C3X(0, 1, 2); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("c3x with 3 qubits: expected ErrInvalidOperation, got %v", err)
	}
	if err := c.C4X(0, 1, 2, 3); !errors.Is(err, ErrInvalidOperation) {
		t.Errorf("c4x with 4 qubits: expected ErrInvalidOperation, got %v", err)
	}
	if err := c.C4X(0, 1, 2, 3, 4); err != nil {
		t.Errorf("c4x with 5 qubits: unexpected error %v", err)
	}
}

// TestMeasure tests explicit measurements
func TestMeasure(t *testing.T) {
	t.Run("Empty measurement", func(t *testing.T) {
		c := MustNewCircuit(2)
		if err := c.Measure(); !errors.Is(err, ErrInvalidOperation) {
			t.Errorf("expected ErrInvalidOperation, got %v", err)
		}
		if c.Len() != 0 {
			t.Error("failed measure must not append")
		}
	})

	t.Run("Interleaved measurements merge in append order", func(t *testing.T) {
		c := MustNewCircuit(3)
		_ = c.H(0)
		_ = c.Measure(2, 0)
		_ = c.CX(0, 1)
		_ = c.Measure(0)

		measured := c.Measurements()
		if fmt.Sprint(measured) != fmt.Sprint([]int{2, 0, 0}) {
			t.Errorf("expected [2 0 0], got %v", measured)
		}
	})
}

// TestMeasureAll tests a single measure over the whole register is appended
func TestMeasureAll(t *testing.T) {
	for _, n := range []int{1, 3, 10} {
		t.Run(fmt.Sprintf("%d qubits", n), func(t *testing.T) {
			c := MustNewCircuit(n)
			c.MeasureAll()

			ops := c.Operations()
			if len(ops) != 1 {
				t.Fatalf("expected 1 operation, got %d", len(ops))
			}
			if ops[0].Gate != MeasureGate {
				t.Errorf("expected measure, got %s", ops[0].Gate)
			}
			if len(ops[0].Params) != 0 {
				t.Errorf("measure should carry no params, got %v", ops[0].Params)
			}
			for i, q := range ops[0].Qubits {
				if q != i {
					t.Errorf("qubit %d: expected %d, got %d", i, i, q)
				}
			}
			if len(ops[0].Qubits) != n {
				t.Errorf("expected %d qubits, got %d", n, len(ops[0].Qubits))
			}
		})
	}
}

// TestOperationsAreCopies tests callers cannot mutate recorded operations
func TestOperationsAreCopies(t *testing.T) {
	c := MustNewCircuit(2)
	qubits := []int{0, 1}
	params := []float64{0.5}
	if err := c.Add("cp", params, qubits...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qubits[0] = 1
	params[0] = 9

	ops := c.Operations()
	ops[0].Qubits[1] = 0

	again := c.Operations()
	if again[0].Qubits[0] != 0 || again[0].Qubits[1] != 1 {
		t.Errorf("recorded qubits changed: %v", again[0].Qubits)
	}
	if again[0].Params[0] != 0.5 {
		t.Errorf("recorded params changed: %v", again[0].Params)
	}
}

// TestFingerprint tests identical build sequences hash identically
func TestFingerprint(t *testing.T) {
	build := func(theta float64) *Circuit {
		c := MustNewCircuit(3)
		_ = c.H(0)
		_ = c.RX(theta, 1)
		c.MeasureAll()
		return c
	}

	a, b, other := build(0.5), build(0.5), build(0.25)

	if a.Fingerprint() != b.Fingerprint() {
		t.Error("identical circuits should share a fingerprint")
	}
	if a.Fingerprint() == other.Fingerprint() {
		t.Error("different angles should change the fingerprint")
	}
	if len(a.Fingerprint()) != 64 {
		t.Errorf("expected 64 hex characters, got %d", len(a.Fingerprint()))
	}
}

func BenchmarkAdd(b *testing.B) {
	c := MustNewCircuit(16)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.CX(i%16, (i+1)%16)
	}
}
