package quantum

import (
	"github.com/pkg/errors"
)

// MeasureGate is the gate name used for readout operations
const MeasureGate = "measure"

var (
	// ErrInvalidOperation is returned when a gate application cannot be
	// recorded: unknown gate, wrong qubit count or qubit index out of range
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrEmptyMeasurementSet is returned when a circuit without any measure
	// operation is prepared for execution
	ErrEmptyMeasurementSet = errors.New("there are no measurements done in the circuit")
)

// Operation is one gate application: the gate name, the qubits it acts on
// (order matters, controls come first) and its angle parameters
type Operation struct {
	Gate   string    `json:"gate"`
	Qubits []int     `json:"qubits"`
	Params []float64 `json:"params"`
}

func newOperation(gate string, qubits []int, params []float64) Operation {
	return Operation{
		Gate:   gate,
		Qubits: append(make([]int, 0, len(qubits)), qubits...),
		Params: append(make([]float64, 0, len(params)), params...),
	}
}

// clone returns a deep copy so callers can never alias circuit storage
func (op Operation) clone() Operation {
	return newOperation(op.Gate, op.Qubits, op.Params)
}

// IsMeasurement reports whether the operation is a readout
func (op Operation) IsMeasurement() bool {
	return op.Gate == MeasureGate
}

// Circuit is an append-only sequence of operations over a fixed number of qubits.
// A Circuit is not safe for concurrent mutation; it must not be modified while
// a sampler is reading it.
type Circuit struct {
	numQubits  int
	operations []Operation
}

// NewCircuit creates an empty circuit over numQubits qubits
func NewCircuit(numQubits int) (*Circuit, error) {
	if numQubits <= 0 {
		return nil, errors.Wrapf(ErrInvalidOperation, "number of qubits must be positive, got %d", numQubits)
	}

	return &Circuit{
		numQubits:  numQubits,
		operations: make([]Operation, 0),
	}, nil
}

// MustNewCircuit is like NewCircuit but panics on an invalid qubit count
func MustNewCircuit(numQubits int) *Circuit {
	c, err := NewCircuit(numQubits)
	if err != nil {
		panic(err)
	}
	return c
}

// NumQubits returns the number of qubits the circuit was created with
func (c *Circuit) NumQubits() int {
	return c.numQubits
}

// Len returns the number of recorded operations, measurements included
func (c *Circuit) Len() int {
	return len(c.operations)
}

// Operations returns a copy of the recorded operations in circuit order
func (c *Circuit) Operations() []Operation {
	ops := make([]Operation, len(c.operations))
	for i, op := range c.operations {
		ops[i] = op.clone()
	}
	return ops
}

// Measurements returns every measured qubit index in append order.
// Duplicates are kept as given.
func (c *Circuit) Measurements() []int {
	measured := make([]int, 0)
	for _, op := range c.operations {
		if op.IsMeasurement() {
			measured = append(measured, op.Qubits...)
		}
	}
	return measured
}

// Add validates and appends one application of gate. Parameters are recorded
// as given; only the qubit count and the qubit indices are checked.
func (c *Circuit) Add(gate string, params []float64, qubits ...int) error {
	spec, ok := LookupGate(gate)
	if !ok {
		return errors.Wrapf(ErrInvalidOperation, "unknown gate %q", gate)
	}

	if !spec.Accepts(len(qubits)) {
		return errors.Wrapf(ErrInvalidOperation, "wrong arity for gate %s: got %d qubits, want %s",
			gate, len(qubits), spec.ArityString())
	}

	if err := c.checkQubits(qubits); err != nil {
		return err
	}

	c.operations = append(c.operations, newOperation(gate, qubits, params))
	return nil
}

// Measure marks the given qubits for readout
func (c *Circuit) Measure(qubits ...int) error {
	if len(qubits) == 0 {
		return errors.Wrap(ErrInvalidOperation, "number of qubits to measure cannot be zero")
	}
	return c.Add(MeasureGate, nil, qubits...)
}

// MeasureAll marks every qubit of the circuit for readout
func (c *Circuit) MeasureAll() {
	qubits := make([]int, c.numQubits)
	for i := range qubits {
		qubits[i] = i
	}
	c.operations = append(c.operations, newOperation(MeasureGate, qubits, nil))
}

func (c *Circuit) checkQubits(qubits []int) error {
	for _, q := range qubits {
		if q < 0 || q >= c.numQubits {
			return errors.Wrapf(ErrInvalidOperation, "qubit out of range: %d (circuit has %d qubits)", q, c.numQubits)
		}
	}
	return nil
}
