package quantum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// QASMBuilder builds OpenQASM 2.0 text
type QASMBuilder struct {
	version      string
	includeStmt  string
	registers    []string
	gates        []string
	measurements []string
}

// NewQASMBuilder creates a new OpenQASM circuit builder
func NewQASMBuilder(numQubits int, numClassical int) *QASMBuilder {
	builder := &QASMBuilder{
		version:      "OPENQASM 2.0;",
		includeStmt:  "include \"qelib1.inc\";",
		registers:    make([]string, 0),
		gates:        make([]string, 0),
		measurements: make([]string, 0),
	}

	builder.registers = append(builder.registers, fmt.Sprintf("qreg q[%d];", numQubits))
	if numClassical > 0 {
		builder.registers = append(builder.registers, fmt.Sprintf("creg c[%d];", numClassical))
	}

	return builder
}

// AddGate adds a gate statement such as "cx q[0],q[1];"
func (b *QASMBuilder) AddGate(gate string) {
	b.gates = append(b.gates, gate)
}

// AddOperation renders op as a gate statement
func (b *QASMBuilder) AddOperation(op Operation) {
	var stmt strings.Builder
	stmt.WriteString(op.Gate)

	if len(op.Params) > 0 {
		params := make([]string, len(op.Params))
		for i, p := range op.Params {
			params[i] = strconv.FormatFloat(p, 'g', -1, 64)
		}
		stmt.WriteString("(" + strings.Join(params, ",") + ")")
	}

	qubits := make([]string, len(op.Qubits))
	for i, q := range op.Qubits {
		qubits[i] = fmt.Sprintf("q[%d]", q)
	}
	stmt.WriteString(" " + strings.Join(qubits, ",") + ";")

	b.AddGate(stmt.String())
}

// AddMeasurement adds a measurement operation
func (b *QASMBuilder) AddMeasurement(qubit int, classical int) {
	b.measurements = append(b.measurements,
		fmt.Sprintf("measure q[%d] -> c[%d];", qubit, classical))
}

// Build generates the complete QASM circuit string
func (b *QASMBuilder) Build() string {
	var circuit strings.Builder

	circuit.WriteString(b.version + "\n")
	circuit.WriteString(b.includeStmt + "\n")
	circuit.WriteString("\n")

	for _, reg := range b.registers {
		circuit.WriteString(reg + "\n")
	}
	circuit.WriteString("\n")

	for _, gate := range b.gates {
		circuit.WriteString(gate + "\n")
	}

	if len(b.measurements) > 0 {
		circuit.WriteString("\n")
		for _, meas := range b.measurements {
			circuit.WriteString(meas + "\n")
		}
	}

	return circuit.String()
}

// ToQASM exports the circuit as OpenQASM 2.0. Gates keep their Komenco names;
// measured qubits are read into consecutive classical bits in the order the
// sampler merges them.
func ToQASM(c *Circuit) string {
	measured := c.Measurements()
	builder := NewQASMBuilder(c.NumQubits(), len(measured))

	for _, op := range c.operations {
		if !op.IsMeasurement() {
			builder.AddOperation(op)
		}
	}

	for i, q := range measured {
		builder.AddMeasurement(q, i)
	}

	return builder.Build()
}

// BellPairCircuit creates the |Φ+⟩ = (|00⟩ + |11⟩)/√2 circuit with both qubits measured
func BellPairCircuit() *Circuit {
	c := MustNewCircuit(2)
	_ = c.H(0)
	_ = c.CX(0, 1)
	c.MeasureAll()
	return c
}

// GHZStateCircuit creates an n qubit GHZ state, |0...0⟩ + |1...1⟩, with all
// qubits measured
func GHZStateCircuit(numQubits int) (*Circuit, error) {
	if numQubits < 2 {
		return nil, errors.Wrapf(ErrInvalidOperation, "GHZ state requires at least 2 qubits, got %d", numQubits)
	}

	c := MustNewCircuit(numQubits)
	if err := c.H(0); err != nil {
		return nil, err
	}

	for i := 1; i < numQubits; i++ {
		if err := c.CX(0, i); err != nil {
			return nil, err
		}
	}

	c.MeasureAll()
	return c, nil
}
