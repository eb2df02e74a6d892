package quantum

// Named builder methods. Angles come first, then qubits; controls precede
// the target. Each method is a thin wrapper over Add.

// single qubit gates

func (c *Circuit) ID(qubit int) error {
	return c.Add("id", nil, qubit)
}

func (c *Circuit) X(qubit int) error {
	return c.Add("x", nil, qubit)
}

func (c *Circuit) Y(qubit int) error {
	return c.Add("y", nil, qubit)
}

func (c *Circuit) Z(qubit int) error {
	return c.Add("z", nil, qubit)
}

// H applies a Hadamard
func (c *Circuit) H(qubit int) error {
	return c.Add("h", nil, qubit)
}

func (c *Circuit) S(qubit int) error {
	return c.Add("s", nil, qubit)
}

func (c *Circuit) Sdg(qubit int) error {
	return c.Add("sdg", nil, qubit)
}

func (c *Circuit) T(qubit int) error {
	return c.Add("t", nil, qubit)
}

func (c *Circuit) Tdg(qubit int) error {
	return c.Add("tdg", nil, qubit)
}

func (c *Circuit) RX(theta float64, qubit int) error {
	return c.Add("rx", []float64{theta}, qubit)
}

func (c *Circuit) RY(theta float64, qubit int) error {
	return c.Add("ry", []float64{theta}, qubit)
}

func (c *Circuit) RZ(theta float64, qubit int) error {
	return c.Add("rz", []float64{theta}, qubit)
}

func (c *Circuit) U(theta, phi, lambda float64, qubit int) error {
	return c.Add("u", []float64{theta, phi, lambda}, qubit)
}

func (c *Circuit) U1(theta float64, qubit int) error {
	return c.Add("u1", []float64{theta}, qubit)
}

func (c *Circuit) U2(phi, lambda float64, qubit int) error {
	return c.Add("u2", []float64{phi, lambda}, qubit)
}

func (c *Circuit) U3(theta, phi, lambda float64, qubit int) error {
	return c.Add("u3", []float64{theta, phi, lambda}, qubit)
}

func (c *Circuit) SX(qubit int) error {
	return c.Add("sx", nil, qubit)
}

func (c *Circuit) SXdg(qubit int) error {
	return c.Add("sxdg", nil, qubit)
}

func (c *Circuit) R(theta, phi float64, qubit int) error {
	return c.Add("r", []float64{theta, phi}, qubit)
}

func (c *Circuit) P(theta float64, qubit int) error {
	return c.Add("p", []float64{theta}, qubit)
}

func (c *Circuit) SqrtX(qubit int) error {
	return c.Add("sqrt_x", nil, qubit)
}

func (c *Circuit) SqrtY(qubit int) error {
	return c.Add("sqrt_y", nil, qubit)
}

func (c *Circuit) SqrtZ(qubit int) error {
	return c.Add("sqrt_z", nil, qubit)
}

func (c *Circuit) GPI(phi float64, qubit int) error {
	return c.Add("gpi", []float64{phi}, qubit)
}

func (c *Circuit) GPI2(phi float64, qubit int) error {
	return c.Add("gpi2", []float64{phi}, qubit)
}

func (c *Circuit) XP(theta float64, qubit int) error {
	return c.Add("xp", []float64{theta}, qubit)
}

func (c *Circuit) YP(theta float64, qubit int) error {
	return c.Add("yp", []float64{theta}, qubit)
}

func (c *Circuit) ZP(theta float64, qubit int) error {
	return c.Add("zp", []float64{theta}, qubit)
}

func (c *Circuit) PhasedXP(theta, phi float64, qubit int) error {
	return c.Add("phased_xp", []float64{theta, phi}, qubit)
}

func (c *Circuit) PhasedYP(theta, phi float64, qubit int) error {
	return c.Add("phased_yp", []float64{theta, phi}, qubit)
}

func (c *Circuit) PhasedZP(theta, phi float64, qubit int) error {
	return c.Add("phased_zp", []float64{theta, phi}, qubit)
}

// two qubit gates

func (c *Circuit) CX(qubit1, qubit2 int) error {
	return c.Add("cx", nil, qubit1, qubit2)
}

func (c *Circuit) CY(qubit1, qubit2 int) error {
	return c.Add("cy", nil, qubit1, qubit2)
}

func (c *Circuit) CZ(qubit1, qubit2 int) error {
	return c.Add("cz", nil, qubit1, qubit2)
}

func (c *Circuit) CH(qubit1, qubit2 int) error {
	return c.Add("ch", nil, qubit1, qubit2)
}

func (c *Circuit) UCRX(theta float64, qubit1, qubit2 int) error {
	return c.Add("ucrx", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) UCRY(theta float64, qubit1, qubit2 int) error {
	return c.Add("ucry", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) UCRZ(theta float64, qubit1, qubit2 int) error {
	return c.Add("ucrz", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CRX(theta float64, qubit1, qubit2 int) error {
	return c.Add("crx", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CRY(theta float64, qubit1, qubit2 int) error {
	return c.Add("cry", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CRZ(theta float64, qubit1, qubit2 int) error {
	return c.Add("crz", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CR(theta, phi, lambda float64, qubit1, qubit2 int) error {
	return c.Add("cr", []float64{theta, phi, lambda}, qubit1, qubit2)
}

// CU applies a four parameter controlled-U. It is sent under the cu1 wire
// name, which is what the Komenco service has always received for it.
func (c *Circuit) CU(theta, phi, lambda, gamma float64, qubit1, qubit2 int) error {
	return c.Add("cu1", []float64{theta, phi, lambda, gamma}, qubit1, qubit2)
}

func (c *Circuit) CU1(theta float64, qubit1, qubit2 int) error {
	return c.Add("cu1", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CU2(phi, lambda float64, qubit1, qubit2 int) error {
	return c.Add("cu2", []float64{phi, lambda}, qubit1, qubit2)
}

func (c *Circuit) CU3(theta, phi, lambda float64, qubit1, qubit2 int) error {
	return c.Add("cu3", []float64{theta, phi, lambda}, qubit1, qubit2)
}

func (c *Circuit) DCX(qubit1, qubit2 int) error {
	return c.Add("dcx", nil, qubit1, qubit2)
}

func (c *Circuit) ECR(qubit1, qubit2 int) error {
	return c.Add("ecr", nil, qubit1, qubit2)
}

func (c *Circuit) ISwap(qubit1, qubit2 int) error {
	return c.Add("iswap", nil, qubit1, qubit2)
}

func (c *Circuit) RXX(theta float64, qubit1, qubit2 int) error {
	return c.Add("rxx", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) RYY(theta float64, qubit1, qubit2 int) error {
	return c.Add("ryy", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) RZZ(theta float64, qubit1, qubit2 int) error {
	return c.Add("rzz", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) RZX(theta float64, qubit1, qubit2 int) error {
	return c.Add("rzx", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) Swap(qubit1, qubit2 int) error {
	return c.Add("swap", nil, qubit1, qubit2)
}

func (c *Circuit) CSX(qubit1, qubit2 int) error {
	return c.Add("csx", nil, qubit1, qubit2)
}

func (c *Circuit) CP(theta float64, qubit1, qubit2 int) error {
	return c.Add("cp", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) XXP(theta float64, qubit1, qubit2 int) error {
	return c.Add("xxp", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) YYP(theta float64, qubit1, qubit2 int) error {
	return c.Add("yyp", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) ZZP(theta float64, qubit1, qubit2 int) error {
	return c.Add("zzp", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CNOTP(theta float64, qubit1, qubit2 int) error {
	return c.Add("cnotp", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CYP(theta float64, qubit1, qubit2 int) error {
	return c.Add("cyp", []float64{theta}, qubit1, qubit2)
}

func (c *Circuit) CZP(theta float64, qubit1, qubit2 int) error {
	return c.Add("czp", []float64{theta}, qubit1, qubit2)
}

// three qubit gates

func (c *Circuit) CSwap(qubit1, qubit2, qubit3 int) error {
	return c.Add("cswap", nil, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCX(qubit1, qubit2, qubit3 int) error {
	return c.Add("ccx", nil, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCY(qubit1, qubit2, qubit3 int) error {
	return c.Add("ccy", nil, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCZ(qubit1, qubit2, qubit3 int) error {
	return c.Add("ccz", nil, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCP(theta float64, qubit1, qubit2, qubit3 int) error {
	return c.Add("ccp", []float64{theta}, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCNOTP(theta float64, qubit1, qubit2, qubit3 int) error {
	return c.Add("ccnotp", []float64{theta}, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCYP(theta float64, qubit1, qubit2, qubit3 int) error {
	return c.Add("ccyp", []float64{theta}, qubit1, qubit2, qubit3)
}

func (c *Circuit) CCZP(theta float64, qubit1, qubit2, qubit3 int) error {
	return c.Add("cczp", []float64{theta}, qubit1, qubit2, qubit3)
}

// multi qubit gates

// C3X takes three controls followed by the target
func (c *Circuit) C3X(qubits ...int) error {
	return c.Add("c3x", nil, qubits...)
}

// C4X takes four controls followed by the target
func (c *Circuit) C4X(qubits ...int) error {
	return c.Add("c4x", nil, qubits...)
}

// MCX flips the last qubit when all preceding qubits are set
func (c *Circuit) MCX(qubits ...int) error {
	return c.Add("mcx", nil, qubits...)
}

func (c *Circuit) MCT(qubits ...int) error {
	return c.Add("mct", nil, qubits...)
}

func (c *Circuit) MCU1(theta float64, qubits ...int) error {
	return c.Add("mcu1", []float64{theta}, qubits...)
}

func (c *Circuit) MCU2(phi, lambda float64, qubits ...int) error {
	return c.Add("mcu2", []float64{phi, lambda}, qubits...)
}

func (c *Circuit) MCU3(theta, phi, lambda float64, qubits ...int) error {
	return c.Add("mcu3", []float64{theta, phi, lambda}, qubits...)
}

func (c *Circuit) MCZ(qubits ...int) error {
	return c.Add("mcz", nil, qubits...)
}

func (c *Circuit) MCP(qubits ...int) error {
	return c.Add("mcp", nil, qubits...)
}

func (c *Circuit) MCRX(qubits ...int) error {
	return c.Add("mcrx", nil, qubits...)
}

func (c *Circuit) MCRY(qubits ...int) error {
	return c.Add("mcry", nil, qubits...)
}

func (c *Circuit) MCRZ(qubits ...int) error {
	return c.Add("mcrz", nil, qubits...)
}

func (c *Circuit) QFT(qubits ...int) error {
	return c.Add("qft", nil, qubits...)
}

// InverseQFT is sent as iqft
func (c *Circuit) InverseQFT(qubits ...int) error {
	return c.Add("iqft", nil, qubits...)
}
