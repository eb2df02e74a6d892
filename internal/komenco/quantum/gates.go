package quantum

import (
	"fmt"
	"sort"
)

// GateSpec describes one entry of the gate vocabulary shared with the
// Komenco service
type GateSpec struct {
	// Name is the lowercase wire identifier
	Name string `json:"name"`
	// Arity is the exact qubit count, or the minimum when Variable is set
	Arity int `json:"arity"`
	// Variable marks multi-control and QFT families that take any number of
	// qubits from Arity upwards
	Variable bool `json:"variable"`
	// Params is the number of angle parameters the named builder method takes
	Params int `json:"params"`
}

// Accepts reports whether n qubits is a legal count for the gate
func (g GateSpec) Accepts(n int) bool {
	if g.Variable {
		return n >= g.Arity
	}
	return n == g.Arity
}

// ArityString renders the qubit requirement for error messages
func (g GateSpec) ArityString() string {
	if g.Variable {
		return fmt.Sprintf("at least %d", g.Arity)
	}
	return fmt.Sprintf("%d", g.Arity)
}

func fixed(name string, arity, params int) GateSpec {
	return GateSpec{Name: name, Arity: arity, Params: params}
}

func variable(name string, minArity, params int) GateSpec {
	return GateSpec{Name: name, Arity: minArity, Variable: true, Params: params}
}

var gateCatalog = indexGates(
	// single qubit
	fixed("id", 1, 0),
	fixed("x", 1, 0),
	fixed("y", 1, 0),
	fixed("z", 1, 0),
	fixed("h", 1, 0),
	fixed("s", 1, 0),
	fixed("sdg", 1, 0),
	fixed("t", 1, 0),
	fixed("tdg", 1, 0),
	fixed("rx", 1, 1),
	fixed("ry", 1, 1),
	fixed("rz", 1, 1),
	fixed("u", 1, 3),
	fixed("u1", 1, 1),
	fixed("u2", 1, 2),
	fixed("u3", 1, 3),
	fixed("sx", 1, 0),
	fixed("sxdg", 1, 0),
	fixed("r", 1, 2),
	fixed("p", 1, 1),
	fixed("sqrt_x", 1, 0),
	fixed("sqrt_y", 1, 0),
	fixed("sqrt_z", 1, 0),
	fixed("gpi", 1, 1),
	fixed("gpi2", 1, 1),
	fixed("xp", 1, 1),
	fixed("yp", 1, 1),
	fixed("zp", 1, 1),
	fixed("phased_xp", 1, 2),
	fixed("phased_yp", 1, 2),
	fixed("phased_zp", 1, 2),

	// two qubit
	fixed("cx", 2, 0),
	fixed("cy", 2, 0),
	fixed("cz", 2, 0),
	fixed("ch", 2, 0),
	fixed("ucrx", 2, 1),
	fixed("ucry", 2, 1),
	fixed("ucrz", 2, 1),
	fixed("crx", 2, 1),
	fixed("cry", 2, 1),
	fixed("crz", 2, 1),
	fixed("cr", 2, 3),
	fixed("cu1", 2, 1),
	fixed("cu2", 2, 2),
	fixed("cu3", 2, 3),
	fixed("dcx", 2, 0),
	fixed("ecr", 2, 0),
	fixed("iswap", 2, 0),
	fixed("rxx", 2, 1),
	fixed("ryy", 2, 1),
	fixed("rzz", 2, 1),
	fixed("rzx", 2, 1),
	fixed("swap", 2, 0),
	fixed("csx", 2, 0),
	fixed("cp", 2, 1),
	fixed("xxp", 2, 1),
	fixed("yyp", 2, 1),
	fixed("zzp", 2, 1),
	fixed("cnotp", 2, 1),
	fixed("cyp", 2, 1),
	fixed("czp", 2, 1),

	// three qubit
	fixed("cswap", 3, 0),
	fixed("ccx", 3, 0),
	fixed("ccy", 3, 0),
	fixed("ccz", 3, 0),
	fixed("ccp", 3, 1),
	fixed("ccnotp", 3, 1),
	fixed("ccyp", 3, 1),
	fixed("cczp", 3, 1),

	// multi qubit
	fixed("c3x", 4, 0),
	fixed("c4x", 5, 0),
	variable("mcx", 2, 0),
	variable("mct", 2, 0),
	variable("mcu1", 2, 1),
	variable("mcu2", 2, 2),
	variable("mcu3", 2, 3),
	variable("mcz", 2, 0),
	variable("mcp", 2, 0),
	variable("mcrx", 2, 0),
	variable("mcry", 2, 0),
	variable("mcrz", 2, 0),
	variable("qft", 1, 0),
	variable("iqft", 1, 0),

	variable(MeasureGate, 1, 0),
)

func indexGates(specs ...GateSpec) map[string]GateSpec {
	catalog := make(map[string]GateSpec, len(specs))
	for _, spec := range specs {
		if _, dup := catalog[spec.Name]; dup {
			panic("duplicate gate in catalog: " + spec.Name)
		}
		catalog[spec.Name] = spec
	}
	return catalog
}

// LookupGate returns the catalog entry for name
func LookupGate(name string) (GateSpec, bool) {
	spec, ok := gateCatalog[name]
	return spec, ok
}

// Gates returns the whole vocabulary sorted by name
func Gates() []GateSpec {
	specs := make([]GateSpec, 0, len(gateCatalog))
	for _, spec := range gateCatalog {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Name < specs[j].Name
	})
	return specs
}

// RandomGateSet is the fixed subset random circuits draw from. The order is
// stable so a seeded source reproduces the same circuit.
var RandomGateSet = []string{
	"x", "y", "z", "rx", "ry", "rz", "h", "s", "sdg", "t", "tdg", "sx", "sxdg",
	"cx", "cy", "cz", "crx", "cry", "crz", "ch", "dcx", "ecr", "iswap", "swap", "csx",
	"cswap", "ccx",
}

var rotationGates = map[string]bool{
	"rx": true, "ry": true, "rz": true,
	"crx": true, "cry": true, "crz": true,
}

// IsRotation reports whether random generation draws an angle for gate
func IsRotation(gate string) bool {
	return rotationGates[gate]
}
