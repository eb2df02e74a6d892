package quantum

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// MinRandomCircuitQubits is the smallest candidate pool RandomCircuit accepts,
// enough for the three qubit gates in RandomGateSet
const MinRandomCircuitQubits = 3

// NewRand returns a seeded source for RandomCircuit
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// RandomCircuit appends numberOfOperations gates drawn uniformly from
// RandomGateSet, acting on qubits picked from candidates. Rotation gates get a
// single angle in [0, 2π). A nil rng uses a time seeded source. Either every
// operation is appended or none is.
func (c *Circuit) RandomCircuit(rng *rand.Rand, numberOfOperations int, candidates []int) error {
	if len(candidates) < MinRandomCircuitQubits {
		return errors.Wrapf(ErrInvalidOperation,
			"the number of qubits needed to generate random circuits is >= %d, got %d",
			MinRandomCircuitQubits, len(candidates))
	}

	if numberOfOperations < 0 {
		return errors.Wrapf(ErrInvalidOperation, "number of operations cannot be negative, got %d", numberOfOperations)
	}

	if err := c.checkQubits(candidates); err != nil {
		return err
	}

	if rng == nil {
		rng = NewRand(time.Now().UnixNano())
	}

	pool := append([]int(nil), candidates...)
	generated := make([]Operation, 0, numberOfOperations)

	for i := 0; i < numberOfOperations; i++ {
		gate := RandomGateSet[rng.Intn(len(RandomGateSet))]
		spec, _ := LookupGate(gate)

		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})

		var params []float64
		if IsRotation(gate) {
			params = []float64{rng.Float64() * 2 * math.Pi}
		}

		generated = append(generated, newOperation(gate, pool[:spec.Arity], params))
	}

	c.operations = append(c.operations, generated...)
	return nil
}
