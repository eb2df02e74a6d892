package quantum

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Fingerprint returns the hex SHA3-256 digest of the circuit's qubit count and
// operation sequence. Two circuits built by the same calls share a fingerprint.
func (c *Circuit) Fingerprint() string {
	h := sha3.New256()
	fmt.Fprintf(h, "qubits=%d;", c.numQubits)
	for _, op := range c.operations {
		fmt.Fprintf(h, "%s%v%v;", op.Gate, op.Qubits, op.Params)
	}
	return hex.EncodeToString(h.Sum(nil))
}
