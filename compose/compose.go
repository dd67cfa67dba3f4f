// Package compose lays out the per-logical-qubit register blocks of an
// encoded circuit and prepares the entangled logical state before encoding.
package compose

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/codes"
)

const (
	MinLogicalQubits = 2
	MaxLogicalQubits = 10
)

var ErrInvalidSize = errors.New("invalid number of logical qubits")

// CheckSize reports ErrInvalidSize unless n is a supported number of
// entangled logical qubits.
func CheckSize(n int) error {
	if n < MinLogicalQubits || n > MaxLogicalQubits {
		return errors.Wrapf(ErrInvalidSize, "%d not in [%d, %d]", n, MinLogicalQubits, MaxLogicalQubits)
	}
	return nil
}

// Unit holds the blocks owned by logical qubit Index. Code routines only
// ever receive the blocks of one unit.
type Unit struct {
	Index      int
	Logical    circuit.Qubit
	Stabilizer *circuit.Register
	Ancilla    *circuit.Register
	Output     *circuit.Register
	Syndrome   *circuit.Register
}

// Codeword is the unit's codeword in the code's local order.
func (u Unit) Codeword() []circuit.Qubit {
	return codes.Codeword(u.Logical, u.Stabilizer)
}

// AllocateUnits declares the blocks of n units on l. Registers are laid out
// as every ancilla block, every stabilizer block, every logical qubit, every
// output block and finally every syndrome register, so unit i's handles are
// disjoint from unit j's.
func AllocateUnits(l *circuit.Layout, n int, code codes.Code) ([]Unit, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidSize, "%d logical qubits", n)
	}
	units := make([]Unit, n)
	for i := range units {
		units[i].Index = i
		units[i].Ancilla = l.AddQuantum(fmt.Sprintf("ancilla_%d", i), code.AncillaSize())
	}
	for i := range units {
		units[i].Stabilizer = l.AddQuantum(fmt.Sprintf("stab_%d", i), code.StabilizerSize())
	}
	for i := range units {
		units[i].Logical = l.AddQuantum(fmt.Sprintf("log_qubit_%d", i), 1).Qubit(0)
	}
	for i := range units {
		units[i].Output = l.AddQuantum(fmt.Sprintf("output_%d", i), 1)
	}
	for i := range units {
		units[i].Syndrome = l.AddClassical(fmt.Sprintf("measured_errors_%d", i), code.SyndromeSize())
	}
	return units, nil
}

// PrepareLogicalState entangles the logical qubits into
// (|0...0> + |1...1>)/sqrt(2); for two qubits this is the Bell pair.
func PrepareLogicalState(c *circuit.Circuit, logical []circuit.Qubit) error {
	if err := CheckSize(len(logical)); err != nil {
		return err
	}
	c.H(logical[0])
	for _, q := range logical[1:] {
		c.CX(logical[0], q)
	}
	return nil
}

// Logical returns the logical qubit of every unit.
func Logical(units []Unit) []circuit.Qubit {
	res := make([]circuit.Qubit, len(units))
	for i, u := range units {
		res[i] = u.Logical
	}
	return res
}
