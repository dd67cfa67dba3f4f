// Package correction turns a syndrome table into classically conditioned
// Pauli corrections.
//
// One block is emitted per populated syndrome, guarded by the syndrome
// register being equal to that value. The guards test distinct values of
// the same register, so at most one block fires in any execution. A
// syndrome missing from the table (two or more errors) fires no block and
// the codeword is left as measured; that gap is accepted at this layer.
package correction

import (
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/codes"
	"github.com/squid2010/qecsynth/gates"
)

// Apply emits the conditional corrections of table in ascending syndrome
// order. word is the codeword in the code's local order; every correction
// target indexes into it.
func Apply(c *circuit.Circuit, table codes.SyndromeTable, syn *circuit.Register, word []circuit.Qubit) error {
	if syn.Kind != circuit.Classical {
		return errors.Wrapf(codes.ErrRegisterSizeMismatch, "syndrome register %s is not classical", syn.Name)
	}
	values := table.Values()
	for _, v := range values {
		if syn.Size < 64 && v>>uint(syn.Size) != 0 {
			return errors.Wrapf(codes.ErrRegisterSizeMismatch, "syndrome %d does not fit register %s[%d]", v, syn.Name, syn.Size)
		}
		for _, corr := range table[v] {
			if corr.Target < 0 || corr.Target >= len(word) {
				return errors.Wrapf(codes.ErrRegisterSizeMismatch, "correction %s outside a %d-qubit codeword", corr, len(word))
			}
		}
	}
	for _, v := range values {
		corrs := table[v]
		c.IfEqual(syn, v, func(c *circuit.Circuit) {
			for _, corr := range corrs {
				gates.Pauli(c, corr.Kind, word[corr.Target])
			}
		})
	}
	log := logger.Logger()
	log.Debug().
		Str("syndrome", syn.Name).
		Int("branches", len(values)).
		Msg("corrections emitted")
	return nil
}

// Lookup resolves a measured syndrome to the qubits and Paulis Apply would
// correct, for drivers inspecting results. ok is false for an unmapped value.
func Lookup(table codes.SyndromeTable, value uint64, word []circuit.Qubit) (qubits []circuit.Qubit, corrs []codes.Correction, ok bool) {
	corrs, ok = table.Lookup(value)
	if !ok {
		return nil, nil, false
	}
	for _, corr := range corrs {
		qubits = append(qubits, word[corr.Target])
	}
	return qubits, corrs, true
}
