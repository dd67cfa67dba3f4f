// Package gates expands multi-target controlled gates into pairwise gates
// and maps Pauli kinds onto the engine's gate set.
package gates

import (
	"fmt"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/pauli"
)

// Builder is the part of the circuit engine these expansions need.
type Builder interface {
	X(q circuit.Qubit)
	Y(q circuit.Qubit)
	Z(q circuit.Qubit)
	CX(control, target circuit.Qubit)
	CY(control, target circuit.Qubit)
	CZ(control, target circuit.Qubit)
}

// Pauli applies k to q; I emits nothing.
func Pauli(b Builder, k pauli.Kind, q circuit.Qubit) {
	switch k {
	case pauli.I:
	case pauli.X:
		b.X(q)
	case pauli.Y:
		b.Y(q)
	case pauli.Z:
		b.Z(q)
	default:
		panic(fmt.Sprintf("unknown pauli %d", k))
	}
}

// ControlledPauli applies k to target controlled on control; I emits nothing.
func ControlledPauli(b Builder, k pauli.Kind, control, target circuit.Qubit) {
	switch k {
	case pauli.I:
	case pauli.X:
		b.CX(control, target)
	case pauli.Y:
		b.CY(control, target)
	case pauli.Z:
		b.CZ(control, target)
	default:
		panic(fmt.Sprintf("unknown pauli %d", k))
	}
}

// Fanout applies the same controlled Pauli from control to every target, in order.
func Fanout(b Builder, k pauli.Kind, control circuit.Qubit, targets ...circuit.Qubit) {
	for _, t := range targets {
		ControlledPauli(b, k, control, t)
	}
}

func CXX(b Builder, c, q1, q2 circuit.Qubit) {
	Fanout(b, pauli.X, c, q1, q2)
}

func CXXX(b Builder, c, q1, q2, q3 circuit.Qubit) {
	Fanout(b, pauli.X, c, q1, q2, q3)
}

func CZZ(b Builder, c, q1, q2 circuit.Qubit) {
	Fanout(b, pauli.Z, c, q1, q2)
}

// ControlledString applies the Pauli string p controlled on control, with
// position i of p acting on targets[i].
func ControlledString(b Builder, p *pauli.String, control circuit.Qubit, targets []circuit.Qubit) {
	if p.Len() != len(targets) {
		panic(fmt.Sprintf("pauli string of length %d on %d targets", p.Len(), len(targets)))
	}
	for _, i := range p.Support() {
		ControlledPauli(b, p.At(i), control, targets[i])
	}
}
