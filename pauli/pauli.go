// Package pauli implements single-qubit Pauli kinds and n-qubit Pauli
// operators in the symplectic (X mask, Z mask) representation. Phases are
// not tracked; every operator is understood up to a global phase.
package pauli

import "fmt"

// Kind is one of the four single-qubit Pauli operators.
type Kind uint8

const (
	I Kind = iota
	X
	Y
	Z
)

// Kinds lists the non-identity kinds in the order error tables are built.
var Kinds = [3]Kind{X, Z, Y}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// HasX reports whether the kind flips the computational basis.
func (k Kind) HasX() bool {
	return k == X || k == Y
}

// HasZ reports whether the kind flips the phase.
func (k Kind) HasZ() bool {
	return k == Z || k == Y
}

// FromBits is the inverse of (HasX, HasZ).
func FromBits(x, z bool) Kind {
	switch {
	case x && z:
		return Y
	case x:
		return X
	case z:
		return Z
	}
	return I
}

// ParseKind accepts I, X, Y, Z in either case.
func ParseKind(r rune) (Kind, error) {
	switch r {
	case 'I', 'i':
		return I, nil
	case 'X', 'x':
		return X, nil
	case 'Y', 'y':
		return Y, nil
	case 'Z', 'z':
		return Z, nil
	}
	return I, fmt.Errorf("invalid pauli %q", r)
}

// Anticommutes reports whether two single-qubit Paulis anticommute.
func (k Kind) Anticommutes(o Kind) bool {
	return k != I && o != I && k != o
}
