// Package sim executes circuits on a sparse state vector. Stabilizer
// circuits keep only a small number of basis states populated, so a map
// from basis index to amplitude handles codewords spread over dozens of
// qubits.
package sim

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand"

	"github.com/squid2010/qecsynth/circuit"
)

// MaxQubits is the widest circuit a State can hold, one bit of the basis index per qubit.
const MaxQubits = 64

// amplitudes below this magnitude are dropped after every gate
const epsilon = 1e-10

type matrix [2][2]complex128

var (
	matH = matrix{{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)}, {complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)}}
	matS = matrix{{1, 0}, {0, 1i}}
	matX = matrix{{0, 1}, {1, 0}}
	matY = matrix{{0, -1i}, {1i, 0}}
	matZ = matrix{{1, 0}, {0, -1}}
)

// State is a normalized pure state over n qubits; qubit i is bit i of the basis index.
type State struct {
	n    int
	amps map[uint64]complex128
}

// NewState returns |0...0> on n qubits.
func NewState(n int) (*State, error) {
	if n <= 0 || n > MaxQubits {
		return nil, fmt.Errorf("cannot simulate %d qubits, limit is %d", n, MaxQubits)
	}
	return &State{
		n:    n,
		amps: map[uint64]complex128{0: 1},
	}, nil
}

func (s *State) NbQubits() int {
	return s.n
}

// Len is the number of populated basis states.
func (s *State) Len() int {
	return len(s.amps)
}

func (s *State) Amplitude(basis uint64) complex128 {
	return s.amps[basis]
}

func (s *State) bit(q int) uint64 {
	if q < 0 || q >= s.n {
		panic(fmt.Sprintf("qubit %d out of range for %d-qubit state", q, s.n))
	}
	return uint64(1) << uint(q)
}

// apply multiplies by m on target wherever every control bit is set.
func (s *State) apply(target int, m matrix, controls uint64) {
	bit := s.bit(target)
	out := make(map[uint64]complex128, len(s.amps))
	for k, v := range s.amps {
		if k&controls != controls {
			out[k] += v
			continue
		}
		b := 0
		if k&bit != 0 {
			b = 1
		}
		k0 := k &^ bit
		if a := m[0][b]; a != 0 {
			out[k0] += a * v
		}
		if a := m[1][b]; a != 0 {
			out[k0|bit] += a * v
		}
	}
	for k, v := range out {
		if cmplx.Abs(v) < epsilon {
			delete(out, k)
		}
	}
	s.amps = out
}

// ApplyGate applies g to qubits given controls first.
func (s *State) ApplyGate(g circuit.GateKind, qubits ...int) {
	if len(qubits) != g.Arity() {
		panic(fmt.Sprintf("gate %s takes %d qubits, got %d", g, g.Arity(), len(qubits)))
	}
	switch g {
	case circuit.GateH:
		s.apply(qubits[0], matH, 0)
	case circuit.GateS:
		s.apply(qubits[0], matS, 0)
	case circuit.GateX:
		s.apply(qubits[0], matX, 0)
	case circuit.GateY:
		s.apply(qubits[0], matY, 0)
	case circuit.GateZ:
		s.apply(qubits[0], matZ, 0)
	case circuit.GateCX:
		s.apply(qubits[1], matX, s.bit(qubits[0]))
	case circuit.GateCY:
		s.apply(qubits[1], matY, s.bit(qubits[0]))
	case circuit.GateCZ:
		s.apply(qubits[1], matZ, s.bit(qubits[0]))
	case circuit.GateCCX:
		s.apply(qubits[2], matX, s.bit(qubits[0])|s.bit(qubits[1]))
	default:
		panic(fmt.Sprintf("unknown gate %d", g))
	}
}

// Probability returns the probability of measuring 1 on q.
func (s *State) Probability(q int) float64 {
	bit := s.bit(q)
	p := 0.0
	for k, v := range s.amps {
		if k&bit != 0 {
			p += real(v)*real(v) + imag(v)*imag(v)
		}
	}
	return p
}

// Measure collapses q and returns the outcome with its prior probability.
func (s *State) Measure(q int, rng *rand.Rand) (int, float64) {
	p1 := s.Probability(q)
	outcome, p := 0, 1-p1
	if rng.Float64() < p1 {
		outcome, p = 1, p1
	}
	s.collapse(q, outcome, p)
	return outcome, p
}

func (s *State) collapse(q int, outcome int, p float64) {
	bit := s.bit(q)
	norm := complex(1/math.Sqrt(p), 0)
	out := make(map[uint64]complex128, len(s.amps))
	for k, v := range s.amps {
		if (k&bit != 0) == (outcome == 1) {
			out[k] = v * norm
		}
	}
	s.amps = out
}

// Reset measures q and flips it back to |0> when needed.
func (s *State) Reset(q int, rng *rand.Rand) {
	if outcome, _ := s.Measure(q, rng); outcome == 1 {
		s.apply(q, matX, 0)
	}
}

// Reduced returns the single-qubit density matrix of q.
func (s *State) Reduced(q int) [2][2]complex128 {
	bit := s.bit(q)
	var rho [2][2]complex128
	for k, v := range s.amps {
		a := 0
		if k&bit != 0 {
			a = 1
		}
		for b := 0; b < 2; b++ {
			k2 := k &^ bit
			if b == 1 {
				k2 |= bit
			}
			if v2, ok := s.amps[k2]; ok {
				rho[a][b] += v * cmplx.Conj(v2)
			}
		}
	}
	return rho
}

// Fidelity returns <psi|rho|psi> for a normalized single-qubit psi.
func Fidelity(rho [2][2]complex128, psi [2]complex128) float64 {
	var f complex128
	for a := 0; a < 2; a++ {
		for b := 0; b < 2; b++ {
			f += cmplx.Conj(psi[a]) * rho[a][b] * psi[b]
		}
	}
	return real(f)
}

func (s *State) Norm() float64 {
	n := 0.0
	for _, v := range s.amps {
		n += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(n)
}
