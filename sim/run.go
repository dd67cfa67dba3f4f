package sim

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/squid2010/qecsynth/circuit"
)

// Outcome records one executed measurement.
type Outcome struct {
	Qubit       int
	Clbit       int
	Value       int
	Probability float64
}

type Result struct {
	Clbits []uint8
	// measurements in execution order, resets excluded
	Outcomes []Outcome
	// number of conditional blocks whose guard held
	NbTaken int
	State   *State
}

// RegisterValue reads a classical register as an integer, bit 0 least significant.
func (r *Result) RegisterValue(reg *circuit.Register) uint64 {
	return registerValue(r.Clbits, reg)
}

// Bitstring renders a classical register most significant bit first.
func (r *Result) Bitstring(reg *circuit.Register) string {
	var sb strings.Builder
	for i := reg.Size - 1; i >= 0; i-- {
		sb.WriteByte('0' + r.Clbits[reg.Offset+i])
	}
	return sb.String()
}

func registerValue(clbits []uint8, reg *circuit.Register) uint64 {
	var v uint64
	for i := 0; i < reg.Size && i < 64; i++ {
		v |= uint64(clbits[reg.Offset+i]) << uint(i)
	}
	return v
}

// Run executes c once from |0...0>.
func Run(c *circuit.Circuit, rng *rand.Rand) (*Result, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := NewState(c.NbQubits)
	if err != nil {
		return nil, err
	}
	r := &Result{
		Clbits: make([]uint8, c.NbClbits),
		State:  s,
	}
	for _, insn := range c.Instructions {
		switch insn.Type {
		case circuit.IGate:
			s.ApplyGate(insn.Gate, insn.Qubits...)
		case circuit.IReset:
			for _, q := range insn.Qubits {
				s.Reset(q, rng)
			}
		case circuit.IMeasure:
			v, p := s.Measure(insn.Qubits[0], rng)
			r.Clbits[insn.Clbits[0]] = uint8(v)
			r.Outcomes = append(r.Outcomes, Outcome{
				Qubit:       insn.Qubits[0],
				Clbit:       insn.Clbits[0],
				Value:       v,
				Probability: p,
			})
		case circuit.IBarrier:
		case circuit.IIfEqual:
			if registerValue(r.Clbits, c.Registers[insn.Register]) != insn.Value {
				continue
			}
			r.NbTaken++
			for _, b := range insn.Body {
				s.ApplyGate(b.Gate, b.Qubits...)
			}
		default:
			return nil, fmt.Errorf("unknown instruction type %d", insn.Type)
		}
	}
	return r, nil
}

// Sample runs shots executions of c on up to workers goroutines and counts
// the bitstrings of reg. Shot i uses seed+i, so counts are reproducible.
func Sample(ctx context.Context, c *circuit.Circuit, reg *circuit.Register, shots int, seed int64, workers int) (map[string]int, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("shots must be positive, got %d", shots)
	}
	if reg.Kind != circuit.Classical {
		return nil, fmt.Errorf("register %s is not classical", reg.Name)
	}
	results := make([]string, shots)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < shots; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Run(c, rand.New(rand.NewSource(seed+int64(i))))
			if err != nil {
				return fmt.Errorf("shot %d: %w", i, err)
			}
			results[i] = r.Bitstring(reg)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, b := range results {
		counts[b]++
	}
	return counts, nil
}
