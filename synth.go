// Package qecsynth synthesizes circuits that prepare a logical state, encode
// every logical qubit with a stabilizer code, run one round of syndrome
// extraction and correction, decode, and measure.
package qecsynth

import (
	"fmt"

	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/codes"
	"github.com/squid2010/qecsynth/compose"
	"github.com/squid2010/qecsynth/correction"
)

// ResultRegister is the name of the shared classical register the decoded
// outputs are measured into.
const ResultRegister = "measured_output"

type Result struct {
	// Code is nil for ShapeUnencodedGHZ
	Code  codes.Code
	Shape Shape
	// Circuit is validated
	Circuit *circuit.Circuit
	Units   []compose.Unit
	// Output has one bit per unit, bit i holding unit i's decoded output.
	// For ShapeOneQubit bit 0 holds the logical qubit and bit 1 the output.
	Output *circuit.Register
}

// Synthesize builds the circuit of shape protected by code. n is only read
// for the GHZ shapes, and code is ignored for ShapeUnencodedGHZ.
func Synthesize(code codes.Code, shape Shape, n int) (*Result, error) {
	switch shape {
	case ShapeOneQubit:
		return OneQubit(code)
	case ShapeBell:
		return BellState(code)
	case ShapeGHZ:
		return GHZState(code, n)
	case ShapeUnencodedGHZ:
		c, out, err := UnencodedGHZState(n)
		if err != nil {
			return nil, err
		}
		return &Result{Shape: shape, Circuit: c, Output: out}, nil
	}
	return nil, errors.Wrapf(ErrUnknownShape, "%d", int(shape))
}

// OneQubit round-trips a single |0> logical qubit through the code.
func OneQubit(code codes.Code) (*Result, error) {
	return synthesize(code, ShapeOneQubit, 1)
}

func BellState(code codes.Code) (*Result, error) {
	return synthesize(code, ShapeBell, 2)
}

func GHZState(code codes.Code, n int) (*Result, error) {
	if err := compose.CheckSize(n); err != nil {
		return nil, err
	}
	return synthesize(code, ShapeGHZ, n)
}

func synthesize(code codes.Code, shape Shape, n int) (*Result, error) {
	l := circuit.NewLayout(fmt.Sprintf("%s_%s_%d", code.Name(), shape, n))
	units, err := compose.AllocateUnits(l, n, code)
	if err != nil {
		return nil, err
	}
	outBits := n
	if shape == ShapeOneQubit {
		outBits = 2
	}
	out := l.AddClassical(ResultRegister, outBits)
	c := l.Build()

	for _, u := range units {
		c.Reset(u.Ancilla.Qubits()...)
		c.Reset(u.Stabilizer.Qubits()...)
		c.Reset(u.Output.Qubit(0))
	}
	c.Barrier()
	if shape != ShapeOneQubit {
		if err := compose.PrepareLogicalState(c, compose.Logical(units)); err != nil {
			return nil, err
		}
	}
	c.Barrier()

	for _, u := range units {
		if err := code.Encode(c, u.Logical, u.Stabilizer); err != nil {
			return nil, errors.Wrapf(err, "unit %d", u.Index)
		}
	}
	for _, u := range units {
		if err := code.MeasureSyndrome(c, u.Logical, u.Stabilizer, u.Ancilla, u.Syndrome); err != nil {
			return nil, errors.Wrapf(err, "unit %d", u.Index)
		}
		if err := correction.Apply(c, code.SyndromeTable(), u.Syndrome, u.Codeword()); err != nil {
			return nil, errors.Wrapf(err, "unit %d", u.Index)
		}
	}
	for _, u := range units {
		if err := code.Decode(c, u.Logical, u.Stabilizer, u.Output.Qubit(0)); err != nil {
			return nil, errors.Wrapf(err, "unit %d", u.Index)
		}
	}
	c.Barrier()

	if shape == ShapeOneQubit {
		c.Measure(units[0].Logical, out.Clbit(0))
		c.Measure(units[0].Output.Qubit(0), out.Clbit(1))
	} else {
		for i, u := range units {
			c.Measure(u.Output.Qubit(0), out.Clbit(i))
		}
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "synthesized circuit is invalid")
	}
	stats := c.GetStats()
	log := logger.Logger()
	log.Info().
		Str("code", code.Name()).
		Str("shape", shape.String()).
		Int("nbLogical", n).
		Int("nbQubits", stats.NbQubits).
		Int("nbClbits", stats.NbClbits).
		Int("nbGates", stats.NbGates()).
		Int("nbConditional", stats.NbConditional).
		Msg("synthesized")
	return &Result{
		Code:    code,
		Shape:   shape,
		Circuit: c,
		Units:   units,
		Output:  out,
	}, nil
}

// UnencodedGHZState builds the bare n-qubit GHZ circuit without any code, as
// a reference for the encoded variants.
func UnencodedGHZState(n int) (*circuit.Circuit, *circuit.Register, error) {
	if err := compose.CheckSize(n); err != nil {
		return nil, nil, err
	}
	l := circuit.NewLayout(fmt.Sprintf("ghz_%d", n))
	q := l.AddQuantum("q", n)
	out := l.AddClassical(ResultRegister, n)
	c := l.Build()
	if err := compose.PrepareLogicalState(c, q.Qubits()); err != nil {
		return nil, nil, err
	}
	for i := 0; i < n; i++ {
		c.Measure(q.Qubit(i), out.Clbit(i))
	}
	return c, out, nil
}
