package qecsynth

import (
	"bytes"
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/codes"
	"github.com/squid2010/qecsynth/compose"
	"github.com/squid2010/qecsynth/sim"
)

func TestGHZSizes(t *testing.T) {
	for _, code := range codes.All() {
		k := code.StabilizerSize()
		for n := compose.MinLogicalQubits; n <= compose.MaxLogicalQubits; n++ {
			r, err := GHZState(code, n)
			require.NoError(t, err)
			require.Len(t, r.Units, n)
			assert.Equal(t, n, r.Output.Size)
			assert.Equal(t, ResultRegister, r.Output.Name)
			for _, u := range r.Units {
				assert.Equal(t, k, u.Stabilizer.Size)
				assert.Equal(t, k, u.Ancilla.Size)
				assert.Equal(t, k, u.Syndrome.Size)
				assert.Equal(t, 1, u.Output.Size)
			}
			stats := r.Circuit.GetStats()
			assert.Equal(t, n*(2*k+2), stats.NbQubits)
			assert.Equal(t, n*k+n, stats.NbClbits)
			assert.Equal(t, n*len(code.SyndromeTable()), stats.NbConditional)
			assert.Equal(t, n*k+n, stats.NbMeasure)
			assert.Equal(t, n*(2*k+1), stats.NbReset)
			assert.Equal(t, 3, stats.NbBarrier)
		}
	}
}

func TestGHZInvalidSize(t *testing.T) {
	for _, n := range []int{0, 1, 11} {
		_, err := GHZState(codes.Steane(), n)
		assert.True(t, errors.Is(err, compose.ErrInvalidSize), "n=%d", n)
		_, err = FiveQubitGHZState(n)
		assert.True(t, errors.Is(err, compose.ErrInvalidSize), "n=%d", n)
		_, _, err = UnencodedGHZState(n)
		assert.True(t, errors.Is(err, compose.ErrInvalidSize), "n=%d", n)
	}
}

func TestFactories(t *testing.T) {
	for _, tc := range []struct {
		factory func() (*Result, error)
		code    string
		shape   Shape
		n       int
	}{
		{FiveQubitOneQubit, "five-qubit", ShapeOneQubit, 1},
		{FiveQubitBellState, "five-qubit", ShapeBell, 2},
		{func() (*Result, error) { return FiveQubitGHZState(4) }, "five-qubit", ShapeGHZ, 4},
		{ShorOneQubit, "shor", ShapeOneQubit, 1},
		{ShorBellState, "shor", ShapeBell, 2},
		{func() (*Result, error) { return ShorGHZState(5) }, "shor", ShapeGHZ, 5},
		{SteaneOneQubit, "steane", ShapeOneQubit, 1},
		{SteaneBellState, "steane", ShapeBell, 2},
		{func() (*Result, error) { return SteaneGHZState(6) }, "steane", ShapeGHZ, 6},
	} {
		r, err := tc.factory()
		require.NoError(t, err)
		assert.Equal(t, tc.code, r.Code.Name())
		assert.Equal(t, tc.shape, r.Shape)
		assert.Len(t, r.Units, tc.n)
		if tc.shape == ShapeOneQubit {
			assert.Equal(t, 2, r.Output.Size)
		} else {
			assert.Equal(t, tc.n, r.Output.Size)
		}
	}
}

func TestSynthesize(t *testing.T) {
	r, err := Synthesize(codes.Shor(), ShapeGHZ, 3)
	require.NoError(t, err)
	assert.Len(t, r.Units, 3)

	r, err = Synthesize(nil, ShapeUnencodedGHZ, 4)
	require.NoError(t, err)
	assert.Nil(t, r.Code)
	assert.Empty(t, r.Units)
	assert.Equal(t, 4, r.Circuit.NbQubits)
	assert.Equal(t, 4, r.Output.Size)
	_, err = Synthesize(nil, ShapeUnencodedGHZ, 1)
	assert.True(t, errors.Is(err, compose.ErrInvalidSize))

	_, err = Synthesize(codes.Shor(), Shape(42), 3)
	assert.True(t, errors.Is(err, ErrUnknownShape))
	_, err = Synthesize(codes.Shor(), ShapeGHZ, 12)
	assert.True(t, errors.Is(err, compose.ErrInvalidSize))
}

func TestParseShape(t *testing.T) {
	for name, want := range map[string]Shape{
		"one": ShapeOneQubit, "one-qubit": ShapeOneQubit, "Bell": ShapeBell, " ghz ": ShapeGHZ,
		"unencoded": ShapeUnencodedGHZ,
	} {
		s, err := ParseShape(name)
		require.NoError(t, err)
		assert.Equal(t, want, s)
	}
	for _, s := range []Shape{ShapeOneQubit, ShapeBell, ShapeGHZ, ShapeUnencodedGHZ} {
		p, err := ParseShape(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
	_, err := ParseShape("w-state")
	assert.True(t, errors.Is(err, ErrUnknownShape))
}

// outputs of an entangled shape must all agree, and both branches must show up
func assertCorrelated(t *testing.T, c *circuit.Circuit, out *circuit.Register, shots int) {
	counts, err := sim.Sample(context.Background(), c, out, shots, 1, 4)
	require.NoError(t, err)
	zeros := strings.Repeat("0", out.Size)
	ones := strings.Repeat("1", out.Size)
	for bits, count := range counts {
		assert.True(t, bits == zeros || bits == ones, "uncorrelated outcome %s (%d shots)", bits, count)
	}
	assert.Greater(t, counts[zeros], 0)
	assert.Greater(t, counts[ones], 0)
}

func TestBellAgreement(t *testing.T) {
	for _, code := range codes.All() {
		t.Run(code.Name(), func(t *testing.T) {
			r, err := BellState(code)
			require.NoError(t, err)
			assertCorrelated(t, r.Circuit, r.Output, 24)
		})
	}
}

func TestFiveQubitGHZ(t *testing.T) {
	r, err := FiveQubitGHZState(3)
	require.NoError(t, err)
	assertCorrelated(t, r.Circuit, r.Output, 24)
}

func TestUnencodedGHZ(t *testing.T) {
	c, out, err := UnencodedGHZState(5)
	require.NoError(t, err)
	assert.Equal(t, 5, c.NbQubits)
	assertCorrelated(t, c, out, 32)
}

func TestOneQubitRoundTrip(t *testing.T) {
	for _, code := range codes.All() {
		r, err := OneQubit(code)
		require.NoError(t, err)
		res, err := sim.Run(r.Circuit, rand.New(rand.NewSource(3)))
		require.NoError(t, err)
		assert.Equal(t, uint64(0), res.RegisterValue(r.Units[0].Syndrome), code.Name())
		assert.Equal(t, uint8(0), res.Clbits[r.Output.Clbit(1).Flat()], code.Name())
		for _, o := range res.Outcomes {
			if o.Clbit != r.Output.Clbit(0).Flat() {
				assert.InDelta(t, 1, o.Probability, 1e-9, code.Name())
			}
		}
	}
}

func TestQASMOutput(t *testing.T) {
	r, err := FiveQubitBellState()
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, circuit.WriteQASM(&buf, r.Circuit))
	qasm := buf.String()

	assert.True(t, strings.HasPrefix(qasm, "OPENQASM 2.0;\n"))
	assert.Contains(t, qasm, "qreg ancilla_0[4];\n")
	assert.Contains(t, qasm, "creg measured_errors_1[4];\n")
	assert.Contains(t, qasm, "creg measured_output[2];\n")
	assert.Contains(t, qasm, "h log_qubit_0[0];\ncx log_qubit_0[0],log_qubit_1[0];\n")
	assert.Contains(t, qasm, "if(measured_errors_0==13) y stab_0[0];\n")
	assert.Contains(t, qasm, "if(measured_errors_1==2) z log_qubit_1[0];\n")
	assert.True(t, strings.HasSuffix(qasm, "measure output_1[0] -> measured_output[1];\n"))
	assert.Equal(t, 2*15, strings.Count(qasm, "if("))
}
