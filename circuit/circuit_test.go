package circuit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bellCircuit() *Circuit {
	l := NewLayout("bell")
	q := l.AddQuantum("q", 2)
	m := l.AddClassical("m", 2)
	c := l.Build()
	c.Reset(q.Qubits()...)
	c.H(q.Qubit(0))
	c.CX(q.Qubit(0), q.Qubit(1))
	c.Barrier()
	c.Measure(q.Qubit(0), m.Clbit(0))
	c.Measure(q.Qubit(1), m.Clbit(1))
	c.IfEqual(m, 1, func(c *Circuit) {
		c.X(q.Qubit(0))
		c.Z(q.Qubit(1))
	})
	return c
}

func TestLayoutOffsets(t *testing.T) {
	l := NewLayout("layout")
	a := l.AddQuantum("a", 3)
	x := l.AddClassical("x", 2)
	b := l.AddQuantum("b", 1)
	y := l.AddClassical("y", 4)
	c := l.Build()

	assert.Equal(t, 0, a.Offset)
	assert.Equal(t, 3, b.Offset)
	assert.Equal(t, 0, x.Offset)
	assert.Equal(t, 2, y.Offset)
	assert.Equal(t, 4, c.NbQubits)
	assert.Equal(t, 6, c.NbClbits)
	assert.Equal(t, []*Register{a, b, x, y}, c.Registers)
	assert.Equal(t, 3, b.Qubit(0).Flat())
	assert.Equal(t, 5, y.Clbit(3).Flat())
	require.NoError(t, c.Validate())

	assert.Panics(t, func() { l.AddQuantum("late", 1) })
	assert.Panics(t, func() { a.Qubit(3) })
	assert.Panics(t, func() { a.Clbit(0) })
}

func TestDuplicateRegisterName(t *testing.T) {
	l := NewLayout("dup")
	l.AddQuantum("a", 1)
	assert.Panics(t, func() { l.AddClassical("a", 1) })
}

func TestForeignRegister(t *testing.T) {
	other := NewLayout("other").AddQuantum("q", 1)
	l := NewLayout("mine")
	l.AddQuantum("q", 1)
	c := l.Build()
	assert.Panics(t, func() { c.H(other.Qubit(0)) })
}

func TestIfEqualBody(t *testing.T) {
	c := bellCircuit()
	require.NoError(t, c.Validate())
	last := c.Instructions[len(c.Instructions)-1]
	assert.Equal(t, IIfEqual, last.Type)
	assert.Equal(t, uint64(1), last.Value)
	assert.Len(t, last.Body, 2)
	assert.Equal(t, GateX, last.Body[0].Gate)

	// gates after the block go back to the top level
	q, _ := c.Register("q")
	c.H(q.Qubit(1))
	assert.Equal(t, IGate, c.Instructions[len(c.Instructions)-1].Type)

	m, _ := c.Register("m")
	assert.Panics(t, func() {
		c.IfEqual(m, 0, func(c *Circuit) { c.Barrier() })
	})
	assert.Panics(t, func() {
		c.IfEqual(q, 0, func(c *Circuit) {})
	})
}

func TestValidateErrors(t *testing.T) {
	c := bellCircuit()
	c.Instructions = append(c.Instructions, NewGateInstruction(GateCX, 0, 0))
	assert.ErrorContains(t, c.Validate(), "used twice")

	c = bellCircuit()
	c.Instructions = append(c.Instructions, NewGateInstruction(GateH, 7))
	assert.ErrorContains(t, c.Validate(), "out of bound")

	c = bellCircuit()
	c.Instructions = append(c.Instructions, NewIfEqualInstruction(1, 4, nil))
	assert.ErrorContains(t, c.Validate(), "does not fit")

	c = bellCircuit()
	c.Instructions = append(c.Instructions, NewIfEqualInstruction(0, 0, nil))
	assert.ErrorContains(t, c.Validate(), "quantum register")

	c = bellCircuit()
	c.Instructions = append(c.Instructions, NewGateInstruction(GateCCX, 0, 1))
	assert.ErrorContains(t, c.Validate(), "takes 3 qubits")
}

func TestStats(t *testing.T) {
	s := bellCircuit().GetStats()
	assert.Equal(t, Stats{
		NbQubits:           2,
		NbClbits:           2,
		NbSingleQubit:      1,
		NbTwoQubit:         1,
		NbReset:            2,
		NbMeasure:          2,
		NbBarrier:          1,
		NbConditional:      1,
		NbConditionalGates: 2,
	}, s)
	assert.Equal(t, 2, s.NbGates())
}

func TestSerializeRoundTrip(t *testing.T) {
	c := bellCircuit()

	g, err := Deserialize(c.Serialize())
	require.NoError(t, err)
	assert.Equal(t, c.Instructions, g.Instructions)
	assert.Equal(t, c.Name, g.Name)
	require.Len(t, g.Registers, len(c.Registers))
	for i := range c.Registers {
		assert.Equal(t, *c.Registers[i], *g.Registers[i])
	}

	data, err := c.EncodeCBOR()
	require.NoError(t, err)
	d, err := DecodeCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, c.Instructions, d.Instructions)
	assert.Equal(t, c.NbQubits, d.NbQubits)

	again, err := d.EncodeCBOR()
	require.NoError(t, err)
	assert.Equal(t, data, again)

	_, err = Deserialize([]byte("nope"))
	assert.Error(t, err)
}

func TestQASM(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQASM(&buf, bellCircuit()))
	want := strings.Join([]string{
		"OPENQASM 2.0;",
		`include "qelib1.inc";`,
		"",
		"qreg q[2];",
		"creg m[2];",
		"",
		"reset q[0];",
		"reset q[1];",
		"h q[0];",
		"cx q[0],q[1];",
		"barrier q;",
		"measure q[0] -> m[0];",
		"measure q[1] -> m[1];",
		"if(m==1) x q[0];",
		"if(m==1) z q[1];",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	bellCircuit().Print(&buf)
	out := buf.String()
	assert.Contains(t, out, "cx q[0],q[1]\n")
	assert.Contains(t, out, "if m == 1\n    x q[0]\n")
	assert.Contains(t, out, "measure q[1] -> m[1]\n")
}

func TestZeroValueCircuit(t *testing.T) {
	var c Circuit
	require.NotPanics(t, func() {
		c.Barrier()
		c.Reset()
	})
	assert.Equal(t, []Instruction{NewBarrierInstruction()}, c.Instructions)

	l := NewLayout("zero")
	m := l.AddClassical("m", 1)
	c.Registers = append(c.Registers, m)
	c.NbClbits = 1
	require.NotPanics(t, func() {
		c.IfEqual(m, 0, func(*Circuit) {})
	})
	assert.Len(t, c.Instructions, 2)
}
