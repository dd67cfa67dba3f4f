// Package codes defines the stabilizer codes a logical qubit can be
// protected with. Every code works on a local codeword whose positions
// 0..k-1 are the stabilizer block and position k is the logical qubit; its
// generators, syndrome table and encoder are all expressed in that order.
package codes

import (
	"github.com/consensys/gnark/logger"
	"github.com/pkg/errors"

	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/gates"
		"github.com/squid2010/qecsynth/pauli"
)

var (
	ErrRegisterSizeMismatch = errors.New("register size mismatch")
	ErrUnknownCode          = errors.New("unknown code")
)

// Code is a stabilizer code descriptor. All routines append to c and
// return ErrRegisterSizeMismatch when a block does not match the code.
type Code interface {
	Name() string
	// StabilizerSize is k, the number of qubits joining the logical qubit in a codeword.
	StabilizerSize() int
	AncillaSize() int
	SyndromeSize() int
	// Generators returns one Pauli string of length k+1 per syndrome bit.
	Generators() []*pauli.String
	SyndromeTable() SyndromeTable

	Encode(c *circuit.Circuit, logical circuit.Qubit, stab *circuit.Register) error
	MeasureSyndrome(c *circuit.Circuit, logical circuit.Qubit, stab, anc, syn *circuit.Register) error
	Decode(c *circuit.Circuit, logical circuit.Qubit, stab *circuit.Register, out circuit.Qubit) error
}

// Descriptor implements Code from a generator list and a fixed encoder.
type Descriptor struct {
	name       string
	k          int
	generators []*pauli.String
	table      SyndromeTable
	// encode and decode receive the codeword in local order
	encode func(c *circuit.Circuit, word []circuit.Qubit)
	decode func(c *circuit.Circuit, word []circuit.Qubit, out circuit.Qubit)
}

func newDescriptor(
	name string,
	generators []string,
	encode func(c *circuit.Circuit, word []circuit.Qubit),
	decode func(c *circuit.Circuit, word []circuit.Qubit, out circuit.Qubit),
) *Descriptor {
	d := &Descriptor{
		name:   name,
		k:      len(generators),
		encode: encode,
		decode: decode,
	}
	for _, g := range generators {
		p := pauli.MustParse(g)
		if p.Len() != d.k+1 {
			panic("generator " + g + " does not cover the codeword of " + name)
		}
		d.generators = append(d.generators, p)
	}
	for i, g := range d.generators {
		for _, h := range d.generators[:i] {
			if !g.Commutes(h) {
				panic("generators of " + name + " do not commute")
			}
		}
	}
	d.table = DeriveSyndromeTable(d.generators)
	return d
}

func (d *Descriptor) Name() string {
	return d.name
}

func (d *Descriptor) StabilizerSize() int {
	return d.k
}

func (d *Descriptor) AncillaSize() int {
	return d.k
}

func (d *Descriptor) SyndromeSize() int {
	return d.k
}

// CodewordSize is the number of physical qubits of one encoded logical qubit.
func (d *Descriptor) CodewordSize() int {
	return d.k + 1
}

func (d *Descriptor) Generators() []*pauli.String {
	res := make([]*pauli.String, len(d.generators))
	for i, g := range d.generators {
		res[i] = g.Clone()
	}
	return res
}

func (d *Descriptor) SyndromeTable() SyndromeTable {
	return d.table.Clone()
}

func (d *Descriptor) checkBlock(role string, r *circuit.Register, kind circuit.RegisterKind) error {
	if r == nil {
		return errors.Wrapf(ErrRegisterSizeMismatch, "%s: missing %s block", d.name, role)
	}
	if r.Kind != kind {
		return errors.Wrapf(ErrRegisterSizeMismatch, "%s: %s block %s is a %s", d.name, role, r.Name, r.Kind)
	}
	if r.Size != d.k {
		return errors.Wrapf(ErrRegisterSizeMismatch, "%s: %s block %s has size %d, want %d", d.name, role, r.Name, r.Size, d.k)
	}
	return nil
}

func (d *Descriptor) Encode(c *circuit.Circuit, logical circuit.Qubit, stab *circuit.Register) error {
	if err := d.checkBlock("stabilizer", stab, circuit.Quantum); err != nil {
		return err
	}
	word := Codeword(logical, stab)
	log := logger.Logger()
	log.Debug().Str("code", d.name).Str("logical", logical.String()).Msg("encode")
	d.encode(c, word)
	return nil
}

// MeasureSyndrome measures generator i through ancilla i into bit i of syn:
// the ancilla is put in |+>, controls the generator's Paulis on the
// codeword, and is rotated back before measurement.
func (d *Descriptor) MeasureSyndrome(c *circuit.Circuit, logical circuit.Qubit, stab, anc, syn *circuit.Register) error {
	if err := d.checkBlock("stabilizer", stab, circuit.Quantum); err != nil {
		return err
	}
	if err := d.checkBlock("ancilla", anc, circuit.Quantum); err != nil {
		return err
	}
	if err := d.checkBlock("syndrome", syn, circuit.Classical); err != nil {
		return err
	}
	word := Codeword(logical, stab)
	log := logger.Logger()
	log.Debug().Str("code", d.name).Str("logical", logical.String()).Msg("measure syndrome")
	for _, a := range anc.Qubits() {
		c.H(a)
	}
	for i, g := range d.generators {
		gates.ControlledString(c, g, anc.Qubit(i), word)
	}
	for _, a := range anc.Qubits() {
		c.H(a)
	}
	for i := 0; i < d.k; i++ {
		c.Measure(anc.Qubit(i), syn.Clbit(i))
	}
	return nil
}

func (d *Descriptor) Decode(c *circuit.Circuit, logical circuit.Qubit, stab *circuit.Register, out circuit.Qubit) error {
	if err := d.checkBlock("stabilizer", stab, circuit.Quantum); err != nil {
		return err
	}
	if out.Reg == stab || out == logical {
		return errors.Wrapf(ErrRegisterSizeMismatch, "%s: output %s overlaps the codeword", d.name, out)
	}
	word := Codeword(logical, stab)
	log := logger.Logger()
	log.Debug().Str("code", d.name).Str("output", out.String()).Msg("decode")
	d.decode(c, word, out)
	return nil
}

// Codeword lists the physical qubits of one encoded logical qubit in local order.
func Codeword(logical circuit.Qubit, stab *circuit.Register) []circuit.Qubit {
	return append(stab.Qubits(), logical)
}
