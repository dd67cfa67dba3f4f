// Package circuit is the producer side of the quantum circuit engine
// contract: named registers, an ordered instruction list, validation and
// the text, OpenQASM, gob and CBOR renderings of a built circuit.
package circuit

import (
	"fmt"
	"io"
	"strings"
)

type Circuit struct {
	Name      string
	Registers []*Register
	// each instruction is applied in order; conditional blocks nest one level
	Instructions []Instruction
	NbQubits     int
	NbClbits     int

	// where new instructions are appended, either Instructions or the body
	// of the conditional block being built
	scope *[]Instruction
}

func (c *Circuit) emit(insn Instruction) {
	if c.scope == nil {
		c.scope = &c.Instructions
	}
	*c.scope = append(*c.scope, insn)
}

func (c *Circuit) own(r *Register) {
	for _, x := range c.Registers {
		if x == r {
			return
		}
	}
	panic(fmt.Sprintf("register %s does not belong to circuit %q", r.Name, c.Name))
}

func (c *Circuit) flat(qs ...Qubit) []int {
	res := make([]int, len(qs))
	for i, q := range qs {
		c.own(q.Reg)
		res[i] = q.Flat()
	}
	return res
}

func (c *Circuit) inBody() bool {
	if c.scope == nil {
		c.scope = &c.Instructions
	}
	return c.scope != &c.Instructions
}

func (c *Circuit) gate(g GateKind, qs ...Qubit) {
	c.emit(NewGateInstruction(g, c.flat(qs...)...))
}

func (c *Circuit) H(q Qubit) { c.gate(GateH, q) }
func (c *Circuit) S(q Qubit) { c.gate(GateS, q) }
func (c *Circuit) X(q Qubit) { c.gate(GateX, q) }
func (c *Circuit) Y(q Qubit) { c.gate(GateY, q) }
func (c *Circuit) Z(q Qubit) { c.gate(GateZ, q) }

func (c *Circuit) CX(control, target Qubit) { c.gate(GateCX, control, target) }
func (c *Circuit) CY(control, target Qubit) { c.gate(GateCY, control, target) }
func (c *Circuit) CZ(control, target Qubit) { c.gate(GateCZ, control, target) }

func (c *Circuit) CCX(c0, c1, target Qubit) { c.gate(GateCCX, c0, c1, target) }

// Reset initializes the given qubits to |0>.
func (c *Circuit) Reset(qs ...Qubit) {
	if c.inBody() {
		panic("reset inside a conditional block")
	}
	if len(qs) == 0 {
		return
	}
	c.emit(NewResetInstruction(c.flat(qs...)...))
}

func (c *Circuit) Measure(q Qubit, b Clbit) {
	if c.inBody() {
		panic("measure inside a conditional block")
	}
	qs := c.flat(q)
	c.own(b.Reg)
	c.emit(NewMeasureInstruction(qs[0], b.Flat()))
}

func (c *Circuit) Barrier() {
	if c.inBody() {
		panic("barrier inside a conditional block")
	}
	c.emit(NewBarrierInstruction())
}

// IfEqual appends a block whose gates execute iff the classical register
// reg holds value. body receives the same circuit; gates it emits go into
// the block.
func (c *Circuit) IfEqual(reg *Register, value uint64, body func(c *Circuit)) {
	if c.inBody() {
		panic("nested conditional block")
	}
	c.own(reg)
	if reg.Kind != Classical {
		panic(fmt.Sprintf("condition on quantum register %s", reg.Name))
	}
	var insns []Instruction
	c.scope = &insns
	func() {
		defer func() { c.scope = &c.Instructions }()
		body(c)
	}()
	c.emit(NewIfEqualInstruction(c.RegisterIndex(reg), value, insns))
}

// RegisterIndex returns the position of r in c.Registers.
func (c *Circuit) RegisterIndex(r *Register) int {
	for i, x := range c.Registers {
		if x == r {
			return i
		}
	}
	panic(fmt.Sprintf("register %s does not belong to circuit %q", r.Name, c.Name))
}

// Register looks a register up by name.
func (c *Circuit) Register(name string) (*Register, bool) {
	for _, r := range c.Registers {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// QubitName renders a flat qubit index as reg[i].
func (c *Circuit) QubitName(flat int) string {
	return c.elementName(Quantum, flat)
}

// ClbitName renders a flat classical bit index as reg[i].
func (c *Circuit) ClbitName(flat int) string {
	return c.elementName(Classical, flat)
}

func (c *Circuit) elementName(kind RegisterKind, flat int) string {
	for _, r := range c.Registers {
		if r.Kind == kind && flat >= r.Offset && flat < r.Offset+r.Size {
			return fmt.Sprintf("%s[%d]", r.Name, flat-r.Offset)
		}
	}
	return fmt.Sprintf("?%d", flat)
}

func (c *Circuit) Validate() error {
	nb := map[RegisterKind]int{}
	for i, r := range c.Registers {
		if r.Size <= 0 {
			return fmt.Errorf("register %d (%s) has size %d", i, r.Name, r.Size)
		}
		if r.Offset != nb[r.Kind] {
			return fmt.Errorf("register %d (%s) has offset %d, expected %d", i, r.Name, r.Offset, nb[r.Kind])
		}
		nb[r.Kind] += r.Size
	}
	if nb[Quantum] != c.NbQubits {
		return fmt.Errorf("registers hold %d qubits, circuit declares %d", nb[Quantum], c.NbQubits)
	}
	if nb[Classical] != c.NbClbits {
		return fmt.Errorf("registers hold %d bits, circuit declares %d", nb[Classical], c.NbClbits)
	}
	for insnId, insn := range c.Instructions {
		if err := c.validateInstruction(insn, false); err != nil {
			return fmt.Errorf("instruction %d: %v", insnId, err)
		}
	}
	return nil
}

func (c *Circuit) validateQubits(qs []int) error {
	seen := make(map[int]bool, len(qs))
	for _, q := range qs {
		if q < 0 || q >= c.NbQubits {
			return fmt.Errorf("qubit %d is out of bound", q)
		}
		if seen[q] {
			return fmt.Errorf("qubit %d is used twice", q)
		}
		seen[q] = true
	}
	return nil
}

func (c *Circuit) validateInstruction(insn Instruction, inBody bool) error {
	switch insn.Type {
	case IGate:
		if insn.Gate.Arity() == 0 {
			return fmt.Errorf("unknown gate %d", insn.Gate)
		}
		if len(insn.Qubits) != insn.Gate.Arity() {
			return fmt.Errorf("gate %s takes %d qubits, got %d", insn.Gate, insn.Gate.Arity(), len(insn.Qubits))
		}
		return c.validateQubits(insn.Qubits)
	case IReset, IMeasure, IBarrier, IIfEqual:
		if inBody {
			return fmt.Errorf("%s inside a conditional block", insn.Type)
		}
	default:
		return fmt.Errorf("unknown instruction type %d", insn.Type)
	}
	switch insn.Type {
	case IReset:
		if len(insn.Qubits) == 0 {
			return fmt.Errorf("empty reset")
		}
		return c.validateQubits(insn.Qubits)
	case IMeasure:
		if len(insn.Qubits) != 1 || len(insn.Clbits) != 1 {
			return fmt.Errorf("measure takes one qubit and one bit")
		}
		if insn.Clbits[0] < 0 || insn.Clbits[0] >= c.NbClbits {
			return fmt.Errorf("bit %d is out of bound", insn.Clbits[0])
		}
		return c.validateQubits(insn.Qubits)
	case IIfEqual:
		if insn.Register < 0 || insn.Register >= len(c.Registers) {
			return fmt.Errorf("register %d is not found", insn.Register)
		}
		r := c.Registers[insn.Register]
		if r.Kind != Classical {
			return fmt.Errorf("condition on quantum register %s", r.Name)
		}
		if r.Size < 64 && insn.Value>>uint(r.Size) != 0 {
			return fmt.Errorf("value %d does not fit register %s", insn.Value, r.Name)
		}
		for i, b := range insn.Body {
			if err := c.validateInstruction(b, true); err != nil {
				return fmt.Errorf("body %d: %v", i, err)
			}
		}
	}
	return nil
}

// Print writes a human-readable listing of the circuit.
func (c *Circuit) Print(w io.Writer) {
	fmt.Fprintf(w, "circuit %q qubits=%d bits=%d\n", c.Name, c.NbQubits, c.NbClbits)
	for _, r := range c.Registers {
		fmt.Fprintf(w, "%s @%d\n", r, r.Offset)
	}
	for _, insn := range c.Instructions {
		c.printInstruction(w, insn, "")
	}
}

func (c *Circuit) printInstruction(w io.Writer, insn Instruction, indent string) {
	qs := make([]string, len(insn.Qubits))
	for i, q := range insn.Qubits {
		qs[i] = c.QubitName(q)
	}
	switch insn.Type {
	case IGate:
		fmt.Fprintf(w, "%s%s %s\n", indent, insn.Gate, strings.Join(qs, ","))
	case IReset:
		fmt.Fprintf(w, "%sreset %s\n", indent, strings.Join(qs, ","))
	case IMeasure:
		fmt.Fprintf(w, "%smeasure %s -> %s\n", indent, qs[0], c.ClbitName(insn.Clbits[0]))
	case IBarrier:
		fmt.Fprintf(w, "%sbarrier\n", indent)
	case IIfEqual:
		fmt.Fprintf(w, "%sif %s == %d\n", indent, c.Registers[insn.Register].Name, insn.Value)
		for _, b := range insn.Body {
			c.printInstruction(w, b, indent+"    ")
		}
	}
}
