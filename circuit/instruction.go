package circuit

import "fmt"

// InstructionType enumerates the types of instructions that can be part of a Circuit.
type InstructionType int

const (
	_                     = 0
	IGate InstructionType = iota
	IReset
	IMeasure
	IBarrier
	IIfEqual
)

func (t InstructionType) String() string {
	switch t {
	case IGate:
		return "gate"
	case IReset:
		return "reset"
	case IMeasure:
		return "measure"
	case IBarrier:
		return "barrier"
	case IIfEqual:
		return "if"
	}
	return fmt.Sprintf("InstructionType(%d)", int(t))
}

// GateKind is one of the gates of the engine contract.
type GateKind uint8

const (
	GateH GateKind = iota
	GateS
	GateX
	GateY
	GateZ
	GateCX
	GateCY
	GateCZ
	GateCCX
)

var gateNames = [...]string{"h", "s", "x", "y", "z", "cx", "cy", "cz", "ccx"}

func (g GateKind) String() string {
	if int(g) < len(gateNames) {
		return gateNames[g]
	}
	return fmt.Sprintf("GateKind(%d)", uint8(g))
}

// Arity is the number of qubits the gate acts on, controls first.
func (g GateKind) Arity() int {
	switch g {
	case GateH, GateS, GateX, GateY, GateZ:
		return 1
	case GateCX, GateCY, GateCZ:
		return 2
	case GateCCX:
		return 3
	}
	return 0
}

// Instruction is one step of a circuit. It can be:
//  1. a gate on Qubits (controls first, target last)
//  2. a reset of Qubits to |0>
//  3. a measurement of Qubits[0] into Clbits[0]
//  4. a barrier over every qubit
//  5. a block of gates (Body) executed iff register Register equals Value
//
// Qubits and Clbits hold flat indices; Register indexes Circuit.Registers.
type Instruction struct {
	Type     InstructionType
	Gate     GateKind
	Qubits   []int
	Clbits   []int
	Register int
	Value    uint64
	Body     []Instruction
}

func NewGateInstruction(g GateKind, qubits ...int) Instruction {
	return Instruction{
		Type:   IGate,
		Gate:   g,
		Qubits: qubits,
	}
}

func NewResetInstruction(qubits ...int) Instruction {
	return Instruction{
		Type:   IReset,
		Qubits: qubits,
	}
}

func NewMeasureInstruction(qubit int, clbit int) Instruction {
	return Instruction{
		Type:   IMeasure,
		Qubits: []int{qubit},
		Clbits: []int{clbit},
	}
}

func NewBarrierInstruction() Instruction {
	return Instruction{
		Type: IBarrier,
	}
}

func NewIfEqualInstruction(register int, value uint64, body []Instruction) Instruction {
	return Instruction{
		Type:     IIfEqual,
		Register: register,
		Value:    value,
		Body:     body,
	}
}
