package circuit

import "fmt"

// RegisterKind distinguishes qubit registers from classical bit registers.
type RegisterKind int

const (
	Quantum RegisterKind = iota
	Classical
)

func (k RegisterKind) String() string {
	if k == Classical {
		return "creg"
	}
	return "qreg"
}

// Register is a named, fixed-size block of qubits or classical bits.
// Offset is the flat index of element 0 among all registers of the same kind.
type Register struct {
	Name   string
	Kind   RegisterKind
	Size   int
	Offset int
}

// Qubit is a handle to one qubit of a quantum register.
type Qubit struct {
	Reg   *Register
	Index int
}

// Clbit is a handle to one bit of a classical register.
type Clbit struct {
	Reg   *Register
	Index int
}

func (r *Register) String() string {
	return fmt.Sprintf("%s %s[%d]", r.Kind, r.Name, r.Size)
}

func (r *Register) Qubit(i int) Qubit {
	if r.Kind != Quantum {
		panic(fmt.Sprintf("register %s is not a quantum register", r.Name))
	}
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("qubit %d out of range for register %s", i, r.Name))
	}
	return Qubit{Reg: r, Index: i}
}

func (r *Register) Qubits() []Qubit {
	res := make([]Qubit, r.Size)
	for i := range res {
		res[i] = r.Qubit(i)
	}
	return res
}

func (r *Register) Clbit(i int) Clbit {
	if r.Kind != Classical {
		panic(fmt.Sprintf("register %s is not a classical register", r.Name))
	}
	if i < 0 || i >= r.Size {
		panic(fmt.Sprintf("bit %d out of range for register %s", i, r.Name))
	}
	return Clbit{Reg: r, Index: i}
}

func (r *Register) Clbits() []Clbit {
	res := make([]Clbit, r.Size)
	for i := range res {
		res[i] = r.Clbit(i)
	}
	return res
}

// Flat returns the global qubit index.
func (q Qubit) Flat() int {
	return q.Reg.Offset + q.Index
}

func (q Qubit) String() string {
	return fmt.Sprintf("%s[%d]", q.Reg.Name, q.Index)
}

// Flat returns the global classical bit index.
func (b Clbit) Flat() int {
	return b.Reg.Offset + b.Index
}

func (b Clbit) String() string {
	return fmt.Sprintf("%s[%d]", b.Reg.Name, b.Index)
}
