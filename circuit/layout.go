package circuit

import "fmt"

// Layout declares the registers of a circuit before it is built. Quantum
// and classical registers receive consecutive flat offsets in declaration
// order, so the declaration sequence is the global addressing scheme.
type Layout struct {
	name      string
	registers []*Register
	names     map[string]bool
	nbQubits  int
	nbClbits  int
	built     bool
}

func NewLayout(name string) *Layout {
	return &Layout{
		name:  name,
		names: make(map[string]bool),
	}
}

func (l *Layout) add(name string, kind RegisterKind, size int) *Register {
	if l.built {
		panic("layout already built")
	}
	if size <= 0 {
		panic(fmt.Sprintf("register %s has non-positive size %d", name, size))
	}
	if l.names[name] {
		panic(fmt.Sprintf("duplicate register name %s", name))
	}
	l.names[name] = true
	r := &Register{Name: name, Kind: kind, Size: size}
	if kind == Quantum {
		r.Offset = l.nbQubits
		l.nbQubits += size
	} else {
		r.Offset = l.nbClbits
		l.nbClbits += size
	}
	l.registers = append(l.registers, r)
	return r
}

// AddQuantum declares a qubit register.
func (l *Layout) AddQuantum(name string, size int) *Register {
	return l.add(name, Quantum, size)
}

// AddClassical declares a classical bit register.
func (l *Layout) AddClassical(name string, size int) *Register {
	return l.add(name, Classical, size)
}

func (l *Layout) NbQubits() int {
	return l.nbQubits
}

func (l *Layout) NbClbits() int {
	return l.nbClbits
}

// Build seals the layout and returns an empty circuit over its registers.
// Quantum registers come first, then classical ones, each in declaration order.
func (l *Layout) Build() *Circuit {
	if l.built {
		panic("layout already built")
	}
	l.built = true
	c := &Circuit{
		Name:     l.name,
		NbQubits: l.nbQubits,
		NbClbits: l.nbClbits,
	}
	for _, kind := range []RegisterKind{Quantum, Classical} {
		for _, r := range l.registers {
			if r.Kind == kind {
				c.Registers = append(c.Registers, r)
			}
		}
	}
	c.scope = &c.Instructions
	return c
}
