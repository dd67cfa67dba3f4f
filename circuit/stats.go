package circuit

type Stats struct {
	NbQubits int
	NbClbits int
	// gates outside conditional blocks, by arity
	NbSingleQubit int
	NbTwoQubit    int
	NbThreeQubit  int
	NbReset       int
	NbMeasure     int
	NbBarrier     int
	// number of conditional blocks and of gates inside them
	NbConditional      int
	NbConditionalGates int
}

func (c *Circuit) GetStats() Stats {
	r := Stats{
		NbQubits: c.NbQubits,
		NbClbits: c.NbClbits,
	}
	for _, insn := range c.Instructions {
		switch insn.Type {
		case IGate:
			switch insn.Gate.Arity() {
			case 1:
				r.NbSingleQubit++
			case 2:
				r.NbTwoQubit++
			case 3:
				r.NbThreeQubit++
			}
		case IReset:
			r.NbReset += len(insn.Qubits)
		case IMeasure:
			r.NbMeasure++
		case IBarrier:
			r.NbBarrier++
		case IIfEqual:
			r.NbConditional++
			r.NbConditionalGates += len(insn.Body)
		}
	}
	return r
}

// NbGates counts unconditional gates.
func (s Stats) NbGates() int {
	return s.NbSingleQubit + s.NbTwoQubit + s.NbThreeQubit
}
