package circuit

import (
	"fmt"
	"io"
	"strings"
)

// WriteQASM renders the circuit as OpenQASM 2.0. A conditional block becomes
// one if statement per gate; the gates inside a block never touch the
// classical register they are conditioned on, so this is equivalent.
func WriteQASM(w io.Writer, c *Circuit) error {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n")
	sb.WriteString("\n")
	for _, r := range c.Registers {
		fmt.Fprintf(&sb, "%s %s[%d];\n", r.Kind, r.Name, r.Size)
	}
	sb.WriteString("\n")

	var qregs []string
	for _, r := range c.Registers {
		if r.Kind == Quantum {
			qregs = append(qregs, r.Name)
		}
	}

	for insnId, insn := range c.Instructions {
		switch insn.Type {
		case IGate:
			sb.WriteString(c.qasmGate(insn))
		case IReset:
			for _, q := range insn.Qubits {
				fmt.Fprintf(&sb, "reset %s;\n", c.QubitName(q))
			}
		case IMeasure:
			fmt.Fprintf(&sb, "measure %s -> %s;\n", c.QubitName(insn.Qubits[0]), c.ClbitName(insn.Clbits[0]))
		case IBarrier:
			fmt.Fprintf(&sb, "barrier %s;\n", strings.Join(qregs, ","))
		case IIfEqual:
			cond := fmt.Sprintf("if(%s==%d) ", c.Registers[insn.Register].Name, insn.Value)
			for _, b := range insn.Body {
				if b.Type != IGate {
					return fmt.Errorf("instruction %d: %s inside a conditional block", insnId, b.Type)
				}
				sb.WriteString(cond)
				sb.WriteString(c.qasmGate(b))
			}
		default:
			return fmt.Errorf("instruction %d: unknown type %d", insnId, insn.Type)
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func (c *Circuit) qasmGate(insn Instruction) string {
	qs := make([]string, len(insn.Qubits))
	for i, q := range insn.Qubits {
		qs[i] = c.QubitName(q)
	}
	return fmt.Sprintf("%s %s;\n", insn.Gate, strings.Join(qs, ","))
}
