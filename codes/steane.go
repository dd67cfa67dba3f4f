package codes

import (
	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/gates"
)

// Steane is the [[7,1,3]] CSS code over (s0..s5, logical). The three X
// checks come first and the Z checks on the same supports follow, so bits
// 0-2 flag Z errors and bits 3-5 flag X errors.
func Steane() *Descriptor {
	return newDescriptor("steane",
		[]string{
			"XIIXIXX",
			"IXIXXIX",
			"IIXXXXI",
			"ZIIZIZZ",
			"IZIZZIZ",
			"IIZZZZI",
		},
		encodeSteane,
		decodeSteane,
	)
}

func encodeSteane(c *circuit.Circuit, word []circuit.Qubit) {
	s, l := word[:6], word[6]

	gates.CXX(c, l, s[4], s[5])

	c.H(s[0])
	c.H(s[1])
	c.H(s[2])

	gates.CXXX(c, s[0], s[3], s[5], l)
	gates.CXXX(c, s[1], s[3], s[4], l)
	gates.CXXX(c, s[2], s[3], s[4], s[5])
}

func decodeSteane(c *circuit.Circuit, word []circuit.Qubit, out circuit.Qubit) {
	s, l := word[:6], word[6]
	c.CX(s[0], out)
	c.CX(s[1], out)
	c.CX(l, out)
	gates.CXXX(c, out, s[4], s[5], l)
}
