package codes

import (
	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/gates"
)

// FiveQubit is the [[5,1,3]] perfect code, generated by the cyclic shifts
// of XZZXI over (s0, s1, s2, s3, logical).
func FiveQubit() *Descriptor {
	return newDescriptor("five-qubit",
		[]string{
			"XZZXI",
			"IXZZX",
			"XIXZZ",
			"ZXIXZ",
		},
		encodeFiveQubit,
		decodeFiveQubit,
	)
}

func encodeFiveQubit(c *circuit.Circuit, word []circuit.Qubit) {
	s, l := word[:4], word[4]

	c.H(s[0])
	c.S(s[0])
	c.CY(s[0], l)

	c.H(s[1])
	c.CX(s[1], l)

	c.H(s[2])
	gates.CZZ(c, s[2], s[0], s[1])
	c.CX(s[2], l)

	c.H(s[3])
	c.S(s[3])
	gates.CZZ(c, s[3], s[0], s[2])
	c.CY(s[3], l)
}

func decodeFiveQubit(c *circuit.Circuit, word []circuit.Qubit, out circuit.Qubit) {
	s, l := word[:4], word[4]
	for _, q := range s {
		c.CX(q, out)
	}
	c.CX(l, out)
	gates.CZZ(c, out, s[0], s[3])
	c.CX(out, l)
}
