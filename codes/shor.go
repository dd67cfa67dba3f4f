package codes

import (
	"github.com/squid2010/qecsynth/circuit"
	"github.com/squid2010/qecsynth/gates"
)

// Shor is the nine-qubit Shor code with an eight-qubit stabilizer block.
// The codeword splits into the triples (logical, s0, s1), (s2, s3, s4) and
// (s5, s6, s7). Bits 0-1 are the X checks across neighbouring triples and
// flag Z errors; bits 2-7 are the Z pair checks inside each triple and flag
// X errors.
func Shor() *Descriptor {
	return newDescriptor("shor",
		[]string{
			"XXXXXIIIX",
			"IIXXXXXXI",
			"ZIIIIIIIZ",
			"ZZIIIIIII",
			"IIZZIIIII",
			"IIIZZIIII",
			"IIIIIZZII",
			"IIIIIIZZI",
		},
		encodeShor,
		decodeShor,
	)
}

func encodeShor(c *circuit.Circuit, word []circuit.Qubit) {
	s, l := word[:8], word[8]

	gates.CXX(c, l, s[2], s[5])

	c.H(l)
	c.H(s[2])
	c.H(s[5])

	gates.CXX(c, l, s[0], s[1])
	gates.CXX(c, s[2], s[3], s[4])
	gates.CXX(c, s[5], s[6], s[7])
}

// decodeShor undoes the encoder with majority votes inside each triple and
// across the triples, then moves the logical state onto out.
func decodeShor(c *circuit.Circuit, word []circuit.Qubit, out circuit.Qubit) {
	s, l := word[:8], word[8]

	gates.CXX(c, l, s[0], s[1])
	gates.CXX(c, s[2], s[3], s[4])
	gates.CXX(c, s[5], s[6], s[7])

	c.CCX(s[1], s[0], l)
	c.CCX(s[4], s[3], s[2])
	c.CCX(s[7], s[6], s[5])

	c.H(l)
	c.H(s[2])
	c.H(s[5])

	gates.CXX(c, l, s[2], s[5])
	c.CCX(s[5], s[2], l)

	c.CX(l, out)
	c.CX(out, l)
}
