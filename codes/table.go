package codes

import (
	"fmt"
	"sort"

	"github.com/squid2010/qecsynth/pauli"
)

// Correction applies Kind to codeword position Target.
type Correction struct {
	Kind   pauli.Kind
	Target int
}

func (c Correction) String() string {
	return fmt.Sprintf("%s%d", c.Kind, c.Target)
}

// SyndromeTable maps a measured syndrome to the corrections that undo the
// error it signals. Bit i of a syndrome is generator i.
type SyndromeTable map[uint64][]Correction

// Values returns the populated syndromes in ascending order.
func (t SyndromeTable) Values() []uint64 {
	res := make([]uint64, 0, len(t))
	for v := range t {
		res = append(res, v)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

// Lookup reports the corrections for v; a missing value means no correction.
func (t SyndromeTable) Lookup(v uint64) ([]Correction, bool) {
	c, ok := t[v]
	return c, ok
}

func (t SyndromeTable) Clone() SyndromeTable {
	res := make(SyndromeTable, len(t))
	for v, c := range t {
		res[v] = append([]Correction(nil), c...)
	}
	return res
}

// Syndrome returns the bit pattern of generators that anticommute with e.
func Syndrome(generators []*pauli.String, e *pauli.String) uint64 {
	if len(generators) > 64 {
		panic("more than 64 generators")
	}
	var v uint64
	for i, g := range generators {
		if !g.Commutes(e) {
			v |= 1 << uint(i)
		}
	}
	return v
}

// DeriveSyndromeTable builds the single-error lookup table of a code. Errors
// are enumerated by codeword position and then X, Z, Y; when several errors
// share a syndrome (a degenerate code) the first one is kept, which is a
// valid correction because the two errors differ by a stabilizer.
func DeriveSyndromeTable(generators []*pauli.String) SyndromeTable {
	n := generators[0].Len()
	t := make(SyndromeTable)
	for pos := 0; pos < n; pos++ {
		for _, k := range pauli.Kinds {
			v := Syndrome(generators, pauli.Single(n, pos, k))
			if v == 0 {
				panic(fmt.Sprintf("%s on position %d is undetectable", k, pos))
			}
			if _, ok := t[v]; !ok {
				t[v] = []Correction{{Kind: k, Target: pos}}
			}
		}
	}
	return t
}
