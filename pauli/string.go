package pauli

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// String is an n-qubit Pauli operator. Position i of the X mask is set when
// the operator acts with X or Y on qubit i, the Z mask likewise for Z or Y.
type String struct {
	n uint
	x *bitset.BitSet
	z *bitset.BitSet
}

// New returns the identity on n qubits.
func New(n int) *String {
	if n <= 0 {
		panic("pauli string needs at least one qubit")
	}
	return &String{
		n: uint(n),
		x: bitset.New(uint(n)),
		z: bitset.New(uint(n)),
	}
}

// Single returns the operator acting with k on qubit i and identity elsewhere.
func Single(n int, i int, k Kind) *String {
	return New(n).Set(i, k)
}

// Parse reads a string such as "XZZXI", qubit 0 first.
func Parse(s string) (*String, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("empty pauli string")
	}
	p := New(len(s))
	for i, r := range s {
		k, err := ParseKind(r)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		p.Set(i, k)
	}
	return p, nil
}

// MustParse is Parse for package-level tables.
func MustParse(s string) *String {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *String) check(i int) uint {
	if i < 0 || uint(i) >= p.n {
		panic(fmt.Sprintf("qubit %d out of range for %d-qubit pauli string", i, p.n))
	}
	return uint(i)
}

// Set replaces the factor on qubit i and returns p.
func (p *String) Set(i int, k Kind) *String {
	u := p.check(i)
	p.x.SetTo(u, k.HasX())
	p.z.SetTo(u, k.HasZ())
	return p
}

// At returns the factor on qubit i.
func (p *String) At(i int) Kind {
	u := p.check(i)
	return FromBits(p.x.Test(u), p.z.Test(u))
}

func (p *String) Len() int {
	return int(p.n)
}

// Support returns the qubits with a non-identity factor, ascending.
func (p *String) Support() []int {
	s := p.x.Union(p.z)
	res := make([]int, 0, s.Count())
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		res = append(res, int(i))
	}
	return res
}

func (p *String) Weight() int {
	return int(p.x.UnionCardinality(p.z))
}

func (p *String) IsIdentity() bool {
	return p.x.None() && p.z.None()
}

// Commutes evaluates the symplectic inner product of p and q.
func (p *String) Commutes(q *String) bool {
	if p.n != q.n {
		panic("pauli strings of different length")
	}
	c := p.x.IntersectionCardinality(q.z) + p.z.IntersectionCardinality(q.x)
	return c%2 == 0
}

// Mul returns the product p*q with the phase dropped.
func (p *String) Mul(q *String) *String {
	if p.n != q.n {
		panic("pauli strings of different length")
	}
	return &String{
		n: p.n,
		x: p.x.SymmetricDifference(q.x),
		z: p.z.SymmetricDifference(q.z),
	}
}

func (p *String) Clone() *String {
	return &String{n: p.n, x: p.x.Clone(), z: p.z.Clone()}
}

func (p *String) Equal(q *String) bool {
	return p.n == q.n && p.x.Equal(q.x) && p.z.Equal(q.z)
}

func (p *String) String() string {
	var sb strings.Builder
	for i := 0; i < int(p.n); i++ {
		sb.WriteString(p.At(i).String())
	}
	return sb.String()
}

// symplectic packs p into one 2n-bit vector, X part first.
func (p *String) symplectic() *bitset.BitSet {
	v := bitset.New(2 * p.n)
	for i, ok := p.x.NextSet(0); ok; i, ok = p.x.NextSet(i + 1) {
		v.Set(i)
	}
	for i, ok := p.z.NextSet(0); ok; i, ok = p.z.NextSet(i + 1) {
		v.Set(p.n + i)
	}
	return v
}

// InGroup reports whether p, up to phase, is a product of the generators.
// It row-reduces the generators over GF(2) and then reduces p against them.
func InGroup(gens []*String, p *String) bool {
	var basis []*bitset.BitSet
	var pivots []uint
	for _, g := range gens {
		if g.n != p.n {
			panic("pauli strings of different length")
		}
		v := g.symplectic()
		for i, b := range basis {
			if v.Test(pivots[i]) {
				v.InPlaceSymmetricDifference(b)
			}
		}
		pivot, ok := v.NextSet(0)
		if !ok {
			continue
		}
		for _, b := range basis {
			if b.Test(pivot) {
				b.InPlaceSymmetricDifference(v)
			}
		}
		basis = append(basis, v)
		pivots = append(pivots, pivot)
	}
	v := p.symplectic()
	for i, b := range basis {
		if v.Test(pivots[i]) {
			v.InPlaceSymmetricDifference(b)
		}
	}
	return v.None()
}
