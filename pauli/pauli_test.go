package pauli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindBits(t *testing.T) {
	for _, k := range []Kind{I, X, Y, Z} {
		assert.Equal(t, k, FromBits(k.HasX(), k.HasZ()), k.String())
	}
	assert.True(t, X.Anticommutes(Z))
	assert.True(t, Y.Anticommutes(X))
	assert.False(t, Y.Anticommutes(Y))
	assert.False(t, I.Anticommutes(Z))
}

func TestParseRoundTrip(t *testing.T) {
	p, err := Parse("XZZXI")
	require.NoError(t, err)
	assert.Equal(t, "XZZXI", p.String())
	assert.Equal(t, []int{0, 1, 2, 3}, p.Support())
	assert.Equal(t, 4, p.Weight())

	_, err = Parse("XQ")
	assert.Error(t, err)
	_, err = Parse("")
	assert.Error(t, err)
}

func TestCommutes(t *testing.T) {
	a := MustParse("XZZXI")
	b := MustParse("IXZZX")
	assert.True(t, a.Commutes(b))
	assert.False(t, a.Commutes(Single(5, 1, X)))
	assert.True(t, a.Commutes(Single(5, 4, Y)))
	assert.False(t, MustParse("Y").Commutes(MustParse("Z")))
}

func TestMul(t *testing.T) {
	xz := MustParse("XZ").Mul(MustParse("ZZ"))
	assert.Equal(t, "YI", xz.String())
	assert.True(t, MustParse("XYZ").Mul(MustParse("XYZ")).IsIdentity())
}

func TestInGroup(t *testing.T) {
	gens := []*String{
		MustParse("XZZXI"),
		MustParse("IXZZX"),
		MustParse("XIXZZ"),
		MustParse("ZXIXZ"),
	}
	assert.True(t, InGroup(gens, MustParse("IIIII")))
	assert.True(t, InGroup(gens, gens[0].Mul(gens[2])))
	assert.True(t, InGroup(gens, gens[0].Mul(gens[1]).Mul(gens[3])))
	// logical operators commute with every generator but are not in the group
	assert.False(t, InGroup(gens, MustParse("XXXXX")))
	assert.False(t, InGroup(gens, MustParse("ZZZZZ")))
	assert.False(t, InGroup(gens, Single(5, 2, Y)))
}
