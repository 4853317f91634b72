package svalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDosReis(tst *testing.T) {
	coefs, err := Load(DosReis)
	require.NoError(tst, err)
	assert.Len(tst, coefs, 9)

	byPair := make(map[[2]byte]Coefficient, len(coefs))
	for _, c := range coefs {
		byPair[[2]byte{c.Anti, c.Cod}] = c
	}

	// Watson-Crick pairings carry no constraint
	for _, p := range [][2]byte{{'A', 'T'}, {'G', 'C'}, {'T', 'A'}, {'C', 'G'}} {
		c, ok := byPair[p]
		require.True(tst, ok, "missing pair %c:%c", p[0], p[1])
		assert.Equal(tst, 0.0, c.Weight)
		assert.Equal(tst, 1, c.MinDeg)
		assert.False(tst, c.Prokaryote)
	}

	// wobble pairings
	assert.Equal(tst, 0.41, byPair[[2]byte{'G', 'T'}].Weight)
	assert.Equal(tst, 0.28, byPair[[2]byte{'A', 'C'}].Weight)
	assert.Equal(tst, 0.68, byPair[[2]byte{'T', 'G'}].Weight)

	// the A:A pairing only applies to groups of degeneracy three and up
	aa := byPair[[2]byte{'A', 'A'}]
	assert.Equal(tst, 0.9999, aa.Weight)
	assert.Equal(tst, 3, aa.MinDeg)

	// the C:A pairing is prokaryote-only
	ca := byPair[[2]byte{'C', 'A'}]
	assert.Equal(tst, 0.89, ca.Weight)
	assert.Equal(tst, 2, ca.MinDeg)
	assert.True(tst, ca.Prokaryote)
}

func TestLoadTuller(tst *testing.T) {
	coefs, err := Load(Tuller)
	require.NoError(tst, err)
	assert.Len(tst, coefs, 9)

	for _, c := range coefs {
		assert.Contains(tst, "ACGT", string(c.Anti))
		assert.Contains(tst, "ACGT", string(c.Cod))
		assert.GreaterOrEqual(tst, c.Weight, 0.0)
		assert.LessOrEqual(tst, c.Weight, 1.0)
		if c.Anti == 'G' && c.Cod == 'T' {
			assert.Equal(tst, 0.561, c.Weight)
		}
	}
}

func TestLoadUnknown(tst *testing.T) {
	_, err := Load("bogus")
	assert.Error(tst, err)
}
