package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStateVector(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8} {
		s, err := NewStateVector(n)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, s.Amplitudes, 1<<n)
		assert.Equal(t, n, s.NumQubits)

		assert.Equal(t, Complex(1), s.Amplitudes[0])
		for i := 1; i < len(s.Amplitudes); i++ {
			assert.Equal(t, Complex(0), s.Amplitudes[i], "n=%d index=%d", n, i)
		}
	}
}

func TestNewStateVectorInvalidDimension(t *testing.T) {
	for _, n := range []int{0, -1, MaxQubits + 1, 64} {
		_, err := NewStateVector(n)
		require.ErrorIs(t, err, ErrInvalidDimension, "n=%d", n)
	}
}

func TestClone(t *testing.T) {
	s, err := NewStateVector(2)
	require.NoError(t, err)

	c := s.Clone()
	c.Amplitudes[0] = 0
	c.Amplitudes[3] = 1

	assert.Equal(t, Complex(1), s.Amplitudes[0], "clone must not alias the original")
	assert.Equal(t, Complex(0), s.Amplitudes[3])
}

func TestNormSquaredSum(t *testing.T) {
	s, err := NewStateVector(3)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s.NormSquaredSum(), 1e-12)

	s.Amplitudes[0] = complex(0, 0.5)
	s.Amplitudes[5] = complex(0.5, -0.5)
	assert.InDelta(t, 0.25+0.5, s.NormSquaredSum(), 1e-12)
}
