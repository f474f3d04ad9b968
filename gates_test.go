package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGateArity(t *testing.T) {
	oneQubit := []GateKind{GateIdentity, GatePauliX, GatePauliY, GatePauliZ, GateHadamard, GateT}
	for _, g := range oneQubit {
		assert.Equal(t, 1, g.Arity(), "%s", g)
	}
	assert.Equal(t, 2, GateCNOT.Arity())
	assert.Equal(t, 2, GateSwap.Arity())
}

func TestHadamardMatrix(t *testing.T) {
	m := SingleQubitMatrix(GateHadamard)
	scale := 1 / math.Sqrt2
	assert.InDelta(t, scale, real(m[0][0]), 1e-15)
	assert.InDelta(t, scale, real(m[0][1]), 1e-15)
	assert.InDelta(t, scale, real(m[1][0]), 1e-15)
	assert.InDelta(t, -scale, real(m[1][1]), 1e-15)
}

func TestTGatePhaseApprox(t *testing.T) {
	// The T phase entry is a fixed approximation of e^{iπ/4}, not the exact
	// transcendental value.
	m := SingleQubitMatrix(GateT)
	assert.Equal(t, Complex(1), m[0][0])
	assert.Equal(t, Complex(0), m[0][1])
	assert.Equal(t, Complex(0), m[1][0])
	assert.InDelta(t, math.Cos(math.Pi/4), real(m[1][1]), 1e-4)
	assert.InDelta(t, math.Sin(math.Pi/4), imag(m[1][1]), 1e-4)
}

func TestCNOTMatrixPermutation(t *testing.T) {
	// Basis ordering is (control_bit<<1 | target_bit): rows 0 and 1 are
	// identity, rows 2 and 3 exchange.
	m := TwoQubitMatrix(GateCNOT)
	want := [4]int{0, 1, 3, 2}
	for row, col := range want {
		for c := 0; c < 4; c++ {
			expected := Complex(0)
			if c == col {
				expected = 1
			}
			assert.Equal(t, expected, m[row][c], "row=%d col=%d", row, c)
		}
	}
}

func TestSwapMatrixPermutation(t *testing.T) {
	m := TwoQubitMatrix(GateSwap)
	want := [4]int{0, 2, 1, 3}
	for row, col := range want {
		for c := 0; c < 4; c++ {
			expected := Complex(0)
			if c == col {
				expected = 1
			}
			assert.Equal(t, expected, m[row][c], "row=%d col=%d", row, c)
		}
	}
}

func TestMatrixLookupArityMismatch(t *testing.T) {
	assert.Panics(t, func() { SingleQubitMatrix(GateCNOT) })
	assert.Panics(t, func() { SingleQubitMatrix(GateSwap) })
	assert.Panics(t, func() { TwoQubitMatrix(GateHadamard) })
}

func TestGateString(t *testing.T) {
	assert.Equal(t, "H", GateHadamard.String())
	assert.Equal(t, "CNOT", GateCNOT.String())
	assert.Equal(t, "ID", GateIdentity.String())
}
