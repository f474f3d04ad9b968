package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasisLabelWidth(t *testing.T) {
	// One binary digit per qubit, zero-padded to the register width.
	assert.Equal(t, "|0⟩", basisLabel(0, 1))
	assert.Equal(t, "|11⟩", basisLabel(3, 2))
	assert.Equal(t, "|0101⟩", basisLabel(5, 4))
	assert.Equal(t, "|0000000001⟩", basisLabel(1, 10))
}

func TestStateLineFormat(t *testing.T) {
	c := NewCircuit(2)
	c.Add(GateHadamard, 0)
	c.Add(GateCNOT, 0, 1)
	state, err := c.Run(HostBackend{})
	require.NoError(t, err)
	probs, err := Probabilities(state)
	require.NoError(t, err)

	// n-wide binary index, five decimals, ASCII ket.
	assert.Equal(t, "State |00>: 0.50000", stateLine(2, 0, probs[0]))
	assert.Equal(t, "State |01>: 0.00000", stateLine(2, 1, probs[1]))
	assert.Equal(t, "State |11>: 0.50000", stateLine(2, 3, probs[3]))
}
