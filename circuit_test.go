package main

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunEmptyCircuit(t *testing.T) {
	c := NewCircuit(2)

	state, err := c.Run(HostBackend{})
	require.NoError(t, err)

	assert.Equal(t, Complex(1), state.Amplitudes[0])
	for i := 1; i < 4; i++ {
		assert.Equal(t, Complex(0), state.Amplitudes[i])
	}
}

func TestRunBellPair(t *testing.T) {
	c := NewCircuit(2)
	c.Add(GateHadamard, 0)
	c.Add(GateCNOT, 0, 1)

	state, err := c.Run(HostBackend{})
	require.NoError(t, err)

	probs, err := Probabilities(state)
	require.NoError(t, err)

	assert.InDelta(t, 0.5, probs[0], 1e-9)
	assert.InDelta(t, 0.0, probs[1], 1e-9)
	assert.InDelta(t, 0.0, probs[2], 1e-9)
	assert.InDelta(t, 0.5, probs[3], 1e-9)
}

func TestRunPreservesOrder(t *testing.T) {
	hx := NewCircuit(1)
	hx.Add(GateHadamard, 0)
	hx.Add(GatePauliX, 0)

	xh := NewCircuit(1)
	xh.Add(GatePauliX, 0)
	xh.Add(GateHadamard, 0)

	s1, err := hx.Run(HostBackend{})
	require.NoError(t, err)
	s2, err := xh.Run(HostBackend{})
	require.NoError(t, err)

	// H then X leaves (1/√2)(|0⟩+|1⟩) while X then H gives (1/√2)(|0⟩-|1⟩).
	scale := 1 / math.Sqrt2
	assert.InDelta(t, scale, real(s1.Amplitudes[1]), 1e-9)
	assert.InDelta(t, -scale, real(s2.Amplitudes[1]), 1e-9)
}

func TestRunSnapshotSemantics(t *testing.T) {
	c := NewCircuit(1)
	c.Add(GateHadamard, 0)

	first, err := c.Run(HostBackend{})
	require.NoError(t, err)
	firstCopy := first.Clone()

	// Adding and re-running must not mutate the already-returned state.
	c.Add(GatePauliX, 0)
	_, err = c.Run(HostBackend{})
	require.NoError(t, err)

	for i := range firstCopy.Amplitudes {
		assert.Equal(t, firstCopy.Amplitudes[i], first.Amplitudes[i])
	}
}

func TestRunOnAccelBackend(t *testing.T) {
	accel := NewAccelBackend(2)
	defer accel.Close()

	c := NewCircuit(2)
	c.Add(GateHadamard, 0)
	c.Add(GateCNOT, 0, 1)
	c.Add(GateT, 1)

	hostState, err := c.Run(HostBackend{})
	require.NoError(t, err)
	accelState, err := c.Run(accel)
	require.NoError(t, err)

	for i := range hostState.Amplitudes {
		assert.InDelta(t, real(hostState.Amplitudes[i]), real(accelState.Amplitudes[i]), 1e-6)
		assert.InDelta(t, imag(hostState.Amplitudes[i]), imag(accelState.Amplitudes[i]), 1e-6)
	}
}

func TestRunSurfacesAcceleratorFailure(t *testing.T) {
	accel := NewAccelBackend(2)
	accel.Close()

	c := NewCircuit(1)
	c.Add(GateHadamard, 0)

	_, err := c.Run(accel)
	require.ErrorIs(t, err, ErrAcceleratorUnavailable)
}

func TestRunGateLoggingRedirectable(t *testing.T) {
	// The TUI points the logger away from stderr before running; Run must
	// honor the configured output rather than writing to stderr directly.
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetLevel(log.DebugLevel)
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
	}()

	c := NewCircuit(1)
	c.Add(GateHadamard, 0)
	_, err := c.Run(HostBackend{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "applying gate")
}

func TestInstructionString(t *testing.T) {
	assert.Equal(t, "H q[0]", Instruction{Gate: GateHadamard, Targets: []int{0}}.String())
	assert.Equal(t, "CNOT q[1], q[0]", Instruction{Gate: GateCNOT, Targets: []int{1, 0}}.String())
}
