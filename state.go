package main

import (
	"errors"
	"fmt"
	"math/cmplx"
)

type Complex = complex128

// MaxQubits caps the register size so the amplitude buffer stays addressable.
// 30 qubits is already 2^30 amplitudes (16 GiB of complex128s).
const MaxQubits = 30

// ErrInvalidDimension reports a qubit count that cannot back a state vector.
var ErrInvalidDimension = errors.New("invalid qubit count")

// StateVector holds the dense amplitudes of an n-qubit register. Index i's
// binary representation identifies the basis state, with bit k belonging to
// qubit k.
type StateVector struct {
	Amplitudes []Complex
	NumQubits  int
}

// NewStateVector allocates a 2^numQubits state vector initialized to |0…0⟩.
func NewStateVector(numQubits int) (*StateVector, error) {
	if numQubits < 1 {
		return nil, fmt.Errorf("%w: %d qubits", ErrInvalidDimension, numQubits)
	}
	if numQubits > MaxQubits {
		return nil, fmt.Errorf("%w: %d qubits exceeds the %d-qubit limit", ErrInvalidDimension, numQubits, MaxQubits)
	}
	amps := make([]Complex, 1<<numQubits)
	amps[0] = 1
	return &StateVector{Amplitudes: amps, NumQubits: numQubits}, nil
}

// Clone returns an independent copy of the state vector.
func (s *StateVector) Clone() *StateVector {
	amps := make([]Complex, len(s.Amplitudes))
	copy(amps, s.Amplitudes)
	return &StateVector{Amplitudes: amps, NumQubits: s.NumQubits}
}

// NormSquaredSum returns Σ|amp|² over all amplitudes. Gate applications are
// allowed to drift off unit norm; the measurement step renormalizes by this
// sum.
func (s *StateVector) NormSquaredSum() float64 {
	sum := 0.0
	for _, amp := range s.Amplitudes {
		sum += real(amp * cmplx.Conj(amp))
	}
	return sum
}
