package main

import (
	"fmt"
	"math"
)

// GateKind identifies one of the fixed gates the simulator supports.
type GateKind int

const (
	GateIdentity GateKind = iota
	GatePauliX
	GatePauliY
	GatePauliZ
	GateHadamard
	GateT
	GateCNOT
	GateSwap
)

// Arity returns how many qubit operands the gate takes.
func (g GateKind) Arity() int {
	switch g {
	case GateCNOT, GateSwap:
		return 2
	default:
		return 1
	}
}

func (g GateKind) String() string {
	switch g {
	case GateIdentity:
		return "ID"
	case GatePauliX:
		return "X"
	case GatePauliY:
		return "Y"
	case GatePauliZ:
		return "Z"
	case GateHadamard:
		return "H"
	case GateT:
		return "T"
	case GateCNOT:
		return "CNOT"
	case GateSwap:
		return "SWAP"
	default:
		return "?"
	}
}

// Matrix2 is a dense 2×2 single-qubit gate matrix.
type Matrix2 [2][2]Complex

// Matrix4 is a dense 4×4 two-qubit gate matrix over the combined
// (high bit, low bit) 2-bit index space.
type Matrix4 [4][4]Complex

// tPhase approximates e^{iπ/4} to four decimal places. The truncation means
// T is not exactly unitary; measurement renormalizes, so the drift never
// reaches the probability table.
const tPhase = complex(0.7071, 0.7071)

var (
	identityMatrix = Matrix2{
		{1, 0},
		{0, 1},
	}
	pauliXMatrix = Matrix2{
		{0, 1},
		{1, 0},
	}
	pauliYMatrix = Matrix2{
		{0, -1i},
		{1i, 0},
	}
	pauliZMatrix = Matrix2{
		{1, 0},
		{0, -1},
	}
	hadamardMatrix = Matrix2{
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
	}
	tMatrix = Matrix2{
		{1, 0},
		{0, tPhase},
	}

	// Permutation matrices with basis ordering (control_bit<<1 | target_bit).
	cnotMatrix = Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 0},
	}
	swapMatrix = Matrix4{
		{1, 0, 0, 0},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 1},
	}
)

// SingleQubitMatrix returns the fixed 2×2 unitary for an arity-1 gate kind.
// A two-qubit kind is a routing bug and panics.
func SingleQubitMatrix(g GateKind) Matrix2 {
	switch g {
	case GateIdentity:
		return identityMatrix
	case GatePauliX:
		return pauliXMatrix
	case GatePauliY:
		return pauliYMatrix
	case GatePauliZ:
		return pauliZMatrix
	case GateHadamard:
		return hadamardMatrix
	case GateT:
		return tMatrix
	default:
		panic(fmt.Sprintf("gate %s is not single-qubit", g))
	}
}

// TwoQubitMatrix returns the fixed 4×4 unitary for an arity-2 gate kind.
// A single-qubit kind is a routing bug and panics.
func TwoQubitMatrix(g GateKind) Matrix4 {
	switch g {
	case GateCNOT:
		return cnotMatrix
	case GateSwap:
		return swapMatrix
	default:
		panic(fmt.Sprintf("gate %s is not two-qubit", g))
	}
}
