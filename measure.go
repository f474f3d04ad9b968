package main

import (
	"errors"
	"math/cmplx"
)

// degenerateNorm is the smallest total squared norm that can be safely
// renormalized.
const degenerateNorm = 1e-12

// ErrDegenerateState reports a state whose norm is too small to normalize.
var ErrDegenerateState = errors.New("state norm too small to normalize")

// Probabilities converts a state vector into a normalized distribution over
// basis states. On success the table sums to 1 within floating-point
// tolerance and contains no negative entries. A norm below degenerateNorm
// yields an all-zero table alongside ErrDegenerateState instead of dividing
// by a near-zero sum.
func Probabilities(s *StateVector) ([]float64, error) {
	probs := make([]float64, len(s.Amplitudes))
	norm := s.NormSquaredSum()
	if norm < degenerateNorm {
		return probs, ErrDegenerateState
	}
	for i, amp := range s.Amplitudes {
		probs[i] = real(amp*cmplx.Conj(amp)) / norm
	}
	return probs, nil
}

// QubitProbability is the marginal distribution of a single qubit.
type QubitProbability struct {
	Prob0 float64
	Prob1 float64
}

// QubitProbabilities returns the per-qubit marginals of the normalized
// distribution, shown alongside the basis-state table in the UI.
func QubitProbabilities(s *StateVector) ([]QubitProbability, error) {
	probs, err := Probabilities(s)
	if err != nil {
		return make([]QubitProbability, s.NumQubits), err
	}
	marginals := make([]QubitProbability, s.NumQubits)
	for i, p := range probs {
		for q := 0; q < s.NumQubits; q++ {
			if i&(1<<q) != 0 {
				marginals[q].Prob1 += p
			} else {
				marginals[q].Prob0 += p
			}
		}
	}
	return marginals, nil
}
