package main

// Host-path gate application. Each transform writes into a fresh amplitude
// buffer: every output index reads two (or four) input indices, so in-place
// updates would race against their own reads.

// applySingleQubit applies a 2×2 gate to the target qubit and returns the new
// state vector. For every output index i with b = bit target of i, the new
// amplitude is gate[b][0]·amp(i with bit cleared) + gate[b][1]·amp(i with bit
// set). Always a full O(2^n) sweep.
func applySingleQubit(s *StateVector, gate Matrix2, target int) *StateVector {
	n := len(s.Amplitudes)
	bit := 1 << target
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		b := (i >> target) & 1
		newAmps[i] = gate[b][0]*s.Amplitudes[i&^bit] + gate[b][1]*s.Amplitudes[i|bit]
	}
	return &StateVector{Amplitudes: newAmps, NumQubits: s.NumQubits}
}

// applyTwoQubit applies a 4×4 gate to the ordered qubit pair (q0, q1) and
// returns the new state vector. Bits q0 and q1 of each index form the 2-bit
// row (q0 is the high bit); the column sweeps the four replacements of that
// bit pair. q0 and q1 must be distinct, which the parser guarantees.
func applyTwoQubit(s *StateVector, gate Matrix4, q0, q1 int) *StateVector {
	n := len(s.Amplitudes)
	b0 := 1 << q0
	b1 := 1 << q1
	newAmps := make([]Complex, n)
	for i := 0; i < n; i++ {
		row := ((i>>q0)&1)<<1 | (i>>q1)&1
		base := i &^ b0 &^ b1
		var acc Complex
		for c := 0; c < 4; c++ {
			src := base | (c>>1)<<q0 | (c&1)<<q1
			acc += gate[row][c] * s.Amplitudes[src]
		}
		newAmps[i] = acc
	}
	return &StateVector{Amplitudes: newAmps, NumQubits: s.NumQubits}
}
