package main

// Backend is the single-qubit execution strategy. Both implementations share
// the index-mapping contract defined in apply.go and must agree
// amplitude-by-amplitude within floating-point tolerance; which one runs is a
// configuration choice, never a per-gate one. Two-qubit gates always take the
// host path.
type Backend interface {
	// Name identifies the strategy in logs and the UI.
	Name() string

	// ApplySingleQubit produces a fresh state vector with the gate applied
	// to the target qubit. The target is assumed in range; bounds are the
	// parser's responsibility.
	ApplySingleQubit(s *StateVector, gate Matrix2, target int) (*StateVector, error)
}

// HostBackend runs the sweep sequentially on the calling goroutine.
type HostBackend struct{}

func (HostBackend) Name() string { return "host" }

func (HostBackend) ApplySingleQubit(s *StateVector, gate Matrix2, target int) (*StateVector, error) {
	return applySingleQubit(s, gate, target), nil
}
