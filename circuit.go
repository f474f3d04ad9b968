package main

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Instruction pairs a gate with its qubit operands. The operand count always
// matches the gate's arity and every index is in [0, NumQubits); the parser
// enforces both before an instruction is built.
type Instruction struct {
	Gate    GateKind
	Targets []int
}

func (in Instruction) String() string {
	if in.Gate.Arity() == 2 {
		return fmt.Sprintf("%s q[%d], q[%d]", in.Gate, in.Targets[0], in.Targets[1])
	}
	return fmt.Sprintf("%s q[%d]", in.Gate, in.Targets[0])
}

// Circuit owns an ordered instruction list over a fixed-size qubit register.
type Circuit struct {
	NumQubits    int
	Instructions []Instruction
}

func NewCircuit(numQubits int) *Circuit {
	return &Circuit{NumQubits: numQubits}
}

// Add appends an instruction to the circuit.
func (c *Circuit) Add(gate GateKind, targets ...int) {
	c.Instructions = append(c.Instructions, Instruction{Gate: gate, Targets: targets})
}

// Run builds the initial |0…0⟩ state and folds the instruction list over it
// left-to-right, in submission order. Single-qubit gates go through the given
// backend; two-qubit gates always run on the host path. Each application
// produces a fresh state vector, so the returned result is unaffected by
// instructions added afterwards.
func (c *Circuit) Run(backend Backend) (*StateVector, error) {
	state, err := NewStateVector(c.NumQubits)
	if err != nil {
		return nil, err
	}

	for _, in := range c.Instructions {
		log.Debug("applying gate", "gate", in.Gate, "qubits", in.Targets, "backend", backend.Name())
		switch in.Gate.Arity() {
		case 1:
			state, err = backend.ApplySingleQubit(state, SingleQubitMatrix(in.Gate), in.Targets[0])
			if err != nil {
				return nil, fmt.Errorf("apply %s: %w", in, err)
			}
		case 2:
			state = applyTwoQubit(state, TwoQubitMatrix(in.Gate), in.Targets[0], in.Targets[1])
		}
	}
	return state, nil
}
