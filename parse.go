package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Pre-compiled regexps for instruction parsing.
var (
	singleTargetRegex = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\];?$`)
	pairTargetRegex   = regexp.MustCompile(`^(\w+)\s+q\[(\d+)\]\s*,\s*q\[(\d+)\];?$`)
)

// ErrOutOfRangeTarget reports a qubit operand outside [0, numQubits). The
// parser owns this check; the applicator assumes it already passed.
var ErrOutOfRangeTarget = errors.New("target qubit out of range")

// gateNames maps instruction tokens to gate kinds. Matching is
// case-insensitive.
var gateNames = map[string]GateKind{
	"id":   GateIdentity,
	"x":    GatePauliX,
	"y":    GatePauliY,
	"z":    GatePauliZ,
	"h":    GateHadamard,
	"t":    GateT,
	"cnot": GateCNOT,
	"swap": GateSwap,
}

// ParseInstruction parses one instruction line such as "h q[0]" or
// "cnot q[0], q[1]" and validates gate name, arity and target bounds. For
// CNOT the first operand is the control; for SWAP the order carries no
// meaning but is kept as written.
func ParseInstruction(line string, numQubits int) (Instruction, error) {
	line = strings.TrimSpace(line)

	if matches := pairTargetRegex.FindStringSubmatch(line); matches != nil {
		gate, ok := gateNames[strings.ToLower(matches[1])]
		if !ok {
			return Instruction{}, fmt.Errorf("unknown gate %q", matches[1])
		}
		if gate.Arity() != 2 {
			return Instruction{}, fmt.Errorf("gate %s takes 1 qubit, got 2", gate)
		}
		q0, _ := strconv.Atoi(matches[2])
		q1, _ := strconv.Atoi(matches[3])
		if q0 >= numQubits || q1 >= numQubits {
			return Instruction{}, fmt.Errorf("%w: %s on q[%d], q[%d] with %d qubits", ErrOutOfRangeTarget, gate, q0, q1, numQubits)
		}
		if q0 == q1 {
			return Instruction{}, fmt.Errorf("gate %s needs two distinct qubits, got q[%d] twice", gate, q0)
		}
		return Instruction{Gate: gate, Targets: []int{q0, q1}}, nil
	}

	if matches := singleTargetRegex.FindStringSubmatch(line); matches != nil {
		gate, ok := gateNames[strings.ToLower(matches[1])]
		if !ok {
			return Instruction{}, fmt.Errorf("unknown gate %q", matches[1])
		}
		if gate.Arity() != 1 {
			return Instruction{}, fmt.Errorf("gate %s takes 2 qubits, got 1", gate)
		}
		target, _ := strconv.Atoi(matches[2])
		if target >= numQubits {
			return Instruction{}, fmt.Errorf("%w: %s on q[%d] with %d qubits", ErrOutOfRangeTarget, gate, target, numQubits)
		}
		return Instruction{Gate: gate, Targets: []int{target}}, nil
	}

	return Instruction{}, fmt.Errorf("invalid instruction %q", line)
}

// ParseProgram reads one instruction per line, skipping blank lines and
// "//" comments, and returns the validated instruction list.
func ParseProgram(r io.Reader, numQubits int) ([]Instruction, error) {
	var instructions []Instruction
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		in, err := ParseInstruction(line, numQubits)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		instructions = append(instructions, in)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return instructions, nil
}
