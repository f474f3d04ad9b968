package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// focus represents which panel the UI highlights.
type focus int

const (
	focusProgram focus = iota
	focusResults
)

// Model represents the TUI application state.
type Model struct {
	circuit *Circuit
	backend Backend
	host    Backend
	accel   Backend

	input  textinput.Model
	focus  focus
	width  int
	height int

	statusMsg   string // transient feedback (parse errors, run confirmation)
	showPalette bool

	// Output of the most recent run
	finalState *StateVector
	probs      []float64
	marginals  []QubitProbability
	degenerate bool
}

func initialModel(numQubits int, host, accel Backend, useAccel bool) Model {
	ti := textinput.New()
	ti.Placeholder = "h q[0]"
	ti.CharLimit = 64
	ti.Focus()

	backend := host
	if useAccel {
		backend = accel
	}

	return Model{
		circuit: NewCircuit(numQubits),
		backend: backend,
		host:    host,
		accel:   accel,
		input:   ti,
		focus:   focusProgram,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(m.width/2-12, 20)

	case tea.KeyMsg:
		key := msg.String()
		m.statusMsg = ""

		switch key {
		case "ctrl+c":
			return m, tea.Quit

		case "ctrl+g":
			m.showPalette = !m.showPalette
			return m, nil

		case "ctrl+b":
			if m.backend == m.host {
				m.backend = m.accel
			} else {
				m.backend = m.host
			}
			m.statusMsg = fmt.Sprintf("Backend: %s", m.backend.Name())
			return m, nil

		case "ctrl+u":
			if n := len(m.circuit.Instructions); n > 0 {
				removed := m.circuit.Instructions[n-1]
				m.circuit.Instructions = m.circuit.Instructions[:n-1]
				m.statusMsg = fmt.Sprintf("Removed %s", removed)
			}
			m.invalidateResults()
			return m, nil

		case "ctrl+r":
			m.runCircuit()
			return m, nil

		case "enter":
			line := strings.TrimSpace(m.input.Value())
			if line == "" {
				return m, nil
			}
			in, err := ParseInstruction(line, m.circuit.NumQubits)
			if err != nil {
				m.statusMsg = err.Error()
				return m, nil
			}
			m.circuit.Add(in.Gate, in.Targets...)
			m.input.Reset()
			m.invalidateResults()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// runCircuit executes the current instruction list on the selected backend
// and stores the final state and probability tables.
func (m *Model) runCircuit() {
	state, err := m.circuit.Run(m.backend)
	if err != nil {
		m.statusMsg = err.Error()
		return
	}

	probs, err := Probabilities(state)
	m.degenerate = errors.Is(err, ErrDegenerateState)
	if err != nil && !m.degenerate {
		m.statusMsg = err.Error()
		return
	}
	marginals, _ := QubitProbabilities(state)

	m.finalState = state
	m.probs = probs
	m.marginals = marginals
	m.focus = focusResults
	m.statusMsg = fmt.Sprintf("Ran %d instructions on %s backend", len(m.circuit.Instructions), m.backend.Name())
}

// invalidateResults clears stale output after the program changes.
func (m *Model) invalidateResults() {
	m.finalState = nil
	m.probs = nil
	m.marginals = nil
	m.degenerate = false
	m.focus = focusProgram
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	resultsWidth := m.width / 2
	programWidth := m.width - resultsWidth - 4
	circuitHeight := max(m.height-controlsH-2, 6)

	programPanel := m.renderProgramPanel(programWidth, circuitHeight)

	var rightPanel string
	if m.showPalette {
		rightPanel = m.renderPalette()
	} else {
		rightPanel = m.renderResultsPanel(resultsWidth, circuitHeight)
	}
	controlsPanel := m.renderControlsPanel(m.width-4, controlsH-2)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, programPanel, rightPanel)
	return lipgloss.JoinVertical(lipgloss.Left, topRow, controlsPanel)
}
