package main

import (
	"fmt"
	"strings"
)

// ──────────────────────────── Rendering helpers ────────────────────────────

// padCenter centres a string within the given width.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	total := width - len(s)
	left := total / 2
	right := total - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}

// basisLabel formats basis state i as a ket with one binary digit per qubit.
func basisLabel(i, numQubits int) string {
	return fmt.Sprintf("|%0*b⟩", numQubits, i)
}

// formatAmplitude formats a complex amplitude as "a+bi" with fixed precision.
func formatAmplitude(amp Complex) string {
	return fmt.Sprintf("%+.4f%+.4fi", real(amp), imag(amp))
}

// renderBar renders a probability as a filled bar of the given width.
func renderBar(p float64, width int) string {
	filled := int(p*float64(width) + 0.5)
	if filled > width {
		filled = width
	}
	return barStyle.Render(strings.Repeat("█", filled)) + dimStyle.Render(strings.Repeat("░", width-filled))
}

// ──────────────────────────── Panel rendering ────────────────────────────

// renderProgramPanel renders the instruction listing panel.
func (m Model) renderProgramPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Program"))
	fmt.Fprintf(&sb, "  %s", dimStyle.Render(fmt.Sprintf("%d qubits · %s backend", m.circuit.NumQubits, m.backend.Name())))
	sb.WriteString("\n\n")

	if len(m.circuit.Instructions) == 0 {
		sb.WriteString(dimStyle.Render("  (no instructions yet)"))
		sb.WriteString("\n")
	}
	for i, in := range m.circuit.Instructions {
		fmt.Fprintf(&sb, "  %s %s\n",
			dimStyle.Render(fmt.Sprintf("%3d", i)),
			gateStyle.Render(in.String()))
	}

	sb.WriteString("\n")
	sb.WriteString(qubitLabelStyle.Render("> "))
	sb.WriteString(m.input.View())
	if m.statusMsg != "" {
		sb.WriteString("\n\n  ")
		sb.WriteString(statusStyle.Render(m.statusMsg))
	}

	return programStyle.Width(width).Height(height).Render(sb.String())
}

// renderResultsPanel renders final amplitudes, the basis-state probability
// table and the per-qubit marginals.
func (m Model) renderResultsPanel(width, height int) string {
	var sb strings.Builder

	title := "State"
	if m.focus == focusResults {
		title += " [FINAL]"
	}
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n\n")

	if m.finalState == nil {
		sb.WriteString(dimStyle.Render("  Run the circuit (^R) to see amplitudes."))
		return resultsStyle.Width(width).Height(height).Render(sb.String())
	}

	if m.degenerate {
		sb.WriteString(errorStyle.Render("  degenerate state: norm too small to normalize"))
		sb.WriteString("\n\n")
	}

	rows := len(m.probs)
	elided := false
	if rows > maxRows {
		rows = maxRows
		elided = true
	}
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&sb, "  %s %s %s %s\n",
			qubitLabelStyle.Render(basisLabel(i, m.finalState.NumQubits)),
			padCenter(formatAmplitude(m.finalState.Amplitudes[i]), amplitudeW),
			renderBar(m.probs[i], barW),
			dimStyle.Render(fmt.Sprintf("%.5f", m.probs[i])))
	}
	if elided {
		fmt.Fprintf(&sb, "  %s\n", dimStyle.Render(fmt.Sprintf("… %d more basis states", len(m.probs)-maxRows)))
	}

	if len(m.marginals) > 0 {
		sb.WriteString("\n")
		sb.WriteString(statusStyle.Render("  Per-qubit P(1)"))
		sb.WriteString("\n")
		for q, qp := range m.marginals {
			fmt.Fprintf(&sb, "  %s %s %s\n",
				qubitLabelStyle.Render(fmt.Sprintf("q[%d]", q)),
				renderBar(qp.Prob1, barW),
				dimStyle.Render(fmt.Sprintf("%.5f", qp.Prob1)))
		}
	}

	return resultsStyle.Width(width).Height(height).Render(sb.String())
}

// renderControlsPanel renders the bottom help/controls bar.
func (m Model) renderControlsPanel(width, height int) string {
	var sb strings.Builder

	sb.WriteString(statusStyle.Render("Program:  "))
	sb.WriteString("Type an instruction (e.g. h q[0], cnot q[0], q[1]) and press Enter\n")

	sb.WriteString(statusStyle.Render("Actions:  "))
	sb.WriteString("^R Run  ^U Undo last  ^B Toggle backend  ^G Gates  ^C Quit")

	return controlsStyle.Width(width).Height(height).Render(sb.String())
}
