package main

import (
	"fmt"
	"strings"
)

// paletteItem describes one gate in the palette overlay.
type paletteItem struct {
	name   string
	token  string
	symbol string
	arity  int
}

// paletteCategory groups related palette items.
type paletteCategory struct {
	name  string
	items []paletteItem
}

// gatePalette lists every gate the instruction grammar accepts, with the
// token to type for it.
var gatePalette = []paletteCategory{
	{
		name: "Single Qubit",
		items: []paletteItem{
			{name: "Identity", token: "id", symbol: "I", arity: 1},
			{name: "Pauli-X (NOT)", token: "x", symbol: "X", arity: 1},
			{name: "Pauli-Y", token: "y", symbol: "Y", arity: 1},
			{name: "Pauli-Z", token: "z", symbol: "Z", arity: 1},
			{name: "Hadamard", token: "h", symbol: "H", arity: 1},
			{name: "T Gate", token: "t", symbol: "T", arity: 1},
		},
	},
	{
		name: "Two Qubit",
		items: []paletteItem{
			{name: "CNOT", token: "cnot", symbol: "●─⊕", arity: 2},
			{name: "SWAP", token: "swap", symbol: "×─×", arity: 2},
		},
	},
}

// renderPalette renders the gate reference panel.
func (m Model) renderPalette() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Gates"))
	sb.WriteString("\n")

	for ci, cat := range gatePalette {
		sb.WriteString(statusStyle.Render(cat.name))
		sb.WriteString("\n")
		for _, item := range cat.items {
			sb.WriteString("  ")
			sb.WriteString(paletteNameStyle.Render(fmt.Sprintf("%-15s", item.name)))
			sb.WriteString(gateStyle.Render(fmt.Sprintf("%-5s", item.symbol)))
			if item.arity == 2 {
				sb.WriteString(dimStyle.Render(fmt.Sprintf(" %s q[0], q[1]", item.token)))
			} else {
				sb.WriteString(dimStyle.Render(fmt.Sprintf(" %s q[0]", item.token)))
			}
			sb.WriteString("\n")
		}
		if ci < len(gatePalette)-1 {
			sb.WriteString(dimStyle.Render(strings.Repeat("─", paletteW-4)))
			sb.WriteString("\n")
		}
	}
	sb.WriteString(dimStyle.Render("^G Close"))

	return paletteBorderStyle.Render(sb.String())
}
