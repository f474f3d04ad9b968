package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	flagQubits  int
	flagBackend string
	flagWorkers int
	flagScript  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "qvecsim",
	Short: "Terminal state-vector quantum circuit simulator",
	Long: `qvecsim simulates an n-qubit register as a dense complex state vector,
applying single- and two-qubit gates in submission order and reporting the
final amplitudes and basis-state probabilities.

Without --script it opens an interactive TUI for building and running a
circuit; with --script it runs the instruction file and prints the
probability table.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().IntVarP(&flagQubits, "qubits", "n", 2, "number of qubits in the register")
	rootCmd.Flags().StringVarP(&flagBackend, "backend", "b", "host", "single-qubit execution backend (host or accel)")
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "accelerator execution units (0 = one per CPU)")
	rootCmd.Flags().StringVarP(&flagScript, "script", "s", "", `instruction file to run without the TUI ("-" for stdin)`)
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log each gate application")
}

func run(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		log.SetLevel(log.DebugLevel)
	}

	if flagQubits < 1 || flagQubits > MaxQubits {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidDimension, flagQubits, MaxQubits)
	}

	host := HostBackend{}
	accel := NewAccelBackend(flagWorkers)
	defer accel.Close()

	var backend Backend
	switch flagBackend {
	case "host":
		backend = host
	case "accel":
		backend = accel
	default:
		return fmt.Errorf("unknown backend %q (want host or accel)", flagBackend)
	}

	if flagScript != "" {
		return runScript(backend)
	}

	// Stderr writes would draw over the altscreen, so gate logging goes to a
	// file under --verbose and is dropped otherwise.
	if flagVerbose {
		f, err := tea.LogToFile("qvecsim.log", "debug")
		if err != nil {
			return err
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(initialModel(flagQubits, host, accel, flagBackend == "accel"), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// runScript parses an instruction file, runs it and prints the probability
// table in the same "State |…>: p" layout the interactive view summarizes.
func runScript(backend Backend) error {
	var r io.Reader
	if flagScript == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(flagScript)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	instructions, err := ParseProgram(r, flagQubits)
	if err != nil {
		return err
	}

	circuit := NewCircuit(flagQubits)
	circuit.Instructions = instructions

	log.Info("starting circuit execution",
		"qubits", flagQubits, "instructions", len(instructions), "backend", backend.Name())
	state, err := circuit.Run(backend)
	if err != nil {
		return err
	}

	probs, err := Probabilities(state)
	if errors.Is(err, ErrDegenerateState) {
		log.Warn("degenerate state: norm too small to normalize, probabilities are all zero")
	} else if err != nil {
		return err
	}

	fmt.Println("Final probabilities:")
	for i, p := range probs {
		fmt.Println(stateLine(flagQubits, i, p))
	}
	return nil
}

// stateLine formats one probability-table row, the binary index zero-padded
// to the register width.
func stateLine(numQubits, index int, p float64) string {
	return fmt.Sprintf("State |%0*b>: %.5f", numQubits, index, p)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
