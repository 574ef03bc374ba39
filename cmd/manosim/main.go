// Command manosim assembles and runs Mano Basic Computer programs.
// It provides three subcommands -- run, assemble, tui -- over a
// single flat flag set, following the teacher's flag-based style
// rather than reaching for a subcommand library.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/husmus00/mano-go/config"
	"github.com/husmus00/mano-go/diag"
	"github.com/husmus00/mano-go/machine"
	"github.com/husmus00/mano-go/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("manosim", flag.ContinueOnError)
	maxSteps := fs.Int("max-steps", 0, "step cap for the run subcommand (0 = use config default)")
	debugOutput := fs.Bool("debug", false, "echo every diagnostic entry as it's produced")
	configPath := fs.String("config", "", "path to a manosim config.toml (default: built-in defaults)")

	if err := fs.Parse(args); err != nil {
		return 2
	}
	rest := fs.Args()
	if len(rest) < 2 {
		fmt.Fprintln(os.Stderr, "usage: manosim [flags] <run|assemble|tui> <file>")
		return 2
	}

	subcommand, path := rest[0], rest[1]
	source, err := readLines(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "manosim: %v\n", err)
		return 2
	}

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.LoadFrom(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "manosim: %v\n", err)
			return 2
		}
		cfg = loaded
	}

	steps := int(cfg.Execution.MaxSteps)
	if *maxSteps > 0 {
		steps = *maxSteps
	}

	switch subcommand {
	case "run":
		return runProgram(source, steps, *debugOutput)
	case "assemble":
		return assembleProgram(source, *debugOutput)
	case "tui":
		return runTUI(source)
	default:
		fmt.Fprintf(os.Stderr, "manosim: unknown subcommand %q\n", subcommand)
		return 2
	}
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

func runProgram(source []string, maxSteps int, debugOutput bool) int {
	m := machine.New()
	primeDiag := m.Prime(source)
	printDiagnostics(primeDiag, debugOutput)
	if primeDiag.HasErrors() {
		return 1
	}

	steps, runDiag := m.Run(maxSteps)
	printDiagnostics(runDiag, debugOutput)

	if m.IsHalted() {
		fmt.Printf("Program halted successfully after %d steps\n", steps)
	} else {
		fmt.Printf("exceeded %d steps\n", maxSteps)
	}

	state := m.GetState()
	fmt.Printf("PC=%04X AC=%04X IR=%04X AR=%03X DR=%04X E=%d SC=%d halted=%v\n",
		state.ProgramCounter, state.Accumulator, state.InstructionRegister,
		state.AddressRegister, state.DataRegister, state.ExtendRegister,
		state.SequenceCounter, state.IsHalted)

	return 0
}

func assembleProgram(source []string, debugOutput bool) int {
	m := machine.New()
	d := m.Prime(source)
	printDiagnostics(d, debugOutput)

	listing := m.GetAssembledProgram()
	for addr, word := range listing {
		if word == "" {
			continue
		}
		fmt.Printf("[%04X]: %s\n", addr, word)
	}

	if d.HasErrors() {
		return 1
	}
	return 0
}

func runTUI(source []string) int {
	m := machine.New()
	if d := m.Prime(source); d.HasErrors() {
		printDiagnostics(d, true)
		return 1
	}

	debugger := tui.NewDebugger(m)
	if err := debugger.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "manosim: %v\n", err)
		return 1
	}
	return 0
}

// printDiagnostics echoes every entry when verbose, or just the
// errors otherwise -- errors always surface so assembly/runtime
// failures are visible without -debug.
func printDiagnostics(d *diag.Channel, verbose bool) {
	for _, e := range d.Entries {
		if verbose || e.Level == diag.Error {
			fmt.Fprintf(os.Stderr, "[%s] %s\n", e.Level, e.Text)
		}
	}
}
