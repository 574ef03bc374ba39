// Package tui provides manosim's interactive step debugger, a
// tview/tcell text UI trimmed from the teacher's six-panel layout
// down to the three views a Mano machine has content for: registers,
// memory, and diagnostics output, plus a command line.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/husmus00/mano-go/diag"
	"github.com/husmus00/mano-go/machine"
)

// maxOutputEntries bounds the diagnostics buffer the output panel
// retains, mirroring the original mano-tui's capped message buffer.
const maxOutputEntries = 100

// Debugger is manosim's step debugger: a *machine.Machine wrapped in
// a three-panel tview layout plus a command input.
type Debugger struct {
	Machine *machine.Machine
	App     *tview.Application

	RegisterView *tview.TextView
	MemoryView   *tview.TextView
	OutputView   *tview.TextView
	CommandInput *tview.InputField

	output []string
}

// NewDebugger wraps an already-primed (or not yet primed) machine in
// a new TUI.
func NewDebugger(m *machine.Machine) *Debugger {
	d := &Debugger{
		Machine: m,
		App:     tview.NewApplication(),
	}
	d.initializeViews()
	d.buildLayout()
	return d
}

func (d *Debugger) initializeViews() {
	d.RegisterView = tview.NewTextView().SetDynamicColors(true)
	d.RegisterView.SetBorder(true).SetTitle(" Registers ")

	d.MemoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	d.MemoryView.SetBorder(true).SetTitle(" Memory ")

	d.OutputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(true)
	d.OutputView.SetBorder(true).SetTitle(" Output ")

	d.CommandInput = tview.NewInputField().SetLabel("> ").SetFieldWidth(0)
	d.CommandInput.SetBorder(true).SetTitle(" Command ")
	d.CommandInput.SetDoneFunc(d.handleCommand)
}

func (d *Debugger) buildLayout() {
	right := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(d.RegisterView, 10, 0, false).
		AddItem(d.MemoryView, 0, 1, false)

	mainContent := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(right, 0, 1, false).
		AddItem(d.OutputView, 0, 1, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(mainContent, 0, 4, false).
		AddItem(d.CommandInput, 3, 0, true)

	d.App.SetRoot(layout, true).SetFocus(d.CommandInput)
}

// Run starts the tview event loop. It blocks until the user quits.
func (d *Debugger) Run() error {
	d.RefreshAll()
	return d.App.Run()
}

func (d *Debugger) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := strings.TrimSpace(d.CommandInput.GetText())
	d.CommandInput.SetText("")
	if cmd == "" {
		return
	}
	d.executeCommand(cmd)
}

// executeCommand dispatches step/run/reset/break/quit, grounded on
// the teacher's command-input idiom of clearing, executing, then
// refreshing every panel.
func (d *Debugger) executeCommand(cmd string) {
	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return
	}

	var dg *diag.Channel
	switch strings.ToLower(fields[0]) {
	case "step":
		dg = d.Machine.Tick()
	case "run":
		steps, r := d.Machine.Run(machine.DefaultMaxSteps)
		dg = r
		d.appendOutput(fmt.Sprintf("ran %d steps", steps))
	case "reset":
		dg = d.Machine.Reset()
	case "break":
		if len(fields) < 2 {
			d.appendOutput("usage: break <addr>")
			d.RefreshAll()
			return
		}
		addr, err := strconv.ParseUint(fields[1], 16, 16)
		if err != nil {
			d.appendOutput(fmt.Sprintf("invalid address %q", fields[1]))
			d.RefreshAll()
			return
		}
		d.Machine.AddBreakpoint(uint16(addr))
		d.appendOutput(fmt.Sprintf("breakpoint set at %04X", addr))
	case "quit":
		d.App.Stop()
		return
	default:
		d.appendOutput(fmt.Sprintf("unknown command %q", fields[0]))
	}

	if dg != nil {
		for _, e := range dg.Entries {
			d.appendOutput(fmt.Sprintf("[%s] %s", e.Level, e.Text))
		}
	}
	d.RefreshAll()
}

func (d *Debugger) appendOutput(line string) {
	d.output = append(d.output, line)
	if len(d.output) > maxOutputEntries {
		d.output = d.output[len(d.output)-maxOutputEntries:]
	}
}

// RefreshAll redraws every panel from current machine state.
func (d *Debugger) RefreshAll() {
	d.updateRegisterView()
	d.updateMemoryView()
	d.updateOutputView()
	d.App.Draw()
}

func (d *Debugger) updateRegisterView() {
	s := d.Machine.GetState()
	text := fmt.Sprintf(
		"[yellow]PC[white] %04X  [yellow]AC[white] %04X  [yellow]IR[white] %04X\n"+
			"[yellow]AR[white] %03X   [yellow]DR[white] %04X  [yellow]E[white]  %d\n"+
			"[yellow]SC[white] %d     halted=%v running=%v",
		s.ProgramCounter, s.Accumulator, s.InstructionRegister,
		s.AddressRegister, s.DataRegister, s.ExtendRegister,
		s.SequenceCounter, s.IsHalted, s.IsRunning,
	)
	d.RegisterView.SetText(text)
}

func (d *Debugger) updateMemoryView() {
	s := d.Machine.GetState()
	var b strings.Builder
	for row := 0; row < len(s.MemorySnapshot); row += 8 {
		end := row + 8
		if end > len(s.MemorySnapshot) {
			end = len(s.MemorySnapshot)
		}
		b.WriteString(fmt.Sprintf("%03X: ", row))
		for addr := row; addr < end; addr++ {
			marker := " "
			if uint16(addr) == s.AddressRegister {
				marker = "[yellow]*[white]"
			}
			b.WriteString(fmt.Sprintf("%04X%s ", s.MemorySnapshot[addr], marker))
		}
		b.WriteString("\n")
	}
	d.MemoryView.SetText(b.String())
}

func (d *Debugger) updateOutputView() {
	d.OutputView.SetText(strings.Join(d.output, "\n"))
	d.OutputView.ScrollToEnd()
}
