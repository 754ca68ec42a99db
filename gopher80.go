// This file is part of Gopher80.
//
// Gopher80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher80.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/jetsetilly/gopher80/cpm"
	"github.com/jetsetilly/gopher80/curated"
	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/hardware/cpu/execution"
	"github.com/jetsetilly/gopher80/hardware/memory"
	"github.com/jetsetilly/gopher80/logger"
	"github.com/jetsetilly/gopher80/modalflag"
	"github.com/jetsetilly/gopher80/performance"
	"github.com/jetsetilly/gopher80/performance/limiter"
	"github.com/jetsetilly/gopher80/statsview"
	"github.com/jetsetilly/gopher80/terminal/easyterm"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// stop handling interrupt signals in the main thread. used when the mode
	// being run handles the interrupt itself
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

type mainSync struct {
	state chan stateRequest
}

// options that apply to every mode.
type globals struct {
	memviz string
}

func main() {
	sync := &mainSync{
		state: make(chan stateRequest),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// ctrl-c default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync)

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Stop(intChan)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}
		}
	}

	os.Exit(exitVal)
}

func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memvizFile := md.AddString("memviz", "", "write a graphviz representation of the CPU to file on exit")

	md.AddSubModes("RUN", "CPM", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	g := globals{memviz: *memvizFile}

	// set log echo. colorize output if stderr is a terminal
	if *log {
		if term.IsTerminal(int(os.Stderr.Fd())) {
			logger.SetEcho(logger.NewColorizer(os.Stderr), true)
		} else {
			logger.SetEcho(os.Stderr, true)
		}
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			stop := statsview.Launch(os.Stdout)
			defer stop()
		} else {
			fmt.Println("! stats server not available in this build")
		}
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, g)

	case "CPM":
		err = runCPM(md, sync, g)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// loadProgram reads the file named by the single remaining argument.
func loadProgram(md *modalflag.Modes) ([]uint8, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("program file required for %s mode", md)
	case 1:
		return os.ReadFile(md.GetArg(0))
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}
}

// newThrottle returns a clock limiter if mhz is greater than zero.
func newThrottle(mhz float64) (*limiter.ClockLimiter, error) {
	if mhz <= 0 {
		return nil, nil
	}
	return limiter.NewClockLimiter(mhz, limiter.DefaultSlice)
}

// tracer writes each instruction and the state of the registers after it.
type tracer struct {
	out    io.Writer
	result *color.Color
	regs   *color.Color
}

func newTracer(out io.Writer) *tracer {
	return &tracer{
		out:    out,
		result: color.New(color.FgCyan),
		regs:   color.New(color.FgWhite, color.Faint),
	}
}

func (tr *tracer) trace(r execution.Result, mc *cpu.CPU) {
	tr.result.Fprintf(tr.out, "%-36s", r.String())
	tr.regs.Fprintln(tr.out, mc.Registers.String())
}

// writeMemviz writes the graph of the CPU type to the named file.
func writeMemviz(filename string, mc *cpu.CPU) error {
	if filename == "" {
		return nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	memviz.Map(f, mc)
	return nil
}

func run(md *modalflag.Modes, g globals) error {
	md.NewMode()
	md.AdditionalHelp("run a raw binary until it halts")

	origin := md.AddAddress("origin", 0x0000, "load address and execution start address")
	maxCycles := md.AddUint64("maxcycles", 0, "stop after number of cycles (0 for no limit)")
	trace := md.AddBool("trace", false, "trace every instruction")
	clock := md.AddFloat64("clock", 0, "limit speed of the CPU to MHz value (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	mem := memory.NewMemory()
	if err := mem.Load(*origin, program); err != nil {
		return err
	}

	mc := cpu.NewCPU(mem)
	mc.PC = *origin
	defer func() {
		if err := writeMemviz(g.memviz, mc); err != nil {
			logger.Log(logger.Allow, "memviz", err)
		}
	}()

	throttle, err := newThrottle(*clock)
	if err != nil {
		return err
	}
	if throttle != nil {
		defer throttle.End()
	}

	var tr *tracer
	if *trace {
		tr = newTracer(md.Output)
	}

	for !mc.Halted {
		cycles, err := mc.Step()
		if err != nil {
			return err
		}
		if tr != nil {
			tr.trace(mc.LastResult, mc)
		}
		if throttle != nil {
			throttle.Consume(cycles)
		}
		if *maxCycles > 0 && mc.Cycles >= *maxCycles {
			return fmt.Errorf("cycle limit reached (%d cycles)", mc.Cycles)
		}
	}

	fmt.Fprintf(md.Output, "halted at %#04x after %d cycles\n", mc.PC-1, mc.Cycles)
	fmt.Fprintln(md.Output, mc.String())

	return nil
}

func runCPM(md *modalflag.Modes, sync *mainSync, g globals) error {
	md.NewMode()
	md.AdditionalHelp("run a CP/M .COM program with console BDOS calls")

	maxCycles := md.AddUint64("maxcycles", 0, "stop after number of cycles (0 for no limit)")
	trace := md.AddBool("trace", false, "trace every instruction")
	clock := md.AddFloat64("clock", 0, "limit speed of the CPU to MHz value (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	m, err := cpm.NewMachine(program, os.Stdout, os.Stdin)
	if err != nil {
		return err
	}
	defer func() {
		if err := writeMemviz(g.memviz, m.CPU); err != nil {
			logger.Log(logger.Allow, "memviz", err)
		}
	}()

	// the terminal must be restored before exit so the interrupt is handled
	// here rather than in the main thread
	sync.state <- stateRequest{req: reqNoIntSig}
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)
	go func() {
		if _, ok := <-intChan; ok {
			m.Quit()
		}
	}()

	// console input is delivered a key at a time when stdin is a terminal
	if term.IsTerminal(int(os.Stdin.Fd())) {
		et, err := easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err == nil {
			err = et.CBreakMode()
		}
		if err != nil {
			logger.Log(logger.Allow, "cpm", err)
		} else {
			defer et.CanonicalMode()
		}
	}

	throttle, err := newThrottle(*clock)
	if err != nil {
		return err
	}
	if throttle != nil {
		m.Throttle = throttle
		defer throttle.End()
	}

	if *trace {
		m.Trace = newTracer(md.Output).trace
	}

	err = m.Run(*maxCycles)
	if err != nil {
		if curated.Is(err, cpm.Interrupted) {
			fmt.Println("\r")
			return nil
		}
		if curated.Is(err, cpm.CycleLimit) || curated.Is(err, cpm.Halted) {
			fmt.Fprintln(md.Output, m.String())
		}
		return err
	}

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("measure the speed of the emulated CPU")

	origin := md.AddAddress("origin", 0x0000, "load address and execution start address")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "NONE", "run performance check with profiling: CPU, MEM, ALL (comma separated)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	program, err := loadProgram(md)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, program, *origin, *duration)
}
