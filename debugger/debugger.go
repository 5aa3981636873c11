// Package debugger is the terminal interface to the emulation. It owns the
// console and drives rendering, either a frame at a time or continuously,
// and provides commands for inspecting and poking the renderer's state.
package debugger

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"image"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/jetsetilly/testds/gui"
	"github.com/jetsetilly/testds/hardware"
	"github.com/jetsetilly/testds/logger"
)

type input struct {
	s   string
	err error
}

type debugger struct {
	g       *gui.GUI
	console *hardware.Console

	guiQuit chan bool
	sig     chan os.Signal
	input   chan input

	// printing styles
	styles styles
}

// sentinel errors used to stop the continuous render loop
var (
	errPaused = errors.New("paused")
	errQuit   = errors.New("quit")
)

// pushFrame sends a finished frame to the gui. the send is non-blocking: if
// the gui hasn't consumed the previous frame yet this one is dropped
func (m *debugger) pushFrame(img *image.RGBA) {
	select {
	case m.g.SetImage <- img:
	default:
	}
}

// frame renders a single frame and forwards it to the gui
func (m *debugger) frame() {
	m.pushFrame(m.console.RenderFrame())
}

// run renders frames continuously until interrupted by the user. returns
// true if the debugger should quit entirely
func (m *debugger) run() bool {
	err := m.console.Run(nil, func(img *image.RGBA) error {
		m.pushFrame(img)

		select {
		case inp := <-m.g.UserInput:
			if inp.Action == gui.Pause {
				return errPaused
			}
		case <-m.sig:
			return errPaused
		case <-m.guiQuit:
			return errQuit
		case in := <-m.input:
			// any command typed while running stops the render loop. the
			// command itself is discarded
			if in.err != nil {
				return errQuit
			}
			return errPaused
		default:
		}

		return nil
	})

	if errors.Is(err, errQuit) {
		return true
	}
	if err != nil && !errors.Is(err, errPaused) {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	fmt.Println(m.styles.debugger.Render("rendering stopped"))
	return false
}

// Launch the debugger. This is a blocking function and should be run in its
// own goroutine, with the gui running in the main goroutine.
func Launch(endDebugger chan bool, g *gui.GUI, args []string) error {
	m := &debugger{
		g:       g,
		guiQuit: endDebugger,
		sig:     make(chan os.Signal, 1),
		input:   make(chan input),
		styles:  newStyles(),
	}

	flgs := flag.NewFlagSet("testds", flag.ContinueOnError)
	scene := flgs.String("scene", "gradient", "initial scene to load")
	threaded := flgs.Bool("threaded", true, "render in the background across block workers")
	echo := flgs.Bool("log", false, "echo log entries as they happen")
	err := flgs.Parse(args)
	if err != nil {
		return err
	}

	if *echo {
		logger.SetEcho(os.Stdout)
	}

	m.console = hardware.Create()
	defer m.console.End()

	m.console.GPU.SetThreaded(*threaded)

	err = m.console.Geometry.Scene(strings.ToUpper(*scene))
	if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	// ctrl-c interrupts a running render loop rather than killing the
	// process
	signal.Notify(m.sig, syscall.SIGINT)

	// read user input in a separate goroutine, forwarding lines over the
	// input channel
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			m.input <- input{s: scanner.Text()}
		}
		m.input <- input{err: scanner.Err()}
	}()

	// an initial frame so the gui has something to show
	m.frame()

	for {
		fmt.Print("% ")

		select {
		case <-m.guiQuit:
			return nil

		case <-m.sig:
			fmt.Println("")

		case inp := <-m.g.UserInput:
			switch inp.Action {
			case gui.Pause:
				if m.run() {
					return nil
				}
			case gui.StepFrame:
				m.frame()
			}

		case in := <-m.input:
			if in.err != nil {
				return in.err
			}
			if m.commands(strings.Fields(strings.TrimSpace(in.s))) {
				return nil
			}
		}
	}
}
