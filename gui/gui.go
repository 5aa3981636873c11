// Package gui is the window onto the rendered output. It receives finished
// frames from the debugger over a channel and forwards user input in the
// other direction.
package gui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jetsetilly/testds/hardware/spec"
	"github.com/jetsetilly/testds/logger"
	"github.com/jetsetilly/testds/version"
	input "github.com/quasilyte/ebitengine-input"
)

// GUI is the means of communication between the emulation and the window.
// Both channels are buffered and written to with a non-blocking send: a
// dropped frame or a dropped keypress is preferable to stalling either side.
type GUI struct {
	SetImage  chan *image.RGBA
	UserInput chan Input
}

func NewGUI() *GUI {
	return &GUI{
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan Input, 1),
	}
}

const (
	ActionPause = input.Action(Pause)
	ActionStep  = input.Action(StepFrame)
)

// magnification of the console image. the raw 256x192 frame is a postage
// stamp on a modern desktop
const pixelScale = 2

type gui struct {
	g      *GUI
	endGui chan bool

	started bool

	image  *ebiten.Image
	width  int
	height int

	inputHandler *input.Handler
	inputSystem  input.System
}

func (g *gui) initialise() {
	g.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	keymap := input.Keymap{
		ActionPause: {input.KeyGamepadStart, input.KeySpace},
		ActionStep:  {input.KeyGamepadR1, input.KeyS},
	}
	g.inputHandler = g.inputSystem.NewHandler(uint8(0), keymap)
	g.started = true
}

func (g *gui) input() {
	g.inputSystem.Update()

	var inp Input

	if g.inputHandler.ActionIsJustPressed(ActionPause) {
		inp = Input{Action: Pause}
	}
	if g.inputHandler.ActionIsJustPressed(ActionStep) {
		inp = Input{Action: StepFrame}
	}

	if inp.Action != Nothing {
		select {
		case g.g.UserInput <- inp:
		default:
		}
	}
}

func (g *gui) Update() error {
	if !g.started {
		g.initialise()
	}

	g.input()

	select {
	case <-g.endGui:
		return ebiten.Termination
	case img := <-g.g.SetImage:
		dim := img.Bounds()
		if g.image == nil || g.width != dim.Dx() || g.height != dim.Dy() {
			g.width = dim.Dx()
			g.height = dim.Dy()
			g.image = ebiten.NewImage(g.width, g.height)
		}
		g.image.WritePixels(img.Pix)
	default:
	}
	return nil
}

func (g *gui) Draw(screen *ebiten.Image) {
	if g.image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(pixelScale, pixelScale)
		screen.DrawImage(g.image, op)
	}
}

func (g *gui) Layout(width int, height int) (int, int) {
	return spec.Width * pixelScale, spec.Height * pixelScale
}

// Launch the GUI. This must be called from the program's main goroutine. The
// function returns when the window is closed or when the endGui channel is
// signalled.
func Launch(endGui chan bool, g *GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := onWindowOpen(); err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	err := ebiten.RunGame(&gui{
		g:      g,
		endGui: endGui,
	})

	if cerr := onCloseWindow(); cerr != nil {
		logger.Log(logger.Allow, "gui", cerr.Error())
	}

	return err
}
