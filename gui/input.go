package gui

type Action int

type Input struct {
	Action Action
}

const (
	Nothing Action = iota

	// toggle continuous rendering on and off
	Pause

	// render a single frame while paused
	StepFrame
)
