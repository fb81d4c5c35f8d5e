package scene

import (
	"robot-scene/internal/camera"
	"robot-scene/internal/input"
	"robot-scene/internal/pose"
)

// Frame is an immutable snapshot handed to renderers.
type Frame struct {
	Index   uint64
	State   pose.State
	Camera  camera.Camera
	Target  pose.Target
	Running bool
	Status  string
	Help    string // non-empty while the shortcut help is shown
}

// Frame snapshots the current state.
func (s *Scene) Frame() Frame {
	f := Frame{
		Index:   s.ticks,
		State:   s.state,
		Camera:  s.camera,
		Target:  s.target,
		Running: s.driver.Running(),
		Status:  s.driver.Status(s.state, s.target),
	}
	if s.showHelp {
		f.Help = input.HelpText()
	}
	return f
}
