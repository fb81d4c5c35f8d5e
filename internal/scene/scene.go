// Package scene glues the pose store, animation driver and camera into a
// frame loop. A front-end pushes input events onto the queue from any
// goroutine and calls Tick once per frame; Tick is the only writer.
package scene

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"robot-scene/internal/animation"
	"robot-scene/internal/camera"
	"robot-scene/internal/input"
	"robot-scene/internal/pose"
)

// Options configure a new scene.
type Options struct {
	Target    pose.Target
	Autostart bool
	MaxStep   float64 // zero keeps animation.DefaultMaxStep
	Logger    *zap.Logger
}

// Scene owns every piece of mutable state of the robot scene.
type Scene struct {
	state  pose.State
	camera camera.Camera
	driver *animation.Driver
	queue  *input.Queue
	logger *zap.Logger

	target   pose.Target
	showHelp bool
	ticks    uint64
}

// TickResult summarises what one Tick did.
type TickResult struct {
	Events             int
	EasterEggActivated bool
	Rejected           []error
}

// New builds a scene in its default state reading events from q.
// A nil queue gets a fresh one.
func New(q *input.Queue, opts Options) *Scene {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if q == nil {
		q = input.NewQueue()
	}

	s := &Scene{
		state:  pose.NewState(),
		camera: camera.New(),
		driver: animation.NewDriver(logger.Named("animation")),
		queue:  q,
		logger: logger,
		target: opts.Target,
	}
	if opts.MaxStep > 0 {
		s.driver.MaxStep = opts.MaxStep
	}
	if opts.Autostart {
		s.driver.Start()
	}
	return s
}

// Queue is where front-ends push their events.
func (s *Scene) Queue() *input.Queue { return s.queue }

func (s *Scene) Target() pose.Target { return s.target }

func (s *Scene) Running() bool { return s.driver.Running() }

// Tick drains pending input, then advances the camera orbit and the
// animation driver by dt seconds if the animation runs.
func (s *Scene) Tick(dt float64) TickResult {
	var res TickResult
	for _, ev := range s.queue.Drain() {
		res.Events++
		egg, err := s.apply(ev)
		if err != nil {
			s.logger.Warn("input rejected", zap.Stringer("kind", ev.Kind), zap.Error(err))
			res.Rejected = append(res.Rejected, err)
		}
		res.EasterEggActivated = res.EasterEggActivated || egg
	}

	if s.driver.Running() {
		dt = s.driver.ClampStep(dt)
		s.camera.Orbit(dt)
		r := s.driver.Update(&s.state, s.target, dt)
		res.EasterEggActivated = res.EasterEggActivated || r.EasterEggActivated
	}
	s.ticks++
	return res
}

// apply handles one event and reports whether it unlocked the easter egg.
func (s *Scene) apply(ev input.Event) (bool, error) {
	switch ev.Kind {
	case input.KindWheel:
		return s.driver.Override(&s.state, s.target, ev.Tick).EasterEggActivated, nil

	case input.KindSelect:
		s.selectTarget(ev.Target)

	case input.KindDragStart:
		s.camera.BeginDrag(ev.X, ev.Y)
	case input.KindDragMove:
		s.camera.DragTo(ev.X, ev.Y)
	case input.KindDragEnd:
		s.camera.EndDrag()
	case input.KindDragBy:
		s.camera.DragBy(ev.X, ev.Y)

	case input.KindStart:
		s.driver.Start()
	case input.KindStop:
		s.driver.Stop()
	case input.KindToggle:
		if s.driver.Running() {
			s.driver.Stop()
		} else {
			s.driver.Start()
		}

	case input.KindPreset:
		return false, s.camera.SetPreset(ev.Text)
	case input.KindSetFOV:
		v, err := parseNumber(ev.Text)
		if err != nil {
			return false, fmt.Errorf("scene: fov %q: %w", ev.Text, camera.ErrInvalidFOV)
		}
		return false, s.camera.SetFOV(v)
	case input.KindSetDistance:
		v, err := parseNumber(ev.Text)
		if err != nil {
			return false, fmt.Errorf("scene: distance %q: %w", ev.Text, camera.ErrInvalidDistance)
		}
		return false, s.camera.SetDistance(v)

	case input.KindResetCamera:
		s.camera.Reset()
	case input.KindResetAnimation:
		s.state.Reset()
		s.driver.Reset()
		s.logger.Debug("animation reset")
	case input.KindHelp:
		s.showHelp = !s.showHelp

	default:
		return false, fmt.Errorf("scene: unhandled event %s", ev.Kind)
	}
	return false, nil
}

// selectTarget switches the control target. Entering a scripted mode from a
// single joint puts the joints back to rest; counters are left alone.
func (s *Scene) selectTarget(t pose.Target) {
	if t.Mode().IsAnimated() && !s.target.Mode().IsAnimated() {
		s.state.Pose.Reset()
	}
	if t != s.target {
		s.logger.Debug("target selected", zap.Stringer("from", s.target), zap.Stringer("to", t))
	}
	s.target = t
}

// ApplySettings applies the camera settings panel: field of view, then
// distance, then preset. Empty values are skipped; each rejected value is
// reported and leaves the previous setting in place.
func (s *Scene) ApplySettings(fov, distance, preset string) []error {
	var evs []input.Event
	if fov != "" {
		evs = append(evs, input.SetFOV(fov))
	}
	if distance != "" {
		evs = append(evs, input.SetDistance(distance))
	}
	if preset != "" {
		evs = append(evs, input.Preset(preset))
	}

	var errs []error
	for _, ev := range evs {
		if _, err := s.apply(ev); err != nil {
			s.logger.Warn("setting rejected", zap.Stringer("kind", ev.Kind), zap.Error(err))
			errs = append(errs, err)
		}
	}
	return errs
}

func parseNumber(text string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(text), 64)
}
