package input

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"robot-scene/internal/pose"
)

var (
	ErrUnknownCommand = errors.New("input: unknown command")
	ErrUnknownTarget  = errors.New("input: unknown target")
	ErrBadArgument    = errors.New("input: bad argument")
)

// ParseCommand turns one line of a textual control script into an event.
// It is used by timeline files and the terminal front-end's prompt.
//
//	start | stop | toggle | help | reset | reset-camera
//	select <target>     wheel <n>        preset <code>
//	fov <degrees>       distance <units> drag <dx> <dy>
//
// Numeric validation of fov and distance is left to the scene so that
// rejected values are reported the same way for every front-end.
func ParseCommand(line string) (Event, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Event{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	arity := func(n int) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s takes %d argument(s), got %d", ErrBadArgument, name, n, len(args))
		}
		return nil
	}

	switch name {
	case "start", "stop", "toggle", "help", "reset", "reset-camera":
		if err := arity(0); err != nil {
			return Event{}, err
		}
		return Simple(simpleKinds[name]), nil

	case "select":
		if err := arity(1); err != nil {
			return Event{}, err
		}
		if n, err := strconv.Atoi(args[0]); err == nil {
			if t, ok := pose.TargetFromIndex(n); ok {
				return Select(t), nil
			}
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownTarget, args[0])
		}
		t, ok := pose.ParseTarget(args[0])
		if !ok {
			return Event{}, fmt.Errorf("%w: %q", ErrUnknownTarget, args[0])
		}
		return Select(t), nil

	case "wheel":
		if err := arity(1); err != nil {
			return Event{}, err
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return Event{}, fmt.Errorf("%w: wheel %q: %v", ErrBadArgument, args[0], err)
		}
		return Wheel(n), nil

	case "preset":
		if err := arity(1); err != nil {
			return Event{}, err
		}
		return Preset(strings.ToLower(args[0])), nil

	case "fov":
		if err := arity(1); err != nil {
			return Event{}, err
		}
		return SetFOV(args[0]), nil

	case "distance":
		if err := arity(1); err != nil {
			return Event{}, err
		}
		return SetDistance(args[0]), nil

	case "drag":
		if err := arity(2); err != nil {
			return Event{}, err
		}
		dx, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return Event{}, fmt.Errorf("%w: drag dx %q: %v", ErrBadArgument, args[0], err)
		}
		dy, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return Event{}, fmt.Errorf("%w: drag dy %q: %v", ErrBadArgument, args[1], err)
		}
		return DragBy(dx, dy), nil
	}
	return Event{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
}

var simpleKinds = map[string]Kind{
	"start":        KindStart,
	"stop":         KindStop,
	"toggle":       KindToggle,
	"help":         KindHelp,
	"reset":        KindResetAnimation,
	"reset-camera": KindResetCamera,
}
