package pose

import (
	"fmt"
	"strings"
)

// Mode is the scripted animation selected by the control target.
type Mode int

const (
	ModeNone Mode = iota
	ModeParade
	ModeRobotMetal
)

func (m Mode) String() string {
	switch m {
	case ModeParade:
		return "parade"
	case ModeRobotMetal:
		return "robotMetal"
	default:
		return "none"
	}
}

// IsAnimated reports whether the mode is one of the scripted animations.
func (m Mode) IsAnimated() bool {
	return m == ModeParade || m == ModeRobotMetal
}

// Target is what the scroll wheel controls: a single joint or a scripted mode.
// The numbering matches the 1–7 keyboard shortcuts.
type Target int

const (
	TargetRightArm Target = iota
	TargetLeftArm
	TargetHead
	TargetRightLeg
	TargetLeftLeg
	TargetParade
	TargetRobotMetal

	NumTargets = 7
)

// DefaultTarget is the control selected at startup.
const DefaultTarget = TargetRightArm

func (t Target) String() string {
	switch t {
	case TargetParade:
		return "parade"
	case TargetRobotMetal:
		return "robotMetal"
	}
	if j, ok := t.Joint(); ok {
		return j.String()
	}
	return fmt.Sprintf("Target(%d)", int(t))
}

// Joint returns the joint a target drives, if it is a single-joint target.
func (t Target) Joint() (Joint, bool) {
	if t >= TargetRightArm && t <= TargetLeftLeg {
		return Joint(t), true
	}
	return 0, false
}

// Mode returns the animation mode implied by the target.
func (t Target) Mode() Mode {
	switch t {
	case TargetParade:
		return ModeParade
	case TargetRobotMetal:
		return ModeRobotMetal
	default:
		return ModeNone
	}
}

// ParseTarget resolves a target name: any joint name, "parade" or "robotMetal".
func ParseTarget(name string) (Target, bool) {
	switch {
	case strings.EqualFold(name, "parade"):
		return TargetParade, true
	case strings.EqualFold(name, "robotMetal"), strings.EqualFold(name, "robot-metal"):
		return TargetRobotMetal, true
	}
	if j, ok := ParseJoint(name); ok {
		return Target(j), true
	}
	return 0, false
}

// TargetFromIndex maps a 1-based shortcut number to a target.
func TargetFromIndex(n int) (Target, bool) {
	if n < 1 || n > NumTargets {
		return 0, false
	}
	return Target(n - 1), true
}

// Animation holds the counters of the scripted animations.
type Animation struct {
	ParadePhase      float64
	RobotMetalCycles int
	EasterEggActive  bool
	FallAngle        float64 // [0, π/2]
	HeadScale        float64 // [0.5, 2.0]
}

// DefaultAnimation returns the state after an explicit reset.
func DefaultAnimation() Animation {
	return Animation{HeadScale: 1.0}
}

// State is the whole pose store: joint angles plus animation counters.
type State struct {
	Pose      Pose
	Animation Animation
}

// NewState returns a robot at rest.
func NewState() State {
	return State{Animation: DefaultAnimation()}
}

// Reset restores joints and every animation counter to defaults.
func (s *State) Reset() {
	s.Pose.Reset()
	s.Animation = DefaultAnimation()
}
