package animation

import (
	"fmt"

	"go.uber.org/zap"

	"robot-scene/internal/pose"
)

const (
	// JointStep is the rotation applied per wheel tick, in radians.
	JointStep = 0.05
	// ParadeManualStep is the parade phase advance per wheel tick.
	ParadeManualStep = 0.1
)

// Override applies one discrete wheel step to the target.
// Single joints are always adjustable. The scripted modes only respond while
// the driver is stopped; when it runs, it owns them and the tick is dropped.
func (d *Driver) Override(s *pose.State, target pose.Target, tick int) Result {
	if tick == 0 {
		return Result{}
	}
	if j, ok := target.Joint(); ok {
		s.Pose.Rotate(j, float64(tick)*JointStep)
		return Result{}
	}
	if d.running {
		return Result{}
	}

	var res Result
	switch target.Mode() {
	case pose.ModeParade:
		s.Animation.ParadePhase += float64(tick) * ParadeManualStep
		applyParade(s)
	case pose.ModeRobotMetal:
		res = advanceRobotMetal(s, float64(tick)*JointStep)
	}

	if res.EasterEggActivated {
		d.logger.Info("easter egg activated", zap.Int("cycles", s.Animation.RobotMetalCycles), zap.Bool("manual", true))
	}
	return res
}

// Status describes what the animation system is doing, for a HUD line.
func (d *Driver) Status(s pose.State, target pose.Target) string {
	if !d.running {
		return "Animation paused - Use mouse wheel for manual control"
	}
	switch target.Mode() {
	case pose.ModeParade:
		return "Parade march animation active"
	case pose.ModeRobotMetal:
		return fmt.Sprintf("Robot Metal animation active (Cycle %d/%d)", s.Animation.RobotMetalCycles+1, EasterEggCycles)
	default:
		return "Camera animation active - Use mouse wheel to control selected part"
	}
}
