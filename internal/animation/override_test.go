package animation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"robot-scene/internal/pose"
)

func TestOverrideJointIsUnboundedAndAlwaysHonoured(t *testing.T) {
	d := NewDriver(nil)
	s := pose.NewState()

	for i := 0; i < 100; i++ {
		d.Override(&s, pose.TargetHead, 1)
	}
	assert.InDelta(t, 5.0, s.Pose[pose.Head], 1e-9)

	d.Start()
	d.Override(&s, pose.TargetLeftLeg, -3)
	assert.InDelta(t, -0.15, s.Pose[pose.LeftLeg], 1e-12)
}

func TestOverrideParadeOnlyWhileStopped(t *testing.T) {
	d := NewDriver(nil)
	s := pose.NewState()

	d.Override(&s, pose.TargetParade, 5)
	assert.InDelta(t, 0.5, s.Animation.ParadePhase, 1e-12)
	assert.InDelta(t, math.Sin(0.5)*math.Pi, s.Pose[pose.RightArm], 1e-9)
	assert.InDelta(t, -s.Pose[pose.RightArm], s.Pose[pose.LeftArm], 1e-9)

	d.Start()
	before := s
	d.Override(&s, pose.TargetParade, 5)
	d.Override(&s, pose.TargetRobotMetal, 5)
	assert.Equal(t, before, s)
}

func TestOverrideRobotMetalCountsForwardCrossingsOnly(t *testing.T) {
	d := NewDriver(nil)
	s := pose.NewState()

	d.Override(&s, pose.TargetRobotMetal, 1)
	assert.Equal(t, math.Pi/4, s.Pose[pose.LeftArm])
	assert.InDelta(t, 0.05, s.Pose[pose.RightArm], 1e-12)

	// Backwards through zero: no cycle, arm normalised.
	d.Override(&s, pose.TargetRobotMetal, -2)
	assert.Zero(t, s.Animation.RobotMetalCycles)
	assert.InDelta(t, fullTurn-0.05, s.Pose[pose.RightArm], 1e-9)

	// Forward again across 2π counts.
	d.Override(&s, pose.TargetRobotMetal, 2)
	assert.Equal(t, 1, s.Animation.RobotMetalCycles)
	assert.Less(t, s.Pose[pose.RightArm], fullTurn)
}

func TestOverrideCanUnlockEasterEgg(t *testing.T) {
	d := NewDriver(nil)
	s := pose.NewState()

	activations := 0
	for i := 0; i < 700; i++ {
		if d.Override(&s, pose.TargetRobotMetal, 1).EasterEggActivated {
			activations++
		}
	}
	assert.Equal(t, 1, activations)
	assert.True(t, s.Animation.EasterEggActive)
	assert.Equal(t, 5, s.Animation.RobotMetalCycles)

	// Stopped driver: the egg sequence itself waits for Start.
	assert.Zero(t, s.Animation.FallAngle)
}

func TestOverrideZeroTickIsNoop(t *testing.T) {
	d := NewDriver(nil)
	s := pose.NewState()
	d.Override(&s, pose.TargetRobotMetal, 0)
	assert.Equal(t, pose.NewState(), s)
}

func TestStatus(t *testing.T) {
	d := NewDriver(nil)
	s := pose.NewState()

	assert.Contains(t, d.Status(s, pose.TargetParade), "paused")

	d.Start()
	assert.Equal(t, "Parade march animation active", d.Status(s, pose.TargetParade))
	s.Animation.RobotMetalCycles = 2
	assert.Equal(t, "Robot Metal animation active (Cycle 3/5)", d.Status(s, pose.TargetRobotMetal))
	assert.Contains(t, d.Status(s, pose.TargetHead), "Camera animation active")
}
