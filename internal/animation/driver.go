package animation

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"robot-scene/internal/pose"
)

const (
	fullTurn = 2 * math.Pi

	// ParadeSpeed is the phase advance per second of the marching gait.
	ParadeSpeed = 2.0
	// RobotMetalSpeed is the windmill arm rotation in radians per second.
	RobotMetalSpeed = 2.0
	// EasterEggCycles is the number of robot-metal rotations that unlock the easter egg.
	EasterEggCycles = 5

	pulsateSpeed = 3.0
	maxFall      = math.Pi / 2
	minHeadScale = 0.5
	maxHeadScale = 2.0

	// DefaultMaxStep caps a single update so a resumed tab does not jump the pose.
	DefaultMaxStep = 0.25
)

// Result reports what a single update or override changed beyond the pose itself.
type Result struct {
	Wraps              int  // robot-metal rotations completed during this step
	EasterEggActivated bool // true only on the step that unlocked the egg
}

// Driver advances the scripted animations once per frame.
// It is not safe for concurrent use; the scene tick is its only caller.
type Driver struct {
	// MaxStep clamps dt. Zero disables clamping.
	MaxStep float64

	running    bool
	frameCount uint64
	logger     *zap.Logger
}

// NewDriver returns a stopped driver.
func NewDriver(logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Driver{MaxStep: DefaultMaxStep, logger: logger}
}

func (d *Driver) Start() {
	d.running = true
	d.logger.Debug("animation started")
}

// Stop freezes the animation; state is kept as is.
func (d *Driver) Stop() {
	d.running = false
	d.logger.Debug("animation stopped")
}

func (d *Driver) Running() bool { return d.running }

// FrameCount is the number of running updates since the last reset.
func (d *Driver) FrameCount() uint64 { return d.frameCount }

// Reset zeroes the frame counter. Pose and counters are reset through pose.State.
func (d *Driver) Reset() {
	d.frameCount = 0
}

// ClampStep sanitises an elapsed time the way Update does.
func (d *Driver) ClampStep(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) {
		return 0
	}
	if d.MaxStep > 0 && dt > d.MaxStep {
		return d.MaxStep
	}
	return dt
}

// Update advances state by dt seconds for the given control target.
// Same state, target and dt always produce the same result.
func (d *Driver) Update(s *pose.State, target pose.Target, dt float64) Result {
	if !d.running {
		return Result{}
	}
	dt = d.ClampStep(dt)

	var res Result
	switch target.Mode() {
	case pose.ModeParade:
		s.Animation.ParadePhase += dt * ParadeSpeed
		applyParade(s)
	case pose.ModeRobotMetal:
		res = advanceRobotMetal(s, dt*RobotMetalSpeed)
	}

	if s.Animation.EasterEggActive {
		stepEasterEgg(&s.Animation, dt, d.frameCount)
	}
	d.frameCount++

	if res.EasterEggActivated {
		d.logger.Info("easter egg activated", zap.Int("cycles", s.Animation.RobotMetalCycles))
	}
	return res
}

// applyParade sets the marching pose for the current phase.
// Right arm and left leg swing together; the other pair is half a cycle behind.
func applyParade(s *pose.State) {
	phase := s.Animation.ParadePhase
	s.Pose[pose.RightArm] = math.Sin(phase) * math.Pi
	s.Pose[pose.LeftLeg] = math.Sin(phase) * math.Pi / 2
	s.Pose[pose.LeftArm] = math.Sin(phase+math.Pi) * math.Pi
	s.Pose[pose.RightLeg] = math.Sin(phase+math.Pi) * math.Pi / 2
}

// advanceRobotMetal turns the windmill arm by delta radians and keeps the head in step.
func advanceRobotMetal(s *pose.State, delta float64) Result {
	s.Pose[pose.LeftArm] = math.Pi / 4
	wraps := turnArm(&s.Pose, pose.RightArm, delta)

	s.Pose[pose.Head] = math.Sin(s.Pose[pose.RightArm]) * (math.Pi / 2)

	res := Result{Wraps: wraps}
	if wraps > 0 {
		s.Animation.RobotMetalCycles += wraps
		if s.Animation.RobotMetalCycles >= EasterEggCycles && !s.Animation.EasterEggActive {
			s.Animation.EasterEggActive = true
			res.EasterEggActivated = true
		}
	}
	return res
}

// turnArm rotates a joint and normalises it into [0, 2π).
// It returns how many multiples of 2π were crossed going forward.
func turnArm(p *pose.Pose, j pose.Joint, delta float64) int {
	before := p[j]
	after := before + delta

	crossed := int(math.Floor(after/fullTurn) - math.Floor(before/fullTurn))
	if crossed < 0 {
		crossed = 0
	}

	norm := after - fullTurn*math.Floor(after/fullTurn)
	if norm >= fullTurn {
		norm = 0
	}
	p[j] = norm
	return crossed
}

func stepEasterEgg(a *pose.Animation, dt float64, frame uint64) {
	if a.FallAngle < maxFall {
		a.FallAngle = math.Min(a.FallAngle+dt, maxFall)
	}

	// Phase follows the frame counter, not wall time.
	scale := 1.0 + 0.5*math.Sin(float64(frame)*0.1*pulsateSpeed)
	a.HeadScale = mgl64.Clamp(scale, minHeadScale, maxHeadScale)
}
