package pose

import (
	"fmt"
	"strings"
)

// Joint identifies one articulated robot part.
type Joint int

const (
	RightArm Joint = iota
	LeftArm
	Head
	RightLeg
	LeftLeg

	NumJoints = 5
)

var jointNames = [NumJoints]string{"rightArm", "leftArm", "head", "rightLeg", "leftLeg"}

func (j Joint) String() string {
	if j < 0 || int(j) >= NumJoints {
		return fmt.Sprintf("Joint(%d)", int(j))
	}
	return jointNames[j]
}

// ParseJoint resolves a joint name case-insensitively ("rightArm", "rightarm").
func ParseJoint(name string) (Joint, bool) {
	for i, n := range jointNames {
		if strings.EqualFold(n, name) {
			return Joint(i), true
		}
	}
	return 0, false
}

// Pose holds joint angles in radians, indexed by Joint.
// Value type so frame snapshots copy it for free.
type Pose [NumJoints]float64

func (p Pose) Angle(j Joint) float64 {
	return p[j]
}

func (p *Pose) SetAngle(j Joint, a float64) {
	p[j] = a
}

// Rotate adds delta radians to a joint. No clamping.
func (p *Pose) Rotate(j Joint, delta float64) {
	p[j] += delta
}

// Reset puts every joint back to its rest angle (0).
func (p *Pose) Reset() {
	*p = Pose{}
}
