package scene

import "time"

// FPSMeter counts frames and publishes the rate once per second.
type FPSMeter struct {
	start  time.Time
	frames int
	fps    int
}

// Tick records one frame at now and returns the last published rate.
func (m *FPSMeter) Tick(now time.Time) int {
	if m.start.IsZero() {
		m.start = now
	}
	m.frames++
	if now.Sub(m.start) >= time.Second {
		m.fps = m.frames
		m.frames = 0
		m.start = now
	}
	return m.fps
}

func (m *FPSMeter) FPS() int { return m.fps }
