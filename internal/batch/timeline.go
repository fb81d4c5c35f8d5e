package batch

import (
	"fmt"
	"sort"

	"robot-scene/internal/input"
	"robot-scene/internal/scene"
)

// Cue is a scripted command applied just before the given frame is simulated.
type Cue struct {
	Frame   int
	Command string
}

// Simulation is the outcome of stepping a scene through a timeline.
type Simulation struct {
	Frames     []scene.Frame
	EasterEggs []int   // frame indices where the easter egg fired
	Rejected   []error // bad commands or rejected values, in timeline order
}

// Simulate steps sc for n frames at a fixed 1/fps step, feeding timeline
// cues through the scene's input queue. Commands that fail to parse are
// reported and skipped.
func Simulate(sc *scene.Scene, n, fps int, timeline []Cue) Simulation {
	if fps <= 0 {
		fps = 30
	}
	dt := 1.0 / float64(fps)

	cues := append([]Cue(nil), timeline...)
	sort.SliceStable(cues, func(i, j int) bool { return cues[i].Frame < cues[j].Frame })

	sim := Simulation{Frames: make([]scene.Frame, 0, n)}
	next := 0
	for i := 0; i < n; i++ {
		for next < len(cues) && cues[next].Frame <= i {
			ev, err := input.ParseCommand(cues[next].Command)
			if err != nil {
				sim.Rejected = append(sim.Rejected, fmt.Errorf("batch: frame %d: %w", cues[next].Frame, err))
			} else {
				sc.Queue().Push(ev)
			}
			next++
		}

		res := sc.Tick(dt)
		for _, err := range res.Rejected {
			sim.Rejected = append(sim.Rejected, fmt.Errorf("batch: frame %d: %w", i, err))
		}
		if res.EasterEggActivated {
			sim.EasterEggs = append(sim.EasterEggs, i)
		}
		sim.Frames = append(sim.Frames, sc.Frame())
	}
	return sim
}
