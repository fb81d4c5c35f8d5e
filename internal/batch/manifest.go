package batch

import (
	"encoding/json"
	"fmt"
	"os"

	"robot-scene/internal/scene"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame            int     `json:"frame"`
	Time             float64 `json:"time"`
	Image            string  `json:"image"`
	Rendered         bool    `json:"rendered"`
	Target           string  `json:"target"`
	Running          bool    `json:"running"`
	Status           string  `json:"status"`
	RobotMetalCycles int     `json:"robot_metal_cycles"`
	EasterEgg        bool    `json:"easter_egg"`
	FallAngle        float64 `json:"fall_angle"`
	HeadScale        float64 `json:"head_scale"`
}

// WriteManifest writes manifest.json describing every simulated frame.
func WriteManifest(path string, fps int, frames []scene.Frame, results []Result) error {
	if len(results) != len(frames) {
		return fmt.Errorf("batch: manifest: %d frames, %d results", len(frames), len(results))
	}
	if fps <= 0 {
		fps = 30
	}
	entries := make([]ManifestEntry, len(frames))
	for i, f := range frames {
		a := f.State.Animation
		entries[i] = ManifestEntry{
			Frame:            i,
			Time:             float64(i+1) / float64(fps),
			Image:            results[i].Image,
			Rendered:         results[i].Success,
			Target:           f.Target.String(),
			Running:          f.Running,
			Status:           f.Status,
			RobotMetalCycles: a.RobotMetalCycles,
			EasterEgg:        a.EasterEggActive,
			FallAngle:        a.FallAngle,
			HeadScale:        a.HeadScale,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
