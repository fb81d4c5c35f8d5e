package main

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"robot-scene/internal/cue"
	"robot-scene/internal/scene"
	"robot-scene/internal/texture"
)

func statusRow(s tcell.SimulationScreen) string {
	cols, rows := s.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		r, _, _, _ := s.GetContent(x, rows-1)
		b.WriteRune(r)
	}
	return b.String()
}

func TestLoopTogglesAndQuits(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 12)
	defer screen.Fini()

	lib := texture.NewLibrary(nil, nil)
	lib.LoadAll(nil)
	v := viewer{lib: lib, player: cue.NewPlayer(0), logger: zap.NewNop()}
	sc := scene.New(nil, scene.Options{})

	done := make(chan struct{})
	go func() {
		loop(screen, sc, v, 60)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(statusRow(screen), "paused")
	}, 5*time.Second, 10*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, ' ', tcell.ModNone)
	require.Eventually(t, func() bool {
		return strings.Contains(statusRow(screen), "Camera animation active")
	}, 5*time.Second, 10*time.Millisecond)

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not return after q")
	}
}

func TestRunRejectsUnknownTarget(t *testing.T) {
	err := run([]string{"-base", t.TempDir(), "-target", "tail", "-mute"})
	assert.ErrorContains(t, err, "unknown target")
}
