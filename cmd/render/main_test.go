package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRendersFramesAndManifest(t *testing.T) {
	base := t.TempDir()
	cfgPath := filepath.Join(base, "scene.json")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`{
		"fov": 50,
		"distance": 9,
		"timeline": [{"frame": 1, "command": "start"}]
	}`), 0o644))

	err := run([]string{
		"-config", cfgPath, "-base", base,
		"-width", "16", "-height", "12", "-supersample", "1",
		"-frames", "3", "-workers", "2", "-log", "error",
	})
	require.NoError(t, err)

	out := filepath.Join(base, "frames")
	for _, name := range []string{"frame_0000.webp", "frame_0002.webp", "manifest.json"} {
		assert.FileExists(t, filepath.Join(out, name))
	}

	data, err := os.ReadFile(filepath.Join(out, "manifest.json"))
	require.NoError(t, err)
	var manifest []map[string]any
	require.NoError(t, json.Unmarshal(data, &manifest))
	require.Len(t, manifest, 3)
	assert.Equal(t, false, manifest[0]["running"])
	assert.Equal(t, true, manifest[2]["running"])
}

func TestRunReturnsErrors(t *testing.T) {
	base := t.TempDir()
	assert.ErrorContains(t, run([]string{"-base", base, "-target", "tail"}), "unknown target")
	assert.ErrorContains(t, run([]string{"-base", base, "-log", "loud"}), "log level")
	assert.Error(t, run([]string{"-no-such-flag"}))
}
