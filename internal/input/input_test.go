package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robot-scene/internal/pose"
)

func TestWheelTick(t *testing.T) {
	assert.Equal(t, -1, WheelTick(120))
	assert.Equal(t, 1, WheelTick(-3))
	assert.Equal(t, 1, WheelTick(0))
}

func TestBind(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want Event
		ok   bool
	}{
		{"space rune", Key{Rune: ' '}, Simple(KindToggle), true},
		{"space name", Key{Name: "Space"}, Simple(KindToggle), true},
		{"ctrl r", Key{Rune: 'r', Ctrl: true}, Simple(KindResetCamera), true},
		{"plain r", Key{Rune: 'r'}, Event{}, false},
		{"shift h", Key{Rune: 'h', Shift: true}, Simple(KindHelp), true},
		{"capital H", Key{Rune: 'H'}, Simple(KindHelp), true},
		{"1", Key{Rune: '1'}, Select(pose.TargetRightArm), true},
		{"6", Key{Rune: '6'}, Select(pose.TargetParade), true},
		{"7", Key{Rune: '7'}, Select(pose.TargetRobotMetal), true},
		{"8", Key{Rune: '8'}, Event{}, false},
		{"ctrl 1", Key{Rune: '1', Ctrl: true}, Event{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Bind(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHelpText(t *testing.T) {
	h := HelpText()
	assert.Contains(t, h, "Ctrl+R")
	assert.Contains(t, h, "Shift+H")
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Event
	}{
		{"start", Simple(KindStart)},
		{"  STOP ", Simple(KindStop)},
		{"toggle", Simple(KindToggle)},
		{"reset", Simple(KindResetAnimation)},
		{"reset-camera", Simple(KindResetCamera)},
		{"help", Simple(KindHelp)},
		{"select head", Select(pose.TargetHead)},
		{"select robotMetal", Select(pose.TargetRobotMetal)},
		{"select 6", Select(pose.TargetParade)},
		{"wheel -3", Wheel(-3)},
		{"preset RBT", Preset("rbt")},
		{"fov 200", SetFOV("200")},
		{"distance abc", SetDistance("abc")},
		{"drag 10 -2.5", DragBy(10, -2.5)},
	}
	for _, tt := range tests {
		got, err := ParseCommand(tt.line)
		require.NoError(t, err, tt.line)
		assert.Equal(t, tt.want, got, tt.line)
	}
}

func TestParseCommandErrors(t *testing.T) {
	_, err := ParseCommand("")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseCommand("jump")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = ParseCommand("select tail")
	assert.ErrorIs(t, err, ErrUnknownTarget)

	_, err = ParseCommand("select 9")
	assert.ErrorIs(t, err, ErrUnknownTarget)

	_, err = ParseCommand("wheel x")
	assert.ErrorIs(t, err, ErrBadArgument)

	_, err = ParseCommand("drag 1")
	assert.ErrorIs(t, err, ErrBadArgument)

	_, err = ParseCommand("start now")
	assert.ErrorIs(t, err, ErrBadArgument)
}
