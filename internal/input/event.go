package input

import (
	"fmt"

	"robot-scene/internal/pose"
)

// Kind identifies what an input event asks the scene to do.
type Kind int

const (
	KindNone Kind = iota
	KindWheel
	KindSelect
	KindDragStart
	KindDragMove
	KindDragEnd
	KindDragBy
	KindStart
	KindStop
	KindToggle
	KindPreset
	KindSetFOV
	KindSetDistance
	KindResetCamera
	KindResetAnimation
	KindHelp
)

var kindNames = map[Kind]string{
	KindNone:           "none",
	KindWheel:          "wheel",
	KindSelect:         "select",
	KindDragStart:      "drag-start",
	KindDragMove:       "drag-move",
	KindDragEnd:        "drag-end",
	KindDragBy:         "drag",
	KindStart:          "start",
	KindStop:           "stop",
	KindToggle:         "toggle",
	KindPreset:         "preset",
	KindSetFOV:         "fov",
	KindSetDistance:    "distance",
	KindResetCamera:    "reset-camera",
	KindResetAnimation: "reset",
	KindHelp:           "help",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is one discrete request from a front-end.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind   Kind
	Tick   int         // KindWheel: +1 / -1
	Target pose.Target // KindSelect
	X, Y   float64     // KindDragStart, KindDragMove: pointer position; KindDragBy: delta, in device pixels
	Text   string      // KindPreset code, KindSetFOV / KindSetDistance raw input
}

func Wheel(tick int) Event { return Event{Kind: KindWheel, Tick: tick} }
func Select(t pose.Target) Event { return Event{Kind: KindSelect, Target: t} }
func DragStart(x, y float64) Event { return Event{Kind: KindDragStart, X: x, Y: y} }
func DragMove(x, y float64) Event { return Event{Kind: KindDragMove, X: x, Y: y} }
func DragEnd() Event { return Event{Kind: KindDragEnd} }
func DragBy(dx, dy float64) Event { return Event{Kind: KindDragBy, X: dx, Y: dy} }
func Preset(code string) Event { return Event{Kind: KindPreset, Text: code} }
func SetFOV(text string) Event { return Event{Kind: KindSetFOV, Text: text} }
func SetDistance(text string) Event { return Event{Kind: KindSetDistance, Text: text} }
func Simple(k Kind) Event { return Event{Kind: k} }

// WheelTick normalises a scroll delta: scrolling down (positive deltaY) is -1.
func WheelTick(deltaY float64) int {
	if deltaY > 0 {
		return -1
	}
	return 1
}
