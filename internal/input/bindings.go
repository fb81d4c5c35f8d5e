package input

import (
	"strings"
	"unicode"

	"robot-scene/internal/pose"
)

// Key is a front-end neutral key press.
type Key struct {
	Rune  rune   // printable character, zero for named keys
	Name  string // named key such as "space" when Rune is zero
	Ctrl  bool
	Shift bool
}

// Bind maps a key press to the event it triggers.
func Bind(k Key) (Event, bool) {
	r := k.Rune
	if r == ' ' || strings.EqualFold(k.Name, "space") {
		return Simple(KindToggle), true
	}
	if unicode.IsUpper(r) {
		k.Shift = true
		r = unicode.ToLower(r)
	}

	switch {
	case k.Ctrl && r == 'r':
		return Simple(KindResetCamera), true
	case k.Shift && r == 'h':
		return Simple(KindHelp), true
	case k.Ctrl || k.Shift:
		return Event{}, false
	case r >= '1' && r <= '9':
		if t, ok := pose.TargetFromIndex(int(r - '0')); ok {
			return Select(t), true
		}
	}
	return Event{}, false
}

var helpLines = []string{
	"Keyboard Shortcuts:",
	"Space - Start/Stop animation",
	"Ctrl+R - Reset camera",
	"1-5 - Select body part",
	"6 - Parade march animation",
	"7 - Robot Metal animation",
	"Shift+H - Show this help",
	"",
	"Mouse:",
	"Wheel - Rotate selected part or step the selected animation",
	"Drag - Orbit the camera (horizontal) and raise or lower it (vertical)",
}

// HelpText is the shortcut reference shown on KindHelp.
func HelpText() string {
	return strings.Join(helpLines, "\n")
}
