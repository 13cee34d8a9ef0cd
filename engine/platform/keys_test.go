package platform

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/pong/engine/core"
)

func TestTranslateGlfwKey(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want core.KeyCode
	}{
		{glfw.KeyW, core.KEY_W},
		{glfw.KeyS, core.KEY_S},
		{glfw.KeyP, core.KEY_P},
		{glfw.KeyR, core.KEY_R},
		{glfw.KeyUp, core.KEY_UP},
		{glfw.KeyDown, core.KEY_DOWN},
		{glfw.KeyEscape, core.KEY_ESCAPE},
		{glfw.KeySpace, core.KEY_SPACE},
		{glfw.KeyF5, core.KEY_UNKNOWN},
	}
	for _, tt := range tests {
		if got := translateGlfwKey(tt.key); got != tt.want {
			t.Errorf("translateGlfwKey(%d) = %#x, want %#x", tt.key, got, tt.want)
		}
	}
}

func TestTranslateTcellKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want core.KeyCode
	}{
		{"lower w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), core.KEY_W},
		{"upper S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModShift), core.KEY_S},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), core.KEY_SPACE},
		{"digit", tcell.NewEventKey(tcell.KeyRune, '1', tcell.ModNone), core.KEY_UNKNOWN},
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), core.KEY_UP},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), core.KEY_DOWN},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), core.KEY_ESCAPE},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := translateTcellKey(tt.ev); got != tt.want {
				t.Errorf("got %#x, want %#x", got, tt.want)
			}
		})
	}
}
