package platform

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/pong/engine/core"
)

func translateGlfwKey(key glfw.Key) core.KeyCode {
	// GLFW letter keys share their ASCII values with our key codes.
	if key >= glfw.KeyA && key <= glfw.KeyZ {
		return core.KeyCode(key)
	}
	switch key {
	case glfw.KeyEscape:
		return core.KEY_ESCAPE
	case glfw.KeyEnter:
		return core.KEY_ENTER
	case glfw.KeyTab:
		return core.KEY_TAB
	case glfw.KeyBackspace:
		return core.KEY_BACKSPACE
	case glfw.KeySpace:
		return core.KEY_SPACE
	case glfw.KeyUp:
		return core.KEY_UP
	case glfw.KeyDown:
		return core.KEY_DOWN
	case glfw.KeyLeft:
		return core.KEY_LEFT
	case glfw.KeyRight:
		return core.KEY_RIGHT
	case glfw.KeyPause:
		return core.KEY_PAUSE
	case glfw.KeyLeftShift, glfw.KeyRightShift:
		return core.KEY_SHIFT
	}
	return core.KEY_UNKNOWN
}

func translateTcellKey(ev *tcell.EventKey) core.KeyCode {
	switch ev.Key() {
	case tcell.KeyEscape:
		return core.KEY_ESCAPE
	case tcell.KeyEnter:
		return core.KEY_ENTER
	case tcell.KeyTab:
		return core.KEY_TAB
	case tcell.KeyUp:
		return core.KEY_UP
	case tcell.KeyDown:
		return core.KEY_DOWN
	case tcell.KeyLeft:
		return core.KEY_LEFT
	case tcell.KeyRight:
		return core.KEY_RIGHT
	case tcell.KeyRune:
		r := unicode.ToUpper(ev.Rune())
		if r >= 'A' && r <= 'Z' {
			return core.KeyCode(r)
		}
		if r == ' ' {
			return core.KEY_SPACE
		}
	}
	return core.KEY_UNKNOWN
}
