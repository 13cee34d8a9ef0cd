package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/pong/engine/core"
)

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Window is a GLFW window holding an OpenGL 4.1 core context.
type Window struct {
	handle *glfw.Window
}

func NewWindow() *Window {
	return &Window{}
}

func (w *Window) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: failed to initialize glfw: %w", core.ErrPlatformStartup, err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: failed to create window: %w", core.ErrPlatformStartup, err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)
	w.handle = window

	w.handle.SetKeyCallback(keyCallback)
	w.handle.SetFramebufferSizeCallback(framebufferSizeCallback)
	w.handle.SetPos(int(x), int(y))
	w.handle.Show()

	core.LogInfo("window created: %dx%d", width, height)
	return nil
}

func (w *Window) Shutdown() error {
	if w.handle != nil {
		w.handle.Destroy()
		w.handle = nil
	}
	glfw.Terminate()
	return nil
}

func (w *Window) PumpMessages() bool {
	glfw.PollEvents()
	return !w.handle.ShouldClose()
}

func (w *Window) SetTitle(title string) {
	w.handle.SetTitle(title)
}

func (w *Window) FramebufferSize() (uint32, uint32) {
	width, height := w.handle.GetFramebufferSize()
	return uint32(width), uint32(height)
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

func keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Repeat {
		return
	}
	code := translateGlfwKey(key)
	if code == core.KEY_UNKNOWN {
		return
	}
	core.InputProcessKey(code, action == glfw.Press)
}

func framebufferSizeCallback(w *glfw.Window, width, height int) {
	core.EventFire(core.EventContext{
		Type: core.EVENT_CODE_RESIZED,
		Data: &core.ResizeEvent{
			Width:  uint16(width),
			Height: uint16(height),
		},
	})
}
