package renderer

import "github.com/spaghettifunk/pong/engine/math"

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint16) error
	BeginFrame(deltaTime float64, clearColour math.Vec4) error
	// DrawQuad draws the unit quad transformed by mvp into clip space.
	DrawQuad(mvp math.Mat4, colour math.Vec4) error
	EndFrame(deltaTime float64) error
}
