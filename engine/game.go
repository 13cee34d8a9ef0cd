package engine

import (
	"github.com/spaghettifunk/pong/engine/assets"
	"github.com/spaghettifunk/pong/engine/renderer"
)

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Set by the engine before FnInitialize runs.
	AssetManager *assets.AssetManager
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnRender     Render
	FnOnResize   OnResize
	FnShutdown   Shutdown
	FnStatus     Status
}

type Initialize func() error
type Update func(deltaTime float64) error
type Render func(packet *renderer.RenderPacket, deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error

// Status returns the text shown in the window title or terminal status line.
type Status func(fps float64, frameMS float64) string
