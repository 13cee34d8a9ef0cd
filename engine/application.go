package engine

import "github.com/spaghettifunk/pong/engine/math"

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel string
	// Either FrontendWindow or FrontendTerminal.
	Frontend string
	// Root of the shader and config assets.
	AssetsDir string
	// Frame cap; 0 leaves pacing to the platform (vsync).
	TargetFPS uint32
	// Optional camera override, the default camera is used when nil.
	Camera *CameraConfig
}

// CameraConfig describes the orthographic volume and view of the scene camera.
type CameraConfig struct {
	Left, Right, Bottom, Top, Near, Far float32
	Eye, Target, Up                     math.Vec3
}
