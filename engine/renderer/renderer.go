package renderer

import (
	"fmt"

	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/renderer/components"
)

// System owns the backend and the scene camera.
type System struct {
	backend RendererBackend
	camera  *components.Camera
}

func NewSystem(backend RendererBackend) *System {
	return &System{
		backend: backend,
		camera:  components.NewCamera(),
	}
}

func (s *System) Initialize(appName string, appWidth, appHeight uint32) error {
	if err := s.backend.Initialize(appName, appWidth, appHeight); err != nil {
		return fmt.Errorf("failed to initialize renderer backend: %w", err)
	}
	core.LogDebug("renderer initialized")
	return nil
}

func (s *System) Shutdown() error {
	return s.backend.Shutdown()
}

func (s *System) OnResize(width, height uint16) error {
	return s.backend.Resized(width, height)
}

func (s *System) Camera() *components.Camera {
	return s.camera
}

func (s *System) DrawFrame(packet *RenderPacket) error {
	if err := s.backend.BeginFrame(packet.DeltaTime, packet.ClearColour); err != nil {
		core.LogError("%s", err)
		return err
	}

	viewProjection := s.camera.ViewProjection()
	for _, q := range packet.Quads {
		mvp := viewProjection.Mul(q.Transform)
		if err := s.backend.DrawQuad(mvp, q.Colour); err != nil {
			return err
		}
	}

	if err := s.backend.EndFrame(packet.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
