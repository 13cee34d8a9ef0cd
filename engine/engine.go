package engine

import (
	"fmt"
	"os"
	"sync/atomic"

	"github.com/spaghettifunk/pong/engine/assets"
	"github.com/spaghettifunk/pong/engine/assets/loaders"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/platform"
	"github.com/spaghettifunk/pong/engine/renderer"
	"github.com/spaghettifunk/pong/engine/renderer/opengl"
	"github.com/spaghettifunk/pong/engine/renderer/terminal"
)

type Stage uint8

const (
	// Engine is in an uninitialized state
	EngineStageUninitialized Stage = iota
	// Engine is currently booting up
	EngineStageBooting
	// Engine completed boot process and is ready to be initialized
	EngineStageBootComplete
	// Engine is currently initializing
	EngineStageInitializing
	// Engine initialization is complete
	EngineStageInitialized
	// Engine is currently running
	EngineStageRunning
	// Engine is in the process of shutting down
	EngineStageShuttingDown
)

const (
	logFileName        = "pong.log"
	defaultTerminalFPS = 60
)

// backendFactory creates the renderer backend once the platform is up.
type backendFactory func(am *assets.AssetManager) (renderer.RendererBackend, error)

type Engine struct {
	currentStage Stage
	gameInstance *Game
	isRunning    atomic.Bool
	isSuspended  bool
	platform     platform.Platform
	newBackend   backendFactory
	renderer     *renderer.System
	assetManager *assets.AssetManager
	width        uint32
	height       uint32
	clock        *core.Clock
	metrics      *core.Metrics
	lastTime     float64
	status       string
	logFile      *os.File
}

// New builds an engine for the frontend named in the application config.
func New(g *Game) (*Engine, error) {
	var p platform.Platform
	var nb backendFactory

	switch g.ApplicationConfig.Frontend {
	case FrontendWindow, "":
		w := platform.NewWindow()
		p = w
		nb = func(am *assets.AssetManager) (renderer.RendererBackend, error) {
			vert, err := am.LoadAsset("rect.vert", loaders.ResourceTypeShader)
			if err != nil {
				return nil, err
			}
			frag, err := am.LoadAsset("rect.frag", loaders.ResourceTypeShader)
			if err != nil {
				return nil, err
			}
			return opengl.New(w, vert.Text(), frag.Text()), nil
		}
	case FrontendTerminal:
		t := platform.NewTerminal()
		p = t
		nb = func(*assets.AssetManager) (renderer.RendererBackend, error) {
			return terminal.New(t), nil
		}
	default:
		return nil, fmt.Errorf("%w: %q", core.ErrUnknownFrontend, g.ApplicationConfig.Frontend)
	}
	return newEngine(g, p, nb)
}

// NewWithPlatform builds an engine around an existing platform and backend.
func NewWithPlatform(g *Game, p platform.Platform, backend renderer.RendererBackend) (*Engine, error) {
	return newEngine(g, p, func(*assets.AssetManager) (renderer.RendererBackend, error) {
		return backend, nil
	})
}

func newEngine(g *Game, p platform.Platform, nb backendFactory) (*Engine, error) {
	am, err := assets.NewAssetManager()
	if err != nil {
		core.LogError("%s", err)
		return nil, err
	}
	g.AssetManager = am

	e := &Engine{
		currentStage: EngineStageBooting,
		gameInstance: g,
		clock:        core.NewClock(),
		metrics:      core.NewMetrics(),
		platform:     p,
		newBackend:   nb,
		assetManager: am,
		isSuspended:  false,
		width:        g.ApplicationConfig.StartWidth,
		height:       g.ApplicationConfig.StartHeight,
		lastTime:     0,
	}
	e.isRunning.Store(true)
	e.currentStage = EngineStageBootComplete
	return e, nil
}

func (e *Engine) Initialize() error {
	if e.currentStage != EngineStageBootComplete {
		return fmt.Errorf("%w: engine cannot be initialized in stage %d", core.ErrNotInitialized, e.currentStage)
	}
	e.currentStage = EngineStageInitializing
	appConfig := e.gameInstance.ApplicationConfig

	if appConfig.LogLevel != "" {
		if err := core.SetLogLevel(appConfig.LogLevel); err != nil {
			return err
		}
	}

	// The terminal frontend owns the tty, logs go to a file instead.
	if appConfig.Frontend == FrontendTerminal {
		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		e.logFile = f
		core.SetLogOutput(f)
	}

	core.EventInitialize()
	core.InputInitialize()

	// register some events
	core.EventRegister(core.EVENT_CODE_APPLICATION_QUIT, e, e.onEvent)
	core.EventRegister(core.EVENT_CODE_KEY_PRESSED, e, e.onKey)
	core.EventRegister(core.EVENT_CODE_RESIZED, e, e.onResized)

	assetsDir := appConfig.AssetsDir
	if assetsDir == "" {
		assetsDir = "assets"
	}
	if err := e.assetManager.Initialize(assetsDir); err != nil {
		return err
	}

	if err := e.platform.Startup(appConfig.Name,
		appConfig.StartPosX,
		appConfig.StartPosY,
		appConfig.StartWidth,
		appConfig.StartHeight); err != nil {
		return err
	}
	if w, h := e.platform.FramebufferSize(); w != 0 && h != 0 {
		e.width, e.height = w, h
	}

	backend, err := e.newBackend(e.assetManager)
	if err != nil {
		return err
	}
	system := renderer.NewSystem(backend)
	if err := system.Initialize(appConfig.Name, e.width, e.height); err != nil {
		return err
	}
	// Shutdown only releases a backend that came up.
	e.renderer = system
	if appConfig.Camera != nil {
		applyCamera(e.renderer, appConfig.Camera)
	}

	if err := e.gameInstance.FnInitialize(); err != nil {
		return err
	}
	if err := e.gameInstance.FnOnResize(e.width, e.height); err != nil {
		return err
	}

	e.currentStage = EngineStageInitialized
	core.LogInfo("engine initialized (%s frontend, %dx%d)", appConfig.Frontend, e.width, e.height)
	return nil
}

func applyCamera(s *renderer.System, c *CameraConfig) {
	camera := s.Camera()
	camera.SetOrthographic(c.Left, c.Right, c.Bottom, c.Top, c.Near, c.Far)
	camera.SetPosition(c.Eye)
	camera.SetTarget(c.Target)
	if c.Up != (math.Vec3{}) {
		camera.Up = c.Up
	}
}

func (e *Engine) Run() error {
	if e.currentStage != EngineStageInitialized {
		return fmt.Errorf("%w: Run called before Initialize", core.ErrNotInitialized)
	}
	e.currentStage = EngineStageRunning

	e.clock.Start()
	e.clock.Update()
	e.lastTime = e.clock.Elapsed()

	// Terminals have no vsync to pace the loop.
	fps := e.gameInstance.ApplicationConfig.TargetFPS
	if fps == 0 && e.gameInstance.ApplicationConfig.Frontend == FrontendTerminal {
		fps = defaultTerminalFPS
	}
	var targetFrameSeconds float64
	if fps > 0 {
		targetFrameSeconds = 1.0 / float64(fps)
	}

	for e.isRunning.Load() {
		if !e.platform.PumpMessages() {
			e.isRunning.Store(false)
			break
		}
		e.assetManager.DispatchChanges()

		if e.isSuspended {
			platform.Sleep(100)
			continue
		}

		// Update clock and get delta time.
		e.clock.Update()
		var currentTime float64 = e.clock.Elapsed()
		var delta float64 = (currentTime - e.lastTime)
		var frameStartTime float64 = platform.GetAbsoluteTime()

		if err := e.gameInstance.FnUpdate(delta); err != nil {
			core.LogError("Game update failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}

		packet := &renderer.RenderPacket{DeltaTime: delta}
		// Call the game's render routine.
		if err := e.gameInstance.FnRender(packet, delta); err != nil {
			core.LogError("Game render failed, shutting down: %s", err)
			e.isRunning.Store(false)
			return err
		}
		if err := e.renderer.DrawFrame(packet); err != nil {
			e.isRunning.Store(false)
			return err
		}

		e.metrics.Update(delta)
		e.updateStatus()

		// Figure out how long the frame took and, if below the target, give
		// the rest back to the OS.
		var frameElapsedTime float64 = platform.GetAbsoluteTime() - frameStartTime
		if remainingSeconds := targetFrameSeconds - frameElapsedTime; targetFrameSeconds > 0 && remainingSeconds > 0 {
			platform.Sleep(remainingSeconds * 1000)
		}

		// NOTE: Input update/state copying should always be handled
		// after any input should be recorded; I.E. before this line.
		// As a safety, input is the last thing to be updated before
		// this frame ends.
		core.InputUpdate()

		// Update last time
		e.lastTime = currentTime
	}
	return nil
}

func (e *Engine) updateStatus() {
	if e.gameInstance.FnStatus == nil {
		return
	}
	fps, frameMS := e.metrics.Frame()
	if status := e.gameInstance.FnStatus(fps, frameMS); status != e.status {
		e.status = status
		e.platform.SetTitle(status)
	}
}

// Quit asks the run loop to stop after the current frame. Safe to call from
// any goroutine.
func (e *Engine) Quit() {
	e.isRunning.Store(false)
}

func (e *Engine) Shutdown() error {
	if e.currentStage == EngineStageShuttingDown {
		return nil
	}
	e.currentStage = EngineStageShuttingDown

	if e.gameInstance.FnShutdown != nil {
		if err := e.gameInstance.FnShutdown(); err != nil {
			core.LogError("%s", err)
		}
	}
	core.EventShutdown()
	core.InputShutdown()
	if e.renderer != nil {
		if err := e.renderer.Shutdown(); err != nil {
			return err
		}
	}
	if err := e.assetManager.Shutdown(); err != nil {
		return err
	}
	if err := e.platform.Shutdown(); err != nil {
		return err
	}
	if e.logFile != nil {
		core.SetLogOutput(os.Stderr)
		e.logFile.Close()
		e.logFile = nil
	}
	return nil
}

// GetFramebufferSize returns the width and height (in this order)
// of the application Framebuffer
func (e *Engine) GetFramebufferSize() (uint32, uint32) {
	return e.width, e.height
}

func (e *Engine) onEvent(context core.EventContext, _ any) bool {
	switch context.Type {
	case core.EVENT_CODE_APPLICATION_QUIT:
		core.LogInfo("EVENT_CODE_APPLICATION_QUIT received, shutting down.")
		e.isRunning.Store(false)
		return true
	}
	return false
}

func (e *Engine) onKey(context core.EventContext, _ any) bool {
	ke, ok := context.Data.(*core.KeyEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	if ke.KeyCode == core.KEY_ESCAPE {
		// NOTE: Technically firing an event to itself, but there may be other listeners.
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_APPLICATION_QUIT,
		})
		// Block anything else from processing this.
		return true
	}
	return false
}

func (e *Engine) onResized(context core.EventContext, _ any) bool {
	re, ok := context.Data.(*core.ResizeEvent)
	if !ok {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	width := uint32(re.Width)
	height := uint32(re.Height)

	// Check if different. If so, trigger a resize event.
	if width == e.width && height == e.height {
		return false
	}
	e.width = width
	e.height = height
	core.LogDebug("Window resize: %d, %d", width, height)

	// Handle minimization
	if width == 0 || height == 0 {
		core.LogInfo("Window minimized, suspending application.")
		e.isSuspended = true
		return true
	}
	if e.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		e.isSuspended = false
		// Do not feed the suspended time into the simulation.
		e.clock.Update()
		e.lastTime = e.clock.Elapsed()
	}
	if err := e.gameInstance.FnOnResize(width, height); err != nil {
		core.LogError("%s", err)
	}
	if e.renderer != nil {
		if err := e.renderer.OnResize(re.Width, re.Height); err != nil {
			core.LogError("%s", err)
		}
	}
	return false
}
