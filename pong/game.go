package pong

import (
	"fmt"
	"path/filepath"

	"github.com/spaghettifunk/pong/engine"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/math"
	"github.com/spaghettifunk/pong/engine/renderer"
)

const (
	// Fired after every point. Data is the Outcome.
	EVENT_CODE_POINT_SCORED core.EventCode = core.APPLICATION_EVENT_CODE + iota
	// Fired once a side reaches the win score. Data is the winning Side.
	EVENT_CODE_MATCH_OVER
)

var (
	clearColour  = math.NewVec4(0.1, 0.1, 0.1, 1.0)
	ballColour   = math.NewVec4(1.0, 1.0, 1.0, 1.0)
	paddleColour = math.NewVec4(0.9, 0.9, 0.9, 1.0)
)

// Game drives the simulation from the engine callbacks.
type Game struct {
	engine     *engine.Game
	config     *Config
	configPath string
	state      *State
	score      *Scoreboard
	paused     bool
}

// NewGame wires a pong match into the engine callbacks. configPath is watched
// for tuning changes while the game runs; it may be empty.
func NewGame(cfg *Config, configPath string, assetsDir string) *engine.Game {
	g := &Game{
		config:     cfg,
		configPath: configPath,
		state:      NewState(cfg),
		score:      NewScoreboard(cfg.Match.WinScore),
	}
	g.engine = &engine.Game{
		ApplicationConfig: cfg.EngineConfig(assetsDir),
		State:             g,
		FnInitialize:      g.Initialize,
		FnUpdate:          g.Update,
		FnRender:          g.Render,
		FnOnResize:        g.OnResize,
		FnShutdown:        g.Shutdown,
		FnStatus:          g.Status,
	}
	return g.engine
}

func (g *Game) Initialize() error {
	core.EventRegister(core.EVENT_CODE_ASSET_CHANGED, g, g.onAssetChanged)

	if g.configPath != "" && g.engine.AssetManager != nil {
		abs, err := filepath.Abs(g.configPath)
		if err != nil {
			return err
		}
		g.configPath = abs
		if err := g.engine.AssetManager.Watch(abs); err != nil {
			core.LogWarn("config hot reload disabled: %s", err)
		}
	}

	core.LogInfo("match %s started", g.score.MatchID)
	return nil
}

func (g *Game) Update(deltaTime float64) error {
	if core.InputIsKeyPressed(core.KEY_R) {
		g.restart()
	}
	if core.InputIsKeyPressed(core.KEY_P) && !g.score.IsOver() {
		g.paused = !g.paused
		core.LogDebug("paused: %t", g.paused)
	}
	if g.paused || g.score.IsOver() {
		return nil
	}

	g.state.Left.Acceleration = g.paddleInput(core.KEY_W, core.KEY_S)
	g.state.Right.Acceleration = g.paddleInput(core.KEY_UP, core.KEY_DOWN)

	if outcome := Advance(g.state, float32(deltaTime)); outcome != OutcomeNone {
		g.onPoint(outcome)
	}
	return nil
}

func (g *Game) paddleInput(up, down core.KeyCode) float32 {
	var acceleration float32
	if core.InputIsKeyDown(up) {
		acceleration += g.state.Tuning.PaddleAcceleration
	}
	if core.InputIsKeyDown(down) {
		acceleration -= g.state.Tuning.PaddleAcceleration
	}
	return acceleration
}

func (g *Game) onPoint(outcome Outcome) {
	g.score.Record(outcome)
	core.LogInfo("match %s: %s, score %s", g.score.MatchID, outcome, g.score)
	core.EventFire(core.EventContext{
		Type: EVENT_CODE_POINT_SCORED,
		Data: outcome,
	})

	if winner := g.score.Winner(); winner != SideNone {
		core.LogInfo("match %s: %s side wins %s", g.score.MatchID, winner, g.score)
		core.EventFire(core.EventContext{
			Type: EVENT_CODE_MATCH_OVER,
			Data: winner,
		})
	}
}

func (g *Game) restart() {
	g.state = NewState(g.config)
	g.score.Reset()
	g.paused = false
	core.LogInfo("match %s started", g.score.MatchID)
}

func (g *Game) Render(packet *renderer.RenderPacket, deltaTime float64) error {
	packet.ClearColour = clearColour
	packet.Quads = append(packet.Quads,
		renderer.Quad{Transform: g.state.Ball.Rect.Transform(), Colour: ballColour},
		renderer.Quad{Transform: g.state.Left.Rect.Transform(), Colour: paddleColour},
		renderer.Quad{Transform: g.state.Right.Rect.Transform(), Colour: paddleColour},
	)
	return nil
}

func (g *Game) OnResize(width uint32, height uint32) error {
	core.LogDebug("playfield resized to %dx%d", width, height)
	return nil
}

func (g *Game) Shutdown() error {
	core.EventUnregister(core.EVENT_CODE_ASSET_CHANGED, g)
	core.LogInfo("match %s ended at %s", g.score.MatchID, g.score)
	return nil
}

func (g *Game) Status(fps float64, frameMS float64) string {
	status := fmt.Sprintf("%s | %s | %.0f fps", g.config.Application.Name, g.score, fps)
	switch {
	case g.score.IsOver():
		status += fmt.Sprintf(" | %s wins, R to restart", g.score.Winner())
	case g.paused:
		status += " | paused"
	}
	return status
}

func (g *Game) onAssetChanged(context core.EventContext, _ any) bool {
	path, ok := context.Data.(string)
	if !ok || path != g.configPath {
		return false
	}

	res, err := g.engine.AssetManager.LoadPath(path)
	if err != nil {
		core.LogWarn("failed to reload %s: %s", path, err)
		return true
	}
	cfg, err := ParseConfig(res.Data)
	if err != nil {
		core.LogWarn("ignoring invalid config %s: %s", path, err)
		return true
	}

	g.state.ApplyTuning(cfg)
	g.score.WinScore = cfg.Match.WinScore
	// Window and camera settings only apply on the next start.
	cfg.Application = g.config.Application
	cfg.Camera = g.config.Camera
	g.config = cfg
	core.LogInfo("tuning reloaded from %s", path)
	return true
}
