package pong

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/pong/engine/assets"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/engine/renderer"
)

func newTestGame(t *testing.T, cfg *Config) *Game {
	t.Helper()
	core.EventInitialize()
	core.InputInitialize()
	t.Cleanup(func() {
		core.InputShutdown()
		core.EventShutdown()
	})

	eg := NewGame(cfg, "", "")
	g, ok := eg.State.(*Game)
	if !ok {
		t.Fatalf("expected the engine state to be *Game, got %T", eg.State)
	}
	if err := g.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return g
}

// tap presses key for one frame and releases it before the next.
func tap(t *testing.T, g *Game, key core.KeyCode) {
	t.Helper()
	core.InputProcessKey(key, true)
	if err := g.Update(0.016); err != nil {
		t.Fatalf("update: %v", err)
	}
	core.InputUpdate()
	core.InputProcessKey(key, false)
	core.InputUpdate()
}

func TestGameInputMovesPaddles(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	core.InputProcessKey(core.KEY_W, true)
	core.InputProcessKey(core.KEY_DOWN, true)
	for i := 0; i < 5; i++ {
		if err := g.Update(0.016); err != nil {
			t.Fatalf("update: %v", err)
		}
		core.InputUpdate()
	}

	if g.state.Left.Velocity <= 0 || g.state.Left.Rect.Offset.Y <= 0 {
		t.Errorf("expected W to move the left paddle up, got %+v", g.state.Left)
	}
	if g.state.Right.Velocity >= 0 || g.state.Right.Rect.Offset.Y >= 0 {
		t.Errorf("expected Down to move the right paddle down, got %+v", g.state.Right)
	}

	core.InputProcessKey(core.KEY_W, false)
	core.InputProcessKey(core.KEY_DOWN, false)
	if err := g.Update(0.016); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.state.Left.Acceleration != 0 || g.state.Right.Acceleration != 0 {
		t.Errorf("expected released keys to stop accelerating, got %v and %v",
			g.state.Left.Acceleration, g.state.Right.Acceleration)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	tap(t, g, core.KEY_P)
	if !g.paused {
		t.Fatal("expected P to pause")
	}
	before := g.state.Ball
	if err := g.Update(0.016); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.state.Ball != before {
		t.Errorf("expected the ball to stay still while paused, moved to %+v", g.state.Ball)
	}
	if !strings.HasSuffix(g.Status(60, 16), " | paused") {
		t.Errorf("expected the status to show the pause, got %q", g.Status(60, 16))
	}

	tap(t, g, core.KEY_P)
	if g.paused {
		t.Fatal("expected a second P to resume")
	}
}

func TestGameScoring(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Match.WinScore = 1
	g := newTestGame(t, cfg)

	var points []Outcome
	var winners []Side
	core.EventRegister(EVENT_CODE_POINT_SCORED, t, func(context core.EventContext, _ any) bool {
		points = append(points, context.Data.(Outcome))
		return true
	})
	core.EventRegister(EVENT_CODE_MATCH_OVER, t, func(context core.EventContext, _ any) bool {
		winners = append(winners, context.Data.(Side))
		return true
	})

	// Ball slips past the left paddle.
	g.state.Ball.Rect.Offset.X = -0.98
	g.state.Ball.Rect.Offset.Y = 0.9
	g.state.Ball.Velocity.X = -1
	if err := g.Update(0.1); err != nil {
		t.Fatalf("update: %v", err)
	}

	if len(points) != 1 || points[0] != OutcomeRightScored {
		t.Fatalf("expected one point for the right side, got %v", points)
	}
	if len(winners) != 1 || winners[0] != SideRight {
		t.Fatalf("expected the right side to win, got %v", winners)
	}
	if g.score.Right != 1 || g.score.Left != 0 {
		t.Errorf("unexpected score %s", g.score)
	}
	if status := g.Status(60, 16); status != "pong | 0 - 1 | 60 fps | right wins, R to restart" {
		t.Errorf("unexpected status %q", status)
	}

	before := g.state.Ball
	if err := g.Update(0.1); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.state.Ball != before {
		t.Error("expected the simulation to stop once the match is over")
	}

	tap(t, g, core.KEY_P)
	if g.paused {
		t.Error("expected P to be ignored once the match is over")
	}

	id := g.score.MatchID
	tap(t, g, core.KEY_R)
	if g.score.IsOver() || g.score.MatchID == id {
		t.Errorf("expected R to start a new match, got %+v", g.score)
	}
}

func TestGameStatus(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	if status := g.Status(59.6, 16.7); status != "pong | 0 - 0 | 60 fps" {
		t.Errorf("unexpected status %q", status)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, DefaultConfig())

	packet := &renderer.RenderPacket{}
	if err := g.Render(packet, 0.016); err != nil {
		t.Fatalf("render: %v", err)
	}
	if packet.ClearColour != clearColour {
		t.Errorf("unexpected clear colour %+v", packet.ClearColour)
	}
	if len(packet.Quads) != 3 {
		t.Fatalf("expected ball and two paddles, got %d quads", len(packet.Quads))
	}

	want := []struct {
		name string
		x, y float32
	}{
		{"ball", 0, 0},
		{"left paddle", -0.95, 0},
		{"right paddle", 0.95, 0},
	}
	for i, w := range want {
		t.Run(w.name, func(t *testing.T) {
			m := packet.Quads[i].Transform
			if m.Data[12] != w.x || m.Data[13] != w.y {
				t.Errorf("expected translation (%v, %v), got (%v, %v)", w.x, w.y, m.Data[12], m.Data[13])
			}
		})
	}
}

func newHotReloadGame(t *testing.T, initial string) (*Game, *assets.AssetManager, string) {
	t.Helper()
	root := t.TempDir()
	path := filepath.Join(root, "config", "pong.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(initial), 0o644); err != nil {
		t.Fatal(err)
	}

	core.EventInitialize()
	core.InputInitialize()
	t.Cleanup(func() {
		core.InputShutdown()
		core.EventShutdown()
	})

	am, err := assets.NewAssetManager()
	if err != nil {
		t.Fatalf("new asset manager: %v", err)
	}
	if err := am.Initialize(root); err != nil {
		t.Fatalf("initialize assets: %v", err)
	}
	t.Cleanup(func() { am.Shutdown() })

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	eg := NewGame(cfg, path, root)
	eg.AssetManager = am
	g := eg.State.(*Game)
	if err := g.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return g, am, path
}

func TestGameHotReload(t *testing.T) {
	g, am, path := newHotReloadGame(t, "[match]\nwin_score = 0\n")

	g.state.Ball.Rect.Offset.X = 0.3
	update := "[physics]\npaddle_acceleration = 80.0\n\n[match]\nwin_score = 3\n\n[application]\nwidth = 640\n"
	if err := os.WriteFile(path, []byte(update), 0o644); err != nil {
		t.Fatal(err)
	}

	deadline := time.Now().Add(5 * time.Second)
	for g.state.Tuning.PaddleAcceleration != 80 {
		if time.Now().After(deadline) {
			t.Fatal("timed out waiting for the config reload")
		}
		am.DispatchChanges()
		time.Sleep(10 * time.Millisecond)
	}

	if g.score.WinScore != 3 {
		t.Errorf("expected the win score to reload, got %d", g.score.WinScore)
	}
	if g.state.Ball.Rect.Offset.X != 0.3 {
		t.Errorf("expected the ball position to survive a reload, got %+v", g.state.Ball.Rect.Offset)
	}
	if g.config.Application.Width != 1600 {
		t.Errorf("expected window settings to wait for a restart, got width %d", g.config.Application.Width)
	}
}

func TestGameHotReloadIgnoresInvalidConfig(t *testing.T) {
	g, _, path := newHotReloadGame(t, "[match]\nwin_score = 2\n")

	if err := os.WriteFile(path, []byte("[physics]\ngravity = 9.8\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g.onAssetChanged(core.EventContext{Type: core.EVENT_CODE_ASSET_CHANGED, Data: path}, nil)

	if g.state.Tuning != DefaultConfig().Tuning() || g.score.WinScore != 2 {
		t.Errorf("expected an invalid file to keep the running config, got %+v win score %d",
			g.state.Tuning, g.score.WinScore)
	}
}
