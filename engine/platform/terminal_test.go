package platform

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spaghettifunk/pong/engine/core"
)

func newTestTerminal(t *testing.T) (*Terminal, *time.Time) {
	t.Helper()
	core.EventInitialize()
	core.InputInitialize()
	t.Cleanup(func() {
		core.InputShutdown()
		core.EventShutdown()
	})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	term := NewTerminalWithScreen(tcell.NewSimulationScreen("UTF-8"))
	term.now = func() time.Time { return now }
	return term, &now
}

func TestTerminalKeyHoldExpires(t *testing.T) {
	term, now := newTestTerminal(t)

	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	if !core.InputIsKeyDown(core.KEY_W) {
		t.Fatal("expected W to be held after a press")
	}

	*now = now.Add(term.KeyHold / 2)
	term.releaseExpired()
	if !core.InputIsKeyDown(core.KEY_W) {
		t.Fatal("expected W to stay held within the hold window")
	}

	// An auto-repeat press extends the hold.
	term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone))
	*now = now.Add(term.KeyHold * 3 / 4)
	term.releaseExpired()
	if !core.InputIsKeyDown(core.KEY_W) {
		t.Fatal("expected the repeat press to extend the hold")
	}

	*now = now.Add(term.KeyHold)
	term.releaseExpired()
	if core.InputIsKeyDown(core.KEY_W) {
		t.Error("expected W to be released once the hold expired")
	}
}

func TestTerminalCtrlCCloses(t *testing.T) {
	term, _ := newTestTerminal(t)

	if !term.PumpMessages() {
		t.Fatal("expected an idle terminal to keep running")
	}
	term.handleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl))
	if term.PumpMessages() {
		t.Error("expected ctrl+c to close the terminal")
	}
}

func TestTerminalResizeFiresEvent(t *testing.T) {
	term, _ := newTestTerminal(t)

	var got *core.ResizeEvent
	core.EventRegister(core.EVENT_CODE_RESIZED, "test", func(ctx core.EventContext, _ any) bool {
		got = ctx.Data.(*core.ResizeEvent)
		return true
	})

	term.handleEvent(tcell.NewEventResize(120, 40))
	if got == nil || got.Width != 120 || got.Height != 40 {
		t.Errorf("expected a 120x40 resize event, got %+v", got)
	}
}

func TestTerminalStartupAndShutdown(t *testing.T) {
	term, _ := newTestTerminal(t)

	if err := term.Startup("pong", 0, 0, 0, 0); err != nil {
		t.Fatalf("startup: %v", err)
	}
	term.Screen().(tcell.SimulationScreen).SetSize(100, 30)
	if w, h := term.FramebufferSize(); w != 100 || h != 30 {
		t.Errorf("expected 100x30 cells, got %dx%d", w, h)
	}
	if term.Title() != "pong" {
		t.Errorf("expected the application name as initial title, got %q", term.Title())
	}
	if err := term.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if err := term.Shutdown(); err != nil {
		t.Fatalf("second shutdown: %v", err)
	}
}
