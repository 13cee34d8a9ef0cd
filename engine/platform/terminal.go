package platform

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spaghettifunk/pong/engine/core"
)

// DefaultKeyHold is how long a terminal key press counts as held. Terminals
// report no key release, so auto-repeat presses keep extending the hold.
const DefaultKeyHold = 150 * time.Millisecond

// Terminal runs the engine inside a tcell screen.
type Terminal struct {
	screen  tcell.Screen
	events  chan tcell.Event
	quit    chan struct{}
	held    map[core.KeyCode]time.Time
	closed  bool
	title   string
	KeyHold time.Duration
	now     func() time.Time
	started bool
}

func NewTerminal() *Terminal {
	return NewTerminalWithScreen(nil)
}

// NewTerminalWithScreen runs on the provided screen instead of the process tty.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen:  screen,
		events:  make(chan tcell.Event, 100),
		quit:    make(chan struct{}),
		held:    make(map[core.KeyCode]time.Time),
		KeyHold: DefaultKeyHold,
		now:     time.Now,
	}
}

// Startup initializes the screen. Position and size are decided by the terminal.
func (t *Terminal) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if t.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("%w: failed to create terminal screen: %w", core.ErrPlatformStartup, err)
		}
		t.screen = screen
	}
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("%w: failed to initialize terminal screen: %w", core.ErrPlatformStartup, err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	t.title = applicationName
	t.started = true

	go t.pollEvents()

	w, h := t.screen.Size()
	core.LogInfo("terminal screen initialized: %dx%d cells", w, h)
	return nil
}

func (t *Terminal) pollEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			return
		}
		select {
		case t.events <- ev:
		case <-t.quit:
			return
		}
	}
}

func (t *Terminal) Shutdown() error {
	if !t.started {
		return nil
	}
	t.started = false
	close(t.quit)
	t.screen.Fini()
	return nil
}

func (t *Terminal) PumpMessages() bool {
	for drained := false; !drained; {
		select {
		case ev := <-t.events:
			t.handleEvent(ev)
		default:
			drained = true
		}
	}
	t.releaseExpired()
	return !t.closed
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'c' && ev.Modifiers()&tcell.ModCtrl != 0) {
			t.closed = true
			return
		}
		code := translateTcellKey(ev)
		if code == core.KEY_UNKNOWN {
			return
		}
		core.InputProcessKey(code, true)
		t.held[code] = t.now().Add(t.KeyHold)
	case *tcell.EventResize:
		w, h := ev.Size()
		core.EventFire(core.EventContext{
			Type: core.EVENT_CODE_RESIZED,
			Data: &core.ResizeEvent{
				Width:  uint16(w),
				Height: uint16(h),
			},
		})
	}
}

// releaseExpired releases every key whose hold ran out.
func (t *Terminal) releaseExpired() {
	now := t.now()
	for code, until := range t.held {
		if now.After(until) {
			delete(t.held, code)
			core.InputProcessKey(code, false)
		}
	}
}

func (t *Terminal) SetTitle(title string) {
	t.title = title
}

// Title is drawn as the status line by the terminal renderer.
func (t *Terminal) Title() string {
	return t.title
}

func (t *Terminal) FramebufferSize() (uint32, uint32) {
	if t.screen == nil {
		return 0, 0
	}
	w, h := t.screen.Size()
	return uint32(w), uint32(h)
}

func (t *Terminal) Screen() tcell.Screen {
	return t.screen
}
