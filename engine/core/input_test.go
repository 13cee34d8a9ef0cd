package core

import "testing"

func TestInputKeyTransitions(t *testing.T) {
	EventInitialize()
	InputInitialize()
	defer EventShutdown()
	defer InputShutdown()

	var pressed, released []KeyCode
	EventRegister(EVENT_CODE_KEY_PRESSED, "test", func(ctx EventContext, _ any) bool {
		pressed = append(pressed, ctx.Data.(*KeyEvent).KeyCode)
		return false
	})
	EventRegister(EVENT_CODE_KEY_RELEASED, "test", func(ctx EventContext, _ any) bool {
		released = append(released, ctx.Data.(*KeyEvent).KeyCode)
		return false
	})

	InputProcessKey(KEY_W, true)
	InputProcessKey(KEY_W, true)
	if !InputIsKeyDown(KEY_W) || !InputIsKeyPressed(KEY_W) {
		t.Fatal("expected W to be down and freshly pressed")
	}
	if len(pressed) != 1 {
		t.Errorf("expected a repeated press to fire once, got %d", len(pressed))
	}

	InputUpdate()
	if InputIsKeyPressed(KEY_W) {
		t.Error("expected W to no longer count as freshly pressed after update")
	}
	if !InputWasKeyDown(KEY_W) {
		t.Error("expected the previous state to remember W")
	}

	InputProcessKey(KEY_W, false)
	if !InputIsKeyUp(KEY_W) {
		t.Error("expected W to be up")
	}
	if len(released) != 1 || released[0] != KEY_W {
		t.Errorf("unexpected release events: %v", released)
	}
}

func TestInputOutOfRangeKey(t *testing.T) {
	InputInitialize()
	defer InputShutdown()

	InputProcessKey(KEYS_MAX_KEYS, true)
	if InputIsKeyDown(KEYS_MAX_KEYS) {
		t.Error("expected out of range keys to be ignored")
	}
}
