package core

import "sync"

// EventCode identifies a kind of event. Application codes start at APPLICATION_EVENT_CODE.
type EventCode uint16

const (
	// Shuts the application down on the next frame.
	EVENT_CODE_APPLICATION_QUIT EventCode = 0x01

	// Keyboard key pressed. Data is a *KeyEvent.
	EVENT_CODE_KEY_PRESSED EventCode = 0x02

	// Keyboard key released. Data is a *KeyEvent.
	EVENT_CODE_KEY_RELEASED EventCode = 0x03

	// Resized/resolution changed from the OS. Data is a *ResizeEvent.
	EVENT_CODE_RESIZED EventCode = 0x08

	// An asset on disk changed. Data is the asset path as a string.
	EVENT_CODE_ASSET_CHANGED EventCode = 0x09

	MAX_SYSTEM_EVENT_CODE EventCode = 0xFF

	APPLICATION_EVENT_CODE EventCode = MAX_SYSTEM_EVENT_CODE + 1
)

type EventContext struct {
	Type EventCode
	Data any
}

type KeyEvent struct {
	KeyCode KeyCode
}

type ResizeEvent struct {
	Width  uint16
	Height uint16
}

// Should return true if handled.
type FnOnEvent func(context EventContext, listener any) bool

type registeredEvent struct {
	listener any
	callback FnOnEvent
}

type eventSystemState struct {
	mu         sync.RWMutex
	registered map[EventCode][]registeredEvent
}

var eventState *eventSystemState

// EventInitialize (re)creates the event registry. Previous registrations are dropped.
func EventInitialize() {
	eventState = &eventSystemState{
		registered: make(map[EventCode][]registeredEvent),
	}
}

func EventShutdown() {
	if eventState == nil {
		return
	}
	eventState.mu.Lock()
	eventState.registered = make(map[EventCode][]registeredEvent)
	eventState.mu.Unlock()
}

/**
 * Register to listen for when events are sent with the provided code. A listener may
 * only be registered once per code; a duplicate registration returns false.
 * @param code The event code to listen for.
 * @param listener The listener instance, handed back to the callback. Can be nil.
 * @param onEvent The callback to be invoked when the event code is fired.
 * @returns true if the event is successfully registered; otherwise false.
 */
func EventRegister(code EventCode, listener any, onEvent FnOnEvent) bool {
	if eventState == nil || onEvent == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	for _, e := range eventState.registered[code] {
		if e.listener == listener {
			LogWarn("listener already registered for event code %d", code)
			return false
		}
	}
	eventState.registered[code] = append(eventState.registered[code], registeredEvent{
		listener: listener,
		callback: onEvent,
	})
	return true
}

/**
 * Unregister a listener from the provided code.
 * @returns true if a registration was removed; otherwise false.
 */
func EventUnregister(code EventCode, listener any) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.Lock()
	defer eventState.mu.Unlock()

	events := eventState.registered[code]
	for i, e := range events {
		if e.listener == listener {
			eventState.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	return false
}

/**
 * Fires an event to listeners of the given code. If an event handler returns
 * true, the event is considered handled and is not passed on to any more listeners.
 * @returns true if handled, otherwise false.
 */
func EventFire(context EventContext) bool {
	if eventState == nil {
		return false
	}
	eventState.mu.RLock()
	events := append([]registeredEvent(nil), eventState.registered[context.Type]...)
	eventState.mu.RUnlock()

	for _, e := range events {
		if e.callback(context, e.listener) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}
