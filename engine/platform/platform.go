package platform

import "time"

var startTime = time.Now()

// Platform is the host surface the engine runs on: it owns the OS window or
// terminal, pumps native events into the input and event systems and reports
// the framebuffer size.
type Platform interface {
	Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error
	// PumpMessages processes pending native events. Returns false once the
	// platform has been asked to close.
	PumpMessages() bool
	SetTitle(title string)
	FramebufferSize() (uint32, uint32)
	Shutdown() error
}

// GetAbsoluteTime returns the seconds elapsed since the process started.
func GetAbsoluteTime() float64 {
	return time.Since(startTime).Seconds()
}

// Sleep gives the remaining frame time back to the OS.
func Sleep(ms float64) {
	time.Sleep(time.Duration(ms * float64(time.Millisecond)))
}
