package core

import "github.com/spaghettifunk/pong/engine/containers"

const AVG_COUNT int = 30

// Metrics tracks a rolling frame time average and the frames rendered
// during the last full second.
type Metrics struct {
	frameTimes         *containers.RingQueue[float64]
	frameTimeSum       float64
	MSavg              float64
	Frames             int32
	AccumulatedFrameMS float64
	FPS                float64
}

func NewMetrics() *Metrics {
	return &Metrics{
		frameTimes: containers.NewRingQueue[float64](AVG_COUNT),
	}
}

func (m *Metrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	if m.frameTimes.IsFull() {
		oldest, _ := m.frameTimes.Dequeue()
		m.frameTimeSum -= oldest
	}
	_ = m.frameTimes.Enqueue(frameMS)
	m.frameTimeSum += frameMS
	m.MSavg = m.frameTimeSum / float64(m.frameTimes.Len())

	// Calculate Frames per second.
	m.AccumulatedFrameMS += frameMS
	if m.AccumulatedFrameMS > 1000 {
		m.FPS = float64(m.Frames)
		m.AccumulatedFrameMS -= 1000
		m.Frames = 0
	}

	// Count all Frames.
	m.Frames++
}

func (m *Metrics) FPSValue() float64 {
	return m.FPS
}

func (m *Metrics) FrameTime() float64 {
	return m.MSavg
}

func (m *Metrics) Frame() (float64, float64) {
	return m.FPS, m.MSavg
}
