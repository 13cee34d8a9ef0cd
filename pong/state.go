package pong

import "github.com/spaghettifunk/pong/engine/math"

// Tuning holds the constants of the physics step.
type Tuning struct {
	// Acceleration applied while a paddle key is held.
	PaddleAcceleration float32
	// Factor applied to the ball's horizontal speed on a paddle hit; its sign is flipped.
	BounceGain float32
	// Vertical speed gained per unit of distance between ball and paddle centres.
	OffsetGain float32
	// Share of the paddle's velocity transferred to the ball on a hit.
	SpinTransfer float32
	// Ball velocity after a point is scored.
	ResetVelocity math.Vec2
}

// Paddle moves along Y only.
type Paddle struct {
	Rect         math.Rect
	Velocity     float32
	Acceleration float32
	Damping      float32
}

type Ball struct {
	Rect     math.Rect
	Velocity math.Vec2
}

// State is the whole simulation. Only Advance mutates it, apart from the paddle
// accelerations which input sets before every call.
type State struct {
	Left   Paddle
	Right  Paddle
	Ball   Ball
	Tuning Tuning
}

// NewState places paddles and ball at their configured start.
func NewState(cfg *Config) *State {
	return &State{
		Left:  newPaddle(cfg.LeftPaddle),
		Right: newPaddle(cfg.RightPaddle),
		Ball: Ball{
			Rect:     math.NewRect(vec2(cfg.Ball.Offset), vec2(cfg.Ball.Extent)),
			Velocity: vec2(cfg.Ball.LaunchVelocity),
		},
		Tuning: cfg.Tuning(),
	}
}

func newPaddle(cfg PaddleConfig) Paddle {
	return Paddle{
		Rect:    math.NewRect(vec2(cfg.Offset), vec2(cfg.Extent)),
		Damping: cfg.Damping,
	}
}

// ApplyTuning swaps in new constants, sizes and dampings. Positions and
// velocities are kept.
func (s *State) ApplyTuning(cfg *Config) {
	s.Tuning = cfg.Tuning()
	s.Left.Damping = cfg.LeftPaddle.Damping
	s.Left.Rect.Extent = vec2(cfg.LeftPaddle.Extent)
	s.Right.Damping = cfg.RightPaddle.Damping
	s.Right.Rect.Extent = vec2(cfg.RightPaddle.Extent)
	s.Ball.Rect.Extent = vec2(cfg.Ball.Extent)
}
