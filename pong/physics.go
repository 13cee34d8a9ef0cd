package pong

// Outcome reports whether a step ended a rally.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	// The ball left through the right edge.
	OutcomeLeftScored
	// The ball left through the left edge.
	OutcomeRightScored
)

func (o Outcome) String() string {
	switch o {
	case OutcomeLeftScored:
		return "left scored"
	case OutcomeRightScored:
		return "right scored"
	default:
		return "none"
	}
}

// Advance steps the simulation by dt seconds. The order is fixed: paddles
// integrate, the ball moves, the ball is tested against the left then the right
// paddle, bounced off the top and bottom walls, reset if it left the field, and
// finally the paddles are clamped to the field.
func Advance(s *State, dt float32) Outcome {
	advancePaddle(&s.Left, dt)
	advancePaddle(&s.Right, dt)

	ball := &s.Ball
	ball.Rect.Offset = ball.Rect.Offset.Add(ball.Velocity.MulScalar(dt))

	if hitsPaddle(ball, &s.Left) {
		bounce(ball, &s.Left, s.Tuning, s.Left.Rect.Max().X)
	}
	if hitsPaddle(ball, &s.Right) {
		bounce(ball, &s.Right, s.Tuning, s.Right.Rect.Min().X)
	}

	bounceWalls(ball)
	outcome := checkExit(ball, s.Tuning)

	clampPaddle(&s.Left)
	clampPaddle(&s.Right)
	return outcome
}

// advancePaddle integrates with damping folded into the acceleration.
func advancePaddle(p *Paddle, dt float32) {
	p.Acceleration -= p.Velocity * p.Damping
	p.Rect.Offset.Y = p.Rect.Offset.Y + p.Velocity*dt + p.Acceleration*dt*dt*0.5
	p.Velocity = p.Velocity + p.Acceleration*dt
}

// hitsPaddle is true when the ball lies strictly inside the paddle horizontally
// and the ball's top edge lies strictly inside it vertically.
func hitsPaddle(b *Ball, p *Paddle) bool {
	bh := b.Rect.HalfExtent()
	ph := p.Rect.HalfExtent()
	bo, po := b.Rect.Offset, p.Rect.Offset

	return bo.X+bh.X < po.X+ph.X &&
		bo.X-bh.X > po.X-ph.X &&
		bo.Y+bh.Y < po.Y+ph.Y &&
		bo.Y+bh.Y > po.Y-ph.Y
}

func bounce(b *Ball, p *Paddle, t Tuning, face float32) {
	b.Rect.Offset.X = face
	b.Velocity.X *= -t.BounceGain
	b.Velocity.Y = (b.Rect.Offset.Y-p.Rect.Offset.Y)*t.OffsetGain + p.Velocity*t.SpinTransfer
}

func bounceWalls(b *Ball) {
	half := b.Rect.HalfExtent().Y
	if b.Rect.Offset.Y+half > 1 {
		b.Rect.Offset.Y = 1 - half
		b.Velocity.Y *= -1
	}
	if b.Rect.Offset.Y-half < -1 {
		b.Rect.Offset.Y = -1 + half
		b.Velocity.Y *= -1
	}
}

func checkExit(b *Ball, t Tuning) Outcome {
	half := b.Rect.HalfExtent().X
	switch {
	case b.Rect.Offset.X-half < -1:
		resetBall(b, t)
		return OutcomeRightScored
	case b.Rect.Offset.X+half > 1:
		resetBall(b, t)
		return OutcomeLeftScored
	}
	return OutcomeNone
}

func resetBall(b *Ball, t Tuning) {
	b.Rect.Offset.X, b.Rect.Offset.Y = 0, 0
	b.Velocity = t.ResetVelocity
}

func clampPaddle(p *Paddle) {
	half := p.Rect.HalfExtent().Y
	if p.Rect.Offset.Y+half > 1 {
		p.Rect.Offset.Y = 1 - half
		p.Velocity = 0
	}
	if p.Rect.Offset.Y-half < -1 {
		p.Rect.Offset.Y = -1 + half
		p.Velocity = 0
	}
}
