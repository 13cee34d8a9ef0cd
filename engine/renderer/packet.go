package renderer

import "github.com/spaghettifunk/pong/engine/math"

// Quad is a unit square (corners at ±0.5) placed in the world by Transform.
type Quad struct {
	Transform math.Mat4
	Colour    math.Vec4
}

// RenderPacket is everything the renderer needs to draw one frame.
type RenderPacket struct {
	DeltaTime   float64
	ClearColour math.Vec4
	Quads       []Quad
}
