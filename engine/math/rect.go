package math

// NewRect creates a rectangle centred on offset with the given full extent.
func NewRect(offset, extent Vec2) Rect {
	return Rect{Offset: offset, Extent: extent}
}

// HalfExtent returns half of the width and height.
func (r Rect) HalfExtent() Vec2 {
	return r.Extent.MulScalar(0.5)
}

// Min returns the bottom-left corner.
func (r Rect) Min() Vec2 {
	return r.Offset.Sub(r.HalfExtent())
}

// Max returns the top-right corner.
func (r Rect) Max() Vec2 {
	return r.Offset.Add(r.HalfExtent())
}

/**
 * @brief Returns the model matrix that maps the unit quad centred on the
 * origin (corners at +-0.5) onto the rectangle.
 */
func (r Rect) Transform() Mat4 {
	m := NewMat4Identity()
	m.Translate(NewVec3(r.Offset.X, r.Offset.Y, 0.0))
	m.Scale(NewVec3(r.Extent.X, r.Extent.Y, 1.0))
	return m
}
