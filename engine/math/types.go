package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored in column-major order, so the translation lives in
 * Data[12], Data[13] and Data[14].
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief An axis-aligned rectangle described by its centre and its full size.
 * Half of the extent is used on each side of the offset.
 */
type Rect struct {
	/** @brief The centre of the rectangle. */
	Offset Vec2
	/** @brief The full width (X) and height (Y) of the rectangle. */
	Extent Vec2
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3
}
