package math

import (
	"github.com/chewxy/math32"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Axes shorter than this are ignored by Rotate. */
	K_AXIS_EPSILON float32 = 1e-4
)

func ksin(x float32) float32 {
	return math32.Sin(x)
}

func kcos(x float32) float32 {
	return math32.Cos(x)
}

func ktan(x float32) float32 {
	return math32.Tan(x)
}

func ksqrt(x float32) float32 {
	return math32.Sqrt(x)
}

func kabs(x float32) float32 {
	return math32.Abs(x)
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 */
func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add adds other to v and returns a copy of the result.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub subtracts other from v and returns a copy of the result.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Mul multiplies v by other component-wise and returns a copy of the result.
func (v Vec2) Mul(other Vec2) Vec2 {
	return Vec2{v.X * other.X, v.Y * other.Y}
}

func (v Vec2) MulScalar(scalar float32) Vec2 {
	return Vec2{v.X * scalar, v.Y * scalar}
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with every component set to v.
 */
func NewVec3All(v float32) Vec3 {
	return Vec3{v, v, v}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0f.
 */
func NewVec3Zero() Vec3 {
	return Vec3{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up() Vec3 {
	return Vec3{0.0, 1.0, 0.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 */
func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3) LengthSquared() float32 {
	return v.Dot(v)
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3) Length() float32 {
	return ksqrt(v.LengthSquared())
}

/**
 * @brief Returns v divided by its length. A zero-length vector yields NaN
 * components; callers are expected to pass a non-zero vector.
 */
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	return Vec3{
		v.X / length,
		v.Y / length,
		v.Z / length}
}

/**
 * @brief Returns the dot product between v and other.
 * Typically used to calculate the difference in direction.
 */
func (v Vec3) Dot(other Vec3) float32 {
	p := float32(0)
	p += v.X * other.X
	p += v.Y * other.Y
	p += v.Z * other.Z
	return p
}

/**
 * @brief Calculates and returns the cross product of v and other.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - other.Y*v.Z,
		v.Z*other.X - other.Z*v.X,
		v.X*other.Y - other.X*v.Y}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param tolerance The difference tolerance.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3) Compare(other Vec3, tolerance float32) bool {
	if kabs(v.X-other.X) > tolerance {
		return false
	}
	if kabs(v.Y-other.Y) > tolerance {
		return false
	}
	if kabs(v.Z-other.Z) > tolerance {
		return false
	}
	return true
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

/**
 * @brief Transforms v as a point (w = 1) by the provided matrix.
 * The w component of the result is dropped, so this is only meaningful
 * for affine and orthographic matrices.
 */
func (v Vec3) Transform(m Mat4) Vec3 {
	d := m.Data
	return Vec3{
		d[0]*v.X + d[4]*v.Y + d[8]*v.Z + d[12],
		d[1]*v.X + d[5]*v.Y + d[9]*v.Z + d[13],
		d[2]*v.X + d[6]*v.Y + d[10]*v.Z + d[14]}
}

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

// ------------------------------------------
// Matrix 4
// ------------------------------------------

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity() Mat4 {
	out_matrix := Mat4{}
	out_matrix.Identity()
	return out_matrix
}

/**
 * @brief Overwrites the matrix with the identity matrix.
 */
func (mt *Mat4) Identity() {
	mt.Data = [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

/**
 * @brief Returns the result of multiplying mt by other (mt * other).
 *
 * Element (row i, column j) is stored at index i+4*j, so the result is
 * out[i+4j] = sum over k of mt[i+4k] * other[k+4j]. Transforms built this way
 * apply other first and mt last to a column vector.
 */
func (mt Mat4) Mul(other Mat4) Mat4 {
	mt.Multiply(other)
	return mt
}

/**
 * @brief Multiplies mt by other in place (mt = mt * other).
 */
func (mt *Mat4) Multiply(other Mat4) {
	m := &mt.Data
	o := &other.Data
	for i := 0; i < 4; i++ {
		a0, a1, a2, a3 := m[i], m[i+4], m[i+8], m[i+12]
		m[i] = a0*o[0] + a1*o[1] + a2*o[2] + a3*o[3]
		m[i+4] = a0*o[4] + a1*o[5] + a2*o[6] + a3*o[7]
		m[i+8] = a0*o[8] + a1*o[9] + a2*o[10] + a3*o[11]
		m[i+12] = a0*o[12] + a1*o[13] + a2*o[14] + a3*o[15]
	}
}

/**
 * @brief Translates the matrix in place by v, using the existing basis
 * vectors. Equivalent to mt.Multiply(NewMat4Translation(v)).
 */
func (mt *Mat4) Translate(v Vec3) {
	m := &mt.Data
	m[12] = m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]
	m[13] = m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]
	m[14] = m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]
	m[15] = m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]
}

/**
 * @brief Scales the basis vectors of the matrix in place by the components of v.
 * Equivalent to mt.Multiply(NewMat4Scale(v)).
 */
func (mt *Mat4) Scale(v Vec3) {
	m := &mt.Data
	for r := 0; r < 4; r++ {
		m[r] *= v.X
		m[r+4] *= v.Y
		m[r+8] *= v.Z
	}
}

/**
 * @brief Rotates the matrix in place by degrees around axis.
 * Axes with a length of K_AXIS_EPSILON or less leave the matrix untouched.
 */
func (mt *Mat4) Rotate(degrees float32, axis Vec3) {
	if axis.Length() <= K_AXIS_EPSILON {
		return
	}
	mt.Multiply(NewMat4Rotation(degrees, axis))
}

/**
 * @brief Composes an orthographic projection into the matrix in place.
 */
func (mt *Mat4) Ortho(left, right, bottom, top, near_clip, far_clip float32) {
	mt.Multiply(NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip))
}

/**
 * @brief Composes a perspective frustum projection into the matrix in place.
 */
func (mt *Mat4) Frustum(left, right, bottom, top, near_clip, far_clip float32) {
	mt.Multiply(NewMat4Frustum(left, right, bottom, top, near_clip, far_clip))
}

/**
 * @brief Composes a look-at view matrix into the matrix in place.
 */
func (mt *Mat4) LookAt(position, target, up Vec3) {
	mt.Multiply(NewMat4LookAt(position, target, up))
}

/**
 * @brief Compares all elements of mt and other and ensures the difference
 * is less than tolerance.
 */
func (mt Mat4) Compare(other Mat4, tolerance float32) bool {
	for i := range mt.Data {
		if kabs(mt.Data[i]-other.Data[i]) > tolerance {
			return false
		}
	}
	return true
}

/**
 * @brief Creates and returns a translation matrix from the given position.
 *
 * @param position The position to be used to create the matrix.
 * @return A newly created translation matrix.
 */
func NewMat4Translation(position Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[12] = position.X
	out_matrix.Data[13] = position.Y
	out_matrix.Data[14] = position.Z
	return out_matrix
}

/**
 * @brief Returns a scale matrix using the provided scale.
 *
 * @param scale The 3-component scale.
 * @return A scale matrix.
 */
func NewMat4Scale(scale Vec3) Mat4 {
	out_matrix := NewMat4Identity()
	out_matrix.Data[0] = scale.X
	out_matrix.Data[5] = scale.Y
	out_matrix.Data[10] = scale.Z
	return out_matrix
}

/**
 * @brief Creates a rotation matrix of degrees around axis (Rodrigues' formula).
 * The axis is normalized first; a degenerate axis yields the identity matrix.
 */
func NewMat4Rotation(degrees float32, axis Vec3) Mat4 {
	out_matrix := NewMat4Identity()

	length := axis.Length()
	if length <= K_AXIS_EPSILON {
		return out_matrix
	}

	x := axis.X / length
	y := axis.Y / length
	z := axis.Z / length

	rad := DegToRad(degrees)
	s := ksin(rad)
	c := kcos(rad)
	onec := 1.0 - c

	xy := x * y
	yz := y * z
	zx := z * x
	xs := x * s
	ys := y * s
	zs := z * s

	o := &out_matrix.Data
	o[0] = onec*x*x + c
	o[4] = onec*xy - zs
	o[8] = onec*zx + ys

	o[1] = onec*xy + zs
	o[5] = onec*y*y + c
	o[9] = onec*yz - xs

	o[2] = onec*zx - ys
	o[6] = onec*yz + xs
	o[10] = onec*z*z + c

	return out_matrix
}

/**
 * @brief Creates and returns an orthographic projection matrix. Typically used to
 * render flat or 2D scenes.
 *
 * @param left The left side of the view frustum.
 * @param right The right side of the view frustum.
 * @param bottom The bottom side of the view frustum.
 * @param top The top side of the view frustum.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new orthographic projection matrix.
 */
func NewMat4Orthographic(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = 2.0 / (right - left)
	o[5] = 2.0 / (top - bottom)
	o[10] = -2.0 / (far_clip - near_clip)
	o[12] = -(right + left) / (right - left)
	o[13] = -(top + bottom) / (top - bottom)
	o[14] = -(far_clip + near_clip) / (far_clip - near_clip)
	o[15] = 1.0
	return out_matrix
}

/**
 * @brief Creates and returns a perspective projection matrix from the six
 * planes of a view frustum.
 */
func NewMat4Frustum(left, right, bottom, top, near_clip, far_clip float32) Mat4 {
	out_matrix := Mat4{}
	o := &out_matrix.Data

	o[0] = (2.0 * near_clip) / (right - left)
	o[5] = (2.0 * near_clip) / (top - bottom)
	o[8] = (right + left) / (right - left)
	o[9] = (top + bottom) / (top - bottom)
	o[10] = -(far_clip + near_clip) / (far_clip - near_clip)
	o[11] = -1.0
	o[14] = -(2.0 * far_clip * near_clip) / (far_clip - near_clip)
	return out_matrix
}

/**
 * @brief Creates and returns a perspective matrix. Typically used to render 3d scenes.
 *
 * @param fov_degrees The vertical field of view in degrees.
 * @param aspect_ratio The aspect ratio.
 * @param near_clip The near clipping plane distance.
 * @param far_clip The far clipping plane distance.
 * @return A new perspective matrix.
 */
func NewMat4Perspective(fov_degrees, aspect_ratio, near_clip, far_clip float32) Mat4 {
	top := near_clip * ktan(DegToRad(fov_degrees)*0.5)
	right := top * aspect_ratio
	return NewMat4Frustum(-right, right, -top, top, near_clip, far_clip)
}

/**
 * @brief Creates and returns a look-at matrix, or a matrix looking
 * at target from the perspective of position. The result is right-handed:
 * the camera looks down its negative Z axis.
 *
 * @param position The position of the matrix.
 * @param target The position to "look at".
 * @param up The up vector.
 * @return A matrix looking at target from the perspective of position.
 */
func NewMat4LookAt(position, target, up Vec3) Mat4 {
	z_axis := position.Sub(target).Normalize()
	x_axis := up.Cross(z_axis).Normalize()
	y_axis := z_axis.Cross(x_axis)

	return Mat4{Data: [16]float32{
		x_axis.X, y_axis.X, z_axis.X, 0,
		x_axis.Y, y_axis.Y, z_axis.Y, 0,
		x_axis.Z, y_axis.Z, z_axis.Z, 0,
		-x_axis.Dot(position), -y_axis.Dot(position), -z_axis.Dot(position), 1,
	}}
}
