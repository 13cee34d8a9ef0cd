package components

import (
	"github.com/spaghettifunk/pong/engine/math"
)

/**
 * @brief Represents a camera used to render the scene. It holds an
 * orthographic projection and a look-at view, both recalculated lazily
 * when their inputs change.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3
	/** @brief The point the camera looks at. */
	Target math.Vec3
	/** @brief The up direction of the camera. */
	Up math.Vec3
	/** @brief The orthographic volume: left, right, bottom, top, near, far. */
	Bounds [6]float32

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/** @brief Internal flag used to determine when the projection matrix needs to be rebuilt. */
	IsProjectionDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix       math.Mat4
	ProjectionMatrix math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset places the camera one unit in front of the origin, looking down -Z at
// a [-1, 1] square.
func (c *Camera) Reset() {
	c.Position = math.NewVec3(0, 0, 1)
	c.Target = math.NewVec3Zero()
	c.Up = math.NewVec3Up()
	c.Bounds = [6]float32{-1, 1, -1, 1, 0, 2}
	c.IsDirty = true
	c.IsProjectionDirty = true
}

func (c *Camera) SetPosition(position math.Vec3) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) SetTarget(target math.Vec3) {
	c.Target = target
	c.IsDirty = true
}

func (c *Camera) SetOrthographic(left, right, bottom, top, near_clip, far_clip float32) {
	c.Bounds = [6]float32{left, right, bottom, top, near_clip, far_clip}
	c.IsProjectionDirty = true
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = math.NewMat4LookAt(c.Position, c.Target, c.Up)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) GetProjection() math.Mat4 {
	if c.IsProjectionDirty {
		b := c.Bounds
		c.ProjectionMatrix = math.NewMat4Orthographic(b[0], b[1], b[2], b[3], b[4], b[5])
		c.IsProjectionDirty = false
	}
	return c.ProjectionMatrix
}

// ViewProjection returns projection * view.
func (c *Camera) ViewProjection() math.Mat4 {
	return c.GetProjection().Mul(c.GetView())
}
