package render

import (
	"math"

	"github.com/Gxrco/planetarium/pkg/math3d"
)

// Obstacle is a sphere the camera eye may not enter.
type Obstacle struct {
	Position math3d.Vec3
	Scale    float64
}

// Camera movement limits.
const (
	minZoom           = 10.0
	maxZoom           = 100.0
	maxCenterDistance = 50.0

	// Obstacle radii are inflated by this factor for collision tests.
	collisionPadding = 1.2

	// Pitch stays this far away from the poles to avoid degenerate
	// LookAt bases.
	pitchMargin = 0.1
)

// Camera is an orbit camera: the eye circles a look-at center at a
// clamped radius. It tracks whether its pose changed since the last
// frame so render loops can skip redraws.
type Camera struct {
	Eye    math3d.Vec3
	Center math3d.Vec3
	Up     math3d.Vec3

	// Projection parameters
	FOV         float64 // Vertical field of view in radians
	AspectRatio float64 // Width / Height
	Near        float64 // Near clipping plane
	Far         float64 // Far clipping plane

	initialEye    math3d.Vec3
	initialCenter math3d.Vec3
	initialUp     math3d.Vec3

	hasChanged bool

	// Warp transition state (see warp.go)
	warpPhase    WarpPhase
	warpProgress float64
	portalRadius float64
	warpStartEye math3d.Vec3
	warpStartCtr math3d.Vec3
	warpTarget   math3d.Vec3
	overviewEye  math3d.Vec3
	finalEye     math3d.Vec3

	// Cached matrices (computed on demand)
	viewMatrix math3d.Mat4
	projMatrix math3d.Mat4
	viewDirty  bool
	projDirty  bool
}

// NewCamera creates an orbit camera at eye looking toward center.
func NewCamera(eye, center, up math3d.Vec3) *Camera {
	return &Camera{
		Eye:           eye,
		Center:        center,
		Up:            up,
		FOV:           math.Pi / 4, // 45 degrees
		AspectRatio:   16.0 / 9.0,
		Near:          0.1,
		Far:           1000,
		initialEye:    eye,
		initialCenter: center,
		initialUp:     up,
		hasChanged:    true,
		viewDirty:     true,
		projDirty:     true,
	}
}

// SetAspectRatio sets the aspect ratio.
func (c *Camera) SetAspectRatio(aspect float64) {
	c.AspectRatio = aspect
	c.projDirty = true
	c.hasChanged = true
}

// SetFOV sets the vertical field of view in radians.
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
	c.projDirty = true
	c.hasChanged = true
}

// Orbit rotates the eye around the center by the given yaw and pitch
// deltas (radians). Pitch is clamped short of the poles, yaw wraps.
// The move is discarded if the new eye would sit inside an obstacle.
func (c *Camera) Orbit(deltaYaw, deltaPitch float64, obstacles []Obstacle) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	yaw := math.Atan2(offset.Z, offset.X)
	pitch := math.Atan2(-offset.Y, math.Sqrt(offset.X*offset.X+offset.Z*offset.Z))

	yaw = math.Mod(yaw+deltaYaw, 2*math.Pi)
	pitch = clamp(pitch+deltaPitch, -math.Pi/2+pitchMargin, math.Pi/2-pitchMargin)

	newEye := c.Center.Add(math3d.V3(
		radius*math.Cos(yaw)*math.Cos(pitch),
		-radius*math.Sin(pitch),
		radius*math.Sin(yaw)*math.Cos(pitch),
	))

	if collides(newEye, obstacles) {
		return
	}

	c.Eye = newEye
	c.markMoved()
}

// Zoom moves the eye along the view axis. Positive delta zooms in.
// The distance to the center stays within [minZoom, maxZoom] and the
// move is discarded if the new eye would sit inside an obstacle.
func (c *Camera) Zoom(delta float64, obstacles []Obstacle) {
	offset := c.Eye.Sub(c.Center)
	radius := offset.Len()
	if radius == 0 {
		return
	}

	newRadius := clamp(radius-delta, minZoom, maxZoom)
	newEye := c.Center.Add(offset.Scale(newRadius / radius))

	if collides(newEye, obstacles) {
		return
	}

	c.Eye = newEye
	c.markMoved()
}

// MoveCenter pans the look-at point by rotating it around the eye:
// dir.X yaws about world up, dir.Y pitches about the view-right axis.
// The pan is discarded if the new center would leave the navigable
// sphere or the eye currently sits inside an obstacle.
func (c *Camera) MoveCenter(dir math3d.Vec2, obstacles []Obstacle) {
	offset := c.Center.Sub(c.Eye)
	radius := offset.Len()

	rotated := offset.RotateAround(math3d.Up(), 0.05*dir.X)
	right := rotated.Cross(c.Up).Normalize()
	rotated = rotated.RotateAround(right, 0.05*dir.Y)

	newCenter := c.Eye.Add(rotated.Normalize().Scale(radius))

	if newCenter.Len() > maxCenterDistance || collides(c.Eye, obstacles) {
		return
	}

	c.Center = newCenter
	c.markMoved()
}

// ResetPosition restores the pose the camera was constructed with.
func (c *Camera) ResetPosition() {
	c.Eye = c.initialEye
	c.Center = c.initialCenter
	c.Up = c.initialUp
	c.markMoved()
}

// CheckIfChanged reports whether the camera moved since the last call
// and clears the flag.
func (c *Camera) CheckIfChanged() bool {
	changed := c.hasChanged
	c.hasChanged = false
	return changed
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if c.viewDirty {
		c.viewMatrix = math3d.LookAt(c.Eye, c.Center, c.Up)
		c.viewDirty = false
	}
	return c.viewMatrix
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	if c.projDirty {
		c.projMatrix = math3d.Perspective(c.FOV, c.AspectRatio, c.Near, c.Far)
		c.projDirty = false
	}
	return c.projMatrix
}

func (c *Camera) markMoved() {
	c.hasChanged = true
	c.viewDirty = true
}

func collides(eye math3d.Vec3, obstacles []Obstacle) bool {
	for _, o := range obstacles {
		if eye.Distance(o.Position) < o.Scale*collisionPadding {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
