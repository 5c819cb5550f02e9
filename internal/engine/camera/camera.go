// Package camera provides camera implementations for 3D rendering.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// FlyCamera is a free-look camera that moves along its own axes.
type FlyCamera struct {
	position mgl32.Vec3
	Yaw      float32 // radians around +Y, 0 looks down -Z
	Pitch    float32 // radians, positive looks up

	MaxPitch float32
	Near     float32
	Far      float32
	FOV      float32 // vertical, radians
}

// NewFlyCamera creates a camera at pos looking down -Z.
func NewFlyCamera(pos mgl32.Vec3) *FlyCamera {
	return &FlyCamera{
		position: pos,
		MaxPitch: mgl32.DegToRad(89),
		Near:     0.05,
		Far:      1000,
		FOV:      mgl32.DegToRad(60),
	}
}

// Position returns the camera position in world space.
func (c *FlyCamera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera.
func (c *FlyCamera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Forward returns the unit view direction.
func (c *FlyCamera) Forward() mgl32.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		-cp * float32(gomath.Sin(float64(c.Yaw))),
		float32(gomath.Sin(float64(c.Pitch))),
		-cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// Basis returns the camera's right, up and backward axes. Together they form
// the rotation of the inverse view matrix.
func (c *FlyCamera) Basis() (x, y, z mgl32.Vec3) {
	z = c.Forward().Mul(-1)
	x = mgl32.Vec3{0, 1, 0}.Cross(z).Normalize()
	y = z.Cross(x)
	return x, y, z
}

// ViewMatrix returns the world-to-camera transform.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	_, up, _ := c.Basis()
	return mgl32.LookAtV(c.position, c.position.Add(c.Forward()), up)
}

// ProjectionMatrix returns a perspective projection for the given aspect.
func (c *FlyCamera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.FOV, aspect, c.Near, c.Far)
}

// Move translates the camera along its own axes. Forward follows the view
// direction including pitch.
func (c *FlyCamera) Move(forward, right, up float32) {
	x, _, z := c.Basis()
	delta := z.Mul(-forward).Add(x.Mul(right)).Add(mgl32.Vec3{0, up, 0})
	c.position = c.position.Add(delta)
}

// Rotate changes yaw and pitch, clamping pitch short of straight up or down.
func (c *FlyCamera) Rotate(dyaw, dpitch float32) {
	c.Yaw += dyaw
	c.Pitch = mgl32.Clamp(c.Pitch+dpitch, -c.MaxPitch, c.MaxPitch)
}

// FitToBounds places the camera in front of the box (+Z side) looking at
// its center, far enough back to see all of it.
func (c *FlyCamera) FitToBounds(b mesh.Bounds) {
	size := b.Size()
	radius := size.Len() / 2
	if radius < 0.5 {
		radius = 0.5
	}
	dist := radius / float32(gomath.Tan(float64(c.FOV)/2))

	center := b.Center()
	c.position = center.Add(mgl32.Vec3{0, 0, dist * 1.1})
	c.Yaw = 0
	c.Pitch = 0
	if far := dist * 4; far > c.Far {
		c.Far = far
	}
}
