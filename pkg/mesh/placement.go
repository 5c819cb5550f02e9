package mesh

import "github.com/go-gl/mathgl/mgl32"

// Viewpoint is the camera state an Anchor needs.
type Viewpoint interface {
	Position() mgl32.Vec3
	// Basis returns the camera's right, up and backward unit axes.
	Basis() (x, y, z mgl32.Vec3)
}

// Anchor repositions a placement once per frame.
type Anchor interface {
	Apply(p *Placement, view Viewpoint)
}

// Placement is the model transform of a mesh instance in the world.
type Placement struct {
	Model  mgl32.Mat4
	Anchor Anchor // nil for a fixed placement
}

// NewPlacement returns a placement at the origin with no anchor.
func NewPlacement() *Placement {
	return &Placement{Model: mgl32.Ident4()}
}

// Position returns the translation part of the model matrix.
func (p *Placement) Position() mgl32.Vec3 {
	return p.Model.Col(3).Vec3()
}

// SetPosition replaces the translation part of the model matrix.
func (p *Placement) SetPosition(pos mgl32.Vec3) {
	p.Model.SetCol(3, pos.Vec4(1))
}

// SetOrientation replaces the rotation part of the model matrix with the
// given axes.
func (p *Placement) SetOrientation(x, y, z mgl32.Vec3) {
	p.Model.SetCol(0, x.Vec4(0))
	p.Model.SetCol(1, y.Vec4(0))
	p.Model.SetCol(2, z.Vec4(0))
}

// Update applies the anchor, if any.
func (p *Placement) Update(view Viewpoint) {
	if p.Anchor != nil && view != nil {
		p.Anchor.Apply(p, view)
	}
}

// CameraAnchor keeps a placement at a fixed distance in front of the camera,
// aligned with the camera axes. Used for HUD geometry such as reticles.
type CameraAnchor struct {
	Distance float32
}

// Apply moves p to Distance along the camera's view direction.
func (a CameraAnchor) Apply(p *Placement, view Viewpoint) {
	x, y, z := view.Basis()
	p.SetPosition(view.Position().Sub(z.Mul(a.Distance)))
	p.SetOrientation(x, y, z)
}
