// Package viewer displays OBJ meshes in an SDL2/OpenGL window.
package viewer

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/engine/camera"
	"github.com/Faultbox/wavemesh/internal/engine/render"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// Controls is the per-frame input the scene reacts to.
type Controls interface {
	KeyDown(sc sdl.Scancode) bool
	Pressed(sc sdl.Scancode) bool
	MouseDelta() (dx, dy int)
}

// Object is one mesh instance in the scene.
type Object struct {
	Name      string
	Source    *mesh.Mesh // parts to select from; nil disables part cycling
	Mesh      *render.GPUMesh
	Placement *mesh.Placement
	Part      render.PartRef
}

// Speeds configures camera motion.
type Speeds struct {
	Move      float32 // units per second
	Look      float32 // radians per second, arrow keys
	MouseLook float32 // radians per pixel
}

// Scene holds world objects, HUD objects and the camera.
type Scene struct {
	Camera *camera.FlyCamera
	speeds Speeds

	objects    []*Object
	hudObjects []*Object
}

// NewScene creates an empty scene.
func NewScene(cam *camera.FlyCamera, speeds Speeds) *Scene {
	return &Scene{Camera: cam, speeds: speeds}
}

// AddObject adds a world object.
func (s *Scene) AddObject(o *Object) {
	s.objects = append(s.objects, o)
}

// RemoveObject removes a world object.
func (s *Scene) RemoveObject(o *Object) {
	s.objects = remove(s.objects, o)
}

// AddHUDObject adds an object drawn on top of the world.
func (s *Scene) AddHUDObject(o *Object) {
	s.hudObjects = append(s.hudObjects, o)
}

// RemoveHUDObject removes a HUD object.
func (s *Scene) RemoveHUDObject(o *Object) {
	s.hudObjects = remove(s.hudObjects, o)
}

// Objects returns the world objects.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// HUDObjects returns the HUD objects.
func (s *Scene) HUDObjects() []*Object {
	return s.hudObjects
}

func remove(list []*Object, o *Object) []*Object {
	for i, x := range list {
		if x == o {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

// Update moves the camera from held keys and mouse motion, then lets every
// placement anchor follow it.
func (s *Scene) Update(dt float32, c Controls) {
	var forward, right, up float32
	if c.KeyDown(sdl.SCANCODE_W) {
		forward++
	}
	if c.KeyDown(sdl.SCANCODE_S) {
		forward--
	}
	if c.KeyDown(sdl.SCANCODE_D) {
		right++
	}
	if c.KeyDown(sdl.SCANCODE_A) {
		right--
	}
	if c.KeyDown(sdl.SCANCODE_SPACE) {
		up++
	}
	if c.KeyDown(sdl.SCANCODE_LCTRL) {
		up--
	}
	step := s.speeds.Move * dt
	s.Camera.Move(forward*step, right*step, up*step)

	var pitch float32
	if c.KeyDown(sdl.SCANCODE_UP) {
		pitch++
	}
	if c.KeyDown(sdl.SCANCODE_DOWN) {
		pitch--
	}
	dx, dy := c.MouseDelta()
	s.Camera.Rotate(
		-float32(dx)*s.speeds.MouseLook,
		pitch*s.speeds.Look*dt-float32(dy)*s.speeds.MouseLook,
	)

	if c.Pressed(sdl.SCANCODE_TAB) {
		s.cycleParts()
	}

	for _, o := range s.objects {
		o.Placement.Update(s.Camera)
	}
	for _, o := range s.hudObjects {
		o.Placement.Update(s.Camera)
	}
}

// cycleParts steps every world object to its next part selection.
func (s *Scene) cycleParts() {
	for _, o := range s.objects {
		if o.Source == nil {
			continue
		}
		o.Part = render.NextPart(o.Source, o.Part)
		logger.Info("part selected", zap.String("object", o.Name), zap.Stringer("part", o.Part))
	}
}

// Render draws the world, then the HUD on a cleared depth buffer.
func (s *Scene) Render(r *render.Renderer, width, height int) {
	aspect := float32(width) / float32(max(height, 1))
	r.Begin(width, height, s.Camera.ViewMatrix(), s.Camera.ProjectionMatrix(aspect))

	for _, o := range s.objects {
		s.draw(r, o)
	}
	if len(s.hudObjects) > 0 {
		r.ClearDepth()
		for _, o := range s.hudObjects {
			s.draw(r, o)
		}
	}
}

func (s *Scene) draw(r *render.Renderer, o *Object) {
	if err := r.Draw(o.Mesh, o.Placement.Model, o.Part); err != nil {
		logger.Warn("draw failed", zap.String("object", o.Name), zap.Error(err))
	}
}
