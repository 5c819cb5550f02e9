package viewer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/wavemesh/internal/engine/camera"
	"github.com/Faultbox/wavemesh/internal/engine/render"
	"github.com/Faultbox/wavemesh/pkg/mesh"
)

type fakeControls struct {
	keys    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool
	dx, dy  int
}

func (f fakeControls) KeyDown(sc sdl.Scancode) bool { return f.keys[sc] }

func (f fakeControls) Pressed(sc sdl.Scancode) bool { return f.pressed[sc] }

func (f fakeControls) MouseDelta() (int, int) { return f.dx, f.dy }

func newTestScene() *Scene {
	cam := camera.NewFlyCamera(mgl32.Vec3{0, 0, 5})
	return NewScene(cam, Speeds{Move: 2, Look: 1, MouseLook: 0.01})
}

func TestUpdateMovesCamera(t *testing.T) {
	s := newTestScene()
	s.Update(0.5, fakeControls{keys: map[sdl.Scancode]bool{sdl.SCANCODE_W: true}})

	if p := s.Camera.Position(); !p.ApproxEqual(mgl32.Vec3{0, 0, 4}) {
		t.Errorf("expected camera at (0,0,4), got %v", p)
	}

	s.Update(1, fakeControls{keys: map[sdl.Scancode]bool{sdl.SCANCODE_A: true, sdl.SCANCODE_SPACE: true}})
	if p := s.Camera.Position(); !p.ApproxEqual(mgl32.Vec3{-2, 2, 4}) {
		t.Errorf("expected camera at (-2,2,4), got %v", p)
	}
}

func TestUpdateMouseLook(t *testing.T) {
	s := newTestScene()
	s.Update(0.016, fakeControls{dx: 10, dy: -5})

	if s.Camera.Yaw > -0.099 || s.Camera.Yaw < -0.101 {
		t.Errorf("expected yaw -0.1, got %v", s.Camera.Yaw)
	}
	if s.Camera.Pitch < 0.049 || s.Camera.Pitch > 0.051 {
		t.Errorf("expected pitch 0.05, got %v", s.Camera.Pitch)
	}
}

func TestHUDObjectFollowsCamera(t *testing.T) {
	s := newTestScene()

	world := &Object{Name: "world", Placement: mesh.NewPlacement()}
	world.Placement.SetPosition(mgl32.Vec3{1, 1, 1})
	s.AddObject(world)

	hud := &Object{Name: "hud", Placement: mesh.NewPlacement()}
	hud.Placement.Anchor = mesh.CameraAnchor{Distance: 1}
	s.AddHUDObject(hud)

	s.Update(1, fakeControls{keys: map[sdl.Scancode]bool{sdl.SCANCODE_D: true}})

	if p := hud.Placement.Position(); !p.ApproxEqual(mgl32.Vec3{2, 0, 4}) {
		t.Errorf("expected HUD one unit in front of camera at (2,0,4), got %v", p)
	}
	if p := world.Placement.Position(); p != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("expected world object to stay put, got %v", p)
	}
}

func TestAddRemoveObjects(t *testing.T) {
	s := newTestScene()
	a := &Object{Name: "a", Placement: mesh.NewPlacement()}
	b := &Object{Name: "b", Placement: mesh.NewPlacement()}
	s.AddObject(a)
	s.AddObject(b)
	s.AddHUDObject(a)

	s.RemoveObject(a)
	if len(s.Objects()) != 1 || s.Objects()[0] != b {
		t.Errorf("expected only b to remain, got %v", s.Objects())
	}

	s.RemoveHUDObject(b)
	if len(s.HUDObjects()) != 1 {
		t.Errorf("expected removing a missing HUD object to be a no-op")
	}
	s.RemoveHUDObject(a)
	if len(s.HUDObjects()) != 0 {
		t.Errorf("expected no HUD objects, got %d", len(s.HUDObjects()))
	}
}

func TestReticleMesh(t *testing.T) {
	m := reticleMesh(0.5)
	buf, err := m.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if m.IndexCount() != 6 {
		t.Errorf("expected 6 indices, got %d", m.IndexCount())
	}
	for i := 0; i < len(buf.Normals); i += 3 {
		n := mgl32.Vec3{buf.Normals[i], buf.Normals[i+1], buf.Normals[i+2]}
		if !n.ApproxEqual(mgl32.Vec3{0, 0, 1}) {
			t.Errorf("expected reticle to face +Z, got %v at %d", n, i/3)
		}
	}
}

func TestTabCyclesParts(t *testing.T) {
	s := newTestScene()

	src := mesh.New()
	for _, name := range []string{"hull", "mast"} {
		p := mesh.NewPart(name)
		p.AddTriangle(0, 1, 2)
		src.AddPart(p)
	}
	boat := &Object{Name: "boat", Source: src, Placement: mesh.NewPlacement(), Part: render.PartName("hull")}
	ground := &Object{Name: "ground", Placement: mesh.NewPlacement()}
	s.AddObject(boat)
	s.AddObject(ground)

	tab := fakeControls{pressed: map[sdl.Scancode]bool{sdl.SCANCODE_TAB: true}}
	want := []render.PartRef{render.PartIndex(1), {}, render.PartIndex(0)}
	for i, w := range want {
		s.Update(0.016, tab)
		if boat.Part != w {
			t.Fatalf("press %d: expected %v, got %v", i, w, boat.Part)
		}
	}
	if !ground.Part.All() {
		t.Errorf("expected object without source to keep drawing all, got %v", ground.Part)
	}

	s.Update(0.016, fakeControls{keys: map[sdl.Scancode]bool{sdl.SCANCODE_TAB: true}})
	if boat.Part != render.PartIndex(0) {
		t.Errorf("expected held TAB not to cycle again, got %v", boat.Part)
	}

	r, err := boat.Part.Range(src)
	if err != nil {
		t.Fatalf("Range failed: %v", err)
	}
	if r != (mesh.DrawRange{Offset: 0, Count: 3}) {
		t.Errorf("expected hull range {0 3}, got %+v", r)
	}
}

func TestGroundMesh(t *testing.T) {
	m := groundMesh(2)
	buf, err := m.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if len(buf.UVs) != 2*m.IndexCount() {
		t.Errorf("expected %d UV floats, got %d", 2*m.IndexCount(), len(buf.UVs))
	}
	for i := 0; i < len(buf.Normals); i += 3 {
		n := mgl32.Vec3{buf.Normals[i], buf.Normals[i+1], buf.Normals[i+2]}
		if !n.ApproxEqual(mgl32.Vec3{0, 1, 0}) {
			t.Errorf("expected ground to face +Y, got %v at %d", n, i/3)
		}
	}
	want := mesh.Bounds{Min: mgl32.Vec3{-2, 0, -2}, Max: mgl32.Vec3{2, 0, 2}}
	if buf.Bounds != want {
		t.Errorf("expected bounds %v, got %v", want, buf.Bounds)
	}
}

func TestGroundSize(t *testing.T) {
	b := mesh.Bounds{Min: mgl32.Vec3{-1, 0, -3}, Max: mgl32.Vec3{1, 5, 1}}

	tests := []struct {
		name string
		size float32
		b    mesh.Bounds
		want float32
	}{
		{"configured", 7, b, 7},
		{"fits widest footprint axis", 0, b, 4},
		{"tiny model", 0, mesh.Bounds{}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := groundSize(tt.size, tt.b); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
