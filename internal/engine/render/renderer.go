// Package render uploads resolved meshes to OpenGL and draws them.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/engine/lighting"
	"github.com/Faultbox/wavemesh/internal/engine/render/shaders"
	"github.com/Faultbox/wavemesh/internal/engine/shader"
	"github.com/Faultbox/wavemesh/internal/logger"
)

// Renderer owns the mesh shader and per-frame GL state.
type Renderer struct {
	program   *shader.Program
	lightDir  mgl32.Vec3
	baseColor mgl32.Vec3
}

// New initializes OpenGL and compiles the mesh shader.
// Must be called after the OpenGL context is created.
func New() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	program, err := shader.CompileProgram(shaders.MeshVertexShader, shaders.MeshFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("failed to create mesh shader: %w", err)
	}

	return &Renderer{
		program:   program,
		lightDir:  lighting.Sun{Longitude: 35, Latitude: 55}.Direction(),
		baseColor: mgl32.Vec3{0.8, 0.8, 0.8},
	}, nil
}

// SetSun changes the directional light.
func (r *Renderer) SetSun(s lighting.Sun) {
	r.lightDir = s.Direction()
}

// Begin clears the frame and sets the camera matrices.
func (r *Renderer) Begin(width, height int, view, projection mgl32.Mat4) {
	gl.Viewport(0, 0, int32(width), int32(height))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	r.program.Use()
	r.program.SetMat4("uView", view)
	r.program.SetMat4("uProjection", projection)
	r.program.SetVec3("uLightDir", r.lightDir)
	r.program.SetVec3("uBaseColor", r.baseColor)
	r.program.SetInt("uTexture", 0)
}

// ClearDepth starts a new depth layer so later draws appear on top.
func (r *Renderer) ClearDepth() {
	gl.Clear(gl.DEPTH_BUFFER_BIT)
}

// Draw draws the selected parts of one mesh instance.
func (r *Renderer) Draw(g *GPUMesh, model mgl32.Mat4, part PartRef) error {
	r.program.SetMat4("uModel", model)
	r.program.SetBool("uHasTexture", g.Texture() != nil)
	return g.Draw(part)
}

// ReadPixels reads the back buffer as bottom-up RGBA.
func (r *Renderer) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	logger.Debug("closing renderer")
	if r.program != nil {
		r.program.Delete()
	}
}
