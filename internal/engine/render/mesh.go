package render

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// Vertex attribute locations.
const (
	AttribPosition = 0
	AttribTexCoord = 1
	AttribNormal   = 2
)

// GPUMesh is a mesh uploaded as three non-interleaved attribute streams.
//
// The streams are already resolved to one element per index, so each part
// is drawn as a contiguous vertex range at the offset its draw range gives.
type GPUMesh struct {
	src     *mesh.Mesh
	vao     uint32
	vbos    [3]uint32
	count   int32
	texture *Texture
}

// Upload builds m if needed and copies its streams to the GPU.
func Upload(m *mesh.Mesh) (*GPUMesh, error) {
	buf, err := m.Build()
	if err != nil {
		return nil, fmt.Errorf("building mesh: %w", err)
	}
	if buf.VertexCount() == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}

	g := &GPUMesh{src: m, count: int32(buf.VertexCount())}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(int32(len(g.vbos)), &g.vbos[0])

	uploadStream(g.vbos[0], AttribPosition, mesh.PositionSize, buf.Vertices)
	uploadStream(g.vbos[1], AttribTexCoord, mesh.UVSize, buf.UVs)
	uploadStream(g.vbos[2], AttribNormal, mesh.NormalSize, buf.Normals)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return g, nil
}

func uploadStream(vbo uint32, location uint32, size int32, data []float32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, size, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(location)
}

// Mesh returns the source mesh.
func (g *GPUMesh) Mesh() *mesh.Mesh {
	return g.src
}

// SetTexture attaches a diffuse texture. nil removes it.
func (g *GPUMesh) SetTexture(t *Texture) {
	g.texture = t
}

// Texture returns the attached diffuse texture, or nil.
func (g *GPUMesh) Texture() *Texture {
	return g.texture
}

// Draw draws the parts part selects.
func (g *GPUMesh) Draw(part PartRef) error {
	switch {
	case part.ByIndex:
		return g.DrawPart(part.Index)
	case part.Name != "":
		return g.DrawPartByName(part.Name)
	}
	g.DrawAll()
	return nil
}

// DrawAll draws every part in one call.
func (g *GPUMesh) DrawAll() {
	g.draw(g.src.DrawAll())
}

// DrawPart draws the part at position k.
func (g *GPUMesh) DrawPart(k int) error {
	r, err := g.src.DrawRange(k)
	if err != nil {
		return err
	}
	g.draw(r)
	return nil
}

// DrawPartByName draws the first part named name.
func (g *GPUMesh) DrawPartByName(name string) error {
	r, err := g.src.DrawRangeByName(name)
	if err != nil {
		return err
	}
	g.draw(r)
	return nil
}

func (g *GPUMesh) draw(r mesh.DrawRange) {
	if r.Count == 0 || int32(r.End()) > g.count {
		return
	}
	gl.BindVertexArray(g.vao)
	if g.texture != nil {
		g.texture.Bind(0)
	}
	gl.DrawArrays(gl.TRIANGLES, int32(r.Offset), int32(r.Count))
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindVertexArray(0)
}

// Delete releases the GPU objects. The texture is left to its owner.
func (g *GPUMesh) Delete() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.vbos[0] != 0 {
		gl.DeleteBuffers(int32(len(g.vbos)), &g.vbos[0])
		g.vbos = [3]uint32{}
	}
}
