package viewer

import "github.com/Faultbox/wavemesh/pkg/mesh"

// reticleMesh builds a small textured quad facing +Z, centered on the
// origin, for use as a default HUD crosshair.
func reticleMesh(halfSize float32) *mesh.Mesh {
	p := mesh.NewPart("reticle")
	p.AddPosition(-halfSize, -halfSize, 0)
	p.AddPosition(halfSize, -halfSize, 0)
	p.AddPosition(halfSize, halfSize, 0)
	p.AddPosition(-halfSize, halfSize, 0)
	p.AddUV(0, 0)
	p.AddUV(1, 0)
	p.AddUV(1, 1)
	p.AddUV(0, 1)

	p.AddTriangle(0, 1, 2)
	p.AddUVTriangle(0, 1, 2)
	p.AddTriangle(0, 2, 3)
	p.AddUVTriangle(0, 2, 3)

	m := mesh.New()
	m.AddPart(p)
	return m
}

// groundMesh builds a textured square in the XZ plane facing +Y.
func groundMesh(halfSize float32) *mesh.Mesh {
	p := mesh.NewPart("ground")
	p.AddPosition(-halfSize, 0, halfSize)
	p.AddPosition(halfSize, 0, halfSize)
	p.AddPosition(halfSize, 0, -halfSize)
	p.AddPosition(-halfSize, 0, -halfSize)
	p.AddUV(0, 0)
	p.AddUV(1, 0)
	p.AddUV(1, 1)
	p.AddUV(0, 1)

	p.AddTriangle(0, 1, 2)
	p.AddUVTriangle(0, 1, 2)
	p.AddTriangle(3, 0, 2)
	p.AddUVTriangle(3, 0, 2)

	m := mesh.New()
	m.AddPart(p)
	return m
}

// groundSize returns the configured half extent, or one that covers the
// model's footprint twice over when size is 0.
func groundSize(size float32, b mesh.Bounds) float32 {
	if size > 0 {
		return size
	}
	ext := b.Size()
	return max(ext.X(), ext.Z(), 0.5)
}
