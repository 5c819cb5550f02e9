package mesh

import "fmt"

// Mesh is an ordered sequence of parts plus the buffers derived from them.
//
// Parts keep their insertion order for the lifetime of the mesh. Reordering
// them would shift the global index space every face refers to.
//
// A Mesh is not safe for concurrent mutation. Once Build has returned, the
// mesh and its Buffers may be shared by any number of readers.
type Mesh struct {
	parts   []*Part
	buffers *Buffers
}

// New creates an empty mesh.
func New() *Mesh {
	return &Mesh{}
}

// AddPart appends a part. Any previously built buffers are discarded.
func (m *Mesh) AddPart(p *Part) {
	m.parts = append(m.parts, p)
	m.buffers = nil
}

// Parts returns the parts in declaration order.
func (m *Mesh) Parts() []*Part {
	out := make([]*Part, len(m.parts))
	copy(out, m.parts)
	return out
}

// Part returns the part at position k.
func (m *Mesh) Part(k int) (*Part, error) {
	if k < 0 || k >= len(m.parts) {
		return nil, &IndexError{Attribute: "part", Index: k, Bound: len(m.parts)}
	}
	return m.parts[k], nil
}

// PartByName returns the first part with the given name.
func (m *Mesh) PartByName(name string) (*Part, error) {
	for _, p := range m.parts {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// PartCount returns the number of parts.
func (m *Mesh) PartCount() int {
	return len(m.parts)
}

// IndexCount returns the total number of position indices across all parts.
func (m *Mesh) IndexCount() int {
	n := 0
	for _, p := range m.parts {
		n += p.IndexCount()
	}
	return n
}

// Positions returns every part's positions concatenated in part order.
// This is the file's global position index space.
func (m *Mesh) Positions() []float32 {
	n := 0
	for _, p := range m.parts {
		n += len(p.Positions)
	}
	out := make([]float32, 0, n)
	for _, p := range m.parts {
		out = append(out, p.Positions...)
	}
	return out
}

// UVs returns every part's UVs concatenated in part order.
func (m *Mesh) UVs() []float32 {
	n := 0
	for _, p := range m.parts {
		n += len(p.UVs)
	}
	out := make([]float32, 0, n)
	for _, p := range m.parts {
		out = append(out, p.UVs...)
	}
	return out
}

// Indices returns every part's position indices concatenated in part order.
func (m *Mesh) Indices() []uint32 {
	out := make([]uint32, 0, m.IndexCount())
	for _, p := range m.parts {
		out = append(out, p.PositionIndices...)
	}
	return out
}

// UVIndices returns every part's UV indices concatenated in part order.
func (m *Mesh) UVIndices() []uint32 {
	n := 0
	for _, p := range m.parts {
		n += p.UVIndexCount()
	}
	out := make([]uint32, 0, n)
	for _, p := range m.parts {
		out = append(out, p.UVIndices...)
	}
	return out
}

// ResolvedVertices returns one xyz triple per index, in index order.
func (m *Mesh) ResolvedVertices() ([]float32, error) {
	return resolve(m.Positions(), m.Indices(), PositionSize, m.IndexCount(), "position")
}

// ResolvedUVs returns one uv pair per index, in index order.
//
// Corners without a UV reference resolve to (0, 0), so the result always
// has 2*IndexCount elements.
func (m *Mesh) ResolvedUVs() ([]float32, error) {
	return resolve(m.UVs(), m.UVIndices(), UVSize, m.IndexCount(), "uv")
}

// Build resolves the vertex and UV streams, derives flat normals and caches
// the result. Calling Build again without adding parts returns the cached
// buffers.
func (m *Mesh) Build() (*Buffers, error) {
	if m.buffers != nil {
		return m.buffers, nil
	}

	vertices, err := m.ResolvedVertices()
	if err != nil {
		return nil, err
	}
	uvs, err := m.ResolvedUVs()
	if err != nil {
		return nil, err
	}

	m.buffers = &Buffers{
		Vertices: vertices,
		UVs:      uvs,
		Normals:  FlatNormals(vertices),
		Bounds:   ComputeBounds(vertices),
	}
	return m.buffers, nil
}

// Buffers returns the buffers produced by the last Build, or nil.
func (m *Mesh) Buffers() *Buffers {
	return m.buffers
}

// Normals returns the derived normal stream, or nil before Build.
func (m *Mesh) Normals() []float32 {
	if m.buffers == nil {
		return nil
	}
	return m.buffers.Normals
}

// NormalCount returns the number of floats in the normal stream.
func (m *Mesh) NormalCount() int {
	return len(m.Normals())
}

// resolve gathers width floats from src for each index. The output holds
// corners*width floats; corners past len(indices) are left zero.
func resolve(src []float32, indices []uint32, width, corners int, attr string) ([]float32, error) {
	bound := len(src) / width
	out := make([]float32, corners*width)
	for n, i := range indices {
		if n >= corners {
			break
		}
		if int(i) >= bound {
			return nil, &IndexError{Attribute: attr, Index: int(i), Bound: bound}
		}
		copy(out[n*width:(n+1)*width], src[int(i)*width:(int(i)+1)*width])
	}
	return out, nil
}
