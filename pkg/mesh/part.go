package mesh

// Part is one named sub-object of a mesh, exactly as declared in its source.
type Part struct {
	Name            string
	Positions       []float32 // xyz triples
	UVs             []float32 // uv pairs
	PositionIndices []uint32  // global, three per triangle
	UVIndices       []uint32  // global, corner-aligned with PositionIndices; may be shorter
}

// NewPart creates an empty part with the given name.
func NewPart(name string) *Part {
	return &Part{Name: name}
}

// AddPosition appends one position.
func (p *Part) AddPosition(x, y, z float32) {
	p.Positions = append(p.Positions, x, y, z)
}

// AddUV appends one texture coordinate.
func (p *Part) AddUV(u, v float32) {
	p.UVs = append(p.UVs, u, v)
}

// AddIndex appends a 0-based global position index.
func (p *Part) AddIndex(i uint32) {
	p.PositionIndices = append(p.PositionIndices, i)
}

// AddUVIndex appends a 0-based global UV index.
func (p *Part) AddUVIndex(i uint32) {
	p.UVIndices = append(p.UVIndices, i)
}

// AddTriangle appends the three position indices of one triangle.
func (p *Part) AddTriangle(a, b, c uint32) {
	p.PositionIndices = append(p.PositionIndices, a, b, c)
}

// AddUVTriangle appends the three UV indices of one triangle.
func (p *Part) AddUVTriangle(a, b, c uint32) {
	p.UVIndices = append(p.UVIndices, a, b, c)
}

// IndexCount returns the number of position indices.
func (p *Part) IndexCount() int {
	return len(p.PositionIndices)
}

// UVIndexCount returns the number of UV indices.
func (p *Part) UVIndexCount() int {
	return len(p.UVIndices)
}

// PositionCount returns the number of complete xyz positions declared in this part.
func (p *Part) PositionCount() int {
	return len(p.Positions) / PositionSize
}

// UVCount returns the number of complete uv pairs declared in this part.
func (p *Part) UVCount() int {
	return len(p.UVs) / UVSize
}
