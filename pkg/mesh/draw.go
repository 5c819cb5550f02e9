package mesh

import "fmt"

// DrawRange returns the index range of the part at position k.
func (m *Mesh) DrawRange(k int) (DrawRange, error) {
	if k < 0 || k >= len(m.parts) {
		return DrawRange{}, &IndexError{Attribute: "part", Index: k, Bound: len(m.parts)}
	}
	offset := 0
	for _, p := range m.parts[:k] {
		offset += p.IndexCount()
	}
	return DrawRange{Offset: offset, Count: m.parts[k].IndexCount()}, nil
}

// DrawRangeByName returns the index range of the first part named name.
func (m *Mesh) DrawRangeByName(name string) (DrawRange, error) {
	offset := 0
	for _, p := range m.parts {
		if p.Name == name {
			return DrawRange{Offset: offset, Count: p.IndexCount()}, nil
		}
		offset += p.IndexCount()
	}
	return DrawRange{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// DrawAll returns the range covering every index in the mesh.
func (m *Mesh) DrawAll() DrawRange {
	return DrawRange{Offset: 0, Count: m.IndexCount()}
}

// DrawRanges returns one range per part, in part order. The ranges are
// contiguous and together cover DrawAll.
func (m *Mesh) DrawRanges() []DrawRange {
	out := make([]DrawRange, len(m.parts))
	offset := 0
	for i, p := range m.parts {
		out[i] = DrawRange{Offset: offset, Count: p.IndexCount()}
		offset += p.IndexCount()
	}
	return out
}
