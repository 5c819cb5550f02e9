package render

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// PartRef selects what a draw covers. The zero value draws every part.
type PartRef struct {
	Name    string
	Index   int
	ByIndex bool
}

// PartIndex selects the part at position k.
func PartIndex(k int) PartRef {
	return PartRef{Index: k, ByIndex: true}
}

// PartName selects the first part named name.
func PartName(name string) PartRef {
	return PartRef{Name: name}
}

// All reports whether the ref draws the whole mesh.
func (p PartRef) All() bool {
	return !p.ByIndex && p.Name == ""
}

func (p PartRef) String() string {
	switch {
	case p.ByIndex:
		return "#" + strconv.Itoa(p.Index)
	case p.Name != "":
		return strconv.Quote(p.Name)
	}
	return "all"
}

// Range returns the draw range the ref covers in m.
func (p PartRef) Range(m *mesh.Mesh) (mesh.DrawRange, error) {
	switch {
	case p.ByIndex:
		return m.DrawRange(p.Index)
	case p.Name != "":
		return m.DrawRangeByName(p.Name)
	}
	return m.DrawAll(), nil
}

// ParsePartRef turns a user selection into a ref for m. An empty string
// selects every part. A part name wins over a numeric index, so a part
// literally named "2" stays reachable.
func ParsePartRef(m *mesh.Mesh, s string) (PartRef, error) {
	if s == "" {
		return PartRef{}, nil
	}
	if _, err := m.PartByName(s); err == nil {
		return PartName(s), nil
	}
	k, convErr := strconv.Atoi(s)
	if convErr != nil {
		return PartRef{}, fmt.Errorf("selecting part: %w: %q", mesh.ErrNotFound, s)
	}
	if _, err := m.DrawRange(k); err != nil {
		return PartRef{}, fmt.Errorf("selecting part: %w", err)
	}
	return PartIndex(k), nil
}

// NextPart steps a selection through all, 0, 1, ... n-1 and back to all.
// A name selection continues from the position of that part.
func NextPart(m *mesh.Mesh, p PartRef) PartRef {
	n := m.PartCount()
	if n == 0 {
		return PartRef{}
	}
	current := -1
	switch {
	case p.ByIndex:
		current = p.Index
	case p.Name != "":
		for i, part := range m.Parts() {
			if part.Name == p.Name {
				current = i
				break
			}
		}
	}
	if current+1 >= n {
		return PartRef{}
	}
	return PartIndex(current + 1)
}
