// Package mesh holds part-segmented triangle meshes and resolves them into
// flat, draw-ready vertex, UV and normal streams.
//
// Face indices stored in a Part address the global index space of the whole
// mesh: positions and UVs of every part concatenated in insertion order.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Component counts per attribute element.
const (
	PositionSize = 3
	UVSize       = 2
	NormalSize   = 3
)

// IndexSize is the byte size of one element in a uint32 index buffer.
const IndexSize = 4

// Buffers holds the resolved draw streams of a mesh, one element per index.
type Buffers struct {
	Vertices []float32 // xyz per corner, draw order
	UVs      []float32 // uv per corner, draw order
	Normals  []float32 // xyz per corner, same order as Vertices
	Bounds   Bounds
}

// VertexCount returns the number of resolved corners.
func (b *Buffers) VertexCount() int {
	return len(b.Vertices) / PositionSize
}

// Bounds is the axis-aligned bounding box of a resolved vertex stream.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the extent of the box along each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Translate returns the box moved by v.
func (b Bounds) Translate(v mgl32.Vec3) Bounds {
	return Bounds{Min: b.Min.Add(v), Max: b.Max.Add(v)}
}

// DrawRange is a contiguous slice of the concatenated index buffer.
type DrawRange struct {
	Offset int // first element
	Count  int // number of elements
}

// ByteOffset returns the offset in bytes into a uint32 index buffer.
func (r DrawRange) ByteOffset() uintptr {
	return uintptr(r.Offset * IndexSize)
}

// End returns the element just past the range.
func (r DrawRange) End() int {
	return r.Offset + r.Count
}
