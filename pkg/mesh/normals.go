package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// degenerateEpsilon is the cross-product length below which a triangle has
// no usable normal.
const degenerateEpsilon = 1e-12

// FlatNormals derives one normal per triangle from a resolved vertex stream
// and repeats it for each of the triangle's three corners.
//
// For corners A, B, C the normal is normalize((B-A) x (C-B)), so a
// counter-clockwise triangle faces the viewer. Degenerate triangles and any
// trailing corners that do not complete a triangle get (0, 0, 0).
// The result always has the same length as vertices.
func FlatNormals(vertices []float32) []float32 {
	normals := make([]float32, len(vertices))
	const stride = 3 * PositionSize

	for i := 0; i+stride <= len(vertices); i += stride {
		a := vec3At(vertices, i)
		b := vec3At(vertices, i+3)
		c := vec3At(vertices, i+6)

		n := TriangleNormal(a, b, c)
		for k := 0; k < 3; k++ {
			copy(normals[i+k*3:i+k*3+3], n[:])
		}
	}
	return normals
}

// TriangleNormal returns the unit normal of triangle a, b, c, or the zero
// vector when the triangle is degenerate or has non-finite corners.
func TriangleNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	n := b.Sub(a).Cross(c.Sub(b))
	l := n.Len()
	if !(l >= degenerateEpsilon) || math.IsInf(float64(l), 0) {
		return mgl32.Vec3{}
	}
	return n.Mul(1 / l)
}

// ComputeBounds returns the bounding box of an xyz stream. An empty stream
// yields a zero box.
func ComputeBounds(vertices []float32) Bounds {
	if len(vertices) < PositionSize {
		return Bounds{}
	}
	b := Bounds{Min: vec3At(vertices, 0), Max: vec3At(vertices, 0)}
	for i := PositionSize; i+PositionSize <= len(vertices); i += PositionSize {
		p := vec3At(vertices, i)
		for axis := 0; axis < 3; axis++ {
			if p[axis] < b.Min[axis] {
				b.Min[axis] = p[axis]
			}
			if p[axis] > b.Max[axis] {
				b.Max[axis] = p[axis]
			}
		}
	}
	return b
}

func vec3At(s []float32, i int) mgl32.Vec3 {
	return mgl32.Vec3{s[i], s[i+1], s[i+2]}
}
