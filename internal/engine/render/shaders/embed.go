// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// MeshVertexShader is the vertex shader for resolved OBJ meshes.
//
//go:embed mesh.vert
var MeshVertexShader string

// MeshFragmentShader is the fragment shader for resolved OBJ meshes.
//
//go:embed mesh.frag
var MeshFragmentShader string
