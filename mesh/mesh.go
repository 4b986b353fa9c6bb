// Package mesh loads triangle meshes from Wavefront OBJ files for use
// as vertex shader input, the "OBJ mesh loader" collaborator used by
// the diffuse/normal/specular example drivers.
package mesh

import "github.com/gogpu/swr"

// Mesh is a triangulated mesh with flat, parallel-indexed attribute
// arrays: three floats per vertex for positions and normals, two per
// vertex for UVs, three uint32s per triangle for indices. All three
// attribute arrays are the same length in vertices; Faces selects
// which vertices form each triangle.
type Mesh struct {
	Positions []swr.Vec3
	Normals   []swr.Vec3
	UVs       []swr.Vec2
	Faces     []uint32 // 3 indices per triangle, into Positions/Normals/UVs
}

// VertexCount returns the number of unique vertices.
func (m *Mesh) VertexCount() int { return len(m.Positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.Faces) / 3 }

// IsEmpty reports whether the mesh has no geometry.
func (m *Mesh) IsEmpty() bool { return len(m.Positions) == 0 }

// Triangle returns the three vertex indices of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c uint32) {
	return m.Faces[i*3], m.Faces[i*3+1], m.Faces[i*3+2]
}
