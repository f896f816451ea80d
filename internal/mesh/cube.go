package mesh

import "quat-cube-renderer/rotation"

// Mesh is an indexed triangle list. Positions and UVs are parallel slices.
type Mesh struct {
	Positions []rotation.Double3
	UVs       [][2]float64
	Indices   []int
}

// Triangles returns the number of triangles in the index list.
func (m *Mesh) Triangles() int {
	return len(m.Indices) / 3
}

// Triangle returns the vertex indices of triangle i.
func (m *Mesh) Triangle(i int) [3]int {
	return [3]int{m.Indices[i*3], m.Indices[i*3+1], m.Indices[i*3+2]}
}

// Transformed returns a copy of the mesh with every position mapped by fn.
func (m *Mesh) Transformed(fn func(rotation.Double3) rotation.Double3) *Mesh {
	out := &Mesh{
		Positions: make([]rotation.Double3, len(m.Positions)),
		UVs:       m.UVs,
		Indices:   m.Indices,
	}
	for i, p := range m.Positions {
		out.Positions[i] = fn(p)
	}
	return out
}

// cubeFaces lists the four corners of each face, counter-clockwise seen from outside.
var cubeFaces = [6][4]rotation.Double3{
	// front
	{{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}},
	// back
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}},
	// top
	{{X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}},
	// bottom
	{{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: 1}},
	// right
	{{X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, {X: 1, Y: -1, Z: 1}},
	// left
	{{X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}},
}

var quadUVs = [4][2]float64{{0, 1}, {1, 1}, {1, 0}, {0, 0}}

// Cube returns an axis-aligned cube centered at the origin with the given half
// extent. Each face has its own four vertices so that it carries a full texture.
func Cube(half float64) *Mesh {
	m := &Mesh{
		Positions: make([]rotation.Double3, 0, 24),
		UVs:       make([][2]float64, 0, 24),
		Indices:   make([]int, 0, 36),
	}
	for _, face := range cubeFaces {
		base := len(m.Positions)
		for i, corner := range face {
			m.Positions = append(m.Positions, corner.Scale(half))
			m.UVs = append(m.UVs, quadUVs[i])
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base+2, base+3, base)
	}
	return m
}
