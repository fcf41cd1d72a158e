package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

type Color struct {
	R, G, B uint8
}

// Hex converts a 0xRRGGBB literal.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

func (c Color) Vec() mgl64.Vec3 {
	return mgl64.Vec3{float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255}
}

func FromVec(v mgl64.Vec3) Color {
	ch := func(x float64) uint8 {
		return uint8(math.Round(mgl64.Clamp(x, 0, 1) * 255))
	}
	return Color{R: ch(v.X()), G: ch(v.Y()), B: ch(v.Z())}
}

type Material struct {
	Color     Color
	Specular  Color
	Shininess float64
}

type MeshKind int

const (
	Cylinder MeshKind = iota
	Box
)

func (k MeshKind) String() string {
	if k == Cylinder {
		return "cylinder"
	}
	return "box"
}

// Mesh describes primitive geometry centred on its node's origin. Cylinders
// run along Y.
type Mesh struct {
	Kind     MeshKind
	Radius   float64
	Height   float64
	Segments int
	Width    float64
	Depth    float64
	Material Material
}

func NewCylinder(radius, height float64, segments int, mat Material) *Mesh {
	return &Mesh{Kind: Cylinder, Radius: radius, Height: height, Segments: segments, Material: mat}
}

func NewBox(width, height, depth float64, mat Material) *Mesh {
	return &Mesh{Kind: Box, Width: width, Height: height, Depth: depth, Material: mat}
}

type Edge struct {
	A, B mgl64.Vec3
}

// Edges returns the wireframe in local coordinates.
func (m *Mesh) Edges() []Edge {
	switch m.Kind {
	case Cylinder:
		return m.cylinderEdges()
	default:
		return m.boxEdges()
	}
}

func (m *Mesh) boxEdges() []Edge {
	x, y, z := m.Width/2, m.Height/2, m.Depth/2
	v := []mgl64.Vec3{
		{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
		{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
	}
	ei := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {4, 5}, {5, 6}, {6, 7}, {7, 4}, {0, 4}, {1, 5}, {2, 6}, {3, 7}}
	edges := make([]Edge, 0, len(ei))
	for _, e := range ei {
		edges = append(edges, Edge{v[e[0]], v[e[1]]})
	}
	return edges
}

func (m *Mesh) cylinderEdges() []Edge {
	n := m.Segments
	if n < 3 {
		n = 3
	}
	h := m.Height / 2
	edges := make([]Edge, 0, n*3)
	for i := 0; i < n; i++ {
		a0 := TwoPi * float64(i) / float64(n)
		a1 := TwoPi * float64(i+1) / float64(n)
		p0 := mgl64.Vec3{m.Radius * math.Sin(a0), 0, m.Radius * math.Cos(a0)}
		p1 := mgl64.Vec3{m.Radius * math.Sin(a1), 0, m.Radius * math.Cos(a1)}
		top0, top1 := p0.Add(mgl64.Vec3{0, h, 0}), p1.Add(mgl64.Vec3{0, h, 0})
		bot0, bot1 := p0.Sub(mgl64.Vec3{0, h, 0}), p1.Sub(mgl64.Vec3{0, h, 0})
		edges = append(edges, Edge{top0, top1}, Edge{bot0, bot1}, Edge{bot0, top0})
	}
	return edges
}

// Faces returns outward normals of the mesh's flat faces with their areas.
func (m *Mesh) Faces() ([]mgl64.Vec3, []float64) {
	switch m.Kind {
	case Cylinder:
		n := m.Segments
		if n < 3 {
			n = 3
		}
		normals := []mgl64.Vec3{{0, 1, 0}, {0, -1, 0}}
		capArea := math.Pi * m.Radius * m.Radius
		areas := []float64{capArea, capArea}
		side := TwoPi * m.Radius * m.Height / float64(n)
		for i := 0; i < n; i++ {
			a := TwoPi * (float64(i) + 0.5) / float64(n)
			normals = append(normals, mgl64.Vec3{math.Sin(a), 0, math.Cos(a)})
			areas = append(areas, side)
		}
		return normals, areas
	default:
		return []mgl64.Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}},
			[]float64{
				m.Height * m.Depth, m.Height * m.Depth,
				m.Width * m.Depth, m.Width * m.Depth,
				m.Width * m.Height, m.Width * m.Height,
			}
	}
}
