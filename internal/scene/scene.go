package scene

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/propsim/internal/motion"
)

const (
	DefaultWidth  = 1280
	DefaultHeight = 720
)

var ClearColor = Hex(0x001122)

type Camera struct {
	Fovy     float64 // degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
}

func NewCamera(aspect float64) Camera {
	return Camera{
		Fovy:     60,
		Aspect:   aspect,
		Near:     0.1,
		Far:      20.0,
		Position: mgl64.Vec3{0, 2, 8},
		Target:   mgl64.Vec3{0, 0, 0},
		Up:       mgl64.Vec3{0, 1, 0},
	}
}

func (c Camera) View() mgl64.Mat4 {
	return mgl64.LookAtV(c.Position, c.Target, c.Up)
}

func (c Camera) Projection() mgl64.Mat4 {
	return mgl64.Perspective(mgl64.DegToRad(c.Fovy), c.Aspect, c.Near, c.Far)
}

// Project maps a world point to normalised device coordinates. ok is false
// when the point is behind the camera or outside the depth range.
func (c Camera) Project(p mgl64.Vec3) (ndc mgl64.Vec3, ok bool) {
	clip := c.Projection().Mul4(c.View()).Mul4x1(p.Vec4(1))
	if clip.W() <= 0 {
		return mgl64.Vec3{}, false
	}
	ndc = clip.Vec3().Mul(1 / clip.W())
	return ndc, ndc.Z() >= -1 && ndc.Z() <= 1
}

type LightKind int

const (
	Ambient LightKind = iota
	Directional
)

type Light struct {
	Kind      LightKind
	Color     Color
	Intensity float64
	Position  mgl64.Vec3 // directional lights shine from Position towards the origin
}

func DefaultLights() []Light {
	return []Light{
		{Kind: Ambient, Color: Hex(0xffffff), Intensity: 0.4},
		{Kind: Directional, Color: Hex(0xffffff), Intensity: 0.8, Position: mgl64.Vec3{5, 5, 5}},
	}
}

type Scene struct {
	Width, Height int
	Clear         Color
	Camera        Camera
	Lights        []Light
	Root          *Node
	Propeller     *Propeller
}

func New(width, height int) *Scene {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}

	p := NewPropeller()
	root := NewNode("scene")
	root.Add(p.Group)

	return &Scene{
		Width:     width,
		Height:    height,
		Clear:     ClearColor,
		Camera:    NewCamera(float64(width) / float64(height)),
		Lights:    DefaultLights(),
		Root:      root,
		Propeller: p,
	}
}

// Resize updates the viewport and camera aspect. Zero or negative sizes are
// ignored, which happens while a window is minimised.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.Width, s.Height = width, height
	s.Camera.Aspect = float64(width) / float64(height)
}

// Apply writes a frame's angles into the propeller transforms.
func (s *Scene) Apply(f motion.Frame) {
	s.Propeller.SetSwing(f.Swing)
	s.Propeller.SetSpin(f.Spin)
}

// WorldEdge is a wireframe edge in world space tagged with its node.
type WorldEdge struct {
	Node *Node
	A, B mgl64.Vec3
}

func (s *Scene) Edges() []WorldEdge {
	var out []WorldEdge
	s.Root.Walk(func(n *Node, world mgl64.Mat4) bool {
		if n.Mesh == nil {
			return true
		}
		for _, e := range n.Mesh.Edges() {
			out = append(out, WorldEdge{
				Node: n,
				A:    mgl64.TransformCoordinate(e.A, world),
				B:    mgl64.TransformCoordinate(e.B, world),
			})
		}
		return true
	})
	return out
}

// MeshNodes returns every node carrying a mesh with its world transform.
func (s *Scene) MeshNodes() ([]*Node, []mgl64.Mat4) {
	var nodes []*Node
	var worlds []mgl64.Mat4
	s.Root.Walk(func(n *Node, world mgl64.Mat4) bool {
		if n.Mesh != nil {
			nodes = append(nodes, n)
			worlds = append(worlds, world)
		}
		return true
	})
	return nodes, worlds
}
