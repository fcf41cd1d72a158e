package scene

import "github.com/go-gl/mathgl/mgl64"

type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation mgl64.Vec3 // Euler angles in radians
	Scale    mgl64.Vec3
	Mesh     *Mesh
	Parent   *Node
	Children []*Node
}

func NewNode(name string) *Node {
	return &Node{
		Name:  name,
		Scale: mgl64.Vec3{1, 1, 1},
	}
}

func NewMeshNode(name string, mesh *Mesh) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	return n
}

func (n *Node) Add(children ...*Node) {
	for _, c := range children {
		c.Parent = n
		n.Children = append(n.Children, c)
	}
}

// Local returns T * Rx * Ry * Rz * S.
func (n *Node) Local() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position.X(), n.Position.Y(), n.Position.Z())
	r := mgl64.HomogRotate3DX(n.Rotation.X()).
		Mul4(mgl64.HomogRotate3DY(n.Rotation.Y())).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z()))
	s := mgl64.Scale3D(n.Scale.X(), n.Scale.Y(), n.Scale.Z())
	return t.Mul4(r).Mul4(s)
}

func (n *Node) World() mgl64.Mat4 {
	if n.Parent == nil {
		return n.Local()
	}
	return n.Parent.World().Mul4(n.Local())
}

// Walk visits n and its descendants depth first, passing each node's world
// transform. Returning false skips the node's children.
func (n *Node) Walk(fn func(node *Node, world mgl64.Mat4) bool) {
	var parent mgl64.Mat4
	if n.Parent == nil {
		parent = mgl64.Ident4()
	} else {
		parent = n.Parent.World()
	}
	n.walk(parent, fn)
}

func (n *Node) walk(parent mgl64.Mat4, fn func(*Node, mgl64.Mat4) bool) {
	world := parent.Mul4(n.Local())
	if !fn(n, world) {
		return
	}
	for _, c := range n.Children {
		c.walk(world, fn)
	}
}

func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ mgl64.Mat4) bool {
		if found != nil {
			return false
		}
		if node.Name == name {
			found = node
			return false
		}
		return true
	})
	return found
}
