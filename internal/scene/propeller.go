package scene

import (
	"fmt"
	"math"
)

const (
	TwoPi      = 2 * math.Pi
	BladeCount = 3

	HubRadius   = 0.2
	HubHeight   = 0.4
	HubSegments = 12

	BladeWidth  = 0.06
	BladeLength = 3.0
	BladeDepth  = 0.25
)

var (
	HubMaterial = Material{
		Color:     Hex(0x333333),
		Specular:  Hex(0x111111),
		Shininess: 100,
	}
	BladeMaterial = Material{
		Color:     Hex(0xffffff),
		Specular:  Hex(0x222222),
		Shininess: 100,
	}
)

// Propeller is the swing group with the rotor shape inside it.
type Propeller struct {
	Group  *Node // swing group, rotated about Y
	Shape  *Node // rotor, rotated about Z
	Hub    *Node
	Blades []*Node
}

func NewPropeller() *Propeller {
	shape := NewNode("shape")

	hub := NewMeshNode("hub", NewCylinder(HubRadius, HubHeight, HubSegments, HubMaterial))
	shape.Add(hub)

	bladeMesh := NewBox(BladeWidth, BladeLength, BladeDepth, BladeMaterial)
	blades := make([]*Node, 0, BladeCount)
	for i := 0; i < BladeCount; i++ {
		b := NewMeshNode(fmt.Sprintf("blade%d", i), bladeMesh)
		b.Rotation[2] = float64(i) * TwoPi / BladeCount
		shape.Add(b)
		blades = append(blades, b)
	}

	group := NewNode("propeller")
	group.Add(shape)

	return &Propeller{Group: group, Shape: shape, Hub: hub, Blades: blades}
}

// SetSwing sets the swing group's orientation about Y.
func (p *Propeller) SetSwing(angle float64) { p.Group.Rotation[1] = angle }

// SetSpin sets the rotor's orientation about Z.
func (p *Propeller) SetSpin(angle float64) { p.Shape.Rotation[2] = angle }
