package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Shade evaluates Phong lighting for a surface with world normal n seen from
// eye at point p.
func Shade(p, n, eye mgl64.Vec3, mat Material, lights []Light) mgl64.Vec3 {
	n = n.Normalize()
	view := eye.Sub(p).Normalize()
	base := mat.Color.Vec()
	spec := mat.Specular.Vec()

	var out mgl64.Vec3
	for _, l := range lights {
		lc := l.Color.Vec().Mul(l.Intensity)
		switch l.Kind {
		case Ambient:
			out = out.Add(mulVec(base, lc))
		case Directional:
			dir := l.Position.Normalize()
			diff := n.Dot(dir)
			if diff <= 0 {
				continue
			}
			out = out.Add(mulVec(base, lc).Mul(diff))

			refl := n.Mul(2 * diff).Sub(dir)
			if rv := refl.Dot(view); rv > 0 {
				out = out.Add(mulVec(spec, lc).Mul(math.Pow(rv, mat.Shininess)))
			}
		}
	}
	return out
}

// ShadeNode averages the lit colour of every face visible from the camera,
// weighted by projected area. Front ends without per-face lighting use it as
// a flat tint.
func (s *Scene) ShadeNode(n *Node, world mgl64.Mat4) Color {
	if n.Mesh == nil {
		return Color{}
	}
	normals, areas := n.Mesh.Faces()
	centre := mgl64.TransformCoordinate(mgl64.Vec3{}, world)
	eye := s.Camera.Position
	view := eye.Sub(centre).Normalize()

	var sum mgl64.Vec3
	total := 0.0
	for i, local := range normals {
		wn := mgl64.TransformNormal(local, world).Normalize()
		facing := wn.Dot(view)
		if facing <= 0 {
			continue
		}
		w := areas[i] * facing
		sum = sum.Add(Shade(centre, wn, eye, n.Mesh.Material, s.Lights).Mul(w))
		total += w
	}
	if total == 0 {
		return FromVec(ambientOnly(n.Mesh.Material, s.Lights))
	}
	return FromVec(sum.Mul(1 / total))
}

func ambientOnly(mat Material, lights []Light) mgl64.Vec3 {
	var out mgl64.Vec3
	for _, l := range lights {
		if l.Kind == Ambient {
			out = out.Add(mulVec(mat.Color.Vec(), l.Color.Vec().Mul(l.Intensity)))
		}
	}
	return out
}

func mulVec(a, b mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}
