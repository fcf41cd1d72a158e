package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/propsim/internal/scene"
)

// Both raylib and mgl64 store matrices column-major, so element i maps to
// Mi directly.
func toMatrix(m mgl64.Mat4) rl.Matrix {
	return rl.Matrix{
		M0: float32(m[0]), M4: float32(m[4]), M8: float32(m[8]), M12: float32(m[12]),
		M1: float32(m[1]), M5: float32(m[5]), M9: float32(m[9]), M13: float32(m[13]),
		M2: float32(m[2]), M6: float32(m[6]), M10: float32(m[10]), M14: float32(m[14]),
		M3: float32(m[3]), M7: float32(m[7]), M11: float32(m[11]), M15: float32(m[15]),
	}
}

func toVector3(v mgl64.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v[0]), float32(v[1]), float32(v[2]))
}

func toColor(c scene.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func toCamera(c scene.Camera) rl.Camera3D {
	return rl.NewCamera3D(toVector3(c.Position), toVector3(c.Target), toVector3(c.Up), float32(c.Fovy), rl.CameraPerspective)
}

// meshOffset corrects for raylib's cylinder, which starts at its base
// rather than its centre.
func meshOffset(m *scene.Mesh) mgl64.Mat4 {
	if m.Kind == scene.Cylinder {
		return mgl64.Translate3D(0, -m.Height/2, 0)
	}
	return mgl64.Ident4()
}

// modelTransform is the matrix handed to raylib for a mesh node.
func modelTransform(n *scene.Node, world mgl64.Mat4) mgl64.Mat4 {
	return world.Mul4(meshOffset(n.Mesh))
}

func genMesh(m *scene.Mesh) rl.Mesh {
	if m.Kind == scene.Cylinder {
		return rl.GenMeshCylinder(float32(m.Radius), float32(m.Height), m.Segments)
	}
	return rl.GenMeshCube(float32(m.Width), float32(m.Height), float32(m.Depth))
}
