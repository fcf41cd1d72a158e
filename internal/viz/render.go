package viz

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/san-kum/propsim/internal/scene"
)

// Fit matches the scene viewport to the canvas. Braille dots are roughly
// square, so the dot grid doubles as the pixel grid.
func Fit(sc *scene.Scene, c *Canvas) {
	sc.Resize(c.DotWidth(), c.DotHeight())
}

// ToDots maps normalised device coordinates onto canvas dots, y down.
func ToDots(c *Canvas, ndc mgl64.Vec3) (float64, float64) {
	x := (ndc.X() + 1) / 2 * float64(c.DotWidth()-1)
	y := (1 - ndc.Y()) / 2 * float64(c.DotHeight()-1)
	return x, y
}

// RenderScene draws every mesh edge of the scene as a wireframe and returns
// how many edges were drawn. Edges with an endpoint behind the camera are
// skipped.
func RenderScene(c *Canvas, sc *scene.Scene) int {
	if c == nil || sc == nil {
		return 0
	}

	drawn := 0
	for _, e := range sc.Edges() {
		a, okA := sc.Camera.Project(e.A)
		b, okB := sc.Camera.Project(e.B)
		if !okA || !okB || offscreen(a) || offscreen(b) {
			continue
		}
		x0, y0 := ToDots(c, a)
		x1, y1 := ToDots(c, b)
		c.DrawLineF(x0, y0, x1, y1)
		drawn++
	}
	return drawn
}

// offscreen rejects points far outside the viewport so a vertex grazing the
// near plane cannot produce a line thousands of dots long.
func offscreen(ndc mgl64.Vec3) bool {
	return ndc.X() < -2 || ndc.X() > 2 || ndc.Y() < -2 || ndc.Y() > 2
}
