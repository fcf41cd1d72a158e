package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/scene"
	"github.com/san-kum/propsim/internal/viz"
)

func hexColor(c scene.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Still renders the propeller as it stands after tick ticks of p onto a
// cols x rows braille canvas.
func Still(p motion.Params, tick, cols, rows int) *viz.Canvas {
	rig := motion.NewRig(p)
	for rig.Ticks() < tick {
		rig.Step()
	}

	c := viz.NewCanvas(cols, rows)
	sc := scene.New(0, 0)
	viz.Fit(sc, c)
	sc.Apply(rig.Frame())
	viz.RenderScene(c, sc)
	return c
}

// CanvasToSVG draws every lit braille dot as a circle, scale pixels apart,
// on the scene clear color.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.DotWidth()) * scale
	height := float64(canvas.DotHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, hexColor(scene.ClearColor), hexColor(scene.BladeMaterial.Color))

	r := scale * 0.4
	for y := 0; y < canvas.DotHeight(); y++ {
		for x := 0; x < canvas.DotWidth(); x++ {
			if !canvas.IsSet(x, y) {
				continue
			}
			cx := float64(x)*scale + scale/2
			cy := float64(y)*scale + scale/2
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, r)
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SwingToSVG plots swing angle against tick with dashed lines at the
// configured bounds, so overshoot past them is visible.
func SwingToSVG(frames []motion.Frame, maxAngle float64, width, height int, stroke string) string {
	if len(frames) < 2 || width <= 0 || height <= 0 {
		return ""
	}

	lo, hi := -maxAngle, maxAngle
	for _, f := range frames {
		lo, hi = min(lo, f.Swing), max(hi, f.Swing)
	}
	pad := (hi - lo) * 0.1
	if pad == 0 {
		pad = 1
	}
	lo -= pad
	hi += pad

	first, last := frames[0].Tick, frames[len(frames)-1].Tick
	span := float64(last - first)
	if span == 0 {
		span = 1
	}

	px := func(tick int) float64 { return float64(tick-first) / span * float64(width) }
	py := func(v float64) float64 { return float64(height) - (v-lo)/(hi-lo)*float64(height) }

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hexColor(scene.ClearColor))

	for _, b := range []float64{-maxAngle, maxAngle} {
		fmt.Fprintf(&sb, "<line x1=\"0\" y1=\"%.1f\" x2=\"%d\" y2=\"%.1f\" stroke=\"#4488aa\" stroke-dasharray=\"4 4\"/>\n",
			py(b), width, py(b))
	}

	fmt.Fprintf(&sb, `<path fill="none" stroke="%s" stroke-width="1.5" d="M`, stroke)
	for i, f := range frames {
		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", px(f.Tick), py(f.Swing))
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", px(f.Tick), py(f.Swing))
		}
	}
	sb.WriteString("\"/>\n</svg>")
	return sb.String()
}
