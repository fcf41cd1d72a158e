package analysis

import (
	"strings"

	"github.com/san-kum/propsim/internal/motion"
)

type Point struct{ X, Y float64 }

// PhasePortrait holds swing angle (X) against angular velocity per tick (Y).
type PhasePortrait struct {
	Points []Point
}

func NewPhasePortrait(frames []motion.Frame) *PhasePortrait {
	portrait := &PhasePortrait{Points: make([]Point, 0, len(frames))}
	for i := 1; i < len(frames); i++ {
		portrait.Points = append(portrait.Points, Point{
			X: frames[i].Swing,
			Y: frames[i].Swing - frames[i-1].Swing,
		})
	}
	return portrait
}

// Reversals lists the ticks at which the swing direction changed.
func Reversals(frames []motion.Frame) []int {
	ticks := make([]int, 0)
	for i := 1; i < len(frames); i++ {
		if frames[i].Direction != frames[i-1].Direction {
			ticks = append(ticks, frames[i].Tick)
		}
	}
	return ticks
}

// ToASCII plots the portrait on a width x height character grid.
func (p *PhasePortrait) ToASCII(width, height int) string {
	if p == nil || len(p.Points) == 0 || width < 2 || height < 2 {
		return ""
	}

	minX, maxX := p.Points[0].X, p.Points[0].X
	minY, maxY := p.Points[0].Y, p.Points[0].Y
	for _, pt := range p.Points {
		minX, maxX = min(minX, pt.X), max(maxX, pt.X)
		minY, maxY = min(minY, pt.Y), max(maxY, pt.Y)
	}

	// pad
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", width))
	}

	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			grid[row][col] = '│'
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if grid[row][col] == '│' {
				grid[row][col] = '┼'
			} else {
				grid[row][col] = '─'
			}
		}
	}

	for _, pt := range p.Points {
		col := int((pt.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((pt.Y-minY)/rangeY*float64(height-1))
		if row >= 0 && row < height && col >= 0 && col < width {
			grid[row][col] = '•'
		}
	}

	var sb strings.Builder
	for _, row := range grid {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
