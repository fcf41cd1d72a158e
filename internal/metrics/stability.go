package metrics

import (
	"math"

	"github.com/san-kum/propsim/internal/motion"
)

// Containment is the fraction of frames whose swing angle stayed inside
// [-threshold, threshold]. With the oscillator's overshoot it sits just below 1.
type Containment struct {
	name       string
	threshold  float64
	violations int
	samples    int
}

func NewContainment(threshold float64) *Containment {
	return &Containment{
		name:      "containment",
		threshold: threshold,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(f motion.Frame) {
	c.samples++
	if math.Abs(f.Swing) > c.threshold {
		c.violations++
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
