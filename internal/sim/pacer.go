package sim

import "time"

// Pacer converts elapsed wall time into whole ticks at a nominal rate, so a
// front end refreshing at any rate still advances the rig at the same speed.
// Leftover time carries into the next call.
type Pacer struct {
	Interval time.Duration
	MaxTicks int
	acc      time.Duration
}

func NewPacer(fps int) *Pacer {
	if fps <= 0 {
		fps = 60
	}
	return &Pacer{Interval: time.Second / time.Duration(fps), MaxTicks: 8}
}

// Due adds elapsed to the accumulator and returns the ticks to run now.
// Anything past MaxTicks is dropped so a stalled window does not fast-forward.
func (p *Pacer) Due(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	p.acc += elapsed
	n := int(p.acc / p.Interval)
	p.acc -= time.Duration(n) * p.Interval
	if p.MaxTicks > 0 && n > p.MaxTicks {
		n = p.MaxTicks
		p.acc = 0
	}
	return n
}

func (p *Pacer) Reset() { p.acc = 0 }
