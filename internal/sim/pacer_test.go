package sim

import (
	"testing"
	"time"
)

func TestPacerDue(t *testing.T) {
	p := NewPacer(60)

	tests := []struct {
		elapsed time.Duration
		want    int
	}{
		{0, 0},
		{10 * time.Millisecond, 0},
		{10 * time.Millisecond, 1},
		{time.Second / 60, 1},
		{time.Second / 30, 2},
	}

	for i, tt := range tests {
		if got := p.Due(tt.elapsed); got != tt.want {
			t.Errorf("call %d: expected %d ticks, got %d", i, tt.want, got)
		}
	}
}

func TestPacerCapsStall(t *testing.T) {
	p := NewPacer(60)
	if got := p.Due(5 * time.Second); got != p.MaxTicks {
		t.Errorf("expected cap of %d, got %d", p.MaxTicks, got)
	}
	if got := p.Due(0); got != 0 {
		t.Errorf("expected backlog dropped after cap, got %d", got)
	}
}

func TestPacerIgnoresNegative(t *testing.T) {
	p := NewPacer(60)
	if got := p.Due(-time.Second); got != 0 {
		t.Errorf("expected 0 ticks, got %d", got)
	}
}
