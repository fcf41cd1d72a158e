package audio

import (
	"log"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/propsim/internal/motion"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// CarrierRatio lifts the blade-pass rate, a few hertz at normal speeds,
	// into the audible range. 32 is five octaves.
	CarrierRatio = 32.0
	Volume       = 0.2
)

// BladePassHz is how many blades pass a fixed point per second when the
// rotor turns spinSpeed radians per tick at fps ticks per second.
func BladePassHz(spinSpeed float64, blades, fps int) float64 {
	return math.Abs(spinSpeed) * float64(blades) * float64(fps) / (2 * math.Pi)
}

// Pan maps the swing angle to a stereo position in [-1, 1].
func Pan(swing, maxAngle float64) float64 {
	if maxAngle <= 0 {
		return 0
	}
	return math.Max(-1, math.Min(1, swing/maxAngle))
}

// Hum synthesises the propeller drone: a triangle carrier at CarrierRatio
// times the blade-pass rate, pulsed once per blade, panned by the swing.
// Targets are glided towards to avoid clicks.
type Hum struct {
	SampleRate float64

	bladePass, pan       float64
	bladeSmooth, panSmth float64
	carrierPhase         float64
	pulsePhase           float64
	filterState          [2]float64
}

func NewHum(sampleRate float64) *Hum {
	return &Hum{SampleRate: sampleRate}
}

func (h *Hum) SetTarget(bladePassHz, pan float64) {
	h.bladePass, h.pan = bladePassHz, pan
}

// Fill writes len(left) stereo samples.
func (h *Hum) Fill(left, right []float32) {
	dt := 1.0 / h.SampleRate
	for i := range left {
		h.bladeSmooth += (h.bladePass - h.bladeSmooth) * 0.001
		h.panSmth += (h.pan - h.panSmth) * 0.001

		h.carrierPhase += h.bladeSmooth * CarrierRatio * dt
		h.pulsePhase += h.bladeSmooth * dt
		h.carrierPhase -= math.Floor(h.carrierPhase)
		h.pulsePhase -= math.Floor(h.pulsePhase)

		// one soft swell per blade; a stopped rotor is silent
		env := 0.6 + 0.4*math.Cos(2*math.Pi*h.pulsePhase)
		level := math.Min(1, h.bladeSmooth)
		s := triangle(h.carrierPhase) * env * level * Volume

		// equal-power pan
		theta := (h.panSmth + 1) * math.Pi / 4
		var l, r float64
		l, h.filterState[0] = lpf(s*math.Cos(theta), 800, dt, h.filterState[0])
		r, h.filterState[1] = lpf(s*math.Sin(theta), 800, dt, h.filterState[1])

		left[i] = float32(l)
		if i < len(right) {
			right[i] = float32(r)
		}
	}
}

func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// one-pole low pass
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// Processor plays a Hum through the default portaudio output device.
type Processor struct {
	Stream *portaudio.Stream
	Active bool

	mu     sync.Mutex
	hum    *Hum
	blades int
	fps    int
}

func NewProcessor(blades, fps int) *Processor {
	return &Processor{
		hum:    NewHum(SampleRate),
		blades: blades,
		fps:    fps,
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		log.Printf("audio: initialize: %v", err)
		return err
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		log.Printf("audio: open stream: %v", err)
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		log.Printf("audio: start stream: %v", err)
		stream.Close()
		portaudio.Terminate()
		return err
	}

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// Update retargets the hum from the latest frame and rig parameters.
func (a *Processor) Update(f motion.Frame, p motion.Params) {
	a.mu.Lock()
	a.hum.SetTarget(BladePassHz(p.SpinSpeed, a.blades, a.fps), Pan(f.Swing, p.MaxAngle))
	a.mu.Unlock()
}

// ProcessAudio is the portaudio callback; it runs on the audio thread.
func (a *Processor) ProcessAudio(out [][]float32) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(out) < 2 {
		a.hum.Fill(out[0], nil)
		return
	}
	a.hum.Fill(out[0], out[1])
}
