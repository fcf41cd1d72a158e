package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/propsim/internal/metrics"
	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/scene"
	"github.com/san-kum/propsim/internal/sim"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	statsWidth      = 48
	historyCapacity = 400
	speedStep       = 1.25
)

type TickMsg time.Time

// Options configures the live viewer.
type Options struct {
	FPS   int
	Paced bool
	Theme string
}

// Model holds the rig, its scene and the terminal rendering state.
type Model struct {
	initial   motion.Params
	rig       *motion.Rig
	scene     *scene.Scene
	canvas    *Canvas
	pacer     *sim.Pacer
	reversals *metrics.Reversals
	fps       int
	last      time.Time
	running   bool
	showHelp  bool
	theme     Theme
	styles    styles
	history   []float64
	edges     int
}

func NewModel(p motion.Params, opts Options) Model {
	if opts.FPS <= 0 {
		opts.FPS = 60
	}

	m := Model{
		initial:   p,
		rig:       motion.NewRig(p),
		scene:     scene.New(0, 0),
		canvas:    NewCanvas(canvasWidth, canvasHeight),
		reversals: metrics.NewReversals(),
		fps:       opts.FPS,
		running:   true,
		theme:     GetTheme(opts.Theme),
		history:   make([]float64, 0, historyCapacity),
	}
	if opts.Paced {
		m.pacer = sim.NewPacer(opts.FPS)
	}
	m.styles = newStyles(m.theme)
	Fit(m.scene, m.canvas)
	m.scene.Apply(m.rig.Frame())
	m.draw()
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles keys, resizes and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
			m.last = time.Time{}
		case "r":
			m.reset()
		case "+", "=":
			m.scaleSpeed(speedStep)
		case "-", "_":
			m.scaleSpeed(1 / speedStep)
		case "t":
			m.theme = NextTheme(m.theme.Name)
			m.styles = newStyles(m.theme)
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case TickMsg:
		if m.running {
			m.advance(time.Time(msg))
		}
		m.draw()
		return m, m.tick()
	}
	return m, nil
}

// advance runs one tick per message, or with a pacer however many ticks
// the elapsed wall time calls for.
func (m *Model) advance(now time.Time) {
	n := 1
	if m.pacer != nil {
		if m.last.IsZero() {
			n = 0
		} else {
			n = m.pacer.Due(now.Sub(m.last))
		}
		m.last = now
	}
	for i := 0; i < n; i++ {
		m.step()
	}
}

func (m *Model) step() {
	f := m.rig.Step()
	m.scene.Apply(f)
	m.reversals.Observe(f)

	m.history = append(m.history, f.Swing)
	if len(m.history) > historyCapacity {
		m.history = m.history[1:]
	}
}

func (m *Model) reset() {
	m.rig = motion.NewRig(m.initial)
	m.reversals.Reset()
	m.history = m.history[:0]
	m.last = time.Time{}
	if m.pacer != nil {
		m.pacer.Reset()
	}
	m.scene.Apply(m.rig.Frame())
}

func (m *Model) scaleSpeed(factor float64) {
	p := m.rig.Params()
	m.rig.SetSpeeds(p.SwingSpeed*factor, p.SpinSpeed*factor)
}

// resize gives the canvas whatever the stats column leaves over. Only the
// viewport changes; the rig keeps its angles.
func (m *Model) resize(w, h int) {
	cw := w - statsWidth - 6
	ch := h - 4
	if cw < 10 || ch < 5 {
		return
	}
	m.canvas.Resize(cw, ch)
	Fit(m.scene, m.canvas)
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.edges = RenderScene(m.canvas, m.scene)
}

// View renders the canvas and the stats column side by side.
func (m Model) View() string {
	st := m.styles
	f := m.rig.Frame()
	p := m.rig.Params()

	var s strings.Builder
	s.WriteString(st.header.Render("PROPELLER") + "\n")
	if m.running {
		s.WriteString(st.running.Render("RUNNING") + "\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.history) > 1 {
		chart := asciigraph.Plot(m.history,
			asciigraph.Height(5),
			asciigraph.Width(32),
			asciigraph.LowerBound(-p.MaxAngle-p.SwingSpeed),
			asciigraph.UpperBound(p.MaxAngle+p.SwingSpeed),
			asciigraph.Caption("Swing (rad)"))
		s.WriteString(st.graph.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Tick", fmt.Sprintf("%d", f.Tick))
	row("Swing", fmt.Sprintf("%+.3f %s", f.Swing, f.Direction))
	row("", Gauge(f.Swing, -p.MaxAngle, p.MaxAngle, 21))
	row("Trace", Sparkline(m.history, 24))
	row("Spin", fmt.Sprintf("%.3f rad (%d turns)", f.Spin, m.rig.Rotor.Turns))
	row("Reversals", fmt.Sprintf("%.0f", m.reversals.Value()))
	row("Speed", fmt.Sprintf("%.4f / %.4f", p.SwingSpeed, p.SpinSpeed))
	row("Viewport", fmt.Sprintf("%dx%d", m.scene.Width, m.scene.Height))
	row("Edges", fmt.Sprintf("%d", m.edges))
	if m.pacer != nil {
		row("Pacing", fmt.Sprintf("%d fps fixed step", m.fps))
	} else {
		row("Pacing", "per frame")
	}

	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\n+/-:Speed T:Theme ?:Help"))

	main := lipgloss.JoinHorizontal(lipgloss.Top,
		st.canvas.Render(m.canvas.String()),
		st.stats.Render(s.String()))

	if m.showHelp {
		return helpText + "\n" + main
	}
	return main
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Reset angles and speeds  ║
║  +/-      - Faster / slower          ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the viewer in the alternate screen and blocks until quit.
func Run(p motion.Params, opts Options) error {
	_, err := tea.NewProgram(NewModel(p, opts), tea.WithAltScreen()).Run()
	return err
}
