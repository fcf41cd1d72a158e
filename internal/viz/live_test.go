package viz

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/propsim/internal/motion"
)

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return mm
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelTickSteps(t *testing.T) {
	m := NewModel(motion.DefaultParams(), Options{FPS: 60})
	for i := 0; i < 3; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	if m.rig.Ticks() != 3 {
		t.Errorf("expected 3 ticks, got %d", m.rig.Ticks())
	}
	if len(m.history) != 3 {
		t.Errorf("expected 3 history points, got %d", len(m.history))
	}
}

func TestModelPause(t *testing.T) {
	m := NewModel(motion.DefaultParams(), Options{})
	m = update(t, m, key(" "))
	m = update(t, m, TickMsg(time.Now()))
	if m.rig.Ticks() != 0 {
		t.Errorf("paused model advanced to tick %d", m.rig.Ticks())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("view does not show paused state")
	}
}

func TestModelSpeedAndReset(t *testing.T) {
	p := motion.DefaultParams()
	m := NewModel(p, Options{})
	m = update(t, m, key("+"))
	if got := m.rig.Params().SwingSpeed; got != p.SwingSpeed*speedStep {
		t.Errorf("expected faster swing, got %v", got)
	}

	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, key("r"))
	if m.rig.Ticks() != 0 || m.rig.Params() != p {
		t.Errorf("reset did not restore the rig: tick %d params %+v", m.rig.Ticks(), m.rig.Params())
	}
	if len(m.history) != 0 {
		t.Error("reset kept history")
	}
}

func TestModelResizeKeepsRig(t *testing.T) {
	m := NewModel(motion.DefaultParams(), Options{})
	for i := 0; i < 5; i++ {
		m = update(t, m, TickMsg(time.Now()))
	}
	before := m.rig.Frame()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.canvas.Width != 66 || m.canvas.Height != 36 {
		t.Errorf("unexpected canvas %dx%d", m.canvas.Width, m.canvas.Height)
	}
	if m.scene.Width != 132 || m.scene.Height != 144 {
		t.Errorf("unexpected viewport %dx%d", m.scene.Width, m.scene.Height)
	}
	if m.rig.Frame() != before {
		t.Error("resize changed the rig")
	}
}

func TestModelPacedFirstTick(t *testing.T) {
	m := NewModel(motion.DefaultParams(), Options{FPS: 60, Paced: true})
	now := time.Now()
	m = update(t, m, TickMsg(now))
	if m.rig.Ticks() != 0 {
		t.Errorf("first paced tick should only set the clock, got %d", m.rig.Ticks())
	}
	m = update(t, m, TickMsg(now.Add(50*time.Millisecond)))
	if m.rig.Ticks() != 3 {
		t.Errorf("expected 3 ticks for 50ms at 60fps, got %d", m.rig.Ticks())
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(motion.DefaultParams(), Options{})
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("nope").Name != "night" {
		t.Error("expected night fallback")
	}
	if NextTheme("minimal").Name != "night" {
		t.Error("expected wrap to night")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names mismatch")
	}
}
