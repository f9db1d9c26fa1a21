package termview

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ivantronics/mandelbrot"
	"github.com/ivantronics/mandelbrot/internal/config"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.MaxIterations = 32
	m, err := NewModel(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		msg = tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestNewModelUnknownPalette(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Palette = "nope"

	// The explorer rejects unknown palette names instead of silently
	// picking a built-in one.
	if _, err := NewModel(cfg); !errors.Is(err, mandelbrot.ErrUnknownPalette) {
		t.Errorf("expected ErrUnknownPalette, got %v", err)
	}
}

func TestZoomKeys(t *testing.T) {
	m := testModel(t)
	start := m.width

	m = press(t, m, "+")
	if m.width != start/2 {
		t.Errorf("width after zoom in = %g, want %g", m.width, start/2)
	}

	m = press(t, m, "-")
	m = press(t, m, "-")
	if m.width != start*2 {
		t.Errorf("width after zooming back out = %g, want %g", m.width, start*2)
	}
}

func TestPanKeys(t *testing.T) {
	m := testModel(t)
	want := m.center - complex(m.width*panFraction, 0)

	m = press(t, m, "left")
	if m.center != want {
		t.Errorf("center after pan left = %v, want %v", m.center, want)
	}

	m2 := testModel(t)
	wantUp := m2.center + complex(0, m2.width*panFraction)
	m2 = press(t, m2, "up")
	if m2.center != wantUp {
		t.Errorf("center after pan up = %v, want %v", m2.center, wantUp)
	}
}

func TestIterationKeys(t *testing.T) {
	m := testModel(t)

	m = press(t, m, "i")
	if m.maxIterations != 64 {
		t.Errorf("iterations after increase = %d, want 64", m.maxIterations)
	}

	m = press(t, m, "o")
	m = press(t, m, "o")
	if m.maxIterations != minIterations {
		t.Errorf("iterations after decreases = %d, want %d", m.maxIterations, minIterations)
	}

	// The floor holds.
	m = press(t, m, "o")
	if m.maxIterations != minIterations {
		t.Errorf("iterations dropped below floor: %d", m.maxIterations)
	}
}

func TestSmoothToggle(t *testing.T) {
	m := testModel(t)
	smooth := m.smooth

	m = press(t, m, "s")
	if m.smooth == smooth {
		t.Error("expected smooth to toggle")
	}
}

func TestPaletteCycle(t *testing.T) {
	m := testModel(t)
	start := m.paletteName()

	names := mandelbrot.PaletteNames()
	for range names {
		m = press(t, m, "p")
	}
	if m.paletteName() != start {
		t.Errorf("palette after full cycle = %q, want %q", m.paletteName(), start)
	}

	m = press(t, m, "p")
	if m.paletteName() == start {
		t.Error("expected palette to change after one press")
	}
}

func TestLandmarkJump(t *testing.T) {
	m := testModel(t)
	first := mandelbrot.Landmarks()[0].Region

	m = press(t, m, "n")
	if m.center != first.Center() || m.width != first.Width() {
		t.Errorf("view after jump = (%v, %g), want (%v, %g)",
			m.center, m.width, first.Center(), first.Width())
	}
}

func TestResetKey(t *testing.T) {
	m := testModel(t)
	home := m.center
	homeWidth := m.width

	m = press(t, m, "left")
	m = press(t, m, "+")
	m = press(t, m, "r")

	if m.center != home || m.width != homeWidth {
		t.Errorf("view after reset = (%v, %g), want (%v, %g)", m.center, m.width, home, homeWidth)
	}
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestResizeRendersCanvas(t *testing.T) {
	m := testModel(t)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 12})
	m = next.(Model)

	if m.canvas == "" {
		t.Fatal("expected a rendered canvas after resize")
	}
	// 12 terminal rows minus the footer leaves 10 canvas rows.
	if got := strings.Count(m.canvas, "\n"); got != 9 {
		t.Errorf("canvas has %d line breaks, want 9", got)
	}
	if !strings.Contains(m.View(), "iter 32") {
		t.Error("expected the status line to show the iteration budget")
	}
}
