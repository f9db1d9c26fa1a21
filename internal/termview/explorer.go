// Package termview is an interactive terminal explorer for the set.
// Each terminal cell shows two pixels stacked with the upper half block
// glyph, foreground for the top pixel and background for the bottom.
package termview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/ivantronics/mandelbrot"
	"github.com/ivantronics/mandelbrot/internal/config"
)

const (
	footerRows = 2

	minIterations = 16
	maxIterations = 1 << 16

	panFraction = 0.1
	zoomFactor  = 2.0
)

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Model holds the view state of the explorer.
type Model struct {
	center        complex128
	width         float64
	maxIterations int
	escapeRadius  float64
	smooth        bool

	paletteSize int
	palIndex    int
	palette     mandelbrot.Palette

	homeCenter complex128
	homeWidth  float64

	landmark int

	cols, rows int
	canvas     string
	err        error
}

// NewModel seeds the explorer from a render config.
func NewModel(cfg *config.Config) (Model, error) {
	pal, err := mandelbrot.PaletteByName(cfg.Palette, cfg.PaletteSize)
	if err != nil {
		return Model{}, err
	}
	palIndex := 0
	for i, name := range mandelbrot.PaletteNames() {
		if name == cfg.Palette {
			palIndex = i
			break
		}
	}
	if _, err := mandelbrot.New(cfg.MaxIterations, cfg.EscapeRadius); err != nil {
		return Model{}, err
	}

	return Model{
		center:        cfg.Center(),
		width:         cfg.Width,
		maxIterations: cfg.MaxIterations,
		escapeRadius:  cfg.EscapeRadius,
		smooth:        cfg.Smooth,
		paletteSize:   cfg.PaletteSize,
		palIndex:      palIndex,
		palette:       pal,
		homeCenter:    cfg.Center(),
		homeWidth:     cfg.Width,
	}, nil
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles key and resize events. Every change re-renders the
// canvas so View stays cheap.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.center -= complex(m.width*panFraction, 0)
		case "right", "l":
			m.center += complex(m.width*panFraction, 0)
		case "up", "k":
			m.center += complex(0, m.width*panFraction)
		case "down", "j":
			m.center -= complex(0, m.width*panFraction)
		case "+", "=":
			m.width /= zoomFactor
		case "-", "_":
			m.width *= zoomFactor
		case "i":
			if m.maxIterations*2 <= maxIterations {
				m.maxIterations *= 2
			}
		case "o":
			if m.maxIterations/2 >= minIterations {
				m.maxIterations /= 2
			}
		case "s":
			m.smooth = !m.smooth
		case "p":
			m.cyclePalette()
		case "n":
			m.nextLandmark()
		case "r":
			m.center = m.homeCenter
			m.width = m.homeWidth
		default:
			return m, nil
		}
	default:
		return m, nil
	}
	m.redraw()
	return m, nil
}

func (m *Model) cyclePalette() {
	names := mandelbrot.PaletteNames()
	m.palIndex = (m.palIndex + 1) % len(names)
	pal, err := mandelbrot.PaletteByName(names[m.palIndex], m.paletteSize)
	if err != nil {
		m.err = err
		return
	}
	m.palette = pal
}

func (m *Model) nextLandmark() {
	landmarks := mandelbrot.Landmarks()
	l := landmarks[m.landmark%len(landmarks)]
	m.landmark++
	m.center = l.Region.Center()
	m.width = l.Region.Width()
}

func (m *Model) paletteName() string {
	return mandelbrot.PaletteNames()[m.palIndex]
}

// redraw renders the current view into the half-block canvas.
func (m *Model) redraw() {
	rows := m.rows - footerRows
	if m.cols <= 0 || rows <= 0 {
		m.canvas = ""
		return
	}

	set, err := mandelbrot.New(m.maxIterations, m.escapeRadius)
	if err != nil {
		m.err = err
		return
	}
	vp, err := mandelbrot.NewViewport(image.Rect(0, 0, m.cols, rows*2), m.center, m.width)
	if err != nil {
		m.err = err
		return
	}

	img := image.NewRGBA(vp.Bounds)
	if err := mandelbrot.PaintParallel(set, vp, m.palette, m.smooth, img, 0); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.canvas = halfBlocks(img)
}

// View renders the cached canvas plus a status and help footer.
func (m Model) View() string {
	var s strings.Builder
	s.WriteString(m.canvas)
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render("render error: " + m.err.Error()))
	} else {
		status := fmt.Sprintf("center %.6g%+.6gi  width %.3g  iter %d  palette %s",
			real(m.center), imag(m.center), m.width, m.maxIterations, m.paletteName())
		if m.smooth {
			status += "  smooth"
		}
		s.WriteString(statusStyle.Render(status))
	}
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("arrows/hjkl:pan  +/-:zoom  i/o:iterations  s:smooth  p:palette  n:landmark  r:reset  q:quit"))
	return s.String()
}

func halfBlocks(img *image.RGBA) string {
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		if y > b.Min.Y {
			sb.WriteByte('\n')
		}
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.RGBAAt(x, y)
			bottom := top
			if y+1 < b.Max.Y {
				bottom = img.RGBAAt(x, y+1)
			}
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexColor(top))).
				Background(lipgloss.Color(hexColor(bottom)))
			sb.WriteString(cell.Render("▀"))
		}
	}
	return sb.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
