// Package tui hosts the sand engine in a terminal using bubbletea.
package tui

import (
	"strings"
	"time"

	"falling-sand/internal/core"
	"falling-sand/internal/sims/sand"

	tea "github.com/charmbracelet/bubbletea"
)

type tickMsg time.Time

// Model is the bubbletea model driving one engine. The grid is drawn one
// column per cell and two rows per terminal line.
type Model struct {
	eng    *sand.Engine
	clock  *core.FixedStep
	canvas *Canvas
	buf    []byte

	pending []sand.Stroke
	cx, cy  int
	err     error
}

// NewModel wraps eng, stepping it at tps ticks per second.
func NewModel(eng *sand.Engine, tps int) *Model {
	size := eng.Size()
	return &Model{
		eng:    eng,
		clock:  core.NewFixedStep(tps),
		canvas: NewCanvas(),
		buf:    make([]byte, 4*size.W*size.H),
		cx:     size.W / 2,
		cy:     size.H / 4,
	}
}

// Run starts a full-screen program with mouse support and blocks until the
// user quits.
func Run(eng *sand.Engine, tps int) error {
	p := tea.NewProgram(NewModel(eng, tps), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.clock.Interval(), func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd { return m.tick() }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	case tickMsg:
		for n := m.clock.Advance(time.Time(msg)); n > 0; n-- {
			m.err = m.eng.Frame(m.pending...)
			m.pending = m.pending[:0]
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	size := m.eng.Size()
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		return tea.Quit
	case " ":
		m.eng.SetPaused(!m.eng.Paused())
	case "n":
		m.eng.Step()
	case "c":
		m.eng.Clear()
	case "r":
		m.eng.Reset(m.eng.Seed())
	case "up", "k":
		m.cy = max(m.cy-1, 0)
	case "down", "j":
		m.cy = min(m.cy+1, size.H-1)
	case "left", "h":
		m.cx = max(m.cx-1, 0)
	case "right", "l":
		m.cx = min(m.cx+1, size.W-1)
	case "enter", "p":
		m.pending = append(m.pending, m.eng.Stroke(m.cx, m.cy))
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			tools := m.eng.Tools()
			if i := int(key[0] - '1'); i < len(tools) {
				m.err = m.eng.SelectTool(tools[i])
			}
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	x, y := msg.X, msg.Y*2
	size := m.eng.Size()
	if x < 0 || x >= size.W || y < 0 || y >= size.H {
		return
	}
	m.cx, m.cy = x, y
	m.pending = append(m.pending, m.eng.Stroke(x, y))
}

func (m *Model) View() string {
	size := m.eng.Size()
	if len(m.buf) != 4*size.W*size.H {
		m.buf = make([]byte, 4*size.W*size.H)
	}
	m.eng.FillRGBA(m.buf)

	var b strings.Builder
	b.WriteString(m.canvas.Render(m.buf, size.W, size.H, m.cx, m.cy))
	b.WriteByte('\n')
	b.WriteString(StatusLine(m.eng.Tool(), m.eng.Ticks(), m.eng.Paused(), m.eng.Census().String()))
	b.WriteByte('\n')
	if m.err != nil {
		b.WriteString(red.Render(m.err.Error()))
	} else {
		b.WriteString(HelpLine())
	}
	return b.String()
}
