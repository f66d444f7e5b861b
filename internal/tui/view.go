package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const halfBlock = "▀"

var (
	title  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc66"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	red    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#ff00ff"))
)

type cellPair struct {
	top, bottom [3]byte
	single      bool
}

// Canvas turns an RGBA frame into terminal lines, two grid rows per line.
// Styles are cached per colour pair.
type Canvas struct {
	styles map[cellPair]lipgloss.Style
}

// NewCanvas returns an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{styles: map[cellPair]lipgloss.Style{}}
}

// Render draws a w*h RGBA buffer. The cell at (cx, cy) is highlighted when
// it lies inside the grid.
func (c *Canvas) Render(buf []byte, w, h, cx, cy int) string {
	if w <= 0 || h <= 0 || len(buf) < 4*w*h {
		return ""
	}
	var b strings.Builder
	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			if x == cx && (y == cy || y+1 == cy) {
				b.WriteString(cursor.Render(halfBlock))
				continue
			}
			p := cellPair{top: rgb(buf, y*w+x), single: y+1 >= h}
			if !p.single {
				p.bottom = rgb(buf, (y+1)*w+x)
			}
			b.WriteString(c.style(p).Render(halfBlock))
		}
	}
	return b.String()
}

func (c *Canvas) style(p cellPair) lipgloss.Style {
	if s, ok := c.styles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(hex(p.top))
	if !p.single {
		s = s.Background(hex(p.bottom))
	}
	c.styles[p] = s
	return s
}

func rgb(buf []byte, i int) [3]byte {
	return [3]byte{buf[4*i], buf[4*i+1], buf[4*i+2]}
}

func hex(c [3]byte) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}

// StatusLine summarises the engine state below the grid.
func StatusLine(tool string, ticks int, paused bool, census string) string {
	state := green.Render("running")
	if paused {
		state = yellow.Render("paused")
	}
	return fmt.Sprintf("%s  %s  tick %d  tool %s  %s",
		title.Render("sand"), state, ticks, tool, dim.Render(census))
}

// HelpLine lists the key bindings.
func HelpLine() string {
	return dim.Render("1-5 tool  space pause  n step  c clear  r reset  arrows move  enter paint  q quit")
}
