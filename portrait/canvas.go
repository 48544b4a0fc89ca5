package portrait

import (
	"sort"
	"strings"

	"github.com/charmbracelet/x/ansi"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

type layer struct {
	col   int
	width int
	draw  func(top, bottom []colorful.Color) string
}

// Canvas is a rendered portrait frame that other content can be placed on
// before it is turned into lines. Cells not covered by a layer show the
// portrait.
type Canvas struct {
	p      *Portrait
	cols   int
	frame  [][]colorful.Color
	layers [][]layer
}

// Canvas blends the portrait for a cols x rows area and returns it ready for
// layering.
func (p *Portrait) Canvas(cols, rows int, opacity float64, backdrop colorful.Color) *Canvas {
	if rows < 0 || cols <= 0 {
		rows = 0
	}
	return &Canvas{
		p:      p,
		cols:   cols,
		frame:  p.Frame(cols, rows, opacity, backdrop),
		layers: make([][]layer, rows),
	}
}

func (c *Canvas) Rows() int { return len(c.layers) }

// Place puts an already styled block at (row, col). Lines past the canvas
// edges are clipped.
func (c *Canvas) Place(row, col int, block string) {
	if col >= c.cols || col < 0 {
		return
	}
	for i, line := range strings.Split(block, "\n") {
		r := row + i
		if r < 0 || r >= len(c.layers) {
			continue
		}
		line = ansi.Truncate(line, c.cols-col, "")
		w := ansi.StringWidth(line)
		if w == 0 {
			continue
		}
		c.add(r, layer{col: col, width: w, draw: func(_, _ []colorful.Color) string {
			return line + termenv.CSI + "0m"
		}})
	}
}

// Text writes plain text at (row, col) in the fg colour. Each cell keeps the
// portrait underneath as its background.
func (c *Canvas) Text(row, col int, text string, fg string, bold bool) {
	if row < 0 || row >= len(c.layers) || col >= c.cols || col < 0 {
		return
	}
	text = runewidth.Truncate(text, c.cols-col, "")
	w := runewidth.StringWidth(text)
	if w == 0 {
		return
	}
	profile := c.p.profile
	c.add(row, layer{col: col, width: w, draw: func(top, bottom []colorful.Color) string {
		var b strings.Builder
		x := 0
		for _, r := range text {
			rw := runewidth.RuneWidth(r)
			if rw == 0 {
				b.WriteRune(r)
				continue
			}
			under := top[x].BlendRgb(bottom[x], 0.5).Clamped()
			b.WriteString(colorSeq(profile, under.Hex(), true))
			b.WriteString(colorSeq(profile, fg, false))
			if bold {
				b.WriteString(termenv.CSI + termenv.BoldSeq + "m")
			}
			b.WriteRune(r)
			x += rw
		}
		b.WriteString(termenv.CSI + "0m")
		return b.String()
	}})
}

func (c *Canvas) add(row int, l layer) {
	c.layers[row] = append(c.layers[row], l)
}

// Lines renders every row. Layers are drawn left to right; a layer that
// starts inside an earlier one on the same row is dropped.
func (c *Canvas) Lines() []string {
	lines := make([]string, len(c.layers))
	for r := range c.layers {
		top, bottom := c.frame[2*r], c.frame[2*r+1]
		ls := c.layers[r]
		sort.SliceStable(ls, func(i, j int) bool { return ls[i].col < ls[j].col })

		var b strings.Builder
		x := 0
		for _, l := range ls {
			if l.col < x {
				continue
			}
			if l.col > x {
				b.WriteString(c.p.renderLine(top[x:l.col], bottom[x:l.col]))
			}
			end := min(l.col+l.width, c.cols)
			b.WriteString(l.draw(top[l.col:end], bottom[l.col:end]))
			x = end
		}
		if x < c.cols {
			b.WriteString(c.p.renderLine(top[x:], bottom[x:]))
		}
		lines[r] = b.String()
	}
	return lines
}
