package main

import (
	"strings"

	"github.com/andareed/profilecard/logging"
	"github.com/andareed/profilecard/portrait"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"
)

func (m *model) View() string {
	if !m.ready() {
		return ""
	}
	w, h := m.layout.width, m.layout.height
	if w <= 0 || h <= 0 {
		return ""
	}

	canvas := m.background.Canvas(w, h, m.drawer.Opacity(), backdrop)
	m.placeHeader(canvas)
	lines := canvas.Lines()

	top := m.drawerRow()
	copy(lines[top:], m.drawerLines(w, h-top))

	if logging.IsDebugMode() {
		lines[h-1] = m.footerView(w)
	}
	return strings.Join(lines, "\n")
}

// placeHeader lays out the sharp portrait, the name, the role and the social
// row, centred, starting at the header offset.
func (m *model) placeHeader(c *portrait.Canvas) {
	w := m.layout.width
	row := m.layout.rowsFor(headerTopUnits)

	size := max(m.layout.rowsFor(portraitSizeUnits), 1)
	avatarCols := min(size*2, w)
	for i, line := range m.avatar.Render(avatarCols, size, 1, backdrop) {
		c.Place(row+i, (w-avatarCols)/2, line)
	}
	row += size + 1

	profile := m.sheet.Profile
	for _, l := range wrapText(profile.Name, w) {
		c.Text(row, centred(w, l), l, titleFGColor, true)
		row++
	}
	for _, l := range wrapText(profile.Role, w) {
		c.Text(row, centred(w, l), l, subtitleFGColor, false)
		row++
	}
	row++

	cards, widths := socialCards(m.sheet.Social)
	total := 0
	for i, cw := range widths {
		if i > 0 {
			total += socialGap
		}
		total += cw
	}
	col := max((w-total)/2, 0)
	for i, card := range cards {
		if col >= w {
			break
		}
		c.Place(row, col, card)
		col += widths[i] + socialGap
	}
}

// drawerLines renders the drawer panel, clipped to n rows.
func (m *model) drawerLines(w, n int) []string {
	if n <= 0 {
		return nil
	}
	var body []string
	body = append(body, drawerEdgeStyle.Render(drawerEdge(w)))
	for i := 0; i < drawerTopPad; i++ {
		body = append(body, drawerLine("", w))
	}
	heading := drawerHeadingStyle.Render("Skills")
	body = append(body, drawerLine(fill(centred(w-2*drawerPadX, heading))+heading, w))
	body = append(body, drawerLine("", w))
	if row := skillRow(m.sheet.Skills); row != "" {
		for _, l := range strings.Split(row, "\n") {
			body = append(body, drawerLine(l, w))
		}
	}
	for len(body) < n {
		body = append(body, drawerLine("", w))
	}
	return body[:n]
}

// drawerLine pads s to the full width in the drawer colour. Content wider
// than the panel is cut, never wrapped.
func drawerLine(s string, w int) string {
	left := min(drawerPadX, w)
	s = ansi.Truncate(s, max(w-2*drawerPadX, 0), "")
	right := max(w-left-ansi.StringWidth(s), 0)
	return fill(left) + s + fill(right)
}

func fill(n int) string {
	if n <= 0 {
		return ""
	}
	return drawerFillStyle.Render(strings.Repeat(" ", n))
}

// drawerEdge is the rounded top of the panel drawn with half blocks.
func drawerEdge(w int) string {
	switch {
	case w <= 0:
		return ""
	case w == 1:
		return "▄"
	}
	return "▗" + strings.Repeat("▄", w-2) + "▖"
}

// wrapText breaks s on word boundaries to fit width. A single word longer
// than width stays whole and is clipped when drawn.
func wrapText(s string, width int) []string {
	if s == "" || width <= 0 {
		return nil
	}
	var out []string
	for _, l := range strings.Split(wordwrap.String(s, width), "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func centred(width int, s string) int {
	return max((width-lipgloss.Width(s))/2, 0)
}
