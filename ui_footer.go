package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/profilecard/drawer"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FooterState is what the debug status bar shows about the drawer.
type FooterState struct {
	Phase    drawer.Phase
	Target   drawer.SnapTarget
	Offset   float64
	Smoothed float64
	Opacity  float64
	Blur     int
	Legend   string
}

type FooterStyles struct {
	BarBG      lipgloss.Color
	ModePillBG lipgloss.Color
	ModePillFG lipgloss.Color
	TextFG     lipgloss.Color
	LegendFG   lipgloss.Color
}

func DefaultFooterStyles() FooterStyles {
	return FooterStyles{
		BarBG:      lipgloss.Color("#2b2b2b"),
		ModePillBG: lipgloss.Color("#ff9f1c"),
		ModePillFG: lipgloss.Color("#000000"),
		TextFG:     lipgloss.Color("#cfcfcf"),
		LegendFG:   lipgloss.Color("#b0b0b0"),
	}
}

func (m *model) footerView(width int) string {
	st := FooterState{
		Phase:    m.drawer.Phase(),
		Target:   m.drawer.Target(),
		Offset:   m.drawer.Offset(),
		Smoothed: m.follower.Position(),
		Opacity:  m.drawer.Opacity(),
		Blur:     m.drawer.Blur(),
		Legend:   legendText(Keys.Legend()),
	}
	return RenderFooter(width, st, DefaultFooterStyles())
}

func legendText(bindings []key.Binding) string {
	parts := []string{"drag the drawer"}
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

// RenderFooter draws a single bar: a pill with the drawer phase, the live
// numbers, and the legend pushed to the right edge.
func RenderFooter(width int, st FooterState, styles FooterStyles) string {
	if width <= 0 {
		return ""
	}

	pill := " " + st.Phase.String() + " "
	if st.Phase == drawer.Settling {
		pill = " " + st.Phase.String() + " → " + st.Target.String() + " "
	}
	pill = truncatePlain(pill, width)

	stats := fmt.Sprintf(" y=%.1f draw=%.1f α=%.2f blur=%d", st.Offset, st.Smoothed, st.Opacity, st.Blur)
	rest := width - runeWidth(pill)
	stats = truncatePlain(stats, rest)
	rest -= runeWidth(stats)

	legend := ""
	if rest > runeWidth(st.Legend)+1 {
		legend = st.Legend
	}
	gap := strings.Repeat(" ", max(rest-runeWidth(legend), 0))

	line := ansiBg(styles.ModePillBG) + ansiFg(styles.ModePillFG) + pill +
		ansiBg(styles.BarBG) + ansiFg(styles.TextFG) + stats + gap +
		applyFG(legend, styles.LegendFG, styles.TextFG)
	return line + "\x1b[0m"
}

func applyFG(s string, fg lipgloss.Color, resetFG lipgloss.Color) string {
	return ansiFg(fg) + s + ansiFg(resetFG)
}

func ansiFg(c lipgloss.Color) string {
	return ansiColor(false, c)
}

func ansiBg(c lipgloss.Color) string {
	return ansiColor(true, c)
}

func ansiColor(isBg bool, c lipgloss.Color) string {
	s := string(c)
	if s == "" {
		if isBg {
			return "\x1b[49m"
		}
		return "\x1b[39m"
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		r, _ := strconv.ParseInt(s[1:3], 16, 0)
		g, _ := strconv.ParseInt(s[3:5], 16, 0)
		b, _ := strconv.ParseInt(s[5:7], 16, 0)
		code := 38
		if isBg {
			code = 48
		}
		return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", code, r, g, b)
	}
	return ""
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}
