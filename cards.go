package main

import (
	"strings"

	"github.com/andareed/profilecard/content"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// renderCard draws either kind of entry. Skills carry a title under the
// icon, social links are the icon alone.
func renderCard(e content.Entry) string {
	style := cardStyle(e.Kind)
	icon := lipgloss.NewStyle().
		Background(style.GetBackground()).
		Foreground(lipgloss.Color(e.Color)).
		Render(content.Glyph(e.Icon))
	if e.Title == "" {
		return style.Render(icon)
	}
	title := runewidth.Truncate(e.Title, skillTitleW, "…")
	return style.Render(icon + "\n" + title)
}

func cardStyle(k content.Kind) lipgloss.Style {
	if k == content.KindSkill {
		return skillCardStyle
	}
	return socialCardStyle
}

// skillRow joins the skill cards left to right with drawer-coloured gaps. It
// never wraps; the caller clips it to the screen.
func skillRow(entries []content.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	cards := make([]string, 0, len(entries))
	h := 0
	for _, e := range entries {
		c := renderCard(e)
		cards = append(cards, c)
		h = max(h, lipgloss.Height(c))
	}
	gap := fillBlock(drawerFillStyle, skillGap, h)

	parts := make([]string, 0, 2*len(cards))
	for i, c := range cards {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// socialCards renders each social entry with its width, for placement over
// the portrait where the gaps must stay transparent.
func socialCards(entries []content.Entry) (cards []string, widths []int) {
	for _, e := range entries {
		c := renderCard(e)
		cards = append(cards, c)
		widths = append(widths, lipgloss.Width(c))
	}
	return cards, widths
}

func fillBlock(style lipgloss.Style, w, h int) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	line := style.Render(strings.Repeat(" ", w))
	lines := make([]string, h)
	for i := range lines {
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
