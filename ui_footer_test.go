package main

import (
	"testing"

	"github.com/andareed/profilecard/drawer"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestRenderFooter(t *testing.T) {
	st := FooterState{
		Phase:    drawer.Settling,
		Target:   drawer.SnapExpanded,
		Offset:   432.25,
		Smoothed: 420,
		Opacity:  0.68,
		Blur:     54,
		Legend:   "q quit",
	}

	out := ansi.Strip(RenderFooter(100, st, DefaultFooterStyles()))

	assert.Contains(t, out, "SETTLING → expanded")
	assert.Contains(t, out, "y=432.2")
	assert.Contains(t, out, "blur=54")
	assert.Contains(t, out, "q quit")
}

func TestRenderFooterIdleHasNoTarget(t *testing.T) {
	out := ansi.Strip(RenderFooter(100, FooterState{Phase: drawer.Idle}, DefaultFooterStyles()))

	assert.Contains(t, out, " IDLE ")
	assert.NotContains(t, out, "→")
}

func TestRenderFooterNarrow(t *testing.T) {
	assert.Empty(t, RenderFooter(0, FooterState{}, DefaultFooterStyles()))

	out := ansi.Strip(RenderFooter(8, FooterState{Phase: drawer.Dragging, Legend: "q quit"}, DefaultFooterStyles()))
	assert.Equal(t, " DRAGGIN", out)
}

func TestAnsiColor(t *testing.T) {
	assert.Equal(t, "\x1b[38;2;255;159;28m", ansiFg("#ff9f1c"))
	assert.Equal(t, "\x1b[48;2;0;0;0m", ansiBg("#000000"))
	assert.Equal(t, "\x1b[49m", ansiBg(""))
	assert.Equal(t, "", ansiFg("red"))
}

func TestLegendText(t *testing.T) {
	assert.Equal(t, "drag the drawer · q quit", legendText(Keys.Legend()))
}
