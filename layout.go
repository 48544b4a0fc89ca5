package main

import "math"

// DefaultLogicalHeight is the height of the original screen in source units.
// Offsets are scaled from it to terminal rows.
const DefaultLogicalHeight = 800

type screenLayout struct {
	width         int
	height        int
	logicalHeight float64
}

func (l screenLayout) unitsPerRow() float64 {
	if l.height <= 0 {
		return 0
	}
	return l.logicalHeight / float64(l.height)
}

func (l screenLayout) rowsFor(units float64) int {
	upr := l.unitsPerRow()
	if upr == 0 {
		return 0
	}
	return int(math.Round(units / upr))
}

func (l screenLayout) unitsFor(rows int) float64 {
	return float64(rows) * l.unitsPerRow()
}

// drawerTop is the first screen row covered by the drawer at offset.
func (l screenLayout) drawerTop(offset float64) int {
	return clamp(l.rowsFor(offset), 0, l.height)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
