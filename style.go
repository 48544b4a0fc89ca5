package main

import (
	"github.com/andareed/profilecard/portrait"
	"github.com/charmbracelet/lipgloss"
)

const (
	backdropColor    = "#FFFFFF"
	titleFGColor     = "#333333"
	subtitleFGColor  = "#D1E2E5"
	drawerBGColor    = "#362F41"
	skillCardBGColor = "#4A4355"
	skillTextFGColor = "#F9F9F9"
	socialBGColor    = "#F9F9F9"
)

// Source-unit geometry of the original layout.
const (
	headerTopUnits      = 50
	portraitSizeUnits   = 140
	portraitRadiusUnits = 32
	backgroundBlurUnits = 12
)

var (
	backdrop = portrait.MustHex(backdropColor)

	socialCardStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(socialBGColor)).
			Padding(0, 1)

	skillCardStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(skillCardBGColor)).
			Foreground(lipgloss.Color(skillTextFGColor)).
			Width(12).
			Padding(1, 1).
			Align(lipgloss.Center)

	drawerFillStyle = lipgloss.NewStyle().Background(lipgloss.Color(drawerBGColor))

	drawerHeadingStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(drawerBGColor)).
				Foreground(lipgloss.Color(subtitleFGColor))

	drawerEdgeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(drawerBGColor))
)

const (
	socialGap    = 2
	skillGap     = 2
	drawerPadX   = 2
	skillTitleW  = 10
	drawerTopPad = 1
)
