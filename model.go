package main

import (
	"log"
	"time"

	"github.com/andareed/profilecard/content"
	"github.com/andareed/profilecard/drawer"
	"github.com/andareed/profilecard/logging"
	"github.com/andareed/profilecard/portrait"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type appConfig struct {
	drawer        drawer.Config
	logicalHeight float64
	image         string
}

type model struct {
	cfg   appConfig
	sheet *content.Sheet

	drawer   *drawer.Controller
	follower *drawer.Follower

	layout     screenLayout
	background *portrait.Portrait
	avatar     *portrait.Portrait
	frameEvery time.Duration

	ui uiState
}

func newModel(cfg appConfig, sheet *content.Sheet) *model {
	if cfg.logicalHeight <= 0 {
		cfg.logicalHeight = DefaultLogicalHeight
	}
	return &model{
		cfg:        cfg,
		sheet:      sheet,
		drawer:     drawer.New(cfg.drawer),
		follower:   drawer.NewFollower(cfg.drawer),
		layout:     screenLayout{logicalHeight: cfg.logicalHeight},
		frameEvery: frameInterval(cfg.drawer.FPS),
	}
}

func (m *model) Init() tea.Cmd {
	log.Println("profilecard: Initialised")
	return m.loadAssets()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, Keys.Quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.layout.width = msg.Width
		m.layout.height = msg.Height
		m.ui.sized = true
		logging.Debugf("window %dx%d, %.1f units per row", msg.Width, msg.Height, m.layout.unitsPerRow())
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case frameMsg:
		return m, m.handleFrame(msg)
	case assetsLoadedMsg:
		m.applyAssets(msg)
	}
	return m, nil
}

func (m *model) ready() bool {
	return m.ui.sized && m.ui.assetsReady
}

// handleMouse turns a left-button drag that starts on the drawer into one
// gesture: press starts it, motion updates it, release ends it.
func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.ready() {
		return nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.onDrawer(msg.Y) {
			return nil
		}
		m.ui.dragging = true
		m.ui.pressY = msg.Y
		m.drawer.GestureStart()
		return m.startFrames()

	case tea.MouseActionMotion:
		if !m.ui.dragging {
			return nil
		}
		m.drawer.GestureUpdate(m.layout.unitsFor(msg.Y - m.ui.pressY))
		return m.startFrames()

	case tea.MouseActionRelease:
		if !m.ui.dragging {
			return nil
		}
		m.ui.dragging = false
		if target, ok := m.drawer.GestureEnd(); ok {
			logging.Debugf("drag released, snapping %s", target)
		}
		return m.startFrames()
	}
	return nil
}

// onDrawer reports whether screen row y is inside the drawer as currently
// drawn.
func (m *model) onDrawer(y int) bool {
	return y >= m.drawerRow() && y < m.layout.height
}

func (m *model) drawerRow() int {
	return m.layout.drawerTop(m.follower.Position())
}
