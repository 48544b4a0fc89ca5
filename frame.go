package main

import (
	"time"

	"github.com/andareed/profilecard/drawer"
	tea "github.com/charmbracelet/bubbletea"
)

type frameMsg struct{ id int }

func frameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = drawer.DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// startFrames begins the frame loop unless one is already running.
func (m *model) startFrames() tea.Cmd {
	if m.ui.ticking {
		return nil
	}
	m.ui.ticking = true

	// bump sequence to invalidate any older tick chain
	m.ui.frameSeq++
	return m.nextFrame()
}

func (m *model) nextFrame() tea.Cmd {
	id := m.ui.frameSeq
	return tea.Tick(m.frameEvery, func(time.Time) tea.Msg { return frameMsg{id: id} })
}

// handleFrame advances the springs by one frame and keeps ticking while
// anything is still moving.
func (m *model) handleFrame(msg frameMsg) tea.Cmd {
	if msg.id != m.ui.frameSeq {
		return nil
	}
	settling := m.drawer.Step()
	moving := m.follower.Step(m.drawer.Offset())
	if settling || moving || m.drawer.Phase() == drawer.Dragging {
		return m.nextFrame()
	}
	m.ui.ticking = false
	return nil
}
