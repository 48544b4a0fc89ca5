package main

import (
	"context"
	"image"
	"time"

	"github.com/andareed/profilecard/logging"
	"github.com/andareed/profilecard/portrait"
	tea "github.com/charmbracelet/bubbletea"
)

const assetTimeout = 5 * time.Second

// assetsLoadedMsg is the readiness signal: nothing is drawn before it
// arrives. A failed load still delivers the placeholder portrait.
type assetsLoadedMsg struct {
	img image.Image
	err error
}

func (m *model) loadAssets() tea.Cmd {
	src := m.cfg.image
	return func() tea.Msg { return loadPortrait(src) }
}

func loadPortrait(src string) assetsLoadedMsg {
	if src == "" {
		logging.Debug("portrait: no source configured, using placeholder")
		return assetsLoadedMsg{img: portrait.Placeholder()}
	}
	ctx, cancel := context.WithTimeout(context.Background(), assetTimeout)
	defer cancel()

	img, err := portrait.Load(ctx, src)
	if err != nil {
		logging.Warnf("portrait: %v; using placeholder", err)
		return assetsLoadedMsg{img: portrait.Placeholder(), err: err}
	}
	return assetsLoadedMsg{img: img}
}

func (m *model) applyAssets(msg assetsLoadedMsg) {
	m.background = portrait.New(msg.img).WithBlur(backgroundBlurUnits / m.layout.logicalHeight)
	m.avatar = portrait.New(msg.img).WithRoundedCorners(float64(portraitRadiusUnits) / portraitSizeUnits)
	m.ui.assetsReady = true
	logging.Debugf("assets ready (err=%v)", msg.err)
}
