package main

type uiState struct {
	sized       bool
	assetsReady bool

	// mouse drag in progress, and the row the press landed on
	dragging bool
	pressY   int

	// frame loop bookkeeping; see frame.go
	ticking  bool
	frameSeq int
}
