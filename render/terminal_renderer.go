package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/session"
)

// Screen is the subset of tcell.Screen the renderer draws through
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

// Frame is everything drawn in one pass
type Frame struct {
	View   session.View
	Cursor core.Coord
	Muted  bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen Screen
	tuning *parameter.Tuning
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen Screen, tuning *parameter.Tuning) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, tuning: tuning}
}

// RenderFrame renders the entire frame for the current phase
func (r *TerminalRenderer) RenderFrame(f Frame) {
	r.screen.Clear()

	if f.View.Phase == session.PhaseSelecting {
		r.drawMenu()
		r.screen.Show()
		return
	}
	if f.View.Phase == session.PhaseQuit {
		r.screen.Show()
		return
	}

	grid := BuildGrid(f.View.Snapshot)
	r.drawGrid(grid)
	if f.View.Phase.AcceptsPlacement() {
		r.drawCursor(grid, f.Cursor)
	}

	hud := f.View.HUD
	r.drawText(0, constants.HUDRow, HUDLine(hud), StyleDefault)
	r.drawText(0, constants.PromptRow, PromptLine(hud, r.tuning.TowerCost), StyleDefault)
	if f.Muted {
		r.drawText(constants.GridWidth-len("[muted]"), constants.HUDRow, "[muted]", StyleDefault)
	}

	switch f.View.Phase {
	case session.PhaseWaveComplete:
		wave := f.View.LastWave
		r.drawText(0, constants.BannerRow, fmt.Sprintf(constants.WaveCompleteText, wave.Wave, wave.Bonus), StyleWave)
		r.drawText(0, constants.BannerRow+1, constants.WaveContinueText, StyleWave)
	case session.PhaseLost:
		r.drawText(0, constants.BannerRow, constants.GameOverText, StyleLost)
		r.drawText(0, constants.BannerRow+1, constants.TerminalPromptText, StyleLost)
	case session.PhaseWon:
		r.drawText(0, constants.BannerRow, constants.YouWinText, StyleWon)
		r.drawText(0, constants.BannerRow+1, constants.TerminalPromptText, StyleWon)
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawMenu() {
	for i, line := range MenuLines(r.tuning) {
		style := StyleMenu
		if i == 0 {
			style = StyleMenuHot
		}
		r.drawText(0, i, line, style)
	}
}

func (r *TerminalRenderer) drawGrid(g *Grid) {
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			cell := g.lines[y][x]
			r.screen.SetContent(x, y, cell.Rune, nil, StyleFor(cell.Kind))
		}
	}
}

// drawCursor marks the keyboard cursor on empty cells only
func (r *TerminalRenderer) drawCursor(g *Grid, at core.Coord) {
	if cell, ok := g.Get(at); ok && cell.Kind == KindEmpty {
		r.screen.SetContent(at.X, at.Y, constants.CursorChar, nil, StyleCursor)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
