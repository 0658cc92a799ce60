package constants

// Grid glyphs
const (
	BorderChar     = '#'
	PathChar       = '.'
	EnemyChar      = '@'
	ProjectileChar = '*'
	CursorChar     = '+'
)

// HUD and overlay text
const (
	PromptIdle   = "Press ENTER to start wave | Click to place towers (%d gold) | Click towers to rotate"
	PromptActive = "Click to place towers (%d gold) | Click towers to rotate | Press 'q' to quit"

	MenuTitle  = "=== VI-DEFENSE ==="
	MenuChoose = "Choose difficulty:"
	MenuPrompt = "Press 1, 2, or 3 to select:"

	WaveCompleteText   = "WAVE %d COMPLETE! +%d Gold!"
	WaveContinueText   = "Press ENTER for next wave or 'q' to quit"
	GameOverText       = "================================GAME OVER==================================="
	YouWinText         = "================================YOU WIN!!==================================="
	TerminalPromptText = "=============================press 'q' to exit=============================="
)
