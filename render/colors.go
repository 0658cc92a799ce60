package render

import "github.com/gdamore/tcell/v2"

// Styles by cell kind
var (
	StyleDefault    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleBorder     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StylePath       = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	StyleEnemy      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleTower      = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	StyleProjectile = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	StyleCursor     = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)

	StyleWave    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	StyleLost    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	StyleWon     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	StyleMenu    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	StyleMenuHot = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
)

// StyleFor returns the draw style of a cell kind
func StyleFor(k Kind) tcell.Style {
	switch k {
	case KindBorder:
		return StyleBorder
	case KindPath:
		return StylePath
	case KindEnemy:
		return StyleEnemy
	case KindTower:
		return StyleTower
	case KindProjectile:
		return StyleProjectile
	default:
		return StyleDefault
	}
}
