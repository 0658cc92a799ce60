package render

// Kind classifies what occupies a grid cell, in draw order
type Kind uint8

const (
	KindEmpty Kind = iota
	KindBorder
	KindPath
	KindEnemy
	KindTower
	KindProjectile
)

// Cell is one character of the playfield
type Cell struct {
	Rune rune
	Kind Kind
}

// emptyCell is a blank interior cell
var emptyCell = Cell{Rune: ' ', Kind: KindEmpty}
