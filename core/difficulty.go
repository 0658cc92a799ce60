package core

import "fmt"

// Difficulty selects the path topology and the starting wave profile
type Difficulty int

const (
	DifficultyEasy Difficulty = iota + 1
	DifficultyMedium
	DifficultyHard
)

// ParseDifficulty maps a menu selection (1, 2 or 3) to a Difficulty
func ParseDifficulty(level int) (Difficulty, error) {
	d := Difficulty(level)
	if !d.Valid() {
		return 0, fmt.Errorf("unknown difficulty level %d", level)
	}
	return d, nil
}

// Valid reports whether d is one of the three menu selections
func (d Difficulty) Valid() bool {
	return d >= DifficultyEasy && d <= DifficultyHard
}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}
