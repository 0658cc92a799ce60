package render

import (
	"fmt"

	"github.com/lixenwraith/vi-defense/constants"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/parameter"
)

// HUDLine formats the status line under the grid
func HUDLine(h engine.HUD) string {
	return fmt.Sprintf("Wave %d | Enemies: %d/%d | Alive: %d | Gold: %d | Towers: %d | Lives: %d",
		h.WaveNumber, h.Spawned, h.TotalEnemies, h.Alive, h.Gold, h.Towers, h.Lives)
}

// PromptLine is the hint line; it changes once the wave has started
func PromptLine(h engine.HUD, towerCost int) string {
	if h.WaveStarted {
		return fmt.Sprintf(constants.PromptActive, towerCost)
	}
	return fmt.Sprintf(constants.PromptIdle, towerCost)
}

// MenuLines lists the difficulty menu built from the tuning table
func MenuLines(t *parameter.Tuning) []string {
	lines := []string{constants.MenuTitle, "", constants.MenuChoose}
	for _, d := range []core.Difficulty{core.DifficultyEasy, core.DifficultyMedium, core.DifficultyHard} {
		p := t.Profile(d)
		lines = append(lines, fmt.Sprintf("%d. %-7s (%d enemies, %d gold)", int(d), d.String(), p.Enemies, p.Gold))
	}
	return append(lines, "", constants.MenuPrompt)
}
