package engine

import "github.com/lixenwraith/vi-defense/core"

// TowerView is a tower as the presentation layer sees it
type TowerView struct {
	Pos    core.Coord
	Facing core.Dir
}

// HUD is the status line record
type HUD struct {
	WaveNumber   int
	Spawned      int
	TotalEnemies int
	Alive        int
	Gold         int
	Towers       int
	Lives        int
	WaveStarted  bool
}

// Snapshot is a read-only copy of everything drawn for one frame
// It shares no memory with the world
type Snapshot struct {
	Bounds      core.Bounds
	Path        []core.Coord
	Enemies     []core.Coord // Living enemies only
	Towers      []TowerView
	Projectiles []core.Coord // Living projectiles only
	HUD         HUD
}

// Snapshot copies the post-tick state for rendering
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{Bounds: w.Bounds}
	if w.Path == nil || w.State == nil {
		return snap
	}

	snap.Path = w.Path.Cells()

	for i := range w.Enemies {
		if w.Enemies[i].Alive {
			snap.Enemies = append(snap.Enemies, w.EnemyCell(i))
		}
	}

	snap.Towers = make([]TowerView, len(w.Towers))
	for i, t := range w.Towers {
		snap.Towers[i] = TowerView{Pos: t.Pos, Facing: t.Facing}
	}

	for _, p := range w.Projectiles {
		if p.Alive {
			snap.Projectiles = append(snap.Projectiles, p.Pos)
		}
	}

	s := w.State
	snap.HUD = HUD{
		WaveNumber:   s.WaveNumber,
		Spawned:      s.Spawned,
		TotalEnemies: s.TotalEnemies,
		Alive:        len(snap.Enemies),
		Gold:         s.Gold,
		Towers:       len(w.Towers),
		Lives:        s.Lives,
		WaveStarted:  s.WaveStarted,
	}
	return snap
}
