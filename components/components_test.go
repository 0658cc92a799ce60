package components

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-defense/core"
)

func TestNewEnemy(t *testing.T) {
	e := NewEnemy(1)
	if e.PathIndex != 0 || e.HP != 1 || !e.Alive {
		t.Errorf("NewEnemy(1) = %+v", e)
	}
}

func TestEnemyHit(t *testing.T) {
	e := NewEnemy(2)
	if e.Hit() {
		t.Error("first hit on a 2 HP enemy should not kill")
	}
	if !e.Alive || e.HP != 1 {
		t.Errorf("after one hit: %+v", e)
	}
	if !e.Hit() {
		t.Error("second hit should kill")
	}
	if e.Alive {
		t.Error("enemy should be dead")
	}
}

func TestTowerRotateFourTimes(t *testing.T) {
	tw := NewTower(core.C(5, 5), core.DirLeft, time.Time{})
	seq := []core.Dir{core.DirUp, core.DirRight, core.DirDown, core.DirLeft}
	for i, want := range seq {
		tw.Rotate()
		if tw.Facing != want {
			t.Fatalf("rotation %d: facing %v, want %v", i+1, tw.Facing, want)
		}
	}
}

func TestTowerReady(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tw := NewTower(core.C(5, 5), core.DirUp, start)
	cooldown := 2 * time.Second

	if tw.Ready(start.Add(1999*time.Millisecond), cooldown) {
		t.Error("tower ready before cooldown elapsed")
	}
	if !tw.Ready(start.Add(2*time.Second), cooldown) {
		t.Error("tower not ready exactly at cooldown")
	}
}

func TestNewProjectile(t *testing.T) {
	p := NewProjectile(core.C(3, 4), core.DirDown)
	if !p.Alive || p.Pos != core.C(3, 4) || p.Facing != core.DirDown {
		t.Errorf("NewProjectile = %+v", p)
	}
}
