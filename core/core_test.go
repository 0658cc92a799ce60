package core

import "testing"

func TestDirNextCycle(t *testing.T) {
	d := DirUp
	want := []Dir{DirRight, DirDown, DirLeft, DirUp}
	for i, w := range want {
		d = d.Next()
		if d != w {
			t.Fatalf("rotation %d: got %v, want %v", i+1, d, w)
		}
	}

	for _, start := range []Dir{DirUp, DirRight, DirDown, DirLeft} {
		d := start
		for i := 0; i < 4; i++ {
			d = d.Next()
		}
		if d != start {
			t.Errorf("four rotations from %v ended at %v", start, d)
		}
	}
}

func TestDirDeltaAndGlyph(t *testing.T) {
	tests := []struct {
		d      Dir
		dx, dy int
		glyph  rune
	}{
		{DirUp, 0, -1, '^'},
		{DirRight, 1, 0, '>'},
		{DirDown, 0, 1, 'v'},
		{DirLeft, -1, 0, '<'},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			dx, dy := tt.d.Delta()
			if dx != tt.dx || dy != tt.dy {
				t.Errorf("Delta() = (%d,%d), want (%d,%d)", dx, dy, tt.dx, tt.dy)
			}
			if g := tt.d.Glyph(); g != tt.glyph {
				t.Errorf("Glyph() = %q, want %q", g, tt.glyph)
			}
		})
	}
}

func TestBoundsInterior(t *testing.T) {
	b := Bounds{Width: 80, Height: 25}
	tests := []struct {
		c    Coord
		want bool
	}{
		{C(0, 5), false},
		{C(1, 1), true},
		{C(78, 23), true},
		{C(79, 10), false},
		{C(10, 24), false},
		{C(10, 0), false},
		{C(-1, 3), false},
	}
	for _, tt := range tests {
		if got := b.InInterior(tt.c); got != tt.want {
			t.Errorf("InInterior(%v) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestBoundsStepInside(t *testing.T) {
	b := Bounds{Width: 80, Height: 25}

	next, ok := b.StepInside(C(5, 5), DirRight)
	if !ok || next != C(6, 5) {
		t.Errorf("StepInside right = %v,%v want (6,5),true", next, ok)
	}

	// Edges of the interior refuse to step into the frame
	edges := []struct {
		c Coord
		d Dir
	}{
		{C(5, 1), DirUp},
		{C(78, 5), DirRight},
		{C(5, 23), DirDown},
		{C(1, 5), DirLeft},
	}
	for _, e := range edges {
		got, ok := b.StepInside(e.c, e.d)
		if ok {
			t.Errorf("StepInside(%v, %v) left the interior to %v", e.c, e.d, got)
		}
		if got != e.c {
			t.Errorf("StepInside(%v, %v) returned %v on failure, want origin", e.c, e.d, got)
		}
	}
}

func TestCoordAdjacent(t *testing.T) {
	if !C(3, 3).Adjacent(C(3, 4)) {
		t.Error("vertical neighbours should be adjacent")
	}
	if C(3, 3).Adjacent(C(4, 4)) {
		t.Error("diagonal cells must not be adjacent")
	}
	if C(3, 3).Adjacent(C(3, 3)) {
		t.Error("a cell is not adjacent to itself")
	}
}

func TestParseDifficulty(t *testing.T) {
	for level, want := range map[int]Difficulty{1: DifficultyEasy, 2: DifficultyMedium, 3: DifficultyHard} {
		d, err := ParseDifficulty(level)
		if err != nil || d != want {
			t.Errorf("ParseDifficulty(%d) = %v,%v want %v", level, d, err, want)
		}
	}
	for _, level := range []int{0, 4, -1} {
		if _, err := ParseDifficulty(level); err == nil {
			t.Errorf("ParseDifficulty(%d) should fail", level)
		}
	}
}
