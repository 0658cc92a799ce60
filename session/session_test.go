package session

import (
	"testing"
	"time"

	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/events"
	"github.com/lixenwraith/vi-defense/parameter"
)

var testEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type notificationLog struct {
	seen []events.GameEvent
}

func (n *notificationLog) HandleEvent(_ *engine.World, ev events.GameEvent) {
	n.seen = append(n.seen, ev)
}

func (n *notificationLog) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventEnemyKilled,
		events.EventEnemyLeaked,
		events.EventTowerPlaced,
		events.EventTowerRotated,
		events.EventPlacementRejected,
		events.EventWaveCleared,
		events.EventSessionEnded,
	}
}

func (n *notificationLog) count(et events.EventType) int {
	c := 0
	for _, ev := range n.seen {
		if ev.Type == et {
			c++
		}
	}
	return c
}

func (n *notificationLog) last(et events.EventType) (events.GameEvent, bool) {
	for i := len(n.seen) - 1; i >= 0; i-- {
		if n.seen[i].Type == et {
			return n.seen[i], true
		}
	}
	return events.GameEvent{}, false
}

type harness struct {
	t     *testing.T
	s     *Session
	clock *engine.MockTimeProvider
	log   *notificationLog
}

func newHarness(t *testing.T, tuning *parameter.Tuning) *harness {
	t.Helper()
	if tuning == nil {
		tuning = parameter.DefaultTuning()
	}
	clock := engine.NewMockTimeProvider(testEpoch)
	s, err := New(tuning, clock)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h := &harness{t: t, s: s, clock: clock, log: &notificationLog{}}
	s.Register(h.log)
	return h
}

func (h *harness) send(et events.EventType, payload any) {
	h.s.Push(events.GameEvent{Type: et, Payload: payload})
	h.s.Process()
}

func (h *harness) selectDifficulty(level int) {
	h.send(events.EventSelectDifficulty, &events.DifficultyPayload{Level: level})
}

func (h *harness) click(x, y int) {
	h.send(events.EventPlaceOrRotate, &events.PlacePayload{At: core.C(x, y)})
}

func (h *harness) tick() {
	h.clock.Advance(200 * time.Millisecond)
	h.s.Tick()
	h.s.Process()
}

// runWave ticks until the session leaves WaveActive or limit ticks pass
func (h *harness) runWave(limit int) int {
	h.t.Helper()
	for i := 1; i <= limit; i++ {
		h.tick()
		if h.s.Phase() != PhaseWaveActive {
			return i
		}
	}
	h.t.Fatalf("wave still active after %d ticks", limit)
	return limit
}

func (h *harness) expectPhase(want Phase) {
	h.t.Helper()
	if got := h.s.Phase(); got != want {
		h.t.Fatalf("phase = %v, want %v", got, want)
	}
}

func TestStartsInMenu(t *testing.T) {
	h := newHarness(t, nil)
	h.expectPhase(PhaseSelecting)

	// Nothing but a selection or quit is accepted
	h.send(events.EventStartWave, nil)
	h.click(4, 6)
	h.tick()
	h.expectPhase(PhaseSelecting)
	if h.s.World().State != nil {
		t.Error("state initialized before a difficulty was chosen")
	}
}

func TestSelectDifficulty(t *testing.T) {
	tests := []struct {
		level   int
		enemies int
		gold    int
		pathLen int
	}{
		{1, 5, 100, 90},
		{2, 10, 30, 53},
		{3, 15, 50, 78},
	}
	for _, tt := range tests {
		t.Run(core.Difficulty(tt.level).String(), func(t *testing.T) {
			h := newHarness(t, nil)
			h.selectDifficulty(tt.level)
			h.expectPhase(PhaseWaveIdle)

			v := h.s.View()
			if v.HUD.TotalEnemies != tt.enemies || v.HUD.Gold != tt.gold {
				t.Errorf("hud = %+v", v.HUD)
			}
			if v.HUD.Lives != 10 || v.HUD.WaveNumber != 1 || v.HUD.WaveStarted {
				t.Errorf("hud = %+v", v.HUD)
			}
			if len(v.Path) != tt.pathLen {
				t.Errorf("path length = %d, want %d", len(v.Path), tt.pathLen)
			}
		})
	}
}

func TestInvalidDifficultyIgnored(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(4)
	h.expectPhase(PhaseSelecting)
	h.send(events.EventSelectDifficulty, nil)
	h.expectPhase(PhaseSelecting)
}

// Tower two cells above the Easy route, turned to face it
func TestTowerKillsEnemy(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(1)

	h.click(4, 6)
	for i := 0; i < 3; i++ {
		h.click(4, 6)
	}
	w := h.s.World()
	if len(w.Towers) != 1 || w.Towers[0].Facing != core.DirDown {
		t.Fatalf("towers = %+v", w.Towers)
	}
	if w.State.Gold != 90 {
		t.Fatalf("gold after placement = %d, want 90", w.State.Gold)
	}

	h.send(events.EventStartWave, nil)
	h.expectPhase(PhaseWaveActive)
	if !h.s.View().HUD.WaveStarted {
		t.Error("wave started flag not set")
	}

	for i := 0; i < 9; i++ {
		h.tick()
	}
	if w.Enemies[0].PathIndex != 2 || !w.Enemies[0].Alive {
		t.Fatalf("enemy before shot = %+v", w.Enemies[0])
	}

	h.tick()
	if w.Enemies[0].Alive || w.Enemies[0].HP > 0 {
		t.Fatalf("enemy survived: %+v", w.Enemies[0])
	}
	if w.State.Gold != 92 {
		t.Errorf("gold = %d, want 92", w.State.Gold)
	}
	if h.log.count(events.EventEnemyKilled) != 1 {
		t.Errorf("kill notifications = %d", h.log.count(events.EventEnemyKilled))
	}

	// Second fire cycle: next enemy is elsewhere, nothing changes
	for i := 0; i < 10; i++ {
		h.tick()
	}
	if w.State.Gold != 92 || len(w.Towers) != 1 {
		t.Errorf("gold = %d, towers = %d after second cycle", w.State.Gold, len(w.Towers))
	}
}

func TestPlacementOnPathRejected(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(1)

	h.click(1, 8)

	w := h.s.World()
	if w.State.Gold != 100 || len(w.Towers) != 0 {
		t.Errorf("gold = %d, towers = %d", w.State.Gold, len(w.Towers))
	}
	ev, ok := h.log.last(events.EventPlacementRejected)
	if !ok {
		t.Fatal("no rejection notification")
	}
	if r := ev.Payload.(*events.RejectPayload); r.Reason != events.RejectOnPath {
		t.Errorf("reason = %s, want %s", r.Reason, events.RejectOnPath)
	}
}

func TestPlacementOutOfBoundsRejected(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(3)

	for _, c := range []core.Coord{{X: 0, Y: 5}, {X: 79, Y: 5}, {X: 5, Y: 0}, {X: 5, Y: 24}, {X: -1, Y: -1}} {
		h.click(c.X, c.Y)
	}

	w := h.s.World()
	if len(w.Towers) != 0 || w.State.Gold != 50 {
		t.Errorf("gold = %d, towers = %d", w.State.Gold, len(w.Towers))
	}
	if n := h.log.count(events.EventPlacementRejected); n != 5 {
		t.Errorf("rejections = %d, want 5", n)
	}
}

func TestPlacementInsufficientGold(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(2) // 30 gold

	for x := 2; x <= 5; x++ {
		h.click(x, 3)
	}

	w := h.s.World()
	if len(w.Towers) != 3 {
		t.Errorf("towers = %d, want 3", len(w.Towers))
	}
	if w.State.Gold != 0 {
		t.Errorf("gold = %d, want 0", w.State.Gold)
	}
	ev, ok := h.log.last(events.EventPlacementRejected)
	if !ok || ev.Payload.(*events.RejectPayload).Reason != events.RejectInsufficientGold {
		t.Errorf("last rejection = %+v", ev)
	}

	// Rotation stays free with no gold
	h.click(2, 3)
	if w.Towers[0].Facing != core.DirUp || w.State.Gold != 0 {
		t.Errorf("rotate at zero gold: facing %v gold %d", w.Towers[0].Facing, w.State.Gold)
	}
}

func TestRotateFourTimesRestoresFacing(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(1)
	h.click(10, 3)

	w := h.s.World()
	start := w.Towers[0].Facing
	for i := 0; i < 4; i++ {
		h.click(10, 3)
	}
	if w.Towers[0].Facing != start {
		t.Errorf("facing = %v, want %v", w.Towers[0].Facing, start)
	}
	if len(w.Towers) != 1 || w.State.Gold != 90 {
		t.Errorf("towers = %d, gold = %d", len(w.Towers), w.State.Gold)
	}
	if n := h.log.count(events.EventTowerRotated); n != 4 {
		t.Errorf("rotations = %d, want 4", n)
	}
}

func TestAllEnemiesLeak(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(1)
	h.send(events.EventStartWave, nil)

	h.runWave(400)
	h.expectPhase(PhaseWaveComplete)

	w := h.s.World()
	if w.State.Lives != 5 {
		t.Errorf("lives = %d, want 5", w.State.Lives)
	}
	if n := h.log.count(events.EventEnemyLeaked); n != 5 {
		t.Errorf("leaks = %d, want 5", n)
	}
	if n := h.log.count(events.EventEnemyKilled); n != 0 {
		t.Errorf("kills = %d, want 0", n)
	}
	if w.State.Gold != 125 {
		t.Errorf("gold = %d, want 125", w.State.Gold)
	}
}

func TestWaveCompleteAndContinue(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(1)
	h.send(events.EventStartWave, nil)
	h.runWave(400)
	h.expectPhase(PhaseWaveComplete)

	w := h.s.World()
	v := h.s.View()
	if v.LastWave.Wave != 1 || v.LastWave.Bonus != 25 {
		t.Errorf("last wave = %+v", v.LastWave)
	}
	if w.State.WavesCompleted != 1 || !w.State.WaveComplete {
		t.Errorf("completed = %d, flag = %v", w.State.WavesCompleted, w.State.WaveComplete)
	}
	// Counters move only on continue
	if w.State.WaveNumber != 1 || w.State.TotalEnemies != 5 {
		t.Errorf("wave = %d, total = %d before continue", w.State.WaveNumber, w.State.TotalEnemies)
	}
	if !h.s.Clock().IsPaused() {
		t.Error("clock running during wave complete")
	}

	// Paused: ticks and placement are ignored
	gold := w.State.Gold
	h.tick()
	h.click(10, 3)
	if w.State.Gold != gold || len(w.Towers) != 0 {
		t.Error("wave complete accepted placement")
	}

	h.send(events.EventContinue, nil)
	h.expectPhase(PhaseWaveIdle)
	if w.State.WaveNumber != 2 || w.State.TotalEnemies != 10 {
		t.Errorf("wave = %d, total = %d after continue", w.State.WaveNumber, w.State.TotalEnemies)
	}
	if len(w.Enemies) != 0 || w.State.Spawned != 0 || w.State.WaveStarted || w.State.WaveComplete {
		t.Errorf("wave state not reset: %+v", w.State)
	}
	if h.s.Clock().IsPaused() {
		t.Error("clock still paused after continue")
	}
	if n := h.log.count(events.EventWaveCleared); n != 1 {
		t.Errorf("wave cleared notifications = %d, want 1", n)
	}
}

func TestLivesDepletedLoses(t *testing.T) {
	h := newHarness(t, nil)
	h.selectDifficulty(3) // 15 enemies against 10 lives
	h.send(events.EventStartWave, nil)

	h.runWave(1000)
	h.expectPhase(PhaseLost)

	w := h.s.World()
	if w.State.Lives != 0 {
		t.Errorf("lives = %d, want 0", w.State.Lives)
	}
	ev, ok := h.log.last(events.EventSessionEnded)
	if !ok || ev.Payload.(*events.SessionEndPayload).Won {
		t.Errorf("session end = %+v", ev)
	}
	if h.s.Done() {
		t.Error("lost session is done before acknowledgment")
	}

	h.send(events.EventQuit, nil)
	if !h.s.Done() {
		t.Error("quit after loss did not finish the session")
	}
	if n := h.log.count(events.EventSessionEnded); n != 1 {
		t.Errorf("session end notifications = %d, want 1", n)
	}
}

func TestFinalWaveWins(t *testing.T) {
	tuning := parameter.DefaultTuning()
	tuning.StartingLives = 100
	h := newHarness(t, tuning)
	h.selectDifficulty(1)

	for wave := 1; wave <= 3; wave++ {
		h.send(events.EventStartWave, nil)
		h.runWave(1000)
		if wave < 3 {
			h.expectPhase(PhaseWaveComplete)
			h.send(events.EventContinue, nil)
		}
	}
	h.expectPhase(PhaseWon)

	w := h.s.World()
	if w.State.WavesCompleted != 3 {
		t.Errorf("waves completed = %d, want 3", w.State.WavesCompleted)
	}
	// 5 + 10 + 15 leaks, three bonuses
	if w.State.Lives != 70 || w.State.Gold != 175 {
		t.Errorf("lives = %d, gold = %d", w.State.Lives, w.State.Gold)
	}
	ev, ok := h.log.last(events.EventSessionEnded)
	if !ok || !ev.Payload.(*events.SessionEndPayload).Won {
		t.Errorf("session end = %+v", ev)
	}
	if h.s.View().LastWave.Wave != 3 {
		t.Errorf("last wave = %+v", h.s.View().LastWave)
	}

	// Ticks after the win do nothing
	h.tick()
	h.expectPhase(PhaseWon)
}

func TestQuitFromEveryPhase(t *testing.T) {
	setups := map[string]func(h *harness){
		"menu": func(h *harness) {},
		"idle": func(h *harness) { h.selectDifficulty(1) },
		"active": func(h *harness) {
			h.selectDifficulty(1)
			h.send(events.EventStartWave, nil)
			h.tick()
		},
		"complete": func(h *harness) {
			h.selectDifficulty(1)
			h.send(events.EventStartWave, nil)
			h.runWave(400)
		},
	}
	for name, setup := range setups {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, nil)
			setup(h)
			h.send(events.EventQuit, nil)
			h.expectPhase(PhaseQuit)
			if !h.s.Done() {
				t.Error("not done after quit")
			}
			if h.s.Clock().IsPaused() {
				t.Error("clock left paused after quit")
			}

			// Further input changes nothing
			h.send(events.EventStartWave, nil)
			h.send(events.EventQuit, nil)
			h.expectPhase(PhaseQuit)
		})
	}
}
