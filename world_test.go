package main

import (
	"math"
	"testing"
)

// newTestWorld builds a deterministic world for direct stepping in tests
func newTestWorld(t *testing.T, mode GameMode) *World {
	t.Helper()
	w, err := NewWorld(mode, 12345)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	return w
}

func TestNewWorldUnknownMode(t *testing.T) {
	if _, err := NewWorld(GameMode(99), 1); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestMovementBoundsClamp(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	w.Obstacles = nil
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.X, p.Y = 1, 1
	p.MoveX, p.MoveY = -1, -1
	p.Moving = true

	for i := 0; i < 10; i++ {
		w.stepMovement(p)
	}
	if p.X < 0 || p.Y < 0 {
		t.Errorf("position escaped the arena: (%f, %f)", p.X, p.Y)
	}
}

func TestMovementWallSliding(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	// Single vertical wall; a diagonal push into it keeps the free axis
	w.Obstacles = []Obstacle{{X: 200, Y: 0, W: 40, H: 640, Type: ObstacleWall}}
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.X, p.Y = 178, 300
	p.MoveX, p.MoveY = 1, 1
	p.Moving = true

	w.stepMovement(p)
	if p.X != 178 {
		t.Errorf("x axis should be blocked by the wall, got %f", p.X)
	}
	if p.Y != 303 {
		t.Errorf("y axis should slide along the wall, got %f", p.Y)
	}
}

func TestMovementSkippedWhileDashing(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	w.Obstacles = nil
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.X, p.Y = 400, 300
	p.MoveX, p.MoveY = 1, 0
	p.Moving = true
	p.DashTicks = 5

	w.stepMovement(p)
	if p.X != 400 {
		t.Errorf("normal movement must not apply mid-dash, got x=%f", p.X)
	}
}

func TestBallCarrierSlowdown(t *testing.T) {
	w := newTestWorld(t, ModeBrawlBall)
	w.Obstacles = nil
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.X, p.Y = 400, 300
	p.MoveX, p.MoveY = 1, 0
	p.Moving = true
	w.Ball.CarrierID = p.ID

	w.stepMovement(p)
	want := 400 + GetCharacterDef(0).MoveSpeed*BallCarrySlowdown
	if math.Abs(p.X-want) > 1e-9 {
		t.Errorf("carrier speed: expected x=%f, got %f", want, p.X)
	}
}

func TestReloadExactTicks(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false) // ReloadTicks 40
	p.Ammo = 2

	for i := 0; i < 39; i++ {
		w.stepReload(p)
	}
	if p.Ammo != 2 {
		t.Fatalf("ammo regained too early, got %d", p.Ammo)
	}
	w.stepReload(p)
	if p.Ammo != 3 {
		t.Errorf("expected ammo back at exactly 40 ticks, got %d", p.Ammo)
	}
	if p.Reload != 0 {
		t.Errorf("reload progress should reset after regain, got %d", p.Reload)
	}
}

func TestReloadIdleAtFullAmmo(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)

	w.stepReload(p)
	if p.Reload != 0 {
		t.Error("reload progress should not accumulate at full ammo")
	}
}

func TestRespawnCycle(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.Ammo = 1
	w.killPlayer(p, "")

	if p.RespawnT != RespawnTicks {
		t.Fatalf("expected respawn timer %d, got %d", RespawnTicks, p.RespawnT)
	}
	for i := 0; i < RespawnTicks-1; i++ {
		w.tickRespawn(p)
		if p.RespawnT == 0 {
			t.Fatalf("revived too early at tick %d", i+1)
		}
	}
	w.tickRespawn(p)
	if p.RespawnT != 0 {
		t.Fatal("should be revived after the full countdown")
	}
	if p.HP != GetCharacterDef(0).MaxHP {
		t.Errorf("expected full HP after respawn, got %d", p.HP)
	}
	if p.Ammo != p.MaxAmmo {
		t.Errorf("expected full ammo after respawn, got %d", p.Ammo)
	}
}

func TestSpawnPositionNearTeamPoint(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	bx, by := w.Config.SpawnPoint(TeamRed)
	for i := 0; i < 50; i++ {
		x, y := w.spawnPosition(TeamRed)
		if math.Abs(x-bx) > SpawnJitter || math.Abs(y-by) > SpawnJitter {
			t.Fatalf("spawn (%f,%f) too far from base (%f,%f)", x, y, bx, by)
		}
		if x < PlayerRadius || x > w.Width-PlayerRadius || y < PlayerRadius || y > w.Height-PlayerRadius {
			t.Fatalf("spawn outside the arena: (%f,%f)", x, y)
		}
	}
}

func TestStepHaltsAfterResult(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	w.Result = ResultVictory
	before := w.Tick
	w.Step()
	if w.Tick != before {
		t.Error("a finished world must not advance")
	}
}

func TestDrainEventsClears(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	w.Events = append(w.Events, WorldEvent{Kind: EventKill})
	if n := len(w.DrainEvents()); n != 1 {
		t.Fatalf("expected 1 event, got %d", n)
	}
	if n := len(w.DrainEvents()); n != 0 {
		t.Errorf("expected drained queue, got %d", n)
	}
}

func TestSnapshotShape(t *testing.T) {
	wg := newTestWorld(t, ModeGemGrab)
	wg.AddPlayer("p1", "A", TeamBlue, 0, false)
	gs := wg.Snapshot()
	if len(gs.Players) != 1 {
		t.Errorf("expected 1 player in snapshot, got %d", len(gs.Players))
	}
	if len(gs.Obstacles) == 0 {
		t.Error("snapshot should include the obstacle layout")
	}
	if gs.Ball != nil {
		t.Error("gem mode snapshot should have no ball")
	}
	if gs.TimeLeft != nil {
		t.Error("gem mode without a countdown should omit the timer")
	}

	wb := newTestWorld(t, ModeBrawlBall)
	gb := wb.Snapshot()
	if gb.Ball == nil {
		t.Error("ball mode snapshot should include the ball")
	}
	if gb.TimeLeft == nil || *gb.TimeLeft != BrawlTimeLimit {
		t.Error("ball mode snapshot should carry the match clock")
	}
}

func TestRemovePlayer(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	w.AddPlayer("p1", "A", TeamBlue, 0, false)
	w.AddPlayer("p2", "B", TeamRed, 1, false)
	w.RemovePlayer("p1")
	if len(w.Players) != 1 || w.Players[0].ID != "p2" {
		t.Error("RemovePlayer should drop exactly the named combatant")
	}
	if w.PlayerByID("p1") != nil {
		t.Error("removed player should not resolve")
	}
}
