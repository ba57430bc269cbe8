package main

import "testing"

func TestTryFireConsumesAmmo(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.X, p.Y = 400, 300
	p.Aim = 0

	if !TryFire(w, p) {
		t.Fatal("fire with ammo should succeed")
	}
	if p.Ammo != DefaultMaxAmmo-1 {
		t.Errorf("expected ammo %d, got %d", DefaultMaxAmmo-1, p.Ammo)
	}
	if len(w.Projectiles) != 1 {
		t.Fatalf("expected 1 projectile, got %d", len(w.Projectiles))
	}
	pr := w.Projectiles[0]
	if pr.X != p.X+FireOffset || pr.Y != p.Y {
		t.Errorf("projectile should spawn %v ahead of shooter, got (%f,%f)", FireOffset, pr.X, pr.Y)
	}
	if pr.OwnerID != p.ID || pr.Team != p.Team {
		t.Error("projectile should carry owner and team")
	}
}

func TestTryFireEmptyMagazine(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.Ammo = 0

	if TryFire(w, p) {
		t.Error("fire with no ammo should fail")
	}
	if len(w.Projectiles) != 0 {
		t.Error("no projectile should spawn on a failed fire")
	}
}

func TestTryFireGatedByDashAndDeath(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)

	p.DashTicks = 3
	if TryFire(w, p) {
		t.Error("fire mid-dash should fail")
	}
	p.DashTicks = 0
	p.RespawnT = 60
	if TryFire(w, p) {
		t.Error("fire while dead should fail")
	}
}

func TestFireResetsReloadProgress(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.Ammo = 2
	p.Reload = 30

	TryFire(w, p)
	if p.Reload != 0 {
		t.Errorf("firing should reset partial reload progress, got %d", p.Reload)
	}
}

func TestShotgunFiresMultipleProjectiles(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 1, false) // Rook, 5 per shot
	p.X, p.Y = 400, 300

	TryFire(w, p)
	if want := GetCharacterDef(1).ProjCount; len(w.Projectiles) != want {
		t.Errorf("expected %d projectiles, got %d", want, len(w.Projectiles))
	}
}

func TestFourHitsToKill(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	shooter := w.AddPlayer("s", "S", TeamBlue, 0, false) // 900 damage
	victim := w.AddPlayer("v", "V", TeamRed, 0, false)   // 3600 HP

	pr := &Projectile{OwnerID: shooter.ID, Team: shooter.Team, Damage: 900}
	for i := 0; i < 3; i++ {
		w.hitPlayer(pr, victim)
	}
	if victim.RespawnT != 0 {
		t.Fatal("victim should survive three hits")
	}
	if victim.HP != 900 {
		t.Errorf("expected 900 HP after three hits, got %d", victim.HP)
	}

	w.hitPlayer(pr, victim)
	if victim.RespawnT != RespawnTicks {
		t.Error("fourth hit should kill")
	}
	if shooter.Kills != 1 {
		t.Errorf("killer should be credited, got %d kills", shooter.Kills)
	}
	if victim.Deaths != 1 {
		t.Errorf("victim death should be counted, got %d", victim.Deaths)
	}
}

func TestHitChargesShooter(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	shooter := w.AddPlayer("s", "S", TeamBlue, 0, false) // ChargeRate 20
	victim := w.AddPlayer("v", "V", TeamRed, 0, false)

	pr := &Projectile{OwnerID: shooter.ID, Team: shooter.Team, Damage: 100}
	for i := 0; i < 7; i++ {
		w.hitPlayer(pr, victim)
	}
	if shooter.Charge != ChargeMax {
		t.Errorf("charge should cap at %d, got %d", ChargeMax, shooter.Charge)
	}
}

func TestKillEmitsEvent(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	shooter := w.AddPlayer("s", "S", TeamBlue, 0, false)
	victim := w.AddPlayer("v", "V", TeamRed, 0, false)

	w.killPlayer(victim, shooter.ID)
	events := w.DrainEvents()
	if len(events) != 1 || events[0].Kind != EventKill {
		t.Fatal("kill should emit exactly one kill event")
	}
	if events[0].KillerID != shooter.ID || events[0].VictimID != victim.ID {
		t.Error("kill event should name killer and victim")
	}
}

func TestKillDropsGemsCapped(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	victim := w.AddPlayer("v", "V", TeamRed, 0, false)
	victim.X, victim.Y = 480, 320
	victim.Gems = 8

	w.killPlayer(victim, "")
	if victim.Gems != 0 {
		t.Errorf("victim should lose all gems, kept %d", victim.Gems)
	}
	if len(w.Pickups) != MaxGemDrop {
		t.Errorf("expected %d dropped gems, got %d", MaxGemDrop, len(w.Pickups))
	}
	for _, pk := range w.Pickups {
		if pk.X < 0 || pk.X > w.Width || pk.Y < 0 || pk.Y > w.Height {
			t.Errorf("dropped gem outside arena: (%f,%f)", pk.X, pk.Y)
		}
	}
}

func TestKillByVanishedShooterStillCounts(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	victim := w.AddPlayer("v", "V", TeamRed, 0, false)

	// Owner already disconnected: no credit, no crash
	w.killPlayer(victim, "gone")
	if victim.RespawnT != RespawnTicks {
		t.Error("kill should proceed without a resolvable killer")
	}
}

func TestKillReleasesBall(t *testing.T) {
	w := newTestWorld(t, ModeBrawlBall)
	carrier := w.AddPlayer("c", "C", TeamBlue, 0, false)
	w.Ball.CarrierID = carrier.ID

	w.killPlayer(carrier, "")
	if w.Ball.CarrierID != "" {
		t.Error("ball should drop when the carrier dies")
	}
	if w.Ball.Cooldown != BallPickupCooldown {
		t.Error("dropped ball should start its pickup cooldown")
	}
}

func TestCollectPickups(t *testing.T) {
	w := newTestWorld(t, ModeGemGrab)
	p := w.AddPlayer("p1", "A", TeamBlue, 0, false)
	p.X, p.Y = 480, 320
	w.Pickups = append(w.Pickups, NewPickup(485, 320), NewPickup(800, 100))

	w.collectPickups(p)
	if p.Gems != 1 {
		t.Errorf("expected 1 collected gem, got %d", p.Gems)
	}
	if len(w.Pickups) != 1 {
		t.Errorf("expected 1 gem left on the ground, got %d", len(w.Pickups))
	}
}
