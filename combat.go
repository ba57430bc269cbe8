package main

const (
	MaxGemDrop = 5 // gems scattered on death; the rest are simply lost
)

// TryFire attempts a normal shot for p. The gate: alive, not mid-dash, ammo
// available. A ball carrier throws the ball instead of shooting, ammo is
// still spent. Returns true if anything left the shooter this tick.
func TryFire(w *World, p *Player) bool {
	if p.RespawnT > 0 || p.DashTicks > 0 || p.Ammo <= 0 {
		return false
	}
	p.Ammo--
	p.Reload = 0

	if w.Ball != nil && w.Ball.CarrierID == p.ID {
		w.Ball.Throw(p, BallThrowSpeed)
		return true
	}

	def := GetCharacterDef(p.CharID)
	for i := 0; i < def.ProjCount; i++ {
		angle := p.Aim + w.rng.Range(-def.Spread/2, def.Spread/2)
		w.Projectiles = append(w.Projectiles, NewProjectile(p, angle, def))
	}
	return true
}

// stepProjectiles advances every projectile and resolves impacts. Removal
// priority within a tick: wall first, then player, then range exhaustion.
func (w *World) stepProjectiles() {
	kept := w.Projectiles[:0]
	for _, pr := range w.Projectiles {
		pr.X += pr.VX
		pr.Y += pr.VY
		if w.projectileHitsWall(pr) {
			continue
		}
		if w.projectileHitsPlayer(pr) {
			continue
		}
		pr.Range -= pr.Speed
		if pr.Range <= 0 {
			continue
		}
		kept = append(kept, pr)
	}
	w.Projectiles = kept
}

// projectileHitsWall checks wall obstacles and the arena border
func (w *World) projectileHitsWall(pr *Projectile) bool {
	if pr.X < -pr.Radius || pr.X > w.Width+pr.Radius ||
		pr.Y < -pr.Radius || pr.Y > w.Height+pr.Radius {
		return true
	}
	return w.blockedAt(pr.X, pr.Y, pr.Radius)
}

// projectileHitsPlayer finds at most one eligible victim: opposing team, not
// respawning, first encountered. Iteration stops at the first match so two
// overlapping targets are never both hit by one round.
func (w *World) projectileHitsPlayer(pr *Projectile) bool {
	refs := w.grid.Query(pr.X, pr.Y, pr.Radius+PlayerRadius)
	for _, ref := range refs {
		if ref.Kind != 'p' || ref.Idx >= len(w.Players) {
			continue
		}
		p := w.Players[ref.Idx]
		if p.Team == pr.Team || p.RespawnT > 0 {
			continue
		}
		if CheckCollision(pr.X, pr.Y, pr.Radius, p.X, p.Y, PlayerRadius) {
			w.hitPlayer(pr, p)
			return true
		}
	}
	return false
}

// hitPlayer applies flat damage, charges the owner's super, and handles death
func (w *World) hitPlayer(pr *Projectile, victim *Player) {
	victim.HP -= pr.Damage
	if owner := w.PlayerByID(pr.OwnerID); owner != nil {
		owner.AddCharge(GetCharacterDef(owner.CharID).ChargeRate)
	}
	if victim.HP <= 0 {
		w.killPlayer(victim, pr.OwnerID)
	}
}

// killPlayer starts the respawn countdown, credits the killer, and handles
// the mode-specific consequences: gem scatter or ball release. A missing
// killer simply earns no credit.
func (w *World) killPlayer(victim *Player, killerID string) {
	victim.HP = 0
	victim.RespawnT = RespawnTicks
	victim.Deaths++
	victim.DashTicks = 0
	victim.FireQueued = false
	victim.SuperQueued = false

	if killer := w.PlayerByID(killerID); killer != nil {
		killer.Kills++
	}
	w.Events = append(w.Events, WorldEvent{Kind: EventKill, KillerID: killerID, VictimID: victim.ID})

	if w.Mode == ModeGemGrab && victim.Gems > 0 {
		drop := victim.Gems
		if drop > MaxGemDrop {
			drop = MaxGemDrop
		}
		for i := 0; i < drop; i++ {
			x := Clamp(victim.X+w.rng.Range(-GemDropJitter, GemDropJitter), GemRadius, w.Width-GemRadius)
			y := Clamp(victim.Y+w.rng.Range(-GemDropJitter, GemDropJitter), GemRadius, w.Height-GemRadius)
			w.Pickups = append(w.Pickups, NewPickup(x, y))
		}
		victim.Gems = 0
	}

	if w.Ball != nil && w.Ball.CarrierID == victim.ID {
		w.Ball.Drop()
	}
}
