package main

import "math"

// World is the single authoritative mutable state for one match. It is owned
// exclusively by the tick driver: one Step call advances everything by one
// fixed timestep, strictly sequentially. Presentation reads snapshots between
// Steps, never during them.
type World struct {
	Config ModeConfig
	Mode   GameMode
	Width  float64
	Height float64

	Tick        uint64
	Players     []*Player
	Projectiles []*Projectile
	Pickups     []*Pickup
	Obstacles   []Obstacle
	Ball        *Ball

	SpawnTimer   int
	TeamScore    [2]int
	WinCountdown int // gem mode: ticks until a threshold win lands, 0 = idle
	LeadingTeam  int
	FreezeTicks  int // ball mode: post-goal freeze, gameplay halts while > 0
	TimeLeft     int // ball mode: remaining match clock in ticks
	HumanTeam    int
	Result       MatchResult

	// Events collects notable happenings during a Step for the driver to
	// drain afterward (kill feed, goal banners). Never read mid-tick.
	Events []WorldEvent

	rng  *Rand
	grid *SpatialGrid
}

// EventKind tags a WorldEvent
type EventKind int

const (
	EventKill EventKind = iota
	EventGoal
)

// WorldEvent is one notable happening within a tick
type WorldEvent struct {
	Kind     EventKind
	KillerID string
	VictimID string
	Team     int // scoring team, goals only
}

// DrainEvents returns and clears the events accumulated since the last drain
func (w *World) DrainEvents() []WorldEvent {
	ev := w.Events
	w.Events = nil
	return ev
}

// NewWorld creates an empty world for the given mode. Fails fast on an
// unknown mode — the only initialization-time contract violation.
func NewWorld(mode GameMode, seed uint64) (*World, error) {
	cfg, err := ConfigForMode(mode)
	if err != nil {
		return nil, err
	}
	w := &World{
		Config:    cfg,
		Mode:      mode,
		Width:     cfg.Width,
		Height:    cfg.Height,
		Obstacles: cfg.Layout(),
		rng:       NewRand(seed),
		grid:      NewSpatialGrid(cfg.Width, cfg.Height),
	}
	if mode == ModeBrawlBall {
		w.Ball = NewBall(cfg.Width/2, cfg.Height/2)
		w.TimeLeft = BrawlTimeLimit
	}
	return w, nil
}

// AddPlayer spawns a new combatant at its team spawn point
func (w *World) AddPlayer(id, name string, team, charID int, isBot bool) *Player {
	x, y := w.spawnPosition(team)
	p := NewPlayer(id, name, team, charID, isBot, x, y)
	w.Players = append(w.Players, p)
	return p
}

// PlayerByID resolves an entity reference; nil means "no such entity" and
// the caller skips the dependent action for this tick
func (w *World) PlayerByID(id string) *Player {
	for _, p := range w.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// RemovePlayer drops a combatant from the match (human disconnect)
func (w *World) RemovePlayer(id string) {
	for i, p := range w.Players {
		if p.ID == id {
			w.Players = append(w.Players[:i], w.Players[i+1:]...)
			return
		}
	}
}

// Step advances the world one tick: mode bookkeeping, then per-player
// movement/AI/combat, then projectile resolution, then scoring and the
// terminal check. The order is fixed; every subsystem sees the same phase
// of the tick every time.
func (w *World) Step() {
	if w.Result != ResultOngoing {
		return
	}
	w.Tick++

	// Post-goal freeze: only the freeze counter advances
	if w.FreezeTicks > 0 {
		w.FreezeTicks--
		if w.FreezeTicks == 0 {
			w.resetRound()
		}
		return
	}

	if w.Mode == ModeGemGrab {
		w.stepGemSpawner()
	}

	w.rebuildGrid()

	for _, p := range w.Players {
		if p.RespawnT > 0 {
			w.tickRespawn(p)
			continue
		}
		if p.IsBot {
			BotThink(w, p)
		}
		w.stepMovement(p)
		if w.Mode == ModeGemGrab {
			w.collectPickups(p)
		}
		w.stepReload(p)
		if p.SuperQueued {
			p.SuperQueued = false
			TryAbility(w, p)
		}
		if p.FireQueued {
			p.FireQueued = false
			TryFire(w, p)
		}
		w.stepDash(p)
	}

	w.stepProjectiles()

	if w.Mode == ModeBrawlBall {
		w.stepBall()
		w.stepBallClock()
	} else {
		w.stepGemScoring()
	}
}

// rebuildGrid refreshes the broad-phase grid with living players and gems
func (w *World) rebuildGrid() {
	w.grid.Clear()
	for i, p := range w.Players {
		if p.RespawnT > 0 {
			continue
		}
		w.grid.Insert(p.X, p.Y, EntityRef{Kind: 'p', Idx: i})
	}
	for i, pk := range w.Pickups {
		w.grid.Insert(pk.X, pk.Y, EntityRef{Kind: 'k', Idx: i})
	}
}

// blockedAt reports whether a circle at the candidate position overlaps any
// wall obstacle
func (w *World) blockedAt(x, y, radius float64) bool {
	for _, o := range w.Obstacles {
		if !o.Blocks() {
			continue
		}
		if CircleIntersectsRect(x, y, radius, o.X, o.Y, o.W, o.H) {
			return true
		}
	}
	return false
}

// stepMovement applies the combatant's movement intent. Each axis is tested
// independently against the walls at its candidate position, which is what
// produces wall sliding: a diagonal push into a wall keeps the unobstructed
// component. Dashing combatants skip this entirely (see stepDash).
func (w *World) stepMovement(p *Player) {
	if p.DashTicks > 0 || !p.Moving {
		return
	}
	def := GetCharacterDef(p.CharID)
	speed := def.MoveSpeed
	if w.Ball != nil && w.Ball.CarrierID == p.ID {
		speed *= BallCarrySlowdown
	}
	dx := p.MoveX * speed
	dy := p.MoveY * speed
	if dx != 0 && !w.blockedAt(p.X+dx, p.Y, PlayerRadius) {
		p.X += dx
	}
	if dy != 0 && !w.blockedAt(p.X, p.Y+dy, PlayerRadius) {
		p.Y += dy
	}
	p.X = Clamp(p.X, 0, w.Width)
	p.Y = Clamp(p.Y, 0, w.Height)
}

// stepDash advances an active dash: a straight translation that ignores the
// per-axis split. Wall contact reverts the translation and kills the dash
// (no sliding). Opposing combatants overlapping the dasher take graze damage
// every contact tick, bypassing the fire/reload system.
func (w *World) stepDash(p *Player) {
	if p.DashTicks <= 0 {
		return
	}
	p.DashTicks--
	nx := Clamp(p.X+p.DashVX, 0, w.Width)
	ny := Clamp(p.Y+p.DashVY, 0, w.Height)
	if w.blockedAt(nx, ny, PlayerRadius) {
		p.DashTicks = 0
		return
	}
	p.X = nx
	p.Y = ny

	for _, q := range w.Players {
		if q.Team == p.Team || q.RespawnT > 0 {
			continue
		}
		if CheckCollision(p.X, p.Y, PlayerRadius, q.X, q.Y, PlayerRadius) {
			q.HP -= DashGrazeDamage
			if q.HP <= 0 {
				w.killPlayer(q, p.ID)
			}
		}
	}
}

// collectPickups picks up any gem overlapping a living combatant
func (w *World) collectPickups(p *Player) {
	kept := w.Pickups[:0]
	for _, pk := range w.Pickups {
		if CheckCollision(p.X, p.Y, PlayerRadius, pk.X, pk.Y, pk.Radius) {
			p.Gems++
			continue
		}
		kept = append(kept, pk)
	}
	w.Pickups = kept
}

// stepReload accumulates fractional reload progress. Partial progress
// persists between ticks but firing resets it, so a shot always costs a
// full reload cycle for the next round.
func (w *World) stepReload(p *Player) {
	if p.Ammo >= p.MaxAmmo {
		return
	}
	p.Reload++
	if p.Reload >= GetCharacterDef(p.CharID).ReloadTicks {
		p.Ammo++
		p.Reload = 0
	}
}

// tickRespawn counts a dead combatant down and revives it at the team spawn
// with a small randomized offset, full health and ammo
func (w *World) tickRespawn(p *Player) {
	p.RespawnT--
	if p.RespawnT > 0 {
		return
	}
	def := GetCharacterDef(p.CharID)
	p.X, p.Y = w.spawnPosition(p.Team)
	p.HP = def.MaxHP
	p.Ammo = p.MaxAmmo
	p.Reload = 0
	p.DashTicks = 0
	p.RespawnT = 0
}

func (w *World) spawnPosition(team int) (float64, float64) {
	bx, by := w.Config.SpawnPoint(team)
	x := Clamp(bx+w.rng.Range(-SpawnJitter, SpawnJitter), PlayerRadius, w.Width-PlayerRadius)
	y := Clamp(by+w.rng.Range(-SpawnJitter, SpawnJitter), PlayerRadius, w.Height-PlayerRadius)
	return x, y
}

// stepBall advances ball physics: carried balls snap in front of the
// carrier, loose balls decay and bounce, and the first eligible overlap
// captures once the pickup cooldown clears
func (w *World) stepBall() {
	b := w.Ball

	if b.CarrierID != "" {
		c := w.PlayerByID(b.CarrierID)
		if c == nil || c.RespawnT > 0 {
			// Carrier no longer exists: the ball drops, never a crash
			b.Drop()
		} else {
			b.X = c.X + math.Cos(c.Aim)*BallCarryOffset
			b.Y = c.Y + math.Sin(c.Aim)*BallCarryOffset
			b.VX = 0
			b.VY = 0
		}
	}

	if b.CarrierID == "" {
		// Per-axis wall bounce mirrors the movement resolution shape
		if w.blockedAt(b.X+b.VX, b.Y, b.Radius) {
			b.VX = -b.VX
		} else {
			b.X += b.VX
		}
		if w.blockedAt(b.X, b.Y+b.VY, b.Radius) {
			b.VY = -b.VY
		} else {
			b.Y += b.VY
		}
		if b.X < b.Radius {
			b.X = b.Radius
			b.VX = -b.VX
		} else if b.X > w.Width-b.Radius {
			b.X = w.Width - b.Radius
			b.VX = -b.VX
		}
		if b.Y < b.Radius {
			b.Y = b.Radius
			b.VY = -b.VY
		} else if b.Y > w.Height-b.Radius {
			b.Y = w.Height - b.Radius
			b.VY = -b.VY
		}
		b.VX *= BallFriction
		b.VY *= BallFriction

		if b.Cooldown > 0 {
			b.Cooldown--
		} else {
			for _, p := range w.Players {
				if p.RespawnT > 0 {
					continue
				}
				if CheckCollision(p.X, p.Y, PlayerRadius, b.X, b.Y, b.Radius) {
					b.CarrierID = p.ID
					b.VX = 0
					b.VY = 0
					break
				}
			}
		}
	}

	// Goal check: the ball entering a zone scores for the team that does
	// not defend it, then the world freezes for the celebration
	for _, o := range w.Obstacles {
		if o.Type != ObstacleGoal {
			continue
		}
		if CircleIntersectsRect(b.X, b.Y, b.Radius, o.X, o.Y, o.W, o.H) {
			w.TeamScore[1-o.Team]++
			w.FreezeTicks = GoalFreezeTicks
			w.Events = append(w.Events, WorldEvent{Kind: EventGoal, Team: 1 - o.Team})
			b.Drop()
			return
		}
	}
}

// resetRound runs after the post-goal freeze: every combatant back to its
// spawn at full strength, ball back to center
func (w *World) resetRound() {
	for _, p := range w.Players {
		def := GetCharacterDef(p.CharID)
		p.X, p.Y = w.spawnPosition(p.Team)
		p.HP = def.MaxHP
		p.Ammo = p.MaxAmmo
		p.Reload = 0
		p.RespawnT = 0
		p.DashTicks = 0
		p.FireQueued = false
		p.SuperQueued = false
	}
	w.Ball = NewBall(w.Width/2, w.Height/2)
}

// Snapshot produces the read-only state consumed by presentation after the
// tick completes
func (w *World) Snapshot() GameState {
	gs := GameState{
		Tick:    w.Tick,
		Mode:    int(w.Mode),
		Scores:  w.TeamScore,
		Result:  int(w.Result),
		Players: make([]PlayerState, 0, len(w.Players)),
	}
	for _, p := range w.Players {
		gs.Players = append(gs.Players, p.ToState())
	}
	for _, pr := range w.Projectiles {
		gs.Projectiles = append(gs.Projectiles, pr.ToState())
	}
	for _, pk := range w.Pickups {
		gs.Pickups = append(gs.Pickups, pk.ToState())
	}
	for _, o := range w.Obstacles {
		gs.Obstacles = append(gs.Obstacles, o.ToState())
	}
	if w.Ball != nil {
		gs.Ball = w.Ball.ToState()
	}
	if w.Mode == ModeBrawlBall {
		t := w.TimeLeft
		gs.TimeLeft = &t
	} else if w.WinCountdown > 0 {
		t := w.WinCountdown
		gs.TimeLeft = &t
	}
	return gs
}
