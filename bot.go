package main

import "math"

const (
	BotFireChance     = 0.08 // per-tick fire probability with a target in range
	BotAbilityChance  = 0.03 // per-tick super probability when charged
	BotAbilityRange   = 150.0
	BotGoalThrowRange = 140.0
	BotLowHPFraction  = 0.3
	BotGemsWanted     = 3
	BotArriveDist     = 6.0
)

// BotNames is the pool backfill bots draw from
var BotNames = []string{
	"Rusty", "Socket", "Piper", "Gadget", "Bolt", "Tinker",
	"Widget", "Sprocket", "Fuse", "Dynamo", "Ratchet", "Circuit",
}

// BotThink runs one decision tick for a bot: pick the nearest enemy as
// target, pick a destination from the mode's priority list, steer straight
// at it (no pathfinding — walls block bots the same as everyone), and fire
// or pop the super probabilistically.
func BotThink(w *World, p *Player) {
	target := w.nearestEnemy(p)
	if target != nil {
		p.Aim = math.Atan2(target.Y-p.Y, target.X-p.X)
	}

	dx, dy, hasDest := w.botDestination(p, target)
	if hasDest {
		dist := Distance(p.X, p.Y, dx, dy)
		if dist > BotArriveDist {
			p.MoveX = (dx - p.X) / dist
			p.MoveY = (dy - p.Y) / dist
			p.Moving = true
			if target == nil {
				p.Aim = math.Atan2(dy-p.Y, dx-p.X)
			}
		} else {
			p.Moving = false
		}
	} else {
		p.Moving = false
	}

	def := GetCharacterDef(p.CharID)

	carrying := w.Ball != nil && w.Ball.CarrierID == p.ID
	if carrying {
		// Close enough: shoot the ball at the goal instead of dribbling in
		if gx, gy, ok := w.enemyGoalCenter(p.Team); ok {
			if Distance(p.X, p.Y, gx, gy) <= BotGoalThrowRange && p.Ammo > 0 {
				p.Aim = math.Atan2(gy-p.Y, gx-p.X)
				p.FireQueued = true
				return
			}
		}
		return
	}

	if target != nil {
		dist := Distance(p.X, p.Y, target.X, target.Y)
		if p.Ammo > 0 && dist <= def.Range && w.rng.Chance(BotFireChance) {
			p.FireQueued = true
		}
		if p.Charge >= ChargeMax && dist <= BotAbilityRange && w.rng.Chance(BotAbilityChance) {
			p.SuperQueued = true
		}
	}
}

// nearestEnemy returns the closest opposing, non-respawning combatant.
// Ties go to the first one encountered in iteration order.
func (w *World) nearestEnemy(p *Player) *Player {
	var best *Player
	bestD := math.MaxFloat64
	for _, q := range w.Players {
		if q.Team == p.Team || q.RespawnT > 0 {
			continue
		}
		d := DistanceSq(p.X, p.Y, q.X, q.Y)
		if d < bestD {
			bestD = d
			best = q
		}
	}
	return best
}

// botDestination picks a movement target by the mode's priority order
func (w *World) botDestination(p *Player, target *Player) (float64, float64, bool) {
	if w.Mode == ModeBrawlBall {
		b := w.Ball
		if b.CarrierID == p.ID {
			if gx, gy, ok := w.enemyGoalCenter(p.Team); ok {
				return gx, gy, true
			}
			return b.X, b.Y, true
		}
		if b.CarrierID == "" {
			return b.X, b.Y, true
		}
		if c := w.PlayerByID(b.CarrierID); c != nil {
			return c.X, c.Y, true
		}
		return b.X, b.Y, true
	}

	// Gem grab: collect until satisfied, then brawl or back off
	if p.Gems < BotGemsWanted && len(w.Pickups) > 0 {
		pk := w.Pickups[0]
		return pk.X, pk.Y, true
	}
	if target != nil {
		def := GetCharacterDef(p.CharID)
		if float64(p.HP) > float64(def.MaxHP)*BotLowHPFraction {
			return target.X, target.Y, true
		}
		rx, ry := w.Config.SpawnPoint(p.Team)
		return rx, ry, true
	}
	return 0, 0, false
}

// enemyGoalCenter returns the center of the goal the enemy team defends
func (w *World) enemyGoalCenter(team int) (float64, float64, bool) {
	for _, o := range w.Obstacles {
		if o.Type == ObstacleGoal && o.Team != team {
			return o.X + o.W/2, o.Y + o.H/2, true
		}
	}
	return 0, 0, false
}
