package main

import "math"

// Super tuning. Charge comes only from landed projectiles (see hitPlayer),
// capped at ChargeMax, and never decays.
const (
	DashDuration    = 12  // ticks
	DashSpeed       = 9.0 // units per tick
	DashGrazeDamage = 180 // per contact tick, not gated by fire/reload

	BlinkDistance = 160.0

	BombDamage = 2000
	BombSpeed  = 6.0
	BombRadius = 24.0
	BombRange  = 600.0

	RapidFireAmmo = 10 // new ammo and max ammo, permanent for the match

	WallSize          = 60.0
	WallPlaceDistance = 100.0

	HealAmount = 2000
)

// TryAbility attempts to activate p's super. Requires full charge and always
// resets it to zero. A ball carrier throws the ball at elevated speed
// instead of performing the character ability. Dispatch is a closed switch
// on the archetype's fixed ability kind.
func TryAbility(w *World, p *Player) bool {
	if p.RespawnT > 0 || p.DashTicks > 0 || p.Charge < ChargeMax {
		return false
	}
	p.Charge = 0

	if w.Ball != nil && w.Ball.CarrierID == p.ID {
		w.Ball.Throw(p, BallThrowSpeed*AbilityThrowMul)
		return true
	}

	def := GetCharacterDef(p.CharID)
	switch def.Ability {
	case AbilityDash:
		p.DashTicks = DashDuration
		p.DashVX = math.Cos(p.Aim) * DashSpeed
		p.DashVY = math.Sin(p.Aim) * DashSpeed

	case AbilityTeleport:
		// No wall check on the destination; only the arena bounds hold.
		p.X = Clamp(p.X+math.Cos(p.Aim)*BlinkDistance, 0, w.Width)
		p.Y = Clamp(p.Y+math.Sin(p.Aim)*BlinkDistance, 0, w.Height)

	case AbilityBomb:
		w.Projectiles = append(w.Projectiles, newBomb(p))

	case AbilityRapidFire:
		p.MaxAmmo = RapidFireAmmo
		p.Ammo = RapidFireAmmo
		p.Reload = 0

	case AbilityWall:
		cx := p.X + math.Cos(p.Aim)*WallPlaceDistance
		cy := p.Y + math.Sin(p.Aim)*WallPlaceDistance
		w.Obstacles = append(w.Obstacles, Obstacle{
			X:    Clamp(cx-WallSize/2, 0, w.Width-WallSize),
			Y:    Clamp(cy-WallSize/2, 0, w.Height-WallSize),
			W:    WallSize,
			H:    WallSize,
			Type: ObstacleWall,
		})

	case AbilityHeal:
		p.HP += HealAmount
		if p.HP > def.MaxHP {
			p.HP = def.MaxHP
		}

	case AbilityStealth:
		// Purely cosmetic: presentation reads the charge drop and hides
		// the sprite, the simulation changes nothing else.
	}
	return true
}

// newBomb builds the thrown-explosive super round: slow, huge, long budget
func newBomb(owner *Player) *Projectile {
	return &Projectile{
		ID:          GenerateID(3),
		OwnerID:     owner.ID,
		Team:        owner.Team,
		X:           owner.X + math.Cos(owner.Aim)*FireOffset,
		Y:           owner.Y + math.Sin(owner.Aim)*FireOffset,
		VX:          math.Cos(owner.Aim) * BombSpeed,
		VY:          math.Sin(owner.Aim) * BombSpeed,
		Speed:       BombSpeed,
		Radius:      BombRadius,
		Damage:      BombDamage,
		Range:       BombRange,
		Color:       "#ff3300",
		FromAbility: true,
	}
}
