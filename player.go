package main

import "math"

const (
	PlayerRadius   = 20.0
	DefaultMaxAmmo = 3
	RespawnTicks   = 180 // 3s at 60 ticks/s
	ChargeMax      = 100
	SpawnJitter    = 40.0 // max offset from the team spawn point

	// Ball carriers move at a fixed fraction of their base speed
	BallCarrySlowdown = 0.85
)

// Team identifiers — every match is exactly two teams
const (
	TeamBlue = 0
	TeamRed  = 1
)

// Player is any combatant, human-controlled or bot. Other entities refer to
// it only by ID; a failed lookup means the combatant is gone and whatever
// depended on it is skipped for the tick.
type Player struct {
	ID     string
	Name   string
	Team   int
	IsBot  bool
	CharID int

	X, Y float64
	Aim  float64 // facing angle in radians

	// Current movement intent, normalized. Written by input handling for
	// humans and by the bot controller every tick for bots.
	MoveX, MoveY float64
	Moving       bool

	HP       int
	Ammo     int
	MaxAmmo  int // raised permanently by the rapid-fire super
	Reload   int // reload progress in ticks, reset to 0 by firing
	RespawnT int // ticks until respawn; 0 = alive
	Gems     int
	Charge   int
	Kills    int
	Deaths   int

	// Transient dash state. While DashTicks > 0 normal movement and firing
	// are suspended and the dash translation below is applied instead.
	DashTicks      int
	DashVX, DashVY float64

	// Edge-triggered intents, consumed once per tick
	FireQueued  bool
	SuperQueued bool
}

// NewPlayer creates a combatant at the given spawn position with full
// health and ammo for its archetype
func NewPlayer(id, name string, team, charID int, isBot bool, x, y float64) *Player {
	def := GetCharacterDef(charID)
	aim := 0.0
	if team == TeamRed {
		aim = math.Pi
	}
	return &Player{
		ID:      id,
		Name:    name,
		Team:    team,
		IsBot:   isBot,
		CharID:  charID,
		X:       x,
		Y:       y,
		Aim:     aim,
		HP:      def.MaxHP,
		Ammo:    DefaultMaxAmmo,
		MaxAmmo: DefaultMaxAmmo,
	}
}

// Alive reports whether the combatant participates in collision and
// targeting this tick
func (p *Player) Alive() bool {
	return p.RespawnT == 0
}

// AddCharge accumulates super charge, clamped at the cap. Charge never decays.
func (p *Player) AddCharge(amount int) {
	p.Charge += amount
	if p.Charge > ChargeMax {
		p.Charge = ChargeMax
	}
}

// ToState converts to protocol state
func (p *Player) ToState() PlayerState {
	def := GetCharacterDef(p.CharID)
	return PlayerState{
		ID:       p.ID,
		Name:     p.Name,
		Team:     p.Team,
		Bot:      p.IsBot,
		Char:     p.CharID,
		X:        round1(p.X),
		Y:        round1(p.Y),
		Aim:      round1(p.Aim),
		HP:       p.HP,
		MaxHP:    def.MaxHP,
		Ammo:     p.Ammo,
		MaxAmmo:  p.MaxAmmo,
		Charge:   p.Charge,
		Gems:     p.Gems,
		Kills:    p.Kills,
		RespawnT: p.RespawnT,
		Dashing:  p.DashTicks > 0,
	}
}

// round1 rounds to one decimal to keep snapshots compact on the wire
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
