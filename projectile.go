package main

import "math"

// FireOffset keeps projectiles from spawning inside the shooter's own circle
const FireOffset = 30.0

// Projectile travels in a straight line and carries a range budget measured
// in distance, not time: Range is decremented by Speed each tick, so faster
// rounds expire in fewer ticks over the same budget.
type Projectile struct {
	ID      string
	OwnerID string
	Team    int // shooters never hit their own team

	X, Y   float64
	VX, VY float64
	Speed  float64
	Radius float64
	Damage int
	Range  float64 // remaining travel distance
	Color  string

	// FromAbility marks outsized super ordnance (thrown explosive)
	FromAbility bool
}

// NewProjectile spawns a round from the shooter at the given (already
// spread-perturbed) angle
func NewProjectile(owner *Player, angle float64, def CharacterDef) *Projectile {
	return &Projectile{
		ID:      GenerateID(3),
		OwnerID: owner.ID,
		Team:    owner.Team,
		X:       owner.X + math.Cos(angle)*FireOffset,
		Y:       owner.Y + math.Sin(angle)*FireOffset,
		VX:      math.Cos(angle) * def.ProjSpeed,
		VY:      math.Sin(angle) * def.ProjSpeed,
		Speed:   def.ProjSpeed,
		Radius:  def.ProjRadius,
		Damage:  def.Damage,
		Range:   def.Range,
		Color:   def.Color,
	}
}

// ToState converts to protocol state
func (pr *Projectile) ToState() ProjectileState {
	return ProjectileState{
		ID:    pr.ID,
		Owner: pr.OwnerID,
		Team:  pr.Team,
		X:     round1(pr.X),
		Y:     round1(pr.Y),
		R:     pr.Radius,
		Color: pr.Color,
		Super: pr.FromAbility,
	}
}
