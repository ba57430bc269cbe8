package main

import "math"

const (
	BallRadius         = 12.0
	BallFriction       = 0.96 // free-flight velocity decay per tick
	BallThrowSpeed     = 14.0
	AbilityThrowMul    = 1.5  // super-trigger throws are faster
	BallPickupCooldown = 20   // ticks before the ball can be possessed again
	BallCarryOffset    = 28.0 // carried ball snaps this far in front of the carrier
)

// Ball is the single match ball in the ball-sport mode. While CarrierID is
// set it has no physics of its own; once loose it decays and bounces until
// the pickup cooldown lets someone capture it.
type Ball struct {
	X, Y      float64
	VX, VY    float64
	Radius    float64
	CarrierID string
	Cooldown  int
}

// NewBall places the ball at arena center
func NewBall(x, y float64) *Ball {
	return &Ball{X: x, Y: y, Radius: BallRadius}
}

// Throw releases the ball from the carrier along their aim at the given speed
func (b *Ball) Throw(thrower *Player, speed float64) {
	b.CarrierID = ""
	b.Cooldown = BallPickupCooldown
	b.X = thrower.X + math.Cos(thrower.Aim)*BallCarryOffset
	b.Y = thrower.Y + math.Sin(thrower.Aim)*BallCarryOffset
	b.VX = math.Cos(thrower.Aim) * speed
	b.VY = math.Sin(thrower.Aim) * speed
}

// Drop releases the ball in place (carrier died or vanished)
func (b *Ball) Drop() {
	b.CarrierID = ""
	b.Cooldown = BallPickupCooldown
	b.VX = 0
	b.VY = 0
}

// ToState converts to protocol state
func (b *Ball) ToState() *BallState {
	return &BallState{
		X:       round1(b.X),
		Y:       round1(b.Y),
		Carrier: b.CarrierID,
	}
}
