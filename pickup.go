package main

const (
	GemRadius      = 12.0
	GemSpawnEvery  = 300 // ticks between mine spawns (5s)
	MaxMinePickups = 10  // spawner stops above this many on the ground
	GemDropJitter  = 50.0
)

// Pickup is a gem on the ground, gem mode only. Created by the center mine
// on a timer and by death drops; collected by any living combatant whose
// circle overlaps it.
type Pickup struct {
	ID     string
	X, Y   float64
	Radius float64
}

// NewPickup creates a gem at the given position
func NewPickup(x, y float64) *Pickup {
	return &Pickup{
		ID:     GenerateID(4),
		X:      x,
		Y:      y,
		Radius: GemRadius,
	}
}

// ToState converts to protocol state
func (pk *Pickup) ToState() PickupState {
	return PickupState{
		ID: pk.ID,
		X:  round1(pk.X),
		Y:  round1(pk.Y),
	}
}
