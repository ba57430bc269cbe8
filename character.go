package main

// AbilityKind identifies a character's super. Exactly one per character,
// fixed at roster definition — never selectable per use.
type AbilityKind int

const (
	AbilityDash AbilityKind = iota
	AbilityTeleport
	AbilityBomb
	AbilityRapidFire
	AbilityWall
	AbilityHeal
	AbilityStealth
)

// CharacterDef holds the stats for a character archetype.
// Speeds are units per tick, times are ticks.
type CharacterDef struct {
	Name        string
	MaxHP       int
	MoveSpeed   float64
	Damage      int     // per projectile, flat, no falloff
	ReloadTicks int     // ticks of progress to regain one ammo
	Range       float64 // projectile travel budget in units
	ProjSpeed   float64
	ProjRadius  float64
	ProjCount   int     // projectiles per shot
	Spread      float64 // total spread arc in radians
	ChargeRate  int     // super charge gained per projectile hit
	Ability     AbilityKind
	Color       string // projectile tint, echoed in snapshots
}

var Characters = []CharacterDef{
	// Dart: balanced skirmisher, dash super
	{
		Name: "Dart", MaxHP: 3600, MoveSpeed: 3.0,
		Damage: 900, ReloadTicks: 40, Range: 350,
		ProjSpeed: 18, ProjRadius: 6, ProjCount: 1, Spread: 0,
		ChargeRate: 20, Ability: AbilityDash, Color: "#ff5544",
	},
	// Rook: tanky shotgunner, drops cover
	{
		Name: "Rook", MaxHP: 5400, MoveSpeed: 2.4,
		Damage: 480, ReloadTicks: 55, Range: 220,
		ProjSpeed: 14, ProjRadius: 5, ProjCount: 5, Spread: 0.5,
		ChargeRate: 8, Ability: AbilityWall, Color: "#c2a878",
	},
	// Wisp: fragile long-range poke, blinks out of trouble
	{
		Name: "Wisp", MaxHP: 2800, MoveSpeed: 3.2,
		Damage: 700, ReloadTicks: 36, Range: 400,
		ProjSpeed: 20, ProjRadius: 5, ProjCount: 1, Spread: 0,
		ChargeRate: 16, Ability: AbilityTeleport, Color: "#66ddff",
	},
	// Boomer: slow lobber, huge thrown explosive
	{
		Name: "Boomer", MaxHP: 4200, MoveSpeed: 2.5,
		Damage: 1100, ReloadTicks: 70, Range: 300,
		ProjSpeed: 12, ProjRadius: 9, ProjCount: 1, Spread: 0.12,
		ChargeRate: 25, Ability: AbilityBomb, Color: "#ffaa22",
	},
	// Gunner: pea-shooter whose super upgrades the magazine
	{
		Name: "Gunner", MaxHP: 3800, MoveSpeed: 2.7,
		Damage: 420, ReloadTicks: 24, Range: 380,
		ProjSpeed: 19, ProjRadius: 4, ProjCount: 1, Spread: 0,
		ChargeRate: 10, Ability: AbilityRapidFire, Color: "#ddee44",
	},
	// Medic: mid-range burst, self-heal super
	{
		Name: "Medic", MaxHP: 4000, MoveSpeed: 2.6,
		Damage: 650, ReloadTicks: 60, Range: 260,
		ProjSpeed: 15, ProjRadius: 5, ProjCount: 3, Spread: 0.35,
		ChargeRate: 12, Ability: AbilityHeal, Color: "#55ee99",
	},
	// Shade: fast assassin, vanishes (presentation-only effect)
	{
		Name: "Shade", MaxHP: 3000, MoveSpeed: 3.4,
		Damage: 800, ReloadTicks: 44, Range: 320,
		ProjSpeed: 17, ProjRadius: 5, ProjCount: 1, Spread: 0,
		ChargeRate: 18, Ability: AbilityStealth, Color: "#aa66ee",
	},
	// Anvil: slow bruiser, dash super with heavier frame
	{
		Name: "Anvil", MaxHP: 5800, MoveSpeed: 2.2,
		Damage: 380, ReloadTicks: 30, Range: 240,
		ProjSpeed: 13, ProjRadius: 7, ProjCount: 1, Spread: 0,
		ChargeRate: 7, Ability: AbilityDash, Color: "#8899aa",
	},
}

// GetCharacterDef returns the definition for a character id, falling back to
// the default archetype for out-of-range ids rather than failing the tick
func GetCharacterDef(id int) CharacterDef {
	if id < 0 || id >= len(Characters) {
		return Characters[0]
	}
	return Characters[id]
}
