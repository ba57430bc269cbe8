package main

// ObstacleType distinguishes plain walls from goal zones
type ObstacleType int

const (
	ObstacleWall ObstacleType = 0
	ObstacleGoal ObstacleType = 1
)

// Obstacle is an axis-aligned rectangle. The layout is static for the match
// except that the temporary-wall super appends new walls at runtime.
type Obstacle struct {
	X, Y float64 // top-left corner
	W, H float64
	Type ObstacleType
	Team int // defending team, goals only
}

// Blocks reports whether the obstacle stops movement and projectiles.
// Goal zones are walkable and shoot-through.
func (o Obstacle) Blocks() bool {
	return o.Type == ObstacleWall
}

// gemGrabLayout is the hand-authored wall set for the gem mode arena.
// Roughly point-symmetric around the center mine.
func gemGrabLayout() []Obstacle {
	return []Obstacle{
		{X: 180, Y: 120, W: 40, H: 160, Type: ObstacleWall},
		{X: 740, Y: 360, W: 40, H: 160, Type: ObstacleWall},
		{X: 300, Y: 420, W: 140, H: 40, Type: ObstacleWall},
		{X: 520, Y: 180, W: 140, H: 40, Type: ObstacleWall},
		{X: 440, Y: 70, W: 80, H: 30, Type: ObstacleWall},
		{X: 440, Y: 540, W: 80, H: 30, Type: ObstacleWall},
	}
}

// brawlBallLayout keeps the center lane open and puts a goal mouth on each
// side. The goal a team defends sits behind it; the ball entering it scores
// for the other team.
func brawlBallLayout(width, height float64) []Obstacle {
	return []Obstacle{
		{X: 0, Y: height/2 - 80, W: 30, H: 160, Type: ObstacleGoal, Team: TeamBlue},
		{X: width - 30, Y: height/2 - 80, W: 30, H: 160, Type: ObstacleGoal, Team: TeamRed},
		{X: 150, Y: 100, W: 40, H: 120, Type: ObstacleWall},
		{X: 150, Y: height - 220, W: 40, H: 120, Type: ObstacleWall},
		{X: width - 190, Y: 100, W: 40, H: 120, Type: ObstacleWall},
		{X: width - 190, Y: height - 220, W: 40, H: 120, Type: ObstacleWall},
		{X: width/2 - 20, Y: 150, W: 40, H: 90, Type: ObstacleWall},
		{X: width/2 - 20, Y: height - 240, W: 40, H: 90, Type: ObstacleWall},
	}
}

// ToState converts to protocol state
func (o Obstacle) ToState() ObstacleState {
	return ObstacleState{
		X: o.X, Y: o.Y, W: o.W, H: o.H,
		Type: int(o.Type),
		Team: o.Team,
	}
}
