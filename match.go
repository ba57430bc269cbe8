package main

import "fmt"

// GameMode defines the rule set for a match
type GameMode int

const (
	ModeGemGrab   GameMode = 0
	ModeBrawlBall GameMode = 1
)

// MatchResult is the terminal signal, relative to the human-aligned team.
// Raised exactly once; once set the world stops advancing.
type MatchResult int

const (
	ResultOngoing MatchResult = iota
	ResultVictory
	ResultDefeat
	ResultDraw
)

const (
	GemWinThreshold = 10  // gems a team must hold to start the countdown
	GemWinCountdown = 900 // ticks the lead must survive (15s)

	BallWinScore    = 2    // goals for an instant win
	BrawlTimeLimit  = 7200 // ticks of play time (2min)
	GoalFreezeTicks = 120  // celebration freeze after a goal
)

// ModeConfig holds settings fixed at match start
type ModeConfig struct {
	Mode     GameMode
	Width    float64
	Height   float64
	TeamSize int
}

// ConfigForMode returns the config for the given mode. An unknown mode is a
// contract violation and fails before a match starts.
func ConfigForMode(mode GameMode) (ModeConfig, error) {
	switch mode {
	case ModeGemGrab:
		return ModeConfig{Mode: ModeGemGrab, Width: 960, Height: 640, TeamSize: 3}, nil
	case ModeBrawlBall:
		return ModeConfig{Mode: ModeBrawlBall, Width: 960, Height: 640, TeamSize: 3}, nil
	default:
		return ModeConfig{}, fmt.Errorf("unknown game mode %d", mode)
	}
}

// Layout returns the hand-authored obstacle set for the mode
func (c ModeConfig) Layout() []Obstacle {
	if c.Mode == ModeBrawlBall {
		return brawlBallLayout(c.Width, c.Height)
	}
	return gemGrabLayout()
}

// SpawnPoint returns the base spawn position for a team. Actual spawns add
// a small randomized offset so respawners don't stack.
func (c ModeConfig) SpawnPoint(team int) (float64, float64) {
	if team == TeamRed {
		return c.Width - 120, c.Height / 2
	}
	return 120, c.Height / 2
}

// stepGemSpawner runs the timed center mine: one gem at the arena center at
// a fixed interval while the ground total is under the cap
func (w *World) stepGemSpawner() {
	w.SpawnTimer++
	if w.SpawnTimer < GemSpawnEvery {
		return
	}
	w.SpawnTimer = 0
	if len(w.Pickups) >= MaxMinePickups {
		return
	}
	jx := w.rng.Range(-GemRadius, GemRadius)
	jy := w.rng.Range(-GemRadius, GemRadius)
	w.Pickups = append(w.Pickups, NewPickup(w.Width/2+jx, w.Height/2+jy))
}

// stepGemScoring recomputes team scores as the sum of carried gems (deaths
// scatter gems, so scores can fall) and drives the win countdown: reaching
// the threshold starts it, dropping below cancels it, surviving it ends the
// match in the leader's favor.
func (w *World) stepGemScoring() {
	w.TeamScore[TeamBlue] = 0
	w.TeamScore[TeamRed] = 0
	for _, p := range w.Players {
		w.TeamScore[p.Team] += p.Gems
	}

	if w.WinCountdown > 0 {
		if w.TeamScore[w.LeadingTeam] < GemWinThreshold {
			w.WinCountdown = 0
		} else {
			w.WinCountdown--
			if w.WinCountdown == 0 {
				w.finish(w.LeadingTeam)
			}
			return
		}
	}

	for team := TeamBlue; team <= TeamRed; team++ {
		if w.TeamScore[team] >= GemWinThreshold && w.TeamScore[team] >= w.TeamScore[1-team] {
			w.LeadingTeam = team
			w.WinCountdown = GemWinCountdown
			return
		}
	}
}

// stepBallClock runs the ball-sport match clock and the goal threshold
func (w *World) stepBallClock() {
	if w.TeamScore[TeamBlue] >= BallWinScore {
		w.finish(TeamBlue)
		return
	}
	if w.TeamScore[TeamRed] >= BallWinScore {
		w.finish(TeamRed)
		return
	}
	if w.TimeLeft > 0 {
		w.TimeLeft--
	}
	if w.TimeLeft == 0 {
		switch {
		case w.TeamScore[TeamBlue] == w.TeamScore[TeamRed]:
			w.Result = ResultDraw
		case w.TeamScore[TeamBlue] > w.TeamScore[TeamRed]:
			w.finish(TeamBlue)
		default:
			w.finish(TeamRed)
		}
	}
}

// finish records the terminal result relative to the human-aligned team
func (w *World) finish(winner int) {
	if w.Result != ResultOngoing {
		return
	}
	if winner == w.HumanTeam {
		w.Result = ResultVictory
	} else {
		w.Result = ResultDefeat
	}
}
