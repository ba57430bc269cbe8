package main

import (
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

const (
	TickRate       = 60 // physics ticks per second
	BroadcastRate  = 30 // state broadcasts per second
	TickDuration   = time.Second / TickRate
	BroadcastEvery = TickRate / BroadcastRate
)

// Broadcaster interface for sending messages to clients
type Broadcaster interface {
	SendJSON(msg interface{})
	SendBinary(data []byte)
}

// Game drives one match: it owns the World, ticks it at a fixed rate, feeds
// it inputs, and ships snapshots and event messages to connected clients.
// The entire tick runs under the mutex — presentation reads never interleave
// with mutation.
type Game struct {
	mu          sync.RWMutex
	world       *World
	mode        GameMode
	clients     map[string]Broadcaster // playerID -> client
	controllers map[string]Broadcaster // playerID -> attached phone controller
	accounts    map[string]int64       // playerID -> authenticated account id
	running     bool
	finished    bool
	started     time.Time
	stop        chan struct{}
	nextChar    int

	db        *DB
	analytics *Analytics
}

// NewGame creates a game for the given mode. The mode must already be
// validated by the session layer.
func NewGame(mode GameMode, db *DB, analytics *Analytics) (*Game, error) {
	seed := uint64(time.Now().UnixNano())
	world, err := NewWorld(mode, seed)
	if err != nil {
		return nil, err
	}
	return &Game{
		world:       world,
		mode:        mode,
		clients:     make(map[string]Broadcaster),
		controllers: make(map[string]Broadcaster),
		accounts:    make(map[string]int64),
		started:     time.Now(),
		stop:        make(chan struct{}),
		db:          db,
		analytics:   analytics,
	}, nil
}

// Run starts the game loop
func (g *Game) Run() {
	g.mu.Lock()
	g.running = true
	g.mu.Unlock()

	ticker := time.NewTicker(TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			g.update()
		case <-g.stop:
			return
		}
	}
}

// Stop terminates the game loop
func (g *Game) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.running {
		g.running = false
		close(g.stop)
	}
}

// AddPlayer adds a human combatant, balancing teams, and tops up both
// rosters with bots. Returns nil when both rosters are full of humans.
func (g *Game) AddPlayer(name string, charID int) *Player {
	g.mu.Lock()
	defer g.mu.Unlock()

	team := g.smallerTeam()
	if g.humanCount(team) >= g.world.Config.TeamSize {
		return nil
	}
	// A bot yields its slot to the human
	if g.teamCount(team) >= g.world.Config.TeamSize {
		g.removeOneBot(team)
	}
	if charID < 0 || charID >= len(Characters) {
		charID = 0
	}
	p := g.world.AddPlayer(GenerateID(4), name, team, charID, false)
	g.fillBots()
	return p
}

// RemovePlayer removes a human from the game
func (g *Game) RemovePlayer(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.world.RemovePlayer(id)
	delete(g.clients, id)
	delete(g.controllers, id)
	delete(g.accounts, id)
}

// SetClient associates a broadcaster with a player
func (g *Game) SetClient(playerID string, client Broadcaster) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.clients[playerID] = client
}

// AttachController binds a phone controller to a player's input
func (g *Game) AttachController(playerID string, client Broadcaster) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.world.PlayerByID(playerID) == nil {
		return false
	}
	g.controllers[playerID] = client
	return true
}

// RemoveController detaches a phone controller
func (g *Game) RemoveController(playerID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.controllers, playerID)
}

// BindAccount links a combatant to an authenticated account for post-match
// stat persistence
func (g *Game) BindAccount(playerID string, accountID int64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.accounts[playerID] = accountID
}

// HandleInput processes one input frame for a player. Keyboard movement
// takes precedence over pad movement when both are active.
func (g *Game) HandleInput(playerID string, in ClientInput) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.world.PlayerByID(playerID)
	if p == nil || p.IsBot {
		return
	}

	var mx, my float64
	active := false
	switch {
	case in.KActive:
		mx, my, active = in.KX, in.KY, true
	case in.PActive:
		mx, my, active = in.PX, in.PY, true
	}
	if active {
		if l := math.Sqrt(mx*mx + my*my); l > 1 {
			mx /= l
			my /= l
		}
		p.MoveX, p.MoveY = mx, my
	}
	p.Moving = active
	p.Aim = in.Aim
	if in.Fire {
		p.FireQueued = true
	}
	if in.Super {
		p.SuperQueued = true
	}
}

// PlayerCount returns the number of human players
func (g *Game) PlayerCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n := 0
	for _, p := range g.world.Players {
		if !p.IsBot {
			n++
		}
	}
	return n
}

// Mode returns the game mode
func (g *Game) Mode() GameMode {
	return g.mode
}

func (g *Game) humanCount(team int) int {
	n := 0
	for _, p := range g.world.Players {
		if p.Team == team && !p.IsBot {
			n++
		}
	}
	return n
}

func (g *Game) teamCount(team int) int {
	n := 0
	for _, p := range g.world.Players {
		if p.Team == team {
			n++
		}
	}
	return n
}

func (g *Game) smallerTeam() int {
	if g.humanCount(TeamRed) < g.humanCount(TeamBlue) {
		return TeamRed
	}
	return TeamBlue
}

func (g *Game) removeOneBot(team int) {
	for _, p := range g.world.Players {
		if p.Team == team && p.IsBot {
			g.world.RemovePlayer(p.ID)
			return
		}
	}
}

// fillBots tops both teams up to full rosters so a lone human always has
// teammates and opponents
func (g *Game) fillBots() {
	for team := TeamBlue; team <= TeamRed; team++ {
		for g.teamCount(team) < g.world.Config.TeamSize {
			name := BotNames[g.nextChar%len(BotNames)]
			char := g.nextChar % len(Characters)
			g.nextChar++
			g.world.AddPlayer(GenerateID(4), name, team, char, true)
		}
	}
}

// update runs one game tick and fans out state
func (g *Game) update() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.world.Step()

	for _, ev := range g.world.DrainEvents() {
		g.handleEvent(ev)
	}

	if g.world.Result != ResultOngoing && !g.finished {
		g.finished = true
		g.finishMatch()
	}

	if g.world.Tick%BroadcastEvery == 0 {
		g.broadcastState()
	}
}

func (g *Game) handleEvent(ev WorldEvent) {
	switch ev.Kind {
	case EventKill:
		var killerName string
		if k := g.world.PlayerByID(ev.KillerID); k != nil {
			killerName = k.Name
		}
		victim := g.world.PlayerByID(ev.VictimID)
		if victim == nil {
			return
		}
		g.broadcastMsg(Envelope{T: MsgKill, Data: KillMsg{
			KillerID:   ev.KillerID,
			KillerName: killerName,
			VictimID:   victim.ID,
			VictimName: victim.Name,
		}})
		if client, ok := g.clients[victim.ID]; ok {
			client.SendJSON(Envelope{T: MsgDeath, Data: DeathMsg{
				KillerID:   ev.KillerID,
				KillerName: killerName,
			}})
		}
		if g.analytics != nil {
			g.analytics.Track(EvtKill, g.accounts[ev.KillerID], "", "")
		}
	case EventGoal:
		g.broadcastMsg(Envelope{T: MsgGoal, Data: GoalMsg{
			Team:   ev.Team,
			Scores: g.world.TeamScore,
		}})
		if g.analytics != nil {
			g.analytics.Track(EvtGoal, 0, "", "")
		}
	}
}

// finishMatch broadcasts the terminal result and persists stats for
// authenticated humans. Runs exactly once per match.
func (g *Game) finishMatch() {
	g.broadcastMsg(Envelope{T: MsgResult, Data: ResultMsg{
		Result: int(g.world.Result),
		Scores: g.world.TeamScore,
	}})

	if g.db == nil {
		return
	}
	duration := time.Since(g.started).Seconds()
	winner := -1
	switch g.world.Result {
	case ResultVictory:
		winner = g.world.HumanTeam
	case ResultDefeat:
		winner = 1 - g.world.HumanTeam
	}
	matchID, err := g.db.RecordMatch(int(g.mode), duration, winner)
	if err != nil {
		return
	}
	for _, p := range g.world.Players {
		accountID, ok := g.accounts[p.ID]
		if !ok {
			continue
		}
		won := winner == p.Team
		g.db.RecordMatchPlayer(matchID, accountID, p.Team, p.Kills, p.Deaths, p.Gems, won)
		prevLevel := 1
		if stats, err := g.db.GetStats(accountID); err == nil && stats != nil {
			prevLevel = stats.Level
		}
		_, newLevel, err := g.db.BumpStats(accountID, p.Kills, p.Deaths, won, duration, p.Gems, g.goalsFor(p.Team))
		if err == nil && newLevel > prevLevel && g.analytics != nil {
			g.analytics.Track(EvtLevelUp, accountID, "", "")
		}

		unlocked := CheckAchievements(g.db, accountID, p.Kills, p.Deaths, won)
		if len(unlocked) > 0 {
			if client, ok := g.clients[p.ID]; ok {
				client.SendJSON(Envelope{T: MsgUnlocked, Data: unlocked})
			}
		}
	}
	if g.analytics != nil {
		g.analytics.Track(EvtMatchEnd, 0, "", "")
	}
}

func (g *Game) goalsFor(team int) int {
	if g.mode != ModeBrawlBall {
		return 0
	}
	return g.world.TeamScore[team]
}

// broadcastState ships a msgpack snapshot to all clients and controllers
func (g *Game) broadcastState() {
	state := g.world.Snapshot()
	data, err := msgpack.Marshal(state)
	if err != nil {
		return
	}
	for _, client := range g.clients {
		client.SendBinary(data)
	}
	for _, client := range g.controllers {
		client.SendBinary(data)
	}
}

// broadcastMsg sends a JSON message to all clients in the session
func (g *Game) broadcastMsg(msg Envelope) {
	for _, client := range g.clients {
		client.SendJSON(msg)
	}
}

// SnapshotJSON returns the current state as JSON, used by the HTTP debug
// endpoint and tests
func (g *Game) SnapshotJSON() ([]byte, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return json.Marshal(g.world.Snapshot())
}
