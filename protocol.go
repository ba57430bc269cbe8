package main

import "encoding/json"

// Client -> Server message types
const (
	MsgJoin     = "join"
	MsgLeave    = "leave"
	MsgInput    = "input"
	MsgCreate   = "create"  // create session
	MsgList     = "list"    // list sessions
	MsgCheck    = "check"   // check if session exists
	MsgControl  = "control" // phone controller attach
	MsgRegister = "register"
	MsgLogin    = "login"
	MsgAuth     = "auth" // resume with token
	MsgProfile  = "profile"
)

// Server -> Client message types
const (
	MsgState     = "state"
	MsgWelcome   = "welcome"
	MsgDeath     = "death"
	MsgKill      = "kill"
	MsgGoal      = "goal"
	MsgResult    = "result"
	MsgSessions  = "sessions"
	MsgJoined    = "joined"
	MsgCreated   = "created"
	MsgError     = "error"
	MsgChecked   = "checked"
	MsgControlOK = "control_ok"
	MsgAuthOK    = "auth_ok"
	MsgProfileOK = "profile_ok"
	MsgUnlocked  = "achievements"
)

// Envelope wraps all outgoing JSON messages with a type field
type Envelope struct {
	T    string      `json:"t"`
	Data interface{} `json:"d,omitempty"`
}

// InEnvelope is used for incoming messages — json.RawMessage avoids double-unmarshal
type InEnvelope struct {
	T string          `json:"t"`
	D json.RawMessage `json:"d,omitempty"`
}

// ClientInput carries one tick of intent for the human combatant. Two
// movement sources may coexist (keyboard and pad); keyboard wins when both
// are active in the same tick. Fire and Super are release-edge triggers.
type ClientInput struct {
	KX      float64 `json:"kx"` // keyboard movement vector, normalized
	KY      float64 `json:"ky"`
	KActive bool    `json:"ka"`
	PX      float64 `json:"px"` // pad movement vector, normalized
	PY      float64 `json:"py"`
	PActive bool    `json:"pa"`
	Aim     float64 `json:"aim"`
	Fire    bool    `json:"fire"`
	Super   bool    `json:"super"`
}

// JoinMsg is sent when a player wants to join a session
type JoinMsg struct {
	Name      string `json:"name"`
	SessionID string `json:"sid"`
	Char      int    `json:"char"`
}

// CreateMsg is sent when a player wants to create a session
type CreateMsg struct {
	Name        string `json:"name"`
	SessionName string `json:"sname"`
	Mode        int    `json:"mode"`
	Char        int    `json:"char"`
}

// PlayerState is broadcast per combatant in every snapshot
type PlayerState struct {
	ID       string  `json:"id" msgpack:"id"`
	Name     string  `json:"n" msgpack:"n"`
	Team     int     `json:"t" msgpack:"t"`
	Bot      bool    `json:"bot,omitempty" msgpack:"bot"`
	Char     int     `json:"c" msgpack:"c"`
	X        float64 `json:"x" msgpack:"x"`
	Y        float64 `json:"y" msgpack:"y"`
	Aim      float64 `json:"r" msgpack:"r"`
	HP       int     `json:"hp" msgpack:"hp"`
	MaxHP    int     `json:"mhp" msgpack:"mhp"`
	Ammo     int     `json:"am" msgpack:"am"`
	MaxAmmo  int     `json:"mam" msgpack:"mam"`
	Charge   int     `json:"ch" msgpack:"ch"`
	Gems     int     `json:"g" msgpack:"g"`
	Kills    int     `json:"k" msgpack:"k"`
	RespawnT int     `json:"rt" msgpack:"rt"`
	Dashing  bool    `json:"dash,omitempty" msgpack:"dash"`
}

// ProjectileState is broadcast per projectile
type ProjectileState struct {
	ID    string  `json:"id" msgpack:"id"`
	Owner string  `json:"o" msgpack:"o"`
	Team  int     `json:"t" msgpack:"t"`
	X     float64 `json:"x" msgpack:"x"`
	Y     float64 `json:"y" msgpack:"y"`
	R     float64 `json:"r" msgpack:"r"`
	Color string  `json:"cl" msgpack:"cl"`
	Super bool    `json:"su,omitempty" msgpack:"su"`
}

// PickupState is broadcast per gem
type PickupState struct {
	ID string  `json:"id" msgpack:"id"`
	X  float64 `json:"x" msgpack:"x"`
	Y  float64 `json:"y" msgpack:"y"`
}

// BallState is broadcast in ball mode
type BallState struct {
	X       float64 `json:"x" msgpack:"x"`
	Y       float64 `json:"y" msgpack:"y"`
	Carrier string  `json:"cr,omitempty" msgpack:"cr"`
}

// ObstacleState describes one rectangle of the layout. Included in every
// snapshot because the temporary-wall super appends walls mid-match.
type ObstacleState struct {
	X    float64 `json:"x" msgpack:"x"`
	Y    float64 `json:"y" msgpack:"y"`
	W    float64 `json:"w" msgpack:"w"`
	H    float64 `json:"h" msgpack:"h"`
	Type int     `json:"ty" msgpack:"ty"`
	Team int     `json:"t" msgpack:"t"`
}

// GameState is the full read-only snapshot broadcast after each tick
type GameState struct {
	Tick        uint64            `json:"tick" msgpack:"tick"`
	Mode        int               `json:"mode" msgpack:"mode"`
	Players     []PlayerState     `json:"p" msgpack:"p"`
	Projectiles []ProjectileState `json:"pr" msgpack:"pr"`
	Pickups     []PickupState     `json:"pk" msgpack:"pk"`
	Obstacles   []ObstacleState   `json:"ob" msgpack:"ob"`
	Ball        *BallState        `json:"b,omitempty" msgpack:"b"`
	Scores      [2]int            `json:"sc" msgpack:"sc"`
	TimeLeft    *int              `json:"tl,omitempty" msgpack:"tl"`
	Result      int               `json:"res" msgpack:"res"`
}

// WelcomeMsg is sent to a player when they join
type WelcomeMsg struct {
	ID   string `json:"id"`
	Team int    `json:"team"`
	Char int    `json:"char"`
	Mode int    `json:"mode"`
}

// DeathMsg notifies a player they died
type DeathMsg struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
}

// KillMsg is broadcast to all players in the session
type KillMsg struct {
	KillerID   string `json:"kid"`
	KillerName string `json:"kn"`
	VictimID   string `json:"vid"`
	VictimName string `json:"vn"`
}

// GoalMsg is broadcast when a goal is scored in ball mode
type GoalMsg struct {
	Team   int    `json:"team"`
	Scores [2]int `json:"sc"`
}

// ResultMsg is broadcast exactly once when the match ends
type ResultMsg struct {
	Result int    `json:"res"`
	Scores [2]int `json:"sc"`
}

// SessionInfo is used in the session list
type SessionInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Mode    int    `json:"mode"`
	Players int    `json:"players"`
}

// ErrorMsg sends an error to the client
type ErrorMsg struct {
	Msg string `json:"msg"`
}

// ControlMsg is sent by a phone controller to attach to a player
type ControlMsg struct {
	SID      string `json:"sid"`
	PlayerID string `json:"pid"`
}

// CheckMsg is sent by a client to check if a session exists
type CheckMsg struct {
	SID string `json:"sid"`
}

// CheckedMsg is the response to a session check
type CheckedMsg struct {
	SID     string `json:"sid"`
	Exists  bool   `json:"exists"`
	Name    string `json:"name,omitempty"`
	Mode    int    `json:"mode,omitempty"`
	Players int    `json:"players,omitempty"`
}

// RegisterMsg creates an account
type RegisterMsg struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginMsg authenticates with credentials
type LoginMsg struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthMsg resumes a session with a token
type AuthMsg struct {
	Token string `json:"token"`
}

// AuthOKMsg confirms authentication
type AuthOKMsg struct {
	PlayerID int64  `json:"pid"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ProfileMsg returns lifetime stats for the authenticated player
type ProfileMsg struct {
	Username     string   `json:"username"`
	Kills        int      `json:"kills"`
	Deaths       int      `json:"deaths"`
	Wins         int      `json:"wins"`
	Losses       int      `json:"losses"`
	Gems         int      `json:"gems"`
	Goals        int      `json:"goals"`
	Level        int      `json:"level"`
	XP           int      `json:"xp"`
	Achievements []string `json:"achievements"`
}
