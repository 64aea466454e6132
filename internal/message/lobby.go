package message

import (
	"strconv"
	"strings"
)

// Game lobby kinds: joining, leaving, seating, and the game lists.

// GameUnjoinableMarker prefixes a game name in Games and GamesWithOptions
// when the client's version is too old to join that game.
const GameUnjoinableMarker = '\077'

// JoinGame is a client's request to join (or create) a game.
type JoinGame struct {
	Nickname string
	Password string
	Host     string
	Game     string
}

func (m *JoinGame) Type() int           { return MsgJoinGame }
func (m *JoinGame) MinimumVersion() int { return 1000 }
func (m *JoinGame) GameName() string    { return m.Game }

func (m *JoinGame) Command() string {
	return encodeJoin(MsgJoinGame, m.Nickname, m.Password, m.Host, m.Game)
}

func (m *JoinGame) String() string {
	return joinString("SOCJoinGame", m.Nickname, m.Password, m.Host, m.Game, "game")
}

func parseJoinGame(body string) Message {
	nick, pw, host, ga, ok := parseJoin(body)
	if !ok {
		return nil
	}
	return &JoinGame{Nickname: nick, Password: pw, Host: host, Game: ga}
}

// JoinGameAuth tells a client its game join was authorized. For games on a
// non-classic board it also carries the board size and the optional
// added-layout-part VS (visual shift).
type JoinGameAuth struct {
	Game        string
	BoardHeight int
	BoardWidth  int
	LayoutVS    []int // nil unless sent
	HasSize     bool
}

func (m *JoinGameAuth) Type() int           { return MsgJoinGameAuth }
func (m *JoinGameAuth) MinimumVersion() int { return 1000 }
func (m *JoinGameAuth) GameName() string    { return m.Game }

func (m *JoinGameAuth) Command() string {
	b := newCmd(MsgJoinGameAuth).str(m.Game)
	if m.HasSize {
		b.int(m.BoardHeight).int(m.BoardWidth)
		if m.LayoutVS != nil {
			b.str("S").ints(m.LayoutVS)
		}
	}
	return b.String()
}

func (m *JoinGameAuth) String() string {
	var sb strings.Builder
	sb.WriteString("SOCJoinGameAuth:game=")
	sb.WriteString(m.Game)
	if m.HasSize {
		sb.WriteString("|bh=")
		sb.WriteString(strconv.Itoa(m.BoardHeight))
		sb.WriteString("|bw=")
		sb.WriteString(strconv.Itoa(m.BoardWidth))
		if m.LayoutVS != nil {
			sb.WriteString("|vs=[")
			for i, v := range m.LayoutVS {
				if i > 0 {
					sb.WriteString(", ")
				}
				sb.WriteString(strconv.Itoa(v))
			}
			sb.WriteByte(']')
		}
	}
	return sb.String()
}

func parseJoinGameAuth(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	if fs.err != nil {
		return nil
	}
	msg := &JoinGameAuth{Game: ga}
	if fs.hasMore() {
		msg.HasSize = true
		msg.BoardHeight = fs.nextInt()
		msg.BoardWidth = fs.nextInt()
		if fs.hasMore() {
			if fs.next() != "S" {
				return nil
			}
			var vs []int
			for fs.hasMore() {
				vs = append(vs, fs.nextInt())
			}
			if len(vs) == 0 {
				return nil
			}
			msg.LayoutVS = vs
		}
		if fs.err != nil {
			return nil
		}
	}
	return msg
}

// LeaveGame announces that a member has left a game.
type LeaveGame struct {
	Nickname string
	Host     string
	Game     string
}

func (m *LeaveGame) Type() int           { return MsgLeaveGame }
func (m *LeaveGame) MinimumVersion() int { return 1000 }
func (m *LeaveGame) GameName() string    { return m.Game }

func (m *LeaveGame) Command() string {
	return newCmd(MsgLeaveGame).str(m.Nickname).str(m.Host).str(m.Game).String()
}

func (m *LeaveGame) String() string {
	return "SOCLeaveGame:nickname=" + m.Nickname + "|host=" + m.Host +
		"|game=" + m.Game
}

func parseLeaveGame(body string) Message {
	fs := newFieldScanner(body)
	nick := fs.next()
	host := fs.next()
	ga := fs.next()
	if fs.err != nil {
		return nil
	}
	return &LeaveGame{Nickname: nick, Host: host, Game: ga}
}

// SitDown announces that a player is sitting down at a seat.
type SitDown struct {
	Game         string
	Nickname     string
	PlayerNumber int
	IsRobot      bool
}

func (m *SitDown) Type() int           { return MsgSitDown }
func (m *SitDown) MinimumVersion() int { return 1000 }
func (m *SitDown) GameName() string    { return m.Game }

func (m *SitDown) Command() string {
	return newCmd(MsgSitDown).str(m.Game).str(m.Nickname).
		int(m.PlayerNumber).bool(m.IsRobot).String()
}

func (m *SitDown) String() string {
	return "SOCSitDown:game=" + m.Game + "|nickname=" + m.Nickname +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|robotFlag=" + strconv.FormatBool(m.IsRobot)
}

func parseSitDown(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	nick := fs.next()
	pn := fs.nextInt()
	robot := fs.nextBool()
	if fs.err != nil {
		return nil
	}
	return &SitDown{Game: ga, Nickname: nick, PlayerNumber: pn, IsRobot: robot}
}

// NewGame announces a newly created game to all clients.
type NewGame struct {
	Game string // may carry the unjoinable marker prefix
}

func (m *NewGame) Type() int           { return MsgNewGame }
func (m *NewGame) MinimumVersion() int { return 1000 }
func (m *NewGame) GameName() string    { return m.Game }

func (m *NewGame) Command() string {
	return newCmd(MsgNewGame).str(m.Game).String()
}

func (m *NewGame) String() string {
	return "SOCNewGame:game=" + m.Game
}

func parseNewGame(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &NewGame{Game: ga}
}

// DeleteGame announces that a game was destroyed.
type DeleteGame struct {
	Game string
}

func (m *DeleteGame) Type() int           { return MsgDeleteGame }
func (m *DeleteGame) MinimumVersion() int { return 1000 }
func (m *DeleteGame) GameName() string    { return m.Game }

func (m *DeleteGame) Command() string {
	return newCmd(MsgDeleteGame).str(m.Game).String()
}

func (m *DeleteGame) String() string {
	return "SOCDeleteGame:game=" + m.Game
}

func parseDeleteGame(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &DeleteGame{Game: ga}
}

// StartGame announces that a game has begun.
type StartGame struct {
	Game string
}

func (m *StartGame) Type() int           { return MsgStartGame }
func (m *StartGame) MinimumVersion() int { return 1000 }
func (m *StartGame) GameName() string    { return m.Game }

func (m *StartGame) Command() string {
	return newCmd(MsgStartGame).str(m.Game).String()
}

func (m *StartGame) String() string {
	return "SOCStartGame:game=" + m.Game
}

func parseStartGame(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &StartGame{Game: ga}
}

// GameMembers lists a game's members, sent to a client as it joins.
type GameMembers struct {
	Game    string
	Members []string
}

func (m *GameMembers) Type() int           { return MsgGameMembers }
func (m *GameMembers) MinimumVersion() int { return 1000 }
func (m *GameMembers) GameName() string    { return m.Game }

func (m *GameMembers) Command() string {
	b := newCmd(MsgGameMembers).str(m.Game)
	for _, mem := range m.Members {
		b.str(mem)
	}
	return b.String()
}

func (m *GameMembers) String() string {
	return "SOCGameMembers:game=" + m.Game +
		"|members=[" + strings.Join(m.Members, ", ") + "]"
}

func parseGameMembers(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	var mems []string
	for fs.hasMore() {
		mems = append(mems, fs.next())
	}
	if fs.err != nil {
		return nil
	}
	return &GameMembers{Game: ga, Members: mems}
}

// Games lists the games on the server, sent right after connect to clients
// too old for GamesWithOptions.
type Games struct {
	Games []string // names, possibly marker-prefixed
}

func (m *Games) Type() int           { return MsgGames }
func (m *Games) MinimumVersion() int { return 1000 }

func (m *Games) Command() string {
	b := newCmd(MsgGames)
	for _, ga := range m.Games {
		b.str(ga)
	}
	return b.String()
}

func (m *Games) String() string {
	return "SOCGames:games=[" + strings.Join(m.Games, ", ") + "]"
}

func parseGames(body string) Message {
	fs := newFieldScanner(body)
	var gas []string
	for fs.hasMore() {
		gas = append(gas, fs.next())
	}
	if fs.err != nil {
		return nil
	}
	return &Games{Games: gas}
}

// GameStats reports final scores and which seats were robots.
type GameStats struct {
	Game    string
	Scores  []int
	IsRobot []bool
}

func (m *GameStats) Type() int           { return MsgGameStats }
func (m *GameStats) MinimumVersion() int { return 1000 }
func (m *GameStats) GameName() string    { return m.Game }

func (m *GameStats) Command() string {
	b := newCmd(MsgGameStats).str(m.Game).ints(m.Scores)
	for _, r := range m.IsRobot {
		b.bool(r)
	}
	return b.String()
}

func (m *GameStats) String() string {
	var sb strings.Builder
	sb.WriteString("SOCGameStats:game=")
	sb.WriteString(m.Game)
	for _, s := range m.Scores {
		sb.WriteByte(sepChar)
		sb.WriteString(strconv.Itoa(s))
	}
	for _, r := range m.IsRobot {
		sb.WriteByte(sepChar)
		sb.WriteString(strconv.FormatBool(r))
	}
	return sb.String()
}

func parseGameStats(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	if fs.err != nil {
		return nil
	}
	n := fs.countRemaining()
	if n == 0 || n%2 != 0 {
		return nil
	}
	n /= 2
	scores := make([]int, n)
	robots := make([]bool, n)
	for i := range scores {
		scores[i] = fs.nextInt()
	}
	for i := range robots {
		robots[i] = fs.nextBool()
	}
	if fs.err != nil {
		return nil
	}
	return &GameStats{Game: ga, Scores: scores, IsRobot: robots}
}

// Seat lock states for SetSeatLock.
const (
	SeatUnlocked     = 0
	SeatLocked       = 1
	SeatClearOnReset = 2
)

// SetSeatLock sets one seat's lock state, or every seat's at once. The
// all-seats form requires version 2000 or newer.
type SetSeatLock struct {
	Game         string
	PlayerNumber int   // single-seat form; -1 in the all-seats form
	States       []int // all-seats form; nil in the single-seat form
	State        int   // single-seat form
}

func (m *SetSeatLock) Type() int        { return MsgSetSeatLock }
func (m *SetSeatLock) GameName() string { return m.Game }

func (m *SetSeatLock) MinimumVersion() int {
	if m.States != nil {
		return 2000
	}
	return 1000
}

func seatLockToken(state int) string {
	switch state {
	case SeatLocked:
		return "true"
	case SeatClearOnReset:
		return "clear"
	default:
		return "false"
	}
}

func seatLockFromToken(tok string) (int, bool) {
	switch tok {
	case "true":
		return SeatLocked, true
	case "false":
		return SeatUnlocked, true
	case "clear":
		return SeatClearOnReset, true
	}
	return 0, false
}

func (m *SetSeatLock) Command() string {
	b := newCmd(MsgSetSeatLock).str(m.Game)
	if m.States != nil {
		for _, st := range m.States {
			b.str(seatLockToken(st))
		}
	} else {
		b.int(m.PlayerNumber).str(seatLockToken(m.State))
	}
	return b.String()
}

func seatLockName(state int) string {
	switch state {
	case SeatLocked:
		return "LOCKED"
	case SeatClearOnReset:
		return "CLEAR_ON_RESET"
	default:
		return "UNLOCKED"
	}
}

func (m *SetSeatLock) String() string {
	var sb strings.Builder
	sb.WriteString("SOCSetSeatLock:game=")
	sb.WriteString(m.Game)
	if m.States != nil {
		sb.WriteString("|states=")
		for i, st := range m.States {
			if i > 0 {
				sb.WriteByte(sep2Char)
			}
			sb.WriteString(seatLockName(st))
		}
	} else {
		sb.WriteString("|playerNumber=")
		sb.WriteString(strconv.Itoa(m.PlayerNumber))
		sb.WriteString("|state=")
		sb.WriteString(seatLockName(m.State))
	}
	return sb.String()
}

func parseSetSeatLock(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	first := fs.next()
	if fs.err != nil {
		return nil
	}
	if first != "" && first[0] >= '0' && first[0] <= '9' {
		// single-seat form: pn, state
		pn, err := strconv.Atoi(first)
		if err != nil {
			return nil
		}
		st, ok := seatLockFromToken(fs.next())
		if fs.err != nil || !ok || fs.hasMore() {
			return nil
		}
		return &SetSeatLock{Game: ga, PlayerNumber: pn, State: st}
	}
	states := make([]int, 0, 6)
	st, ok := seatLockFromToken(first)
	if !ok {
		return nil
	}
	states = append(states, st)
	for fs.hasMore() {
		st, ok = seatLockFromToken(fs.next())
		if !ok {
			return nil
		}
		states = append(states, st)
	}
	if len(states) != 4 && len(states) != 6 {
		return nil
	}
	return &SetSeatLock{Game: ga, PlayerNumber: -1, States: states}
}
