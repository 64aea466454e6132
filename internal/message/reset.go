package message

import "strconv"

// Board reset kinds. A reset replaces a game's board mid-session after the
// humans vote to start over; the old game object is swapped out under the
// same name.

// ResetBoardRequest asks the server to reset the game's board. The server
// either starts a vote among the other human players or resets right away
// if there are none.
type ResetBoardRequest struct {
	Game string
}

func (m *ResetBoardRequest) Type() int           { return MsgResetBoardRequest }
func (m *ResetBoardRequest) MinimumVersion() int { return 1100 }
func (m *ResetBoardRequest) GameName() string    { return m.Game }

func (m *ResetBoardRequest) Command() string {
	return newCmd(MsgResetBoardRequest).str(m.Game).String()
}

func (m *ResetBoardRequest) String() string {
	return "SOCResetBoardRequest:game=" + m.Game
}

func parseResetBoardRequest(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &ResetBoardRequest{Game: ga}
}

// ResetBoardAuth tells clients the reset is happening: rejoin the game at
// your old seat. Sent before the rejoin sequence begins.
type ResetBoardAuth struct {
	Game             string
	RejoinPlayer     int
	RequestingPlayer int
}

func (m *ResetBoardAuth) Type() int           { return MsgResetBoardAuth }
func (m *ResetBoardAuth) MinimumVersion() int { return 1100 }
func (m *ResetBoardAuth) GameName() string    { return m.Game }

func (m *ResetBoardAuth) Command() string {
	return encodeGameInts(MsgResetBoardAuth, m.Game, m.RejoinPlayer, m.RequestingPlayer)
}

func (m *ResetBoardAuth) String() string {
	return "SOCResetBoardAuth:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.RejoinPlayer) +
		"|param2=" + strconv.Itoa(m.RequestingPlayer)
}

func parseResetBoardAuth(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &ResetBoardAuth{Game: ga, RejoinPlayer: vs[0], RequestingPlayer: vs[1]}
}

// ResetBoardVoteRequest asks the other human players to vote on a reset
// requested by the named player.
type ResetBoardVoteRequest struct {
	Game             string
	RequestingPlayer int
}

func (m *ResetBoardVoteRequest) Type() int           { return MsgResetBoardVoteRequest }
func (m *ResetBoardVoteRequest) MinimumVersion() int { return 1100 }
func (m *ResetBoardVoteRequest) GameName() string    { return m.Game }

func (m *ResetBoardVoteRequest) Command() string {
	return encodeGameInts(MsgResetBoardVoteRequest, m.Game, m.RequestingPlayer)
}

func (m *ResetBoardVoteRequest) String() string {
	return "SOCResetBoardVoteRequest:game=" + m.Game +
		"|param=" + strconv.Itoa(m.RequestingPlayer)
}

func parseResetBoardVoteRequest(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &ResetBoardVoteRequest{Game: ga, RequestingPlayer: vs[0]}
}

// ResetBoardVote carries one player's yes/no reset vote, both from the
// voting client and re-broadcast by the server.
type ResetBoardVote struct {
	Game         string
	PlayerNumber int
	VotesYes     bool
}

func (m *ResetBoardVote) Type() int           { return MsgResetBoardVote }
func (m *ResetBoardVote) MinimumVersion() int { return 1100 }
func (m *ResetBoardVote) GameName() string    { return m.Game }

func (m *ResetBoardVote) Command() string {
	vy := 0
	if m.VotesYes {
		vy = 1
	}
	return encodeGameInts(MsgResetBoardVote, m.Game, m.PlayerNumber, vy)
}

func (m *ResetBoardVote) String() string {
	vy := 0
	if m.VotesYes {
		vy = 1
	}
	return "SOCResetBoardVote:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.PlayerNumber) +
		"|param2=" + strconv.Itoa(vy)
}

func parseResetBoardVote(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &ResetBoardVote{Game: ga, PlayerNumber: vs[0], VotesYes: vs[1] != 0}
}

// ResetBoardReject tells clients the reset vote failed.
type ResetBoardReject struct {
	Game string
}

func (m *ResetBoardReject) Type() int           { return MsgResetBoardReject }
func (m *ResetBoardReject) MinimumVersion() int { return 1100 }
func (m *ResetBoardReject) GameName() string    { return m.Game }

func (m *ResetBoardReject) Command() string {
	return newCmd(MsgResetBoardReject).str(m.Game).String()
}

func (m *ResetBoardReject) String() string {
	return "SOCResetBoardReject:game=" + m.Game
}

func parseResetBoardReject(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &ResetBoardReject{Game: ga}
}
