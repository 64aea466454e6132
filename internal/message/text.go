package message

import (
	"strconv"
	"strings"
)

// In-game text kinds. Chat text may contain commas, so these kinds swap
// the usual field separator for a character that cannot appear in text.

// GameTextMsg carries chat text within a game. Fields are separated by NUL.
type GameTextMsg struct {
	Game     string
	Nickname string
	Text     string
}

// ServerNickname is the Nickname used when the server itself speaks in a
// game too old for GameServerText.
const ServerNickname = "Server"

func (m *GameTextMsg) Type() int           { return MsgGameTextMsg }
func (m *GameTextMsg) MinimumVersion() int { return 1000 }
func (m *GameTextMsg) GameName() string    { return m.Game }

func (m *GameTextMsg) Command() string {
	return newCmd(MsgGameTextMsg).
		str(m.Game + textMsgSep2 + m.Nickname + textMsgSep2 + m.Text).String()
}

func (m *GameTextMsg) String() string {
	return "SOCGameTextMsg:game=" + m.Game + "|nickname=" + m.Nickname +
		"|text=" + m.Text
}

func parseGameTextMsg(body string) Message {
	parts := strings.SplitN(body, textMsgSep2, 3)
	if len(parts) != 3 {
		return nil
	}
	return &GameTextMsg{Game: parts[0], Nickname: parts[1], Text: parts[2]}
}

// GameServerText carries text from the server to a game. The game name and
// text are separated by unlikelyChar1 instead of a nickname field.
type GameServerText struct {
	Game string
	Text string
}

func (m *GameServerText) Type() int           { return MsgGameServerText }
func (m *GameServerText) MinimumVersion() int { return 2000 }
func (m *GameServerText) GameName() string    { return m.Game }

func (m *GameServerText) Command() string {
	return newCmd(MsgGameServerText).str(m.Game + unlikelyChar1 + m.Text).String()
}

func (m *GameServerText) String() string {
	return "SOCGameServerText:game=" + m.Game + "|text=" + m.Text
}

func parseGameServerText(body string) Message {
	i := strings.Index(body, unlikelyChar1)
	if i <= 0 || i == len(body)-1 {
		return nil
	}
	return &GameServerText{Game: body[:i], Text: body[i+1:]}
}

// SVPTextMessage announces special victory points awarded to a player, with
// a description of what earned them. The description is the rest of the
// line and may contain commas.
type SVPTextMessage struct {
	Game         string
	PlayerNumber int
	SVP          int
	Description  string
}

func (m *SVPTextMessage) Type() int           { return MsgSVPTextMessage }
func (m *SVPTextMessage) MinimumVersion() int { return 2000 }
func (m *SVPTextMessage) GameName() string    { return m.Game }

func (m *SVPTextMessage) Command() string {
	return newCmd(MsgSVPTextMessage).str(m.Game).int(m.PlayerNumber).
		int(m.SVP).str(m.Description).String()
}

func (m *SVPTextMessage) String() string {
	return "SOCSVPTextMessage:game=" + m.Game +
		"|pn=" + strconv.Itoa(m.PlayerNumber) +
		"|svp=" + strconv.Itoa(m.SVP) +
		"|desc=" + m.Description
}

func parseSVPTextMessage(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	svp := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	desc := fs.remainder()
	if desc == "" {
		return nil
	}
	return &SVPTextMessage{Game: ga, PlayerNumber: pn, SVP: svp, Description: desc}
}

// UndoNotAllowedReasonText tells the current player whether their undo was
// refused and why. Clearing the flag sends IsNotAllowed false and no reason.
type UndoNotAllowedReasonText struct {
	Game         string
	IsNotAllowed bool
	Reason       string // "" if none given
}

func (m *UndoNotAllowedReasonText) Type() int           { return MsgUndoNotAllowedReasonText }
func (m *UndoNotAllowedReasonText) MinimumVersion() int { return 2700 }
func (m *UndoNotAllowedReasonText) GameName() string    { return m.Game }

func (m *UndoNotAllowedReasonText) Command() string {
	flag := 0
	if m.IsNotAllowed {
		flag = 1
	}
	b := newCmd(MsgUndoNotAllowedReasonText).str(m.Game).int(flag)
	if m.Reason != "" {
		b.str(m.Reason)
	}
	return b.String()
}

func (m *UndoNotAllowedReasonText) String() string {
	flag := 0
	if m.IsNotAllowed {
		flag = 1
	}
	s := "SOCUndoNotAllowedReasonText:game=" + m.Game +
		"|isNotAllowed=" + strconv.Itoa(flag)
	if m.Reason != "" {
		s += "|reason=" + m.Reason
	}
	return s
}

func parseUndoNotAllowedReasonText(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	flag := fs.nextInt()
	if fs.err != nil || flag < 0 || flag > 1 {
		return nil
	}
	reason := fs.remainder()
	return &UndoNotAllowedReasonText{Game: ga, IsNotAllowed: flag == 1, Reason: reason}
}

// Reason codes for DeclinePlayerRequest.
const (
	DeclineReasonOther       = 0
	DeclineReasonNotThisGame = 1
	DeclineReasonNotYourTurn = 2
	DeclineReasonNotNow      = 3
	DeclineReasonLocation    = 4
	DeclineReasonSpecifics   = 5
)

// DeclinePlayerRequest is the server's reply declining a player's request,
// with a reason code and optional details. The optional text is the rest
// of the line and may contain commas.
type DeclinePlayerRequest struct {
	Game         string
	GameState    int // current state, or 0 to not report one
	ReasonCode   int
	DetailValue1 int
	DetailValue2 int
	ReasonText   string // "" if none
}

func (m *DeclinePlayerRequest) Type() int           { return MsgDeclinePlayerRequest }
func (m *DeclinePlayerRequest) MinimumVersion() int { return 2500 }
func (m *DeclinePlayerRequest) GameName() string    { return m.Game }

func (m *DeclinePlayerRequest) Command() string {
	b := newCmd(MsgDeclinePlayerRequest).str(m.Game).int(m.GameState).int(m.ReasonCode)
	if m.DetailValue1 != 0 || m.DetailValue2 != 0 || m.ReasonText != "" {
		b.int(m.DetailValue1).int(m.DetailValue2)
		if m.ReasonText != "" {
			b.str(m.ReasonText)
		}
	}
	return b.String()
}

func (m *DeclinePlayerRequest) String() string {
	var sb strings.Builder
	sb.WriteString("SOCDeclinePlayerRequest:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|state=")
	sb.WriteString(strconv.Itoa(m.GameState))
	sb.WriteString("|reason=")
	sb.WriteString(strconv.Itoa(m.ReasonCode))
	if m.DetailValue1 != 0 || m.DetailValue2 != 0 || m.ReasonText != "" {
		sb.WriteString("|detail1=")
		sb.WriteString(strconv.Itoa(m.DetailValue1))
		sb.WriteString("|detail2=")
		sb.WriteString(strconv.Itoa(m.DetailValue2))
		if m.ReasonText != "" {
			sb.WriteString("|text=")
			sb.WriteString(m.ReasonText)
		}
	}
	return sb.String()
}

func parseDeclinePlayerRequest(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	state := fs.nextInt()
	reason := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	msg := &DeclinePlayerRequest{Game: ga, GameState: state, ReasonCode: reason}
	if fs.hasMore() {
		msg.DetailValue1 = fs.nextInt()
		msg.DetailValue2 = fs.nextInt()
		if fs.err != nil {
			return nil
		}
		msg.ReasonText = fs.remainder()
	}
	return msg
}
