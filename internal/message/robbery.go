package message

import (
	"strconv"
	"strings"
)

// Robber kinds: moving the robber or pirate, choosing a victim, and the
// robbery result report.

// MoveRobber announces the robber's (or pirate's) new position. A negative
// coordinate means the pirate ship was moved to -coordinate.
type MoveRobber struct {
	Game         string
	PlayerNumber int
	Coordinate   int
}

func (m *MoveRobber) Type() int           { return MsgMoveRobber }
func (m *MoveRobber) MinimumVersion() int { return 1000 }
func (m *MoveRobber) GameName() string    { return m.Game }

func (m *MoveRobber) Command() string {
	return encodeGameInts(MsgMoveRobber, m.Game, m.PlayerNumber, m.Coordinate)
}

func (m *MoveRobber) String() string {
	return "SOCMoveRobber:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|coord=" + formatHex(m.Coordinate)
}

func parseMoveRobber(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &MoveRobber{Game: ga, PlayerNumber: vs[0], Coordinate: vs[1]}
}

// ChoosePlayer is the current player's choice of robbery victim. Special
// choices: -1 declines (scenario), -2 robs the cloth instead of a resource,
// and during a dual-choice prompt -2/-3 pick robber vs pirate.
type ChoosePlayer struct {
	Game   string
	Choice int
}

func (m *ChoosePlayer) Type() int           { return MsgChoosePlayer }
func (m *ChoosePlayer) MinimumVersion() int { return 1000 }
func (m *ChoosePlayer) GameName() string    { return m.Game }

func (m *ChoosePlayer) Command() string {
	return encodeGameInts(MsgChoosePlayer, m.Game, m.Choice)
}

func (m *ChoosePlayer) String() string {
	return "SOCChoosePlayer:game=" + m.Game + "|choice=" + strconv.Itoa(m.Choice)
}

func parseChoosePlayer(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &ChoosePlayer{Game: ga, Choice: vs[0]}
}

// ChoosePlayerRequest asks the current player to choose a victim from the
// seats marked true. CanChooseNone is for scenarios where declining is
// allowed.
type ChoosePlayerRequest struct {
	Game          string
	Choices       []bool
	CanChooseNone bool
}

func (m *ChoosePlayerRequest) Type() int        { return MsgChoosePlayerRequest }
func (m *ChoosePlayerRequest) GameName() string { return m.Game }

func (m *ChoosePlayerRequest) MinimumVersion() int {
	if m.CanChooseNone {
		return 2000
	}
	return 1000
}

func (m *ChoosePlayerRequest) Command() string {
	b := newCmd(MsgChoosePlayerRequest).str(m.Game)
	if m.CanChooseNone {
		b.str("NONE")
	}
	for _, c := range m.Choices {
		b.bool(c)
	}
	return b.String()
}

func (m *ChoosePlayerRequest) String() string {
	var sb strings.Builder
	sb.WriteString("SOCChoosePlayerRequest:game=")
	sb.WriteString(m.Game)
	if m.CanChooseNone {
		sb.WriteString("|canChooseNone=true")
	}
	sb.WriteString("|choices=[")
	for i, c := range m.Choices {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatBool(c))
	}
	sb.WriteByte(']')
	return sb.String()
}

func parseChoosePlayerRequest(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	if fs.err != nil || !fs.hasMore() {
		return nil
	}
	msg := &ChoosePlayerRequest{Game: ga}
	first := fs.next()
	if first == "NONE" {
		msg.CanChooseNone = true
		if !fs.hasMore() {
			return nil
		}
		first = fs.next()
	}
	msg.Choices = append(msg.Choices, first == "true")
	for fs.hasMore() {
		msg.Choices = append(msg.Choices, fs.nextBool())
	}
	if fs.err != nil {
		return nil
	}
	return msg
}

// ReportRobbery reports a completed robbery: who robbed whom and what was
// taken. Exactly one of ResourceType, ResourceSet, or PEType describes the
// loot; the wire marks which with a leading R, S, or E field.
type ReportRobbery struct {
	Game         string
	PerpPN       int // -1 if none
	VictimPN     int // -1 if none
	ResourceType int // -1 unless the single-resource form
	ResourceSet  *ResourceSet
	PEType       int // 0 unless the player-element form
	IsGainLose   bool
	Amount       int
	VictimAmount int
	ExtraValue   int
}

func (m *ReportRobbery) Type() int           { return MsgReportRobbery }
func (m *ReportRobbery) MinimumVersion() int { return 2450 }
func (m *ReportRobbery) GameName() string    { return m.Game }

func (m *ReportRobbery) Command() string {
	b := newCmd(MsgReportRobbery).str(m.Game).int(m.PerpPN).int(m.VictimPN)
	switch {
	case m.ResourceSet != nil:
		b.str("S")
		for rt := ResMin; rt <= ResWood; rt++ {
			if am := m.ResourceSet.Amount(rt); am != 0 {
				b.int(rt).int(am)
			}
		}
	case m.PEType != 0:
		b.str("E").int(m.PEType).int(m.Amount)
	default:
		b.str("R").int(m.ResourceType).int(m.Amount)
	}
	if m.IsGainLose {
		b.str("T")
	} else {
		b.str("F")
	}
	if m.VictimAmount != 0 || m.ExtraValue != 0 {
		b.int(m.VictimAmount)
		if m.ExtraValue != 0 {
			b.int(m.ExtraValue)
		}
	}
	return b.String()
}

func (m *ReportRobbery) String() string {
	var sb strings.Builder
	sb.WriteString("SOCReportRobbery:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|perp=")
	sb.WriteString(strconv.Itoa(m.PerpPN))
	sb.WriteString("|victim=")
	sb.WriteString(strconv.Itoa(m.VictimPN))
	switch {
	case m.ResourceSet != nil:
		sb.WriteString("|resSet=")
		sb.WriteString(m.ResourceSet.String())
	case m.PEType != 0:
		sb.WriteString("|peType=")
		sb.WriteString(peTypeName(m.PEType))
		sb.WriteString("|amount=")
		sb.WriteString(strconv.Itoa(m.Amount))
	default:
		sb.WriteString("|resType=")
		sb.WriteString(strconv.Itoa(m.ResourceType))
		sb.WriteString("|amount=")
		sb.WriteString(strconv.Itoa(m.Amount))
	}
	sb.WriteString("|isGainLose=")
	sb.WriteString(strconv.FormatBool(m.IsGainLose))
	if m.VictimAmount != 0 || !m.IsGainLose {
		sb.WriteString("|victimAmount=")
		sb.WriteString(strconv.Itoa(m.VictimAmount))
	}
	if m.ExtraValue != 0 {
		sb.WriteString("|extraValue=")
		sb.WriteString(strconv.Itoa(m.ExtraValue))
	}
	return sb.String()
}

func parseReportRobbery(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	perp := fs.nextInt()
	victim := fs.nextInt()
	form := fs.next()
	if fs.err != nil || len(form) != 1 {
		return nil
	}
	msg := &ReportRobbery{Game: ga, PerpPN: perp, VictimPN: victim, ResourceType: -1}
	typeVal := fs.nextInt()
	var flag string
	switch form {
	case "S":
		rs := &ResourceSet{}
		amt := fs.nextInt()
		if fs.err != nil {
			return nil
		}
		rs.SetAmount(typeVal, amt)
		for {
			tok := fs.next()
			if fs.err != nil {
				return nil
			}
			if tok[0] < '0' || tok[0] > '9' {
				flag = tok
				break
			}
			rt, err := strconv.Atoi(tok)
			if err != nil {
				return nil
			}
			rs.SetAmount(rt, rs.Amount(rt)+fs.nextInt())
		}
		msg.ResourceSet = rs
	case "R":
		msg.ResourceType = typeVal
		msg.Amount = fs.nextInt()
		flag = fs.next()
	case "E":
		msg.PEType = typeVal
		msg.Amount = fs.nextInt()
		flag = fs.next()
	default:
		return nil
	}
	if fs.err != nil {
		return nil
	}
	switch flag {
	case "T":
		msg.IsGainLose = true
	case "F":
		msg.IsGainLose = false
	default:
		return nil
	}
	if fs.hasMore() {
		msg.VictimAmount = fs.nextInt()
	}
	if fs.hasMore() {
		msg.ExtraValue = fs.nextInt()
	}
	if fs.err != nil {
		return nil
	}
	return msg
}
