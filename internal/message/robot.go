package message

import (
	"strconv"
	"strings"
)

// Robot client kinds. Bots authenticate with ImARobot, then the server
// steers them into games with BotJoinGameRequest and keeps their strategy
// tuned with UpdateRobotParams.

// RobotParameters is the strategy tuning block carried by
// UpdateRobotParams.
type RobotParameters struct {
	MaxGameLength           int
	MaxETA                  int
	ETABonusFactor          float32
	AdversarialFactor       float32
	LeaderAdversarialFactor float32
	DevCardMultiplier       float32
	ThreatMultiplier        float32
	StrategyType            int
	TradeFlag               int
}

// formatFloat renders f the way the wire format expects: integral values
// keep a trailing ".0".
func formatFloat(f float32) string {
	s := strconv.FormatFloat(float64(f), 'g', -1, 32)
	if !strings.ContainsAny(s, ".eEnI") {
		s += ".0"
	}
	return s
}

func (p *RobotParameters) String() string {
	return "mgl=" + strconv.Itoa(p.MaxGameLength) +
		"|me=" + strconv.Itoa(p.MaxETA) +
		"|ebf=" + formatFloat(p.ETABonusFactor) +
		"|af=" + formatFloat(p.AdversarialFactor) +
		"|laf=" + formatFloat(p.LeaderAdversarialFactor) +
		"|dcm=" + formatFloat(p.DevCardMultiplier) +
		"|tm=" + formatFloat(p.ThreatMultiplier) +
		"|st=" + strconv.Itoa(p.StrategyType) +
		"|tf=" + strconv.Itoa(p.TradeFlag)
}

// UpdateRobotParams sends a bot its strategy parameters, right after its
// ImARobot is accepted.
type UpdateRobotParams struct {
	Params RobotParameters
}

func (m *UpdateRobotParams) Type() int           { return MsgUpdateRobotParams }
func (m *UpdateRobotParams) MinimumVersion() int { return 1000 }

func (m *UpdateRobotParams) Command() string {
	p := &m.Params
	return newCmd(MsgUpdateRobotParams).
		int(p.MaxGameLength).int(p.MaxETA).
		str(formatFloat(p.ETABonusFactor)).
		str(formatFloat(p.AdversarialFactor)).
		str(formatFloat(p.LeaderAdversarialFactor)).
		str(formatFloat(p.DevCardMultiplier)).
		str(formatFloat(p.ThreatMultiplier)).
		int(p.StrategyType).int(p.TradeFlag).String()
}

func (m *UpdateRobotParams) String() string {
	return "SOCUpdateRobotParams:" + m.Params.String()
}

func parseUpdateRobotParams(body string) Message {
	fs := newFieldScanner(body)
	var p RobotParameters
	p.MaxGameLength = fs.nextInt()
	p.MaxETA = fs.nextInt()
	floats := [5]*float32{&p.ETABonusFactor, &p.AdversarialFactor,
		&p.LeaderAdversarialFactor, &p.DevCardMultiplier, &p.ThreatMultiplier}
	for _, f := range floats {
		tok := fs.next()
		if fs.err != nil {
			return nil
		}
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return nil
		}
		*f = float32(v)
	}
	p.StrategyType = fs.nextInt()
	p.TradeFlag = fs.nextInt()
	if fs.err != nil {
		return nil
	}
	return &UpdateRobotParams{Params: p}
}

// BotJoinGameRequest asks a bot to sit down in a game. The packed options
// string is the last field and may contain commas.
type BotJoinGameRequest struct {
	Game          string
	PlayerNumber  int
	OptionsString string
}

func (m *BotJoinGameRequest) Type() int           { return MsgBotJoinGameRequest }
func (m *BotJoinGameRequest) MinimumVersion() int { return 1000 }
func (m *BotJoinGameRequest) GameName() string    { return m.Game }

func (m *BotJoinGameRequest) Command() string {
	return newCmd(MsgBotJoinGameRequest).str(m.Game).int(m.PlayerNumber).
		str(m.OptionsString).String()
}

func (m *BotJoinGameRequest) String() string {
	return "SOCBotJoinGameRequest:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|opts=" + m.OptionsString
}

func parseBotJoinGameRequest(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	return &BotJoinGameRequest{Game: ga, PlayerNumber: pn, OptionsString: fs.remainder()}
}

// RobotDismiss tells a bot to leave the game; sent when a human takes
// over its seat.
type RobotDismiss struct {
	Game string
}

func (m *RobotDismiss) Type() int           { return MsgRobotDismiss }
func (m *RobotDismiss) MinimumVersion() int { return 1000 }
func (m *RobotDismiss) GameName() string    { return m.Game }

func (m *RobotDismiss) Command() string {
	return newCmd(MsgRobotDismiss).str(m.Game).String()
}

func (m *RobotDismiss) String() string {
	return "SOCRobotDismiss:game=" + m.Game
}

func parseRobotDismiss(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &RobotDismiss{Game: ga}
}

// TimingPing keeps a bot's turn timer in sync with the server.
type TimingPing struct {
	Game string
}

func (m *TimingPing) Type() int           { return MsgTimingPing }
func (m *TimingPing) MinimumVersion() int { return 1107 }
func (m *TimingPing) GameName() string    { return m.Game }

func (m *TimingPing) Command() string {
	return newCmd(MsgTimingPing).str(m.Game).String()
}

func (m *TimingPing) String() string {
	return "SOCTimingPing:game=" + m.Game
}

func parseTimingPing(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &TimingPing{Game: ga}
}
