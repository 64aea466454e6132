package message

import "strconv"

// Turn-flow kinds: game state, turns, dice, and the generic request/action
// pair that newer features use instead of minting a new type ID each time.

// GameState reports the game's current state number.
type GameState struct {
	Game  string
	State int
}

func (m *GameState) Type() int           { return MsgGameState }
func (m *GameState) MinimumVersion() int { return 1000 }
func (m *GameState) GameName() string    { return m.Game }

func (m *GameState) Command() string {
	return encodeGameInts(MsgGameState, m.Game, m.State)
}

func (m *GameState) String() string {
	return "SOCGameState:game=" + m.Game + "|state=" + strconv.Itoa(m.State)
}

func parseGameState(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &GameState{Game: ga, State: vs[0]}
}

// Turn announces whose turn is beginning.
type Turn struct {
	Game         string
	PlayerNumber int
}

func (m *Turn) Type() int           { return MsgTurn }
func (m *Turn) MinimumVersion() int { return 1000 }
func (m *Turn) GameName() string    { return m.Game }

func (m *Turn) Command() string {
	return encodeGameInts(MsgTurn, m.Game, m.PlayerNumber)
}

func (m *Turn) String() string {
	return "SOCTurn:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseTurn(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &Turn{Game: ga, PlayerNumber: vs[0]}
}

// DiceResult reports the total of the current player's dice roll.
type DiceResult struct {
	Game   string
	Result int
}

func (m *DiceResult) Type() int           { return MsgDiceResult }
func (m *DiceResult) MinimumVersion() int { return 1000 }
func (m *DiceResult) GameName() string    { return m.Game }

func (m *DiceResult) Command() string {
	return encodeGameInts(MsgDiceResult, m.Game, m.Result)
}

func (m *DiceResult) String() string {
	return "SOCDiceResult:game=" + m.Game + "|param=" + strconv.Itoa(m.Result)
}

func parseDiceResult(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &DiceResult{Game: ga, Result: vs[0]}
}

// DiscardRequest tells a player how many resources they must discard.
type DiscardRequest struct {
	Game        string
	NumDiscards int
}

func (m *DiscardRequest) Type() int           { return MsgDiscardRequest }
func (m *DiscardRequest) MinimumVersion() int { return 1000 }
func (m *DiscardRequest) GameName() string    { return m.Game }

func (m *DiscardRequest) Command() string {
	return encodeGameInts(MsgDiscardRequest, m.Game, m.NumDiscards)
}

func (m *DiscardRequest) String() string {
	return "SOCDiscardRequest:game=" + m.Game + "|numDiscards=" + strconv.Itoa(m.NumDiscards)
}

func parseDiscardRequest(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &DiscardRequest{Game: ga, NumDiscards: vs[0]}
}

// RollDiceRequest is the server's prompt that the current player must roll
// or play a card before anything else.
type RollDiceRequest struct {
	Game string
}

func (m *RollDiceRequest) Type() int           { return MsgRollDiceRequest }
func (m *RollDiceRequest) MinimumVersion() int { return 1000 }
func (m *RollDiceRequest) GameName() string    { return m.Game }

func (m *RollDiceRequest) Command() string {
	return newCmd(MsgRollDiceRequest).str(m.Game).String()
}

func (m *RollDiceRequest) String() string {
	return "SOCRollDiceRequest:game=" + m.Game
}

func parseRollDiceRequest(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &RollDiceRequest{Game: ga}
}

// RollDice is the current player's request to roll the dice.
type RollDice struct {
	Game string
}

func (m *RollDice) Type() int           { return MsgRollDice }
func (m *RollDice) MinimumVersion() int { return 1000 }
func (m *RollDice) GameName() string    { return m.Game }

func (m *RollDice) Command() string {
	return newCmd(MsgRollDice).str(m.Game).String()
}

func (m *RollDice) String() string {
	return "SOCRollDice:game=" + m.Game
}

func parseRollDice(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &RollDice{Game: ga}
}

// EndTurn is the current player's request to end their turn.
type EndTurn struct {
	Game string
}

func (m *EndTurn) Type() int           { return MsgEndTurn }
func (m *EndTurn) MinimumVersion() int { return 1000 }
func (m *EndTurn) GameName() string    { return m.Game }

func (m *EndTurn) Command() string {
	return newCmd(MsgEndTurn).str(m.Game).String()
}

func (m *EndTurn) String() string {
	return "SOCEndTurn:game=" + m.Game
}

func parseEndTurn(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &EndTurn{Game: ga}
}

// FirstPlayer announces which seat plays first.
type FirstPlayer struct {
	Game         string
	PlayerNumber int
}

func (m *FirstPlayer) Type() int           { return MsgFirstPlayer }
func (m *FirstPlayer) MinimumVersion() int { return 1000 }
func (m *FirstPlayer) GameName() string    { return m.Game }

func (m *FirstPlayer) Command() string {
	return encodeGameInts(MsgFirstPlayer, m.Game, m.PlayerNumber)
}

func (m *FirstPlayer) String() string {
	return "SOCFirstPlayer:game=" + m.Game + "|param=" + strconv.Itoa(m.PlayerNumber)
}

func parseFirstPlayer(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &FirstPlayer{Game: ga, PlayerNumber: vs[0]}
}

// SetTurn sets the current turn without starting a new one, used while
// joining a game in progress.
type SetTurn struct {
	Game         string
	PlayerNumber int
}

func (m *SetTurn) Type() int           { return MsgSetTurn }
func (m *SetTurn) MinimumVersion() int { return 1000 }
func (m *SetTurn) GameName() string    { return m.Game }

func (m *SetTurn) Command() string {
	return encodeGameInts(MsgSetTurn, m.Game, m.PlayerNumber)
}

func (m *SetTurn) String() string {
	return "SOCSetTurn:game=" + m.Game + "|param=" + strconv.Itoa(m.PlayerNumber)
}

func parseSetTurn(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &SetTurn{Game: ga, PlayerNumber: vs[0]}
}

// RollDicePrompt nudges the current player to roll, for the auto-roll timer.
type RollDicePrompt struct {
	Game         string
	PlayerNumber int
}

func (m *RollDicePrompt) Type() int           { return MsgRollDicePrompt }
func (m *RollDicePrompt) MinimumVersion() int { return 1100 }
func (m *RollDicePrompt) GameName() string    { return m.Game }

func (m *RollDicePrompt) Command() string {
	return encodeGameInts(MsgRollDicePrompt, m.Game, m.PlayerNumber)
}

func (m *RollDicePrompt) String() string {
	return "SOCRollDicePrompt:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseRollDicePrompt(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &RollDicePrompt{Game: ga, PlayerNumber: vs[0]}
}

// ChangeFace announces a player's new face icon.
type ChangeFace struct {
	Game         string
	PlayerNumber int
	FaceID       int
}

func (m *ChangeFace) Type() int           { return MsgChangeFace }
func (m *ChangeFace) MinimumVersion() int { return 1000 }
func (m *ChangeFace) GameName() string    { return m.Game }

func (m *ChangeFace) Command() string {
	return encodeGameInts(MsgChangeFace, m.Game, m.PlayerNumber, m.FaceID)
}

func (m *ChangeFace) String() string {
	return "SOCChangeFace:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|faceId=" + strconv.Itoa(m.FaceID)
}

func parseChangeFace(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &ChangeFace{Game: ga, PlayerNumber: vs[0], FaceID: vs[1]}
}

// LongestRoad announces who holds longest road; -1 for nobody.
type LongestRoad struct {
	Game         string
	PlayerNumber int
}

func (m *LongestRoad) Type() int           { return MsgLongestRoad }
func (m *LongestRoad) MinimumVersion() int { return 1000 }
func (m *LongestRoad) GameName() string    { return m.Game }

func (m *LongestRoad) Command() string {
	return encodeGameInts(MsgLongestRoad, m.Game, m.PlayerNumber)
}

func (m *LongestRoad) String() string {
	return "SOCLongestRoad:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseLongestRoad(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &LongestRoad{Game: ga, PlayerNumber: vs[0]}
}

// LargestArmy announces who holds largest army; -1 for nobody.
type LargestArmy struct {
	Game         string
	PlayerNumber int
}

func (m *LargestArmy) Type() int           { return MsgLargestArmy }
func (m *LargestArmy) MinimumVersion() int { return 1000 }
func (m *LargestArmy) GameName() string    { return m.Game }

func (m *LargestArmy) Command() string {
	return encodeGameInts(MsgLargestArmy, m.Game, m.PlayerNumber)
}

func (m *LargestArmy) String() string {
	return "SOCLargestArmy:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseLargestArmy(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &LargestArmy{Game: ga, PlayerNumber: vs[0]}
}

// ResourceCount reports a player's total resource count, for detecting
// client-side desync.
type ResourceCount struct {
	Game         string
	PlayerNumber int
	Count        int
}

func (m *ResourceCount) Type() int           { return MsgResourceCount }
func (m *ResourceCount) MinimumVersion() int { return 1000 }
func (m *ResourceCount) GameName() string    { return m.Game }

func (m *ResourceCount) Command() string {
	return encodeGameInts(MsgResourceCount, m.Game, m.PlayerNumber, m.Count)
}

func (m *ResourceCount) String() string {
	return "SOCResourceCount:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|count=" + strconv.Itoa(m.Count)
}

func parseResourceCount(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &ResourceCount{Game: ga, PlayerNumber: vs[0], Count: vs[1]}
}

// Request types for SimpleRequest.
const (
	ReqPromptPickResources = 1
	ReqPiriFortAttack      = 1000
	ReqTradePortPlace      = 1001
)

// SimpleRequest is a player's generic request to the server; the request
// type says what is being asked, v1/v2 are its arguments.
type SimpleRequest struct {
	Game         string
	PlayerNumber int
	RequestType  int
	Value1       int
	Value2       int
}

func (m *SimpleRequest) Type() int           { return MsgSimpleRequest }
func (m *SimpleRequest) MinimumVersion() int { return 1118 }
func (m *SimpleRequest) GameName() string    { return m.Game }

func (m *SimpleRequest) Command() string {
	return encodeGameInts(MsgSimpleRequest, m.Game, m.PlayerNumber, m.RequestType, m.Value1, m.Value2)
}

func (m *SimpleRequest) String() string {
	return "SOCSimpleRequest:game=" + m.Game +
		"|pn=" + strconv.Itoa(m.PlayerNumber) +
		"|rtype=" + strconv.Itoa(m.RequestType) +
		"|v1=" + strconv.Itoa(m.Value1) +
		"|v2=" + strconv.Itoa(m.Value2)
}

func parseSimpleRequest(body string) Message {
	ga, vs, ok := parseGameInts(body, 4)
	if !ok {
		return nil
	}
	return &SimpleRequest{Game: ga, PlayerNumber: vs[0], RequestType: vs[1], Value1: vs[2], Value2: vs[3]}
}

// Action types for SimpleAction.
const (
	ActDevCardBought        = 1
	ActTradeSuccessful      = 2
	ActRsrcTypeMonopolized  = 3
	ActBoardEdgeSetSpecial  = 4
	ActDiceResultsFullySent = 5
	ActPiriFortAttackResult = 1001
	ActTradePortRemoved     = 1002
)

// SimpleAction announces a generic game action to the clients.
type SimpleAction struct {
	Game         string
	PlayerNumber int
	ActionType   int
	Value1       int
	Value2       int
}

func (m *SimpleAction) Type() int           { return MsgSimpleAction }
func (m *SimpleAction) MinimumVersion() int { return 1119 }
func (m *SimpleAction) GameName() string    { return m.Game }

func (m *SimpleAction) Command() string {
	return encodeGameInts(MsgSimpleAction, m.Game, m.PlayerNumber, m.ActionType, m.Value1, m.Value2)
}

func (m *SimpleAction) String() string {
	return "SOCSimpleAction:game=" + m.Game +
		"|pn=" + strconv.Itoa(m.PlayerNumber) +
		"|actType=" + strconv.Itoa(m.ActionType) +
		"|v1=" + strconv.Itoa(m.Value1) +
		"|v2=" + strconv.Itoa(m.Value2)
}

func parseSimpleAction(body string) Message {
	ga, vs, ok := parseGameInts(body, 4)
	if !ok {
		return nil
	}
	return &SimpleAction{Game: ga, PlayerNumber: vs[0], ActionType: vs[1], Value1: vs[2], Value2: vs[3]}
}
