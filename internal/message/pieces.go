package message

import (
	"strconv"
	"strings"
)

// Piece placement kinds. Board coordinates travel in decimal but render in
// hex, since that is how the board encoding is documented.

// Playing piece types.
const (
	PieceRoad       = 0
	PieceSettlement = 1
	PieceCity       = 2
	PieceShip       = 3
	PieceFortress   = 4
	PieceVillage    = 5
)

// PutPiece announces a piece placed on the board.
type PutPiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	Coordinate   int
}

func (m *PutPiece) Type() int           { return MsgPutPiece }
func (m *PutPiece) MinimumVersion() int { return 1000 }
func (m *PutPiece) GameName() string    { return m.Game }

func (m *PutPiece) Command() string {
	return encodeGameInts(MsgPutPiece, m.Game, m.PlayerNumber, m.PieceType, m.Coordinate)
}

func (m *PutPiece) String() string {
	return "SOCPutPiece:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|pieceType=" + strconv.Itoa(m.PieceType) +
		"|coord=" + formatHex(m.Coordinate)
}

func parsePutPiece(body string) Message {
	ga, vs, ok := parseGameInts(body, 3)
	if !ok {
		return nil
	}
	return &PutPiece{Game: ga, PlayerNumber: vs[0], PieceType: vs[1], Coordinate: vs[2]}
}

// UndoPutPiece announces that a piece placement was undone.
type UndoPutPiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	Coordinate   int
}

func (m *UndoPutPiece) Type() int           { return MsgUndoPutPiece }
func (m *UndoPutPiece) MinimumVersion() int { return 2700 }
func (m *UndoPutPiece) GameName() string    { return m.Game }

func (m *UndoPutPiece) Command() string {
	return encodeGameInts(MsgUndoPutPiece, m.Game, m.PlayerNumber, m.PieceType, m.Coordinate)
}

func (m *UndoPutPiece) String() string {
	return "SOCUndoPutPiece:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|pieceType=" + strconv.Itoa(m.PieceType) +
		"|coord=" + formatHex(m.Coordinate)
}

func parseUndoPutPiece(body string) Message {
	ga, vs, ok := parseGameInts(body, 3)
	if !ok {
		return nil
	}
	return &UndoPutPiece{Game: ga, PlayerNumber: vs[0], PieceType: vs[1], Coordinate: vs[2]}
}

// MovePiece announces a ship moved from one edge to another.
type MovePiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	FromCoord    int
	ToCoord      int
}

func (m *MovePiece) Type() int           { return MsgMovePiece }
func (m *MovePiece) MinimumVersion() int { return 2000 }
func (m *MovePiece) GameName() string    { return m.Game }

func (m *MovePiece) Command() string {
	return encodeGameInts(MsgMovePiece, m.Game, m.PlayerNumber, m.PieceType, m.FromCoord, m.ToCoord)
}

func (m *MovePiece) String() string {
	return "SOCMovePiece:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.PlayerNumber) +
		"|param2=" + strconv.Itoa(m.PieceType) +
		"|param3=" + strconv.Itoa(m.FromCoord) +
		"|param4=" + strconv.Itoa(m.ToCoord)
}

func parseMovePiece(body string) Message {
	ga, vs, ok := parseGameInts(body, 4)
	if !ok {
		return nil
	}
	return &MovePiece{Game: ga, PlayerNumber: vs[0], PieceType: vs[1], FromCoord: vs[2], ToCoord: vs[3]}
}

// RemovePiece announces a piece removed from the board (scenarios only).
type RemovePiece struct {
	Game         string
	PlayerNumber int
	PieceType    int
	Coordinate   int
}

func (m *RemovePiece) Type() int           { return MsgRemovePiece }
func (m *RemovePiece) MinimumVersion() int { return 2000 }
func (m *RemovePiece) GameName() string    { return m.Game }

func (m *RemovePiece) Command() string {
	return encodeGameInts(MsgRemovePiece, m.Game, m.PlayerNumber, m.PieceType, m.Coordinate)
}

func (m *RemovePiece) String() string {
	return "SOCRemovePiece:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.PlayerNumber) +
		"|param2=" + strconv.Itoa(m.PieceType) +
		"|param3=" + strconv.Itoa(m.Coordinate)
}

func parseRemovePiece(body string) Message {
	ga, vs, ok := parseGameInts(body, 3)
	if !ok {
		return nil
	}
	return &RemovePiece{Game: ga, PlayerNumber: vs[0], PieceType: vs[1], Coordinate: vs[2]}
}

// PieceValue updates a scenario piece's value fields, like a village's
// cloth count.
type PieceValue struct {
	Game       string
	PieceType  int
	Coordinate int
	Value1     int
	Value2     int
}

func (m *PieceValue) Type() int           { return MsgPieceValue }
func (m *PieceValue) MinimumVersion() int { return 2000 }
func (m *PieceValue) GameName() string    { return m.Game }

func (m *PieceValue) Command() string {
	return encodeGameInts(MsgPieceValue, m.Game, m.PieceType, m.Coordinate, m.Value1, m.Value2)
}

func (m *PieceValue) String() string {
	return "SOCPieceValue:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.PieceType) +
		"|param2=" + strconv.Itoa(m.Coordinate) +
		"|param3=" + strconv.Itoa(m.Value1) +
		"|param4=" + strconv.Itoa(m.Value2)
}

func parsePieceValue(body string) Message {
	ga, vs, ok := parseGameInts(body, 4)
	if !ok {
		return nil
	}
	return &PieceValue{Game: ga, PieceType: vs[0], Coordinate: vs[1], Value1: vs[2], Value2: vs[3]}
}

// PirateFortressAttackResult announces the outcome of a player's attack
// on their pirate fortress: the pirates' rolled defense strength and how
// many ships the player lost (0 win, 1 tie, 2 loss). Pirate islands
// scenario only.
type PirateFortressAttackResult struct {
	Game           string
	PirateStrength int
	ShipsLost      int
}

func (m *PirateFortressAttackResult) Type() int           { return MsgPirateFortressAttack }
func (m *PirateFortressAttackResult) MinimumVersion() int { return 2000 }
func (m *PirateFortressAttackResult) GameName() string    { return m.Game }

func (m *PirateFortressAttackResult) Command() string {
	return encodeGameInts(MsgPirateFortressAttack, m.Game, m.PirateStrength, m.ShipsLost)
}

func (m *PirateFortressAttackResult) String() string {
	return "SOCPirateFortressAttackResult:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.PirateStrength) +
		"|param2=" + strconv.Itoa(m.ShipsLost)
}

func parsePirateFortressAttackResult(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &PirateFortressAttackResult{Game: ga, PirateStrength: vs[0], ShipsLost: vs[1]}
}

// LastSettlement reports a player's most recently placed settlement, for
// old clients that track it for the initial-placement round.
type LastSettlement struct {
	Game         string
	PlayerNumber int
	Coordinate   int
}

func (m *LastSettlement) Type() int           { return MsgLastSettlement }
func (m *LastSettlement) MinimumVersion() int { return 1000 }
func (m *LastSettlement) GameName() string    { return m.Game }

func (m *LastSettlement) Command() string {
	return encodeGameInts(MsgLastSettlement, m.Game, m.PlayerNumber, m.Coordinate)
}

func (m *LastSettlement) String() string {
	return "SOCLastSettlement:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|coord=" + formatHex(m.Coordinate)
}

func parseLastSettlement(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &LastSettlement{Game: ga, PlayerNumber: vs[0], Coordinate: vs[1]}
}

// BuildRequest is the current player's request to build a piece.
type BuildRequest struct {
	Game      string
	PieceType int // -1 asks to start the 6-player Special Building Phase
}

func (m *BuildRequest) Type() int           { return MsgBuildRequest }
func (m *BuildRequest) MinimumVersion() int { return 1000 }
func (m *BuildRequest) GameName() string    { return m.Game }

func (m *BuildRequest) Command() string {
	return encodeGameInts(MsgBuildRequest, m.Game, m.PieceType)
}

func (m *BuildRequest) String() string {
	return "SOCBuildRequest:game=" + m.Game + "|pieceType=" + strconv.Itoa(m.PieceType)
}

func parseBuildRequest(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &BuildRequest{Game: ga, PieceType: vs[0]}
}

// CancelBuildRequest cancels a build request or an initial-placement piece.
type CancelBuildRequest struct {
	Game      string
	PieceType int
}

func (m *CancelBuildRequest) Type() int           { return MsgCancelBuildRequest }
func (m *CancelBuildRequest) MinimumVersion() int { return 1000 }
func (m *CancelBuildRequest) GameName() string    { return m.Game }

func (m *CancelBuildRequest) Command() string {
	return encodeGameInts(MsgCancelBuildRequest, m.Game, m.PieceType)
}

func (m *CancelBuildRequest) String() string {
	return "SOCCancelBuildRequest:game=" + m.Game + "|pieceType=" + strconv.Itoa(m.PieceType)
}

func parseCancelBuildRequest(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &CancelBuildRequest{Game: ga, PieceType: vs[0]}
}

// DebugFreePlace is the debug command's free piece placement. With piece
// type 0 and coordinate 1/0 it toggles free-placement mode instead.
type DebugFreePlace struct {
	Game         string
	PlayerNumber int
	PieceType    int
	Coordinate   int
}

func (m *DebugFreePlace) Type() int           { return MsgDebugFreePlace }
func (m *DebugFreePlace) MinimumVersion() int { return 1112 }
func (m *DebugFreePlace) GameName() string    { return m.Game }

func (m *DebugFreePlace) Command() string {
	return encodeGameInts(MsgDebugFreePlace, m.Game, m.PlayerNumber, m.PieceType, m.Coordinate)
}

func (m *DebugFreePlace) String() string {
	return "SOCDebugFreePlace:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|pieceType=" + strconv.Itoa(m.PieceType) +
		"|coord=" + formatHex0x(m.Coordinate)
}

func parseDebugFreePlace(body string) Message {
	ga, vs, ok := parseGameInts(body, 3)
	if !ok {
		return nil
	}
	return &DebugFreePlace{Game: ga, PlayerNumber: vs[0], PieceType: vs[1], Coordinate: vs[2]}
}

// RevealFogHex announces a fog hex's revealed land type and dice number.
type RevealFogHex struct {
	Game       string
	HexCoord   int
	HexType    int
	DiceNumber int
}

func (m *RevealFogHex) Type() int           { return MsgRevealFogHex }
func (m *RevealFogHex) MinimumVersion() int { return 2000 }
func (m *RevealFogHex) GameName() string    { return m.Game }

func (m *RevealFogHex) Command() string {
	return encodeGameInts(MsgRevealFogHex, m.Game, m.HexCoord, m.HexType, m.DiceNumber)
}

func (m *RevealFogHex) String() string {
	return "SOCRevealFogHex:game=" + m.Game +
		"|hexCoord=" + strconv.Itoa(m.HexCoord) +
		"|hexType=" + strconv.Itoa(m.HexType) +
		"|diceNum=" + strconv.Itoa(m.DiceNumber)
}

func parseRevealFogHex(body string) Message {
	ga, vs, ok := parseGameInts(body, 3)
	if !ok {
		return nil
	}
	return &RevealFogHex{Game: ga, HexCoord: vs[0], HexType: vs[1], DiceNumber: vs[2]}
}

// Action types for SetLastAction, from the game-action log.
const (
	ActionUninitialized            = 0
	ActionUnknown                  = 1
	ActionLogStartToStartGame      = 10
	ActionTurnBegins               = 20
	ActionRollDice                 = 30
	ActionBuildPiece               = 40
	ActionCancelBuiltPiece         = 50
	ActionMovePiece                = 60
	ActionUndoMovePiece            = 65
	ActionBuyDevCard               = 70
	ActionPlayDevCard              = 80
	ActionDiscard                  = 90
	ActionChooseFreeResources      = 100
	ActionChooseMoveRobberOrPirate = 110
	ActionMoveRobberOrPirate       = 120
	ActionChooseRobberyVictim      = 130
	ActionChooseRobClothOrResource = 140
	ActionRobPlayer                = 150
	ActionTradeBank                = 160
	ActionTradeMakeOffer           = 170
	ActionTradeClearOffer          = 180
	ActionTradeRejectOffer         = 190
	ActionTradeAcceptOffer         = 200
	ActionAskSpecialBuilding       = 210
	ActionEndTurn                  = 220
	ActionGameOver                 = 230
)

var actionTypeNames = map[int]string{
	ActionUninitialized:            "UNINITIALIZED",
	ActionUnknown:                  "UNKNOWN",
	ActionLogStartToStartGame:      "LOG_START_TO_STARTGAME",
	ActionTurnBegins:               "TURN_BEGINS",
	ActionRollDice:                 "ROLL_DICE",
	ActionBuildPiece:               "BUILD_PIECE",
	ActionCancelBuiltPiece:         "CANCEL_BUILT_PIECE",
	ActionMovePiece:                "MOVE_PIECE",
	ActionUndoMovePiece:            "UNDO_MOVE_PIECE",
	ActionBuyDevCard:               "BUY_DEV_CARD",
	ActionPlayDevCard:              "PLAY_DEV_CARD",
	ActionDiscard:                  "DISCARD",
	ActionChooseFreeResources:      "CHOOSE_FREE_RESOURCES",
	ActionChooseMoveRobberOrPirate: "CHOOSE_MOVE_ROBBER_OR_PIRATE",
	ActionMoveRobberOrPirate:       "MOVE_ROBBER_OR_PIRATE",
	ActionChooseRobberyVictim:      "CHOOSE_ROBBERY_VICTIM",
	ActionChooseRobClothOrResource: "CHOOSE_ROB_CLOTH_OR_RESOURCE",
	ActionRobPlayer:                "ROB_PLAYER",
	ActionTradeBank:                "TRADE_BANK",
	ActionTradeMakeOffer:           "TRADE_MAKE_OFFER",
	ActionTradeClearOffer:          "TRADE_CLEAR_OFFER",
	ActionTradeRejectOffer:         "TRADE_REJECT_OFFER",
	ActionTradeAcceptOffer:         "TRADE_ACCEPT_OFFER",
	ActionAskSpecialBuilding:       "ASK_SPECIAL_BUILDING",
	ActionEndTurn:                  "END_TURN",
	ActionGameOver:                 "GAME_OVER",
}

func actionTypeValue(name string) (int, bool) {
	for v, n := range actionTypeNames {
		if n == name {
			return v, true
		}
	}
	return 0, false
}

// SetLastAction tells a client joining mid-game about the most recent
// undoable action: its type, up to three int parameters, and up to two
// resource sets.
type SetLastAction struct {
	Game       string
	ActionType int
	Param1     int
	Param2     int
	Param3     int
	RS1        *ResourceSet
	RS2        *ResourceSet
}

func (m *SetLastAction) Type() int           { return MsgSetLastAction }
func (m *SetLastAction) MinimumVersion() int { return 2700 }
func (m *SetLastAction) GameName() string    { return m.Game }

func (m *SetLastAction) Command() string {
	b := newCmd(MsgSetLastAction).str(m.Game).int(m.ActionType).
		int(m.Param1).int(m.Param2).int(m.Param3)
	if m.RS1 != nil {
		b.str("R1")
		m.RS1.known(b)
	}
	if m.RS2 != nil {
		b.str("R2")
		m.RS2.known(b)
	}
	return b.String()
}

func (m *SetLastAction) String() string {
	var sb strings.Builder
	sb.WriteString("SOCSetLastAction:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|actType=")
	if name, ok := actionTypeNames[m.ActionType]; ok {
		sb.WriteString(name)
	} else {
		sb.WriteString(strconv.Itoa(m.ActionType))
	}
	if m.Param1 != 0 || m.Param2 != 0 || m.Param3 != 0 {
		sb.WriteString("|p1=")
		sb.WriteString(strconv.Itoa(m.Param1))
		if m.Param2 != 0 || m.Param3 != 0 {
			sb.WriteString("|p2=")
			sb.WriteString(strconv.Itoa(m.Param2))
			if m.Param3 != 0 {
				sb.WriteString("|p3=")
				sb.WriteString(strconv.Itoa(m.Param3))
			}
		}
	}
	if m.RS1 != nil {
		sb.WriteString("|rs1=[")
		sb.WriteString(m.RS1.String())
		sb.WriteByte(']')
	}
	if m.RS2 != nil {
		sb.WriteString("|rs2=[")
		sb.WriteString(m.RS2.String())
		sb.WriteByte(']')
	}
	return sb.String()
}

func parseSetLastAction(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	at := fs.nextInt()
	p1 := fs.nextInt()
	p2 := fs.nextInt()
	p3 := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	msg := &SetLastAction{Game: ga, ActionType: at, Param1: p1, Param2: p2, Param3: p3}
	for fs.hasMore() {
		switch fs.next() {
		case "R1":
			rs := scanResourceSet(fs, false)
			msg.RS1 = &rs
		case "R2":
			rs := scanResourceSet(fs, false)
			msg.RS2 = &rs
		}
		if fs.err != nil {
			return nil
		}
	}
	return msg
}
