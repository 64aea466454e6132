package message

import (
	"strconv"
	"strings"
)

// Development card and inventory kinds.

// Development card types. Knight and Unknown trade places on the wire when
// talking to 1.x clients; see DevCardTypeForVersion.
const (
	CardUnknown    = 0
	CardRoads      = 1
	CardDiscovery  = 2
	CardMonopoly   = 3
	CardCapitol    = 4
	CardLibrary    = 5
	CardUniversity = 6
	CardTemple     = 7
	CardTowers     = 8
	CardKnight     = 9
)

// Actions for DevCardAction.
const (
	CardDraw       = 0
	CardPlay       = 1
	CardAddNew     = 2
	CardAddOld     = 3
	CardCannotPlay = 4
)

// DevCardAction reports a dev card being drawn, played, or added to a
// player's inventory.
type DevCardAction struct {
	Game         string
	PlayerNumber int
	ActionType   int
	CardType     int
}

func (m *DevCardAction) Type() int           { return MsgDevCardAction }
func (m *DevCardAction) MinimumVersion() int { return 1000 }
func (m *DevCardAction) GameName() string    { return m.Game }

func (m *DevCardAction) Command() string {
	return encodeGameInts(MsgDevCardAction, m.Game, m.PlayerNumber, m.ActionType, m.CardType)
}

func (m *DevCardAction) String() string {
	var act string
	switch m.ActionType {
	case CardDraw:
		act = "DRAW"
	case CardPlay:
		act = "PLAY"
	case CardAddNew:
		act = "ADD_NEW"
	case CardAddOld:
		act = "ADD_OLD"
	case CardCannotPlay:
		act = "CANNOT_PLAY"
	default:
		act = strconv.Itoa(m.ActionType)
	}
	return "SOCDevCardAction:game=" + m.Game +
		"|playerNum=" + strconv.Itoa(m.PlayerNumber) +
		"|actionType=" + act +
		"|cardType=" + strconv.Itoa(m.CardType)
}

func parseDevCardAction(body string) Message {
	ga, vs, ok := parseGameInts(body, 3)
	if !ok {
		return nil
	}
	return &DevCardAction{Game: ga, PlayerNumber: vs[0], ActionType: vs[1], CardType: vs[2]}
}

// DevCardCount reports how many cards are left in the dev card deck.
type DevCardCount struct {
	Game  string
	Count int
}

func (m *DevCardCount) Type() int           { return MsgDevCardCount }
func (m *DevCardCount) MinimumVersion() int { return 1000 }
func (m *DevCardCount) GameName() string    { return m.Game }

func (m *DevCardCount) Command() string {
	return encodeGameInts(MsgDevCardCount, m.Game, m.Count)
}

func (m *DevCardCount) String() string {
	return "SOCDevCardCount:game=" + m.Game + "|numDevCards=" + strconv.Itoa(m.Count)
}

func parseDevCardCount(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &DevCardCount{Game: ga, Count: vs[0]}
}

// BuyDevCardRequest is the current player's request to buy a dev card.
type BuyDevCardRequest struct {
	Game string
}

func (m *BuyDevCardRequest) Type() int           { return MsgBuyDevCardRequest }
func (m *BuyDevCardRequest) MinimumVersion() int { return 1000 }
func (m *BuyDevCardRequest) GameName() string    { return m.Game }

func (m *BuyDevCardRequest) Command() string {
	return newCmd(MsgBuyDevCardRequest).str(m.Game).String()
}

func (m *BuyDevCardRequest) String() string {
	return "SOCBuyDevCardRequest:game=" + m.Game
}

func parseBuyDevCardRequest(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &BuyDevCardRequest{Game: ga}
}

// PlayDevCardRequest is the current player's request to play a dev card
// from their inventory.
type PlayDevCardRequest struct {
	Game     string
	CardType int
}

func (m *PlayDevCardRequest) Type() int           { return MsgPlayDevCardRequest }
func (m *PlayDevCardRequest) MinimumVersion() int { return 1000 }
func (m *PlayDevCardRequest) GameName() string    { return m.Game }

func (m *PlayDevCardRequest) Command() string {
	return encodeGameInts(MsgPlayDevCardRequest, m.Game, m.CardType)
}

func (m *PlayDevCardRequest) String() string {
	return "SOCPlayDevCardRequest:game=" + m.Game + "|devCard=" + strconv.Itoa(m.CardType)
}

func parsePlayDevCardRequest(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &PlayDevCardRequest{Game: ga, CardType: vs[0]}
}

// SetPlayedDevCard sets or clears a player's played-dev-card-this-turn flag.
type SetPlayedDevCard struct {
	Game          string
	PlayerNumber  int
	PlayedDevCard bool
}

func (m *SetPlayedDevCard) Type() int           { return MsgSetPlayedDevCard }
func (m *SetPlayedDevCard) MinimumVersion() int { return 1000 }
func (m *SetPlayedDevCard) GameName() string    { return m.Game }

func (m *SetPlayedDevCard) Command() string {
	return newCmd(MsgSetPlayedDevCard).str(m.Game).int(m.PlayerNumber).
		bool(m.PlayedDevCard).String()
}

func (m *SetPlayedDevCard) String() string {
	return "SOCSetPlayedDevCard:game=" + m.Game +
		"|playerNumber=" + strconv.Itoa(m.PlayerNumber) +
		"|playedDevCard=" + strconv.FormatBool(m.PlayedDevCard)
}

func parseSetPlayedDevCard(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	played := fs.nextBool()
	if fs.err != nil {
		return nil
	}
	return &SetPlayedDevCard{Game: ga, PlayerNumber: pn, PlayedDevCard: played}
}

// Actions for InventoryItemAction.
const (
	InvAddPlayable  = 1
	InvAddOther     = 2
	InvPlay         = 3
	InvCannotPlay   = 4
	InvPlayed       = 5
	InvPlacingExtra = 6
)

// Flag bits carried in the optional trailing field for the add/played
// actions; the play actions carry a reason code there instead.
const (
	invFlagIsKept    = 0x01
	invFlagIsVP      = 0x02
	invFlagCanCancel = 0x04
)

// InventoryItemAction reports adding or playing a non-dev-card inventory
// item, like a scenario's trade port or gift.
type InventoryItemAction struct {
	Game          string
	PlayerNumber  int
	Action        int
	ItemType      int
	ReasonCode    int // Play/CannotPlay actions only
	IsKept        bool
	IsVP          bool
	CanCancelPlay bool
}

func (m *InventoryItemAction) Type() int           { return MsgInventoryItemAction }
func (m *InventoryItemAction) MinimumVersion() int { return 2000 }
func (m *InventoryItemAction) GameName() string    { return m.Game }

func (m *InventoryItemAction) hasFlags() bool {
	return m.Action != InvPlay && m.Action != InvCannotPlay
}

func (m *InventoryItemAction) Command() string {
	b := newCmd(MsgInventoryItemAction).str(m.Game).int(m.PlayerNumber).
		int(m.Action).int(m.ItemType)
	rc := m.ReasonCode
	if m.hasFlags() {
		rc = 0
		if m.IsKept {
			rc |= invFlagIsKept
		}
		if m.IsVP {
			rc |= invFlagIsVP
		}
		if m.CanCancelPlay {
			rc |= invFlagCanCancel
		}
	}
	if rc != 0 {
		b.int(rc)
	}
	return b.String()
}

func (m *InventoryItemAction) String() string {
	var act string
	switch m.Action {
	case InvAddPlayable:
		act = "ADD_PLAYABLE"
	case InvAddOther:
		act = "ADD_OTHER"
	case InvPlay:
		act = "PLAY"
	case InvCannotPlay:
		act = "CANNOT_PLAY"
	case InvPlayed:
		act = "PLAYED"
	case InvPlacingExtra:
		act = "PLACING_EXTRA"
	default:
		act = strconv.Itoa(m.Action)
	}
	var sb strings.Builder
	sb.WriteString("SOCInventoryItemAction:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|playerNum=")
	sb.WriteString(strconv.Itoa(m.PlayerNumber))
	sb.WriteString("|action=")
	sb.WriteString(act)
	sb.WriteString("|itemType=")
	sb.WriteString(strconv.Itoa(m.ItemType))
	if m.hasFlags() {
		sb.WriteString("|kept=")
		sb.WriteString(strconv.FormatBool(m.IsKept))
		sb.WriteString("|isVP=")
		sb.WriteString(strconv.FormatBool(m.IsVP))
		sb.WriteString("|canCancel=")
		sb.WriteString(strconv.FormatBool(m.CanCancelPlay))
	} else {
		sb.WriteString("|rc=")
		sb.WriteString(strconv.Itoa(m.ReasonCode))
	}
	return sb.String()
}

func parseInventoryItemAction(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	ac := fs.nextInt()
	it := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	msg := &InventoryItemAction{Game: ga, PlayerNumber: pn, Action: ac, ItemType: it}
	if fs.hasMore() {
		rc := fs.nextInt()
		if fs.err != nil {
			return nil
		}
		if msg.hasFlags() {
			msg.IsKept = rc&invFlagIsKept != 0
			msg.IsVP = rc&invFlagIsVP != 0
			msg.CanCancelPlay = rc&invFlagCanCancel != 0
		} else {
			msg.ReasonCode = rc
		}
	}
	return msg
}
