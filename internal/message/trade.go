package message

import (
	"strconv"
	"strings"
)

// Trading kinds: player-to-player offers, bank/port trades, discards, and
// the resource picks from dev cards and gold hexes.

// TradeOffer is the offer payload carried by MakeOffer: who offers, which
// seats it is offered to, and the give/get resource sets.
type TradeOffer struct {
	Game string
	From int
	To   []bool // length == game's max players
	Give ResourceSet
	Get  ResourceSet
}

func (o *TradeOffer) String() string {
	var sb strings.Builder
	sb.WriteString("game=")
	sb.WriteString(o.Game)
	sb.WriteString("|from=")
	sb.WriteString(strconv.Itoa(o.From))
	sb.WriteString("|to=")
	for i, t := range o.To {
		if i > 0 {
			sb.WriteByte(sep2Char)
		}
		sb.WriteString(strconv.FormatBool(t))
	}
	sb.WriteString("|give=")
	sb.WriteString(o.Give.String())
	sb.WriteString("|get=")
	sb.WriteString(o.Get.String())
	return sb.String()
}

// MakeOffer announces a player-to-player trade offer. The number of to
// flags matches the game's seat count, so the field count varies.
type MakeOffer struct {
	Game  string
	Offer TradeOffer
}

func (m *MakeOffer) Type() int           { return MsgMakeOffer }
func (m *MakeOffer) MinimumVersion() int { return 1000 }
func (m *MakeOffer) GameName() string    { return m.Game }

func (m *MakeOffer) Command() string {
	b := newCmd(MsgMakeOffer).str(m.Game).int(m.Offer.From)
	for _, t := range m.Offer.To {
		b.bool(t)
	}
	m.Offer.Give.known(b)
	m.Offer.Get.known(b)
	return b.String()
}

func (m *MakeOffer) String() string {
	return "SOCMakeOffer:game=" + m.Game + "|offer=" + m.Offer.String()
}

func parseMakeOffer(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	from := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	numTo := fs.countRemaining() - 2*5
	if numTo < 1 {
		return nil
	}
	to := make([]bool, numTo)
	for i := range to {
		to[i] = fs.nextBool()
	}
	give := scanResourceSet(fs, false)
	get := scanResourceSet(fs, false)
	if fs.err != nil {
		return nil
	}
	return &MakeOffer{Game: ga, Offer: TradeOffer{Game: ga, From: from, To: to, Give: give, Get: get}}
}

// BankTrade is a trade with the bank or a port: give and get sets, plus the
// trading player's number when sent from the server.
type BankTrade struct {
	Game         string
	Give         ResourceSet
	Get          ResourceSet
	PlayerNumber int // -1 if not sent
}

func (m *BankTrade) Type() int           { return MsgBankTrade }
func (m *BankTrade) MinimumVersion() int { return 1000 }
func (m *BankTrade) GameName() string    { return m.Game }

func (m *BankTrade) Command() string {
	b := newCmd(MsgBankTrade).str(m.Game)
	m.Give.known(b)
	m.Get.known(b)
	if m.PlayerNumber >= 0 {
		b.int(m.PlayerNumber)
	}
	return b.String()
}

func (m *BankTrade) String() string {
	s := "SOCBankTrade:game=" + m.Game + "|give=" + m.Give.String() +
		"|get=" + m.Get.String()
	if m.PlayerNumber >= 0 {
		s += "|pn=" + strconv.Itoa(m.PlayerNumber)
	}
	return s
}

func parseBankTrade(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	give := scanResourceSet(fs, false)
	get := scanResourceSet(fs, false)
	if fs.err != nil {
		return nil
	}
	pn := -1
	if fs.hasMore() {
		pn = fs.nextInt()
		if fs.err != nil {
			return nil
		}
	}
	return &BankTrade{Game: ga, Give: give, Get: get, PlayerNumber: pn}
}

// AcceptOffer announces that a player accepted another player's offer.
type AcceptOffer struct {
	Game      string
	Accepting int
	Offering  int
}

func (m *AcceptOffer) Type() int           { return MsgAcceptOffer }
func (m *AcceptOffer) MinimumVersion() int { return 1000 }
func (m *AcceptOffer) GameName() string    { return m.Game }

func (m *AcceptOffer) Command() string {
	return encodeGameInts(MsgAcceptOffer, m.Game, m.Accepting, m.Offering)
}

func (m *AcceptOffer) String() string {
	return "SOCAcceptOffer:game=" + m.Game +
		"|accepting=" + strconv.Itoa(m.Accepting) +
		"|offering=" + strconv.Itoa(m.Offering)
}

func parseAcceptOffer(body string) Message {
	ga, vs, ok := parseGameInts(body, 2)
	if !ok {
		return nil
	}
	return &AcceptOffer{Game: ga, Accepting: vs[0], Offering: vs[1]}
}

// RejectOffer announces that a player rejected all offers made to them.
type RejectOffer struct {
	Game         string
	PlayerNumber int
}

func (m *RejectOffer) Type() int           { return MsgRejectOffer }
func (m *RejectOffer) MinimumVersion() int { return 1000 }
func (m *RejectOffer) GameName() string    { return m.Game }

func (m *RejectOffer) Command() string {
	return encodeGameInts(MsgRejectOffer, m.Game, m.PlayerNumber)
}

func (m *RejectOffer) String() string {
	return "SOCRejectOffer:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseRejectOffer(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &RejectOffer{Game: ga, PlayerNumber: vs[0]}
}

// ClearOffer clears a player's trade offer; -1 clears every seat's.
type ClearOffer struct {
	Game         string
	PlayerNumber int
}

func (m *ClearOffer) Type() int           { return MsgClearOffer }
func (m *ClearOffer) MinimumVersion() int { return 1000 }
func (m *ClearOffer) GameName() string    { return m.Game }

func (m *ClearOffer) Command() string {
	return encodeGameInts(MsgClearOffer, m.Game, m.PlayerNumber)
}

func (m *ClearOffer) String() string {
	return "SOCClearOffer:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseClearOffer(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &ClearOffer{Game: ga, PlayerNumber: vs[0]}
}

// ClearTradeMsg clears a player's trade response text; -1 clears all.
type ClearTradeMsg struct {
	Game         string
	PlayerNumber int
}

func (m *ClearTradeMsg) Type() int           { return MsgClearTradeMsg }
func (m *ClearTradeMsg) MinimumVersion() int { return 1000 }
func (m *ClearTradeMsg) GameName() string    { return m.Game }

func (m *ClearTradeMsg) Command() string {
	return encodeGameInts(MsgClearTradeMsg, m.Game, m.PlayerNumber)
}

func (m *ClearTradeMsg) String() string {
	return "SOCClearTradeMsg:game=" + m.Game + "|playerNumber=" + strconv.Itoa(m.PlayerNumber)
}

func parseClearTradeMsg(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &ClearTradeMsg{Game: ga, PlayerNumber: vs[0]}
}

// Discard is a player's discard after a 7 is rolled; includes the unknown
// amount so other players' clients can track totals.
type Discard struct {
	Game      string
	Resources ResourceSet
}

func (m *Discard) Type() int           { return MsgDiscard }
func (m *Discard) MinimumVersion() int { return 1000 }
func (m *Discard) GameName() string    { return m.Game }

func (m *Discard) Command() string {
	b := newCmd(MsgDiscard).str(m.Game)
	m.Resources.all(b)
	return b.String()
}

func (m *Discard) String() string {
	return "SOCDiscard:game=" + m.Game + "|resources=" + m.Resources.String()
}

func parseDiscard(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	rs := scanResourceSet(fs, true)
	if fs.err != nil || fs.hasMore() {
		return nil
	}
	return &Discard{Game: ga, Resources: rs}
}

// PickResources is the free resource pick from a discovery card or gold
// hex: the five known amounts.
type PickResources struct {
	Game      string
	Resources ResourceSet
}

func (m *PickResources) Type() int           { return MsgPickResources }
func (m *PickResources) MinimumVersion() int { return 1000 }
func (m *PickResources) GameName() string    { return m.Game }

func (m *PickResources) Command() string {
	b := newCmd(MsgPickResources).str(m.Game)
	m.Resources.known(b)
	return b.String()
}

func (m *PickResources) String() string {
	return "SOCPickResources:game=" + m.Game + "|resources=" + m.Resources.String()
}

func parsePickResources(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	rs := scanResourceSet(fs, false)
	if fs.err != nil {
		return nil
	}
	return &PickResources{Game: ga, Resources: rs}
}

// PickResourceType is the monopoly card's resource type choice.
type PickResourceType struct {
	Game         string
	ResourceType int
}

func (m *PickResourceType) Type() int           { return MsgPickResourceType }
func (m *PickResourceType) MinimumVersion() int { return 1000 }
func (m *PickResourceType) GameName() string    { return m.Game }

func (m *PickResourceType) Command() string {
	return encodeGameInts(MsgPickResourceType, m.Game, m.ResourceType)
}

func (m *PickResourceType) String() string {
	return "SOCPickResourceType:game=" + m.Game + "|resType=" + strconv.Itoa(m.ResourceType)
}

func parsePickResourceType(body string) Message {
	ga, vs, ok := parseGameInts(body, 1)
	if !ok {
		return nil
	}
	return &PickResourceType{Game: ga, ResourceType: vs[0]}
}
