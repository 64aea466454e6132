package message

import (
	"strconv"
	"strings"
)

// Special item kinds, for scenario items like the wonders in _SC_WOND:
// players pick, build, or clear items tracked in per-game and per-player
// lists.

// Operations for SetSpecialItem.
const (
	SpecialItemSet       = 1
	SpecialItemClear     = 2
	SpecialItemPick      = 3
	SpecialItemDecline   = 4
	SpecialItemSetPick   = 5
	SpecialItemClearPick = 6
)

// specialItemOps is indexed by operation; 0 is unused.
var specialItemOps = []string{"", "SET", "CLEAR", "PICK", "DECLINE", "SET_PICK", "CLEAR_PICK"}

// SetSpecialItem requests or announces a special item operation. Either
// index may be -1 when the item isn't in that list; coordinate -1 and
// level 0 mean unused.
type SetSpecialItem struct {
	Game            string
	Op              int
	TypeKey         string
	GameItemIndex   int
	PlayerItemIndex int
	PlayerNumber    int
	Coord           int
	Level           int
	StringValue     string
}

func (m *SetSpecialItem) Type() int           { return MsgSetSpecialItem }
func (m *SetSpecialItem) MinimumVersion() int { return 2000 }
func (m *SetSpecialItem) GameName() string    { return m.Game }

func (m *SetSpecialItem) Command() string {
	return newCmd(MsgSetSpecialItem).str(m.Game).int(m.Op).str(m.TypeKey).
		int(m.GameItemIndex).int(m.PlayerItemIndex).int(m.PlayerNumber).
		int(m.Coord).int(m.Level).optStr(m.StringValue).String()
}

func (m *SetSpecialItem) String() string {
	opStr := strconv.Itoa(m.Op)
	if m.Op > 0 && m.Op < len(specialItemOps) {
		opStr = specialItemOps[m.Op]
	}
	var sb strings.Builder
	sb.WriteString("SOCSetSpecialItem:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|op=")
	sb.WriteString(opStr)
	sb.WriteString("|typeKey=")
	sb.WriteString(m.TypeKey)
	sb.WriteString("|gi=")
	sb.WriteString(strconv.Itoa(m.GameItemIndex))
	sb.WriteString("|pi=")
	sb.WriteString(strconv.Itoa(m.PlayerItemIndex))
	sb.WriteString("|pn=")
	sb.WriteString(strconv.Itoa(m.PlayerNumber))
	sb.WriteString("|co=")
	if m.Coord >= 0 {
		sb.WriteString(formatHex(m.Coord))
	} else {
		sb.WriteString(strconv.Itoa(m.Coord))
	}
	sb.WriteString("|lv=")
	sb.WriteString(strconv.Itoa(m.Level))
	if m.StringValue != "" {
		sb.WriteString("|sv=")
		sb.WriteString(m.StringValue)
	} else {
		sb.WriteString("|sv null")
	}
	return sb.String()
}

func parseSetSpecialItem(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	op := fs.nextInt()
	tk := fs.next()
	gi := fs.nextInt()
	pi := fs.nextInt()
	pn := fs.nextInt()
	co := fs.nextInt()
	lv := fs.nextInt()
	sv := fs.next()
	if fs.err != nil {
		return nil
	}
	if sv == EmptyStr {
		sv = ""
	}
	if (pn != -1 && pi == -1) || (pi == -1 && gi == -1) {
		return nil
	}
	return &SetSpecialItem{Game: ga, Op: op, TypeKey: tk, GameItemIndex: gi,
		PlayerItemIndex: pi, PlayerNumber: pn, Coord: co, Level: lv, StringValue: sv}
}
