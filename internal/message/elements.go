package message

import (
	"strconv"
	"strings"
)

// Player-element and game-element kinds: the generic numeric state updates
// that replaced most single-purpose kinds from version 2.0 on.

// Player element types. 1-5 match the resource type constants.
const (
	PEClay                    = 1
	PEOre                     = 2
	PESheep                   = 3
	PEWheat                   = 4
	PEWood                    = 5
	PEUnknownResource         = 6
	PERoads                   = 10
	PESettlements             = 11
	PECities                  = 12
	PEShips                   = 13
	PENumKnights              = 15
	PEAskSpecialBuild         = 16
	PENumPickGoldHexResources = 17
	PEScenarioSVP             = 18
	PEPlayerEventsBitmask     = 19
	PESVPLandAreasBitmask     = 20
	PEStartingLandAreas       = 21
	PEScenarioClothCount      = 22
	PEScenarioWarshipCount    = 23
)

// Player element actions, plus the is-news variants that tell clients the
// change is worth announcing rather than quietly syncing.
const (
	ElemSet  = 100
	ElemGain = 101
	ElemLose = 102

	ElemSetNews  = -100
	ElemGainNews = -101
	ElemLoseNews = -102
)

var peTypeNames = map[int]string{
	PEClay:                    "CLAY",
	PEOre:                     "ORE",
	PESheep:                   "SHEEP",
	PEWheat:                   "WHEAT",
	PEWood:                    "WOOD",
	PEUnknownResource:         "UNKNOWN_RESOURCE",
	PERoads:                   "ROADS",
	PESettlements:             "SETTLEMENTS",
	PECities:                  "CITIES",
	PEShips:                   "SHIPS",
	PENumKnights:              "NUMKNIGHTS",
	PEAskSpecialBuild:         "ASK_SPECIAL_BUILD",
	PENumPickGoldHexResources: "NUM_PICK_GOLD_HEX_RESOURCES",
	PEScenarioSVP:             "SCENARIO_SVP",
	PEPlayerEventsBitmask:     "PLAYEREVENTS_BITMASK",
	PESVPLandAreasBitmask:     "SCENARIO_SVP_LANDAREAS_BITMASK",
	PEStartingLandAreas:       "STARTING_LANDAREAS",
	PEScenarioClothCount:      "SCENARIO_CLOTH_COUNT",
	PEScenarioWarshipCount:    "SCENARIO_WARSHIP_COUNT",
}

// peTypeName renders a player element type symbolically, or numerically
// when no name is known.
func peTypeName(et int) string {
	if name, ok := peTypeNames[et]; ok {
		return name
	}
	return strconv.Itoa(et)
}

// peTypeValue reverses peTypeName.
func peTypeValue(name string) (int, bool) {
	for v, n := range peTypeNames {
		if n == name {
			return v, true
		}
	}
	v, err := strconv.Atoi(name)
	return v, err == nil
}

func elemActionName(action int) string {
	switch action {
	case ElemSet:
		return "SET"
	case ElemGain:
		return "GAIN"
	case ElemLose:
		return "LOSE"
	}
	return strconv.Itoa(action)
}

// PlayerElement updates one piece of a player's numeric state.
type PlayerElement struct {
	Game         string
	PlayerNumber int // -1 applies to the board or to all players
	ActionType   int
	ElementType  int
	Value        int
	IsNews       bool
}

func (m *PlayerElement) Type() int           { return MsgPlayerElement }
func (m *PlayerElement) MinimumVersion() int { return 1000 }
func (m *PlayerElement) GameName() string    { return m.Game }

func (m *PlayerElement) Command() string {
	b := newCmd(MsgPlayerElement).str(m.Game).int(m.PlayerNumber).
		int(m.ActionType).int(m.ElementType).int(m.Value)
	if m.IsNews {
		b.str("Y")
	}
	return b.String()
}

func (m *PlayerElement) String() string {
	s := "SOCPlayerElement:game=" + m.Game +
		"|playerNum=" + strconv.Itoa(m.PlayerNumber) +
		"|actionType=" + elemActionName(m.ActionType) +
		"|elementType=" + strconv.Itoa(m.ElementType) +
		"|value=" + strconv.Itoa(m.Value)
	if m.IsNews {
		s += "|news=Y"
	}
	return s
}

func parsePlayerElement(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	action := fs.nextInt()
	et := fs.nextInt()
	value := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	isNews := false
	if fs.hasMore() {
		isNews = fs.next() == "Y"
	}
	switch action {
	case ElemSetNews:
		action, isNews = ElemSet, true
	case ElemGainNews:
		action, isNews = ElemGain, true
	case ElemLoseNews:
		action, isNews = ElemLose, true
	}
	return &PlayerElement{Game: ga, PlayerNumber: pn, ActionType: action,
		ElementType: et, Value: value, IsNews: isNews}
}

// PlayerElements batches several element updates with one action for one
// player, replacing runs of PlayerElement messages.
type PlayerElements struct {
	Game         string
	PlayerNumber int
	ActionType   int
	ElementTypes []int
	Amounts      []int // parallel to ElementTypes
}

func (m *PlayerElements) Type() int           { return MsgPlayerElements }
func (m *PlayerElements) MinimumVersion() int { return 2000 }
func (m *PlayerElements) GameName() string    { return m.Game }

func (m *PlayerElements) params() []int {
	vs := make([]int, 0, 2+2*len(m.ElementTypes))
	vs = append(vs, m.PlayerNumber, m.ActionType)
	for i, et := range m.ElementTypes {
		vs = append(vs, et, m.Amounts[i])
	}
	return vs
}

func (m *PlayerElements) Command() string {
	return encodeMultiInts(MsgPlayerElements, m.Game, m.params())
}

func (m *PlayerElements) String() string {
	var sb strings.Builder
	sb.WriteString("SOCPlayerElements:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|playerNum=")
	sb.WriteString(strconv.Itoa(m.PlayerNumber))
	sb.WriteString("|actionType=")
	sb.WriteString(elemActionName(m.ActionType))
	sb.WriteByte(sepChar)
	for i, et := range m.ElementTypes {
		if i > 0 {
			sb.WriteByte(sep2Char)
		}
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(et))
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(m.Amounts[i]))
	}
	return sb.String()
}

func parsePlayerElements(parts []string) Message {
	if len(parts) < 5 || len(parts)%2 == 0 {
		return nil
	}
	vs, err := parseIntList(parts[1:])
	if err != nil {
		return nil
	}
	n := (len(vs) - 2) / 2
	msg := &PlayerElements{
		Game:         parts[0],
		PlayerNumber: vs[0],
		ActionType:   vs[1],
		ElementTypes: make([]int, n),
		Amounts:      make([]int, n),
	}
	for i := 0; i < n; i++ {
		msg.ElementTypes[i] = vs[2+2*i]
		msg.Amounts[i] = vs[3+2*i]
	}
	return msg
}

// Game element types for GameElements.
const (
	GERoundCount        = 1
	GEDevCardCount      = 2
	GEFirstPlayer       = 3
	GECurrentPlayer     = 4
	GELargestArmyPlayer = 5
	GELongestRoadPlayer = 6
)

// GameElements batches updates to the game's own numeric state.
type GameElements struct {
	Game         string
	ElementTypes []int
	Values       []int // parallel to ElementTypes
}

func (m *GameElements) Type() int           { return MsgGameElements }
func (m *GameElements) MinimumVersion() int { return 2000 }
func (m *GameElements) GameName() string    { return m.Game }

func (m *GameElements) Command() string {
	vs := make([]int, 0, 2*len(m.ElementTypes))
	for i, et := range m.ElementTypes {
		vs = append(vs, et, m.Values[i])
	}
	return encodeMultiInts(MsgGameElements, m.Game, vs)
}

func (m *GameElements) String() string {
	var sb strings.Builder
	sb.WriteString("SOCGameElements:game=")
	sb.WriteString(m.Game)
	sb.WriteByte(sepChar)
	for i, et := range m.ElementTypes {
		if i > 0 {
			sb.WriteByte(sep2Char)
		}
		sb.WriteByte('e')
		sb.WriteString(strconv.Itoa(et))
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(m.Values[i]))
	}
	return sb.String()
}

func parseGameElements(parts []string) Message {
	if len(parts) < 3 || len(parts)%2 == 0 {
		return nil
	}
	vs, err := parseIntList(parts[1:])
	if err != nil {
		return nil
	}
	n := len(vs) / 2
	msg := &GameElements{
		Game:         parts[0],
		ElementTypes: make([]int, n),
		Values:       make([]int, n),
	}
	for i := 0; i < n; i++ {
		msg.ElementTypes[i] = vs[2*i]
		msg.Values[i] = vs[2*i+1]
	}
	return msg
}

// Stat types for PlayerStats.
const (
	StatsResourceRoll = 1 // amounts gained by dice rolls, per resource
	StatsTrades       = 2
)

// PlayerStats reports one category of a player's stats at game end or on
// request. Values[0] is the stat type; the rest depend on it.
type PlayerStats struct {
	Game   string
	Values []int
}

func (m *PlayerStats) Type() int        { return MsgPlayerStats }
func (m *PlayerStats) GameName() string { return m.Game }

func (m *PlayerStats) MinimumVersion() int {
	if len(m.Values) > 0 && m.Values[0] == StatsTrades {
		return 2600
	}
	return 1109
}

func (m *PlayerStats) Command() string {
	return encodeMultiInts(MsgPlayerStats, m.Game, m.Values)
}

func (m *PlayerStats) String() string {
	return multiIntString("SOCPlayerStats", m.Game, m.Values)
}

func parsePlayerStats(parts []string) Message {
	if len(parts) < 2 {
		return nil
	}
	vs, err := parseIntList(parts[1:])
	if err != nil {
		return nil
	}
	return &PlayerStats{Game: parts[0], Values: vs}
}

// multiIntString is the generic rendering of the int-list kinds:
// "Name:game=ga|p=1|p=0|...".
func multiIntString(kind, game string, vs []int) string {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteString(":game=")
	sb.WriteString(game)
	for _, v := range vs {
		sb.WriteString("|p=")
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// DiceResultResources announces everything gained from a dice roll in one
// message. Encoded as: player count, then per player their number, new
// resource total, and (amount, type) pairs, with a 0 separating players.
type DiceResultResources struct {
	Game       string
	PlayerNums []int
	ResTotals  []int         // parallel to PlayerNums
	Gained     []ResourceSet // parallel to PlayerNums
}

func (m *DiceResultResources) Type() int           { return MsgDiceResultResources }
func (m *DiceResultResources) MinimumVersion() int { return 2000 }
func (m *DiceResultResources) GameName() string    { return m.Game }

func (m *DiceResultResources) params() []int {
	vs := []int{len(m.PlayerNums)}
	for i, pn := range m.PlayerNums {
		if i > 0 {
			vs = append(vs, 0)
		}
		vs = append(vs, pn, m.ResTotals[i])
		for rt := ResMin; rt <= ResWood; rt++ {
			if am := m.Gained[i].Amount(rt); am != 0 {
				vs = append(vs, am, rt)
			}
		}
	}
	return vs
}

func (m *DiceResultResources) Command() string {
	return encodeMultiInts(MsgDiceResultResources, m.Game, m.params())
}

func (m *DiceResultResources) String() string {
	return multiIntString("SOCDiceResultResources", m.Game, m.params())
}

func parseDiceResultResources(parts []string) Message {
	if len(parts) < 2 {
		return nil
	}
	vs, err := parseIntList(parts[1:])
	if err != nil {
		return nil
	}
	plCount := vs[0]
	if plCount < 1 {
		return nil
	}
	msg := &DiceResultResources{Game: parts[0]}
	i := 1
	for p := 0; p < plCount; p++ {
		if i+1 >= len(vs) {
			return nil
		}
		msg.PlayerNums = append(msg.PlayerNums, vs[i])
		msg.ResTotals = append(msg.ResTotals, vs[i+1])
		i += 2
		var rs ResourceSet
		sawPair := false
		for i < len(vs) && vs[i] != 0 {
			if i+1 >= len(vs) {
				return nil
			}
			rs.SetAmount(vs[i+1], rs.Amount(vs[i+1])+vs[i])
			sawPair = true
			i += 2
		}
		if i < len(vs) {
			i++ // 0 separating this player from the next
		}
		if !sawPair {
			return nil
		}
		msg.Gained = append(msg.Gained, rs)
	}
	return msg
}

// Data types for BotGameDataCheck.
const (
	BotCheckResourceAmounts = 1
)

// BotGameDataCheck asks robot clients to verify their tracked game data
// against the server's, to catch bot-side desync during testing.
type BotGameDataCheck struct {
	Game     string
	DataType int
	Values   []int
}

func (m *BotGameDataCheck) Type() int           { return MsgBotGameDataCheck }
func (m *BotGameDataCheck) MinimumVersion() int { return 2500 }
func (m *BotGameDataCheck) GameName() string    { return m.Game }

func (m *BotGameDataCheck) Command() string {
	return encodeMultiInts(MsgBotGameDataCheck, m.Game, append([]int{m.DataType}, m.Values...))
}

func (m *BotGameDataCheck) String() string {
	return multiIntString("SOCBotGameDataCheck", m.Game, append([]int{m.DataType}, m.Values...))
}

func parseBotGameDataCheck(parts []string) Message {
	if len(parts) < 3 {
		return nil
	}
	vs, err := parseIntList(parts[1:])
	if err != nil {
		return nil
	}
	return &BotGameDataCheck{Game: parts[0], DataType: vs[0], Values: vs[1:]}
}
