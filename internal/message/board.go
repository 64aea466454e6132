package message

import (
	"sort"
	"strconv"
	"strings"
)

// Board layout kinds. The classic layout predates the keyed layout and
// keeps two quirks for compatibility with old clients: hex land types for
// water and desert swap values on the wire, and dice numbers travel as
// 0-9 lookup indexes instead of the rolled values.

// Hex land types as the game code uses them.
const (
	HexWater  = 0
	HexDesert = 6
)

// Hex land types as sent on the wire.
const (
	sentHexWater  = 6
	sentHexDesert = 0
)

// boardHexes is the classic 4-player board's hex count.
const boardHexes = 37

// diceToSent maps a rolled dice value (index 2-12, 7 unused) to its wire
// encoding; -1 means no number.
var diceToSent = [13]int{-1, -1, 0, 1, 2, 3, 4, -1, 5, 6, 7, 8, 9}

// sentToDice maps the wire encoding back to the rolled value.
var sentToDice = [10]int{2, 3, 4, 5, 6, 8, 9, 10, 11, 12}

func mapHexToSent(h int) int {
	switch h {
	case HexWater:
		return sentHexWater
	case HexDesert:
		return sentHexDesert
	default:
		return h
	}
}

func mapHexFromSent(h int) int {
	switch h {
	case sentHexWater:
		return HexWater
	case sentHexDesert:
		return HexDesert
	default:
		return h
	}
}

// intArrayString formats vals like "{ 1 2 3 }"; in hex mode each value is
// lowercase hex with a leading '-' when negative.
func intArrayString(vals []int, hex bool) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for _, v := range vals {
		sb.WriteByte(' ')
		if hex {
			sb.WriteString(formatHex(v))
		} else {
			sb.WriteString(strconv.Itoa(v))
		}
	}
	sb.WriteString(" }")
	return sb.String()
}

// BoardLayout carries the classic 4-player board: hex layout, dice number
// layout, and the robber's hex. HexLayout and NumberLayout hold the wire
// encodings; use NewBoardLayout and the Board accessors for game values.
type BoardLayout struct {
	Game         string
	HexLayout    [boardHexes]int
	NumberLayout [boardHexes]int
	RobberHex    int
}

// NewBoardLayout maps the game-range hex and dice values into their wire
// encodings.
func NewBoardLayout(ga string, hl, nl [boardHexes]int, robberHex int) *BoardLayout {
	m := &BoardLayout{Game: ga, RobberHex: robberHex}
	for i, h := range hl {
		m.HexLayout[i] = mapHexToSent(h)
	}
	for i, n := range nl {
		if n >= 0 && n < len(diceToSent) {
			n = diceToSent[n]
		}
		m.NumberLayout[i] = n
	}
	return m
}

// BoardHexLayout returns the hex layout in the game code's value range.
func (m *BoardLayout) BoardHexLayout() [boardHexes]int {
	var hl [boardHexes]int
	for i, h := range m.HexLayout {
		hl[i] = mapHexFromSent(h)
	}
	return hl
}

// BoardNumberLayout returns the dice numbers as rolled values; hexes
// without a number become 0.
func (m *BoardLayout) BoardNumberLayout() [boardHexes]int {
	var nl [boardHexes]int
	for i, n := range m.NumberLayout {
		if n >= 0 && n < len(sentToDice) {
			nl[i] = sentToDice[n]
		} else {
			nl[i] = 0
		}
	}
	return nl
}

func (m *BoardLayout) Type() int           { return MsgBoardLayout }
func (m *BoardLayout) MinimumVersion() int { return 1000 }
func (m *BoardLayout) GameName() string    { return m.Game }

func (m *BoardLayout) Command() string {
	b := newCmd(MsgBoardLayout).str(m.Game)
	for _, h := range m.HexLayout {
		b.int(h)
	}
	for _, n := range m.NumberLayout {
		b.int(n)
	}
	b.int(m.RobberHex)
	return b.String()
}

func (m *BoardLayout) String() string {
	return "SOCBoardLayout:game=" + m.Game +
		"|hexLayout=" + intArrayString(m.HexLayout[:], false) +
		"|numberLayout=" + intArrayString(m.NumberLayout[:], false) +
		"|robberHex=0x" + formatHex(m.RobberHex)
}

func parseBoardLayout(body string) Message {
	fs := newFieldScanner(body)
	m := &BoardLayout{Game: fs.next()}
	for i := range m.HexLayout {
		m.HexLayout[i] = fs.nextInt()
	}
	for i := range m.NumberLayout {
		m.NumberLayout[i] = fs.nextInt()
	}
	m.RobberHex = fs.nextInt()
	if fs.err != nil {
		return nil
	}
	return m
}

// Layout part keys with defined meanings; anything else is an added part
// from a scenario.
var boardLayout2KnownKeys = []string{"HL", "NL", "RH", "PL", "LH", "PH", "PX", "RX", "CV"}

// BoardLayout2 carries any board encoding as named layout parts, each an
// int array or a scalar. The "HL" part uses the same wire mapping as
// BoardLayout. Parts are written in sorted key order so output is stable.
type BoardLayout2 struct {
	Game     string
	Encoding int
	IntParts map[string][]int
	Scalars  map[string]string
}

// NewBoardLayout2 maps the "HL" part's game-range hex values into their
// wire encodings, like NewBoardLayout does for the classic layout. Other
// parts are copied as given.
func NewBoardLayout2(ga string, encoding int, intParts map[string][]int, scalars map[string]string) *BoardLayout2 {
	m := &BoardLayout2{Game: ga, Encoding: encoding,
		IntParts: make(map[string][]int, len(intParts)), Scalars: make(map[string]string, len(scalars))}
	for key, part := range intParts {
		if key == "HL" {
			hl := make([]int, len(part))
			for i, h := range part {
				hl[i] = mapHexToSent(h)
			}
			part = hl
		}
		m.IntParts[key] = part
	}
	for key, val := range scalars {
		m.Scalars[key] = val
	}
	return m
}

func (m *BoardLayout2) Type() int           { return MsgBoardLayout2 }
func (m *BoardLayout2) MinimumVersion() int { return 1108 }
func (m *BoardLayout2) GameName() string    { return m.Game }

// IntArrayPart returns the named part, unmapping "HL" back to the game's
// hex value range. Returns nil if absent.
func (m *BoardLayout2) IntArrayPart(key string) []int {
	part := m.IntParts[key]
	if key != "HL" || part == nil {
		return part
	}
	hl := make([]int, len(part))
	for i, h := range part {
		hl[i] = mapHexFromSent(h)
	}
	return hl
}

// IntPart returns the named scalar part, or 0 if absent or non-numeric.
func (m *BoardLayout2) IntPart(key string) int {
	v, err := strconv.Atoi(m.Scalars[key])
	if err != nil {
		return 0
	}
	return v
}

// AddedParts returns the int-array parts whose keys are not known layout
// part names, or nil if there are none.
func (m *BoardLayout2) AddedParts() map[string][]int {
	var added map[string][]int
	for key, part := range m.IntParts {
		known := false
		for _, k := range boardLayout2KnownKeys {
			if key == k {
				known = true
				break
			}
		}
		if !known {
			if added == nil {
				added = make(map[string][]int)
			}
			added[key] = part
		}
	}
	return added
}

func (m *BoardLayout2) sortedKeys() []string {
	keys := make([]string, 0, len(m.IntParts)+len(m.Scalars))
	for k := range m.IntParts {
		keys = append(keys, k)
	}
	for k := range m.Scalars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *BoardLayout2) Command() string {
	b := newCmd(MsgBoardLayout2).str(m.Game).int(m.Encoding)
	for _, key := range m.sortedKeys() {
		b.str(key)
		if part, ok := m.IntParts[key]; ok {
			b.str("[" + strconv.Itoa(len(part)))
			for _, v := range part {
				b.int(v)
			}
		} else {
			b.str(m.Scalars[key])
		}
	}
	return b.String()
}

func (m *BoardLayout2) String() string {
	var sb strings.Builder
	sb.WriteString("SOCBoardLayout2:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|bef=")
	sb.WriteString(strconv.Itoa(m.Encoding))
	for _, key := range m.sortedKeys() {
		sb.WriteByte('|')
		sb.WriteString(key)
		sb.WriteByte('=')
		if part, ok := m.IntParts[key]; ok {
			sb.WriteString(intArrayString(part, key != "HL" && key != "NL"))
		} else {
			sb.WriteString(m.Scalars[key])
		}
	}
	return sb.String()
}

func parseBoardLayout2(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	bef := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	m := &BoardLayout2{Game: ga, Encoding: bef,
		IntParts: make(map[string][]int), Scalars: make(map[string]string)}
	for fs.hasMore() {
		key := fs.next()
		val := fs.next()
		if fs.err != nil {
			return nil
		}
		if strings.HasPrefix(val, "[") {
			n, err := strconv.Atoi(val[1:])
			if err != nil || n < 0 {
				return nil
			}
			part := make([]int, n)
			for i := range part {
				part[i] = fs.nextInt()
			}
			if fs.err != nil {
				return nil
			}
			m.IntParts[key] = part
		} else {
			m.Scalars[key] = val
		}
	}
	return m
}

// PotentialSettlements tells a client where settlements may be placed.
// The simple form lists node coordinates for one player. The land-areas
// form (sea board) also carries each land area's legal nodes and the
// legal sea edges per player; player number -1 with the land-areas form
// addresses all players.
type PotentialSettlements struct {
	Game         string
	PlayerNumber int
	PSNodes      []int

	// Land-areas form; LandAreas is nil for the simple form. Index 0 is
	// unused, and the starting area's entry duplicates PSNodes. A
	// StartingLandArea of 0 means the nodes apply board-wide and no
	// area's entry duplicates them.
	StartingLandArea int
	LandAreas        [][]int
	LegalSeaEdges    [][]int
}

func (m *PotentialSettlements) Type() int        { return MsgPotentialSettlements }
func (m *PotentialSettlements) GameName() string { return m.Game }

func (m *PotentialSettlements) MinimumVersion() int {
	if m.PlayerNumber == -1 || m.LandAreas != nil {
		return 2000
	}
	return 1000
}

func (m *PotentialSettlements) Command() string {
	b := newCmd(MsgPotentialSettlements).str(m.Game).int(m.PlayerNumber)
	if m.LandAreas == nil {
		b.ints(m.PSNodes)
		return b.String()
	}
	b.ints(m.PSNodes)
	b.str("NA").int(len(m.LandAreas) - 1)
	b.str("PAN").int(m.StartingLandArea)
	for i := 1; i < len(m.LandAreas); i++ {
		if i == m.StartingLandArea {
			continue
		}
		b.str("LA" + strconv.Itoa(i))
		b.ints(m.LandAreas[i])
	}
	for i, edges := range m.LegalSeaEdges {
		b.str("SE")
		if len(edges) == 0 && i == len(m.LegalSeaEdges)-1 {
			// pad the trailing empty list so it isn't lost
			b.int(0)
		} else {
			for _, e := range edges {
				b.hex(e)
			}
		}
	}
	return b.String()
}

func (m *PotentialSettlements) String() string {
	var sb strings.Builder
	sb.WriteString("SOCPotentialSettlements:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|playerNum=")
	sb.WriteString(strconv.Itoa(m.PlayerNumber))
	sb.WriteString("|list=")
	for _, n := range m.PSNodes {
		sb.WriteString(formatHex(n))
		sb.WriteByte(' ')
	}
	if m.LandAreas != nil {
		sb.WriteString("|pan=")
		sb.WriteString(strconv.Itoa(m.StartingLandArea))
		for i := 1; i < len(m.LandAreas); i++ {
			sb.WriteString("|la")
			sb.WriteString(strconv.Itoa(i))
			sb.WriteByte('=')
			if i == m.StartingLandArea {
				sb.WriteString("(psList)")
				continue
			}
			for _, n := range m.LandAreas[i] {
				sb.WriteString(formatHex(n))
				sb.WriteByte(' ')
			}
		}
	}
	if m.LegalSeaEdges != nil {
		sb.WriteString("|lse={")
		for i, edges := range m.LegalSeaEdges {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteByte('{')
			for j, e := range edges {
				if e < 0 {
					// a negative value closes a range, rendered "a-b"
					sb.WriteByte('-')
					e = -e
				} else if j > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(formatHex(e))
			}
			sb.WriteByte('}')
		}
		sb.WriteByte('}')
	}
	return sb.String()
}

func parsePotentialSettlements(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	m := &PotentialSettlements{Game: ga, PlayerNumber: pn}
	hadNA := false
	for fs.hasMore() {
		tok := fs.next()
		if tok == "NA" {
			hadNA = true
			break
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			return nil
		}
		m.PSNodes = append(m.PSNodes, n)
	}
	if !hadNA {
		return m
	}

	numArea := fs.nextInt()
	if fs.next() != "PAN" {
		return nil
	}
	pan := fs.nextInt()
	if fs.err != nil || numArea < 1 || pan < 0 || pan > numArea {
		return nil
	}
	m.StartingLandArea = pan
	m.LandAreas = make([][]int, numArea+1)

	var tok string
	if fs.hasMore() {
		tok = fs.next()
	} else if numArea > 1 || pan != 1 {
		return nil
	}
	for tok != "" && tok != "SE" {
		if !strings.HasPrefix(tok, "LA") {
			return nil
		}
		areaNum, err := strconv.Atoi(tok[2:])
		if err != nil || areaNum < 1 || areaNum > numArea {
			return nil
		}
		nodes := []int{}
		tok = ""
		for fs.hasMore() {
			tok = fs.next()
			if strings.HasPrefix(tok, "LA") || tok == "SE" {
				break
			}
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil
			}
			nodes = append(nodes, n)
			tok = ""
		}
		m.LandAreas[areaNum] = nodes
	}
	for tok == "SE" {
		edges := []int{}
		tok = ""
		for fs.hasMore() {
			etok := fs.next()
			if etok == "SE" {
				tok = "SE"
				break
			}
			e, err := parseHex(etok)
			if err != nil {
				return nil
			}
			if e != 0 {
				// 0 pads a trailing empty list
				edges = append(edges, e)
			}
		}
		m.LegalSeaEdges = append(m.LegalSeaEdges, edges)
	}

	if pan > 0 {
		if m.LandAreas[pan] != nil {
			return nil
		}
		m.LandAreas[pan] = append([]int{}, m.PSNodes...)
	}
	for i := 1; i <= numArea; i++ {
		if m.LandAreas[i] == nil {
			return nil
		}
	}
	return m
}

// LegalEdges tells a client which edges are legal for a player's roads or
// ships on the sea board.
type LegalEdges struct {
	Game          string
	PlayerNumber  int
	EdgesAreShips bool
	Edges         []int
}

func (m *LegalEdges) Type() int           { return MsgLegalEdges }
func (m *LegalEdges) MinimumVersion() int { return 2000 }
func (m *LegalEdges) GameName() string    { return m.Game }

func (m *LegalEdges) Command() string {
	b := newCmd(MsgLegalEdges).str(m.Game).int(m.PlayerNumber)
	if m.EdgesAreShips {
		b.str("t")
	} else {
		b.str("f")
	}
	for _, e := range m.Edges {
		b.hex(e)
	}
	return b.String()
}

func (m *LegalEdges) String() string {
	var sb strings.Builder
	sb.WriteString("SOCLegalEdges:game=")
	sb.WriteString(m.Game)
	sb.WriteString("|playerNum=")
	sb.WriteString(strconv.Itoa(m.PlayerNumber))
	sb.WriteString("|areShips=")
	sb.WriteString(strconv.FormatBool(m.EdgesAreShips))
	sb.WriteString("|list=")
	for _, e := range m.Edges {
		sb.WriteString(formatHex(e))
		sb.WriteByte(' ')
	}
	return sb.String()
}

func parseLegalEdges(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	pn := fs.nextInt()
	ships := fs.next()
	if fs.err != nil {
		return nil
	}
	m := &LegalEdges{Game: ga, PlayerNumber: pn, EdgesAreShips: ships == "t"}
	for fs.hasMore() {
		m.Edges = append(m.Edges, fs.nextHex())
	}
	if fs.err != nil {
		return nil
	}
	return m
}
