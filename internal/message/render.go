package message

import (
	"fmt"
	"strconv"
	"strings"
)

// Round-trip parsing of String() renderings, used by log readers and the
// trace replay tools. A rendering is "SOCKindName:field=value|field=value";
// ParseRendering strips the field labels back off and feeds the result to
// the same parse functions the wire decoder uses.

// renderRenames maps kind names written by old versions to their current
// names. Old logs stay readable after a kind is renamed.
var renderRenames = map[string]string{
	"SOCBuyCardRequest":       "SOCBuyDevCardRequest",
	"SOCDevCard":              "SOCDevCardAction",
	"SOCDiscoveryPick":        "SOCPickResources",
	"SOCJoin":                 "SOCJoinChannel",
	"SOCJoinAuth":             "SOCJoinChannelAuth",
	"SOCLeave":                "SOCLeaveChannel",
	"SOCMembers":              "SOCChannelMembers",
	"SOCMonopolyPick":         "SOCPickResourceType",
	"SOCRobotJoinGameRequest": "SOCBotJoinGameRequest",
	"SOCTextMsg":              "SOCChannelTextMsg",
}

var kindsByName = make(map[string]int, len(kinds))

func init() {
	for id, k := range kinds {
		kindsByName[k.name] = id
	}
}

// ParseRendering parses the output of a message's String method back into
// the message. Kind names used before a rename are accepted. Returns an
// error when the kind is unknown or the rendering can't be reconstructed;
// a few kinds render fields in a form their parser can't read back, and
// those also error here.
func ParseRendering(text string) (Message, error) {
	ci := strings.IndexByte(text, ':')
	if ci <= 0 {
		return nil, fmt.Errorf("message: rendering has no kind name: %q", text)
	}
	name, body := text[:ci], text[ci+1:]
	if cur, ok := renderRenames[name]; ok {
		name = cur
	}
	id, ok := kindsByName[name]
	if !ok {
		return nil, fmt.Errorf("message: unknown kind %q", name)
	}
	info := kinds[id]

	stripped := ""
	if strip, ok := stripOverrides[id]; ok {
		s, ok := strip(body)
		if !ok {
			return nil, fmt.Errorf("message: malformed %s rendering", name)
		}
		stripped = s
	} else {
		stripped = stripAttribs(body)
	}

	var msg Message
	if info.parseMulti != nil {
		var parts []string
		for _, tok := range strings.Split(stripped, string(sep2Char)) {
			if tok != "" {
				parts = append(parts, tok)
			}
		}
		msg = info.parseMulti(parts)
	} else {
		msg = info.parse(stripped)
	}
	if msg == nil {
		return nil, fmt.Errorf("message: cannot parse %s rendering", name)
	}
	return msg, nil
}

// stripAttribsToList splits a rendering body on sep and removes each
// field's label through its first '='. Fields without '=' are kept whole.
func stripAttribsToList(body string) []string {
	parts := strings.Split(body, string(sepChar))
	for i, p := range parts {
		if eq := strings.IndexByte(p, '='); eq != -1 {
			parts[i] = p[eq+1:]
		}
	}
	return parts
}

// stripAttribs is the generic label strip: sep-delimited labeled fields
// become a sep2-delimited parse body. No trailing separator; parsers that
// read the remainder as free text must not absorb one.
func stripAttribs(body string) string {
	return strings.Join(stripAttribsToList(body), sep2)
}

// stripOverrides holds the kinds whose renderings need more than the
// generic label strip, usually because String writes a coordinate in hex
// or reshapes a list.
var stripOverrides = map[int]func(body string) (string, bool){
	MsgDebugFreePlace: stripDebugFreePlace,
	MsgGameMembers:    func(body string) (string, bool) { return stripMemberList("game=", body) },
	MsgGameServerText: stripGameServerText,
	MsgJoinChannel:    stripJoin,
	MsgJoinGame:       stripJoin,
	MsgLastSettlement: stripLastSettlement,
	MsgPickResources:  stripPickResources,
	MsgReportRobbery:  stripReportRobbery,
	MsgSetLastAction:  stripSetLastAction,
	MsgSetSpecialItem: stripSetSpecialItem,
	MsgUndoPutPiece:   stripUndoPutPiece,
}

// stripJoin turns the "|password empty|" rendering back into the empty
// string placeholder before the generic strip.
func stripJoin(body string) (string, bool) {
	if i := strings.Index(body, "|password empty|host="); i > 0 {
		body = body[:i+1] + EmptyStr + body[i+15:]
	}
	return stripAttribs(body), true
}

// stripMemberList handles "name|members=[a, b, c]" and the older
// unbracketed "name|members=a,b,c" form.
func stripMemberList(prefix, body string) (string, bool) {
	if !strings.HasPrefix(body, prefix) {
		return "", false
	}
	l := len(body)
	pipeIdx := strings.IndexByte(body, sepChar)
	if pipeIdx <= 0 || pipeIdx >= l-11 {
		return "", false
	}
	if body[pipeIdx+1:pipeIdx+9] != "members=" {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString(body[len(prefix):pipeIdx])

	if body[pipeIdx+9] != '[' {
		// old form, already comma-separated
		sb.WriteByte(sep2Char)
		sb.WriteString(body[pipeIdx+9:])
		return sb.String(), true
	}
	if body[l-1] != ']' {
		return "", false
	}
	// drop the brackets and change ", " back to ","
	prev := pipeIdx + 8
	for {
		next := strings.Index(body[prev+2:], ", ")
		if next == -1 {
			break
		}
		next += prev + 2
		sb.WriteByte(sep2Char)
		sb.WriteString(body[prev+2 : next])
		prev = next
	}
	sb.WriteByte(sep2Char)
	sb.WriteString(body[prev+2 : l-1])
	return sb.String(), true
}

// stripGameServerText rebuilds the game-name delimiter this kind uses
// instead of ordinary fields.
func stripGameServerText(body string) (string, bool) {
	if !strings.HasPrefix(body, "game=") {
		return body, true
	}
	i := strings.Index(body, "|text=")
	if i <= 0 {
		return body, true
	}
	return body[5:i] + unlikelyChar1 + body[i+6:], true
}

func stripPickResources(body string) (string, bool) {
	return stripAttribs(strings.ReplaceAll(body, "resources=", "")), true
}

// stripHexPieces re-reads pieces[idx] as hex, optionally skipping a "0x"
// prefix, and keeps the first n pieces.
func stripHexPieces(body string, idx, n int, skip0x bool) (string, bool) {
	pieces := stripAttribsToList(body)
	if len(pieces) < n || idx >= n {
		return "", false
	}
	h := pieces[idx]
	if skip0x {
		if !strings.HasPrefix(h, "0x") {
			return "", false
		}
		h = h[2:]
	}
	v, err := strconv.ParseInt(h, 16, 32)
	if err != nil {
		return "", false
	}
	pieces[idx] = strconv.Itoa(int(v))

	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(pieces[i])
		sb.WriteByte(sep2Char)
	}
	return sb.String(), true
}

func stripDebugFreePlace(body string) (string, bool) {
	return stripHexPieces(body, 3, 4, true)
}

func stripUndoPutPiece(body string) (string, bool) {
	return stripHexPieces(body, 3, 4, false)
}

func stripLastSettlement(body string) (string, bool) {
	pieces := stripAttribsToList(body)
	if len(pieces) < 3 {
		return "", false
	}
	v, err := strconv.ParseInt(pieces[2], 16, 32)
	if err != nil {
		return "", false
	}
	pieces[2] = strconv.Itoa(int(v))
	return strings.Join(pieces, string(sep2Char)) + string(sep2Char), true
}

// stripReportRobbery reinserts the loot form marker and converts the loot
// fields back to wire shape. The rendering marks the form by which label
// it used.
func stripReportRobbery(body string) (string, bool) {
	isPE := strings.Contains(body, "|peType=")
	isResSet := !isPE && strings.Contains(body, "|resSet=")
	extraSkipsVictim := strings.Contains(body, "|extraValue=") &&
		!strings.Contains(body, "|victimAmount=")

	pieces := stripAttribsToList(body)
	if len(pieces) < 6 {
		return "", false
	}

	form := "R"
	if isResSet {
		form = "S"
	} else if isPE {
		form = "E"
	}
	np := make([]string, 0, len(pieces)+1)
	np = append(np, pieces[:3]...)
	np = append(np, form)
	np = append(np, pieces[3:]...)
	pieces = np

	boolIdx := 6
	if isPE {
		v, ok := peTypeValue(pieces[4])
		if !ok {
			v = 0
		}
		pieces[4] = strconv.Itoa(v)
	} else if isResSet {
		// pieces[4..9] are the six amounts, clay through unknown; the
		// first kept its "clay=" label since resSet= consumed the strip.
		// Rebuild as rtype,amount pairs for the nonzero known amounts.
		if len(pieces) < 11 {
			return "", false
		}
		var resPairs []string
		for i, rtype := 4, ResClay; i <= 8; i, rtype = i+1, rtype+1 {
			s := strings.TrimPrefix(pieces[i], "clay=")
			amt, err := strconv.Atoi(s)
			if err != nil || amt == 0 {
				continue
			}
			resPairs = append(resPairs, strconv.Itoa(rtype), strconv.Itoa(amt))
		}
		np = make([]string, 0, 4+len(resPairs)+len(pieces)-10)
		np = append(np, pieces[:4]...)
		np = append(np, resPairs...)
		np = append(np, pieces[10:]...)
		pieces = np
		boolIdx = 4 + len(resPairs)
	}

	if boolIdx >= len(pieces) {
		return "", false
	}
	if pieces[boolIdx] == "true" {
		pieces[boolIdx] = "T"
	} else {
		pieces[boolIdx] = "F"
	}

	if extraSkipsVictim {
		// the rendering skipped victimAmount=0 before extraValue
		last := pieces[len(pieces)-1]
		pieces = append(pieces[:len(pieces)-1], "0", last)
	}

	return strings.Join(pieces, string(sep2Char)), true
}

// stripSetLastAction rewrites the bracketed resource sets as R1/R2 groups
// and the symbolic action type back to its number.
func stripSetLastAction(body string) (string, bool) {
	body = strings.ReplaceAll(body, "|rs1=[", "|R1|")
	body = strings.ReplaceAll(body, "|rs2=[", "|R2|")
	body = strings.ReplaceAll(body, "|unknown=0]", "")

	start := strings.Index(body, "|actType=")
	if start == -1 {
		return "", false
	}
	start += 9
	end := strings.IndexByte(body[start:], sepChar)
	if end == -1 || end <= 1 {
		return "", false
	}
	end += start
	ident := body[start:end]
	if ident[0] < '0' || ident[0] > '9' {
		v, ok := actionTypeValue(ident)
		if !ok {
			v = ActionUnknown
		}
		body = body[:start-8] + strconv.Itoa(v) + body[end:]
	}
	return stripAttribs(body), true
}

func stripSetSpecialItem(body string) (string, bool) {
	svNull := strings.HasSuffix(body, "|sv null")
	if !svNull && !strings.Contains(body, "|sv=") {
		return "", false
	}
	pieces := stripAttribsToList(body)
	if len(pieces) != 9 {
		return "", false
	}

	op := 0
	for i := 1; i < len(specialItemOps); i++ {
		if specialItemOps[i] == pieces[1] {
			op = i
			break
		}
	}
	if op == 0 {
		return "", false
	}
	pieces[1] = strconv.Itoa(op)

	var sb strings.Builder
	for i := 0; i < 8; i++ {
		sb.WriteString(pieces[i])
		sb.WriteByte(sep2Char)
	}
	if svNull {
		sb.WriteString(EmptyStr)
	} else {
		sb.WriteString(pieces[8])
	}
	return sb.String(), true
}
