package message

import (
	"fmt"
	"strconv"
	"strings"
)

// StatusMessage reports the result of a client request, or informational
// server text outside any game. The numeric status value was added in
// 1.1.06; older clients get text only, and newer status values fall back
// to older ones via StatusFallbackForVersion.

// Status values. Numeric values are fixed; new ones are only appended.
const (
	SVOK                       = 0
	SVNotOKGeneric             = 1
	SVNameNotFound             = 2
	SVPWWrong                  = 3
	SVNameInUse                = 4
	SVCantJoinGameVersion      = 5
	SVProblemWithDB            = 6
	SVAcctCreatedOK            = 7
	SVAcctNotCreatedErr        = 8
	SVNewGameOptionUnknown     = 9
	SVNewGameOptionValueTooNew = 10
	SVNewGameAlreadyExists     = 11
	SVNewGameNameRejected      = 12
	SVNewGameNameTooLong       = 13
	SVNewGameTooManyCreated    = 14
	SVNewChannelTooManyCreated = 15
	SVPWRequired               = 16
	SVAcctNotCreatedDenied     = 17
	SVAcctCreatedOKFirstOne    = 18
	SVNameNotAllowed           = 19
	SVOKSetNickname            = 20
	SVOKDebugModeOn            = 21
)

// StatusMessage carries a status value and its text. Value 0 is omitted
// from the wire.
type StatusMessage struct {
	Value  int
	Status string
}

func (m *StatusMessage) Type() int { return MsgStatusMessage }

func (m *StatusMessage) MinimumVersion() int {
	if m.Value > 0 {
		return 1106
	}
	return 1000
}

func (m *StatusMessage) Command() string {
	b := newCmd(MsgStatusMessage)
	if m.Value > 0 {
		b.int(m.Value)
	}
	return b.str(m.Status).String()
}

func (m *StatusMessage) String() string {
	var sb strings.Builder
	sb.WriteString("SOCStatusMessage:")
	if m.Value > 0 {
		sb.WriteString("sv=")
		sb.WriteString(strconv.Itoa(m.Value))
		sb.WriteByte(sepChar)
	}
	sb.WriteString("status=")
	sb.WriteString(m.Status)
	return sb.String()
}

func parseStatusMessage(body string) Message {
	sv := 0
	if i := strings.IndexByte(body, sep2Char); i != -1 {
		if i == 0 {
			// garbled: starts with the separator
			return nil
		}
		v, err := strconv.Atoi(body[:i])
		if err == nil {
			if v < 0 {
				v = 0
			}
			sv = v
			body = body[i+1:]
		}
		// non-numeric prefix: keep the whole string as text
	}
	return &StatusMessage{Value: sv, Status: body}
}

// StatusValidAtVersion reports whether the given client version knows the
// status value.
func StatusValidAtVersion(sv, cliVersion int) bool {
	switch cliVersion {
	case 1106:
		return sv <= SVAcctNotCreatedErr
	case 1107, 1108, 1109:
		return sv <= SVNewGameNameTooLong
	case 1110:
		return sv <= SVNewChannelTooManyCreated
	case 1119:
		return sv <= SVAcctNotCreatedDenied
	case 1120:
		return sv <= SVAcctCreatedOKFirstOne
	case 1200:
		return sv <= SVOKSetNickname
	default:
		switch {
		case cliVersion < 1106:
			return sv == SVOK
		case cliVersion < 1119:
			return sv < SVPWRequired
		case cliVersion < 1200:
			return sv <= SVAcctCreatedOKFirstOne
		case cliVersion < 2000:
			return sv < SVOKDebugModeOn
		default:
			return sv <= SVOKDebugModeOn
		}
	}
}

// StatusFallbackForVersion maps a status value the client is too old to
// know onto one it does know. Values with no meaningful equivalent return
// an error; the caller should send a different message instead.
func StatusFallbackForVersion(sv, cliVersion int) (int, error) {
	for !StatusValidAtVersion(sv, cliVersion) {
		switch sv {
		case SVOKDebugModeOn:
			sv = SVOK
		case SVPWRequired:
			sv = SVPWWrong
		case SVAcctCreatedOKFirstOne:
			sv = SVAcctCreatedOK
		case SVOKSetNickname:
			return 0, fmt.Errorf("no fallback for sv %d at client v%d", sv, cliVersion)
		default:
			if cliVersion >= 1106 {
				sv = SVNotOKGeneric
			} else {
				sv = SVOK
			}
		}
	}
	return sv, nil
}
