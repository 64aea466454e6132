package message

import (
	"strconv"
	"strings"
)

// Localization kinds: localized string lists and scenario metadata. Both
// join their fields with sep instead of sep2 so the text may contain
// commas.

// String types for LocalizedStrings.
const (
	LocStrTypeGameOpt  = "O"
	LocStrTypeScenario = "S"
)

// Flags for LocalizedStrings.
const (
	LocStrFlagTypeUnknown = 0x01
	LocStrFlagReqAll      = 0x02
	LocStrFlagSentAll     = 0x04
)

// MarkerKeyUnknown in a reply's key position means the server does not
// know the item the client asked about.
const MarkerKeyUnknown = GameNone + "K"

// LocalizedStrings requests or carries localized text for game options or
// scenarios. A request lists keys; a reply lists key/text pairs, with
// MarkerKeyUnknown in place of text for unknown keys.
type LocalizedStrings struct {
	StringType string
	Flags      int
	Strings    []string
}

func (m *LocalizedStrings) Type() int           { return MsgLocalizedStrings }
func (m *LocalizedStrings) MinimumVersion() int { return 2000 }

// IsFlagSet reports whether the given LocStrFlag bit is set.
func (m *LocalizedStrings) IsFlagSet(flag int) bool {
	return m.Flags&flag != 0
}

func (m *LocalizedStrings) Command() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(MsgLocalizedStrings))
	sb.WriteByte(sepChar)
	sb.WriteString(m.StringType)
	sb.WriteByte(sepChar)
	sb.WriteString(formatHex(m.Flags))
	for _, s := range m.Strings {
		sb.WriteByte(sepChar)
		if s == "" {
			sb.WriteString(EmptyStr)
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

func (m *LocalizedStrings) String() string {
	var sb strings.Builder
	sb.WriteString("SOCLocalizedStrings:type=")
	sb.WriteString(m.StringType)
	sb.WriteString("|flags=0x")
	sb.WriteString(formatHex(m.Flags))
	if len(m.Strings) == 0 {
		sb.WriteString("|(strs empty)")
	} else {
		sb.WriteString("|strs=")
		sb.WriteString(strings.Join(m.Strings, sep))
	}
	return sb.String()
}

func parseLocalizedStrings(parts []string) Message {
	if len(parts) < 2 {
		return nil
	}
	flags, err := parseHex(parts[1])
	if err != nil {
		return nil
	}
	var strs []string
	if len(parts) > 2 {
		strs = parts[2:]
		unmapEmptyStrs(strs)
	}
	return &LocalizedStrings{StringType: parts[0], Flags: flags, Strings: strs}
}

// Markers used by ScenarioInfo.
const (
	// MarkerAnyChanged in a client request asks about all scenarios
	// changed since the client's version.
	MarkerAnyChanged = "?"

	// MarkerNoMoreScens is the key of the server's final reply.
	MarkerNoMoreScens = "-"

	// MarkerScenKeyUnknown in the lastModVersion position means the
	// server does not know the requested scenario.
	MarkerScenKeyUnknown = -2
)

// ScenarioInfo is either a client request for scenario metadata, when
// RequestKeys or AnyChanged is set, or one scenario's metadata in reply.
// The final reply has Key "-" and NoMoreScenarios set.
type ScenarioInfo struct {
	// Client request form.
	RequestKeys []string
	AnyChanged  bool

	// Server reply form.
	Key             string
	MinVersion      int
	LastModVersion  int
	Options         string
	Description     string
	LongDescription string
	IsKeyUnknown    bool
	NoMoreScenarios bool
}

func (m *ScenarioInfo) Type() int           { return MsgScenarioInfo }
func (m *ScenarioInfo) MinimumVersion() int { return 2000 }

func (m *ScenarioInfo) isRequest() bool {
	return m.RequestKeys != nil || m.AnyChanged
}

func (m *ScenarioInfo) params() []string {
	if m.isRequest() {
		ps := append([]string{}, m.RequestKeys...)
		if m.AnyChanged {
			ps = append(ps, MarkerAnyChanged)
		}
		return ps
	}
	if m.NoMoreScenarios {
		return []string{MarkerNoMoreScens, "", "", "", ""}
	}
	if m.IsKeyUnknown {
		return []string{m.Key, "0", strconv.Itoa(MarkerScenKeyUnknown), "", ""}
	}
	ps := []string{m.Key, strconv.Itoa(m.MinVersion), strconv.Itoa(m.LastModVersion),
		m.Options, m.Description}
	if m.LongDescription != "" {
		ps = append(ps, m.LongDescription)
	}
	return ps
}

func (m *ScenarioInfo) Command() string {
	game := ""
	if m.isRequest() {
		game = GameNone
	}
	return encodeMultiStrs(MsgScenarioInfo, game, m.params())
}

func (m *ScenarioInfo) String() string {
	var sb strings.Builder
	sb.WriteString("SOCScenarioInfo")
	if m.isRequest() {
		sb.WriteString(":game=")
		sb.WriteString(GameNone)
	}
	for _, p := range m.params() {
		sb.WriteString("|p=")
		sb.WriteString(p)
	}
	return sb.String()
}

func parseScenarioInfo(parts []string) Message {
	if len(parts) < 2 {
		return nil
	}
	unmapEmptyStrs(parts)
	if parts[0] == GameNone {
		m := &ScenarioInfo{}
		for _, k := range parts[1:] {
			if k == MarkerAnyChanged {
				m.AnyChanged = true
			} else {
				m.RequestKeys = append(m.RequestKeys, k)
			}
		}
		if m.RequestKeys == nil && !m.AnyChanged {
			return nil
		}
		return m
	}
	if len(parts) < 5 {
		return nil
	}
	if parts[0] == MarkerNoMoreScens {
		// marker-only reply, the key field carries no scenario
		return &ScenarioInfo{NoMoreScenarios: true}
	}
	minVers, err1 := strconv.Atoi(parts[1])
	lastMod, err2 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil {
		return nil
	}
	m := &ScenarioInfo{Key: parts[0], MinVersion: minVers}
	if lastMod == MarkerScenKeyUnknown {
		// the marker is wire shape only, not a real mod version
		m.IsKeyUnknown = true
		return m
	}
	m.LastModVersion = lastMod
	m.Options = parts[3]
	m.Description = parts[4]
	if len(parts) >= 6 {
		m.LongDescription = parts[5]
	}
	return m
}
