package message

import (
	"strconv"
	"strings"
)

// Game option kinds: creating games with options, and querying option
// metadata. Option sets travel as packed "key=value,key=value" strings,
// which is why several of these read the rest of the line instead of
// splitting on commas.

// Game option value types for GameOptionInfo.
const (
	OptTypeUnknown  = 0
	OptTypeBool     = 1
	OptTypeInt      = 2
	OptTypeIntBool  = 3
	OptTypeEnum     = 4
	OptTypeEnumBool = 5
	OptTypeStr      = 6
	OptTypeStrHide  = 7
)

// Game option flags.
const (
	OptFlagDropIfUnused         = 0x01
	OptFlagInternalGameProperty = 0x02
)

// NewGameWithOptionsRequest asks the server to create a game with the
// given packed options. The options string is the last field and may
// contain commas.
type NewGameWithOptionsRequest struct {
	Nickname      string
	Password      string
	Host          string
	Game          string
	OptionsString string
}

func (m *NewGameWithOptionsRequest) Type() int           { return MsgNewGameWithOptionsRequest }
func (m *NewGameWithOptionsRequest) MinimumVersion() int { return 1107 }
func (m *NewGameWithOptionsRequest) GameName() string    { return m.Game }

func (m *NewGameWithOptionsRequest) Command() string {
	return newCmd(MsgNewGameWithOptionsRequest).str(m.Nickname).optStr(m.Password).
		str(m.Host).str(m.Game).str(m.OptionsString).String()
}

func (m *NewGameWithOptionsRequest) String() string {
	return joinString("SOCNewGameWithOptionsRequest", m.Nickname, m.Password, m.Host, m.Game, "game") +
		"|opts=" + m.OptionsString
}

func parseNewGameWithOptionsRequest(body string) Message {
	fs := newFieldScanner(body)
	nn := fs.next()
	pw := fs.next()
	hn := fs.next()
	ga := fs.next()
	if fs.err != nil {
		return nil
	}
	if pw == EmptyStr {
		pw = ""
	}
	return &NewGameWithOptionsRequest{Nickname: nn, Password: pw, Host: hn, Game: ga,
		OptionsString: fs.remainder()}
}

// NewGameWithOptions announces a newly created game along with its packed
// options and the minimum client version that can join. An empty option
// set goes on the wire as "-".
type NewGameWithOptions struct {
	Game          string
	MinVersion    int
	OptionsString string
}

func (m *NewGameWithOptions) Type() int           { return MsgNewGameWithOptions }
func (m *NewGameWithOptions) MinimumVersion() int { return 1107 }
func (m *NewGameWithOptions) GameName() string    { return m.Game }

func (m *NewGameWithOptions) optsOrDash() string {
	if m.OptionsString == "" {
		return "-"
	}
	return m.OptionsString
}

func (m *NewGameWithOptions) Command() string {
	return newCmd(MsgNewGameWithOptions).str(m.Game).int(m.MinVersion).
		str(m.optsOrDash()).String()
}

func (m *NewGameWithOptions) String() string {
	return "SOCNewGameWithOptions:game=" + m.Game +
		"|param1=" + strconv.Itoa(m.MinVersion) +
		"|param2=" + m.optsOrDash()
}

func parseNewGameWithOptions(body string) Message {
	fs := newFieldScanner(body)
	ga := fs.next()
	minVers := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	opts := fs.remainder()
	if opts == "-" {
		opts = ""
	}
	return &NewGameWithOptions{Game: ga, MinVersion: minVers, OptionsString: opts}
}

// GameOptionGetDefaults asks for (or carries, from the server) the packed
// defaults for all known options.
type GameOptionGetDefaults struct {
	OptionsString string
}

func (m *GameOptionGetDefaults) Type() int           { return MsgGameOptionGetDefaults }
func (m *GameOptionGetDefaults) MinimumVersion() int { return 1107 }

func (m *GameOptionGetDefaults) Command() string {
	if m.OptionsString == "" {
		return strconv.Itoa(MsgGameOptionGetDefaults)
	}
	return newCmd(MsgGameOptionGetDefaults).str(m.OptionsString).String()
}

func (m *GameOptionGetDefaults) String() string {
	return "SOCGameOptionGetDefaults:opts=" + m.OptionsString
}

func parseGameOptionGetDefaults(body string) Message {
	return &GameOptionGetDefaults{OptionsString: body}
}

// OptKeyGetI18nDescs asks the server to localize the option descriptions.
const OptKeyGetI18nDescs = "?I18N"

// GameOptionGetInfos asks for GameOptionInfo replies. A nil key list asks
// about everything newer than the client ("-" on the wire); the I18N token
// additionally asks for localized descriptions.
type GameOptionGetInfos struct {
	OptionKeys     []string
	WantsI18nDescs bool
	OnlyTokenI18n  bool
}

func (m *GameOptionGetInfos) Type() int           { return MsgGameOptionGetInfos }
func (m *GameOptionGetInfos) MinimumVersion() int { return 1107 }

func (m *GameOptionGetInfos) Command() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(MsgGameOptionGetInfos))
	sb.WriteByte(sepChar)
	if len(m.OptionKeys) == 0 {
		if !m.OnlyTokenI18n {
			sb.WriteByte('-')
		}
	} else {
		for i, k := range m.OptionKeys {
			if i > 0 {
				sb.WriteByte(sep2Char)
			}
			sb.WriteString(k)
		}
	}
	if m.WantsI18nDescs {
		if !m.OnlyTokenI18n {
			sb.WriteByte(sep2Char)
		}
		sb.WriteString(OptKeyGetI18nDescs)
	}
	return sb.String()
}

func (m *GameOptionGetInfos) String() string {
	var sb strings.Builder
	sb.WriteString("SOCGameOptionGetInfos:options=")
	if len(m.OptionKeys) == 0 {
		if !m.OnlyTokenI18n {
			sb.WriteByte('-')
		}
	} else {
		sb.WriteString(strings.Join(m.OptionKeys, ","))
	}
	if m.WantsI18nDescs {
		if !m.OnlyTokenI18n {
			sb.WriteByte(',')
		}
		sb.WriteString(OptKeyGetI18nDescs)
	}
	return sb.String()
}

func parseGameOptionGetInfos(body string) Message {
	fs := newFieldScanner(body)
	var keys []string
	hadDash := false
	hasI18n := false
	for fs.hasMore() {
		tok := fs.next()
		if tok == OptKeyGetI18nDescs {
			hasI18n = true
			continue
		}
		if tok == "-" {
			hadDash = true
		}
		keys = append(keys, tok)
	}
	if hadDash {
		if len(keys) != 1 {
			return nil
		}
		keys = nil
	}
	return &GameOptionGetInfos{OptionKeys: keys, WantsI18nDescs: hasI18n,
		OnlyTokenI18n: hasI18n && keys == nil}
}

// GameOptionInfo describes one game option: its key, value type, version
// range, defaults, current values, flags, and description. Enum types
// carry their choice labels after the description. The key "-" marks the
// end of the server's option info replies.
type GameOptionInfo struct {
	Key              string
	OptType          int
	MinVersion       int
	LastModVersion   int
	DefaultBoolValue bool
	DefaultIntValue  int
	MinIntValue      int
	MaxIntValue      int
	BoolValue        bool
	IntValue         int    // current value, unless a string type
	StringValue      string // current value for OptTypeStr/OptTypeStrHide
	Flags            int
	Description      string
	EnumChoices      []string
}

// EndOfGameOptionInfos is the sentinel reply after the last option info.
func EndOfGameOptionInfos() *GameOptionInfo {
	return &GameOptionInfo{Key: "-", OptType: OptTypeUnknown}
}

func (m *GameOptionInfo) Type() int           { return MsgGameOptionInfo }
func (m *GameOptionInfo) MinimumVersion() int { return 1107 }

func (m *GameOptionInfo) isStringType() bool {
	return m.OptType == OptTypeStr || m.OptType == OptTypeStrHide
}

func (m *GameOptionInfo) params() []string {
	tf := func(b bool) string {
		if b {
			return "t"
		}
		return "f"
	}
	ps := []string{
		m.Key,
		strconv.Itoa(m.OptType),
		strconv.Itoa(m.MinVersion),
		strconv.Itoa(m.LastModVersion),
		tf(m.DefaultBoolValue),
		strconv.Itoa(m.DefaultIntValue),
		strconv.Itoa(m.MinIntValue),
		strconv.Itoa(m.MaxIntValue),
		tf(m.BoolValue),
	}
	if m.isStringType() {
		ps = append(ps, m.StringValue)
	} else {
		ps = append(ps, strconv.Itoa(m.IntValue))
	}
	ps = append(ps, strconv.Itoa(m.Flags), m.Description)
	return append(ps, m.EnumChoices...)
}

func (m *GameOptionInfo) Command() string {
	return encodeMultiStrs(MsgGameOptionInfo, "", m.params())
}

func (m *GameOptionInfo) String() string {
	var sb strings.Builder
	sb.WriteString("SOCGameOptionInfo")
	for _, p := range m.params() {
		sb.WriteString("|p=")
		sb.WriteString(p)
	}
	return sb.String()
}

func parseGameOptionInfo(parts []string) Message {
	if len(parts) < 11 {
		return nil
	}
	unmapEmptyStrs(parts)
	ints, err := parseIntList(parts[1:4])
	if err != nil {
		return nil
	}
	m := &GameOptionInfo{Key: parts[0], OptType: ints[0],
		MinVersion: ints[1], LastModVersion: ints[2]}
	if m.OptType < OptTypeUnknown || m.OptType > OptTypeStrHide {
		m.OptType = OptTypeUnknown
	}
	vals, err := parseIntList(parts[5:8])
	if err != nil {
		return nil
	}
	m.DefaultBoolValue = parts[4] == "t"
	m.DefaultIntValue, m.MinIntValue, m.MaxIntValue = vals[0], vals[1], vals[2]
	m.BoolValue = parts[8] == "t"
	if m.isStringType() {
		m.StringValue = parts[9]
	} else {
		m.IntValue, err = strconv.Atoi(parts[9])
		if err != nil {
			return nil
		}
	}
	switch parts[10] {
	case "t":
		m.Flags = OptFlagDropIfUnused
	case "f", "":
		m.Flags = 0
	default:
		m.Flags, err = strconv.Atoi(parts[10])
		if err != nil {
			return nil
		}
	}
	if len(parts) > 11 {
		m.Description = parts[11]
	}
	if len(parts) > 12 {
		if m.OptType != OptTypeEnum && m.OptType != OptTypeEnumBool {
			return nil
		}
		m.EnumChoices = parts[12:]
	}
	return m
}

// GamesWithOptions is the game list sent to option-aware clients: a name
// and packed options string per game ("-" when a game has no options).
type GamesWithOptions struct {
	Names   []string
	Options []string
}

func (m *GamesWithOptions) Type() int           { return MsgGamesWithOptions }
func (m *GamesWithOptions) MinimumVersion() int { return 1107 }

func (m *GamesWithOptions) Command() string {
	ps := make([]string, 0, 2*len(m.Names))
	for i, name := range m.Names {
		opts := "-"
		if i < len(m.Options) && m.Options[i] != "" {
			opts = m.Options[i]
		}
		ps = append(ps, name, opts)
	}
	return encodeMultiStrs(MsgGamesWithOptions, "", ps)
}

func (m *GamesWithOptions) String() string {
	var sb strings.Builder
	sb.WriteString("SOCGamesWithOptions")
	for i, name := range m.Names {
		sb.WriteString("|p=")
		sb.WriteString(name)
		sb.WriteString("|p=")
		if i < len(m.Options) && m.Options[i] != "" {
			sb.WriteString(m.Options[i])
		} else {
			sb.WriteString("-")
		}
	}
	return sb.String()
}

func parseGamesWithOptions(parts []string) Message {
	if len(parts)%2 != 0 {
		return nil
	}
	unmapEmptyStrs(parts)
	m := &GamesWithOptions{}
	for i := 0; i < len(parts); i += 2 {
		m.Names = append(m.Names, parts[i])
		opts := parts[i+1]
		if opts == "-" {
			opts = ""
		}
		m.Options = append(m.Options, opts)
	}
	return m
}
