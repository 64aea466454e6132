package message

import (
	"strconv"
	"strings"
)

// Connection and account kinds: the version handshake, authentication,
// account creation, keepalives, and server-wide text.

// Authentication roles and schemes for AuthRequest.
const (
	RoleGameParticipant = "P"
	RoleUserAdmin       = "UA"

	SchemeClientPlaintext = 1
)

// AuthRequest authenticates a client without joining anything. Added so
// clients can log in before choosing a game; older clients authenticate as
// a side effect of their first join.
type AuthRequest struct {
	Role     string
	Nickname string
	Scheme   int
	Host     string // "" if not sent
	Password string // may contain "," but never "|"
}

func (m *AuthRequest) Type() int           { return MsgAuthRequest }
func (m *AuthRequest) MinimumVersion() int { return 1119 }

func (m *AuthRequest) Command() string {
	return newCmd(MsgAuthRequest).str(m.Role).str(m.Nickname).int(m.Scheme).
		optStr(m.Host).str(m.Password).String()
}

func (m *AuthRequest) String() string {
	var sb strings.Builder
	sb.WriteString("SOCAuthRequest:role=")
	sb.WriteString(m.Role)
	sb.WriteString("|nickname=")
	sb.WriteString(m.Nickname)
	sb.WriteString("|scheme=")
	sb.WriteString(strconv.Itoa(m.Scheme))
	if m.Host != "" {
		sb.WriteString("|host=")
		sb.WriteString(m.Host)
	}
	sb.WriteString("|password=***")
	return sb.String()
}

func parseAuthRequest(body string) Message {
	fs := newFieldScanner(body)
	role := fs.next()
	nick := fs.next()
	scheme := fs.nextInt()
	host := fs.next()
	if fs.err != nil {
		return nil
	}
	if host == EmptyStr {
		host = ""
	}
	pw := fs.remainder()
	if pw == "" {
		return nil
	}
	return &AuthRequest{Role: role, Nickname: nick, Scheme: scheme, Host: host, Password: pw}
}

// ImARobot identifies a connecting client as a robot. The cookie must match
// the server's robot cookie.
type ImARobot struct {
	Nickname string
	Cookie   string
	RBClass  string
}

// RBClassBuiltIn is the robot brain class of the server's own bots.
const RBClassBuiltIn = "soc.robot.SOCRobotBrain"

func (m *ImARobot) Type() int           { return MsgImARobot }
func (m *ImARobot) MinimumVersion() int { return 1000 }

func (m *ImARobot) Command() string {
	return newCmd(MsgImARobot).str(m.Nickname).str(m.Cookie).str(m.RBClass).String()
}

func (m *ImARobot) String() string {
	return "SOCImARobot:nickname=" + m.Nickname + "|cookie=***|rbclass=" + m.RBClass
}

func parseImARobot(body string) Message {
	fs := newFieldScanner(body)
	nick := fs.next()
	cookie := fs.next()
	rbclass := fs.next()
	if fs.err != nil {
		return nil
	}
	return &ImARobot{Nickname: nick, Cookie: cookie, RBClass: rbclass}
}

// LeaveAll is a client's request to leave every game and channel it is in,
// sent just before disconnecting. It carries no fields.
type LeaveAll struct{}

func (m *LeaveAll) Type() int           { return MsgLeaveAll }
func (m *LeaveAll) MinimumVersion() int { return 1000 }

func (m *LeaveAll) Command() string {
	return strconv.Itoa(MsgLeaveAll)
}

func (m *LeaveAll) String() string { return "SOCLeaveAll:" }

func parseLeaveAll(string) Message { return &LeaveAll{} }

// RejectConnection tells a client it was refused, with a reason, and that
// the server is about to close the connection.
type RejectConnection struct {
	Text string
}

func (m *RejectConnection) Type() int           { return MsgRejectConnection }
func (m *RejectConnection) MinimumVersion() int { return 1000 }

func (m *RejectConnection) Command() string {
	return newCmd(MsgRejectConnection).str(m.Text).String()
}

func (m *RejectConnection) String() string {
	return "SOCRejectConnection:" + m.Text
}

func parseRejectConnection(body string) Message {
	return &RejectConnection{Text: body}
}

// BCastTextMsg broadcasts announcement text to every connected client.
type BCastTextMsg struct {
	Text string
}

func (m *BCastTextMsg) Type() int           { return MsgBCastTextMsg }
func (m *BCastTextMsg) MinimumVersion() int { return 1000 }

func (m *BCastTextMsg) Command() string {
	return newCmd(MsgBCastTextMsg).str(m.Text).String()
}

func (m *BCastTextMsg) String() string {
	return "SOCBCastTextMsg:text=" + m.Text
}

func parseBCastTextMsg(body string) Message {
	return &BCastTextMsg{Text: body}
}

// CreateAccount is a client's request to create a user account.
type CreateAccount struct {
	Nickname string
	Password string
	Host     string
	Email    string // "" if not given
}

func (m *CreateAccount) Type() int           { return MsgCreateAccount }
func (m *CreateAccount) MinimumVersion() int { return 1000 }

func (m *CreateAccount) Command() string {
	return newCmd(MsgCreateAccount).str(m.Nickname).optStr(m.Password).
		str(m.Host).optStr(m.Email).String()
}

func (m *CreateAccount) String() string {
	email := m.Email
	if email == "" {
		email = "(null)"
	}
	return "SOCCreateAccount:nickname=" + m.Nickname + "|password=***|host=" +
		m.Host + "|email=" + email
}

func parseCreateAccount(body string) Message {
	fs := newFieldScanner(body)
	nick := fs.next()
	pw := fs.next()
	host := fs.next()
	if fs.err != nil {
		return nil
	}
	email := ""
	if fs.hasMore() {
		email = fs.next()
	}
	if pw == EmptyStr {
		pw = ""
	}
	if email == EmptyStr {
		email = ""
	}
	return &CreateAccount{Nickname: nick, Password: pw, Host: host, Email: email}
}

// AdminPing is a server admin's keepalive probe against a game.
type AdminPing struct {
	Game string
}

func (m *AdminPing) Type() int           { return MsgAdminPing }
func (m *AdminPing) MinimumVersion() int { return 1000 }
func (m *AdminPing) GameName() string    { return m.Game }

func (m *AdminPing) Command() string {
	return newCmd(MsgAdminPing).str(m.Game).String()
}

func (m *AdminPing) String() string {
	return "SOCAdminPing:game=" + m.Game
}

func parseAdminPing(body string) Message {
	ga, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &AdminPing{Game: ga}
}

// AdminReset asks the server to reset itself. No fields.
type AdminReset struct{}

func (m *AdminReset) Type() int           { return MsgAdminReset }
func (m *AdminReset) MinimumVersion() int { return 1000 }

func (m *AdminReset) Command() string {
	return strconv.Itoa(MsgAdminReset)
}

func (m *AdminReset) String() string { return "SOCAdminReset:" }

func parseAdminReset(string) Message { return &AdminReset{} }

// ServerPing is the server's periodic keepalive. SleepTime hints when the
// next ping will come; -1 means the connection is being dropped.
type ServerPing struct {
	SleepTime int
}

func (m *ServerPing) Type() int           { return MsgServerPing }
func (m *ServerPing) MinimumVersion() int { return 1000 }

func (m *ServerPing) Command() string {
	return newCmd(MsgServerPing).int(m.SleepTime).String()
}

func (m *ServerPing) String() string {
	return "SOCServerPing:sleepTime=" + strconv.Itoa(m.SleepTime)
}

func parseServerPing(body string) Message {
	fs := newFieldScanner(body)
	st := fs.nextInt()
	if fs.err != nil {
		return nil
	}
	return &ServerPing{SleepTime: st}
}

// Version is the version handshake, sent by each side as its first message.
// Build, Features, and CliLocale were added over time and are optional.
type Version struct {
	VersNum   int    // like 2450 for "2.4.50"
	VersStr   string // like "2.4.50"
	Build     string // "" if unknown
	Features  string // encoded feature list, "" if none sent
	CliLocale string // client's locale, "" if server or old client
}

func (m *Version) Type() int           { return MsgVersion }
func (m *Version) MinimumVersion() int { return 1100 }

func (m *Version) Command() string {
	return newCmd(MsgVersion).int(m.VersNum).str(m.VersStr).
		optStr(m.Build).optStr(m.Features).optStr(m.CliLocale).String()
}

func (m *Version) String() string {
	var sb strings.Builder
	sb.WriteString("SOCVersion:")
	sb.WriteString(strconv.Itoa(m.VersNum))
	sb.WriteString("|str=")
	sb.WriteString(m.VersStr)
	sb.WriteString("|verBuild=")
	if m.Build != "" {
		sb.WriteString(m.Build)
	} else {
		sb.WriteString("(null)")
	}
	if m.Features != "" {
		sb.WriteString("|feats=")
		sb.WriteString(m.Features)
	}
	if m.CliLocale != "" {
		sb.WriteString("|cliLocale=")
		sb.WriteString(m.CliLocale)
	}
	return sb.String()
}

func parseVersion(body string) Message {
	fs := newFieldScanner(body)
	vn := fs.nextInt()
	vs := fs.next()
	if fs.err != nil {
		return nil
	}
	var build, feats, loc string
	if fs.hasMore() {
		build = fs.next()
	}
	if fs.hasMore() {
		feats = fs.next()
	}
	if fs.hasMore() {
		loc = fs.next()
	}
	if build == EmptyStr {
		build = ""
	}
	if feats == EmptyStr {
		feats = ""
	}
	if loc == EmptyStr {
		loc = ""
	}
	return &Version{VersNum: vn, VersStr: vs, Build: build, Features: feats, CliLocale: loc}
}
