package message

import "strings"

// Chat channel kinds. Channels are the lobby-level chat rooms; their
// message shapes predate most of the game kinds and several were renamed
// (SOCJoin, SOCMembers, SOCTextMsg) when games and channels split.

// NewChannel announces a newly created chat channel to all clients.
type NewChannel struct {
	Channel string
}

func (m *NewChannel) Type() int           { return MsgNewChannel }
func (m *NewChannel) MinimumVersion() int { return 1000 }

func (m *NewChannel) Command() string {
	return newCmd(MsgNewChannel).str(m.Channel).String()
}

func (m *NewChannel) String() string {
	return "SOCNewChannel:channel=" + m.Channel
}

func parseNewChannel(body string) Message {
	ch, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &NewChannel{Channel: ch}
}

// DeleteChannel announces that a chat channel was destroyed.
type DeleteChannel struct {
	Channel string
}

func (m *DeleteChannel) Type() int           { return MsgDeleteChannel }
func (m *DeleteChannel) MinimumVersion() int { return 1000 }

func (m *DeleteChannel) Command() string {
	return newCmd(MsgDeleteChannel).str(m.Channel).String()
}

func (m *DeleteChannel) String() string {
	return "SOCDeleteChannel:channel=" + m.Channel
}

func parseDeleteChannel(body string) Message {
	ch, ok := parseGameOnly(body)
	if !ok {
		return nil
	}
	return &DeleteChannel{Channel: ch}
}

// Channels lists the chat channels on the server, sent right after connect.
type Channels struct {
	Channels []string
}

func (m *Channels) Type() int           { return MsgChannels }
func (m *Channels) MinimumVersion() int { return 1000 }

func (m *Channels) Command() string {
	b := newCmd(MsgChannels)
	for _, ch := range m.Channels {
		b.str(ch)
	}
	return b.String()
}

func (m *Channels) String() string {
	return "SOCChannels:channels=" + strings.Join(m.Channels, ",")
}

func parseChannels(body string) Message {
	fs := newFieldScanner(body)
	var chs []string
	for fs.hasMore() {
		chs = append(chs, fs.next())
	}
	if fs.err != nil {
		return nil
	}
	return &Channels{Channels: chs}
}

// ChannelMembers lists a channel's members, sent to a client as it joins.
type ChannelMembers struct {
	Channel string
	Members []string
}

func (m *ChannelMembers) Type() int           { return MsgChannelMembers }
func (m *ChannelMembers) MinimumVersion() int { return 1000 }

func (m *ChannelMembers) Command() string {
	b := newCmd(MsgChannelMembers).str(m.Channel)
	for _, mem := range m.Members {
		b.str(mem)
	}
	return b.String()
}

func (m *ChannelMembers) String() string {
	return "SOCChannelMembers:channel=" + m.Channel +
		"|members=[" + strings.Join(m.Members, ", ") + "]"
}

func parseChannelMembers(body string) Message {
	fs := newFieldScanner(body)
	ch := fs.next()
	var mems []string
	for fs.hasMore() {
		mems = append(mems, fs.next())
	}
	if fs.err != nil {
		return nil
	}
	return &ChannelMembers{Channel: ch, Members: mems}
}

// JoinChannel is a client's request to join (or create) a chat channel.
type JoinChannel struct {
	Nickname string
	Password string
	Host     string
	Channel  string
}

func (m *JoinChannel) Type() int           { return MsgJoinChannel }
func (m *JoinChannel) MinimumVersion() int { return 1000 }

func (m *JoinChannel) Command() string {
	return encodeJoin(MsgJoinChannel, m.Nickname, m.Password, m.Host, m.Channel)
}

func (m *JoinChannel) String() string {
	return joinString("SOCJoinChannel", m.Nickname, m.Password, m.Host, m.Channel, "channel")
}

func parseJoinChannel(body string) Message {
	nick, pw, host, ch, ok := parseJoin(body)
	if !ok {
		return nil
	}
	return &JoinChannel{Nickname: nick, Password: pw, Host: host, Channel: ch}
}

// JoinChannelAuth tells a client its channel join was authorized.
type JoinChannelAuth struct {
	Nickname string
	Channel  string
}

func (m *JoinChannelAuth) Type() int           { return MsgJoinChannelAuth }
func (m *JoinChannelAuth) MinimumVersion() int { return 1000 }

func (m *JoinChannelAuth) Command() string {
	return newCmd(MsgJoinChannelAuth).str(m.Nickname).str(m.Channel).String()
}

func (m *JoinChannelAuth) String() string {
	return "SOCJoinChannelAuth:nickname=" + m.Nickname + "|channel=" + m.Channel
}

func parseJoinChannelAuth(body string) Message {
	fs := newFieldScanner(body)
	nick := fs.next()
	ch := fs.next()
	if fs.err != nil {
		return nil
	}
	return &JoinChannelAuth{Nickname: nick, Channel: ch}
}

// LeaveChannel announces that a member has left a chat channel.
type LeaveChannel struct {
	Nickname string
	Host     string
	Channel  string
}

func (m *LeaveChannel) Type() int           { return MsgLeaveChannel }
func (m *LeaveChannel) MinimumVersion() int { return 1000 }

func (m *LeaveChannel) Command() string {
	return newCmd(MsgLeaveChannel).str(m.Nickname).str(m.Host).str(m.Channel).String()
}

func (m *LeaveChannel) String() string {
	return "SOCLeaveChannel:nickname=" + m.Nickname + "|host=" + m.Host +
		"|channel=" + m.Channel
}

func parseLeaveChannel(body string) Message {
	fs := newFieldScanner(body)
	nick := fs.next()
	host := fs.next()
	ch := fs.next()
	if fs.err != nil {
		return nil
	}
	return &LeaveChannel{Nickname: nick, Host: host, Channel: ch}
}

// ChannelTextMsg carries chat text within a channel. The channel, nickname,
// and text are separated by NUL so the text may contain "," and "|".
type ChannelTextMsg struct {
	Channel  string
	Nickname string
	Text     string
}

// textMsgSep2 is the private field separator of the chat text kinds.
const textMsgSep2 = "\x00"

func (m *ChannelTextMsg) Type() int           { return MsgChannelTextMsg }
func (m *ChannelTextMsg) MinimumVersion() int { return 1000 }

func (m *ChannelTextMsg) Command() string {
	return newCmd(MsgChannelTextMsg).
		str(m.Channel + textMsgSep2 + m.Nickname + textMsgSep2 + m.Text).String()
}

func (m *ChannelTextMsg) String() string {
	return "SOCChannelTextMsg:channel=" + m.Channel + "|nickname=" + m.Nickname +
		"|text=" + m.Text
}

func parseChannelTextMsg(body string) Message {
	parts := strings.SplitN(body, textMsgSep2, 3)
	if len(parts) != 3 {
		return nil
	}
	return &ChannelTextMsg{Channel: parts[0], Nickname: parts[1], Text: parts[2]}
}
