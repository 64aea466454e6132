package message

import (
	"strconv"
	"strings"
)

// Shared encode/parse strategies for the common message shapes: a game name
// followed by a fixed number of ints, join-style credential kinds, and the
// element-list kinds whose fields are joined with sep instead of sep2.

// encodeGameInts builds "id|game,v1,v2,...".
func encodeGameInts(typeID int, game string, vs ...int) string {
	return newCmd(typeID).str(game).ints(vs).String()
}

// parseGameInts expects a game name then exactly n ints.
func parseGameInts(body string, n int) (string, []int, bool) {
	fs := newFieldScanner(body)
	game := fs.next()
	vs := make([]int, n)
	for i := range vs {
		vs[i] = fs.nextInt()
	}
	if fs.err != nil || fs.hasMore() {
		return "", nil, false
	}
	return game, vs, true
}

// parseGameOnly expects a single game-name field.
func parseGameOnly(body string) (string, bool) {
	fs := newFieldScanner(body)
	game := fs.next()
	if fs.err != nil || fs.hasMore() {
		return "", false
	}
	return game, true
}

// encodeJoin builds the credential shape shared by the join and account
// kinds: "id|nickname,password,host,name". An empty password goes on the
// wire as EmptyStr.
func encodeJoin(typeID int, nickname, password, host, name string) string {
	return newCmd(typeID).str(nickname).optStr(password).str(host).str(name).String()
}

// parseJoin reads the credential shape back; EmptyStr maps to "".
func parseJoin(body string) (nickname, password, host, name string, ok bool) {
	fs := newFieldScanner(body)
	nickname = fs.next()
	password = fs.next()
	host = fs.next()
	name = fs.next()
	if fs.err != nil {
		return "", "", "", "", false
	}
	if password == EmptyStr {
		password = ""
	}
	return nickname, password, host, name, true
}

// joinString renders the credential shape; the password is never shown.
func joinString(kind, nickname, password, host, name, nameAttr string) string {
	var sb strings.Builder
	sb.WriteString(kind)
	sb.WriteString(":nickname=")
	sb.WriteString(nickname)
	if password != "" {
		sb.WriteString("|password=***")
	} else {
		sb.WriteString("|password empty")
	}
	sb.WriteString("|host=")
	sb.WriteString(host)
	sb.WriteByte(sepChar)
	sb.WriteString(nameAttr)
	sb.WriteByte('=')
	sb.WriteString(name)
	return sb.String()
}

// encodeMultiInts builds "id|game|v1|v2|...": the element-list kinds join
// every field with sep so Decode hands the decoder a pre-split token list.
func encodeMultiInts(typeID int, game string, vs []int) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(typeID))
	if game != "" {
		sb.WriteByte(sepChar)
		sb.WriteString(game)
	}
	for _, v := range vs {
		sb.WriteByte(sepChar)
		sb.WriteString(strconv.Itoa(v))
	}
	return sb.String()
}

// encodeMultiStrs builds "id|game|s1|s2|..."; empty strings go on the wire
// as EmptyStr. A "" game is omitted entirely (some list kinds have none).
func encodeMultiStrs(typeID int, game string, ss []string) string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(typeID))
	if game != "" {
		sb.WriteByte(sepChar)
		sb.WriteString(game)
	}
	for _, s := range ss {
		sb.WriteByte(sepChar)
		if s == "" {
			sb.WriteString(EmptyStr)
		} else {
			sb.WriteString(s)
		}
	}
	return sb.String()
}

// unmapEmptyStrs replaces EmptyStr tokens with "" in place.
func unmapEmptyStrs(ss []string) {
	for i, s := range ss {
		if s == EmptyStr {
			ss[i] = ""
		}
	}
}
