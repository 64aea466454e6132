package message

import (
	"errors"
	"strconv"
	"strings"
)

var errNoField = errors.New("no more fields")

// fieldScanner walks a message body field by field. Consecutive separators
// collapse: an empty field never reaches the caller, which is why EmptyStr
// exists. Parse methods record the first error; callers check err once at
// the end instead of after every field.
type fieldScanner struct {
	rest string
	err  error
}

func newFieldScanner(body string) *fieldScanner {
	return &fieldScanner{rest: body}
}

// next returns the next non-empty field.
func (fs *fieldScanner) next() string {
	if fs.err != nil {
		return ""
	}
	for fs.rest != "" {
		var tok string
		if i := strings.IndexByte(fs.rest, sep2Char); i >= 0 {
			tok, fs.rest = fs.rest[:i], fs.rest[i+1:]
		} else {
			tok, fs.rest = fs.rest, ""
		}
		if tok != "" {
			return tok
		}
	}
	fs.err = errNoField
	return ""
}

// nextInt parses the next field as a decimal integer.
func (fs *fieldScanner) nextInt() int {
	tok := fs.next()
	if fs.err != nil {
		return 0
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		fs.err = err
		return 0
	}
	return v
}

// nextHex parses the next field as a signed hexadecimal integer.
func (fs *fieldScanner) nextHex() int {
	tok := fs.next()
	if fs.err != nil {
		return 0
	}
	v, err := parseHex(tok)
	if err != nil {
		fs.err = err
		return 0
	}
	return v
}

// nextBool parses the next field as "true" or "false". Anything that is
// not "true" reads as false, matching the lenient historical parser.
func (fs *fieldScanner) nextBool() bool {
	return fs.next() == "true"
}

// remainder returns everything left after the current position, with one
// leading separator stripped. Kinds whose final field is free-form text use
// this so the text may contain commas. May be empty; callers that require
// text check for that themselves.
func (fs *fieldScanner) remainder() string {
	if fs.err != nil {
		return ""
	}
	r := fs.rest
	fs.rest = ""
	return strings.TrimPrefix(r, sep2)
}

// hasMore reports whether another non-empty field is available.
func (fs *fieldScanner) hasMore() bool {
	if fs.err != nil {
		return false
	}
	for i := 0; i < len(fs.rest); i++ {
		if fs.rest[i] != sep2Char {
			return true
		}
	}
	return false
}

// countRemaining returns the number of non-empty fields left.
func (fs *fieldScanner) countRemaining() int {
	if fs.err != nil {
		return 0
	}
	n := 0
	for _, tok := range strings.Split(fs.rest, sep2) {
		if tok != "" {
			n++
		}
	}
	return n
}

// cmdBuilder assembles a wire line: the type ID, then "|" before the first
// field and "," before each further one.
type cmdBuilder struct {
	sb    strings.Builder
	first bool
}

func newCmd(typeID int) *cmdBuilder {
	b := &cmdBuilder{first: true}
	b.sb.WriteString(strconv.Itoa(typeID))
	return b
}

func (b *cmdBuilder) delim() {
	if b.first {
		b.sb.WriteByte(sepChar)
		b.first = false
	} else {
		b.sb.WriteByte(sep2Char)
	}
}

func (b *cmdBuilder) str(s string) *cmdBuilder {
	b.delim()
	b.sb.WriteString(s)
	return b
}

// optStr writes s, or EmptyStr when s is empty.
func (b *cmdBuilder) optStr(s string) *cmdBuilder {
	if s == "" {
		s = EmptyStr
	}
	return b.str(s)
}

func (b *cmdBuilder) int(v int) *cmdBuilder {
	b.delim()
	b.sb.WriteString(strconv.Itoa(v))
	return b
}

func (b *cmdBuilder) ints(vs []int) *cmdBuilder {
	for _, v := range vs {
		b.int(v)
	}
	return b
}

func (b *cmdBuilder) hex(v int) *cmdBuilder {
	return b.str(formatHex(v))
}

func (b *cmdBuilder) bool(v bool) *cmdBuilder {
	if v {
		return b.str("true")
	}
	return b.str("false")
}

func (b *cmdBuilder) String() string {
	return b.sb.String()
}

// parseHex parses a signed hexadecimal value ("c04", "-c04").
func parseHex(s string) (int, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, err
	}
	if neg {
		v = -v
	}
	return int(v), nil
}

// formatHex renders a signed value in lowercase hex without a 0x prefix.
func formatHex(v int) string {
	if v < 0 {
		return "-" + strconv.FormatInt(int64(-v), 16)
	}
	return strconv.FormatInt(int64(v), 16)
}

// formatHex0x renders a value the way a few kinds print coordinates.
func formatHex0x(v int) string {
	return "0x" + formatHex(v)
}

// intsToString renders ints separated by commas, in hex when asked, for
// human-readable output.
func intsToString(vs []int, useHex bool) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if useHex {
			sb.WriteString(formatHex(v))
		} else {
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}

// parseIntList parses each of parts as a decimal integer.
func parseIntList(parts []string) ([]int, error) {
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
