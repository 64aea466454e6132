// Package message implements the delimited text wire protocol spoken
// between game clients, robot clients, and the game server. A message is a
// single line of text: the numeric type ID, a "|" separator, then the
// type-specific fields separated by ",". The package provides the full
// registry of message kinds, the Decode dispatcher for incoming lines, a
// version-compatibility layer for talking to older peers, and a parser for
// the human-readable renderings found in server logs.
package message

import "unicode"

// Field separators. Most kinds separate fields with sep2; a few carry
// free-form text and use a private separator instead (see GameTextMsg,
// GameServerText) so the text may contain commas.
const (
	sep      = "|"
	sep2     = ","
	sepChar  = '|'
	sep2Char = ','
)

// EmptyStr is the on-wire placeholder for an empty string field. The
// tokenizer collapses consecutive separators, so an empty field would
// otherwise vanish from the token stream.
const EmptyStr = "\t"

// GameNone marks "no game" in kinds whose game field is optional.
// It is 0x16 (SYN), which can never appear in a valid game name.
const GameNone = "\x16"

// unlikelyChar1 splits game name from free-form trailing text in kinds
// whose text may contain commas but not control characters.
const unlikelyChar1 = "\x01"

// Message is one decoded protocol message.
type Message interface {
	// Type returns the message's numeric type ID.
	Type() int

	// Command returns the full wire encoding, including the type ID.
	Command() string

	// String returns the human-readable rendering, "SOCKindName:attr=value|...".
	// This is the format written to server logs; ParseRendering reverses it.
	String() string

	// MinimumVersion returns the lowest peer version that knows this kind.
	MinimumVersion() int
}

// ForGame is implemented by messages bound to a specific game.
type ForGame interface {
	Message

	// GameName returns the name of the game this message is about.
	GameName() string
}

// IsSingleLineAndSafe reports whether s is safe to send as a message field:
// no separator characters, no control characters, no non-ASCII whitespace.
// Fields built from user input must pass this check before encoding.
func IsSingleLineAndSafe(s string) bool {
	return isSingleLineAndSafe(s, false)
}

// isSingleLineAndSafe optionally allows the separator characters, for the
// few kinds whose fields legitimately contain commas.
func isSingleLineAndSafe(s string, allowSepChars bool) bool {
	if !allowSepChars {
		for i := 0; i < len(s); i++ {
			if s[i] == sepChar || s[i] == sep2Char {
				return false
			}
		}
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return false
		}
		if r != ' ' && unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp) {
			return false
		}
	}
	return true
}
