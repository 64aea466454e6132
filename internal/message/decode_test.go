package message

import (
	"reflect"
	"testing"
)

func TestDecodeDevCardCount(t *testing.T) {
	m := &DevCardCount{Game: "abc", Count: 5}
	if got := m.Command(); got != "1047|abc,5" {
		t.Fatalf("Command() = %q, want %q", got, "1047|abc,5")
	}

	got := Decode("1047|abc,5")
	if !reflect.DeepEqual(got, m) {
		t.Errorf("Decode() = %#v, want %#v", got, m)
	}
}

func TestDecodeReturnsNil(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"empty line", ""},
		{"separator only", "|"},
		{"non-numeric type", "hello|world"},
		{"partly numeric type", "10x47|abc,5"},
		{"unknown type", "4242|abc,5"},
		{"null keepalive", "1000"},
		{"missing field", "1047|abc"},
		{"non-numeric field", "1047|abc,xyz"},
		{"multi kind too short", "1086|ga,2"},
		{"control characters", "\x01\x00\x16"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.line); got != nil {
				t.Errorf("Decode(%q) = %#v, want nil", tc.line, got)
			}
		})
	}
}

func TestDecodeMultiKind(t *testing.T) {
	m := &PlayerElements{
		Game:         "ga",
		PlayerNumber: 2,
		ActionType:   ElemSet,
		ElementTypes: []int{ResClay, ResWood},
		Amounts:      []int{3, 1},
	}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Errorf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}
}

// A declared element count that doesn't match the elements present must
// reject the whole line.
func TestDecodeCountMismatch(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"layout part short", "1084|ga,1,PL,[3,1,2"},
		{"layout part count bad", "1084|ga,1,PL,[x,1,2"},
		{"dice resources player count short", "1092|ga|2|3|7|1|1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Decode(tc.line); got != nil {
				t.Errorf("Decode(%q) = %#v, want nil", tc.line, got)
			}
		})
	}
}

func TestDecodeSkipsEmptyTokens(t *testing.T) {
	// the tokenizer collapses consecutive separators
	got := Decode("1025|ga,,5")
	want := &GameState{Game: "ga", State: 5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
}

// Marker values in localization replies are wire shape only; the decoded
// message carries the corresponding flag instead of the marker.
func TestDecodeLocalizationMarkers(t *testing.T) {
	cases := []struct {
		name string
		line string
		want Message
	}{
		{"no more scenarios", "1103|-|\t|\t|\t|\t",
			&ScenarioInfo{NoMoreScenarios: true}},
		{"scenario key unknown", "1103|SC_XYZ|0|-2|\t|\t",
			&ScenarioInfo{Key: "SC_XYZ", IsKeyUnknown: true}},
		{"sent-all reply without strings", "1102|S|4",
			&LocalizedStrings{StringType: LocStrTypeScenario, Flags: LocStrFlagSentAll}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decode(tc.line)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Decode(%q) = %#v, want %#v", tc.line, got, tc.want)
			}
		})
	}
}

func TestTypeName(t *testing.T) {
	if got := typeName(MsgPutPiece); got != "SOCPutPiece" {
		t.Errorf("typeName(MsgPutPiece) = %q", got)
	}
	if got := typeName(4242); got != "4242" {
		t.Errorf("typeName(4242) = %q", got)
	}
}
