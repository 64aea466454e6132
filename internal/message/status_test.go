package message

import (
	"reflect"
	"testing"
)

func TestStatusMessageWire(t *testing.T) {
	m := &StatusMessage{Value: SVNameInUse, Status: "Nickname already in use."}
	got := Decode(m.Command())
	if !reflect.DeepEqual(got, m) {
		t.Fatalf("Decode(%q) = %#v, want %#v", m.Command(), got, m)
	}

	// sv 0 is omitted from the wire, so plain text decodes with Value 0
	plain := &StatusMessage{Value: SVOK, Status: "Welcome"}
	if got := Decode(plain.Command()); !reflect.DeepEqual(got, plain) {
		t.Errorf("Decode(%q) = %#v, want %#v", plain.Command(), got, plain)
	}

	// text that happens to start with a non-numeric token keeps the comma
	got = Decode("1069|hello, world")
	want := &StatusMessage{Value: 0, Status: "hello, world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Decode = %#v, want %#v", got, want)
	}
}

func TestStatusMessageMinimumVersion(t *testing.T) {
	if v := (&StatusMessage{Value: SVOK, Status: "x"}).MinimumVersion(); v != 1000 {
		t.Errorf("sv 0 MinimumVersion = %d, want 1000", v)
	}
	if v := (&StatusMessage{Value: SVPWWrong, Status: "x"}).MinimumVersion(); v != 1106 {
		t.Errorf("sv 3 MinimumVersion = %d, want 1106", v)
	}
}

func TestStatusValidAtVersion(t *testing.T) {
	cases := []struct {
		sv, cliVersion int
		want           bool
	}{
		{SVOK, 1000, true},
		{SVNotOKGeneric, 1000, false},
		{SVAcctNotCreatedErr, 1106, true},
		{SVNewGameOptionUnknown, 1106, false},
		{SVNewGameNameTooLong, 1107, true},
		{SVNewGameTooManyCreated, 1109, false},
		{SVNewChannelTooManyCreated, 1110, true},
		{SVPWRequired, 1110, false},
		{SVPWRequired, 1118, false},
		{SVAcctNotCreatedDenied, 1119, true},
		{SVAcctCreatedOKFirstOne, 1119, false},
		{SVAcctCreatedOKFirstOne, 1120, true},
		{SVAcctCreatedOKFirstOne, 1150, true},
		{SVNameNotAllowed, 1150, false},
		{SVOKSetNickname, 1150, false},
		{SVNameNotAllowed, 1201, true},
		{SVOKSetNickname, 1200, true},
		{SVOKDebugModeOn, 1200, false},
		{SVOKDebugModeOn, 1999, false},
		{SVOKDebugModeOn, 2000, true},
		{SVOKDebugModeOn, 2450, true},
	}
	for _, tc := range cases {
		if got := StatusValidAtVersion(tc.sv, tc.cliVersion); got != tc.want {
			t.Errorf("StatusValidAtVersion(%d, %d) = %v, want %v",
				tc.sv, tc.cliVersion, got, tc.want)
		}
	}
}

func TestStatusFallbackForVersion(t *testing.T) {
	cases := []struct {
		sv, cliVersion int
		want           int
	}{
		{SVOK, 1000, SVOK},
		{SVNameInUse, 1110, SVNameInUse},
		{SVOKDebugModeOn, 1200, SVOK},
		{SVPWRequired, 1110, SVPWWrong},
		{SVAcctCreatedOKFirstOne, 1110, SVAcctCreatedOK},
		{SVNewGameOptionValueTooNew, 1106, SVNotOKGeneric},
		// two hops: the first fallback is itself too new for the client
		{SVPWRequired, 1100, SVOK},
		{SVAcctCreatedOKFirstOne, 1000, SVOK},
	}
	for _, tc := range cases {
		got, err := StatusFallbackForVersion(tc.sv, tc.cliVersion)
		if err != nil {
			t.Errorf("StatusFallbackForVersion(%d, %d): %v", tc.sv, tc.cliVersion, err)
			continue
		}
		if got != tc.want {
			t.Errorf("StatusFallbackForVersion(%d, %d) = %d, want %d",
				tc.sv, tc.cliVersion, got, tc.want)
		}
	}
}

func TestStatusFallbackNoEquivalent(t *testing.T) {
	if sv, err := StatusFallbackForVersion(SVOKSetNickname, 1150); err == nil {
		t.Errorf("StatusFallbackForVersion(SVOKSetNickname, 1150) = %d, want error", sv)
	}
	// a client that knows the value gets it unchanged
	if sv, err := StatusFallbackForVersion(SVOKSetNickname, 1200); err != nil || sv != SVOKSetNickname {
		t.Errorf("StatusFallbackForVersion(SVOKSetNickname, 1200) = %d, %v", sv, err)
	}
}

// Every status value must resolve, for every version, to either a value
// the client knows or an explicit error. A gap in the fallback table
// would loop forever.
func TestStatusFallbackTotal(t *testing.T) {
	versions := []int{1000, 1100, 1106, 1107, 1109, 1110, 1118, 1119,
		1120, 1150, 1200, 1201, 1999, 2000, 2450, 2700}
	for sv := SVOK; sv <= SVOKDebugModeOn; sv++ {
		for _, v := range versions {
			got, err := StatusFallbackForVersion(sv, v)
			if err != nil {
				continue
			}
			if !StatusValidAtVersion(got, v) {
				t.Errorf("StatusFallbackForVersion(%d, %d) = %d, not valid at v%d",
					sv, v, got, v)
			}
		}
	}
}

func TestDevCardTypeForVersion(t *testing.T) {
	cases := []struct {
		cardType, peerVersion int
		want                  int
	}{
		{CardKnight, 1999, CardKnightVers1x},
		{CardUnknown, 1999, CardUnknownVers1x},
		{CardRoads, 1999, CardRoads},
		{CardKnight, 2000, CardKnight},
		{CardUnknown, 2000, CardUnknown},
		{CardMonopoly, 1100, CardMonopoly},
	}
	for _, tc := range cases {
		if got := DevCardTypeForVersion(tc.cardType, tc.peerVersion); got != tc.want {
			t.Errorf("DevCardTypeForVersion(%d, %d) = %d, want %d",
				tc.cardType, tc.peerVersion, got, tc.want)
		}
	}
	// the swap is its own inverse
	for _, ct := range []int{CardUnknown, CardRoads, CardDiscovery,
		CardMonopoly, CardCapitol, CardLibrary, CardUniversity, CardTemple,
		CardTowers, CardKnight} {
		if back := DevCardTypeForVersion(DevCardTypeForVersion(ct, 1500), 1500); back != ct {
			t.Errorf("double conversion of %d = %d", ct, back)
		}
	}
}
