package message

import (
	"reflect"
	"strings"
	"testing"
)

// TestParseRenderingRoundTrip renders each message and parses the
// rendering back, checking field-for-field equality. Only kinds whose
// rendering is reversible appear here; a few render fields symbolically
// or in hex without a strip override and can't round-trip.
func TestParseRenderingRoundTrip(t *testing.T) {
	rs1 := NewResourceSet(1, 0, 0, 0, 4)
	rs2 := NewResourceSet(0, 2, 0, 2, 0)

	msgs := []Message{
		&DevCardCount{Game: "ga", Count: 22},
		&BuyDevCardRequest{Game: "ga"},
		&GameState{Game: "ga", State: 20},
		&Turn{Game: "ga", PlayerNumber: 3},
		&DiceResult{Game: "ga", Result: 7},
		&DiscardRequest{Game: "ga", NumDiscards: 4},
		&ResourceCount{Game: "ga", PlayerNumber: 1, Count: 9},
		&BuildRequest{Game: "ga", PieceType: -1},
		&CancelBuildRequest{Game: "ga", PieceType: PieceCity},
		&SimpleRequest{Game: "ga", PlayerNumber: 2, RequestType: 1, Value1: 7, Value2: 0},
		&SimpleAction{Game: "ga", PlayerNumber: 2, ActionType: ActTradeSuccessful},
		&ChoosePlayer{Game: "ga", Choice: 3},
		&RejectOffer{Game: "ga", PlayerNumber: 2},
		&ClearOffer{Game: "ga", PlayerNumber: -1},
		&PickResourceType{Game: "ga", ResourceType: ResOre},
		&ResetBoardVote{Game: "ga", PlayerNumber: 2, VotesYes: true},
		&PirateFortressAttackResult{Game: "ga", PirateStrength: 5, ShipsLost: 1},
		&NewGameWithOptions{Game: "ga", MinVersion: 1107, OptionsString: "BC=t4"},
		&NewGameWithOptions{Game: "ga", MinVersion: -1, OptionsString: ""},
		&BotJoinGameRequest{Game: "ga", PlayerNumber: 2, OptionsString: "BC=t4"},

		// kinds whose parser reads the remainder as free text; a stray
		// trailing separator from the label strip would end up in the text
		&StatusMessage{Value: SVNameInUse, Status: "Nickname already in use."},
		&StatusMessage{Value: 0, Status: "Welcome"},
		&SVPTextMessage{Game: "ga", PlayerNumber: 2, SVP: 1, Description: "settled a new island"},
		&UndoNotAllowedReasonText{Game: "ga", IsNotAllowed: true, Reason: "that road is built on"},
		&DeclinePlayerRequest{Game: "ga", GameState: 20, ReasonCode: DeclineReasonNotNow,
			DetailValue1: 1, DetailValue2: 2, ReasonText: "wait for your turn"},

		// kinds with strip overrides
		&JoinChannel{Nickname: "ada", Password: "", Host: "h", Channel: "ch"},
		&JoinGame{Nickname: "ada", Password: "", Host: "h", Game: "ga"},
		&GameMembers{Game: "ga", Members: []string{"ada", "droid 1", "robot 2"}},
		&GameServerText{Game: "ga", Text: "ada built a road, then a city."},
		&LastSettlement{Game: "ga", PlayerNumber: 3, Coordinate: 0x82},
		&UndoPutPiece{Game: "ga", PlayerNumber: 2, PieceType: PieceRoad, Coordinate: 0x67},
		&DebugFreePlace{Game: "ga", PlayerNumber: 3, PieceType: PieceRoad, Coordinate: 0x87},
		&PickResources{Game: "ga", Resources: NewResourceSet(1, 0, 0, 1, 0)},
		&ReportRobbery{Game: "ga", PerpPN: 2, VictimPN: 0, ResourceType: ResSheep,
			IsGainLose: true, Amount: 1},
		&ReportRobbery{Game: "ga", PerpPN: 2, VictimPN: 0, ResourceType: -1,
			ResourceSet: &rs2, IsGainLose: true},
		&ReportRobbery{Game: "ga", PerpPN: -1, VictimPN: 3, ResourceType: -1,
			PEType: PEScenarioClothCount, Amount: 4, VictimAmount: 2},
		&SetLastAction{Game: "ga", ActionType: ActionBuildPiece,
			Param1: 1, Param2: 3076, Param3: 3, RS1: &rs1, RS2: &rs2},
		&SetSpecialItem{Game: "ga", Op: SpecialItemPick, TypeKey: "_SC_WOND",
			GameItemIndex: 1, PlayerItemIndex: 0, PlayerNumber: 2, Coord: -1, Level: 0},
	}

	for _, m := range msgs {
		s := m.String()
		got, err := ParseRendering(s)
		if err != nil {
			t.Errorf("%T: ParseRendering(%q): %v", m, s, err)
			continue
		}
		if !reflect.DeepEqual(got, m) {
			t.Errorf("%T: ParseRendering(%q) = %#v, want %#v", m, s, got, m)
		}
	}
}

// Old kind names in archived logs must parse to the same value as the
// current name.
func TestParseRenderingRenames(t *testing.T) {
	cases := []struct {
		oldName string
		msg     Message
	}{
		{"SOCJoin", &JoinChannel{Nickname: "ada", Password: "", Host: "h", Channel: "ch"}},
		{"SOCLeave", &LeaveChannel{Nickname: "ada", Host: "h", Channel: "ch"}},
		{"SOCBuyCardRequest", &BuyDevCardRequest{Game: "ga"}},
		{"SOCMonopolyPick", &PickResourceType{Game: "ga", ResourceType: ResOre}},
		{"SOCRobotJoinGameRequest", &BotJoinGameRequest{Game: "ga", PlayerNumber: 2,
			OptionsString: "BC=t4"}},
	}
	for _, tc := range cases {
		cur := tc.msg.String()
		colon := strings.IndexByte(cur, ':')
		old := tc.oldName + cur[colon:]

		fromOld, err := ParseRendering(old)
		if err != nil {
			t.Errorf("ParseRendering(%q): %v", old, err)
			continue
		}
		fromCur, err := ParseRendering(cur)
		if err != nil {
			t.Errorf("ParseRendering(%q): %v", cur, err)
			continue
		}
		if !reflect.DeepEqual(fromOld, fromCur) {
			t.Errorf("%s: old name parsed %#v, current name parsed %#v",
				tc.oldName, fromOld, fromCur)
		}
		if !reflect.DeepEqual(fromOld, tc.msg) {
			t.Errorf("%s: parsed %#v, want %#v", tc.oldName, fromOld, tc.msg)
		}
	}
}

func TestParseRenderingErrors(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no colon", "SOCGameState"},
		{"unknown kind", "SOCFrobnicate:game=ga"},
		{"empty kind name", ":game=ga"},
		{"malformed body", "SOCGameState:game=ga|state=twenty"},
		{"member list unterminated", "SOCGameMembers:game=ga|members=[ada, bob"},
		{"special item op unknown", "SOCSetSpecialItem:game=ga|op=FROB|typeKey=W|gi=1|pi=0|pn=2|co=-1|lv=0|sv null"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got, err := ParseRendering(tc.text); err == nil {
				t.Errorf("ParseRendering(%q) = %#v, want error", tc.text, got)
			}
		})
	}
}

// The old unbracketed member-list form is still accepted.
func TestParseRenderingOldMemberList(t *testing.T) {
	got, err := ParseRendering("SOCGameMembers:game=ga|members=ada,droid 1,robot 2")
	if err != nil {
		t.Fatalf("ParseRendering: %v", err)
	}
	want := &GameMembers{Game: "ga", Members: []string{"ada", "droid 1", "robot 2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}
