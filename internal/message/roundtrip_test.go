package message

import (
	"reflect"
	"strconv"
	"strings"
	"testing"
)

// TestWireRoundTrip encodes a representative value of each kind and checks
// that decoding the line reproduces the value field for field.
func TestWireRoundTrip(t *testing.T) {
	rs1 := NewResourceSet(1, 0, 0, 0, 4)
	rs2 := NewResourceSet(0, 2, 0, 2, 0)

	msgs := []Message{
		&AuthRequest{Role: "P", Nickname: "ada", Scheme: 1, Password: "sesame,open"},
		&AuthRequest{Role: "UA", Nickname: "ada", Scheme: 1, Host: "example.net", Password: "pw"},
		&NewChannel{Channel: "ch"},
		&DeleteChannel{Channel: "ch"},
		&Channels{Channels: []string{"alpha", "beta"}},
		&ChannelMembers{Channel: "ch", Members: []string{"ada", "droid 1"}},
		&JoinChannel{Nickname: "ada", Password: "", Host: "h", Channel: "ch"},
		&JoinChannelAuth{Nickname: "ada", Channel: "ch"},
		&LeaveChannel{Nickname: "ada", Host: "h", Channel: "ch"},
		&ChannelTextMsg{Channel: "ch", Nickname: "ada", Text: "hi, all"},
		&LeaveAll{},
		&ImARobot{Nickname: "robot 7", Cookie: "abc", RBClass: RBClassBuiltIn},
		&RejectConnection{Text: "server full"},
		&BCastTextMsg{Text: "maintenance at noon, please finish up"},
		&CreateAccount{Nickname: "ada", Password: "pw", Host: "h", Email: "a@b.c"},
		&AdminPing{Game: "ga"},
		&AdminReset{},
		&ServerPing{SleepTime: 30000},
		&Version{VersNum: 2450, VersStr: "2.4.50", Build: "JM20200704",
			Features: ";6pl;sb;", CliLocale: "en_US"},
		&Version{VersNum: 1118, VersStr: "1.1.18"},

		&JoinGame{Nickname: "ada", Password: "", Host: "h", Game: "ga"},
		&JoinGameAuth{Game: "ga"},
		&JoinGameAuth{Game: "ga", HasSize: true, BoardHeight: 20, BoardWidth: 22,
			LayoutVS: []int{-2, 1}},
		&LeaveGame{Nickname: "ada", Host: "h", Game: "ga"},
		&SitDown{Game: "ga", Nickname: "robot 7", PlayerNumber: 2, IsRobot: true},
		&NewGame{Game: "ga"},
		&DeleteGame{Game: "ga"},
		&StartGame{Game: "ga"},
		&GameMembers{Game: "ga", Members: []string{"ada", "droid 1"}},
		&Games{Games: []string{"g1", "g2"}},
		&GameStats{Game: "ga", Scores: []int{10, 4, 7, 2},
			IsRobot: []bool{false, true, false, true}},
		&SetSeatLock{Game: "ga", PlayerNumber: 1, State: SeatLocked},
		&SetSeatLock{Game: "ga", PlayerNumber: -1,
			States: []int{SeatUnlocked, SeatLocked, SeatClearOnReset, SeatUnlocked}},

		&GameState{Game: "ga", State: 20},
		&Turn{Game: "ga", PlayerNumber: 3},
		&DiceResult{Game: "ga", Result: 7},
		&DiscardRequest{Game: "ga", NumDiscards: 4},
		&RollDiceRequest{Game: "ga"},
		&RollDice{Game: "ga"},
		&EndTurn{Game: "ga"},
		&FirstPlayer{Game: "ga", PlayerNumber: 0},
		&SetTurn{Game: "ga", PlayerNumber: 2},
		&RollDicePrompt{Game: "ga", PlayerNumber: 2},
		&ChangeFace{Game: "ga", PlayerNumber: 1, FaceID: 12},
		&LongestRoad{Game: "ga", PlayerNumber: 1},
		&LargestArmy{Game: "ga", PlayerNumber: -1},
		&ResourceCount{Game: "ga", PlayerNumber: 1, Count: 9},
		&SimpleRequest{Game: "ga", PlayerNumber: 2, RequestType: 1, Value1: 0xc04, Value2: 0},
		&SimpleAction{Game: "ga", PlayerNumber: 2, ActionType: ActTradeSuccessful},

		&PutPiece{Game: "ga", PlayerNumber: 2, PieceType: PieceSettlement, Coordinate: 0x45},
		&UndoPutPiece{Game: "ga", PlayerNumber: 2, PieceType: PieceRoad, Coordinate: 0x67},
		&MovePiece{Game: "ga", PlayerNumber: 1, PieceType: PieceShip,
			FromCoord: 0xc05, ToCoord: 0xe07},
		&RemovePiece{Game: "ga", PlayerNumber: 1, PieceType: PieceShip, Coordinate: 0xc05},
		&PieceValue{Game: "ga", PieceType: PieceVillage, Coordinate: 0xa06, Value1: 4, Value2: 0},
		&PirateFortressAttackResult{Game: "ga", PirateStrength: 5, ShipsLost: 1},
		&LastSettlement{Game: "ga", PlayerNumber: 3, Coordinate: 0x82},
		&BuildRequest{Game: "ga", PieceType: -1},
		&CancelBuildRequest{Game: "ga", PieceType: PieceCity},
		&DebugFreePlace{Game: "ga", PlayerNumber: 3, PieceType: PieceRoad, Coordinate: 0x87},
		&RevealFogHex{Game: "ga", HexCoord: 0x105, HexType: 3, DiceNumber: 8},
		&SetLastAction{Game: "ga", ActionType: ActionBuildPiece,
			Param1: 1, Param2: 0xc04, Param3: 3},
		&SetLastAction{Game: "ga", ActionType: ActionMovePiece,
			Param1: 1, Param2: 0xc04, Param3: 0xe06, RS1: &rs1, RS2: &rs2},

		&GameTextMsg{Game: "ga", Nickname: "ada", Text: "roll, please"},
		&GameServerText{Game: "ga", Text: "ada built a road."},
		&SVPTextMessage{Game: "ga", PlayerNumber: 2, SVP: 2,
			Description: "settling a new island"},
		&UndoNotAllowedReasonText{Game: "ga", IsNotAllowed: true, Reason: "would break trade"},
		&UndoNotAllowedReasonText{Game: "ga"},
		&DeclinePlayerRequest{Game: "ga", GameState: 20, ReasonCode: DeclineReasonNotYourTurn},

		&MoveRobber{Game: "ga", PlayerNumber: 2, Coordinate: 0xb5},
		&MoveRobber{Game: "ga", PlayerNumber: 2, Coordinate: -0xc07},
		&ChoosePlayer{Game: "ga", Choice: 3},
		&ChoosePlayerRequest{Game: "ga", Choices: []bool{true, false, false, true}},
		&ChoosePlayerRequest{Game: "ga", CanChooseNone: true,
			Choices: []bool{false, true, true, false}},
		&ReportRobbery{Game: "ga", PerpPN: 2, VictimPN: 0, ResourceType: ResSheep,
			IsGainLose: true, Amount: 1},
		&ReportRobbery{Game: "ga", PerpPN: 2, VictimPN: 0, ResourceType: -1,
			ResourceSet: &rs2, IsGainLose: true},
		&ReportRobbery{Game: "ga", PerpPN: -1, VictimPN: 3, ResourceType: -1,
			PEType: PEScenarioClothCount, Amount: 4, VictimAmount: 2},

		&MakeOffer{Game: "ga", Offer: TradeOffer{Game: "ga", From: 1,
			To: []bool{false, false, true, true}, Give: rs1, Get: rs2}},
		&BankTrade{Game: "ga", Give: rs1, Get: rs2, PlayerNumber: -1},
		&BankTrade{Game: "ga", Give: rs2, Get: rs1, PlayerNumber: 3},
		&AcceptOffer{Game: "ga", Accepting: 2, Offering: 0},
		&RejectOffer{Game: "ga", PlayerNumber: 2},
		&ClearOffer{Game: "ga", PlayerNumber: -1},
		&ClearTradeMsg{Game: "ga", PlayerNumber: -1},
		&Discard{Game: "ga", Resources: NewResourceSetWithUnknown(0, 1, 0, 2, 0, 1)},
		&PickResources{Game: "ga", Resources: NewResourceSet(1, 0, 0, 1, 0)},
		&PickResourceType{Game: "ga", ResourceType: ResOre},

		&DevCardCount{Game: "ga", Count: 22},
		&DevCardAction{Game: "ga", PlayerNumber: 2, ActionType: CardDraw, CardType: CardKnight},
		&BuyDevCardRequest{Game: "ga"},
		&PlayDevCardRequest{Game: "ga", CardType: CardRoads},
		&SetPlayedDevCard{Game: "ga", PlayerNumber: 1, PlayedDevCard: true},
		&InventoryItemAction{Game: "ga", PlayerNumber: 2, Action: InvAddPlayable,
			ItemType: -2, IsKept: true, IsVP: true},
		&InventoryItemAction{Game: "ga", PlayerNumber: 2, Action: InvCannotPlay,
			ItemType: -2, ReasonCode: 1},

		&PlayerElement{Game: "ga", PlayerNumber: 2, ActionType: ElemGain,
			ElementType: ResWheat, Value: 2, IsNews: true},
		&PlayerElements{Game: "ga", PlayerNumber: 2, ActionType: ElemSet,
			ElementTypes: []int{ResClay, ResOre, ResWood}, Amounts: []int{1, 0, 5}},
		&GameElements{Game: "ga", ElementTypes: []int{GECurrentPlayer, GEDevCardCount},
			Values: []int{2, 19}},
		&PlayerStats{Game: "ga", Values: []int{StatsResourceRoll, 4, 2, 0, 3, 1}},
		&DiceResultResources{Game: "ga", PlayerNums: []int{1, 3}, ResTotals: []int{5, 2},
			Gained: []ResourceSet{NewResourceSet(2, 0, 0, 0, 1), NewResourceSet(0, 1, 0, 0, 0)}},
		&BotGameDataCheck{Game: "ga", DataType: BotCheckResourceAmounts,
			Values: []int{5, 2, 0, 4}},

		&BotJoinGameRequest{Game: "ga", PlayerNumber: 2, OptionsString: "BC=t4,RD=f"},
		&RobotDismiss{Game: "ga"},
		&TimingPing{Game: "ga"},
		&UpdateRobotParams{Params: RobotParameters{MaxGameLength: 120, MaxETA: 99,
			ETABonusFactor: 0.25, AdversarialFactor: 1.0, LeaderAdversarialFactor: 3.0,
			DevCardMultiplier: 4.0, ThreatMultiplier: 1.1, StrategyType: 1, TradeFlag: 1}},

		&ResetBoardRequest{Game: "ga"},
		&ResetBoardAuth{Game: "ga", RejoinPlayer: 1, RequestingPlayer: 3},
		&ResetBoardVoteRequest{Game: "ga", RequestingPlayer: 3},
		&ResetBoardVote{Game: "ga", PlayerNumber: 2, VotesYes: true},
		&ResetBoardReject{Game: "ga"},

		&NewGameWithOptionsRequest{Nickname: "ada", Password: "", Host: "h",
			Game: "ga", OptionsString: "BC=t4,N7=t7"},
		&NewGameWithOptions{Game: "ga", MinVersion: 1107, OptionsString: "BC=t4"},
		&NewGameWithOptions{Game: "ga", MinVersion: -1, OptionsString: ""},
		&GameOptionGetDefaults{},
		&GameOptionGetDefaults{OptionsString: "BC=t4,RD=f"},
		&GameOptionGetInfos{OptionKeys: []string{"BC", "N7"}},
		&GameOptionGetInfos{WantsI18nDescs: true, OnlyTokenI18n: true},
		&GameOptionInfo{Key: "BC", OptType: OptTypeIntBool, MinVersion: 1107,
			LastModVersion: 1107, DefaultBoolValue: true, DefaultIntValue: 4,
			MinIntValue: 3, MaxIntValue: 9, BoolValue: true, IntValue: 4,
			Description: "Break up clumps of # or more same-type hexes/ports"},
		&GameOptionInfo{Key: "SC", OptType: OptTypeEnum, MinVersion: 2000,
			LastModVersion: 2000, IntValue: 1, Flags: OptFlagDropIfUnused,
			Description: "Scenario", EnumChoices: []string{"(none)", "Fog Islands"}},
		EndOfGameOptionInfos(),
		&GamesWithOptions{Names: []string{"g1", "g2"}, Options: []string{"BC=t4", ""}},

		&LocalizedStrings{StringType: LocStrTypeGameOpt, Flags: 0,
			Strings: []string{"BC", "Romper grupos de # o más"}},
		&LocalizedStrings{StringType: LocStrTypeScenario, Flags: LocStrFlagSentAll},
		&ScenarioInfo{RequestKeys: []string{"SC_FOG"}, AnyChanged: true},
		&ScenarioInfo{Key: "SC_FOG", MinVersion: 2000, LastModVersion: 2000,
			Options: "_SC_FOG=t", Description: "Some land is hidden by fog"},
		&ScenarioInfo{Key: "SC_XYZ", IsKeyUnknown: true},
		&ScenarioInfo{NoMoreScenarios: true},

		&StatusMessage{Value: SVPWWrong, Status: "Incorrect password for 'ada'."},
		&StatusMessage{Status: "Welcome!"},
		&SetSpecialItem{Game: "ga", Op: SpecialItemSet, TypeKey: "_SC_WOND",
			GameItemIndex: 1, PlayerItemIndex: -1, PlayerNumber: -1,
			Coord: 0xc06, Level: 2, StringValue: "w3"},
		&LegalEdges{Game: "ga", PlayerNumber: 3, EdgesAreShips: true,
			Edges: []int{0xc07, 0xc0b}},
	}

	for _, m := range msgs {
		line := m.Command()
		if strings.ContainsAny(line, "\n\r") {
			t.Errorf("%T: command contains newline: %q", m, line)
			continue
		}
		got := Decode(line)
		if got == nil {
			t.Errorf("%T: Decode(%q) = nil", m, line)
			continue
		}
		if !reflect.DeepEqual(got, m) {
			t.Errorf("%T: Decode(%q) = %#v, want %#v", m, line, got, m)
		}
	}
}

// TestCommandTypeID checks the wire line starts with the kind's own ID.
func TestCommandTypeID(t *testing.T) {
	msgs := []Message{
		&PutPiece{Game: "ga", PlayerNumber: 1, PieceType: PieceRoad, Coordinate: 0x23},
		&StatusMessage{Status: "ok"},
		&Version{VersNum: 2000, VersStr: "2.0.00"},
		&ServerPing{SleepTime: -1},
	}
	for _, m := range msgs {
		line := m.Command()
		prefix := line
		if i := strings.IndexByte(line, sepChar); i != -1 {
			prefix = line[:i]
		}
		if prefix != strconv.Itoa(m.Type()) {
			t.Errorf("%T: Command() = %q, want type prefix %d", m, line, m.Type())
		}
	}
}
