package message

import (
	"strconv"
	"strings"

	"github.com/socwire-project/socwire/internal/util"
)

var logger = util.ComponentLogger("message")

// kindInfo describes one message kind for the decoder and the renderer.
// Element-list kinds set parseMulti and get the body pre-split on sep;
// everything else gets the first sep-delimited token as its body.
type kindInfo struct {
	name       string
	parse      func(body string) Message
	parseMulti func(parts []string) Message
}

var kinds = map[int]kindInfo{
	MsgAuthRequest:               {name: "SOCAuthRequest", parse: parseAuthRequest},
	MsgNewChannel:                {name: "SOCNewChannel", parse: parseNewChannel},
	MsgChannelMembers:            {name: "SOCChannelMembers", parse: parseChannelMembers},
	MsgChannels:                  {name: "SOCChannels", parse: parseChannels},
	MsgJoinChannel:               {name: "SOCJoinChannel", parse: parseJoinChannel},
	MsgChannelTextMsg:            {name: "SOCChannelTextMsg", parse: parseChannelTextMsg},
	MsgLeaveChannel:              {name: "SOCLeaveChannel", parse: parseLeaveChannel},
	MsgDeleteChannel:             {name: "SOCDeleteChannel", parse: parseDeleteChannel},
	MsgLeaveAll:                  {name: "SOCLeaveAll", parse: parseLeaveAll},
	MsgPutPiece:                  {name: "SOCPutPiece", parse: parsePutPiece},
	MsgGameTextMsg:               {name: "SOCGameTextMsg", parse: parseGameTextMsg},
	MsgLeaveGame:                 {name: "SOCLeaveGame", parse: parseLeaveGame},
	MsgSitDown:                   {name: "SOCSitDown", parse: parseSitDown},
	MsgJoinGame:                  {name: "SOCJoinGame", parse: parseJoinGame},
	MsgBoardLayout:               {name: "SOCBoardLayout", parse: parseBoardLayout},
	MsgDeleteGame:                {name: "SOCDeleteGame", parse: parseDeleteGame},
	MsgNewGame:                   {name: "SOCNewGame", parse: parseNewGame},
	MsgGameMembers:               {name: "SOCGameMembers", parse: parseGameMembers},
	MsgStartGame:                 {name: "SOCStartGame", parse: parseStartGame},
	MsgGames:                     {name: "SOCGames", parse: parseGames},
	MsgJoinChannelAuth:           {name: "SOCJoinChannelAuth", parse: parseJoinChannelAuth},
	MsgJoinGameAuth:              {name: "SOCJoinGameAuth", parse: parseJoinGameAuth},
	MsgImARobot:                  {name: "SOCImARobot", parse: parseImARobot},
	MsgBotJoinGameRequest:        {name: "SOCBotJoinGameRequest", parse: parseBotJoinGameRequest},
	MsgPlayerElement:             {name: "SOCPlayerElement", parse: parsePlayerElement},
	MsgGameState:                 {name: "SOCGameState", parse: parseGameState},
	MsgTurn:                      {name: "SOCTurn", parse: parseTurn},
	MsgDiceResult:                {name: "SOCDiceResult", parse: parseDiceResult},
	MsgDiscardRequest:            {name: "SOCDiscardRequest", parse: parseDiscardRequest},
	MsgRollDiceRequest:           {name: "SOCRollDiceRequest", parse: parseRollDiceRequest},
	MsgRollDice:                  {name: "SOCRollDice", parse: parseRollDice},
	MsgEndTurn:                   {name: "SOCEndTurn", parse: parseEndTurn},
	MsgDiscard:                   {name: "SOCDiscard", parse: parseDiscard},
	MsgMoveRobber:                {name: "SOCMoveRobber", parse: parseMoveRobber},
	MsgChoosePlayer:              {name: "SOCChoosePlayer", parse: parseChoosePlayer},
	MsgChoosePlayerRequest:       {name: "SOCChoosePlayerRequest", parse: parseChoosePlayerRequest},
	MsgRejectOffer:               {name: "SOCRejectOffer", parse: parseRejectOffer},
	MsgClearOffer:                {name: "SOCClearOffer", parse: parseClearOffer},
	MsgAcceptOffer:               {name: "SOCAcceptOffer", parse: parseAcceptOffer},
	MsgBankTrade:                 {name: "SOCBankTrade", parse: parseBankTrade},
	MsgMakeOffer:                 {name: "SOCMakeOffer", parse: parseMakeOffer},
	MsgClearTradeMsg:             {name: "SOCClearTradeMsg", parse: parseClearTradeMsg},
	MsgBuildRequest:              {name: "SOCBuildRequest", parse: parseBuildRequest},
	MsgCancelBuildRequest:        {name: "SOCCancelBuildRequest", parse: parseCancelBuildRequest},
	MsgBuyDevCardRequest:         {name: "SOCBuyDevCardRequest", parse: parseBuyDevCardRequest},
	MsgDevCardAction:             {name: "SOCDevCardAction", parse: parseDevCardAction},
	MsgDevCardCount:              {name: "SOCDevCardCount", parse: parseDevCardCount},
	MsgSetPlayedDevCard:          {name: "SOCSetPlayedDevCard", parse: parseSetPlayedDevCard},
	MsgPlayDevCardRequest:        {name: "SOCPlayDevCardRequest", parse: parsePlayDevCardRequest},
	MsgPickResources:             {name: "SOCPickResources", parse: parsePickResources},
	MsgPickResourceType:          {name: "SOCPickResourceType", parse: parsePickResourceType},
	MsgFirstPlayer:               {name: "SOCFirstPlayer", parse: parseFirstPlayer},
	MsgSetTurn:                   {name: "SOCSetTurn", parse: parseSetTurn},
	MsgRobotDismiss:              {name: "SOCRobotDismiss", parse: parseRobotDismiss},
	MsgPotentialSettlements:      {name: "SOCPotentialSettlements", parse: parsePotentialSettlements},
	MsgChangeFace:                {name: "SOCChangeFace", parse: parseChangeFace},
	MsgRejectConnection:          {name: "SOCRejectConnection", parse: parseRejectConnection},
	MsgLastSettlement:            {name: "SOCLastSettlement", parse: parseLastSettlement},
	MsgGameStats:                 {name: "SOCGameStats", parse: parseGameStats},
	MsgBCastTextMsg:              {name: "SOCBCastTextMsg", parse: parseBCastTextMsg},
	MsgResourceCount:             {name: "SOCResourceCount", parse: parseResourceCount},
	MsgAdminPing:                 {name: "SOCAdminPing", parse: parseAdminPing},
	MsgAdminReset:                {name: "SOCAdminReset", parse: parseAdminReset},
	MsgLongestRoad:               {name: "SOCLongestRoad", parse: parseLongestRoad},
	MsgLargestArmy:               {name: "SOCLargestArmy", parse: parseLargestArmy},
	MsgSetSeatLock:               {name: "SOCSetSeatLock", parse: parseSetSeatLock},
	MsgStatusMessage:             {name: "SOCStatusMessage", parse: parseStatusMessage},
	MsgCreateAccount:             {name: "SOCCreateAccount", parse: parseCreateAccount},
	MsgUpdateRobotParams:         {name: "SOCUpdateRobotParams", parse: parseUpdateRobotParams},
	MsgRollDicePrompt:            {name: "SOCRollDicePrompt", parse: parseRollDicePrompt},
	MsgResetBoardRequest:         {name: "SOCResetBoardRequest", parse: parseResetBoardRequest},
	MsgResetBoardAuth:            {name: "SOCResetBoardAuth", parse: parseResetBoardAuth},
	MsgResetBoardVoteRequest:     {name: "SOCResetBoardVoteRequest", parse: parseResetBoardVoteRequest},
	MsgResetBoardVote:            {name: "SOCResetBoardVote", parse: parseResetBoardVote},
	MsgResetBoardReject:          {name: "SOCResetBoardReject", parse: parseResetBoardReject},
	MsgNewGameWithOptionsRequest: {name: "SOCNewGameWithOptionsRequest", parse: parseNewGameWithOptionsRequest},
	MsgNewGameWithOptions:        {name: "SOCNewGameWithOptions", parse: parseNewGameWithOptions},
	MsgGameOptionGetDefaults:     {name: "SOCGameOptionGetDefaults", parse: parseGameOptionGetDefaults},
	MsgGameOptionGetInfos:        {name: "SOCGameOptionGetInfos", parse: parseGameOptionGetInfos},
	MsgGameOptionInfo:            {name: "SOCGameOptionInfo", parseMulti: parseGameOptionInfo},
	MsgGamesWithOptions:          {name: "SOCGamesWithOptions", parseMulti: parseGamesWithOptions},
	MsgBoardLayout2:              {name: "SOCBoardLayout2", parse: parseBoardLayout2},
	MsgPlayerStats:               {name: "SOCPlayerStats", parseMulti: parsePlayerStats},
	MsgPlayerElements:            {name: "SOCPlayerElements", parseMulti: parsePlayerElements},
	MsgDebugFreePlace:            {name: "SOCDebugFreePlace", parse: parseDebugFreePlace},
	MsgTimingPing:                {name: "SOCTimingPing", parse: parseTimingPing},
	MsgSimpleRequest:             {name: "SOCSimpleRequest", parse: parseSimpleRequest},
	MsgSimpleAction:              {name: "SOCSimpleAction", parse: parseSimpleAction},
	MsgGameServerText:            {name: "SOCGameServerText", parse: parseGameServerText},
	MsgDiceResultResources:       {name: "SOCDiceResultResources", parseMulti: parseDiceResultResources},
	MsgMovePiece:                 {name: "SOCMovePiece", parse: parseMovePiece},
	MsgRemovePiece:               {name: "SOCRemovePiece", parse: parseRemovePiece},
	MsgPieceValue:                {name: "SOCPieceValue", parse: parsePieceValue},
	MsgGameElements:              {name: "SOCGameElements", parseMulti: parseGameElements},
	MsgRevealFogHex:              {name: "SOCRevealFogHex", parse: parseRevealFogHex},
	MsgLegalEdges:                {name: "SOCLegalEdges", parse: parseLegalEdges},
	MsgSVPTextMessage:            {name: "SOCSVPTextMessage", parse: parseSVPTextMessage},
	MsgInventoryItemAction:       {name: "SOCInventoryItemAction", parse: parseInventoryItemAction},
	MsgSetSpecialItem:            {name: "SOCSetSpecialItem", parse: parseSetSpecialItem},
	MsgLocalizedStrings:          {name: "SOCLocalizedStrings", parseMulti: parseLocalizedStrings},
	MsgScenarioInfo:              {name: "SOCScenarioInfo", parseMulti: parseScenarioInfo},
	MsgReportRobbery:             {name: "SOCReportRobbery", parse: parseReportRobbery},
	MsgUndoPutPiece:              {name: "SOCUndoPutPiece", parse: parseUndoPutPiece},
	MsgSetLastAction:             {name: "SOCSetLastAction", parse: parseSetLastAction},
	MsgUndoNotAllowedReasonText:  {name: "SOCUndoNotAllowedReasonText", parse: parseUndoNotAllowedReasonText},
	MsgDeclinePlayerRequest:      {name: "SOCDeclinePlayerRequest", parse: parseDeclinePlayerRequest},
	MsgBotGameDataCheck:          {name: "SOCBotGameDataCheck", parseMulti: parseBotGameDataCheck},
	MsgPirateFortressAttack:      {name: "SOCPirateFortressAttackResult", parse: parsePirateFortressAttackResult},
	MsgVersion:                   {name: "SOCVersion", parse: parseVersion},
	MsgServerPing:                {name: "SOCServerPing", parse: parseServerPing},
}

// typeName returns the kind's class-style name, or the numeric ID for an
// unknown kind.
func typeName(typeID int) string {
	if k, ok := kinds[typeID]; ok {
		return k.name
	}
	return strconv.Itoa(typeID)
}

// KindName returns the class-style name of a message type ID, such as
// "SOCPutPiece", or the ID itself as text when the kind is unknown.
func KindName(typeID int) string {
	return typeName(typeID)
}

// Decode converts one wire line into a message. It returns nil, never an
// error and never a panic, for anything malformed: an unknown or
// non-numeric type ID, a keepalive MsgNull, or a body the kind's parser
// rejects. Dropping bad lines keeps one misbehaving peer from wedging the
// reader loop.
func Decode(line string) Message {
	// tokenize on sep the way the historical parser did: empty tokens
	// vanish, so "1000|" and "1000" decode alike
	var tokens []string
	for _, tok := range strings.Split(line, sep) {
		if tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil
	}
	typeID, err := strconv.Atoi(tokens[0])
	if err != nil {
		logger.Debug().Str("line", line).Msg("decode: non-numeric type id")
		return nil
	}
	if typeID == MsgNull {
		return nil
	}
	k, ok := kinds[typeID]
	if !ok {
		logger.Debug().Int("type", typeID).Msg("decode: unknown message type")
		return nil
	}

	var msg Message
	if k.parseMulti != nil {
		msg = k.parseMulti(tokens[1:])
	} else {
		body := ""
		if len(tokens) > 1 {
			body = tokens[1]
		}
		msg = k.parse(body)
	}
	if msg == nil {
		logger.Debug().Int("type", typeID).Str("name", k.name).Msg("decode: malformed body")
	}
	return msg
}
