package message

// Message type IDs. IDs are stable and never reused; a retired kind leaves
// a hole in the sequence (1027, 1050, 1051).
const (
	MsgAuthRequest = 999 // Authenticated login without join

	MsgNull                      = 1000 // Keepalive noise; decodes to nothing
	MsgNewChannel                = 1001 // Chat channel created
	MsgChannelMembers            = 1002 // Channel member list on join
	MsgChannels                  = 1003 // List of chat channels
	MsgJoinChannel               = 1004 // Client requests channel join
	MsgChannelTextMsg            = 1005 // Chat text in a channel
	MsgLeaveChannel              = 1006 // Client leaves a channel
	MsgDeleteChannel             = 1007 // Chat channel deleted
	MsgLeaveAll                  = 1008 // Client leaves all channels and games
	MsgPutPiece                  = 1009 // Piece placed on the board
	MsgGameTextMsg               = 1010 // Chat text in a game
	MsgLeaveGame                 = 1011 // Client leaves a game
	MsgSitDown                   = 1012 // Player sits at a seat
	MsgJoinGame                  = 1013 // Client requests game join
	MsgBoardLayout               = 1014 // Classic 4-player board layout
	MsgDeleteGame                = 1015 // Game deleted
	MsgNewGame                   = 1016 // Game created
	MsgGameMembers               = 1017 // Game member list on join
	MsgStartGame                 = 1018 // Game begins
	MsgGames                     = 1019 // List of games
	MsgJoinChannelAuth           = 1020 // Channel join authorized
	MsgJoinGameAuth              = 1021 // Game join authorized
	MsgImARobot                  = 1022 // Robot client announces itself
	MsgBotJoinGameRequest        = 1023 // Server asks a robot to join
	MsgPlayerElement             = 1024 // Single player-data element change
	MsgGameState                 = 1025 // Game state number
	MsgTurn                      = 1026 // Whose turn begins
	MsgDiceResult                = 1028 // Total of a dice roll
	MsgDiscardRequest            = 1029 // Player must discard
	MsgRollDiceRequest           = 1030 // Server prompts a roll
	MsgRollDice                  = 1031 // Client rolls the dice
	MsgEndTurn                   = 1032 // Client ends its turn
	MsgDiscard                   = 1033 // Player discards resources
	MsgMoveRobber                = 1034 // Robber or pirate moved
	MsgChoosePlayer              = 1035 // Chosen victim (or resource pile)
	MsgChoosePlayerRequest       = 1036 // Server asks client to choose
	MsgRejectOffer               = 1037 // Trade offer rejected
	MsgClearOffer                = 1038 // Trade offer cleared
	MsgAcceptOffer               = 1039 // Trade offer accepted
	MsgBankTrade                 = 1040 // Trade with bank or port
	MsgMakeOffer                 = 1041 // Player-to-player trade offer
	MsgClearTradeMsg             = 1042 // Clear trade response text
	MsgBuildRequest              = 1043 // Client wants to build
	MsgCancelBuildRequest        = 1044 // Client cancels a build
	MsgBuyDevCardRequest         = 1045 // Client buys a dev card
	MsgDevCardAction             = 1046 // Dev card drawn/played/added
	MsgDevCardCount              = 1047 // Cards left in the dev deck
	MsgSetPlayedDevCard          = 1048 // Played-dev-card flag
	MsgPlayDevCardRequest        = 1049 // Client plays a dev card
	MsgPickResources             = 1052 // Discovery/gold-hex resource picks
	MsgPickResourceType          = 1053 // Monopoly resource choice
	MsgFirstPlayer               = 1054 // First player of the game
	MsgSetTurn                   = 1055 // Set current turn number
	MsgRobotDismiss              = 1056 // Server dismisses a robot
	MsgPotentialSettlements      = 1057 // Potential/legal settlement nodes
	MsgChangeFace                = 1058 // Player face icon changed
	MsgRejectConnection          = 1059 // Connection refused, with reason
	MsgLastSettlement            = 1060 // Player's most recent settlement
	MsgGameStats                 = 1061 // Scores and robot flags at game end
	MsgBCastTextMsg              = 1062 // Broadcast text to all clients
	MsgResourceCount             = 1063 // Player's total resource count
	MsgAdminPing                 = 1064 // Admin keepalive probe
	MsgAdminReset                = 1065 // Admin server reset
	MsgLongestRoad               = 1066 // Longest road holder
	MsgLargestArmy               = 1067 // Largest army holder
	MsgSetSeatLock               = 1068 // Seat lock state(s)
	MsgStatusMessage             = 1069 // Server status text with code
	MsgCreateAccount             = 1070 // Account creation request
	MsgUpdateRobotParams         = 1071 // Robot strategy parameters
	MsgRollDicePrompt            = 1072 // Auto-roll prompt
	MsgResetBoardRequest         = 1073 // Client asks for board reset
	MsgResetBoardAuth            = 1074 // Board reset authorized
	MsgResetBoardVoteRequest     = 1075 // Server requests reset votes
	MsgResetBoardVote            = 1076 // A player's reset vote
	MsgResetBoardReject          = 1077 // Board reset rejected
	MsgNewGameWithOptionsRequest = 1078 // Create game with options
	MsgNewGameWithOptions        = 1079 // Game created, with options
	MsgGameOptionGetDefaults     = 1080 // Request/send default options
	MsgGameOptionGetInfos        = 1081 // Request option metadata
	MsgGameOptionInfo            = 1082 // One game option's metadata
	MsgGamesWithOptions          = 1083 // Game list with option strings
	MsgBoardLayout2              = 1084 // Keyed board layout (6pl, sea)
	MsgPlayerStats               = 1085 // Per-player statistics
	MsgPlayerElements            = 1086 // Batched player-element changes
	MsgDebugFreePlace            = 1087 // Debug free piece placement
	MsgTimingPing                = 1088 // Robot timing ping
	MsgSimpleRequest             = 1089 // Generic player request
	MsgSimpleAction              = 1090 // Generic player action
	MsgGameServerText            = 1091 // Server text to a game
	MsgDiceResultResources       = 1092 // Resources gained from a roll
	MsgMovePiece                 = 1093 // Piece moved (ships)
	MsgRemovePiece               = 1094 // Piece removed (scenarios)
	MsgPieceValue                = 1095 // Scenario piece value change
	MsgGameElements              = 1096 // Batched game-data elements
	MsgRevealFogHex              = 1097 // Fog hex revealed
	MsgLegalEdges                = 1098 // Legal road/ship edges
	MsgSVPTextMessage            = 1099 // Special victory point text
	MsgInventoryItemAction       = 1100 // Inventory item add/play
	MsgSetSpecialItem            = 1101 // Special item set/clear/pick
	MsgLocalizedStrings          = 1102 // Localized option/scenario text
	MsgScenarioInfo              = 1103 // Scenario metadata
	MsgReportRobbery             = 1104 // Robbery result details
	MsgUndoPutPiece              = 1105 // Piece placement undone
	MsgSetLastAction             = 1106 // Most recent undoable action
	MsgUndoNotAllowedReasonText  = 1107 // Why an undo was refused
	MsgDeclinePlayerRequest      = 1108 // Server declines a request
	MsgBotGameDataCheck          = 1109 // Robot data consistency check
	MsgPirateFortressAttack      = 1110 // Pirate fortress attack result

	MsgVersion    = 9998 // Version handshake
	MsgServerPing = 9999 // Server keepalive
)
