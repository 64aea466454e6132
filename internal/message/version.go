package message

// Cross-version compatibility helpers. Each kind reports its own
// MinimumVersion; the helpers here adjust field values that changed
// meaning between versions.

// VersionForNewDevCardTypes is the first version using the current dev
// card type numbering. Before it, Knight and Unknown had each other's
// values.
const VersionForNewDevCardTypes = 2000

// Dev card type values used by 1.x clients.
const (
	CardUnknownVers1x = 9
	CardKnightVers1x  = 0
)

// DevCardTypeForVersion converts a dev card type between the current
// numbering and a peer's. The Knight/Unknown swap is symmetric, so the
// same call serves both sending and receiving.
func DevCardTypeForVersion(cardType, peerVersion int) int {
	if peerVersion >= VersionForNewDevCardTypes {
		return cardType
	}
	switch cardType {
	case CardKnight:
		return CardKnightVers1x
	case CardUnknown:
		return CardUnknownVers1x
	default:
		return cardType
	}
}
