package chess

// PGN header tag names.
const (
	EventTag  = "Event"
	SiteTag   = "Site"
	DateTag   = "Date"
	RoundTag  = "Round"
	WhiteTag  = "White"
	BlackTag  = "Black"
	ResultTag = "Result"
	SetUpTag  = "SetUp"
	FENTag    = "FEN"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// DefaultTagValue returns the placeholder written for a missing roster tag.
func DefaultTagValue(tag string) string {
	switch tag {
	case DateTag:
		return "????.??.??"
	case ResultTag:
		return "*"
	default:
		return "?"
	}
}
