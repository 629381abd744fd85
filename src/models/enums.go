package models

// Position is a player's field position.
type Position string

const (
	POSITION_GK Position = "GK"
	POSITION_DF Position = "DF"
	POSITION_MF Position = "MF"
	POSITION_FW Position = "FW"
)

var PositionValues = map[string]Position{
	"GK": POSITION_GK,
	"DF": POSITION_DF,
	"MF": POSITION_MF,
	"FW": POSITION_FW,
}

func (p Position) Valid() bool {
	_, ok := PositionValues[string(p)]
	return ok
}

// MatchStatus is the lifecycle state of a match.
type MatchStatus string

const (
	MATCH_STATUS_UPCOMING MatchStatus = "upcoming"
	MATCH_STATUS_ONGOING  MatchStatus = "ongoing"
	MATCH_STATUS_FINISHED MatchStatus = "finished"
)

var MatchStatusValues = map[string]MatchStatus{
	"upcoming": MATCH_STATUS_UPCOMING,
	"ongoing":  MATCH_STATUS_ONGOING,
	"finished": MATCH_STATUS_FINISHED,
}

func (s MatchStatus) Valid() bool {
	_, ok := MatchStatusValues[string(s)]
	return ok
}
