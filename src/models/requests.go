package models

// Create payloads carry the full writable field set of each resource.
// Numeric fields left out by the client stay at their zero value, so a
// create always writes a complete document with explicit defaults.
// Unrecognized payload fields are dropped by the JSON decoder.

type TeamCreate struct {
	Name   string  `json:"name"`
	NameMM string  `json:"name_mm"`
	Logo   string  `json:"logo"`
	Played Numeric `json:"played"`
	Won    Numeric `json:"won"`
	Draw   Numeric `json:"draw"`
	Lost   Numeric `json:"lost"`
	GF     Numeric `json:"gf"`
	GA     Numeric `json:"ga"`
}

type PlayerCreate struct {
	Name     string  `json:"name"`
	NameEN   string  `json:"name_en"`
	Image    string  `json:"image"`
	Number   Numeric `json:"number"`
	Position string  `json:"position"`
	Team     string  `json:"team"`
}

type NewsCreate struct {
	Title  string   `json:"title"`
	Body   string   `json:"body"`
	Images []string `json:"images"`
	Tags   []string `json:"tags"`
}

type MatchCreate struct {
	HomeTeam  string  `json:"homeTeam"`
	AwayTeam  string  `json:"awayTeam"`
	HomeScore Numeric `json:"homeScore"`
	AwayScore Numeric `json:"awayScore"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
	Status    string  `json:"status"`
}
