package models

import "go.mongodb.org/mongo-driver/bson"

// Update payloads wrap every writable field as present-or-absent: a nil
// pointer means the client never mentioned the field and storage must keep
// its current value, while a non-nil pointer to a zero value (0, "", empty
// list) is an explicit write. Fields() reduces a payload to the exact $set
// document for the merge write; an empty result means nothing to write.

type TeamUpdate struct {
	Name   *string  `json:"name"`
	NameMM *string  `json:"name_mm"`
	Logo   *string  `json:"logo"`
	Played *Numeric `json:"played"`
	Won    *Numeric `json:"won"`
	Draw   *Numeric `json:"draw"`
	Lost   *Numeric `json:"lost"`
	GF     *Numeric `json:"gf"`
	GA     *Numeric `json:"ga"`
}

func (u *TeamUpdate) Fields() bson.M {
	set := bson.M{}
	setString(set, "name", u.Name)
	setString(set, "name_mm", u.NameMM)
	setString(set, "logo", u.Logo)
	setNumeric(set, "played", u.Played)
	setNumeric(set, "won", u.Won)
	setNumeric(set, "draw", u.Draw)
	setNumeric(set, "lost", u.Lost)
	setNumeric(set, "gf", u.GF)
	setNumeric(set, "ga", u.GA)
	return set
}

type PlayerUpdate struct {
	Name     *string  `json:"name"`
	NameEN   *string  `json:"name_en"`
	Image    *string  `json:"image"`
	Number   *Numeric `json:"number"`
	Position *string  `json:"position"`
	Team     *string  `json:"team"`
}

func (u *PlayerUpdate) Fields() bson.M {
	set := bson.M{}
	setString(set, "name", u.Name)
	setString(set, "name_en", u.NameEN)
	setString(set, "image", u.Image)
	setNumeric(set, "number", u.Number)
	setString(set, "position", u.Position)
	setString(set, "team", u.Team)
	return set
}

// NewsUpdate has no date or timestamp field: both are server-assigned on
// create and immutable afterwards.
type NewsUpdate struct {
	Title  *string   `json:"title"`
	Body   *string   `json:"body"`
	Images *[]string `json:"images"`
	Tags   *[]string `json:"tags"`
}

func (u *NewsUpdate) Fields() bson.M {
	set := bson.M{}
	setString(set, "title", u.Title)
	setString(set, "body", u.Body)
	if u.Images != nil {
		set["images"] = *u.Images
	}
	if u.Tags != nil {
		set["tags"] = *u.Tags
	}
	return set
}

type MatchUpdate struct {
	HomeTeam  *string  `json:"homeTeam"`
	AwayTeam  *string  `json:"awayTeam"`
	HomeScore *Numeric `json:"homeScore"`
	AwayScore *Numeric `json:"awayScore"`
	Date      *string  `json:"date"`
	Time      *string  `json:"time"`
	Status    *string  `json:"status"`
}

func (u *MatchUpdate) Fields() bson.M {
	set := bson.M{}
	setString(set, "homeTeam", u.HomeTeam)
	setString(set, "awayTeam", u.AwayTeam)
	setNumeric(set, "homeScore", u.HomeScore)
	setNumeric(set, "awayScore", u.AwayScore)
	setString(set, "date", u.Date)
	setString(set, "time", u.Time)
	setString(set, "status", u.Status)
	return set
}

func setString(set bson.M, key string, v *string) {
	if v != nil {
		set[key] = *v
	}
}

func setNumeric(set bson.M, key string, v *Numeric) {
	if v != nil {
		set[key] = *v
	}
}
