package database

import (
	"time"

	"github.com/kamva/mgm/v3"
	"github.com/mmfl-dev/admin-api/src/models"
)

// Collection names, also used by the allocator and the change events.
const (
	TeamsCollection   = "teams"
	PlayersCollection = "players"
	NewsCollection    = "news"
	MatchesCollection = "matches"
)

// StringIDField is an mgm model base for documents keyed by an
// allocator-generated string instead of a store-generated ObjectID.
type StringIDField struct {
	ID string `json:"id" bson:"_id,omitempty"`
}

func (f *StringIDField) PrepareID(id interface{}) (interface{}, error) {
	return id, nil
}

func (f *StringIDField) GetID() interface{} {
	return f.ID
}

func (f *StringIDField) SetID(id interface{}) {
	if s, ok := id.(string); ok {
		f.ID = s
	}
}

type Team struct {
	mgm.DefaultModel `bson:",inline"`
	Name             string         `json:"name" bson:"name"`
	NameMM           string         `json:"name_mm" bson:"name_mm"`
	Logo             string         `json:"logo" bson:"logo"`
	Played           models.Numeric `json:"played" bson:"played"`
	Won              models.Numeric `json:"won" bson:"won"`
	Draw             models.Numeric `json:"draw" bson:"draw"`
	Lost             models.Numeric `json:"lost" bson:"lost"`
	GF               models.Numeric `json:"gf" bson:"gf"`
	GA               models.Numeric `json:"ga" bson:"ga"`
}

func (*Team) CollectionName() string {
	return TeamsCollection
}

type Player struct {
	mgm.DefaultModel `bson:",inline"`
	Name             string         `json:"name" bson:"name"`
	NameEN           string         `json:"name_en" bson:"name_en"`
	Image            string         `json:"image" bson:"image"`
	Number           models.Numeric `json:"number" bson:"number"`
	Position         string         `json:"position" bson:"position"`
	Team             string         `json:"team" bson:"team"`
}

func (*Player) CollectionName() string {
	return PlayersCollection
}

// News documents carry both the server-assigned creation timestamp and the
// DD-MM-YYYY date string the identifier was allocated from.
type News struct {
	StringIDField `bson:",inline"`
	Title         string    `json:"title" bson:"title"`
	Body          string    `json:"body" bson:"body"`
	Date          string    `json:"date" bson:"date"`
	Timestamp     time.Time `json:"timestamp" bson:"timestamp"`
	Images        []string  `json:"images" bson:"images"`
	Tags          []string  `json:"tags" bson:"tags"`
}

func (*News) CollectionName() string {
	return NewsCollection
}

// Match duplicates its identifier into the matchId field for clients that
// read documents without their key attached.
type Match struct {
	StringIDField `bson:",inline"`
	MatchID       string         `json:"matchId" bson:"matchId"`
	HomeTeam      string         `json:"homeTeam" bson:"homeTeam"`
	AwayTeam      string         `json:"awayTeam" bson:"awayTeam"`
	HomeScore     models.Numeric `json:"homeScore" bson:"homeScore"`
	AwayScore     models.Numeric `json:"awayScore" bson:"awayScore"`
	Date          string         `json:"date" bson:"date"`
	Time          string         `json:"time" bson:"time"`
	Status        string         `json:"status" bson:"status"`
}

func (*Match) CollectionName() string {
	return MatchesCollection
}
