package database

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kamva/mgm/v3"
	"github.com/mmfl-dev/admin-api/src/environment"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DatabaseName   = "mmfl_admin"
	DefaultTimeout = 10 * time.Second
)

// Client is the client-interface for the content database. Creates for teams
// and players take a store-generated id, news and matches are written under
// the identifier the allocator computed. Merge writes only touch the fields
// in the given set; a merge against a missing document is not an error.
type Client interface {
	ListTeams(ctx context.Context) ([]*Team, error)
	CreateTeam(ctx context.Context, entry *Team) (string, error)
	MergeTeam(ctx context.Context, id string, fields bson.M) error
	DeleteTeam(ctx context.Context, id string) error

	ListPlayers(ctx context.Context) ([]*Player, error)
	CreatePlayer(ctx context.Context, entry *Player) (string, error)
	MergePlayer(ctx context.Context, id string, fields bson.M) error
	DeletePlayer(ctx context.Context, id string) error

	ListNews(ctx context.Context) ([]*News, error)
	SetNews(ctx context.Context, entry *News) error
	MergeNews(ctx context.Context, id string, fields bson.M) error
	DeleteNews(ctx context.Context, id string) error

	ListMatches(ctx context.Context) ([]*Match, error)
	SetMatch(ctx context.Context, entry *Match) error
	MergeMatch(ctx context.Context, id string, fields bson.M) error
	DeleteMatch(ctx context.Context, id string) error

	CountByDate(ctx context.Context, collection, date string) (int64, error)
	Exists(ctx context.Context, collection, id string) (bool, error)
}

var (
	setupOnce     sync.Once
	setupErr      error
	defaultClient *ClientImpl
)

// NewClient connects to the store exactly once per process; repeated
// bootstrap attempts get the same client handle back.
func NewClient(ctx context.Context, env *environment.Environment) (*ClientImpl, error) {
	setupOnce.Do(func() {
		defaultClient, setupErr = connect(ctx, env)
	})
	return defaultClient, setupErr
}

func connect(ctx context.Context, env *environment.Environment) (*ClientImpl, error) {
	client, err := mongo.NewClient(options.Client().ApplyURI(env.MongoDbURI))
	if err != nil {
		slog.Error("Error creating Mongo client", "Error", err)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()
	if err = client.Connect(ctx); err != nil {
		slog.Error("Error connecting to Mongo", "Error", err)
		return nil, err
	}

	if err = mgm.SetDefaultConfig(nil, DatabaseName, options.Client().ApplyURI(env.MongoDbURI)); err != nil {
		slog.Error("Error creating mgm connection", "Error", err)
		return nil, err
	}

	dbClient := ClientImpl{
		teams:   mgm.Coll(&Team{}),
		players: mgm.Coll(&Player{}),
		news:    mgm.Coll(&News{}),
		matches: mgm.Coll(&Match{}),
	}
	dbClient.byName = map[string]*mgm.Collection{
		TeamsCollection:   dbClient.teams,
		PlayersCollection: dbClient.players,
		NewsCollection:    dbClient.news,
		MatchesCollection: dbClient.matches,
	}

	return &dbClient, nil
}

type ClientImpl struct {
	teams   *mgm.Collection
	players *mgm.Collection
	news    *mgm.Collection
	matches *mgm.Collection
	byName  map[string]*mgm.Collection
}

func (d *ClientImpl) ListTeams(ctx context.Context) ([]*Team, error) {
	return listAll[Team](ctx, d.teams, nil)
}

func (d *ClientImpl) CreateTeam(ctx context.Context, entry *Team) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	err := d.teams.CreateWithCtx(ctx, entry)
	return entry.ID.Hex(), err
}

func (d *ClientImpl) MergeTeam(ctx context.Context, id string, fields bson.M) error {
	return mergeByObjectID(ctx, d.teams, id, fields)
}

func (d *ClientImpl) DeleteTeam(ctx context.Context, id string) error {
	return deleteByObjectID(ctx, d.teams, id)
}

func (d *ClientImpl) ListPlayers(ctx context.Context) ([]*Player, error) {
	return listAll[Player](ctx, d.players, nil)
}

func (d *ClientImpl) CreatePlayer(ctx context.Context, entry *Player) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	err := d.players.CreateWithCtx(ctx, entry)
	return entry.ID.Hex(), err
}

func (d *ClientImpl) MergePlayer(ctx context.Context, id string, fields bson.M) error {
	return mergeByObjectID(ctx, d.players, id, fields)
}

func (d *ClientImpl) DeletePlayer(ctx context.Context, id string) error {
	return deleteByObjectID(ctx, d.players, id)
}

func (d *ClientImpl) ListNews(ctx context.Context) ([]*News, error) {
	return listAll[News](ctx, d.news, bson.D{{Key: "timestamp", Value: -1}})
}

func (d *ClientImpl) SetNews(ctx context.Context, entry *News) error {
	return setByStringID(ctx, d.news, entry.ID, entry)
}

func (d *ClientImpl) MergeNews(ctx context.Context, id string, fields bson.M) error {
	return mergeByID(ctx, d.news, id, fields)
}

func (d *ClientImpl) DeleteNews(ctx context.Context, id string) error {
	return deleteByID(ctx, d.news, id)
}

func (d *ClientImpl) ListMatches(ctx context.Context) ([]*Match, error) {
	// Literal string ordering on the stored DD-MM-YYYY date and time fields,
	// not calendar order. Known caveat, kept for parity with the admin panel.
	return listAll[Match](ctx, d.matches, bson.D{{Key: "date", Value: -1}, {Key: "time", Value: -1}})
}

func (d *ClientImpl) SetMatch(ctx context.Context, entry *Match) error {
	return setByStringID(ctx, d.matches, entry.ID, entry)
}

func (d *ClientImpl) MergeMatch(ctx context.Context, id string, fields bson.M) error {
	return mergeByID(ctx, d.matches, id, fields)
}

func (d *ClientImpl) DeleteMatch(ctx context.Context, id string) error {
	return deleteByID(ctx, d.matches, id)
}

func (d *ClientImpl) CountByDate(ctx context.Context, collection, date string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	coll, ok := d.byName[collection]
	if !ok {
		return 0, fmt.Errorf("unknown collection %q", collection)
	}
	return coll.CountDocuments(ctx, bson.M{"date": date})
}

func (d *ClientImpl) Exists(ctx context.Context, collection, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	coll, ok := d.byName[collection]
	if !ok {
		return false, fmt.Errorf("unknown collection %q", collection)
	}

	err := coll.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func listAll[T any](ctx context.Context, coll *mgm.Collection, sort bson.D) ([]*T, error) {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	opts := options.Find()
	if sort != nil {
		opts.SetSort(sort)
	}

	cur, err := coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	var entries []*T

	defer cur.Close(ctx)
	for cur.Next(ctx) {
		var result T
		if err = cur.Decode(&result); err != nil {
			slog.Error("Error decoding document", "Error", err)
		} else {
			entries = append(entries, &result)
		}
	}

	return entries, cur.Err()
}

// setByStringID writes the full document under an explicit identifier,
// replacing whatever is already stored under it.
func setByStringID(ctx context.Context, coll *mgm.Collection, id string, entry any) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	_, err := coll.ReplaceOne(ctx, bson.M{"_id": id}, entry, options.Replace().SetUpsert(true))
	return err
}

func mergeByID(ctx context.Context, coll *mgm.Collection, id string, fields bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	_, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	return err
}

func mergeByObjectID(ctx context.Context, coll *mgm.Collection, id string, fields bson.M) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// An unparsable identifier matches no document; a merge against a
		// missing document already succeeds, so treat it the same way.
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	_, err = coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	return err
}

func deleteByID(ctx context.Context, coll *mgm.Collection, id string) error {
	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	_, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func deleteByObjectID(ctx context.Context, coll *mgm.Collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultTimeout)
	defer cancel()

	_, err = coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
