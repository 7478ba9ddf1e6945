// Package mongodb provides a MongoDB-backed player store. Each player is one
// document keyed by its id; a seq field written only on insert keeps list order.
package mongodb

import (
    "context"
    "errors"
    "fmt"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readpref"

    "github.com/tinoosan/players/internal/errs"
    "github.com/tinoosan/players/internal/roster"
)

const collectionName = "players"

// Store wraps a mongo client and the players collection. Safe for concurrent use.
type Store struct {
    client *mongo.Client
    coll   *mongo.Collection
}

// document is the stored shape. Name, country and rank keep the raw JSON text
// so any client value round-trips.
type document struct {
    ID      string `bson:"_id"`
    Name    string `bson:"name,omitempty"`
    Country string `bson:"country,omitempty"`
    Rank    string `bson:"rank,omitempty"`
    Seq     int64  `bson:"seq"`
}

// Open connects to uri and verifies the primary is reachable.
func Open(ctx context.Context, uri, database string) (*Store, error) {
    client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
    if err != nil { return nil, err }
    if err := client.Ping(ctx, readpref.Primary()); err != nil {
        _ = client.Disconnect(context.Background())
        return nil, err
    }
    return &Store{client: client, coll: client.Database(database).Collection(collectionName)}, nil
}

// Close disconnects the client.
func (s *Store) Close() {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()
    _ = s.client.Disconnect(ctx)
}

// Ready pings the primary.
func (s *Store) Ready(ctx context.Context) error { return s.client.Ping(ctx, readpref.Primary()) }

func (s *Store) List(ctx context.Context) ([]roster.Player, error) {
    cur, err := s.coll.Find(ctx, bson.D{}, options.Find().SetSort(bson.D{{Key: "seq", Value: 1}}))
    if err != nil { return nil, fmt.Errorf("list players: %w", err) }
    var docs []document
    if err := cur.All(ctx, &docs); err != nil { return nil, fmt.Errorf("decode players: %w", err) }
    out := make([]roster.Player, 0, len(docs))
    for _, d := range docs { out = append(out, d.player()) }
    return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (roster.Player, error) {
    var d document
    err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
    if errors.Is(err, mongo.ErrNoDocuments) { return roster.Player{}, errs.ErrNotFound }
    if err != nil { return roster.Player{}, fmt.Errorf("get player: %w", err) }
    return d.player(), nil
}

// Put upserts the player. Absent fields are unset so a replace drops them.
func (s *Store) Put(ctx context.Context, p roster.Player) (roster.Player, error) {
    set, unset := bson.M{}, bson.M{}
    for field, v := range map[string][]byte{"name": p.Name, "country": p.Country, "rank": p.Rank} {
        if len(v) > 0 { set[field] = string(v) } else { unset[field] = "" }
    }
    update := bson.M{"$setOnInsert": bson.M{"seq": time.Now().UnixNano()}}
    if len(set) > 0 { update["$set"] = set }
    if len(unset) > 0 { update["$unset"] = unset }
    _, err := s.coll.UpdateOne(ctx, bson.M{"_id": p.ID}, update, options.Update().SetUpsert(true))
    if err != nil { return roster.Player{}, fmt.Errorf("put player: %w", err) }
    return p, nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
    res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
    if err != nil { return fmt.Errorf("delete player: %w", err) }
    if res.DeletedCount == 0 { return errs.ErrNotFound }
    return nil
}

func (d document) player() roster.Player {
    return roster.Player{ID: d.ID, Name: rawValue(d.Name), Country: rawValue(d.Country), Rank: rawValue(d.Rank)}
}

func rawValue(s string) []byte {
    if s == "" { return nil }
    return []byte(s)
}
