package events

import (
	"context"
	"fmt"
	"log/slog"

	"schoolcal/internal/calendar"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repo reads school events from the "events" collection. It is a
// read-only Source; events are managed outside this service.
type Repo struct {
	coll *mongo.Collection
	log  *slog.Logger
}

func NewRepo(db *mongo.Database, log *slog.Logger) *Repo {
	return &Repo{coll: db.Collection("events"), log: log}
}

// EnsureIndexes creates the date index used by LoadAll.
func (r *Repo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "date", Value: 1},
				{Key: "_id", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "type", Value: 1}},
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("create indexes: %w", err)
	}
	return nil
}

// Load implements Source.
func (r *Repo) Load(ctx context.Context) ([]calendar.Event, error) {
	docs, err := r.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return docsToEvents(docs, r.log)
}

// LoadAll returns every stored event sorted by date, then id.
func (r *Repo) LoadAll(ctx context.Context) ([]eventDoc, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []eventDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return docs, nil
}

// Count returns the number of stored events, optionally for one type.
func (r *Repo) Count(ctx context.Context, eventType string) (int64, error) {
	filter := bson.M{}
	if eventType != "" {
		filter["type"] = eventType
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}
