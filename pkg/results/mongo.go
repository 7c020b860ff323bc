package results

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	errs "github.com/matzehuels/isobench/pkg/errors"
	"github.com/matzehuels/isobench/pkg/pipeline"
)

const (
	DefaultMongoDatabase   = "isobench"
	DefaultMongoCollection = "runs"

	connectTimeout = 10 * time.Second
)

// MongoConfig locates the collection results are stored in.
type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

// MongoSink stores benchmark results in a MongoDB collection.
type MongoSink struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoSink connects to cfg.URI and verifies the connection.
// Empty database and collection names fall back to the defaults.
func NewMongoSink(ctx context.Context, cfg MongoConfig) (*MongoSink, error) {
	if cfg.URI == "" {
		return nil, errs.New(errs.ErrCodeInvalidInput, "mongo uri is required")
	}
	if cfg.Database == "" {
		cfg.Database = DefaultMongoDatabase
	}
	if cfg.Collection == "" {
		cfg.Collection = DefaultMongoCollection
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return &MongoSink{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Store upserts res under its run ID.
func (s *MongoSink) Store(ctx context.Context, res *pipeline.Result) error {
	if res.RunID == "" {
		return errs.New(errs.ErrCodeInvalidInput, "result has no run id")
	}
	_, err := s.coll.ReplaceOne(ctx, bson.M{"_id": res.RunID}, res, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("store run %s: %w", res.RunID, err)
	}
	return nil
}

// Load returns the stored result for runID.
func (s *MongoSink) Load(ctx context.Context, runID string) (*pipeline.Result, error) {
	var res pipeline.Result
	err := s.coll.FindOne(ctx, bson.M{"_id": runID}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return nil, errs.New(errs.ErrCodeFileNotFound, "run %s not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	return &res, nil
}

// Recent returns up to limit results for dataset, newest first.
func (s *MongoSink) Recent(ctx context.Context, dataset string, limit int64) ([]pipeline.Result, error) {
	opts := options.Find().SetSort(bson.D{{Key: "started_at", Value: -1}}).SetLimit(limit)
	cur, err := s.coll.Find(ctx, bson.M{"dataset": dataset}, opts)
	if err != nil {
		return nil, fmt.Errorf("find runs: %w", err)
	}
	var out []pipeline.Result
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode runs: %w", err)
	}
	return out, nil
}

// Close disconnects from MongoDB.
func (s *MongoSink) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
