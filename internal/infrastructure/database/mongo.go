package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/jeyjerry11/Kingcharmer-analytics.co.ng/pkg/config"
)

type MongoManager struct {
	Client *mongo.Client
	Db     *mongo.Database
}

func NewMongo(cfg *config.MongoConfig) (*MongoManager, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(cfg.DBName)
	if err := migrateIndexes(ctx, db); err != nil {
		return nil, err
	}

	return &MongoManager{
		Client: client,
		Db:     db,
	}, nil
}

func (mm *MongoManager) ShutDown() {
	if mm.Client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		mm.Client.Disconnect(ctx)
	}
}

// migrateIndexes creates the indexes the aggregation queries lean on.
func migrateIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"events": {
			{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "provider", Value: 1}}},
		},
		"videos": {
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
	}

	for col, models := range indexes {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create %s indexes: %v", col, err)
		}
	}
	return nil
}
