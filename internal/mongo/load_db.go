package mongo

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"worldinsight/internal/config"
)

const connectTimeout = 15 * time.Second

// LoadDB opens the process-wide client and returns the configured database.
// The client is closed by the caller on shutdown only.
func LoadDB(cfg *config.Config) (*mongo.Client, *mongo.Database) {
	client, err := Connect(context.Background(), cfg)
	if err != nil {
		log.Fatal("Cannot connect to DB:", err)
	}
	return client, client.Database(cfg.MongoDBName)
}

func Connect(ctx context.Context, cfg *config.Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetServerAPIOptions(serverAPI).
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(cfg.StoreTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping deployment: %w", err)
	}

	return client, nil
}
