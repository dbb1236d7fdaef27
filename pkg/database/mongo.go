package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// MongoConfig holds MongoDB connection configuration.
type MongoConfig struct {
	URI      string
	Database string

	ConnectTimeout     time.Duration
	SlowQueryThreshold time.Duration

	// AppName shows up in the server logs and in currentOp output.
	AppName string
}

// DefaultMongoConfig returns sensible defaults for development.
func DefaultMongoConfig() MongoConfig {
	return MongoConfig{
		URI:                "mongodb://localhost:27017",
		Database:           "campgrounds",
		ConnectTimeout:     10 * time.Second,
		SlowQueryThreshold: 500 * time.Millisecond,
		AppName:            "campgrounds",
	}
}

// Connect establishes a MongoDB client, verifies connectivity with a ping,
// and wires the command and pool monitors. The caller owns the returned
// client and must call Disconnect on shutdown.
func Connect(ctx context.Context, cfg MongoConfig, logger *slog.Logger) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(cfg.AppName).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMonitor(NewCommandMonitor(cfg.AppName, cfg.SlowQueryThreshold, logger)).
		SetPoolMonitor(NewPoolStatsMonitor(cfg.AppName))

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect to mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Connect rarely fails eagerly; the ping is what proves the server
		// is actually there. Tear the client down before reporting.
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return client, nil
}
