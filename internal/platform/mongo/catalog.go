package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"support-analytics-service/internal/config"
)

// Catalog is the connection to the product catalog document store.
type Catalog struct {
	client   *mongo.Client
	database *mongo.Database
}

// Connect dials the catalog and pings it once so startup fails fast.
func Connect(ctx context.Context, cfg config.MongoConfig) (*Catalog, error) {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Catalog{
		client:   client,
		database: client.Database(cfg.Database),
	}, nil
}

func (c *Catalog) Name() string {
	return c.database.Name()
}

// PingContext checks the catalog connection.
func (c *Catalog) PingContext(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("not connected to catalog")
	}
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Catalog) Disconnect(ctx context.Context) error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
