package store

import (
	"context"
	"fmt"
	"log"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client   *mongo.Client
	database *mongo.Database
	initOnce sync.Once

	connectMongo = func(ctx context.Context, uri string) (*mongo.Client, error) {
		return mongo.Connect(ctx, options.Client().ApplyURI(uri))
	}
	pingMongo = func(ctx context.Context, c *mongo.Client) error {
		return c.Ping(ctx, nil)
	}
)

// Init connects the process-wide MongoDB client. Only the first call
// connects; later calls are no-ops. There is no teardown path — the
// connection lives for the life of the process.
func Init(ctx context.Context, uri, dbName string) error {
	var err error
	initOnce.Do(func() {
		var c *mongo.Client
		c, err = connectMongo(ctx, uri)
		if err != nil {
			err = fmt.Errorf("connect to mongodb: %w", err)
			return
		}
		if err = pingMongo(ctx, c); err != nil {
			err = fmt.Errorf("ping mongodb: %w", err)
			return
		}
		client = c
		database = c.Database(dbName)
		log.Println("Connected to MongoDB")
	})
	return err
}

// Database returns the shared database handle, or nil before Init succeeds.
func Database() *mongo.Database {
	return database
}
