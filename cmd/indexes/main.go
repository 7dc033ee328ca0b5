// Command indexes creates the MongoDB indexes the API reads depend on.
// Run it once against a fresh database, or again after changing the specs;
// index creation is idempotent.
package main

import (
	"context"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	loadEnvFunc  = godotenv.Load
	connectMongo = func(ctx context.Context, uri string) (*mongo.Client, error) {
		return mongo.Connect(ctx, options.Client().ApplyURI(uri))
	}
)

type indexSpec struct {
	Collection string
	Models     []mongo.IndexModel
}

// indexSpecs mirrors the read paths: every collection is scanned newest
// first, sentiment is additionally filtered by coin and trades by user.
func indexSpecs() []indexSpec {
	return []indexSpec{
		{
			Collection: "market_data",
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "timestamp", Value: -1}}},
			},
		},
		{
			Collection: "news",
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "published_at", Value: -1}}},
			},
		},
		{
			Collection: "sentiment",
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "coin", Value: 1}, {Key: "timestamp", Value: -1}}},
			},
		},
		{
			Collection: "trades",
			Models: []mongo.IndexModel{
				{Keys: bson.D{{Key: "timestamp", Value: -1}}},
				{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "timestamp", Value: -1}}},
			},
		},
	}
}

func main() {
	loadEnvFunc()

	uri := os.Getenv("MONGODB_URI")
	if strings.TrimSpace(uri) == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := strings.TrimSpace(os.Getenv("DB_NAME"))
	if dbName == "" {
		dbName = "crypto_trading"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := connectMongo(ctx, uri)
	if err != nil {
		log.Fatalf("connect to mongodb: %v", err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Printf("disconnect: %v", err)
		}
	}()

	db := client.Database(dbName)
	created := 0
	for _, spec := range indexSpecs() {
		names, err := db.Collection(spec.Collection).Indexes().CreateMany(ctx, spec.Models)
		if err != nil {
			log.Fatalf("create indexes on %s: %v", spec.Collection, err)
		}
		log.Printf("%s: %s", spec.Collection, strings.Join(names, ", "))
		created += len(names)
	}
	log.Printf("index setup complete (%d indexes)", created)
}
