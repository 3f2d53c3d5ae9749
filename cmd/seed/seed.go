// Command seed loads the built-in catalog into the schemes collection.
// Safe to re-run: existing records are replaced by ID.
package main

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Prajwalng2/Major-Project-temp/data"
	"github.com/Prajwalng2/Major-Project-temp/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	collection := mongoClient.Database(cfg.DBName).Collection("schemes")

	seeded := 0
	for _, scheme := range data.Schemes() {
		opts := options.Replace().SetUpsert(true)
		_, err := collection.ReplaceOne(ctx, bson.M{"_id": scheme.ID}, scheme, opts)
		if err != nil {
			log.Fatalf("Failed to seed scheme %s: %v", scheme.ID, err)
		}
		seeded++
	}

	log.Printf("Seeded %d schemes into %s.schemes", seeded, cfg.DBName)
}
