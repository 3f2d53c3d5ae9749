package config

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectMongoDB(cfg *Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %v", err)
	}

	// Test connection
	err = client.Ping(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %v", err)
	}

	// Create indexes
	err = createIndexes(client, cfg.DBName)
	if err != nil {
		return nil, fmt.Errorf("failed to create indexes: %v", err)
	}

	return client, nil
}

func createIndexes(client *mongo.Client, dbName string) error {
	db := client.Database(dbName)

	// Schemes collection indexes for the browse and filter paths
	schemesCollection := db.Collection("schemes")
	schemeIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "category", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "state", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "is_popular", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "ministry", Value: 1}},
		},
	}
	_, err := schemesCollection.Indexes().CreateMany(context.Background(), schemeIndexes)
	if err != nil {
		return err
	}

	// Applications collection indexes
	applicationsCollection := db.Collection("applications")
	applicationIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "scheme_id", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "created_at", Value: -1}},
		},
	}
	_, err = applicationsCollection.Indexes().CreateMany(context.Background(), applicationIndexes)
	if err != nil {
		return err
	}

	return nil
}
